package services

import "elevatecart/internal/domain"

// FilterByGroup returns, in document order, every instance whose group id (or
// code) equals value exactly. Instances without a group never match.
func FilterByGroup(doc *domain.CatalogDocument, method domain.MatchMethod, value string) []*domain.ProgramInstance {
	var out []*domain.ProgramInstance
	if doc == nil {
		return out
	}
	for _, p := range doc.Programs {
		if p == nil {
			continue
		}
		for _, inst := range p.Instances {
			if inst == nil || inst.Group == nil {
				continue
			}
			if groupField(inst.Group, method) == value {
				out = append(out, inst)
			}
		}
	}
	return out
}

func groupField(g *domain.Group, method domain.MatchMethod) string {
	if method == domain.MatchByID {
		return string(g.ID)
	}
	return g.Code
}

// GroupIdentity returns the group of the first instance. ok is false for an
// empty result, which has no displayable identity.
func GroupIdentity(instances []*domain.ProgramInstance) (domain.Group, bool) {
	if len(instances) == 0 || instances[0].Group == nil {
		return domain.Group{}, false
	}
	return *instances[0].Group, true
}

// CheckGroupIdentity verifies that all instances carry the same group record.
func CheckGroupIdentity(instances []*domain.ProgramInstance) error {
	first, ok := GroupIdentity(instances)
	if !ok {
		return nil
	}
	for _, inst := range instances[1:] {
		if inst.Group == nil || *inst.Group != first {
			conflicting := domain.Group{}
			if inst.Group != nil {
				conflicting = *inst.Group
			}
			return &domain.AmbiguousGroupIdentityError{First: first, Conflicting: conflicting}
		}
	}
	return nil
}
