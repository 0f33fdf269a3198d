package elevate

import "elevatecart/internal/domain"

// ToCatalogDocument unwraps an Elevate response into a linked catalog document.
func ToCatalogDocument(resp *domain.ElevateResponse) *domain.CatalogDocument {
	doc := &domain.CatalogDocument{Programs: []*domain.Program{}}
	if resp == nil || resp.Programs == nil {
		return doc
	}
	for _, pe := range *resp.Programs {
		p := pe.Program
		prog := &domain.Program{
			ID:                  p.ID,
			Title:               p.Title,
			InstructionalMethod: toInstructionalMethod(p.InstructionalMethod),
			Instances:           make([]*domain.ProgramInstance, 0, len(p.ProgramInstances)),
		}
		for _, ie := range p.ProgramInstances {
			prog.Instances = append(prog.Instances, toInstance(ie.ProgramInstance))
		}
		doc.Programs = append(doc.Programs, prog)
	}
	doc.Link()
	return doc
}

func toInstance(in domain.ElevateProgramInstance) *domain.ProgramInstance {
	inst := &domain.ProgramInstance{
		ObjectID:            in.ID,
		Code:                in.Code,
		ProgramInstanceID:   in.ProgramInstanceID,
		Title:               in.Title,
		SummaryBrief:        deref(in.SummaryBrief),
		SummaryLong:         deref(in.SummaryLong),
		Fee:                 in.Fee,
		Credits:             in.Credits,
		PlacesLeft:          in.PlacesLeft,
		WaitlistPlacesLeft:  in.WaitlistPlacesLeft,
		InstructionalMethod: toInstructionalMethod(in.InstructionalMethod),
		Services:            make([]domain.Service, 0, len(in.Services)),
		Sections:            make([]domain.Section, 0, len(in.Sections)),
	}
	if in.Status != nil {
		inst.Status = domain.Status{Code: in.Status.Code, Title: in.Status.Title}
	}
	if cs := in.CourseStream; cs != nil {
		inst.Group = &domain.Group{ID: cs.ID, Code: cs.Code, Title: cs.Title}
	}
	for _, se := range in.Services {
		inst.Services = append(inst.Services, toService(se))
	}
	for _, se := range in.Sections {
		inst.Sections = append(inst.Sections, toSection(se.Section))
	}
	return inst
}

// toService prefers window dates on the envelope over the service record.
func toService(se domain.ElevateServiceEnvelope) domain.Service {
	svc := domain.Service{
		Code:      se.Service.Code,
		Title:     se.Service.Title,
		StartDate: se.Service.StartDate,
		EndDate:   se.Service.EndDate,
	}
	if se.StartDate != "" {
		svc.StartDate = se.StartDate
	}
	if se.EndDate != "" {
		svc.EndDate = se.EndDate
	}
	return svc
}

func toSection(in domain.ElevateSection) domain.Section {
	sec := domain.Section{
		ObjectID:     in.ID,
		SectionID:    in.SectionID,
		Title:        in.Title,
		SummaryBrief: deref(in.SummaryBrief),
		SummaryLong:  deref(in.SummaryLong),
		Credits:      in.Credits,
		Fees:         make([]domain.Fee, 0, len(in.Fees)),
		Tutorials:    make([]domain.Tutorial, 0, len(in.Tutorials)),
	}
	for _, fe := range in.Fees {
		sec.Fees = append(sec.Fees, domain.Fee{Amount: fe.Fee.Amount})
	}
	for _, te := range in.Tutorials {
		t := te.Tutorial
		sec.Tutorials = append(sec.Tutorials, domain.Tutorial{
			DaysOfTheWeek: t.DaysOfTheWeek,
			TutorialTime:  t.TutorialTime,
			StartDate:     t.StartDate,
			EndDate:       t.EndDate,
			Tutor:         t.Tutor,
		})
	}
	return sec
}

func toInstructionalMethod(t *domain.ElevateTitled) *domain.InstructionalMethod {
	if t == nil {
		return nil
	}
	return &domain.InstructionalMethod{Code: t.Code, Title: t.Title}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
