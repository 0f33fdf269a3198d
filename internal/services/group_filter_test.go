package services

import (
	"errors"
	"testing"

	"elevatecart/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fall25() *domain.Group {
	return &domain.Group{ID: "42", Code: "FALL25", Title: "Fall 2025"}
}

func sampleCatalog() *domain.CatalogDocument {
	spring := &domain.Group{ID: "43", Code: "SPR26", Title: "Spring 2026"}
	doc := &domain.CatalogDocument{Programs: []*domain.Program{
		{ID: "p1", Title: "Pottery", Instances: []*domain.ProgramInstance{
			{ObjectID: "i1", Title: "Pottery I", Group: fall25()},
			{ObjectID: "i2", Title: "Pottery I (spring)", Group: spring},
			{ObjectID: "i3", Title: "Pottery II", Group: fall25()},
		}},
		{ID: "p2", Title: "Welding", Instances: []*domain.ProgramInstance{
			{ObjectID: "i4", Title: "Welding basics"},
			{ObjectID: "i5", Title: "Welding I", Group: fall25()},
			{ObjectID: "i6", Title: "Welding I", Group: &domain.Group{ID: "44", Code: "fall25"}},
		}},
	}}
	doc.Link()
	return doc
}

func objectIDs(instances []*domain.ProgramInstance) []string {
	out := make([]string, 0, len(instances))
	for _, inst := range instances {
		out = append(out, string(inst.ObjectID))
	}
	return out
}

func TestFilterByGroup(t *testing.T) {
	doc := sampleCatalog()
	tests := []struct {
		name   string
		doc    *domain.CatalogDocument
		method domain.MatchMethod
		value  string
		want   []string
	}{
		{"by code across programs", doc, domain.MatchByCode, "FALL25", []string{"i1", "i3", "i5"}},
		{"by id", doc, domain.MatchByID, "43", []string{"i2"}},
		{"case sensitive", doc, domain.MatchByCode, "fall25", []string{"i6"}},
		{"no match", doc, domain.MatchByCode, "WIN27", []string{}},
		{"id value does not match code", doc, domain.MatchByCode, "42", []string{}},
		{"nil document", nil, domain.MatchByCode, "FALL25", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByGroup(tt.doc, tt.method, tt.value)
			assert.Equal(t, tt.want, objectIDs(got))
		})
	}
}

func TestGroupIdentity(t *testing.T) {
	got := FilterByGroup(sampleCatalog(), domain.MatchByCode, "FALL25")
	group, ok := GroupIdentity(got)
	require.True(t, ok)
	assert.Equal(t, "Fall 2025", group.Title)
	assert.Equal(t, "FALL25", group.Code)
	assert.Equal(t, domain.FlexString("42"), group.ID)

	_, ok = GroupIdentity(nil)
	assert.False(t, ok)
}

func TestCheckGroupIdentity(t *testing.T) {
	same := FilterByGroup(sampleCatalog(), domain.MatchByCode, "FALL25")
	require.NoError(t, CheckGroupIdentity(same))
	require.NoError(t, CheckGroupIdentity(nil))

	renamed := fall25()
	renamed.Title = "Autumn 2025"
	mixed := []*domain.ProgramInstance{{Group: fall25()}, {Group: renamed}}
	err := CheckGroupIdentity(mixed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAmbiguousGroupIdentity))
	var amb *domain.AmbiguousGroupIdentityError
	require.True(t, errors.As(err, &amb))
	assert.Equal(t, "Fall 2025", amb.First.Title)
	assert.Equal(t, "Autumn 2025", amb.Conflicting.Title)
}
