package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleNotice() Notice {
	return Notice{
		ID:           "1",
		Title:        "Edital de Concurso Público",
		Body:         "Abertura de inscrições para área de saúde",
		Organization: "Ministério da Saúde",
		Section:      Section1,
		Tags:         []string{"concurso", "saúde"},
	}
}

func TestSearchFilters_NoFiltersMatchEverything(t *testing.T) {
	f := SearchFilters{}
	assert.True(t, f.IsZero())
	assert.True(t, f.Matches(sampleNotice()))
	assert.True(t, f.Matches(Notice{}))
}

func TestSearchFilters_TermMatchesEachField(t *testing.T) {
	n := sampleNotice()

	tests := []struct {
		name string
		term string
		want bool
	}{
		{"title substring", "concurso público", true},
		{"title case-insensitive", "CONCURSO", true},
		{"body substring", "inscrições", true},
		{"organization substring", "ministério", true},
		{"tag substring", "saúde", true},
		{"no match", "licitação", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := SearchFilters{Term: tc.term}
			assert.Equal(t, tc.want, f.Matches(n))
		})
	}
}

func TestSearchFilters_SectionExactMatch(t *testing.T) {
	n := sampleNotice()
	assert.True(t, SearchFilters{Section: Section1}.Matches(n))
	assert.False(t, SearchFilters{Section: Section2}.Matches(n))
}

func TestSearchFilters_OrganizationSubstring(t *testing.T) {
	n := sampleNotice()
	assert.True(t, SearchFilters{Organization: "saúde"}.Matches(n))
	assert.False(t, SearchFilters{Organization: "fazenda"}.Matches(n))
}

func TestSearchFilters_AllActiveMustMatch(t *testing.T) {
	n := sampleNotice()
	f := SearchFilters{Term: "concurso", Section: Section1, Organization: "ministério"}
	assert.True(t, f.Matches(n))

	f.Section = SectionExtra
	assert.False(t, f.Matches(n))
}
