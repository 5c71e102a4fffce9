package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionFromName(t *testing.T) {
	tests := []struct {
		name string
		want Section
	}{
		{"licitacoes", Section3},
		{"concursos", Section1},
		{"avisos", Section2},
		{"portarias", Section1},
		{"algo-desconhecido", Section3},
		{"", Section3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SectionFromName(tc.name))
		})
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"R$ 1.250.000,00", 1250000.00},
		{"1500,50", 1500.50},
		{"123", 123},
		{"sem valor", 0},
		{"", 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.InDelta(t, tc.want, ParseMoney(tc.in), 0.001)
		})
	}
}

func TestNoticeFromRemote_FullDocument(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	r := RemoteNotice{
		ID:          "abc",
		Title:       "Pregão Eletrônico nº 10/2024",
		Number:      "10/2024",
		Type:        "Licitação",
		Organ:       "Prefeitura de Recife",
		Section:     "concursos",
		Value:       "R$ 2.500,00",
		Description: "Aquisição de equipamentos",
		Status:      RemoteStatusPublished,
		UserID:      "u1",
		Views:       42,
		PublishedAt: "2024-03-02T12:00:00Z",
		CreatedAt:   created,
	}

	n := NoticeFromRemote(r)

	assert.Equal(t, "abc", n.ID)
	assert.Equal(t, "Pregão Eletrônico nº 10/2024", n.Title)
	assert.Equal(t, "Licitação - 10/2024", n.Subtitle)
	assert.Equal(t, Section1, n.Section)
	assert.Equal(t, StatusPublished, n.Status)
	assert.Equal(t, "u1", n.Author.ID)
	assert.Equal(t, []string{"licitação", "prefeitura de recife"}, n.Tags)
	assert.Equal(t, 42, n.Views)
	assert.InDelta(t, 2500.0, n.Value, 0.001)
	assert.Equal(t, created, n.CreationDate)
	require.Equal(t, time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), n.PublicationDate)
}

func TestNoticeFromRemote_EmptyDocumentGetsPlaceholders(t *testing.T) {
	n := NoticeFromRemote(RemoteNotice{ID: "x"})

	assert.Equal(t, PlaceholderTitle, n.Title)
	assert.Equal(t, PlaceholderType+" - "+PlaceholderNumber, n.Subtitle)
	assert.Equal(t, PlaceholderDescription, n.Body)
	assert.Equal(t, PlaceholderOrganization, n.Organization)
	assert.Equal(t, Section3, n.Section)
	assert.Equal(t, "unknown", n.Author.ID)
	assert.Empty(t, n.Tags)
	assert.Zero(t, n.Value)
	assert.False(t, n.PublicationDate.IsZero())
	assert.False(t, n.CreationDate.IsZero())
}

func TestNoticeFromRemote_BadPublishedAtFallsBackToNow(t *testing.T) {
	before := time.Now()
	n := NoticeFromRemote(RemoteNotice{ID: "x", PublishedAt: "ontem"})
	assert.False(t, n.PublicationDate.Before(before))
}
