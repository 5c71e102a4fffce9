package models

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Section is the fixed 4-value classification of a notice's official
// category, mirroring the sections of the official gazette.
type Section string

const (
	Section1     Section = "secao1" // atos normativos
	Section2     Section = "secao2" // atos de pessoas
	Section3     Section = "secao3" // contratos, editais e avisos
	SectionExtra Section = "extra"  // edição extra
)

// NoticeStatus is the lifecycle state of a notice.
type NoticeStatus string

const (
	StatusPublished NoticeStatus = "publicado"
	StatusScheduled NoticeStatus = "agendado"
	StatusDraft     NoticeStatus = "rascunho"
	StatusPending   NoticeStatus = "pendente"
)

// RemoteStatusPublished is the status literal the document store uses for a
// published notice; only those appear in the merged listing.
const RemoteStatusPublished = "published"

// Author references the account that published a notice.
type Author struct {
	ID   string     `json:"id"`
	Name string     `json:"nome"`
	Type PersonType `json:"tipo"`
}

// Notice is the common shape shown in the listing, after normalization.
type Notice struct {
	ID              string       `json:"id"`
	Title           string       `json:"titulo"`
	Subtitle        string       `json:"subtitulo,omitempty"`
	Body            string       `json:"conteudo"`
	Organization    string       `json:"orgao"`
	ParentOrg       string       `json:"orgaoSubordinado,omitempty"`
	ActType         string       `json:"tipoAto"`
	Section         Section      `json:"secao"`
	PublicationDate time.Time    `json:"dataPublicacao"`
	CreationDate    time.Time    `json:"dataCriacao"`
	Status          NoticeStatus `json:"status"`
	Author          Author       `json:"autor"`
	Value           float64      `json:"valor,omitempty"`
	Tags            []string     `json:"tags,omitempty"`
	Views           int          `json:"visualizacoes"`
}

// RemoteNotice is the raw document shape returned by the document store.
// Fields are optional; normalization substitutes placeholder defaults.
type RemoteNotice struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Number      string    `json:"number"`
	Type        string    `json:"type"`
	Organ       string    `json:"organ"`
	Section     string    `json:"section"`
	Value       string    `json:"value"`
	OpeningDate string    `json:"openingDate"`
	ClosingDate string    `json:"closingDate"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      string    `json:"userId"`
	Views       int       `json:"views"`
	PublishedAt string    `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Placeholder defaults substituted for missing remote fields.
const (
	PlaceholderTitle        = "Título não informado"
	PlaceholderType         = "Tipo não informado"
	PlaceholderNumber       = "S/N"
	PlaceholderDescription  = "Descrição não informada"
	PlaceholderOrganization = "Órgão não informado"
)

// sectionNames maps remote section names onto the fixed enumeration.
// Unrecognized names fall into the Section3 bucket.
var sectionNames = map[string]Section{
	"licitacoes": Section3,
	"concursos":  Section1,
	"avisos":     Section2,
	"portarias":  Section1,
}

// SectionFromName resolves a remote section name to the Section enum.
func SectionFromName(name string) Section {
	if s, ok := sectionNames[name]; ok {
		return s
	}
	return Section3
}

// SectionTitle returns the human-readable name of a section. Unknown values
// are returned unchanged.
func SectionTitle(s Section) string {
	switch s {
	case Section1:
		return "Atos Normativos"
	case Section2:
		return "Atos de Pessoas"
	case Section3:
		return "Contratos, Editais e Avisos"
	case SectionExtra:
		return "Edição Extra"
	default:
		return string(s)
	}
}

var nonMoneyChars = regexp.MustCompile(`[^\d,]`)

// ParseMoney extracts a monetary value from a free-form string like
// "R$ 1.250.000,00". Returns 0 when nothing parseable remains.
func ParseMoney(s string) float64 {
	cleaned := nonMoneyChars.ReplaceAllString(s, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// NoticeFromRemote maps a raw remote document into the common Notice shape.
// Missing fields get placeholder defaults, the section name is resolved
// through the fixed lookup table, and tags are built from the lower-cased
// type and organization with blanks dropped.
func NoticeFromRemote(r RemoteNotice) Notice {
	title := r.Title
	if title == "" {
		title = PlaceholderTitle
	}
	actType := r.Type
	if actType == "" {
		actType = PlaceholderType
	}
	number := r.Number
	if number == "" {
		number = PlaceholderNumber
	}
	body := r.Description
	if body == "" {
		body = PlaceholderDescription
	}
	organ := r.Organ
	if organ == "" {
		organ = PlaceholderOrganization
	}

	section := r.Section
	if section == "" {
		section = "licitacoes"
	}

	published := time.Now()
	if r.PublishedAt != "" {
		if ts, err := time.Parse(time.RFC3339, r.PublishedAt); err == nil {
			published = ts
		}
	}
	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	var tags []string
	for _, t := range []string{strings.ToLower(r.Type), strings.ToLower(r.Organ)} {
		if t != "" {
			tags = append(tags, t)
		}
	}

	var value float64
	if r.Value != "" {
		value = ParseMoney(r.Value)
	}

	return Notice{
		ID:              r.ID,
		Title:           title,
		Subtitle:        actType + " - " + number,
		Body:            body,
		Organization:    organ,
		ActType:         actType,
		Section:         SectionFromName(section),
		PublicationDate: published,
		CreationDate:    created,
		Status:          StatusPublished,
		Author: Author{
			ID:   orDefault(r.UserID, "unknown"),
			Name: "Usuário do Sistema",
			Type: PersonTypeOrganization,
		},
		Tags:  tags,
		Views: r.Views,
		Value: value,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
