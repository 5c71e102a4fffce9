package services

import (
	"time"

	"github.com/editaisbr/editais/internal/client/models"
)

// sampleIDs is the identifier set of the fixed fallback notices. View
// increments skip these: they are not real remote documents.
var sampleIDs = map[string]struct{}{
	"1": {}, "2": {}, "3": {}, "4": {}, "5": {},
}

func isSampleID(id string) bool {
	_, ok := sampleIDs[id]
	return ok
}

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// SampleNotices returns the fixed fallback list shown when the remote fetch
// fails and unioned into every merged listing. Identifiers "1".."5".
func SampleNotices() []models.Notice {
	return []models.Notice{
		{
			ID:              "1",
			Title:           "Edital de Concurso Público nº 001/2024",
			Subtitle:        "Abertura de vagas para diversos cargos",
			Body:            "O Município de São Paulo torna público a abertura de inscrições para o Concurso Público...",
			Organization:    "Prefeitura Municipal de São Paulo",
			ParentOrg:       "Secretaria de Gestão",
			ActType:         "Concurso Público",
			Section:         models.Section3,
			PublicationDate: day("2024-01-15"),
			CreationDate:    day("2024-01-10"),
			Status:          models.StatusPublished,
			Author:          models.Author{ID: "1", Name: "João Silva", Type: models.PersonTypeOrganization},
			Tags:            []string{"concurso", "prefeitura", "são paulo"},
			Views:           1234,
		},
		{
			ID:              "2",
			Title:           "Edital de Licitação - Pregão Eletrônico nº 045/2024",
			Subtitle:        "Aquisição de materiais de escritório",
			Body:            "O Governo do Estado do Rio de Janeiro, através da Secretaria de Administração...",
			Organization:    "Governo do Estado do Rio de Janeiro",
			ActType:         "Licitação",
			Section:         models.Section3,
			PublicationDate: day("2024-01-12"),
			CreationDate:    day("2024-01-08"),
			Status:          models.StatusPublished,
			Author:          models.Author{ID: "2", Name: "Maria Santos", Type: models.PersonTypeOrganization},
			Tags:            []string{"licitação", "pregão", "rio de janeiro"},
			Views:           567,
		},
		{
			ID:              "3",
			Title:           "Convocação de Assembleia Geral Ordinária",
			Subtitle:        "Sindicato dos Trabalhadores em Educação",
			Body:            "O Sindicato dos Trabalhadores em Educação convoca todos os associados...",
			Organization:    "SINTEED - Sindicato dos Trabalhadores em Educação",
			ActType:         "Assembleia",
			Section:         models.Section2,
			PublicationDate: day("2024-01-10"),
			CreationDate:    day("2024-01-05"),
			Status:          models.StatusPublished,
			Author:          models.Author{ID: "3", Name: "Carlos Oliveira", Type: models.PersonTypeOrganization},
			Tags:            []string{"sindicato", "assembleia", "educação"},
			Views:           234,
		},
		{
			ID:              "4",
			Title:           "Portaria nº 234/2024",
			Subtitle:        "Nomeação de servidores aprovados em concurso",
			Body:            "O Ministério da Saúde, no uso de suas atribuições legais...",
			Organization:    "Ministério da Saúde",
			ActType:         "Portaria",
			Section:         models.Section1,
			PublicationDate: day("2024-01-08"),
			CreationDate:    day("2024-01-03"),
			Status:          models.StatusPublished,
			Author:          models.Author{ID: "4", Name: "Ana Costa", Type: models.PersonTypeOrganization},
			Tags:            []string{"portaria", "nomeação", "ministério"},
			Views:           890,
		},
		{
			ID:              "5",
			Title:           "Edital de Citação - Processo nº 0001234-56.2024",
			Subtitle:        "Ação de Cobrança",
			Body:            "O Juízo da 2ª Vara Cível da Comarca de Belo Horizonte...",
			Organization:    "Tribunal de Justiça de Minas Gerais",
			ActType:         "Citação",
			Section:         models.Section2,
			PublicationDate: day("2024-01-05"),
			CreationDate:    day("2024-01-02"),
			Status:          models.StatusPublished,
			Author:          models.Author{ID: "5", Name: "Pedro Alves", Type: models.PersonTypeIndividual},
			Tags:            []string{"citação", "judicial", "minas gerais"},
			Views:           123,
		},
	}
}
