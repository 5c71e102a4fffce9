package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/editaisbr/editais/internal/client/models"
	"github.com/editaisbr/editais/internal/client/services"
)

func (a *App) promptDraft() (services.NoticeDraft, error) {
	var d services.NoticeDraft
	var err error

	if d.Title, err = getSimpleText(a.reader, "Título", os.Stdout); err != nil {
		return d, err
	}
	if d.Number, err = getSimpleText(a.reader, "Número", os.Stdout); err != nil {
		return d, err
	}
	if d.Type, err = getSimpleText(a.reader, "Tipo (licitacao, concurso, aviso, portaria)", os.Stdout); err != nil {
		return d, err
	}
	if d.Organ, err = getSimpleText(a.reader, "Órgão", os.Stdout); err != nil {
		return d, err
	}
	if d.SectionName, err = getSimpleText(a.reader, "Seção (licitacoes, concursos, avisos, portarias)", os.Stdout); err != nil {
		return d, err
	}
	if d.Value, err = getSimpleText(a.reader, "Valor (ex: R$ 1.250.000,00)", os.Stdout); err != nil {
		return d, err
	}
	if d.OpeningDate, err = getSimpleText(a.reader, "Data de abertura (AAAA-MM-DD)", os.Stdout); err != nil {
		return d, err
	}
	if d.ClosingDate, err = getSimpleText(a.reader, "Data de encerramento (AAAA-MM-DD)", os.Stdout); err != nil {
		return d, err
	}
	if d.Description, err = getMultiline(a.reader, "Descrição", os.Stdout); err != nil {
		return d, err
	}
	return d, nil
}

// Publish runs the publish wizard and creates a published notice.
func (a *App) Publish(ctx context.Context) error {
	draft, err := a.promptDraft()
	if err != nil {
		return err
	}

	id, err := a.notices.Publish(ctx, draft)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Edital publicado com sucesso! (id %s)", id))
	return nil
}

// Draft saves the wizard state as a draft document.
func (a *App) Draft(ctx context.Context) error {
	draft, err := a.promptDraft()
	if err != nil {
		return err
	}

	id, err := a.notices.SaveDraft(ctx, draft)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Rascunho salvo com sucesso! (id %s)", id))
	return nil
}

// Mine lists the session user's own notices, split published/drafts.
func (a *App) Mine(ctx context.Context) error {
	mine, err := a.notices.MyNotices(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	published := 0
	printlnFn("Publicados:")
	for _, n := range mine {
		if n.Status == models.StatusPublished {
			printlnFn(formatNotice(n, false))
			published++
		}
	}
	if published == 0 {
		printlnFn("  (nenhum)")
	}

	drafts := 0
	printlnFn("Rascunhos:")
	for _, n := range mine {
		if n.Status == models.StatusDraft {
			printlnFn(formatNotice(n, false))
			drafts++
		}
	}
	if drafts == 0 {
		printlnFn("  (nenhum)")
	}
	return nil
}
