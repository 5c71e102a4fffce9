package cli

import (
	"context"
	"fmt"

	"github.com/editaisbr/editais/internal/client/models"
)

func formatNotice(n models.Notice, favorite bool) string {
	star := " "
	if favorite {
		star = "*"
	}
	return fmt.Sprintf("%s [%s] %s | %s (%s, %d visualizações)",
		star, n.ID, n.Title, n.Organization, models.SectionTitle(n.Section), n.Views)
}

// List prints the currently visible (filtered) listing.
func (a *App) List(ctx context.Context) error {
	favorites, err := a.notices.Favorites(ctx)
	if err != nil {
		favorites = nil
	}
	favoriteSet := make(map[string]struct{}, len(favorites))
	for _, id := range favorites {
		favoriteSet[id] = struct{}{}
	}

	visible := a.notices.Visible()
	if len(visible) == 0 {
		printlnFn("Nenhum edital encontrado")
		return nil
	}
	for _, n := range visible {
		_, fav := favoriteSet[n.ID]
		printlnFn(formatNotice(n, fav))
	}
	printlnFn(fmt.Sprintf("%d editais", len(visible)))
	return nil
}

// Reload refetches the remote listing and rebuilds the merge.
func (a *App) Reload(ctx context.Context) error {
	a.notices.Load(ctx)
	return a.List(ctx)
}

// Search sets the free-text filter; an empty term clears it.
func (a *App) Search(ctx context.Context, term string) error {
	f := a.notices.Filters()
	f.Term = term
	a.notices.SetFilters(f)
	return a.List(ctx)
}

// Section sets the section filter; an empty name clears it.
func (a *App) Section(ctx context.Context, name string) error {
	f := a.notices.Filters()
	if name == "" {
		f.Section = ""
	} else {
		f.Section = models.Section(name)
	}
	a.notices.SetFilters(f)
	return a.List(ctx)
}

// Org sets the organization filter; an empty name clears it.
func (a *App) Org(ctx context.Context, name string) error {
	f := a.notices.Filters()
	f.Organization = name
	a.notices.SetFilters(f)
	return a.List(ctx)
}

// Fav toggles a favorite and reports the new membership.
func (a *App) Fav(ctx context.Context, id string) error {
	favorite, err := a.notices.ToggleFavorite(ctx, id)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if favorite {
		printlnFn(fmt.Sprintf("Edital %s adicionado aos favoritos", id))
	} else {
		printlnFn(fmt.Sprintf("Edital %s removido dos favoritos", id))
	}
	return nil
}

// Favs prints the favorite notices present in the loaded listing.
func (a *App) Favs(ctx context.Context) error {
	favorites, err := a.notices.Favorites(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	favoriteSet := make(map[string]struct{}, len(favorites))
	for _, id := range favorites {
		favoriteSet[id] = struct{}{}
	}

	count := 0
	for _, n := range a.notices.Notices() {
		if _, ok := favoriteSet[n.ID]; ok {
			printlnFn(formatNotice(n, true))
			count++
		}
	}
	if count == 0 {
		printlnFn("Nenhum favorito")
	}
	return nil
}

// View opens a notice: the view counter advances optimistically, then the
// full record is printed.
func (a *App) View(ctx context.Context, id string) error {
	a.notices.IncrementViews(ctx, id)

	for _, n := range a.notices.Notices() {
		if n.ID != id {
			continue
		}
		printlnFn(fmt.Sprintf("%s\n%s\n\n%s\n\nÓrgão: %s | Seção: %s | Publicado em: %s | Visualizações: %d",
			n.Title, n.Subtitle, n.Body, n.Organization, models.SectionTitle(n.Section),
			n.PublicationDate.Format("02/01/2006"), n.Views))
		return nil
	}
	printlnFn("Edital não encontrado:", id)
	return nil
}
