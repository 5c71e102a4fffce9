package cli

import (
	"context"
	"fmt"
)

// Profile prints the resolved dashboard profile.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.profile.Resolve(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Nome: %s", p.Name))
	printlnFn(fmt.Sprintf("E-mail: %s", p.Email))
	if p.CPF != "" {
		printlnFn(fmt.Sprintf("CPF: %s", p.CPF))
	}
	if p.CNPJ != "" {
		printlnFn(fmt.Sprintf("CNPJ: %s", p.CNPJ))
	}
	printlnFn(fmt.Sprintf("Telefone: %s", p.Phone))
	printlnFn(fmt.Sprintf("Endereço: %s, %s - %s, %s", p.Address, p.City, p.State, p.ZipCode))
	if p.Company != "" {
		printlnFn(fmt.Sprintf("Instituição: %s", p.Company))
	}
	printlnFn(fmt.Sprintf("%s desde %s", p.Role, p.MemberSince))
	return nil
}

// Metrics prints the activity metrics of the session user.
func (a *App) Metrics(ctx context.Context) error {
	m, err := a.metrics.Collect(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Editais publicados: %d", m.TotalNotices))
	printlnFn(fmt.Sprintf("Favoritos recebidos: %d", m.TotalFavorites))
	printlnFn(fmt.Sprintf("Visualizações: %d (média %d)", m.TotalViews, m.AverageViews))
	printlnFn(fmt.Sprintf("Engajamento: %s%%", m.EngagementRate))
	for _, d := range m.Last7Days {
		printlnFn(fmt.Sprintf("  %s: %d visualizações, %d favoritos", d.Date, d.Views, d.Favorites))
	}
	return nil
}
