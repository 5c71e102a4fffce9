package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/editaisbr/editais/internal/client/models"
	"github.com/editaisbr/editais/internal/common"
)

// getSimpleText, getPassword, getMultiline and getYesNo are indirections used
// to facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getYesNo      = GetYesNo
)

// Login prompts for credentials and resolves a session through the resolver,
// demo-account bypass included. Failures are reported to the user and
// returned unchanged.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "E-mail", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Senha", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, models.LoginCredentials{Email: email, Password: string(password)})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Login realizado: %s", user.Email))
	return nil
}

// Register runs the registration dialog: account type first, then the
// variant-specific form, then the resolver call.
func (a *App) Register(ctx context.Context) error {
	kind, err := getSimpleText(a.reader, "Tipo de conta: (f)ísica ou (j)urídica", os.Stdout)
	if err != nil {
		return err
	}

	individual, err := a.promptIndividual()
	if err != nil {
		return err
	}

	var user *models.User
	switch kind {
	case "j", "juridica", "jurídica":
		data := models.RegisterOrganizationData{RegisterIndividualData: individual}
		if data.OrganizationName, err = getSimpleText(a.reader, "Nome da instituição", os.Stdout); err != nil {
			return err
		}
		if data.CNPJ, err = getSimpleText(a.reader, "CNPJ", os.Stdout); err != nil {
			return err
		}
		if data.StateRegistration, err = getSimpleText(a.reader, "Inscrição estadual", os.Stdout); err != nil {
			return err
		}
		user, err = a.session.RegisterOrganization(ctx, data)
	default:
		user, err = a.session.RegisterIndividual(ctx, individual)
	}
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Cadastro realizado: %s", user.Email))
	return nil
}

func (a *App) promptIndividual() (models.RegisterIndividualData, error) {
	var data models.RegisterIndividualData
	var err error

	if data.Name, err = getSimpleText(a.reader, "Nome", os.Stdout); err != nil {
		return data, err
	}
	if data.Surname, err = getSimpleText(a.reader, "Sobrenome", os.Stdout); err != nil {
		return data, err
	}
	if data.Email, err = getSimpleText(a.reader, "E-mail", os.Stdout); err != nil {
		return data, err
	}
	if data.CPF, err = getSimpleText(a.reader, "CPF", os.Stdout); err != nil {
		return data, err
	}
	if data.Telephone, err = getSimpleText(a.reader, "Telefone", os.Stdout); err != nil {
		return data, err
	}
	password, err := getPassword("Senha", os.Stdout)
	if err != nil {
		return data, err
	}
	defer common.WipeByteArray(password)
	data.Password = string(password)

	confirm, err := getPassword("Confirmar senha", os.Stdout)
	if err != nil {
		return data, err
	}
	defer common.WipeByteArray(confirm)
	data.ConfirmPassword = string(confirm)
	if data.PolicyAccepted, err = getYesNo(a.reader, "Aceita a política de privacidade?", os.Stdout); err != nil {
		return data, err
	}
	return data, nil
}

// Logout clears the session. Remote sign-out failures are handled inside the
// resolver; the persisted records are always wiped.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Sessão encerrada")
	return nil
}
