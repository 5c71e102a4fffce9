package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/editaisbr/editais/internal/client/client"
	"github.com/editaisbr/editais/internal/client/models"
	"github.com/editaisbr/editais/internal/client/repositories/localstore"
	"github.com/editaisbr/editais/internal/common"
	"github.com/editaisbr/editais/internal/logging"
)

// ProfileService resolves the dashboard profile of the session user through
// a fixed priority chain: the remote profile document, then the persisted
// local session record, then canned defaults. Lookup errors degrade down the
// chain and never propagate.
type ProfileService interface {
	Resolve(ctx context.Context) (*models.Profile, error)
}

type profileService struct {
	client  client.Client // nil in local-only mode
	store   localstore.Repository
	session SessionService
	log     logging.Logger
}

func NewProfileService(c client.Client, store localstore.Repository, session SessionService, log logging.Logger) ProfileService {
	return &profileService{client: c, store: store, session: session, log: log.With("component", "profile")}
}

const (
	defaultPhone   = "(11) 98765-4321"
	defaultAddress = "Rua das Flores, 123"
	defaultCity    = "São Paulo"
	defaultState   = "SP"
	defaultZip     = "01234-567"
	defaultRole    = "Usuário do Sistema"
)

// Resolve returns the profile for the current session, or
// common.ErrorNotAuthenticated when no session is active.
func (s *profileService) Resolve(ctx context.Context) (*models.Profile, error) {
	user := s.session.Current()
	if user == nil {
		return nil, common.ErrorNotAuthenticated
	}

	if s.client != nil {
		if p := s.fromRemote(ctx, user); p != nil {
			return p, nil
		}
	}
	if p := s.fromLocal(ctx, user); p != nil {
		return p, nil
	}
	return s.fromSession(user), nil
}

func (s *profileService) fromRemote(ctx context.Context, user *models.User) *models.Profile {
	fields, err := s.client.GetProfile(ctx, user.UID)
	if err != nil {
		if !errors.Is(err, client.ErrNotFound) {
			s.log.Warn(ctx, "remote profile lookup failed", "error", err)
		}
		return nil
	}
	if len(fields) == 0 {
		return nil
	}

	email := user.Email
	if email == "" {
		email = getString(fields, "email")
	}

	address := "Endereço não informado"
	city := "Cidade não informada"
	state := "Estado não informado"
	zip := "CEP não informado"
	if endereco, ok := fields["endereco"].(map[string]any); ok {
		if rua := getString(endereco, "rua"); rua != "" {
			address = rua + ", " + getString(endereco, "numero")
		}
		city = orDefaultString(getString(endereco, "cidade"), city)
		state = orDefaultString(getString(endereco, "estado"), state)
		zip = orDefaultString(getString(endereco, "cep"), zip)
	}

	memberSince := strconv.Itoa(time.Now().Year())
	if updated := getString(fields, "updatedAt"); updated != "" {
		if ts, err := time.Parse(time.RFC3339, updated); err == nil {
			memberSince = strconv.Itoa(ts.Year())
		}
	}

	return &models.Profile{
		Name:        fullName(getString(fields, "nome"), getString(fields, "sobrenome")),
		Email:       email,
		CPF:         getString(fields, "cpf"),
		CNPJ:        getString(fields, "cnpj"),
		Phone:       orDefaultString(getString(fields, "telefone"), defaultPhone),
		Address:     address,
		City:        city,
		State:       state,
		ZipCode:     zip,
		Company:     getString(fields, "nomeInstituicao"),
		Role:        defaultRole,
		MemberSince: memberSince,
	}
}

func (s *profileService) fromLocal(ctx context.Context, user *models.User) *models.Profile {
	data, err := s.store.Get(ctx, common.StorageKeyUser)
	if err != nil || data == nil {
		return nil
	}
	var stored models.User
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil
	}

	email := user.Email
	if email == "" {
		email = stored.Email
	}

	return &models.Profile{
		Name:        fullName(stored.Name, stored.Surname),
		Email:       email,
		CPF:         stored.CPF,
		CNPJ:        stored.CNPJ,
		Phone:       orDefaultString(stored.Telephone, defaultPhone),
		Address:     defaultAddress,
		City:        defaultCity,
		State:       defaultState,
		ZipCode:     defaultZip,
		Role:        defaultRole,
		MemberSince: "2024",
	}
}

func (s *profileService) fromSession(user *models.User) *models.Profile {
	name := "João Silva"
	if user.Name != "" && user.Surname != "" {
		name = user.Name + " " + user.Surname
	}
	return &models.Profile{
		Name:        name,
		Email:       user.Email,
		CPF:         user.CPF,
		CNPJ:        user.CNPJ,
		Phone:       orDefaultString(user.Telephone, defaultPhone),
		Address:     defaultAddress,
		City:        defaultCity,
		State:       defaultState,
		ZipCode:     defaultZip,
		Role:        defaultRole,
		MemberSince: "2024",
	}
}

func fullName(first, last string) string {
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return "Usuário"
	}
	return name
}

func getString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func orDefaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
