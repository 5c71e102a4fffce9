package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/editaisbr/editais/internal/client/models"
	"github.com/editaisbr/editais/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRequiresSession(t *testing.T) {
	store := newMemStore()
	s := NewProfileService(nil, store, newTestSession(t, store, false), testLogger())

	_, err := s.Resolve(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotAuthenticated)
}

func TestProfileFromRemoteDocument(t *testing.T) {
	store := newMemStore()
	fc := newFakeClient()
	session := newTestSession(t, store, true) // canned session, uid "1"
	fc.profiles["1"] = map[string]any{
		"nome":      "Maria",
		"sobrenome": "Souza",
		"cpf":       "987.654.321-00",
		"telefone":  "(21) 91234-5678",
		"endereco": map[string]any{
			"rua":    "Av. Atlântica",
			"numero": "500",
			"cidade": "Rio de Janeiro",
			"estado": "RJ",
			"cep":    "22000-000",
		},
		"updatedAt": "2023-05-10T12:00:00Z",
	}
	s := NewProfileService(fc, store, session, testLogger())

	p, err := s.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", p.Name)
	assert.Equal(t, "user@x.y", p.Email)
	assert.Equal(t, "Av. Atlântica, 500", p.Address)
	assert.Equal(t, "Rio de Janeiro", p.City)
	assert.Equal(t, "RJ", p.State)
	assert.Equal(t, "2023", p.MemberSince)
	assert.Equal(t, "Usuário do Sistema", p.Role)
}

func TestProfileRemoteMissingFieldsGetDefaults(t *testing.T) {
	store := newMemStore()
	fc := newFakeClient()
	session := newTestSession(t, store, true)
	fc.profiles["1"] = map[string]any{"nome": "Maria"}
	s := NewProfileService(fc, store, session, testLogger())

	p, err := s.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Maria", p.Name)
	assert.Equal(t, "(11) 98765-4321", p.Phone)
	assert.Equal(t, "Endereço não informado", p.Address)
	assert.Equal(t, "Cidade não informada", p.City)
}

func TestProfileFallsBackToLocalRecord(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	fc := newFakeClient() // no profile document -> ErrNotFound
	session := newTestSession(t, store, true)

	stored := &models.User{UID: "1", Email: "user@x.y", Name: "Carlos", Surname: "Lima", CPF: "111.222.333-44"}
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, common.StorageKeyUser, data))

	s := NewProfileService(fc, store, session, testLogger())
	p, err := s.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Carlos Lima", p.Name)
	assert.Equal(t, "111.222.333-44", p.CPF)
	assert.Equal(t, "Rua das Flores, 123", p.Address)
	assert.Equal(t, "2024", p.MemberSince)
}

func TestProfileRemoteErrorDegradesDownChain(t *testing.T) {
	store := newMemStore()
	fc := newFakeClient()
	fc.getProfileErr = errors.New("backend down")
	session := newTestSession(t, store, true)

	s := NewProfileService(fc, store, session, testLogger())
	p, err := s.Resolve(context.Background())
	require.NoError(t, err)
	// canned session was persisted write-through on login, so the local
	// record supplies João Silva
	assert.Equal(t, "João Silva", p.Name)
	assert.Equal(t, "user@x.y", p.Email)
}

func TestProfileDefaultsWhenNothingStored(t *testing.T) {
	store := newMemStore()
	session := newTestSession(t, store, true)
	// wipe the write-through record to force the last link of the chain
	require.NoError(t, store.Clear(context.Background()))

	s := NewProfileService(nil, store, session, testLogger())
	p, err := s.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "João Silva", p.Name)
	assert.Equal(t, "São Paulo", p.City)
	assert.Equal(t, "SP", p.State)
}
