// Package services contains application services for the EditaisBR client.
// This file defines the session resolver: a single state machine that decides
// whether the process has an authenticated user by combining a remote session
// provider (which may be unconfigured) with the persisted local record, and
// exposes login, logout and the two registration variants.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/editaisbr/editais/internal/client/client"
	"github.com/editaisbr/editais/internal/client/models"
	"github.com/editaisbr/editais/internal/client/repositories/localstore"
	"github.com/editaisbr/editais/internal/common"
	"github.com/editaisbr/editais/internal/logging"
)

// SessionState is the resolver's externally visible state.
type SessionState string

const (
	// StateLoading holds only between Start and the first resolution.
	StateLoading       SessionState = "loading"
	StateAuthenticated SessionState = "authenticated"
	StateAnonymous     SessionState = "anonymous"
)

// SessionService resolves and mutates the single process-wide session.
//
// Contract:
//   - Start: launch the resolver; subscribes to the remote provider when one
//     is configured, otherwise resolves once from the persisted record.
//   - Login: credential exchange with demo-account bypass and local-only
//     fallback.
//   - Logout: best-effort remote sign-out; always clears the persisted
//     user/token/favorites records and the in-memory session.
//   - RegisterIndividual / RegisterOrganization: create a remote identity and
//     its profile document, or synthesize a local session when no provider is
//     configured.
//   - Current / State: read the resolved session.
//   - Close: tear down the subscription and the resolver loop.
type SessionService interface {
	Start(ctx context.Context)
	Login(ctx context.Context, creds models.LoginCredentials) (*models.User, error)
	Logout(ctx context.Context) error
	RegisterIndividual(ctx context.Context, data models.RegisterIndividualData) (*models.User, error)
	RegisterOrganization(ctx context.Context, data models.RegisterOrganizationData) (*models.User, error)
	Current() *models.User
	State() SessionState
	RemoteActive() bool
	Close()
}

type eventKind int

const (
	// evResolve carries a provider notification (identity may be nil) or the
	// one-shot startup probe when no provider is configured.
	evResolve eventKind = iota
	// evSet installs the session produced by a successful login/registration.
	evSet
	// evClear is a logout.
	evClear
)

type sessionEvent struct {
	kind     eventKind
	identity *client.Identity
	user     *models.User
	token    string
	done     chan struct{}
}

// sessionService is the concrete SessionService. All state transitions flow
// through a single event queue consumed by one run-loop goroutine, so remote
// notifications and local mutations can never interleave mid-transition.
type sessionService struct {
	client client.Client // nil when the remote provider is not configured
	store  localstore.Repository
	log    logging.Logger

	events      chan sessionEvent
	quit        chan struct{}
	wg          sync.WaitGroup
	closeOnce   sync.Once
	unsubscribe func()

	mu      sync.RWMutex
	state   SessionState
	current *models.User
}

// NewSessionService constructs a resolver. Pass a nil client when the remote
// provider is unconfigured; the resolver then runs in local-only mode.
func NewSessionService(c client.Client, store localstore.Repository, log logging.Logger) SessionService {
	return &sessionService{
		client: c,
		store:  store,
		log:    log.With("component", "session"),
		events: make(chan sessionEvent, 16),
		quit:   make(chan struct{}),
		state:  StateLoading,
	}
}

// Start launches the run loop and wires the resolution source: the provider
// subscription (which fires immediately with the current state) or a single
// probe of the persisted record.
func (s *sessionService) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)

	if s.client != nil {
		s.unsubscribe = s.client.Subscribe(func(id *client.Identity) {
			s.enqueue(sessionEvent{kind: evResolve, identity: id})
		})
		return
	}
	s.enqueue(sessionEvent{kind: evResolve})
}

func (s *sessionService) run(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case e := <-s.events:
			s.apply(ctx, e)
			if e.done != nil {
				close(e.done)
			}
		case <-s.quit:
			return
		}
	}
}

func (s *sessionService) enqueue(e sessionEvent) {
	select {
	case s.events <- e:
	case <-s.quit:
	}
}

// dispatch enqueues an event and waits until the run loop has applied it, so
// callers observe their own mutation through Current immediately.
func (s *sessionService) dispatch(e sessionEvent) {
	e.done = make(chan struct{})
	s.enqueue(e)
	select {
	case <-e.done:
	case <-s.quit:
	}
}

func (s *sessionService) apply(ctx context.Context, e sessionEvent) {
	switch e.kind {
	case evResolve:
		if e.identity != nil {
			user := &models.User{UID: e.identity.UID, Email: e.identity.Email}
			s.persistSession(ctx, user, e.identity.Token)
			s.setCurrent(user, StateAuthenticated)
			return
		}
		// No remote identity: the persisted record keeps the session alive.
		// Existence of both the user record and the token marker is the only
		// check; there is no TTL.
		if user := s.readPersisted(ctx); user != nil {
			s.setCurrent(user, StateAuthenticated)
			return
		}
		s.setCurrent(nil, StateAnonymous)

	case evSet:
		s.persistSession(ctx, e.user, e.token)
		s.setCurrent(e.user, StateAuthenticated)

	case evClear:
		err := s.store.DeleteAll(ctx,
			common.StorageKeyUser, common.StorageKeyToken, common.StorageKeyFavorites)
		if err != nil {
			s.log.Warn(ctx, "failed to clear persisted records", "error", err)
		}
		s.setCurrent(nil, StateAnonymous)
	}
}

// persistSession mirrors the session into the persisted record
// (write-through). The backend token is stored alongside it so the next
// process start can restore the remote session; sessions without one (demo
// bypass, local-only mode) get a freshly minted local marker instead.
// Failures are logged, not propagated: the in-memory session stays
// authoritative.
func (s *sessionService) persistSession(ctx context.Context, user *models.User, token string) {
	data, err := json.Marshal(user)
	if err != nil {
		s.log.Error(ctx, "failed to serialize session", "error", err)
		return
	}
	if err := s.store.Set(ctx, common.StorageKeyUser, data); err != nil {
		s.log.Warn(ctx, "failed to persist session record", "error", err)
	}
	if token == "" {
		token, err = MintTokenMarker(user.UID, user.Email)
		if err != nil {
			s.log.Error(ctx, "failed to mint token marker", "error", err)
			return
		}
	}
	if err := s.store.Set(ctx, common.StorageKeyToken, []byte(token)); err != nil {
		s.log.Warn(ctx, "failed to persist session token", "error", err)
	}
}

func (s *sessionService) readPersisted(ctx context.Context) *models.User {
	data, err := s.store.Get(ctx, common.StorageKeyUser)
	if err != nil || data == nil {
		return nil
	}
	token, err := s.store.Get(ctx, common.StorageKeyToken)
	if err != nil || token == nil {
		return nil
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Warn(ctx, "discarding unreadable session record", "error", err)
		return nil
	}
	return &user
}

func (s *sessionService) setCurrent(user *models.User, state SessionState) {
	s.mu.Lock()
	s.current = user
	s.state = state
	s.mu.Unlock()
}

// Current returns the resolved session, or nil while loading or anonymous.
func (s *sessionService) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *sessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// RemoteActive reports whether a remote session provider is configured.
func (s *sessionService) RemoteActive() bool {
	return s.client != nil
}

// cannedSession is the fixed demo session, also used for local-only logins.
func cannedSession(email string) *models.User {
	return &models.User{
		UID:       "1",
		Email:     email,
		Name:      "João",
		Surname:   "Silva",
		Type:      models.PersonTypeIndividual,
		CPF:       "123.456.789-00",
		Telephone: "(11) 98765-4321",
	}
}

// Login exchanges credentials for a session.
//
// With a remote provider: delegate to it; when it rejects, the fixed demo
// account still logs in with a canned session (deliberate demo-mode bypass).
// Without one: synthesize the canned session for any email, no password
// verification.
func (s *sessionService) Login(ctx context.Context, creds models.LoginCredentials) (*models.User, error) {
	if s.client == nil {
		user := cannedSession(creds.Email)
		s.dispatch(sessionEvent{kind: evSet, user: user})
		return user, nil
	}

	id, err := s.client.Authenticate(ctx, creds.Email, creds.Password)
	if err != nil {
		if creds.Email == common.DemoEmail && creds.Password == common.DemoPassword {
			s.log.Info(ctx, "remote login rejected, applying demo-account bypass")
			user := cannedSession(creds.Email)
			s.dispatch(sessionEvent{kind: evSet, user: user})
			return user, nil
		}
		return nil, fmt.Errorf("falha ao realizar login: %w", err)
	}

	user := &models.User{UID: id.UID, Email: id.Email}
	s.dispatch(sessionEvent{kind: evSet, user: user, token: id.Token})
	return user, nil
}

// Logout signs out of the remote provider (best-effort: failures are logged,
// not propagated) and always clears the persisted user, token and favorites
// records along with the in-memory session.
func (s *sessionService) Logout(ctx context.Context) error {
	if s.client != nil {
		if err := s.client.SignOut(ctx); err != nil {
			s.log.Warn(ctx, "remote sign-out failed", "error", err)
		}
	}
	s.dispatch(sessionEvent{kind: evClear})
	return nil
}

func validateRegistration(name, email, password, confirm string, policyAccepted bool) error {
	if name == "" || email == "" || password == "" {
		return common.ErrorMissingFields
	}
	if password != confirm {
		return common.ErrorPasswordMismatch
	}
	if !policyAccepted {
		return common.ErrorPolicyNotAccepted
	}
	return nil
}

// RegisterIndividual creates an individual account: a remote identity plus a
// profile document with the submitted fields. When the profile write fails
// after the identity was created there is no rollback; the error is surfaced
// and the identity persists remotely.
func (s *sessionService) RegisterIndividual(ctx context.Context, data models.RegisterIndividualData) (*models.User, error) {
	if err := validateRegistration(data.Name, data.Email, data.Password, data.ConfirmPassword, data.PolicyAccepted); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     data.Email,
		Name:      data.Name,
		Surname:   data.Surname,
		Type:      models.PersonTypeIndividual,
		CPF:       data.CPF,
		Telephone: data.Telephone,
	}

	if s.client == nil {
		user.UID = localUID()
		s.dispatch(sessionEvent{kind: evSet, user: user})
		return user, nil
	}

	id, err := s.client.CreateIdentity(ctx, data.Email, data.Password)
	if err != nil {
		return nil, fmt.Errorf("falha ao realizar cadastro: %w", err)
	}

	profile := map[string]any{
		"nome":           data.Name,
		"sobrenome":      data.Surname,
		"tipo":           string(models.PersonTypeIndividual),
		"cpf":            data.CPF,
		"telefone":       data.Telephone,
		"endereco":       data.Address,
		"dataNascimento": data.BirthDate,
		"estadoCivil":    data.MaritalStatus,
		"publicaEditais": data.PublishesNotices,
	}
	if err := s.client.SaveProfile(ctx, id.UID, profile); err != nil {
		return nil, fmt.Errorf("falha ao realizar cadastro: %w", err)
	}

	user.UID = id.UID
	if id.Email != "" {
		user.Email = id.Email
	}
	s.dispatch(sessionEvent{kind: evSet, user: user, token: id.Token})
	return user, nil
}

// RegisterOrganization is the organization variant: same flow, extended
// profile document, person-type juridica.
func (s *sessionService) RegisterOrganization(ctx context.Context, data models.RegisterOrganizationData) (*models.User, error) {
	if err := validateRegistration(data.Name, data.Email, data.Password, data.ConfirmPassword, data.PolicyAccepted); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     data.Email,
		Name:      data.Name,
		Surname:   data.Surname,
		Type:      models.PersonTypeOrganization,
		CNPJ:      data.CNPJ,
		Telephone: data.Telephone,
	}

	if s.client == nil {
		user.UID = localUID()
		s.dispatch(sessionEvent{kind: evSet, user: user})
		return user, nil
	}

	id, err := s.client.CreateIdentity(ctx, data.Email, data.Password)
	if err != nil {
		return nil, fmt.Errorf("falha ao realizar cadastro: %w", err)
	}

	profile := map[string]any{
		"nome":              data.Name,
		"sobrenome":         data.Surname,
		"tipo":              string(models.PersonTypeOrganization),
		"cnpj":              data.CNPJ,
		"nomeInstituicao":   data.OrganizationName,
		"inscricaoEstadual": data.StateRegistration,
		"telefone":          data.Telephone,
		"endereco":          data.Address,
		"dataNascimento":    data.BirthDate,
		"estadoCivil":       data.MaritalStatus,
		"publicaEditais":    data.PublishesNotices,
	}
	if err := s.client.SaveProfile(ctx, id.UID, profile); err != nil {
		return nil, fmt.Errorf("falha ao realizar cadastro: %w", err)
	}

	user.UID = id.UID
	if id.Email != "" {
		user.Email = id.Email
	}
	s.dispatch(sessionEvent{kind: evSet, user: user, token: id.Token})
	return user, nil
}

// localUID synthesizes a time-based identifier for local-only registrations.
func localUID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Close cancels the provider subscription and stops the run loop.
func (s *sessionService) Close() {
	s.closeOnce.Do(func() {
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
		close(s.quit)
		s.wg.Wait()
	})
}
