package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/editaisbr/editais/internal/client/client"
	"github.com/editaisbr/editais/internal/client/models"
	"github.com/editaisbr/editais/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// memStore is an in-memory localstore.Repository for service tests.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) DeleteAll(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *memStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = map[string][]byte{}
	return nil
}

func (m *memStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func identityOf(uid, email string) *client.Identity {
	return &client.Identity{UID: uid, Email: email}
}

// fakeClient is a configurable client.Client recording the calls made to it.
type fakeClient struct {
	mu sync.Mutex

	initial  *client.Identity // delivered immediately on Subscribe
	notify   func(*client.Identity)
	identity *client.Identity
	authErr  error

	createIdentityErr error
	createdEmail      string

	signOutErr error
	signedOut  bool

	profiles       map[string]map[string]any
	saveProfileErr error
	getProfileErr  error

	notices        []models.RemoteNotice
	listErr        error
	userNotices    []models.RemoteNotice
	listUserErr    error
	noticeByID     map[string]*models.RemoteNotice
	getNoticeErr   error
	updates        map[string]map[string]any
	createdNotice  map[string]any
	createNoticeID string
	createErr      error

	favorites    []string
	favoritesErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		profiles:   map[string]map[string]any{},
		noticeByID: map[string]*models.RemoteNotice{},
		updates:    map[string]map[string]any{},
	}
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) CreateIdentity(_ context.Context, email, _ string) (*client.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createIdentityErr != nil {
		return nil, f.createIdentityErr
	}
	f.createdEmail = email
	return &client.Identity{UID: "new-uid", Email: email}, nil
}

func (f *fakeClient) Authenticate(_ context.Context, email, _ string) (*client.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.authErr != nil {
		return nil, f.authErr
	}
	if f.identity != nil {
		return f.identity, nil
	}
	return &client.Identity{UID: "uid-" + email, Email: email}, nil
}

func (f *fakeClient) SignOut(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signedOut = true
	return f.signOutErr
}

func (f *fakeClient) Subscribe(fn func(*client.Identity)) func() {
	f.mu.Lock()
	f.notify = fn
	initial := f.initial
	f.mu.Unlock()
	fn(initial)
	return func() {
		f.mu.Lock()
		f.notify = nil
		f.mu.Unlock()
	}
}

func (f *fakeClient) emit(id *client.Identity) {
	f.mu.Lock()
	fn := f.notify
	f.mu.Unlock()
	if fn != nil {
		fn(id)
	}
}

func (f *fakeClient) SaveProfile(_ context.Context, uid string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveProfileErr != nil {
		return f.saveProfileErr
	}
	f.profiles[uid] = fields
	return nil
}

func (f *fakeClient) GetProfile(_ context.Context, uid string) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getProfileErr != nil {
		return nil, f.getProfileErr
	}
	p, ok := f.profiles[uid]
	if !ok {
		return nil, client.ErrNotFound
	}
	return p, nil
}

func (f *fakeClient) ListNotices(_ context.Context) ([]models.RemoteNotice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notices, f.listErr
}

func (f *fakeClient) ListUserNotices(_ context.Context, _ string) ([]models.RemoteNotice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userNotices, f.listUserErr
}

func (f *fakeClient) CreateNotice(_ context.Context, fields map[string]any) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.createdNotice = fields
	if f.createNoticeID == "" {
		return "generated-id", nil
	}
	return f.createNoticeID, nil
}

func (f *fakeClient) GetNotice(_ context.Context, id string) (*models.RemoteNotice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getNoticeErr != nil {
		return nil, f.getNoticeErr
	}
	n, ok := f.noticeByID[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return n, nil
}

func (f *fakeClient) UpdateNoticeFields(_ context.Context, id string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates[id] = fields
	return nil
}

func (f *fakeClient) SaveFavorite(_ context.Context, _, noticeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.favoritesErr != nil {
		return f.favoritesErr
	}
	f.favorites = append(f.favorites, noticeID)
	return nil
}

func (f *fakeClient) RemoveFavorite(_ context.Context, _, noticeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := f.favorites[:0]
	for _, id := range f.favorites {
		if id != noticeID {
			next = append(next, id)
		}
	}
	f.favorites = next
	return nil
}

func (f *fakeClient) ListUserFavorites(_ context.Context, _ string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.favoritesErr != nil {
		return nil, f.favoritesErr
	}
	out := make([]string, len(f.favorites))
	copy(out, f.favorites)
	return out, nil
}
