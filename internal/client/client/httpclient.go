package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/editaisbr/editais/internal/client/models"
	"github.com/editaisbr/editais/internal/common"
)

// HTTPClient talks to the backend's REST document-store and session API.
// It also acts as the session provider's notification hub: subscribers are
// notified after every Authenticate/CreateIdentity/SignOut transition, in
// registration order.
//
// No timeout is set on the underlying http.Client and no retries are
// attempted; every remote call runs exactly once per invocation.
type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client

	mu      sync.Mutex
	token   string
	current *Identity
	subs    []*subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(*Identity)
}

type authResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets a per-request timeout. The default is zero: no timeout
// is enforced and a hung remote call blocks its caller indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// NewHTTPClient constructs a client for the given backend endpoint.
// An empty base URL means the backend is not configured; callers treat the
// returned ErrNotConfigured as "run in local-only mode".
func NewHTTPClient(baseURL, apiKey string, opts ...Option) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, ErrNotConfigured
	}
	c := &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetToken installs a previously persisted session token, so the immediate
// notification on Subscribe can resolve the current identity.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) Close() error { return nil }

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	}

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set(common.AuthTokenHeaderName, "Bearer "+token)
	}
	return req, nil
}

// do executes the request and decodes the JSON response into out (when
// non-nil). Responses outside wantStatus are mapped to sentinel errors.
func (c *HTTPClient) do(req *http.Request, wantStatus int, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(err, 0)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return c.mapError(nil, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// mapError converts transport failures and HTTP statuses into the package
// sentinel errors, mirroring how status codes classify on the wire.
func (c *HTTPClient) mapError(err error, status int) error {
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return fmt.Errorf("%w: %v", ErrUnavailable, uerr.Err)
		}
		return err
	}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return fmt.Errorf("backend error: status %d", status)
	}
}

// ---- session provider ----

func (c *HTTPClient) CreateIdentity(ctx context.Context, email, password string) (*Identity, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/accounts",
		map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	var ar authResponse
	if err := c.do(req, http.StatusCreated, &ar); err != nil {
		return nil, err
	}

	id := &Identity{UID: ar.UID, Email: ar.Email, Token: ar.Token}
	c.setSession(ar.Token, id)
	return id, nil
}

func (c *HTTPClient) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/sessions",
		map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	var ar authResponse
	if err := c.do(req, http.StatusOK, &ar); err != nil {
		return nil, err
	}

	id := &Identity{UID: ar.UID, Email: ar.Email, Token: ar.Token}
	c.setSession(ar.Token, id)
	return id, nil
}

// SignOut invalidates the remote session. The local token and subscribers
// are cleared/notified even when the remote call fails, so the process
// never keeps using a session the user asked to end.
func (c *HTTPClient) SignOut(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/session", nil)
	if err != nil {
		return err
	}
	callErr := c.do(req, http.StatusNoContent, nil)

	c.setSession("", nil)
	return callErr
}

// setSession updates the held token/identity and notifies subscribers of
// the transition, in registration order.
func (c *HTTPClient) setSession(token string, id *Identity) {
	c.mu.Lock()
	c.token = token
	c.current = id
	subs := make([]*subscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(id)
	}
}

// resolveCurrent asks the backend who owns the installed token. A missing
// or rejected token resolves to nil (anonymous); so does an unreachable
// backend, letting the caller fall back to its local record.
func (c *HTTPClient) resolveCurrent(ctx context.Context) *Identity {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token == "" {
		return nil
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/session", nil)
	if err != nil {
		return nil
	}
	var id Identity
	if err := c.do(req, http.StatusOK, &id); err != nil {
		return nil
	}
	id.Token = token
	return &id
}

func (c *HTTPClient) Subscribe(fn func(*Identity)) func() {
	id := c.resolveCurrent(context.Background())

	c.mu.Lock()
	c.current = id
	c.nextSub++
	sub := &subscriber{id: c.nextSub, fn: fn}
	c.subs = append(c.subs, sub)
	c.mu.Unlock()

	// Immediate delivery with the current state.
	fn(id)

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == sub.id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// ---- document store: profiles ----

func (c *HTTPClient) SaveProfile(ctx context.Context, uid string, fields map[string]any) error {
	req, err := c.newRequest(ctx, http.MethodPatch, "/v1/documents/users/"+uid, fields)
	if err != nil {
		return err
	}
	return c.do(req, http.StatusOK, nil)
}

func (c *HTTPClient) GetProfile(ctx context.Context, uid string) (map[string]any, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/documents/users/"+uid, nil)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := c.do(req, http.StatusOK, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// ---- document store: notices ----

type documentsResponse struct {
	Documents []models.RemoteNotice `json:"documents"`
}

func (c *HTTPClient) ListNotices(ctx context.Context) ([]models.RemoteNotice, error) {
	req, err := c.newRequest(ctx, http.MethodGet,
		"/v1/documents/editais?orderBy=createdAt&direction=desc&limit=50", nil)
	if err != nil {
		return nil, err
	}
	var dr documentsResponse
	if err := c.do(req, http.StatusOK, &dr); err != nil {
		return nil, err
	}
	return dr.Documents, nil
}

func (c *HTTPClient) ListUserNotices(ctx context.Context, uid string) ([]models.RemoteNotice, error) {
	req, err := c.newRequest(ctx, http.MethodGet,
		"/v1/documents/editais?userId="+url.QueryEscape(uid)+"&orderBy=createdAt&direction=desc", nil)
	if err != nil {
		return nil, err
	}
	var dr documentsResponse
	if err := c.do(req, http.StatusOK, &dr); err != nil {
		return nil, err
	}
	return dr.Documents, nil
}

func (c *HTTPClient) CreateNotice(ctx context.Context, fields map[string]any) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/documents/editais", fields)
	if err != nil {
		return "", err
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := c.do(req, http.StatusCreated, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (c *HTTPClient) GetNotice(ctx context.Context, id string) (*models.RemoteNotice, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/documents/editais/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var n models.RemoteNotice
	if err := c.do(req, http.StatusOK, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *HTTPClient) UpdateNoticeFields(ctx context.Context, id string, fields map[string]any) error {
	req, err := c.newRequest(ctx, http.MethodPatch, "/v1/documents/editais/"+url.PathEscape(id), fields)
	if err != nil {
		return err
	}
	return c.do(req, http.StatusOK, nil)
}

// ---- document store: favorites ----

func favoriteDocID(uid, noticeID string) string {
	return uid + "_" + noticeID
}

func (c *HTTPClient) SaveFavorite(ctx context.Context, uid, noticeID string) error {
	req, err := c.newRequest(ctx, http.MethodPut,
		"/v1/documents/favorites/"+url.PathEscape(favoriteDocID(uid, noticeID)),
		map[string]string{"userId": uid, "editalId": noticeID})
	if err != nil {
		return err
	}
	return c.do(req, http.StatusOK, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, uid, noticeID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete,
		"/v1/documents/favorites/"+url.PathEscape(favoriteDocID(uid, noticeID)), nil)
	if err != nil {
		return err
	}
	return c.do(req, http.StatusNoContent, nil)
}

func (c *HTTPClient) ListUserFavorites(ctx context.Context, uid string) ([]string, error) {
	req, err := c.newRequest(ctx, http.MethodGet,
		"/v1/documents/favorites?userId="+url.QueryEscape(uid), nil)
	if err != nil {
		return nil, err
	}
	var dr struct {
		Documents []struct {
			EditalID string `json:"editalId"`
		} `json:"documents"`
	}
	if err := c.do(req, http.StatusOK, &dr); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(dr.Documents))
	for _, d := range dr.Documents {
		ids = append(ids, d.EditalID)
	}
	return ids, nil
}
