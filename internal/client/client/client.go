package client

import (
	"context"

	"github.com/editaisbr/editais/internal/client/models"
)

// Identity is the minimal record the session provider exposes for an
// authenticated account. Token carries the backend session token backing the
// identity; it is empty for identities synthesized without one.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Token string `json:"-"`
}

// Client is the backend surface consumed by the services layer. All methods
// are attempted exactly once per invocation; no retries are performed.
type Client interface {
	Close() error

	// Session provider.
	CreateIdentity(ctx context.Context, email, password string) (*Identity, error)
	Authenticate(ctx context.Context, email, password string) (*Identity, error)
	SignOut(ctx context.Context) error

	// Subscribe registers fn for session-change notifications. fn fires
	// immediately with the current state and then on every transition, in
	// emission order. The returned function cancels the subscription.
	Subscribe(fn func(*Identity)) (unsubscribe func())

	// Profile documents (merge-update semantics).
	SaveProfile(ctx context.Context, uid string, fields map[string]any) error
	GetProfile(ctx context.Context, uid string) (map[string]any, error)

	// Notice documents.
	ListNotices(ctx context.Context) ([]models.RemoteNotice, error)
	ListUserNotices(ctx context.Context, uid string) ([]models.RemoteNotice, error)
	CreateNotice(ctx context.Context, fields map[string]any) (id string, err error)
	GetNotice(ctx context.Context, id string) (*models.RemoteNotice, error)
	UpdateNoticeFields(ctx context.Context, id string, fields map[string]any) error

	// Remote favorites (used when per-user favorites are enabled).
	SaveFavorite(ctx context.Context, uid, noticeID string) error
	RemoveFavorite(ctx context.Context, uid, noticeID string) error
	ListUserFavorites(ctx context.Context, uid string) ([]string, error)
}
