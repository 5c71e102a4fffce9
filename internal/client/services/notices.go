package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/editaisbr/editais/internal/client/client"
	"github.com/editaisbr/editais/internal/client/models"
	"github.com/editaisbr/editais/internal/client/repositories/localstore"
	"github.com/editaisbr/editais/internal/common"
	"github.com/editaisbr/editais/internal/logging"
)

// NoticeDraft carries the publish-wizard form fields.
type NoticeDraft struct {
	Title       string
	Number      string
	Type        string
	Organ       string
	SectionName string
	Value       string
	OpeningDate string
	ClosingDate string
	Description string
}

// NoticeService owns the merged, filterable notice listing plus the
// notice-mutating operations (favorites, view counters, publishing).
//
// Contract:
//   - Load: fetch remote published notices, union with the fixed samples,
//     de-duplicate by id (remote wins). Never fails: a fetch error degrades
//     to samples only.
//   - SetFilters / Visible / Notices: client-side filtering of the loaded
//     list; recomputed on every filter or list change.
//   - ToggleFavorite / Favorites: symmetric-difference favorites with
//     write-through persistence (browser-wide local key, or remote per-user
//     records when enabled).
//   - IncrementViews: skip sample ids; remote read-modify-write plus an
//     optimistic in-memory bump regardless of the remote outcome.
//   - Publish / SaveDraft: create a remote notice document for the session
//     user.
//   - MyNotices: the session user's own notices with status preserved.
type NoticeService interface {
	Load(ctx context.Context)
	SetFilters(f models.SearchFilters)
	Filters() models.SearchFilters
	Visible() []models.Notice
	Notices() []models.Notice
	ToggleFavorite(ctx context.Context, id string) (favorite bool, err error)
	Favorites(ctx context.Context) ([]string, error)
	IncrementViews(ctx context.Context, id string)
	Publish(ctx context.Context, draft NoticeDraft) (string, error)
	SaveDraft(ctx context.Context, draft NoticeDraft) (string, error)
	MyNotices(ctx context.Context) ([]models.Notice, error)
}

type noticeService struct {
	client           client.Client // nil in local-only mode
	store            localstore.Repository
	session          SessionService
	log              logging.Logger
	perUserFavorites bool

	mu      sync.Mutex
	notices []models.Notice
	filters models.SearchFilters
	visible []models.Notice
}

// NewNoticeService constructs a NoticeService. perUserFavorites switches the
// favorites store from the single local key to remote per-user records.
func NewNoticeService(c client.Client, store localstore.Repository, session SessionService, log logging.Logger, perUserFavorites bool) NoticeService {
	return &noticeService{
		client:           c,
		store:            store,
		session:          session,
		log:              log.With("component", "notices"),
		perUserFavorites: perUserFavorites,
	}
}

// Load builds the merged listing. The remote list is filtered to published
// documents and normalized first, then the fixed samples are appended;
// duplicate identifiers keep the remote entry. Any fetch failure falls back
// to samples only, so the listing is never left empty.
func (s *noticeService) Load(ctx context.Context) {
	var remote []models.Notice
	if s.client != nil {
		rows, err := s.client.ListNotices(ctx)
		if err != nil {
			s.log.Warn(ctx, "remote notice fetch failed, falling back to samples", "error", err)
		} else {
			for _, r := range rows {
				if r.Status == models.RemoteStatusPublished {
					remote = append(remote, models.NoticeFromRemote(r))
				}
			}
			s.log.Info(ctx, "remote notices loaded", "count", len(remote))
		}
	}

	samples := SampleNotices()
	merged := make([]models.Notice, 0, len(remote)+len(samples))
	seen := make(map[string]struct{}, len(remote)+len(samples))
	for _, n := range append(remote, samples...) {
		if _, ok := seen[n.ID]; ok {
			continue
		}
		seen[n.ID] = struct{}{}
		merged = append(merged, n)
	}

	s.mu.Lock()
	s.notices = merged
	s.recomputeLocked()
	s.mu.Unlock()
}

func (s *noticeService) SetFilters(f models.SearchFilters) {
	s.mu.Lock()
	s.filters = f
	s.recomputeLocked()
	s.mu.Unlock()
}

func (s *noticeService) Filters() models.SearchFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// recomputeLocked rebuilds the visible slice. It always copies, so the bump
// loops in IncrementViews never touch the same element twice through aliased
// backing arrays.
func (s *noticeService) recomputeLocked() {
	if s.filters.IsZero() {
		s.visible = append([]models.Notice(nil), s.notices...)
		return
	}
	visible := make([]models.Notice, 0, len(s.notices))
	for _, n := range s.notices {
		if s.filters.Matches(n) {
			visible = append(visible, n)
		}
	}
	s.visible = visible
}

func (s *noticeService) Visible() []models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notice, len(s.visible))
	copy(out, s.visible)
	return out
}

func (s *noticeService) Notices() []models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

// Favorites returns the current favorite notice ids.
func (s *noticeService) Favorites(ctx context.Context) ([]string, error) {
	if s.perUserFavorites && s.client != nil {
		user := s.session.Current()
		if user == nil {
			return nil, common.ErrorNotAuthenticated
		}
		favorites, err := s.client.ListUserFavorites(ctx, user.UID)
		if err != nil {
			return nil, fmt.Errorf("failed to list favorites: %w", err)
		}
		return favorites, nil
	}
	return s.readLocalFavorites(ctx)
}

// ToggleFavorite flips membership of id in the favorite set and writes the
// set through immediately. Returns whether the id is a favorite afterwards.
func (s *noticeService) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	if s.perUserFavorites && s.client != nil {
		return s.toggleRemoteFavorite(ctx, id)
	}

	favorites, err := s.readLocalFavorites(ctx)
	if err != nil {
		return false, err
	}

	next := make([]string, 0, len(favorites)+1)
	removed := false
	for _, f := range favorites {
		if f == id {
			removed = true
			continue
		}
		next = append(next, f)
	}
	if !removed {
		next = append(next, id)
	}

	data, err := json.Marshal(next)
	if err != nil {
		return false, fmt.Errorf("failed to serialize favorites: %w", err)
	}
	if err := s.store.Set(ctx, common.StorageKeyFavorites, data); err != nil {
		return false, fmt.Errorf("failed to persist favorites: %w", err)
	}
	return !removed, nil
}

func (s *noticeService) toggleRemoteFavorite(ctx context.Context, id string) (bool, error) {
	user := s.session.Current()
	if user == nil {
		return false, common.ErrorNotAuthenticated
	}
	favorites, err := s.client.ListUserFavorites(ctx, user.UID)
	if err != nil {
		return false, fmt.Errorf("failed to list favorites: %w", err)
	}
	for _, f := range favorites {
		if f == id {
			if err := s.client.RemoveFavorite(ctx, user.UID, id); err != nil {
				return false, fmt.Errorf("failed to remove favorite: %w", err)
			}
			return false, nil
		}
	}
	if err := s.client.SaveFavorite(ctx, user.UID, id); err != nil {
		return false, fmt.Errorf("failed to save favorite: %w", err)
	}
	return true, nil
}

func (s *noticeService) readLocalFavorites(ctx context.Context) ([]string, error) {
	data, err := s.store.Get(ctx, common.StorageKeyFavorites)
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	if data == nil {
		return []string{}, nil
	}
	var favorites []string
	if err := json.Unmarshal(data, &favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return favorites, nil
}

// IncrementViews advances the view counter of a notice. Sample ids are
// skipped entirely. The remote update is a read-modify-write of the views
// field; its failure is logged and swallowed, and the in-memory copies are
// bumped optimistically either way so the displayed counter advances
// immediately.
func (s *noticeService) IncrementViews(ctx context.Context, id string) {
	if isSampleID(id) {
		return
	}

	if s.client != nil {
		remote, err := s.client.GetNotice(ctx, id)
		if err != nil {
			s.log.Warn(ctx, "failed to read view count", "id", id, "error", err)
		} else if err := s.client.UpdateNoticeFields(ctx, id, map[string]any{"views": remote.Views + 1}); err != nil {
			s.log.Warn(ctx, "failed to write view count", "id", id, "error", err)
		}
	}

	s.mu.Lock()
	for i := range s.notices {
		if s.notices[i].ID == id {
			s.notices[i].Views++
		}
	}
	for i := range s.visible {
		if s.visible[i].ID == id {
			s.visible[i].Views++
		}
	}
	s.mu.Unlock()
}

func (d NoticeDraft) fields(uid string) map[string]any {
	return map[string]any{
		"title":       d.Title,
		"number":      d.Number,
		"type":        d.Type,
		"organ":       d.Organ,
		"section":     d.SectionName,
		"value":       d.Value,
		"openingDate": d.OpeningDate,
		"closingDate": d.ClosingDate,
		"description": d.Description,
		"userId":      uid,
	}
}

// Publish validates the required fields and creates a published notice
// document for the session user. The server assigns the identifier.
func (s *noticeService) Publish(ctx context.Context, draft NoticeDraft) (string, error) {
	user := s.session.Current()
	if user == nil {
		return "", common.ErrorNotAuthenticated
	}
	if draft.Title == "" || draft.Organ == "" || draft.Description == "" {
		return "", common.ErrorMissingFields
	}
	if s.client == nil {
		return "", fmt.Errorf("falha ao publicar edital: %w", client.ErrNotConfigured)
	}

	fields := draft.fields(user.UID)
	fields["status"] = models.RemoteStatusPublished
	fields["publishedAt"] = time.Now().Format(time.RFC3339)
	fields["views"] = 0

	id, err := s.client.CreateNotice(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("falha ao publicar edital: %w", err)
	}
	return id, nil
}

// SaveDraft stores the wizard state as a draft document. Drafts skip the
// required-field validation; only a session is needed.
func (s *noticeService) SaveDraft(ctx context.Context, draft NoticeDraft) (string, error) {
	user := s.session.Current()
	if user == nil {
		return "", common.ErrorNotAuthenticated
	}
	if s.client == nil {
		return "", fmt.Errorf("falha ao salvar rascunho: %w", client.ErrNotConfigured)
	}

	fields := draft.fields(user.UID)
	fields["status"] = "draft"
	fields["views"] = 0

	id, err := s.client.CreateNotice(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("falha ao salvar rascunho: %w", err)
	}
	return id, nil
}

func statusFromRemote(status string) models.NoticeStatus {
	switch status {
	case models.RemoteStatusPublished:
		return models.StatusPublished
	case "draft":
		return models.StatusDraft
	case "scheduled":
		return models.StatusScheduled
	default:
		return models.StatusPending
	}
}

// MyNotices lists the session user's own notices, drafts included, with the
// remote status preserved. A remote failure degrades to an empty list.
func (s *noticeService) MyNotices(ctx context.Context) ([]models.Notice, error) {
	user := s.session.Current()
	if user == nil {
		return nil, common.ErrorNotAuthenticated
	}
	if s.client == nil {
		return []models.Notice{}, nil
	}

	rows, err := s.client.ListUserNotices(ctx, user.UID)
	if err != nil {
		s.log.Warn(ctx, "failed to list own notices", "error", err)
		return []models.Notice{}, nil
	}

	out := make([]models.Notice, 0, len(rows))
	for _, r := range rows {
		n := models.NoticeFromRemote(r)
		n.Status = statusFromRemote(r.Status)
		out = append(out, n)
	}
	return out, nil
}
