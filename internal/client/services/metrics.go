package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/editaisbr/editais/internal/client/client"
	"github.com/editaisbr/editais/internal/common"
	"github.com/editaisbr/editais/internal/logging"
)

// DailyEngagement is one point of the last-7-days engagement series.
type DailyEngagement struct {
	Date      string
	Views     int
	Favorites int
}

// UserMetrics aggregates activity of the session user's notices.
type UserMetrics struct {
	TotalNotices   int
	TotalFavorites int
	TotalViews     int
	AverageViews   int
	EngagementRate string
	Last7Days      []DailyEngagement
}

// MetricsService computes the profile-dashboard metrics. Any remote failure
// degrades to zero-valued metrics instead of an error.
type MetricsService interface {
	Collect(ctx context.Context) (*UserMetrics, error)
}

type metricsService struct {
	client  client.Client // nil in local-only mode
	session SessionService
	log     logging.Logger
}

func NewMetricsService(c client.Client, session SessionService, log logging.Logger) MetricsService {
	return &metricsService{client: c, session: session, log: log.With("component", "metrics")}
}

var weekdayShortPtBR = [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

// Collect returns the metrics of the current session user, or
// common.ErrorNotAuthenticated when no session is active.
func (s *metricsService) Collect(ctx context.Context) (*UserMetrics, error) {
	user := s.session.Current()
	if user == nil {
		return nil, common.ErrorNotAuthenticated
	}
	if s.client == nil {
		return zeroMetrics(), nil
	}

	notices, err := s.client.ListUserNotices(ctx, user.UID)
	if err != nil {
		s.log.Warn(ctx, "failed to collect metrics", "error", err)
		return zeroMetrics(), nil
	}
	favorites, err := s.client.ListUserFavorites(ctx, user.UID)
	if err != nil {
		s.log.Warn(ctx, "failed to collect metrics", "error", err)
		return zeroMetrics(), nil
	}

	totalViews := 0
	for _, n := range notices {
		totalViews += n.Views
	}

	m := &UserMetrics{
		TotalNotices:   len(notices),
		TotalFavorites: len(favorites),
		TotalViews:     totalViews,
		EngagementRate: "0",
		Last7Days:      last7Days(time.Now()),
	}
	if len(notices) > 0 {
		m.AverageViews = int(float64(totalViews)/float64(len(notices)) + 0.5)
		m.EngagementRate = fmt.Sprintf("%.1f", float64(len(favorites))/float64(len(notices))*100)
	}
	return m, nil
}

// last7Days builds the engagement series ending today. The per-day numbers
// are synthetic placeholders until real engagement tracking exists
// server-side, matching the dashboard's current behavior.
func last7Days(now time.Time) []DailyEngagement {
	series := make([]DailyEngagement, 0, 7)
	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		series = append(series, DailyEngagement{
			Date:      weekdayShortPtBR[int(d.Weekday())],
			Views:     rand.Intn(100) + 20,
			Favorites: rand.Intn(10) + 2,
		})
	}
	return series
}

func zeroMetrics() *UserMetrics {
	return &UserMetrics{EngagementRate: "0", Last7Days: []DailyEngagement{}}
}
