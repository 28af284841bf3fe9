// Package dashboard computes the admin dashboard aggregates. Everything is
// derived from the in-memory store; no network calls are made here.
package dashboard

import (
	"time"

	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/store"
)

// Counts is the headline card row: one total per managed collection.
type Counts struct {
	Projects     int `json:"projects"`
	Services     int `json:"services"`
	Testimonials int `json:"testimonials"`
	Articles     int `json:"articles"`
	Jobs         int `json:"jobs"`
	Applications int `json:"applications"`
	Inquiries    int `json:"inquiries"`
}

// MonthCount is one bucket in a per-month chart, keyed "2026-03".
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Service computes dashboard aggregates from the store.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// Option configures the dashboard service.
type Option func(*Service)

// WithClock overrides the clock used to anchor month buckets.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// New constructs a dashboard service over the given store.
func New(st *store.Store, opts ...Option) *Service {
	s := &Service{store: st, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Counts returns the per-collection totals.
func (s *Service) Counts() Counts {
	return Counts{
		Projects:     len(s.store.Projects()),
		Services:     len(s.store.Services()),
		Testimonials: len(s.store.Testimonials()),
		Articles:     len(s.store.News()),
		Jobs:         len(s.store.Jobs()),
		Applications: len(s.store.Applications()),
		Inquiries:    len(s.store.Inquiries()),
	}
}

// ApplicationsByStatus buckets applications across every pipeline stage.
// Stages with no applications are present with a zero count so charts render
// a stable axis.
func (s *Service) ApplicationsByStatus() map[domain.ApplicationStatus]int {
	out := map[domain.ApplicationStatus]int{
		domain.ApplicationPending:     0,
		domain.ApplicationReviewed:    0,
		domain.ApplicationShortlisted: 0,
		domain.ApplicationRejected:    0,
		domain.ApplicationHired:       0,
	}
	for _, application := range s.store.Applications() {
		if _, known := out[application.Status]; known {
			out[application.Status]++
		}
	}
	return out
}

// ProjectsByStatus buckets projects across the three phases.
func (s *Service) ProjectsByStatus() map[domain.ProjectStatus]int {
	out := map[domain.ProjectStatus]int{
		domain.ProjectOngoing:   0,
		domain.ProjectCompleted: 0,
		domain.ProjectUpcoming:  0,
	}
	for _, project := range s.store.Projects() {
		if _, known := out[project.Status]; known {
			out[project.Status]++
		}
	}
	return out
}

// InquiriesByMonth buckets inquiries received per month over the trailing
// window, oldest bucket first, zero-filled.
func (s *Service) InquiriesByMonth(months int) []MonthCount {
	if months <= 0 {
		months = 6
	}

	now := s.now().UTC()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	buckets := make(map[string]int, months)
	order := make([]string, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0).Format("2006-01")
		buckets[month] = 0
		order = append(order, month)
	}

	for _, inquiry := range s.store.Inquiries() {
		month := inquiry.CreatedAt.UTC().Format("2006-01")
		if _, in := buckets[month]; in {
			buckets[month]++
		}
	}

	out := make([]MonthCount, 0, months)
	for _, month := range order {
		out = append(out, MonthCount{Month: month, Count: buckets[month]})
	}
	return out
}

// RecentActivity returns the newest activity entries, capped at limit.
func (s *Service) RecentActivity(limit int) []*store.ActivityEntry {
	activity := s.store.Activity()
	if limit > 0 && len(activity) > limit {
		activity = activity[:limit]
	}
	return activity
}
