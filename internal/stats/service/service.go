// Package service implements the per-user activity statistics: rolling daily
// histograms of review and new-card counts, and a consecutive-day streak.
// Calendar time is read through a DateProvider so aging is testable.
package service

import (
	"context"
	"time"

	"github.com/CasualJavaUser/FlashcardApi/internal/stats/domain"
)

// DateProvider supplies the current calendar date, normalized to midnight UTC.
type DateProvider interface {
	Today() time.Time
}

type systemDates struct{}

func (systemDates) Today() time.Time {
	return Midnight(time.Now())
}

// Midnight truncates t to its UTC calendar day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b. Both are expected to be
// midnight-normalized.
func daysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)).Hours() / 24)
}

type StatsService struct {
	repo  domain.Repository
	dates DateProvider
}

func NewStatsService(repo domain.Repository) *StatsService {
	return &StatsService{
		repo:  repo,
		dates: systemDates{},
	}
}

// WithDates replaces the date provider, for deterministic tests.
func (s *StatsService) WithDates(dates DateProvider) *StatsService {
	s.dates = dates
	return s
}

// GetStatistics returns the user's bucket array for the given counter kind,
// aging it first if at least one calendar day passed since the last touch.
// The aged state is persisted so index 0 again means "today".
func (s *StatsService) GetStatistics(ctx context.Context, userID int64, kind domain.CounterKind) ([]int, error) {
	var buckets []int

	err := s.repo.UpdateCounter(ctx, userID, kind, func(state *domain.CounterState) error {
		buckets = s.ageCounter(state)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buckets, nil
}

// IncrementCount ages the histogram if needed, then adds one to today's bucket.
func (s *StatsService) IncrementCount(ctx context.Context, userID int64, kind domain.CounterKind) error {
	return s.repo.UpdateCounter(ctx, userID, kind, func(state *domain.CounterState) error {
		buckets := s.ageCounter(state)
		buckets[0]++
		state.Raw = encodeBuckets(buckets)
		return nil
	})
}

func (s *StatsService) ageCounter(state *domain.CounterState) []int {
	today := s.dates.Today()
	buckets := decodeBuckets(state.Raw)

	if state.LastUpdate != nil {
		if offset := daysBetween(*state.LastUpdate, today); offset > 0 {
			buckets = age(buckets, offset)
		}
	}

	state.Raw = encodeBuckets(buckets)
	state.LastUpdate = &today

	return buckets
}

// GetDailyStreak returns the stored streak count, or 0 when the streak is
// broken (no recorded activity, or the last activity is more than one day old).
func (s *StatsService) GetDailyStreak(ctx context.Context, userID int64) (int, error) {
	state, err := s.repo.GetStreak(ctx, userID)
	if err != nil {
		return 0, err
	}

	if !s.streakActive(state.LastUpdate) {
		return 0, nil
	}

	return state.Count, nil
}

// UpdateDailyStreak records activity for today: a broken streak restarts at 1,
// the first activity of a new day increments, repeated activity on the same
// day is a no-op. The last-update date is always moved to today for this user.
func (s *StatsService) UpdateDailyStreak(ctx context.Context, userID int64) error {
	return s.repo.UpdateStreak(ctx, userID, func(state *domain.StreakState) error {
		today := s.dates.Today()

		switch {
		case !s.streakActive(state.LastUpdate):
			state.Count = 1
		case state.LastUpdate.Before(today):
			state.Count++
		}

		state.LastUpdate = &today

		return nil
	})
}

func (s *StatsService) streakActive(lastUpdate *time.Time) bool {
	if lastUpdate == nil {
		return false
	}

	return daysBetween(*lastUpdate, s.dates.Today()) <= 1
}
