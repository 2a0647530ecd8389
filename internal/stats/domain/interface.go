package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_stats_repository.go -package=mocks github.com/CasualJavaUser/FlashcardApi/internal/stats/domain Repository

// Repository gives the statistics engine atomic access to one user's
// counters. UpdateCounter and UpdateStreak run mutate inside a transaction
// holding a row lock on the user, so two racing operations on the same user
// serialize instead of losing updates. Mutate returning an error aborts the
// transaction.
type Repository interface {
	GetStreak(ctx context.Context, userID int64) (*StreakState, error)
	UpdateStreak(ctx context.Context, userID int64, mutate func(*StreakState) error) error
	UpdateCounter(ctx context.Context, userID int64, kind CounterKind, mutate func(*CounterState) error) error
}
