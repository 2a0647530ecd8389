package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/CasualJavaUser/FlashcardApi/internal/stats/domain"
	apperror "github.com/CasualJavaUser/FlashcardApi/internal/errors"
)

// DB is the subset of pgxpool.Pool the repository uses; pgxmock satisfies it
// in tests.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type counterColumns struct {
	value      string
	lastUpdate string
}

var columnsByKind = map[domain.CounterKind]counterColumns{
	domain.KindReview:  {value: "review_stats", lastUpdate: "last_review_count_update"},
	domain.KindNewCard: {value: "new_card_stats", lastUpdate: "last_new_card_count_update"},
}

type StatsRepository struct {
	db DB
}

func NewStatsRepository(db DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) GetStreak(ctx context.Context, userID int64) (*domain.StreakState, error) {
	query := `SELECT daily_streak, last_streak_update FROM users WHERE id = $1;`

	var state domain.StreakState
	var lastUpdate *time.Time

	err := r.db.QueryRow(ctx, query, userID).Scan(&state.Count, &lastUpdate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to get streak: %w", err)
	}

	state.LastUpdate = lastUpdate

	return &state, nil
}

// UpdateStreak runs mutate on the user's streak inside a transaction holding
// a row lock, then writes the result back. Only the acting user's row is
// touched.
func (r *StatsRepository) UpdateStreak(ctx context.Context, userID int64, mutate func(*domain.StreakState) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	query := `SELECT daily_streak, last_streak_update FROM users WHERE id = $1 FOR UPDATE;`

	var state domain.StreakState
	var lastUpdate *time.Time

	if err := tx.QueryRow(ctx, query, userID).Scan(&state.Count, &lastUpdate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.ErrUserNotFound
		}

		return fmt.Errorf("failed to lock streak row: %w", err)
	}

	state.LastUpdate = lastUpdate

	if err := mutate(&state); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE users SET daily_streak = $1, last_streak_update = $2 WHERE id = $3;`,
		state.Count, state.LastUpdate, userID)
	if err != nil {
		return fmt.Errorf("failed to update streak: %w", err)
	}

	return tx.Commit(ctx)
}

// UpdateCounter runs mutate on one of the user's histograms inside a
// transaction holding a row lock, then writes the result back.
func (r *StatsRepository) UpdateCounter(ctx context.Context, userID int64, kind domain.CounterKind, mutate func(*domain.CounterState) error) error {
	cols, ok := columnsByKind[kind]
	if !ok {
		return fmt.Errorf("unknown counter kind %q", kind)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	query := fmt.Sprintf(`SELECT %s, %s FROM users WHERE id = $1 FOR UPDATE;`, cols.value, cols.lastUpdate)

	var state domain.CounterState
	var lastUpdate *time.Time

	if err := tx.QueryRow(ctx, query, userID).Scan(&state.Raw, &lastUpdate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.ErrUserNotFound
		}

		return fmt.Errorf("failed to lock counter row: %w", err)
	}

	state.LastUpdate = lastUpdate

	if err := mutate(&state); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		fmt.Sprintf(`UPDATE users SET %s = $1, %s = $2 WHERE id = $3;`, cols.value, cols.lastUpdate),
		state.Raw, state.LastUpdate, userID)
	if err != nil {
		return fmt.Errorf("failed to update counter: %w", err)
	}

	return tx.Commit(ctx)
}

var _ domain.Repository = (*StatsRepository)(nil)
