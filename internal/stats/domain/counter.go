package domain

import "time"

// HistogramSize is the number of day buckets kept per counter.
const HistogramSize = 10

// CounterKind selects which per-user activity counter an operation targets.
type CounterKind string

const (
	KindReview  CounterKind = "review"
	KindNewCard CounterKind = "new_card"
)

// CounterState is the persisted form of one rolling histogram: the serialized
// bucket array and the date it was last aged or incremented.
type CounterState struct {
	Raw        string
	LastUpdate *time.Time
}

// StreakState is the persisted consecutive-day streak for one user.
type StreakState struct {
	Count      int
	LastUpdate *time.Time
}
