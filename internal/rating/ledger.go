// Package rating records per-user destination ratings and aggregates them.
package rating

import (
	"errors"
	"slices"
)

// Bounds of an accepted rating, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

var (
	// ErrInvalidTarget means the destination was not in the caller's most
	// recent recommendation batch.
	ErrInvalidTarget = errors.New("destination was not in the last recommendations")
	// ErrInvalidRating means the value is outside [MinRating, MaxRating].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Ledger maps user ID to destination ID to rating. Entries are added or
// overwritten, never removed.
type Ledger map[string]map[string]int

// Record stores userID's rating for destID, replacing any earlier one. Only
// destinations listed in recent may be rated.
func (l Ledger) Record(userID, destID string, value int, recent []string) error {
	if !slices.Contains(recent, destID) {
		return ErrInvalidTarget
	}
	if value < MinRating || value > MaxRating {
		return ErrInvalidRating
	}

	ratings := l[userID]
	if ratings == nil {
		ratings = make(map[string]int)
		l[userID] = ratings
	}
	ratings[destID] = value
	return nil
}

// UserRating returns userID's own rating of destID.
func (l Ledger) UserRating(userID, destID string) (int, bool) {
	v, ok := l[userID][destID]
	return v, ok
}

// Average returns the mean rating of destID across all users and the number
// of users who rated it. The mean is 0 when count is 0.
func (l Ledger) Average(destID string) (mean float64, count int) {
	sum := 0
	for _, ratings := range l {
		if v, ok := ratings[destID]; ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return float64(sum) / float64(count), count
}
