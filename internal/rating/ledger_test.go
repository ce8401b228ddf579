package rating_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/travel-companion/internal/rating"
)

var recent = []string{"d1", "d4", "d7"}

func TestRecord_StoresRating(t *testing.T) {
	l := rating.Ledger{}
	require.NoError(t, l.Record("alice", "d4", 4, recent))

	v, ok := l.UserRating("alice", "d4")
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestRecord_LastWriteWins(t *testing.T) {
	l := rating.Ledger{}
	require.NoError(t, l.Record("alice", "d1", 5, recent))
	require.NoError(t, l.Record("alice", "d1", 3, recent))

	assert.Equal(t, map[string]int{"d1": 3}, l["alice"])
}

func TestRecord_InvalidTarget(t *testing.T) {
	l := rating.Ledger{}
	// d2 exists in the catalog but was not recommended.
	err := l.Record("alice", "d2", 4, recent)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rating.ErrInvalidTarget))
	assert.Empty(t, l)

	err = l.Record("alice", "d1", 4, nil)
	assert.True(t, errors.Is(err, rating.ErrInvalidTarget))
}

func TestRecord_InvalidRating(t *testing.T) {
	l := rating.Ledger{}
	for _, v := range []int{0, 6, -1} {
		err := l.Record("alice", "d1", v, recent)
		assert.True(t, errors.Is(err, rating.ErrInvalidRating), "value %d", v)
	}
	_, ok := l.UserRating("alice", "d1")
	assert.False(t, ok)
}

func TestRecord_TargetCheckedBeforeValue(t *testing.T) {
	l := rating.Ledger{}
	err := l.Record("alice", "d9", 9, recent)
	assert.True(t, errors.Is(err, rating.ErrInvalidTarget))
}

func TestRecord_SharesExistingUserMap(t *testing.T) {
	own := map[string]int{}
	l := rating.Ledger{"bob": own}
	require.NoError(t, l.Record("bob", "d7", 2, recent))
	assert.Equal(t, 2, own["d7"])
}

func TestAverage(t *testing.T) {
	l := rating.Ledger{
		"alice": {"d1": 5, "d4": 2},
		"bob":   {"d1": 2},
		"carol": {},
	}

	mean, count := l.Average("d1")
	assert.Equal(t, 2, count)
	assert.InDelta(t, 3.5, mean, 1e-9)

	mean, count = l.Average("d9")
	assert.Equal(t, 0, count)
	assert.Zero(t, mean)
}

func TestUserRating_UnknownUser(t *testing.T) {
	var l rating.Ledger
	_, ok := l.UserRating("nobody", "d1")
	assert.False(t, ok)
}
