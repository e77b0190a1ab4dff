//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"rentacar-api/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustPeriod(t *testing.T, start, end time.Time) reservation.Period {
	t.Helper()
	p, err := reservation.NewPeriod(start, end)
	require.NoError(t, err)
	return p
}

func TestPeriodOverlaps(t *testing.T) {
	t.Run("境界日の共有は重複", func(t *testing.T) {
		// [10/10, 10/16] and [10/16, 10/20] share one day, both ends inclusive.
		a := mustPeriod(t, day(2026, 10, 10), day(2026, 10, 16))
		b := mustPeriod(t, day(2026, 10, 16), day(2026, 10, 20))

		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("隣接する期間は重複しない", func(t *testing.T) {
		a := mustPeriod(t, day(2026, 10, 10), day(2026, 10, 13))
		b := mustPeriod(t, day(2026, 10, 14), day(2026, 10, 20))

		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("完全包含は重複", func(t *testing.T) {
		outer := mustPeriod(t, day(2026, 10, 1), day(2026, 10, 31))
		inner := mustPeriod(t, day(2026, 10, 10), day(2026, 10, 12))

		assert.True(t, outer.Overlaps(inner))
		assert.True(t, inner.Overlaps(outer))
	})

	t.Run("単日予約同士", func(t *testing.T) {
		a := mustPeriod(t, day(2026, 10, 10), day(2026, 10, 10))
		b := mustPeriod(t, day(2026, 10, 10), day(2026, 10, 10))
		c := mustPeriod(t, day(2026, 10, 11), day(2026, 10, 11))

		assert.True(t, a.Overlaps(b))
		assert.False(t, a.Overlaps(c))
	})

	t.Run("対称性", func(t *testing.T) {
		cases := []struct {
			name string
			a, b reservation.Period
		}{
			{"partial", mustPeriod(t, day(2026, 3, 1), day(2026, 3, 10)), mustPeriod(t, day(2026, 3, 5), day(2026, 3, 15))},
			{"disjoint", mustPeriod(t, day(2026, 3, 1), day(2026, 3, 10)), mustPeriod(t, day(2026, 4, 1), day(2026, 4, 10))},
			{"touching", mustPeriod(t, day(2026, 3, 1), day(2026, 3, 10)), mustPeriod(t, day(2026, 3, 10), day(2026, 3, 20))},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.a.Overlaps(tc.b), tc.b.Overlaps(tc.a))
			})
		}
	})
}

func TestConflictingCarIDs(t *testing.T) {
	carA := uuid.New()
	carB := uuid.New()
	carC := uuid.New()

	spans := []reservation.Span{
		{ID: uuid.New(), UserID: uuid.New(), CarID: carA, Period: mustPeriod(t, day(2026, 10, 10), day(2026, 10, 16))},
		{ID: uuid.New(), UserID: uuid.New(), CarID: carB, Period: mustPeriod(t, day(2026, 10, 1), day(2026, 10, 5))},
		{ID: uuid.New(), UserID: uuid.New(), CarID: carC, Period: mustPeriod(t, day(2026, 10, 16), day(2026, 10, 20))},
	}

	t.Run("ウィンドウに重なる車だけを返す", func(t *testing.T) {
		window := mustPeriod(t, day(2026, 10, 14), day(2026, 10, 17))
		conflicting := reservation.ConflictingCarIDs(spans, window)

		assert.Contains(t, conflicting, carA)
		assert.Contains(t, conflicting, carC)
		assert.NotContains(t, conflicting, carB)
	})

	t.Run("重複なしなら空", func(t *testing.T) {
		window := mustPeriod(t, day(2026, 11, 1), day(2026, 11, 5))
		assert.Empty(t, reservation.ConflictingCarIDs(spans, window))
	})
}

func TestFindConflict(t *testing.T) {
	existing := reservation.Span{
		ID:     uuid.New(),
		UserID: uuid.New(),
		CarID:  uuid.New(),
		Period: mustPeriod(t, day(2026, 10, 10), day(2026, 10, 16)),
	}

	t.Run("重複する予約を返す", func(t *testing.T) {
		window := mustPeriod(t, day(2026, 10, 16), day(2026, 10, 20))
		conflict, found := reservation.FindConflict([]reservation.Span{existing}, window)

		require.True(t, found)
		assert.Equal(t, existing.ID, conflict.ID)
	})

	t.Run("別の車でも同一ユーザーの重複は衝突", func(t *testing.T) {
		// The user gate does not care which car is booked.
		other := existing
		other.CarID = uuid.New()
		window := mustPeriod(t, day(2026, 10, 12), day(2026, 10, 14))

		_, found := reservation.FindConflict([]reservation.Span{other}, window)
		assert.True(t, found)
	})

	t.Run("重複がなければ見つからない", func(t *testing.T) {
		window := mustPeriod(t, day(2026, 10, 17), day(2026, 10, 20))
		conflict, found := reservation.FindConflict([]reservation.Span{existing}, window)

		assert.False(t, found)
		assert.Nil(t, conflict)
	})

	t.Run("空のスパン一覧", func(t *testing.T) {
		window := mustPeriod(t, day(2026, 10, 1), day(2026, 10, 31))
		_, found := reservation.FindConflict(nil, window)
		assert.False(t, found)
	})
}
