//go:build unit

package booking_test

import (
	"testing"
	"time"

	"staybook/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayRange(t *testing.T) {
	t.Run("multi-night stay enumerates every date inclusive of both ends", func(t *testing.T) {
		stay, err := booking.NewStayRange(date(2026, 9, 1), date(2026, 9, 3))
		require.NoError(t, err)

		expected := []time.Time{
			date(2026, 9, 1),
			date(2026, 9, 2),
			date(2026, 9, 3),
		}
		if diff := cmp.Diff(expected, stay.Dates()); diff != "" {
			t.Errorf("Dates mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("same-day stay is one night", func(t *testing.T) {
		stay, err := booking.NewStayRange(date(2026, 9, 1), date(2026, 9, 1))
		require.NoError(t, err)

		assert.Equal(t, 1, stay.Nights())
		assert.Len(t, stay.Dates(), 1)
		assert.Equal(t, date(2026, 9, 1), stay.Dates()[0])
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2026, 9, 3), date(2026, 9, 1))
		require.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("time-of-day is truncated before comparison", func(t *testing.T) {
		checkIn := time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC)
		checkOut := time.Date(2026, 9, 2, 0, 15, 0, 0, time.UTC)

		stay, err := booking.NewStayRange(checkIn, checkOut)
		require.NoError(t, err)

		assert.Equal(t, date(2026, 9, 1), stay.CheckIn())
		assert.Equal(t, date(2026, 9, 2), stay.CheckOut())
		assert.Equal(t, 2, stay.Nights())
	})

	t.Run("month boundary is crossed correctly", func(t *testing.T) {
		stay, err := booking.NewStayRange(date(2026, 8, 30), date(2026, 9, 2))
		require.NoError(t, err)

		dates := stay.Dates()
		require.Len(t, dates, 4)
		assert.Equal(t, date(2026, 8, 31), dates[1])
		assert.Equal(t, date(2026, 9, 1), dates[2])
	})
}

func TestMoney(t *testing.T) {
	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		require.ErrorIs(t, err, booking.ErrNegativePrice)
	})

	t.Run("zero is a valid amount", func(t *testing.T) {
		m, err := booking.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
	})

	t.Run("add and multiply accumulate a stay total", func(t *testing.T) {
		nightly, err := booking.NewMoney(12500)
		require.NoError(t, err)

		// two rooms over three nights
		var total booking.Money
		for range 3 {
			total = total.Add(nightly.MultiplyBy(2))
		}
		assert.Equal(t, int64(75000), total.Cents())
	})
}

func TestSpecialRequests(t *testing.T) {
	assert.True(t, booking.NewSpecialRequests("").IsEmpty())
	assert.False(t, booking.NewSpecialRequests("late check-in").IsEmpty())
	assert.Equal(t, "late check-in", booking.NewSpecialRequests("late check-in").String())
}
