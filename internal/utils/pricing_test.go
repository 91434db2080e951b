package utils

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scooter-rental/internal/domain"
)

var (
	base         = time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	defaultPrice = decimal.RequireFromString("0.1")
)

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestSplitDuration(t *testing.T) {
	t.Run("Minutes only", func(t *testing.T) {
		dur, err := SplitDuration(base, base.Add(221*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(0), dur.Days)
		assert.Equal(t, int64(221), dur.Minutes)
	})

	t.Run("Day and minutes", func(t *testing.T) {
		dur, err := SplitDuration(base, base.Add(1460*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(1), dur.Days)
		assert.Equal(t, int64(20), dur.Minutes)
	})

	t.Run("Seconds are dropped", func(t *testing.T) {
		dur, err := SplitDuration(base, base.Add(10*time.Minute+59*time.Second))
		require.NoError(t, err)
		assert.Equal(t, int64(10), dur.Minutes)
	})

	t.Run("Zero duration", func(t *testing.T) {
		_, err := SplitDuration(base, base)
		assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	})

	t.Run("Negative duration", func(t *testing.T) {
		_, err := SplitDuration(base, base.Add(-time.Minute))
		assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	})
}

func TestCalculateRentalCost(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		price    string
		expected string
	}{
		{"Under daily cap", 149 * time.Minute, "0.1", "14.9"},
		{"Over daily cap", 221 * time.Minute, "0.1", "20"},
		{"Exactly daily cap", 200 * time.Minute, "0.1", "20"},
		{"Day and extra minutes", 1460 * time.Minute, "0.1", "22"},
		{"Two full days", 48 * time.Hour, "0.1", "40"},
		{"Days plus capped remainder", 3*24*time.Hour + 23*time.Hour, "0.1", "80"},
		{"Sub-minute rental is free", 30 * time.Second, "0.1", "0"},
		{"Seconds not rounded up", 9*time.Minute + 59*time.Second, "0.25", "2.25"},
		{"Expensive scooter", 5 * time.Minute, "2", "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := CalculateRentalCost(base, base.Add(tt.duration), decimal.RequireFromString(tt.price), DefaultDailyCap)
			require.NoError(t, err)
			assertDecimal(t, tt.expected, cost)
		})
	}

	t.Run("Invalid duration", func(t *testing.T) {
		_, err := CalculateRentalCost(base, base.Add(-2*time.Minute), defaultPrice, DefaultDailyCap)
		assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	})

	t.Run("Custom daily cap", func(t *testing.T) {
		cost, err := CalculateRentalCost(base, base.Add(25*time.Hour), defaultPrice, decimal.NewFromInt(5))
		require.NoError(t, err)
		assertDecimal(t, "10", cost) // 5 for the day + min(60 x 0.1, 5)
	})
}

func TestCalculateRentalCost_DaysAndRemainder(t *testing.T) {
	// cost = k x cap + min(r x price, cap) for k full days and r remainder minutes
	for k := int64(0); k <= 3; k++ {
		for _, r := range []int64{1, 59, 199, 200, 201, 1439} {
			d := time.Duration(k)*24*time.Hour + time.Duration(r)*time.Minute
			cost, err := CalculateRentalCost(base, base.Add(d), defaultPrice, DefaultDailyCap)
			require.NoError(t, err)

			minutes := defaultPrice.Mul(decimal.NewFromInt(r))
			expected := DefaultDailyCap.Mul(decimal.NewFromInt(k)).Add(decimal.Min(minutes, DefaultDailyCap))
			assert.True(t, expected.Equal(cost), "k=%d r=%d: expected %s, got %s", k, r, expected, cost)
		}
	}
}

func TestCalculateRentalCostWithBreakdown(t *testing.T) {
	breakdown, err := CalculateRentalCostWithBreakdown(base, base.Add(2*24*time.Hour+90*time.Minute), defaultPrice, DefaultDailyCap)
	require.NoError(t, err)

	expected := RentalCostBreakdown{
		FullDays:         2,
		RemainderMinutes: 90,
		DaysCost:         decimal.NewFromInt(40),
		MinutesCost:      decimal.NewFromInt(9),
		TotalCost:        decimal.NewFromInt(49),
	}
	opts := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(expected, breakdown, opts); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
}
