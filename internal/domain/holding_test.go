package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestHolding_Setters(t *testing.T) {
	t.Run("negative values are rejected", func(t *testing.T) {
		h := NewHolding("AAPL", "Apple Inc.")
		require.NoError(t, h.Initialise(decimal.NewFromInt(100), 1.5))

		err := h.SetNumberOfShares(-1)
		require.True(t, errors.Is(err, ErrInvalidValue))
		err = h.SetCashInvested(decimal.NewFromInt(-1))
		require.True(t, errors.Is(err, ErrInvalidValue))
		err = h.SetCashWithdrawn(decimal.NewFromInt(-1))
		require.True(t, errors.Is(err, ErrInvalidValue))
		err = h.SetCurrentValue(decimal.NewFromInt(-1))
		require.True(t, errors.Is(err, ErrInvalidValue))

		require.Equal(t, int64(0), h.NumberOfShares)
		require.True(t, h.CurrentValue.Equal(decimal.NewFromInt(100)))
	})

	t.Run("cash profit follows cash flows", func(t *testing.T) {
		h := NewHolding("AAPL", "Apple Inc.")
		require.NoError(t, h.SetCashInvested(decimal.NewFromInt(1000)))
		require.NoError(t, h.SetCashWithdrawn(decimal.NewFromInt(1300)))
		require.True(t, h.CashProfit.Equal(decimal.NewFromInt(300)))
	})
}

func TestHolding_Initialise(t *testing.T) {
	h := NewHolding("AAPL", "Apple Inc.")
	require.NoError(t, h.SetNumberOfShares(10))
	require.NoError(t, h.SetCashInvested(decimal.NewFromInt(500)))

	require.NoError(t, h.Initialise(decimal.NewFromInt(100), 2))

	require.Equal(t, int64(0), h.NumberOfShares)
	require.True(t, h.CashInvested.IsZero())
	require.True(t, h.CurrentValue.Equal(decimal.NewFromInt(100)))
	require.Equal(t, float64(2), h.CurrentPerformance)
	require.Equal(t, float64(2), h.OpeningPerformance)

	err := h.Initialise(decimal.NewFromInt(-5), 0)
	require.True(t, errors.Is(err, ErrInvalidValue))
}

func TestHolding_DailyUpdate(t *testing.T) {
	t.Run("performance against opening value", func(t *testing.T) {
		h := NewHolding("AAPL", "Apple Inc.")
		require.NoError(t, h.Initialise(decimal.NewFromInt(100), 0))
		require.NoError(t, h.SetNumberOfShares(10))
		require.NoError(t, h.SetCashInvested(decimal.NewFromInt(1000)))

		require.NoError(t, h.DailyUpdate(decimal.NewFromInt(110)))

		require.InDelta(t, 10.0, h.CurrentPerformance, 1e-9)
		require.True(t, h.InvestmentValue.Equal(decimal.NewFromInt(1100)))
		// (1100 + -1000) / 1000
		require.InDelta(t, 10.0, h.InvestmentPerformance, 1e-9)
	})

	t.Run("zero opening value and zero cash invested", func(t *testing.T) {
		h := NewHolding("AAPL", "Apple Inc.")
		require.NoError(t, h.Initialise(decimal.Zero, 0))
		require.NoError(t, h.DailyUpdate(decimal.NewFromInt(50)))

		require.Equal(t, float64(0), h.CurrentPerformance)
		require.Equal(t, float64(0), h.InvestmentPerformance)
	})

	t.Run("same price twice gives the same state", func(t *testing.T) {
		h := NewHolding("AAPL", "Apple Inc.")
		require.NoError(t, h.Initialise(decimal.NewFromInt(100), 0))
		require.NoError(t, h.SetNumberOfShares(3))
		require.NoError(t, h.SetCashInvested(decimal.NewFromInt(300)))

		require.NoError(t, h.DailyUpdate(decimal.NewFromInt(95)))
		first := *h
		require.NoError(t, h.DailyUpdate(decimal.NewFromInt(95)))

		require.Equal(t, first, *h)
	})
}
