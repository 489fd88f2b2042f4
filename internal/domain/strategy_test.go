package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStrategy(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := NewStrategy(StrategyKind_TakeProfit, StrategyParams{})
		require.NoError(t, err)
		require.Equal(t, TakeProfit{Threshold: 0.2}, s)

		s, err = NewStrategy(StrategyKind_StopLoss, StrategyParams{})
		require.NoError(t, err)
		require.Equal(t, StopLoss{Threshold: 0.1}, s)

		s, err = NewStrategy(StrategyKind_DollarCostAverage, StrategyParams{})
		require.NoError(t, err)
		require.Equal(t, DollarCostAverage{Shares: 5, IntervalDays: 7}, s)
	})

	t.Run("explicit params", func(t *testing.T) {
		s, err := NewStrategy(StrategyKind_DollarCostAverage, StrategyParams{Shares: 3, IntervalDays: 2})
		require.NoError(t, err)
		require.Equal(t, DollarCostAverage{Shares: 3, IntervalDays: 2}, s)
		require.Equal(t, StrategyKind_DollarCostAverage, s.Kind())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewStrategy("martingale", StrategyParams{})
		require.True(t, errors.Is(err, ErrInvalidStrategy))

		_, err = NewStrategy(StrategyKind_StopLoss, StrategyParams{Threshold: 1.5})
		require.True(t, errors.Is(err, ErrInvalidStrategy))

		_, err = NewStrategy(StrategyKind_TakeProfit, StrategyParams{Threshold: -0.1})
		require.True(t, errors.Is(err, ErrInvalidStrategy))

		_, err = NewStrategy(StrategyKind_DollarCostAverage, StrategyParams{Shares: -1})
		require.True(t, errors.Is(err, ErrInvalidStrategy))
	})
}
