package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestHolding(t *testing.T, price int64) *Holding {
	h := NewHolding("TEST", "Test Corp")
	require.NoError(t, h.Initialise(decimal.NewFromInt(price), 0))
	return h
}

func TestNewLedger(t *testing.T) {
	_, err := NewLedger(decimal.Zero)
	require.True(t, errors.Is(err, ErrInvalidValue))

	_, err = NewLedger(decimal.NewFromInt(-10))
	require.True(t, errors.Is(err, ErrInvalidValue))

	l, err := NewLedger(decimal.NewFromInt(10000))
	require.NoError(t, err)
	require.True(t, l.CurrentBalance.Equal(decimal.NewFromInt(10000)))
}

func TestLedger_Purchase(t *testing.T) {
	t.Run("buy 10 at 100", func(t *testing.T) {
		l, err := NewLedger(decimal.NewFromInt(10000))
		require.NoError(t, err)
		h := newTestHolding(t, 100)

		outcome, err := l.Purchase(h, 10)
		require.NoError(t, err)
		require.True(t, outcome.Ok())

		require.True(t, l.CurrentBalance.Equal(decimal.NewFromInt(9000)))
		require.True(t, l.TotalInvestedBalance.Equal(decimal.NewFromInt(1000)))
		require.True(t, l.TotalCashProfit.Equal(decimal.NewFromInt(-1000)))
		require.Equal(t, int64(10), h.NumberOfShares)
		require.True(t, h.CashInvested.Equal(decimal.NewFromInt(1000)))
		require.True(t, h.CashProfit.Equal(h.CashWithdrawn.Sub(h.CashInvested)))
		require.True(t, h.InvestmentValue.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("insufficient balance changes nothing", func(t *testing.T) {
		l, err := NewLedger(decimal.NewFromInt(500))
		require.NoError(t, err)
		h := newTestHolding(t, 100)
		before, holdingBefore := *l, *h

		outcome, err := l.Purchase(h, 6)
		require.NoError(t, err)
		require.Equal(t, TradeOutcome_InsufficientBalance, outcome)
		require.Equal(t, before, *l)
		require.Equal(t, holdingBefore, *h)
	})

	t.Run("exact balance is allowed", func(t *testing.T) {
		l, err := NewLedger(decimal.NewFromInt(500))
		require.NoError(t, err)
		h := newTestHolding(t, 100)

		outcome, err := l.Purchase(h, 5)
		require.NoError(t, err)
		require.True(t, outcome.Ok())
		require.True(t, l.CurrentBalance.IsZero())
	})

	t.Run("non-positive amount is a validation error", func(t *testing.T) {
		l, err := NewLedger(decimal.NewFromInt(500))
		require.NoError(t, err)
		h := newTestHolding(t, 100)

		_, err = l.Purchase(h, 0)
		require.True(t, errors.Is(err, ErrInvalidValue))
		_, err = l.Purchase(h, -3)
		require.True(t, errors.Is(err, ErrInvalidValue))
	})
}

func TestLedger_Sell(t *testing.T) {
	t.Run("take profit scenario", func(t *testing.T) {
		l, err := NewLedger(decimal.NewFromInt(10000))
		require.NoError(t, err)
		h := newTestHolding(t, 100)
		_, err = l.Purchase(h, 10)
		require.NoError(t, err)

		require.NoError(t, h.DailyUpdate(decimal.NewFromInt(130)))
		outcome, err := l.Sell(h, 10)
		require.NoError(t, err)
		require.True(t, outcome.Ok())

		require.True(t, l.CurrentBalance.Equal(decimal.NewFromInt(10300)))
		require.True(t, l.TotalInvestedBalance.IsZero())
		require.True(t, l.TotalCashProfit.Equal(decimal.NewFromInt(300)))
		require.Equal(t, int64(0), h.NumberOfShares)
		require.True(t, h.CashWithdrawn.Equal(decimal.NewFromInt(1300)))
		require.True(t, h.CashProfit.Equal(decimal.NewFromInt(300)))
	})

	t.Run("partial sale releases proportional cost basis", func(t *testing.T) {
		l, err := NewLedger(decimal.NewFromInt(10000))
		require.NoError(t, err)
		h := newTestHolding(t, 100)
		_, err = l.Purchase(h, 4)
		require.NoError(t, err)

		require.NoError(t, h.DailyUpdate(decimal.NewFromInt(50)))
		outcome, err := l.Sell(h, 1)
		require.NoError(t, err)
		require.True(t, outcome.Ok())

		require.True(t, l.CurrentBalance.Equal(decimal.NewFromInt(9650)))
		require.True(t, l.TotalInvestedBalance.Equal(decimal.NewFromInt(300)))
		require.Equal(t, int64(3), h.NumberOfShares)
	})

	t.Run("selling more than owned fails without changes", func(t *testing.T) {
		l, err := NewLedger(decimal.NewFromInt(10000))
		require.NoError(t, err)
		h := newTestHolding(t, 100)
		_, err = l.Purchase(h, 3)
		require.NoError(t, err)
		before, holdingBefore := *l, *h

		outcome, err := l.Sell(h, 5)
		require.NoError(t, err)
		require.Equal(t, TradeOutcome_InsufficientShares, outcome)
		require.Equal(t, before, *l)
		require.Equal(t, holdingBefore, *h)
	})
}

func TestLedger_TradeProperties(t *testing.T) {
	l, err := NewLedger(decimal.NewFromInt(100000))
	require.NoError(t, err)
	h := newTestHolding(t, 37)

	prices := []int64{37, 41, 29, 33, 52, 48}
	amounts := []int64{7, -3, 12, -9, 4, -11}
	for i, amount := range amounts {
		require.NoError(t, h.DailyUpdate(decimal.NewFromInt(prices[i])))
		balanceBefore := l.CurrentBalance
		sharesBefore := h.NumberOfShares

		var outcome TradeOutcome
		if amount > 0 {
			outcome, err = l.Purchase(h, amount)
		} else {
			outcome, err = l.Sell(h, -amount)
		}
		require.NoError(t, err)
		require.True(t, outcome.Ok())

		price := h.CurrentValue.Mul(decimal.NewFromInt(amount))
		require.True(t, balanceBefore.Sub(price).Equal(l.CurrentBalance))
		require.Equal(t, sharesBefore+amount, h.NumberOfShares)
		require.True(t, h.CashProfit.Equal(h.CashWithdrawn.Sub(h.CashInvested)))
		require.False(t, l.TotalInvestedBalance.IsNegative())
	}
}

func TestLedger_ResetAndRevalue(t *testing.T) {
	l, err := NewLedger(decimal.NewFromInt(10000))
	require.NoError(t, err)
	a := newTestHolding(t, 100)
	b := newTestHolding(t, 50)
	_, err = l.Purchase(a, 10)
	require.NoError(t, err)
	_, err = l.Purchase(b, 20)
	require.NoError(t, err)

	require.NoError(t, a.DailyUpdate(decimal.NewFromInt(110)))
	l.Revalue([]*Holding{a, b})

	require.True(t, l.PortfolioValue.Equal(decimal.NewFromInt(2100)))
	require.InDelta(t, 5.0, l.PortfolioPerformance, 1e-9)
	require.True(t, l.TotalValue([]*Holding{a, b}).Equal(decimal.NewFromInt(10100)))

	l.ResetBalance()
	require.True(t, l.CurrentBalance.Equal(decimal.NewFromInt(10000)))
	require.True(t, l.TotalInvestedBalance.IsZero())
	require.True(t, l.PortfolioValue.IsZero())
	require.Equal(t, float64(0), l.PortfolioPerformance)
}
