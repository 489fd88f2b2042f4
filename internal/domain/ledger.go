package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TradeOutcome string

const (
	TradeOutcome_Filled              TradeOutcome = "filled"
	TradeOutcome_InsufficientBalance TradeOutcome = "insufficient_balance"
	TradeOutcome_InsufficientShares  TradeOutcome = "insufficient_shares"
	TradeOutcome_NoOp                TradeOutcome = "no_op"
)

func (o TradeOutcome) Ok() bool {
	return o == TradeOutcome_Filled
}

// Ledger is the cash side of one simulation run
type Ledger struct {
	StartBalance         decimal.Decimal
	CurrentBalance       decimal.Decimal
	TotalInvestedBalance decimal.Decimal
	TotalCashProfit      decimal.Decimal
	PortfolioValue       decimal.Decimal
	PortfolioPerformance float64
}

func NewLedger(startBalance decimal.Decimal) (*Ledger, error) {
	if !startBalance.IsPositive() {
		return nil, fmt.Errorf("%w: start balance must be > 0, got %s", ErrInvalidValue, startBalance)
	}
	return &Ledger{
		StartBalance:   startBalance,
		CurrentBalance: startBalance,
	}, nil
}

func (l *Ledger) ResetBalance() {
	l.CurrentBalance = l.StartBalance
	l.TotalInvestedBalance = decimal.Zero
	l.TotalCashProfit = decimal.Zero
	l.PortfolioValue = decimal.Zero
	l.PortfolioPerformance = 0
}

func validateTrade(h *Holding, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: trade amount must be > 0, got %d", ErrInvalidValue, amount)
	}
	if !h.CurrentValue.IsPositive() {
		return fmt.Errorf("%w: cannot trade %s at price %s", ErrInvalidValue, h.Ticker, h.CurrentValue)
	}
	return nil
}

// Purchase buys amount shares of h at its current value. running out of
// cash is reported through the outcome and leaves everything untouched
func (l *Ledger) Purchase(h *Holding, amount int64) (TradeOutcome, error) {
	if err := validateTrade(h, amount); err != nil {
		return "", err
	}
	price := h.CurrentValue.Mul(decimal.NewFromInt(amount))
	if l.CurrentBalance.LessThan(price) {
		return TradeOutcome_InsufficientBalance, nil
	}

	// all checks are done above, nothing below can fail
	l.CurrentBalance = l.CurrentBalance.Sub(price)
	l.TotalInvestedBalance = l.TotalInvestedBalance.Add(price)
	l.TotalCashProfit = l.TotalCashProfit.Sub(price)
	h.CashInvested = h.CashInvested.Add(price)
	h.costBasis = h.costBasis.Add(price)
	h.NumberOfShares += amount
	h.recompute()

	return TradeOutcome_Filled, nil
}

// Sell sells amount shares of h at its current value. the invested
// balance is released by the sold shares' share of the open cost basis
func (l *Ledger) Sell(h *Holding, amount int64) (TradeOutcome, error) {
	if err := validateTrade(h, amount); err != nil {
		return "", err
	}
	if h.NumberOfShares < amount {
		return TradeOutcome_InsufficientShares, nil
	}
	price := h.CurrentValue.Mul(decimal.NewFromInt(amount))

	released := h.costBasis
	if amount < h.NumberOfShares {
		released = h.costBasis.Mul(decimal.NewFromInt(amount)).Div(decimal.NewFromInt(h.NumberOfShares))
	}
	newInvested := l.TotalInvestedBalance.Sub(released)
	if newInvested.IsNegative() {
		newInvested = decimal.Zero
	}

	l.CurrentBalance = l.CurrentBalance.Add(price)
	l.TotalInvestedBalance = newInvested
	l.TotalCashProfit = l.TotalCashProfit.Add(price)
	h.CashWithdrawn = h.CashWithdrawn.Add(price)
	h.costBasis = h.costBasis.Sub(released)
	h.NumberOfShares -= amount
	h.recompute()

	return TradeOutcome_Filled, nil
}

// Revalue recomputes portfolio value and performance from the holdings
func (l *Ledger) Revalue(holdings []*Holding) {
	value := decimal.Zero
	for _, h := range holdings {
		value = value.Add(h.InvestmentValue)
	}
	l.PortfolioValue = value
	l.PortfolioPerformance = percentOf(value.Sub(l.TotalInvestedBalance), l.TotalInvestedBalance)
}

// TotalValue is cash on hand plus the value of every holding
func (l *Ledger) TotalValue(holdings []*Holding) decimal.Decimal {
	total := l.CurrentBalance
	for _, h := range holdings {
		total = total.Add(h.InvestmentValue)
	}
	return total
}
