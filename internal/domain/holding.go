package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Holding is the per-ticker position and valuation state of one
// simulation run. trade fields are only changed by the Ledger, daily
// fields only by DailyUpdate
type Holding struct {
	Ticker string
	Name   string

	OpeningValue       decimal.Decimal
	OpeningPerformance float64

	NumberOfShares int64
	CashInvested   decimal.Decimal
	CashWithdrawn  decimal.Decimal
	CashProfit     decimal.Decimal

	CurrentValue          decimal.Decimal
	CurrentPerformance    float64
	InvestmentValue       decimal.Decimal
	InvestmentPerformance float64

	// cash committed to the shares currently held
	costBasis decimal.Decimal
}

func NewHolding(ticker, name string) *Holding {
	return &Holding{
		Ticker: ticker,
		Name:   name,
	}
}

// Initialise zeroes trade state and sets fresh opening values for a
// new run
func (h *Holding) Initialise(openingValue decimal.Decimal, openingPerformance float64) error {
	if openingValue.IsNegative() {
		return fmt.Errorf("%w: opening value for %s cannot be negative, got %s", ErrInvalidValue, h.Ticker, openingValue)
	}
	h.OpeningValue = openingValue
	h.OpeningPerformance = openingPerformance
	h.NumberOfShares = 0
	h.CashInvested = decimal.Zero
	h.CashWithdrawn = decimal.Zero
	h.CashProfit = decimal.Zero
	h.costBasis = decimal.Zero
	h.CurrentValue = openingValue
	h.InvestmentValue = decimal.Zero
	h.InvestmentPerformance = 0
	h.CurrentPerformance = openingPerformance
	return nil
}

// DailyUpdate moves the holding to a new day's price
func (h *Holding) DailyUpdate(currentValue decimal.Decimal) error {
	if err := h.SetCurrentValue(currentValue); err != nil {
		return err
	}
	h.CurrentPerformance = percentOf(h.CurrentValue.Sub(h.OpeningValue), h.OpeningValue)
	h.recompute()
	return nil
}

func (h *Holding) SetCurrentValue(v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: current value for %s cannot be negative, got %s", ErrInvalidValue, h.Ticker, v)
	}
	h.CurrentValue = v
	return nil
}

func (h *Holding) SetNumberOfShares(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: number of shares for %s cannot be negative, got %d", ErrInvalidValue, h.Ticker, n)
	}
	h.NumberOfShares = n
	h.recompute()
	return nil
}

func (h *Holding) SetCashInvested(v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: cash invested for %s cannot be negative, got %s", ErrInvalidValue, h.Ticker, v)
	}
	h.CashInvested = v
	h.recompute()
	return nil
}

func (h *Holding) SetCashWithdrawn(v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: cash withdrawn for %s cannot be negative, got %s", ErrInvalidValue, h.Ticker, v)
	}
	h.CashWithdrawn = v
	h.recompute()
	return nil
}

// recompute refreshes every field derived from shares, price and cash flows
func (h *Holding) recompute() {
	h.CashProfit = h.CashWithdrawn.Sub(h.CashInvested)
	h.InvestmentValue = h.CurrentValue.Mul(decimal.NewFromInt(h.NumberOfShares))
	h.InvestmentPerformance = percentOf(h.InvestmentValue.Add(h.CashProfit), h.CashInvested)
}

// percentOf returns n / d * 100, or 0 when d is zero
func percentOf(n, d decimal.Decimal) float64 {
	if d.IsZero() {
		return 0
	}
	return n.Div(d).Mul(hundred).InexactFloat64()
}
