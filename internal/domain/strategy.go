package domain

import "fmt"

type StrategyKind string

const (
	StrategyKind_TakeProfit        StrategyKind = "take_profit"
	StrategyKind_StopLoss          StrategyKind = "stop_loss"
	StrategyKind_DollarCostAverage StrategyKind = "dollar_cost_average"
)

// StrategyKinds is the order strategies are evaluated in each day
var StrategyKinds = []StrategyKind{
	StrategyKind_TakeProfit,
	StrategyKind_StopLoss,
	StrategyKind_DollarCostAverage,
}

// Strategy is one of TakeProfit, StopLoss or DollarCostAverage
type Strategy interface {
	Kind() StrategyKind
	Validate() error
}

type TakeProfit struct {
	Threshold float64
}

func (TakeProfit) Kind() StrategyKind { return StrategyKind_TakeProfit }

func (s TakeProfit) Validate() error {
	if s.Threshold <= 0 {
		return fmt.Errorf("%w: take profit threshold must be > 0, got %f", ErrInvalidStrategy, s.Threshold)
	}
	return nil
}

type StopLoss struct {
	Threshold float64
}

func (StopLoss) Kind() StrategyKind { return StrategyKind_StopLoss }

func (s StopLoss) Validate() error {
	if s.Threshold <= 0 || s.Threshold >= 1 {
		return fmt.Errorf("%w: stop loss threshold must be between 0 and 1, got %f", ErrInvalidStrategy, s.Threshold)
	}
	return nil
}

type DollarCostAverage struct {
	Shares       int64
	IntervalDays int
}

func (DollarCostAverage) Kind() StrategyKind { return StrategyKind_DollarCostAverage }

func (s DollarCostAverage) Validate() error {
	if s.Shares <= 0 {
		return fmt.Errorf("%w: dollar cost average shares must be > 0, got %d", ErrInvalidStrategy, s.Shares)
	}
	if s.IntervalDays <= 0 {
		return fmt.Errorf("%w: dollar cost average interval must be > 0, got %d", ErrInvalidStrategy, s.IntervalDays)
	}
	return nil
}

// StrategyParams is the loosely typed form strategies arrive in over
// the api and cli. zero values fall back to the defaults
type StrategyParams struct {
	Threshold    float64 `json:"threshold"`
	Shares       int64   `json:"shares"`
	IntervalDays int     `json:"intervalDays"`
}

func NewStrategy(kind StrategyKind, params StrategyParams) (Strategy, error) {
	var s Strategy
	switch kind {
	case StrategyKind_TakeProfit:
		t := TakeProfit{Threshold: params.Threshold}
		if t.Threshold == 0 {
			t.Threshold = 0.2
		}
		s = t
	case StrategyKind_StopLoss:
		t := StopLoss{Threshold: params.Threshold}
		if t.Threshold == 0 {
			t.Threshold = 0.1
		}
		s = t
	case StrategyKind_DollarCostAverage:
		t := DollarCostAverage{Shares: params.Shares, IntervalDays: params.IntervalDays}
		if t.Shares == 0 {
			t.Shares = 5
		}
		if t.IntervalDays == 0 {
			t.IntervalDays = 7
		}
		s = t
	default:
		return nil, fmt.Errorf("%w: unknown strategy kind %q", ErrInvalidStrategy, kind)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
