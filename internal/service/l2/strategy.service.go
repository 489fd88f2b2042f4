package l2_service

import (
	"context"
	"fmt"
	"tradesim/internal/domain"
	"tradesim/internal/logger"

	"github.com/shopspring/decimal"
)

// Trader executes signed share trades against a portfolio. positive
// amounts buy, negative amounts sell
type Trader interface {
	TradeStock(ctx context.Context, ticker string, amount int64) (domain.TradeOutcome, error)
}

type StrategyTrade struct {
	Ticker  string
	Kind    domain.StrategyKind
	Amount  int64
	Outcome domain.TradeOutcome
}

// StrategyEngine holds the active strategies per ticker. each
// (ticker, kind) pair is either inactive or active with one set of params
type StrategyEngine interface {
	Activate(ticker string, strategy domain.Strategy) error
	Deactivate(ticker string, kind domain.StrategyKind)
	Active(ticker string) []domain.Strategy
	Apply(ctx context.Context, h domain.Holding, trader Trader, dayIndex int) ([]StrategyTrade, error)
}

type strategyEngineHandler struct {
	strategies map[string]map[domain.StrategyKind]domain.Strategy
}

func NewStrategyEngine() StrategyEngine {
	return &strategyEngineHandler{
		strategies: map[string]map[domain.StrategyKind]domain.Strategy{},
	}
}

func (h *strategyEngineHandler) Activate(ticker string, strategy domain.Strategy) error {
	if ticker == "" {
		return fmt.Errorf("%w: empty ticker", domain.ErrUnknownTicker)
	}
	switch strategy.(type) {
	case domain.TakeProfit, domain.StopLoss, domain.DollarCostAverage:
	default:
		return fmt.Errorf("%w: unsupported strategy %T", domain.ErrInvalidStrategy, strategy)
	}
	if err := strategy.Validate(); err != nil {
		return err
	}

	if _, ok := h.strategies[ticker]; !ok {
		h.strategies[ticker] = map[domain.StrategyKind]domain.Strategy{}
	}
	h.strategies[ticker][strategy.Kind()] = strategy
	return nil
}

func (h *strategyEngineHandler) Deactivate(ticker string, kind domain.StrategyKind) {
	if byKind, ok := h.strategies[ticker]; ok {
		delete(byKind, kind)
		if len(byKind) == 0 {
			delete(h.strategies, ticker)
		}
	}
}

// Active lists the ticker's strategies in evaluation order
func (h *strategyEngineHandler) Active(ticker string) []domain.Strategy {
	out := []domain.Strategy{}
	byKind := h.strategies[ticker]
	for _, kind := range domain.StrategyKinds {
		if s, ok := byKind[kind]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Apply evaluates the holding's strategies for one day. at most one sell
// and one buy are issued; insufficient cash or shares is not an error
func (h *strategyEngineHandler) Apply(ctx context.Context, holding domain.Holding, trader Trader, dayIndex int) ([]StrategyTrade, error) {
	log := logger.FromContext(ctx)
	trades := []StrategyTrade{}
	sold := false
	bought := false

	for _, s := range h.Active(holding.Ticker) {
		var amount int64
		switch strategy := s.(type) {
		case domain.TakeProfit:
			if sold || !shouldTakeProfit(holding, strategy) {
				continue
			}
			amount = -holding.NumberOfShares
		case domain.StopLoss:
			if sold || !shouldStopLoss(holding, strategy) {
				continue
			}
			amount = -holding.NumberOfShares
		case domain.DollarCostAverage:
			if bought || dayIndex%strategy.IntervalDays != 0 {
				continue
			}
			amount = strategy.Shares
		default:
			return nil, fmt.Errorf("%w: unsupported strategy %T", domain.ErrInvalidStrategy, s)
		}

		outcome, err := trader.TradeStock(ctx, holding.Ticker, amount)
		if err != nil {
			return nil, fmt.Errorf("failed to apply %s to %s: %w", s.Kind(), holding.Ticker, err)
		}
		if amount < 0 {
			sold = true
		} else {
			bought = true
		}

		if outcome.Ok() {
			log.Debugf("%s traded %d shares of %s", s.Kind(), amount, holding.Ticker)
		} else {
			log.Debugf("%s skipped %d shares of %s: %s", s.Kind(), amount, holding.Ticker, outcome)
		}
		trades = append(trades, StrategyTrade{
			Ticker:  holding.Ticker,
			Kind:    s.Kind(),
			Amount:  amount,
			Outcome: outcome,
		})
	}

	return trades, nil
}

func shouldTakeProfit(h domain.Holding, s domain.TakeProfit) bool {
	if h.NumberOfShares <= 0 || !h.OpeningValue.IsPositive() {
		return false
	}
	target := h.OpeningValue.Mul(decimal.NewFromFloat(1 + s.Threshold))
	return h.CurrentValue.GreaterThanOrEqual(target)
}

func shouldStopLoss(h domain.Holding, s domain.StopLoss) bool {
	if h.NumberOfShares <= 0 || !h.OpeningValue.IsPositive() {
		return false
	}
	floor := h.OpeningValue.Mul(decimal.NewFromFloat(1 - s.Threshold))
	return h.CurrentValue.LessThanOrEqual(floor)
}
