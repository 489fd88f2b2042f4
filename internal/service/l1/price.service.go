package l1_service

import (
	"context"
	"fmt"
	"sync"
	"time"
	"tradesim/internal/db/models/postgres/public/model"
	"tradesim/internal/domain"
	"tradesim/internal/repository"
	"tradesim/internal/util"

	"github.com/shopspring/decimal"
)

/**

behavior - when i ask for a price on a date, return the row for that date
or the most recent trading day before it, and say whether it was
approximated. only fail with ErrNoPriceData when nothing earlier exists

rows are cached per (symbol, requested date) since a run asks for the
same dates over and over when it loops

*/

type PriceService interface {
	OpenValue(ctx context.Context, symbol string, date time.Time) (*domain.PriceQuote, error)
	CloseValue(ctx context.Context, symbol string, date time.Time) (*domain.PriceQuote, error)
	TradingDays(ctx context.Context, start, end time.Time) ([]time.Time, error)
	EarliestDate(ctx context.Context) (time.Time, error)
	LatestDate(ctx context.Context) (time.Time, error)
	DatesInBand(ctx context.Context, symbol string, low, high decimal.Decimal, before time.Time) ([]time.Time, error)
	TrailingPerformance(ctx context.Context, symbol string, date time.Time, windowDays int) (float64, error)
	Tickers(ctx context.Context) ([]domain.Ticker, error)
}

type priceServiceHandler struct {
	HistoricalPriceRepository repository.HistoricalPriceRepository
	TickerRepository          repository.TickerRepository

	mu    *sync.RWMutex
	cache map[string]map[string]model.HistoricalPrice
}

func NewPriceService(historicalPriceRepository repository.HistoricalPriceRepository, tickerRepository repository.TickerRepository) PriceService {
	return priceServiceHandler{
		HistoricalPriceRepository: historicalPriceRepository,
		TickerRepository:          tickerRepository,
		mu:                        &sync.RWMutex{},
		cache:                     map[string]map[string]model.HistoricalPrice{},
	}
}

func (h priceServiceHandler) cached(symbol string, date time.Time) (model.HistoricalPrice, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if symbolCache, ok := h.cache[symbol]; ok {
		if row, ok := symbolCache[date.Format(time.DateOnly)]; ok {
			return row, true
		}
	}
	return model.HistoricalPrice{}, false
}

func (h priceServiceHandler) store(symbol string, date time.Time, row model.HistoricalPrice) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.cache[symbol]; !ok {
		h.cache[symbol] = map[string]model.HistoricalPrice{}
	}
	h.cache[symbol][date.Format(time.DateOnly)] = row
}

func (h priceServiceHandler) get(symbol string, date time.Time) (model.HistoricalPrice, error) {
	if row, ok := h.cached(symbol, date); ok {
		return row, nil
	}

	row, err := h.HistoricalPriceRepository.GetOnOrBefore(nil, symbol, date)
	if err != nil {
		return model.HistoricalPrice{}, err
	}
	h.store(symbol, date, *row)

	return *row, nil
}

func newQuote(symbol string, requested time.Time, row model.HistoricalPrice, price decimal.Decimal) *domain.PriceQuote {
	return &domain.PriceQuote{
		Symbol:        symbol,
		RequestedDate: requested,
		Date:          row.Date,
		Price:         price,
		Approximate:   !util.DateEq(requested, row.Date),
	}
}

func (h priceServiceHandler) OpenValue(ctx context.Context, symbol string, date time.Time) (*domain.PriceQuote, error) {
	row, err := h.get(symbol, date)
	if err != nil {
		return nil, err
	}
	return newQuote(symbol, date, row, row.Open), nil
}

func (h priceServiceHandler) CloseValue(ctx context.Context, symbol string, date time.Time) (*domain.PriceQuote, error) {
	row, err := h.get(symbol, date)
	if err != nil {
		return nil, err
	}
	return newQuote(symbol, date, row, row.Close), nil
}

func (h priceServiceHandler) TradingDays(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", domain.ErrInvalidTimeframe, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return h.HistoricalPriceRepository.ListTradingDays(ctx, nil, start, end)
}

func (h priceServiceHandler) EarliestDate(ctx context.Context) (time.Time, error) {
	return h.HistoricalPriceRepository.EarliestDate(nil)
}

func (h priceServiceHandler) LatestDate(ctx context.Context) (time.Time, error) {
	return h.HistoricalPriceRepository.LatestDate(nil)
}

func (h priceServiceHandler) DatesInBand(ctx context.Context, symbol string, low, high decimal.Decimal, before time.Time) ([]time.Time, error) {
	return h.HistoricalPriceRepository.ListDatesInBand(ctx, nil, symbol, low.InexactFloat64(), high.InexactFloat64(), before)
}

// TrailingPerformance is the % change from the close windowDays before
// date to the open on date
func (h priceServiceHandler) TrailingPerformance(ctx context.Context, symbol string, date time.Time, windowDays int) (float64, error) {
	open, err := h.OpenValue(ctx, symbol, date)
	if err != nil {
		return 0, err
	}
	prior, err := h.CloseValue(ctx, symbol, date.AddDate(0, 0, -windowDays))
	if err != nil {
		return 0, fmt.Errorf("failed to get trailing close for %s: %w", symbol, err)
	}

	return percentChange(open.Price, prior.Price), nil
}

func (h priceServiceHandler) Tickers(ctx context.Context) ([]domain.Ticker, error) {
	tickers, err := h.TickerRepository.List(nil)
	if err != nil {
		return nil, err
	}

	out := []domain.Ticker{}
	for _, t := range tickers {
		out = append(out, domain.Ticker{
			Symbol: t.Symbol,
			Name:   t.Name,
		})
	}
	return out, nil
}

func percentChange(end, start decimal.Decimal) float64 {
	if start.IsZero() {
		return 0
	}
	return end.Sub(start).Div(start).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
