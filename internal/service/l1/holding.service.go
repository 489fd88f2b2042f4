package l1_service

import (
	"context"
	"fmt"
	"time"
	"tradesim/internal/domain"
)

// InitialiseHolding resets h for a run starting on date, using the open on
// date as the opening value and the trailing change as opening performance
func InitialiseHolding(ctx context.Context, priceService PriceService, h *domain.Holding, date time.Time, windowDays int) error {
	open, err := priceService.OpenValue(ctx, h.Ticker, date)
	if err != nil {
		return fmt.Errorf("failed to get opening value for %s: %w", h.Ticker, err)
	}
	performance, err := priceService.TrailingPerformance(ctx, h.Ticker, date, windowDays)
	if err != nil {
		return fmt.Errorf("failed to get opening performance for %s: %w", h.Ticker, err)
	}

	return h.Initialise(open.Price, performance)
}

// UpdateHolding moves h to the open on date. the returned quote says
// whether the price was approximated from an earlier day
func UpdateHolding(ctx context.Context, priceService PriceService, h *domain.Holding, date time.Time) (*domain.PriceQuote, error) {
	quote, err := priceService.OpenValue(ctx, h.Ticker, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get price for %s on %s: %w", h.Ticker, date.Format(time.DateOnly), err)
	}

	err = h.DailyUpdate(quote.Price)
	if err != nil {
		return nil, err
	}

	return quote, nil
}
