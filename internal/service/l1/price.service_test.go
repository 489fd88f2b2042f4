package l1_service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	"tradesim/internal/db/models/postgres/public/model"
	"tradesim/internal/domain"
	mock_repository "tradesim/internal/repository/mocks"
	"tradesim/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPriceService(ctrl *gomock.Controller) (*mock_repository.MockHistoricalPriceRepository, *mock_repository.MockTickerRepository, PriceService) {
	priceRepository := mock_repository.NewMockHistoricalPriceRepository(ctrl)
	tickerRepository := mock_repository.NewMockTickerRepository(ctrl)
	return priceRepository, tickerRepository, NewPriceService(priceRepository, tickerRepository)
}

func Test_priceServiceHandler_OpenValue(t *testing.T) {
	t.Run("exact date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository, _, h := newTestPriceService(ctrl)
		date := util.NewDate(2020, 1, 2)

		priceRepository.EXPECT().
			GetOnOrBefore(nil, "AAPL", date).
			Return(&model.HistoricalPrice{
				Symbol: "AAPL",
				Date:   date,
				Open:   decimal.NewFromInt(100),
				Close:  decimal.NewFromInt(101),
			}, nil)

		quote, err := h.OpenValue(context.Background(), "AAPL", date)
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(&domain.PriceQuote{
				Symbol:        "AAPL",
				RequestedDate: date,
				Date:          date,
				Price:         decimal.NewFromInt(100),
				Approximate:   false,
			}, quote),
		)
	})

	t.Run("weekend falls back to friday and is cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository, _, h := newTestPriceService(ctrl)
		saturday := util.NewDate(2020, 1, 4)
		friday := util.NewDate(2020, 1, 3)

		priceRepository.EXPECT().
			GetOnOrBefore(nil, "AAPL", saturday).
			Return(&model.HistoricalPrice{
				Symbol: "AAPL",
				Date:   friday,
				Open:   decimal.NewFromInt(98),
				Close:  decimal.NewFromInt(99),
			}, nil).
			Times(1)

		quote, err := h.OpenValue(context.Background(), "AAPL", saturday)
		require.NoError(t, err)
		require.True(t, quote.Approximate)
		require.Equal(t, friday, quote.Date)
		require.True(t, quote.Price.Equal(decimal.NewFromInt(98)))

		quote, err = h.CloseValue(context.Background(), "AAPL", saturday)
		require.NoError(t, err)
		require.True(t, quote.Approximate)
		require.True(t, quote.Price.Equal(decimal.NewFromInt(99)))
	})

	t.Run("no earlier data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository, _, h := newTestPriceService(ctrl)
		date := util.NewDate(1990, 1, 2)

		priceRepository.EXPECT().
			GetOnOrBefore(nil, "AAPL", date).
			Return(nil, fmt.Errorf("%w: AAPL", domain.ErrNoPriceData))

		_, err := h.OpenValue(context.Background(), "AAPL", date)
		require.True(t, errors.Is(err, domain.ErrNoPriceData))
	})
}

func Test_priceServiceHandler_TrailingPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	priceRepository, _, h := newTestPriceService(ctrl)
	date := util.NewDate(2020, 1, 3)
	prior := util.NewDate(2020, 1, 2)

	priceRepository.EXPECT().
		GetOnOrBefore(nil, "AAPL", date).
		Return(&model.HistoricalPrice{Symbol: "AAPL", Date: date, Open: decimal.NewFromInt(110), Close: decimal.NewFromInt(111)}, nil)
	priceRepository.EXPECT().
		GetOnOrBefore(nil, "AAPL", prior).
		Return(&model.HistoricalPrice{Symbol: "AAPL", Date: prior, Open: decimal.NewFromInt(99), Close: decimal.NewFromInt(100)}, nil)

	performance, err := h.TrailingPerformance(context.Background(), "AAPL", date, 1)
	require.NoError(t, err)
	require.InDelta(t, 10.0, performance, 1e-9)
}

func Test_priceServiceHandler_TradingDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	priceRepository, _, h := newTestPriceService(ctrl)
	start := util.NewDate(2020, 1, 1)
	end := util.NewDate(2020, 1, 10)

	_, err := h.TradingDays(context.Background(), end, start)
	require.True(t, errors.Is(err, domain.ErrInvalidTimeframe))

	days := []time.Time{util.NewDate(2020, 1, 2), util.NewDate(2020, 1, 3)}
	priceRepository.EXPECT().ListTradingDays(gomock.Any(), nil, start, end).Return(days, nil)

	out, err := h.TradingDays(context.Background(), start, end)
	require.NoError(t, err)
	require.Equal(t, "", cmp.Diff(days, out))
}

func Test_priceServiceHandler_Tickers(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, tickerRepository, h := newTestPriceService(ctrl)

	tickerRepository.EXPECT().List(nil).Return([]model.Ticker{
		{Symbol: "AAPL", Name: "Apple Inc."},
		{Symbol: "MSFT", Name: "Microsoft Corporation"},
	}, nil)

	tickers, err := h.Tickers(context.Background())
	require.NoError(t, err)
	require.Equal(t, "", cmp.Diff([]domain.Ticker{
		{Symbol: "AAPL", Name: "Apple Inc."},
		{Symbol: "MSFT", Name: "Microsoft Corporation"},
	}, tickers))
}

func Test_percentChange(t *testing.T) {
	require.InDelta(t, 30.0, percentChange(decimal.NewFromInt(130), decimal.NewFromInt(100)), 1e-9)
	require.InDelta(t, -50.0, percentChange(decimal.NewFromInt(50), decimal.NewFromInt(100)), 1e-9)
	require.Equal(t, float64(0), percentChange(decimal.NewFromInt(50), decimal.Zero))
}
