package l1_service

import (
	"context"
	"testing"
	"tradesim/internal/db/models/postgres/public/model"
	"tradesim/internal/domain"
	"tradesim/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInitialiseAndUpdateHolding(t *testing.T) {
	ctrl := gomock.NewController(t)
	priceRepository, _, priceService := newTestPriceService(ctrl)

	start := util.NewDate(2021, 3, 2)
	next := util.NewDate(2021, 3, 3)
	weekend := util.NewDate(2021, 3, 6)
	friday := util.NewDate(2021, 3, 5)

	priceRepository.EXPECT().
		GetOnOrBefore(nil, "AAPL", start).
		Return(&model.HistoricalPrice{Symbol: "AAPL", Date: start, Open: decimal.NewFromInt(100), Close: decimal.NewFromInt(102)}, nil)
	priceRepository.EXPECT().
		GetOnOrBefore(nil, "AAPL", start.AddDate(0, 0, -1)).
		Return(&model.HistoricalPrice{Symbol: "AAPL", Date: start.AddDate(0, 0, -1), Open: decimal.NewFromInt(95), Close: decimal.NewFromInt(80)}, nil)
	priceRepository.EXPECT().
		GetOnOrBefore(nil, "AAPL", next).
		Return(&model.HistoricalPrice{Symbol: "AAPL", Date: next, Open: decimal.NewFromInt(120), Close: decimal.NewFromInt(121)}, nil)
	priceRepository.EXPECT().
		GetOnOrBefore(nil, "AAPL", weekend).
		Return(&model.HistoricalPrice{Symbol: "AAPL", Date: friday, Open: decimal.NewFromInt(90), Close: decimal.NewFromInt(91)}, nil)

	h := domain.NewHolding("AAPL", "Apple Inc.")
	err := InitialiseHolding(context.Background(), priceService, h, start, 1)
	require.NoError(t, err)
	require.True(t, h.OpeningValue.Equal(decimal.NewFromInt(100)))
	require.InDelta(t, 25.0, h.OpeningPerformance, 1e-9)
	require.InDelta(t, 25.0, h.CurrentPerformance, 1e-9)

	quote, err := UpdateHolding(context.Background(), priceService, h, next)
	require.NoError(t, err)
	require.False(t, quote.Approximate)
	require.InDelta(t, 20.0, h.CurrentPerformance, 1e-9)

	quote, err = UpdateHolding(context.Background(), priceService, h, weekend)
	require.NoError(t, err)
	require.True(t, quote.Approximate)
	require.InDelta(t, -10.0, h.CurrentPerformance, 1e-9)
}
