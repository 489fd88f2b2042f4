package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tradesim/internal/db/models/postgres/public/model"
	"tradesim/internal/db/models/postgres/public/table"
	"tradesim/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type HistoricalPriceRepository interface {
	GetOnOrBefore(tx *sql.Tx, symbol string, date time.Time) (*model.HistoricalPrice, error)
	ListTradingDays(ctx context.Context, tx *sql.Tx, start, end time.Time) ([]time.Time, error)
	EarliestDate(tx *sql.Tx) (time.Time, error)
	LatestDate(tx *sql.Tx) (time.Time, error)
	ListDatesInBand(ctx context.Context, tx *sql.Tx, symbol string, low, high float64, before time.Time) ([]time.Time, error)
}

type historicalPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewHistoricalPriceRepository(db *sql.DB) HistoricalPriceRepository {
	return historicalPriceRepositoryHandler{Db: db}
}

func (h historicalPriceRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

// GetOnOrBefore returns the row for the date, or for the most recent
// earlier trading day if the date itself has no data
func (h historicalPriceRepositoryHandler) GetOnOrBefore(tx *sql.Tx, symbol string, date time.Time) (*model.HistoricalPrice, error) {
	query := table.HistoricalPrice.
		SELECT(table.HistoricalPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.HistoricalPrice.Symbol.EQ(postgres.String(symbol)),
				table.HistoricalPrice.Date.LT_EQ(postgres.DateT(date)),
			),
		).
		ORDER_BY(table.HistoricalPrice.Date.DESC()).
		LIMIT(1)

	out := model.HistoricalPrice{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s on or before %s", domain.ErrNoPriceData, symbol, date.Format(time.DateOnly))
	} else if err != nil {
		return nil, fmt.Errorf("failed to query price for %s on %s: %w", symbol, date.Format(time.DateOnly), err)
	}

	return &out, nil
}

func (h historicalPriceRepositoryHandler) ListTradingDays(ctx context.Context, tx *sql.Tx, start, end time.Time) ([]time.Time, error) {
	query := table.HistoricalPrice.
		SELECT(table.HistoricalPrice.Date).
		WHERE(
			table.HistoricalPrice.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
		).
		GROUP_BY(table.HistoricalPrice.Date).
		ORDER_BY(table.HistoricalPrice.Date.ASC())

	return h.scanDates(ctx, tx, query)
}

func (h historicalPriceRepositoryHandler) EarliestDate(tx *sql.Tx) (time.Time, error) {
	return h.boundaryDate(tx, table.HistoricalPrice.Date.ASC())
}

func (h historicalPriceRepositoryHandler) LatestDate(tx *sql.Tx) (time.Time, error) {
	return h.boundaryDate(tx, table.HistoricalPrice.Date.DESC())
}

func (h historicalPriceRepositoryHandler) boundaryDate(tx *sql.Tx, order postgres.OrderByClause) (time.Time, error) {
	query := table.HistoricalPrice.
		SELECT(table.HistoricalPrice.AllColumns).
		ORDER_BY(order).
		LIMIT(1)

	out := model.HistoricalPrice{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return time.Time{}, fmt.Errorf("%w: price history is empty", domain.ErrNoPriceData)
	} else if err != nil {
		return time.Time{}, fmt.Errorf("failed to get price history bounds: %w", err)
	}

	return out.Date, nil
}

// ListDatesInBand lists the trading days before the given date where the
// symbol opened within [low, high]
func (h historicalPriceRepositoryHandler) ListDatesInBand(ctx context.Context, tx *sql.Tx, symbol string, low, high float64, before time.Time) ([]time.Time, error) {
	query := table.HistoricalPrice.
		SELECT(table.HistoricalPrice.Date).
		WHERE(
			postgres.AND(
				table.HistoricalPrice.Symbol.EQ(postgres.String(symbol)),
				table.HistoricalPrice.Date.LT(postgres.DateT(before)),
				table.HistoricalPrice.Open.BETWEEN(postgres.Float(low), postgres.Float(high)),
			),
		).
		ORDER_BY(table.HistoricalPrice.Date.ASC())

	return h.scanDates(ctx, tx, query)
}

func (h historicalPriceRepositoryHandler) scanDates(ctx context.Context, tx *sql.Tx, query postgres.SelectStatement) ([]time.Time, error) {
	q, args := query.Sql()

	rows, err := h.queryable(tx).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trading days: %w", err)
	}
	defer rows.Close()

	out := []time.Time{}
	for rows.Next() {
		var d time.Time
		err := rows.Scan(&d)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
