package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"tradesim/internal/db/models/postgres/public/model"
	"tradesim/internal/db/models/postgres/public/table"
	"tradesim/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type TickerRepository interface {
	List(tx *sql.Tx) ([]model.Ticker, error)
	GetBySymbol(tx *sql.Tx, symbol string) (*model.Ticker, error)
}

type tickerRepositoryHandler struct {
	Db *sql.DB
}

func NewTickerRepository(db *sql.DB) TickerRepository {
	return tickerRepositoryHandler{Db: db}
}

func (h tickerRepositoryHandler) List(tx *sql.Tx) ([]model.Ticker, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		ORDER_BY(table.Ticker.Symbol.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.Ticker{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickers: %w", err)
	}

	return result, nil
}

func (h tickerRepositoryHandler) GetBySymbol(tx *sql.Tx, symbol string) (*model.Ticker, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		WHERE(table.Ticker.Symbol.EQ(postgres.String(symbol)))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Ticker{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTicker, symbol)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get ticker %s: %w", symbol, err)
	}

	return &out, nil
}
