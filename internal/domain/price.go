package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ticker struct {
	Symbol string
	Name   string
}

// PriceQuote is a price looked up for a requested date. if the exact
// date had no data, Date is the most recent earlier trading day and
// Approximate is set
type PriceQuote struct {
	Symbol        string
	RequestedDate time.Time
	Date          time.Time
	Price         decimal.Decimal
	Approximate   bool
}

type PortfolioValue struct {
	Date       time.Time
	TotalValue decimal.Decimal
}
