package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SnapshotPhase string

// each simulated day writes a start row per ticker after the price
// update and an end row once that ticker's strategies have settled
const (
	SnapshotPhase_Initial SnapshotPhase = "initial"
	SnapshotPhase_Start   SnapshotPhase = "start"
	SnapshotPhase_End     SnapshotPhase = "end"
	SnapshotPhase_Trade   SnapshotPhase = "trade"
)

// Snapshot is one persisted row: the ledger plus one holding at a
// point in the daily cycle
type Snapshot struct {
	EntryNumber int64
	Date        time.Time
	Phase       SnapshotPhase

	CurrentBalance       decimal.Decimal
	TotalInvestedBalance decimal.Decimal
	TotalCashProfit      decimal.Decimal
	PortfolioValue       decimal.Decimal
	PortfolioPerformance float64

	Ticker                  string
	CashInvested            decimal.Decimal
	CashWithdrawn           decimal.Decimal
	InvestmentValue         decimal.Decimal
	InvestmentPerformance   float64
	CurrentStockPerformance float64
	NumberOfShares          int64
}

func NewSnapshot(date time.Time, phase SnapshotPhase, l Ledger, h Holding) Snapshot {
	return Snapshot{
		Date:                    date,
		Phase:                   phase,
		CurrentBalance:          l.CurrentBalance,
		TotalInvestedBalance:    l.TotalInvestedBalance,
		TotalCashProfit:         l.TotalCashProfit,
		PortfolioValue:          l.PortfolioValue,
		PortfolioPerformance:    l.PortfolioPerformance,
		Ticker:                  h.Ticker,
		CashInvested:            h.CashInvested,
		CashWithdrawn:           h.CashWithdrawn,
		InvestmentValue:         h.InvestmentValue,
		InvestmentPerformance:   h.InvestmentPerformance,
		CurrentStockPerformance: h.CurrentPerformance,
		NumberOfShares:          h.NumberOfShares,
	}
}

type SimulationState string

const (
	SimulationState_Uninitialised SimulationState = "uninitialised"
	SimulationState_Configured    SimulationState = "configured"
	SimulationState_Running       SimulationState = "running"
	SimulationState_Exhausted     SimulationState = "exhausted"
	SimulationState_Completed     SimulationState = "completed"
)
