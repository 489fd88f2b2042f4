package l1_service

import (
	"fmt"
	"io"
	"time"
	"tradesim/internal/domain"

	"github.com/gocarina/gocsv"
)

type snapshotCsvRow struct {
	EntryNumber             int64   `csv:"entry_number"`
	Date                    string  `csv:"date"`
	Phase                   string  `csv:"phase"`
	Ticker                  string  `csv:"ticker"`
	CurrentBalance          string  `csv:"current_balance"`
	TotalInvestedBalance    string  `csv:"total_invested_balance"`
	TotalCashProfit         string  `csv:"total_cash_profit"`
	PortfolioValue          string  `csv:"portfolio_value"`
	PortfolioPerformance    float64 `csv:"portfolio_performance"`
	CashInvested            string  `csv:"cash_invested"`
	CashWithdrawn           string  `csv:"cash_withdrawn"`
	InvestmentValue         string  `csv:"investment_value"`
	InvestmentPerformance   float64 `csv:"investment_performance"`
	CurrentStockPerformance float64 `csv:"current_stock_performance"`
	NumberOfShares          int64   `csv:"number_of_shares"`
}

// ExportSnapshotsCSV writes snapshots as csv with a header row, in the
// order given
func ExportSnapshotsCSV(w io.Writer, snapshots []domain.Snapshot) error {
	rows := []*snapshotCsvRow{}
	for _, s := range snapshots {
		rows = append(rows, &snapshotCsvRow{
			EntryNumber:             s.EntryNumber,
			Date:                    s.Date.Format(time.DateOnly),
			Phase:                   string(s.Phase),
			Ticker:                  s.Ticker,
			CurrentBalance:          s.CurrentBalance.StringFixed(2),
			TotalInvestedBalance:    s.TotalInvestedBalance.StringFixed(2),
			TotalCashProfit:         s.TotalCashProfit.StringFixed(2),
			PortfolioValue:          s.PortfolioValue.StringFixed(2),
			PortfolioPerformance:    s.PortfolioPerformance,
			CashInvested:            s.CashInvested.StringFixed(2),
			CashWithdrawn:           s.CashWithdrawn.StringFixed(2),
			InvestmentValue:         s.InvestmentValue.StringFixed(2),
			InvestmentPerformance:   s.InvestmentPerformance,
			CurrentStockPerformance: s.CurrentStockPerformance,
			NumberOfShares:          s.NumberOfShares,
		})
	}

	err := gocsv.Marshal(rows, w)
	if err != nil {
		return fmt.Errorf("failed to write snapshot csv: %w", err)
	}
	return nil
}
