package l1_service

import (
	"bytes"
	"strings"
	"testing"
	"tradesim/internal/domain"
	"tradesim/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestExportSnapshotsCSV(t *testing.T) {
	snapshots := []domain.Snapshot{
		{
			EntryNumber:          1,
			Date:                 util.NewDate(2020, 1, 2),
			Phase:                domain.SnapshotPhase_Initial,
			Ticker:               "AAPL",
			CurrentBalance:       decimal.NewFromInt(10000),
			TotalInvestedBalance: decimal.Zero,
			TotalCashProfit:      decimal.Zero,
			PortfolioValue:       decimal.Zero,
			CashInvested:         decimal.Zero,
			CashWithdrawn:        decimal.Zero,
			InvestmentValue:      decimal.Zero,
		},
		{
			EntryNumber:          2,
			Date:                 util.NewDate(2020, 1, 3),
			Phase:                domain.SnapshotPhase_End,
			Ticker:               "AAPL",
			CurrentBalance:       decimal.NewFromInt(9000),
			TotalInvestedBalance: decimal.NewFromInt(1000),
			TotalCashProfit:      decimal.NewFromInt(-1000),
			PortfolioValue:       decimal.NewFromInt(1000),
			CashInvested:         decimal.NewFromInt(1000),
			CashWithdrawn:        decimal.Zero,
			InvestmentValue:      decimal.NewFromInt(1000),
			NumberOfShares:       10,
		},
	}

	buf := &bytes.Buffer{}
	err := ExportSnapshotsCSV(buf, snapshots)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "entry_number,date,phase,ticker,current_balance"))
	require.True(t, strings.HasPrefix(lines[2], "2,2020-01-03,end,AAPL,9000.00,1000.00,-1000.00"))
	require.True(t, strings.HasSuffix(lines[2], ",10"))
}
