package api

import (
	"bytes"
	"fmt"
	"time"
	"tradesim/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type summaryResponse struct {
	StartValue       decimal.Decimal `json:"startValue"`
	EndValue         decimal.Decimal `json:"endValue"`
	TotalReturn      float64         `json:"totalReturn"`
	AnnualizedReturn float64         `json:"annualizedReturn"`
	AnnualizedStdev  float64         `json:"annualizedStdev"`
	MaxDrawdown      float64         `json:"maxDrawdown"`
}

func (h ApiHandler) getSummary(c *gin.Context) {
	metrics, err := h.SimulationApp.Summary(c.Request.Context(), c.Param("runID"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, summaryResponse{
		StartValue:       metrics.StartValue,
		EndValue:         metrics.EndValue,
		TotalReturn:      metrics.TotalReturn,
		AnnualizedReturn: metrics.AnnualizedReturn,
		AnnualizedStdev:  metrics.AnnualizedStdev,
		MaxDrawdown:      metrics.MaxDrawdown,
	})
}

type snapshotResponse struct {
	EntryNumber             int64                `json:"entryNumber"`
	Date                    string               `json:"date"`
	Phase                   domain.SnapshotPhase `json:"phase"`
	CurrentBalance          decimal.Decimal      `json:"currentBalance"`
	TotalInvestedBalance    decimal.Decimal      `json:"totalInvestedBalance"`
	TotalCashProfit         decimal.Decimal      `json:"totalCashProfit"`
	PortfolioValue          decimal.Decimal      `json:"portfolioValue"`
	PortfolioPerformance    float64              `json:"portfolioPerformance"`
	Ticker                  string               `json:"ticker"`
	CashInvested            decimal.Decimal      `json:"cashInvested"`
	CashWithdrawn           decimal.Decimal      `json:"cashWithdrawn"`
	InvestmentValue         decimal.Decimal      `json:"investmentValue"`
	InvestmentPerformance   float64              `json:"investmentPerformance"`
	CurrentStockPerformance float64              `json:"currentStockPerformance"`
	NumberOfShares          int64                `json:"numberOfShares"`
}

// getSnapshots returns a run's persisted history as json, or as a csv
// download with ?format=csv
func (h ApiHandler) getSnapshots(c *gin.Context) {
	ctx := c.Request.Context()
	runID := c.Param("runID")

	if c.Query("format") == "csv" {
		buf := &bytes.Buffer{}
		err := h.SimulationApp.ExportCSV(ctx, runID, buf)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", runID))
		c.Data(200, "text/csv", buf.Bytes())
		return
	}

	snapshots, err := h.SimulationApp.Snapshots(ctx, runID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []snapshotResponse{}
	for _, s := range snapshots {
		out = append(out, snapshotResponse{
			EntryNumber:             s.EntryNumber,
			Date:                    s.Date.Format(time.DateOnly),
			Phase:                   s.Phase,
			CurrentBalance:          s.CurrentBalance,
			TotalInvestedBalance:    s.TotalInvestedBalance,
			TotalCashProfit:         s.TotalCashProfit,
			PortfolioValue:          s.PortfolioValue,
			PortfolioPerformance:    s.PortfolioPerformance,
			Ticker:                  s.Ticker,
			CashInvested:            s.CashInvested,
			CashWithdrawn:           s.CashWithdrawn,
			InvestmentValue:         s.InvestmentValue,
			InvestmentPerformance:   s.InvestmentPerformance,
			CurrentStockPerformance: s.CurrentStockPerformance,
			NumberOfShares:          s.NumberOfShares,
		})
	}

	c.JSON(200, out)
}
