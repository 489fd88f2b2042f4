package api

import (
	"fmt"
	"net/http"
	"time"
	"tradesim/internal/domain"
	l3_service "tradesim/internal/service/l3"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type simulationRunResponse struct {
	RunID        string          `json:"runID"`
	StartBalance decimal.Decimal `json:"startBalance"`
	CreatedAt    time.Time       `json:"createdAt"`
	Open         bool            `json:"open"`
}

func (h ApiHandler) listSimulations(c *gin.Context) {
	runs, err := h.SimulationApp.ListRuns(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	open := map[string]bool{}
	for _, id := range h.SimulationApp.OpenRuns() {
		open[id.String()] = true
	}

	out := []simulationRunResponse{}
	for _, r := range runs {
		out = append(out, simulationRunResponse{
			RunID:        r.RunID,
			StartBalance: r.StartBalance,
			CreatedAt:    r.CreatedAt,
			Open:         open[r.RunID],
		})
	}

	c.JSON(200, out)
}

func (h ApiHandler) newSimulation(c *gin.Context) {
	runID, err := h.SimulationApp.NewSimulation(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	status, err := h.SimulationApp.Status(c.Request.Context(), runID.String())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusCreated, statusToResponse(*status))
}

type holdingResponse struct {
	Ticker                string          `json:"ticker"`
	Name                  string          `json:"name"`
	NumberOfShares        int64           `json:"numberOfShares"`
	OpeningValue          decimal.Decimal `json:"openingValue"`
	CurrentValue          decimal.Decimal `json:"currentValue"`
	OpeningPerformance    float64         `json:"openingPerformance"`
	CurrentPerformance    float64         `json:"currentPerformance"`
	CashInvested          decimal.Decimal `json:"cashInvested"`
	CashWithdrawn         decimal.Decimal `json:"cashWithdrawn"`
	CashProfit            decimal.Decimal `json:"cashProfit"`
	InvestmentValue       decimal.Decimal `json:"investmentValue"`
	InvestmentPerformance float64         `json:"investmentPerformance"`
}

type strategyResponse struct {
	Kind   domain.StrategyKind   `json:"kind"`
	Params domain.StrategyParams `json:"params"`
}

type simulationStatusResponse struct {
	RunID                string                        `json:"runID"`
	State                domain.SimulationState        `json:"state"`
	StartDate            string                        `json:"startDate"`
	EndDate              string                        `json:"endDate"`
	TimeframeDays        int                           `json:"timeframeDays"`
	ValidDates           bool                          `json:"validDates"`
	CurrentBalance       decimal.Decimal               `json:"currentBalance"`
	TotalInvestedBalance decimal.Decimal               `json:"totalInvestedBalance"`
	TotalCashProfit      decimal.Decimal               `json:"totalCashProfit"`
	PortfolioValue       decimal.Decimal               `json:"portfolioValue"`
	PortfolioPerformance float64                       `json:"portfolioPerformance"`
	TotalValue           decimal.Decimal               `json:"totalValue"`
	Holdings             []holdingResponse             `json:"holdings"`
	Strategies           map[string][]strategyResponse `json:"strategies"`
}

func statusToResponse(s l3_service.SimulationStatus) simulationStatusResponse {
	out := simulationStatusResponse{
		RunID:                s.RunID.String(),
		State:                s.State,
		StartDate:            s.StartDate.Format(time.DateOnly),
		EndDate:              s.EndDate.Format(time.DateOnly),
		TimeframeDays:        s.TimeframeDays,
		ValidDates:           s.ValidDates,
		CurrentBalance:       s.Ledger.CurrentBalance,
		TotalInvestedBalance: s.Ledger.TotalInvestedBalance,
		TotalCashProfit:      s.Ledger.TotalCashProfit,
		PortfolioValue:       s.Ledger.PortfolioValue,
		PortfolioPerformance: s.Ledger.PortfolioPerformance,
		TotalValue:           s.TotalValue,
		Holdings:             []holdingResponse{},
		Strategies:           map[string][]strategyResponse{},
	}
	for _, hl := range s.Holdings {
		out.Holdings = append(out.Holdings, holdingResponse{
			Ticker:                hl.Ticker,
			Name:                  hl.Name,
			NumberOfShares:        hl.NumberOfShares,
			OpeningValue:          hl.OpeningValue,
			CurrentValue:          hl.CurrentValue,
			OpeningPerformance:    hl.OpeningPerformance,
			CurrentPerformance:    hl.CurrentPerformance,
			CashInvested:          hl.CashInvested,
			CashWithdrawn:         hl.CashWithdrawn,
			CashProfit:            hl.CashProfit,
			InvestmentValue:       hl.InvestmentValue,
			InvestmentPerformance: hl.InvestmentPerformance,
		})
	}
	for ticker, strategies := range s.Strategies {
		for _, st := range strategies {
			out.Strategies[ticker] = append(out.Strategies[ticker], strategyToResponse(st))
		}
	}
	return out
}

func strategyToResponse(s domain.Strategy) strategyResponse {
	out := strategyResponse{Kind: s.Kind()}
	switch st := s.(type) {
	case domain.TakeProfit:
		out.Params.Threshold = st.Threshold
	case domain.StopLoss:
		out.Params.Threshold = st.Threshold
	case domain.DollarCostAverage:
		out.Params.Shares = st.Shares
		out.Params.IntervalDays = st.IntervalDays
	}
	return out
}

func (h ApiHandler) getStatus(c *gin.Context) {
	status, err := h.SimulationApp.Status(c.Request.Context(), c.Param("runID"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, statusToResponse(*status))
}

func (h ApiHandler) closeSimulation(c *gin.Context) {
	err := h.SimulationApp.Close(c.Param("runID"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.Status(http.StatusNoContent)
}

type setTimeframeRequest struct {
	Days int `json:"days"`
}

func (h ApiHandler) setTimeframe(c *gin.Context) {
	var requestBody setTimeframeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	ctx := c.Request.Context()
	runID := c.Param("runID")
	err := h.SimulationApp.SetTimeframe(ctx, runID, requestBody.Days)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	status, err := h.SimulationApp.Status(ctx, runID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, statusToResponse(*status))
}

type tradeRequest struct {
	Ticker string `json:"ticker"`
	Amount int64  `json:"amount"`
}

type tradeResponse struct {
	Outcome    domain.TradeOutcome `json:"outcome"`
	Filled     bool                `json:"filled"`
	TotalValue decimal.Decimal     `json:"totalValue"`
}

// trade buys for a positive amount and sells for a negative one.
// insufficient cash or shares is reported in the outcome, not as an
// error
func (h ApiHandler) trade(c *gin.Context) {
	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	ctx := c.Request.Context()
	runID := c.Param("runID")
	outcome, err := h.SimulationApp.Trade(ctx, runID, requestBody.Ticker, requestBody.Amount)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	status, err := h.SimulationApp.Status(ctx, runID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, tradeResponse{
		Outcome:    outcome,
		Filled:     outcome.Ok(),
		TotalValue: status.TotalValue,
	})
}

type runSimulationResponse struct {
	RunID                string                 `json:"runID"`
	State                domain.SimulationState `json:"state"`
	FirstDate            string                 `json:"firstDate"`
	LastDate             string                 `json:"lastDate"`
	TradingDaysSimulated int                    `json:"tradingDaysSimulated"`
	LoopRestarts         int                    `json:"loopRestarts"`
	DaysRemaining        int                    `json:"daysRemaining"`
	TotalValue           decimal.Decimal        `json:"totalValue"`
	Profile              *domain.Profile        `json:"profile,omitempty"`
}

func (h ApiHandler) runSimulation(c *gin.Context) {
	result, err := h.SimulationApp.Run(c.Request.Context(), c.Param("runID"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := runSimulationResponse{
		RunID:                result.RunID.String(),
		State:                result.State,
		TradingDaysSimulated: result.TradingDaysSimulated,
		LoopRestarts:         result.LoopRestarts,
		DaysRemaining:        result.DaysRemaining,
		TotalValue:           result.TotalValue,
		Profile:              result.Profile,
	}
	if !result.FirstDate.IsZero() {
		out.FirstDate = result.FirstDate.Format(time.DateOnly)
		out.LastDate = result.LastDate.Format(time.DateOnly)
	}

	c.JSON(200, out)
}
