package api

import (
	"fmt"
	"net/http"
	"tradesim/internal/domain"

	"github.com/gin-gonic/gin"
)

type activateStrategyRequest struct {
	Ticker       string  `json:"ticker"`
	Kind         string  `json:"kind"`
	Threshold    float64 `json:"threshold"`
	Shares       int64   `json:"shares"`
	IntervalDays int     `json:"intervalDays"`
}

func (h ApiHandler) activateStrategy(c *gin.Context) {
	var requestBody activateStrategyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	ctx := c.Request.Context()
	runID := c.Param("runID")
	err := h.SimulationApp.ActivateStrategy(
		ctx,
		runID,
		requestBody.Ticker,
		domain.StrategyKind(requestBody.Kind),
		domain.StrategyParams{
			Threshold:    requestBody.Threshold,
			Shares:       requestBody.Shares,
			IntervalDays: requestBody.IntervalDays,
		},
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	status, err := h.SimulationApp.Status(ctx, runID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, statusToResponse(*status).Strategies)
}

func (h ApiHandler) deactivateStrategy(c *gin.Context) {
	err := h.SimulationApp.DeactivateStrategy(
		c.Request.Context(),
		c.Param("runID"),
		c.Param("ticker"),
		domain.StrategyKind(c.Param("kind")),
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.Status(http.StatusNoContent)
}
