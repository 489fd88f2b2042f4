package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"
	"tradesim/internal/app"
	"tradesim/internal/domain"
	"tradesim/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	SimulationApp app.SimulationApp
	Logger        *zap.SugaredLogger
}

func (m ApiHandler) StartApi(port int) error {
	return m.router().Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.loggerMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to tradesim"})
	})

	router.GET("/simulations", m.listSimulations)
	router.POST("/simulations", m.newSimulation)
	router.GET("/simulations/:runID", m.getStatus)
	router.DELETE("/simulations/:runID", m.closeSimulation)
	router.POST("/simulations/:runID/timeframe", m.setTimeframe)
	router.POST("/simulations/:runID/trade", m.trade)
	router.POST("/simulations/:runID/strategies", m.activateStrategy)
	router.DELETE("/simulations/:runID/strategies/:ticker/:kind", m.deactivateStrategy)
	router.POST("/simulations/:runID/run", m.runSimulation)
	router.GET("/simulations/:runID/summary", m.getSummary)
	router.GET("/simulations/:runID/snapshots", m.getSnapshots)

	return router
}

// loggerMiddleware tags every request with an id and puts the request
// logger in the request context
func (m ApiHandler) loggerMiddleware(c *gin.Context) {
	log := m.Logger
	if log == nil {
		log = logger.New()
	}
	log = log.With("requestID", uuid.NewString())

	ctx := logger.WithLogger(c.Request.Context(), log)
	c.Request = c.Request.WithContext(ctx)

	start := time.Now()
	c.Next()

	log.Infow("handled request",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}

func errorStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrRunNotFound):
		return http.StatusNotFound
	case domain.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatusCode(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorf("request failed: %v", err)
	} else {
		log.Infof("rejected request: %v", err)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
