package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	mock_app "tradesim/internal/app/mocks"
	"tradesim/internal/db/models/postgres/public/model"
	"tradesim/internal/domain"
	l3_service "tradesim/internal/service/l3"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *mock_app.MockSimulationApp) {
	ctrl := gomock.NewController(t)
	simApp := mock_app.NewMockSimulationApp(ctrl)
	handler := ApiHandler{
		SimulationApp: simApp,
		Logger:        zap.NewNop().Sugar(),
	}
	return handler.router(), simApp
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func mustRunID(t *testing.T, s string) domain.RunID {
	id, err := domain.NewRunID(s)
	require.NoError(t, err)
	return id
}

func testStatus(t *testing.T) *l3_service.SimulationStatus {
	ledger, err := domain.NewLedger(decimal.NewFromInt(10000))
	require.NoError(t, err)
	holding := domain.NewHolding("AAPL", "Apple Inc.")
	require.NoError(t, holding.Initialise(decimal.NewFromInt(100), 1.5))

	return &l3_service.SimulationStatus{
		RunID:      mustRunID(t, "sim_api"),
		State:      domain.SimulationState_Configured,
		StartDate:  time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC),
		Ledger:     *ledger,
		Holdings:   []domain.Holding{*holding},
		Strategies: map[string][]domain.Strategy{"AAPL": {domain.TakeProfit{Threshold: 0.2}}},
		TotalValue: decimal.NewFromInt(10000),
	}
}

func Test_errorStatusCode(t *testing.T) {
	require.Equal(t, http.StatusNotFound, errorStatusCode(fmt.Errorf("wrapped: %w", domain.ErrRunNotFound)))
	require.Equal(t, http.StatusBadRequest, errorStatusCode(domain.ErrInvalidTimeframe))
	require.Equal(t, http.StatusBadRequest, errorStatusCode(domain.ErrRunLimitReached))
	require.Equal(t, http.StatusInternalServerError, errorStatusCode(domain.ErrNoPriceData))
	require.Equal(t, http.StatusInternalServerError, errorStatusCode(fmt.Errorf("connection refused")))
}

func TestApi_newSimulation(t *testing.T) {
	router, simApp := newTestRouter(t)
	simApp.EXPECT().NewSimulation(gomock.Any()).Return(mustRunID(t, "sim_api"), nil)
	simApp.EXPECT().Status(gomock.Any(), "sim_api").Return(testStatus(t), nil)

	w := doRequest(router, http.MethodPost, "/simulations", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var out simulationStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, "sim_api", out.RunID)
	require.Equal(t, domain.SimulationState_Configured, out.State)
	require.Equal(t, "2020-01-06", out.StartDate)
	require.Len(t, out.Holdings, 1)
	require.True(t, out.Holdings[0].OpeningValue.Equal(decimal.NewFromInt(100)))
	require.Empty(t, cmp.Diff(
		map[string][]strategyResponse{"AAPL": {{Kind: domain.StrategyKind_TakeProfit, Params: domain.StrategyParams{Threshold: 0.2}}}},
		out.Strategies,
	))
}

func TestApi_trade(t *testing.T) {
	t.Run("insufficient balance is not an error", func(t *testing.T) {
		router, simApp := newTestRouter(t)
		simApp.EXPECT().Trade(gomock.Any(), "sim_api", "AAPL", int64(1000)).Return(domain.TradeOutcome_InsufficientBalance, nil)
		simApp.EXPECT().Status(gomock.Any(), "sim_api").Return(testStatus(t), nil)

		w := doRequest(router, http.MethodPost, "/simulations/sim_api/trade", `{"ticker":"AAPL","amount":1000}`)
		require.Equal(t, http.StatusOK, w.Code)

		var out tradeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, domain.TradeOutcome_InsufficientBalance, out.Outcome)
		require.False(t, out.Filled)
	})

	t.Run("unknown ticker is a bad request", func(t *testing.T) {
		router, simApp := newTestRouter(t)
		simApp.EXPECT().Trade(gomock.Any(), "sim_api", "ZZZZ", int64(1)).Return(domain.TradeOutcome(""), domain.ErrUnknownTicker)

		w := doRequest(router, http.MethodPost, "/simulations/sim_api/trade", `{"ticker":"ZZZZ","amount":1}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "unknown ticker")
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doRequest(router, http.MethodPost, "/simulations/sim_api/trade", `{"amount":"lots"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApi_runSimulation(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		router, simApp := newTestRouter(t)
		simApp.EXPECT().Run(gomock.Any(), "sim_gone").Return(nil, fmt.Errorf("%w: sim_gone is not open", domain.ErrRunNotFound))

		w := doRequest(router, http.MethodPost, "/simulations/sim_gone/run", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("completed run", func(t *testing.T) {
		router, simApp := newTestRouter(t)
		simApp.EXPECT().Run(gomock.Any(), "sim_api").Return(&l3_service.SimulationResult{
			RunID:                mustRunID(t, "sim_api"),
			State:                domain.SimulationState_Completed,
			FirstDate:            time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC),
			LastDate:             time.Date(2020, 1, 17, 0, 0, 0, 0, time.UTC),
			TradingDaysSimulated: 10,
			TotalValue:           decimal.NewFromInt(10300),
		}, nil)

		w := doRequest(router, http.MethodPost, "/simulations/sim_api/run", "")
		require.Equal(t, http.StatusOK, w.Code)

		var out runSimulationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, "2020-01-17", out.LastDate)
		require.Equal(t, 10, out.TradingDaysSimulated)
		require.True(t, out.TotalValue.Equal(decimal.NewFromInt(10300)))
	})
}

func TestApi_strategies(t *testing.T) {
	t.Run("activate passes params through", func(t *testing.T) {
		router, simApp := newTestRouter(t)
		simApp.EXPECT().ActivateStrategy(
			gomock.Any(),
			"sim_api",
			"AAPL",
			domain.StrategyKind_DollarCostAverage,
			domain.StrategyParams{Shares: 2, IntervalDays: 3},
		).Return(nil)
		simApp.EXPECT().Status(gomock.Any(), "sim_api").Return(testStatus(t), nil)

		w := doRequest(router, http.MethodPost, "/simulations/sim_api/strategies", `{"ticker":"AAPL","kind":"dollar_cost_average","shares":2,"intervalDays":3}`)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid strategy", func(t *testing.T) {
		router, simApp := newTestRouter(t)
		simApp.EXPECT().ActivateStrategy(gomock.Any(), "sim_api", "AAPL", domain.StrategyKind("yolo"), domain.StrategyParams{}).
			Return(fmt.Errorf("%w: unknown strategy kind", domain.ErrInvalidStrategy))

		w := doRequest(router, http.MethodPost, "/simulations/sim_api/strategies", `{"ticker":"AAPL","kind":"yolo"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("deactivate", func(t *testing.T) {
		router, simApp := newTestRouter(t)
		simApp.EXPECT().DeactivateStrategy(gomock.Any(), "sim_api", "AAPL", domain.StrategyKind_StopLoss).Return(nil)

		w := doRequest(router, http.MethodDelete, "/simulations/sim_api/strategies/AAPL/stop_loss", "")
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestApi_snapshots(t *testing.T) {
	t.Run("csv download", func(t *testing.T) {
		router, simApp := newTestRouter(t)
		simApp.EXPECT().ExportCSV(gomock.Any(), "sim_api", gomock.Any()).DoAndReturn(
			func(_ any, _ string, w io.Writer) error {
				_, err := w.Write([]byte("entry_number,date\n1,2020-01-06\n"))
				return err
			},
		)

		w := doRequest(router, http.MethodGet, "/simulations/sim_api/snapshots?format=csv", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		require.Contains(t, w.Body.String(), "1,2020-01-06")
	})

	t.Run("json", func(t *testing.T) {
		router, simApp := newTestRouter(t)
		simApp.EXPECT().Snapshots(gomock.Any(), "sim_api").Return([]domain.Snapshot{{
			EntryNumber:    1,
			Date:           time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC),
			Phase:          domain.SnapshotPhase_Initial,
			CurrentBalance: decimal.NewFromInt(10000),
			Ticker:         "AAPL",
		}}, nil)

		w := doRequest(router, http.MethodGet, "/simulations/sim_api/snapshots", "")
		require.Equal(t, http.StatusOK, w.Code)

		var out []snapshotResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out, 1)
		require.Equal(t, "2020-01-06", out[0].Date)
		require.Equal(t, domain.SnapshotPhase_Initial, out[0].Phase)
	})
}

func TestApi_listSimulations(t *testing.T) {
	router, simApp := newTestRouter(t)
	created := time.Date(2020, 1, 6, 12, 0, 0, 0, time.UTC)
	simApp.EXPECT().ListRuns(gomock.Any()).Return([]model.SimulationRun{
		{RunID: "sim_api", StartBalance: decimal.NewFromInt(10000), CreatedAt: created},
		{RunID: "sim_old", StartBalance: decimal.NewFromInt(5000), CreatedAt: created},
	}, nil)
	simApp.EXPECT().OpenRuns().Return([]domain.RunID{mustRunID(t, "sim_api")})

	w := doRequest(router, http.MethodGet, "/simulations", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out []simulationRunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	require.True(t, out[0].Open)
	require.False(t, out[1].Open)
}
