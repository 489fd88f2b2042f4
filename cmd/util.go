package cmd

import (
	"database/sql"
	"fmt"
	"tradesim/api"
	"tradesim/internal/app"
	"tradesim/internal/logger"
	"tradesim/internal/repository"
	l1_service "tradesim/internal/service/l1"
	l2_service "tradesim/internal/service/l2"
	l3_service "tradesim/internal/service/l3"
	"tradesim/internal/util"

	_ "github.com/lib/pq"
)

type Dependencies struct {
	Db            *sql.DB
	Secrets       *util.Secrets
	SimulationApp app.SimulationApp
	ApiHandler    *api.ApiHandler
}

func CloseDependencies(deps *Dependencies) error {
	err := deps.Db.Close()
	if err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	historicalPriceRepository := repository.NewHistoricalPriceRepository(dbConn)
	tickerRepository := repository.NewTickerRepository(dbConn)
	simulationRunRepository := repository.NewSimulationRunRepository(dbConn)
	snapshotRepository := repository.NewSnapshotRepository(dbConn)

	// shared so every open run reuses the same price cache
	priceService := l1_service.NewPriceService(historicalPriceRepository, tickerRepository)

	cfg := secrets.Simulation
	simulatorFactory := func() l3_service.Simulator {
		return l3_service.NewSimulator(
			priceService,
			l2_service.NewStrategyEngine(),
			simulationRunRepository,
			snapshotRepository,
			l3_service.SimulatorOptions{
				StartBalance:                 cfg.StartBalance,
				MaxRuns:                      cfg.MaxRuns,
				MaxLoopRestarts:              cfg.MaxLoopRestarts,
				OpeningPerformanceWindowDays: cfg.OpeningPerformanceWindowDays,
			},
		)
	}

	simulationApp := app.NewSimulationApp(
		simulatorFactory,
		simulationRunRepository,
		snapshotRepository,
		cfg.MaxRuns,
	)

	return &Dependencies{
		Db:            dbConn,
		Secrets:       secrets,
		SimulationApp: simulationApp,
		ApiHandler: &api.ApiHandler{
			SimulationApp: simulationApp,
			Logger:        logger.New(),
		},
	}, nil
}
