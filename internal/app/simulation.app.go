package app

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"tradesim/internal/db/models/postgres/public/model"
	"tradesim/internal/domain"
	"tradesim/internal/logger"
	"tradesim/internal/repository"
	l1_service "tradesim/internal/service/l1"
	l3_service "tradesim/internal/service/l3"
)

// SimulatorFactory builds an unconfigured simulator with its own
// strategy engine. one is created per open run
type SimulatorFactory func() l3_service.Simulator

// SimulationApp hosts every simulation opened by this process. calls
// against the same run are serialized; different runs proceed
// independently
type SimulationApp interface {
	NewSimulation(ctx context.Context) (domain.RunID, error)
	SetTimeframe(ctx context.Context, runID string, days int) error
	Trade(ctx context.Context, runID string, ticker string, amount int64) (domain.TradeOutcome, error)
	ActivateStrategy(ctx context.Context, runID string, ticker string, kind domain.StrategyKind, params domain.StrategyParams) error
	DeactivateStrategy(ctx context.Context, runID string, ticker string, kind domain.StrategyKind) error
	Run(ctx context.Context, runID string) (*l3_service.SimulationResult, error)
	Status(ctx context.Context, runID string) (*l3_service.SimulationStatus, error)
	Summary(ctx context.Context, runID string) (*l3_service.SimulationMetrics, error)
	Snapshots(ctx context.Context, runID string) ([]domain.Snapshot, error)
	ExportCSV(ctx context.Context, runID string, w io.Writer) error
	ListRuns(ctx context.Context) ([]model.SimulationRun, error)
	OpenRuns() []domain.RunID
	Close(runID string) error
}

type openRun struct {
	mu  sync.Mutex
	sim l3_service.Simulator
}

type simulationAppHandler struct {
	SimulatorFactory        SimulatorFactory
	SimulationRunRepository repository.SimulationRunRepository
	SnapshotRepository      repository.SnapshotRepository

	maxOpenRuns int

	mu   sync.RWMutex
	runs map[string]*openRun
	// slots reserved by NewSimulation calls still in flight
	pending int
}

func NewSimulationApp(
	simulatorFactory SimulatorFactory,
	simulationRunRepository repository.SimulationRunRepository,
	snapshotRepository repository.SnapshotRepository,
	maxOpenRuns int,
) SimulationApp {
	return &simulationAppHandler{
		SimulatorFactory:        simulatorFactory,
		SimulationRunRepository: simulationRunRepository,
		SnapshotRepository:      snapshotRepository,
		maxOpenRuns:             maxOpenRuns,
		runs:                    map[string]*openRun{},
	}
}

func (h *simulationAppHandler) NewSimulation(ctx context.Context) (domain.RunID, error) {
	h.mu.Lock()
	open := len(h.runs) + h.pending
	if h.maxOpenRuns > 0 && open >= h.maxOpenRuns {
		h.mu.Unlock()
		return domain.RunID{}, fmt.Errorf("%w: %d runs already open", domain.ErrRunLimitReached, open)
	}
	h.pending++
	h.mu.Unlock()

	sim := h.SimulatorFactory()
	runID, err := sim.NewSimulation(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending--
	if err != nil {
		return domain.RunID{}, fmt.Errorf("failed to create simulation: %w", err)
	}
	h.runs[runID.String()] = &openRun{sim: sim}

	return runID, nil
}

// withRun looks up an open run and holds its lock while fn runs
func (h *simulationAppHandler) withRun(runID string, fn func(sim l3_service.Simulator) error) error {
	id, err := domain.NewRunID(runID)
	if err != nil {
		return err
	}

	h.mu.RLock()
	run, ok := h.runs[id.String()]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s is not open", domain.ErrRunNotFound, id)
	}

	run.mu.Lock()
	defer run.mu.Unlock()
	return fn(run.sim)
}

func (h *simulationAppHandler) SetTimeframe(ctx context.Context, runID string, days int) error {
	return h.withRun(runID, func(sim l3_service.Simulator) error {
		return sim.SetTimeframe(ctx, days)
	})
}

func (h *simulationAppHandler) Trade(ctx context.Context, runID string, ticker string, amount int64) (domain.TradeOutcome, error) {
	var outcome domain.TradeOutcome
	err := h.withRun(runID, func(sim l3_service.Simulator) error {
		var err error
		outcome, err = sim.TradeStock(ctx, ticker, amount)
		return err
	})
	return outcome, err
}

func (h *simulationAppHandler) ActivateStrategy(ctx context.Context, runID string, ticker string, kind domain.StrategyKind, params domain.StrategyParams) error {
	strategy, err := domain.NewStrategy(kind, params)
	if err != nil {
		return err
	}
	return h.withRun(runID, func(sim l3_service.Simulator) error {
		if err := sim.ActivateStrategy(ticker, strategy); err != nil {
			return err
		}
		logger.FromContext(ctx).Infof("activated %s on %s for %s", kind, ticker, runID)
		return nil
	})
}

func (h *simulationAppHandler) DeactivateStrategy(ctx context.Context, runID string, ticker string, kind domain.StrategyKind) error {
	return h.withRun(runID, func(sim l3_service.Simulator) error {
		return sim.DeactivateStrategy(ticker, kind)
	})
}

func (h *simulationAppHandler) Run(ctx context.Context, runID string) (*l3_service.SimulationResult, error) {
	var result *l3_service.SimulationResult
	err := h.withRun(runID, func(sim l3_service.Simulator) error {
		var err error
		result, err = sim.RunSimulation(ctx)
		return err
	})
	return result, err
}

func (h *simulationAppHandler) Status(ctx context.Context, runID string) (*l3_service.SimulationStatus, error) {
	var status l3_service.SimulationStatus
	err := h.withRun(runID, func(sim l3_service.Simulator) error {
		status = sim.Status()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (h *simulationAppHandler) Summary(ctx context.Context, runID string) (*l3_service.SimulationMetrics, error) {
	var metrics *l3_service.SimulationMetrics
	err := h.withRun(runID, func(sim l3_service.Simulator) error {
		history := sim.PerformanceHistory()
		if len(history) < 2 {
			return fmt.Errorf("%w: %s has not simulated any days yet", domain.ErrSimulationNotConfigured, runID)
		}
		var err error
		metrics, err = l3_service.CalculateMetrics(history)
		return err
	})
	return metrics, err
}

// Snapshots reads the persisted history of any run, open or not
func (h *simulationAppHandler) Snapshots(ctx context.Context, runID string) ([]domain.Snapshot, error) {
	id, err := domain.NewRunID(runID)
	if err != nil {
		return nil, err
	}

	exists, err := h.SimulationRunRepository.Exists(nil, id.String())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
	}

	return h.SnapshotRepository.List(nil, id)
}

func (h *simulationAppHandler) ExportCSV(ctx context.Context, runID string, w io.Writer) error {
	snapshots, err := h.Snapshots(ctx, runID)
	if err != nil {
		return err
	}
	return l1_service.ExportSnapshotsCSV(w, snapshots)
}

func (h *simulationAppHandler) ListRuns(ctx context.Context) ([]model.SimulationRun, error) {
	return h.SimulationRunRepository.List(nil)
}

func (h *simulationAppHandler) OpenRuns() []domain.RunID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := []string{}
	for id := range h.runs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := []domain.RunID{}
	for _, id := range ids {
		runID, err := domain.NewRunID(id)
		if err != nil {
			continue
		}
		out = append(out, runID)
	}
	return out
}

// Close drops an open run from the registry. its persisted history is
// kept
func (h *simulationAppHandler) Close(runID string) error {
	return h.withRun(runID, func(sim l3_service.Simulator) error {
		h.mu.Lock()
		delete(h.runs, runID)
		h.mu.Unlock()
		return nil
	})
}
