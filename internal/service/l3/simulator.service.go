package l3_service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"
	"tradesim/internal/db/models/postgres/public/model"
	"tradesim/internal/domain"
	"tradesim/internal/logger"
	"tradesim/internal/repository"
	l1_service "tradesim/internal/service/l1"
	l2_service "tradesim/internal/service/l2"
	"tradesim/internal/util"

	"github.com/shopspring/decimal"
)

const (
	maxRunIDAttempts = 5

	// loop restart search
	minQualifyingDates = 10
	maxToleranceSteps  = 20
)

var toleranceStep = decimal.NewFromFloat(0.05)

type SimulatorOptions struct {
	StartBalance                 decimal.Decimal
	MaxRuns                      int
	MaxLoopRestarts              int
	OpeningPerformanceWindowDays int
	Rand                         *rand.Rand
}

// Simulator drives one simulation run at a time:
// uninitialised -> configured -> running -> exhausted | completed
type Simulator interface {
	NewSimulation(ctx context.Context) (domain.RunID, error)
	SetTimeframe(ctx context.Context, days int) error
	RunSimulation(ctx context.Context) (*SimulationResult, error)
	TradeStock(ctx context.Context, ticker string, amount int64) (domain.TradeOutcome, error)
	GetTotalValue() decimal.Decimal
	ActivateStrategy(ticker string, strategy domain.Strategy) error
	DeactivateStrategy(ticker string, kind domain.StrategyKind) error
	Status() SimulationStatus
	PerformanceHistory() []domain.PortfolioValue
}

type SimulationResult struct {
	RunID                domain.RunID
	State                domain.SimulationState
	FirstDate            time.Time
	LastDate             time.Time
	TradingDaysSimulated int
	LoopRestarts         int
	DaysRemaining        int
	TotalValue           decimal.Decimal
	Profile              *domain.Profile
}

type SimulationStatus struct {
	RunID         domain.RunID
	State         domain.SimulationState
	StartDate     time.Time
	EndDate       time.Time
	TimeframeDays int
	ValidDates    bool
	Ledger        domain.Ledger
	Holdings      []domain.Holding
	Strategies    map[string][]domain.Strategy
	TotalValue    decimal.Decimal
}

type simulatorHandler struct {
	PriceService            l1_service.PriceService
	StrategyEngine          l2_service.StrategyEngine
	SimulationRunRepository repository.SimulationRunRepository
	SnapshotRepository      repository.SnapshotRepository

	opts SimulatorOptions

	state         domain.SimulationState
	runID         domain.RunID
	ledger        *domain.Ledger
	holdings      map[string]*domain.Holding
	tickers       []string
	startDate     time.Time
	endDate       time.Time
	timeframeDays int
	validDates    bool
	currentDate   time.Time
	dayIndex      int
	history       []domain.PortfolioValue
}

func NewSimulator(
	priceService l1_service.PriceService,
	strategyEngine l2_service.StrategyEngine,
	simulationRunRepository repository.SimulationRunRepository,
	snapshotRepository repository.SnapshotRepository,
	opts SimulatorOptions,
) Simulator {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &simulatorHandler{
		PriceService:            priceService,
		StrategyEngine:          strategyEngine,
		SimulationRunRepository: simulationRunRepository,
		SnapshotRepository:      snapshotRepository,
		opts:                    opts,
		state:                   domain.SimulationState_Uninitialised,
		holdings:                map[string]*domain.Holding{},
	}
}

// NewSimulation opens a fresh persisted run starting on a random trading
// day. the simulator only switches to the new run once everything has
// been loaded and written
func (h *simulatorHandler) NewSimulation(ctx context.Context) (domain.RunID, error) {
	log := logger.FromContext(ctx)

	if h.state == domain.SimulationState_Running {
		return domain.RunID{}, fmt.Errorf("%w: cannot start a new simulation while %s is running", domain.ErrSimulationNotConfigured, h.runID)
	}

	// cheap early rejection. AddWithinLimit enforces the ceiling atomically
	count, err := h.SimulationRunRepository.Count(nil)
	if err != nil {
		return domain.RunID{}, err
	}
	if h.opts.MaxRuns > 0 && count >= int64(h.opts.MaxRuns) {
		return domain.RunID{}, fmt.Errorf("%w: %d of %d runs used", domain.ErrRunLimitReached, count, h.opts.MaxRuns)
	}

	runID, err := h.generateRunID()
	if err != nil {
		return domain.RunID{}, err
	}

	tickers, err := h.PriceService.Tickers(ctx)
	if err != nil {
		return domain.RunID{}, fmt.Errorf("failed to list tickers: %w", err)
	}
	if len(tickers) == 0 {
		return domain.RunID{}, fmt.Errorf("%w: no tickers to simulate", domain.ErrNoPriceData)
	}

	startDate, err := h.pickStartDate(ctx)
	if err != nil {
		return domain.RunID{}, err
	}

	ledger, err := domain.NewLedger(h.opts.StartBalance)
	if err != nil {
		return domain.RunID{}, err
	}

	holdings := map[string]*domain.Holding{}
	symbols := []string{}
	for _, t := range tickers {
		holding := domain.NewHolding(t.Symbol, t.Name)
		err = l1_service.InitialiseHolding(ctx, h.PriceService, holding, startDate, h.opts.OpeningPerformanceWindowDays)
		if err != nil {
			return domain.RunID{}, err
		}
		holdings[t.Symbol] = holding
		symbols = append(symbols, t.Symbol)
	}
	sort.Strings(symbols)

	_, err = h.SimulationRunRepository.AddWithinLimit(ctx, model.SimulationRun{
		RunID:        runID.String(),
		StartBalance: h.opts.StartBalance,
		CreatedAt:    time.Now().UTC(),
	}, h.opts.MaxRuns)
	if err != nil {
		return domain.RunID{}, err
	}
	err = h.SnapshotRepository.CreateTable(ctx, nil, runID)
	if err != nil {
		return domain.RunID{}, err
	}

	h.runID = runID
	h.ledger = ledger
	h.holdings = holdings
	h.tickers = symbols
	h.startDate = startDate
	h.endDate = startDate
	h.currentDate = startDate
	h.timeframeDays = 0
	h.validDates = false
	h.dayIndex = 0
	h.ledger.Revalue(h.holdingList())
	h.history = []domain.PortfolioValue{{
		Date:       startDate,
		TotalValue: h.GetTotalValue(),
	}}

	snapshots := []domain.Snapshot{}
	for _, t := range h.tickers {
		snapshots = append(snapshots, domain.NewSnapshot(startDate, domain.SnapshotPhase_Initial, *h.ledger, *h.holdings[t]))
	}
	_, err = h.SnapshotRepository.Add(nil, runID, snapshots)
	if err != nil {
		h.state = domain.SimulationState_Uninitialised
		return domain.RunID{}, fmt.Errorf("failed to record initial snapshot: %w", err)
	}
	h.state = domain.SimulationState_Configured

	log.Infof("created simulation %s starting %s with %d tickers", runID, startDate.Format(time.DateOnly), len(h.tickers))

	return runID, nil
}

func (h *simulatorHandler) generateRunID() (domain.RunID, error) {
	for i := 0; i < maxRunIDAttempts; i++ {
		runID := domain.GenerateRunID()
		exists, err := h.SimulationRunRepository.Exists(nil, runID.String())
		if err != nil {
			return domain.RunID{}, err
		}
		if !exists {
			return runID, nil
		}
	}
	return domain.RunID{}, fmt.Errorf("%w: could not generate an unused run id after %d attempts", domain.ErrInvalidRunID, maxRunIDAttempts)
}

// pickStartDate picks a random trading day, never the first one, so the
// opening performance always has an earlier day to compare with
func (h *simulatorHandler) pickStartDate(ctx context.Context) (time.Time, error) {
	earliest, err := h.PriceService.EarliestDate(ctx)
	if err != nil {
		return time.Time{}, err
	}
	latest, err := h.PriceService.LatestDate(ctx)
	if err != nil {
		return time.Time{}, err
	}
	days, err := h.PriceService.TradingDays(ctx, earliest, latest)
	if err != nil {
		return time.Time{}, err
	}
	if len(days) < 2 {
		return time.Time{}, fmt.Errorf("%w: need at least 2 trading days, found %d", domain.ErrNoTradingDates, len(days))
	}

	return days[1+h.opts.Rand.Intn(len(days)-1)], nil
}

func (h *simulatorHandler) SetTimeframe(ctx context.Context, days int) error {
	switch h.state {
	case domain.SimulationState_Uninitialised, domain.SimulationState_Running:
		return fmt.Errorf("%w: cannot set timeframe while %s", domain.ErrSimulationNotConfigured, h.state)
	}
	if days <= 0 {
		return fmt.Errorf("%w: timeframe must be > 0 days, got %d", domain.ErrInvalidTimeframe, days)
	}

	err := h.applyTimeframe(ctx, days)
	if err != nil {
		return err
	}
	h.state = domain.SimulationState_Configured
	return nil
}

// applyTimeframe sets the window to [startDate, startDate+days] and checks
// it against available history
func (h *simulatorHandler) applyTimeframe(ctx context.Context, days int) error {
	earliest, err := h.PriceService.EarliestDate(ctx)
	if err != nil {
		return err
	}
	latest, err := h.PriceService.LatestDate(ctx)
	if err != nil {
		return err
	}

	h.timeframeDays = days
	h.endDate = h.startDate.AddDate(0, 0, days)
	h.validDates = !h.startDate.Before(earliest) && !latest.Before(h.endDate)
	return nil
}

// RunSimulation simulates the configured window. when the window runs past
// the end of history it restarts from an earlier date with similar prices
// until the requested days are used up or the restart budget is spent, in
// which case the run is left exhausted and can be continued by calling
// RunSimulation again
func (h *simulatorHandler) RunSimulation(ctx context.Context) (*SimulationResult, error) {
	log := logger.FromContext(ctx)

	switch h.state {
	case domain.SimulationState_Configured:
		if h.timeframeDays <= 0 {
			return nil, fmt.Errorf("%w: set a timeframe before running", domain.ErrInvalidTimeframe)
		}
	case domain.SimulationState_Exhausted:
	default:
		return nil, fmt.Errorf("%w: cannot run simulation while %s", domain.ErrSimulationNotConfigured, h.state)
	}

	h.state = domain.SimulationState_Running
	profile, endProfile := domain.NewProfile()
	defer endProfile()
	result := &SimulationResult{
		RunID:     h.runID,
		FirstDate: h.startDate,
		Profile:   profile,
	}

	for pass := 0; ; pass++ {
		_, endSpan := profile.StartNewSpan(fmt.Sprintf("pass %d", pass))
		simulated, err := h.simRun(ctx)
		endSpan()
		result.TradingDaysSimulated += len(simulated)
		if len(simulated) > 0 {
			result.LastDate = simulated[len(simulated)-1]
		}
		covered := h.coveredDays(simulated)
		if err != nil {
			h.suspend(ctx, simulated, h.timeframeDays-covered)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("simulation %s interrupted: %w", h.runID, err)
			}
			return nil, err
		}

		if h.validDates {
			break
		}
		daysLeft := h.timeframeDays - covered
		if daysLeft <= 0 {
			break
		}
		if result.LoopRestarts >= h.opts.MaxLoopRestarts {
			h.suspend(ctx, simulated, daysLeft)
			log.Warnf("simulation %s used all %d loop restarts with %d days left", h.runID, h.opts.MaxLoopRestarts, daysLeft)
			result.State = h.state
			result.DaysRemaining = daysLeft
			result.TotalValue = h.GetTotalValue()
			return result, nil
		}

		_, endSpan = profile.StartNewSpan("loop restart")
		err = h.restart(ctx, daysLeft)
		endSpan()
		if err != nil {
			h.suspend(ctx, simulated, daysLeft)
			return nil, err
		}
		result.LoopRestarts++
	}

	if result.LastDate.IsZero() {
		h.startDate = h.endDate.AddDate(0, 0, 1)
	} else {
		next, err := h.nextDay(ctx, result.LastDate)
		if err != nil {
			h.state = domain.SimulationState_Exhausted
			return nil, err
		}
		h.startDate = next
	}
	h.state = domain.SimulationState_Completed

	result.State = h.state
	result.TotalValue = h.GetTotalValue()
	endProfile()
	log.Infof("simulation %s completed %d trading days with %d loop restarts, total value %s", h.runID, result.TradingDaysSimulated, result.LoopRestarts, result.TotalValue.StringFixed(2))

	return result, nil
}

// simRun simulates every trading day in [startDate, endDate] and returns
// the days that completed
func (h *simulatorHandler) simRun(ctx context.Context) ([]time.Time, error) {
	simulated := []time.Time{}

	days, err := h.PriceService.TradingDays(ctx, h.startDate, h.endDate)
	if err != nil {
		return simulated, err
	}

	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return simulated, err
		}
		err = h.simulateDay(ctx, day)
		if err != nil {
			return simulated, fmt.Errorf("failed to simulate %s: %w", day.Format(time.DateOnly), err)
		}
		simulated = append(simulated, day)
	}

	return simulated, nil
}

func (h *simulatorHandler) simulateDay(ctx context.Context, day time.Time) error {
	log := logger.FromContext(ctx)

	for _, t := range h.tickers {
		quote, err := l1_service.UpdateHolding(ctx, h.PriceService, h.holdings[t], day)
		if err != nil {
			return err
		}
		if quote.Approximate {
			log.Debugf("%s has no price on %s, using %s", t, day.Format(time.DateOnly), quote.Date.Format(time.DateOnly))
		}
	}
	h.currentDate = day
	h.ledger.Revalue(h.holdingList())

	trader := strategyTrader{simulator: h}
	for _, t := range h.tickers {
		_, err := h.SnapshotRepository.Add(nil, h.runID, []domain.Snapshot{
			domain.NewSnapshot(day, domain.SnapshotPhase_Start, *h.ledger, *h.holdings[t]),
		})
		if err != nil {
			return err
		}

		_, err = h.StrategyEngine.Apply(ctx, *h.holdings[t], trader, h.dayIndex)
		if err != nil {
			return err
		}
		h.ledger.Revalue(h.holdingList())

		_, err = h.SnapshotRepository.Add(nil, h.runID, []domain.Snapshot{
			domain.NewSnapshot(day, domain.SnapshotPhase_End, *h.ledger, *h.holdings[t]),
		})
		if err != nil {
			return err
		}
	}

	h.history = append(h.history, domain.PortfolioValue{
		Date:       day,
		TotalValue: h.GetTotalValue(),
	})
	h.dayIndex++

	return nil
}

// coveredDays counts calendar days from startDate through the last
// simulated day
func (h *simulatorHandler) coveredDays(simulated []time.Time) int {
	if len(simulated) == 0 {
		return 0
	}
	last := simulated[len(simulated)-1]
	return int(util.DateOnly(last).Sub(util.DateOnly(h.startDate)).Hours()/24) + 1
}

// suspend parks the run after its last completed day so RunSimulation can
// pick it up again with the remaining days
func (h *simulatorHandler) suspend(ctx context.Context, simulated []time.Time, daysLeft int) {
	log := logger.FromContext(ctx)
	h.state = domain.SimulationState_Exhausted

	if len(simulated) > 0 {
		next, err := h.nextDay(ctx, simulated[len(simulated)-1])
		if err != nil {
			next = simulated[len(simulated)-1].AddDate(0, 0, 1)
		}
		h.startDate = next
	}
	if daysLeft <= 0 {
		daysLeft = 1
	}
	err := h.applyTimeframe(ctx, daysLeft)
	if err != nil {
		log.Warnf("failed to check timeframe for suspended simulation %s: %v", h.runID, err)
		h.timeframeDays = daysLeft
		h.endDate = h.startDate.AddDate(0, 0, daysLeft)
		h.validDates = false
	}
}

// nextDay is the trading day after date, or the next calendar day when
// history ends at date
func (h *simulatorHandler) nextDay(ctx context.Context, date time.Time) (time.Time, error) {
	days, err := h.PriceService.TradingDays(ctx, date.AddDate(0, 0, 1), date.AddDate(0, 0, 10))
	if err != nil {
		return time.Time{}, err
	}
	if len(days) > 0 {
		return days[0], nil
	}
	return date.AddDate(0, 0, 1), nil
}

// restart moves startDate back to an earlier date with prices close to the
// last available date and sets the window to the remaining days
func (h *simulatorHandler) restart(ctx context.Context, daysLeft int) error {
	log := logger.FromContext(ctx)

	latest, err := h.PriceService.LatestDate(ctx)
	if err != nil {
		return err
	}
	restartDate, tolerance, err := h.findRestartDate(ctx, latest)
	if err != nil {
		return err
	}

	log.Infof(
		"simulation %s ran out of history on %s, restarting from %s (tolerance %s%%) with %d days left",
		h.runID,
		latest.Format(time.DateOnly),
		restartDate.Format(time.DateOnly),
		tolerance.Mul(decimal.NewFromInt(100)).String(),
		daysLeft,
	)

	h.startDate = restartDate
	return h.applyTimeframe(ctx, daysLeft)
}

// findRestartDate widens a band around each ticker's price on lastDate, 5%
// at a time, until at least minQualifyingDates earlier dates have every
// ticker inside its band. the earliest such date wins
func (h *simulatorHandler) findRestartDate(ctx context.Context, lastDate time.Time) (time.Time, decimal.Decimal, error) {
	if len(h.tickers) == 0 {
		return time.Time{}, decimal.Zero, fmt.Errorf("%w: no tracked tickers", domain.ErrNoTradingDates)
	}

	anchors := map[string]decimal.Decimal{}
	for _, t := range h.tickers {
		quote, err := h.PriceService.OpenValue(ctx, t, lastDate)
		if err != nil {
			return time.Time{}, decimal.Zero, err
		}
		anchors[t] = quote.Price
	}

	one := decimal.NewFromInt(1)

	for step := 1; step <= maxToleranceSteps; step++ {
		r := toleranceStep.Mul(decimal.NewFromInt(int64(step)))

		counts := map[time.Time]int{}
		for _, t := range h.tickers {
			price := anchors[t]
			dates, err := h.PriceService.DatesInBand(ctx, t, price.Mul(one.Sub(r)), price.Mul(one.Add(r)), lastDate)
			if err != nil {
				return time.Time{}, decimal.Zero, err
			}
			for _, d := range dates {
				counts[util.DateOnly(d)]++
			}
		}

		// a date qualifies only when it recurs in every ticker's band
		qualifying := []time.Time{}
		for d, c := range counts {
			if c == len(h.tickers) {
				qualifying = append(qualifying, d)
			}
		}
		if len(qualifying) < minQualifyingDates {
			continue
		}

		sort.Slice(qualifying, func(i, j int) bool {
			return qualifying[i].Before(qualifying[j])
		})
		return qualifying[0], r, nil
	}

	return time.Time{}, decimal.Zero, fmt.Errorf("%w: no earlier date has prices near %s", domain.ErrNoTradingDates, lastDate.Format(time.DateOnly))
}

// TradeStock buys (amount > 0) or sells (amount < 0) shares at the current
// price. filled trades are recorded as a trade snapshot
func (h *simulatorHandler) TradeStock(ctx context.Context, ticker string, amount int64) (domain.TradeOutcome, error) {
	switch h.state {
	case domain.SimulationState_Uninitialised, domain.SimulationState_Running:
		return "", fmt.Errorf("%w: cannot trade while %s", domain.ErrSimulationNotConfigured, h.state)
	}

	outcome, err := h.trade(ticker, amount)
	if err != nil || !outcome.Ok() {
		return outcome, err
	}

	_, err = h.SnapshotRepository.Add(nil, h.runID, []domain.Snapshot{
		domain.NewSnapshot(h.currentDate, domain.SnapshotPhase_Trade, *h.ledger, *h.holdings[ticker]),
	})
	if err != nil {
		return outcome, fmt.Errorf("failed to record trade: %w", err)
	}

	return outcome, nil
}

func (h *simulatorHandler) trade(ticker string, amount int64) (domain.TradeOutcome, error) {
	holding, ok := h.holdings[ticker]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownTicker, ticker)
	}

	var (
		outcome domain.TradeOutcome
		err     error
	)
	switch {
	case amount > 0:
		outcome, err = h.ledger.Purchase(holding, amount)
	case amount < 0:
		outcome, err = h.ledger.Sell(holding, -amount)
	default:
		return domain.TradeOutcome_NoOp, nil
	}
	if err != nil {
		return "", err
	}
	h.ledger.Revalue(h.holdingList())

	return outcome, nil
}

// strategyTrader lets strategies trade without writing trade snapshots;
// the daily snapshot already records the result
type strategyTrader struct {
	simulator *simulatorHandler
}

func (t strategyTrader) TradeStock(ctx context.Context, ticker string, amount int64) (domain.TradeOutcome, error) {
	return t.simulator.trade(ticker, amount)
}

func (h *simulatorHandler) GetTotalValue() decimal.Decimal {
	if h.ledger == nil {
		return decimal.Zero
	}
	return h.ledger.TotalValue(h.holdingList())
}

func (h *simulatorHandler) ActivateStrategy(ticker string, strategy domain.Strategy) error {
	if _, ok := h.holdings[ticker]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownTicker, ticker)
	}
	return h.StrategyEngine.Activate(ticker, strategy)
}

func (h *simulatorHandler) DeactivateStrategy(ticker string, kind domain.StrategyKind) error {
	if _, ok := h.holdings[ticker]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownTicker, ticker)
	}
	h.StrategyEngine.Deactivate(ticker, kind)
	return nil
}

func (h *simulatorHandler) Status() SimulationStatus {
	status := SimulationStatus{
		RunID:         h.runID,
		State:         h.state,
		StartDate:     h.startDate,
		EndDate:       h.endDate,
		TimeframeDays: h.timeframeDays,
		ValidDates:    h.validDates,
		Holdings:      []domain.Holding{},
		Strategies:    map[string][]domain.Strategy{},
		TotalValue:    h.GetTotalValue(),
	}
	if h.ledger != nil {
		status.Ledger = *h.ledger
	}
	for _, t := range h.tickers {
		status.Holdings = append(status.Holdings, *h.holdings[t])
		if active := h.StrategyEngine.Active(t); len(active) > 0 {
			status.Strategies[t] = active
		}
	}
	return status
}

func (h *simulatorHandler) PerformanceHistory() []domain.PortfolioValue {
	out := make([]domain.PortfolioValue, len(h.history))
	copy(out, h.history)
	return out
}

func (h *simulatorHandler) holdingList() []*domain.Holding {
	out := make([]*domain.Holding, 0, len(h.tickers))
	for _, t := range h.tickers {
		out = append(out, h.holdings[t])
	}
	return out
}
