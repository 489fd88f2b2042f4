package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"tradesim/internal/db/models/postgres/public/model"
	"tradesim/internal/db/models/postgres/public/table"
	"tradesim/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/lib/pq"
)

// SnapshotRepository stores the per-run snapshot tables. each run gets
// its own <run_id>_simulation_snapshot table with the same layout as the
// simulation_snapshot template
type SnapshotRepository interface {
	CreateTable(ctx context.Context, tx *sql.Tx, runID domain.RunID) error
	Add(tx *sql.Tx, runID domain.RunID, snapshots []domain.Snapshot) ([]domain.Snapshot, error)
	List(tx *sql.Tx, runID domain.RunID) ([]domain.Snapshot, error)
}

type snapshotRepositoryHandler struct {
	Db *sql.DB

	mu       *sync.Mutex
	runLocks map[string]*sync.Mutex
}

func NewSnapshotRepository(db *sql.DB) SnapshotRepository {
	return snapshotRepositoryHandler{
		Db:       db,
		mu:       &sync.Mutex{},
		runLocks: map[string]*sync.Mutex{},
	}
}

func (h snapshotRepositoryHandler) lockRun(runID domain.RunID) func() {
	h.mu.Lock()
	l, ok := h.runLocks[runID.String()]
	if !ok {
		l = &sync.Mutex{}
		h.runLocks[runID.String()] = l
	}
	h.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func tableName(runID domain.RunID) string {
	return runID.SnapshotTablePrefix() + table.SimulationSnapshot.TableName()
}

func (h snapshotRepositoryHandler) CreateTable(ctx context.Context, tx *sql.Tx, runID domain.RunID) error {
	if runID.IsZero() {
		return fmt.Errorf("%w: empty run id", domain.ErrInvalidRunID)
	}

	// identifiers cannot be bound as parameters; run ids are restricted to
	// [a-z0-9_] and quoted on top of that
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		entry_number bigserial PRIMARY KEY,
		date date NOT NULL,
		phase text NOT NULL,
		current_balance numeric NOT NULL,
		total_invested_balance numeric NOT NULL,
		total_cash_profit numeric NOT NULL,
		portfolio_value numeric NOT NULL,
		portfolio_performance double precision NOT NULL,
		ticker text NOT NULL,
		cash_invested numeric NOT NULL,
		cash_withdrawn numeric NOT NULL,
		investment_value numeric NOT NULL,
		investment_performance double precision NOT NULL,
		current_stock_performance double precision NOT NULL,
		number_of_shares bigint NOT NULL
	)`, pq.QuoteIdentifier(tableName(runID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to create snapshot table for %s: %w", runID, err)
	}

	return nil
}

// Add appends snapshots to the run's table. writes for the same run are
// serialized so entry numbers follow insertion order
func (h snapshotRepositoryHandler) Add(tx *sql.Tx, runID domain.RunID, snapshots []domain.Snapshot) ([]domain.Snapshot, error) {
	if len(snapshots) == 0 {
		return []domain.Snapshot{}, nil
	}
	unlock := h.lockRun(runID)
	defer unlock()

	t := table.SimulationSnapshot.WithPrefix(runID.SnapshotTablePrefix())

	models := []model.SimulationSnapshot{}
	for _, s := range snapshots {
		models = append(models, snapshotToModel(s))
	}

	query := t.
		INSERT(t.MutableColumns).
		MODELS(models).
		RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := []model.SimulationSnapshot{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert %d snapshots for %s: %w", len(snapshots), runID, err)
	}

	return snapshotsFromModels(out), nil
}

func (h snapshotRepositoryHandler) List(tx *sql.Tx, runID domain.RunID) ([]domain.Snapshot, error) {
	t := table.SimulationSnapshot.WithPrefix(runID.SnapshotTablePrefix())
	query := t.
		SELECT(t.AllColumns).
		ORDER_BY(t.EntryNumber.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := []model.SimulationSnapshot{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots for %s: %w", runID, err)
	}

	return snapshotsFromModels(out), nil
}

func snapshotToModel(s domain.Snapshot) model.SimulationSnapshot {
	return model.SimulationSnapshot{
		EntryNumber:             s.EntryNumber,
		Date:                    s.Date,
		Phase:                   string(s.Phase),
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
	}
}

func snapshotsFromModels(models []model.SimulationSnapshot) []domain.Snapshot {
	out := []domain.Snapshot{}
	for _, m := range models {
		out = append(out, domain.Snapshot{
			EntryNumber:             m.EntryNumber,
			Date:                    m.Date,
			Phase:                   domain.SnapshotPhase(m.Phase),
			CurrentBalance:          m.CurrentBalance,
			TotalInvestedBalance:    m.TotalInvestedBalance,
			TotalCashProfit:         m.TotalCashProfit,
			PortfolioValue:          m.PortfolioValue,
			PortfolioPerformance:    m.PortfolioPerformance,
			Ticker:                  m.Ticker,
			CashInvested:            m.CashInvested,
			CashWithdrawn:           m.CashWithdrawn,
			InvestmentValue:         m.InvestmentValue,
			InvestmentPerformance:   m.InvestmentPerformance,
			CurrentStockPerformance: m.CurrentStockPerformance,
			NumberOfShares:          m.NumberOfShares,
		})
	}
	return out
}
