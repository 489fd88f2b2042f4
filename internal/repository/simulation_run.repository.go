package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tradesim/internal/db/models/postgres/public/model"
	"tradesim/internal/db/models/postgres/public/table"
	"tradesim/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type SimulationRunRepository interface {
	Add(tx *sql.Tx, run model.SimulationRun) (*model.SimulationRun, error)
	AddWithinLimit(ctx context.Context, run model.SimulationRun, maxRuns int) (*model.SimulationRun, error)
	Exists(tx *sql.Tx, runID string) (bool, error)
	Count(tx *sql.Tx) (int64, error)
	List(tx *sql.Tx) ([]model.SimulationRun, error)
}

type simulationRunRepositoryHandler struct {
	Db *sql.DB
}

func NewSimulationRunRepository(db *sql.DB) SimulationRunRepository {
	return simulationRunRepositoryHandler{Db: db}
}

func (h simulationRunRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func (h simulationRunRepositoryHandler) Add(tx *sql.Tx, run model.SimulationRun) (*model.SimulationRun, error) {
	query := table.SimulationRun.
		INSERT(table.SimulationRun.AllColumns).
		MODEL(run).
		RETURNING(table.SimulationRun.AllColumns)

	out := model.SimulationRun{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert simulation run %s: %w", run.RunID, err)
	}

	return &out, nil
}

// AddWithinLimit inserts the run unless maxRuns runs already exist. the
// table is locked against concurrent inserts between the count and the
// insert. maxRuns <= 0 means no limit
func (h simulationRunRepositoryHandler) AddWithinLimit(ctx context.Context, run model.SimulationRun, maxRuns int) (*model.SimulationRun, error) {
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = table.SimulationRun.LOCK().IN(postgres.LOCK_SHARE_ROW_EXCLUSIVE).ExecContext(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock simulation runs: %w", err)
	}

	if maxRuns > 0 {
		count, err := h.Count(tx)
		if err != nil {
			return nil, err
		}
		if count >= int64(maxRuns) {
			return nil, fmt.Errorf("%w: %d of %d runs used", domain.ErrRunLimitReached, count, maxRuns)
		}
	}

	out, err := h.Add(tx, run)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit simulation run %s: %w", run.RunID, err)
	}

	return out, nil
}

func (h simulationRunRepositoryHandler) Exists(tx *sql.Tx, runID string) (bool, error) {
	query := table.SimulationRun.
		SELECT(table.SimulationRun.AllColumns).
		WHERE(table.SimulationRun.RunID.EQ(postgres.String(runID)))

	out := model.SimulationRun{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to look up simulation run %s: %w", runID, err)
	}

	return true, nil
}

func (h simulationRunRepositoryHandler) Count(tx *sql.Tx) (int64, error) {
	query := postgres.SELECT(
		postgres.COUNT(postgres.STAR).AS("count"),
	).FROM(table.SimulationRun)

	out := struct {
		Count int64 `alias:"count"`
	}{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return 0, fmt.Errorf("failed to count simulation runs: %w", err)
	}

	return out.Count, nil
}

func (h simulationRunRepositoryHandler) List(tx *sql.Tx) ([]model.SimulationRun, error) {
	query := table.SimulationRun.
		SELECT(table.SimulationRun.AllColumns).
		ORDER_BY(table.SimulationRun.CreatedAt.DESC())

	out := []model.SimulationRun{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation runs: %w", err)
	}

	return out, nil
}
