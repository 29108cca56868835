// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/models"
)

type runHistoryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRunHistoryRepository returns a [RunHistoryRepository] backed by db.
func NewRunHistoryRepository(db *DB, logger *logger.Logger) RunHistoryRepository {
	return &runHistoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *runHistoryRepository) SaveRun(ctx context.Context, run models.PropagationRun) (id int64, err error) {
	log := logger.FromContext(ctx)

	runQuery, runArgs, err := buildInsertRunQuery(run)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "runHistoryRepository.SaveRun").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, runQuery, runArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "runHistoryRepository.SaveRun").
			Str("template", run.Template).
			Msg("failed to insert propagation run")
		return 0, fmt.Errorf("%w: insert run: %w", ErrExecutingStatement, err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: run id: %w", ErrExecutingStatement, err)
	}

	if len(run.Outcomes) > 0 {
		outcomesQuery, outcomesArgs, buildErr := buildInsertOutcomesQuery(id, run.Outcomes)
		if buildErr != nil {
			err = fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			return 0, err
		}
		if _, err = tx.ExecContext(ctx, outcomesQuery, outcomesArgs...); err != nil {
			log.Err(err).
				Str("func", "runHistoryRepository.SaveRun").
				Int64("run_id", id).
				Msg("failed to insert propagation outcomes")
			return 0, fmt.Errorf("%w: insert outcomes: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "runHistoryRepository.SaveRun").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return id, nil
}

func (r *runHistoryRepository) ListRuns(ctx context.Context, limit int) ([]models.PropagationRun, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRunsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "runHistoryRepository.ListRuns").Msg("failed to query propagation runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	runs := make([]models.PropagationRun, 0)
	for rows.Next() {
		run, scanErr := scanRun(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "runHistoryRepository.ListRuns").Msg("failed to scan propagation run row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		runs = append(runs, run)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return runs, nil
}

func (r *runHistoryRepository) GetRun(ctx context.Context, id int64) (models.PropagationRun, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRunQuery(id)
	if err != nil {
		return models.PropagationRun{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	run, err := scanRun(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PropagationRun{}, fmt.Errorf("%w: id=%d", ErrRunNotFound, id)
		}
		log.Err(err).Str("func", "runHistoryRepository.GetRun").Int64("run_id", id).Msg("failed to get propagation run")
		return models.PropagationRun{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	run.Outcomes, err = r.getOutcomes(ctx, id)
	if err != nil {
		return models.PropagationRun{}, err
	}

	return run, nil
}

func (r *runHistoryRepository) getOutcomes(ctx context.Context, runID int64) ([]models.RunOutcome, error) {
	query, args, err := buildGetOutcomesQuery(runID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	outcomes := make([]models.RunOutcome, 0)
	for rows.Next() {
		var (
			o      models.RunOutcome
			status string
		)
		if err = rows.Scan(&o.Position, &o.Target, &status, &o.Reason); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		o.Status = models.ParseOutcomeStatus(status)
		outcomes = append(outcomes, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return outcomes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (models.PropagationRun, error) {
	var run models.PropagationRun
	err := row.Scan(
		&run.ID,
		&run.Template,
		&run.StartedAt,
		&run.FinishedAt,
		&run.Total,
		&run.Copied,
		&run.Failed,
	)
	return run, err
}
