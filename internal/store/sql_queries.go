// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/tidy-finder/models"
)

const (
	runsTable     = "propagation_runs"
	outcomesTable = "propagation_outcomes"
)

var (
	runColumns     = []string{"id", "template", "started_at", "finished_at", "total", "copied", "failed"}
	outcomeColumns = []string{"position", "target", "status", "reason"}
)

// SQLite uses '?' placeholders, which is squirrel's default format.
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertRunQuery(run models.PropagationRun) (string, []any, error) {
	return sqlBuilder.
		Insert(runsTable).
		Columns("template", "started_at", "finished_at", "total", "copied", "failed").
		Values(run.Template, run.StartedAt.UTC(), run.FinishedAt.UTC(), run.Total, run.Copied, run.Failed).
		ToSql()
}

func buildInsertOutcomesQuery(runID int64, outcomes []models.RunOutcome) (string, []any, error) {
	q := sqlBuilder.
		Insert(outcomesTable).
		Columns("run_id", "position", "target", "status", "reason")
	for _, o := range outcomes {
		q = q.Values(runID, o.Position, o.Target, o.Status.String(), o.Reason)
	}

	return q.ToSql()
}

func buildListRunsQuery(limit int) (string, []any, error) {
	q := sqlBuilder.
		Select(runColumns...).
		From(runsTable).
		OrderBy("started_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	return q.ToSql()
}

func buildGetRunQuery(id int64) (string, []any, error) {
	return sqlBuilder.
		Select(runColumns...).
		From(runsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildGetOutcomesQuery(runID int64) (string, []any, error) {
	return sqlBuilder.
		Select(outcomeColumns...).
		From(outcomesTable).
		Where(sq.Eq{"run_id": runID}).
		OrderBy("position").
		ToSql()
}
