// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/propagation"
	"github.com/MKhiriev/tidy-finder/internal/store"
	"github.com/MKhiriev/tidy-finder/models"
)

type templateService struct {
	engine  *propagation.Engine
	history store.RunHistoryRepository
	running atomic.Bool
	now     func() time.Time
	logger  *logger.Logger
}

// NewTemplateService returns a [TemplateService] that records every run in
// history. history may be nil, in which case runs are not recorded.
func NewTemplateService(engine *propagation.Engine, history store.RunHistoryRepository, log *logger.Logger) TemplateService {
	return &templateService{
		engine:  engine,
		history: history,
		now:     time.Now,
		logger:  log,
	}
}

func (t *templateService) Apply(ctx context.Context, template string, targets []string, progress propagation.ProgressFunc) (models.PropagationReport, error) {
	if !t.running.CompareAndSwap(false, true) {
		return models.PropagationReport{}, ErrRunInProgress
	}
	defer t.running.Store(false)

	if strings.TrimSpace(template) == "" {
		return models.PropagationReport{}, ErrNoTemplate
	}

	set := models.NewTargetSet(template)
	set.Add(targets...)
	if set.Len() == 0 {
		return models.PropagationReport{}, ErrNoTargets
	}

	log := t.logger.With().Str("template", set.Template()).Int("targets", set.Len()).Logger()

	blob, err := propagation.ValidateTemplate(set.Template())
	if err != nil {
		log.Warn().Err(err).Msg("template folder rejected")
		return models.PropagationReport{}, err
	}

	report := models.PropagationReport{
		Template:  set.Template(),
		StartedAt: t.now(),
	}
	report.Outcomes = t.engine.Propagate(ctx, blob, set.Paths(), progress)
	report.FinishedAt = t.now()

	log.Info().
		Int("copied", report.CopiedCount()).
		Int("failed", len(report.Failures())).
		Dur("took", report.FinishedAt.Sub(report.StartedAt)).
		Msg("propagation finished")

	t.record(context.WithoutCancel(ctx), report)

	return report, nil
}

// record stores the run in history. A history failure never fails the run.
func (t *templateService) record(ctx context.Context, report models.PropagationReport) {
	if t.history == nil {
		return
	}

	id, err := t.history.SaveRun(ctx, models.NewPropagationRun(report))
	if err != nil {
		t.logger.Warn().Err(err).Msg("failed to record propagation run")
		return
	}
	t.logger.Debug().Int64("run_id", id).Msg("propagation run recorded")
}

func (t *templateService) Running() bool {
	return t.running.Load()
}

func (t *templateService) History(ctx context.Context, limit int) ([]models.PropagationRun, error) {
	if t.history == nil {
		return []models.PropagationRun{}, nil
	}
	return t.history.ListRuns(ctx, limit)
}

func (t *templateService) Run(ctx context.Context, id int64) (models.PropagationRun, error) {
	if t.history == nil {
		return models.PropagationRun{}, store.ErrRunNotFound
	}
	return t.history.GetRun(ctx, id)
}
