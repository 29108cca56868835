// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package propagation

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/utils"
	"github.com/MKhiriev/tidy-finder/models"
)

// Progress is reported after the outcome of a target has been committed.
// Done increases by exactly one per call and ends at Total.
type Progress struct {
	Done    int
	Total   int
	Outcome models.PropagationOutcome
}

// ProgressFunc receives progress updates. It runs on the propagation
// goroutine between targets and must not block for long.
type ProgressFunc func(Progress)

// Engine copies a template's view-state metadata into target folders.
//
// Targets are processed strictly in sequence. A failing target never stops
// the run; every target gets exactly one outcome.
type Engine struct {
	hider  Hider
	mode   fs.FileMode
	logger *logger.Logger
}

// NewEngine returns an Engine that marks written files hidden with hider.
func NewEngine(hider Hider, log *logger.Logger) *Engine {
	return &Engine{
		hider:  hider,
		mode:   MetadataFileMode,
		logger: log,
	}
}

// Propagate writes blob into the metadata file of every target, in order.
//
// Cancellation of ctx is honoured only between targets: the target being
// processed when ctx is canceled completes, and every remaining target is
// recorded as failed with ErrCanceled. An empty targets slice yields an
// empty result.
func (e *Engine) Propagate(ctx context.Context, blob ViewStateBlob, targets []string, progress ProgressFunc) []models.PropagationOutcome {
	outcomes := make([]models.PropagationOutcome, 0, len(targets))

	for i, target := range targets {
		var outcome models.PropagationOutcome
		if ctxErr := ctx.Err(); ctxErr != nil {
			outcome = failed(target, targetError(target, ErrCanceled, ctxErr))
		} else {
			outcome = e.copyTo(ctx, blob, target)
		}
		outcomes = append(outcomes, outcome)

		if progress != nil {
			progress(Progress{Done: i + 1, Total: len(targets), Outcome: outcome})
		}
	}

	return outcomes
}

func (e *Engine) copyTo(ctx context.Context, blob ViewStateBlob, target string) models.PropagationOutcome {
	log := e.logger.With().Str("target", target).Logger()

	info, err := os.Stat(target)
	switch {
	case errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR):
		log.Warn().Err(err).Msg("target folder does not exist, skipping")
		return failed(target, targetError(target, ErrTargetMissing, nil))
	case err != nil:
		log.Err(err).Msg("failed to inspect target folder")
		return failed(target, targetError(target, ErrWriteFailed, err))
	case !info.IsDir():
		log.Warn().Msg("target is not a folder, skipping")
		return failed(target, targetError(target, ErrTargetMissing, ErrInvalidFolder))
	}

	path := MetadataPath(target)

	if err = clearNonRegular(path); err != nil {
		log.Err(err).Msg("failed to remove existing metadata entry")
		return failed(target, targetError(target, ErrWriteFailed, err))
	}

	if err = utils.WriteFileAtomic(path, blob.data, e.mode); err != nil {
		log.Err(err).Msg("failed to write view settings")
		return failed(target, targetError(target, ErrWriteFailed, err))
	}

	if err = e.hider.Hide(ctx, path); err != nil {
		log.Err(err).Msg("failed to hide view settings file")
		return failed(target, targetError(target, ErrAttributeFailed, err))
	}

	log.Info().Int("bytes", blob.Len()).Msg("copied view settings")
	return models.PropagationOutcome{Target: target, Status: models.OutcomeCopied}
}

func failed(target string, err error) models.PropagationOutcome {
	return models.PropagationOutcome{Target: target, Status: models.OutcomeFailed, Err: err}
}

// clearNonRegular removes whatever occupies path unless it is a regular file.
// Regular files are replaced by the atomic rename in utils.WriteFileAtomic so
// that readers never observe a missing or partial file.
func clearNonRegular(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.Mode().IsRegular() {
		return nil
	}
	if err = os.Remove(path); err != nil {
		return fmt.Errorf("remove existing %s: %w", MetadataFileName, err)
	}
	return nil
}
