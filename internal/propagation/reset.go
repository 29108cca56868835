// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package propagation

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/tidy-finder/internal/logger"
)

// ResetFailure is a path the sweep could not visit or remove.
type ResetFailure struct {
	Path string
	Err  error
}

// ResetReport summarizes a view reset sweep.
type ResetReport struct {
	Root     string
	Removed  int
	Failures []ResetFailure
}

// ResetViews deletes every metadata file beneath root so that Finder falls
// back to the default view settings for those folders.
//
// Unreadable directories and undeletable files are recorded in the report and
// skipped. The sweep stops early, returning ctx.Err(), if ctx is canceled.
func ResetViews(ctx context.Context, root string, log *logger.Logger) (ResetReport, error) {
	report := ResetReport{Root: root}

	info, err := os.Stat(root)
	if err != nil {
		return report, err
	}
	if !info.IsDir() {
		return report, &TemplateError{Folder: root, Kind: ErrInvalidFolder}
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if walkErr != nil {
			report.Failures = append(report.Failures, ResetFailure{Path: path, Err: walkErr})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || d.Name() != MetadataFileName {
			return nil
		}

		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			log.Warn().Err(rmErr).Str("path", path).Msg("failed to remove view settings file")
			report.Failures = append(report.Failures, ResetFailure{Path: path, Err: rmErr})
			return nil
		}
		report.Removed++
		return nil
	})

	log.Info().
		Str("root", root).
		Int("removed", report.Removed).
		Int("failed", len(report.Failures)).
		Msg("folder view settings reset")

	return report, err
}
