// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/tidy-finder/internal/shell"
	"github.com/MKhiriev/tidy-finder/internal/store"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, shell.ErrInvalidCommand):
		return "A system command could not be started. TidyFinder needs macOS."
	case errors.Is(err, shell.ErrCommandCanceled) && errors.Is(err, context.DeadlineExceeded):
		return "A system command took too long and was stopped."
	case errors.Is(err, store.ErrInvalidProfileFile):
		return "The profile file is damaged: " + err.Error()
	}

	var failed *shell.CommandFailedError
	if errors.As(err, &failed) && failed.Output != "" {
		return failed.Output
	}

	return err.Error()
}
