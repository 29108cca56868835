// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUnknownCommand is returned for a headless command name that does not
	// exist.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a headless command gets the wrong arguments.
	ErrUsage = errors.New("invalid arguments")

	// ErrPropagationFailed is returned by the apply command when at least one
	// target folder did not receive the view settings.
	ErrPropagationFailed = errors.New("some folders were not updated")
)
