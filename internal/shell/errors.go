// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCommand is returned when the command could not be started,
	// for example because the program does not exist.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrCommandCanceled is returned when the context ended before the
	// command finished. The context error is wrapped alongside it.
	ErrCommandCanceled = errors.New("command canceled")

	// ErrCommandFailed matches every *CommandFailedError via errors.Is.
	ErrCommandFailed = errors.New("command failed")
)

// CommandFailedError reports a command that ran and exited with a non-zero
// status. Output holds standard output followed by standard error.
type CommandFailedError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("command %q failed with exit code %d: %s", e.Command, e.ExitCode, e.Output)
}

// Is makes errors.Is(err, ErrCommandFailed) true for any *CommandFailedError.
func (e *CommandFailedError) Is(target error) bool {
	return target == ErrCommandFailed
}
