// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package shell runs external OS commands synchronously. It is the single
// place where the application spawns processes (defaults, chflags, killall).
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/MKhiriev/tidy-finder/internal/logger"
)

//go:generate mockgen -source=executor.go -destination=../mock/shell_mock.go -package=mock

// Executor runs a command and returns its trimmed standard output.
//
// A non-zero exit status is always an error of type *CommandFailedError.
// A zero exit status with output on standard error is a success; the
// standard error text is logged as a warning.
type Executor interface {
	Execute(ctx context.Context, cmd Command) (string, error)
}

// Command is a program name and its arguments. Arguments are passed to the
// program as-is, without shell interpretation.
type Command struct {
	Name string
	Args []string
}

// NewCommand is a shorthand for Command{Name: name, Args: args}.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// String renders the command for logs and error messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// waitDelay bounds how long output pipes are drained after the command exits
// or is killed.
const waitDelay = 500 * time.Millisecond

type execExecutor struct {
	logger *logger.Logger
}

// NewExecutor returns an [Executor] backed by os/exec.
func NewExecutor(log *logger.Logger) Executor {
	return &execExecutor{logger: log}
}

func (e *execExecutor) Execute(ctx context.Context, cmd Command) (string, error) {
	if cmd.Name == "" {
		return "", ErrInvalidCommand
	}

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Stdout = &stdout
	c.Stderr = &stderr
	c.WaitDelay = waitDelay
	killProcessGroupOnCancel(c)

	err := c.Run()
	output := stdout.String()
	errorOutput := stderr.String()

	if ctxErr := ctx.Err(); err != nil && ctxErr != nil {
		e.logger.Warn().Err(ctxErr).Str("command", cmd.String()).Msg("command canceled")
		return "", fmt.Errorf("%w: %s: %w", ErrCommandCanceled, cmd.String(), ctxErr)
	}

	// A background child may keep the output pipes open after the command
	// itself exited successfully.
	if errors.Is(err, exec.ErrWaitDelay) {
		err = nil
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			e.logger.Err(err).Str("command", cmd.String()).Msg("failed to launch command")
			return "", fmt.Errorf("%w: %s: %w", ErrInvalidCommand, cmd.String(), err)
		}

		failed := &CommandFailedError{
			Command:  cmd.String(),
			ExitCode: exitErr.ExitCode(),
			Output:   combineOutput(output, errorOutput),
		}
		e.logger.Debug().
			Str("command", failed.Command).
			Int("exit_code", failed.ExitCode).
			Str("output", failed.Output).
			Msg("command exited with non-zero status")
		return "", failed
	}

	if errorOutput != "" {
		e.logger.Warn().
			Str("command", cmd.String()).
			Str("stderr", strings.TrimSpace(errorOutput)).
			Msg("command succeeded with output on stderr")
	}

	return strings.TrimSpace(output), nil
}

func combineOutput(stdout, stderr string) string {
	if stderr == "" {
		return stdout
	}
	return stdout + "\nError: " + stderr
}
