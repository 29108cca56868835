// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package shell

import (
	"context"
	"time"
)

type timeoutExecutor struct {
	next    Executor
	timeout time.Duration
}

// WithTimeout bounds every command run through next by timeout. A
// non-positive timeout returns next unchanged.
func WithTimeout(next Executor, timeout time.Duration) Executor {
	if timeout <= 0 {
		return next
	}
	return &timeoutExecutor{next: next, timeout: timeout}
}

func (t *timeoutExecutor) Execute(ctx context.Context, cmd Command) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	return t.next.Execute(ctx, cmd)
}
