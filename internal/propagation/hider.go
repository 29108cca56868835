// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package propagation

import (
	"context"

	"github.com/MKhiriev/tidy-finder/internal/shell"
)

//go:generate mockgen -source=hider.go -destination=../mock/hider_mock.go -package=mock

// Hider marks a file as hidden from normal directory listings independently
// of its name.
type Hider interface {
	Hide(ctx context.Context, path string) error
}

// HiderFunc adapts a function to [Hider].
type HiderFunc func(ctx context.Context, path string) error

func (f HiderFunc) Hide(ctx context.Context, path string) error {
	return f(ctx, path)
}

type commandHider struct {
	executor shell.Executor
}

// NewCommandHider returns a [Hider] that sets the BSD "hidden" file flag with
// chflags(1).
func NewCommandHider(executor shell.Executor) Hider {
	return &commandHider{executor: executor}
}

func (h *commandHider) Hide(ctx context.Context, path string) error {
	_, err := h.executor.Execute(ctx, shell.NewCommand("chflags", "hidden", "--", path))
	return err
}
