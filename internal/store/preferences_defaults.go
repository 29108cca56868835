// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/shell"
)

const defaultsProgram = "defaults"

type defaultsStore struct {
	executor shell.Executor
	logger   *logger.Logger
}

// NewDefaultsStore returns a [PreferenceStore] backed by the macOS
// defaults(1) tool.
func NewDefaultsStore(executor shell.Executor, log *logger.Logger) PreferenceStore {
	return &defaultsStore{
		executor: executor,
		logger:   log,
	}
}

// ReadString runs `defaults read <domain> <key>`. defaults exits non-zero
// when the key does not exist, which is reported as ErrPreferenceAbsent.
func (d *defaultsStore) ReadString(ctx context.Context, domain, key string) (string, error) {
	out, err := d.executor.Execute(ctx, shell.NewCommand(defaultsProgram, "read", domain, key))
	if err != nil {
		if errors.Is(err, shell.ErrCommandFailed) {
			d.logger.Debug().Str("domain", domain).Str("key", key).Msg("preference is not set")
			return "", fmt.Errorf("%w: %s %s: %w", ErrPreferenceAbsent, domain, key, err)
		}
		return "", fmt.Errorf("read preference %s %s: %w", domain, key, err)
	}

	return out, nil
}

func (d *defaultsStore) WriteString(ctx context.Context, domain, key, value string) error {
	return d.write(ctx, domain, key, "-string", value)
}

func (d *defaultsStore) WriteBool(ctx context.Context, domain, key string, value bool) error {
	return d.write(ctx, domain, key, "-bool", strconv.FormatBool(value))
}

func (d *defaultsStore) write(ctx context.Context, domain, key, typeFlag, value string) error {
	if _, err := d.executor.Execute(ctx, shell.NewCommand(defaultsProgram, "write", domain, key, typeFlag, value)); err != nil {
		d.logger.Err(err).Str("domain", domain).Str("key", key).Msg("failed to write preference")
		return fmt.Errorf("write preference %s %s: %w", domain, key, err)
	}

	d.logger.Debug().Str("domain", domain).Str("key", key).Str("value", value).Msg("preference written")
	return nil
}
