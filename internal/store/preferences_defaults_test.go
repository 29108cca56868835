// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/mock"
	"github.com/MKhiriev/tidy-finder/internal/shell"
)

func newTestDefaultsStore(t *testing.T) (PreferenceStore, *mock.MockExecutor) {
	ctrl := gomock.NewController(t)
	executor := mock.NewMockExecutor(ctrl)
	return NewDefaultsStore(executor, logger.Nop()), executor
}

func TestDefaultsStore_ReadString(t *testing.T) {
	s, executor := newTestDefaultsStore(t)
	ctx := context.Background()

	executor.EXPECT().
		Execute(ctx, shell.NewCommand("defaults", "read", "com.apple.finder", "FXPreferredViewStyle")).
		Return("clmv", nil)

	got, err := s.ReadString(ctx, "com.apple.finder", "FXPreferredViewStyle")
	require.NoError(t, err)
	assert.Equal(t, "clmv", got)
}

func TestDefaultsStore_ReadString_Absent(t *testing.T) {
	s, executor := newTestDefaultsStore(t)

	failure := &shell.CommandFailedError{
		Command:  "defaults read com.apple.finder ShowPathbar",
		ExitCode: 1,
		Output:   "\nError: The domain/default pair does not exist",
	}
	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", failure)

	_, err := s.ReadString(context.Background(), "com.apple.finder", "ShowPathbar")
	assert.ErrorIs(t, err, ErrPreferenceAbsent)
	assert.ErrorIs(t, err, shell.ErrCommandFailed)
}

func TestDefaultsStore_ReadString_LaunchFailure(t *testing.T) {
	s, executor := newTestDefaultsStore(t)

	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", shell.ErrInvalidCommand)

	_, err := s.ReadString(context.Background(), "com.apple.finder", "ShowPathbar")
	assert.ErrorIs(t, err, shell.ErrInvalidCommand)
	assert.NotErrorIs(t, err, ErrPreferenceAbsent)
}

func TestDefaultsStore_Write(t *testing.T) {
	s, executor := newTestDefaultsStore(t)
	ctx := context.Background()

	gomock.InOrder(
		executor.EXPECT().
			Execute(ctx, shell.NewCommand("defaults", "write", "com.apple.finder", "FXPreferredViewStyle", "-string", "Nlsv")).
			Return("", nil),
		executor.EXPECT().
			Execute(ctx, shell.NewCommand("defaults", "write", "com.apple.finder", "ShowSidebar", "-bool", "true")).
			Return("", nil),
		executor.EXPECT().
			Execute(ctx, shell.NewCommand("defaults", "write", "com.apple.finder", "ShowSidebar", "-bool", "false")).
			Return("", nil),
	)

	require.NoError(t, s.WriteString(ctx, "com.apple.finder", "FXPreferredViewStyle", "Nlsv"))
	require.NoError(t, s.WriteBool(ctx, "com.apple.finder", "ShowSidebar", true))
	require.NoError(t, s.WriteBool(ctx, "com.apple.finder", "ShowSidebar", false))
}

func TestDefaultsStore_WriteFailure(t *testing.T) {
	s, executor := newTestDefaultsStore(t)
	boom := errors.New("boom")

	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", boom)

	err := s.WriteBool(context.Background(), "com.apple.finder", "ShowStatusBar", true)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "ShowStatusBar")
}
