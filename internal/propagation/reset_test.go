// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package propagation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetViews_RemovesNestedMetadata(t *testing.T) {
	root := t.TempDir()
	dirs := []string{
		root,
		filepath.Join(root, "a"),
		filepath.Join(root, "a", "b"),
		filepath.Join(root, "c"),
	}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(d, 0o755))
	}
	for _, d := range dirs[:3] {
		require.NoError(t, os.WriteFile(MetadataPath(d), []byte("state"), 0o644))
	}
	keep := filepath.Join(root, "c", "notes.txt")
	require.NoError(t, os.WriteFile(keep, []byte("keep me"), 0o644))

	report, err := ResetViews(context.Background(), root, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, root, report.Root)
	assert.Equal(t, 3, report.Removed)
	assert.Empty(t, report.Failures)
	for _, d := range dirs {
		_, statErr := os.Stat(MetadataPath(d))
		assert.True(t, os.IsNotExist(statErr), d)
	}
	_, err = os.Stat(keep)
	assert.NoError(t, err, "unrelated files are left alone")
}

func TestResetViews_NothingToRemove(t *testing.T) {
	report, err := ResetViews(context.Background(), t.TempDir(), logger.Nop())
	require.NoError(t, err)
	assert.Zero(t, report.Removed)
}

func TestResetViews_RootErrors(t *testing.T) {
	_, err := ResetViews(context.Background(), filepath.Join(t.TempDir(), "missing"), logger.Nop())
	assert.True(t, os.IsNotExist(err))

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = ResetViews(context.Background(), file, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidFolder)
}

func TestResetViews_Canceled(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(MetadataPath(root), []byte("state"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := ResetViews(ctx, root, logger.Nop())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Removed)

	_, statErr := os.Stat(MetadataPath(root))
	assert.NoError(t, statErr)
}

func TestResetViews_UnreadableDirectoryIsRecorded(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	require.NoError(t, os.WriteFile(MetadataPath(root), []byte("state"), 0o644))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	report, err := ResetViews(context.Background(), root, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Removed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, locked, report.Failures[0].Path)
}
