// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/tidy-finder/internal/shell"
	"github.com/MKhiriev/tidy-finder/internal/store"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "   ", want: ""},
		{in: "/a/b/../c/", want: "/a/c"},
		{in: "  /a/b  ", want: "/a/b"},
		{in: "~", want: home},
		{in: "~/Documents", want: filepath.Join(home, "Documents")},
		{in: "~other/x", want: "~other/x"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, expandPath(tt.in))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "...efgh", fitText("abcdefgh", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "abc", fitText("abc", 0))
	assert.Equal(t, "...ии", fitText("приветии", 5), "counts runes, not bytes")
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))

	launch := fmt.Errorf("run defaults: %w", shell.ErrInvalidCommand)
	assert.Contains(t, humanizeError(launch), "needs macOS")

	failed := fmt.Errorf("write: %w", &shell.CommandFailedError{Command: "defaults", ExitCode: 1, Output: "Domain not found"})
	assert.Equal(t, "Domain not found", humanizeError(failed))

	slow := fmt.Errorf("%w: killall Finder: %w", shell.ErrCommandCanceled, context.DeadlineExceeded)
	assert.Equal(t, "A system command took too long and was stopped.", humanizeError(slow))

	broken := fmt.Errorf("%w: unexpected EOF", store.ErrInvalidProfileFile)
	assert.Contains(t, humanizeError(broken), "profile file is damaged")

	assert.Equal(t, "plain", humanizeError(errors.New("plain")))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "line one\nline two", "esc: back")

	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "  line one\n  line two\n")
	assert.Contains(t, page, "esc: back")
	assert.Contains(t, page, "ctrl+c: quit")

	assert.Contains(t, renderPage("EMPTY", " ", ""), "  -\n")
}
