// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/mock"
	"github.com/MKhiriev/tidy-finder/internal/propagation"
	"github.com/MKhiriev/tidy-finder/internal/store"
	"github.com/MKhiriev/tidy-finder/models"
)

type templateFixture struct {
	svc      *templateService
	hider    *mock.MockHider
	history  *mock.MockRunHistoryRepository
	template string
	root     string
}

func newTemplateFixture(t *testing.T) *templateFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	hider := mock.NewMockHider(ctrl)
	history := mock.NewMockRunHistoryRepository(ctrl)

	root := t.TempDir()
	template := filepath.Join(root, "Template")
	require.NoError(t, os.MkdirAll(template, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(template, ".DS_Store"), []byte("view-state"), 0o644))

	engine := propagation.NewEngine(hider, logger.Nop())
	svc := NewTemplateService(engine, history, logger.Nop()).(*templateService)

	tick := time.Date(2026, 4, 5, 6, 7, 8, 0, time.UTC)
	svc.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	return &templateFixture{svc: svc, hider: hider, history: history, template: template, root: root}
}

func (f *templateFixture) dirs(t *testing.T, names ...string) []string {
	t.Helper()
	out := make([]string, 0, len(names))
	for _, n := range names {
		p := filepath.Join(f.root, n)
		require.NoError(t, os.MkdirAll(p, 0o755))
		out = append(out, p)
	}
	return out
}

// ── Apply ────────────────────────────────────────────────────────────────────

func TestTemplateService_Apply_Success(t *testing.T) {
	f := newTemplateFixture(t)
	targets := f.dirs(t, "b", "a")

	f.hider.EXPECT().Hide(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var saved models.PropagationRun
	f.history.EXPECT().SaveRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run models.PropagationRun) (int64, error) {
			saved = run
			return 1, nil
		})

	var progress []propagation.Progress
	report, err := f.svc.Apply(context.Background(), f.template, targets, func(p propagation.Progress) {
		progress = append(progress, p)
	})
	require.NoError(t, err)

	assert.Equal(t, f.template, report.Template)
	assert.True(t, report.Succeeded())
	assert.Equal(t, "copied to 2/2 folders", report.Summary())
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, filepath.Join(f.root, "a"), report.Outcomes[0].Target, "targets are sorted by folder name")
	assert.True(t, report.FinishedAt.After(report.StartedAt))

	require.Len(t, progress, 2)
	assert.Equal(t, 2, progress[1].Done)

	assert.Equal(t, 2, saved.Total)
	assert.Equal(t, 2, saved.Copied)
	assert.Equal(t, f.template, saved.Template)

	for _, target := range targets {
		got, readErr := os.ReadFile(filepath.Join(target, ".DS_Store"))
		require.NoError(t, readErr)
		assert.Equal(t, "view-state", string(got))
	}
	assert.False(t, f.svc.Running())
}

func TestTemplateService_Apply_PartialFailure(t *testing.T) {
	f := newTemplateFixture(t)
	targets := append(f.dirs(t, "f1", "f3"), filepath.Join(f.root, "f2"))

	f.hider.EXPECT().Hide(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.history.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	report, err := f.svc.Apply(context.Background(), f.template, targets, nil)
	require.NoError(t, err)

	require.Len(t, report.Outcomes, 3)
	assert.True(t, report.Outcomes[0].Copied())
	assert.ErrorIs(t, report.Outcomes[1].Err, propagation.ErrTargetMissing)
	assert.True(t, report.Outcomes[2].Copied())
	assert.Contains(t, report.Summary(), "f2: target folder does not exist")
}

func TestTemplateService_Apply_MissingMetadata(t *testing.T) {
	f := newTemplateFixture(t)
	require.NoError(t, os.Remove(filepath.Join(f.template, ".DS_Store")))
	targets := f.dirs(t, "a")

	_, err := f.svc.Apply(context.Background(), f.template, targets, nil)
	require.ErrorIs(t, err, propagation.ErrMissingMetadata)
	assert.Contains(t, err.Error(), "'Template'")

	_, statErr := os.Stat(filepath.Join(targets[0], ".DS_Store"))
	assert.True(t, os.IsNotExist(statErr), "no target is touched")
}

func TestTemplateService_Apply_NoTargets(t *testing.T) {
	f := newTemplateFixture(t)

	_, err := f.svc.Apply(context.Background(), f.template, []string{f.template, " ", ""}, nil)
	assert.ErrorIs(t, err, ErrNoTargets)

	_, err = f.svc.Apply(context.Background(), "  ", []string{"/a"}, nil)
	assert.ErrorIs(t, err, ErrNoTemplate)
}

func TestTemplateService_Apply_TemplateAliasIsNotATarget(t *testing.T) {
	f := newTemplateFixture(t)
	metadata := filepath.Join(f.template, ".DS_Store")
	require.NoError(t, os.Chmod(metadata, 0o600))
	link := filepath.Join(f.root, "linked")
	require.NoError(t, os.Symlink(f.template, link))
	others := f.dirs(t, "other")
	t.Chdir(f.root)

	f.hider.EXPECT().Hide(gomock.Any(), filepath.Join(others[0], ".DS_Store")).Return(nil)
	f.history.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	report, err := f.svc.Apply(context.Background(), f.template, []string{"Template", "./Template/", link, others[0]}, nil)
	require.NoError(t, err)

	assert.Equal(t, "copied to 1/1 folders", report.Summary())
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, others[0], report.Outcomes[0].Target)

	info, err := os.Stat(metadata)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "the template is left untouched")
}

func TestTemplateService_Apply_HistoryFailureDoesNotFailRun(t *testing.T) {
	f := newTemplateFixture(t)
	targets := f.dirs(t, "a")

	f.hider.EXPECT().Hide(gomock.Any(), gomock.Any()).Return(nil)
	f.history.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database is locked"))

	report, err := f.svc.Apply(context.Background(), f.template, targets, nil)
	require.NoError(t, err)
	assert.True(t, report.Succeeded())
}

func TestTemplateService_Apply_RejectsConcurrentRun(t *testing.T) {
	f := newTemplateFixture(t)
	targets := f.dirs(t, "a", "b")

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	f.hider.EXPECT().Hide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) error {
			once.Do(func() { close(entered) })
			<-release
			return nil
		}).Times(2)
	f.history.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.Apply(context.Background(), f.template, targets, nil)
		done <- err
	}()

	<-entered
	assert.True(t, f.svc.Running())
	_, err := f.svc.Apply(context.Background(), f.template, targets, nil)
	assert.ErrorIs(t, err, ErrRunInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, f.svc.Running())
}

func TestTemplateService_Apply_CanceledStillRecordsEveryTarget(t *testing.T) {
	f := newTemplateFixture(t)
	targets := f.dirs(t, "a", "b", "c")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.hider.EXPECT().Hide(gomock.Any(), gomock.Any()).Return(nil)
	f.history.EXPECT().SaveRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, run models.PropagationRun) (int64, error) {
			assert.NoError(t, ctx.Err(), "history is written even after cancellation")
			assert.Equal(t, 3, run.Total)
			assert.Equal(t, 2, run.Failed)
			return 1, nil
		})

	report, err := f.svc.Apply(ctx, f.template, targets, func(p propagation.Progress) {
		if p.Done == 1 {
			cancel()
		}
	})
	require.NoError(t, err)
	assert.Len(t, report.Outcomes, 3)
	assert.ErrorIs(t, report.Outcomes[2].Err, propagation.ErrCanceled)
}

// ── History ──────────────────────────────────────────────────────────────────

func TestTemplateService_History(t *testing.T) {
	f := newTemplateFixture(t)
	runs := []models.PropagationRun{{ID: 2}, {ID: 1}}

	f.history.EXPECT().ListRuns(gomock.Any(), 10).Return(runs, nil)
	f.history.EXPECT().GetRun(gomock.Any(), int64(2)).Return(runs[0], nil)

	got, err := f.svc.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, runs, got)

	run, err := f.svc.Run(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), run.ID)
}

func TestTemplateService_WithoutHistory(t *testing.T) {
	svc := NewTemplateService(propagation.NewEngine(propagation.HiderFunc(func(context.Context, string) error { return nil }), logger.Nop()), nil, logger.Nop())

	runs, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = svc.Run(context.Background(), 1)
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}
