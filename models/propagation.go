// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// OutcomeStatus is the final state of one target folder in a propagation run.
type OutcomeStatus int

const (
	// OutcomeCopied means the metadata was written, its permissions were
	// normalized and it was marked hidden.
	OutcomeCopied OutcomeStatus = iota + 1

	// OutcomeFailed means at least one step failed for the target.
	OutcomeFailed
)

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeCopied:
		return "copied"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParseOutcomeStatus is the inverse of [OutcomeStatus.String].
func ParseOutcomeStatus(s string) OutcomeStatus {
	switch s {
	case "copied":
		return OutcomeCopied
	case "failed":
		return OutcomeFailed
	default:
		return 0
	}
}

// PropagationOutcome is the result of propagating view-state metadata to a
// single target folder.
type PropagationOutcome struct {
	Target string
	Status OutcomeStatus
	// Err is set only for failed outcomes.
	Err error
}

// Copied reports whether the outcome is a success.
func (o PropagationOutcome) Copied() bool {
	return o.Status == OutcomeCopied
}

// FolderName is the last path element of the target.
func (o PropagationOutcome) FolderName() string {
	return filepath.Base(o.Target)
}

// Reason returns the failure reason, or an empty string for successes.
func (o PropagationOutcome) Reason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// PropagationReport aggregates every outcome of one propagation run.
type PropagationReport struct {
	Template   string
	Outcomes   []PropagationOutcome
	StartedAt  time.Time
	FinishedAt time.Time
}

// Total is the number of targets processed.
func (r PropagationReport) Total() int {
	return len(r.Outcomes)
}

// CopiedCount is the number of targets that received the metadata.
func (r PropagationReport) CopiedCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Copied() {
			n++
		}
	}
	return n
}

// Failures returns the failed outcomes in run order.
func (r PropagationReport) Failures() []PropagationOutcome {
	failed := make([]PropagationOutcome, 0)
	for _, o := range r.Outcomes {
		if !o.Copied() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Succeeded reports whether at least one target was processed and none failed.
func (r PropagationReport) Succeeded() bool {
	return r.Total() > 0 && r.CopiedCount() == r.Total()
}

// Summary renders a single line with the success count and every failure,
// e.g. "copied to 4/5 folders; 1 failed: f2: target folder does not exist".
func (r PropagationReport) Summary() string {
	if r.Total() == 0 {
		return "no target folders processed"
	}

	noun := "folders"
	if r.Total() == 1 {
		noun = "folder"
	}
	summary := fmt.Sprintf("copied to %d/%d %s", r.CopiedCount(), r.Total(), noun)

	failures := r.Failures()
	if len(failures) == 0 {
		return summary
	}

	details := make([]string, 0, len(failures))
	for _, f := range failures {
		details = append(details, f.FolderName()+": "+f.Reason())
	}
	return fmt.Sprintf("%s; %d failed: %s", summary, len(failures), strings.Join(details, "; "))
}

// PropagationRun is the persisted history record of a propagation report.
type PropagationRun struct {
	ID         int64
	Template   string
	StartedAt  time.Time
	FinishedAt time.Time
	Total      int
	Copied     int
	Failed     int
	Outcomes   []RunOutcome
}

// RunOutcome is the persisted form of [PropagationOutcome].
type RunOutcome struct {
	Position int
	Target   string
	Status   OutcomeStatus
	Reason   string
}

// NewPropagationRun converts a report into a history record.
func NewPropagationRun(r PropagationReport) PropagationRun {
	run := PropagationRun{
		Template:   r.Template,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Total:      r.Total(),
		Copied:     r.CopiedCount(),
		Failed:     r.Total() - r.CopiedCount(),
		Outcomes:   make([]RunOutcome, 0, len(r.Outcomes)),
	}
	for i, o := range r.Outcomes {
		run.Outcomes = append(run.Outcomes, RunOutcome{
			Position: i,
			Target:   o.Target,
			Status:   o.Status,
			Reason:   o.Reason(),
		})
	}
	return run
}
