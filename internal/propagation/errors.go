// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package propagation

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Template validation errors. They abort a run before any target is touched.
var (
	// ErrMissingMetadata means the template folder has no view-state
	// metadata file.
	ErrMissingMetadata = errors.New("folder has no view settings to copy")

	// ErrInvalidFolder means the template path exists but is not a directory.
	ErrInvalidFolder = errors.New("not a folder")

	// ErrReadFailed means the template metadata exists but could not be read.
	ErrReadFailed = errors.New("failed to read view settings")
)

// Per-target errors. They are recorded in the outcome of the affected target
// and never stop the run.
var (
	// ErrTargetMissing means the target folder does not exist.
	ErrTargetMissing = errors.New("target folder does not exist")

	// ErrWriteFailed means the metadata could not be written to the target.
	ErrWriteFailed = errors.New("failed to write view settings")

	// ErrAttributeFailed means the metadata was written but could not be
	// marked hidden.
	ErrAttributeFailed = errors.New("failed to set view settings file attributes")

	// ErrCanceled means the run was canceled before the target was reached.
	ErrCanceled = errors.New("propagation canceled")
)

// TemplateError describes a template folder that cannot be used as a source.
type TemplateError struct {
	Folder string
	Kind   error
	Err    error
}

func (e *TemplateError) Error() string {
	name := filepath.Base(e.Folder)
	if errors.Is(e.Kind, ErrMissingMetadata) {
		return fmt.Sprintf("the folder '%s' doesn't have any view settings (%s file) to copy", name, MetadataFileName)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Folder, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Folder, e.Kind, e.Err)
}

func (e *TemplateError) Unwrap() []error {
	return unwrapPair(e.Kind, e.Err)
}

// TargetError describes why a single target folder failed. Kind is one of the
// per-target sentinels; Err is the underlying cause, if any.
type TargetError struct {
	Target string
	Kind   error
	Err    error
}

func (e *TargetError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *TargetError) Unwrap() []error {
	return unwrapPair(e.Kind, e.Err)
}

func unwrapPair(kind, err error) []error {
	if err == nil {
		return []error{kind}
	}
	return []error{kind, err}
}

func targetError(target string, kind, err error) *TargetError {
	return &TargetError{Target: target, Kind: kind, Err: err}
}
