// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Template workflow errors.
var (
	// ErrRunInProgress is returned when Apply is called while another
	// propagation run has not finished yet.
	ErrRunInProgress = errors.New("a propagation run is already in progress")

	// ErrNoTemplate is returned when no template folder is given.
	ErrNoTemplate = errors.New("no template folder selected")

	// ErrNoTargets is returned when the target set is empty after removing
	// blanks, duplicates and the template itself.
	ErrNoTargets = errors.New("no target folders selected")
)

// Profile errors.
var (
	// ErrProfileNameEmpty is returned when a profile name is blank.
	ErrProfileNameEmpty = errors.New("profile name cannot be empty")

	// ErrProfileNameTaken is returned when another profile already uses the
	// requested name.
	ErrProfileNameTaken = errors.New("a profile with this name already exists")

	// ErrProfileNotFound is returned when no profile matches the given ID or
	// name.
	ErrProfileNotFound = errors.New("profile was not found")
)
