// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the storage and propagation
// layers: atomic file replacement and identifier generation.
package utils
