// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the TidyFinder application runtime.
//
// It wires configuration, storages, services and the terminal UI into a
// single process lifecycle, and runs one-shot headless commands when the
// command line names one.
package client
