// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// UI is the interactive front end started when no headless command is given.
type UI interface {
	// Run shows the interface and blocks until the user quits.
	Run(ctx context.Context) error
}
