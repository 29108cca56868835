// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !unix

package shell

import "os/exec"

func killProcessGroupOnCancel(*exec.Cmd) {}
