// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFinderOption is returned when a name does not match any
// [FinderOption].
var ErrUnknownFinderOption = errors.New("unknown finder option")

// FinderOption is a boolean Finder preference. The underlying string is the
// preference key inside the Finder domain.
type FinderOption string

const (
	OptionShowPathBar     FinderOption = "ShowPathbar"
	OptionShowStatusBar   FinderOption = "ShowStatusBar"
	OptionShowSidebar     FinderOption = "ShowSidebar"
	OptionShowPreviewPane FinderOption = "ShowPreviewPane"
)

// AllFinderOptions returns every boolean option in display order.
func AllFinderOptions() []FinderOption {
	return []FinderOption{OptionShowPathBar, OptionShowStatusBar, OptionShowSidebar, OptionShowPreviewPane}
}

// DisplayName returns the human-readable label of the option.
func (o FinderOption) DisplayName() string {
	switch o {
	case OptionShowPathBar:
		return "Show Path Bar"
	case OptionShowStatusBar:
		return "Show Status Bar"
	case OptionShowSidebar:
		return "Show Sidebar"
	case OptionShowPreviewPane:
		return "Show Preview Pane"
	default:
		return "Unknown"
	}
}

// Alias returns the short command-line name of the option.
func (o FinderOption) Alias() string {
	switch o {
	case OptionShowPathBar:
		return "pathbar"
	case OptionShowStatusBar:
		return "statusbar"
	case OptionShowSidebar:
		return "sidebar"
	case OptionShowPreviewPane:
		return "preview"
	default:
		return ""
	}
}

// Key returns the preference key the option is stored under.
func (o FinderOption) Key() string {
	return string(o)
}

// ParseFinderOption accepts the preference key, display name or short alias,
// all case-insensitive.
func ParseFinderOption(s string) (FinderOption, error) {
	s = strings.TrimSpace(s)
	for _, o := range AllFinderOptions() {
		if strings.EqualFold(string(o), s) || strings.EqualFold(o.DisplayName(), s) || strings.EqualFold(o.Alias(), s) {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFinderOption, s)
}
