// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FinderSettings is a point-in-time view of every Finder preference the
// application manages.
//
// ShowToolbar and ShowTabBar are kept for profiles only; Finder exposes no
// preference key for them and they are never written to the OS store.
type FinderSettings struct {
	// ViewStyle is empty when the preference is absent from the store.
	ViewStyle ViewStyle

	ShowPathBar     bool
	ShowStatusBar   bool
	ShowSidebar     bool
	ShowPreviewPane bool

	ShowToolbar bool
	ShowTabBar  bool
}

// DefaultFinderSettings mirrors Finder's factory configuration.
func DefaultFinderSettings() FinderSettings {
	return FinderSettings{
		ViewStyle:   ViewStyleList,
		ShowSidebar: true,
		ShowToolbar: true,
		ShowTabBar:  true,
	}
}

// Option returns the value of a boolean Finder option.
func (s FinderSettings) Option(o FinderOption) bool {
	switch o {
	case OptionShowPathBar:
		return s.ShowPathBar
	case OptionShowStatusBar:
		return s.ShowStatusBar
	case OptionShowSidebar:
		return s.ShowSidebar
	case OptionShowPreviewPane:
		return s.ShowPreviewPane
	default:
		return false
	}
}

// SetOption sets the value of a boolean Finder option. Unknown options are
// ignored.
func (s *FinderSettings) SetOption(o FinderOption, v bool) {
	switch o {
	case OptionShowPathBar:
		s.ShowPathBar = v
	case OptionShowStatusBar:
		s.ShowStatusBar = v
	case OptionShowSidebar:
		s.ShowSidebar = v
	case OptionShowPreviewPane:
		s.ShowPreviewPane = v
	}
}

// EnabledOptions lists the display names of every enabled option.
func (s FinderSettings) EnabledOptions() []string {
	enabled := make([]string, 0, len(AllFinderOptions()))
	for _, o := range AllFinderOptions() {
		if s.Option(o) {
			enabled = append(enabled, o.DisplayName())
		}
	}
	return enabled
}
