// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a named, timestamped snapshot of Finder settings.
//
// Fields are declared in lexicographic order of their JSON keys so that
// encoding/json emits sorted keys, which keeps profile files stable under
// version control and byte-compatible with files written by earlier releases.
type Profile struct {
	// CreatedDate is stored with second precision in UTC (ISO-8601).
	CreatedDate time.Time `json:"createdDate" yaml:"createdDate"`

	// ID uniquely identifies the profile; it never changes on rename.
	ID uuid.UUID `json:"id" yaml:"id"`

	// Name is unique across all stored profiles.
	Name string `json:"name" yaml:"name"`

	ShowPathBar     bool `json:"showPathBar" yaml:"showPathBar"`
	ShowPreviewPane bool `json:"showPreviewPane" yaml:"showPreviewPane"`
	ShowSidebar     bool `json:"showSidebar" yaml:"showSidebar"`
	ShowStatusBar   bool `json:"showStatusBar" yaml:"showStatusBar"`

	// ShowTabBar and ShowToolbar are UI-only and never applied to Finder.
	ShowTabBar  bool `json:"showTabBar" yaml:"showTabBar"`
	ShowToolbar bool `json:"showToolbar" yaml:"showToolbar"`

	ViewStyle ViewStyle `json:"viewStyle" yaml:"viewStyle"`
}

// NewProfile builds a profile from the given settings. An invalid view style
// falls back to List.
func NewProfile(id uuid.UUID, name string, s FinderSettings, now time.Time) Profile {
	style := s.ViewStyle
	if !style.Valid() {
		style = ViewStyleList
	}

	return Profile{
		CreatedDate:     NormalizeProfileTime(now),
		ID:              id,
		Name:            name,
		ShowPathBar:     s.ShowPathBar,
		ShowPreviewPane: s.ShowPreviewPane,
		ShowSidebar:     s.ShowSidebar,
		ShowStatusBar:   s.ShowStatusBar,
		ShowTabBar:      s.ShowTabBar,
		ShowToolbar:     s.ShowToolbar,
		ViewStyle:       style,
	}
}

// Settings returns the Finder settings captured by the profile.
func (p Profile) Settings() FinderSettings {
	return FinderSettings{
		ViewStyle:       p.ViewStyle,
		ShowPathBar:     p.ShowPathBar,
		ShowStatusBar:   p.ShowStatusBar,
		ShowSidebar:     p.ShowSidebar,
		ShowPreviewPane: p.ShowPreviewPane,
		ShowToolbar:     p.ShowToolbar,
		ShowTabBar:      p.ShowTabBar,
	}
}

// NormalizeProfileTime truncates t to whole seconds in UTC.
func NormalizeProfileTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
