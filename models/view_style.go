// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownViewStyle is returned when a raw tag or display name does not
// match any [ViewStyle].
var ErrUnknownViewStyle = errors.New("unknown view style")

// ViewStyle is the default Finder window view style.
//
// The underlying string is the tag Finder stores under the
// FXPreferredViewStyle preference key. Only the four declared values are
// valid; use [ParseViewStyle] to convert untrusted input.
type ViewStyle string

const (
	// ViewStyleList shows folder contents as a sortable list.
	ViewStyleList ViewStyle = "Nlsv"

	// ViewStyleIcon shows folder contents as a free-form icon grid.
	ViewStyleIcon ViewStyle = "icnv"

	// ViewStyleColumn shows folder contents as a column browser.
	ViewStyleColumn ViewStyle = "clmv"

	// ViewStyleGallery shows folder contents as a large preview with a strip.
	ViewStyleGallery ViewStyle = "glyv"
)

// AllViewStyles returns every valid view style in display order.
func AllViewStyles() []ViewStyle {
	return []ViewStyle{ViewStyleList, ViewStyleIcon, ViewStyleColumn, ViewStyleGallery}
}

// DisplayName returns the human-readable name of the view style.
func (v ViewStyle) DisplayName() string {
	switch v {
	case ViewStyleList:
		return "List"
	case ViewStyleIcon:
		return "Icon"
	case ViewStyleColumn:
		return "Column"
	case ViewStyleGallery:
		return "Gallery"
	default:
		return "Unknown"
	}
}

// Valid reports whether v is one of the declared view styles.
func (v ViewStyle) Valid() bool {
	for _, s := range AllViewStyles() {
		if s == v {
			return true
		}
	}
	return false
}

func (v ViewStyle) String() string {
	return v.DisplayName()
}

// ParseViewStyle converts either a raw Finder tag ("Nlsv") or a display name
// ("list", case-insensitive) into a [ViewStyle].
func ParseViewStyle(s string) (ViewStyle, error) {
	s = strings.TrimSpace(s)
	for _, style := range AllViewStyles() {
		if string(style) == s || strings.EqualFold(style.DisplayName(), s) {
			return style, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownViewStyle, s)
}

// viewStyleJSON is the keyed object form used in profile files.
type viewStyleJSON struct {
	RawValue string `json:"rawValue"`
}

// MarshalJSON encodes the view style as {"rawValue":"<tag>"}.
func (v ViewStyle) MarshalJSON() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownViewStyle, string(v))
	}
	return json.Marshal(viewStyleJSON{RawValue: string(v)})
}

// UnmarshalJSON accepts both the keyed object form and a bare string tag.
func (v *ViewStyle) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		var obj viewStyleJSON
		if err = json.Unmarshal(b, &obj); err != nil {
			return fmt.Errorf("decode view style: %w", err)
		}
		raw = obj.RawValue
	}

	style, err := ParseViewStyle(raw)
	if err != nil {
		return err
	}
	*v = style
	return nil
}

// MarshalYAML encodes the view style as its display name.
func (v ViewStyle) MarshalYAML() (any, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownViewStyle, string(v))
	}
	return strings.ToLower(v.DisplayName()), nil
}

// UnmarshalYAML accepts a raw tag or display name.
func (v *ViewStyle) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("decode view style: %w", err)
	}
	style, err := ParseViewStyle(raw)
	if err != nil {
		return err
	}
	*v = style
	return nil
}
