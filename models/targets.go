// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path/filepath"
	"slices"
	"strings"
)

// TargetSet is the ordered, deduplicated set of folders that receive a
// template's view-state metadata. The template folder is never a member.
//
// Paths are stored absolute and compared after symlinks are resolved, so a
// relative or linked spelling of the same folder counts once. Ordering is by
// folder name, then by full path; it is for display only.
type TargetSet struct {
	template    string
	templateKey string
	entries     []targetEntry
}

type targetEntry struct {
	path string
	key  string
}

// NewTargetSet returns an empty set that rejects template.
func NewTargetSet(template string) *TargetSet {
	t := &TargetSet{}
	t.SetTemplate(template)
	return t
}

// SetTemplate changes the excluded template folder and drops it from the set
// if it was already added as a target.
func (t *TargetSet) SetTemplate(template string) {
	if strings.TrimSpace(template) == "" {
		t.template, t.templateKey = "", ""
		return
	}

	t.template, t.templateKey = resolveFolder(template)
	t.entries = slices.DeleteFunc(t.entries, func(e targetEntry) bool { return e.key == t.templateKey })
}

// Template returns the excluded template folder.
func (t *TargetSet) Template() string {
	return t.template
}

// Add inserts paths that are neither present nor the template. It returns the
// number of paths actually added.
func (t *TargetSet) Add(paths ...string) int {
	added := 0
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		path, key := resolveFolder(p)
		if key == t.templateKey || t.contains(key) {
			continue
		}
		t.entries = append(t.entries, targetEntry{path: path, key: key})
		added++
	}
	if added > 0 {
		t.sort()
	}
	return added
}

// Remove deletes path from the set.
func (t *TargetSet) Remove(path string) {
	_, key := resolveFolder(path)
	t.entries = slices.DeleteFunc(t.entries, func(e targetEntry) bool { return e.key == key })
}

// Clear removes every target.
func (t *TargetSet) Clear() {
	t.entries = nil
}

// Len returns the number of targets.
func (t *TargetSet) Len() int {
	return len(t.entries)
}

// Paths returns the targets in display order.
func (t *TargetSet) Paths() []string {
	if len(t.entries) == 0 {
		return nil
	}
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.path
	}
	return out
}

func (t *TargetSet) contains(key string) bool {
	return slices.ContainsFunc(t.entries, func(e targetEntry) bool { return e.key == key })
}

func (t *TargetSet) sort() {
	slices.SortStableFunc(t.entries, func(a, b targetEntry) int {
		if c := strings.Compare(filepath.Base(a.path), filepath.Base(b.path)); c != 0 {
			return c
		}
		return strings.Compare(a.path, b.path)
	})
}

// resolveFolder returns the absolute form of p and the identity used for
// comparisons: the symlink-free path when p exists, the absolute path
// otherwise.
func resolveFolder(p string) (path, key string) {
	path = filepath.Clean(p)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	key = path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		key = resolved
	}
	return path, key
}
