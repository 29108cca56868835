// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package propagation

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// MetadataFileName is the per-folder view-state metadata file Finder keeps.
const MetadataFileName = ".DS_Store"

// MetadataFileMode is the permission set applied to every written metadata
// file: owner read-write, group and others read-only.
const MetadataFileMode fs.FileMode = 0o644

// ViewStateBlob is the opaque content of a metadata file. It is never parsed;
// the zero value is an empty blob.
type ViewStateBlob struct {
	data []byte
}

// NewViewStateBlob copies b into a blob.
func NewViewStateBlob(b []byte) ViewStateBlob {
	return ViewStateBlob{data: append([]byte(nil), b...)}
}

// Len returns the size of the blob in bytes.
func (b ViewStateBlob) Len() int {
	return len(b.data)
}

// Bytes returns a copy of the blob content.
func (b ViewStateBlob) Bytes() []byte {
	return append([]byte(nil), b.data...)
}

// MetadataPath returns the metadata file path inside folder.
func MetadataPath(folder string) string {
	return filepath.Join(folder, MetadataFileName)
}

// ValidateTemplate reads the metadata file of folder in full.
//
// It returns a *TemplateError matching ErrMissingMetadata when the folder or
// its metadata file does not exist, ErrInvalidFolder when folder is not a
// directory and ErrReadFailed when the file exists but cannot be read. It has
// no side effects.
func ValidateTemplate(folder string) (ViewStateBlob, error) {
	info, err := os.Stat(folder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ViewStateBlob{}, &TemplateError{Folder: folder, Kind: ErrMissingMetadata, Err: err}
		}
		return ViewStateBlob{}, &TemplateError{Folder: folder, Kind: ErrReadFailed, Err: err}
	}
	if !info.IsDir() {
		return ViewStateBlob{}, &TemplateError{Folder: folder, Kind: ErrInvalidFolder}
	}

	path := MetadataPath(folder)
	meta, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ViewStateBlob{}, &TemplateError{Folder: folder, Kind: ErrMissingMetadata, Err: err}
		}
		return ViewStateBlob{}, &TemplateError{Folder: folder, Kind: ErrReadFailed, Err: err}
	}
	if !meta.Mode().IsRegular() {
		return ViewStateBlob{}, &TemplateError{Folder: folder, Kind: ErrMissingMetadata}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ViewStateBlob{}, &TemplateError{Folder: folder, Kind: ErrReadFailed, Err: err}
	}

	return ViewStateBlob{data: data}, nil
}
