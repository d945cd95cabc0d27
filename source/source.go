//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package source defines the interface for knowledge sources.
package source

import (
	"context"

	"github.com/vectorkb/vectorkb/document"
)

// Source types
const (
	TypeFile = "file"
	TypeDir  = "dir"
	TypeURL  = "url"
)

// Metadata keys stamped on documents produced by sources.
const (
	MetaSource        = "source"
	MetaSourceName    = "source_name"
	MetaFilePath      = "file_path"
	MetaFileName      = "file_name"
	MetaFileExt       = "file_ext"
	MetaFileSize      = "file_size"
	MetaModifiedAt    = "modified_at"
	MetaContentLength = "content_length"
	MetaURL           = "url"
)

// Source represents a knowledge source that can provide documents.
type Source interface {
	// ReadDocuments reads the source and returns chunked documents.
	ReadDocuments(ctx context.Context) ([]*document.Document, error)

	// Name returns a human-readable name for this source.
	Name() string

	// Type returns the type of this source (e.g. "file", "dir", "url").
	Type() string

	// GetMetadata returns the metadata associated with this source.
	GetMetadata() map[string]any
}
