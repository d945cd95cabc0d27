//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package source provides internal source utils.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/document/reader"
	"github.com/vectorkb/vectorkb/source"

	// Import readers to trigger their init() functions for registration.
	_ "github.com/vectorkb/vectorkb/document/reader/json"
	_ "github.com/vectorkb/vectorkb/document/reader/markdown"
	_ "github.com/vectorkb/vectorkb/document/reader/pdf"
	_ "github.com/vectorkb/vectorkb/document/reader/text"
)

// ProcessFile reads a single file through the reader registered for its
// extension and stamps file metadata onto every resulting document.
func ProcessFile(ctx context.Context, filePath string, readerOpts []reader.Option, extra map[string]any) ([]*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", filePath)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	rdr, ok := reader.Get(ext, readerOpts...)
	if !ok {
		return nil, fmt.Errorf("no reader registered for extension %q", ext)
	}

	docs, err := rdr.ReadFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	for _, doc := range docs {
		if doc.Metadata == nil {
			doc.Metadata = make(map[string]any)
		}
		for k, v := range extra {
			doc.Metadata[k] = v
		}
		doc.Metadata[source.MetaFilePath] = filePath
		doc.Metadata[source.MetaFileName] = filepath.Base(filePath)
		doc.Metadata[source.MetaFileExt] = ext
		doc.Metadata[source.MetaFileSize] = fileInfo.Size()
		doc.Metadata[source.MetaModifiedAt] = fileInfo.ModTime().UTC()
		doc.Metadata[source.MetaContentLength] = doc.Size()
	}
	return docs, nil
}
