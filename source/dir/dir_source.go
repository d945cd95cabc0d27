//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package dir provides a directory-based knowledge source.
package dir

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vectorkb/vectorkb/chunking"
	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/document/reader"
	"github.com/vectorkb/vectorkb/log"
	"github.com/vectorkb/vectorkb/source"
	isource "github.com/vectorkb/vectorkb/source/internal/source"
	"github.com/vectorkb/vectorkb/transform"
)

const defaultName = "Directory Source"

// Source walks a directory and reads every file that has a registered reader.
type Source struct {
	dirPath          string
	name             string
	metadata         map[string]any
	fileExtensions   []string
	recursive        bool
	chunkSize        int
	chunkOverlap     int
	chunkingStrategy chunking.Strategy
	transformers     []transform.Transformer
}

var _ source.Source = (*Source)(nil)

// New creates a new directory knowledge source.
func New(dirPath string, opts ...Option) *Source {
	s := &Source{
		dirPath:   dirPath,
		name:      defaultName,
		recursive: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadDocuments walks the directory and returns the chunked documents of every
// readable file. Files that fail to read are logged and skipped so one broken
// file does not abort the whole walk.
func (s *Source) ReadDocuments(ctx context.Context) ([]*document.Document, error) {
	if s.dirPath == "" {
		return nil, fmt.Errorf("no directory path provided")
	}

	filePaths, err := s.collectFilePaths()
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", s.dirPath, err)
	}

	extra := s.documentMetadata()

	var all []*document.Document
	for _, filePath := range filePaths {
		docs, err := isource.ProcessFile(ctx, filePath, s.readerOptions(), extra)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warnf("Skipping file %s: %v", filePath, err)
			continue
		}
		all = append(all, docs...)
	}
	return all, nil
}

// Name returns the name of this source.
func (s *Source) Name() string {
	return s.name
}

// Type returns the type of this source.
func (s *Source) Type() string {
	return source.TypeDir
}

// GetMetadata returns the metadata associated with this source.
func (s *Source) GetMetadata() map[string]any {
	return s.metadata
}

func (s *Source) collectFilePaths() ([]string, error) {
	var filePaths []string

	err := filepath.WalkDir(s.dirPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != s.dirPath && !s.recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		if s.acceptExtension(strings.ToLower(filepath.Ext(path))) {
			filePaths = append(filePaths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(filePaths) == 0 {
		return nil, fmt.Errorf("no readable files found in %s", s.dirPath)
	}
	return filePaths, nil
}

// acceptExtension reports whether the extension passes the configured filter,
// or has a registered reader when no filter is set.
func (s *Source) acceptExtension(ext string) bool {
	if len(s.fileExtensions) > 0 {
		for _, allowed := range s.fileExtensions {
			if ext == allowed {
				return true
			}
		}
		return false
	}
	_, ok := reader.Get(ext)
	return ok
}

func (s *Source) documentMetadata() map[string]any {
	extra := make(map[string]any, len(s.metadata)+2)
	for k, v := range s.metadata {
		extra[k] = v
	}
	extra[source.MetaSource] = source.TypeDir
	extra[source.MetaSourceName] = s.name
	return extra
}

func (s *Source) readerOptions() []reader.Option {
	var opts []reader.Option
	if s.chunkingStrategy != nil {
		opts = append(opts, reader.WithChunkingStrategy(s.chunkingStrategy))
	}
	if s.chunkSize > 0 {
		opts = append(opts, reader.WithChunkSize(s.chunkSize))
	}
	if s.chunkOverlap > 0 {
		opts = append(opts, reader.WithChunkOverlap(s.chunkOverlap))
	}
	if len(s.transformers) > 0 {
		opts = append(opts, reader.WithTransformers(s.transformers...))
	}
	return opts
}
