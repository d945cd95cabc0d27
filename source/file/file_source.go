//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package file provides a file-based knowledge source.
package file

import (
	"context"
	"fmt"

	"github.com/vectorkb/vectorkb/chunking"
	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/document/reader"
	"github.com/vectorkb/vectorkb/source"
	isource "github.com/vectorkb/vectorkb/source/internal/source"
	"github.com/vectorkb/vectorkb/transform"
)

const defaultName = "File Source"

// Source reads an explicit list of files through the reader registry.
type Source struct {
	filePaths        []string
	name             string
	metadata         map[string]any
	chunkSize        int
	chunkOverlap     int
	chunkingStrategy chunking.Strategy
	transformers     []transform.Transformer
}

var _ source.Source = (*Source)(nil)

// New creates a new file knowledge source.
func New(filePaths []string, opts ...Option) *Source {
	s := &Source{
		filePaths: filePaths,
		name:      defaultName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadDocuments reads every configured file and returns the chunked documents.
// Unlike the directory source, a failure on any explicitly listed file is an
// error.
func (s *Source) ReadDocuments(ctx context.Context) ([]*document.Document, error) {
	if len(s.filePaths) == 0 {
		return nil, fmt.Errorf("no file paths provided")
	}

	extra := s.documentMetadata()

	var all []*document.Document
	for _, filePath := range s.filePaths {
		docs, err := isource.ProcessFile(ctx, filePath, s.readerOptions(), extra)
		if err != nil {
			return nil, err
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
	return source.TypeFile
}

// GetMetadata returns the metadata associated with this source.
func (s *Source) GetMetadata() map[string]any {
	return s.metadata
}

func (s *Source) documentMetadata() map[string]any {
	extra := make(map[string]any, len(s.metadata)+2)
	for k, v := range s.metadata {
		extra[k] = v
	}
	extra[source.MetaSource] = source.TypeFile
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
