//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package dir

import (
	"strings"

	"github.com/vectorkb/vectorkb/chunking"
	"github.com/vectorkb/vectorkb/transform"
)

// Option represents a functional option for configuring the directory source.
type Option func(*Source)

// WithName sets a custom name for the directory source.
func WithName(name string) Option {
	return func(s *Source) {
		s.name = name
	}
}

// WithMetadata sets additional metadata stamped on every document.
func WithMetadata(metadata map[string]any) Option {
	return func(s *Source) {
		s.metadata = metadata
	}
}

// WithMetadataValue adds a single metadata key-value pair.
func WithMetadataValue(key string, value any) Option {
	return func(s *Source) {
		if s.metadata == nil {
			s.metadata = make(map[string]any)
		}
		s.metadata[key] = value
	}
}

// WithFileExtensions restricts the walk to the given extensions (with dot
// prefix). By default every extension with a registered reader is accepted.
func WithFileExtensions(extensions ...string) Option {
	return func(s *Source) {
		s.fileExtensions = make([]string, 0, len(extensions))
		for _, ext := range extensions {
			s.fileExtensions = append(s.fileExtensions, strings.ToLower(ext))
		}
	}
}

// WithRecursive controls whether subdirectories are walked. Recursive is the
// default.
func WithRecursive(recursive bool) Option {
	return func(s *Source) {
		s.recursive = recursive
	}
}

// WithCustomChunkingStrategy sets a custom chunking strategy, overriding each
// reader's default.
func WithCustomChunkingStrategy(strategy chunking.Strategy) Option {
	return func(s *Source) {
		s.chunkingStrategy = strategy
	}
}

// WithChunkSize sets the chunk size for the readers' default chunking
// strategies.
func WithChunkSize(size int) Option {
	return func(s *Source) {
		s.chunkSize = size
	}
}

// WithChunkOverlap sets the chunk overlap for the readers' default chunking
// strategies.
func WithChunkOverlap(overlap int) Option {
	return func(s *Source) {
		s.chunkOverlap = overlap
	}
}

// WithTransformers sets the transformers applied around chunking.
func WithTransformers(transformers ...transform.Transformer) Option {
	return func(s *Source) {
		s.transformers = transformers
	}
}
