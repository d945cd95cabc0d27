//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package reader defines the interface for document readers.
// Readers turn raw sources (files, URLs, arbitrary io.Readers) into chunked
// documents ready for embedding.
package reader

import (
	"io"

	"github.com/vectorkb/vectorkb/chunking"
	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/transform"
)

// Config holds configuration shared by readers.
type Config struct {
	// Chunk determines whether read documents are chunked.
	Chunk bool

	// ChunkSize is the maximum chunk size in characters, passed to the
	// reader's default chunking strategy builder.
	ChunkSize int

	// ChunkOverlap is the chunk overlap in characters, passed to the reader's
	// default chunking strategy builder.
	ChunkOverlap int

	// CustomChunkingStrategy overrides the reader's default strategy.
	CustomChunkingStrategy chunking.Strategy

	// Transformers are applied before and after chunking.
	Transformers []transform.Transformer
}

// Option is a functional option for configuring readers.
type Option func(*Config)

// WithChunking enables or disables document chunking.
func WithChunking(enabled bool) Option {
	return func(c *Config) {
		c.Chunk = enabled
	}
}

// WithChunkSize sets the chunk size and enables chunking.
func WithChunkSize(size int) Option {
	return func(c *Config) {
		c.ChunkSize = size
		c.Chunk = true
	}
}

// WithChunkOverlap sets the chunk overlap and enables chunking.
func WithChunkOverlap(overlap int) Option {
	return func(c *Config) {
		c.ChunkOverlap = overlap
		c.Chunk = true
	}
}

// WithChunkingStrategy sets a custom chunking strategy, overriding the
// reader's default.
func WithChunkingStrategy(strategy chunking.Strategy) Option {
	return func(c *Config) {
		c.CustomChunkingStrategy = strategy
		c.Chunk = true
	}
}

// WithTransformers sets the transformers applied around chunking.
func WithTransformers(transformers ...transform.Transformer) Option {
	return func(c *Config) {
		c.Transformers = transformers
	}
}

// BuildConfig creates a reader config with defaults applied.
func BuildConfig(opts ...Option) *Config {
	config := &Config{Chunk: true}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// BuildChunkingStrategy builds a chunking strategy from config. A custom
// strategy wins; otherwise the reader's default builder is called with the
// configured size and overlap.
func BuildChunkingStrategy(
	config *Config,
	defaultBuilder func(opts ...chunking.Option) (chunking.Strategy, error),
) (chunking.Strategy, error) {
	if config.CustomChunkingStrategy != nil {
		return config.CustomChunkingStrategy, nil
	}

	var opts []chunking.Option
	if config.ChunkSize > 0 {
		opts = append(opts, chunking.WithChunkSize(config.ChunkSize))
	}
	if config.ChunkOverlap > 0 {
		opts = append(opts, chunking.WithOverlap(config.ChunkOverlap))
	}
	return defaultBuilder(opts...)
}

// Process applies the configured transform and chunking pipeline to documents
// produced by a reader.
func Process(
	config *Config,
	defaultBuilder func(opts ...chunking.Option) (chunking.Strategy, error),
	docs []*document.Document,
) ([]*document.Document, error) {
	docs, err := transform.ApplyPreprocess(docs, config.Transformers...)
	if err != nil {
		return nil, err
	}

	if config.Chunk {
		strategy, err := BuildChunkingStrategy(config, defaultBuilder)
		if err != nil {
			return nil, err
		}
		var chunked []*document.Document
		for _, doc := range docs {
			chunks, err := strategy.Chunk(doc)
			if err != nil {
				return nil, err
			}
			chunked = append(chunked, chunks...)
		}
		docs = chunked
	}

	return transform.ApplyPostprocess(docs, config.Transformers...)
}

// Reader interface for different document readers.
type Reader interface {
	// ReadFromReader reads content from an io.Reader and returns a list of
	// documents. The name parameter identifies the source.
	ReadFromReader(name string, r io.Reader) ([]*document.Document, error)

	// ReadFromFile reads content from a file path and returns a list of documents.
	ReadFromFile(filePath string) ([]*document.Document, error)

	// ReadFromURL reads content from a URL and returns a list of documents.
	ReadFromURL(url string) ([]*document.Document, error)

	// Name returns the name of this reader.
	Name() string

	// SupportedExtensions returns the file extensions this reader supports,
	// dot prefix included (e.g. ".pdf", ".txt").
	SupportedExtensions() []string
}
