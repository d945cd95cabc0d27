//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package url provides a URL-based knowledge source.
package url

import (
	"context"
	"fmt"
	neturl "net/url"
	netpath "path"
	"strings"

	"github.com/vectorkb/vectorkb/chunking"
	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/document/reader"
	"github.com/vectorkb/vectorkb/source"
	"github.com/vectorkb/vectorkb/transform"

	// Import readers to trigger their init() functions for registration.
	_ "github.com/vectorkb/vectorkb/document/reader/json"
	_ "github.com/vectorkb/vectorkb/document/reader/markdown"
	_ "github.com/vectorkb/vectorkb/document/reader/pdf"
	_ "github.com/vectorkb/vectorkb/document/reader/text"
)

const (
	defaultName = "URL Source"
	fallbackExt = ".txt"
)

// Source fetches documents over HTTP and dispatches them by URL path
// extension. URLs without a recognized extension are treated as plain text.
type Source struct {
	urls             []string
	name             string
	metadata         map[string]any
	chunkSize        int
	chunkOverlap     int
	chunkingStrategy chunking.Strategy
	transformers     []transform.Transformer
}

var _ source.Source = (*Source)(nil)

// New creates a new URL knowledge source.
func New(urls []string, opts ...Option) *Source {
	s := &Source{
		urls: urls,
		name: defaultName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadDocuments fetches every configured URL and returns the chunked
// documents.
func (s *Source) ReadDocuments(ctx context.Context) ([]*document.Document, error) {
	if len(s.urls) == 0 {
		return nil, fmt.Errorf("no URLs provided")
	}

	var all []*document.Document
	for _, rawURL := range s.urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs, err := s.readURL(rawURL)
		if err != nil {
			return nil, fmt.Errorf("failed to read URL %s: %w", rawURL, err)
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
	return source.TypeURL
}

// GetMetadata returns the metadata associated with this source.
func (s *Source) GetMetadata() map[string]any {
	return s.metadata
}

func (s *Source) readURL(rawURL string) ([]*document.Document, error) {
	ext := urlExtension(rawURL)
	rdr, ok := reader.Get(ext, s.readerOptions()...)
	if !ok {
		rdr, ok = reader.Get(fallbackExt, s.readerOptions()...)
		if !ok {
			return nil, fmt.Errorf("no reader registered for extension %q", ext)
		}
	}

	docs, err := rdr.ReadFromURL(rawURL)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if doc.Metadata == nil {
			doc.Metadata = make(map[string]any)
		}
		for k, v := range s.metadata {
			doc.Metadata[k] = v
		}
		doc.Metadata[source.MetaSource] = source.TypeURL
		doc.Metadata[source.MetaSourceName] = s.name
		doc.Metadata[source.MetaURL] = rawURL
		doc.Metadata[source.MetaContentLength] = doc.Size()
	}
	return docs, nil
}

// urlExtension extracts a lowercased file extension from the URL path.
func urlExtension(rawURL string) string {
	parsed, err := neturl.Parse(rawURL)
	if err != nil {
		return fallbackExt
	}
	ext := strings.ToLower(netpath.Ext(parsed.Path))
	if ext == "" {
		return fallbackExt
	}
	return ext
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
