//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package text provides the plain text document reader.
package text

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vectorkb/vectorkb/chunking"
	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/document/reader"
)

// supportedExtensions defines the file extensions supported by this reader.
var supportedExtensions = []string{".txt", ".text"}

// init registers the text reader with the global registry.
func init() {
	reader.Register(supportedExtensions, New)
}

// Reader reads plain text documents and applies chunking strategies.
type Reader struct {
	config *reader.Config
}

var _ reader.Reader = (*Reader)(nil)

// New creates a new text reader with the given options.
// Text uses the recursive (separator cascade) strategy by default.
func New(opts ...reader.Option) reader.Reader {
	return &Reader{config: reader.BuildConfig(opts...)}
}

// ReadFromReader reads text content from an io.Reader.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}

	doc := document.New(string(content), name)
	return reader.Process(r.config, defaultStrategy, []*document.Document{doc})
}

// ReadFromFile reads text content from a file path.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.ReadFromReader(name, file)
}

// ReadFromURL reads text content from a URL.
func (r *Reader) ReadFromURL(url string) ([]*document.Document, error) {
	body, name, err := reader.FetchURL(url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return r.ReadFromReader(name, body)
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "TextReader"
}

// SupportedExtensions returns the file extensions this reader supports.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}

func defaultStrategy(opts ...chunking.Option) (chunking.Strategy, error) {
	return chunking.NewRecursiveChunking(opts...)
}
