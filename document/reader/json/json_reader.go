//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package json provides the JSON document reader.
package json

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vectorkb/vectorkb/chunking"
	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/document/reader"
)

// supportedExtensions defines the file extensions supported by this reader.
var supportedExtensions = []string{".json"}

// init registers the JSON reader with the global registry.
func init() {
	reader.Register(supportedExtensions, New)
}

// Reader reads JSON documents, renders them as indented text and applies
// chunking strategies.
type Reader struct {
	config *reader.Config
}

var _ reader.Reader = (*Reader)(nil)

// New creates a new JSON reader with the given options.
func New(opts ...reader.Option) reader.Reader {
	return &Reader{config: reader.BuildConfig(opts...)}
}

// ReadFromReader reads JSON content from an io.Reader.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}

	text, err := jsonToText(content)
	if err != nil {
		return nil, err
	}

	doc := document.New(text, name)
	return reader.Process(r.config, defaultStrategy, []*document.Document{doc})
}

// ReadFromFile reads JSON content from a file path.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.ReadFromReader(name, file)
}

// ReadFromURL reads JSON content from a URL.
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
	return "JSONReader"
}

// SupportedExtensions returns the file extensions this reader supports.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}

// jsonToText re-renders JSON as indented text so chunk boundaries fall
// on line breaks instead of arbitrary byte offsets.
func jsonToText(content []byte) (string, error) {
	var data any
	if err := json.Unmarshal(content, &data); err != nil {
		return "", err
	}
	pretty, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(pretty), nil
}

func defaultStrategy(opts ...chunking.Option) (chunking.Strategy, error) {
	return chunking.NewRecursiveChunking(opts...)
}
