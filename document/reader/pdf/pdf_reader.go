//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package pdf provides the PDF document reader.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/vectorkb/vectorkb/chunking"
	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/document/reader"
)

// supportedExtensions defines the file extensions supported by this reader.
var supportedExtensions = []string{".pdf"}

// init registers the PDF reader with the global registry.
func init() {
	reader.Register(supportedExtensions, New)
}

// Reader reads PDF documents and applies chunking strategies.
// Only the text layer is extracted; scanned pages without text come out empty.
type Reader struct {
	config *reader.Config
}

var _ reader.Reader = (*Reader)(nil)

// New creates a new PDF reader with the given options.
// PDF uses the recursive (separator cascade) strategy by default.
func New(opts ...reader.Option) reader.Reader {
	return &Reader{config: reader.BuildConfig(opts...)}
}

// ReadFromReader reads PDF content from an io.Reader.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	// The PDF parser needs random access; buffer the stream.
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF content: %w", err)
	}
	return r.read(bytes.NewReader(content), int64(len(content)), name)
}

// ReadFromFile reads PDF content from a file path.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat PDF file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.read(file, info.Size(), name)
}

// ReadFromURL reads PDF content from a URL.
func (r *Reader) ReadFromURL(url string) ([]*document.Document, error) {
	body, name, err := reader.FetchURL(url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return r.ReadFromReader(name, body)
}

// read extracts the text layer and runs the chunking pipeline.
func (r *Reader) read(rs io.ReaderAt, size int64, name string) ([]*document.Document, error) {
	pdfReader, err := pdf.NewReader(rs, size)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}

	text, err := extractText(pdfReader)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	doc := document.New(text, name)
	return reader.Process(r.config, defaultStrategy, []*document.Document{doc})
}

// extractText extracts plain text from every page of the PDF.
// Pages that fail to decode are skipped rather than failing the whole file.
func extractText(pdfReader *pdf.Reader) (string, error) {
	var allText strings.Builder
	totalPage := pdfReader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := pdfReader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err == nil && text != "" {
			allText.WriteString(text)
			allText.WriteString("\n")
		}
	}
	return allText.String(), nil
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "PDFReader"
}

// SupportedExtensions returns the file extensions this reader supports.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}

func defaultStrategy(opts ...chunking.Option) (chunking.Strategy, error) {
	return chunking.NewRecursiveChunking(opts...)
}
