//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package chunking provides document chunking strategies and utilities.
package chunking

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vectorkb/vectorkb/document"
)

// Default chunking parameters.
const (
	// DefaultChunkSize is the default maximum size of each chunk in characters.
	DefaultChunkSize = 1000

	// DefaultOverlap is the default number of characters carried over from the
	// previous chunk.
	DefaultOverlap = 200
)

// Metadata keys stamped on every produced chunk.
const (
	// MetaChunkIndex is the 0-based position of the chunk within its document.
	MetaChunkIndex = "chunk_index"

	// MetaChunkSize is the character count of the chunk content.
	MetaChunkSize = "chunk_size"

	// MetaTotalChunks is the number of chunks produced from the document.
	MetaTotalChunks = "total_chunks"
)

// Configuration errors.
var (
	// ErrInvalidChunkSize is returned when the chunk size is not positive.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInvalidOverlap is returned when the overlap is negative.
	ErrInvalidOverlap = errors.New("overlap must be non-negative")

	// ErrOverlapTooLarge is returned when the overlap is not smaller than the
	// chunk size. Allowing it would stall the greedy accumulation.
	ErrOverlapTooLarge = errors.New("overlap must be smaller than chunk size")
)

// Strategy defines the interface for document chunking strategies.
type Strategy interface {
	// Chunk splits a document into smaller chunks based on the strategy's algorithm.
	Chunk(doc *document.Document) ([]*document.Document, error)
}

// Option represents a functional option for configuring chunking strategies.
type Option func(*options)

// options contains the configuration shared by all chunking strategies.
type options struct {
	chunkSize int
	overlap   int
}

// WithChunkSize sets the maximum size of each chunk in characters.
func WithChunkSize(size int) Option {
	return func(o *options) {
		o.chunkSize = size
	}
}

// WithOverlap sets the number of characters to overlap between chunks.
func WithOverlap(overlap int) Option {
	return func(o *options) {
		o.overlap = overlap
	}
}

// buildOptions creates options with defaults applied.
func buildOptions(opts ...Option) *options {
	o := &options{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// validate validates the chunking options.
func (o *options) validate() error {
	if o.chunkSize <= 0 {
		return ErrInvalidChunkSize
	}
	if o.overlap < 0 {
		return ErrInvalidOverlap
	}
	if o.overlap >= o.chunkSize {
		return ErrOverlapTooLarge
	}
	return nil
}

// runeLen returns the length of s in characters.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// normalizeText normalizes line endings so separator matching behaves the same
// on Windows and Unix content.
func normalizeText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

// packUnits greedily accumulates units into fragments no longer than chunkSize
// characters, joining accumulated units with sep. A single unit longer than
// chunkSize is emitted as its own fragment, unsplit; callers decide whether to
// break it down further.
func packUnits(units []string, sep string, chunkSize int) []string {
	var fragments []string
	var current string

	for _, unit := range units {
		candidate := unit
		if current != "" {
			candidate = current + sep + unit
		}

		if runeLen(candidate) <= chunkSize {
			current = candidate
			continue
		}

		// Flush the running fragment and carry the unit into a new one.
		if current != "" {
			fragments = append(fragments, current)
		}
		if runeLen(unit) <= chunkSize {
			current = unit
		} else {
			// Oversized unit passes through unsplit.
			fragments = append(fragments, unit)
			current = ""
		}
	}

	if current != "" {
		fragments = append(fragments, current)
	}
	return fragments
}

// splitBySize cuts content at fixed chunkSize character boundaries.
// Cuts are made at rune boundaries so multi-byte characters stay intact.
func splitBySize(content string, chunkSize int) []string {
	runes := []rune(content)
	var parts []string
	for start := 0; start < len(runes); start += chunkSize {
		end := min(start+chunkSize, len(runes))
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}

// trimFragments strips surrounding whitespace from every fragment and drops
// fragments that become empty.
func trimFragments(fragments []string) []string {
	var result []string
	for _, f := range fragments {
		trimmed := strings.TrimSpace(f)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// applyOverlap prepends the tail of each fragment's predecessor, separated by a
// single space. The first fragment is left unmodified, and overlap text is
// always taken from the predecessor's pre-overlap content. Overlap is additive:
// a fragment may exceed the nominal chunk size by up to overlap+1 characters.
func applyOverlap(fragments []string, overlap int) []string {
	if len(fragments) <= 1 || overlap <= 0 {
		return fragments
	}

	result := make([]string, 0, len(fragments))
	result = append(result, fragments[0])
	for i := 1; i < len(fragments); i++ {
		result = append(result, tailRunes(fragments[i-1], overlap)+" "+fragments[i])
	}
	return result
}

// tailRunes returns the last n characters of s, or all of s when shorter.
func tailRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

// stampChunks pairs each chunk content with a copy of the document's metadata
// extended with positional and size information.
func stampChunks(doc *document.Document, contents []string) []*document.Document {
	total := len(contents)
	chunks := make([]*document.Document, 0, total)
	for i, content := range contents {
		chunks = append(chunks, createChunk(doc, content, i, total))
	}
	return chunks
}

// createChunk creates a single chunk document with stamped metadata.
func createChunk(doc *document.Document, content string, index, total int) *document.Document {
	chunk := &document.Document{
		Name:      doc.Name,
		Content:   content,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}

	if doc.ID != "" {
		chunk.ID = doc.ID + "_chunk_" + strconv.Itoa(index)
	}

	// Copy and extend metadata so chunks can diverge from the document safely.
	chunk.Metadata = make(map[string]any, len(doc.Metadata)+3)
	for k, v := range doc.Metadata {
		chunk.Metadata[k] = v
	}
	chunk.Metadata[MetaChunkIndex] = index
	chunk.Metadata[MetaChunkSize] = runeLen(content)
	chunk.Metadata[MetaTotalChunks] = total
	return chunk
}
