//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"strings"

	"github.com/vectorkb/vectorkb/document"
)

// separators is the cascade tried by RecursiveChunking, ordered from the most
// to the least semantically meaningful boundary. The empty separator is the
// last resort: a hard cut at fixed character boundaries.
var separators = []string{
	"\n\n", // paragraph break
	"\n",   // line break
	". ",   // sentence end
	"! ",
	"? ",
	"; ",
	", ",
	" ",
	"",
}

// RecursiveChunking splits text by a cascade of separators, preferring
// paragraph and sentence boundaries over word and character cuts. It is the
// strategy most RAG pipelines default to because it keeps semantically related
// content together whenever the size limit allows.
type RecursiveChunking struct {
	opts *options
}

var _ Strategy = (*RecursiveChunking)(nil)

// NewRecursiveChunking creates a new recursive chunking strategy.
func NewRecursiveChunking(opts ...Option) (*RecursiveChunking, error) {
	options := buildOptions(opts...)
	if err := options.validate(); err != nil {
		return nil, err
	}
	return &RecursiveChunking{opts: options}, nil
}

// Chunk splits the document using the separator cascade and applies overlap.
func (r *RecursiveChunking) Chunk(doc *document.Document) ([]*document.Document, error) {
	if doc == nil {
		return nil, document.ErrNilDocument
	}
	if doc.IsEmpty() {
		return nil, nil
	}

	fragments := []string{normalizeText(doc.Content)}

	for _, sep := range separators {
		var next []string
		for _, fragment := range fragments {
			if runeLen(fragment) <= r.opts.chunkSize {
				next = append(next, fragment)
				continue
			}
			next = append(next, r.splitBySeparator(fragment, sep)...)
		}
		fragments = next

		if allWithinLimit(fragments, r.opts.chunkSize) {
			break
		}
	}

	fragments = trimFragments(fragments)
	fragments = applyOverlap(fragments, r.opts.overlap)
	return stampChunks(doc, fragments), nil
}

// splitBySeparator splits text on sep and recombines the parts greedily up to
// the chunk size. A part that alone exceeds the limit is passed through for
// the next separator round, except at the empty separator where the text is
// cut at fixed character boundaries.
func (r *RecursiveChunking) splitBySeparator(text, sep string) []string {
	if sep == "" {
		return splitBySize(text, r.opts.chunkSize)
	}
	return packUnits(strings.Split(text, sep), sep, r.opts.chunkSize)
}

// allWithinLimit reports whether every fragment fits the chunk size.
func allWithinLimit(fragments []string, chunkSize int) bool {
	for _, f := range fragments {
		if runeLen(f) > chunkSize {
			return false
		}
	}
	return true
}
