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

// paragraphSeparator is the string used to separate and rejoin paragraphs.
const paragraphSeparator = "\n\n"

// ParagraphChunking accumulates whole paragraphs into chunks. Paragraphs are
// separated by a blank line. A single paragraph longer than the chunk size is
// kept intact, so such a chunk may exceed the nominal limit.
type ParagraphChunking struct {
	opts *options
}

var _ Strategy = (*ParagraphChunking)(nil)

// NewParagraphChunking creates a new paragraph-based chunking strategy.
func NewParagraphChunking(opts ...Option) (*ParagraphChunking, error) {
	options := buildOptions(opts...)
	if err := options.validate(); err != nil {
		return nil, err
	}
	return &ParagraphChunking{opts: options}, nil
}

// Chunk splits the document into paragraph-aligned chunks and applies overlap.
func (p *ParagraphChunking) Chunk(doc *document.Document) ([]*document.Document, error) {
	if doc == nil {
		return nil, document.ErrNilDocument
	}
	if doc.IsEmpty() {
		return nil, nil
	}

	paragraphs := strings.Split(normalizeText(doc.Content), paragraphSeparator)
	fragments := packUnits(paragraphs, paragraphSeparator, p.opts.chunkSize)
	fragments = trimFragments(fragments)
	fragments = applyOverlap(fragments, p.opts.overlap)
	return stampChunks(doc, fragments), nil
}
