//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"strings"
	"unicode"

	"github.com/vectorkb/vectorkb/document"
)

// SentenceChunking accumulates whole sentences into chunks. A sentence ends at
// whitespace following '.', '!' or '?'. A single sentence longer than the
// chunk size is kept intact, so such a chunk may exceed the nominal limit.
type SentenceChunking struct {
	opts *options
}

var _ Strategy = (*SentenceChunking)(nil)

// NewSentenceChunking creates a new sentence-based chunking strategy.
func NewSentenceChunking(opts ...Option) (*SentenceChunking, error) {
	options := buildOptions(opts...)
	if err := options.validate(); err != nil {
		return nil, err
	}
	return &SentenceChunking{opts: options}, nil
}

// Chunk splits the document into sentence-aligned chunks and applies overlap.
func (s *SentenceChunking) Chunk(doc *document.Document) ([]*document.Document, error) {
	if doc == nil {
		return nil, document.ErrNilDocument
	}
	if doc.IsEmpty() {
		return nil, nil
	}

	sentences := splitSentences(normalizeText(doc.Content))
	fragments := packUnits(sentences, " ", s.opts.chunkSize)
	fragments = trimFragments(fragments)
	fragments = applyOverlap(fragments, s.opts.overlap)
	return stampChunks(doc, fragments), nil
}

// splitSentences splits text at whitespace that immediately follows a
// sentence-ending punctuation mark. The whitespace itself is consumed.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	prevEndsSentence := false

	for _, r := range text {
		if prevEndsSentence && unicode.IsSpace(r) {
			// Consume the whole whitespace run after the boundary.
			if current.Len() > 0 {
				sentences = append(sentences, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
		prevEndsSentence = r == '.' || r == '!' || r == '?'
	}
	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}
	return sentences
}
