//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/vectorkb/vectorkb/document"
)

// MarkdownChunking splits markdown documents along their header structure.
// It tries header levels 1 through 6 in order, recurses into sections that are
// still too large, and falls back to paragraph packing and finally a fixed
// character cut for sections without usable structure.
type MarkdownChunking struct {
	opts *options
	md   goldmark.Markdown
}

var _ Strategy = (*MarkdownChunking)(nil)

// NewMarkdownChunking creates a new markdown chunking strategy.
func NewMarkdownChunking(opts ...Option) (*MarkdownChunking, error) {
	options := buildOptions(opts...)
	if err := options.validate(); err != nil {
		return nil, err
	}
	return &MarkdownChunking{
		opts: options,
		md:   goldmark.New(),
	}, nil
}

// Chunk splits the document along markdown headers and applies overlap.
func (m *MarkdownChunking) Chunk(doc *document.Document) ([]*document.Document, error) {
	if doc == nil {
		return nil, document.ErrNilDocument
	}
	if doc.IsEmpty() {
		return nil, nil
	}

	content := normalizeText(doc.Content)

	var fragments []string
	if runeLen(content) <= m.opts.chunkSize {
		fragments = []string{content}
	} else {
		fragments = m.splitRecursively(content)
	}

	fragments = trimFragments(fragments)
	fragments = applyOverlap(fragments, m.opts.overlap)
	return stampChunks(doc, fragments), nil
}

// splitRecursively splits content by headers from level 1 to 6, then by
// paragraphs, then by fixed size. The fixed-size cut is the terminal case and
// guarantees termination.
func (m *MarkdownChunking) splitRecursively(content string) []string {
	if runeLen(content) <= m.opts.chunkSize {
		return []string{content}
	}

	for level := 1; level <= 6; level++ {
		sections := m.splitByHeader(content, level)
		if len(sections) <= 1 {
			continue
		}
		var fragments []string
		for _, section := range sections {
			if strings.TrimSpace(section) == "" {
				continue
			}
			fragments = append(fragments, m.splitRecursively(section)...)
		}
		return fragments
	}

	// No headers found, try paragraph packing before the hard cut.
	paragraphs := strings.Split(content, paragraphSeparator)
	if len(paragraphs) > 1 {
		var fragments []string
		for _, packed := range packUnits(paragraphs, paragraphSeparator, m.opts.chunkSize) {
			if runeLen(packed) <= m.opts.chunkSize {
				fragments = append(fragments, packed)
			} else {
				fragments = append(fragments, splitBySize(packed, m.opts.chunkSize)...)
			}
		}
		return fragments
	}

	return splitBySize(content, m.opts.chunkSize)
}

// splitByHeader splits content into sections at headings of the given level.
// Each section starts with its heading line; content before the first heading
// becomes a headerless leading section. Returns nil when no heading at the
// level is found.
func (m *MarkdownChunking) splitByHeader(content string, level int) []string {
	source := []byte(content)
	reader := text.NewReader(source)
	doc := m.md.Parser().Parse(reader)

	var starts []int
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok || heading.Level != level || heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		// Walk back from the heading text to the start of its line, so the
		// '#' markers are kept with the section.
		start := heading.Lines().At(0).Start
		for start > 0 && source[start-1] != '\n' {
			start--
		}
		starts = append(starts, start)
		return ast.WalkContinue, nil
	})

	if len(starts) == 0 {
		return nil
	}

	var sections []string
	if starts[0] > 0 {
		sections = append(sections, content[:starts[0]])
	}
	for i, start := range starts {
		end := len(content)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		sections = append(sections, content[start:end])
	}
	return sections
}
