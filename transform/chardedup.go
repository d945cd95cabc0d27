//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package transform

import (
	"regexp"

	"github.com/vectorkb/vectorkb/document"
)

// CharDedup collapses consecutive repeated characters/strings into a single
// occurrence. For example, "\t\t\t\t" becomes "\t" and "   " becomes " ".
type CharDedup struct {
	patterns     []*regexp.Regexp
	replacements []string
}

var _ Transformer = (*CharDedup)(nil)

// NewCharDedup creates a CharDedup that collapses consecutive occurrences of
// the specified strings.
//
// Example:
//
//	dedup := transform.NewCharDedup("\t", " ", "\n")
//	// Input:  "hello\t\t\tworld   foo\n\n\nbar"
//	// Output: "hello\tworld foo\nbar"
func NewCharDedup(charsToDedup ...string) *CharDedup {
	patterns := make([]*regexp.Regexp, 0, len(charsToDedup))
	replacements := make([]string, 0, len(charsToDedup))

	for _, char := range charsToDedup {
		if char == "" {
			continue
		}
		escaped := regexp.QuoteMeta(char)
		patterns = append(patterns, regexp.MustCompile("("+escaped+"){2,}"))
		replacements = append(replacements, char)
	}

	return &CharDedup{
		patterns:     patterns,
		replacements: replacements,
	}
}

// Preprocess applies the deduplication to documents before chunking.
func (cd *CharDedup) Preprocess(docs []*document.Document) ([]*document.Document, error) {
	result := make([]*document.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		result = append(result, processedDoc(doc, cd.dedupContent(doc.Content)))
	}
	return result, nil
}

// Postprocess returns documents unchanged.
func (cd *CharDedup) Postprocess(docs []*document.Document) ([]*document.Document, error) {
	return docs, nil
}

// dedupContent applies all deduplication patterns to the content.
func (cd *CharDedup) dedupContent(content string) string {
	result := content
	for i, pattern := range cd.patterns {
		result = pattern.ReplaceAllLiteralString(result, cd.replacements[i])
	}
	return result
}
