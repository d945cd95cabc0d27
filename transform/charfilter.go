//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package transform

import (
	"strings"

	"github.com/vectorkb/vectorkb/document"
)

// CharFilter removes specific characters or strings from document content.
// Useful for stripping control characters before chunking.
type CharFilter struct {
	replacer *strings.Replacer
}

var _ Transformer = (*CharFilter)(nil)

// NewCharFilter creates a CharFilter that removes the specified strings.
//
// Example:
//
//	filter := transform.NewCharFilter("\x00", "\ufeff")
func NewCharFilter(charsToRemove ...string) *CharFilter {
	args := make([]string, 0, len(charsToRemove)*2)
	for _, char := range charsToRemove {
		if char == "" {
			continue
		}
		args = append(args, char, "")
	}
	return &CharFilter{replacer: strings.NewReplacer(args...)}
}

// Preprocess applies the filter to documents before chunking.
func (cf *CharFilter) Preprocess(docs []*document.Document) ([]*document.Document, error) {
	result := make([]*document.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		result = append(result, processedDoc(doc, cf.replacer.Replace(doc.Content)))
	}
	return result, nil
}

// Postprocess returns documents unchanged.
func (cf *CharFilter) Postprocess(docs []*document.Document) ([]*document.Document, error) {
	return docs, nil
}
