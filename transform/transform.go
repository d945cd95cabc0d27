//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package transform provides document content transformations applied around
// chunking.
package transform

import (
	"fmt"

	"github.com/vectorkb/vectorkb/document"
)

// Transformer transforms documents before or after chunking.
type Transformer interface {
	// Preprocess transforms documents before chunking.
	Preprocess(docs []*document.Document) ([]*document.Document, error)

	// Postprocess transforms documents after chunking.
	Postprocess(docs []*document.Document) ([]*document.Document, error)
}

// ApplyPreprocess runs the preprocess step of every transformer in order.
func ApplyPreprocess(docs []*document.Document, transformers ...Transformer) ([]*document.Document, error) {
	var err error
	for _, t := range transformers {
		if t == nil {
			continue
		}
		docs, err = t.Preprocess(docs)
		if err != nil {
			return nil, fmt.Errorf("preprocess: %w", err)
		}
	}
	return docs, nil
}

// ApplyPostprocess runs the postprocess step of every transformer in order.
func ApplyPostprocess(docs []*document.Document, transformers ...Transformer) ([]*document.Document, error) {
	var err error
	for _, t := range transformers {
		if t == nil {
			continue
		}
		docs, err = t.Postprocess(docs)
		if err != nil {
			return nil, fmt.Errorf("postprocess: %w", err)
		}
	}
	return docs, nil
}

// processedDoc returns a copy of doc carrying the transformed content.
func processedDoc(doc *document.Document, content string) *document.Document {
	clone := doc.Clone()
	clone.Content = content
	return clone
}
