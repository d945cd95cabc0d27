//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package vectorkb turns document sources into a searchable vector knowledge
// base. Documents are read, chunked, embedded and stored, then retrieved by
// vector similarity.
package vectorkb

import (
	"context"

	"github.com/vectorkb/vectorkb/document"
)

// SearchRequest represents a knowledge base query.
type SearchRequest struct {
	// Query is the text to search for.
	Query string

	// Limit is the maximum number of results. Zero means the default.
	Limit int

	// MinScore filters out results scoring below this threshold.
	MinScore float64
}

// SearchResult pairs a retrieved chunk with its similarity score.
type SearchResult struct {
	Document *document.Document
	Score    float64
}

// Knowledge represents a searchable knowledge base.
type Knowledge interface {
	// Search retrieves the most relevant chunks for the request.
	Search(ctx context.Context, req *SearchRequest) ([]*SearchResult, error)
}
