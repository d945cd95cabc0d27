//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package vectorstore defines the interface for vector storage backends.
package vectorstore

import (
	"context"
	"errors"

	"github.com/vectorkb/vectorkb/document"
)

// Storage errors.
var (
	// ErrDocumentNotFound is returned when a document ID is not in the store.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidQuery is returned when a search query is malformed.
	ErrInvalidQuery = errors.New("invalid search query")
)

// SearchQuery represents a vector similarity search.
type SearchQuery struct {
	// Vector is the query embedding.
	Vector []float64

	// Limit is the maximum number of results to return.
	Limit int

	// MinScore filters out results scoring below this threshold.
	MinScore float64
}

// ScoredDocument pairs a document with its similarity score.
type ScoredDocument struct {
	Document *document.Document
	Score    float64
}

// SearchResult holds the ranked results of a search.
type SearchResult struct {
	Results []*ScoredDocument
}

// VectorStore stores documents with their embeddings and supports similarity
// search.
type VectorStore interface {
	// Add stores a document with its embedding. Adding an existing ID
	// overwrites the stored document.
	Add(ctx context.Context, doc *document.Document, embedding []float64) error

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*document.Document, error)

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error

	// Search performs a vector similarity search.
	Search(ctx context.Context, query *SearchQuery) (*SearchResult, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Close releases resources held by the store.
	Close() error
}
