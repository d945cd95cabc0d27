//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory vector store implementation.
package inmemory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/vectorstore"
)

var _ vectorstore.VectorStore = (*VectorStore)(nil)

type entry struct {
	doc       *document.Document
	embedding []float64
}

// VectorStore keeps documents and embeddings in a map guarded by a RWMutex.
// Intended for tests and small corpora.
type VectorStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New creates a new in-memory vector store.
func New() *VectorStore {
	return &VectorStore{
		entries: make(map[string]entry),
	}
}

// Add stores a document with its embedding, overwriting any existing entry.
func (vs *VectorStore) Add(ctx context.Context, doc *document.Document, embedding []float64) error {
	if doc == nil {
		return document.ErrNilDocument
	}
	if doc.ID == "" {
		return fmt.Errorf("document ID cannot be empty")
	}

	vs.mu.Lock()
	defer vs.mu.Unlock()

	stored := make([]float64, len(embedding))
	copy(stored, embedding)
	vs.entries[doc.ID] = entry{doc: doc.Clone(), embedding: stored}
	return nil
}

// Get retrieves a document by ID.
func (vs *VectorStore) Get(ctx context.Context, id string) (*document.Document, error) {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	e, ok := vs.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", vectorstore.ErrDocumentNotFound, id)
	}
	return e.doc.Clone(), nil
}

// Delete removes a document by ID.
func (vs *VectorStore) Delete(ctx context.Context, id string) error {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	if _, ok := vs.entries[id]; !ok {
		return fmt.Errorf("%w: %s", vectorstore.ErrDocumentNotFound, id)
	}
	delete(vs.entries, id)
	return nil
}

// Search returns the stored documents ranked by cosine similarity to the
// query vector.
func (vs *VectorStore) Search(ctx context.Context, query *vectorstore.SearchQuery) (*vectorstore.SearchResult, error) {
	if query == nil || len(query.Vector) == 0 {
		return nil, fmt.Errorf("%w: query vector is empty", vectorstore.ErrInvalidQuery)
	}

	vs.mu.RLock()
	defer vs.mu.RUnlock()

	scored := make([]*vectorstore.ScoredDocument, 0, len(vs.entries))
	for _, e := range vs.entries {
		score := cosineSimilarity(query.Vector, e.embedding)
		if score < query.MinScore {
			continue
		}
		scored = append(scored, &vectorstore.ScoredDocument{
			Document: e.doc.Clone(),
			Score:    score,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if query.Limit > 0 && len(scored) > query.Limit {
		scored = scored[:query.Limit]
	}
	return &vectorstore.SearchResult{Results: scored}, nil
}

// Count returns the number of stored documents.
func (vs *VectorStore) Count(ctx context.Context) (int, error) {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return len(vs.entries), nil
}

// Close is a no-op for the in-memory store.
func (vs *VectorStore) Close() error {
	return nil
}

// cosineSimilarity computes the cosine similarity of two vectors. Vectors of
// different lengths or zero magnitude score 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
