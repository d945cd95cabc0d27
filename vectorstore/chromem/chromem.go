//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package chromem provides a vector store backed by chromem-go, with optional
// on-disk persistence.
package chromem

import (
	"context"
	"fmt"

	chromemgo "github.com/philippgille/chromem-go"

	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/vectorstore"
)

const defaultCollection = "vectorkb"

var _ vectorstore.VectorStore = (*VectorStore)(nil)

// VectorStore stores documents in a chromem-go collection.
type VectorStore struct {
	db         *chromemgo.DB
	collection *chromemgo.Collection
}

// New creates a new chromem-backed vector store.
func New(opts ...Option) (*VectorStore, error) {
	cfg := &config{collection: defaultCollection}
	for _, opt := range opts {
		opt(cfg)
	}

	var db *chromemgo.DB
	var err error
	if cfg.path != "" {
		db, err = chromemgo.NewPersistentDB(cfg.path, cfg.compress)
		if err != nil {
			return nil, fmt.Errorf("failed to open persistent db: %w", err)
		}
	} else {
		db = chromemgo.NewDB()
	}

	// Embeddings are always supplied by the caller, so no embedding
	// function is configured.
	collection, err := db.GetOrCreateCollection(cfg.collection, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	return &VectorStore{db: db, collection: collection}, nil
}

// Add stores a document with its embedding, overwriting any existing entry.
func (vs *VectorStore) Add(ctx context.Context, doc *document.Document, embedding []float64) error {
	if doc == nil {
		return document.ErrNilDocument
	}
	if doc.ID == "" {
		return fmt.Errorf("document ID cannot be empty")
	}

	return vs.collection.AddDocument(ctx, chromemgo.Document{
		ID:        doc.ID,
		Content:   doc.Content,
		Metadata:  toStringMetadata(doc),
		Embedding: toFloat32(embedding),
	})
}

// Get retrieves a document by ID.
func (vs *VectorStore) Get(ctx context.Context, id string) (*document.Document, error) {
	stored, err := vs.collection.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", vectorstore.ErrDocumentNotFound, id)
	}
	return fromStored(stored.ID, stored.Content, stored.Metadata), nil
}

// Delete removes a document by ID.
func (vs *VectorStore) Delete(ctx context.Context, id string) error {
	if _, err := vs.collection.GetByID(ctx, id); err != nil {
		return fmt.Errorf("%w: %s", vectorstore.ErrDocumentNotFound, id)
	}
	return vs.collection.Delete(ctx, nil, nil, id)
}

// Search returns the stored documents ranked by similarity to the query
// vector.
func (vs *VectorStore) Search(ctx context.Context, query *vectorstore.SearchQuery) (*vectorstore.SearchResult, error) {
	if query == nil || len(query.Vector) == 0 {
		return nil, fmt.Errorf("%w: query vector is empty", vectorstore.ErrInvalidQuery)
	}

	count := vs.collection.Count()
	if count == 0 {
		return &vectorstore.SearchResult{}, nil
	}

	// chromem rejects result limits beyond the collection size.
	limit := query.Limit
	if limit <= 0 || limit > count {
		limit = count
	}

	results, err := vs.collection.QueryEmbedding(ctx, toFloat32(query.Vector), limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	scored := make([]*vectorstore.ScoredDocument, 0, len(results))
	for _, r := range results {
		score := float64(r.Similarity)
		if score < query.MinScore {
			continue
		}
		scored = append(scored, &vectorstore.ScoredDocument{
			Document: fromStored(r.ID, r.Content, r.Metadata),
			Score:    score,
		})
	}
	return &vectorstore.SearchResult{Results: scored}, nil
}

// Count returns the number of stored documents.
func (vs *VectorStore) Count(ctx context.Context) (int, error) {
	return vs.collection.Count(), nil
}

// Close is a no-op; persistence happens per write.
func (vs *VectorStore) Close() error {
	return nil
}

// toStringMetadata flattens document metadata to the string map chromem
// stores. Non-string values are rendered with fmt.Sprint.
func toStringMetadata(doc *document.Document) map[string]string {
	if len(doc.Metadata) == 0 {
		return map[string]string{"name": doc.Name}
	}
	metadata := make(map[string]string, len(doc.Metadata)+1)
	for k, v := range doc.Metadata {
		metadata[k] = fmt.Sprint(v)
	}
	metadata["name"] = doc.Name
	return metadata
}

func fromStored(id, content string, metadata map[string]string) *document.Document {
	doc := &document.Document{
		ID:      id,
		Content: content,
	}
	if len(metadata) > 0 {
		doc.Name = metadata["name"]
		doc.Metadata = make(map[string]any, len(metadata))
		for k, v := range metadata {
			if k == "name" {
				continue
			}
			doc.Metadata[k] = v
		}
	}
	return doc
}

func toFloat32(vector []float64) []float32 {
	out := make([]float32, len(vector))
	for i, v := range vector {
		out[i] = float32(v)
	}
	return out
}
