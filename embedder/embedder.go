//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package embedder defines the interface for text embedding implementations.
package embedder

import "context"

// Embedder converts text into dense vectors.
type Embedder interface {
	// GetEmbedding generates an embedding vector for the given text.
	GetEmbedding(ctx context.Context, text string) ([]float64, error)

	// GetDimensions returns the number of dimensions in the embedding vectors.
	GetDimensions() int
}
