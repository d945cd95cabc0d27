//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/vectorstore"
)

func newDoc(id, content string) *document.Document {
	return &document.Document{ID: id, Name: id, Content: content}
}

func TestInMemory_AddGetDelete(t *testing.T) {
	ctx := context.Background()
	vs := New()

	require.NoError(t, vs.Add(ctx, newDoc("a", "first"), []float64{1, 0}))

	got, err := vs.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "first", got.Content)

	// Overwrite keeps a single entry.
	require.NoError(t, vs.Add(ctx, newDoc("a", "updated"), []float64{0, 1}))
	count, err := vs.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.NoError(t, vs.Delete(ctx, "a"))
	_, err = vs.Get(ctx, "a")
	require.ErrorIs(t, err, vectorstore.ErrDocumentNotFound)
	require.ErrorIs(t, vs.Delete(ctx, "a"), vectorstore.ErrDocumentNotFound)
}

func TestInMemory_AddValidation(t *testing.T) {
	ctx := context.Background()
	vs := New()

	require.ErrorIs(t, vs.Add(ctx, nil, nil), document.ErrNilDocument)
	require.Error(t, vs.Add(ctx, newDoc("", "no id"), []float64{1}))
}

func TestInMemory_Search(t *testing.T) {
	ctx := context.Background()
	vs := New()

	require.NoError(t, vs.Add(ctx, newDoc("x", "x axis"), []float64{1, 0}))
	require.NoError(t, vs.Add(ctx, newDoc("y", "y axis"), []float64{0, 1}))
	require.NoError(t, vs.Add(ctx, newDoc("xy", "diagonal"), []float64{1, 1}))

	result, err := vs.Search(ctx, &vectorstore.SearchQuery{Vector: []float64{1, 0}, Limit: 2})
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	require.Equal(t, "x", result.Results[0].Document.ID)
	require.InDelta(t, 1.0, result.Results[0].Score, 1e-9)
	require.Equal(t, "xy", result.Results[1].Document.ID)

	// MinScore filters orthogonal vectors.
	result, err = vs.Search(ctx, &vectorstore.SearchQuery{Vector: []float64{1, 0}, MinScore: 0.5})
	require.NoError(t, err)
	for _, r := range result.Results {
		require.GreaterOrEqual(t, r.Score, 0.5)
	}

	_, err = vs.Search(ctx, &vectorstore.SearchQuery{})
	require.ErrorIs(t, err, vectorstore.ErrInvalidQuery)
	_, err = vs.Search(ctx, nil)
	require.ErrorIs(t, err, vectorstore.ErrInvalidQuery)
}

func TestInMemory_SearchIsolatesStoredDocuments(t *testing.T) {
	ctx := context.Background()
	vs := New()

	doc := newDoc("a", "original")
	require.NoError(t, vs.Add(ctx, doc, []float64{1}))

	// Mutating the input after Add must not affect the store.
	doc.Content = "mutated"
	got, err := vs.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "original", got.Content)
}

func TestCosineSimilarity(t *testing.T) {
	require.InDelta(t, 1.0, cosineSimilarity([]float64{1, 2}, []float64{2, 4}), 1e-9)
	require.InDelta(t, 0.0, cosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	require.InDelta(t, -1.0, cosineSimilarity([]float64{1, 0}, []float64{-1, 0}), 1e-9)
	require.Zero(t, cosineSimilarity([]float64{1}, []float64{1, 2}))
	require.Zero(t, cosineSimilarity([]float64{0, 0}, []float64{1, 2}))
}
