//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package vectorkb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/embedder"
	"github.com/vectorkb/vectorkb/source"
	dirsource "github.com/vectorkb/vectorkb/source/dir"
	filesource "github.com/vectorkb/vectorkb/source/file"
	"github.com/vectorkb/vectorkb/vectorstore/inmemory"
)

// hashEmbedder maps text to a deterministic low-dimensional vector so
// similarity is exact-match-like without a real model.
type hashEmbedder struct {
	dimensions int
	failOn     string
}

var _ embedder.Embedder = (*hashEmbedder)(nil)

func (h *hashEmbedder) GetEmbedding(ctx context.Context, text string) ([]float64, error) {
	if h.failOn != "" && strings.Contains(text, h.failOn) {
		return nil, fmt.Errorf("embedding failed for %q", h.failOn)
	}
	vec := make([]float64, h.dimensions)
	for i, r := range text {
		vec[(i+int(r))%h.dimensions]++
	}
	return vec, nil
}

func (h *hashEmbedder) GetDimensions() int { return h.dimensions }

func newTestKnowledge(t *testing.T, sources []source.Source) *BuiltinKnowledge {
	t.Helper()
	kb := New(
		WithEmbedder(&hashEmbedder{dimensions: 16}),
		WithVectorStore(inmemory.New()),
		WithSources(sources),
	)
	t.Cleanup(func() { kb.Close() })
	return kb
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuiltinKnowledge_LoadAndSearch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.txt", "Go is a statically typed compiled language.")
	writeFile(t, dir, "python.txt", "Python is a dynamically typed interpreted language.")

	kb := newTestKnowledge(t, []source.Source{dirsource.New(dir)})
	require.NoError(t, kb.Load(context.Background(), WithShowStats(false)))

	results, err := kb.Search(context.Background(), &SearchRequest{
		Query: "Go is a statically typed compiled language.",
		Limit: 1,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Contains(t, results[0].Document.Content, "statically typed")
	require.InDelta(t, 1.0, results[0].Score, 1e-9)
}

func TestBuiltinKnowledge_LoadChunksLargeFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "big.txt", strings.Repeat("Sentences repeat here. ", 200))

	src := filesource.New(
		[]string{filepath.Join(dir, "big.txt")},
		filesource.WithChunkSize(200),
		filesource.WithChunkOverlap(20),
	)

	kb := newTestKnowledge(t, []source.Source{src})
	require.NoError(t, kb.Load(context.Background(), WithShowProgress(false)))

	count, err := kb.vectorStore.Count(context.Background())
	require.NoError(t, err)
	require.Greater(t, count, 1)
}

func TestBuiltinKnowledge_LoadConcurrency(t *testing.T) {
	var sources []source.Source
	for i := 0; i < 6; i++ {
		dir := t.TempDir()
		writeFile(t, dir, "doc.txt", fmt.Sprintf("Document body number %d.", i))
		sources = append(sources, dirsource.New(dir, dirsource.WithName(fmt.Sprintf("src-%d", i))))
	}

	kb := newTestKnowledge(t, sources)
	err := kb.Load(context.Background(),
		WithSourceConcurrency(3),
		WithDocConcurrency(2),
		WithShowStats(false),
		WithShowProgress(false),
	)
	require.NoError(t, err)

	count, err := kb.vectorStore.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 6, count)
}

func TestBuiltinKnowledge_LoadPropagatesErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.txt", "this chunk fails embedding")

	kb := New(
		WithEmbedder(&hashEmbedder{dimensions: 8, failOn: "fails embedding"}),
		WithVectorStore(inmemory.New()),
		WithSources([]source.Source{dirsource.New(dir)}),
	)
	defer kb.Close()

	err := kb.Load(context.Background(), WithShowStats(false))
	require.Error(t, err)
	require.Contains(t, err.Error(), "embedding")
}

func TestBuiltinKnowledge_LoadValidation(t *testing.T) {
	kb := New(WithVectorStore(inmemory.New()))
	require.ErrorIs(t, kb.Load(context.Background()), ErrNoEmbedder)

	kb = New(WithEmbedder(&hashEmbedder{dimensions: 8}))
	require.ErrorIs(t, kb.Load(context.Background()), ErrNoVectorStore)

	// No sources is not an error.
	kb = New(WithEmbedder(&hashEmbedder{dimensions: 8}), WithVectorStore(inmemory.New()))
	require.NoError(t, kb.Load(context.Background()))
}

func TestBuiltinKnowledge_AddDocument(t *testing.T) {
	kb := newTestKnowledge(t, nil)

	doc := document.New("standalone chunk", "note")
	require.NoError(t, kb.AddDocument(context.Background(), doc))

	results, err := kb.Search(context.Background(), &SearchRequest{Query: "standalone chunk"})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	require.Equal(t, doc.ID, results[0].Document.ID)

	require.ErrorIs(t, kb.AddDocument(context.Background(), nil), document.ErrNilDocument)
}

func TestBuiltinKnowledge_SearchValidation(t *testing.T) {
	kb := newTestKnowledge(t, nil)

	_, err := kb.Search(context.Background(), nil)
	require.Error(t, err)

	_, err = kb.Search(context.Background(), &SearchRequest{})
	require.Error(t, err)
}
