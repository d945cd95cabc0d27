//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package vectorkb

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/embedder"
	"github.com/vectorkb/vectorkb/log"
	"github.com/vectorkb/vectorkb/source"
	"github.com/vectorkb/vectorkb/vectorstore"
)

// Configuration errors.
var (
	// ErrNoEmbedder is returned when an operation needs an embedder and none
	// is configured.
	ErrNoEmbedder = errors.New("no embedder configured")

	// ErrNoVectorStore is returned when an operation needs a vector store and
	// none is configured.
	ErrNoVectorStore = errors.New("no vector store configured")
)

const (
	// defaultSearchLimit caps search results when the request does not set one.
	defaultSearchLimit = 5

	// maxDefaultSourceParallel limits how many sources are processed in
	// parallel when the caller does not specify an explicit value.
	maxDefaultSourceParallel = 4
)

var _ Knowledge = (*BuiltinKnowledge)(nil)

// BuiltinKnowledge implements the Knowledge interface on top of an embedder
// and a vector store.
type BuiltinKnowledge struct {
	vectorStore vectorstore.VectorStore
	embedder    embedder.Embedder
	sources     []source.Source
}

// Option represents a functional option for configuring BuiltinKnowledge.
type Option func(*BuiltinKnowledge)

// WithVectorStore sets the vector store for similarity search.
func WithVectorStore(vs vectorstore.VectorStore) Option {
	return func(kb *BuiltinKnowledge) {
		kb.vectorStore = vs
	}
}

// WithEmbedder sets the embedder for generating document embeddings.
func WithEmbedder(e embedder.Embedder) Option {
	return func(kb *BuiltinKnowledge) {
		kb.embedder = e
	}
}

// WithSources sets the knowledge sources loaded by Load.
func WithSources(sources []source.Source) Option {
	return func(kb *BuiltinKnowledge) {
		kb.sources = sources
	}
}

// New creates a new BuiltinKnowledge instance with the given options.
func New(opts ...Option) *BuiltinKnowledge {
	kb := &BuiltinKnowledge{}
	for _, opt := range opts {
		opt(kb)
	}
	return kb
}

// LoadOption represents a functional option for configuring load behavior.
type LoadOption func(*loadConfig)

type loadConfig struct {
	showProgress     bool
	progressStepSize int
	showStats        bool
	srcParallelism   int
	docParallelism   int
}

// WithShowProgress enables or disables progress logging during load.
func WithShowProgress(show bool) LoadOption {
	return func(lc *loadConfig) {
		lc.showProgress = show
	}
}

// WithProgressStepSize sets the granularity of progress updates.
func WithProgressStepSize(stepSize int) LoadOption {
	return func(lc *loadConfig) {
		lc.progressStepSize = stepSize
	}
}

// WithShowStats enables or disables statistics logging after load.
func WithShowStats(show bool) LoadOption {
	return func(lc *loadConfig) {
		lc.showStats = show
	}
}

// WithSourceConcurrency configures how many sources are loaded in parallel.
// The default is min(4, number of sources).
func WithSourceConcurrency(n int) LoadOption {
	return func(lc *loadConfig) {
		lc.srcParallelism = n
	}
}

// WithDocConcurrency configures how many documents per source are embedded
// concurrently. The default is runtime.NumCPU().
func WithDocConcurrency(n int) LoadOption {
	return func(lc *loadConfig) {
		lc.docParallelism = n
	}
}

// Load reads all configured sources, embeds their chunks and stores them in
// the vector store. Sources are processed on a worker pool, with a second
// pool fanning out document embedding within each source.
func (kb *BuiltinKnowledge) Load(ctx context.Context, opts ...LoadOption) error {
	if kb.embedder == nil {
		return ErrNoEmbedder
	}
	if kb.vectorStore == nil {
		return ErrNoVectorStore
	}
	if len(kb.sources) == 0 {
		log.Info("No sources configured, nothing to load")
		return nil
	}

	config := kb.buildLoadConfig(len(kb.sources), opts...)
	startTime := time.Now()

	srcPool, err := ants.NewPool(config.srcParallelism)
	if err != nil {
		return fmt.Errorf("failed to create source worker pool: %w", err)
	}
	defer srcPool.Release()

	docPool, err := ants.NewPool(config.docParallelism)
	if err != nil {
		return fmt.Errorf("failed to create document worker pool: %w", err)
	}
	defer docPool.Release()

	stats := newLoadStats()

	var wg sync.WaitGroup
	errCh := make(chan error, len(kb.sources))
	for i, src := range kb.sources {
		wg.Add(1)
		srcIdx := i
		src := src
		submitErr := srcPool.Submit(func() {
			defer wg.Done()
			log.Infof("Loading source %d/%d: %s (type: %s)",
				srcIdx+1, len(kb.sources), src.Name(), src.Type())
			if err := kb.loadSource(ctx, src, config, docPool, stats); err != nil {
				errCh <- err
				return
			}
			log.Infof("Successfully loaded source %s", src.Name())
		})
		if submitErr != nil {
			wg.Done()
			errCh <- fmt.Errorf("failed to submit source task: %w", submitErr)
		}
	}
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return err
	}

	log.Infof("Knowledge base loading completed in %s (%d sources, %d chunks)",
		time.Since(startTime).Truncate(time.Millisecond), len(kb.sources), stats.chunks())
	if config.showStats {
		stats.log()
	}
	return nil
}

// loadSource reads one source and embeds its documents on the shared pool.
func (kb *BuiltinKnowledge) loadSource(
	ctx context.Context,
	src source.Source,
	config *loadConfig,
	pool *ants.Pool,
	stats *loadStats,
) error {
	docs, err := src.ReadDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to read documents from source %s: %w", src.Name(), err)
	}
	log.Infof("Fetched %d document(s) from source %s", len(docs), src.Name())

	var wg sync.WaitGroup
	errCh := make(chan error, len(docs))
	var processed int64
	var mu sync.Mutex

	for _, doc := range docs {
		wg.Add(1)
		doc := doc
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := kb.AddDocument(ctx, doc); err != nil {
				errCh <- fmt.Errorf("source %s: %w", src.Name(), err)
				return
			}
			stats.record(doc)

			if config.showProgress {
				mu.Lock()
				processed++
				if processed%int64(config.progressStepSize) == 0 || processed == int64(len(docs)) {
					log.Infof("Processed %d/%d doc(s) | source %s", processed, len(docs), src.Name())
				}
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			errCh <- fmt.Errorf("failed to submit doc task: %w", submitErr)
		}
	}
	wg.Wait()
	close(errCh)

	return <-errCh
}

// AddDocument embeds a single document and stores it in the vector store.
func (kb *BuiltinKnowledge) AddDocument(ctx context.Context, doc *document.Document) error {
	if kb.embedder == nil {
		return ErrNoEmbedder
	}
	if kb.vectorStore == nil {
		return ErrNoVectorStore
	}
	if doc == nil {
		return document.ErrNilDocument
	}

	embedding, err := kb.embedder.GetEmbedding(ctx, doc.Content)
	if err != nil {
		return fmt.Errorf("failed to generate embedding: %w", err)
	}
	if err := kb.vectorStore.Add(ctx, doc, embedding); err != nil {
		return fmt.Errorf("failed to store embedding: %w", err)
	}
	return nil
}

// Search embeds the query and returns the most similar stored chunks.
func (kb *BuiltinKnowledge) Search(ctx context.Context, req *SearchRequest) ([]*SearchResult, error) {
	if req == nil || req.Query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if kb.embedder == nil {
		return nil, ErrNoEmbedder
	}
	if kb.vectorStore == nil {
		return nil, ErrNoVectorStore
	}

	embedding, err := kb.embedder.GetEmbedding(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	result, err := kb.vectorStore.Search(ctx, &vectorstore.SearchQuery{
		Vector:   embedding,
		Limit:    limit,
		MinScore: req.MinScore,
	})
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	results := make([]*SearchResult, 0, len(result.Results))
	for _, scored := range result.Results {
		results = append(results, &SearchResult{
			Document: scored.Document,
			Score:    scored.Score,
		})
	}
	return results, nil
}

// Close releases the underlying vector store.
func (kb *BuiltinKnowledge) Close() error {
	if kb.vectorStore == nil {
		return nil
	}
	return kb.vectorStore.Close()
}

func (kb *BuiltinKnowledge) buildLoadConfig(sourceCount int, opts ...LoadOption) *loadConfig {
	config := &loadConfig{
		showProgress:     true,
		progressStepSize: 10,
		showStats:        true,
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.srcParallelism <= 0 {
		config.srcParallelism = sourceCount
		if config.srcParallelism > maxDefaultSourceParallel {
			config.srcParallelism = maxDefaultSourceParallel
		}
	}
	if config.docParallelism <= 0 {
		config.docParallelism = runtime.NumCPU()
	}
	if config.progressStepSize <= 0 {
		config.progressStepSize = 10
	}
	return config
}
