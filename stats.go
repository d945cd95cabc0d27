//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package vectorkb

import (
	"sync"

	"github.com/vectorkb/vectorkb/chunking"
	"github.com/vectorkb/vectorkb/document"
	"github.com/vectorkb/vectorkb/log"
)

// loadStats accumulates the chunks stored during a Load run so summary
// statistics can be logged at the end.
type loadStats struct {
	mu   sync.Mutex
	docs []*document.Document
}

func newLoadStats() *loadStats {
	return &loadStats{}
}

func (s *loadStats) record(doc *document.Document) {
	s.mu.Lock()
	s.docs = append(s.docs, doc)
	s.mu.Unlock()
}

func (s *loadStats) chunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func (s *loadStats) log() {
	s.mu.Lock()
	stats := chunking.CollectStats(s.docs)
	s.mu.Unlock()

	if stats.TotalChunks == 0 {
		return
	}
	log.Infof("Chunk statistics: total=%d min=%d max=%d avg=%.1f characters=%d",
		stats.TotalChunks, stats.MinChunkSize, stats.MaxChunkSize,
		stats.AvgChunkSize, stats.TotalCharacters)
}
