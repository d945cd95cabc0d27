//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package chunking

import "github.com/vectorkb/vectorkb/document"

// Stats summarizes a chunk sequence produced from one document.
type Stats struct {
	// TotalChunks is the number of chunks in the sequence.
	TotalChunks int `json:"total_chunks"`

	// MinChunkSize is the smallest chunk size in characters.
	MinChunkSize int `json:"min_chunk_size"`

	// MaxChunkSize is the largest chunk size in characters.
	MaxChunkSize int `json:"max_chunk_size"`

	// AvgChunkSize is the mean chunk size in characters.
	AvgChunkSize float64 `json:"avg_chunk_size"`

	// TotalCharacters is the sum of all chunk sizes.
	TotalCharacters int `json:"total_characters"`
}

// CollectStats computes summary statistics for a chunk sequence. It is a pure
// function of the chunks; calling it has no effect on them.
func CollectStats(chunks []*document.Document) Stats {
	if len(chunks) == 0 {
		return Stats{}
	}

	stats := Stats{TotalChunks: len(chunks)}
	for i, chunk := range chunks {
		size := chunk.Size()
		if i == 0 || size < stats.MinChunkSize {
			stats.MinChunkSize = size
		}
		if size > stats.MaxChunkSize {
			stats.MaxChunkSize = size
		}
		stats.TotalCharacters += size
	}
	stats.AvgChunkSize = float64(stats.TotalCharacters) / float64(stats.TotalChunks)
	return stats
}
