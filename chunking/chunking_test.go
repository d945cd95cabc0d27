//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/vectorkb/vectorkb/document"
)

func TestRecursiveChunking_SmallDocumentSingleChunk(t *testing.T) {
	doc := document.New("A short piece of text.", "short")

	rc, err := NewRecursiveChunking(WithChunkSize(100), WithOverlap(20))
	require.NoError(t, err)

	chunks, err := rc.Chunk(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	require.Equal(t, "A short piece of text.", chunks[0].Content)
	require.Equal(t, 0, chunks[0].Metadata[MetaChunkIndex])
	require.Equal(t, 1, chunks[0].Metadata[MetaTotalChunks])
}

func TestRecursiveChunking_EmptyDocument(t *testing.T) {
	doc := document.New("", "empty")

	rc, err := NewRecursiveChunking()
	require.NoError(t, err)

	chunks, err := rc.Chunk(doc)
	require.NoError(t, err)
	require.Empty(t, chunks)
}

func TestRecursiveChunking_NilDocument(t *testing.T) {
	rc, err := NewRecursiveChunking()
	require.NoError(t, err)

	_, err = rc.Chunk(nil)
	require.ErrorIs(t, err, document.ErrNilDocument)
}

func TestRecursiveChunking_WordSplitFallback(t *testing.T) {
	// 500 words, no paragraph, line or sentence boundaries: the cascade must
	// fall through to the space separator and pack words greedily.
	content := strings.TrimSpace(strings.Repeat("word ", 500))
	doc := document.New(content, "words")

	const size = 1000
	const overlap = 200

	rc, err := NewRecursiveChunking(WithChunkSize(size), WithOverlap(overlap))
	require.NoError(t, err)

	chunks, err := rc.Chunk(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	// First chunk carries no overlap and must respect the size limit.
	require.LessOrEqual(t, utf8.RuneCountInString(chunks[0].Content), size)

	// Every later chunk is prefixed with the predecessor's tail plus a space.
	prevPreOverlap := chunks[0].Content
	for i := 1; i < len(chunks); i++ {
		prefix := tailRunes(prevPreOverlap, overlap) + " "
		require.True(t, strings.HasPrefix(chunks[i].Content, prefix),
			"chunk %d does not start with the previous chunk's tail", i)

		prevPreOverlap = strings.TrimPrefix(chunks[i].Content, prefix)
		require.LessOrEqual(t, utf8.RuneCountInString(prevPreOverlap), size)
	}
}

func TestRecursiveChunking_PrefersParagraphBoundaries(t *testing.T) {
	para1 := strings.TrimSpace(strings.Repeat("alpha ", 30))
	para2 := strings.TrimSpace(strings.Repeat("beta ", 30))
	doc := document.New(para1+"\n\n"+para2, "paras")

	rc, err := NewRecursiveChunking(WithChunkSize(200), WithOverlap(0))
	require.NoError(t, err)

	chunks, err := rc.Chunk(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	require.Equal(t, para1, chunks[0].Content)
	require.Equal(t, para2, chunks[1].Content)
}

func TestRecursiveChunking_CharacterLevelLastResort(t *testing.T) {
	// A single unbroken run of characters can only be cut at fixed boundaries.
	content := strings.Repeat("x", 2500)
	doc := document.New(content, "run")

	rc, err := NewRecursiveChunking(WithChunkSize(1000), WithOverlap(0))
	require.NoError(t, err)

	chunks, err := rc.Chunk(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	require.Equal(t, 1000, chunks[0].Size())
	require.Equal(t, 1000, chunks[1].Size())
	require.Equal(t, 500, chunks[2].Size())
}

func TestRecursiveChunking_RuneSafeCut(t *testing.T) {
	content := strings.Repeat("汉", 250)
	doc := document.New(content, "cjk")

	rc, err := NewRecursiveChunking(WithChunkSize(100), WithOverlap(0))
	require.NoError(t, err)

	chunks, err := rc.Chunk(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	for i, c := range chunks {
		require.True(t, utf8.ValidString(c.Content), "chunk %d contains invalid UTF-8", i)
		require.LessOrEqual(t, c.Size(), 100)
	}
}

func TestRecursiveChunking_Deterministic(t *testing.T) {
	content := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 60)
	doc := document.New(content, "fox")

	rc, err := NewRecursiveChunking(WithChunkSize(300), WithOverlap(50))
	require.NoError(t, err)

	first, err := rc.Chunk(doc)
	require.NoError(t, err)
	second, err := rc.Chunk(doc)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Content, second[i].Content)
		require.Equal(t, first[i].Metadata, second[i].Metadata)
	}
}

func TestChunkMetadataStamping(t *testing.T) {
	doc := document.New(strings.Repeat("Sentence one is here. ", 40), "meta")
	doc.Metadata["filename"] = "meta.txt"

	rc, err := NewRecursiveChunking(WithChunkSize(150), WithOverlap(30))
	require.NoError(t, err)

	chunks, err := rc.Chunk(doc)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for i, chunk := range chunks {
		require.Equal(t, i, chunk.Metadata[MetaChunkIndex])
		require.Equal(t, len(chunks), chunk.Metadata[MetaTotalChunks])
		require.Equal(t, chunk.Size(), chunk.Metadata[MetaChunkSize])
		require.Equal(t, "meta.txt", chunk.Metadata["filename"])
		require.Equal(t, doc.ID+"_chunk_"+strconv.Itoa(i), chunk.ID)
	}

	// Stamping copies metadata; mutating a chunk must not touch the document.
	chunks[0].Metadata["filename"] = "other.txt"
	require.Equal(t, "meta.txt", doc.Metadata["filename"])
}

func TestSentenceChunking_GreedyAccumulation(t *testing.T) {
	content := "First sentence here. Second sentence here! Third sentence here? Fourth one."
	doc := document.New(content, "sentences")

	sc, err := NewSentenceChunking(WithChunkSize(45), WithOverlap(0))
	require.NoError(t, err)

	chunks, err := sc.Chunk(doc)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for _, chunk := range chunks {
		// Each chunk ends at a sentence boundary.
		last := chunk.Content[len(chunk.Content)-1]
		require.Contains(t, []byte{'.', '!', '?'}, last)
		require.LessOrEqual(t, chunk.Size(), 45)
	}
}

func TestSentenceChunking_OversizedSentenceKeptIntact(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("endless clause ", 20)) + "."
	content := "Short one. " + long + " Short two."
	doc := document.New(content, "oversized")

	sc, err := NewSentenceChunking(WithChunkSize(50), WithOverlap(0))
	require.NoError(t, err)

	chunks, err := sc.Chunk(doc)
	require.NoError(t, err)

	var found bool
	for _, chunk := range chunks {
		if chunk.Content == long {
			found = true
			require.Greater(t, chunk.Size(), 50)
		}
	}
	require.True(t, found, "oversized sentence must pass through unsplit")
}

func TestParagraphChunking_JoinsWithParagraphSeparator(t *testing.T) {
	paragraphs := []string{"Paragraph one.", "Paragraph two.", "Paragraph three."}
	doc := document.New(strings.Join(paragraphs, "\n\n"), "paras")

	pc, err := NewParagraphChunking(WithChunkSize(40), WithOverlap(0))
	require.NoError(t, err)

	chunks, err := pc.Chunk(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	require.Equal(t, "Paragraph one.\n\nParagraph two.", chunks[0].Content)
	require.Equal(t, "Paragraph three.", chunks[1].Content)
}

func TestParagraphChunking_Overlap(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("data ", 30))
	doc := document.New(para+"\n\n"+para+"\n\n"+para, "overlap")

	pc, err := NewParagraphChunking(WithChunkSize(160), WithOverlap(40))
	require.NoError(t, err)

	chunks, err := pc.Chunk(doc)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)
	require.True(t, strings.HasPrefix(chunks[1].Content, tailRunes(chunks[0].Content, 40)+" "))
}

func TestNew_StrategySelection(t *testing.T) {
	tests := []struct {
		name string
		want any
	}{
		{StrategyRecursive, &RecursiveChunking{}},
		{StrategySentence, &SentenceChunking{}},
		{StrategyParagraph, &ParagraphChunking{}},
	}
	for _, tt := range tests {
		strategy, err := New(tt.name)
		require.NoError(t, err)
		require.IsType(t, tt.want, strategy)
	}
}

func TestNew_UnknownStrategy(t *testing.T) {
	strategy, err := New("bogus")
	require.Nil(t, strategy)
	require.ErrorIs(t, err, ErrUnknownStrategy)
	require.Contains(t, err.Error(), "bogus")
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"zero size", []Option{WithChunkSize(0)}, ErrInvalidChunkSize},
		{"negative size", []Option{WithChunkSize(-5)}, ErrInvalidChunkSize},
		{"negative overlap", []Option{WithChunkSize(100), WithOverlap(-1)}, ErrInvalidOverlap},
		{"overlap equals size", []Option{WithChunkSize(100), WithOverlap(100)}, ErrOverlapTooLarge},
		{"overlap exceeds size", []Option{WithChunkSize(100), WithOverlap(150)}, ErrOverlapTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecursiveChunking(tt.opts...)
			require.ErrorIs(t, err, tt.want)

			_, err = NewSentenceChunking(tt.opts...)
			require.ErrorIs(t, err, tt.want)

			_, err = NewParagraphChunking(tt.opts...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPackUnits(t *testing.T) {
	units := []string{"aaaa", "bbbb", "cccc", "dddd"}

	// Two units plus separator fit, three do not.
	packed := packUnits(units, " ", 9)
	require.Equal(t, []string{"aaaa bbbb", "cccc dddd"}, packed)

	// An oversized unit is emitted alone and unsplit.
	packed = packUnits([]string{"aa", "ccccccccccc", "bb"}, " ", 5)
	require.Equal(t, []string{"aa", "ccccccccccc", "bb"}, packed)
}

func TestCollectStats(t *testing.T) {
	doc := document.New(strings.Repeat("statistic sample text. ", 50), "stats")

	rc, err := NewRecursiveChunking(WithChunkSize(200), WithOverlap(0))
	require.NoError(t, err)

	chunks, err := rc.Chunk(doc)
	require.NoError(t, err)

	stats := CollectStats(chunks)
	require.Equal(t, len(chunks), stats.TotalChunks)
	require.LessOrEqual(t, stats.MinChunkSize, stats.MaxChunkSize)
	require.InDelta(t, float64(stats.TotalCharacters)/float64(stats.TotalChunks), stats.AvgChunkSize, 1e-9)

	total := 0
	for _, c := range chunks {
		total += c.Size()
	}
	require.Equal(t, total, stats.TotalCharacters)

	require.Equal(t, Stats{}, CollectStats(nil))
}
