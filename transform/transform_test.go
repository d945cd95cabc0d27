//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorkb/vectorkb/document"
)

func TestCharDedup(t *testing.T) {
	dedup := NewCharDedup("\t", " ", "\n")

	docs := []*document.Document{
		document.New("hello\t\t\tworld   foo\n\n\nbar", "dedup"),
	}
	out, err := dedup.Preprocess(docs)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "hello\tworld foo\nbar", out[0].Content)

	// The input document is not mutated.
	require.Equal(t, "hello\t\t\tworld   foo\n\n\nbar", docs[0].Content)

	// Postprocess is a no-op.
	same, err := dedup.Postprocess(out)
	require.NoError(t, err)
	require.Equal(t, out, same)
}

func TestCharFilter(t *testing.T) {
	filter := NewCharFilter("\x00", "\ufeff", "zap")

	docs := []*document.Document{
		document.New("\ufeffa\x00b zap c", "filter"),
	}
	out, err := filter.Preprocess(docs)
	require.NoError(t, err)
	require.Equal(t, "ab  c", out[0].Content)
}

func TestApplyPreprocessChain(t *testing.T) {
	docs := []*document.Document{
		document.New("x  y\x00z", "chain"),
	}
	out, err := ApplyPreprocess(docs, NewCharFilter("\x00"), NewCharDedup(" "), nil)
	require.NoError(t, err)
	require.Equal(t, "x yz", out[0].Content)
}
