//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorkb/vectorkb/document/reader"
)

const sampleMarkdown = `# Guide

Intro paragraph for the guide.

## Install

Run the installer and follow the prompts. ` + "`make install`" + ` works too.

## Usage

Pass a directory and wait for indexing to finish.
`

func TestMarkdownReader_ReadFromReader(t *testing.T) {
	rdr := New()

	docs, err := rdr.ReadFromReader("guide", strings.NewReader(sampleMarkdown))
	require.NoError(t, err)
	require.NotEmpty(t, docs)
	for _, doc := range docs {
		require.NotEmpty(t, doc.Content)
	}
}

func TestMarkdownReader_SplitsAtHeaders(t *testing.T) {
	rdr := New(reader.WithChunkSize(80), reader.WithChunkOverlap(8))

	docs, err := rdr.ReadFromReader("guide", strings.NewReader(sampleMarkdown))
	require.NoError(t, err)
	require.Greater(t, len(docs), 1)

	joined := ""
	for _, doc := range docs {
		joined += doc.Content + "\n"
	}
	require.Contains(t, joined, "## Install")
	require.Contains(t, joined, "## Usage")
}

func TestMarkdownReader_ReadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readme.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleMarkdown), 0o644))

	rdr := New()
	docs, err := rdr.ReadFromFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, docs)
	require.Equal(t, "readme", docs[0].Name)
}

func TestMarkdownReader_Metadata(t *testing.T) {
	rdr := New()
	require.Equal(t, "MarkdownReader", rdr.Name())
	require.Equal(t, []string{".md", ".markdown"}, rdr.SupportedExtensions())
}
