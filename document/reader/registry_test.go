//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package reader

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorkb/vectorkb/document"
)

type stubReader struct {
	config *Config
}

func (s *stubReader) ReadFromReader(name string, r io.Reader) ([]*document.Document, error) {
	return nil, nil
}

func (s *stubReader) ReadFromFile(path string) ([]*document.Document, error) { return nil, nil }

func (s *stubReader) ReadFromURL(url string) ([]*document.Document, error) { return nil, nil }

func (s *stubReader) Name() string { return "StubReader" }

func (s *stubReader) SupportedExtensions() []string { return []string{".stub"} }

func newStub(opts ...Option) Reader {
	return &stubReader{config: BuildConfig(opts...)}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	Register([]string{".stub", ".STB"}, newStub)

	r, ok := Get(".stub")
	require.True(t, ok)
	require.Equal(t, "StubReader", r.Name())

	// Extension lookup is case insensitive.
	r, ok = Get(".stb")
	require.True(t, ok)
	require.NotNil(t, r)

	_, ok = Get(".unknown")
	require.False(t, ok)
}

func TestRegistry_RegisteredExtensions(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	Register([]string{".zzz", ".aaa"}, newStub)

	require.Equal(t, []string{".aaa", ".zzz"}, RegisteredExtensions())
}

func TestRegistry_GetPassesOptions(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	Register([]string{".stub"}, newStub)

	r, ok := Get(".stub", WithChunkSize(123), WithChunkOverlap(7))
	require.True(t, ok)

	stub := r.(*stubReader)
	require.Equal(t, 123, stub.config.ChunkSize)
	require.Equal(t, 7, stub.config.ChunkOverlap)
	require.True(t, stub.config.Chunk)
}

func TestBuildConfig_Defaults(t *testing.T) {
	config := BuildConfig()
	require.True(t, config.Chunk)
	require.Zero(t, config.ChunkSize)
	require.Zero(t, config.ChunkOverlap)
	require.Nil(t, config.CustomChunkingStrategy)

	config = BuildConfig(WithChunking(false))
	require.False(t, config.Chunk)
}
