//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocument_Size(t *testing.T) {
	require.Equal(t, 5, (&Document{Content: "hello"}).Size())
	// Characters, not bytes.
	require.Equal(t, 2, (&Document{Content: "héllo"[:3]}).Size())
	require.Equal(t, 4, (&Document{Content: "日本語だ"}).Size())
	require.Zero(t, (&Document{}).Size())
}

func TestDocument_IsEmpty(t *testing.T) {
	require.True(t, (&Document{}).IsEmpty())
	require.False(t, (&Document{Content: " "}).IsEmpty())
}

func TestDocument_Clone(t *testing.T) {
	doc := New("content", "name")
	doc.Metadata["key"] = "value"

	clone := doc.Clone()
	require.Equal(t, doc.ID, clone.ID)
	require.Equal(t, doc.Content, clone.Content)
	require.Equal(t, doc.Metadata, clone.Metadata)

	// Metadata is copied, not shared.
	clone.Metadata["key"] = "changed"
	require.Equal(t, "value", doc.Metadata["key"])
}

func TestNew_GeneratesUniqueIDs(t *testing.T) {
	a := New("same content", "same name")
	b := New("same content", "same name")

	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, a.CreatedAt, a.UpdatedAt)
}

func TestGenerateID_SanitizesName(t *testing.T) {
	id := GenerateID("my document", "content")
	require.Contains(t, id, "my_document_")
	require.NotContains(t, id, " ")
}
