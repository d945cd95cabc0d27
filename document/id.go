//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package document

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// New creates a document with the given content and name and a generated ID.
func New(content, name string) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        GenerateID(name, content),
		Name:      name,
		Content:   content,
		Metadata:  make(map[string]any),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GenerateID generates a unique ID for a document.
// Uses content hash for identification and random bytes for uniqueness.
func GenerateID(name, content string) string {
	// Content hash (first 8 bytes = 16 hex chars).
	hash := sha256.Sum256([]byte(content))
	contentHash := hex.EncodeToString(hash[:8])

	// Random bytes for uniqueness (8 bytes = 16 hex chars).
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		// Fallback to timestamp-based uniqueness if crypto/rand fails.
		ts := time.Now().UnixNano()
		for i := 0; i < 8; i++ {
			randomBytes[i] = byte(ts >> (i * 8))
		}
	}
	randomStr := hex.EncodeToString(randomBytes)

	return strings.ReplaceAll(name, " ", "_") + "_" + contentHash + "_" + randomStr
}
