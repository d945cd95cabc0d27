//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package reader

import (
	"sort"
	"strings"
	"sync"
)

// Builder is a function that creates a new Reader instance with options.
type Builder func(opts ...Option) Reader

// registry maps file extensions to reader builders.
type registry struct {
	mu      sync.RWMutex
	readers map[string]Builder
}

// globalRegistry is the singleton registry instance. Reader packages register
// themselves from init so importing a reader package is enough to enable it.
var globalRegistry = &registry{
	readers: make(map[string]Builder),
}

// Register registers a reader builder for the given file extensions.
// Extensions include the dot prefix (e.g. ".pdf", ".txt").
func Register(extensions []string, builder Builder) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	for _, ext := range extensions {
		globalRegistry.readers[strings.ToLower(ext)] = builder
	}
}

// Get returns a new reader instance for the given file extension.
// Returns nil and false if no reader is registered for the extension.
func Get(extension string, opts ...Option) (Reader, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	builder, ok := globalRegistry.readers[strings.ToLower(extension)]
	if !ok {
		return nil, false
	}
	return builder(opts...), true
}

// RegisteredExtensions returns all registered file extensions, sorted.
func RegisteredExtensions() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	extensions := make([]string, 0, len(globalRegistry.readers))
	for ext := range globalRegistry.readers {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return extensions
}

// ClearRegistry removes all registered readers (mainly for testing).
func ClearRegistry() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	globalRegistry.readers = make(map[string]Builder)
}
