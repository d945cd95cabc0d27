//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package chromem

// Option represents a functional option for configuring the store.
type Option func(*config)

type config struct {
	path       string
	compress   bool
	collection string
}

// WithPath enables on-disk persistence at the given directory. Without a
// path the store is purely in-memory.
func WithPath(path string) Option {
	return func(c *config) {
		c.path = path
	}
}

// WithCompress enables gzip compression for persisted data. Only effective
// together with WithPath.
func WithCompress(compress bool) Option {
	return func(c *config) {
		c.compress = compress
	}
}

// WithCollectionName sets the collection documents are stored in.
func WithCollectionName(name string) Option {
	return func(c *config) {
		c.collection = name
	}
}
