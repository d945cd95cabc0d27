//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Package config loads process configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds the environment-driven configuration of the CLI.
type Config struct {
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `env:"OPENAI_BASE_URL"`
	EmbedModel      string `env:"EMBED_MODEL" envDefault:"text-embedding-3-small"`
	EmbedDimensions int    `env:"EMBED_DIMENSIONS" envDefault:"1536"`
	DataDir         string `env:"DATA_DIR" envDefault:"./data"`
	Collection      string `env:"COLLECTION" envDefault:"vectorkb"`
	ChunkSize       int    `env:"CHUNK_SIZE" envDefault:"1000"`
	ChunkOverlap    int    `env:"CHUNK_OVERLAP" envDefault:"200"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
