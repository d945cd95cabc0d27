//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vectorkb/vectorkb"
	"github.com/vectorkb/vectorkb/embedder/openai"
	"github.com/vectorkb/vectorkb/source"
	dirsource "github.com/vectorkb/vectorkb/source/dir"
	filesource "github.com/vectorkb/vectorkb/source/file"
	"github.com/vectorkb/vectorkb/vectorstore/chromem"
)

var indexCmd = &cobra.Command{
	Use:   "index [paths...]",
	Short: "Index files or directories into the vector store",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		sources, err := buildSources(args)
		if err != nil {
			return err
		}

		store, err := chromem.New(
			chromem.WithPath(flagDataDir),
			chromem.WithCollectionName(cfg.Collection),
		)
		if err != nil {
			return fmt.Errorf("failed to open vector store: %w", err)
		}
		defer store.Close()

		kb := vectorkb.New(
			vectorkb.WithEmbedder(newEmbedder()),
			vectorkb.WithVectorStore(store),
			vectorkb.WithSources(sources),
		)
		return kb.Load(ctx)
	},
}

// buildSources maps each path to a file or directory source.
func buildSources(paths []string) ([]source.Source, error) {
	var sources []source.Source
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot index %s: %w", path, err)
		}
		if info.IsDir() {
			sources = append(sources, dirsource.New(path,
				dirsource.WithName(path),
				dirsource.WithChunkSize(flagChunkSize),
				dirsource.WithChunkOverlap(flagOverlap),
			))
			continue
		}
		files = append(files, path)
	}

	if len(files) > 0 {
		sources = append(sources, filesource.New(files,
			filesource.WithChunkSize(flagChunkSize),
			filesource.WithChunkOverlap(flagOverlap),
		))
	}
	return sources, nil
}

func newEmbedder() *openai.Embedder {
	opts := []openai.Option{
		openai.WithModel(cfg.EmbedModel),
		openai.WithDimensions(cfg.EmbedDimensions),
	}
	if cfg.OpenAIAPIKey != "" {
		opts = append(opts, openai.WithAPIKey(cfg.OpenAIAPIKey))
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
	}
	return openai.New(opts...)
}
