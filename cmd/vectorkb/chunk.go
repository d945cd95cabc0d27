//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vectorkb/vectorkb/chunking"
	"github.com/vectorkb/vectorkb/document/reader"

	// Register the builtin readers.
	_ "github.com/vectorkb/vectorkb/document/reader/json"
	_ "github.com/vectorkb/vectorkb/document/reader/markdown"
	_ "github.com/vectorkb/vectorkb/document/reader/pdf"
	_ "github.com/vectorkb/vectorkb/document/reader/text"
)

var flagShowContent bool

var chunkCmd = &cobra.Command{
	Use:   "chunk <file>",
	Short: "Chunk a single file and print statistics",
	Long: `Chunk splits one file with the selected strategy and prints the
resulting chunk statistics without touching the vector store. Useful for
tuning chunk size and overlap.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]
		ext := strings.ToLower(filepath.Ext(filePath))

		readerOpts := []reader.Option{
			reader.WithChunkSize(flagChunkSize),
			reader.WithChunkOverlap(flagOverlap),
		}
		if flagStrategy != "" {
			strategy, err := chunking.New(flagStrategy,
				chunking.WithChunkSize(flagChunkSize),
				chunking.WithOverlap(flagOverlap),
			)
			if err != nil {
				return err
			}
			readerOpts = append(readerOpts, reader.WithChunkingStrategy(strategy))
		}

		rdr, ok := reader.Get(ext, readerOpts...)
		if !ok {
			return fmt.Errorf("no reader registered for extension %q (known: %s)",
				ext, strings.Join(reader.RegisteredExtensions(), ", "))
		}

		docs, err := rdr.ReadFromFile(filePath)
		if err != nil {
			return err
		}

		stats := chunking.CollectStats(docs)
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		if flagShowContent {
			for i, doc := range docs {
				fmt.Printf("--- chunk %d (%d chars) ---\n%s\n", i, doc.Size(), doc.Content)
			}
		}
		return nil
	},
}

func init() {
	chunkCmd.Flags().StringVar(&flagStrategy, "strategy", "",
		"chunking strategy: recursive, sentence or paragraph (default: by file type)")
	chunkCmd.Flags().BoolVar(&flagShowContent, "show-content", false,
		"print chunk contents after the statistics")
}
