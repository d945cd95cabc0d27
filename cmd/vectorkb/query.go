//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vectorkb/vectorkb"
	"github.com/vectorkb/vectorkb/source"
	"github.com/vectorkb/vectorkb/vectorstore/chromem"
)

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Search the vector store for similar chunks",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

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
		)

		results, err := kb.Search(ctx, &vectorkb.SearchRequest{
			Query:    strings.Join(args, " "),
			Limit:    flagLimit,
			MinScore: flagMinScore,
		})
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results.")
			return nil
		}
		for i, r := range results {
			origin := ""
			if v, ok := r.Document.Metadata[source.MetaFilePath]; ok {
				origin = fmt.Sprintf(" (%v)", v)
			}
			fmt.Printf("%d. [%.3f]%s\n%s\n\n", i+1, r.Score, origin, r.Document.Content)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().IntVar(&flagLimit, "limit", 5, "maximum number of results")
	queryCmd.Flags().Float64Var(&flagMinScore, "min-score", 0, "minimum similarity score")
}
