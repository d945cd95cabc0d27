//
// Copyright (C) 2026 vectorkb authors. All rights reserved.
//
// vectorkb is licensed under the Apache License Version 2.0.
//
//

// Command vectorkb indexes documents into a local vector store and queries
// them by similarity.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vectorkb/vectorkb/internal/config"
	"github.com/vectorkb/vectorkb/log"
)

var (
	cfg *config.Config

	flagChunkSize int
	flagOverlap   int
	flagStrategy  string
	flagDataDir   string
	flagLimit     int
	flagMinScore  float64
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vectorkb",
	Short: "vectorkb - local document knowledge base",
	Long: `vectorkb reads documents, splits them into overlapping chunks,
embeds the chunks and stores them in a local vector database for
similarity search.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		log.SetLevel(cfg.LogLevel)

		// Flags override environment values.
		if !cmd.Flags().Changed("chunk-size") {
			flagChunkSize = cfg.ChunkSize
		}
		if !cmd.Flags().Changed("overlap") {
			flagOverlap = cfg.ChunkOverlap
		}
		if !cmd.Flags().Changed("data-dir") {
			flagDataDir = cfg.DataDir
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagChunkSize, "chunk-size", 1000,
		"maximum chunk size in characters")
	rootCmd.PersistentFlags().IntVar(&flagOverlap, "overlap", 200,
		"characters carried over from the previous chunk")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "./data",
		"directory holding the persisted vector store")

	rootCmd.AddCommand(indexCmd, queryCmd, chunkCmd)
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
