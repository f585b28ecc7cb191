package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose   bool
	adapter   string
	dsn       string
	mongoDB   string
	mongoColl string
	schemaDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "silt",
	Short: "A typed schema layer for schemaless document stores",
	Long: `Silt maps application-declared record schemas onto a schemaless
key-value document store. Entities are built and validated against their
table schema before anything is persisted.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "sqlite", "Storage adapter (memory, sqlite, mongo)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "silt.db", "Connection string (file path for sqlite, URI for mongo)")
	rootCmd.PersistentFlags().StringVar(&mongoDB, "mongo-db", "silt", "MongoDB database (mongo adapter)")
	rootCmd.PersistentFlags().StringVar(&mongoColl, "mongo-collection", "", "MongoDB collection (mongo adapter)")
	rootCmd.PersistentFlags().StringVar(&schemaDir, "schemas", "schemas", "Directory holding YAML table definitions")
}
