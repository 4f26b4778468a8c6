package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/aniren/internal/metadata"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the metadata cache",
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove expired cache entries",
	Long: `Remove expired rows from the local metadata cache.

Examples:
  aniren cache prune`,
	Args: cobra.NoArgs,
	RunE: runCachePruneCmd,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cachePruneCmd)
}

func runCachePruneCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	db, err := openCacheDB(cfg.Cache.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	removed, err := metadata.NewCache(db).Prune(cmd.Context())
	if err != nil {
		return fmt.Errorf("prune failed: %w", err)
	}

	fmt.Printf("Removed %d expired cache entries.\n", removed)
	return nil
}
