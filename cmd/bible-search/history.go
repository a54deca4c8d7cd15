// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bible-search/internal/library"
)

var historyCmd = &cobra.Command{
	Use:   "history [n]",
	Short: "Show the search history, optionally only the last n entries",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	clearAll, _ := cmd.Flags().GetBool("clear")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openLibrary(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if clearAll {
		n, err := store.ClearHistory(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d history entries.\n", n)
		return nil
	}

	limit := cfg.Library.HistoryLimit
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid history count %q: must be a whole number", args[0])
		}
		limit = n
	}

	entries, err := store.History(cmd.Context(), limit)
	if err != nil {
		return err
	}
	library.FormatHistory(cmd.OutOrStdout(), entries)
	return nil
}

func init() {
	historyCmd.Flags().Bool("clear", false, "delete the whole search history")
	rootCmd.AddCommand(historyCmd)
}
