// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bible-search/internal/search"
	"github.com/pdiddy/bible-search/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive search shell (default)",
	Long: `Shell reads one command per line: search, next, prev, bookmark,
bookmarks, history, verseofday, help, home and exit. Ambiguous book names
and bare book-or-keyword queries are settled by prompting.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := openCorpus(cfg)
	if err != nil {
		return err
	}
	store, err := openLibrary(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	engine := newEngine(cfg, c, store, search.NewTerminalChooser(in, out), out)

	sh := shell.New(shell.Config{
		In:           in,
		Out:          out,
		Engine:       engine,
		Corpus:       c,
		Library:      store,
		HistoryLimit: cfg.Library.HistoryLimit,
		Logger:       &logger,
	})
	return sh.Run(cmd.Context())
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
