// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bible-search/internal/library"
	"github.com/pdiddy/bible-search/internal/search"
)

// --- bookmark subcommand ---

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark <Book> <Chapter:Verse>",
	Short: "Save a verse to your bookmarks",
	Long: `Bookmark saves one verse. The book may be abbreviated as long as it
names a single book, or --pick chooses among the matches.

Use --remove to delete an existing bookmark.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runBookmark,
}

func runBookmark(cmd *cobra.Command, args []string) error {
	pick, _ := cmd.Flags().GetInt("pick")
	remove, _ := cmd.Flags().GetBool("remove")

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

	out := cmd.OutOrStdout()
	engine := newEngine(cfg, c, store, search.PolicyChooser{Pick: pick, Out: out}, out)

	input := strings.Join(args, " ")
	ref, ok := engine.ResolveVerse(input)
	if !ok {
		return fmt.Errorf("invalid verse reference %q", input)
	}

	if remove {
		if err := store.RemoveBookmark(cmd.Context(), ref); err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed bookmark %s\n", ref)
		return nil
	}

	if _, err := store.AddBookmark(cmd.Context(), ref); err != nil {
		if errors.Is(err, library.ErrDuplicate) {
			fmt.Fprintf(out, "%s is already in your bookmarks.\n", ref)
			return nil
		}
		return err
	}
	fmt.Fprintf(out, "Bookmarked: %s — %s\n", ref, ref.Text)
	return nil
}

// --- bookmarks subcommand ---

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List saved bookmarks or export them to YAML or JSON",
	Long: `Bookmarks prints the saved verses as a table. With --export it writes
bookmarks.yaml or bookmarks.json into the data directory instead.`,
	Args: cobra.NoArgs,
	RunE: runBookmarks,
}

func runBookmarks(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("export")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openLibrary(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "":
		all, err := store.Bookmarks(cmd.Context())
		if err != nil {
			return err
		}
		library.FormatBookmarks(cmd.OutOrStdout(), all)
		return nil
	case "yaml":
		path, err = store.ExportYAML(cmd.Context())
	case "json":
		path, err = store.ExportJSON(cmd.Context())
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

func init() {
	bookmarkCmd.Flags().Int("pick", 0, "1-based candidate to take for an ambiguous book name (0 = fail)")
	bookmarkCmd.Flags().Bool("remove", false, "remove the bookmark instead of adding it")

	bookmarksCmd.Flags().String("export", "", "write bookmarks to a file: yaml or json")

	rootCmd.AddCommand(bookmarkCmd)
	rootCmd.AddCommand(bookmarksCmd)
}
