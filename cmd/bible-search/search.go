// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bible-search/internal/search"
	"github.com/pdiddy/bible-search/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run one query and print the results",
	Long: `Search runs a single query through the same engine as the shell:

  bible-search search "Col 2:2,4-6"   reference with a verse list
  bible-search search "1 John 4"      whole chapter
  bible-search search Ruth --mode browse
  bible-search search "love one another"

Without --interactive, ambiguous book names take the --pick candidate and a
bare book-or-keyword query follows --mode.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if load, _ := cmd.Flags().GetString("load"); load != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	if load, _ := cmd.Flags().GetString("load"); load != "" {
		return runLoadSearch(cmd, load)
	}

	pick, _ := cmd.Flags().GetInt("pick")
	mode, _ := cmd.Flags().GetString("mode")
	interactive, _ := cmd.Flags().GetBool("interactive")
	all, _ := cmd.Flags().GetBool("all")
	jsonOutput, _ := cmd.Flags().GetBool("json")

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

	// JSON goes to stdout alone; the engine's messages move to stderr.
	out := cmd.OutOrStdout()
	if jsonOutput {
		out = cmd.ErrOrStderr()
	}

	var chooser search.Chooser = search.PolicyChooser{Pick: pick, Mode: search.ParseMode(mode), Out: out}
	if interactive {
		chooser = search.NewTerminalChooser(bufio.NewReader(cmd.InOrStdin()), out)
	}

	engine := newEngine(cfg, c, store, chooser, out)
	engine.Dispatch(cmd.Context(), strings.Join(args, " "))

	results := engine.Navigator().Results()
	if save, _ := cmd.Flags().GetString("save"); save != "" && len(results) > 0 {
		if err := search.WriteSavedSearch(save, search.NewSavedSearch(strings.Join(args, " "), results, time.Now())); err != nil {
			return err
		}
		logger.Info().Str("path", save).Int("results", len(results)).Msg("search saved")
	}
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	if all && len(results) > 1 {
		printResults(out, results[1:])
	}
	return nil
}

// runLoadSearch prints a search saved with --save without touching the
// corpus or the library.
func runLoadSearch(cmd *cobra.Command, path string) error {
	saved, err := search.ReadSavedSearch(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Saved %s search %q (%s): %d result(s)\n",
		saved.Kind, saved.Query, saved.Summary.Timestamp.Local().Format(time.DateTime), saved.Summary.Total)
	printResults(out, saved.Results)
	return nil
}

func printResults(w io.Writer, refs []types.Reference) {
	for _, r := range refs {
		fmt.Fprintf(w, " %s — %s\n", r, r.Text)
	}
}

func init() {
	searchCmd.Flags().Int("pick", 0, "1-based candidate to take for an ambiguous book name (0 = cancel)")
	searchCmd.Flags().String("mode", "browse", "bare book-or-keyword query: browse or text")
	searchCmd.Flags().BoolP("interactive", "i", false, "prompt on stdin instead of using --pick and --mode")
	searchCmd.Flags().Bool("all", false, "print every result, not only the first")
	searchCmd.Flags().Bool("json", false, "print results as JSON on stdout")
	searchCmd.Flags().String("save", "", "write the query and its results to a YAML file")
	searchCmd.Flags().String("load", "", "print a search saved with --save instead of running one")

	rootCmd.AddCommand(searchCmd)
}
