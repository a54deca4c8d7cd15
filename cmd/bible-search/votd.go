// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var votdCmd = &cobra.Command{
	Use:     "votd",
	Aliases: []string{"verseofday"},
	Short:   "Print the verse of the day",
	Long: `Votd prints one verse chosen by the calendar date, so every run on the
same day shows the same verse. Use --date to look up another day.`,
	Args: cobra.NoArgs,
	RunE: runVotd,
}

func runVotd(cmd *cobra.Command, args []string) error {
	dateStr, _ := cmd.Flags().GetString("date")

	day := time.Now()
	if dateStr != "" {
		d, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: use YYYY-MM-DD", dateStr)
		}
		day = d
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := openCorpus(cfg)
	if err != nil {
		return err
	}

	ref, ok := c.VerseOfDay(day)
	if !ok {
		return errors.New("corpus has no verses")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Verse of the Day (%s)\n%s — %s\n", day.Format("January 2, 2006"), ref, ref.Text)
	return nil
}

func init() {
	votdCmd.Flags().String("date", "", "day to pick for, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(votdCmd)
}
