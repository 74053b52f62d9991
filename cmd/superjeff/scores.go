package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabiojmendes/super-jeff/internal/infrastructure/storage"
)

func newScoresCmd(opts *globalOptions) *cobra.Command {
	var (
		limit int
		wipe  bool
	)
	cmd := &cobra.Command{
		Use:   "scores [level]",
		Short: "Show the best completed runs",
		Long: `Show the best completed runs, ranked by final score and then by time.
Without a level every level is listed.

Examples:
  superjeff scores
  superjeff scores level1 --limit 5
  superjeff scores level1 --clear`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := ""
			if len(args) == 1 {
				level = args[0]
			}

			if wipe && level == "" {
				return errors.New("--clear needs a level")
			}

			store, err := storage.Open(opts.db)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if wipe {
				if err := store.ClearRuns(level); err != nil {
					return err
				}
				fmt.Fprintln(out, "Runs cleared")
				return nil
			}

			runs, err := store.TopRuns(level, limit)
			if err != nil {
				return err
			}

			title := "High Scores"
			if level != "" {
				title += " - " + level
			}
			fmt.Fprintln(out, titleStyle.Render(title))
			fmt.Fprintln(out)

			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs yet.")
				fmt.Fprintln(out, dimStyle.Render("Beat the monkey with 'superjeff play' to set the first one!"))
				return nil
			}

			fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-8s  %-12s  %s\n", "Rank", "Total", "Time", "Score", "Level", "Date")
			fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-8s  %-12s  %s\n", "----", "-----", "----", "-----", "-----", "----")
			for i, r := range runs {
				fmt.Fprintf(out, "  %-4d  %-10d  %-8.2f  %-8d  %-12s  %s\n",
					i+1, r.Total, r.Seconds, r.Score, r.Level, r.CreatedAt.Local().Format("2006-01-02 15:04"))
			}

			if level != "" {
				best, err := store.BestTotal(level)
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Best: %d\n", best)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of runs to show")
	cmd.Flags().BoolVar(&wipe, "clear", false, "Delete the stored runs instead of listing them")
	return cmd
}
