package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabiojmendes/super-jeff/internal/application/replay"
	"github.com/fabiojmendes/super-jeff/internal/application/state"
)

func newReplayCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Re-run a recorded session headlessly and print the outcome",
		Long: `Replay feeds every recorded frame into a fresh session built from the
recorded seed and level, as fast as possible, and prints the result.
The level falls back to --level for recordings without one.

Examples:
  superjeff replay run.json
  superjeff replay --json run.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := replay.LoadReplay(args[0])
			if err != nil {
				return err
			}
			level := opts.level
			if data.Level != "" {
				level = data.Level
			}
			sess, err := opts.newSession(level, data.Seed)
			if err != nil {
				return err
			}
			res, err := replay.Run(data, sess)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Replay - %s (seed %d)", level, data.Seed)))
			fmt.Fprintf(out, "  Frames:  %d\n", res.Frames)
			fmt.Fprintf(out, "  State:   %s\n", renderState(res.State))
			fmt.Fprintf(out, "  Score:   %d\n", res.Score)
			fmt.Fprintf(out, "  Elapsed: %.2fs\n", res.Elapsed)
			if res.State == state.StateCompleted {
				fmt.Fprintf(out, "  Final:   %d in %.2fs\n", res.FinalScore, res.FinalTime)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func renderState(s state.SessionState) string {
	switch s {
	case state.StateCompleted:
		return okStyle.Render(s.String())
	case state.StatePlayerDead:
		return badStyle.Render(s.String())
	default:
		return s.String()
	}
}
