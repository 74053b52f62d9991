package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [level]",
		Short: "Validate the tuning and a level file",
		Long: `Check loads tuning.yaml and the level the same way play does and
reports what was found. Useful while editing files created by init.

Examples:
  superjeff check
  superjeff check --config ./levels-dev level2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := opts.level
			if len(args) == 1 {
				name = args[0]
			}
			lvl, tuning, err := opts.load(name)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), badStyle.Render("✗ "+name))
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, okStyle.Render("✓ "+name))
			fmt.Fprintf(out, "  Size:    %dx%d\n", lvl.Width, lvl.Height)
			fmt.Fprintf(out, "  Tiles:   %d\n", len(lvl.Tiles))
			fmt.Fprintf(out, "  Enemies: %d\n", len(lvl.EnemySpawns))
			fmt.Fprintf(out, "  Player:  (%.1f, %.1f)\n", lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
			fmt.Fprintf(out, "  Boss:    (%.1f, %.1f) health %d\n", lvl.BossSpawn.X, lvl.BossSpawn.Y, tuning.Boss.Health)
			fmt.Fprintf(out, "  Trap x:  %.1f\n", lvl.TrapX)
			return nil
		},
	}
}
