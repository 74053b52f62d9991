package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fabiojmendes/super-jeff/internal/infrastructure/config"
)

func newInitCmd(_ *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init <dir>",
		Short: "Write the built-in tuning and levels to a directory for editing",
		Long: `Init copies tuning.yaml and levels/ into dir. Point --config at it
to play the edited files, and add --watch to reload on save.

Example:
  superjeff init ./levels-dev
  superjeff play --config ./levels-dev --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := config.WriteDefaults(dir); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s and %s\n",
				filepath.Join(dir, "tuning.yaml"), filepath.Join(dir, "levels"))
			fmt.Fprintln(out, dimStyle.Render("Play it with: superjeff play --config "+dir+" --watch"))
			return nil
		},
	}
}
