package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ponderhq/ponder/internal/config"
	"github.com/ponderhq/ponder/internal/ui"
)

// tuiCmd launches the Bubble Tea TUI.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the full-screen view",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		if sourceFlag != "" {
			cfg.Source = sourceFlag
		}
		return ui.Run(cfg)
	},
}
