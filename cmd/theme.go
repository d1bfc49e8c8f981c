package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ponderhq/ponder/internal/config"
	"github.com/ponderhq/ponder/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [system|light|dark]",
	Short: "Show or set the persisted theme preference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()

		if len(args) == 0 {
			fmt.Println(cfg.ThemePreference())
			return nil
		}

		pref, err := theme.Parse(args[0])
		if err != nil {
			return err
		}
		cfg.Theme = pref.String()
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Println("Theme set to", pref)
		return nil
	},
}
