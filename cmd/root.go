package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ponderhq/ponder/internal/config"
	"github.com/ponderhq/ponder/internal/store"
	"github.com/ponderhq/ponder/internal/thought"
)

var rootCmd = &cobra.Command{
	Use:   "ponder",
	Short: "A thought a day, in your terminal",
}

func Execute() error { return rootCmd.Execute() }

// sourceFlag overrides the configured content source for one invocation.
var sourceFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "content file path or URL (overrides config)")

	// Add commands; other files define these vars
	rootCmd.AddCommand(todayCmd, yesterdayCmd, randomCmd, archiveCmd, tagsCmd, shareCmd, themeCmd, tuiCmd, versionCmd)
}

// loadRecords loads config and the content set for the one-shot commands.
func loadRecords() (config.Config, []thought.Thought, error) {
	cfg, _ := config.Load()
	if sourceFlag != "" {
		cfg.Source = sourceFlag
	}
	records, err := store.New().Load(cfg.Source)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, records, nil
}
