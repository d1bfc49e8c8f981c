package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ponderhq/ponder/internal/thought"
)

var randomFormat string

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random thought",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, records, err := loadRecords()
		if err != nil {
			return err
		}
		sel := thought.NewSelector(len(records), time.Now(), cfg.EpochTime())
		sel.GoRandom()
		return printThought(records[sel.Index], sel.Label(), randomFormat)
	},
}

func init() {
	randomCmd.Flags().StringVar(&randomFormat, "format", "default", "output format: default|plain|json")
}
