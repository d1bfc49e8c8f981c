package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ponderhq/ponder/internal/thought"
)

var yesterdayFormat string

var yesterdayCmd = &cobra.Command{
	Use:   "yesterday",
	Short: "Print yesterday's thought",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, records, err := loadRecords()
		if err != nil {
			return err
		}
		sel := thought.NewSelector(len(records), time.Now(), cfg.EpochTime())
		sel.GoYesterday()
		return printThought(records[sel.Index], sel.Label(), yesterdayFormat)
	},
}

func init() {
	yesterdayCmd.Flags().StringVar(&yesterdayFormat, "format", "default", "output format: default|plain|json")
}
