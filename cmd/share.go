package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ponderhq/ponder/internal/notify"
	"github.com/ponderhq/ponder/internal/share"
	"github.com/ponderhq/ponder/internal/thought"
)

var shareDay int

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Copy a thought summary to the clipboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, records, err := loadRecords()
		if err != nil {
			return err
		}

		sel := thought.NewSelector(len(records), time.Now(), cfg.EpochTime())
		if shareDay > 0 {
			sel.Index = thought.SafeIndex(shareDay-1, len(records))
		}
		rec := records[sel.Index]
		label := fmt.Sprintf("Day %d", sel.Index+1)

		// Best effort: a failed copy is reported, not fatal.
		if err := share.Copy(share.Summary(rec, label)); err != nil {
			fmt.Println("Copy failed:", err)
			return nil
		}
		fmt.Println("Copied to clipboard:", label)
		if cfg.Notifications.Enabled {
			_ = notify.Info("Ponder", label+" copied to clipboard")
		}
		return nil
	},
}

func init() {
	shareCmd.Flags().IntVar(&shareDay, "day", 0, "share a specific day instead of today")
}
