package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ponderhq/ponder/internal/archive"
)

var (
	archiveTag    string
	archiveQuery  string
	archiveFormat string
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Browse the full archive",
	Long: `Examples:
	ponder archive                         # everything, in day order
	ponder archive --tag courage           # one tag at a time
	ponder archive --query "risk"          # case-insensitive text search
	ponder archive --tag courage --query fear --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, records, err := loadRecords()
		if err != nil {
			return err
		}

		matched := archive.Filter(records, archiveTag, archiveQuery)

		if archiveFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(matched)
		}

		dim := lipgloss.NewStyle().Faint(true)
		bold := lipgloss.NewStyle().Bold(true)

		fmt.Println(dim.Render(fmt.Sprintf("%d of %d thoughts", len(matched), len(records))))
		if len(matched) == 0 {
			fmt.Println("No thoughts match.")
			return nil
		}
		for _, rec := range matched {
			line := fmt.Sprintf("%s  %s", bold.Render(fmt.Sprintf("Day %d", rec.ID)), rec.Text)
			if len(rec.Tags) > 0 {
				line += "  " + dim.Render("#"+strings.Join(rec.Tags, " #"))
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	archiveCmd.Flags().StringVar(&archiveTag, "tag", "", "only thoughts carrying this tag")
	archiveCmd.Flags().StringVar(&archiveQuery, "query", "", "substring match on text or reflection")
	archiveCmd.Flags().StringVar(&archiveFormat, "format", "default", "output format: default|json")
}
