package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ponderhq/ponder/internal/archive"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every tag with its usage count",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, records, err := loadRecords()
		if err != nil {
			return err
		}

		counts := map[string]int{}
		for _, rec := range records {
			for _, tag := range rec.Tags {
				counts[tag]++
			}
		}

		dim := lipgloss.NewStyle().Faint(true)
		for _, tag := range archive.Tags(records) {
			fmt.Printf("%s %s\n", tag, dim.Render(fmt.Sprintf("(%d)", counts[tag])))
		}
		return nil
	},
}
