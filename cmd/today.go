package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ponderhq/ponder/internal/thought"
)

var todayFormat string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's thought",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, records, err := loadRecords()
		if err != nil {
			return err
		}
		sel := thought.NewSelector(len(records), time.Now(), cfg.EpochTime())
		return printThought(records[sel.Index], sel.Label(), todayFormat)
	},
}

func init() {
	todayCmd.Flags().StringVar(&todayFormat, "format", "default", "output format: default|plain|json")
}

// printThought writes one record to stdout. Shared by today, yesterday and
// random.
func printThought(rec thought.Thought, label, format string) error {
	switch format {
	case "json":
		out := struct {
			Label string `json:"label"`
			thought.Thought
		}{Label: label, Thought: rec}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case "plain":
		fmt.Printf("%s — %s\n", label, rec.Text)
		if rec.Reflection != "" {
			fmt.Println(rec.Reflection)
		}
		if len(rec.Tags) > 0 {
			fmt.Println("#" + strings.Join(rec.Tags, " #"))
		}
		return nil

	default:
		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		body := lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD"))
		dim := lipgloss.NewStyle().Faint(true)

		fmt.Println(title.Render(label))
		fmt.Println(body.Render(rec.Text))
		if rec.Reflection != "" {
			fmt.Println(dim.Render(rec.Reflection))
		}
		if len(rec.Tags) > 0 {
			fmt.Println(dim.Render("#" + strings.Join(rec.Tags, " #")))
		}
		return nil
	}
}
