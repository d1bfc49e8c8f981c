// Package share turns a thought into a plain-text summary and places it on
// the clipboard. Everything here is best effort: sharing never blocks the
// rest of the app.
package share

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"

	"github.com/ponderhq/ponder/internal/thought"
)

// Swappable in tests.
var (
	clipboardWrite = clipboard.WriteAll
	osc52Copy      = func(text string) error {
		// OSC 52 goes through the terminal, so it also works over SSH where
		// no OS clipboard is reachable.
		termenv.NewOutput(os.Stderr).Copy(text)
		return nil
	}
)

// Summary renders the share form of a record under its day label.
func Summary(t thought.Thought, label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s\n", label, t.Text)
	if t.Reflection != "" {
		fmt.Fprintf(&b, "\n%s\n", t.Reflection)
	}
	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, "\n#%s\n", strings.Join(t.Tags, " #"))
	}
	return b.String()
}

// Copy places text on the system clipboard, falling back to an OSC 52
// escape through the terminal when the OS clipboard is unavailable.
func Copy(text string) error {
	if err := clipboardWrite(text); err != nil {
		return osc52Copy(text)
	}
	return nil
}
