// Package theme holds the persisted appearance preference and its
// resolution against the terminal background.
package theme

import "fmt"

// Preference is the persisted appearance setting. "system" follows the
// terminal background at apply time; "light" and "dark" are sticky.
type Preference string

const (
	System Preference = "system"
	Light  Preference = "light"
	Dark   Preference = "dark"
)

// Parse returns the preference named by s, or an error listing the valid
// values. An empty string parses as System.
func Parse(s string) (Preference, error) {
	switch Preference(s) {
	case System, "":
		return System, nil
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return System, fmt.Errorf("unknown theme %q (want system, light or dark)", s)
}

// Next cycles system → light → dark → system.
func (p Preference) Next() Preference {
	switch p {
	case System:
		return Light
	case Light:
		return Dark
	default:
		return System
	}
}

// Dark resolves the preference to the variant actually shown.
// terminalDark is whatever the terminal reports at apply time; it only
// matters for System.
func (p Preference) Dark(terminalDark bool) bool {
	switch p {
	case Light:
		return false
	case Dark:
		return true
	default:
		return terminalDark
	}
}

func (p Preference) String() string { return string(p) }
