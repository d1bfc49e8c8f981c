package share

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponderhq/ponder/internal/thought"
)

func TestSummary(t *testing.T) {
	full := thought.Thought{
		ID:         3,
		Text:       "Name the fear.",
		Reflection: "Naming shrinks it.",
		Tags:       []string{"courage", "clarity"},
	}
	got := Summary(full, "Day 3")
	assert.Contains(t, got, "Day 3 — Name the fear.")
	assert.Contains(t, got, "Naming shrinks it.")
	assert.Contains(t, got, "#courage #clarity")

	bare := thought.Thought{ID: 1, Text: "Rest is work."}
	got = Summary(bare, "random")
	assert.Contains(t, got, "random — Rest is work.")
	assert.NotContains(t, got, "#")
}

func TestCopy_PrefersClipboard(t *testing.T) {
	var wrote string
	oldClip, oldOSC := clipboardWrite, osc52Copy
	defer func() { clipboardWrite, osc52Copy = oldClip, oldOSC }()

	clipboardWrite = func(s string) error { wrote = s; return nil }
	osc52Copy = func(string) error { t.Fatal("fallback must not run when the clipboard works"); return nil }

	require.NoError(t, Copy("hello"))
	assert.Equal(t, "hello", wrote)
}

func TestCopy_FallsBackToOSC52(t *testing.T) {
	var fellBack string
	oldClip, oldOSC := clipboardWrite, osc52Copy
	defer func() { clipboardWrite, osc52Copy = oldClip, oldOSC }()

	clipboardWrite = func(string) error { return errors.New("no clipboard utility") }
	osc52Copy = func(s string) error { fellBack = s; return nil }

	require.NoError(t, Copy("hello"))
	assert.Equal(t, "hello", fellBack)
}
