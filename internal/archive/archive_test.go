package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponderhq/ponder/internal/thought"
)

func sample() []thought.Thought {
	return []thought.Thought{
		{ID: 1, Text: "Begin before you are ready.", Reflection: "On starting.", Tags: []string{"action", "courage"}},
		{ID: 2, Text: "Slow is smooth.", Reflection: "Risk compounds when rushed.", Tags: []string{"patience"}},
		{ID: 3, Text: "Name the fear.", Reflection: "Naming shrinks it.", Tags: []string{"courage"}},
		{ID: 4, Text: "Rest is work.", Reflection: ""},
	}
}

func TestTags(t *testing.T) {
	assert.Equal(t, []string{"action", "courage", "patience"}, Tags(sample()))
	assert.Empty(t, Tags(nil))
}

func TestFilter_NoFilters(t *testing.T) {
	records := sample()
	got := Filter(records, "", "")
	require.Len(t, got, len(records))
	for i, r := range got {
		assert.Equal(t, records[i].ID, r.ID, "original order must be preserved")
	}
}

func TestFilter_Query(t *testing.T) {
	records := sample()

	// Case-insensitive match in the reflection alone still includes.
	got := Filter(records, "", "risk")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	// Whitespace is trimmed before matching.
	got = Filter(records, "", "  BEGIN  ")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	assert.Empty(t, Filter(records, "", "zzz"))
}

func TestFilter_Tag(t *testing.T) {
	records := sample()

	got := Filter(records, "courage", "")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	// Untagged records only show when no tag is active.
	assert.Empty(t, Filter(records, "nope", ""))
}

func TestFilter_Combined(t *testing.T) {
	records := sample()

	// Both predicates must pass.
	got := Filter(records, "courage", "fear")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)

	assert.Empty(t, Filter(records, "patience", "fear"))
}

func TestFilter_MatchesSetDefinition(t *testing.T) {
	// The result must equal exactly the set passing both predicates.
	records := sample()
	got := Filter(records, "courage", "n")
	want := map[int]bool{}
	for _, r := range records {
		if tagMatch(r, "courage") && textMatch(r, "n") {
			want[r.ID] = true
		}
	}
	assert.Len(t, got, len(want))
	for _, r := range got {
		assert.True(t, want[r.ID])
	}
}
