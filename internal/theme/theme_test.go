package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, s := range []string{"system", "light", "dark"} {
		p, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}

	p, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, System, p)

	_, err = Parse("solarized")
	assert.Error(t, err)
}

func TestDark(t *testing.T) {
	// system follows the terminal.
	assert.True(t, System.Dark(true))
	assert.False(t, System.Dark(false))

	// explicit choices are sticky regardless of the terminal.
	assert.False(t, Light.Dark(true))
	assert.True(t, Dark.Dark(false))
}

func TestNext(t *testing.T) {
	assert.Equal(t, Light, System.Next())
	assert.Equal(t, Dark, Light.Next())
	assert.Equal(t, System, Dark.Next())
}
