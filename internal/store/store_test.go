package store

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodJSON = `[
	{"id": 1, "text": "Begin before you are ready.", "reflection": "On starting.", "tags": ["action"]},
	{"id": 2, "text": "Slow is smooth.", "reflection": "Risk compounds when rushed."}
]`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thoughts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	records, err := New().Load(writeTemp(t, goodJSON))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, []string{"action"}, records[0].Tags)
	assert.Equal(t, "Slow is smooth.", records[1].Text)
}

func TestLoad_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(goodJSON))
	}))
	defer srv.Close()

	records, err := New().Load(srv.URL + "/thoughts.json")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoad_URLStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New().Load(srv.URL + "/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestLoad_Empty(t *testing.T) {
	_, err := New().Load(writeTemp(t, `[]`))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad_InvalidRecords(t *testing.T) {
	// id out of step with position
	_, err := New().Load(writeTemp(t, `[{"id": 2, "text": "x"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid content")
}

func TestLoad_BadJSON(t *testing.T) {
	_, err := New().Load(writeTemp(t, `{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode content")
}

func TestLoad_MissingSource(t *testing.T) {
	_, err := New().Load("")
	assert.Error(t, err)

	_, err = New().Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/t.json"))
	assert.True(t, IsURL("http://localhost:8000/t.json"))
	assert.False(t, IsURL("/var/data/t.json"))
	assert.False(t, IsURL("thoughts.json"))
}
