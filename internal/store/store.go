// Package store loads the content set: a single static JSON resource,
// read once per boot and immutable afterwards.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ponderhq/ponder/internal/thought"
)

// ErrEmpty reports a store that loaded fine but holds zero records.
var ErrEmpty = errors.New("content store is empty")

type Store struct {
	httpClient *http.Client
}

func New() *Store {
	return &Store{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsURL reports whether source is fetched over HTTP rather than read from
// disk.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load reads the full record sequence from a local path or an http(s) URL,
// validates it, and returns it in canonical order. A valid but empty set is
// ErrEmpty so callers can show their error state instead of indexing into
// nothing.
func (s *Store) Load(source string) ([]thought.Thought, error) {
	if strings.TrimSpace(source) == "" {
		return nil, errors.New("no content source configured")
	}

	var data []byte
	var err error
	if IsURL(source) {
		data, err = s.fetch(source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	var records []thought.Thought
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	if err := thought.ValidateSet(records); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return records, nil
}

func (s *Store) fetch(url string) ([]byte, error) {
	resp, err := s.httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return buf, nil
}
