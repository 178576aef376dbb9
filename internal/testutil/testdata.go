package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LoadJSON loads a JSON fixture from testdata relative to the repo root.
func LoadJSON(t *testing.T, rel string, v any) {
	t.Helper()
	data := readTestdata(t, rel)
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode %s: %v", rel, err)
	}
}

// LoadLine returns the first non-empty line of a sentence fixture.
func LoadLine(t *testing.T, rel string) string {
	t.Helper()
	lines := LoadLines(t, rel)
	if len(lines) == 0 {
		t.Fatalf("testdata file %s has no sentences", rel)
	}
	return lines[0]
}

// LoadLines returns the trimmed, non-empty lines of a sentence fixture.
func LoadLines(t *testing.T, rel string) []string {
	t.Helper()
	var lines []string
	for _, line := range strings.Split(string(readTestdata(t, rel)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	candidates := []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return nil
}
