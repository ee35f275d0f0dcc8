package head

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun tests line and byte modes against stdin
func TestRun(t *testing.T) {
	input := "one\ntwo\nthree\nfour\n"

	tests := []struct {
		name     string
		config   Config
		expected string
	}{
		{
			name:     "Default ten lines",
			config:   Config{Lines: 10},
			expected: input,
		},
		{
			name:     "First two lines",
			config:   Config{Lines: 2},
			expected: "one\ntwo\n",
		},
		{
			name:     "Zero lines",
			config:   Config{Lines: 0},
			expected: "",
		},
		{
			name:     "First five bytes",
			config:   Config{Bytes: 5, ByBytes: true},
			expected: "one\nt",
		},
		{
			name:     "More bytes than available",
			config:   Config{Bytes: 100, ByBytes: true},
			expected: input,
		},
		{
			name:     "Unterminated last line",
			config:   Config{Lines: 10},
			expected: input,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out, errw bytes.Buffer
			err := tc.config.Run(strings.NewReader(input), &out, &errw)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

// TestRunUnterminated tests that a final line without a newline is kept as-is
func TestRunUnterminated(t *testing.T) {
	config := Config{Lines: 5}

	var out, errw bytes.Buffer
	require.NoError(t, config.Run(strings.NewReader("one\ntwo"), &out, &errw))

	assert.Equal(t, "one\ntwo", out.String())
}

// TestRunHeaders tests multi-file headers and blank-line separation
func TestRunHeaders(t *testing.T) {
	dir := t.TempDir()

	path1 := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path1, []byte("a\n"), 0o644))

	path2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(path2, []byte("b\n"), 0o644))

	config := Config{Files: []string{path1, path2}, Lines: 10}

	var out, errw bytes.Buffer
	require.NoError(t, config.Run(strings.NewReader(""), &out, &errw))

	expected := "==> " + path1 + " <==\na\n\n==> " + path2 + " <==\nb\n"
	assert.Equal(t, expected, out.String())
}

// TestRunMissingFile tests that bad files get no header and are reported
func TestRunMissingFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(path, []byte("ok\n"), 0o644))

	config := Config{Files: []string{"no-such-file", path}, Lines: 10}

	var out, errw bytes.Buffer
	err := config.Run(strings.NewReader(""), &out, &errw)

	assert.Error(t, err)
	assert.Contains(t, errw.String(), "no-such-file")
	assert.Equal(t, "==> "+path+" <==\nok\n", out.String())
}
