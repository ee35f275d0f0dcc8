package cat

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gutkit/gut/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Log = logger.NewLogger("error", []string{"stderr"}, []string{"stderr"})
	os.Exit(m.Run())
}

// TestRun tests plain and numbered concatenation
func TestRun(t *testing.T) {
	input := "first\n\nthird\n"

	tests := []struct {
		name     string
		config   Config
		expected string
	}{
		{
			name:     "Plain",
			config:   Config{},
			expected: "first\n\nthird\n",
		},
		{
			name:     "Number lines",
			config:   Config{NumberLines: true},
			expected: "     1\tfirst\n     2\t\n     3\tthird\n",
		},
		{
			name:     "Number nonblank lines",
			config:   Config{NumberNonblank: true},
			expected: "     1\tfirst\n\n     2\tthird\n",
		},
		{
			name:     "Nonblank wins over number",
			config:   Config{NumberLines: true, NumberNonblank: true},
			expected: "     1\tfirst\n\n     2\tthird\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out, errw bytes.Buffer
			err := tc.config.Run(strings.NewReader(input), &out, &errw)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, out.String())
			assert.Empty(t, errw.String())
		})
	}
}

// TestRunNumberingRestartsPerFile tests that -n starts over for each input
func TestRunNumberingRestartsPerFile(t *testing.T) {
	dir := t.TempDir()

	path1 := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path1, []byte("a\n"), 0o644))

	path2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(path2, []byte("b\n"), 0o644))

	config := Config{Files: []string{path1, path2}, NumberLines: true}

	var out, errw bytes.Buffer
	require.NoError(t, config.Run(strings.NewReader(""), &out, &errw))

	assert.Equal(t, "     1\ta\n     1\tb\n", out.String())
}

// TestRunMissingFile tests that bad inputs are reported and the rest printed
func TestRunMissingFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(path, []byte("ok\n"), 0o644))

	config := Config{Files: []string{"no-such-file", path}}

	var out, errw bytes.Buffer
	err := config.Run(strings.NewReader(""), &out, &errw)

	assert.Error(t, err)
	assert.Contains(t, errw.String(), "no-such-file")
	assert.Equal(t, "ok\n", out.String())
}
