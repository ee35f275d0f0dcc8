package comm

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func defaultConfig(file1, file2 string) *Config {
	return &Config{
		File1:     file1,
		File2:     file2,
		ShowCol1:  true,
		ShowCol2:  true,
		ShowCol3:  true,
		Delimiter: "\t",
	}
}

// TestRun tests the three-column output with various suppressions
func TestRun(t *testing.T) {
	content1 := "apple\nbanana\ncherry\n"
	content2 := "banana\ncherry\ndate\n"

	tests := []struct {
		name     string
		mutate   func(*Config)
		expected string
	}{
		{
			name:     "All columns",
			mutate:   func(*Config) {},
			expected: "apple\n\tbanana\n\tcherry\n\t\tdate\n",
		},
		{
			name:     "Suppress column 1",
			mutate:   func(c *Config) { c.ShowCol1 = false },
			expected: "banana\ncherry\ndate\n",
		},
		{
			name:     "Suppress column 2",
			mutate:   func(c *Config) { c.ShowCol2 = false },
			expected: "apple\n\tbanana\n\tcherry\n",
		},
		{
			name:     "Suppress column 3",
			mutate:   func(c *Config) { c.ShowCol3 = false },
			expected: "apple\n\tdate\n",
		},
		{
			name:     "Only column 3",
			mutate:   func(c *Config) { c.ShowCol1 = false; c.ShowCol2 = false },
			expected: "banana\ncherry\n",
		},
		{
			name:     "Custom delimiter",
			mutate:   func(c *Config) { c.Delimiter = "|" },
			expected: "apple\n|banana\n|cherry\n||date\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file1 := writeFile(t, "a.txt", content1)
			file2 := writeFile(t, "b.txt", content2)

			config := defaultConfig(file1, file2)
			tc.mutate(config)

			var out, errw bytes.Buffer
			err := config.Run(strings.NewReader(""), &out, &errw)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

// TestRunInsensitive tests that -i compares and prints folded text
func TestRunInsensitive(t *testing.T) {
	file1 := writeFile(t, "a.txt", "APPLE\n")
	file2 := writeFile(t, "b.txt", "apple\n")

	config := defaultConfig(file1, file2)
	config.Insensitive = true

	var out, errw bytes.Buffer
	require.NoError(t, config.Run(strings.NewReader(""), &out, &errw))

	assert.Equal(t, "\t\tapple\n", out.String())
}

// TestRunStdin tests reading one side from stdin
func TestRunStdin(t *testing.T) {
	file2 := writeFile(t, "b.txt", "b\n")

	config := defaultConfig("-", file2)

	var out, errw bytes.Buffer
	require.NoError(t, config.Run(strings.NewReader("a\n"), &out, &errw))

	assert.Equal(t, "a\n\tb\n", out.String())
}

// TestRunBothStdin tests that two stdin inputs are rejected
func TestRunBothStdin(t *testing.T) {
	config := defaultConfig("-", "-")

	var out, errw bytes.Buffer
	err := config.Run(strings.NewReader(""), &out, &errw)

	assert.Error(t, err)
	assert.Equal(t, `Both input files cannot be STDIN ("-")`, err.Error())
}

// TestRunMissingFile tests the error for an unreadable input
func TestRunMissingFile(t *testing.T) {
	file1 := writeFile(t, "a.txt", "a\n")

	config := defaultConfig(file1, "no-such-file")

	var out, errw bytes.Buffer
	err := config.Run(strings.NewReader(""), &out, &errw)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-file")
}
