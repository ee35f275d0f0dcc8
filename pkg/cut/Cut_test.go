package cut

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtract tests field, byte and character extraction
func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		mode     Mode
		list     string
		delim    byte
		expected string
	}{
		{
			name:     "Single field",
			input:    "a,b,c\nd,e,f\n",
			mode:     ModeFields,
			list:     "2",
			delim:    ',',
			expected: "b\ne\n",
		},
		{
			name:     "Field range rejoined with delimiter",
			input:    "a,b,c\n",
			mode:     ModeFields,
			list:     "1-2",
			delim:    ',',
			expected: "a,b\n",
		},
		{
			name:     "Out-of-range fields skipped",
			input:    "a,b\n",
			mode:     ModeFields,
			list:     "1,5",
			delim:    ',',
			expected: "a\n",
		},
		{
			name:     "Fields in listed order",
			input:    "a,b,c\n",
			mode:     ModeFields,
			list:     "3,1",
			delim:    ',',
			expected: "c,a\n",
		},
		{
			name:     "Bytes",
			input:    "hello\n",
			mode:     ModeBytes,
			list:     "1-2,5",
			delim:    '\t',
			expected: "heo\n",
		},
		{
			name:     "Chars handle multibyte runes",
			input:    "héllo\n",
			mode:     ModeChars,
			list:     "2-3",
			delim:    '\t',
			expected: "él\n",
		},
		{
			name:     "Empty line yields empty output",
			input:    "\n",
			mode:     ModeFields,
			list:     "1",
			delim:    ',',
			expected: "\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			positions, err := ParsePositions(tc.list)
			require.NoError(t, err)

			config := &Config{
				Delimiter: tc.delim,
				Mode:      tc.mode,
				Positions: positions,
			}

			var out, errw bytes.Buffer
			err = config.Run(strings.NewReader(tc.input), &out, &errw)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, out.String())
			assert.Empty(t, errw.String())
		})
	}
}

// TestRunMissingFile tests that unreadable inputs are reported and skipped
func TestRunMissingFile(t *testing.T) {
	config := &Config{
		Files:     []string{"does-not-exist.txt"},
		Delimiter: ',',
		Mode:      ModeFields,
		Positions: PositionList{{Start: 0, End: 1}},
	}

	var out, errw bytes.Buffer
	err := config.Run(strings.NewReader(""), &out, &errw)

	assert.Error(t, err)
	assert.Contains(t, errw.String(), "does-not-exist.txt")
	assert.Empty(t, out.String())
}
