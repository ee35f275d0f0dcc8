package cut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParsePositions tests LIST parsing with valid and invalid inputs
func TestParsePositions(t *testing.T) {
	tests := []struct {
		name        string
		list        string
		expectError bool
		errText     string
		expected    PositionList
	}{
		{
			name:        "Empty string",
			list:        "",
			expectError: true,
		},
		{
			name:        "Zero is an error",
			list:        "0",
			expectError: true,
			errText:     `illegal list value: "0"`,
		},
		{
			name:        "Zero range is an error",
			list:        "0-1",
			expectError: true,
			errText:     `illegal list value: "0"`,
		},
		{
			name:        "Leading plus is an error",
			list:        "+1",
			expectError: true,
			errText:     `illegal list value: "+1"`,
		},
		{
			name:        "Leading plus in range is an error",
			list:        "+1-2",
			expectError: true,
			errText:     `illegal list value: "+1-2"`,
		},
		{
			name:        "Plus in range end is an error",
			list:        "1-+2",
			expectError: true,
			errText:     `illegal list value: "1-+2"`,
		},
		{
			name:        "Non-number",
			list:        "a",
			expectError: true,
			errText:     `illegal list value: "a"`,
		},
		{
			name:        "Non-number after valid entry",
			list:        "1,a",
			expectError: true,
			errText:     `illegal list value: "a"`,
		},
		{
			name:        "Non-number in range",
			list:        "1-a",
			expectError: true,
			errText:     `illegal list value: "1-a"`,
		},
		{
			name:        "Non-number before range",
			list:        "a-1",
			expectError: true,
			errText:     `illegal list value: "a-1"`,
		},
		{
			name:        "Bare dash",
			list:        "-",
			expectError: true,
		},
		{
			name:        "Bare comma",
			list:        ",",
			expectError: true,
		},
		{
			name:        "Trailing comma",
			list:        "1,",
			expectError: true,
		},
		{
			name:        "Open range",
			list:        "1-",
			expectError: true,
		},
		{
			name:        "Double range",
			list:        "1-1-1",
			expectError: true,
		},
		{
			name:        "Equal range bounds",
			list:        "1-1",
			expectError: true,
			errText:     "First number in range (1) must be lower than second number (1)",
		},
		{
			name:        "Descending range",
			list:        "2-1",
			expectError: true,
			errText:     "First number in range (2) must be lower than second number (1)",
		},
		{
			name:     "Single position",
			list:     "1",
			expected: PositionList{{Start: 0, End: 1}},
		},
		{
			name:     "Leading zeros",
			list:     "01",
			expected: PositionList{{Start: 0, End: 1}},
		},
		{
			name:     "Two positions",
			list:     "1,3",
			expected: PositionList{{Start: 0, End: 1}, {Start: 2, End: 3}},
		},
		{
			name:     "Leading zeros in list",
			list:     "001,0003",
			expected: PositionList{{Start: 0, End: 1}, {Start: 2, End: 3}},
		},
		{
			name:     "Simple range",
			list:     "1-3",
			expected: PositionList{{Start: 0, End: 3}},
		},
		{
			name:     "Range with leading zeros",
			list:     "0001-03",
			expected: PositionList{{Start: 0, End: 3}},
		},
		{
			name:     "Mixed list keeps order",
			list:     "1,7,3-5",
			expected: PositionList{{Start: 0, End: 1}, {Start: 6, End: 7}, {Start: 2, End: 5}},
		},
		{
			name:     "Larger values",
			list:     "15,19-20",
			expected: PositionList{{Start: 14, End: 15}, {Start: 18, End: 20}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			positions, err := ParsePositions(tc.list)

			if tc.expectError {
				assert.Error(t, err)
				if tc.errText != "" {
					assert.Equal(t, tc.errText, err.Error())
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, positions)
			}
		})
	}
}

// TestParseDelimiter tests the single-byte delimiter contract
func TestParseDelimiter(t *testing.T) {
	delim, err := ParseDelimiter(",")
	assert.NoError(t, err)
	assert.Equal(t, byte(','), delim)

	_, err = ParseDelimiter("ab")
	assert.Error(t, err)
	assert.Equal(t, `--delim "ab" must be a single byte`, err.Error())

	_, err = ParseDelimiter("")
	assert.Error(t, err)
}
