package cut

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Range is a half-open, zero-based index interval selected by a LIST entry.
type Range struct {
	Start int
	End   int
}

type PositionList []Range

var intervalRegex = regexp.MustCompile(`^(\d+)(-(\d+))?$`)

// ParsePositions parses a comma-separated LIST of 1-based positions and
// N-M ranges. Zero, a leading "+", and ranges whose first number is not
// strictly lower than the second are rejected.
func ParsePositions(list string) (PositionList, error) {
	var positions PositionList

	for _, interval := range strings.Split(list, ",") {
		r, err := parseInterval(interval)
		if err != nil {
			return nil, err
		}
		positions = append(positions, r)
	}

	return positions, nil
}

func parseInterval(interval string) (Range, error) {
	captures := intervalRegex.FindStringSubmatch(interval)
	if captures == nil {
		return Range{}, intervalError(interval)
	}

	start, err := strconv.Atoi(captures[1])
	if err != nil {
		return Range{}, errors.WithStack(err)
	}

	if start < 1 {
		return Range{}, intervalError(captures[1])
	}

	if captures[3] == "" {
		return Range{Start: start - 1, End: start}, nil
	}

	end, err := strconv.Atoi(captures[3])
	if err != nil {
		return Range{}, errors.WithStack(err)
	}

	if start >= end {
		return Range{}, errors.Errorf(
			"First number in range (%d) must be lower than second number (%d)", start, end)
	}

	return Range{Start: start - 1, End: end}, nil
}

func intervalError(interval string) error {
	return errors.Errorf("illegal list value: %q", interval)
}
