package tail

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// Offset is a line or byte count, anchored either at the start of the file
// ("+N") or at its end (plain or negative N).
type Offset struct {
	FromStart bool
	Count     uint64
}

var offsetRegex = regexp.MustCompile(`^([+-])?(\d+)$`)

// ParseOffset accepts [+-]?digits. "+N" counts from the start, everything
// else from the end.
func ParseOffset(s string) (Offset, bool) {
	captures := offsetRegex.FindStringSubmatch(s)
	if captures == nil {
		return Offset{}, false
	}

	num, err := strconv.ParseUint(captures[2], 10, 64)
	if err != nil {
		return Offset{}, false
	}

	return Offset{FromStart: captures[1] == "+", Count: num}, true
}

func ParseLines(s string) (Offset, error) {
	offset, ok := ParseOffset(s)
	if !ok {
		return Offset{}, errors.Errorf("illegal line count -- %s", s)
	}
	return offset, nil
}

func ParseBytes(s string) (Offset, error) {
	offset, ok := ParseOffset(s)
	if !ok {
		return Offset{}, errors.Errorf("illegal byte count -- %s", s)
	}
	return offset, nil
}

// StartIndex resolves an offset against the input size. The second return
// is false when nothing should be printed: an empty file, a zero take from
// the end, or a "+N" start past the end. "+0" means the whole file.
func StartIndex(offset Offset, size uint64) (uint64, bool) {
	if size == 0 {
		return 0, false
	}

	if offset.FromStart {
		if offset.Count == 0 {
			return 0, true
		}
		if offset.Count <= size {
			return offset.Count - 1, true
		}
		return 0, false
	}

	if offset.Count == 0 {
		return 0, false
	}

	if size >= offset.Count {
		return size - offset.Count, true
	}

	return 0, true
}
