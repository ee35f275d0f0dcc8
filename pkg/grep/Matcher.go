package grep

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// Matcher abstracts the two regex engines: the default RE2 engine and the
// opt-in backtracking engine behind -P.
type Matcher interface {
	Match(line string) bool
	// Spans returns the byte offsets of every match, for highlighting.
	Spans(line string) [][2]int
}

// NewMatcher compiles the pattern for the selected engine.
func NewMatcher(pattern string, insensitive bool, perl bool) (Matcher, error) {
	if perl {
		flags := regexp2.None
		if insensitive {
			flags = regexp2.IgnoreCase
		}

		re, err := regexp2.Compile(pattern, flags)
		if err != nil {
			return nil, errors.Errorf("Invalid pattern %q", pattern)
		}

		return &perlMatcher{re: re}, nil
	}

	if insensitive {
		pattern = fmt.Sprintf("(?i)%s", pattern)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("Invalid pattern %q", pattern)
	}

	return &stdMatcher{re: re}, nil
}

type stdMatcher struct {
	re *regexp.Regexp
}

func (m *stdMatcher) Match(line string) bool {
	return m.re.MatchString(line)
}

func (m *stdMatcher) Spans(line string) [][2]int {
	var spans [][2]int
	for _, loc := range m.re.FindAllStringIndex(line, -1) {
		spans = append(spans, [2]int{loc[0], loc[1]})
	}
	return spans
}

type perlMatcher struct {
	re *regexp2.Regexp
}

func (m *perlMatcher) Match(line string) bool {
	ok, err := m.re.MatchString(line)
	return err == nil && ok
}

func (m *perlMatcher) Spans(line string) [][2]int {
	// regexp2 reports rune indices; translate them to byte offsets.
	runes := []rune(line)
	byteAt := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		byteAt[i] = pos
		pos += len(string(r))
	}
	byteAt[len(runes)] = pos

	var spans [][2]int

	match, err := m.re.FindStringMatch(line)
	for err == nil && match != nil {
		start := match.Index
		end := start + match.Length
		if end <= len(runes) {
			spans = append(spans, [2]int{byteAt[start], byteAt[end]})
		}
		match, err = m.re.FindNextMatch(match)
	}

	return spans
}
