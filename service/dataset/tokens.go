package dataset

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes (start at 1 to avoid clash with parsly.EOF).
const (
	rangeFragmentCode = iota + 1
	labelSeparatorCode
	rankFragmentCode
	rangeSeparatorCode
	fragmentCode
)

// Token definitions
var (
	rangeFragmentToken  = parsly.NewToken(rangeFragmentCode, "RankRange", newUntilByteMatcher(labelSeparator))
	labelSeparatorToken = parsly.NewToken(labelSeparatorCode, "':'", matcher.NewByte(labelSeparator))
	rankFragmentToken   = parsly.NewToken(rankFragmentCode, "Rank", newUntilByteMatcher(rangeSeparator))
	rangeSeparatorToken = parsly.NewToken(rangeSeparatorCode, "'-'", matcher.NewByte(rangeSeparator))
	fragmentToken       = parsly.NewToken(fragmentCode, "Fragment", newFragmentMatcher())
)

const (
	labelSeparator = byte(':')
	rangeSeparator = byte('-')
)

// untilByteMatcher captures everything up to - but not including - the stop
// byte, or to the end of the input when the stop byte is absent.
type untilByteMatcher struct {
	stop byte
}

func newUntilByteMatcher(stop byte) parsly.Matcher {
	return &untilByteMatcher{stop: stop}
}

func (m *untilByteMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	for i := pos; i < size; i++ {
		if input[i] == m.stop {
			break
		}
		matched++
	}
	return matched
}

// fragmentMatcher captures the remainder of the input verbatim.
type fragmentMatcher struct{}

func newFragmentMatcher() parsly.Matcher {
	return &fragmentMatcher{}
}

func (m *fragmentMatcher) Match(cursor *parsly.Cursor) int {
	return cursor.InputSize - cursor.Pos
}
