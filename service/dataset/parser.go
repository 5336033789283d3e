// Package dataset parses the rank-interval dataset format: one record per
// line, "<rankStart>-<rankEnd>:<collegeName>". The line is split at the first
// ':' into range and label, the range at the first '-' into start and end.
// Both halves are parsed as strict integers with no whitespace trimming, so
// " 12-30:X" is a format error. The label is kept verbatim and may itself
// contain further separator characters.
package dataset

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/counselkit/counsel/model"
	"github.com/viant/parsly"
)

// FormatError describes a malformed dataset line.
type FormatError struct {
	URL    string
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("invalid dataset format at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("invalid dataset format in %s:%d: %s", e.URL, e.Line, e.Reason)
}

// Parse parses the supplied dataset content into an interval table. Records
// are appended in file order; no deduplication, sorting or overlap validation
// is applied. URL is only used to annotate errors and may be empty.
func Parse(URL string, data []byte) (model.Table, error) {
	var table model.Table
	lines := bytes.Split(data, []byte{'\n'})
	// a trailing newline does not produce an empty trailing record
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		record, err := parseLine(URL, i+1, line)
		if err != nil {
			return nil, err
		}
		table = append(table, *record)
	}
	return table, nil
}

// parseLine parses a single "start-end:label" line.
func parseLine(URL string, lineNo int, line []byte) (*model.IntervalRecord, error) {
	cursor := parsly.NewCursor("", line, 0)

	var rangeText string
	if matched := cursor.MatchOne(rangeFragmentToken); matched.Code == rangeFragmentCode {
		rangeText = matched.Text(cursor)
	}
	if matched := cursor.MatchOne(labelSeparatorToken); matched.Code != labelSeparatorCode {
		return nil, &FormatError{URL: URL, Line: lineNo, Reason: "missing ':' label separator"}
	}
	var label string
	if matched := cursor.MatchOne(fragmentToken); matched.Code == fragmentCode {
		label = matched.Text(cursor)
	}

	start, end, err := parseRange(URL, lineNo, rangeText)
	if err != nil {
		return nil, err
	}
	return &model.IntervalRecord{RankStart: start, RankEnd: end, College: label}, nil
}

// parseRange splits "start-end" at the first '-' and parses both halves.
func parseRange(URL string, lineNo int, rangeText string) (int, int, error) {
	cursor := parsly.NewCursor("", []byte(rangeText), 0)

	var startText string
	if matched := cursor.MatchOne(rankFragmentToken); matched.Code == rankFragmentCode {
		startText = matched.Text(cursor)
	}
	if matched := cursor.MatchOne(rangeSeparatorToken); matched.Code != rangeSeparatorCode {
		return 0, 0, &FormatError{URL: URL, Line: lineNo, Reason: "missing '-' range separator"}
	}
	var endText string
	if matched := cursor.MatchOne(fragmentToken); matched.Code == fragmentCode {
		endText = matched.Text(cursor)
	}

	start, err := strconv.Atoi(startText)
	if err != nil {
		return 0, 0, &FormatError{URL: URL, Line: lineNo, Reason: fmt.Sprintf("invalid start rank %q", startText)}
	}
	end, err := strconv.Atoi(endText)
	if err != nil {
		return 0, 0, &FormatError{URL: URL, Line: lineNo, Reason: fmt.Sprintf("invalid end rank %q", endText)}
	}
	return start, end, nil
}
