package chapter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var rangeLineRe = regexp.MustCompile(`^\s*(\d+)\s*-\s*(\d+)\s*(?::(.*))?$`)

// ParseError reports the first invalid line in a manual range batch.
type ParseError struct {
	Line   int    // 1-based line number in the submitted text
	Text   string // the raw offending line
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ParseRangeText parses manually entered page ranges, one per non-blank line,
// in the form "start-end" with an optional ":title" suffix. A line without a
// title gets "Part N" where N is its line number. The first invalid line
// aborts the whole batch; ranges are returned in input order and may overlap
// or leave gaps.
func ParseRangeText(text string, totalPages int) ([]Range, error) {
	var ranges []Range
	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := rangeLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "expected start-end[:title]"}
		}

		start, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "invalid start page"}
		}
		end, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "invalid end page"}
		}

		if start < 1 {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "start page must be at least 1"}
		}
		if end > totalPages {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: fmt.Sprintf("end page %d exceeds document pages (%d)", end, totalPages)}
		}
		if start > end {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "start page is after end page"}
		}

		title := strings.TrimSpace(m[3])
		if title == "" {
			title = fmt.Sprintf("Part %d", lineNo)
		}
		ranges = append(ranges, Range{Title: title, StartPage: start, EndPage: end})
	}
	return ranges, nil
}

// FormatRanges renders ranges back into the text form ParseRangeText accepts.
func FormatRanges(ranges []Range) string {
	var b strings.Builder
	for _, r := range ranges {
		fmt.Fprintf(&b, "%d-%d:%s\n", r.StartPage, r.EndPage, r.Title)
	}
	return b.String()
}
