package runner

import (
	"strings"

	"minijudge/internal/judge/result"
)

const missingLine = "<missing>"

// compareOutput grades actual program output against the expected text.
// Matching is exact equality or equality after normalizing trailing
// whitespace, so a missing or extra trailing newline never fails a case.
// Line diffs are reported for mismatches to help the submitter.
func compareOutput(actual, expected string) (bool, result.MatchDetail) {
	exact := actual == expected

	actualLines := normalizeLines(actual)
	expectedLines := normalizeLines(expected)

	matched := exact || linesEqual(actualLines, expectedLines)
	detail := result.MatchDetail{Exact: exact}
	if matched {
		return true, detail
	}

	maxLines := len(actualLines)
	if len(expectedLines) > maxLines {
		maxLines = len(expectedLines)
	}
	for i := 0; i < maxLines; i++ {
		actualLine := missingLine
		if i < len(actualLines) {
			actualLine = actualLines[i]
		}
		expectedLine := missingLine
		if i < len(expectedLines) {
			expectedLine = expectedLines[i]
		}
		if actualLine != expectedLine {
			detail.LineDiffs = append(detail.LineDiffs, result.LineDiff{
				Line:     i + 1,
				Expected: expectedLine,
				Actual:   actualLine,
			})
		}
	}
	return false, detail
}

// normalizeLines strips trailing whitespace per line and trailing empty
// lines, the only differences that must never count as a mismatch.
func normalizeLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func linesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
