package rule

import "fmt"

// fullWidthASCII maps full-width punctuation to its ASCII counterpart.
var fullWidthASCII = map[rune]rune{
	'（': '(',
	'）': ')',
	'｛': '{',
	'｝': '}',
	'［': '[',
	'］': ']',
	'；': ';',
	'：': ':',
	'，': ',',
	'．': '.',
	'！': '!',
	'？': '?',
	'＝': '=',
	'＋': '+',
	'－': '-',
	'＊': '*',
	'／': '/',
	'＜': '<',
	'＞': '>',
	'＆': '&',
	'｜': '|',
	'＾': '^',
	'％': '%',
	'＄': '$',
	'＃': '#',
	'＠': '@',
	'　': ' ', // full-width space
}

func checkFullWidth(source string) []Issue {
	var issues []Issue
	for lineNum, line := range splitLines(source) {
		col := 0
		for _, ch := range line {
			col++
			ascii, ok := fullWidthASCII[ch]
			if !ok {
				continue
			}
			issues = append(issues, Issue{
				Line:       lineNum + 1,
				Column:     col,
				Char:       string(ch),
				Message:    fmt.Sprintf("full-width symbol %q found, should use %q", ch, ascii),
				RuleID:     RuleFullWidth,
				Suggestion: string(ascii),
			})
		}
	}
	return issues
}
