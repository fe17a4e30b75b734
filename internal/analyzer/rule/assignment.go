package rule

import (
	"regexp"
	"strings"
)

var conditionalHeader = regexp.MustCompile(`^\s*(if|while|elif|else\s+if)\b`)

// checkAssignment flags a bare "=" inside an if/while header, which almost
// always means "==" was intended. Comparison, walrus and compound assignment
// operators are excluded. Heuristic only: it looks at single lines and does
// not parse the language.
func checkAssignment(source string) []Issue {
	var issues []Issue
	for lineNum, line := range splitLines(source) {
		header := line
		if idx := strings.Index(header, "#"); idx >= 0 {
			header = header[:idx]
		}
		if idx := strings.Index(header, "//"); idx >= 0 {
			header = header[:idx]
		}
		if strings.TrimSpace(header) == "" || !conditionalHeader.MatchString(header) {
			continue
		}

		runes := []rune(header)
		scanner := &quoteScanner{}
		for i, ch := range runes {
			if scanner.consume(ch, i+1) || scanner.inString() {
				continue
			}
			if ch != '=' {
				continue
			}
			if i+1 < len(runes) && runes[i+1] == '=' {
				continue
			}
			if i > 0 && strings.ContainsRune("=<>!:+-*/%&|^", runes[i-1]) {
				continue
			}
			issues = append(issues, Issue{
				Line:       lineNum + 1,
				Column:     i + 1,
				Char:       "=",
				Message:    `possible accidental assignment "=" inside conditional, did you mean "=="?`,
				RuleID:     RuleAssignment,
				Suggestion: "==",
			})
		}
	}
	return issues
}
