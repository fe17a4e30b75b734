package rule

import "fmt"

var bracketPairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

var bracketOpeners = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

type openBracket struct {
	ch   rune
	line int
	col  int
}

// checkBrackets matches (), [] and {} with a stack. String literal contents
// are skipped via the shared quote scanner so brackets inside strings do not
// produce false positives. A mismatched closer consumes its opener; leftover
// openers at end of scan collapse into a single finding anchored at the
// earliest one, so a run of unclosed brackets reports once instead of
// cascading.
func checkBrackets(source string) []Issue {
	var issues []Issue
	var stack []openBracket
	for lineNum, line := range splitLines(source) {
		scanner := &quoteScanner{}
		col := 0
		for _, ch := range line {
			col++
			if scanner.consume(ch, col) || scanner.inString() {
				continue
			}
			if _, ok := bracketPairs[ch]; ok {
				stack = append(stack, openBracket{ch: ch, line: lineNum + 1, col: col})
				continue
			}
			opener, ok := bracketOpeners[ch]
			if !ok {
				continue
			}
			if len(stack) == 0 {
				issues = append(issues, Issue{
					Line:    lineNum + 1,
					Column:  col,
					Char:    string(ch),
					Message: fmt.Sprintf("unmatched closing bracket %q", ch),
					RuleID:  RuleBrackets,
				})
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.ch != opener {
				issues = append(issues, Issue{
					Line:       lineNum + 1,
					Column:     col,
					Char:       string(ch),
					Message:    fmt.Sprintf("mismatched bracket: expected %q but found %q", bracketPairs[top.ch], ch),
					RuleID:     RuleBrackets,
					Suggestion: string(bracketPairs[top.ch]),
				})
			}
		}
	}
	if len(stack) > 0 {
		first := stack[0]
		issues = append(issues, Issue{
			Line:       first.line,
			Column:     first.col,
			Char:       string(first.ch),
			Message:    fmt.Sprintf("unmatched opening bracket %q", first.ch),
			RuleID:     RuleBrackets,
			Suggestion: string(bracketPairs[first.ch]),
		})
	}
	return issues
}
