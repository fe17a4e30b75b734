package rule

// checkQuotes flags quote regions left open at end of line. The check is
// deliberately line-local: multi-line strings exist in some languages, but
// for a pre-compile hint an unclosed quote at end of line is almost always
// the mistake being looked for. The issue anchors at the opening quote.
func checkQuotes(source string) []Issue {
	var issues []Issue
	for lineNum, line := range splitLines(source) {
		scanner := &quoteScanner{}
		col := 0
		for _, ch := range line {
			col++
			scanner.consume(ch, col)
		}
		if !scanner.inString() {
			continue
		}
		kind := "single"
		if scanner.openChar == '"' {
			kind = "double"
		}
		issues = append(issues, Issue{
			Line:       lineNum + 1,
			Column:     scanner.openCol,
			Char:       string(scanner.openChar),
			Message:    "unclosed " + kind + " quote",
			RuleID:     RuleQuotes,
			Suggestion: string(scanner.openChar),
		})
	}
	return issues
}
