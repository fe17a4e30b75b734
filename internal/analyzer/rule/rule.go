// Package rule implements the lexical checks run by the pre-compile analyzer.
//
// Every check is a pure function over the submitted source text. Positions are
// 1-based and counted in Unicode code points, not bytes. The checks are a
// single-line lexical heuristic, not a tokenizer: quotes and brackets inside
// comments or multi-line string literals are treated like any other text.
package rule

import "strings"

// Rule identifiers, stable across releases. Callers select checks by ID.
const (
	RuleFullWidth  = "full_width"
	RuleBrackets   = "brackets"
	RuleQuotes     = "quotes"
	RuleConfusable = "confusable"
	RuleAssignment = "assignment"
)

// Issue is one finding produced by a lexical check.
type Issue struct {
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Char       string `json:"char"`
	Message    string `json:"message"`
	RuleID     string `json:"rule"`
	Suggestion string `json:"suggestion,omitempty"`
}

// CheckFunc scans source text and returns findings in scan order.
// A nil or empty slice is a valid result for any input.
type CheckFunc func(source string) []Issue

// Descriptor describes one registered check.
type Descriptor struct {
	ID    string
	Label string
	Index int // registration order, used as the final sort tiebreaker
	Check CheckFunc
}

var registry = buildRegistry()

func buildRegistry() []Descriptor {
	ordered := []Descriptor{
		{ID: RuleFullWidth, Label: "Full-width symbols", Check: checkFullWidth},
		{ID: RuleBrackets, Label: "Unmatched brackets", Check: checkBrackets},
		{ID: RuleQuotes, Label: "Unclosed quotes", Check: checkQuotes},
		{ID: RuleConfusable, Label: "Confusable characters", Check: checkConfusable},
		{ID: RuleAssignment, Label: "Assignment in conditional", Check: checkAssignment},
	}
	for i := range ordered {
		ordered[i].Index = i
	}
	return ordered
}

// All returns the process-wide check table in registration order.
// The table is built once at init and must be treated as read-only.
func All() []Descriptor {
	return registry
}

// splitLines splits source into lines without dropping empty ones.
func splitLines(source string) []string {
	return strings.Split(source, "\n")
}
