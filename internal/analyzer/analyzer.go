// Package analyzer orchestrates the pre-compile lexical checks.
//
// Findings are advisory: the judge never refuses to run flagged code.
package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"minijudge/internal/analyzer/rule"
)

// Result is the outcome of one analysis pass. It is never mutated after
// construction.
type Result struct {
	Issues []rule.Issue `json:"issues"`
	Total  int          `json:"total"`
	Clean  bool         `json:"clean"`
}

// RuleInfo identifies one available check for UI pickers.
type RuleInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Analyzer runs a read-only table of lexical checks against source text.
// The table is fixed at construction; no checks can be added at runtime.
type Analyzer struct {
	rules []rule.Descriptor
	index map[string]int // rule ID -> registration order
}

// New creates an analyzer over the built-in check table.
func New() *Analyzer {
	return NewWithRules(rule.All())
}

// NewWithRules creates an analyzer over an explicit check table.
func NewWithRules(rules []rule.Descriptor) *Analyzer {
	index := make(map[string]int, len(rules))
	for _, d := range rules {
		index[d.ID] = d.Index
	}
	return &Analyzer{rules: rules, index: index}
}

// Analyze runs the selected checks against source and returns the merged,
// sorted findings. A nil or empty ruleIDs selects every check. Unknown rule
// identifiers are ignored so callers can request subsets defensively.
func (a *Analyzer) Analyze(source string, ruleIDs []string) Result {
	selected := a.selectRules(ruleIDs)

	// Always a non-nil slice so a clean result serializes as [] not null.
	issues := []rule.Issue{}
	for _, d := range selected {
		issues = append(issues, d.Check(source)...)
	}

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Line != issues[j].Line {
			return issues[i].Line < issues[j].Line
		}
		if issues[i].Column != issues[j].Column {
			return issues[i].Column < issues[j].Column
		}
		return a.index[issues[i].RuleID] < a.index[issues[j].RuleID]
	})

	return Result{
		Issues: issues,
		Total:  len(issues),
		Clean:  len(issues) == 0,
	}
}

// Rules lists the available checks without running any of them.
func (a *Analyzer) Rules() []RuleInfo {
	infos := make([]RuleInfo, 0, len(a.rules))
	for _, d := range a.rules {
		infos = append(infos, RuleInfo{ID: d.ID, Label: d.Label})
	}
	return infos
}

func (a *Analyzer) selectRules(ruleIDs []string) []rule.Descriptor {
	if len(ruleIDs) == 0 {
		return a.rules
	}
	requested := make(map[string]bool, len(ruleIDs))
	for _, id := range ruleIDs {
		requested[id] = true
	}
	var selected []rule.Descriptor
	for _, d := range a.rules {
		if requested[d.ID] {
			selected = append(selected, d)
		}
	}
	return selected
}

// Format renders a result as a human-readable report for terminals.
func Format(res Result) string {
	if res.Clean {
		return "No issues found. Code looks good."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d issue(s):\n", res.Total)
	for _, issue := range res.Issues {
		fmt.Fprintf(&b, "  line %d, col %d [%s]: %s\n", issue.Line, issue.Column, issue.RuleID, issue.Message)
		if issue.Suggestion != "" {
			fmt.Fprintf(&b, "    suggested fix: use %q\n", issue.Suggestion)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
