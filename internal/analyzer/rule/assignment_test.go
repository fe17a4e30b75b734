package rule

import "testing"

func TestCheckAssignment(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantLen int
		wantCol int
	}{
		{name: "c style if", source: "if (x = 1) {", wantLen: 1, wantCol: 7},
		{name: "python if", source: "if x = 1:", wantLen: 1, wantCol: 6},
		{name: "while header", source: "while n = next():", wantLen: 1, wantCol: 9},
		{name: "elif header", source: "elif a = b:", wantLen: 1, wantCol: 8},
		{name: "comparison is fine", source: "if x == 1:", wantLen: 0},
		{name: "not equal is fine", source: "if x != 1:", wantLen: 0},
		{name: "lte gte fine", source: "if x <= 1 || y >= 2 {", wantLen: 0},
		{name: "walrus is fine", source: "if n := read(); n > 0 {", wantLen: 0},
		{name: "compound assign fine", source: "while x += 1:", wantLen: 0},
		{name: "plain assignment line ignored", source: "x = 1", wantLen: 0},
		{name: "inside string ignored", source: `if s == "a = b":`, wantLen: 0},
		{name: "after hash comment ignored", source: "if x == 1:  # was x = 1", wantLen: 0},
		{name: "after slash comment ignored", source: "if (x == 1) { // x = 1", wantLen: 0},
		{name: "identifier prefix not a header", source: "iframe = load()", wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkAssignment(tt.source)
			if len(issues) != tt.wantLen {
				t.Fatalf("got %d issues, want %d: %+v", len(issues), tt.wantLen, issues)
			}
			if tt.wantLen == 0 {
				return
			}
			got := issues[0]
			if got.Column != tt.wantCol {
				t.Errorf("Column = %d, want %d", got.Column, tt.wantCol)
			}
			if got.Suggestion != "==" {
				t.Errorf("Suggestion = %q, want %q", got.Suggestion, "==")
			}
			if got.RuleID != RuleAssignment {
				t.Errorf("RuleID = %q, want %q", got.RuleID, RuleAssignment)
			}
		})
	}
}
