// Package result defines execution outcomes reported by the judge runner.
package result

// Stage identifies how far an execution attempt got.
type Stage string

const (
	StageCompile Stage = "compile"
	StageRun     Stage = "run"
)

// Status is the terminal state of an execution attempt.
type Status string

const (
	// StatusCompleted means the process exited within the deadline.
	// Any exit code counts: a non-zero program exit is a grading outcome,
	// not a judge failure.
	StatusCompleted Status = "Completed"
	// StatusFailed means the attempt could not produce a run, e.g. the
	// compiler rejected the source.
	StatusFailed Status = "Failed"
	// StatusTimedOut means the process was forcibly terminated at the
	// deadline.
	StatusTimedOut Status = "TimedOut"
)

// LineDiff is one line-level difference between actual and expected output.
type LineDiff struct {
	Line     int    `json:"line"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// MatchDetail explains an output comparison.
type MatchDetail struct {
	Exact     bool       `json:"exact"`
	LineDiffs []LineDiff `json:"line_diffs,omitempty"`
}

// ExecutionResult is the structured verdict of one execution attempt.
type ExecutionResult struct {
	Stage           Stage        `json:"stage"`
	Status          Status       `json:"status"`
	ExitCode        int          `json:"exit_code"`
	Stdout          string       `json:"stdout"`
	Stderr          string       `json:"stderr"`
	TimeMs          int64        `json:"time_ms"`
	Matched         *bool        `json:"matched,omitempty"` // nil when no expected output was supplied
	Match           *MatchDetail `json:"match,omitempty"`
	StdoutTruncated bool         `json:"stdout_truncated,omitempty"`
	StderrTruncated bool         `json:"stderr_truncated,omitempty"`
}

// BatchResult holds one result per test case, in input order.
type BatchResult struct {
	Cases  []ExecutionResult `json:"cases"`
	Passed int               `json:"passed"`
	Total  int               `json:"total"`
}
