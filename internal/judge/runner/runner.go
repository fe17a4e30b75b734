// Package runner implements the execution state machine of the judge:
// Received -> Materialized -> (Compiled | skip) -> Running -> terminal.
package runner

import (
	"context"
	"os"
	"strings"
	"time"

	"minijudge/internal/judge/engine"
	"minijudge/internal/judge/profile"
	"minijudge/internal/judge/result"
	"minijudge/internal/judge/workspace"
	appErr "minijudge/pkg/errors"
	"minijudge/pkg/utils/logger"

	"github.com/google/shlex"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultRunTimeout     = 5 * time.Second
	defaultCompileTimeout = 10 * time.Second
	defaultBatchWorkers   = 4
)

// Request describes one execution of submitted source code.
type Request struct {
	Source         string
	Language       string
	Stdin          string
	ExpectedOutput *string       // nil: no comparison
	Timeout        time.Duration // 0: default run deadline
}

// TestCase is one stdin/expected-output pair for batch mode.
type TestCase struct {
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output"`
}

// Config holds runner settings.
type Config struct {
	WorkRoot       string
	RunTimeout     time.Duration
	CompileTimeout time.Duration
	BatchWorkers   int
}

// Runner executes submissions against the language profile table.
// It holds no per-request state; concurrent use is safe.
type Runner struct {
	eng   engine.Engine
	table *profile.Table
	cfg   Config
}

// New creates a runner. Zero config fields fall back to defaults.
func New(eng engine.Engine, table *profile.Table, cfg Config) *Runner {
	if cfg.WorkRoot == "" {
		cfg.WorkRoot = os.TempDir()
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = defaultRunTimeout
	}
	if cfg.CompileTimeout <= 0 {
		cfg.CompileTimeout = defaultCompileTimeout
	}
	if cfg.BatchWorkers <= 0 {
		cfg.BatchWorkers = defaultBatchWorkers
	}
	return &Runner{eng: eng, table: table, cfg: cfg}
}

// Languages returns the supported language identifiers.
func (r *Runner) Languages() []string {
	return r.table.IDs()
}

// Execute runs one submission. An unknown language fails fast before any
// file is materialized; compile rejection, timeout and non-zero program
// exit are structured results, not errors.
func (r *Runner) Execute(ctx context.Context, req Request) (result.ExecutionResult, error) {
	lang, err := r.table.Get(req.Language)
	if err != nil {
		return result.ExecutionResult{}, err
	}

	ws, err := workspace.New(r.cfg.WorkRoot, lang.SourceFile, req.Source)
	if err != nil {
		return result.ExecutionResult{}, appErr.Wrapf(err, appErr.JudgeSystemError, "materialize source failed")
	}
	defer ws.Release(ctx)

	if lang.CompileEnabled {
		compileRes, err := r.compile(ctx, lang, ws)
		if err != nil {
			return result.ExecutionResult{}, err
		}
		if compileRes != nil {
			return *compileRes, nil
		}
	}

	return r.runCase(ctx, lang, ws, req.Stdin, req.ExpectedOutput, req.Timeout)
}

// ExecuteBatch evaluates every test case against one submission. Compiled
// languages compile once and run many; a compile rejection short-circuits
// all cases to the same diagnostic. Cases run concurrently under a worker
// limit, and results keep input order regardless of completion order.
func (r *Runner) ExecuteBatch(ctx context.Context, source, language string, cases []TestCase) (result.BatchResult, error) {
	lang, err := r.table.Get(language)
	if err != nil {
		return result.BatchResult{}, err
	}

	batch := result.BatchResult{
		Cases: make([]result.ExecutionResult, len(cases)),
		Total: len(cases),
	}
	if len(cases) == 0 {
		return batch, nil
	}

	ws, err := workspace.New(r.cfg.WorkRoot, lang.SourceFile, source)
	if err != nil {
		return result.BatchResult{}, appErr.Wrapf(err, appErr.JudgeSystemError, "materialize source failed")
	}
	defer ws.Release(ctx)

	if lang.CompileEnabled {
		compileRes, err := r.compile(ctx, lang, ws)
		if err != nil {
			return result.BatchResult{}, err
		}
		if compileRes != nil {
			for i := range batch.Cases {
				batch.Cases[i] = *compileRes
			}
			return batch, nil
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.BatchWorkers)
	for i, tc := range cases {
		if gctx.Err() != nil {
			break
		}
		expected := tc.ExpectedOutput
		stdin := tc.Stdin
		idx := i
		g.Go(func() error {
			res, err := r.runCase(gctx, lang, ws, stdin, &expected, 0)
			if err != nil {
				return err
			}
			batch.Cases[idx] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result.BatchResult{}, err
	}

	for _, res := range batch.Cases {
		if res.Matched != nil && *res.Matched {
			batch.Passed++
		}
	}
	return batch, nil
}

// compile runs the compile command under its own deadline. It returns a
// non-nil terminal result when compilation did not produce a runnable
// artifact, and (nil, nil) when the run stage may proceed.
func (r *Runner) compile(ctx context.Context, lang profile.LanguageSpec, ws *workspace.Workspace) (*result.ExecutionResult, error) {
	argv, err := buildCommand(lang.CompileCmdTpl, lang, ws)
	if err != nil {
		return nil, err
	}

	engRes, err := r.eng.Run(ctx, engine.Request{
		Cmd:      argv,
		Dir:      ws.Dir,
		Env:      lang.Env,
		Deadline: r.cfg.CompileTimeout,
	})
	if err != nil {
		return nil, err
	}

	if engRes.TimedOut {
		res := terminalResult(result.StageCompile, result.StatusTimedOut, engRes)
		return &res, nil
	}
	if engRes.ExitCode != 0 {
		res := terminalResult(result.StageCompile, result.StatusFailed, engRes)
		return &res, nil
	}
	if lang.BinaryFile != "" {
		if _, statErr := os.Stat(ws.ArtifactPath(lang.BinaryFile)); statErr != nil {
			logger.Warn(ctx, "compiler exited zero but artifact is missing",
				zap.String("language", lang.ID),
				zap.String("artifact", lang.BinaryFile),
			)
			res := terminalResult(result.StageCompile, result.StatusFailed, engRes)
			return &res, nil
		}
	}
	return nil, nil
}

func (r *Runner) runCase(ctx context.Context, lang profile.LanguageSpec, ws *workspace.Workspace, stdin string, expected *string, timeout time.Duration) (result.ExecutionResult, error) {
	argv, err := buildCommand(lang.RunCmdTpl, lang, ws)
	if err != nil {
		return result.ExecutionResult{}, err
	}
	if timeout <= 0 {
		timeout = r.cfg.RunTimeout
	}

	engRes, err := r.eng.Run(ctx, engine.Request{
		Cmd:      argv,
		Dir:      ws.Dir,
		Env:      lang.Env,
		Stdin:    stdin,
		Deadline: timeout,
	})
	if err != nil {
		return result.ExecutionResult{}, err
	}

	if engRes.TimedOut {
		return terminalResult(result.StageRun, result.StatusTimedOut, engRes), nil
	}

	res := terminalResult(result.StageRun, result.StatusCompleted, engRes)
	if expected != nil {
		matched, detail := compareOutput(engRes.Stdout, *expected)
		res.Matched = &matched
		res.Match = &detail
	}
	return res, nil
}

func terminalResult(stage result.Stage, status result.Status, engRes engine.Result) result.ExecutionResult {
	return result.ExecutionResult{
		Stage:           stage,
		Status:          status,
		ExitCode:        engRes.ExitCode,
		Stdout:          engRes.Stdout,
		Stderr:          engRes.Stderr,
		TimeMs:          engRes.TimeMs,
		StdoutTruncated: engRes.StdoutTruncated,
		StderrTruncated: engRes.StderrTruncated,
	}
}

// buildCommand expands the {src} and {bin} placeholders and splits the
// template into an argument vector. Templates never pass through a shell.
func buildCommand(tpl string, lang profile.LanguageSpec, ws *workspace.Workspace) ([]string, error) {
	if strings.TrimSpace(tpl) == "" {
		return nil, appErr.New(appErr.InvalidParams).WithMessage("command template is required")
	}
	expanded := strings.ReplaceAll(tpl, "{src}", ws.SourcePath)
	expanded = strings.ReplaceAll(expanded, "{bin}", ws.ArtifactPath(binaryName(lang)))
	fields, err := shlex.Split(expanded)
	if err != nil {
		return nil, appErr.Wrapf(err, appErr.InvalidParams, "parse command template failed")
	}
	if len(fields) == 0 {
		return nil, appErr.New(appErr.InvalidParams).WithMessage("command is empty after expansion")
	}
	return fields, nil
}

func binaryName(lang profile.LanguageSpec) string {
	if lang.BinaryFile != "" {
		return lang.BinaryFile
	}
	return lang.SourceFile
}
