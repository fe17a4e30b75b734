// Package engine executes a single command under a wall-clock deadline.
//
// The engine runs programs directly on the host. Callers must treat it as
// trusted-environment only: the deadline and output caps bound runaway
// programs, nothing isolates them.
package engine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"
	"time"

	appErr "minijudge/pkg/errors"
)

const defaultOutputMaxBytes int64 = 64 * 1024

// Request describes one command execution.
type Request struct {
	Cmd      []string
	Dir      string
	Env      []string // appended to the parent environment
	Stdin    string
	Deadline time.Duration
}

// Result captures raw execution data.
type Result struct {
	ExitCode        int
	Stdout          string
	Stderr          string
	TimeMs          int64
	TimedOut        bool
	StdoutTruncated bool
	StderrTruncated bool
}

// Engine runs one command to completion or until its deadline.
type Engine interface {
	Run(ctx context.Context, req Request) (Result, error)
}

// Config holds engine settings.
type Config struct {
	OutputMaxBytes int64
}

type localEngine struct {
	cfg Config
}

// New creates a host-process engine.
func New(cfg Config) Engine {
	if cfg.OutputMaxBytes <= 0 {
		cfg.OutputMaxBytes = defaultOutputMaxBytes
	}
	return &localEngine{cfg: cfg}
}

func (e *localEngine) Run(ctx context.Context, req Request) (Result, error) {
	if len(req.Cmd) == 0 {
		return Result{}, appErr.ValidationError("cmd", "required")
	}

	cmd := exec.Command(req.Cmd[0], req.Cmd[1:]...)
	cmd.Dir = req.Dir
	if len(req.Env) > 0 {
		cmd.Env = append(os.Environ(), req.Env...)
	}
	cmd.Stdin = strings.NewReader(req.Stdin)

	stdout := newCappedBuffer(e.cfg.OutputMaxBytes)
	stderr := newCappedBuffer(e.cfg.OutputMaxBytes)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	setProcessGroup(cmd)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Result{}, appErr.Wrapf(err, appErr.JudgeSystemError, "start process failed")
	}

	var timedOut atomic.Bool
	done := make(chan struct{})
	go func() {
		var deadline <-chan time.Time
		if req.Deadline > 0 {
			deadline = time.After(req.Deadline)
		}
		select {
		case <-ctx.Done():
			killProcessGroup(cmd.Process.Pid)
		case <-deadline:
			timedOut.Store(true)
			killProcessGroup(cmd.Process.Pid)
		case <-done:
		}
	}()

	waitErr := cmd.Wait()
	close(done)

	res := Result{
		ExitCode:        exitCodeFromWait(waitErr, cmd),
		Stdout:          stdout.String(),
		Stderr:          stderr.String(),
		TimeMs:          time.Since(start).Milliseconds(),
		TimedOut:        timedOut.Load(),
		StdoutTruncated: stdout.truncated,
		StderrTruncated: stderr.truncated,
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return res, appErr.Wrapf(waitErr, appErr.JudgeSystemError, "wait process failed")
		}
	}
	return res, nil
}

func exitCodeFromWait(waitErr error, cmd *exec.Cmd) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if waitErr != nil {
		return -1
	}
	return 0
}

// cappedBuffer keeps at most max bytes and flags when it overflowed. Writes
// never fail so the child process is not disturbed by a full buffer.
type cappedBuffer struct {
	buf       bytes.Buffer
	max       int64
	truncated bool
}

func newCappedBuffer(max int64) *cappedBuffer {
	return &cappedBuffer{max: max}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	room := b.max - int64(b.buf.Len())
	if room <= 0 {
		b.truncated = true
		return len(p), nil
	}
	if int64(len(p)) > room {
		b.buf.Write(p[:room])
		b.truncated = true
		return len(p), nil
	}
	b.buf.Write(p)
	return len(p), nil
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
