package engine

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunEcho(t *testing.T) {
	requireShell(t)
	eng := New(Config{})

	res, err := eng.Run(context.Background(), Request{
		Cmd:      []string{"sh", "-c", "echo hello"},
		Deadline: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if res.Stdout != "hello\n" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "hello\n")
	}
	if res.TimedOut {
		t.Error("unexpected timeout")
	}
}

func TestRunStdin(t *testing.T) {
	requireShell(t)
	eng := New(Config{})

	res, err := eng.Run(context.Background(), Request{
		Cmd:      []string{"sh", "-c", "cat"},
		Stdin:    "line one\nline two\n",
		Deadline: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Stdout != "line one\nline two\n" {
		t.Errorf("Stdout = %q", res.Stdout)
	}
}

func TestRunNonZeroExit(t *testing.T) {
	requireShell(t)
	eng := New(Config{})

	res, err := eng.Run(context.Background(), Request{
		Cmd:      []string{"sh", "-c", "echo oops >&2; exit 3"},
		Deadline: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("non-zero exit must not be an engine error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "oops") {
		t.Errorf("Stderr = %q, want it to contain oops", res.Stderr)
	}
}

func TestRunDeadlineKillsProcess(t *testing.T) {
	requireShell(t)
	eng := New(Config{})

	start := time.Now()
	res, err := eng.Run(context.Background(), Request{
		Cmd:      []string{"sh", "-c", "sleep 10"},
		Deadline: 200 * time.Millisecond,
	})
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.TimedOut {
		t.Fatal("expected TimedOut")
	}
	if elapsed > 5*time.Second {
		t.Errorf("kill took %v, deadline was 200ms", elapsed)
	}
}

func TestRunDeadlineKillsChildren(t *testing.T) {
	requireShell(t)
	eng := New(Config{})

	// The shell spawns a child; the whole process group must die with it,
	// otherwise Wait blocks on the inherited stdout pipe.
	start := time.Now()
	res, err := eng.Run(context.Background(), Request{
		Cmd:      []string{"sh", "-c", "sleep 10 & wait"},
		Deadline: 200 * time.Millisecond,
	})
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.TimedOut {
		t.Fatal("expected TimedOut")
	}
	if elapsed > 5*time.Second {
		t.Errorf("group kill took %v", elapsed)
	}
}

func TestRunContextCancel(t *testing.T) {
	requireShell(t)
	eng := New(Config{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	res, err := eng.Run(ctx, Request{
		Cmd:      []string{"sh", "-c", "sleep 10"},
		Deadline: 30 * time.Second,
	})
	if time.Since(start) > 5*time.Second {
		t.Error("cancellation did not stop the process promptly")
	}
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.TimedOut {
		t.Error("cancellation must not be reported as a timeout")
	}
	if res.ExitCode == 0 {
		t.Error("killed process reported exit code 0")
	}
}

func TestRunOutputCap(t *testing.T) {
	requireShell(t)
	eng := New(Config{OutputMaxBytes: 1024})

	res, err := eng.Run(context.Background(), Request{
		Cmd:      []string{"sh", "-c", "yes x | head -c 100000"},
		Deadline: 10 * time.Second,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.StdoutTruncated {
		t.Error("expected StdoutTruncated")
	}
	if len(res.Stdout) != 1024 {
		t.Errorf("len(Stdout) = %d, want 1024", len(res.Stdout))
	}
}

func TestRunEnvAppended(t *testing.T) {
	requireShell(t)
	eng := New(Config{})

	res, err := eng.Run(context.Background(), Request{
		Cmd:      []string{"sh", "-c", "echo $JUDGE_MARK"},
		Env:      []string{"JUDGE_MARK=ok"},
		Deadline: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Stdout != "ok\n" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "ok\n")
	}
}

func TestRunEmptyCommand(t *testing.T) {
	eng := New(Config{})
	if _, err := eng.Run(context.Background(), Request{}); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestCappedBuffer(t *testing.T) {
	b := newCappedBuffer(4)
	n, err := b.Write([]byte("abcdef"))
	if err != nil || n != 6 {
		t.Fatalf("Write = (%d, %v), want (6, nil)", n, err)
	}
	if b.String() != "abcd" {
		t.Errorf("String() = %q, want %q", b.String(), "abcd")
	}
	if !b.truncated {
		t.Error("expected truncated flag")
	}
	// Further writes are swallowed without error.
	if n, err := b.Write([]byte("gh")); err != nil || n != 2 {
		t.Errorf("Write after overflow = (%d, %v)", n, err)
	}
	if b.String() != "abcd" {
		t.Errorf("buffer grew past cap: %q", b.String())
	}
}
