package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"minijudge/internal/judge/casepack"
	"minijudge/internal/judge/runner"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
)

// Session is the interactive REPL over the judge HTTP API.
type Session struct {
	client     *Client
	prettyJSON bool
}

// NewSession creates a REPL session.
func NewSession(client *Client, prettyJSON bool) *Session {
	return &Session{client: client, prettyJSON: prettyJSON}
}

// Run reads commands until EOF or an exit command.
func (s *Session) Run(ctx context.Context) error {
	rl, err := readline.New("minijudge> ")
	if err != nil {
		return fmt.Errorf("init readline failed: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input failed: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			fmt.Println("bye")
			return nil
		}

		if err := s.handleCommand(ctx, line); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func (s *Session) handleCommand(ctx context.Context, line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("parse command failed: %w", err)
	}
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "help":
		s.printHelp()
		return nil
	case "set":
		return s.handleSet(args[1:])
	case "show":
		return s.handleShow(args[1:])
	case "rules":
		return s.printResponse(s.client.Get(ctx, "/api/v1/rules"))
	case "languages":
		return s.printResponse(s.client.Get(ctx, "/api/v1/languages"))
	case "analyze":
		return s.handleAnalyze(ctx, args[1:])
	case "run":
		return s.handleRun(ctx, args[1:])
	case "test":
		return s.handleTest(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q, try help", args[0])
	}
}

func (s *Session) handleSet(args []string) error {
	if len(args) != 2 || args[0] != "base" {
		return errors.New("usage: set base <url>")
	}
	s.client.SetBaseURL(args[1])
	return nil
}

func (s *Session) handleShow(args []string) error {
	if len(args) != 1 || args[0] != "base" {
		return errors.New("usage: show base")
	}
	fmt.Println(s.client.BaseURL())
	return nil
}

func (s *Session) handleAnalyze(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: analyze <source-file> [rule ...]")
	}
	code, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read source file failed: %w", err)
	}
	payload := map[string]interface{}{"code": string(code)}
	if len(args) > 1 {
		payload["rules"] = args[1:]
	}
	return s.printResponse(s.client.PostJSON(ctx, "/api/v1/analyze/formatted", payload))
}

func (s *Session) handleRun(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 4 {
		return errors.New("usage: run <source-file> <language> [input-file] [expected-file]")
	}
	code, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read source file failed: %w", err)
	}
	payload := map[string]interface{}{
		"code":     string(code),
		"language": args[1],
	}
	if len(args) >= 3 {
		stdin, err := os.ReadFile(args[2])
		if err != nil {
			return fmt.Errorf("read input file failed: %w", err)
		}
		payload["stdin"] = string(stdin)
	}
	if len(args) == 4 {
		expected, err := os.ReadFile(args[3])
		if err != nil {
			return fmt.Errorf("read expected file failed: %w", err)
		}
		payload["expected_output"] = string(expected)
	}
	return s.printResponse(s.client.PostJSON(ctx, "/api/v1/run", payload))
}

func (s *Session) handleTest(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: test <source-file> <language> <pack.tar.zst>")
	}
	code, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read source file failed: %w", err)
	}
	cases, err := casepack.Load(args[2])
	if err != nil {
		return err
	}
	payload := struct {
		Code     string            `json:"code"`
		Language string            `json:"language"`
		Cases    []runner.TestCase `json:"cases"`
	}{Code: string(code), Language: args[1], Cases: cases}
	return s.printResponse(s.client.PostJSON(ctx, "/api/v1/test", payload))
}

func (s *Session) printResponse(data []byte, err error) error {
	if err != nil {
		return err
	}
	if s.prettyJSON {
		var pretty bytes.Buffer
		if indentErr := json.Indent(&pretty, data, "", "  "); indentErr == nil {
			fmt.Println(pretty.String())
			return nil
		}
	}
	fmt.Println(string(data))
	return nil
}

func (s *Session) printHelp() {
	fmt.Print(`commands:
  rules                                              list analysis rules
  languages                                          list supported languages
  analyze <source-file> [rule ...]                   analyze a source file
  run <source-file> <language> [input] [expected]    execute a source file
  test <source-file> <language> <pack.tar.zst>       run a case pack
  set base <url> / show base                         service address
  help / exit
`)
}
