// Package casepack loads ordered test case bundles for batch execution.
//
// A pack is a tar archive compressed with zstd. Each test case is a pair of
// entries sharing a base name: "<name>.in" holds the stdin text and
// "<name>.ans" the expected output. Cases are ordered by base name.
package casepack

import (
	"archive/tar"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"minijudge/internal/judge/runner"
	appErr "minijudge/pkg/errors"

	"github.com/klauspost/compress/zstd"
)

const (
	inputSuffix  = ".in"
	answerSuffix = ".ans"
)

// Load reads a pack file from disk.
func Load(path string) ([]runner.TestCase, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, appErr.Wrapf(err, appErr.CasePackInvalid, "open case pack failed")
	}
	defer file.Close()
	return Read(file)
}

// Read decodes a pack from a stream.
func Read(r io.Reader) ([]runner.TestCase, error) {
	zstdReader, err := zstd.NewReader(r)
	if err != nil {
		return nil, appErr.Wrapf(err, appErr.CasePackInvalid, "create zstd reader failed")
	}
	defer zstdReader.Close()

	type pair struct {
		stdin     string
		answer    string
		hasStdin  bool
		hasAnswer bool
	}
	pairs := make(map[string]*pair)

	tr := tar.NewReader(zstdReader)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, appErr.Wrapf(err, appErr.CasePackInvalid, "read tar entry failed")
		}
		if hdr.Typeflag != tar.TypeReg || hdr.Name == "" {
			continue
		}
		cleanName := filepath.Clean(hdr.Name)
		if strings.HasPrefix(cleanName, "..") || filepath.IsAbs(cleanName) {
			return nil, appErr.New(appErr.CasePackInvalid).WithMessage("invalid tar entry path")
		}

		base, isInput := splitEntryName(filepath.Base(cleanName))
		if base == "" {
			continue
		}
		content, err := io.ReadAll(tr)
		if err != nil {
			return nil, appErr.Wrapf(err, appErr.CasePackInvalid, "read tar entry content failed")
		}

		p, ok := pairs[base]
		if !ok {
			p = &pair{}
			pairs[base] = p
		}
		if isInput {
			p.stdin = string(content)
			p.hasStdin = true
		} else {
			p.answer = string(content)
			p.hasAnswer = true
		}
	}

	names := make([]string, 0, len(pairs))
	for name, p := range pairs {
		if !p.hasAnswer {
			return nil, appErr.Newf(appErr.CasePackInvalid, "case %q has no %s entry", name, answerSuffix)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	cases := make([]runner.TestCase, 0, len(names))
	for _, name := range names {
		p := pairs[name]
		cases = append(cases, runner.TestCase{
			Stdin:          p.stdin,
			ExpectedOutput: p.answer,
		})
	}
	return cases, nil
}

// splitEntryName returns the case base name and whether the entry is an
// input file. Entries with other suffixes are skipped.
func splitEntryName(name string) (string, bool) {
	switch {
	case strings.HasSuffix(name, inputSuffix):
		return strings.TrimSuffix(name, inputSuffix), true
	case strings.HasSuffix(name, answerSuffix):
		return strings.TrimSuffix(name, answerSuffix), false
	default:
		return "", false
	}
}
