package casepack

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

type packEntry struct {
	name    string
	content string
}

func buildPack(t *testing.T, entries []packEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	tw := tar.NewWriter(zw)
	for _, e := range entries {
		hdr := &tar.Header{
			Name:     e.name,
			Mode:     0644,
			Size:     int64(len(e.content)),
			Typeflag: tar.TypeReg,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("write header %q: %v", e.name, err)
		}
		if _, err := tw.Write([]byte(e.content)); err != nil {
			t.Fatalf("write content %q: %v", e.name, err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zstd: %v", err)
	}
	return buf.Bytes()
}

func TestReadOrdersByBaseName(t *testing.T) {
	// Archive order is scrambled on purpose; cases come back sorted.
	pack := buildPack(t, []packEntry{
		{name: "2.in", content: "second in"},
		{name: "1.ans", content: "first ans"},
		{name: "2.ans", content: "second ans"},
		{name: "1.in", content: "first in"},
	})

	cases, err := Read(bytes.NewReader(pack))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(cases))
	}
	if cases[0].Stdin != "first in" || cases[0].ExpectedOutput != "first ans" {
		t.Errorf("case 0 = %+v", cases[0])
	}
	if cases[1].Stdin != "second in" || cases[1].ExpectedOutput != "second ans" {
		t.Errorf("case 1 = %+v", cases[1])
	}
}

func TestReadMissingAnswer(t *testing.T) {
	pack := buildPack(t, []packEntry{
		{name: "1.in", content: "in"},
		{name: "1.ans", content: "ans"},
		{name: "2.in", content: "orphan"},
	})
	if _, err := Read(bytes.NewReader(pack)); err == nil {
		t.Fatal("expected error for input without answer")
	}
}

func TestReadMissingInputIsEmptyStdin(t *testing.T) {
	// An answer without input means the program reads nothing.
	pack := buildPack(t, []packEntry{{name: "1.ans", content: "ok\n"}})
	cases, err := Read(bytes.NewReader(pack))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(cases) != 1 || cases[0].Stdin != "" || cases[0].ExpectedOutput != "ok\n" {
		t.Errorf("cases = %+v", cases)
	}
}

func TestReadSkipsUnrelatedEntries(t *testing.T) {
	pack := buildPack(t, []packEntry{
		{name: "README.txt", content: "docs"},
		{name: "1.in", content: "in"},
		{name: "1.ans", content: "ans"},
	})
	cases, err := Read(bytes.NewReader(pack))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(cases) != 1 {
		t.Errorf("got %d cases, want 1", len(cases))
	}
}

func TestReadNestedDirectories(t *testing.T) {
	pack := buildPack(t, []packEntry{
		{name: "cases/1.in", content: "in"},
		{name: "cases/1.ans", content: "ans"},
	})
	cases, err := Read(bytes.NewReader(pack))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(cases) != 1 || cases[0].Stdin != "in" {
		t.Errorf("cases = %+v", cases)
	}
}

func TestReadRejectsPathEscape(t *testing.T) {
	tests := []string{"../evil.in", "/abs/evil.in"}
	for _, name := range tests {
		pack := buildPack(t, []packEntry{{name: name, content: "x"}})
		if _, err := Read(bytes.NewReader(pack)); err == nil {
			t.Errorf("entry %q accepted, want rejection", name)
		}
	}
}

func TestReadNotZstd(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("plain text, not a pack"))); err == nil {
		t.Fatal("expected error for non-zstd input")
	}
}

func TestReadEmptyPack(t *testing.T) {
	pack := buildPack(t, nil)
	cases, err := Read(bytes.NewReader(pack))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(cases) != 0 {
		t.Errorf("got %d cases, want 0", len(cases))
	}
}

func TestLoad(t *testing.T) {
	pack := buildPack(t, []packEntry{
		{name: "1.in", content: "5\n"},
		{name: "1.ans", content: "25\n"},
	})
	path := filepath.Join(t.TempDir(), "cases.tar.zst")
	if err := os.WriteFile(path, pack, 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	cases, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cases) != 1 || cases[0].ExpectedOutput != "25\n" {
		t.Errorf("cases = %+v", cases)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.tar.zst")); err == nil {
		t.Error("expected error for missing file")
	}
}
