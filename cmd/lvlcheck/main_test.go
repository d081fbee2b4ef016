package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/breakout/levels"
)

func writeLevel(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestSummarize(t *testing.T) {
	s := summarize(levels.Grid{{1, 2, 0}, {9, 3, 5}})
	want := summary{cols: 3, rows: 2, destructible: 3, solid: 1, empty: 1, unknown: 1}
	if s != want {
		t.Fatalf("summarize = %+v, want %+v", s, want)
	}
	if got := s.String(); got != "3x2  destructible=3 solid=1 empty=1 unknown=1" {
		t.Fatalf("String() = %q", got)
	}
}

func TestSummaryNothingToClear(t *testing.T) {
	s := summarize(levels.Grid{{1, 0}})
	if !strings.HasSuffix(s.String(), "(nothing to clear)") {
		t.Fatalf("String() = %q", s.String())
	}
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeLevel(t, dir, "good.lvl", "1 2\n0 3\n")
	bad := writeLevel(t, dir, "bad.lvl", "1 2\n3\n")

	var out bytes.Buffer
	if err := checkFiles(&out, []string{good}); err != nil {
		t.Fatalf("checkFiles: %v", err)
	}
	if !strings.Contains(out.String(), "good.lvl: 2x2  destructible=2 solid=1 empty=1") {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	err := checkFiles(&out, []string{good, bad, good})
	if !errors.Is(err, levels.ErrRaggedGrid) {
		t.Fatalf("err = %v, want ErrRaggedGrid", err)
	}
	if n := strings.Count(out.String(), "\n"); n != 1 {
		t.Fatalf("should stop at the first bad file, printed %d lines", n)
	}

	if err := checkFiles(&out, []string{filepath.Join(dir, "missing.lvl")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestCheckEmbedded(t *testing.T) {
	var out bytes.Buffer
	if err := checkEmbedded(&out); err != nil {
		t.Fatalf("checkEmbedded: %v", err)
	}
	for _, name := range levels.Default {
		if !strings.Contains(out.String(), name+": ") {
			t.Fatalf("missing %s in %q", name, out.String())
		}
	}
	if !strings.Contains(out.String(), "one.lvl: 15x8") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
