package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JoshEngebretson/duktape/snapshot"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// writeProject writes a manifest and build parameters into a temp directory
// and returns the manifest path.
func writeProject(t *testing.T, output string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"genbuiltins.toml": "[output]\nheader = \"out/duk_builtins.h\"\nsource = \"out/duk_builtins.c\"\n" + output,
		"buildparams.json": `{"version": "10500", "build": "2014-01-01"}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir, filepath.Join(dir, "genbuiltins.toml")
}

// run executes the CLI with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"genbuiltins", "--verbosity", "-1"}, args...))
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("genbuiltins %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestSeedBuildVerify(t *testing.T) {
	dir, cfg := writeProject(t, "summary = \"out/summary.cbor\"\n")

	mustRun(t, "--config", cfg, "seed-strings")
	if _, err := os.Stat(filepath.Join(dir, "strings.toml")); err != nil {
		t.Fatalf("string table not written: %v", err)
	}

	mustRun(t, "--config", cfg, "build")
	header, err := os.ReadFile(filepath.Join(dir, "out", "duk_builtins.h"))
	if err != nil {
		t.Fatalf("reading header: %v", err)
	}
	source, err := os.ReadFile(filepath.Join(dir, "out", "duk_builtins.c"))
	if err != nil {
		t.Fatalf("reading source: %v", err)
	}
	for _, want := range []string{
		"#define DUK_NUM_BUILTINS 43\n",
		"#define DUK_BIDX_GLOBAL 0\n",
		"#define DUK_BIDX_DUK ",
		"#elif defined(DUK_USE_DOUBLE_ME)\n",
	} {
		if !strings.Contains(string(header), want) {
			t.Errorf("header missing %q", want)
		}
	}
	if !strings.Contains(string(source), "char duk_builtins_data[] = {") {
		t.Error("source missing init data")
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "summary.cbor"))
	if err != nil {
		t.Fatalf("reading summary: %v", err)
	}
	s, err := snapshot.UnmarshalSummary(data)
	if err != nil {
		t.Fatalf("decoding summary: %v", err)
	}
	if s.Version != 10500 || s.Build != "2014-01-01" {
		t.Errorf("summary build info = %d %q", s.Version, s.Build)
	}
	if len(s.Variants) != 3 {
		t.Errorf("summary variants = %d, want 3", len(s.Variants))
	}

	out := mustRun(t, "--config", cfg, "verify")
	for _, order := range []string{"little", "big", "middle"} {
		if !strings.Contains(out, order) {
			t.Errorf("verify output missing %s:\n%s", order, out)
		}
	}

	out = mustRun(t, "--config", cfg, "summary")
	if !strings.Contains(out, `version 10500, build "2014-01-01"`) {
		t.Errorf("summary output:\n%s", out)
	}
}

func TestBuildDefaultAction(t *testing.T) {
	dir, cfg := writeProject(t, "byte-orders = [\"big\"]\n")
	mustRun(t, "--config", cfg, "seed-strings")
	mustRun(t, "--config", cfg)

	header, err := os.ReadFile(filepath.Join(dir, "out", "duk_builtins.h"))
	if err != nil {
		t.Fatalf("reading header: %v", err)
	}
	if !strings.Contains(string(header), "#if defined(DUK_USE_DOUBLE_BE)\n") {
		t.Error("expected a big-endian only header")
	}
	if strings.Contains(string(header), "#elif") {
		t.Error("unexpected extra variants")
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "summary.cbor")); !os.IsNotExist(err) {
		t.Error("summary written without being configured")
	}
}

func TestBuildFlagOverrides(t *testing.T) {
	dir, cfg := writeProject(t, "")
	mustRun(t, "--config", cfg, "seed-strings")

	other := filepath.Join(t.TempDir(), "b.h")
	mustRun(t, "--config", cfg, "build", "--header", other, "--byte-order", "middle", "--tag-byte-order")
	header, err := os.ReadFile(other)
	if err != nil {
		t.Fatalf("reading overridden header: %v", err)
	}
	if !strings.Contains(string(header), "DUK_USE_DOUBLE_ME") || strings.Contains(string(header), "DUK_USE_DOUBLE_LE") {
		t.Errorf("byte order override not applied:\n%s", header)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "duk_builtins.h")); !os.IsNotExist(err) {
		t.Error("manifest header path written despite override")
	}
}

func TestBuildMissingStrings(t *testing.T) {
	dir, cfg := writeProject(t, "")
	if _, err := run(t, "--config", cfg, "build"); err == nil {
		t.Fatal("expected error without a string table")
	}
	if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
		t.Error("output directory created by a failed build")
	}
}

func TestBuildIncompleteStrings(t *testing.T) {
	dir, cfg := writeProject(t, "")
	if err := os.WriteFile(filepath.Join(dir, "strings.toml"), []byte("strings = [\"length\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "--config", cfg, "build")
	if err == nil {
		t.Fatal("expected error for missing strings")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error = %v, want a missing string error", err)
	}
}

func TestSeedStringsExtend(t *testing.T) {
	dir, cfg := writeProject(t, "")
	table := filepath.Join(dir, "strings.toml")
	if err := os.WriteFile(table, []byte("strings = [\"zzz\", \"length\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := mustRun(t, "--config", cfg, "seed-strings", "--extend", "--stdout")
	if !strings.HasPrefix(strings.TrimSpace(out), `strings = ["zzz", "length", `) {
		t.Errorf("extended table does not keep existing order:\n%.200s", out)
	}
}

func TestSummaryWithoutFile(t *testing.T) {
	_, cfg := writeProject(t, "")
	if _, err := run(t, "--config", cfg, "summary"); err == nil {
		t.Fatal("expected error when no summary is configured")
	}
}
