package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCatExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	out, err := runCmd(t, "cat", path)
	if err != nil {
		t.Fatalf("cat failed: %v", err)
	}
	if out != "hello" {
		t.Errorf("output = %q, want %q", out, "hello")
	}
}

func TestCatMissingStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	out, err := runCmd(t, "cat", path)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("strict cat must not create the file")
	}
	if !bytes.Contains([]byte(out), []byte("load failed")) {
		t.Errorf("diagnostics not written to the command's error stream: %q", out)
	}
}

func TestCatCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	out, err := runCmd(t, "cat", "--create", path)
	if err != nil {
		t.Fatalf("cat --create failed: %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		t.Fatalf("file was not created: %v", statErr)
	}
	if info.Size() != 0 {
		t.Errorf("created file should be empty, got %d bytes", info.Size())
	}
}

func TestCatMultipleHeaders(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	for p, c := range map[string]string{a: "alpha\n", b: "beta\n"} {
		if err := os.WriteFile(p, []byte(c), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	out, err := runCmd(t, "cat", a, b)
	if err != nil {
		t.Fatalf("cat failed: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("==> ")) {
		t.Errorf("expected per-file headers in output, got %q", out)
	}
}
