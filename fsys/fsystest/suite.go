// Package fsystest provides a conformance test suite for validating
// filesystem implementations against the fsys.FS contract.
//
// Implementation packages import it and run the suite against a fresh
// filesystem per invocation:
//
//	func TestMemFS(t *testing.T) {
//	    fsystest.TestSuite(t, func() fsys.FS {
//	        return billy.NewInMemoryFS()
//	    })
//	}
package fsystest

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/forgekit/textfile/fsys"
)

// TestSuite runs all conformance tests against a filesystem. The newFS
// function should return a fresh, empty filesystem for each test; tests
// create and modify files, so each invocation should start clean.
func TestSuite(t *testing.T, newFS func() fsys.FS) {
	t.Run("WriteRead", func(t *testing.T) { testWriteRead(t, newFS()) })
	t.Run("Create", func(t *testing.T) { testCreate(t, newFS()) })
	t.Run("OpenReadsContent", func(t *testing.T) { testOpenReadsContent(t, newFS()) })
	t.Run("OpenNotExist", func(t *testing.T) { testOpenNotExist(t, newFS()) })
	t.Run("Exists", func(t *testing.T) { testExists(t, newFS()) })
	t.Run("StatNotExist", func(t *testing.T) { testStatNotExist(t, newFS()) })
	t.Run("Remove", func(t *testing.T) { testRemove(t, newFS()) })
	t.Run("MkdirAll", func(t *testing.T) { testMkdirAll(t, newFS()) })
}

func testWriteRead(t *testing.T, filesystem fsys.FS) {
	t.Helper()
	if err := filesystem.WriteFile("file.txt", []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	b, err := filesystem.ReadFile("file.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(b) != "hello" {
		t.Errorf("ReadFile = %q, want %q", string(b), "hello")
	}
}

func testCreate(t *testing.T, filesystem fsys.FS) {
	t.Helper()
	f, err := filesystem.Create("new.txt")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := f.Write([]byte("abc")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Create must truncate an existing file.
	f2, err := filesystem.Create("new.txt")
	if err != nil {
		t.Fatalf("Create (truncate) failed: %v", err)
	}
	_ = f2.Close()
	b, err := filesystem.ReadFile("new.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(b) != 0 {
		t.Errorf("expected truncated file, got %d bytes", len(b))
	}
}

func testOpenReadsContent(t *testing.T, filesystem fsys.FS) {
	t.Helper()
	if err := filesystem.WriteFile("open.txt", []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	f, err := filesystem.Open("open.txt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(b) != "content" {
		t.Errorf("read %q, want %q", string(b), "content")
	}
}

func testOpenNotExist(t *testing.T, filesystem fsys.FS) {
	t.Helper()
	_, err := filesystem.Open("does-not-exist.txt")
	if err == nil {
		t.Fatalf("Open succeeded on missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open error = %v, want chain containing fs.ErrNotExist", err)
	}
}

func testExists(t *testing.T, filesystem fsys.FS) {
	t.Helper()
	ok, err := filesystem.Exists("absent.txt")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Errorf("Exists(absent.txt) = true, want false")
	}
	if err := filesystem.WriteFile("present.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	ok, err = filesystem.Exists("present.txt")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !ok {
		t.Errorf("Exists(present.txt) = false, want true")
	}
}

func testStatNotExist(t *testing.T, filesystem fsys.FS) {
	t.Helper()
	_, err := filesystem.Stat("absent.txt")
	if err == nil {
		t.Fatalf("Stat succeeded on missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat error = %v, want chain containing fs.ErrNotExist", err)
	}
}

func testRemove(t *testing.T, filesystem fsys.FS) {
	t.Helper()
	if err := filesystem.WriteFile("gone.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := filesystem.Remove("gone.txt"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	ok, err := filesystem.Exists("gone.txt")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Errorf("file still exists after Remove")
	}
}

func testMkdirAll(t *testing.T, filesystem fsys.FS) {
	t.Helper()
	if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := filesystem.WriteFile("a/b/c/f.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile in nested dir failed: %v", err)
	}
	info, err := filesystem.Stat("a/b")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected directory, got file: %v", info.Name())
	}
}
