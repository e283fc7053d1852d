package enumerator

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/vvka-141/fsio/internal/files/filesystem"
	"github.com/vvka-141/fsio/internal/wildcard"
	"github.com/vvka-141/fsio/pkg/fsio"
)

func newTestEnumerator(t *testing.T, opts ...Option) (*Enumerator, *filesystem.AferoFileSystem) {
	t.Helper()
	fs := filesystem.NewMemoryFileSystem()
	return New(fs, wildcard.New(), opts...), fs
}

func addFile(t *testing.T, fs *filesystem.AferoFileSystem, path string) {
	t.Helper()
	if err := afero.WriteFile(fs.Fs(), path, []byte("content of "+path), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) failed: %v", path, err)
	}
}

// specimen builds the tree root/{x.txt, sub/{y.txt, z.log}}.
func specimen(t *testing.T, fs *filesystem.AferoFileSystem) {
	t.Helper()
	addFile(t, fs, "/root/x.txt")
	addFile(t, fs, "/root/sub/y.txt")
	addFile(t, fs, "/root/sub/z.log")
}

func contains(results []string, suffix string) bool {
	for _, r := range results {
		if strings.HasSuffix(r, suffix) {
			return true
		}
	}
	return false
}

func TestNew_NilArgs(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem()

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil fs", func() { New(nil, wildcard.New()) }},
		{"nil matcher", func() { New(fs, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestGetFiles_NonRecursive(t *testing.T) {
	e, fs := newTestEnumerator(t)
	specimen(t, fs)

	var results []string
	found := e.GetFiles("/root", "*.txt", false, &results)

	if !found {
		t.Fatal("GetFiles reported no entries")
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d: %v", len(results), results)
	}
	if !contains(results, "x.txt") {
		t.Errorf("Missing x.txt in %v", results)
	}
	if contains(results, "y.txt") {
		t.Error("Non-recursive listing must not descend into sub")
	}
}

func TestGetFiles_Recursive(t *testing.T) {
	e, fs := newTestEnumerator(t)
	specimen(t, fs)

	var results []string
	found := e.GetFiles("/root", "*.txt", true, &results)

	if !found {
		t.Fatal("GetFiles reported no entries")
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d: %v", len(results), results)
	}
	if !contains(results, "x.txt") || !contains(results, "sub/y.txt") {
		t.Errorf("Unexpected result set: %v", results)
	}
}

func TestGetFiles_RecursiveLogPattern(t *testing.T) {
	e, fs := newTestEnumerator(t)
	specimen(t, fs)

	var results []string
	found := e.GetFiles("/root", "*.log", true, &results)

	if !found || len(results) != 1 || !contains(results, "sub/z.log") {
		t.Errorf("Expected exactly sub/z.log, got found=%v results=%v", found, results)
	}
}

func TestGetFiles_SubdirectoriesBeforeParentFiles(t *testing.T) {
	e, fs := newTestEnumerator(t)
	specimen(t, fs)

	var results []string
	e.GetFiles("/root", "*", true, &results)

	var subIdx, rootIdx = -1, -1
	for i, r := range results {
		if strings.HasSuffix(r, "y.txt") {
			subIdx = i
		}
		if strings.HasSuffix(r, "x.txt") {
			rootIdx = i
		}
	}
	if subIdx == -1 || rootIdx == -1 {
		t.Fatalf("Missing expected entries in %v", results)
	}
	if subIdx > rootIdx {
		t.Errorf("Subdirectory files must precede the parent level's files, got %v", results)
	}
}

func TestGetFiles_DirectoriesNeverInResults(t *testing.T) {
	e, fs := newTestEnumerator(t)
	addFile(t, fs, "/root/real.txt")
	if err := fs.Fs().MkdirAll("/root/decoy.txt", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	var results []string
	e.GetFiles("/root", "*.txt", true, &results)

	if len(results) != 1 || !contains(results, "real.txt") {
		t.Errorf("Directory matching the wildcard leaked into results: %v", results)
	}
}

func TestGetFiles_HiddenDirectoriesAreWalked(t *testing.T) {
	e, fs := newTestEnumerator(t)
	addFile(t, fs, "/root/.git/config")

	var results []string
	found := e.GetFiles("/root", "*", true, &results)

	if !found || !contains(results, ".git/config") {
		t.Errorf("Dot-prefixed directories must still be recursed, got %v", results)
	}
}

func TestGetFiles_MissingBase(t *testing.T) {
	e, _ := newTestEnumerator(t)

	var results []string
	found := e.GetFiles("/nowhere", "*", true, &results)

	if found {
		t.Error("GetFiles on a missing base must report false")
	}
	if len(results) != 0 {
		t.Errorf("Expected empty results, got %v", results)
	}
}

func TestGetFiles_NoMatchesReportsFalse(t *testing.T) {
	e, fs := newTestEnumerator(t)
	specimen(t, fs)

	var results []string
	if e.GetFiles("/root", "*.exe", true, &results) {
		t.Error("GetFiles with zero matches must report false")
	}
}

func TestGetFiles_AppendsToExistingResults(t *testing.T) {
	e, fs := newTestEnumerator(t)
	specimen(t, fs)

	results := []string{"preexisting"}
	found := e.GetFiles("/root", "*.txt", false, &results)

	if !found {
		t.Fatal("Expected net-new entries")
	}
	if len(results) != 2 || results[0] != "preexisting" {
		t.Errorf("Existing entries must be preserved, got %v", results)
	}

	// A second call that finds nothing new still reports false even
	// though the container is non-empty.
	if e.GetFiles("/root", "*.bin", false, &results) {
		t.Error("Call with zero net-new results must report false")
	}
}

func TestGetFiles_NilResultsPanics(t *testing.T) {
	e, _ := newTestEnumerator(t)
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil results")
		}
	}()
	e.GetFiles("/root", "*", false, nil)
}

func TestGetFiles_NativeSeparatorsOnly(t *testing.T) {
	e, fs := newTestEnumerator(t)
	specimen(t, fs)

	var results []string
	e.GetFiles("/root", "*", true, &results)

	for _, r := range results {
		if strings.Contains(r, "\\") {
			t.Errorf("Mixed separators in %q", r)
		}
		if !strings.HasPrefix(r, "/root/") {
			t.Errorf("Result %q does not extend the normalized base", r)
		}
	}
}

func TestGetFiles_OnErrorCallback(t *testing.T) {
	var failed []string
	e, _ := newTestEnumerator(t, WithOnError(func(dir string, err error) {
		if err == nil {
			t.Error("OnError called with nil error")
		}
		failed = append(failed, dir)
	}))

	var results []string
	e.GetFiles("/nowhere", "*", true, &results)

	if len(failed) != 1 || !strings.HasPrefix(failed[0], "/nowhere") {
		t.Errorf("Expected one failed directory report, got %v", failed)
	}
}

func TestGetFilesEx_Metadata(t *testing.T) {
	e, fs := newTestEnumerator(t)
	specimen(t, fs)

	var results []fsio.DirEntry
	found := e.GetFilesEx("/root", "*.txt", true, &results)

	if !found {
		t.Fatal("GetFilesEx reported no entries")
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for _, entry := range results {
		if entry.Size == 0 {
			t.Errorf("Size not populated for %s", entry.Path)
		}
		if entry.LastWriteTime.IsZero() {
			t.Errorf("LastWriteTime not populated for %s", entry.Path)
		}
		if entry.IsDir() {
			t.Errorf("Directory leaked into Ex results: %s", entry.Path)
		}
	}
}

func TestGetFilesEx_MatchesPlainResults(t *testing.T) {
	e, fs := newTestEnumerator(t)
	specimen(t, fs)

	var plain []string
	var ex []fsio.DirEntry
	e.GetFiles("/root", "*", true, &plain)
	e.GetFilesEx("/root", "*", true, &ex)

	if len(plain) != len(ex) {
		t.Fatalf("Plain and Ex result counts differ: %d vs %d", len(plain), len(ex))
	}
	for i := range plain {
		if plain[i] != ex[i].Path {
			t.Errorf("Result %d differs: %q vs %q", i, plain[i], ex[i].Path)
		}
	}
}

func TestGetFilesEx_NonRecursive(t *testing.T) {
	e, fs := newTestEnumerator(t)
	specimen(t, fs)

	var results []fsio.DirEntry
	if !e.GetFilesEx("/root", "*.txt", false, &results) || len(results) != 1 {
		t.Errorf("Expected exactly x.txt, got %v", results)
	}
}
