package filesystem_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/ngfc/internal/adapters/filesystem"
)

func TestWorkspaceAdapter_DirectoryOperations(t *testing.T) {
	tmpDir := t.TempDir()
	adapter, err := filesystem.NewWorkspaceAdapter(tmpDir)
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	ctx := context.Background()
	testDir := filepath.Join(tmpDir, "test-dir")

	// Directory should not exist initially
	exists, err := adapter.DirectoryExists(ctx, testDir)
	if err != nil {
		t.Fatalf("DirectoryExists failed: %v", err)
	}
	if exists {
		t.Error("expected directory to not exist")
	}

	if err := adapter.CreateDirectory(ctx, testDir); err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}

	exists, err = adapter.DirectoryExists(ctx, testDir)
	if err != nil {
		t.Fatalf("DirectoryExists failed: %v", err)
	}
	if !exists {
		t.Error("expected directory to exist")
	}

	// Creating it again must fail
	err = adapter.CreateDirectory(ctx, testDir)
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("second CreateDirectory error = %v, want os.ErrExist", err)
	}
}

func TestWorkspaceAdapter_FileOperations(t *testing.T) {
	tmpDir := t.TempDir()
	adapter, err := filesystem.NewWorkspaceAdapter(tmpDir)
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}
	ctx := context.Background()
	path := filepath.Join(tmpDir, "a.ts")

	if err := adapter.CreateFile(ctx, path, []byte("one")); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}
	if err := adapter.CreateFile(ctx, path, []byte("two")); !errors.Is(err, os.ErrExist) {
		t.Errorf("second CreateFile error = %v, want os.ErrExist", err)
	}

	content, err := adapter.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "one" {
		t.Errorf("content = %q, want %q", content, "one")
	}

	if err := adapter.WriteFile(ctx, path, []byte("three")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	content, _ = adapter.ReadFile(ctx, path)
	if string(content) != "three" {
		t.Errorf("content after write = %q", content)
	}

	if err := adapter.WriteFile(ctx, filepath.Join(tmpDir, "missing.ts"), nil); err == nil {
		t.Error("expected WriteFile to fail for a missing file")
	}

	exists, err := adapter.FileExists(ctx, path)
	if err != nil || !exists {
		t.Errorf("FileExists = %v, %v; want true", exists, err)
	}
	exists, _ = adapter.FileExists(ctx, tmpDir)
	if exists {
		t.Error("FileExists should be false for a directory")
	}
}

func TestWorkspaceAdapter_ListMatching(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"b.module.ts", "a.module.ts", "a.component.ts", "notes.md"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "dir.module.ts"), 0755); err != nil {
		t.Fatal(err)
	}

	adapter, _ := filesystem.NewWorkspaceAdapter(tmpDir)
	got, err := adapter.ListMatching(context.Background(), tmpDir, "*.module.ts")
	if err != nil {
		t.Fatalf("ListMatching failed: %v", err)
	}

	want := []string{filepath.Join(tmpDir, "a.module.ts"), filepath.Join(tmpDir, "b.module.ts")}
	if len(got) != len(want) {
		t.Fatalf("ListMatching = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListMatching[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if _, err := adapter.ListMatching(context.Background(), tmpDir, "[.module.ts"); err == nil {
		t.Error("expected invalid pattern error")
	}
}

func TestWorkspaceAdapter_Roots(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	adapter, _ := filesystem.NewWorkspaceAdapter(root, other)

	if !adapter.InWorkspace(filepath.Join(root, "src", "app")) {
		t.Error("expected nested path to be in workspace")
	}
	if !adapter.InWorkspace(root) {
		t.Error("expected root to be in workspace")
	}
	if adapter.InWorkspace(filepath.Dir(root)) {
		t.Error("expected parent of root to be outside the workspace")
	}

	if err := os.WriteFile(filepath.Join(other, "only-here.ts"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if got := adapter.ResolvePath("only-here.ts"); got != filepath.Join(other, "only-here.ts") {
		t.Errorf("ResolvePath = %q, want file in second root", got)
	}
	if got := adapter.ResolvePath("nowhere.ts"); got != filepath.Join(root, "nowhere.ts") {
		t.Errorf("ResolvePath = %q, want first root", got)
	}
}
