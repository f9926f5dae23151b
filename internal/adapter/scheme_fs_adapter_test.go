package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	m "xcskip.dev/pkg/xcskip/internal/model"
)

func TestLocalSchemeFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSchemeFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "App.xcscheme"), "<Scheme/>\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "Other.xcscheme"), "<Scheme/>\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "Other.xcscheme")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}

		if !containsPath(visited, filepath.Join(root, "App.xcscheme")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSchemeFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "Other.xcscheme")
		writeTestFile(t, child, "<Scheme/>\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		adapter := NewLocalSchemeFSAdapter()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(t.TempDir()), true, func(string, os.FileInfo, error) error {
			return nil
		})
		if err == nil {
			t.Fatalf("Walk() expected error due to context cancellation")
		}
	})
}

func TestLocalSchemeFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSchemeFSAdapter()

	path := filepath.Join(t.TempDir(), "App.xcscheme")
	content := "<?xml version=\"1.0\"?>\n<Scheme version = \"1.7\"/>\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}

	if _, err := adapter.ReadFile(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing"))); err == nil {
		t.Fatalf("ReadFile() expected error for missing file")
	}
}

func TestLocalSchemeFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSchemeFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "App.xcscheme")
	writeTestFile(t, path, "<Scheme/>\n")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSchemeFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSchemeFSAdapter()

	t.Run("keeps symlinks and rewrites their target", func(t *testing.T) {
		root := t.TempDir()
		target := filepath.Join(root, "shared", "App.xcscheme")
		mustMkdir(t, filepath.Dir(target))
		writeTestFile(t, target, "old")

		link := filepath.Join(root, "App.xcscheme")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}

		if err := adapter.WriteFile(context.Background(), m.Path(link), []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		info, err := os.Lstat(link)
		if err != nil {
			t.Fatalf("lstat: %v", err)
		}

		if info.Mode()&os.ModeSymlink == 0 {
			t.Fatalf("WriteFile() replaced the symlink with mode %v", info.Mode())
		}

		got, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("failed to read target: %v", err)
		}

		if string(got) != "new" {
			t.Fatalf("target = %q, want %q", got, "new")
		}
	})

	t.Run("replaces contents and applies permissions", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "App.xcscheme")
		writeTestFile(t, path, "old")

		if err := adapter.WriteFile(context.Background(), m.Path(path), []byte("new"), 0o640); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read back: %v", err)
		}

		if string(got) != "new" {
			t.Fatalf("WriteFile() wrote %q, want %q", got, "new")
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}

		if info.Mode().Perm() != 0o640 {
			t.Fatalf("WriteFile() perm = %v, want %v", info.Mode().Perm(), os.FileMode(0o640))
		}

		entries, err := os.ReadDir(root)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}

		if len(entries) != 1 {
			t.Fatalf("WriteFile() left %d entries behind, want 1", len(entries))
		}
	})

	t.Run("missing parent directory fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "App.xcscheme")

		if err := adapter.WriteFile(context.Background(), m.Path(path), []byte("x"), 0o644); err == nil {
			t.Fatalf("WriteFile() expected error for missing parent directory")
		}
	})

	t.Run("directory target fails and is left alone", func(t *testing.T) {
		root := t.TempDir()
		target := filepath.Join(root, "App.xcscheme")
		mustMkdir(t, target)
		writeTestFile(t, filepath.Join(target, "keep"), "keep")

		if err := adapter.WriteFile(context.Background(), m.Path(target), []byte("x"), 0o644); err == nil {
			t.Fatalf("WriteFile() expected error when target is a directory")
		}

		if _, err := os.Stat(filepath.Join(target, "keep")); err != nil {
			t.Fatalf("WriteFile() disturbed directory contents: %v", err)
		}
	})
}

func TestLocalSchemeFSAdapter_FindSchemes(t *testing.T) {
	adapter := NewLocalSchemeFSAdapter()

	root := t.TempDir()
	shared := filepath.Join(root, "App.xcodeproj", "xcshareddata", "xcschemes")
	if err := os.MkdirAll(shared, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	b := filepath.Join(shared, "B.xcscheme")
	a := filepath.Join(shared, "A.xcscheme")
	writeTestFile(t, b, "<Scheme/>\n")
	writeTestFile(t, a, "<Scheme/>\n")
	writeTestFile(t, filepath.Join(shared, "notes.txt"), "ignored")

	gitDir := filepath.Join(root, ".git")
	mustMkdir(t, gitDir)
	writeTestFile(t, filepath.Join(gitDir, "Stale.xcscheme"), "<Scheme/>\n")

	got, err := adapter.FindSchemes(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FindSchemes() error = %v", err)
	}

	want := []m.Path{m.Path(a), m.Path(b)}
	if len(got) != len(want) {
		t.Fatalf("FindSchemes() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FindSchemes()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	single, err := adapter.FindSchemes(context.Background(), m.Path(a))
	if err != nil {
		t.Fatalf("FindSchemes() file error = %v", err)
	}

	if len(single) != 1 || single[0] != m.Path(a) {
		t.Fatalf("FindSchemes() for file = %v, want [%s]", single, a)
	}

	if _, err := adapter.FindSchemes(context.Background(), m.Path(filepath.Join(root, "nope"))); err == nil {
		t.Fatalf("FindSchemes() expected error for missing root")
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
