// Package adapter contains infrastructure adapters for the xcskip CLI.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "xcskip.dev/pkg/xcskip/internal/model"
)

// SchemeFileExt is the extension of shared and user scheme files.
const SchemeFileExt = ".xcscheme"

// SchemeFSAdapter abstracts the filesystem operations the domain layer relies
// on when loading and saving scheme files. It hides direct `os` access so the
// mutator can be tested without touching the disk.
type SchemeFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence,
	// permissions, or distinguish between files and directories.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// WriteFile replaces the file at path with content. The previous contents
	// stay in place if the write fails.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// FindSchemes resolves a file or directory into the scheme files it names.
	FindSchemes(ctx context.Context, root m.Path) ([]m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSchemeFSAdapter is the os-backed SchemeFSAdapter.
type LocalSchemeFSAdapter struct{}

// NewLocalSchemeFSAdapter constructs a LocalSchemeFSAdapter instance ready to
// be wired into the mutator.
func NewLocalSchemeFSAdapter() *LocalSchemeFSAdapter {
	return &LocalSchemeFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSchemeFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSchemeFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - scheme path is supplied by the operator on purpose
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSchemeFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// WriteFile writes content to a sibling temp file and renames it over path.
// A symlinked path is resolved first so the link survives and its target is
// the file replaced.
func (a *LocalSchemeFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := string(path)
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	if err := os.Rename(tmpName, target); err != nil {
		return err
	}

	committed = true

	return nil
}

// FindSchemes returns root itself when it is a file, or every *.xcscheme file
// below it when it is a directory. Results are sorted.
func (a *LocalSchemeFSAdapter) FindSchemes(ctx context.Context, root m.Path) ([]m.Path, error) {
	info, err := a.FileInfo(ctx, root)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []m.Path{root}, nil
	}

	var schemes []m.Path

	err = a.Walk(ctx, root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != string(root) && skipDir(filepath.Base(path)) {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.EqualFold(filepath.Ext(path), SchemeFileExt) {
			schemes = append(schemes, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Slice(schemes, func(i, j int) bool { return schemes[i] < schemes[j] })

	return schemes, nil
}

func skipDir(name string) bool {
	switch name {
	case ".git", "node_modules", "Pods", "Carthage", "DerivedData", "build":
		return true
	}

	return false
}
