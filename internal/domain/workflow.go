package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"xcskip.dev/pkg/xcskip/internal/adapter"
	"xcskip.dev/pkg/xcskip/internal/controller"
	m "xcskip.dev/pkg/xcskip/internal/model"
)

// SkipArgs contains the arguments for the skip and unskip commands.
type SkipArgs struct {
	MutateArgs
}

// ListArgs contains the arguments for listing testable references.
type ListArgs struct {
	Paths   []m.Path
	Threads int
	Format  controller.OutputFormat
}

// Workflow ties the mutator to the filesystem and the UI for each command.
type Workflow interface {
	Skip(ctx context.Context, args SkipArgs) error
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.SchemeFSAdapter
	controller.UI
	Mutator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(fsAdapter adapter.SchemeFSAdapter, ui controller.UI, mutator Mutator) Workflow {
	return &workflow{
		SchemeFSAdapter: fsAdapter,
		UI:              ui,
		Mutator:         mutator,
	}
}

// Skip applies the mutation. Only dry runs produce output; a successful write
// is silent.
func (w *workflow) Skip(ctx context.Context, args SkipArgs) error {
	change, err := w.SetSkipped(ctx, args.MutateArgs)
	if err != nil {
		return err
	}

	if !args.DryRun {
		return nil
	}

	diff, err := RenderDiff(change)
	if err != nil {
		slog.Error("Failed to render diff", "scheme", change.Scheme, "error", err)
		return fmt.Errorf("render diff: %w", err)
	}

	if err := w.DisplayChange(ctx, change, diff); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// List inspects every scheme named by args.Paths, in parallel when
// args.Threads allows it, and renders the result sorted by scheme and position.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	schemes, err := w.resolveSchemes(ctx, args.Paths)
	if err != nil {
		return err
	}

	results := make([][]m.TestableRef, len(schemes))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(args.Threads, 1))

	for i, scheme := range schemes {
		i, scheme := i, scheme
		group.Go(func() error {
			refs, err := w.Inspect(groupCtx, scheme)
			if err != nil {
				return err
			}

			results[i] = refs

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	var all []m.TestableRef
	for _, refs := range results {
		all = append(all, refs...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Scheme != all[j].Scheme {
			return all[i].Scheme < all[j].Scheme
		}

		return all[i].Position < all[j].Position
	})

	if err := w.DisplayTestableRefs(ctx, all, args.Format); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) resolveSchemes(ctx context.Context, paths []m.Path) ([]m.Path, error) {
	var schemes []m.Path

	seen := make(map[m.Path]struct{})

	for _, path := range paths {
		found, err := w.FindSchemes(ctx, path)
		if err != nil {
			slog.Error("Failed to resolve scheme path", "path", path, "error", err)
			return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
		}

		for _, scheme := range found {
			if _, ok := seen[scheme]; ok {
				continue
			}

			seen[scheme] = struct{}{}
			schemes = append(schemes, scheme)
		}
	}

	if len(schemes) == 0 {
		return nil, fmt.Errorf("%w: no %s files under %v", ErrNotFound, adapter.SchemeFileExt, paths)
	}

	return schemes, nil
}
