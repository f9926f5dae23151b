// Package domain contains the scheme mutation logic and the command workflows.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/beevik/etree"

	"xcskip.dev/pkg/xcskip/internal/adapter"
	m "xcskip.dev/pkg/xcskip/internal/model"
)

// MutateArgs describes one read-mutate-write of a scheme file.
type MutateArgs struct {
	Scheme    m.Path
	Blueprint m.Blueprint
	Token     m.SkipToken   // defaults to m.SkipYes
	Policy    m.MatchPolicy // defaults to m.MatchFirst
	DryRun    bool
}

// Mutator loads a scheme, flips the skipped attribute of the testable
// reference that owns a blueprint, and saves the scheme back in place.
type Mutator interface {
	SetSkipped(ctx context.Context, args MutateArgs) (m.Change, error)
	Inspect(ctx context.Context, scheme m.Path) ([]m.TestableRef, error)
}

type mutator struct {
	adapter.SchemeFSAdapter
	adapter.XMLFileAdapter
}

// NewMutator creates a Mutator backed by the provided adapters.
func NewMutator(fsAdapter adapter.SchemeFSAdapter, xmlAdapter adapter.XMLFileAdapter) Mutator {
	return &mutator{
		SchemeFSAdapter: fsAdapter,
		XMLFileAdapter:  xmlAdapter,
	}
}

func (mt *mutator) SetSkipped(ctx context.Context, args MutateArgs) (m.Change, error) {
	args, err := normalizeMutateArgs(args)
	if err != nil {
		return m.Change{}, err
	}

	if err := ctx.Err(); err != nil {
		return m.Change{}, err
	}

	original, doc, err := mt.load(ctx, args.Scheme)
	if err != nil {
		return m.Change{}, err
	}

	info, err := mt.FileInfo(ctx, args.Scheme)
	if err != nil {
		slog.Error("Failed to stat scheme", "scheme", args.Scheme, "error", err)
		return m.Change{}, fmt.Errorf("%w: %s: %w", ErrParse, args.Scheme, err)
	}

	targets, err := selectTargets(findBlueprintParents(doc, args.Blueprint), args.Policy)
	if err != nil {
		slog.Error("Failed to locate testable reference",
			"scheme", args.Scheme, "blueprint", args.Blueprint, "policy", args.Policy, "error", err)

		return m.Change{}, fmt.Errorf("%w: blueprint %q in %s", err, args.Blueprint, args.Scheme)
	}

	for _, target := range targets {
		slog.Debug("Setting skipped attribute",
			"scheme", args.Scheme, "tag", target.Tag,
			"from", target.SelectAttrValue(skippedAttr, ""), "to", args.Token)
		target.CreateAttr(skippedAttr, string(args.Token))
	}

	updated, err := mt.Serialize(ctx, doc)
	if err != nil {
		slog.Error("Failed to serialize scheme", "scheme", args.Scheme, "error", err)
		return m.Change{}, fmt.Errorf("%w: %s: %w", ErrWrite, args.Scheme, err)
	}

	change := m.Change{
		Scheme:    args.Scheme,
		Blueprint: args.Blueprint,
		Token:     args.Token,
		Matches:   len(targets),
		Original:  original,
		Updated:   updated,
	}

	if args.DryRun {
		slog.Info("Dry run, scheme left untouched", "scheme", args.Scheme, "matches", change.Matches)
		return change, nil
	}

	if err := ctx.Err(); err != nil {
		return m.Change{}, err
	}

	if err := mt.WriteFile(ctx, args.Scheme, updated, info.Mode().Perm()); err != nil {
		slog.Error("Failed to write scheme", "scheme", args.Scheme, "error", err)
		return m.Change{}, fmt.Errorf("%w: %s: %w", ErrWrite, args.Scheme, err)
	}

	change.Written = true
	slog.Info("Scheme updated",
		"scheme", args.Scheme, "blueprint", args.Blueprint, "skipped", args.Token, "matches", change.Matches)

	return change, nil
}

func (mt *mutator) Inspect(ctx context.Context, scheme m.Path) ([]m.TestableRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, doc, err := mt.load(ctx, scheme)
	if err != nil {
		return nil, err
	}

	return collectTestableRefs(doc, scheme), nil
}

func (mt *mutator) load(ctx context.Context, scheme m.Path) ([]byte, *etree.Document, error) {
	content, err := mt.ReadFile(ctx, scheme)
	if err != nil {
		slog.Error("Failed to read scheme", "scheme", scheme, "error", err)
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrParse, scheme, err)
	}

	doc, err := mt.Parse(ctx, content)
	if err != nil {
		slog.Error("Failed to parse scheme", "scheme", scheme, "error", err)
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrParse, scheme, err)
	}

	return content, doc, nil
}

func normalizeMutateArgs(args MutateArgs) (MutateArgs, error) {
	if args.Scheme == "" {
		return args, fmt.Errorf("%w: scheme path is empty", ErrInvalidArgs)
	}

	if args.Blueprint == "" {
		return args, fmt.Errorf("%w: blueprint name is empty", ErrInvalidArgs)
	}

	switch args.Token {
	case "":
		args.Token = m.SkipYes
	case m.SkipYes, m.SkipNo:
	default:
		return args, fmt.Errorf("%w: unsupported skipped value %q", ErrInvalidArgs, args.Token)
	}

	policy, ok := m.ParseMatchPolicy(string(args.Policy))
	if !ok {
		return args, fmt.Errorf("%w: unknown match policy %q", ErrInvalidArgs, args.Policy)
	}

	args.Policy = policy

	return args, nil
}

// selectTargets applies the match policy to the query result.
func selectTargets(matches []*etree.Element, policy m.MatchPolicy) ([]*etree.Element, error) {
	if len(matches) == 0 {
		return nil, ErrNotFound
	}

	switch policy {
	case m.MatchUnique:
		if len(matches) > 1 {
			return nil, fmt.Errorf("%w (%d matches)", ErrAmbiguous, len(matches))
		}

		return matches, nil
	case m.MatchAll:
		return matches, nil
	default:
		return matches[:1], nil
	}
}
