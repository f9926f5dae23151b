// Package controller provides output adapters for displaying scheme results.
package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "xcskip.dev/pkg/xcskip/internal/model"
)

// OutputFormat selects how listings are rendered.
type OutputFormat string

// Available OutputFormat values.
const (
	FormatTable OutputFormat = "table"
	FormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a user supplied format name.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch OutputFormat(value) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatYAML:
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unknown output format %q (want %s or %s)", value, FormatTable, FormatYAML)
}

// UI defines the interface for displaying scheme changes and listings.
type UI interface {
	// DisplayChange previews a mutation that was not written.
	DisplayChange(ctx context.Context, change m.Change, diff string) error
	// DisplayTestableRefs renders the testable references found in schemes.
	DisplayTestableRefs(ctx context.Context, refs []m.TestableRef, format OutputFormat) error
}

// NewUI returns the UI used by the CLI commands.
func NewUI(cmd *cobra.Command) UI {
	return NewSimpleUI(cmd)
}
