package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "xcskip.dev/pkg/xcskip/internal/model"
)

const absentLabel = "-"

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayChange prints the unified diff of a dry run.
func (s *SimpleUI) DisplayChange(ctx context.Context, change m.Change, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf("%s: no changes (%d reference(s) already skipped=%s)\n", change.Scheme, change.Matches, change.Token)
		return nil
	}

	s.printf("%s", diff)

	return nil
}

// DisplayTestableRefs prints the references as a table or as YAML.
func (s *SimpleUI) DisplayTestableRefs(ctx context.Context, refs []m.TestableRef, format OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == FormatYAML {
		out, err := yaml.Marshal(refs)
		if err != nil {
			return fmt.Errorf("failed to encode references: %w", err)
		}

		s.printf("%s", out)

		return nil
	}

	s.printf("%s", renderRefsTable(refs))

	return nil
}

func renderRefsTable(refs []m.TestableRef) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Scheme", "#", "Blueprint", "Skipped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	skipped := 0

	for _, ref := range refs {
		blueprint := string(ref.Blueprint)
		if blueprint == "" {
			blueprint = absentLabel
		}

		token := string(ref.Skipped)
		if token == "" {
			token = absentLabel
		}

		if ref.IsSkipped() {
			skipped++
		}

		table.Append([]string{string(ref.Scheme), strconv.Itoa(ref.Position), blueprint, token})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(refs)),
		"",
		"",
		fmt.Sprintf("%d skipped", skipped),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
