package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"xcskip.dev/pkg/xcskip/internal/domain"
)

const testScheme = `<?xml version="1.0" encoding="UTF-8"?>
<Scheme
   LastUpgradeVersion = "0800"
   version = "1.3">
   <TestAction
      buildConfiguration = "Debug"
      shouldUseLaunchSchemeArgsEnv = "YES">
      <Testables>
         <TestableReference
            skipped = "NO">
            <BuildableReference
               BuildableIdentifier = "primary"
               BlueprintIdentifier = "1C1962E01BC94E91008A4DF7"
               BuildableName = "BGMAppTests.xctest"
               BlueprintName = "BGMAppTests"
               ReferencedContainer = "container:BGMApp.xcodeproj">
            </BuildableReference>
         </TestableReference>
         <TestableReference
            skipped = "NO">
            <BuildableReference
               BuildableIdentifier = "primary"
               BlueprintIdentifier = "27F0CC1F1FB4A1D3004D4B88"
               BuildableName = "BGMAppUITests.xctest"
               BlueprintName = "BGMAppUITests"
               ReferencedContainer = "container:BGMApp.xcodeproj">
            </BuildableReference>
         </TestableReference>
      </Testables>
   </TestAction>
</Scheme>
`

// isolateLogging sends the rotating log file to a temp dir and restores the
// default logger afterwards.
func isolateLogging(t *testing.T) {
	t.Helper()

	t.Setenv(envPrefix+"_LOG_FILENAME", filepath.Join(t.TempDir(), "xcskip.log"))

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
}

func useWorkflow(t *testing.T, w domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = w

	t.Cleanup(func() { workflow = original })
}

// newTestRootCmd returns a fresh root command with the given subcommands and
// captured output streams.
func newTestRootCmd(t *testing.T, subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	isolateLogging(t)

	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd, stdout, stderr
}

func writeTestScheme(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(testScheme), 0o644))

	return path
}
