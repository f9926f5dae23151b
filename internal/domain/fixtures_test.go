package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// backgroundMusicScheme trims a real shared scheme down to the parts that
// matter: a build entry and a test action with two testables.
const backgroundMusicScheme = `<?xml version="1.0" encoding="UTF-8"?>
<Scheme
   LastUpgradeVersion = "1500"
   version = "1.7">
   <BuildAction
      parallelizeBuildables = "YES"
      buildImplicitDependencies = "YES">
      <BuildActionEntries>
         <BuildActionEntry
            buildForTesting = "YES"
            buildForRunning = "YES">
            <BuildableReference
               BuildableIdentifier = "primary"
               BlueprintIdentifier = "1C1962E51BC94E91008A4DF7"
               BuildableName = "Background Music.app"
               BlueprintName = "Background Music"
               ReferencedContainer = "container:BGMApp.xcodeproj">
            </BuildableReference>
         </BuildActionEntry>
      </BuildActionEntries>
   </BuildAction>
   <TestAction
      buildConfiguration = "Debug"
      selectedDebuggerIdentifier = "Xcode.DebuggerFoundation.Debugger.LLDB"
      shouldUseLaunchSchemeArgsEnv = "YES">
      <!-- UI tests need accessibility permission -->
      <Testables>
         <TestableReference
            skipped = "NO">
            <BuildableReference
               BuildableIdentifier = "primary"
               BlueprintIdentifier = "1C1963001BC94E91008A4DF7"
               BuildableName = "BGMAppTests.xctest"
               BlueprintName = "BGMAppTests"
               ReferencedContainer = "container:BGMApp.xcodeproj">
            </BuildableReference>
         </TestableReference>
         <TestableReference
            parallelizable = "NO">
            <BuildableReference
               BuildableIdentifier = "primary"
               BlueprintIdentifier = "27379B7E1C7C562D0084A24C"
               BuildableName = "BGMAppUITests.xctest"
               BlueprintName = "BGMAppUITests"
               ReferencedContainer = "container:BGMApp.xcodeproj">
            </BuildableReference>
         </TestableReference>
      </Testables>
   </TestAction>
</Scheme>
`

const duplicateScheme = `<?xml version="1.0" encoding="UTF-8"?>
<Scheme version="1.7">
   <TestAction>
      <Testables>
         <TestableReference skipped="NO">
            <BuildableReference BlueprintName="BGMAppUITests"/>
         </TestableReference>
         <TestableReference skipped="NO">
            <BuildableReference BlueprintName="BGMAppUITests"/>
         </TestableReference>
      </Testables>
   </TestAction>
</Scheme>
`

const uiTestsBlueprint = "BGMAppUITests"

func writeScheme(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Background Music.xcscheme")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func readScheme(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}
