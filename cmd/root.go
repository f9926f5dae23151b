// Package cmd provides the root command and CLI setup for xcskip.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"xcskip.dev/pkg/xcskip/internal/adapter"
	"xcskip.dev/pkg/xcskip/internal/controller"
	"xcskip.dev/pkg/xcskip/internal/domain"
	m "xcskip.dev/pkg/xcskip/internal/model"
)

var fsAdapter adapter.SchemeFSAdapter
var xmlAdapter adapter.XMLFileAdapter
var mutator domain.Mutator
var workflow domain.Workflow
var ui controller.UI

// schemePathFlag is the scheme file shared by skip, unskip and list.
var schemePathFlag string

// blueprintFlag names the test bundle whose testable reference is toggled.
var blueprintFlag string

var matchFlag string

var verboseFlag bool

var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd)
	fsAdapter = adapter.NewLocalSchemeFSAdapter()
	xmlAdapter = adapter.NewLocalXMLFileAdapter()
	mutator = domain.NewMutator(fsAdapter, xmlAdapter)
	workflow = domain.NewWorkflow(fsAdapter, ui, mutator)
}

const rootLongDescription = `xcskip edits a saved Xcode scheme so that a test bundle is skipped.

It finds the BuildableReference whose BlueprintName matches the configured
blueprint and sets skipped="YES" on its parent TestableReference, leaving
the rest of the file untouched. Use it on CI machines that cannot run
UI tests.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "xcskip",
		Short:        "Skip test bundles in Xcode schemes",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(cmd.ErrOrStderr(), viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configReadErr != nil {
				slog.Warn("ignoring unreadable config file", "file", viper.ConfigFileUsed(), "error", configReadErr)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&schemePathFlag, schemeFlagName, "s",
			viper.GetString(schemePathKey),
			"path to the .xcscheme file",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(schemeFlagName), schemePathKey)

	cmd.PersistentFlags().StringVarP(&blueprintFlag, blueprintFlagName, "b", viper.GetString(blueprintKey), "BlueprintName of the test bundle")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(blueprintFlagName), blueprintKey)

	cmd.PersistentFlags().StringVarP(&matchFlag, matchFlagName, "m", viper.GetString(matchKey), "which matches to change: first, unique or all")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(matchFlagName), matchKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log debug output to stderr")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "write logs to this rotating file (off when empty)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
