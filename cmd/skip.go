package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xcskip.dev/pkg/xcskip/internal/domain"
	m "xcskip.dev/pkg/xcskip/internal/model"
)

const skipLongDescription = `Mark the configured test bundle as skipped in the scheme.

The scheme defaults to the --scheme flag (or scheme.path); a positional
argument overrides it. The command prints nothing on success. With
--dry-run the resulting change is printed as a unified diff instead of
being written.`

const unskipLongDescription = `Mark the configured test bundle as not skipped (skipped="NO").

Arguments and flags are the same as for skip.`

func newSkipCmd() *cobra.Command {
	return newToggleCmd("skip [scheme]", "Skip a test bundle in a scheme", skipLongDescription, m.SkipYes)
}

func newUnskipCmd() *cobra.Command {
	return newToggleCmd("unskip [scheme]", "Re-enable a skipped test bundle", unskipLongDescription, m.SkipNo)
}

func newToggleCmd(use, short, long string, token m.SkipToken) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			scheme := m.Path(viper.GetString(schemePathKey))
			if len(args) == 1 {
				scheme = m.Path(args[0])
			}

			return workflow.Skip(context.Background(), domain.SkipArgs{
				MutateArgs: domain.MutateArgs{
					Scheme:    scheme,
					Blueprint: m.Blueprint(viper.GetString(blueprintKey)),
					Token:     token,
					Policy:    m.MatchPolicy(viper.GetString(matchKey)),
					DryRun:    dryRun,
				},
			})
		},
	}

	cmd.Flags().BoolVarP(&dryRun, dryRunFlagName, "n", false, "print the change as a diff without writing it")

	return cmd
}

func init() {
	rootCmd.AddCommand(newSkipCmd())
	rootCmd.AddCommand(newUnskipCmd())
}
