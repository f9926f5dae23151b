package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xcskip.dev/pkg/xcskip/internal/controller"
	"xcskip.dev/pkg/xcskip/internal/domain"
	m "xcskip.dev/pkg/xcskip/internal/model"
)

const listLongDescription = `List the testable references of one or more schemes and whether
each is skipped.

Paths may be .xcscheme files or directories, which are searched
recursively for schemes. Without arguments the configured scheme is listed.`

func newListCmd() *cobra.Command {
	var parallelFlag int

	var formatFlag string

	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List testable references and their skipped state",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			paths := parsePaths(args)
			if len(paths) == 0 {
				paths = []m.Path{m.Path(viper.GetString(schemePathKey))}
			}

			format, err := controller.ParseOutputFormat(viper.GetString(listFormatKey))
			if err != nil {
				return err
			}

			return workflow.List(context.Background(), domain.ListArgs{
				Paths:   paths,
				Threads: viper.GetInt(listParallelKey),
				Format:  format,
			})
		},
	}

	cmd.Flags().IntVarP(&parallelFlag, listParallelFlagName, "p", viper.GetInt(listParallelKey), "number of schemes inspected in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(listParallelFlagName), listParallelKey)

	cmd.Flags().StringVarP(&formatFlag, listFormatFlagName, "f", viper.GetString(listFormatKey), "output format: table or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(listFormatFlagName), listFormatKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(newListCmd())
}
