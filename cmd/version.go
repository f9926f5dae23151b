package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the xcskip build version and the Go version used to build it.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("xcskip version: unknown")
				return
			}

			version := info.Main.Version
			if version == "" || version == "(devel)" {
				version = "devel"
			}

			cmd.Printf("xcskip %s\n", version)
			cmd.Printf("go     %s\n", info.GoVersion)
		},
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
