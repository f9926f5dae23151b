// Package main is the entry point for the xcskip CLI.
package main

import "xcskip.dev/pkg/xcskip/cmd"

func main() {
	cmd.Execute()
}
