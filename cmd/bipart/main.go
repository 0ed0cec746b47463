// Package main is the entry point of the bipart command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/katalvlaran/bipart/internal/cli"
)

func main() {
	cmd := cli.BuildRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
