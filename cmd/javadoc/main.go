package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meigma/javadoc/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var verbose bool

	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
	}

	return root.Execute()
}
