// Package cli implements the javadoc command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a new CLI instance writing results to out and logs to logOut.
func New(out, logOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(logOut, log.Options{
			Level: level,
		}),
		out: out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "javadoc",
		Short:        "Inspect javadoc zip archives",
		Long:         "Javadoc inspects zip archives of API documentation metadata: library info, class listings, and resolved documentation URLs.",
		SilenceUsage: true,
	}

	root.AddCommand(c.infoCommand())
	root.AddCommand(c.classesCommand())
	root.AddCommand(c.urlCommand())

	return root
}
