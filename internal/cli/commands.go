package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/meigma/javadoc"
)

// infoCommand prints the descriptor metadata of an archive.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <archive.zip>",
		Short: "Print library metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			lib, err := c.open(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(c.out, "path:", lib.Path())
			printField(c.out, "name", lib.Name)
			printField(c.out, "version", lib.Version)
			printField(c.out, "baseUrl", lib.BaseURL)
			printField(c.out, "projectUrl", lib.ProjectURL)
			return nil
		},
	}
}

// classesCommand lists all class names in an archive.
func (c *CLI) classesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classes <archive.zip>",
		Short: "List documented classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			lib, err := c.open(args[0])
			if err != nil {
				return err
			}

			it, err := lib.Classes()
			if err != nil {
				return err
			}
			for name := range it.All() {
				fmt.Fprintln(c.out, name)
			}
			return nil
		},
	}
}

// urlCommand resolves the documentation URL of one class.
func (c *CLI) urlCommand() *cobra.Command {
	var frames bool

	cmd := &cobra.Command{
		Use:   "url <archive.zip> <fully.qualified.Class>",
		Short: "Resolve a class's documentation URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			lib, err := c.open(args[0])
			if err != nil {
				return err
			}

			url, ok := lib.URL(args[1], frames)
			if !ok {
				return fmt.Errorf("archive %s defines no base URL or URL pattern", args[0])
			}
			fmt.Fprintln(c.out, url)
			return nil
		},
	}
	cmd.Flags().BoolVar(&frames, "frames", false, "resolve the frame-style URL")
	return cmd
}

// open creates a library handle with the CLI's logging wired in.
func (c *CLI) open(path string) (*javadoc.Library, error) {
	c.Logger.Debug("opening archive", "path", path)
	return javadoc.Open(path)
}

// printField writes one optional metadata field, marking absent values.
func printField(out io.Writer, label string, get func() (string, bool)) {
	if v, ok := get(); ok {
		fmt.Fprintf(out, "%s: %s\n", label, v)
		return
	}
	fmt.Fprintf(out, "%s: (not set)\n", label)
}
