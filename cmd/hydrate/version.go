package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func versionCmd(c *cli) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version, commit, and build information for the hydrate CLI.`,
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(c.stdout, version)
				return
			}

			fmt.Fprintf(c.stdout, "  Version:    %s\n", version)
			fmt.Fprintf(c.stdout, "  Commit:     %s\n", commit)
			fmt.Fprintf(c.stdout, "  Built:      %s\n", date)
			fmt.Fprintf(c.stdout, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(c.stdout, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}
