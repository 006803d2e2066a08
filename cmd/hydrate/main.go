package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hydrate/internal/config"
	"github.com/vango-dev/hydrate/internal/errors"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if he, ok := err.(*errors.Error); ok {
			fmt.Fprintln(os.Stderr, he.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// cli carries state shared by all subcommands.
type cli struct {
	configPath string
	verbose    bool

	stdout io.Writer
	stderr io.Writer

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "hydrate",
		Short: "Render and verify hydration of delta trees",
		Long: `hydrate works with delta trees: JSON descriptions of a UI that are
rendered to HTML on the server and later bound to that same HTML.

  render  turn a delta tree into server markup
  check   hydrate existing markup and compare it with a cold render`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to hydrate.json (default: nearest in current or parent directories)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		renderCmd(c),
		checkCmd(c),
		versionCmd(c),
	)

	return rootCmd
}

// setup loads configuration and builds the logger.
func (c *cli) setup() error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.LoadFile(c.configPath)
	} else {
		c.cfg, err = config.LoadOrDefault(".")
	}
	if err != nil {
		return err
	}
	if c.verbose {
		c.cfg.Log.Level = "debug"
	}
	c.logger = c.cfg.Logger(c.stderr)
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func decodeDelta(data []byte) (*vdom.VNode, error) {
	delta, err := vdom.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if delta == nil {
		return nil, errors.New("D001").WithDetail("delta tree is empty")
	}
	return delta, nil
}
