package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hydrate/pkg/render"
)

func renderCmd(c *cli) *cobra.Command {
	var (
		deltaPath string
		outPath   string
		pretty    bool
		page      bool
		title     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a delta tree to HTML",
		Long: `Render a JSON delta tree to server markup.

Placeholders render nothing and event handlers are omitted, so the
output is exactly what a later hydration pass expects to adopt.`,
		Example: `  hydrate render --delta app.json
  hydrate render --delta app.json --page --title "Counter" -o index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(deltaPath)
			if err != nil {
				return err
			}
			delta, err := decodeDelta(data)
			if err != nil {
				return err
			}

			r := render.NewRenderer(render.RendererConfig{
				Pretty:      pretty || c.cfg.Render.Pretty,
				Indent:      c.cfg.Render.Indent,
				EventPrefix: c.cfg.EventPrefix,
			})

			var buf bytes.Buffer
			if page {
				err = r.RenderPage(&buf, render.PageData{Body: delta, Title: title})
			} else {
				err = r.RenderToWriter(&buf, delta)
				buf.WriteByte('\n')
			}
			if err != nil {
				return err
			}

			c.logger.Debug("rendered delta", "kind", delta.Kind.String(), "bytes", buf.Len())
			return writeOutput(c.stdout, outPath, buf.Bytes())
		},
	}

	cmd.Flags().StringVarP(&deltaPath, "delta", "d", "-", "Delta JSON file (- for stdin)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the output")
	cmd.Flags().BoolVar(&page, "page", false, "Wrap the output in a complete HTML document")
	cmd.Flags().StringVar(&title, "title", "", "Document title when --page is set")

	return cmd
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
