package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/hydrate"
	"github.com/vango-dev/hydrate/pkg/reactive"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

var errMismatch = errors.New("hydrated DOM differs from cold render")

func checkCmd(c *cli) *cobra.Command {
	var (
		markupPath string
		deltaPath  string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Hydrate markup and compare it with a cold render",
		Long: `Parse server markup, hydrate it against a delta tree and compare the
resulting DOM with the DOM produced by rendering the same delta from
scratch. Whitespace-only text is ignored.

The command exits non-zero when the trees differ or hydration reports
an error.`,
		Example: `  hydrate check --markup index.html --delta app.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(markupPath)
			if err != nil {
				return err
			}
			data, err := readInput(deltaPath)
			if err != nil {
				return err
			}
			delta, err := decodeDelta(data)
			if err != nil {
				return err
			}
			return c.check(cmd, string(markup), delta)
		},
	}

	cmd.Flags().StringVarP(&markupPath, "markup", "m", "", "Server markup file (- for stdin)")
	cmd.Flags().StringVarP(&deltaPath, "delta", "d", "", "Delta JSON file (- for stdin)")
	_ = cmd.MarkFlagRequired("markup")
	_ = cmd.MarkFlagRequired("delta")

	return cmd
}

func (c *cli) check(cmd *cobra.Command, markup string, delta *vdom.VNode) error {
	opts := []hydrate.Option{
		hydrate.WithLogger(c.logger),
		hydrate.WithEventPrefix(c.cfg.EventPrefix),
	}
	var registry *prometheus.Registry
	if c.cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		opts = append(opts, hydrate.WithMetrics(hydrate.NewMetrics(
			hydrate.WithNamespace(c.cfg.Metrics.Namespace),
			hydrate.WithSubsystem(c.cfg.Metrics.Subsystem),
			hydrate.WithRegistry(registry),
		)))
	}

	doc := dom.NewDocument()
	container, err := doc.Parse(markup)
	if err != nil {
		return err
	}

	h := hydrate.New(doc, reactive.NewRuntime(), opts...)
	defer h.Dispose()

	_, hydrateErr := h.HydrateContext(cmd.Context(), delta, rootFor(container, delta))
	got := shapesOf(dom.Children(container))

	cold := hydrate.New(dom.NewDocument(), reactive.NewRuntime(), hydrate.WithLogger(c.logger), hydrate.WithEventPrefix(c.cfg.EventPrefix))
	defer cold.Dispose()
	node, _ := cold.Render(delta)
	want := shapesOf(renderedNodes(node))

	fmt.Fprintln(c.stdout, dom.InnerHTML(container))
	stats := h.Stats()
	fmt.Fprintf(c.stdout, "adopted=%d created=%d discarded=%d regions=%d\n",
		stats.Adopted, stats.Created, stats.Discarded, stats.Regions)
	if registry != nil {
		printMetrics(c, registry)
	}

	if hydrateErr != nil {
		return hydrateErr
	}
	if diff := cmp.Diff(want, got); diff != "" {
		fmt.Fprintf(c.stdout, "mismatch (-cold +hydrated):\n%s", diff)
		return errMismatch
	}
	fmt.Fprintln(c.stdout, "ok")
	return nil
}

// rootFor picks the node hydration starts at. Element deltas skip leading
// whitespace the way the walker does for child positions.
func rootFor(container *html.Node, delta *vdom.VNode) *html.Node {
	if delta.Kind == vdom.KindElement {
		if el := dom.FirstElementChild(container); el != nil {
			return el
		}
	}
	return container.FirstChild
}

func renderedNodes(node *html.Node) []*html.Node {
	switch {
	case node == nil:
		return nil
	case node.Parent != nil:
		return dom.Children(node.Parent)
	default:
		return []*html.Node{node}
	}
}

// shape is a comparable projection of a DOM subtree.
type shape struct {
	Tag       string
	Namespace string
	Attrs     map[string]string
	Text      string
	Children  []shape
}

func shapesOf(nodes []*html.Node) []shape {
	var out []shape
	for _, n := range nodes {
		switch n.Type {
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				out = append(out, shape{Text: text})
			}
		case html.ElementNode:
			s := shape{Tag: n.Data, Namespace: n.Namespace}
			if len(n.Attr) > 0 {
				s.Attrs = make(map[string]string, len(n.Attr))
				for _, a := range n.Attr {
					s.Attrs[a.Key] = a.Val
				}
			}
			s.Children = shapesOf(dom.Children(n))
			out = append(out, s)
		}
	}
	return out
}

func printMetrics(c *cli, registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		c.logger.Warn("gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if counter := m.GetCounter(); counter != nil {
				fmt.Fprintf(c.stdout, "%s %g\n", mf.GetName(), counter.GetValue())
			}
		}
	}
}
