package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/hydrate/internal/config"
)

const counterDelta = `{"tag":"div","props":{"class":"counter"},"children":[
  {"tag":"span","children":["Count: 0"]},
  {"tag":"button","props":{"type":"button"},"children":["+"]}
]}`

// run executes the CLI with a config file in a temp dir and returns stdout.
func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	if cfg == nil {
		cfg = config.New()
	}
	cfgPath := filepath.Join(dir, config.ConfigFileName)
	if err := cfg.SaveTo(cfgPath); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRender(t *testing.T) {
	delta := writeFile(t, "app.json", counterDelta)

	out, err := run(t, nil, "render", "--delta", delta)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := `<div class="counter"><span>Count: 0</span><button type="button">+</button></div>` + "\n"
	if out != want {
		t.Errorf("render output:\ngot  %q\nwant %q", out, want)
	}
}

func TestRenderPage(t *testing.T) {
	delta := writeFile(t, "app.json", counterDelta)
	outPath := filepath.Join(t.TempDir(), "index.html")

	if _, err := run(t, nil, "render", "--delta", delta, "--page", "--title", "Counter", "-o", outPath); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	page := string(data)
	for _, want := range []string{"<!DOCTYPE html>", "<title>Counter</title>", `<div class="counter">`} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q:\n%s", want, page)
		}
	}
}

func TestRenderEmptyDelta(t *testing.T) {
	delta := writeFile(t, "app.json", "null")
	if _, err := run(t, nil, "render", "--delta", delta); err == nil {
		t.Error("expected an error for an empty delta")
	}
}

func TestCheckRenderedMarkup(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		cfg := config.New()
		cfg.Render.Pretty = pretty
		delta := writeFile(t, "app.json", counterDelta)

		markup, err := run(t, cfg, "render", "--delta", delta)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		markupPath := writeFile(t, "index.html", markup)

		out, err := run(t, cfg, "check", "--markup", markupPath, "--delta", delta)
		if err != nil {
			t.Fatalf("pretty=%v: check failed: %v\n%s", pretty, err, out)
		}
		if !strings.Contains(out, "created=0") || !strings.HasSuffix(out, "ok\n") {
			t.Errorf("pretty=%v: unexpected output %q", pretty, out)
		}
	}
}

func TestCheckMismatch(t *testing.T) {
	delta := writeFile(t, "app.json", `{"tag":"p","children":["hi"]}`)
	markup := writeFile(t, "index.html", `<p>hi<span>extra</span></p>`)

	out, err := run(t, nil, "check", "--markup", markup, "--delta", delta)
	if !errors.Is(err, errMismatch) {
		t.Fatalf("expected errMismatch, got %v", err)
	}
	if !strings.Contains(out, "extra") {
		t.Errorf("diff should mention the extra node:\n%s", out)
	}
}

func TestCheckMetrics(t *testing.T) {
	cfg := config.New()
	cfg.Metrics.Enabled = true
	delta := writeFile(t, "app.json", `{"tag":"p","children":["hi"]}`)
	markup := writeFile(t, "index.html", `<p>hi</p>`)

	out, err := run(t, cfg, "check", "--markup", markup, "--delta", delta)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "hydrate_nodes_adopted_total") {
		t.Errorf("expected metrics in output:\n%s", out)
	}
}

func TestVersionShort(t *testing.T) {
	out, err := run(t, nil, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if out != version+"\n" {
		t.Errorf("version = %q", out)
	}
}
