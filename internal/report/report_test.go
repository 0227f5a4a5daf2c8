// internal/report/report_test.go
package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mwiater/longctx/internal/catalog"
	"github.com/mwiater/longctx/internal/dataset"
	"github.com/mwiater/longctx/internal/selection"
	"github.com/mwiater/longctx/internal/view"
	"go.yaml.in/yaml/v3"
)

func ptr(v float64) *float64 { return &v }

func sampleChart(selected ...string) view.Chart {
	reg := &catalog.Registry{
		Families: []catalog.Family{
			{Name: "Alpha", Color: "#112233", Models: []string{"a1", "a2-exp"}},
			{Name: "Beta", Color: "#445566", Models: []string{"b1"}},
		},
		TopModels: []string{"a1", "b1"},
	}
	ds := dataset.New(
		dataset.DataPoint{Window: 0, Scores: map[string]*float64{"a1": ptr(100), "a2-exp": ptr(90), "b1": ptr(80)}},
		dataset.DataPoint{Window: 8000, Scores: map[string]*float64{"a1": ptr(42.5), "a2-exp": nil, "b1": ptr(61)}},
	)
	ds.Title = "Sample Benchmark"
	ds.Source = dataset.Source{Name: "Sample", URL: "https://example.com/bench"}
	b := view.NewBuilder(reg, ds)
	return b.Build(selection.New(selected), view.Highlight{})
}

func TestExtension(t *testing.T) {
	t.Parallel()

	want := map[string]string{"html": "html", "json": "json", "yaml": "yaml", "markdown": "md", "": "html"}
	for format, ext := range want {
		if got := Extension(format); got != ext {
			t.Fatalf("Extension(%q)=%q want %q", format, got, ext)
		}
	}
}

func TestHTML(t *testing.T) {
	t.Parallel()

	doc, err := HTML(sampleChart("a1", "a2-exp", "b1"))
	if err != nil {
		t.Fatalf("HTML error: %v", err)
	}
	for _, want := range []string{"<title>Sample Benchmark</title>", "chart.umd.min.js", "a2", "42.5", "8k", "Data source:"} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected %q in html report", want)
		}
	}
	if strings.Contains(doc, "a2-exp</td>") {
		t.Fatal("heatmap should show display names, not raw ids")
	}
}

func TestHTMLEmptySelection(t *testing.T) {
	t.Parallel()

	doc, err := HTML(sampleChart())
	if err != nil {
		t.Fatalf("HTML error: %v", err)
	}
	if !strings.Contains(doc, "Select at least one model to display.") {
		t.Fatal("expected empty-selection message in html report")
	}
	if strings.Contains(doc, `<table class="heatmap">`) {
		t.Fatal("empty chart should not render a heatmap table")
	}
}

func TestJSONAndYAMLShareKeys(t *testing.T) {
	t.Parallel()

	chart := sampleChart("b1", "a1")
	rawJSON, err := JSON(chart)
	if err != nil {
		t.Fatalf("JSON error: %v", err)
	}
	rawYAML, err := YAML(chart)
	if err != nil {
		t.Fatalf("YAML error: %v", err)
	}

	var fromJSON, fromYAML map[string]any
	if err := json.Unmarshal(rawJSON, &fromJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if err := yaml.Unmarshal(rawYAML, &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	keys := func(m map[string]any) []string {
		var out []string
		for k := range m {
			out = append(out, k)
		}
		return out
	}
	if diff := cmp.Diff(sortStrings(keys(fromJSON)), sortStrings(keys(fromYAML))); diff != "" {
		t.Fatalf("json and yaml keys differ (-json +yaml):\n%s", diff)
	}
	if fromYAML["status"] != "ok" {
		t.Fatalf("status=%v want ok", fromYAML["status"])
	}
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Markdown(&buf, sampleChart("a1", "a2-exp", "b1")); err != nil {
		t.Fatalf("Markdown error: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	want := []string{
		"# Sample Benchmark",
		"",
		"| Rank | Provider | Model | 0 | 8k |",
		"|---:|---|---|---:|---:|",
		"| 1 | Beta | b1 | 80.0 | 61.0 |",
		"| 2 | Alpha | a1 | 100.0 | 42.5 |",
		"| 3 | Alpha | a2 | 90.0 | - |",
		"",
		"Data source: [Sample](https://example.com/bench)",
		"",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderUnsupported(t *testing.T) {
	t.Parallel()

	if _, err := Render("pdf", sampleChart("a1")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reports", "chart.json")
	if err := Write(path, "json", sampleChart("a1")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var decoded view.Chart
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if decoded.Title != "Sample Benchmark" || len(decoded.Lines) != 1 || decoded.Lines[0].Model.ID != "a1" {
		t.Fatalf("unexpected decoded report: %+v", decoded)
	}
}

func sortStrings(in []string) []string {
	sort.Strings(in)
	return in
}
