// internal/report/report.go
// Package report turns a chart projection into standalone documents:
// an HTML dashboard, JSON, YAML and a Markdown table.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/mwiater/longctx/internal/colorscale"
	"github.com/mwiater/longctx/internal/util"
	"github.com/mwiater/longctx/internal/view"
	"go.yaml.in/yaml/v3"
)

// Formats lists the export formats in the order they are documented.
var Formats = []string{"html", "json", "yaml", "markdown"}

// Extension returns the file extension used for a format.
func Extension(format string) string {
	switch format {
	case "markdown":
		return "md"
	case "yaml":
		return "yaml"
	case "json":
		return "json"
	default:
		return "html"
	}
}

type htmlData struct {
	Title     string
	Subtitle  string
	Source    string
	SourceURL string
	Message   string
	ChartJSON template.JS
	Heatmap   view.Heatmap
}

// HTML renders a standalone dashboard with the line chart and heatmap.
func HTML(chart view.Chart) (string, error) {
	payload, err := json.Marshal(chart)
	if err != nil {
		return "", err
	}

	data := htmlData{
		Title:     chart.Title,
		Subtitle:  chart.Subtitle,
		Source:    chart.Source.Name,
		SourceURL: chart.Source.URL,
		ChartJSON: template.JS(payload),
		Heatmap:   chart.Heatmap,
	}
	if data.Title == "" {
		data.Title = "longctx: Long Context Benchmark"
	}
	if chart.Status != view.StatusOK {
		data.Message = chart.Message
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// JSON renders the chart projection as indented JSON.
func JSON(chart view.Chart) ([]byte, error) {
	return json.MarshalIndent(chart, "", "  ")
}

// YAML renders the chart projection as YAML, keyed the same way as JSON.
func YAML(chart view.Chart) ([]byte, error) {
	// Round-trip through JSON so the json tags name the keys.
	raw, err := json.Marshal(chart)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// Markdown renders the heatmap as a GitHub-flavored table.
func Markdown(w io.Writer, chart view.Chart) error {
	var b strings.Builder
	if chart.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", chart.Title)
	}
	if chart.Subtitle != "" {
		fmt.Fprintf(&b, "%s\n\n", chart.Subtitle)
	}
	if chart.Status != view.StatusOK {
		fmt.Fprintf(&b, "_%s_\n", chart.Message)
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("| Rank | Provider | Model |")
	for _, win := range chart.Heatmap.Windows {
		fmt.Fprintf(&b, " %s |", win.Label)
	}
	b.WriteString("\n|---:|---|---|")
	for range chart.Heatmap.Windows {
		b.WriteString("---:|")
	}
	b.WriteByte('\n')
	for _, row := range chart.Heatmap.Rows {
		fmt.Fprintf(&b, "| %d | %s | %s |", row.Model.Rank, row.Model.Family, row.Model.DisplayName)
		for _, c := range row.Cells {
			fmt.Fprintf(&b, " %s |", c.Text)
		}
		b.WriteByte('\n')
	}
	if chart.Source.Name != "" {
		fmt.Fprintf(&b, "\nData source: [%s](%s)\n", chart.Source.Name, chart.Source.URL)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Render produces the document for a format.
func Render(format string, chart view.Chart) ([]byte, error) {
	switch format {
	case "html", "":
		doc, err := HTML(chart)
		return []byte(doc), err
	case "json":
		return JSON(chart)
	case "yaml":
		return YAML(chart)
	case "markdown":
		var buf bytes.Buffer
		err := Markdown(&buf, chart)
		return buf.Bytes(), err
	default:
		return nil, fmt.Errorf("unsupported export format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Write renders the chart and writes it to path, creating parent directories.
func Write(path, format string, chart view.Chart) error {
	doc, err := Render(format, chart)
	if err != nil {
		return err
	}
	if err := util.WriteFile(path, doc); err != nil {
		return fmt.Errorf("write %s report: %w", format, err)
	}
	return nil
}

var htmlTemplate = template.Must(template.New("longctx-report").Funcs(template.FuncMap{
	"missing": func() string { return colorscale.MissingColor },
}).Parse(htmlTemplateHTML))

const htmlTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"></script>
  <style>
    :root {
      --text: #0F172A;
      --secondary: #64748B;
      --border: #E2E8F0;
      --background: #FFFFFF;
      --light: #F1F5F9;
    }
    body { font-family: system-ui, sans-serif; background: var(--light); color: var(--text); margin: 0; padding: 1.5rem; }
    .chart-card { background: var(--background); border-radius: 16px; padding: 1.5rem; border: 1px solid var(--border); margin-bottom: 1.5rem; }
    .chart-title { font-size: 1.5rem; font-weight: 700; margin-bottom: 0.25rem; }
    .chart-subtitle { color: var(--secondary); margin-bottom: 1.5rem; }
    .chart-canvas { position: relative; height: 420px; }
    .legend-container { display: flex; gap: 1.25rem; justify-content: center; flex-wrap: wrap; margin-top: 1.25rem; padding-top: 1.25rem; border-top: 2px solid var(--border); }
    .legend-item { display: flex; align-items: center; gap: 0.5rem; cursor: pointer; transition: opacity 0.15s; }
    .legend-item.dimmed { opacity: 0.3; }
    .legend-color { width: 14px; height: 14px; border-radius: 50%; }
    .legend-text { font-size: 0.9rem; color: var(--secondary); }
    .empty { color: var(--secondary); font-style: italic; text-align: center; padding: 3rem 0; }
    table.heatmap { border-collapse: collapse; width: 100%; font-size: 0.85rem; }
    table.heatmap th, table.heatmap td { border: 1px solid var(--border); padding: 0.35rem 0.5rem; text-align: center; }
    table.heatmap td.model { text-align: left; white-space: nowrap; }
    table.heatmap td.provider { text-align: left; font-weight: 600; white-space: nowrap; }
    .footer { color: var(--secondary); font-size: 0.8rem; text-align: right; }
    @media (max-width: 768px) {
      .chart-canvas { height: 300px; }
      table.heatmap td.provider, table.heatmap th.provider { display: none; }
    }
  </style>
</head>
<body>
  <div class="chart-card">
    <div class="chart-title">{{ .Title }}</div>
    {{ if .Subtitle }}<div class="chart-subtitle">{{ .Subtitle }}</div>{{ end }}
    {{ if .Message }}
    <div class="empty">{{ .Message }}</div>
    {{ else }}
    <div class="chart-canvas"><canvas id="lineChart"></canvas></div>
    <div class="legend-container" id="legend"></div>
    {{ end }}
  </div>
  {{ if not .Message }}
  <div class="chart-card">
    <table class="heatmap">
      <thead>
        <tr>
          <th class="provider">Provider</th>
          <th>Model</th>
          {{ range .Heatmap.Windows }}<th>{{ .Label }}</th>{{ end }}
        </tr>
      </thead>
      <tbody>
        {{ range .Heatmap.Rows }}
        <tr>
          <td class="provider" style="color: {{ .FamilyColor }}">{{ .Model.Family }}</td>
          <td class="model">{{ .Model.DisplayName }}</td>
          {{ range .Cells }}<td style="background-color: {{ .Hex }}; color: {{ .Foreground }}">{{ .Text }}</td>{{ end }}
        </tr>
        {{ end }}
      </tbody>
    </table>
  </div>
  {{ end }}
  {{ if .Source }}<div class="footer">Data source: <a href="{{ .SourceURL }}">{{ .Source }}</a></div>{{ end }}
  <script>
    const chart = {{ .ChartJSON }};
    const missingColor = "{{ missing }}";
    if (chart.status === "ok") {
      const labels = chart.windows.map(w => w.label);
      const datasets = chart.lines.map(line => ({
        label: line.model.displayName,
        modelId: line.model.id,
        data: line.points,
        borderColor: line.model.color,
        backgroundColor: line.model.color,
        borderWidth: line.emphasized ? 3 : 1.5,
        pointRadius: 2,
        spanGaps: true,
        tension: 0.2,
      }));
      const lineChart = new Chart(document.getElementById("lineChart"), {
        type: "line",
        data: { labels, datasets },
        options: {
          maintainAspectRatio: false,
          interaction: { mode: "index", intersect: false },
          scales: { y: { min: 0, max: 100, title: { display: true, text: "Accuracy (%)" } } },
          plugins: {
            legend: { display: false },
            tooltip: {
              itemSort: (a, b) => (b.raw ?? -Infinity) - (a.raw ?? -Infinity),
              callbacks: {
                title: items => "Context: " + (items.length ? items[0].label : "N/A"),
                label: item => item.dataset.label + ": " + (item.raw == null ? "N/A" : item.raw + "%"),
              },
            },
          },
        },
      });
      const legend = document.getElementById("legend");
      const setHover = id => {
        lineChart.data.datasets.forEach(ds => {
          const dim = id && ds.modelId !== id;
          ds.borderColor = dim ? ds.backgroundColor + "33" : ds.backgroundColor;
        });
        legend.querySelectorAll(".legend-item").forEach(el => el.classList.toggle("dimmed", !!id && el.dataset.model !== id));
        lineChart.update("none");
      };
      chart.legend.forEach(item => {
        const el = document.createElement("div");
        el.className = "legend-item";
        el.dataset.model = item.model.id;
        el.innerHTML = '<span class="legend-color"></span><span class="legend-text"></span>';
        el.querySelector(".legend-color").style.backgroundColor = item.model.color || missingColor;
        el.querySelector(".legend-text").textContent = item.model.displayName;
        el.addEventListener("mouseenter", () => setHover(item.model.id));
        el.addEventListener("mouseleave", () => setHover(""));
        legend.appendChild(el);
      });
    }
  </script>
</body>
</html>
`
