// internal/tui/tui.go
// Package tui provides the interactive terminal chart with its grouped model
// selector.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/longctx/internal/appconfig"
	"github.com/mwiater/longctx/internal/logging"
	"github.com/mwiater/longctx/internal/render"
	"github.com/mwiater/longctx/internal/selection"
	"github.com/mwiater/longctx/internal/util"
	"github.com/mwiater/longctx/internal/view"
)

// Config represents the shared application configuration for the TUI.
type Config = appconfig.Config

// selectorWidth is the column budget for the model selector panel.
const selectorWidth = 40

// row is one line of the selector: a family header or one of its models.
type row struct {
	family string
	model  string
	label  string
}

func (r row) isFamily() bool { return r.model == "" }

// model is the Bubble Tea model for the chart screen.
type model struct {
	config  *Config
	builder *view.Builder
	state   *selection.State
	heatmap bool
	cursor  int
	rows    []row
	groups  []view.FamilyGroup
	help    help.Model
	width   int
	height  int
}

// initialModel creates the chart model over a builder and a starting selection.
func initialModel(cfg *Config, builder *view.Builder, state *selection.State) *model {
	if cfg == nil {
		cfg = &Config{}
	}
	if state == nil {
		state = builder.InitialSelection()
	}
	m := &model{
		config:  cfg,
		builder: builder,
		state:   state,
		heatmap: cfg.Heatmap,
		help:    help.New(),
	}
	m.refresh()
	return m
}

// Run starts the interactive chart and blocks until the user quits or ctx ends.
func Run(ctx context.Context, cfg *Config, builder *view.Builder, state *selection.State) error {
	m := initialModel(cfg, builder, state)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run chart ui: %w", err)
	}
	logging.LogEvent("tui closed with %d models selected (show all: %t)", m.state.Len(), m.state.ShowAll())
	return nil
}

// refresh rebuilds the selector rows from the current selection.
func (m *model) refresh() {
	m.groups = m.builder.Selector(m.state)
	m.rows = m.rows[:0]
	for _, group := range m.groups {
		m.rows = append(m.rows, row{family: group.Name, label: group.Name})
		for _, mv := range group.Models {
			m.rows = append(m.rows, row{family: group.Name, model: mv.ID, label: mv.DisplayName})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = util.Max(0, len(m.rows)-1)
	}
}

// highlight is the hover state implied by the cursor.
func (m *model) highlight() view.Highlight {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return view.Highlight{}
	}
	r := m.rows[m.cursor]
	if r.isFamily() {
		return view.Highlight{Family: r.family}
	}
	return view.Highlight{Model: r.model}
}

func (m *model) group(name string) (view.FamilyGroup, bool) {
	for _, g := range m.groups {
		if g.Name == name {
			return g, true
		}
	}
	return view.FamilyGroup{}, false
}

// toggle flips the row under the cursor: a whole family or one model.
func (m *model) toggle() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	r := m.rows[m.cursor]
	if r.isFamily() {
		if family, ok := m.builder.Registry.Family(r.family); ok {
			m.state.ToggleFamily(family.Models)
			logging.LogDebug("toggled family %s: %d selected", r.family, m.state.Len())
		}
	} else {
		m.state.Toggle(r.model)
		logging.LogDebug("toggled %s: %d selected", r.model, m.state.Len())
	}
	m.refresh()
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			m.toggle()
		case key.Matches(msg, keys.ShowAll):
			m.state.SetShowAll(!m.state.ShowAll())
			m.refresh()
		case key.Matches(msg, keys.Heatmap):
			m.heatmap = !m.heatmap
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the selector beside the chart, or stacked when narrow.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	narrow := m.width < m.config.NarrowColumns()
	chartWidth := m.width - selectorWidth - 2
	if narrow {
		chartWidth = m.width
	}

	chart := m.builder.Build(m.state, m.highlight())
	opts := render.Options{Width: chartWidth, NarrowWidth: m.config.NarrowColumns()}
	var body strings.Builder
	var err error
	if m.heatmap {
		if err = render.Header(&body, chart); err == nil {
			err = render.Heatmap(&body, chart, opts)
		}
	} else {
		err = render.Chart(&body, chart, opts)
	}
	if err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
		return errorStyle.Render(fmt.Sprintf("Error: %v", err))
	}

	badges := lipgloss.JoinHorizontal(lipgloss.Top, renderViewBadge(m.heatmap), renderModeBadge(m.state.ShowAll(), m.state.Len()))
	selector := m.selectorView()
	var main string
	if narrow {
		main = lipgloss.JoinVertical(lipgloss.Left, body.String(), selector)
	} else {
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(selectorWidth).MarginRight(2).Render(selector),
			body.String(),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, badges, "", main, m.help.View(keys))
}

var (
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	checkedStyle  = lipgloss.NewStyle().Bold(true)
	uncheckedText = lipgloss.NewStyle().Faint(true)
)

// selectorView draws the grouped model list with check marks.
func (m *model) selectorView() string {
	var b strings.Builder
	for i, r := range m.rows {
		var line string
		if r.isFamily() {
			g, _ := m.group(r.family)
			mark := "[ ]"
			switch g.Coverage {
			case selection.CoverageAll:
				mark = "[x]"
			case selection.CoveragePartial:
				mark = "[-]"
			}
			name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(g.Color)).Render(r.label)
			line = fmt.Sprintf("%s %s", mark, name)
		} else {
			label := util.TruncateWidth(r.label, selectorWidth-8)
			if m.state.Contains(r.model) {
				line = "  " + checkedStyle.Render("[x] "+label)
			} else {
				line = "  " + uncheckedText.Render("[ ] "+label)
			}
		}
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
