// internal/tui/tui_test.go
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/mwiater/longctx/internal/catalog"
	"github.com/mwiater/longctx/internal/dataset"
	"github.com/mwiater/longctx/internal/selection"
	"github.com/mwiater/longctx/internal/view"
)

func ptr(v float64) *float64 { return &v }

func testBuilder() *view.Builder {
	reg := &catalog.Registry{
		Families: []catalog.Family{
			{Name: "Alpha", Color: "#112233", Models: []string{"a1", "a2"}},
			{Name: "Beta", Color: "#445566", Models: []string{"b1"}},
		},
		TopModels: []string{"a1", "b1"},
	}
	ds := dataset.New(
		dataset.DataPoint{Window: 0, Scores: map[string]*float64{"a1": ptr(100), "a2": ptr(100), "b1": ptr(100)}},
		dataset.DataPoint{Window: 1000, Scores: map[string]*float64{"a1": ptr(50), "a2": ptr(70), "b1": ptr(60)}},
	)
	ds.Title = "Test Chart"
	return view.NewBuilder(reg, ds)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m *model, msg tea.Msg) *model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(*model)
}

// TestRows verifies the selector lists each family followed by its models
// ordered by performance.
func TestRows(t *testing.T) {
	m := initialModel(nil, testBuilder(), nil)

	var got []string
	for _, r := range m.rows {
		got = append(got, r.label)
	}
	want := []string{"Alpha", "a2", "a1", "Beta", "b1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a1", "b1"}, m.state.Selected()); diff != "" {
		t.Fatalf("initial selection mismatch (-want +got):\n%s", diff)
	}
}

// TestUpdate covers quitting, window sizing, cursor movement and toggles.
func TestUpdate(t *testing.T) {
	m := initialModel(nil, testBuilder(), nil)

	if _, cmd := m.Update(runes("q")); cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	if m.width != 140 || m.height != 40 {
		t.Errorf("Expected width 140 and height 40, got %d and %d", m.width, m.height)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Fatalf("cursor moved above the first row: %d", m.cursor)
	}

	// cursor on a2, select it
	m = update(t, m, runes("j"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if diff := cmp.Diff([]string{"a1", "b1", "a2"}, m.state.Selected()); diff != "" {
		t.Fatalf("selection after toggle (-want +got):\n%s", diff)
	}
	if hl := m.highlight(); hl.Model != "a2" {
		t.Fatalf("highlight=%+v want model a2", hl)
	}

	// family header: fully selected, so the toggle clears it
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if hl := m.highlight(); hl.Family != "Alpha" {
		t.Fatalf("highlight=%+v want family Alpha", hl)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if diff := cmp.Diff([]string{"b1"}, m.state.Selected()); diff != "" {
		t.Fatalf("selection after family toggle (-want +got):\n%s", diff)
	}
	if m.groups[0].Coverage != selection.CoverageNone {
		t.Fatalf("Alpha coverage=%v want none", m.groups[0].Coverage)
	}

	for i := 0; i < 10; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.rows)-1 {
		t.Fatalf("cursor=%d want last row %d", m.cursor, len(m.rows)-1)
	}
}

// TestModeToggles checks that show-all and heatmap switches leave the selection alone.
func TestModeToggles(t *testing.T) {
	m := initialModel(nil, testBuilder(), selection.New([]string{"b1"}))

	m = update(t, m, runes("a"))
	if !m.state.ShowAll() {
		t.Fatal("expected show-all after 'a'")
	}
	m = update(t, m, runes("m"))
	if !m.heatmap {
		t.Fatal("expected heatmap after 'm'")
	}
	m = update(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Fatal("expected full help after '?'")
	}
	if diff := cmp.Diff([]string{"b1"}, m.state.Selected()); diff != "" {
		t.Fatalf("mode toggles changed selection (-want +got):\n%s", diff)
	}
}

// TestView checks the initializing screen, the chart, the heatmap and the
// empty-selection message.
func TestView(t *testing.T) {
	m := initialModel(nil, testBuilder(), nil)

	if got := m.View(); got != "Initializing..." {
		t.Errorf("Expected view to be 'Initializing...', got '%s'", got)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	out := m.View()
	for _, want := range []string{"Test Chart", "View: chart", "Models: 2 selected", "[x] a1", "[ ] a2", "[-]", "quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}

	m = update(t, m, runes("m"))
	out = m.View()
	if !strings.Contains(out, "View: heatmap") || !strings.Contains(out, "MODEL") {
		t.Fatalf("expected heatmap view:\n%s", out)
	}

	m = initialModel(nil, testBuilder(), selection.New(nil))
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	out = m.View()
	if !strings.Contains(out, "Select at least one model to display.") {
		t.Fatalf("expected empty-selection message:\n%s", out)
	}
}
