// internal/selection/selection.go
// Package selection tracks which models the user has chosen to display.
package selection

// Coverage describes how much of a family is selected.
type Coverage int

const (
	// CoverageNone means no member is selected.
	CoverageNone Coverage = iota
	// CoveragePartial means some but not all members are selected.
	CoveragePartial
	// CoverageAll means every member is selected.
	CoverageAll
)

// String returns the coverage name.
func (c Coverage) String() string {
	switch c {
	case CoverageAll:
		return "all"
	case CoveragePartial:
		return "partial"
	default:
		return "none"
	}
}

// MarshalText lets coverage serialize by name.
func (c Coverage) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a coverage name. Unknown names read as none.
func (c *Coverage) UnmarshalText(text []byte) error {
	switch string(text) {
	case "all":
		*c = CoverageAll
	case "partial":
		*c = CoveragePartial
	default:
		*c = CoverageNone
	}
	return nil
}

// State is the set of selected models plus the show-all flag. Selection
// order is preserved because it breaks ranking ties downstream.
// A State has a single owner and is not safe for concurrent use.
type State struct {
	selected []string
	showAll  bool
}

// New starts a selection from the given models, dropping duplicates.
func New(initial []string) *State {
	s := &State{}
	for _, model := range initial {
		if !s.Contains(model) {
			s.selected = append(s.selected, model)
		}
	}
	return s
}

// Selected returns the selected models in the order they were added.
func (s *State) Selected() []string {
	return append([]string(nil), s.selected...)
}

// Len returns the number of selected models.
func (s *State) Len() int { return len(s.selected) }

// Contains reports whether model is selected.
func (s *State) Contains(model string) bool {
	return s.index(model) >= 0
}

// Toggle removes model if selected, otherwise appends it.
func (s *State) Toggle(model string) {
	if i := s.index(model); i >= 0 {
		s.selected = append(s.selected[:i:i], s.selected[i+1:]...)
		return
	}
	s.selected = append(s.selected, model)
}

// Coverage reports how many of members are selected.
func (s *State) Coverage(members []string) Coverage {
	count := 0
	for _, model := range members {
		if s.Contains(model) {
			count++
		}
	}
	switch {
	case count == 0:
		return CoverageNone
	case count == len(members):
		return CoverageAll
	default:
		return CoveragePartial
	}
}

// ToggleFamily deselects every member when all are selected; otherwise it
// selects the missing members, so a partial family becomes fully selected.
func (s *State) ToggleFamily(members []string) {
	if len(members) > 0 && s.Coverage(members) == CoverageAll {
		for _, model := range members {
			if s.Contains(model) {
				s.Toggle(model)
			}
		}
		return
	}
	for _, model := range members {
		if !s.Contains(model) {
			s.Toggle(model)
		}
	}
}

// ShowAll reports whether every model is displayed regardless of selection.
func (s *State) ShowAll() bool { return s.showAll }

// SetShowAll sets the show-all flag without touching the selection.
func (s *State) SetShowAll(show bool) { s.showAll = show }

func (s *State) index(model string) int {
	for i, m := range s.selected {
		if m == model {
			return i
		}
	}
	return -1
}
