package tableview

// ActionType selects an expansion-state transition.
type ActionType string

const (
	ActionToggle      ActionType = "toggle"
	ActionExpandAll   ActionType = "expand_all"
	ActionCollapseAll ActionType = "collapse_all"
)

// Action is one expansion-state transition request.
type Action struct {
	Type       ActionType
	Category   string   // ActionToggle target
	Categories []string // ActionExpandAll target set
}

// ExpandedState is the set of expanded category ids. The zero value is
// all-collapsed, which is also the default for categories first seen.
// State is presentation-only: it is keyed by category id and survives a
// data refresh as long as ids stay stable.
type ExpandedState map[string]struct{}

// NewExpandedState returns an all-collapsed state.
func NewExpandedState() ExpandedState {
	return ExpandedState{}
}

// FromCategories builds a state with the given categories expanded.
func FromCategories(categories []string) ExpandedState {
	s := make(ExpandedState, len(categories))
	for _, c := range categories {
		if c != "" {
			s[c] = struct{}{}
		}
	}
	return s
}

// Contains reports whether a category is expanded.
func (s ExpandedState) Contains(category string) bool {
	_, ok := s[category]
	return ok
}

// Categories returns the expanded category ids, order unspecified.
func (s ExpandedState) Categories() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}

// Apply returns the state after an action. The input state is never
// mutated, and toggling one category leaves every other category's
// state untouched.
func Apply(state ExpandedState, a Action) ExpandedState {
	switch a.Type {
	case ActionToggle:
		next := state.clone()
		if next.Contains(a.Category) {
			delete(next, a.Category)
		} else {
			next[a.Category] = struct{}{}
		}
		return next
	case ActionExpandAll:
		return FromCategories(a.Categories)
	case ActionCollapseAll:
		return ExpandedState{}
	default:
		return state
	}
}

func (s ExpandedState) clone() ExpandedState {
	next := make(ExpandedState, len(s)+1)
	for k := range s {
		next[k] = struct{}{}
	}
	return next
}
