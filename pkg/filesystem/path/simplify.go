package path

// simplifier computes the simplified components of a path, by
// resolving "." and ".." components against the components that
// precede them.
//
// Leading ".." components of paths without a drive or root cannot be
// resolved, as there is nothing to bound them against. These are
// retained, and are never removed by subsequent ".." components. The index of the first
// component that may be removed is tracked in firstReversibleIndex.
type simplifier struct {
	flavor               *Flavor
	anchored             bool
	components           []string
	firstReversibleIndex int
}

func (s *simplifier) push(name string) {
	switch name {
	case s.flavor.currentToken:
		// "." never changes the path.
	case s.flavor.parentToken:
		if s.firstReversibleIndex < len(s.components) {
			// The last component is an ordinary name, meaning
			// that it can be cancelled out.
			s.components = s.components[:len(s.components)-1]
		} else if s.anchored && len(s.components) == 0 {
			// Don't add ".." components if we're already at
			// the anchor. That would yield "/.." or "C:..",
			// which can't be expressed relative to the anchor.
		} else {
			s.components = append(s.components, name)
			s.firstReversibleIndex = len(s.components)
		}
	default:
		s.components = append(s.components, name)
	}
}

// simplify the literal components of a path with a given anchor.
// Simplifying an already simplified list of components yields an
// identical list.
func simplify(flavor *Flavor, anchor Anchor, literal []string) []string {
	s := simplifier{
		flavor:     flavor,
		anchored:   !anchor.IsZero(),
		components: make([]string, 0, len(literal)),
	}
	for _, name := range literal {
		s.push(name)
	}
	return s.components
}
