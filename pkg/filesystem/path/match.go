package path

import (
	"github.com/gobwas/glob"

	"golang.org/x/text/cases"
)

// patternComponent is a single component of a Pattern.
type patternComponent struct {
	// Whether the component is "**", which matches any number of
	// components when matching full paths.
	recursive bool
	glob      glob.Glob
}

// Pattern is a compiled glob pattern that can be matched against
// paths of a single flavor. Patterns are parsed in the same way as
// paths, so that separators and anchors follow the flavor's grammar.
// Each component is matched as a glob, supporting "*", "?", character
// classes and alternatives.
type Pattern struct {
	flavor        *Flavor
	raw           string
	caseSensitive bool
	anchor        Anchor
	components    []patternComponent
}

// CompilePattern compiles a glob pattern for a given flavor. Pattern
// components are not validated, meaning that characters that are not
// permitted in pathnames may be used.
func CompilePattern(flavor *Flavor, pattern string, caseSensitive bool) (*Pattern, error) {
	if pattern == "" {
		return nil, newInvalidArgumentError(ErrorReasonInvalidPattern, "Pattern is empty")
	}
	anchor, rawComponents, err := flavor.parseAnchor(pattern)
	if err != nil {
		return nil, err
	}
	p := &Pattern{
		flavor:        flavor,
		raw:           pattern,
		caseSensitive: caseSensitive,
		anchor:        anchor,
	}
	for _, rawComponent := range rawComponents {
		if rawComponent == flavor.currentToken {
			continue
		}
		g, err := glob.Compile(p.fold(rawComponent))
		if err != nil {
			return nil, newInvalidArgumentError(ErrorReasonInvalidPattern, "Invalid pattern component %#v: %s", rawComponent, err)
		}
		p.components = append(p.components, patternComponent{
			recursive: rawComponent == "**",
			glob:      g,
		})
	}
	if anchor.IsZero() && len(p.components) == 0 {
		return nil, newInvalidArgumentError(ErrorReasonInvalidPattern, "Pattern %#v does not contain any components", pattern)
	}
	return p, nil
}

func (p *Pattern) fold(s string) string {
	if p.caseSensitive {
		return s
	}
	return cases.Fold().String(s)
}

func (p *Pattern) String() string {
	return p.raw
}

func (p *Pattern) matchAnchor(v *Value) bool {
	return p.fold(v.anchor.Drive) == p.fold(p.anchor.Drive) && v.anchor.Root == p.anchor.Root
}

func (p *Pattern) matchComponent(pc patternComponent, name string) bool {
	return pc.glob.Match(p.fold(name))
}

// Match returns true if the path matches the pattern. Relative
// patterns are matched against the final components of the path.
// Anchored patterns must match the path in its entirety. "**" behaves
// like "*".
func (p *Pattern) Match(v *Value) bool {
	if v.flavor != p.flavor {
		return false
	}
	names := v.simplified
	if !p.anchor.IsZero() {
		if !p.matchAnchor(v) || len(names) != len(p.components) {
			return false
		}
	} else if len(names) < len(p.components) {
		return false
	}
	offset := len(names) - len(p.components)
	for i, pc := range p.components {
		if !p.matchComponent(pc, names[offset+i]) {
			return false
		}
	}
	return true
}

// FullMatch returns true if the pattern matches the path in its
// entirety. "**" matches zero or more components.
func (p *Pattern) FullMatch(v *Value) bool {
	if v.flavor != p.flavor || !p.matchAnchor(v) {
		return false
	}

	// matched[j] is true if the pattern components processed so far
	// match the first j components of the path.
	names := v.simplified
	matched := make([]bool, len(names)+1)
	matched[0] = true
	for _, pc := range p.components {
		next := make([]bool, len(names)+1)
		if pc.recursive {
			for j := range matched {
				next[j] = matched[j] || (j > 0 && next[j-1])
			}
		} else {
			for j := 1; j <= len(names); j++ {
				next[j] = matched[j-1] && p.matchComponent(pc, names[j-1])
			}
		}
		matched = next
	}
	return matched[len(names)]
}

// Match returns true if the path matches a glob pattern, using the
// case sensitivity rule of the path's flavor.
func (v *Value) Match(pattern string) (bool, error) {
	return v.MatchWithCase(pattern, v.flavor.caseSensitive)
}

// MatchWithCase is identical to Match, except that the case
// sensitivity rule is provided explicitly.
func (v *Value) MatchWithCase(pattern string, caseSensitive bool) (bool, error) {
	p, err := CompilePattern(v.flavor, pattern, caseSensitive)
	if err != nil {
		return false, err
	}
	return p.Match(v), nil
}

// FullMatch returns true if the path matches a glob pattern in its
// entirety, using the case sensitivity rule of the path's flavor.
func (v *Value) FullMatch(pattern string) (bool, error) {
	return v.FullMatchWithCase(pattern, v.flavor.caseSensitive)
}

// FullMatchWithCase is identical to FullMatch, except that the case
// sensitivity rule is provided explicitly.
func (v *Value) FullMatchWithCase(pattern string, caseSensitive bool) (bool, error) {
	p, err := CompilePattern(v.flavor, pattern, caseSensitive)
	if err != nil {
		return false, err
	}
	return p.FullMatch(v), nil
}
