package path

import (
	"strings"

	"google.golang.org/grpc/codes"
)

func (v *Value) newNoNameComponentError() error {
	return newError(codes.FailedPrecondition, ErrorReasonNoNameComponent, "Path %#v has an empty name", v.LiteralString())
}

// WithName returns a copy of the path that has its name replaced.
// This fails if the path has no name, as is the case for "." or paths
// only consisting of an anchor.
func (v *Value) WithName(name string) (*Value, error) {
	if v.name == "" {
		return nil, v.newNoNameComponentError()
	}
	if err := v.flavor.validateName(name); err != nil {
		return nil, err
	}

	n := len(v.simplified)
	simplified := make([]string, n)
	copy(simplified, v.simplified[:n-1])
	simplified[n-1] = name

	// Only retain the literal components if the name is also the
	// final literal component. Otherwise the name was obtained by
	// resolving ".." components, which cannot be preserved.
	literal := simplified
	if l := len(v.literal); l > 0 && v.literal[l-1] == v.name {
		literal = make([]string, l)
		copy(literal, v.literal[:l-1])
		literal[l-1] = name
	}
	return newValue(v.flavor, v.anchor, literal, simplified, v.joinPolicy), nil
}

// WithStem returns a copy of the path that has the part of its name
// preceding the final suffix replaced.
func (v *Value) WithStem(stem string) (*Value, error) {
	if v.name == "" {
		return nil, v.newNoNameComponentError()
	}
	if stem == "" {
		return nil, newInvalidArgumentError(ErrorReasonInvalidComponent, "Stem is empty")
	}
	return v.WithName(stem + v.suffix)
}

// WithPureStem returns a copy of the path that has the part of its
// name preceding all suffixes replaced. The new pure stem may not
// contain any suffixes of its own.
func (v *Value) WithPureStem(pureStem string) (*Value, error) {
	if v.name == "" {
		return nil, v.newNoNameComponentError()
	}
	if pureStem == "" || pureStem[len(pureStem)-1] == '.' {
		return nil, newInvalidArgumentError(ErrorReasonInvalidComponent, "Invalid pure stem %#v", pureStem)
	}
	if strings.Contains(strings.TrimLeft(pureStem, "."), ".") {
		return nil, newInvalidArgumentError(ErrorReasonInvalidComponent, "Pure stem %#v contains suffixes", pureStem)
	}
	return v.WithName(pureStem + strings.Join(v.suffixes, ""))
}

func validateSuffix(suffix string) error {
	if suffix == "." || !strings.HasPrefix(suffix, ".") {
		return newInvalidArgumentError(ErrorReasonInvalidComponent, "Invalid suffix %#v", suffix)
	}
	return nil
}

// WithSuffix returns a copy of the path that has its final suffix
// replaced. If the path has no suffix, the suffix is added. If the
// suffix is empty, the final suffix is removed.
func (v *Value) WithSuffix(suffix string) (*Value, error) {
	if v.name == "" {
		return nil, v.newNoNameComponentError()
	}
	if suffix != "" {
		if err := validateSuffix(suffix); err != nil {
			return nil, err
		}
	}
	return v.WithName(v.stem + suffix)
}

// WithSuffixes returns a copy of the path that has all of its suffixes
// replaced. If no suffixes are provided, all suffixes are removed. A
// bare "." may only be followed by other suffixes, as Suffixes()
// returns it for names like "a..b".
func (v *Value) WithSuffixes(suffixes ...string) (*Value, error) {
	if v.name == "" {
		return nil, v.newNoNameComponentError()
	}
	for i, suffix := range suffixes {
		if suffix == "." && i < len(suffixes)-1 {
			continue
		}
		if err := validateSuffix(suffix); err != nil {
			return nil, err
		}
	}
	return v.WithName(v.pureStem + strings.Join(suffixes, ""))
}
