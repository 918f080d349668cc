package path

import (
	"github.com/buildbarn/bb-pathlib/pkg/util"
)

// validateName checks whether a string may be used as a single
// ordinary pathname component. Names that are empty, ".", "..",
// contain a separator or would be parsed as a drive are rejected.
func (f *Flavor) validateName(name string) error {
	if name == "" {
		return newInvalidArgumentError(ErrorReasonInvalidComponent, "Pathname component is empty")
	}
	if name == f.currentToken || name == f.parentToken {
		return newInvalidArgumentError(ErrorReasonInvalidComponent, "Pathname component %#v refers to a directory instead of a name", name)
	}
	if f.containsSeparator(name) {
		return newInvalidArgumentError(ErrorReasonInvalidComponent, "Pathname component %#v contains a separator", name)
	}
	if anchor, _, err := f.parseAnchor(name); err != nil || !anchor.IsZero() {
		return newInvalidArgumentError(ErrorReasonInvalidComponent, "Pathname component %#v carries a drive or root", name)
	}
	if err := f.validateComponent(name); err != nil {
		return util.StatusWrapf(err, "Invalid pathname component %#v", name)
	}
	return nil
}

// Child appends a single pathname component to the path. This is
// equivalent to calling Join() with a single component, except that
// the name is not parsed. The name must be a valid ordinary filename.
func (v *Value) Child(name string) (*Value, error) {
	if err := v.flavor.validateName(name); err != nil {
		return nil, err
	}
	literal := make([]string, 0, len(v.literal)+1)
	literal = append(append(literal, v.literal...), name)
	simplified := make([]string, 0, len(v.simplified)+1)
	simplified = append(append(simplified, v.simplified...), name)
	return newValue(v.flavor, v.anchor, literal, simplified, v.joinPolicy), nil
}

// MustChild is identical to Child, except that it panics upon failure.
func (v *Value) MustChild(name string) *Value {
	child, err := v.Child(name)
	if err != nil {
		panic(err)
	}
	return child
}
