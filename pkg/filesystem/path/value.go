package path

import (
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Key uniquely identifies a path under the equality rules of its
// flavor. Two paths have the same key if and only if they have the
// same flavor, and their anchors and simplified components are equal
// under the flavor's case sensitivity rule. Keys may be used as map
// keys.
type Key string

// Value of a path.
//
// Values are immutable. They retain the components exactly as they
// were provided by the caller ("literal components"), so that the path
// may be displayed the way it was written. Equality, hashing and
// conversion to a normalized string are all based on the simplified
// components, in which "." and ".." components have been resolved.
// The literal components are never used for comparison.
//
// All derived fields are computed upon construction, meaning that
// Values may be shared between goroutines freely.
type Value struct {
	flavor     *Flavor
	anchor     Anchor
	literal    []string
	simplified []string
	joinPolicy JoinPolicy

	name     string
	stem     string
	suffix   string
	pureStem string
	suffixes []string
	key      Key
}

// Fragment of a path that may be provided to New() and Join(). This
// interface is implemented by Raw and *Value.
type Fragment interface {
	getAnchorAndComponents(flavor *Flavor) (Anchor, []string, error)
}

// Raw is a Fragment containing a pathname string that still needs to
// be parsed.
type Raw string

func (r Raw) getAnchorAndComponents(flavor *Flavor) (Anchor, []string, error) {
	return flavor.parseAndValidate(string(r))
}

func (v *Value) getAnchorAndComponents(flavor *Flavor) (Anchor, []string, error) {
	if v.flavor != flavor {
		return Anchor{}, nil, newInvalidArgumentError(ErrorReasonFlavorMismatch, "Cannot combine %s path %#v with %s paths", v.flavor.name, v.LiteralString(), flavor.name)
	}
	return v.anchor, v.literal, nil
}

// New creates a path by concatenating one or more fragments. Only the
// first fragment may carry a drive or root. Calling New() without any
// fragments yields path ".".
func New(flavor *Flavor, fragments ...Fragment) (*Value, error) {
	return newJoined(flavor, JoinStrict, fragments)
}

// NewRelaxed is identical to New(), except that the resulting path
// uses JoinRelaxed, both for the fragments provided and for any
// subsequent calls to Join().
func NewRelaxed(flavor *Flavor, fragments ...Fragment) (*Value, error) {
	return newJoined(flavor, JoinRelaxed, fragments)
}

// Parse one or more pathname strings and concatenate them into a
// single path.
func Parse(flavor *Flavor, raw ...string) (*Value, error) {
	fragments := make([]Fragment, 0, len(raw))
	for _, r := range raw {
		fragments = append(fragments, Raw(r))
	}
	return New(flavor, fragments...)
}

// MustParse is identical to Parse, except that it panics upon failure.
func MustParse(flavor *Flavor, raw ...string) *Value {
	v, err := Parse(flavor, raw...)
	if err != nil {
		panic(err)
	}
	return v
}

// newValue creates a Value and computes all of its derived fields. The
// caller transfers ownership of the provided slices.
func newValue(flavor *Flavor, anchor Anchor, literal, simplified []string, joinPolicy JoinPolicy) *Value {
	v := &Value{
		flavor:     flavor,
		anchor:     anchor,
		literal:    literal,
		simplified: simplified,
		joinPolicy: joinPolicy,
	}
	if len(simplified) > 0 {
		v.name = simplified[len(simplified)-1]
		v.pureStem, v.suffixes = splitSuffixes(v.name)
		v.stem = v.name
		if len(v.suffixes) > 0 {
			v.suffix = v.suffixes[len(v.suffixes)-1]
			v.stem = v.name[:len(v.name)-len(v.suffix)]
		}
	}
	v.key = computeKey(flavor, anchor, simplified)
	return v
}

// newSimplifiedValue creates a Value whose literal components are
// identical to its simplified components.
func newSimplifiedValue(flavor *Flavor, anchor Anchor, simplified []string, joinPolicy JoinPolicy) *Value {
	return newValue(flavor, anchor, simplified, simplified, joinPolicy)
}

// splitSuffixes splits a filename into its pure stem and its suffixes.
// Leading periods, as used by hidden files, are part of the stem.
// Names ending with a period have no suffixes.
func splitSuffixes(name string) (string, []string) {
	if name == "" || name[len(name)-1] == '.' {
		return name, nil
	}
	trimmed := strings.TrimLeft(name, ".")
	dot := strings.IndexByte(trimmed, '.')
	if dot < 0 {
		return name, nil
	}
	suffixes := strings.SplitAfter(trimmed[dot+1:], ".")
	for i, s := range suffixes {
		suffixes[i] = "." + strings.TrimSuffix(s, ".")
	}
	return name[:len(name)-len(trimmed)+dot], suffixes
}

func computeKey(flavor *Flavor, anchor Anchor, simplified []string) Key {
	var sb strings.Builder
	sb.WriteString(anchor.Drive)
	sb.WriteByte(0)
	sb.WriteString(anchor.Root)
	for _, component := range simplified {
		sb.WriteByte(0)
		sb.WriteString(component)
	}
	return Key(flavor.name + "\x00" + flavor.fold(sb.String()))
}

// Flavor returns the flavor of the path.
func (v *Value) Flavor() *Flavor {
	return v.flavor
}

// Anchor returns the drive and root of the path.
func (v *Value) Anchor() Anchor {
	return v.anchor
}

// Drive returns the drive of the path, such as "C:" or
// "\\server\share". It is always empty for POSIX paths.
func (v *Value) Drive() string {
	return v.anchor.Drive
}

// Root returns the root of the path, if any.
func (v *Value) Root() string {
	return v.anchor.Root
}

// Components returns the simplified components of the path. These
// exclude the anchor.
func (v *Value) Components() []string {
	return append([]string(nil), v.simplified...)
}

// LiteralComponents returns the components of the path as they were
// provided upon construction.
func (v *Value) LiteralComponents() []string {
	return append([]string(nil), v.literal...)
}

// Parts returns the anchor of the path, if any, followed by its
// simplified components.
func (v *Value) Parts() []string {
	parts := make([]string, 0, len(v.simplified)+1)
	if !v.anchor.IsZero() {
		parts = append(parts, v.anchor.String())
	}
	return append(parts, v.simplified...)
}

// Name returns the final simplified component of the path, or the
// empty string if the path only consists of an anchor.
func (v *Value) Name() string {
	return v.name
}

// Stem returns the name of the path without its final suffix.
func (v *Value) Stem() string {
	return v.stem
}

// Suffix returns the final suffix of the name of the path, including
// the leading period.
func (v *Value) Suffix() string {
	return v.suffix
}

// PureStem returns the name of the path without any of its suffixes.
// Concatenating the pure stem and the suffixes yields the name.
func (v *Value) PureStem() string {
	return v.pureStem
}

// Suffixes returns all suffixes of the name of the path, each
// including the leading period.
func (v *Value) Suffixes() []string {
	return append([]string(nil), v.suffixes...)
}

// JoinPolicy returns the policy that is used by Join() to handle
// fragments that carry a drive or root.
func (v *Value) JoinPolicy() JoinPolicy {
	return v.joinPolicy
}

// IsAbsolute returns true if the path has a root and, for flavors that
// support them, a drive.
func (v *Value) IsAbsolute() bool {
	if v.flavor.driveSupported && v.anchor.Drive == "" {
		return false
	}
	return v.anchor.Root != ""
}

// IsReserved returns true if the name of the path refers to a device
// that is reserved by the operating system, such as "NUL" on Windows.
func (v *Value) IsReserved() bool {
	if v.pureStem == "" {
		return false
	}
	_, ok := v.flavor.reservedNames[strings.ToUpper(v.pureStem)]
	return ok
}

func (v *Value) writeToStringBuilder(separator string, components []string, sb *strings.Builder) {
	sb.WriteString(v.anchor.Drive)
	if v.anchor.Root != "" {
		sb.WriteString(separator)
	} else if len(components) > 0 && v.anchor.Drive != "" && !strings.HasSuffix(v.anchor.Drive, ":") {
		// UNC drives naming only a server still need to be
		// separated from the first component.
		sb.WriteString(separator)
	}
	for i, component := range components {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(component)
	}
}

func (v *Value) getString(separator string, components []string) string {
	if v.anchor.IsZero() && len(components) == 0 {
		return "."
	}
	var sb strings.Builder
	v.writeToStringBuilder(separator, components, &sb)
	return sb.String()
}

// LiteralString returns a string representation of the path that
// uses the components as they were provided upon construction.
func (v *Value) LiteralString() string {
	return v.getString(v.flavor.separator, v.literal)
}

// NormalizedString returns a string representation of the path that
// uses its simplified components. This is the representation that
// should be passed to the operating system.
func (v *Value) NormalizedString() string {
	return v.getString(v.flavor.separator, v.simplified)
}

func (v *Value) String() string {
	return v.LiteralString()
}

// AsPOSIX returns the literal string representation of the path, using
// forward slashes as separators.
func (v *Value) AsPOSIX() string {
	s := v.getString("/", v.literal)
	if v.flavor.separator != "/" {
		// Drives of UNC paths contain separators as well.
		s = strings.ReplaceAll(s, v.flavor.separator, "/")
	}
	return s
}

// Key returns a value that uniquely identifies the path under the
// equality rules of its flavor.
func (v *Value) Key() Key {
	return v.key
}

// Equal returns true if two paths have the same flavor, and their
// anchors and simplified components are identical under the flavor's
// case sensitivity rule.
func (v *Value) Equal(other *Value) bool {
	return v.key == other.key
}

// Hash returns a hash of the path that is consistent with Equal().
func (v *Value) Hash() uint64 {
	return xxhash.Sum64String(string(v.key))
}

// Parent returns the path with its final simplified component
// removed. The parent of a path that only consists of an anchor, or
// of path ".", is the path itself.
func (v *Value) Parent() *Value {
	if len(v.simplified) == 0 {
		return v
	}
	return newSimplifiedValue(v.flavor, v.anchor, v.simplified[:len(v.simplified)-1:len(v.simplified)-1], v.joinPolicy)
}

// Parents returns a sequence of all ancestors of the path, starting
// with its parent and ending with the anchor, or "." for relative
// paths.
func (v *Value) Parents() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		for i := len(v.simplified) - 1; i >= 0; i-- {
			if !yield(newSimplifiedValue(v.flavor, v.anchor, v.simplified[:i:i], v.joinPolicy)) {
				return
			}
		}
	}
}
