package path

import (
	"strings"

	"github.com/buildbarn/bb-pathlib/pkg/util"

	"golang.org/x/text/cases"
)

// Anchor is the drive and root prefix of a path. Both fields are
// empty for relative paths. On POSIX the drive is always empty.
type Anchor struct {
	Drive string
	Root  string
}

// IsZero returns true if the anchor has neither a drive nor a root.
func (a Anchor) IsZero() bool {
	return a.Drive == "" && a.Root == ""
}

func (a Anchor) String() string {
	return a.Drive + a.Root
}

// AnchorParser splits a pathname string into its anchor and its
// components. Implementations must discard empty components that are
// caused by repeated or trailing separators, but must retain "." and
// ".." components, as resolving those is the responsibility of the
// caller. Parsers never access the file system.
type AnchorParser func(raw string) (Anchor, []string, error)

// ComponentValidator checks whether a single pathname component may be
// part of a path of a given flavor.
type ComponentValidator func(name string) error

// Flavor of pathname strings. A Flavor is a read-only record that
// describes a path grammar. All of the logic that is shared between
// flavors is implemented by Value. The only place where flavors differ
// in behavior is the AnchorParser and ComponentValidator they carry.
type Flavor struct {
	name              string
	separator         string
	separators        string
	caseSensitive     bool
	driveSupported    bool
	currentToken      string
	parentToken       string
	parseAnchor       AnchorParser
	validateComponent ComponentValidator
	reservedNames     map[string]struct{}
}

// POSIX is the flavor of paths on UNIX-like operating systems. Paths
// are separated by slashes, are case sensitive and have no drives.
var POSIX = &Flavor{
	name:              "posix",
	separator:         "/",
	separators:        "/",
	caseSensitive:     true,
	currentToken:      ".",
	parentToken:       "..",
	parseAnchor:       parsePOSIXAnchor,
	validateComponent: validatePOSIXComponent,
}

// Windows is the flavor of paths on Windows. Paths are separated by
// backslashes, though forward slashes are accepted as well. Paths are
// compared case insensitively, and may be anchored at drive letters or
// UNC shares.
var Windows = &Flavor{
	name:              "windows",
	separator:         `\`,
	separators:        `\/`,
	caseSensitive:     false,
	driveSupported:    true,
	currentToken:      ".",
	parentToken:       "..",
	parseAnchor:       parseWindowsAnchor,
	validateComponent: validateWindowsComponent,
	reservedNames:     windowsReservedNames,
}

// Name of the flavor, such as "posix" or "windows".
func (f *Flavor) Name() string {
	return f.name
}

func (f *Flavor) String() string {
	return f.name
}

// Separator returns the separator that is emitted when converting
// paths to strings.
func (f *Flavor) Separator() string {
	return f.separator
}

// IsCaseSensitive returns true if paths of this flavor are compared
// case sensitively.
func (f *Flavor) IsCaseSensitive() bool {
	return f.caseSensitive
}

// SupportsDrives returns true if paths of this flavor may carry a
// drive. Paths of such flavors are only absolute if they have both a
// drive and a root.
func (f *Flavor) SupportsDrives() bool {
	return f.driveSupported
}

// CurrentToken returns the component that refers to the current
// directory, ".".
func (f *Flavor) CurrentToken() string {
	return f.currentToken
}

// ParentToken returns the component that refers to the parent
// directory, "..".
func (f *Flavor) ParentToken() string {
	return f.parentToken
}

// Parse a pathname string into its anchor and components, without
// validating the components.
func (f *Flavor) Parse(raw string) (Anchor, []string, error) {
	return f.parseAnchor(raw)
}

// fold returns the representation of a string that is used to compare
// paths of this flavor.
func (f *Flavor) fold(s string) string {
	if f.caseSensitive {
		return s
	}
	return cases.Fold().String(s)
}

func (f *Flavor) equal(a, b string) bool {
	return f.fold(a) == f.fold(b)
}

func (f *Flavor) isSeparator(c byte) bool {
	return strings.IndexByte(f.separators, c) >= 0
}

func (f *Flavor) containsSeparator(s string) bool {
	return strings.ContainsAny(s, f.separators)
}

// parseAndValidate parses a pathname string and checks each of the
// components that isn't "." or "..".
func (f *Flavor) parseAndValidate(raw string) (Anchor, []string, error) {
	anchor, components, err := f.parseAnchor(raw)
	if err != nil {
		return Anchor{}, nil, err
	}
	for _, component := range components {
		if component == f.currentToken || component == f.parentToken {
			continue
		}
		if err := f.validateComponent(component); err != nil {
			return Anchor{}, nil, util.StatusWrapf(err, "Invalid pathname component %#v", component)
		}
	}
	return anchor, components, nil
}

// splitComponents splits a string on any of the provided separators,
// discarding empty components.
func splitComponents(s, separators string) []string {
	components := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	if len(components) == 0 {
		return nil
	}
	return components
}
