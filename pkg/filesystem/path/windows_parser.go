package path

import (
	"strings"
)

// Names of devices that cannot be used as file names on Windows,
// regardless of the extension that is used.
var windowsReservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

func isWindowsSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

// parseWindowsAnchor parses a Windows-style pathname string. Both
// backslashes and forward slashes are accepted as separators. Roots
// are always returned as a single backslash.
func parseWindowsAnchor(raw string) (Anchor, []string, error) {
	anchor, remainder, err := splitWindowsAnchor(raw)
	if err != nil {
		return Anchor{}, nil, err
	}
	return anchor, splitComponents(remainder, `\/`), nil
}

func splitWindowsAnchor(p string) (Anchor, string, error) {
	// Handle extended-length paths starting with \\?\, NT object
	// namespace paths starting with \??\ and Win32 device namespace
	// paths starting with \\.\.
	// https://learn.microsoft.com/en-us/windows/win32/fileio/naming-a-file
	if len(p) >= 4 && isWindowsSeparator(p[0]) && isWindowsSeparator(p[3]) {
		switch {
		case isWindowsSeparator(p[1]) && p[2] == '?':
			return splitWindowsNamespaceAnchor(`\\?`, p[4:])
		case p[1] == '?' && p[2] == '?':
			return splitWindowsNamespaceAnchor(`\??`, p[4:])
		case isWindowsSeparator(p[1]) && p[2] == '.':
			return Anchor{Drive: `\\.`, Root: `\`}, p[4:], nil
		}
	}

	if len(p) >= 2 && p[1] == ':' {
		if upperDriveLetter := p[0] &^ 0x20; upperDriveLetter < 'A' || upperDriveLetter > 'Z' {
			return Anchor{}, "", newInvalidArgumentError(ErrorReasonMalformedAnchor, "Invalid drive letter %#v", p[:1])
		}
		if len(p) >= 3 && isWindowsSeparator(p[2]) {
			return Anchor{Drive: p[:2], Root: `\`}, p[3:], nil
		}
		return Anchor{Drive: p[:2]}, p[2:], nil
	}

	if len(p) >= 2 && isWindowsSeparator(p[0]) && isWindowsSeparator(p[1]) {
		return splitUNCAnchor(`\\`, p[2:])
	}

	if len(p) >= 1 && isWindowsSeparator(p[0]) {
		return Anchor{Root: `\`}, p[1:], nil
	}
	return Anchor{}, p, nil
}

// splitWindowsNamespaceAnchor parses the remainder of a path following
// a \\?\ or \??\ prefix.
func splitWindowsNamespaceAnchor(prefix, p string) (Anchor, string, error) {
	// \\?\UNC\server\share.
	if len(p) >= 4 && strings.EqualFold(p[:3], "UNC") && isWindowsSeparator(p[3]) {
		return splitUNCAnchor(prefix+`\UNC\`, p[4:])
	}
	// \\?\X:\.
	if len(p) >= 2 && p[1] == ':' {
		if upperDriveLetter := p[0] &^ 0x20; upperDriveLetter >= 'A' && upperDriveLetter <= 'Z' {
			return Anchor{Drive: prefix + `\` + p[:2], Root: `\`}, p[2:], nil
		}
	}
	// Other objects, such as \\?\Volume{...}\ or
	// \??\GLOBALROOT\Device\HarddiskVolume1.
	return Anchor{Drive: prefix, Root: `\`}, p, nil
}

// splitUNCAnchor parses the server and share name of a UNC path. A
// path naming only a server is permitted, in which case the server
// forms the drive and there is no root.
func splitUNCAnchor(prefix, uncPath string) (Anchor, string, error) {
	serverLen := strings.IndexAny(uncPath, `\/`)
	if serverLen == -1 {
		serverLen = len(uncPath)
	}
	if serverLen < 1 {
		return Anchor{}, "", newInvalidArgumentError(ErrorReasonMalformedAnchor, "Invalid UNC path: expected a non-empty server name")
	}
	server := uncPath[:serverLen]
	if serverLen+1 >= len(uncPath) {
		return Anchor{Drive: prefix + server}, "", nil
	}

	remainder := uncPath[serverLen+1:]
	shareLen := strings.IndexAny(remainder, `\/`)
	if shareLen == -1 {
		shareLen = len(remainder)
	}
	if shareLen < 1 {
		return Anchor{}, "", newInvalidArgumentError(ErrorReasonMalformedAnchor, "Invalid UNC path: expected a non-empty share name")
	}
	share := remainder[:shareLen]
	return Anchor{Drive: prefix + server + `\` + share, Root: `\`}, remainder[shareLen:], nil
}

func validateWindowsComponent(name string) error {
	for i := 0; i < len(name); i++ {
		if c := name[i]; c < 0x20 || strings.IndexByte(`<>:"|?*`, c) >= 0 {
			return newInvalidArgumentError(ErrorReasonInvalidComponent, "Pathname component contains reserved characters")
		}
	}
	// Windows silently strips trailing periods and spaces from file
	// names, meaning the resulting file would have a different name.
	if n := len(name); n > 0 && (name[n-1] == ' ' || name[n-1] == '.') {
		return newInvalidArgumentError(ErrorReasonInvalidComponent, "Pathname component ends with a period or space")
	}
	return nil
}
