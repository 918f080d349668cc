package path

import (
	"strings"
)

// parsePOSIXAnchor parses a UNIX-style pathname string. Paths starting
// with one or more slashes are anchored at the root directory.
func parsePOSIXAnchor(raw string) (Anchor, []string, error) {
	if raw != "" && raw[0] == '/' {
		return Anchor{Root: "/"}, splitComponents(raw, "/"), nil
	}
	return Anchor{}, splitComponents(raw, "/"), nil
}

func validatePOSIXComponent(name string) error {
	// Unix-style paths are generally passed to system calls that
	// accept C strings. There is no way these can accept null
	// bytes.
	if strings.ContainsRune(name, '\x00') {
		return newInvalidArgumentError(ErrorReasonInvalidComponent, "Path contains a null byte")
	}
	return nil
}
