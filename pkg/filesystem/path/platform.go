package path

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Platform is an explicit indicator of the operating system whose path
// grammar should be used. It implements pflag.Value, so that it can be
// provided on the command line.
type Platform string

const (
	// PlatformPOSIX selects the POSIX flavor.
	PlatformPOSIX Platform = "posix"
	// PlatformWindows selects the Windows flavor.
	PlatformWindows Platform = "windows"
)

// ParsePlatform converts the name of a platform to a Platform.
func ParsePlatform(name string) (Platform, error) {
	switch p := Platform(name); p {
	case PlatformPOSIX, PlatformWindows:
		return p, nil
	default:
		return "", status.Errorf(codes.InvalidArgument, "Unknown platform %#v: expected \"posix\" or \"windows\"", name)
	}
}

// Flavor returns the path flavor that is used by the platform.
func (p Platform) Flavor() *Flavor {
	if p == PlatformWindows {
		return Windows
	}
	return POSIX
}

func (p Platform) String() string {
	return string(p)
}

// Set the platform by name.
func (p *Platform) Set(name string) error {
	parsed, err := ParsePlatform(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type returns the name of the type, as displayed in command line usage.
func (p *Platform) Type() string {
	return "platform"
}
