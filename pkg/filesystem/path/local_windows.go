//go:build windows

package path

// LocalPlatform is the platform of the locally running operating
// system. It should only be used at the boundary of a program to pick
// a default, as opposed to within logic that operates on paths.
const LocalPlatform = PlatformWindows
