package features

import (
	"fmt"
	"strings"
)

// Platform identifies the target platform family a build is configured for.
//
// The zero value is PlatformOther, which selects only the common
// capabilities.
type Platform uint8

const (
	// PlatformOther is any platform outside the Windows, Apple and Linux
	// families. Only common capabilities are enabled for it.
	PlatformOther Platform = iota

	// PlatformWindows is the Windows family (32 and 64 bit).
	PlatformWindows

	// PlatformApple covers macOS and iOS.
	PlatformApple

	// PlatformLinux covers Linux, including Android.
	PlatformLinux
)

// Platforms lists every platform in declaration order.
var Platforms = []Platform{PlatformWindows, PlatformApple, PlatformLinux, PlatformOther}

var platformNames = [...]string{
	PlatformOther:   "other",
	PlatformWindows: "windows",
	PlatformApple:   "apple",
	PlatformLinux:   "linux",
}

// String returns the lower-case platform name.
func (p Platform) String() string {
	if int(p) < len(platformNames) {
		return platformNames[p]
	}
	return fmt.Sprintf("Platform(%d)", p)
}

// Known reports whether p is one of the three recognized platform families.
func (p Platform) Known() bool {
	return p == PlatformWindows || p == PlatformApple || p == PlatformLinux
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(b []byte) error {
	v, err := ParsePlatform(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePlatform converts a platform name to a Platform.
//
// Accepted names are the platform names themselves plus common aliases:
// GOOS values ("darwin", "ios", "android", ...), "win32", "win64",
// "macos" and "osx". Matching is case-insensitive. Any other GOOS value
// such as "freebsd" parses as PlatformOther; an empty or unrecognized
// string returns ErrUnknownPlatform.
func ParsePlatform(s string) (Platform, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "windows", "win32", "win64":
		return PlatformWindows, nil
	case "apple", "darwin", "ios", "macos", "osx":
		return PlatformApple, nil
	case "linux", "android":
		return PlatformLinux, nil
	case "other":
		return PlatformOther, nil
	}
	if _, ok := otherGOOS[name]; ok {
		return PlatformOther, nil
	}
	return PlatformOther, fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// otherGOOS holds GOOS values that map to PlatformOther.
var otherGOOS = map[string]struct{}{
	"aix": {}, "dragonfly": {}, "freebsd": {}, "hurd": {}, "illumos": {},
	"js": {}, "netbsd": {}, "openbsd": {}, "plan9": {}, "solaris": {},
	"wasip1": {}, "zos": {},
}

// PlatformFromGOOS maps a Go GOOS value to a Platform the same way the Go
// build constraints used by this package do: "ios" satisfies the darwin
// constraint and "android" satisfies the linux constraint.
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "darwin", "ios":
		return PlatformApple
	case "linux", "android":
		return PlatformLinux
	default:
		return PlatformOther
	}
}
