//go:build windows

package features

const hostPlatform = PlatformWindows
