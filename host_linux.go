//go:build linux

package features

// The linux constraint is also satisfied by GOOS=android.
const hostPlatform = PlatformLinux
