//go:build darwin

package features

// The darwin constraint is also satisfied by GOOS=ios.
const hostPlatform = PlatformApple
