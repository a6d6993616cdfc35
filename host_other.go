//go:build !windows && !darwin && !linux

package features

const hostPlatform = PlatformOther
