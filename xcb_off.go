//go:build !xcb

package features

const hostXCB = false
