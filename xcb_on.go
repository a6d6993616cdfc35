//go:build xcb

package features

// hostXCB is the XCB opt-in, set with the xcb build tag.
const hostXCB = true
