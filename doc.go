// Package features selects which optional backends of the graphics library
// are part of a build.
//
// A build targets one platform family (Windows, Apple, Linux or anything
// else) and may opt into XCB support. From that the selector derives a
// Set of capabilities: window-system surfaces, font backends and
// output-format surfaces. Twelve capabilities (image, PDF, PS, SVG, PNG,
// recording, script, XML, mime and observer surfaces, user fonts and the
// interpreter) are enabled everywhere.
//
// # Compile time
//
// The Has* constants describe the platform the package is compiled for
// and are chosen with build constraints, so guarded code is dropped by the
// compiler:
//
//	if features.HasWin32Font {
//	    font.Register(win32.Backend())
//	}
//
// Build with -tags xcb to opt into XCB on Linux.
//
// # Run time
//
// Select evaluates the same decision table for an arbitrary Target, which
// is what header generators and cross-compilation tooling need:
//
//	set := features.Select(features.Target{
//	    Platform:   features.PlatformLinux,
//	    IncludeXCB: true,
//	})
//	set.Has(features.XCBSurface) // true
//
// An unrecognized platform silently yields the common set. Use Require or
// a strict Resolver to turn missing capabilities into errors.
package features
