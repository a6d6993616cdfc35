package features

// Build-time capability constants for the platform this package is compiled
// for. Each constant mirrors one CAIRO_HAS_* symbol. Because they are
// constants, code guarded by them is removed by the compiler when the
// capability is absent:
//
//	if features.HasXCBSurface {
//	    registerXCB()
//	}
//
// The XCB opt-in is the xcb build tag (go build -tags xcb); it only has an
// effect on Linux.
const (
	HasWin32Surface     = hostPlatform == PlatformWindows
	HasWin32Font        = hostPlatform == PlatformWindows
	HasQuartzFont       = hostPlatform == PlatformApple
	HasFCFont           = hostPlatform == PlatformLinux
	HasFTFont           = hostPlatform == PlatformLinux
	HasGObjectFunctions = hostPlatform == PlatformLinux
	HasXCBSurface       = hostPlatform == PlatformLinux && hostXCB
	HasXCBSHMFunctions  = hostPlatform == PlatformLinux && hostXCB

	HasUserFont         = true
	HasImageSurface     = true
	HasMimeSurface      = true
	HasObserverSurface  = true
	HasRecordingSurface = true
	HasScriptSurface    = true
	HasSVGSurface       = true
	HasPSSurface        = true
	HasPDFSurface       = true
	HasPNGFunctions     = true
	HasInterpreter      = true
	HasXMLSurface       = true
)

// Host returns the target this package was compiled for.
func Host() Target {
	return Target{Platform: hostPlatform, IncludeXCB: hostXCB}
}

// HostSet returns the capabilities of the current build. It always equals
// the set of Has* constants that are true.
func HostSet() Set {
	return Select(Host())
}
