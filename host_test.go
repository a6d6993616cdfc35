package features

import (
	"runtime"
	"testing"
)

// constSet assembles a Set from the Has* constants.
func constSet() Set {
	flags := [numCapabilities]bool{
		Win32Surface:     HasWin32Surface,
		Win32Font:        HasWin32Font,
		QuartzFont:       HasQuartzFont,
		FCFont:           HasFCFont,
		FTFont:           HasFTFont,
		GObjectFunctions: HasGObjectFunctions,
		XCBSurface:       HasXCBSurface,
		XCBSHMFunctions:  HasXCBSHMFunctions,
		UserFont:         HasUserFont,
		ImageSurface:     HasImageSurface,
		MimeSurface:      HasMimeSurface,
		ObserverSurface:  HasObserverSurface,
		RecordingSurface: HasRecordingSurface,
		ScriptSurface:    HasScriptSurface,
		SVGSurface:       HasSVGSurface,
		PSSurface:        HasPSSurface,
		PDFSurface:       HasPDFSurface,
		PNGFunctions:     HasPNGFunctions,
		Interpreter:      HasInterpreter,
		XMLSurface:       HasXMLSurface,
	}
	var s Set
	for i, on := range flags {
		if on {
			s = s.With(Capability(i))
		}
	}
	return s
}

func TestHostSetMatchesConstants(t *testing.T) {
	if got, want := HostSet(), constSet(); got != want {
		t.Errorf("HostSet() = %v, constants say %v", got, want)
	}
}

func TestHostPlatformMatchesGOOS(t *testing.T) {
	if got, want := Host().Platform, PlatformFromGOOS(runtime.GOOS); got != want {
		t.Errorf("Host().Platform = %v, want %v for GOOS %s", got, want, runtime.GOOS)
	}
}

func TestHostXCBOnlyOnLinux(t *testing.T) {
	if HasXCBSurface && Host().Platform != PlatformLinux {
		t.Errorf("HasXCBSurface set on %v", Host().Platform)
	}
	if HasXCBSurface != HasXCBSHMFunctions {
		t.Error("XCB surface and XCB SHM functions must be enabled together")
	}
}
