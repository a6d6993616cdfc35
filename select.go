package features

// Target is the input of the capability selector: a platform family and
// the XCB opt-in.
type Target struct {
	Platform Platform `json:"platform" yaml:"platform"`

	// IncludeXCB requests the XCB surface and XCB shared-memory functions.
	// It only has an effect when Platform is PlatformLinux.
	IncludeXCB bool `json:"include_xcb" yaml:"include_xcb"`
}

func (t Target) String() string {
	if t.IncludeXCB {
		return t.Platform.String() + "+xcb"
	}
	return t.Platform.String()
}

var (
	commonSet = NewSet(
		UserFont, ImageSurface, MimeSurface, ObserverSurface,
		RecordingSurface, ScriptSurface, SVGSurface, PSSurface,
		PDFSurface, PNGFunctions, Interpreter, XMLSurface,
	)
	windowsSet = NewSet(Win32Surface, Win32Font)
	appleSet   = NewSet(QuartzFont)
	linuxSet   = NewSet(FCFont, FTFont, GObjectFunctions)
	xcbSet     = NewSet(XCBSurface, XCBSHMFunctions)
)

// CommonSet returns the capabilities enabled on every platform.
func CommonSet() Set { return commonSet }

// PlatformSet returns only the platform-specific capabilities for t,
// without the common set.
func PlatformSet(t Target) Set {
	switch t.Platform {
	case PlatformWindows:
		return windowsSet
	case PlatformApple:
		return appleSet
	case PlatformLinux:
		if t.IncludeXCB {
			return linuxSet.Union(xcbSet)
		}
		return linuxSet
	default:
		return 0
	}
}

// Select returns the capabilities enabled for t: the platform-specific set
// plus the common set. An unrecognized platform yields the common set
// alone; this is not an error.
//
// Select is a pure function of t.
func Select(t Target) Set {
	return PlatformSet(t).Union(commonSet)
}

// Input symbols understood by SelectSymbols and DetectTarget.
const (
	SymbolWin32      = "_WIN32"
	SymbolWin64      = "_WIN64"
	SymbolApple      = "__APPLE__"
	SymbolLinux      = "__linux__"
	SymbolIncludeXCB = "CAIRO_INCLUDE_XCB"
)

// Symbols is a set of defined input symbols, the way a C toolchain and
// the consuming build configuration would provide them.
type Symbols map[string]struct{}

// NewSymbols returns a symbol set with the given names defined.
func NewSymbols(names ...string) Symbols {
	s := make(Symbols, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Defined reports whether name is defined. A nil Symbols defines nothing.
func (s Symbols) Defined(name string) bool {
	_, ok := s[name]
	return ok
}

// SymbolsFor returns the input symbols a toolchain would define for t.
func SymbolsFor(t Target) Symbols {
	var names []string
	switch t.Platform {
	case PlatformWindows:
		names = append(names, SymbolWin32)
	case PlatformApple:
		names = append(names, SymbolApple)
	case PlatformLinux:
		names = append(names, SymbolLinux)
	}
	if t.IncludeXCB {
		names = append(names, SymbolIncludeXCB)
	}
	return NewSymbols(names...)
}

// SelectSymbols evaluates the selector directly on raw input symbols.
//
// Windows takes precedence: when _WIN32 or _WIN64 is defined nothing else
// is consulted. Otherwise __APPLE__ and __linux__ are checked one after
// the other, and CAIRO_INCLUDE_XCB is only looked at inside the Linux
// branch.
func SelectSymbols(sym Symbols) Set {
	set := commonSet
	if sym.Defined(SymbolWin32) || sym.Defined(SymbolWin64) {
		return set.Union(windowsSet)
	}
	if sym.Defined(SymbolApple) {
		set = set.Union(appleSet)
	}
	if sym.Defined(SymbolLinux) {
		set = set.Union(linuxSet)
		if sym.Defined(SymbolIncludeXCB) {
			set = set.Union(xcbSet)
		}
	}
	return set
}

// DetectTarget picks a single Target from raw symbols using the same
// precedence as SelectSymbols: Windows, then Apple, then Linux.
func DetectTarget(sym Symbols) Target {
	switch {
	case sym.Defined(SymbolWin32) || sym.Defined(SymbolWin64):
		return Target{Platform: PlatformWindows}
	case sym.Defined(SymbolApple):
		return Target{Platform: PlatformApple}
	case sym.Defined(SymbolLinux):
		return Target{Platform: PlatformLinux, IncludeXCB: sym.Defined(SymbolIncludeXCB)}
	default:
		return Target{Platform: PlatformOther}
	}
}
