package features

import "testing"

func TestSelectMatrix(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   Set
	}{
		{
			name:   "windows",
			target: Target{Platform: PlatformWindows},
			want:   CommonSet().Union(NewSet(Win32Surface, Win32Font)),
		},
		{
			name:   "windows ignores xcb",
			target: Target{Platform: PlatformWindows, IncludeXCB: true},
			want:   CommonSet().Union(NewSet(Win32Surface, Win32Font)),
		},
		{
			name:   "apple",
			target: Target{Platform: PlatformApple},
			want:   CommonSet().With(QuartzFont),
		},
		{
			name:   "apple ignores xcb",
			target: Target{Platform: PlatformApple, IncludeXCB: true},
			want:   CommonSet().With(QuartzFont),
		},
		{
			name:   "linux",
			target: Target{Platform: PlatformLinux},
			want:   CommonSet().Union(NewSet(FCFont, FTFont, GObjectFunctions)),
		},
		{
			name:   "linux with xcb",
			target: Target{Platform: PlatformLinux, IncludeXCB: true},
			want: CommonSet().Union(NewSet(
				FCFont, FTFont, GObjectFunctions, XCBSurface, XCBSHMFunctions,
			)),
		},
		{
			name:   "other",
			target: Target{Platform: PlatformOther},
			want:   CommonSet(),
		},
		{
			name:   "other ignores xcb",
			target: Target{Platform: PlatformOther, IncludeXCB: true},
			want:   CommonSet(),
		},
		{
			name:   "out of range platform",
			target: Target{Platform: Platform(42)},
			want:   CommonSet(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.target)
			if got != tt.want {
				t.Errorf("Select(%v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestSelectExcludesOtherPlatforms(t *testing.T) {
	windowsOnly := NewSet(Win32Surface, Win32Font)
	linuxOnly := NewSet(FCFont, FTFont, GObjectFunctions, XCBSurface, XCBSHMFunctions)

	tests := []struct {
		platform  Platform
		forbidden Set
	}{
		{PlatformWindows, linuxOnly.With(QuartzFont)},
		{PlatformApple, linuxOnly.Union(windowsOnly)},
		{PlatformLinux, windowsOnly.With(QuartzFont)},
		{PlatformOther, linuxOnly.Union(windowsOnly).With(QuartzFont)},
	}
	for _, tt := range tests {
		for _, xcb := range []bool{false, true} {
			got := Select(Target{Platform: tt.platform, IncludeXCB: xcb})
			if leaked := got.Intersect(tt.forbidden); !leaked.Empty() {
				t.Errorf("Select(%v, xcb=%v) leaked %v", tt.platform, xcb, leaked)
			}
		}
	}
}

func TestSelectAlwaysIncludesCommon(t *testing.T) {
	for _, p := range Platforms {
		for _, xcb := range []bool{false, true} {
			got := Select(Target{Platform: p, IncludeXCB: xcb})
			if got.Intersect(CommonSet()) != CommonSet() {
				t.Errorf("Select(%v, xcb=%v) = %v, missing common capabilities", p, xcb, got)
			}
		}
	}
}

func TestSelectIdempotent(t *testing.T) {
	for _, p := range Platforms {
		for _, xcb := range []bool{false, true} {
			target := Target{Platform: p, IncludeXCB: xcb}
			first := Select(target)
			second := Select(target)
			if first != second {
				t.Errorf("Select(%v) not stable: %v then %v", target, first, second)
			}
		}
	}
}

func TestCommonSetContents(t *testing.T) {
	want := []Capability{
		UserFont, ImageSurface, MimeSurface, ObserverSurface, RecordingSurface,
		ScriptSurface, SVGSurface, PSSurface, PDFSurface, PNGFunctions,
		Interpreter, XMLSurface,
	}
	if got := CommonSet().Len(); got != len(want) {
		t.Fatalf("CommonSet().Len() = %d, want %d", got, len(want))
	}
	for _, c := range want {
		if !CommonSet().Has(c) {
			t.Errorf("CommonSet() missing %v", c)
		}
		if !c.Common() {
			t.Errorf("%v.Common() = false", c)
		}
	}
}

func TestSelectSymbols(t *testing.T) {
	linux := NewSet(FCFont, FTFont, GObjectFunctions)
	xcb := NewSet(XCBSurface, XCBSHMFunctions)
	win := NewSet(Win32Surface, Win32Font)

	tests := []struct {
		name    string
		symbols Symbols
		want    Set
	}{
		{"none", nil, CommonSet()},
		{"win32", NewSymbols(SymbolWin32), CommonSet().Union(win)},
		{"win64", NewSymbols(SymbolWin64), CommonSet().Union(win)},
		{"windows wins over apple and linux",
			NewSymbols(SymbolWin64, SymbolApple, SymbolLinux, SymbolIncludeXCB),
			CommonSet().Union(win)},
		{"apple", NewSymbols(SymbolApple), CommonSet().With(QuartzFont)},
		{"apple ignores xcb", NewSymbols(SymbolApple, SymbolIncludeXCB), CommonSet().With(QuartzFont)},
		{"linux", NewSymbols(SymbolLinux), CommonSet().Union(linux)},
		{"linux xcb", NewSymbols(SymbolLinux, SymbolIncludeXCB), CommonSet().Union(linux).Union(xcb)},
		{"xcb alone", NewSymbols(SymbolIncludeXCB), CommonSet()},
		{"apple and linux", NewSymbols(SymbolApple, SymbolLinux),
			CommonSet().With(QuartzFont).Union(linux)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectSymbols(tt.symbols); got != tt.want {
				t.Errorf("SelectSymbols() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectSymbolsMatchesSelect(t *testing.T) {
	for _, p := range Platforms {
		for _, xcb := range []bool{false, true} {
			target := Target{Platform: p, IncludeXCB: xcb}
			if got, want := SelectSymbols(SymbolsFor(target)), Select(target); got != want {
				t.Errorf("SelectSymbols(SymbolsFor(%v)) = %v, want %v", target, got, want)
			}
		}
	}
}

func TestDetectTarget(t *testing.T) {
	tests := []struct {
		name    string
		symbols Symbols
		want    Target
	}{
		{"empty", NewSymbols(), Target{Platform: PlatformOther}},
		{"windows precedence", NewSymbols(SymbolApple, SymbolWin32), Target{Platform: PlatformWindows}},
		{"apple before linux", NewSymbols(SymbolLinux, SymbolApple), Target{Platform: PlatformApple}},
		{"linux xcb", NewSymbols(SymbolLinux, SymbolIncludeXCB), Target{Platform: PlatformLinux, IncludeXCB: true}},
		{"xcb without linux", NewSymbols(SymbolIncludeXCB), Target{Platform: PlatformOther}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectTarget(tt.symbols); got != tt.want {
				t.Errorf("DetectTarget() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func BenchmarkSelect(b *testing.B) {
	target := Target{Platform: PlatformLinux, IncludeXCB: true}
	b.ReportAllocs()
	for b.Loop() {
		_ = Select(target)
	}
}
