package features

import (
	"fmt"
	"strings"
)

// Capability is a single optional backend or function group that a build
// may include.
//
// Each capability corresponds to one CAIRO_HAS_* symbol of the classic
// cairo-features.h header; see Symbol.
type Capability uint8

// Platform-specific capabilities.
const (
	Win32Surface Capability = iota
	Win32Font
	QuartzFont
	FCFont
	FTFont
	GObjectFunctions
	XCBSurface
	XCBSHMFunctions

	// Common capabilities, enabled on every platform.

	UserFont
	ImageSurface
	MimeSurface
	ObserverSurface
	RecordingSurface
	ScriptSurface
	SVGSurface
	PSSurface
	PDFSurface
	PNGFunctions
	Interpreter
	XMLSurface

	numCapabilities
)

// Kind classifies what a capability provides.
type Kind uint8

const (
	KindSurface Kind = iota
	KindFont
	KindFunctions
	KindInterpreter

	kindUnknown Kind = 0xff
)

func (k Kind) String() string {
	switch k {
	case KindSurface:
		return "surface"
	case KindFont:
		return "font"
	case KindFunctions:
		return "functions"
	case KindInterpreter:
		return "interpreter"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Group says under which condition a capability is enabled.
type Group uint8

const (
	GroupCommon Group = iota
	GroupWindows
	GroupApple
	GroupLinux
	// GroupXCB capabilities need Linux and the XCB opt-in.
	GroupXCB

	groupUnknown Group = 0xff
)

func (g Group) String() string {
	switch g {
	case GroupCommon:
		return "common"
	case GroupWindows:
		return "windows"
	case GroupApple:
		return "apple"
	case GroupLinux:
		return "linux"
	case GroupXCB:
		return "linux+xcb"
	}
	return fmt.Sprintf("Group(%d)", g)
}

type capabilityInfo struct {
	symbol string
	key    string
	kind   Kind
	group  Group
}

var capabilityTable = [numCapabilities]capabilityInfo{
	Win32Surface:     {"CAIRO_HAS_WIN32_SURFACE", "win32-surface", KindSurface, GroupWindows},
	Win32Font:        {"CAIRO_HAS_WIN32_FONT", "win32-font", KindFont, GroupWindows},
	QuartzFont:       {"CAIRO_HAS_QUARTZ_FONT", "quartz-font", KindFont, GroupApple},
	FCFont:           {"CAIRO_HAS_FC_FONT", "fc-font", KindFont, GroupLinux},
	FTFont:           {"CAIRO_HAS_FT_FONT", "ft-font", KindFont, GroupLinux},
	GObjectFunctions: {"CAIRO_HAS_GOBJECT_FUNCTIONS", "gobject-functions", KindFunctions, GroupLinux},
	XCBSurface:       {"CAIRO_HAS_XCB_SURFACE", "xcb-surface", KindSurface, GroupXCB},
	XCBSHMFunctions:  {"CAIRO_HAS_XCB_SHM_FUNCTIONS", "xcb-shm-functions", KindFunctions, GroupXCB},
	UserFont:         {"CAIRO_HAS_USER_FONT", "user-font", KindFont, GroupCommon},
	ImageSurface:     {"CAIRO_HAS_IMAGE_SURFACE", "image-surface", KindSurface, GroupCommon},
	MimeSurface:      {"CAIRO_HAS_MIME_SURFACE", "mime-surface", KindSurface, GroupCommon},
	ObserverSurface:  {"CAIRO_HAS_OBSERVER_SURFACE", "observer-surface", KindSurface, GroupCommon},
	RecordingSurface: {"CAIRO_HAS_RECORDING_SURFACE", "recording-surface", KindSurface, GroupCommon},
	ScriptSurface:    {"CAIRO_HAS_SCRIPT_SURFACE", "script-surface", KindSurface, GroupCommon},
	SVGSurface:       {"CAIRO_HAS_SVG_SURFACE", "svg-surface", KindSurface, GroupCommon},
	PSSurface:        {"CAIRO_HAS_PS_SURFACE", "ps-surface", KindSurface, GroupCommon},
	PDFSurface:       {"CAIRO_HAS_PDF_SURFACE", "pdf-surface", KindSurface, GroupCommon},
	PNGFunctions:     {"CAIRO_HAS_PNG_FUNCTIONS", "png-functions", KindFunctions, GroupCommon},
	Interpreter:      {"CAIRO_HAS_INTERPRETER", "interpreter", KindInterpreter, GroupCommon},
	XMLSurface:       {"CAIRO_HAS_XML_SURFACE", "xml-surface", KindSurface, GroupCommon},
}

// AllCapabilities returns every capability in header order.
func AllCapabilities() []Capability {
	all := make([]Capability, numCapabilities)
	for i := range all {
		all[i] = Capability(i)
	}
	return all
}

// Valid reports whether c is a known capability.
func (c Capability) Valid() bool { return c < numCapabilities }

// Symbol returns the header symbol, e.g. "CAIRO_HAS_XCB_SURFACE".
func (c Capability) Symbol() string {
	if !c.Valid() {
		return ""
	}
	return capabilityTable[c].symbol
}

// Key returns the short lower-case key, e.g. "xcb-surface".
func (c Capability) Key() string {
	if !c.Valid() {
		return ""
	}
	return capabilityTable[c].key
}

// Kind returns what the capability provides, or an unnamed Kind for an
// invalid capability.
func (c Capability) Kind() Kind {
	if !c.Valid() {
		return kindUnknown
	}
	return capabilityTable[c].kind
}

// Group returns the condition under which c is enabled, or an unnamed
// Group for an invalid capability.
func (c Capability) Group() Group {
	if !c.Valid() {
		return groupUnknown
	}
	return capabilityTable[c].group
}

// Common reports whether c is enabled regardless of platform.
func (c Capability) Common() bool { return c.Valid() && c.Group() == GroupCommon }

// String returns the short key.
func (c Capability) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Capability(%d)", c)
	}
	return c.Key()
}

// MarshalText implements encoding.TextMarshaler.
func (c Capability) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCapability, c)
	}
	return []byte(c.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Capability) UnmarshalText(b []byte) error {
	v, err := ParseCapability(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCapability accepts either the short key ("pdf-surface") or the
// header symbol ("CAIRO_HAS_PDF_SURFACE"). Keys match case-insensitively
// and may use underscores instead of dashes.
func ParseCapability(s string) (Capability, error) {
	s = strings.TrimSpace(s)
	if c, ok := bySymbol[s]; ok {
		return c, nil
	}
	key := strings.ReplaceAll(strings.ToLower(s), "_", "-")
	if c, ok := byKey[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCapability, s)
}

// CapabilityBySymbol looks up a capability by its header symbol.
func CapabilityBySymbol(symbol string) (Capability, bool) {
	c, ok := bySymbol[symbol]
	return c, ok
}

var (
	bySymbol = make(map[string]Capability, numCapabilities)
	byKey    = make(map[string]Capability, numCapabilities)
)

func init() {
	for i, info := range capabilityTable {
		bySymbol[info.symbol] = Capability(i)
		byKey[info.key] = Capability(i)
	}
}
