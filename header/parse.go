package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/features"
)

// ErrConditionalHeader is returned by Parse for headers whose result
// depends on preprocessor conditions other than the include guard.
var ErrConditionalHeader = errors.New("header: conditional header cannot be resolved without a target")

// ParseError reports a malformed or unknown definition.
type ParseError struct {
	Line   int
	Symbol string
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("header: line %d: %s: %s", e.Line, e.Symbol, e.Msg)
}

// Parse reads a resolved header and returns the capabilities it defines.
//
// Lines of the form "#define CAIRO_HAS_X 1" enable a capability, a value
// of 0 or "#undef" disables it, and the last definition wins. An include guard is
// allowed; any other conditional directive yields ErrConditionalHeader.
// Definitions that are not CAIRO_HAS_* symbols are ignored.
func Parse(r io.Reader) (features.Set, error) {
	var (
		set     features.Set
		guard   string
		inBlock bool
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		line, inBlock = stripComments(line, inBlock)
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(strings.TrimSpace(line[1:]))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "ifndef":
			if guard != "" || len(fields) < 2 {
				return 0, fmt.Errorf("%w (line %d)", ErrConditionalHeader, lineNo)
			}
			guard = fields[1]
		case "endif":
		case "if", "ifdef", "elif", "else":
			return 0, fmt.Errorf("%w (line %d)", ErrConditionalHeader, lineNo)
		case "define":
			if len(fields) < 2 || fields[1] == guard {
				continue
			}
			c, ok, err := lookup(fields[1])
			if err != nil {
				return 0, &ParseError{Line: lineNo, Symbol: fields[1], Msg: err.Error()}
			}
			if !ok {
				continue
			}
			on, err := defineEnables(fields)
			if err != nil {
				return 0, &ParseError{Line: lineNo, Symbol: fields[1], Msg: err.Error()}
			}
			if on {
				set = set.With(c)
			} else {
				set = set.Without(c)
			}
		case "undef":
			if len(fields) < 2 {
				continue
			}
			c, ok, err := lookup(fields[1])
			if err != nil {
				return 0, &ParseError{Line: lineNo, Symbol: fields[1], Msg: err.Error()}
			}
			if ok {
				set = set.Without(c)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("header: read: %w", err)
	}
	return set, nil
}

// lookup resolves a CAIRO_HAS_* symbol. ok is false for other symbols.
func lookup(sym string) (features.Capability, bool, error) {
	if !strings.HasPrefix(sym, "CAIRO_HAS_") {
		return 0, false, nil
	}
	c, found := features.CapabilityBySymbol(sym)
	if !found {
		return 0, false, errors.New("unknown capability")
	}
	return c, true, nil
}

// defineEnables interprets the value of a #define. No value and 1 enable,
// 0 disables.
func defineEnables(fields []string) (bool, error) {
	if len(fields) < 3 {
		return true, nil
	}
	switch fields[2] {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, fmt.Errorf("unsupported value %q", strings.Join(fields[2:], " "))
}

// stripComments removes // and /* */ comments from line. inBlock tells
// whether line starts inside a block comment; the returned bool tells
// whether the next line does.
func stripComments(line string, inBlock bool) (string, bool) {
	var sb strings.Builder
	for len(line) > 0 {
		if inBlock {
			end := strings.Index(line, "*/")
			if end < 0 {
				return sb.String(), true
			}
			line = line[end+2:]
			inBlock = false
			continue
		}
		lineComment := strings.Index(line, "//")
		blockComment := strings.Index(line, "/*")
		switch {
		case lineComment >= 0 && (blockComment < 0 || lineComment < blockComment):
			sb.WriteString(line[:lineComment])
			return sb.String(), false
		case blockComment >= 0:
			sb.WriteString(line[:blockComment])
			sb.WriteByte(' ')
			line = line[blockComment+2:]
			inBlock = true
		default:
			sb.WriteString(line)
			line = ""
		}
	}
	return sb.String(), inBlock
}
