package fonts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gogpu/features"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DefaultDirs returns the conventional font directories for p. Directories
// that do not exist are skipped during Scan.
func DefaultDirs(p features.Platform) []string {
	home, _ := os.UserHomeDir()
	switch p {
	case features.PlatformLinux:
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
		return dirs
	case features.PlatformApple:
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	case features.PlatformWindows:
		root := os.Getenv("WINDIR")
		if root == "" {
			root = `C:\Windows`
		}
		return []string{filepath.Join(root, "Fonts")}
	default:
		return nil
	}
}

// FontFile describes one indexed font file.
type FontFile struct {
	Path      string
	Family    string
	Subfamily string
}

// Matcher indexes font files by family name, the way Fontconfig resolves a
// family to a file. Use Registry.NewMatcher to create one.
type Matcher struct {
	registry *Registry
	dirs     []string

	mu    sync.RWMutex
	index map[string][]FontFile
}

// Dirs returns the directories the matcher scans.
func (m *Matcher) Dirs() []string { return m.dirs }

// Scan walks the directories and rebuilds the index. Unreadable or
// unparsable files are skipped with a warning.
func (m *Matcher) Scan(ctx context.Context) error {
	log := features.Logger()
	index := make(map[string][]FontFile)

	for _, dir := range m.dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == dir && errors.Is(err, fs.ErrNotExist) {
					return fs.SkipDir
				}
				log.Warn("fonts: skipping unreadable path", "path", path, "err", err)
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if d.IsDir() || !isFontFile(path) {
				return nil
			}
			ff, err := describeFile(path)
			if err != nil {
				log.Warn("fonts: skipping font file", "path", path, "err", err)
				return nil
			}
			key := normalizeFamily(ff.Family)
			index[key] = append(index[key], ff)
			return nil
		})
		if err != nil {
			return fmt.Errorf("fonts: scan %s: %w", dir, err)
		}
	}

	for _, files := range index {
		sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	}

	m.mu.Lock()
	m.index = index
	m.mu.Unlock()

	log.Info("fonts: scan complete", "dirs", len(m.dirs), "families", len(index))
	return nil
}

// Families returns the indexed family names in alphabetical order.
func (m *Matcher) Families() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.index))
	for _, files := range m.index {
		out = append(out, files[0].Family)
	}
	sort.Strings(out)
	return out
}

// Match returns the best file for family. Regular styles are preferred;
// otherwise the first file by path wins.
func (m *Matcher) Match(family string) (FontFile, error) {
	m.mu.RLock()
	files := m.index[normalizeFamily(family)]
	m.mu.RUnlock()

	if len(files) == 0 {
		return FontFile{}, fmt.Errorf("%w: %q", ErrNoMatch, family)
	}
	for _, f := range files {
		switch strings.ToLower(f.Subfamily) {
		case "regular", "book", "normal", "roman":
			return f, nil
		}
	}
	return files[0], nil
}

// Load matches family and loads it through the "ft" backend.
func (m *Matcher) Load(family string) (Face, error) {
	ff, err := m.Match(family)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(ff.Path)
	if err != nil {
		return nil, fmt.Errorf("fonts: read %s: %w", ff.Path, err)
	}
	return m.registry.Load("ft", data)
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

func describeFile(path string) (FontFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FontFile{}, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return FontFile{}, err
	}
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil || family == "" {
		family = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	sub, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	return FontFile{Path: path, Family: family, Subfamily: sub}, nil
}

func normalizeFamily(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
