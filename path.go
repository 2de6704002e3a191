// Package pathlib provides an immutable filesystem path value with pure
// accessors for its components, lexical and filesystem-aware resolution,
// home-directory expansion, and lazy directory traversal.
package pathlib

import (
	"encoding"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// A Path is a parsed filesystem path: a root prefix and an ordered list of
// segments.
//
// The root is "" for relative paths and a separator (or a drive root on
// Windows) for absolute ones. Paths are immutable: every transforming
// operation returns a new value.
type Path struct {
	root     string
	segments []string
}

var (
	_ encoding.TextMarshaler   = (*Path)(nil)
	_ encoding.TextUnmarshaler = (*Path)(nil)
)

// Parse parses raw into a Path. Any string is a valid path: runs of
// separators collapse to a single boundary, "." segments are dropped, and
// ".." segments are kept literally. The result is absolute if raw begins
// with a separator or a volume name. Whether the path exists on disk is a
// separate concern; see Exists.
func Parse(raw string) *Path {
	vol := filepath.VolumeName(raw)
	rest := raw[len(vol):]

	root := ""
	switch {
	case vol != "":
		root = vol + string(filepath.Separator)
	case len(rest) > 0 && os.IsPathSeparator(rest[0]):
		root = string(filepath.Separator)
	}

	var segments []string
	for i := 0; i < len(rest); {
		if os.IsPathSeparator(rest[i]) {
			i++
			continue
		}
		start := i
		for i < len(rest) && !os.IsPathSeparator(rest[i]) {
			i++
		}
		if seg := rest[start:i]; seg != "." {
			segments = append(segments, seg)
		}
	}

	return &Path{root: root, segments: segments}
}

func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(text []byte) error {
	*p = *Parse(string(text))
	return nil
}

// IsAbs reports whether p is anchored at a filesystem root.
func (p *Path) IsAbs() bool {
	return p.root != ""
}

// Segments returns a copy of p's segments.
func (p *Path) Segments() []string {
	return slices.Clone(p.segments)
}

// Name returns the final segment of p, or the empty string if p has no
// segments (e.g. the root).
func (p *Path) Name() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Suffix returns the extension of the final segment, including the leading
// dot. A dot at the start of the name does not begin a suffix, so
// Parse(".cshrc").Suffix() is "".
func (p *Path) Suffix() string {
	name := p.Name()
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}

// Stem returns the final segment of p with its suffix removed.
func (p *Path) Stem() string {
	name := p.Name()
	return name[:len(name)-len(p.Suffix())]
}

// Parent returns p with its final segment dropped. The parent of a path
// with no segments is the path itself.
func (p *Path) Parent() *Path {
	if len(p.segments) == 0 {
		return p
	}
	n := len(p.segments) - 1
	return &Path{root: p.root, segments: p.segments[:n:n]}
}

// JoinPath appends other's segments to p's. If other is absolute, the
// result is other; the join never re-anchors a relative right operand.
func (p *Path) JoinPath(other *Path) *Path {
	if other.IsAbs() {
		return other
	}
	segments := make([]string, 0, len(p.segments)+len(other.segments))
	segments = append(append(segments, p.segments...), other.segments...)
	return &Path{root: p.root, segments: segments}
}

// Join parses each element and joins it onto p in turn.
func (p *Path) Join(elem ...string) *Path {
	result := p
	for _, e := range elem {
		result = result.JoinPath(Parse(e))
	}
	return result
}

// Equal reports whether p and other have the same root and segments.
func (p *Path) Equal(other *Path) bool {
	return p.root == other.root && slices.Equal(p.segments, other.segments)
}

func (p *Path) String() string {
	if len(p.segments) == 0 {
		if p.root == "" {
			return "."
		}
		return p.root
	}
	return p.root + strings.Join(p.segments, string(filepath.Separator))
}
