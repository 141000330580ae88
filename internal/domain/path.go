package domain

import (
	"fmt"
	"strings"
)

// Path is a slash-delimited location relative to a user's namespace root.
// The empty value is the root itself. A value ending in "/" denotes a
// directory; anything else denotes a file. Paths compare by value.
type Path struct {
	value string
}

// Root is the namespace root: the empty path, always a directory.
var Root = Path{}

const invalidPathChars = "\x00\n\r\t'\"`"

// ParsePath validates raw and returns it as a Path. The canonical scheme
// is relative: a leading slash is rejected, and classification is by
// trailing slash only.
func ParsePath(raw string) (Path, error) {
	if strings.HasPrefix(raw, "/") {
		return Path{}, validationf("path %q cannot start with a slash", raw)
	}
	if strings.Contains(raw, "//") {
		return Path{}, validationf("path %q cannot contain double slashes", raw)
	}
	if strings.ContainsAny(raw, invalidPathChars) {
		return Path{}, validationf("path %q contains forbidden characters", raw)
	}
	if strings.Contains(raw, "..") {
		return Path{}, validationf("path %q cannot contain '..'", raw)
	}
	for _, segment := range strings.Split(raw, "/") {
		if segment == "." {
			return Path{}, validationf("path %q cannot contain a '.' segment", raw)
		}
	}
	return Path{value: raw}, nil
}

func (p Path) String() string { return p.value }

// IsRoot reports whether p is the namespace root.
func (p Path) IsRoot() bool { return p.value == "" }

// IsDirectory reports whether p denotes a directory. The root is always
// a directory.
func (p Path) IsDirectory() bool {
	return p.value == "" || strings.HasSuffix(p.value, "/")
}

// Parent returns the directory containing p. The root is its own parent.
func (p Path) Parent() Path {
	if p.IsRoot() {
		return Root
	}
	trimmed := strings.TrimSuffix(p.value, "/")
	i := strings.LastIndex(trimmed, "/")
	if i < 0 {
		return Root
	}
	return Path{value: trimmed[:i+1]}
}

// Name returns the last non-empty segment of p, or "" for the root.
func (p Path) Name() string {
	if p.IsRoot() {
		return ""
	}
	trimmed := strings.TrimSuffix(p.value, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// Join appends other to p. The receiver must be a directory; joining the
// root path as the argument yields the receiver unchanged.
func (p Path) Join(other Path) (Path, error) {
	if !p.IsDirectory() {
		return Path{}, fmt.Errorf("cannot join %q onto %q: %w", other.value, p.value, ErrNotDirectoryJoin)
	}
	return Path{value: p.value + other.value}, nil
}

// RelativeTo strips the directory prefix base from p. It is the left
// inverse of Join: base.Join(rel).RelativeTo(base) == rel.
func (p Path) RelativeTo(base Path) (Path, error) {
	if base.IsRoot() {
		return p, nil
	}
	if !base.IsDirectory() || !strings.HasPrefix(p.value, base.value) {
		return Path{}, fmt.Errorf("%q relative to %q: %w", p.value, base.value, ErrNotNested)
	}
	return Path{value: strings.TrimPrefix(p.value, base.value)}, nil
}

// IsAncestorOf reports whether other lives strictly below p.
func (p Path) IsAncestorOf(other Path) bool {
	if !p.IsDirectory() || p == other {
		return false
	}
	return p.IsRoot() || strings.HasPrefix(other.value, p.value)
}
