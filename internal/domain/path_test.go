package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePathValid(t *testing.T) {
	tests := []struct {
		raw       string
		directory bool
		root      bool
	}{
		{"", true, true},
		{"file.txt", false, false},
		{"folder1/", true, false},
		{"folder1/test.txt", false, false},
		{"a/b/c/", true, false},
		{"weird name with spaces.bin", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p, err := ParsePath(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, p.String())
			assert.Equal(t, tt.directory, p.IsDirectory())
			assert.Equal(t, tt.root, p.IsRoot())
		})
	}
}

func TestParsePathInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"leading slash", "/etc/passwd"},
		{"double slash", "a//b"},
		{"null byte", "a\x00b"},
		{"newline", "a\nb"},
		{"carriage return", "a\rb"},
		{"tab", "a\tb"},
		{"single quote", "it's.txt"},
		{"double quote", `say "hi".txt`},
		{"backtick", "cmd`ls`.txt"},
		{"dot dot", "../secret"},
		{"nested dot dot", "a/../b"},
		{"dot segment", "a/./b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(tt.raw)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestPathParent(t *testing.T) {
	tests := []struct {
		raw    string
		parent string
	}{
		{"", ""},
		{"file.txt", ""},
		{"folder1/", ""},
		{"folder1/test.txt", "folder1/"},
		{"a/b/c/", "a/b/"},
		{"a/b/c.txt", "a/b/"},
	}

	for _, tt := range tests {
		p, err := ParsePath(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.parent, p.Parent().String(), "parent of %q", tt.raw)
	}
}

func TestPathName(t *testing.T) {
	tests := []struct {
		raw  string
		name string
	}{
		{"", ""},
		{"file.txt", "file.txt"},
		{"folder1/", "folder1"},
		{"a/b/c/", "c"},
		{"a/b/c.txt", "c.txt"},
	}

	for _, tt := range tests {
		p, err := ParsePath(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.name, p.Name())
	}
}

func TestPathJoin(t *testing.T) {
	dir, _ := ParsePath("a/b/")
	file, _ := ParsePath("c.txt")

	joined, err := dir.Join(file)
	require.NoError(t, err)
	assert.Equal(t, "a/b/c.txt", joined.String())

	// Join onto a file path fails.
	_, err = joined.Join(file)
	require.ErrorIs(t, err, ErrNotDirectoryJoin)

	// Joining the root as the argument yields the receiver.
	same, err := dir.Join(Root)
	require.NoError(t, err)
	assert.Equal(t, dir, same)

	// The root joined with anything yields the argument.
	fromRoot, err := Root.Join(joined)
	require.NoError(t, err)
	assert.Equal(t, joined, fromRoot)
}

// Join followed by Parent returns the original directory, and RelativeTo
// is the left inverse of Join.
func TestPathJoinProperties(t *testing.T) {
	bases := []string{"", "folder1/", "a/b/"}
	rels := []string{"x.txt", "sub/", "sub/deep.txt"}

	for _, b := range bases {
		base, err := ParsePath(b)
		require.NoError(t, err)
		for _, r := range rels {
			rel, err := ParsePath(r)
			require.NoError(t, err)

			joined, err := base.Join(rel)
			require.NoError(t, err)

			back, err := joined.RelativeTo(base)
			require.NoError(t, err)
			assert.Equal(t, rel, back, "base=%q rel=%q", b, r)
		}
	}

	dir, _ := ParsePath("a/b/")
	leaf, _ := ParsePath("c.txt")
	joined, _ := dir.Join(leaf)
	assert.Equal(t, dir, joined.Parent())
}

func TestPathRelativeToNotNested(t *testing.T) {
	base, _ := ParsePath("a/b/")
	other, _ := ParsePath("x/y.txt")

	_, err := other.RelativeTo(base)
	require.ErrorIs(t, err, ErrNotNested)

	// A file path is never a valid base.
	filebase, _ := ParsePath("a/b")
	_, err = other.RelativeTo(filebase)
	require.ErrorIs(t, err, ErrNotNested)
}

func TestPathIsAncestorOf(t *testing.T) {
	root := Root
	dir, _ := ParsePath("a/")
	sub, _ := ParsePath("a/b/")
	file, _ := ParsePath("a/b/c.txt")
	sibling, _ := ParsePath("ab/")

	assert.True(t, root.IsAncestorOf(dir))
	assert.True(t, dir.IsAncestorOf(sub))
	assert.True(t, dir.IsAncestorOf(file))
	assert.False(t, dir.IsAncestorOf(dir))
	assert.False(t, sub.IsAncestorOf(dir))
	assert.False(t, file.IsAncestorOf(sub))
	// Prefix match is on whole segments because directory values end in "/".
	assert.False(t, sibling.IsAncestorOf(dir))
}

func TestRootIsAlwaysDirectory(t *testing.T) {
	assert.True(t, Root.IsDirectory())
	assert.True(t, Root.IsRoot())
	assert.Equal(t, Root, Root.Parent())
}
