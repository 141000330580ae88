// Package domain holds the value objects and entities of the virtual
// filesystem: Path, Resource and User.
//
// Everything here is constructed through validating factories and is
// immutable afterwards. A Path is a slash-delimited location relative to
// a user's namespace root; a trailing slash (or the empty string) marks
// a directory. A Resource is a typed, optionally sized view of a Path.
// A User owns the namespace root under which all of its storage keys live.
package domain
