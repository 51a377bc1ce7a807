// Package slide discovers slide fragments and orders them into groups.
//
// A fragment directly under the slides root has no group. A fragment inside
// a subdirectory belongs to the group named after that directory. Sorting
// clusters each group so the assembler can emit one horizontal slide per
// contiguous run.
package slide

import (
	"path/filepath"
	"strings"
)

// Descriptor is one discovered slide fragment. Values are never mutated
// after Build returns them.
type Descriptor struct {
	Name  string // base name including extension
	Group string // immediate subdirectory below the root, "" for root-level slides
	Path  string // where the fragment markup is read from
}

// Grouped reports whether the slide sits inside a group directory.
func (d Descriptor) Grouped() bool {
	return d.Group != ""
}

// Label is a human readable identifier used in logs.
func (d Descriptor) Label() string {
	if !d.Grouped() {
		return d.Name
	}
	return d.Group + "/" + d.Name
}

// Entry is a raw file system entry as produced by the directory walk.
type Entry struct {
	Dir  string // absolute directory containing the file
	Name string // base name
	Path string // resolved path of the file
}

// Builder turns walk entries into Descriptors.
type Builder struct {
	Root      string // absolute slides root
	Extension string // accepted extension, e.g. ".html"
}

// Build returns the descriptor for e and whether e is a slide fragment at all.
func (b Builder) Build(e Entry) (Descriptor, bool) {
	if e.Name == "" || filepath.Ext(e.Name) != b.Extension {
		return Descriptor{}, false
	}

	group := strings.TrimPrefix(e.Dir, b.Root)
	group = strings.TrimLeft(group, `/`+string(filepath.Separator))

	return Descriptor{
		Name:  e.Name,
		Group: group,
		Path:  e.Path,
	}, true
}
