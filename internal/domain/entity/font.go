// Package entity contains the domain types for font selection.
package entity

import "sort"

// FontFace describes one installed font: a family name and the file it was
// discovered in.
type FontFace struct {
	Family string
	Path   string
}

// Registry is a snapshot of the fonts available on the host, keyed by family
// name. Values are font file paths. A registry may be empty; the selector
// treats that as a normal no-match case.
type Registry map[string]string

// NewRegistry builds a registry from a list of faces. Later duplicates of a
// family do not replace earlier entries, so the first discovered file wins.
func NewRegistry(faces []FontFace) Registry {
	r := make(Registry, len(faces))
	for _, f := range faces {
		if f.Family == "" {
			continue
		}
		if _, exists := r[f.Family]; !exists {
			r[f.Family] = f.Path
		}
	}
	return r
}

// Lookup returns the file path for a family name.
func (r Registry) Lookup(family string) (string, bool) {
	path, ok := r[family]
	return path, ok
}

// Families returns all family names in sorted order.
func (r Registry) Families() []string {
	families := make([]string, 0, len(r))
	for family := range r {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}

// Faces returns all entries sorted by family name.
func (r Registry) Faces() []FontFace {
	faces := make([]FontFace, 0, len(r))
	for _, family := range r.Families() {
		faces = append(faces, FontFace{Family: family, Path: r[family]})
	}
	return faces
}
