package syntax

import "strings"

// Visibility is the sum type of an item's visibility: inherited
// (private), unconditionally `pub`, or `pub(...)` restricted.
type Visibility interface {
	Printer
	Node
	Walk(p Pass)
	isVisibility()
}

// VisInherited is the absence of a visibility keyword — private to the
// enclosing module, the language's default.
type VisInherited struct{}

func (VisInherited) isVisibility()                    {}
func (VisInherited) Print(dest *strings.Builder)      {}
func (v *VisInherited) Visit(p Pass)                  { p.VisitVis(p, v) }
func (v *VisInherited) Walk(p Pass)                   {}

// VisPublic is unconditional `pub`.
type VisPublic struct {
	Pub PubKw
}

func (VisPublic) isVisibility() {}

func (v VisPublic) Print(dest *strings.Builder) { v.Pub.Print(dest) }
func (v *VisPublic) Visit(p Pass)                { p.VisitVis(p, v) }
func (v *VisPublic) Walk(p Pass)                 { v.Pub.Visit(p) }

// VisRestricted is the `in path` clause inside a `pub(...)` group; In is
// nil for the `pub(crate)` / `pub(super)` / `pub(self)` shorthand, where
// Path is then exactly that one segment.
type VisRestricted struct {
	In   *InKw
	T1   Trivia
	Path Path
}

func (v VisRestricted) Print(dest *strings.Builder) {
	if v.In != nil {
		v.In.Print(dest)
		v.T1.Print(dest)
	}
	v.Path.Print(dest)
}

func (v *VisRestricted) Visit(p Pass) { p.VisitVisRestricted(p, v) }

func (v *VisRestricted) Walk(p Pass) {
	if v.In != nil {
		v.In.Visit(p)
		v.T1.Visit(p)
	}
	v.Path.Visit(p)
}

// VisPubRestricted is `pub(...)`.
type VisPubRestricted struct {
	Pub   PubKw
	T1    Trivia
	Group Parens[*VisRestricted]
}

func (VisPubRestricted) isVisibility() {}

func (v VisPubRestricted) Print(dest *strings.Builder) {
	v.Pub.Print(dest)
	v.T1.Print(dest)
	v.Group.Print(dest)
}

func (v *VisPubRestricted) Visit(p Pass) { p.VisitVis(p, v) }

func (v *VisPubRestricted) Walk(p Pass) {
	v.Pub.Visit(p)
	v.T1.Visit(p)
	v.Group.Visit(p)
}
