package syntax

import "strings"

// AttrStyle distinguishes an outer attribute `#[...]` from an inner
// attribute `#![...]`, which additionally carries a `!`.
type AttrStyle uint8

const (
	AttrOuter AttrStyle = iota
	AttrInner
)

// AttrValue is the sum type of an attribute's optional `= value` payload;
// AttrValueNone means the attribute has no `=` payload, as in `#[inline]`
// or `#[derive(Debug)]` (a parenthesized argument list is kept separately
// in attrBody.Tail as a token-tree group, not in Path or Value), while
// AttrValueExpr covers `#[path = "foo.rs"]`-shaped key/value attributes.
type AttrValue interface {
	Printer
	Node
	Walk(p Pass)
	isAttrValue()
}

type AttrValueNone struct{}

func (AttrValueNone) isAttrValue()                {}
func (AttrValueNone) Print(dest *strings.Builder) {}
func (v *AttrValueNone) Visit(p Pass)              { p.VisitAttrValue(p, v) }
func (v *AttrValueNone) Walk(p Pass)               {}

type AttrValueExpr struct {
	Eq   EqTok
	T1   Trivia
	Expr Expr
}

func (AttrValueExpr) isAttrValue() {}

func (v AttrValueExpr) Print(dest *strings.Builder) {
	v.Eq.Print(dest)
	v.T1.Print(dest)
	v.Expr.Print(dest)
}

func (v *AttrValueExpr) Visit(p Pass) { p.VisitAttrValue(p, v) }

func (v *AttrValueExpr) Walk(p Pass) {
	v.Eq.Visit(p)
	v.T1.Visit(p)
	v.Expr.Visit(p)
}

// Attribute is `#[path Value?]` or, for an inner attribute, `#![path
// Value?]`. Its optional call-like argument list (`#[derive(Debug,
// Clone)]`) is carried as a trailing token-tree group in Tail, since its
// contents are never fully parsed — only captured losslessly.
type Attribute struct {
	Pound PoundTok
	Bang  *BangTok // present iff Style == AttrInner
	T1    Trivia
	Group Brackets[attrBody]
}

// attrBody is the `path Value? TokenTree?` payload inside an attribute's
// brackets.
type attrBody struct {
	Path  Path
	T1    Trivia
	Value AttrValue
	T2    Trivia
	Tail  TokenTree // present for `#[derive(Debug)]`-shaped call attributes
}

func (b attrBody) Print(dest *strings.Builder) {
	b.Path.Print(dest)
	b.T1.Print(dest)
	b.Value.Print(dest)
	if b.Tail != nil {
		b.T2.Print(dest)
		b.Tail.Print(dest)
	}
}

func (b attrBody) Visit(p Pass) {
	b.Path.Visit(p)
	b.T1.Visit(p)
	b.Value.Visit(p)
	if b.Tail != nil {
		b.T2.Visit(p)
		b.Tail.Visit(p)
	}
}

func (a Attribute) Style() AttrStyle {
	if a.Bang != nil {
		return AttrInner
	}
	return AttrOuter
}

func (a Attribute) Print(dest *strings.Builder) {
	a.Pound.Print(dest)
	if a.Bang != nil {
		a.Bang.Print(dest)
	}
	a.T1.Print(dest)
	a.Group.Print(dest)
}

func (a *Attribute) Visit(p Pass) { p.VisitAttr(p, a) }

func (a *Attribute) Walk(p Pass) {
	a.Pound.Visit(p)
	if a.Bang != nil {
		a.Bang.Visit(p)
	}
	a.T1.Visit(p)
	a.Group.Visit(p)
}
