package syntax

import "strings"

// Pat is the sum type of patterns. The grammar here is deliberately
// minimal — a bare binding or a wildcard — matching what fn parameters
// and let-statements actually need; richer patterns (tuple, struct, or,
// range) are a natural extension point sharing this interface.
type Pat interface {
	Printer
	Node
	Walk(p Pass)
	isPat()
}

// PatIdent is a plain binding pattern: `x`, or `mut x`.
type PatIdent struct {
	Mut   *MutKw
	T1    Trivia // trivia after `mut`, before Ident; empty when Mut is nil
	Ident Ident
}

func (PatIdent) isPat() {}

func (p PatIdent) Print(dest *strings.Builder) {
	if p.Mut != nil {
		p.Mut.Print(dest)
		p.T1.Print(dest)
	}
	p.Ident.Print(dest)
}

func (pt *PatIdent) Visit(p Pass) { p.VisitPat(p, pt) }

func (pt *PatIdent) Walk(p Pass) {
	if pt.Mut != nil {
		pt.Mut.Visit(p)
		pt.T1.Visit(p)
	}
	pt.Ident.Visit(p)
}

// PatWild is the wildcard pattern `_`.
type PatWild struct{}

func (PatWild) isPat()                           {}
func (PatWild) Print(dest *strings.Builder)      { dest.WriteString("_") }
func (pt *PatWild) Visit(p Pass)                 { p.VisitPat(p, pt) }
func (pt *PatWild) Walk(p Pass)                  {}
