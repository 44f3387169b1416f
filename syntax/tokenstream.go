package syntax

import "strings"

// TokenTree is the sum type of one element of a TokenStream: a single
// leaf token captured by its exact source spelling, or a nested
// delimited group. Macro call arguments and an attribute's call-like
// tail are never parsed into the full grammar — only tokenized and
// glued into balanced groups — so their contents round-trip losslessly
// through this representation regardless of what grammar they actually
// hold.
type TokenTree interface {
	Printer
	Node
	Walk(p Pass)
	isTokenTree()
}

// LeafKind discriminates the non-group TokenTree shapes, mirroring the
// rawKind categories the lexer assigns before gluing.
type LeafKind uint8

const (
	LeafIdent LeafKind = iota
	LeafRawIdent
	LeafLifetime
	LeafRawLifetime
	LeafLiteral
	LeafPunct
)

// TokenLeaf is one non-group token: an identifier, keyword, lifetime,
// literal, or punctuation run, stored by its exact source text since its
// spelling alone is what lossless reproduction needs; Kind exists so the
// parser doesn't have to re-derive a token's category from its text.
// LitKind and SuffixStart are only meaningful when Kind == LeafLiteral,
// mirroring rawToken's own fields so the parser can build a Literal node
// straight off the leaf without re-scanning its text.
type TokenLeaf struct {
	Kind        LeafKind
	Text        string
	LitKind     LiteralKind
	SuffixStart int
}

func (TokenLeaf) isTokenTree() {}

func (t TokenLeaf) Print(dest *strings.Builder) { dest.WriteString(t.Text) }
func (t *TokenLeaf) Visit(p Pass)                { p.VisitTokenTree(p, t) }
func (t *TokenLeaf) Walk(p Pass)                 { p.VisitToken(len(t.Text)) }

// TokenEOF is the sentinel TokenTree a TokenIterator yields once its
// underlying source is exhausted; it is never pushed into a TokenStream's
// own element list, only held as a parser's current-token lookahead.
type TokenEOF struct{}

func (TokenEOF) isTokenTree() {}

func (TokenEOF) Print(dest *strings.Builder) {}
func (t *TokenEOF) Visit(p Pass)             { p.VisitTokenTree(p, t) }
func (t *TokenEOF) Walk(p Pass)              { p.VisitToken(0) }

// TokenGroup is a nested, delimiter-balanced group within a
// TokenStream, e.g. the `(...)` in `derive(Debug, Clone)`.
type TokenGroup struct {
	Group Delimited[TokenStream]
}

func (TokenGroup) isTokenTree() {}

func (t TokenGroup) Print(dest *strings.Builder) { t.Group.Print(dest) }
func (t *TokenGroup) Visit(p Pass)                { p.VisitTokenTree(p, t) }
func (t *TokenGroup) Walk(p Pass)                 { t.Group.Visit(p) }

// tokenStreamElem is one element of a TokenStream together with the
// trivia leading up to it.
type tokenStreamElem struct {
	Lead Trivia
	Val  TokenTree
}

// TokenStream is an ordered sequence of token trees, exactly as
// `List[TokenTree]` would be were TokenTree not itself an interface
// needing its own zero value (a nil TokenTree, unlike a zero struct,
// cannot be pushed by accident) — the first element is tracked
// separately so an empty stream never allocates.
type TokenStream struct {
	first    TokenTree
	rest     []tokenStreamElem
	trailing Trivia
}

// NewTokenStream builds an empty stream.
func NewTokenStream() TokenStream { return TokenStream{} }

// Push appends v, preceded by lead.
func (ts *TokenStream) Push(lead Trivia, v TokenTree) {
	if ts.first == nil {
		if !lead.IsEmpty() {
			panic("syntax: TokenStream.Push with non-empty trivia before first element")
		}
		ts.first = v
		return
	}
	ts.rest = append(ts.rest, tokenStreamElem{Lead: lead, Val: v})
}

// SetTrailing installs the trivia that the glue layer folds in as the
// stream's trailing trivia — for a group's inner stream, the bytes
// immediately before the closing delimiter.
func (ts *TokenStream) SetTrailing(t Trivia) {
	ts.trailing = t
}

// Trailing returns the stream's trailing trivia.
func (ts TokenStream) Trailing() Trivia {
	return ts.trailing
}

// IsEmpty reports whether the stream holds no token trees.
func (ts TokenStream) IsEmpty() bool { return ts.first == nil }

func (ts TokenStream) Print(dest *strings.Builder) {
	if ts.first != nil {
		ts.first.Print(dest)
		for _, e := range ts.rest {
			e.Lead.Print(dest)
			e.Val.Print(dest)
		}
	}
	ts.trailing.Print(dest)
}

func (ts TokenStream) Visit(p Pass) { p.VisitTokenStream(p, &ts) }

func (ts *TokenStream) Walk(p Pass) {
	if ts.first != nil {
		ts.first.Visit(p)
		for _, e := range ts.rest {
			e.Lead.Visit(p)
			e.Val.Visit(p)
		}
	}
	ts.trailing.Visit(p)
}
