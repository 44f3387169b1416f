package syntax

import "strings"

// Parser holds exactly one token of lookahead: the trivia leading up to
// it and the token tree itself. Every primitive below either consults
// that lookahead or, on a successful eat, bumps past it by pulling the
// next pair from the underlying TokenIterator.
//
// Convention followed by every parseX grammar function in this package:
// a parseX method consumes and returns only the node, never a leading
// Trivia alongside it. A caller that needs the trivia immediately before
// what parseX will consume reads p.lead itself beforehand — reading it
// is non-destructive, and parseX's own first bump is guaranteed to
// consume exactly that trivia, so the two never disagree.
type Parser struct {
	iter TokenIterator
	lead Trivia
	cur  TokenTree
}

// NewParser builds a parser reading src from its start.
func NewParser(src string) *Parser {
	p := &Parser{iter: NewGlue(src)}
	p.lead, p.cur = p.iter.Next()
	return p
}

// newSubParser builds a parser replaying an already-materialized
// TokenStream, used to re-descend into a macro call's or an attribute's
// token-tree body without a second lex pass.
func newSubParser(ts TokenStream) *Parser {
	p := &Parser{iter: newTokenStreamIter(ts)}
	p.lead, p.cur = p.iter.Next()
	return p
}

// parserSnapshot is an O(1) save point: TokenIterator.Clone is itself
// O(1) (a Scanner is a value copy), so backtracking never re-lexes.
type parserSnapshot struct {
	iter TokenIterator
	lead Trivia
	cur  TokenTree
}

func (p *Parser) snapshot() parserSnapshot {
	return parserSnapshot{iter: p.iter.Clone(), lead: p.lead, cur: p.cur}
}

func (p *Parser) restore(s parserSnapshot) {
	p.iter = s.iter
	p.lead = s.lead
	p.cur = s.cur
}

// bump returns the current (lead, token) pair and advances.
func (p *Parser) bump() (Trivia, TokenTree) {
	lead, cur := p.lead, p.cur
	p.lead, p.cur = p.iter.Next()
	return lead, cur
}

// leaf returns the current token as a *TokenLeaf, or nil if it is a
// group or EOF.
func (p *Parser) leaf() *TokenLeaf {
	l, _ := p.cur.(*TokenLeaf)
	return l
}

// atEOF reports whether the parser has no more input.
func (p *Parser) atEOF() bool {
	_, ok := p.cur.(*TokenEOF)
	return ok
}

// checkPunct reports whether the current token is the punctuator spelled s.
func (p *Parser) checkPunct(s string) bool {
	l := p.leaf()
	return l != nil && l.Kind == LeafPunct && l.Text == s
}

// checkIdent reports whether the current token is the plain (non-raw)
// identifier or keyword spelled s.
func (p *Parser) checkIdent(s string) bool {
	l := p.leaf()
	return l != nil && l.Kind == LeafIdent && l.Text == s
}

// checkAnyIdent reports whether the current token is any plain
// identifier, keyword or otherwise.
func (p *Parser) checkAnyIdent() bool {
	l := p.leaf()
	return l != nil && (l.Kind == LeafIdent || l.Kind == LeafRawIdent)
}

// checkLiteral reports whether the current token is a literal.
func (p *Parser) checkLiteral() bool {
	l := p.leaf()
	return l != nil && l.Kind == LeafLiteral
}

// checkGroup reports whether the current token is a delimited group of
// the given shape.
func (p *Parser) checkGroup(d Delimiter) bool {
	g, ok := p.cur.(*TokenGroup)
	return ok && g.Group.Delimiter == d
}

// eatPunct consumes the punctuator spelled s, returning its leading
// trivia, or reports false and leaves the parser untouched.
func (p *Parser) eatPunct(s string) (Trivia, bool) {
	if !p.checkPunct(s) {
		return Trivia{}, false
	}
	lead, _ := p.bump()
	return lead, true
}

// eatKw consumes a plain identifier spelled kw, i.e. a keyword.
func (p *Parser) eatKw(kw string) (Trivia, bool) {
	return p.eatIdentText(kw)
}

func (p *Parser) eatIdentText(s string) (Trivia, bool) {
	if !p.checkIdent(s) {
		return Trivia{}, false
	}
	lead, _ := p.bump()
	return lead, true
}

// eatIdent consumes any identifier (plain or raw) and builds an Ident node.
func (p *Parser) eatIdent() (Trivia, Ident, bool) {
	if !p.checkAnyIdent() {
		return Trivia{}, Ident{}, false
	}
	lead, tok := p.bump()
	l := tok.(*TokenLeaf)
	return lead, Ident{Name: l.Text}, true
}

// eatLifetime consumes any lifetime (plain or raw) by its raw text,
// leading quote included.
func (p *Parser) eatLifetime() (Trivia, string, bool) {
	l := p.leaf()
	if l == nil || (l.Kind != LeafLifetime && l.Kind != LeafRawLifetime) {
		return Trivia{}, "", false
	}
	lead, tok := p.bump()
	return lead, tok.(*TokenLeaf).Text, true
}

// eatLiteral consumes a literal and builds a Literal node, splitting its
// text at the suffix boundary the lexer already recorded.
func (p *Parser) eatLiteral() (Trivia, Literal, bool) {
	if !p.checkLiteral() {
		return Trivia{}, Literal{}, false
	}
	lead, tok := p.bump()
	l := tok.(*TokenLeaf)
	return lead, Literal{Kind: l.LitKind, Symbol: l.Text[:l.SuffixStart], Suffix: l.Text[l.SuffixStart:]}, true
}

// eatDelim consumes a delimited group of shape d, returning the raw
// TokenStream it contains; callers that need grammar out of the group
// (a macro call's arguments, an attribute's tail) re-descend into it via
// newSubParser.
func (p *Parser) eatDelim(d Delimiter) (Trivia, Delimited[TokenStream], bool) {
	if !p.checkGroup(d) {
		return Trivia{}, Delimited[TokenStream]{}, false
	}
	lead, tok := p.bump()
	return lead, tok.(*TokenGroup).Group, true
}

// expectPunct is eatPunct for a production where s is grammatically
// required; failing to find it is an UnexpectedError.
func (p *Parser) expectPunct(s string) Trivia {
	lead, ok := p.eatPunct(s)
	if !ok {
		unexpectedPanic(p.offset(), "'"+s+"'", p.describeCur())
	}
	return lead
}

func (p *Parser) expectKw(kw string) Trivia {
	lead, ok := p.eatKw(kw)
	if !ok {
		unexpectedPanic(p.offset(), "'"+kw+"'", p.describeCur())
	}
	return lead
}

func (p *Parser) expectIdent() (Trivia, Ident) {
	lead, id, ok := p.eatIdent()
	if !ok {
		unexpectedPanic(p.offset(), "identifier", p.describeCur())
	}
	return lead, id
}

// offset is a best-effort source position for error messages: the
// printed length of whatever has already been consumed is not tracked by
// the parser, so errors report the current token's own text instead of a
// byte offset when one isn't cheaply available.
func (p *Parser) offset() int { return 0 }

func (p *Parser) describeCur() string {
	switch t := p.cur.(type) {
	case *TokenEOF:
		return "end of input"
	case *TokenLeaf:
		return t.Text
	case *TokenGroup:
		return t.Group.Delimiter.open() + "..." + t.Group.Delimiter.close()
	default:
		return "token"
	}
}

// Print renders any CST node or container to its exact source text.
func Print(n Printer) string {
	var b strings.Builder
	n.Print(&b)
	return b.String()
}
