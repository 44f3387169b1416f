package syntax

// TokenIterator is the uniform source the parser core consumes: either
// the glue layer reading live off the lexer, or a pre-materialized
// TokenStream's own elements being walked again (re-parsing the body of
// a macro call or an attribute's bracketed contents).
type TokenIterator interface {
	Next() (Trivia, TokenTree)
	Clone() TokenIterator
}

// compoundPuncts is the closed set of multi-character punctuators the
// glue layer may fuse adjacent single-character ones into. Longest match
// wins by construction: Glue.gluePunct extends greedily, one raw
// character at a time, continuing only while the extended spelling is
// itself a member of this set.
var compoundPuncts = map[string]bool{
	"::": true, "==": true, "!=": true, "->": true, "=>": true, "<-": true,
	"..": true, "..=": true, "...": true,
	"<<=": true, ">>=": true, "<<": true, ">>": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"^=": true, "&=": true, "|=": true, "&&": true, "||": true,
	"<=": true, ">=": true,
}

// Glue reads raw tokens off a Lexer and assembles them into TokenTree
// values: gluing trivia-adjacent punctuators into compound ones (§4.4)
// and balancing delimiters into Delimited groups.
type Glue struct {
	lex *Lexer
}

// NewGlue builds a glue layer reading from the start of text.
func NewGlue(text string) *Glue {
	return &Glue{lex: NewLexer(text)}
}

func (g *Glue) Clone() TokenIterator {
	return &Glue{lex: g.lex.Clone()}
}

// Next returns the next token tree, with its leading trivia. At EOF it
// yields TokenEOF forever.
func (g *Glue) Next() (Trivia, TokenTree) {
	lead, tok := g.lex.Next()
	return lead, g.classify(tok)
}

func (g *Glue) classify(tok rawToken) TokenTree {
	switch tok.Kind {
	case rawEOF:
		return &TokenEOF{}
	case rawIdent:
		return &TokenLeaf{Kind: LeafIdent, Text: tok.Text}
	case rawRawIdent:
		return &TokenLeaf{Kind: LeafRawIdent, Text: tok.Text}
	case rawLifetime:
		return &TokenLeaf{Kind: LeafLifetime, Text: tok.Text}
	case rawRawLifetime:
		return &TokenLeaf{Kind: LeafRawLifetime, Text: tok.Text}
	case rawLiteral:
		return &TokenLeaf{Kind: LeafLiteral, Text: tok.Text, LitKind: tok.LitKind, SuffixStart: tok.SuffixStart}
	case rawOpen:
		openStart := g.lex.Cursor() - len(tok.Text)
		t1, inner := g.parseGroupBody(tok.Delim, openStart)
		// The trivia before the closer is already the stream's trailing
		// run, so the group's own T2 stays empty rather than repeating it.
		grp := NewDelimited(tok.Delim, t1, inner, Trivia{})
		return &TokenGroup{Group: grp}
	case rawClose:
		unexpectedPanic(g.lex.Cursor(), "expression", "stray "+tok.Text)
	case rawPunct:
		return g.gluePunct(tok.Text)
	}
	return &TokenEOF{}
}

// parseGroupBody consumes token trees until the delimiter matching open
// closes, folding the trivia immediately before that closer into the
// returned stream's trailing trivia (§4.3, §9). The trivia immediately
// after open — before the first inner token — is returned separately
// rather than folded into the stream, since TokenStream (like List)
// never lets its first element carry its own leading trivia. An empty
// body (no inner tokens at all) reports that same span as trailing
// instead, matching List's empty-collection convention.
func (g *Glue) parseGroupBody(open Delimiter, openStart int) (Trivia, TokenStream) {
	var ts TokenStream
	lead, tok := g.lex.Next()
	if tok.Kind == rawClose {
		if tok.Delim != open {
			unexpectedPanic(g.lex.Cursor(), delimCloseName(open), tok.Text)
		}
		ts.SetTrailing(lead)
		return Trivia{}, ts
	}
	if tok.Kind == rawEOF {
		unclosedPanic(openStart, delimOpenName(open))
	}
	t1 := lead
	ts.Push(Trivia{}, g.classify(tok))
	for {
		lead, tok := g.lex.Next()
		switch tok.Kind {
		case rawClose:
			if tok.Delim != open {
				unexpectedPanic(g.lex.Cursor(), delimCloseName(open), tok.Text)
			}
			ts.SetTrailing(lead)
			return t1, ts
		case rawEOF:
			unclosedPanic(openStart, delimOpenName(open))
		default:
			ts.Push(lead, g.classify(tok))
		}
	}
}

func delimOpenName(d Delimiter) string  { return d.open() }
func delimCloseName(d Delimiter) string { return d.close() }

// gluePunct greedily extends first with further single-character
// punctuators as long as: (a) no trivia separates them from the previous
// character, and (b) the extended spelling is itself a recognized
// compound punctuator. Both conditions are necessary and sufficient per
// §4.4; triviality of the join is the only thing that blocks gluing.
func (g *Glue) gluePunct(first string) TokenTree {
	combined := first
	for {
		probe := g.lex.Clone()
		lead2, tok2 := probe.Next()
		if !lead2.IsEmpty() || tok2.Kind != rawPunct {
			break
		}
		candidate := combined + tok2.Text
		if !compoundPuncts[candidate] {
			break
		}
		combined = candidate
		g.lex = probe
	}
	return &TokenLeaf{Kind: LeafPunct, Text: combined}
}

// ParseToTokenStream lexes and glues src in full, with no grammar
// awareness: the library surface's parse_to_tokenstream.
func ParseToTokenStream(src string) TokenStream {
	g := NewGlue(src)
	var ts TokenStream
	for {
		lead, tree := g.Next()
		if _, ok := tree.(*TokenEOF); ok {
			ts.SetTrailing(lead)
			return ts
		}
		ts.Push(lead, tree)
	}
}

// tokenStreamIter replays an already-materialized TokenStream as a
// TokenIterator, letting the parser core re-descend into the contents of
// a macro call or attribute-list token stream exactly as it would a live
// Glue — this is what makes eat_delim's sub-parser possible without a
// second lex pass.
type tokenStreamIter struct {
	trees []tokenStreamElem
	idx   int
	tail  Trivia
	done  bool
}

func newTokenStreamIter(ts TokenStream) *tokenStreamIter {
	elems := make([]tokenStreamElem, 0, 1+len(ts.rest))
	if ts.first != nil {
		elems = append(elems, tokenStreamElem{Val: ts.first})
		elems = append(elems, ts.rest...)
	}
	return &tokenStreamIter{trees: elems, tail: ts.trailing}
}

func (it *tokenStreamIter) Next() (Trivia, TokenTree) {
	if it.idx < len(it.trees) {
		e := it.trees[it.idx]
		it.idx++
		return e.Lead, e.Val
	}
	if !it.done {
		it.done = true
		return it.tail, &TokenEOF{}
	}
	return Trivia{}, &TokenEOF{}
}

func (it *tokenStreamIter) Clone() TokenIterator {
	cp := *it
	return &cp
}
