package syntax

// parsePath parses a `::`-separated sequence of segments, with an
// optional leading `::` and optional `<Args>` generics on each segment.
// Generics are attempted speculatively (choosing them over a bare `<`
// comparison read only when the bracketed contents parse as a complete,
// balanced type list) so this same routine serves both type position,
// where `<` is unambiguous, and expression position, where it is not.
func (p *Parser) parsePath() Path {
	var pth Path
	if p.checkPunct("::") {
		p.bump()
		colon := ColonColonTok{}
		pth.LeadingColon = &colon
		pth.T0 = p.lead
	}
	pth.Seg1 = p.parsePathSegment()
	for p.checkPunct("::") {
		t1 := p.lead
		snap := p.snapshot()
		p.bump()
		t2 := p.lead
		if !p.checkAnyIdent() {
			p.restore(snap)
			break
		}
		seg := p.parsePathSegment()
		pth.PushSegment(t1, t2, seg)
	}
	return pth
}

// parsePathSegment parses one `ident` or `ident<Args>` component.
func (p *Parser) parsePathSegment() PathSegment {
	_, id := p.expectIdent()
	seg := PathSegment{Ident: id}
	if p.checkPunct("<") {
		t1 := p.lead
		if args, ok := p.tryParseAngleArgs(); ok {
			seg.T1 = t1
			seg.Args = args
		}
	}
	return seg
}

// tryParseAngleArgs speculatively parses `<Ty, Ty, ...>`, rolling back
// (and reporting false) if the bracketed contents don't parse as a
// complete, properly closed type list — the bounded-lookahead
// disambiguator between a comparison operator chain and a generic
// argument list.
func (p *Parser) tryParseAngleArgs() (args *AngleArgs, ok bool) {
	snap := p.snapshot()
	defer func() {
		if r := recover(); r != nil {
			p.restore(snap)
			args, ok = nil, false
		}
	}()
	p.bump() // `<`
	t1 := p.lead
	var sl SeparatedList[Ty, CommaTok]
	if !p.checkPunct(">") && !p.checkPunct(">>") {
		sl.SetFirst(p.parseType())
		for p.checkPunct(",") {
			commaLead := p.lead
			p.bump()
			valLead := p.lead
			if p.checkPunct(">") || p.checkPunct(">>") {
				sl.SetTrailing(commaLead, CommaTok{})
				_ = valLead
				break
			}
			sl.Push(commaLead, CommaTok{}, valLead, p.parseType())
		}
	}
	t2, closed := p.eatClosingAngle()
	if !closed {
		p.restore(snap)
		return nil, false
	}
	return &AngleArgs{Lt: LtTok{}, T1: t1, Args: sl, T2: t2, Gt: GtTok{}}, true
}

// eatClosingAngle consumes a single `>` closing a generic argument list.
// A `>>` token (lexed as one shift operator) is split: one `>` closes
// this list and the other is left for the enclosing list or expression.
func (p *Parser) eatClosingAngle() (Trivia, bool) {
	if lead, ok := p.eatPunct(">"); ok {
		return lead, true
	}
	if p.checkPunct(">>") {
		lead, _ := p.bump()
		p.pushBackPunct(">")
		return lead, true
	}
	return Trivia{}, false
}

// pushBackPunct re-synthesizes s as the parser's current token, used
// after splitting a glued compound punctuator (`>>` -> `>` `>`) that the
// lexer had no reason to keep separate.
func (p *Parser) pushBackPunct(s string) {
	p.iter = &pushbackIter{rest: p.iter, lead: p.lead, cur: p.cur}
	p.lead = Trivia{}
	p.cur = &TokenLeaf{Kind: LeafPunct, Text: s}
}

// pushbackIter is a one-shot TokenIterator wrapper used by
// pushBackPunct: its first Next returns the synthesized token, every
// call after delegates to rest.
type pushbackIter struct {
	rest  TokenIterator
	lead  Trivia
	cur   TokenTree
	armed bool
}

func (it *pushbackIter) Next() (Trivia, TokenTree) {
	if !it.armed {
		it.armed = true
		return it.lead, it.cur
	}
	return it.rest.Next()
}

func (it *pushbackIter) Clone() TokenIterator {
	cp := *it
	cp.rest = it.rest.Clone()
	return &cp
}
