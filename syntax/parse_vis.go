package syntax

// parseVis parses the optional visibility prefix of an item: nothing,
// `pub`, or `pub(...)`.
func (p *Parser) parseVis() Visibility {
	if !p.checkIdent("pub") {
		return &VisInherited{}
	}
	if !p.checkGroupAfterPub() {
		p.bump()
		return &VisPublic{Pub: PubKw{}}
	}
	p.bump()
	t1, group, _ := p.eatDelim(DelimParen)
	sub := newSubParser(group.Inner())
	parensT1 := group.T1()
	restricted := sub.parseVisRestrictedBody()
	return &VisPubRestricted{
		Pub: PubKw{},
		T1:  t1,
		Group: Parens[*VisRestricted]{
			T1:    parensT1,
			Inner: restricted,
			T2:    group.Inner().Trailing(),
		},
	}
}

// checkGroupAfterPub reports whether the token immediately following
// `pub` opens a parenthesized restriction clause, without consuming it.
func (p *Parser) checkGroupAfterPub() bool {
	snap := p.snapshot()
	defer p.restore(snap)
	p.bump()
	return p.checkGroup(DelimParen)
}

// parseVisRestrictedBody parses the contents of `pub(...)`: `crate`,
// `self`, `super`, or `in path`.
func (p *Parser) parseVisRestrictedBody() *VisRestricted {
	if p.checkIdent("in") {
		p.bump()
		inKw := InKw{}
		t1 := p.lead
		pth := p.parsePath()
		return &VisRestricted{In: &inKw, T1: t1, Path: pth}
	}
	pth := p.parsePath()
	return &VisRestricted{Path: pth}
}
