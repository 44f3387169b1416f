package syntax

// parsePat parses a pattern: the wildcard `_`, or an optional `mut`
// followed by a binding identifier.
func (p *Parser) parsePat() Pat {
	if p.checkIdent("_") {
		p.bump()
		return PatWild{}
	}
	if p.checkIdent("mut") {
		p.bump()
		mut := MutKw{}
		t1 := p.lead
		_, id := p.expectIdent()
		return PatIdent{Mut: &mut, T1: t1, Ident: id}
	}
	_, id := p.expectIdent()
	return PatIdent{Ident: id}
}
