package syntax

// parseAttribute parses one `#[...]` or `#![...]` attribute. The bracketed
// body is never fully re-parsed as a grammar: only its leading path and an
// optional `= expr` are given structure, matching attr.go's own contract
// that a call-like tail (`derive(Debug, Clone)`) is captured losslessly
// rather than interpreted.
func (p *Parser) parseAttribute() *Attribute {
	p.bump() // `#`
	attr := &Attribute{Pound: PoundTok{}}
	if p.checkPunct("!") {
		p.bump()
		bang := BangTok{}
		attr.Bang = &bang
	}
	attr.T1 = p.lead
	_, group, _ := p.eatDelim(DelimBracket)
	sub := newSubParser(group.Inner())
	body := sub.parseAttrBody()
	attr.Group = Brackets[attrBody]{T1: group.T1(), Inner: body, T2: sub.lead}
	return attr
}

// parseAttrBody parses the contents of an attribute's brackets: a path,
// an optional `= value`, and whatever raw token tree (if any) follows.
func (p *Parser) parseAttrBody() attrBody {
	pth := p.parsePath()
	body := attrBody{Path: pth}
	if p.checkPunct("=") {
		body.T1 = p.lead
		p.bump()
		t2 := p.lead
		val := p.parseExpr(true)
		body.Value = AttrValueExpr{Eq: EqTok{}, T1: t2, Expr: val}
	} else {
		body.Value = AttrValueNone{}
	}
	if !p.atEOF() {
		body.T2 = p.lead
		_, tail := p.bump()
		body.Tail = tail
	}
	return body
}
