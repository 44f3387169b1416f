package syntax

// parseType parses a type: a path type, optionally `<Ty as Trait>::`
// qualified, a slice `[T]`, or an array `[T; N]`.
func (p *Parser) parseType() Ty {
	if p.checkPunct("<") {
		qself := p.parseQSelf()
		t1 := p.lead
		p.bump() // `::`
		return &TyPath{QSelf: qself, T1: t1, Path: p.parsePath()}
	}
	if p.checkGroup(DelimBracket) {
		return p.parseBracketedType()
	}
	return &TyPath{Path: p.parsePath()}
}

// parseQSelf parses the `<Ty [as Trait]>` clause of a qualified path or
// qualified type, stopping just after the closing `>`.
func (p *Parser) parseQSelf() *QSelf {
	p.bump() // `<`
	q := &QSelf{Lt: LtTok{}, T1: p.lead, Ty: p.parseType()}
	if p.checkIdent("as") {
		q.T2 = p.lead
		p.bump()
		asKw := AsKw{}
		q.As = &asKw
		q.T3 = p.lead
		path := p.parsePath()
		q.TraitPath = &path
		q.T4 = p.lead
	} else {
		q.T2 = p.lead
	}
	t2, _ := p.eatClosingAngle()
	_ = t2
	q.Gt = GtTok{}
	return q
}

// parseBracketedType parses `[T]` or `[T; N]`, given the current token
// is a `[...]` group.
func (p *Parser) parseBracketedType() Ty {
	_, group, _ := p.eatDelim(DelimBracket)
	sub := newSubParser(group.Inner())
	lead := group.T1()
	elem := sub.parseType()
	if sub.checkPunct(";") {
		semiLead := sub.lead
		sub.bump()
		lenLead := sub.lead
		length := sub.parseExpr(true)
		return &TyArray{
			Lead: lead,
			Elem: elem,
			Len: arrayLen{
				T1:   semiLead,
				Semi: SemiTok{},
				T2:   lenLead,
				Len:  length,
			},
			Trail: sub.lead,
		}
	}
	return &TySlice{Group: Brackets[Ty]{T1: lead, Inner: elem, T2: sub.lead}}
}
