package syntax

// itemKeywordFollows reports whether the current position starts an item
// definition, looking past an optional `pub`/`pub(...)` visibility
// prefix without consuming anything.
func (p *Parser) itemKeywordFollows() bool {
	snap := p.snapshot()
	defer p.restore(snap)
	p.parseVis()
	switch {
	case p.checkIdent("mod"), p.checkIdent("type"), p.checkIdent("static"), p.checkIdent("fn"):
		return true
	case p.checkIdent("const"):
		// `const { ... }` in statement position is a const block
		// expression, not a `const NAME: Ty = value;` item.
		return !p.constBlockFollows()
	case p.checkIdent("async"), p.checkIdent("unsafe"):
		// `async fn` / `unsafe fn`, the only item-starting combinations
		// that share a leading keyword with an expression form.
		p.bump()
		return p.checkIdent("fn") || (p.checkIdent("unsafe") && func() bool { p.bump(); return p.checkIdent("fn") }())
	}
	return false
}

// constBlockFollows reports whether `const` here begins a `const { ... }`
// block expression rather than a `const NAME: Ty = value;` item, without
// consuming anything.
func (p *Parser) constBlockFollows() bool {
	snap := p.snapshot()
	defer p.restore(snap)
	p.bump() // `const`
	return p.checkGroup(DelimBrace)
}

// tryParseItem parses one item if the current position starts one,
// reporting false and leaving the parser untouched otherwise. Unlike
// parseItem, the item built here carries no attributes of its own: its
// caller (parseBlockInner, for a nested item statement) has already
// lifted any leading `#[...]` attributes onto the enclosing Stmt.
func (p *Parser) tryParseItem() (*Item, bool) {
	if !p.itemKeywordFollows() {
		return nil, false
	}
	return p.parseItemBody(List[*Attribute]{}), true
}

// parseItem parses one item: its attributes, visibility, and definition.
func (p *Parser) parseItem() *Item {
	attrs := p.parseOuterAttrs()
	return p.parseItemBody(attrs)
}

func (p *Parser) parseItemBody(attrs List[*Attribute]) *Item {
	// p.lead is only a fresh "after the last attribute" value when attrs
	// actually consumed something; otherwise it's the same lead the
	// enclosing list (or Module.T1, for a first item) already owns, and
	// reusing it here would print it twice.
	var t1 Trivia
	if !attrs.IsEmpty() {
		t1 = p.lead
	}
	vis := p.parseVis()
	// Likewise, p.lead is only a fresh "after Vis" value when Vis actually
	// consumed a `pub`/`pub(...)`; a zero-width inherited Vis leaves p.lead
	// exactly where it already was — t1's value when attrs is non-empty,
	// or the enclosing container's own already-captured lead when attrs
	// is empty too — so assigning it to t2 as well would duplicate that
	// span in Item.Print regardless of which field actually owns it.
	var t2 Trivia
	if _, inherited := vis.(*VisInherited); !inherited {
		t2 = p.lead
	}
	kind := p.parseItemKind()
	return &Item{Attrs: attrs, T1: t1, Vis: vis, T2: t2, Kind: kind}
}

func (p *Parser) parseItemKind() ItemKind {
	switch {
	case p.checkIdent("mod"):
		return &ItemKindMod{Mod: p.parseItemMod()}
	case p.checkIdent("type"):
		return &ItemKindTyAlias{TyAlias: p.parseTyAlias()}
	case p.checkIdent("const"):
		return &ItemKindConst{Const: p.parseConst()}
	case p.checkIdent("static"):
		return &ItemKindStatic{Static: p.parseStatic()}
	case p.checkIdent("async"), p.checkIdent("unsafe"), p.checkIdent("fn"):
		return &ItemKindFn{Fn: p.parseFn()}
	}
	unexpectedPanic(p.offset(), "item", p.describeCur())
	return nil
}

// parseItemMod parses `mod name;` or `mod name { ... }`.
func (p *Parser) parseItemMod() *ItemMod {
	p.bump() // `mod`
	m := &ItemMod{ModKw: ModKw{}, T1: p.lead}
	_, m.Ident = p.expectIdent()
	m.T2 = p.lead
	if p.checkPunct(";") {
		p.bump()
		m.Body = &ModBodySemi{Semi: SemiTok{}}
		return m
	}
	_, group, _ := p.eatDelim(DelimBrace)
	sub := newSubParser(group.Inner())
	inner := sub.parseModule()
	m.Body = &ModBodyBlock{Braces: Braces[*Module]{T1: group.T1(), Inner: inner, T2: sub.lead}}
	return m
}

// parseTyAlias parses `type Name = Ty;`.
func (p *Parser) parseTyAlias() *TyAlias {
	p.bump() // `type`
	t := &TyAlias{TypeKw: TypeKw{}, T1: p.lead}
	_, t.Ident = p.expectIdent()
	t.T2 = p.lead
	p.expectPunct("=")
	t.Eq = EqTok{}
	t.T3 = p.lead
	t.Ty = p.parseType()
	t.T4 = p.lead
	p.expectPunct(";")
	t.Semi = SemiTok{}
	return t
}

// parseConst parses `const NAME: Ty = value;`.
func (p *Parser) parseConst() *Const {
	p.bump() // `const`
	c := &Const{ConstKw: ConstKw{}, T1: p.lead}
	_, c.Ident = p.expectIdent()
	c.T2 = p.lead
	p.expectPunct(":")
	c.Colon = ColonTok{}
	c.T3 = p.lead
	c.Ty = p.parseType()
	c.T4 = p.lead
	p.expectPunct("=")
	c.Eq = EqTok{}
	c.T5 = p.lead
	c.Value = p.parseExpr(true)
	c.T6 = p.lead
	p.expectPunct(";")
	c.Semi = SemiTok{}
	return c
}

// parseStatic parses `static [mut] NAME: Ty = value;`.
func (p *Parser) parseStatic() *Static {
	p.bump() // `static`
	s := &Static{StaticKw: StaticKw{}, T1: p.lead}
	if p.checkIdent("mut") {
		p.bump()
		mut := MutKw{}
		s.Mut = &mut
		s.T1b = p.lead
	}
	_, s.Ident = p.expectIdent()
	s.T2 = p.lead
	p.expectPunct(":")
	s.Colon = ColonTok{}
	s.T3 = p.lead
	s.Ty = p.parseType()
	s.T4 = p.lead
	p.expectPunct("=")
	s.Eq = EqTok{}
	s.T5 = p.lead
	s.Value = p.parseExpr(true)
	s.T6 = p.lead
	p.expectPunct(";")
	s.Semi = SemiTok{}
	return s
}

// parseFn parses `[async] [unsafe] fn name(params) [-> Ty] { ... }`.
func (p *Parser) parseFn() *Fn {
	f := &Fn{}
	if p.checkIdent("async") {
		p.bump()
		async := AsyncKw{}
		f.Async = &async
		f.T0 = p.lead
	}
	if p.checkIdent("unsafe") {
		p.bump()
		unsafeKw := UnsafeKw{}
		f.Unsafe = &unsafeKw
		f.T0b = p.lead
	}
	p.bump() // `fn`
	f.FnKw = FnKw{}
	f.T1 = p.lead
	_, f.Ident = p.expectIdent()
	f.T2 = p.lead
	_, group, _ := p.eatDelim(DelimParen)
	sub := newSubParser(group.Inner())
	params := parseCommaList(sub, func() bool { return sub.atEOF() }, func() *FnParam { return sub.parseFnParam() })
	f.Params = Parens[SeparatedList[*FnParam, CommaTok]]{T1: group.T1(), Inner: params, T2: sub.lead}
	// T3 is only a gap of its own when a `->` actually follows; otherwise
	// p.lead hasn't moved since the params closed, and capturing it here
	// too would print the same span twice once T4 captures it below.
	if p.checkPunct("->") {
		f.T3 = p.lead
		p.bump()
		arrowLead := p.lead
		f.Ret = &FnRet{Arrow: RThinArrowTok{}, T1: arrowLead, Ty: p.parseType()}
	}
	f.T4 = p.lead
	f.Body = p.parseBlock()
	return f
}

func (p *Parser) parseFnParam() *FnParam {
	fp := &FnParam{Pat: p.parsePat()}
	fp.T1 = p.lead
	p.expectPunct(":")
	fp.Colon = ColonTok{}
	fp.T2 = p.lead
	fp.Ty = p.parseType()
	return fp
}

// parseModule parses a sequence of items, either at file scope or inside
// a `mod name { ... }` block. It leaves Module.Tlast empty: the trivia
// remaining in p.lead once this returns is the caller's to place — into
// Module.Tlast directly for a whole file (there is no enclosing
// delimiter to hold it), or into the wrapping Braces' own trailing slot
// for a nested `mod { ... }` (see parseItemMod).
func (p *Parser) parseModule() *Module {
	m := &Module{}
	if p.atEOF() {
		return m
	}
	m.T1 = p.lead
	m.Items = Single(p.parseItem())
	for !p.atEOF() {
		lead := p.lead
		m.Items.Push(lead, p.parseItem())
	}
	return m
}
