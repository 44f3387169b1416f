package syntax

// parseBlock parses a brace-delimited statement list, re-descending into
// the group's already-lexed token stream the same way parseMatch and
// parseStructLiteral do for their own bodies.
func (p *Parser) parseBlock() Block {
	_, group, _ := p.eatDelim(DelimBrace)
	sub := newSubParser(group.Inner())
	inner := sub.parseBlockInner()
	return Braces[BlockInner]{T1: group.T1(), Inner: inner, T2: sub.lead}
}

// parseBlockInner parses the statement list plus optional tail expression
// inside a block's braces, given a sub-parser already positioned just
// after `{`.
func (p *Parser) parseBlockInner() BlockInner {
	var inner BlockInner
	for {
		if p.atEOF() {
			return inner
		}
		if p.checkPunct(";") {
			lead := p.lead
			p.bump()
			stmt := &Stmt{T1: Trivia{}, Kind: &StmtEmpty{Semi: SemiTok{}}}
			if inner.Stmts.IsEmpty() {
				inner.Stmts = Single(stmt)
			} else {
				inner.Stmts.Push(lead, stmt)
			}
			continue
		}
		lead := p.lead
		stmt, tail := p.parseStmtOrTail()
		if tail != nil {
			inner.TailLead = lead
			inner.Tail = tail
			return inner
		}
		if inner.Stmts.IsEmpty() {
			inner.Stmts = Single(stmt)
		} else {
			inner.Stmts.Push(lead, stmt)
		}
	}
}

// parseStmtOrTail parses one statement. It returns a non-nil tail Expr,
// instead of a Stmt, exactly when what follows is a trailing expression
// with no statement-terminating `;` and nothing left in the block after
// it — the block's value.
func (p *Parser) parseStmtOrTail() (*Stmt, *Expr) {
	attrs := p.parseOuterAttrs()
	// Same reasoning as parseItemBody: only a genuinely new lead when
	// attrs consumed something, otherwise this duplicates the caller's
	// own already-captured lead.
	var t1 Trivia
	if !attrs.IsEmpty() {
		t1 = p.lead
	}

	if p.checkIdent("let") {
		return &Stmt{Attrs: attrs, T1: t1, Kind: p.parseLetStmt()}, nil
	}
	if item, ok := p.tryParseItem(); ok {
		return &Stmt{Attrs: attrs, T1: t1, Kind: &StmtItem{Item: item}}, nil
	}

	// The statement-boundary rule: a block-like expression (if/while/for/
	// loop/match/unsafe/async/try/const, or a bare block) ends a statement
	// on its own closing `}`, and never continues into the general
	// expression grammar's binary operators or postfix chains — in real
	// Rust, `if c {1} else {2} - 1;` is two statements, not one expression
	// with a trailing `- 1`, because the block ends the expression
	// outright. Dispatching to this restricted, block-only production
	// first is what keeps that boundary from being erased by an enclosing
	// precedence level happily consuming the operator that follows.
	if e, ok := p.stmtLeadExpr(); ok {
		if p.checkPunct(";") {
			semiLead := p.lead
			p.bump()
			return &Stmt{Attrs: attrs, T1: t1, Kind: &StmtSemi{Expr: e, T1: semiLead, Semi: SemiTok{}}}, nil
		}
		if !p.atEOF() {
			return &Stmt{Attrs: attrs, T1: t1, Kind: &StmtExpr{Expr: e}}, nil
		}
		return nil, &e
	}

	e := p.parseExpr(true)
	if p.checkPunct(";") {
		semiLead := p.lead
		p.bump()
		return &Stmt{Attrs: attrs, T1: t1, Kind: &StmtSemi{Expr: e, T1: semiLead, Semi: SemiTok{}}}, nil
	}
	if !p.atEOF() {
		unexpectedPanic(p.offset(), "';'", p.describeCur())
	}
	return nil, &e
}

// stmtLeadExpr parses a statement-leading block-like expression —
// if/while/for/loop/match/unsafe/async/try/const, a bare `{ ... }`, or a
// labeled loop — through a dispatch restricted to exactly those forms,
// rather than the general precedence climb starting at parseAssignExpr.
// Reports ok=false, consuming nothing, when the current token doesn't
// start one of them, in which case the caller falls through to the
// ordinary expression grammar.
func (p *Parser) stmtLeadExpr() (Expr, bool) {
	switch {
	case p.checkIdent("if"):
		return mkExpr(&ExprKindIf{If: p.parseIf()}), true
	case p.checkIdent("while"):
		return mkExpr(&ExprKindWhile{While: p.parseWhile(labeled{})}), true
	case p.checkIdent("for"):
		return mkExpr(&ExprKindFor{For: p.parseFor(labeled{})}), true
	case p.checkIdent("loop"):
		return mkExpr(&ExprKindLoop{Loop: p.parseLoop(labeled{})}), true
	case p.checkIdent("match"):
		return p.parseMatch(), true
	case p.checkIdent("unsafe"):
		return p.parseUnsafeBlock(), true
	case p.checkIdent("try"):
		return p.parseTryBlock(), true
	case p.checkIdent("const") && p.constBlockFollows():
		return p.parseConstBlock(), true
	case p.checkIdent("async") && p.asyncBlockFollows():
		return p.parseAsyncOrClosure(true), true
	case p.checkGroup(DelimBrace):
		return mkExpr(&ExprKindBlock{Block: p.parseBlock()}), true
	case p.lifetimeLabelFollows():
		return p.parseLabeledLoop(), true
	}
	return Expr{}, false
}

// parseLetStmt parses `let pat[: Ty] [= value];`, given the current token
// is `let`.
func (p *Parser) parseLetStmt() *StmtLet {
	p.bump() // `let`
	s := &StmtLet{LetKw: LetKw{}, T1: p.lead}
	s.Pat = p.parsePat()
	if p.checkPunct(":") {
		colonLead := p.lead
		p.bump()
		tyLead := p.lead
		s.TyAnn = &tyAnnotation{T1: colonLead, Colon: ColonTok{}, T2: tyLead, Ty: p.parseType()}
	}
	if p.checkPunct("=") {
		eqLead := p.lead
		p.bump()
		valLead := p.lead
		s.Init = &letInit{T1: eqLead, Eq: EqTok{}, T2: valLead, Value: p.parseExpr(true)}
	}
	s.T2 = p.lead
	p.bump() // `;`
	s.Semi = SemiTok{}
	return s
}
