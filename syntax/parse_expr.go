package syntax

// parseExpr is the entry point into the expression grammar. allowStruct
// gates whether a bare `Path { ... }` is read as a struct literal: it is
// turned off for the scrutinee of if/while/for/match, where a trailing
// `{` belongs to the construct's body instead, and turned back on inside
// any explicit delimiter (parens, brackets, call arguments) where that
// ambiguity can't arise.
func (p *Parser) parseExpr(allowStruct bool) Expr {
	return p.parseAssignExpr(allowStruct)
}

func mkExpr(kind ExprKind) Expr { return Expr{Kind: kind} }

// parseOuterAttrs parses zero or more leading `#[...]` attributes.
func (p *Parser) parseOuterAttrs() List[*Attribute] {
	var l List[*Attribute]
	for p.checkPunct("#") {
		lead := p.lead
		attr := p.parseAttribute()
		if l.IsEmpty() {
			l = Single(attr)
		} else {
			l.Push(lead, attr)
		}
	}
	return l
}

// parseAssignExpr handles `=` and the compound assignment operators,
// which are right-associative and bind weaker than ranges.
func (p *Parser) parseAssignExpr(allowStruct bool) Expr {
	left := p.parseRangeExpr(allowStruct)
	op, ok := p.peekAssignOp()
	if !ok {
		return left
	}
	t1 := p.lead
	p.bump()
	t2 := p.lead
	right := p.parseAssignExpr(allowStruct)
	return mkExpr(&ExprKindAssign{Left: left, T1: t1, Op: op, T2: t2, Right: right})
}

func (p *Parser) peekAssignOp() (AssignOp, bool) {
	l := p.leaf()
	if l == nil || l.Kind != LeafPunct {
		return nil, false
	}
	switch l.Text {
	case "=":
		return AssignEq{Tok: EqTok{}}, true
	case "+=":
		return AssignAdd{Tok: PlusEqTok{}}, true
	case "-=":
		return AssignSub{Tok: MinusEqTok{}}, true
	case "*=":
		return AssignMul{Tok: StarEqTok{}}, true
	case "/=":
		return AssignDiv{Tok: SlashEqTok{}}, true
	case "%=":
		return AssignRem{Tok: PercentEqTok{}}, true
	case "&=":
		return AssignBitAnd{Tok: AndEqTok{}}, true
	case "|=":
		return AssignBitOr{Tok: OrEqTok{}}, true
	case "^=":
		return AssignBitXor{Tok: CaretEqTok{}}, true
	case "<<=":
		return AssignShl{Tok: LtLtEqTok{}}, true
	case ">>=":
		return AssignShr{Tok: GtGtEqTok{}}, true
	}
	return nil, false
}

// parseRangeExpr handles `..` and `..=`, which may omit either operand.
func (p *Parser) parseRangeExpr(allowStruct bool) Expr {
	if p.checkPunct("..") || p.checkPunct("..=") {
		return p.finishRangeExpr(nil, allowStruct)
	}
	left := p.parseOrExpr(allowStruct)
	if p.checkPunct("..") || p.checkPunct("..=") {
		return p.finishRangeExpr(&left, allowStruct)
	}
	return left
}

func (p *Parser) finishRangeExpr(start *Expr, allowStruct bool) Expr {
	t1 := p.lead
	var op RangeOp
	if p.checkPunct("..=") {
		p.bump()
		op = RangeIncl{Tok: DotDotEqTok{}}
	} else {
		p.bump()
		op = RangeExcl{Tok: DotDotTok{}}
	}
	kind := &ExprKindRange{Start: start, T1: t1, Op: op}
	if p.rangeEndFollows() {
		t2 := p.lead
		end := p.parseOrExpr(allowStruct)
		kind.T2 = t2
		kind.End = &end
	}
	return mkExpr(kind)
}

// rangeEndFollows reports whether the current token can begin an
// expression, i.e. whether a range's end operand is present.
func (p *Parser) rangeEndFollows() bool {
	if p.atEOF() {
		return false
	}
	if p.checkPunct(",") || p.checkPunct(";") || p.checkPunct(")") ||
		p.checkPunct("]") || p.checkPunct("}") || p.checkPunct("=") {
		return false
	}
	if g, ok := p.cur.(*TokenGroup); ok && g.Group.Delimiter == DelimBrace {
		return false
	}
	return true
}

func (p *Parser) parseOrExpr(allowStruct bool) Expr {
	left := p.parseAndExpr(allowStruct)
	for p.checkPunct("||") {
		t1 := p.lead
		p.bump()
		t2 := p.lead
		right := p.parseAndExpr(allowStruct)
		left = mkExpr(&ExprKindBinary{Left: left, T1: t1, Op: BinOr{Tok: OrOrTok{}}, T2: t2, Right: right})
	}
	return left
}

func (p *Parser) parseAndExpr(allowStruct bool) Expr {
	left := p.parseCmpExpr(allowStruct)
	for p.checkPunct("&&") {
		t1 := p.lead
		p.bump()
		t2 := p.lead
		right := p.parseCmpExpr(allowStruct)
		left = mkExpr(&ExprKindBinary{Left: left, T1: t1, Op: BinAnd{Tok: AndAndTok{}}, T2: t2, Right: right})
	}
	return left
}

// parseCmpExpr handles the (non-chaining) comparison operators: at most
// one may appear at a given level, matching the host language's ban on
// `a < b < c`.
func (p *Parser) parseCmpExpr(allowStruct bool) Expr {
	left := p.parseBitOrExpr(allowStruct)
	op, ok := p.peekCmpOp()
	if !ok {
		return left
	}
	t1 := p.lead
	p.bump()
	t2 := p.lead
	right := p.parseBitOrExpr(allowStruct)
	return mkExpr(&ExprKindBinary{Left: left, T1: t1, Op: op, T2: t2, Right: right})
}

func (p *Parser) peekCmpOp() (BinOp, bool) {
	l := p.leaf()
	if l == nil || l.Kind != LeafPunct {
		return nil, false
	}
	switch l.Text {
	case "==":
		return BinEq{Tok: EqEqTok{}}, true
	case "!=":
		return BinNe{Tok: BangEqTok{}}, true
	case "<":
		return BinLt{Tok: LtTok{}}, true
	case "<=":
		return BinLe{Tok: LtEqTok{}}, true
	case ">":
		return BinGt{Tok: GtTok{}}, true
	case ">=":
		return BinGe{Tok: GtEqTok{}}, true
	}
	return nil, false
}

func (p *Parser) parseBitOrExpr(allowStruct bool) Expr {
	left := p.parseBitXorExpr(allowStruct)
	for p.checkPunct("|") {
		t1 := p.lead
		p.bump()
		t2 := p.lead
		right := p.parseBitXorExpr(allowStruct)
		left = mkExpr(&ExprKindBinary{Left: left, T1: t1, Op: BinBitOr{Tok: OrTok{}}, T2: t2, Right: right})
	}
	return left
}

func (p *Parser) parseBitXorExpr(allowStruct bool) Expr {
	left := p.parseBitAndExpr(allowStruct)
	for p.checkPunct("^") {
		t1 := p.lead
		p.bump()
		t2 := p.lead
		right := p.parseBitAndExpr(allowStruct)
		left = mkExpr(&ExprKindBinary{Left: left, T1: t1, Op: BinBitXor{Tok: CaretTok{}}, T2: t2, Right: right})
	}
	return left
}

func (p *Parser) parseBitAndExpr(allowStruct bool) Expr {
	left := p.parseShiftExpr(allowStruct)
	for p.checkPunct("&") {
		t1 := p.lead
		p.bump()
		t2 := p.lead
		right := p.parseShiftExpr(allowStruct)
		left = mkExpr(&ExprKindBinary{Left: left, T1: t1, Op: BinBitAnd{Tok: AndTok{}}, T2: t2, Right: right})
	}
	return left
}

func (p *Parser) parseShiftExpr(allowStruct bool) Expr {
	left := p.parseAddExpr(allowStruct)
	for p.checkPunct("<<") || p.checkPunct(">>") {
		t1 := p.lead
		var op BinOp
		if p.checkPunct("<<") {
			p.bump()
			op = BinShl{Tok: LtLtTok{}}
		} else {
			p.bump()
			op = BinShr{Tok: GtGtTok{}}
		}
		t2 := p.lead
		right := p.parseAddExpr(allowStruct)
		left = mkExpr(&ExprKindBinary{Left: left, T1: t1, Op: op, T2: t2, Right: right})
	}
	return left
}

func (p *Parser) parseAddExpr(allowStruct bool) Expr {
	left := p.parseMulExpr(allowStruct)
	for p.checkPunct("+") || p.checkPunct("-") {
		t1 := p.lead
		var op BinOp
		if p.checkPunct("+") {
			p.bump()
			op = BinAdd{Tok: PlusTok{}}
		} else {
			p.bump()
			op = BinSub{Tok: MinusTok{}}
		}
		t2 := p.lead
		right := p.parseMulExpr(allowStruct)
		left = mkExpr(&ExprKindBinary{Left: left, T1: t1, Op: op, T2: t2, Right: right})
	}
	return left
}

func (p *Parser) parseMulExpr(allowStruct bool) Expr {
	left := p.parseCastExpr(allowStruct)
	for p.checkPunct("*") || p.checkPunct("/") || p.checkPunct("%") {
		t1 := p.lead
		var op BinOp
		switch {
		case p.checkPunct("*"):
			p.bump()
			op = BinMul{Tok: StarTok{}}
		case p.checkPunct("/"):
			p.bump()
			op = BinDiv{Tok: SlashTok{}}
		default:
			p.bump()
			op = BinRem{Tok: PercentTok{}}
		}
		t2 := p.lead
		right := p.parseCastExpr(allowStruct)
		left = mkExpr(&ExprKindBinary{Left: left, T1: t1, Op: op, T2: t2, Right: right})
	}
	return left
}

func (p *Parser) parseCastExpr(allowStruct bool) Expr {
	left := p.parseUnaryExpr(allowStruct)
	for p.checkIdent("as") {
		t1 := p.lead
		p.bump()
		t2 := p.lead
		ty := p.parseType()
		left = mkExpr(&ExprKindCast{Value: left, T1: t1, AsKw: AsKw{}, T2: t2, Ty: ty})
	}
	return left
}

func (p *Parser) parseUnaryExpr(allowStruct bool) Expr {
	attrs := p.parseOuterAttrs()
	op, ok := p.peekUnaryOp()
	if !ok {
		e := p.parsePostfixExpr(allowStruct)
		e.Attrs = attrs
		return e
	}
	p.bump()
	if _, isRef := op.(UnaryRef); isRef && p.checkIdent("mut") {
		mutLead := p.lead
		p.bump()
		op = UnaryRefMut{And: AndTok{}, T1: mutLead, Mut: MutKw{}}
	}
	t1 := p.lead
	operand := p.parseUnaryExpr(allowStruct)
	return Expr{Attrs: attrs, Kind: &ExprKindUnary{Op: op, T1: t1, Operand: operand}}
}

func (p *Parser) peekUnaryOp() (UnaryOp, bool) {
	l := p.leaf()
	if l == nil || l.Kind != LeafPunct {
		return nil, false
	}
	switch l.Text {
	case "-":
		return UnaryNeg{Minus: MinusTok{}}, true
	case "!":
		return UnaryNot{Bang: BangTok{}}, true
	case "*":
		return UnaryDeref{Star: StarTok{}}, true
	case "&":
		return UnaryRef{And: AndTok{}}, true
	}
	return nil, false
}

// parsePostfixExpr parses a primary expression followed by any chain of
// `.field`, `.method(...)`, `(args)`, `[index]`, and `?` suffixes.
func (p *Parser) parsePostfixExpr(allowStruct bool) Expr {
	e := p.parsePrimaryExpr(allowStruct)
	for {
		switch {
		case p.checkPunct("."):
			e = p.parseDotSuffix(e)
		case p.checkGroup(DelimParen):
			_, group, _ := p.eatDelim(DelimParen)
			args := p.parseCallArgs(group)
			e = mkExpr(&ExprKindCall{Callee: e, Args: args})
		case p.checkGroup(DelimBracket):
			_, group, _ := p.eatDelim(DelimBracket)
			sub := newSubParser(group.Inner())
			idx := sub.parseExpr(true)
			e = mkExpr(&ExprKindIndex{Base: e, Index: Brackets[Expr]{T1: group.T1(), Inner: idx, T2: sub.lead}})
		case p.checkPunct("?"):
			t1 := p.lead
			p.bump()
			e = mkExpr(&ExprKindTry{Operand: e, T1: t1, Question: QuestionTok{}})
		default:
			return e
		}
	}
}

// parseDotSuffix parses one `.member` or `.method(...)` suffix, given the
// current token is `.`. A float-literal token right after the dot (e.g.
// the `0.1` in `x.0.1`) is split into two successive tuple-index
// accesses, since the lexer has no way to know a second `.` was meant.
func (p *Parser) parseDotSuffix(base Expr) Expr {
	t1 := p.lead
	p.bump() // `.`
	t2 := p.lead
	if lit, ok := p.eatLiteral(); ok {
		return p.buildTupleIndexChain(base, t1, t2, lit)
	}
	if p.checkAnyIdent() {
		snap := p.snapshot()
		_, id := p.expectIdent()
		if p.checkGroup(DelimParen) || p.checkPunct("::") {
			return p.finishMethodCall(base, t1, t2, id)
		}
		_ = snap
		return mkExpr(&ExprKindField{Base: base, T1: t1, Dot: DotTok{}, T2: t2, Member: FieldMemberIdent{Ident: id}})
	}
	unexpectedPanic(p.offset(), "field name, tuple index, or method call", p.describeCur())
	return Expr{}
}

func (p *Parser) buildTupleIndexChain(base Expr, t1, t2 Trivia, lit Literal) Expr {
	if lit.Kind != LitFloat {
		return mkExpr(&ExprKindField{Base: base, T1: t1, Dot: DotTok{}, T2: t2, Member: FieldMemberIndex{Literal: lit}})
	}
	dotIdx := -1
	for i, c := range lit.Symbol {
		if c == '.' {
			dotIdx = i
			break
		}
	}
	if dotIdx < 0 {
		return mkExpr(&ExprKindField{Base: base, T1: t1, Dot: DotTok{}, T2: t2, Member: FieldMemberIndex{Literal: lit}})
	}
	first := Literal{Kind: LitInt, Symbol: lit.Symbol[:dotIdx]}
	second := Literal{Kind: LitInt, Symbol: lit.Symbol[dotIdx+1:], Suffix: lit.Suffix}
	inner := mkExpr(&ExprKindField{Base: base, T1: t1, Dot: DotTok{}, T2: t2, Member: FieldMemberIndex{Literal: first}})
	return mkExpr(&ExprKindField{Base: inner, Dot: DotTok{}, Member: FieldMemberIndex{Literal: second}})
}

func (p *Parser) finishMethodCall(base Expr, t1, t2 Trivia, method Ident) Expr {
	var tf *turbofish
	if p.checkPunct("::") {
		tft1 := p.lead
		p.bump()
		tft2 := p.lead
		if args, ok := p.tryParseAngleArgs(); ok {
			tf = &turbofish{T1: tft1, ColonColon: ColonColonTok{}, T2: tft2, Args: *args}
		}
	}
	_, group, _ := p.eatDelim(DelimParen)
	args := p.parseCallArgs(group)
	return mkExpr(&ExprKindMethodCall{Receiver: base, T1: t1, Dot: DotTok{}, T2: t2, Method: method, Turbofish: tf, Args: args})
}

func (p *Parser) parseCallArgs(group Delimited[TokenStream]) Parens[SeparatedList[Expr, CommaTok]] {
	sub := newSubParser(group.Inner())
	sl := parseCommaList(sub, func() bool { return sub.atEOF() }, func() Expr { return sub.parseExpr(true) })
	return Parens[SeparatedList[Expr, CommaTok]]{T1: group.T1(), Inner: sl, T2: sub.lead}
}

// parsePrimaryExpr parses every atomic expression form.
func (p *Parser) parsePrimaryExpr(allowStruct bool) Expr {
	switch {
	case p.checkLiteral():
		_, lit, _ := p.eatLiteral()
		return mkExpr(&ExprKindLit{Literal: lit})
	case p.checkIdent("if"):
		return mkExpr(&ExprKindIf{If: p.parseIf()})
	case p.checkIdent("while"):
		return mkExpr(&ExprKindWhile{While: p.parseWhile(labeled{})})
	case p.checkIdent("for"):
		return mkExpr(&ExprKindFor{For: p.parseFor(labeled{})})
	case p.checkIdent("loop"):
		return mkExpr(&ExprKindLoop{Loop: p.parseLoop(labeled{})})
	case p.checkIdent("match"):
		return p.parseMatch()
	case p.checkIdent("break"):
		return p.parseBreak()
	case p.checkIdent("continue"):
		return p.parseContinue()
	case p.checkIdent("return"):
		return p.parseReturn()
	case p.checkIdent("yield"):
		return p.parseYield()
	case p.checkIdent("become"):
		return p.parseBecome()
	case p.checkIdent("unsafe"):
		return p.parseUnsafeBlock()
	case p.checkIdent("async"):
		return p.parseAsyncOrClosure(allowStruct)
	case p.checkIdent("try"):
		return p.parseTryBlock()
	case p.checkIdent("const"):
		return p.parseConstBlock()
	case p.checkGroup(DelimBrace):
		return mkExpr(&ExprKindBlock{Block: p.parseBlock()})
	case p.checkGroup(DelimParen):
		return p.parseParenOrTuple()
	case p.checkGroup(DelimBracket):
		return p.parseArrayExpr()
	case p.checkPunct("|") || p.checkPunct("||"):
		return p.parseClosure(nil)
	case p.checkIdent("move") && p.moveClosureFollows():
		return p.parseClosure(nil)
	case p.lifetimeLabelFollows():
		return p.parseLabeledLoop()
	case p.checkPunct("<"):
		qself := p.parseQSelf()
		t1 := p.lead
		p.bump() // `::`
		t2 := p.lead
		return mkExpr(&ExprKindQPath{QPath: QPath{QSelf: *qself, T1: t1, ColonColon: ColonColonTok{}, T2: t2, Path: p.parsePath()}})
	case p.checkAnyIdent() || p.checkPunct("::"):
		return p.parsePathOrStructOrMacro(allowStruct)
	}
	unexpectedPanic(p.offset(), "expression", p.describeCur())
	return Expr{}
}

func (p *Parser) lifetimeLabelFollows() bool {
	l := p.leaf()
	return l != nil && (l.Kind == LeafLifetime || l.Kind == LeafRawLifetime)
}

func (p *Parser) parseLabeledLoop() Expr {
	_, name, _ := p.eatLifetime()
	label := &Label{Name: Ident{Name: name}, T1: p.lead}
	p.bump() // `:`
	label.Colon = ColonTok{}
	lab := labeled{Label: label, T1: p.lead}
	switch {
	case p.checkIdent("while"):
		return mkExpr(&ExprKindWhile{While: p.parseWhile(lab)})
	case p.checkIdent("for"):
		return mkExpr(&ExprKindFor{For: p.parseFor(lab)})
	case p.checkIdent("loop"):
		return mkExpr(&ExprKindLoop{Loop: p.parseLoop(lab)})
	case p.checkGroup(DelimBrace):
		return mkExpr(&ExprKindBlock{Labeled: lab, Block: p.parseBlock()})
	}
	unexpectedPanic(p.offset(), "while, for, loop, or block", p.describeCur())
	return Expr{}
}

func (p *Parser) parsePathOrStructOrMacro(allowStruct bool) Expr {
	pth := p.parsePath()
	if p.checkPunct("!") {
		t1 := p.lead
		p.bump()
		t2 := p.lead
		if _, group, ok := p.eatAnyDelim(); ok {
			return mkExpr(&ExprKindMacroCall{Call: &MacroCall{Path: pth, T1: t1, Bang: BangTok{}, T2: t2, Group: group}})
		}
	}
	if allowStruct && p.checkGroup(DelimBrace) {
		return mkExpr(&ExprKindStruct{Struct: p.parseStructLiteral(pth)})
	}
	return mkExpr(&ExprKindPath{Path: pth})
}

func (p *Parser) eatAnyDelim() (Delimiter, Delimited[TokenStream], bool) {
	if g, ok := p.cur.(*TokenGroup); ok {
		p.bump()
		return g.Group.Delimiter, g.Group, true
	}
	return 0, Delimited[TokenStream]{}, false
}

func (p *Parser) parseStructLiteral(pth Path) *ExprStruct {
	t1 := p.lead
	_, group, _ := p.eatDelim(DelimBrace)
	sub := newSubParser(group.Inner())
	body := sub.parseStructBody()
	return &ExprStruct{Path: pth, T1: t1, Group: Braces[structBody]{T1: group.T1(), Inner: body, T2: sub.lead}}
}

func (p *Parser) parseStructBody() structBody {
	var body structBody
	if p.checkPunct("..") {
		lead := p.lead
		p.bump()
		t2 := p.lead
		base := p.parseExpr(true)
		body.Rest = &structRest{T1: lead, DotDot: DotDotTok{}, T2: t2, Base: base}
		return body
	}
	if p.atEOF() {
		return body
	}
	body.Fields = parseCommaList(p, func() bool {
		return p.atEOF() || p.checkPunct("..")
	}, func() *ExprStructField { return p.parseStructField() })
	if p.checkPunct("..") {
		lead := p.lead
		p.bump()
		t2 := p.lead
		base := p.parseExpr(true)
		body.Rest = &structRest{T1: lead, DotDot: DotDotTok{}, T2: t2, Base: base}
	}
	return body
}

func (p *Parser) parseStructField() *ExprStructField {
	_, id := p.expectIdent()
	f := &ExprStructField{Ident: id}
	if p.checkPunct(":") {
		t1 := p.lead
		p.bump()
		t2 := p.lead
		val := p.parseExpr(true)
		f.Value = &fieldValueClause{T1: t1, Colon: ColonTok{}, T2: t2, Value: val}
	}
	return f
}

func (p *Parser) parseParenOrTuple() Expr {
	_, group, _ := p.eatDelim(DelimParen)
	sub := newSubParser(group.Inner())
	lead := group.T1()
	if sub.atEOF() {
		return mkExpr(&ExprKindTuple{Tuple: &ExprTuple{Group: Parens[SeparatedList[Expr, CommaTok]]{T1: lead, T2: sub.lead}}})
	}
	first := sub.parseExpr(true)
	if !sub.checkPunct(",") {
		return mkExpr(&ExprKindParen{Paren: &ExprParen{Group: Parens[Expr]{T1: lead, Inner: first, T2: sub.lead}}})
	}
	var sl SeparatedList[Expr, CommaTok]
	sl.SetFirst(first)
	for sub.checkPunct(",") {
		commaLead := sub.lead
		sub.bump()
		valLead := sub.lead
		if sub.atEOF() {
			sl.SetTrailing(commaLead, CommaTok{})
			break
		}
		sl.Push(commaLead, CommaTok{}, valLead, sub.parseExpr(true))
	}
	return mkExpr(&ExprKindTuple{Tuple: &ExprTuple{Group: Parens[SeparatedList[Expr, CommaTok]]{T1: lead, Inner: sl, T2: sub.lead}}})
}

func (p *Parser) parseArrayExpr() Expr {
	_, group, _ := p.eatDelim(DelimBracket)
	sub := newSubParser(group.Inner())
	lead := group.T1()
	if sub.atEOF() {
		return mkExpr(&ExprKindArray{Group: Brackets[ArrayInner]{T1: lead, Inner: ArrayList{}, T2: sub.lead}})
	}
	first := sub.parseExpr(true)
	if sub.checkPunct(";") {
		semiLead := sub.lead
		sub.bump()
		countLead := sub.lead
		count := sub.parseExpr(true)
		inner := ArrayRepeat{Elem: first, T1: semiLead, Semi: SemiTok{}, T2: countLead, Count: count}
		return mkExpr(&ExprKindArray{Group: Brackets[ArrayInner]{T1: lead, Inner: inner, T2: sub.lead}})
	}
	var sl SeparatedList[Expr, CommaTok]
	sl.SetFirst(first)
	for sub.checkPunct(",") {
		commaLead := sub.lead
		sub.bump()
		valLead := sub.lead
		if sub.atEOF() {
			sl.SetTrailing(commaLead, CommaTok{})
			break
		}
		sl.Push(commaLead, CommaTok{}, valLead, sub.parseExpr(true))
	}
	return mkExpr(&ExprKindArray{Group: Brackets[ArrayInner]{T1: lead, Inner: ArrayList{Elems: sl}, T2: sub.lead}})
}

func (p *Parser) parseIf() *If {
	p.bump() // `if`
	t1 := p.lead
	cond := p.parseExpr(false)
	t2 := p.lead
	then := p.parseBlock()
	i := &If{IfKw: IfKw{}, T1: t1, Cond: cond, T2: t2, Then: then}
	if p.checkIdent("else") {
		i.T3 = p.lead
		i.Else = p.parseElse()
	}
	return i
}

func (p *Parser) parseElse() *Else {
	p.bump() // `else`
	t1 := p.lead
	if p.checkIdent("if") {
		return &Else{ElseKw: ElseKw{}, T1: t1, Kind: ElseIf{If: p.parseIf()}}
	}
	return &Else{ElseKw: ElseKw{}, T1: t1, Kind: ElseBlock{Block: p.parseBlock()}}
}

func (p *Parser) parseWhile(lab labeled) *While {
	p.bump() // `while`
	t1 := p.lead
	cond := p.parseExpr(false)
	t2 := p.lead
	body := p.parseBlock()
	return &While{Labeled: lab, WhileKw: WhileKw{}, T1: t1, Cond: cond, T2: t2, Body: body}
}

func (p *Parser) parseFor(lab labeled) *For {
	p.bump() // `for`
	t1 := p.lead
	pat := p.parsePat()
	t2 := p.lead
	p.expectKw("in")
	t3 := p.lead
	iter := p.parseExpr(false)
	t4 := p.lead
	body := p.parseBlock()
	return &For{Labeled: lab, ForKw: ForKw{}, T1: t1, Pat: pat, T2: t2, InKw: InKw{}, T3: t3, Iter: iter, T4: t4, Body: body}
}

func (p *Parser) parseLoop(lab labeled) *Loop {
	p.bump() // `loop`
	t1 := p.lead
	body := p.parseBlock()
	return &Loop{Labeled: lab, LoopKw: LoopKw{}, T1: t1, Body: body}
}

func (p *Parser) parseMatch() Expr {
	p.bump() // `match`
	t1 := p.lead
	scrutinee := p.parseExpr(false)
	t2 := p.lead
	_, group, _ := p.eatDelim(DelimBrace)
	sub := newSubParser(group.Inner())
	arms := sub.parseMatchArms()
	return mkExpr(&ExprKindMatch{MatchKw: MatchKw{}, T1: t1, Scrutinee: scrutinee, T2: t2, Group: Braces[List[*matchArmEntry]]{T1: group.T1(), Inner: arms, T2: sub.lead}})
}

func (p *Parser) parseMatchArms() List[*matchArmEntry] {
	var l List[*matchArmEntry]
	for !p.atEOF() {
		lead := p.lead
		entry := p.parseMatchArmEntry()
		if l.IsEmpty() {
			l = Single(entry)
		} else {
			l.Push(lead, entry)
		}
	}
	return l
}

func (p *Parser) parseMatchArmEntry() *matchArmEntry {
	arm := p.parseMatchArm()
	e := &matchArmEntry{Arm: arm}
	if p.checkPunct(",") {
		e.T1 = p.lead
		p.bump()
		c := CommaTok{}
		e.Comma = &c
	} else if _, isBlock := arm.Body.Kind.(*ExprKindBlock); !isBlock && !p.atEOF() {
		unexpectedPanic(p.offset(), "','", p.describeCur())
	}
	return e
}

func (p *Parser) parseMatchArm() MatchArm {
	attrs := p.parseOuterAttrs()
	pat := p.parsePat()
	arm := MatchArm{Attrs: attrs, Pat: pat}
	if p.checkIdent("if") {
		g := &matchGuard{}
		g.T1 = p.lead
		p.bump()
		g.IfKw = IfKw{}
		g.T2 = p.lead
		g.Cond = p.parseExpr(false)
		arm.Guard = g
	}
	arm.T1 = p.lead
	p.expectPunct("=>")
	arm.Arrow = RFatArrowTok{}
	arm.T2 = p.lead
	arm.Body = p.parseExpr(true)
	return arm
}

func (p *Parser) parseBreakContinueTarget() *breakContinueTarget {
	if !p.lifetimeLabelFollows() {
		return nil
	}
	t1 := p.lead
	_, name, _ := p.eatLifetime()
	return &breakContinueTarget{T1: t1, Label: Ident{Name: name}}
}

func (p *Parser) breakValueFollows() bool {
	if p.atEOF() {
		return false
	}
	if p.checkPunct(",") || p.checkPunct(";") || p.checkPunct(")") ||
		p.checkPunct("]") || p.checkPunct("}") {
		return false
	}
	return true
}

func (p *Parser) parseBreak() Expr {
	p.bump() // `break`
	b := &Break{BreakKw: BreakKw{}}
	b.Target = p.parseBreakContinueTarget()
	if p.breakValueFollows() {
		b.T1 = p.lead
		b.Value = p.parseExpr(true)
		b.hasValue = true
	}
	return mkExpr(&ExprKindBreak{Break: b})
}

func (p *Parser) parseContinue() Expr {
	p.bump() // `continue`
	c := &Continue{ContinueKw: ContinueKw{}}
	c.Target = p.parseBreakContinueTarget()
	return mkExpr(&ExprKindContinue{Continue: c})
}

func (p *Parser) parseReturn() Expr {
	p.bump() // `return`
	r := &Return{ReturnKw: ReturnKw{}}
	if p.breakValueFollows() {
		r.T1 = p.lead
		r.Value = p.parseExpr(true)
		r.hasValue = true
	}
	return mkExpr(&ExprKindReturn{Return: r})
}

func (p *Parser) parseYield() Expr {
	p.bump() // `yield`
	y := &Yield{YieldKw: YieldKw{}}
	if p.breakValueFollows() {
		y.T1 = p.lead
		y.Value = p.parseExpr(true)
		y.hasValue = true
	}
	return mkExpr(&ExprKindYield{Yield: y})
}

func (p *Parser) parseBecome() Expr {
	p.bump() // `become`
	t1 := p.lead
	val := p.parseExpr(true)
	return mkExpr(&ExprKindBecome{Become: &Become{BecomeKw: BecomeKw{}, T1: t1, Value: val}})
}

func (p *Parser) parseUnsafeBlock() Expr {
	p.bump() // `unsafe`
	t1 := p.lead
	blk := p.parseBlock()
	return mkExpr(&ExprKindUnsafeBlock{Block: &UnsafeBlock{UnsafeKw: UnsafeKw{}, T1: t1, Block: blk}})
}

func (p *Parser) parseTryBlock() Expr {
	p.bump() // `try`
	t1 := p.lead
	blk := p.parseBlock()
	return mkExpr(&ExprKindTryBlock{Block: &TryBlock{TryKw: TryKw{}, T1: t1, Block: blk}})
}

func (p *Parser) parseConstBlock() Expr {
	p.bump() // `const`
	t1 := p.lead
	blk := p.parseBlock()
	return mkExpr(&ExprKindConstBlock{Block: &ConstBlock{ConstKw: ConstKw{}, T1: t1, Block: blk}})
}

// asyncBodyFollows reports whether, past an optional `move`, `async` here
// is followed by a `{` (an async block) or a `|`/`||` (an async closure),
// without consuming anything. False means `async` is being used as a
// plain identifier.
func (p *Parser) asyncBodyFollows() bool {
	snap := p.snapshot()
	defer p.restore(snap)
	if p.checkIdent("move") {
		p.bump()
	}
	return p.checkGroup(DelimBrace) || p.checkPunct("|") || p.checkPunct("||")
}

// asyncBlockFollows is asyncBodyFollows narrowed to the block case only,
// used by the statement-boundary dispatch to tell an async block (which
// ends a statement on its own `}`) from an async closure (which doesn't).
func (p *Parser) asyncBlockFollows() bool {
	snap := p.snapshot()
	defer p.restore(snap)
	p.bump() // `async`
	if p.checkIdent("move") {
		p.bump()
	}
	return p.checkGroup(DelimBrace)
}

// moveClosureFollows reports whether `move` here begins a closure
// (`move |...| ...` or `move || ...`), without consuming anything. Plain
// `move` with neither following is read as an ordinary identifier.
func (p *Parser) moveClosureFollows() bool {
	snap := p.snapshot()
	defer p.restore(snap)
	p.bump() // `move`
	return p.checkPunct("|") || p.checkPunct("||")
}

// parseAsyncOrClosure disambiguates `async [move] { ... }` from
// `async [move] || ...` / `async [move] |x| ...`, both of which start
// with the same keyword — and leaves a plain `async` identifier (not
// followed by either form) untouched, read as a path segment instead.
func (p *Parser) parseAsyncOrClosure(allowStruct bool) Expr {
	snap := p.snapshot()
	p.bump() // `async`
	t1 := p.lead
	if !p.asyncBodyFollows() {
		p.restore(snap)
		return p.parsePathOrStructOrMacro(allowStruct)
	}
	var move *MoveKw
	var t1b Trivia
	if p.checkIdent("move") {
		p.bump()
		m := MoveKw{}
		move = &m
		t1b = p.lead
	}
	if p.checkGroup(DelimBrace) {
		blk := p.parseBlock()
		return mkExpr(&ExprKindAsyncBlock{Block: &AsyncBlock{AsyncKw: AsyncKw{}, T1: t1, Move: move, T1b: t1b, Block: blk}})
	}
	asyncKw := AsyncKw{}
	return p.parseClosureBody(&asyncKw, t1, move, t1b)
}

// parseClosure parses a closure with no `async` prefix, which means an
// optional `move` here is this call's own to consume.
func (p *Parser) parseClosure(async *AsyncKw) Expr {
	var move *MoveKw
	var t0b Trivia
	if p.checkIdent("move") {
		p.bump()
		m := MoveKw{}
		move = &m
		t0b = p.lead
	}
	return p.parseClosureBody(async, Trivia{}, move, t0b)
}

// parseClosureBody parses the `|params| [-> Ty] body` tail of a closure,
// given any `async`/`move` prefix has already been consumed by the
// caller (parseAsyncOrClosure or parseClosure).
func (p *Parser) parseClosureBody(async *AsyncKw, t0 Trivia, move *MoveKw, t0b Trivia) Expr {
	kind := &ExprKindClosure{Async: async, T0: t0, Move: move, T0b: t0b}
	if p.checkPunct("||") {
		p.bump()
		empty := OrOrTok{}
		kind.Empty = &empty
	} else {
		p.bump() // `|`
		cp := &closureParams{Open: OrTok{}}
		cp.T1 = p.lead
		cp.Params = parseCommaList(p, func() bool { return p.checkPunct("|") }, func() *ClosureParam { return p.parseClosureParam() })
		cp.T2 = p.lead
		p.expectPunct("|")
		cp.Close = OrTok{}
		kind.NonEmpty = cp
	}
	kind.T1 = p.lead
	if p.checkPunct("->") {
		p.bump()
		t2 := p.lead
		ty := p.parseType()
		kind.Ret = &FnRet{Arrow: RThinArrowTok{}, T1: t2, Ty: ty}
		kind.T2 = p.lead
		kind.Body = mkExpr(&ExprKindBlock{Block: p.parseBlock()})
	} else {
		kind.Body = p.parseExpr(true)
	}
	return mkExpr(kind)
}

func (p *Parser) parseClosureParam() *ClosureParam {
	pat := p.parsePat()
	cp := &ClosureParam{Pat: pat}
	if p.checkPunct(":") {
		t1 := p.lead
		p.bump()
		t2 := p.lead
		ty := p.parseType()
		cp.TyAnn = &tyAnnotation{T1: t1, Colon: ColonTok{}, T2: t2, Ty: ty}
	}
	return cp
}
