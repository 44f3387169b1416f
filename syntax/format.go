package syntax

// formatPass is the shared skeleton behind Minify and FormatWithStyleGuide:
// both walk the same tree shape and touch the same trivia slots, differing
// only in what a slot collapses to. sp marks a slot whose two
// neighboring tokens would otherwise fuse into one lexeme (e.g. `mod` and
// the module name) or whose identity as a keyword/block boundary the style
// guide always pads with a space; minify collapses those to a single space
// and everything else to nothing, while the style guide shrinks toward one
// space or zero depending on which shape function a call site reaches for.
//
// Braces, Brackets, Parens, and BlockInner carry no Pass hook of their own
// (see visitor.go), so their trivia can only be reached by the node that
// embeds them, reaching in directly rather than through p.VisitX. The same
// is true of Expr's own Attrs field: Expr.Visit takes a value receiver (Expr
// must satisfy Elem by value since several containers hold it directly, not
// by pointer), so a hook that calls e.Visit(p) on an addressable Expr field
// mutates a throwaway copy. shapeExpr below is the substitute: it mutates
// Attrs in place through the pointer the caller already holds, then lets
// Kind dispatch normally since ExprKind is stored behind a pointer.
type formatPass struct {
	NoopPass
	minify bool
}

// Minify erases every trivia slot in file shaped by ns, df, or tight and
// pads every slot shaped by sp to a single space, producing valid,
// comment-free source. Because sp also covers the style guide's
// single-space punctuation slots (after `:` and `,`, around `=` and `=>`),
// the result keeps some spaces that no two tokens need, so it is not the
// shortest possible rendering.
func Minify(file *File, opts ...ParseOption) {
	cfg := newParseConfig(opts)
	cfg.logger.Debug("applying Spaces pass", "mode", "minify", "items", file.Module.Items.Len())
	fp := &formatPass{minify: true}
	file.Visit(fp)
}

// FormatWithStyleGuide rewrites file's trivia to the canonical spacing
// described by the style guide: single spaces at keyword and operator
// boundaries, none just inside brackets or around `::`, and line/block
// comments otherwise left alone.
func FormatWithStyleGuide(file *File, opts ...ParseOption) {
	cfg := newParseConfig(opts)
	cfg.logger.Debug("applying Spaces pass", "mode", "style", "items", file.Module.Items.Len())
	fp := &formatPass{minify: false}
	file.Visit(fp)
}

// sp shapes a slot that always carries at least one separating byte. It
// serves two kinds of slot: a gap between two word tokens (keyword,
// identifier, or literal) that would otherwise fuse into a single,
// different lexeme, and a punctuation slot the style guide pads with
// exactly one space (after `:`, `,`, or `;`, around `=`, `=>`, and `as`,
// after a closure's parameters). Minify pads both kinds to one space.
func (fp *formatPass) sp(t Trivia) Trivia {
	if fp.minify {
		return SingleSpace()
	}
	return shrinkSingleSpace(t)
}

// ns shapes a slot documented to carry no space at all when nothing else
// occupies it (inside brackets, around `::`, between `#`/`!` and `[`).
func (fp *formatPass) ns(t Trivia) Trivia {
	if fp.minify {
		return Trivia{}
	}
	return shrinkNoSpace(t)
}

// df is the default shape for a slot with no documented policy: erased
// entirely by Minify, collapsed to a single space by the style guide.
func (fp *formatPass) df(t Trivia) Trivia {
	if fp.minify {
		return Trivia{}
	}
	return shrinkSingleSpace(t)
}

// tight is the default shape for a slot that idiomatically binds tight to
// its neighbor (`.field`, `?`, turbofish `::<..>`) — no space when the
// style guide runs, same as Minify.
func (fp *formatPass) tight(t Trivia) Trivia {
	return fp.ns(t)
}

// attrList shapes the gaps between consecutive attributes to sp. The
// list's trailing run is not reshaped (List.ShapeTrivia leaves it as is),
// and an empty list has nothing to shape; the gap after the last attribute
// is held by the enclosing node (Item.T1, Stmt.T1), which pads it when the
// list is non-empty.
func (fp *formatPass) attrList(p Pass, l *List[*Attribute]) {
	if l.IsEmpty() {
		l.ShapeTrivia(p, fp.ns)
		return
	}
	l.ShapeTrivia(p, fp.sp)
}

// shapeExpr mutates e's own Attrs trivia in place (see the type doc for
// why this can't go through e.Visit) then dispatches into Kind normally.
func (fp *formatPass) shapeExpr(p Pass, e *Expr) {
	fp.attrList(p, &e.Attrs)
	e.Kind.Visit(p)
}

func (fp *formatPass) shapeBlockInner(p Pass, bi *BlockInner) {
	// Every statement ends in `;` or a block's own closing `}`, so the gap
	// before the next one never risks fusing two words together.
	bi.Stmts.ShapeTrivia(p, fp.df)
	if bi.Tail != nil {
		// TailLead is only a genuine gap of its own when a statement
		// precedes it; going straight from `{` to a tail expression
		// leaves it structurally empty, with the real post-`{` space
		// already held by the block's own T1.
		if !bi.Stmts.IsEmpty() {
			bi.TailLead = fp.df(bi.TailLead)
		}
		fp.shapeExpr(p, bi.Tail)
	}
}

func (fp *formatPass) shapeBlock(p Pass, b *Block) {
	if b.Inner.Stmts.IsEmpty() && b.Inner.Tail == nil {
		// An empty block prints as `{}`: no space inside the braces.
		b.T1 = fp.ns(b.T1)
		b.T2 = fp.ns(b.T2)
		return
	}
	// Just inside `{` and just inside `}`: a delimiter on one side, so
	// there is nothing here that could fuse.
	b.T1 = fp.df(b.T1)
	fp.shapeBlockInner(p, &b.Inner)
	b.T2 = fp.df(b.T2)
}

func (fp *formatPass) shapeLabeled(p Pass, l *labeled) {
	if l.Label != nil {
		l.Label.Visit(p)
		// Between the label's own trailing `:` and the loop/while/for
		// keyword that follows — punctuation on one side, no fusion risk.
		l.T1 = fp.df(l.T1)
	}
}

// --- file / module / items -------------------------------------------

func (fp *formatPass) VisitModule(p Pass, m *Module) {
	// T1/Tlast sit at the file's own edges (or a nested mod block's,
	// folded into the enclosing Braces by VisitMod below) — there is no
	// neighboring token on the outside to separate from, so unlike the
	// mandatory gap between two items these shrink toward nothing rather
	// than toward a single space.
	m.T1 = fp.ns(m.T1)
	// Every item ends in `;` or `}`, so the gap before the next one is
	// never a fusion risk.
	m.Items.ShapeTrivia(p, fp.df)
	m.Tlast = fp.ns(m.Tlast)
}

func (fp *formatPass) VisitItem(p Pass, it *Item) {
	fp.attrList(p, &it.Attrs)
	if !it.Attrs.IsEmpty() {
		it.T1 = fp.sp(it.T1)
	}
	it.Vis.Visit(p)
	// Mirrors parseItemBody: T2 only holds a gap of its own when Vis
	// actually consumed something; an inherited Vis leaves it the
	// zero-width twin of whatever already owns that span (T1, or the
	// enclosing container's lead), and padding it too would double the
	// space before Kind.
	if _, inherited := it.Vis.(*VisInherited); !inherited {
		it.T2 = fp.sp(it.T2)
	}
	it.Kind.Visit(p)
}

func (fp *formatPass) VisitVisRestricted(p Pass, v *VisRestricted) {
	if v.In != nil {
		v.T1 = fp.sp(v.T1)
	}
	v.Path.Visit(p)
}

func (fp *formatPass) VisitVis(p Pass, v Visibility) {
	if vp, ok := v.(*VisPubRestricted); ok {
		vp.T1 = fp.ns(vp.T1)
		vp.Group.T1 = fp.ns(vp.Group.T1)
		vp.Group.Inner.Visit(p)
		vp.Group.T2 = fp.ns(vp.Group.T2)
		return
	}
	v.Walk(p)
}

func (fp *formatPass) VisitMod(p Pass, m *ItemMod) {
	// `mod` and the name are both words — omitting this gap would fuse
	// them into one identifier.
	m.T1 = fp.sp(m.T1)
	// T2 sits between the name and whatever follows (`;` or `{`), and
	// Braces.T1/T2 sit just inside those braces — a delimiter on one side
	// of each, so none of them risk fusing anything.
	m.T2 = fp.df(m.T2)
	switch body := m.Body.(type) {
	case *ModBodyBlock:
		body.Braces.T1 = fp.df(body.Braces.T1)
		body.Braces.Inner.Visit(p)
		body.Braces.T2 = fp.df(body.Braces.T2)
	default:
		m.Body.Visit(p)
	}
}

func (fp *formatPass) VisitTyAlias(p Pass, t *TyAlias) {
	t.T1 = fp.sp(t.T1)
	t.T2 = fp.sp(t.T2)
	t.T3 = fp.sp(t.T3)
	t.Ty.Visit(p)
	t.T4 = fp.ns(t.T4)
}

func (fp *formatPass) VisitConst(p Pass, c *Const) {
	c.T1 = fp.sp(c.T1)
	c.T2 = fp.ns(c.T2)
	c.T3 = fp.sp(c.T3)
	c.Ty.Visit(p)
	c.T4 = fp.sp(c.T4)
	c.T5 = fp.sp(c.T5)
	fp.shapeExpr(p, &c.Value)
	c.T6 = fp.ns(c.T6)
}

func (fp *formatPass) VisitStatic(p Pass, s *Static) {
	s.T1 = fp.sp(s.T1)
	if s.Mut != nil {
		s.T1b = fp.sp(s.T1b)
	}
	s.T2 = fp.ns(s.T2)
	s.T3 = fp.sp(s.T3)
	s.Ty.Visit(p)
	s.T4 = fp.sp(s.T4)
	s.T5 = fp.sp(s.T5)
	fp.shapeExpr(p, &s.Value)
	s.T6 = fp.ns(s.T6)
}

func (fp *formatPass) VisitFnParam(p Pass, fpar *FnParam) {
	fpar.Pat.Visit(p)
	fpar.T1 = fp.ns(fpar.T1)
	fpar.T2 = fp.sp(fpar.T2)
	fpar.Ty.Visit(p)
}

func (fp *formatPass) VisitFnRet(p Pass, r *FnRet) {
	r.T1 = fp.sp(r.T1)
	r.Ty.Visit(p)
}

func (fp *formatPass) VisitFn(p Pass, f *Fn) {
	if f.Async != nil {
		f.T0 = fp.sp(f.T0)
	}
	if f.Unsafe != nil {
		f.T0b = fp.sp(f.T0b)
	}
	f.T1 = fp.sp(f.T1)
	f.T2 = fp.ns(f.T2)
	f.Params.T1 = fp.ns(f.Params.T1)
	f.Params.Inner.ShapeTrivia(p, fp.ns, fp.sp)
	f.Params.T2 = fp.ns(f.Params.T2)
	// T3 only holds a gap of its own when Ret is present; a nil Ret
	// leaves it the zero-width twin of T4 (see parseFn), and padding it
	// too would double the space before the body.
	if f.Ret != nil {
		f.T3 = fp.df(f.T3)
		f.Ret.Visit(p)
	}
	// Just before the body's opening `{` — no fusion risk.
	f.T4 = fp.df(f.T4)
	fp.shapeBlock(p, &f.Body)
}

// --- paths --------------------------------------------------------------

func (fp *formatPass) VisitPath(p Pass, pth *Path) {
	if pth.LeadingColon != nil {
		pth.T0 = fp.ns(pth.T0)
	}
	pth.Seg1.Visit(p)
	for i := range pth.Rest {
		r := &pth.Rest[i]
		r.T1 = fp.ns(r.T1)
		r.T2 = fp.ns(r.T2)
		r.Seg.Visit(p)
	}
}

func (fp *formatPass) VisitPathSegment(p Pass, s *PathSegment) {
	s.Ident.Visit(p)
	if s.Args != nil {
		s.T1 = fp.ns(s.T1)
		s.Args.T1 = fp.ns(s.Args.T1)
		s.Args.Args.ShapeTrivia(p, fp.ns, fp.sp)
		s.Args.T2 = fp.ns(s.Args.T2)
	}
}

func (fp *formatPass) VisitQSelf(p Pass, q *QSelf) {
	q.T1 = fp.ns(q.T1)
	q.Ty.Visit(p)
	if q.As != nil {
		q.T2 = fp.sp(q.T2)
		q.T3 = fp.sp(q.T3)
		q.TraitPath.Visit(p)
		q.T4 = fp.ns(q.T4)
		return
	}
	q.T2 = fp.ns(q.T2)
}

func (fp *formatPass) VisitQPath(p Pass, q *QPath) {
	q.QSelf.Visit(p)
	q.T1 = fp.ns(q.T1)
	q.T2 = fp.ns(q.T2)
	q.Path.Visit(p)
}

func (fp *formatPass) VisitTy(p Pass, t Ty) {
	switch ty := t.(type) {
	case *TyPath:
		if ty.QSelf != nil {
			ty.QSelf.Visit(p)
			ty.T1 = fp.ns(ty.T1)
		}
		ty.Path.Visit(p)
	case *TySlice:
		ty.Group.T1 = fp.ns(ty.Group.T1)
		ty.Group.Inner.Visit(p)
		ty.Group.T2 = fp.ns(ty.Group.T2)
	case *TyArray:
		ty.Lead = fp.ns(ty.Lead)
		ty.Elem.Visit(p)
		ty.Len.T1 = fp.ns(ty.Len.T1)
		ty.Len.T2 = fp.sp(ty.Len.T2)
		fp.shapeExpr(p, &ty.Len.Len)
		ty.Trail = fp.ns(ty.Trail)
	default:
		t.Walk(p)
	}
}

func (fp *formatPass) VisitPat(p Pass, pt Pat) {
	if id, ok := pt.(*PatIdent); ok && id.Mut != nil {
		id.T1 = fp.sp(id.T1)
		return
	}
	pt.Walk(p)
}

// --- attributes -----------------------------------------------------------

func (fp *formatPass) VisitAttr(p Pass, a *Attribute) {
	a.T1 = fp.ns(a.T1)
	a.Group.T1 = fp.ns(a.Group.T1)
	b := &a.Group.Inner
	b.Path.Visit(p)
	if _, none := b.Value.(*AttrValueNone); none {
		b.T1 = fp.ns(b.T1)
	} else {
		b.T1 = fp.sp(b.T1)
	}
	b.Value.Visit(p)
	if b.Tail != nil {
		b.T2 = fp.ns(b.T2)
		b.Tail.Visit(p)
	}
	a.Group.T2 = fp.ns(a.Group.T2)
}

func (fp *formatPass) VisitAttrValue(p Pass, v AttrValue) {
	if e, ok := v.(*AttrValueExpr); ok {
		e.T1 = fp.sp(e.T1)
		fp.shapeExpr(p, &e.Expr)
	}
}

// --- control-flow blocks -------------------------------------------------

func (fp *formatPass) VisitLabel(p Pass, l *Label) { l.Name.Visit(p); l.T1 = fp.ns(l.T1) }

func (fp *formatPass) VisitIf(p Pass, i *If) {
	fp.shapeLabeled(p, &i.Labeled)
	// `if` and the condition are both words (the condition can start with
	// an identifier) — keep the mandatory gap.
	i.T1 = fp.sp(i.T1)
	fp.shapeExpr(p, &i.Cond)
	// Just before the `then` block's `{` — no fusion risk.
	i.T2 = fp.df(i.T2)
	fp.shapeBlock(p, &i.Then)
	if i.Else != nil {
		// Just after the `then` block's closing `}` — no fusion risk
		// regardless of what Else turns out to be.
		i.T3 = fp.df(i.T3)
		i.Else.Visit(p)
	}
}

func (fp *formatPass) VisitElse(p Pass, e *Else) {
	switch k := e.Kind.(type) {
	case *ElseBlock:
		// Before the block's `{` — no fusion risk.
		e.T1 = fp.df(e.T1)
		fp.shapeBlock(p, &k.Block)
	case *ElseIf:
		// `else` and `if` are both words and would otherwise fuse into
		// one identifier.
		e.T1 = fp.sp(e.T1)
		k.If.Visit(p)
	}
}

func (fp *formatPass) VisitWhile(p Pass, w *While) {
	fp.shapeLabeled(p, &w.Labeled)
	// `while` and the condition are both words.
	w.T1 = fp.sp(w.T1)
	fp.shapeExpr(p, &w.Cond)
	// Just before the body's `{` — no fusion risk.
	w.T2 = fp.df(w.T2)
	fp.shapeBlock(p, &w.Body)
}

func (fp *formatPass) VisitFor(p Pass, f *For) {
	fp.shapeLabeled(p, &f.Labeled)
	f.T1 = fp.sp(f.T1)
	f.Pat.Visit(p)
	f.T2 = fp.sp(f.T2)
	f.T3 = fp.sp(f.T3)
	fp.shapeExpr(p, &f.Iter)
	// Just before the body's opening `{` — no fusion risk.
	f.T4 = fp.df(f.T4)
	fp.shapeBlock(p, &f.Body)
}

func (fp *formatPass) VisitLoop(p Pass, l *Loop) {
	fp.shapeLabeled(p, &l.Labeled)
	// Just before the body's `{` — no fusion risk.
	l.T1 = fp.df(l.T1)
	fp.shapeBlock(p, &l.Body)
}

func (fp *formatPass) VisitBreak(p Pass, b *Break) {
	if b.Target != nil {
		b.Target.T1 = fp.sp(b.Target.T1)
		b.Target.Label.Visit(p)
	}
	if b.hasValue {
		b.T1 = fp.sp(b.T1)
		fp.shapeExpr(p, &b.Value)
	}
}

func (fp *formatPass) VisitContinue(p Pass, c *Continue) {
	if c.Target != nil {
		c.Target.T1 = fp.sp(c.Target.T1)
		c.Target.Label.Visit(p)
	}
}

func (fp *formatPass) VisitReturn(p Pass, r *Return) {
	if r.hasValue {
		r.T1 = fp.sp(r.T1)
		fp.shapeExpr(p, &r.Value)
	}
}

func (fp *formatPass) VisitYield(p Pass, y *Yield) {
	if y.hasValue {
		y.T1 = fp.sp(y.T1)
		fp.shapeExpr(p, &y.Value)
	}
}

func (fp *formatPass) VisitBecome(p Pass, b *Become) {
	b.T1 = fp.sp(b.T1)
	fp.shapeExpr(p, &b.Value)
}

func (fp *formatPass) VisitAsyncBlock(p Pass, b *AsyncBlock) {
	if b.Move != nil {
		// Between `async` and `move` — word-word fusion risk.
		b.T1 = fp.sp(b.T1)
		// Just before the block's `{` — no fusion risk.
		b.T1b = fp.df(b.T1b)
	} else {
		// Just before the block's `{` — no fusion risk.
		b.T1 = fp.df(b.T1)
	}
	fp.shapeBlock(p, &b.Block)
}

func (fp *formatPass) VisitTryBlock(p Pass, b *TryBlock) {
	b.T1 = fp.df(b.T1)
	fp.shapeBlock(p, &b.Block)
}

func (fp *formatPass) VisitConstBlock(p Pass, b *ConstBlock) {
	b.T1 = fp.df(b.T1)
	fp.shapeBlock(p, &b.Block)
}

func (fp *formatPass) VisitUnsafeBlock(p Pass, b *UnsafeBlock) {
	b.T1 = fp.df(b.T1)
	fp.shapeBlock(p, &b.Block)
}

func (fp *formatPass) VisitMacroCall(p Pass, m *MacroCall) {
	m.Path.Visit(p)
	m.T1 = fp.ns(m.T1)
	m.T2 = fp.ns(m.T2)
	switch m.Group.Delimiter {
	case DelimBrace:
		m.Group.Braces.T1 = fp.ns(m.Group.Braces.T1)
		m.Group.Braces.Inner.Visit(p)
		m.Group.Braces.T2 = fp.ns(m.Group.Braces.T2)
	case DelimBracket:
		m.Group.Brackets.T1 = fp.ns(m.Group.Brackets.T1)
		m.Group.Brackets.Inner.Visit(p)
		m.Group.Brackets.T2 = fp.ns(m.Group.Brackets.T2)
	default:
		m.Group.Parens.T1 = fp.ns(m.Group.Parens.T1)
		m.Group.Parens.Inner.Visit(p)
		m.Group.Parens.T2 = fp.ns(m.Group.Parens.T2)
	}
}

// --- struct literals, tuples, parens, closures ---------------------------

func (fp *formatPass) VisitExprStructField(p Pass, f *ExprStructField) {
	f.Ident.Visit(p)
	if f.Value != nil {
		f.Value.T1 = fp.ns(f.Value.T1)
		f.Value.T2 = fp.sp(f.Value.T2)
		fp.shapeExpr(p, &f.Value.Value)
	}
}

func (fp *formatPass) VisitExprStruct(p Pass, s *ExprStruct) {
	s.Path.Visit(p)
	// Before the field list's `{`, and just inside it — a delimiter on
	// one side of each, so neither risks fusing anything.
	s.T1 = fp.df(s.T1)
	s.Group.T1 = fp.df(s.Group.T1)
	body := &s.Group.Inner
	body.Fields.ShapeTrivia(p, fp.ns, fp.sp)
	if body.Rest != nil {
		body.RestLead = fp.ns(body.RestLead)
		body.Rest.T1 = fp.ns(body.Rest.T1)
		body.Rest.T2 = fp.ns(body.Rest.T2)
		fp.shapeExpr(p, &body.Rest.Base)
	}
	s.Group.T2 = fp.df(s.Group.T2)
}

func (fp *formatPass) VisitExprTuple(p Pass, t *ExprTuple) {
	t.Group.T1 = fp.ns(t.Group.T1)
	fp.shapeExprSeparatedList(p, &t.Group.Inner)
	t.Group.T2 = fp.ns(t.Group.T2)
}

func (fp *formatPass) VisitExprParen(p Pass, e *ExprParen) {
	e.Group.T1 = fp.ns(e.Group.T1)
	fp.shapeExpr(p, &e.Group.Inner)
	e.Group.T2 = fp.ns(e.Group.T2)
}

// --- statements -----------------------------------------------------------

func (fp *formatPass) VisitStmt(p Pass, s *Stmt) {
	fp.attrList(p, &s.Attrs)
	if !s.Attrs.IsEmpty() {
		s.T1 = fp.sp(s.T1)
	}
	s.Kind.Visit(p)
}

func (fp *formatPass) VisitStmtKind(p Pass, k StmtKind) {
	switch kind := k.(type) {
	case *StmtSemi:
		kind.T1 = fp.ns(kind.T1)
		fp.shapeExpr(p, &kind.Expr)
	case *StmtExpr:
		fp.shapeExpr(p, &kind.Expr)
	case *StmtLet:
		kind.T1 = fp.sp(kind.T1)
		kind.Pat.Visit(p)
		if kind.TyAnn != nil {
			kind.TyAnn.T1 = fp.ns(kind.TyAnn.T1)
			kind.TyAnn.T2 = fp.sp(kind.TyAnn.T2)
			kind.TyAnn.Ty.Visit(p)
		}
		if kind.Init != nil {
			kind.Init.T1 = fp.sp(kind.Init.T1)
			kind.Init.T2 = fp.sp(kind.Init.T2)
			fp.shapeExpr(p, &kind.Init.Value)
		}
		kind.T2 = fp.ns(kind.T2)
	case *StmtItem:
		kind.Item.Visit(p)
	}
}

// --- the generic expression-kind sum type --------------------------------

// shapeMatchArms walks a match expression's arm list directly through
// List's own fields rather than ShapeTrivia: each element carries several
// distinct trivia slots of its own (around an optional guard, around the
// arrow, before a trailing comma), not just the single per-element lead
// ShapeTrivia assumes, and matchArmEntry/MatchArm have no Pass hook to
// reach them through (see the type doc on formatPass).
func (fp *formatPass) shapeMatchArms(p Pass, l *List[*matchArmEntry]) {
	if l.first == nil {
		// Empty arm list: trailing is never set by the parser (the space
		// before `}` is owned by the enclosing Braces.T2), so there is
		// nothing of this list's own to reshape.
		return
	}
	fp.shapeMatchArmEntry(p, *l.first)
	for i := range l.rest {
		// Every arm ends in `,` or a block body's own `}`, so the gap
		// before the next arm's pattern is never a fusion risk.
		l.rest[i].Lead = fp.df(l.rest[i].Lead)
		fp.shapeMatchArmEntry(p, l.rest[i].Val)
	}
	// trailing is likewise never populated for a non-empty list: the
	// trivia before `}` lives in the enclosing Braces.T2, not here.
}

func (fp *formatPass) shapeMatchArmEntry(p Pass, e *matchArmEntry) {
	fp.attrList(p, &e.Arm.Attrs)
	e.Arm.Pat.Visit(p)
	if e.Arm.Guard != nil {
		e.Arm.Guard.T1 = fp.sp(e.Arm.Guard.T1)
		e.Arm.Guard.T2 = fp.sp(e.Arm.Guard.T2)
		fp.shapeExpr(p, &e.Arm.Guard.Cond)
	}
	e.Arm.T1 = fp.sp(e.Arm.T1)
	e.Arm.T2 = fp.sp(e.Arm.T2)
	fp.shapeExpr(p, &e.Arm.Body)
	if e.Comma != nil {
		e.T1 = fp.ns(e.T1)
	}
}

// shapeExprSeparatedList shapes a comma-separated list of bare Expr
// values (call arguments, array elements, tuple members) directly through
// SeparatedList's own fields rather than its ShapeTrivia+Visit path:
// Expr.Visit takes a value receiver (Expr must satisfy Elem by value, not
// just *Expr, since containers like this one hold it directly), so
// routing through Visit would shape a throwaway copy of each element
// instead of the one actually stored in the list.
func (fp *formatPass) shapeExprSeparatedList(p Pass, l *SeparatedList[Expr, CommaTok]) {
	if l.first == nil {
		return
	}
	fp.shapeExpr(p, l.first)
	for i := range l.rest {
		l.rest[i].T1 = fp.ns(l.rest[i].T1)
		l.rest[i].Sep.Visit(p)
		l.rest[i].T2 = fp.sp(l.rest[i].T2)
		fp.shapeExpr(p, &l.rest[i].Val)
	}
	if l.trailingSep != nil {
		l.trailingT1 = fp.ns(l.trailingT1)
		(*l.trailingSep).Visit(p)
	}
}

func (fp *formatPass) shapeCallArgs(p Pass, args *Parens[SeparatedList[Expr, CommaTok]]) {
	args.T1 = fp.ns(args.T1)
	fp.shapeExprSeparatedList(p, &args.Inner)
	args.T2 = fp.ns(args.T2)
}

func (fp *formatPass) VisitExprKind(p Pass, k ExprKind) {
	switch kind := k.(type) {
	case *ExprKindUnary:
		if refMut, ok := kind.Op.(*UnaryRefMut); ok {
			refMut.T1 = fp.sp(refMut.T1)
		}
		kind.T1 = fp.ns(kind.T1)
		fp.shapeExpr(p, &kind.Operand)
	case *ExprKindBinary:
		kind.T1 = fp.df(kind.T1)
		kind.T2 = fp.df(kind.T2)
		fp.shapeExpr(p, &kind.Left)
		fp.shapeExpr(p, &kind.Right)
	case *ExprKindAssign:
		kind.T1 = fp.sp(kind.T1)
		kind.T2 = fp.sp(kind.T2)
		fp.shapeExpr(p, &kind.Left)
		fp.shapeExpr(p, &kind.Right)
	case *ExprKindRange:
		kind.T1 = fp.tight(kind.T1)
		kind.T2 = fp.tight(kind.T2)
		if kind.Start != nil {
			fp.shapeExpr(p, kind.Start)
		}
		if kind.End != nil {
			fp.shapeExpr(p, kind.End)
		}
	case *ExprKindCast:
		kind.T1 = fp.sp(kind.T1)
		kind.T2 = fp.sp(kind.T2)
		fp.shapeExpr(p, &kind.Value)
		kind.Ty.Visit(p)
	case *ExprKindCall:
		fp.shapeExpr(p, &kind.Callee)
		fp.shapeCallArgs(p, &kind.Args)
	case *ExprKindIndex:
		fp.shapeExpr(p, &kind.Base)
		kind.Index.T1 = fp.ns(kind.Index.T1)
		fp.shapeExpr(p, &kind.Index.Inner)
		kind.Index.T2 = fp.ns(kind.Index.T2)
	case *ExprKindField:
		kind.T1 = fp.tight(kind.T1)
		kind.T2 = fp.tight(kind.T2)
		fp.shapeExpr(p, &kind.Base)
	case *ExprKindMethodCall:
		kind.T1 = fp.tight(kind.T1)
		kind.T2 = fp.tight(kind.T2)
		fp.shapeExpr(p, &kind.Receiver)
		if kind.Turbofish != nil {
			kind.Turbofish.T1 = fp.ns(kind.Turbofish.T1)
			kind.Turbofish.T2 = fp.ns(kind.Turbofish.T2)
			kind.Turbofish.Args.T1 = fp.ns(kind.Turbofish.Args.T1)
			kind.Turbofish.Args.Args.ShapeTrivia(p, fp.ns, fp.sp)
			kind.Turbofish.Args.T2 = fp.ns(kind.Turbofish.Args.T2)
		}
		fp.shapeCallArgs(p, &kind.Args)
	case *ExprKindTry:
		kind.T1 = fp.tight(kind.T1)
		fp.shapeExpr(p, &kind.Operand)
	case *ExprKindClosure:
		if kind.Async != nil {
			kind.T0 = fp.sp(kind.T0)
		}
		if kind.Move != nil {
			// Just before `|`/`||` — no fusion risk.
			kind.T0b = fp.df(kind.T0b)
		}
		if kind.NonEmpty != nil {
			kind.NonEmpty.T1 = fp.ns(kind.NonEmpty.T1)
			kind.NonEmpty.Params.ShapeTrivia(p, fp.ns, fp.sp)
			kind.NonEmpty.T2 = fp.ns(kind.NonEmpty.T2)
		}
		kind.T1 = fp.sp(kind.T1)
		if kind.Ret != nil {
			kind.Ret.Visit(p)
			kind.T2 = fp.sp(kind.T2)
		}
		fp.shapeExpr(p, &kind.Body)
	case *ExprKindArray:
		kind.Group.T1 = fp.ns(kind.Group.T1)
		switch inner := kind.Group.Inner.(type) {
		case *ArrayList:
			fp.shapeExprSeparatedList(p, &inner.Elems)
		case *ArrayRepeat:
			fp.shapeExpr(p, &inner.Elem)
			inner.T1 = fp.ns(inner.T1)
			inner.T2 = fp.sp(inner.T2)
			fp.shapeExpr(p, &inner.Count)
		}
		kind.Group.T2 = fp.ns(kind.Group.T2)
	case *ExprKindMatch:
		// `match` and the scrutinee are both words.
		kind.T1 = fp.sp(kind.T1)
		fp.shapeExpr(p, &kind.Scrutinee)
		// Before the arm list's `{`, and just inside `{`/`}` — no fusion
		// risk at any of these, whatever the scrutinee or first arm is.
		kind.T2 = fp.df(kind.T2)
		kind.Group.T1 = fp.df(kind.Group.T1)
		fp.shapeMatchArms(p, &kind.Group.Inner)
		kind.Group.T2 = fp.df(kind.Group.T2)
	case *ExprKindBlock:
		fp.shapeLabeled(p, &kind.Labeled)
		fp.shapeBlock(p, &kind.Block)
	default:
		k.Walk(p)
	}
}
