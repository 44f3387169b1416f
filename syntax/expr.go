package syntax

import "strings"

// UnaryOp is the sum type of prefix unary operators.
type UnaryOp interface {
	Printer
	Node
	isUnaryOp()
}

type UnaryNeg struct{ Minus MinusTok }
type UnaryNot struct{ Bang BangTok }
type UnaryDeref struct{ Star StarTok }
type UnaryRef struct{ And AndTok }
type UnaryRefMut struct {
	And AndTok
	T1  Trivia
	Mut MutKw
}

func (UnaryNeg) isUnaryOp()    {}
func (UnaryNot) isUnaryOp()    {}
func (UnaryDeref) isUnaryOp()  {}
func (UnaryRef) isUnaryOp()    {}
func (UnaryRefMut) isUnaryOp() {}

func (o UnaryNeg) Print(dest *strings.Builder)   { o.Minus.Print(dest) }
func (o UnaryNot) Print(dest *strings.Builder)   { o.Bang.Print(dest) }
func (o UnaryDeref) Print(dest *strings.Builder) { o.Star.Print(dest) }
func (o UnaryRef) Print(dest *strings.Builder)   { o.And.Print(dest) }
func (o UnaryRefMut) Print(dest *strings.Builder) {
	o.And.Print(dest)
	o.T1.Print(dest)
	o.Mut.Print(dest)
}

func (o *UnaryNeg) Visit(p Pass)    { o.Minus.Visit(p) }
func (o *UnaryNot) Visit(p Pass)    { o.Bang.Visit(p) }
func (o *UnaryDeref) Visit(p Pass)  { o.Star.Visit(p) }
func (o *UnaryRef) Visit(p Pass)    { o.And.Visit(p) }
func (o *UnaryRefMut) Visit(p Pass) { o.And.Visit(p); o.T1.Visit(p); o.Mut.Visit(p) }

// BinOp is the sum type of infix binary operators (arithmetic, bitwise,
// comparison, and logical).
type BinOp interface {
	Printer
	Node
	isBinOp()
}

type BinAdd struct{ Tok PlusTok }
type BinSub struct{ Tok MinusTok }
type BinMul struct{ Tok StarTok }
type BinDiv struct{ Tok SlashTok }
type BinRem struct{ Tok PercentTok }
type BinAnd struct{ Tok AndAndTok }
type BinOr struct{ Tok OrOrTok }
type BinBitAnd struct{ Tok AndTok }
type BinBitOr struct{ Tok OrTok }
type BinBitXor struct{ Tok CaretTok }
type BinShl struct{ Tok LtLtTok }
type BinShr struct{ Tok GtGtTok }
type BinEq struct{ Tok EqEqTok }
type BinNe struct{ Tok BangEqTok }
type BinLt struct{ Tok LtTok }
type BinLe struct{ Tok LtEqTok }
type BinGt struct{ Tok GtTok }
type BinGe struct{ Tok GtEqTok }

func (BinAdd) isBinOp()    {}
func (BinSub) isBinOp()    {}
func (BinMul) isBinOp()    {}
func (BinDiv) isBinOp()    {}
func (BinRem) isBinOp()    {}
func (BinAnd) isBinOp()    {}
func (BinOr) isBinOp()     {}
func (BinBitAnd) isBinOp() {}
func (BinBitOr) isBinOp()  {}
func (BinBitXor) isBinOp() {}
func (BinShl) isBinOp()    {}
func (BinShr) isBinOp()    {}
func (BinEq) isBinOp()     {}
func (BinNe) isBinOp()     {}
func (BinLt) isBinOp()     {}
func (BinLe) isBinOp()     {}
func (BinGt) isBinOp()     {}
func (BinGe) isBinOp()     {}

func (o BinAdd) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o BinSub) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o BinMul) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o BinDiv) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o BinRem) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o BinAnd) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o BinOr) Print(dest *strings.Builder)     { o.Tok.Print(dest) }
func (o BinBitAnd) Print(dest *strings.Builder) { o.Tok.Print(dest) }
func (o BinBitOr) Print(dest *strings.Builder)  { o.Tok.Print(dest) }
func (o BinBitXor) Print(dest *strings.Builder) { o.Tok.Print(dest) }
func (o BinShl) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o BinShr) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o BinEq) Print(dest *strings.Builder)     { o.Tok.Print(dest) }
func (o BinNe) Print(dest *strings.Builder)     { o.Tok.Print(dest) }
func (o BinLt) Print(dest *strings.Builder)     { o.Tok.Print(dest) }
func (o BinLe) Print(dest *strings.Builder)     { o.Tok.Print(dest) }
func (o BinGt) Print(dest *strings.Builder)     { o.Tok.Print(dest) }
func (o BinGe) Print(dest *strings.Builder)     { o.Tok.Print(dest) }

func (o *BinAdd) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *BinSub) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *BinMul) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *BinDiv) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *BinRem) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *BinAnd) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *BinOr) Visit(p Pass)     { o.Tok.Visit(p) }
func (o *BinBitAnd) Visit(p Pass) { o.Tok.Visit(p) }
func (o *BinBitOr) Visit(p Pass)  { o.Tok.Visit(p) }
func (o *BinBitXor) Visit(p Pass) { o.Tok.Visit(p) }
func (o *BinShl) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *BinShr) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *BinEq) Visit(p Pass)     { o.Tok.Visit(p) }
func (o *BinNe) Visit(p Pass)     { o.Tok.Visit(p) }
func (o *BinLt) Visit(p Pass)     { o.Tok.Visit(p) }
func (o *BinLe) Visit(p Pass)     { o.Tok.Visit(p) }
func (o *BinGt) Visit(p Pass)     { o.Tok.Visit(p) }
func (o *BinGe) Visit(p Pass)     { o.Tok.Visit(p) }

// AssignOp is the sum type of `=` and the compound assignment operators.
type AssignOp interface {
	Printer
	Node
	isAssignOp()
}

type AssignEq struct{ Tok EqTok }
type AssignAdd struct{ Tok PlusEqTok }
type AssignSub struct{ Tok MinusEqTok }
type AssignMul struct{ Tok StarEqTok }
type AssignDiv struct{ Tok SlashEqTok }
type AssignRem struct{ Tok PercentEqTok }
type AssignBitAnd struct{ Tok AndEqTok }
type AssignBitOr struct{ Tok OrEqTok }
type AssignBitXor struct{ Tok CaretEqTok }
type AssignShl struct{ Tok LtLtEqTok }
type AssignShr struct{ Tok GtGtEqTok }

func (AssignEq) isAssignOp()     {}
func (AssignAdd) isAssignOp()    {}
func (AssignSub) isAssignOp()    {}
func (AssignMul) isAssignOp()    {}
func (AssignDiv) isAssignOp()    {}
func (AssignRem) isAssignOp()    {}
func (AssignBitAnd) isAssignOp() {}
func (AssignBitOr) isAssignOp()  {}
func (AssignBitXor) isAssignOp() {}
func (AssignShl) isAssignOp()    {}
func (AssignShr) isAssignOp()    {}

func (o AssignEq) Print(dest *strings.Builder)     { o.Tok.Print(dest) }
func (o AssignAdd) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o AssignSub) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o AssignMul) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o AssignDiv) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o AssignRem) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o AssignBitAnd) Print(dest *strings.Builder) { o.Tok.Print(dest) }
func (o AssignBitOr) Print(dest *strings.Builder)  { o.Tok.Print(dest) }
func (o AssignBitXor) Print(dest *strings.Builder) { o.Tok.Print(dest) }
func (o AssignShl) Print(dest *strings.Builder)    { o.Tok.Print(dest) }
func (o AssignShr) Print(dest *strings.Builder)    { o.Tok.Print(dest) }

func (o *AssignEq) Visit(p Pass)     { o.Tok.Visit(p) }
func (o *AssignAdd) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *AssignSub) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *AssignMul) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *AssignDiv) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *AssignRem) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *AssignBitAnd) Visit(p Pass) { o.Tok.Visit(p) }
func (o *AssignBitOr) Visit(p Pass)  { o.Tok.Visit(p) }
func (o *AssignBitXor) Visit(p Pass) { o.Tok.Visit(p) }
func (o *AssignShl) Visit(p Pass)    { o.Tok.Visit(p) }
func (o *AssignShr) Visit(p Pass)    { o.Tok.Visit(p) }

// RangeOp distinguishes `..` from `..=`.
type RangeOp interface {
	Printer
	Node
	isRangeOp()
}

type RangeExcl struct{ Tok DotDotTok }
type RangeIncl struct{ Tok DotDotEqTok }

func (RangeExcl) isRangeOp() {}
func (RangeIncl) isRangeOp() {}
func (o RangeExcl) Print(dest *strings.Builder) { o.Tok.Print(dest) }
func (o RangeIncl) Print(dest *strings.Builder) { o.Tok.Print(dest) }
func (o *RangeExcl) Visit(p Pass) { o.Tok.Visit(p) }
func (o *RangeIncl) Visit(p Pass) { o.Tok.Visit(p) }

// FieldMember is the sum type of the member named by a field access: an
// identifier (`x.foo`) or a tuple index (`x.0`).
type FieldMember interface {
	Printer
	Node
	isFieldMember()
}

type FieldMemberIdent struct{ Ident Ident }
type FieldMemberIndex struct{ Literal Literal }

func (FieldMemberIdent) isFieldMember() {}
func (FieldMemberIndex) isFieldMember() {}
func (m FieldMemberIdent) Print(dest *strings.Builder) { m.Ident.Print(dest) }
func (m FieldMemberIndex) Print(dest *strings.Builder) { m.Literal.Print(dest) }
func (m *FieldMemberIdent) Visit(p Pass) { m.Ident.Visit(p) }
func (m *FieldMemberIndex) Visit(p Pass) { m.Literal.Visit(p) }

// turbofish is the optional `::<Args>` clause before a method call's or
// generic function call's argument list.
type turbofish struct {
	T1         Trivia
	ColonColon ColonColonTok
	T2         Trivia
	Args       AngleArgs
}

// Label is the `'name:` clause introducing a loop.
type Label struct {
	Name  Ident // includes the leading `'`, e.g. "'outer"
	T1    Trivia
	Colon ColonTok
}

func (l Label) Print(dest *strings.Builder) {
	l.Name.Print(dest)
	l.T1.Print(dest)
	l.Colon.Print(dest)
}

func (l *Label) Visit(p Pass) { p.VisitLabel(p, l) }
func (l *Label) Walk(p Pass)  { l.Name.Visit(p); l.T1.Visit(p); l.Colon.Visit(p) }

// labeled bundles a loop's optional leading `'label:` with the trivia
// that follows it.
type labeled struct {
	Label *Label
	T1    Trivia // after the label's `:` (or nothing, if Label is nil)
}

func (l labeled) print(dest *strings.Builder) {
	if l.Label != nil {
		l.Label.Print(dest)
		l.T1.Print(dest)
	}
}

func (l labeled) visit(p Pass) {
	if l.Label != nil {
		l.Label.Visit(p)
		l.T1.Visit(p)
	}
}

// If is `if cond { ... } [else ...]`.
type If struct {
	Labeled labeled
	IfKw    IfKw
	T1      Trivia
	Cond    Expr
	T2      Trivia
	Then    Block
	T3      Trivia // before Else; empty when Else is nil
	Else    *Else
}

func (i If) Print(dest *strings.Builder) {
	i.Labeled.print(dest)
	i.IfKw.Print(dest)
	i.T1.Print(dest)
	i.Cond.Print(dest)
	i.T2.Print(dest)
	i.Then.Print(dest)
	if i.Else != nil {
		i.T3.Print(dest)
		i.Else.Print(dest)
	}
}

func (i *If) Visit(p Pass) { p.VisitIf(p, i) }

func (i *If) Walk(p Pass) {
	i.Labeled.visit(p)
	i.IfKw.Visit(p)
	i.T1.Visit(p)
	i.Cond.Visit(p)
	i.T2.Visit(p)
	i.Then.Visit(p)
	if i.Else != nil {
		i.T3.Visit(p)
		i.Else.Visit(p)
	}
}

// ElseKind is the sum type of an else clause's continuation: a block, or
// another if (`else if ...`).
type ElseKind interface {
	Printer
	Node
	isElseKind()
}

type ElseBlock struct{ Block Block }
type ElseIf struct{ If *If }

func (ElseBlock) isElseKind() {}
func (ElseIf) isElseKind()    {}
func (e ElseBlock) Print(dest *strings.Builder) { e.Block.Print(dest) }
func (e ElseIf) Print(dest *strings.Builder)    { e.If.Print(dest) }
func (e *ElseBlock) Visit(p Pass) { e.Block.Visit(p) }
func (e *ElseIf) Visit(p Pass)    { e.If.Visit(p) }

// Else is the `else ...` clause following an If.
type Else struct {
	ElseKw ElseKw
	T1     Trivia
	Kind   ElseKind
}

func (e Else) Print(dest *strings.Builder) {
	e.ElseKw.Print(dest)
	e.T1.Print(dest)
	e.Kind.Print(dest)
}

func (e *Else) Visit(p Pass) { p.VisitElse(p, e) }
func (e *Else) Walk(p Pass)  { e.ElseKw.Visit(p); e.T1.Visit(p); e.Kind.Visit(p) }

// While is `[label:] while cond { ... }`.
type While struct {
	Labeled labeled
	WhileKw WhileKw
	T1      Trivia
	Cond    Expr
	T2      Trivia
	Body    Block
}

func (w While) Print(dest *strings.Builder) {
	w.Labeled.print(dest)
	w.WhileKw.Print(dest)
	w.T1.Print(dest)
	w.Cond.Print(dest)
	w.T2.Print(dest)
	w.Body.Print(dest)
}

func (w *While) Visit(p Pass) { p.VisitWhile(p, w) }

func (w *While) Walk(p Pass) {
	w.Labeled.visit(p)
	w.WhileKw.Visit(p)
	w.T1.Visit(p)
	w.Cond.Visit(p)
	w.T2.Visit(p)
	w.Body.Visit(p)
}

// For is `[label:] for pat in iter { ... }`.
type For struct {
	Labeled labeled
	ForKw   ForKw
	T1      Trivia
	Pat     Pat
	T2      Trivia
	InKw    InKw
	T3      Trivia
	Iter    Expr
	T4      Trivia
	Body    Block
}

func (f For) Print(dest *strings.Builder) {
	f.Labeled.print(dest)
	f.ForKw.Print(dest)
	f.T1.Print(dest)
	f.Pat.Print(dest)
	f.T2.Print(dest)
	f.InKw.Print(dest)
	f.T3.Print(dest)
	f.Iter.Print(dest)
	f.T4.Print(dest)
	f.Body.Print(dest)
}

func (f *For) Visit(p Pass) { p.VisitFor(p, f) }

func (f *For) Walk(p Pass) {
	f.Labeled.visit(p)
	f.ForKw.Visit(p)
	f.T1.Visit(p)
	f.Pat.Visit(p)
	f.T2.Visit(p)
	f.InKw.Visit(p)
	f.T3.Visit(p)
	f.Iter.Visit(p)
	f.T4.Visit(p)
	f.Body.Visit(p)
}

// Loop is `[label:] loop { ... }`.
type Loop struct {
	Labeled labeled
	LoopKw  LoopKw
	T1      Trivia
	Body    Block
}

func (l Loop) Print(dest *strings.Builder) {
	l.Labeled.print(dest)
	l.LoopKw.Print(dest)
	l.T1.Print(dest)
	l.Body.Print(dest)
}

func (l *Loop) Visit(p Pass) { p.VisitLoop(p, l) }
func (l *Loop) Walk(p Pass) {
	l.Labeled.visit(p)
	l.LoopKw.Visit(p)
	l.T1.Visit(p)
	l.Body.Visit(p)
}

// breakContinueTarget is the optional `'label` operand of break/continue.
type breakContinueTarget struct {
	T1    Trivia
	Label Ident
}

// Break is `break ['label] [value]`.
type Break struct {
	BreakKw BreakKw
	Target  *breakContinueTarget
	T1      Trivia // before Value; empty when Value is nil
	Value   Expr
	hasValue bool
}

func (b Break) Print(dest *strings.Builder) {
	b.BreakKw.Print(dest)
	if b.Target != nil {
		b.Target.T1.Print(dest)
		b.Target.Label.Print(dest)
	}
	if b.hasValue {
		b.T1.Print(dest)
		b.Value.Print(dest)
	}
}

func (b *Break) Visit(p Pass) { p.VisitBreak(p, b) }

func (b *Break) Walk(p Pass) {
	b.BreakKw.Visit(p)
	if b.Target != nil {
		b.Target.T1.Visit(p)
		b.Target.Label.Visit(p)
	}
	if b.hasValue {
		b.T1.Visit(p)
		b.Value.Visit(p)
	}
}

// Continue is `continue ['label]`.
type Continue struct {
	ContinueKw ContinueKw
	Target     *breakContinueTarget
}

func (c Continue) Print(dest *strings.Builder) {
	c.ContinueKw.Print(dest)
	if c.Target != nil {
		c.Target.T1.Print(dest)
		c.Target.Label.Print(dest)
	}
}

func (c *Continue) Visit(p Pass) { p.VisitContinue(p, c) }

func (c *Continue) Walk(p Pass) {
	c.ContinueKw.Visit(p)
	if c.Target != nil {
		c.Target.T1.Visit(p)
		c.Target.Label.Visit(p)
	}
}

// Return is `return [value]`.
type Return struct {
	ReturnKw ReturnKw
	T1       Trivia
	Value    Expr
	hasValue bool
}

func (r Return) Print(dest *strings.Builder) {
	r.ReturnKw.Print(dest)
	if r.hasValue {
		r.T1.Print(dest)
		r.Value.Print(dest)
	}
}

func (r *Return) Visit(p Pass) { p.VisitReturn(p, r) }
func (r *Return) Walk(p Pass) {
	r.ReturnKw.Visit(p)
	if r.hasValue {
		r.T1.Visit(p)
		r.Value.Visit(p)
	}
}

// Yield is `yield [value]`.
type Yield struct {
	YieldKw  YieldKw
	T1       Trivia
	Value    Expr
	hasValue bool
}

func (y Yield) Print(dest *strings.Builder) {
	y.YieldKw.Print(dest)
	if y.hasValue {
		y.T1.Print(dest)
		y.Value.Print(dest)
	}
}

func (y *Yield) Visit(p Pass) { p.VisitYield(p, y) }
func (y *Yield) Walk(p Pass) {
	y.YieldKw.Visit(p)
	if y.hasValue {
		y.T1.Visit(p)
		y.Value.Visit(p)
	}
}

// Become is `become callee(...)` — guaranteed tail-call reuse of the
// current stack frame.
type Become struct {
	BecomeKw BecomeKw
	T1       Trivia
	Value    Expr
}

func (b Become) Print(dest *strings.Builder) {
	b.BecomeKw.Print(dest)
	b.T1.Print(dest)
	b.Value.Print(dest)
}

func (b *Become) Visit(p Pass) { p.VisitBecome(p, b) }
func (b *Become) Walk(p Pass)  { b.BecomeKw.Visit(p); b.T1.Visit(p); b.Value.Visit(p) }

// AsyncBlock is `async { ... }` or `async move { ... }`.
type AsyncBlock struct {
	AsyncKw AsyncKw
	T1      Trivia // after `async`, before `move`/`{`
	Move    *MoveKw
	T1b     Trivia // after `move`, before `{`; empty when Move is nil
	Block   Block
}

func (b AsyncBlock) Print(dest *strings.Builder) {
	b.AsyncKw.Print(dest)
	b.T1.Print(dest)
	if b.Move != nil {
		b.Move.Print(dest)
		b.T1b.Print(dest)
	}
	b.Block.Print(dest)
}
func (b *AsyncBlock) Visit(p Pass) { p.VisitAsyncBlock(p, b) }
func (b *AsyncBlock) Walk(p Pass) {
	b.AsyncKw.Visit(p)
	b.T1.Visit(p)
	if b.Move != nil {
		b.Move.Visit(p)
		b.T1b.Visit(p)
	}
	b.Block.Visit(p)
}

// TryBlock is `try { ... }`.
type TryBlock struct {
	TryKw TryKw
	T1    Trivia
	Block Block
}

func (b TryBlock) Print(dest *strings.Builder) { b.TryKw.Print(dest); b.T1.Print(dest); b.Block.Print(dest) }
func (b *TryBlock) Visit(p Pass)                { p.VisitTryBlock(p, b) }
func (b *TryBlock) Walk(p Pass)                 { b.TryKw.Visit(p); b.T1.Visit(p); b.Block.Visit(p) }

// ConstBlock is `const { ... }`.
type ConstBlock struct {
	ConstKw ConstKw
	T1      Trivia
	Block   Block
}

func (b ConstBlock) Print(dest *strings.Builder) { b.ConstKw.Print(dest); b.T1.Print(dest); b.Block.Print(dest) }
func (b *ConstBlock) Visit(p Pass)                { p.VisitConstBlock(p, b) }
func (b *ConstBlock) Walk(p Pass)                 { b.ConstKw.Visit(p); b.T1.Visit(p); b.Block.Visit(p) }

// UnsafeBlock is `unsafe { ... }`.
type UnsafeBlock struct {
	UnsafeKw UnsafeKw
	T1       Trivia
	Block    Block
}

func (b UnsafeBlock) Print(dest *strings.Builder) { b.UnsafeKw.Print(dest); b.T1.Print(dest); b.Block.Print(dest) }
func (b *UnsafeBlock) Visit(p Pass)                { p.VisitUnsafeBlock(p, b) }
func (b *UnsafeBlock) Walk(p Pass)                 { b.UnsafeKw.Visit(p); b.T1.Visit(p); b.Block.Visit(p) }

// MacroCall is `path!(...)`, `path![...]`, or `path!{...}`; the argument
// group's contents are captured losslessly as a TokenStream, never fully
// parsed.
type MacroCall struct {
	Path  Path
	T1    Trivia
	Bang  BangTok
	T2    Trivia
	Group Delimited[TokenStream]
}

func (m MacroCall) Print(dest *strings.Builder) {
	m.Path.Print(dest)
	m.T1.Print(dest)
	m.Bang.Print(dest)
	m.T2.Print(dest)
	m.Group.Print(dest)
}

func (m *MacroCall) Visit(p Pass) { p.VisitMacroCall(p, m) }

func (m *MacroCall) Walk(p Pass) {
	m.Path.Visit(p)
	m.T1.Visit(p)
	m.Bang.Visit(p)
	m.T2.Visit(p)
	m.Group.Visit(p)
}

// ClosureParam is one parameter of a closure's `|...|` parameter list;
// its type annotation is optional, unlike a function parameter's.
type ClosureParam struct {
	Pat   Pat
	TyAnn *tyAnnotation
}

func (c ClosureParam) Print(dest *strings.Builder) {
	c.Pat.Print(dest)
	if c.TyAnn != nil {
		c.TyAnn.T1.Print(dest)
		c.TyAnn.Colon.Print(dest)
		c.TyAnn.T2.Print(dest)
		c.TyAnn.Ty.Print(dest)
	}
}

func (c *ClosureParam) Visit(p Pass) {
	c.Pat.Visit(p)
	if c.TyAnn != nil {
		c.TyAnn.T1.Visit(p)
		c.TyAnn.Colon.Visit(p)
		c.TyAnn.T2.Visit(p)
		c.TyAnn.Ty.Visit(p)
	}
}

// closureParams is the non-empty `|p1, p2, ...|` parameter list.
type closureParams struct {
	Open   OrTok
	T1     Trivia
	Params SeparatedList[*ClosureParam, CommaTok]
	T2     Trivia
	Close  OrTok
}

// ExprStructField is one `field` or `field: value` entry of a struct
// literal.
type ExprStructField struct {
	Ident Ident
	Value *fieldValueClause
}

type fieldValueClause struct {
	T1    Trivia
	Colon ColonTok
	T2    Trivia
	Value Expr
}

func (f ExprStructField) Print(dest *strings.Builder) {
	f.Ident.Print(dest)
	if f.Value != nil {
		f.Value.T1.Print(dest)
		f.Value.Colon.Print(dest)
		f.Value.T2.Print(dest)
		f.Value.Value.Print(dest)
	}
}

func (f *ExprStructField) Visit(p Pass) { p.VisitExprStructField(p, f) }

func (f *ExprStructField) Walk(p Pass) {
	f.Ident.Visit(p)
	if f.Value != nil {
		f.Value.T1.Visit(p)
		f.Value.Colon.Visit(p)
		f.Value.T2.Visit(p)
		f.Value.Value.Visit(p)
	}
}

// structRest is the optional `..base` functional-update clause ending a
// struct literal's field list.
type structRest struct {
	T1    Trivia
	DotDot DotDotTok
	T2    Trivia
	Base  Expr
}

// structBody is the field list (plus optional `..base`) inside a struct
// literal's braces.
type structBody struct {
	Fields   SeparatedList[*ExprStructField, CommaTok]
	RestLead Trivia // printed before Rest; the parser leaves it empty (trivia before the comma lives in Fields, before `..` in Rest.T1)
	Rest     *structRest
}

func (b structBody) Print(dest *strings.Builder) {
	b.Fields.Print(dest)
	if b.Rest != nil {
		b.RestLead.Print(dest)
		b.Rest.T1.Print(dest)
		b.Rest.DotDot.Print(dest)
		b.Rest.T2.Print(dest)
		b.Rest.Base.Print(dest)
	}
}

func (b structBody) Visit(p Pass) {
	b.Fields.Visit(p)
	if b.Rest != nil {
		b.RestLead.Visit(p)
		b.Rest.T1.Visit(p)
		b.Rest.DotDot.Visit(p)
		b.Rest.T2.Visit(p)
		b.Rest.Base.Visit(p)
	}
}

// ExprStruct is a struct literal: `Path { field: value, ..base }`.
type ExprStruct struct {
	Path  Path
	T1    Trivia
	Group Braces[structBody]
}

func (s ExprStruct) Print(dest *strings.Builder) {
	s.Path.Print(dest)
	s.T1.Print(dest)
	s.Group.Print(dest)
}

func (s *ExprStruct) Visit(p Pass) { p.VisitExprStruct(p, s) }

func (s *ExprStruct) Walk(p Pass) {
	s.Path.Visit(p)
	s.T1.Visit(p)
	s.Group.Visit(p)
}

// ExprTuple is `(a, b, ...)`, or `(a,)` for a one-element tuple — the
// trailing comma disambiguates it from ExprParen.
type ExprTuple struct {
	Group Parens[SeparatedList[Expr, CommaTok]]
}

func (t ExprTuple) Print(dest *strings.Builder) { t.Group.Print(dest) }
func (t *ExprTuple) Visit(p Pass)                { p.VisitExprTuple(p, t) }
func (t *ExprTuple) Walk(p Pass)                 { t.Group.Visit(p) }

// ExprParen is a single parenthesized expression with no trailing comma.
type ExprParen struct {
	Group Parens[Expr]
}

func (e ExprParen) Print(dest *strings.Builder) { e.Group.Print(dest) }
func (e *ExprParen) Visit(p Pass)                { p.VisitExprParen(p, e) }
func (e *ExprParen) Walk(p Pass)                 { e.Group.Visit(p) }

// ArrayInner is the sum type of an array literal's contents: a plain
// element list, or a `[elem; count]` repeat expression.
type ArrayInner interface {
	Printer
	Node
	isArrayInner()
}

type ArrayList struct{ Elems SeparatedList[Expr, CommaTok] }

func (ArrayList) isArrayInner() {}
func (a ArrayList) Print(dest *strings.Builder) { a.Elems.Print(dest) }
func (a *ArrayList) Visit(p Pass)                { a.Elems.Visit(p) }

type ArrayRepeat struct {
	Elem  Expr
	T1    Trivia
	Semi  SemiTok
	T2    Trivia
	Count Expr
}

func (ArrayRepeat) isArrayInner() {}

func (a ArrayRepeat) Print(dest *strings.Builder) {
	a.Elem.Print(dest)
	a.T1.Print(dest)
	a.Semi.Print(dest)
	a.T2.Print(dest)
	a.Count.Print(dest)
}

func (a *ArrayRepeat) Visit(p Pass) {
	a.Elem.Visit(p)
	a.T1.Visit(p)
	a.Semi.Visit(p)
	a.T2.Visit(p)
	a.Count.Visit(p)
}

// matchGuard is the optional `if cond` clause of a match arm.
type matchGuard struct {
	T1   Trivia
	IfKw IfKw
	T2   Trivia
	Cond Expr
}

// MatchArm is one `pat [if guard] => body` arm of a match expression.
type MatchArm struct {
	Attrs List[*Attribute]
	Pat   Pat
	Guard *matchGuard
	T1    Trivia
	Arrow RFatArrowTok
	T2    Trivia
	Body  Expr
}

func (a MatchArm) Print(dest *strings.Builder) {
	a.Attrs.Print(dest)
	a.Pat.Print(dest)
	if a.Guard != nil {
		a.Guard.T1.Print(dest)
		a.Guard.IfKw.Print(dest)
		a.Guard.T2.Print(dest)
		a.Guard.Cond.Print(dest)
	}
	a.T1.Print(dest)
	a.Arrow.Print(dest)
	a.T2.Print(dest)
	a.Body.Print(dest)
}

func (a *MatchArm) Visit(p Pass) {
	a.Attrs.Visit(p)
	a.Pat.Visit(p)
	if a.Guard != nil {
		a.Guard.T1.Visit(p)
		a.Guard.IfKw.Visit(p)
		a.Guard.T2.Visit(p)
		a.Guard.Cond.Visit(p)
	}
	a.T1.Visit(p)
	a.Arrow.Visit(p)
	a.T2.Visit(p)
	a.Body.Visit(p)
}

// matchArmEntry pairs a MatchArm with its optional trailing comma; the
// comma is optional whenever the arm's body is itself a block.
type matchArmEntry struct {
	Arm   MatchArm
	T1    Trivia
	Comma *CommaTok
}

func (e matchArmEntry) Print(dest *strings.Builder) {
	e.Arm.Print(dest)
	if e.Comma != nil {
		e.T1.Print(dest)
		e.Comma.Print(dest)
	}
}

func (e matchArmEntry) Visit(p Pass) {
	e.Arm.Visit(p)
	if e.Comma != nil {
		e.T1.Visit(p)
		e.Comma.Visit(p)
	}
}

// ExprKind is the sum type of every expression variety.
type ExprKind interface {
	Printer
	Node
	Walk(p Pass)
	isExprKind()
}

type ExprKindLit struct{ Literal Literal }
type ExprKindPath struct{ Path Path }
type ExprKindQPath struct{ QPath QPath }
type ExprKindUnary struct {
	Op      UnaryOp
	T1      Trivia
	Operand Expr
}
type ExprKindBinary struct {
	Left  Expr
	T1    Trivia
	Op    BinOp
	T2    Trivia
	Right Expr
}
type ExprKindAssign struct {
	Left  Expr
	T1    Trivia
	Op    AssignOp
	T2    Trivia
	Right Expr
}
type ExprKindRange struct {
	Start *Expr
	T1    Trivia
	Op    RangeOp
	T2    Trivia
	End   *Expr
}
type ExprKindCast struct {
	Value Expr
	T1    Trivia
	AsKw  AsKw
	T2    Trivia
	Ty    Ty
}
type ExprKindCall struct {
	Callee Expr
	Args   Parens[SeparatedList[Expr, CommaTok]]
}
type ExprKindIndex struct {
	Base  Expr
	Index Brackets[Expr]
}
type ExprKindField struct {
	Base   Expr
	T1     Trivia
	Dot    DotTok
	T2     Trivia
	Member FieldMember
}
type ExprKindMethodCall struct {
	Receiver  Expr
	T1        Trivia
	Dot       DotTok
	T2        Trivia
	Method    Ident
	Turbofish *turbofish
	Args      Parens[SeparatedList[Expr, CommaTok]]
}
type ExprKindTry struct {
	Operand  Expr
	T1       Trivia
	Question QuestionTok
}
type ExprKindClosure struct {
	Async    *AsyncKw
	T0       Trivia // after `async`, before `move`/`|`/`||`; empty when Async is nil
	Move     *MoveKw
	T0b      Trivia // after `move`, before `|`/`||`; empty when Move is nil
	Empty    *OrOrTok
	NonEmpty *closureParams
	T1       Trivia
	Ret      *FnRet
	T2       Trivia
	Body     Expr
}
type ExprKindTuple struct{ Tuple *ExprTuple }
type ExprKindParen struct{ Paren *ExprParen }
type ExprKindArray struct{ Group Brackets[ArrayInner] }
type ExprKindStruct struct{ Struct *ExprStruct }
type ExprKindMatch struct {
	MatchKw MatchKw
	T1      Trivia
	Scrutinee Expr
	T2      Trivia
	Group   Braces[List[*matchArmEntry]]
}
type ExprKindIf struct{ If *If }
type ExprKindWhile struct{ While *While }
type ExprKindFor struct{ For *For }
type ExprKindLoop struct{ Loop *Loop }
type ExprKindBreak struct{ Break *Break }
type ExprKindContinue struct{ Continue *Continue }
type ExprKindReturn struct{ Return *Return }
type ExprKindYield struct{ Yield *Yield }
type ExprKindBecome struct{ Become *Become }
type ExprKindAsyncBlock struct{ Block *AsyncBlock }
type ExprKindTryBlock struct{ Block *TryBlock }
type ExprKindConstBlock struct{ Block *ConstBlock }
type ExprKindUnsafeBlock struct{ Block *UnsafeBlock }
type ExprKindBlock struct {
	Labeled labeled
	Block   Block
}
type ExprKindMacroCall struct{ Call *MacroCall }

func (ExprKindLit) isExprKind()         {}
func (ExprKindPath) isExprKind()        {}
func (ExprKindQPath) isExprKind()       {}
func (ExprKindUnary) isExprKind()       {}
func (ExprKindBinary) isExprKind()      {}
func (ExprKindAssign) isExprKind()      {}
func (ExprKindRange) isExprKind()       {}
func (ExprKindCast) isExprKind()        {}
func (ExprKindCall) isExprKind()        {}
func (ExprKindIndex) isExprKind()       {}
func (ExprKindField) isExprKind()       {}
func (ExprKindMethodCall) isExprKind()  {}
func (ExprKindTry) isExprKind()         {}
func (ExprKindClosure) isExprKind()     {}
func (ExprKindTuple) isExprKind()       {}
func (ExprKindParen) isExprKind()       {}
func (ExprKindArray) isExprKind()       {}
func (ExprKindStruct) isExprKind()      {}
func (ExprKindMatch) isExprKind()       {}
func (ExprKindIf) isExprKind()          {}
func (ExprKindWhile) isExprKind()       {}
func (ExprKindFor) isExprKind()         {}
func (ExprKindLoop) isExprKind()        {}
func (ExprKindBreak) isExprKind()       {}
func (ExprKindContinue) isExprKind()    {}
func (ExprKindReturn) isExprKind()      {}
func (ExprKindYield) isExprKind()       {}
func (ExprKindBecome) isExprKind()      {}
func (ExprKindAsyncBlock) isExprKind()  {}
func (ExprKindTryBlock) isExprKind()    {}
func (ExprKindConstBlock) isExprKind()  {}
func (ExprKindUnsafeBlock) isExprKind() {}
func (ExprKindBlock) isExprKind()       {}
func (ExprKindMacroCall) isExprKind()   {}

func (k ExprKindLit) Print(dest *strings.Builder)  { k.Literal.Print(dest) }
func (k ExprKindPath) Print(dest *strings.Builder) { k.Path.Print(dest) }
func (k ExprKindQPath) Print(dest *strings.Builder) { k.QPath.Print(dest) }
func (k ExprKindUnary) Print(dest *strings.Builder) {
	k.Op.Print(dest)
	k.T1.Print(dest)
	k.Operand.Print(dest)
}
func (k ExprKindBinary) Print(dest *strings.Builder) {
	k.Left.Print(dest)
	k.T1.Print(dest)
	k.Op.Print(dest)
	k.T2.Print(dest)
	k.Right.Print(dest)
}
func (k ExprKindAssign) Print(dest *strings.Builder) {
	k.Left.Print(dest)
	k.T1.Print(dest)
	k.Op.Print(dest)
	k.T2.Print(dest)
	k.Right.Print(dest)
}
func (k ExprKindRange) Print(dest *strings.Builder) {
	if k.Start != nil {
		k.Start.Print(dest)
	}
	k.T1.Print(dest)
	k.Op.Print(dest)
	if k.End != nil {
		k.T2.Print(dest)
		k.End.Print(dest)
	}
}
func (k ExprKindCast) Print(dest *strings.Builder) {
	k.Value.Print(dest)
	k.T1.Print(dest)
	k.AsKw.Print(dest)
	k.T2.Print(dest)
	k.Ty.Print(dest)
}
func (k ExprKindCall) Print(dest *strings.Builder) { k.Callee.Print(dest); k.Args.Print(dest) }
func (k ExprKindIndex) Print(dest *strings.Builder) { k.Base.Print(dest); k.Index.Print(dest) }
func (k ExprKindField) Print(dest *strings.Builder) {
	k.Base.Print(dest)
	k.T1.Print(dest)
	k.Dot.Print(dest)
	k.T2.Print(dest)
	k.Member.Print(dest)
}
func (k ExprKindMethodCall) Print(dest *strings.Builder) {
	k.Receiver.Print(dest)
	k.T1.Print(dest)
	k.Dot.Print(dest)
	k.T2.Print(dest)
	k.Method.Print(dest)
	if k.Turbofish != nil {
		k.Turbofish.T1.Print(dest)
		k.Turbofish.ColonColon.Print(dest)
		k.Turbofish.T2.Print(dest)
		k.Turbofish.Args.Print(dest)
	}
	k.Args.Print(dest)
}
func (k ExprKindTry) Print(dest *strings.Builder) {
	k.Operand.Print(dest)
	k.T1.Print(dest)
	k.Question.Print(dest)
}
func (k ExprKindClosure) Print(dest *strings.Builder) {
	if k.Async != nil {
		k.Async.Print(dest)
		k.T0.Print(dest)
	}
	if k.Move != nil {
		k.Move.Print(dest)
		k.T0b.Print(dest)
	}
	if k.Empty != nil {
		k.Empty.Print(dest)
	} else {
		k.NonEmpty.Open.Print(dest)
		k.NonEmpty.T1.Print(dest)
		k.NonEmpty.Params.Print(dest)
		k.NonEmpty.T2.Print(dest)
		k.NonEmpty.Close.Print(dest)
	}
	k.T1.Print(dest)
	if k.Ret != nil {
		k.Ret.Print(dest)
		k.T2.Print(dest)
	}
	k.Body.Print(dest)
}
func (k ExprKindTuple) Print(dest *strings.Builder)  { k.Tuple.Print(dest) }
func (k ExprKindParen) Print(dest *strings.Builder)  { k.Paren.Print(dest) }
func (k ExprKindArray) Print(dest *strings.Builder)  { k.Group.Print(dest) }
func (k ExprKindStruct) Print(dest *strings.Builder) { k.Struct.Print(dest) }
func (k ExprKindMatch) Print(dest *strings.Builder) {
	k.MatchKw.Print(dest)
	k.T1.Print(dest)
	k.Scrutinee.Print(dest)
	k.T2.Print(dest)
	k.Group.Print(dest)
}
func (k ExprKindIf) Print(dest *strings.Builder)          { k.If.Print(dest) }
func (k ExprKindWhile) Print(dest *strings.Builder)       { k.While.Print(dest) }
func (k ExprKindFor) Print(dest *strings.Builder)         { k.For.Print(dest) }
func (k ExprKindLoop) Print(dest *strings.Builder)        { k.Loop.Print(dest) }
func (k ExprKindBreak) Print(dest *strings.Builder)       { k.Break.Print(dest) }
func (k ExprKindContinue) Print(dest *strings.Builder)    { k.Continue.Print(dest) }
func (k ExprKindReturn) Print(dest *strings.Builder)      { k.Return.Print(dest) }
func (k ExprKindYield) Print(dest *strings.Builder)       { k.Yield.Print(dest) }
func (k ExprKindBecome) Print(dest *strings.Builder)      { k.Become.Print(dest) }
func (k ExprKindAsyncBlock) Print(dest *strings.Builder)  { k.Block.Print(dest) }
func (k ExprKindTryBlock) Print(dest *strings.Builder)    { k.Block.Print(dest) }
func (k ExprKindConstBlock) Print(dest *strings.Builder)  { k.Block.Print(dest) }
func (k ExprKindUnsafeBlock) Print(dest *strings.Builder) { k.Block.Print(dest) }
func (k ExprKindBlock) Print(dest *strings.Builder) {
	k.Labeled.print(dest)
	k.Block.Print(dest)
}
func (k ExprKindMacroCall) Print(dest *strings.Builder)   { k.Call.Print(dest) }

func (k *ExprKindLit) Visit(p Pass)  { p.VisitExprKind(p, k) }
func (k *ExprKindPath) Visit(p Pass) { p.VisitExprKind(p, k) }
func (k *ExprKindQPath) Visit(p Pass) { p.VisitExprKind(p, k) }
func (k *ExprKindUnary) Visit(p Pass) { p.VisitExprKind(p, k) }
func (k *ExprKindBinary) Visit(p Pass) { p.VisitExprKind(p, k) }
func (k *ExprKindAssign) Visit(p Pass) { p.VisitExprKind(p, k) }
func (k *ExprKindRange) Visit(p Pass) { p.VisitExprKind(p, k) }
func (k *ExprKindCast) Visit(p Pass)  { p.VisitExprKind(p, k) }
func (k *ExprKindCall) Visit(p Pass)  { p.VisitExprKind(p, k) }
func (k *ExprKindIndex) Visit(p Pass) { p.VisitExprKind(p, k) }
func (k *ExprKindField) Visit(p Pass) { p.VisitExprKind(p, k) }
func (k *ExprKindMethodCall) Visit(p Pass) { p.VisitExprKind(p, k) }
func (k *ExprKindTry) Visit(p Pass)     { p.VisitExprKind(p, k) }
func (k *ExprKindClosure) Visit(p Pass) { p.VisitExprKind(p, k) }
func (k *ExprKindTuple) Visit(p Pass)   { p.VisitExprKind(p, k) }
func (k *ExprKindParen) Visit(p Pass)   { p.VisitExprKind(p, k) }
func (k *ExprKindArray) Visit(p Pass)   { p.VisitExprKind(p, k) }
func (k *ExprKindStruct) Visit(p Pass)  { p.VisitExprKind(p, k) }
func (k *ExprKindMatch) Visit(p Pass)   { p.VisitExprKind(p, k) }
func (k *ExprKindIf) Visit(p Pass)          { p.VisitExprKind(p, k) }
func (k *ExprKindWhile) Visit(p Pass)       { p.VisitExprKind(p, k) }
func (k *ExprKindFor) Visit(p Pass)         { p.VisitExprKind(p, k) }
func (k *ExprKindLoop) Visit(p Pass)        { p.VisitExprKind(p, k) }
func (k *ExprKindBreak) Visit(p Pass)       { p.VisitExprKind(p, k) }
func (k *ExprKindContinue) Visit(p Pass)    { p.VisitExprKind(p, k) }
func (k *ExprKindReturn) Visit(p Pass)      { p.VisitExprKind(p, k) }
func (k *ExprKindYield) Visit(p Pass)       { p.VisitExprKind(p, k) }
func (k *ExprKindBecome) Visit(p Pass)      { p.VisitExprKind(p, k) }
func (k *ExprKindAsyncBlock) Visit(p Pass)  { p.VisitExprKind(p, k) }
func (k *ExprKindTryBlock) Visit(p Pass)    { p.VisitExprKind(p, k) }
func (k *ExprKindConstBlock) Visit(p Pass)  { p.VisitExprKind(p, k) }
func (k *ExprKindUnsafeBlock) Visit(p Pass) { p.VisitExprKind(p, k) }
func (k *ExprKindBlock) Visit(p Pass)       { p.VisitExprKind(p, k) }
func (k *ExprKindMacroCall) Visit(p Pass)   { p.VisitExprKind(p, k) }

// Walk performs the structural traversal for each ExprKind variant; this
// is where per-variant children are visited since only a handful of
// variants (struct/tuple/paren literals, and the block-like forms) get
// their own dedicated Pass hook.
func (k *ExprKindLit) Walk(p Pass)  { k.Literal.Visit(p) }
func (k *ExprKindPath) Walk(p Pass) { k.Path.Visit(p) }
func (k *ExprKindQPath) Walk(p Pass) { k.QPath.Visit(p) }
func (k *ExprKindUnary) Walk(p Pass) {
	k.Op.Visit(p)
	k.T1.Visit(p)
	k.Operand.Visit(p)
}
func (k *ExprKindBinary) Walk(p Pass) {
	k.Left.Visit(p)
	k.T1.Visit(p)
	k.Op.Visit(p)
	k.T2.Visit(p)
	k.Right.Visit(p)
}
func (k *ExprKindAssign) Walk(p Pass) {
	k.Left.Visit(p)
	k.T1.Visit(p)
	k.Op.Visit(p)
	k.T2.Visit(p)
	k.Right.Visit(p)
}
func (k *ExprKindRange) Walk(p Pass) {
	if k.Start != nil {
		k.Start.Visit(p)
	}
	k.T1.Visit(p)
	k.Op.Visit(p)
	if k.End != nil {
		k.T2.Visit(p)
		k.End.Visit(p)
	}
}
func (k *ExprKindCast) Walk(p Pass) {
	k.Value.Visit(p)
	k.T1.Visit(p)
	k.AsKw.Visit(p)
	k.T2.Visit(p)
	k.Ty.Visit(p)
}
func (k *ExprKindCall) Walk(p Pass)  { k.Callee.Visit(p); k.Args.Visit(p) }
func (k *ExprKindIndex) Walk(p Pass) { k.Base.Visit(p); k.Index.Visit(p) }
func (k *ExprKindField) Walk(p Pass) {
	k.Base.Visit(p)
	k.T1.Visit(p)
	k.Dot.Visit(p)
	k.T2.Visit(p)
	k.Member.Visit(p)
}
func (k *ExprKindMethodCall) Walk(p Pass) {
	k.Receiver.Visit(p)
	k.T1.Visit(p)
	k.Dot.Visit(p)
	k.T2.Visit(p)
	k.Method.Visit(p)
	if k.Turbofish != nil {
		k.Turbofish.T1.Visit(p)
		k.Turbofish.ColonColon.Visit(p)
		k.Turbofish.T2.Visit(p)
		k.Turbofish.Args.Visit(p)
	}
	k.Args.Visit(p)
}
func (k *ExprKindTry) Walk(p Pass) { k.Operand.Visit(p); k.T1.Visit(p); k.Question.Visit(p) }
func (k *ExprKindClosure) Walk(p Pass) {
	if k.Async != nil {
		k.Async.Visit(p)
		k.T0.Visit(p)
	}
	if k.Move != nil {
		k.Move.Visit(p)
		k.T0b.Visit(p)
	}
	if k.Empty != nil {
		k.Empty.Visit(p)
	} else {
		k.NonEmpty.Open.Visit(p)
		k.NonEmpty.T1.Visit(p)
		k.NonEmpty.Params.Visit(p)
		k.NonEmpty.T2.Visit(p)
		k.NonEmpty.Close.Visit(p)
	}
	k.T1.Visit(p)
	if k.Ret != nil {
		k.Ret.Visit(p)
		k.T2.Visit(p)
	}
	k.Body.Visit(p)
}
func (k *ExprKindTuple) Walk(p Pass)  { p.VisitExprTuple(p, k.Tuple) }
func (k *ExprKindParen) Walk(p Pass)  { p.VisitExprParen(p, k.Paren) }
func (k *ExprKindArray) Walk(p Pass)  { k.Group.Visit(p) }
func (k *ExprKindStruct) Walk(p Pass) { p.VisitExprStruct(p, k.Struct) }
func (k *ExprKindMatch) Walk(p Pass) {
	k.MatchKw.Visit(p)
	k.T1.Visit(p)
	k.Scrutinee.Visit(p)
	k.T2.Visit(p)
	k.Group.Visit(p)
}
func (k *ExprKindIf) Walk(p Pass)          { p.VisitIf(p, k.If) }
func (k *ExprKindWhile) Walk(p Pass)       { p.VisitWhile(p, k.While) }
func (k *ExprKindFor) Walk(p Pass)         { p.VisitFor(p, k.For) }
func (k *ExprKindLoop) Walk(p Pass)        { p.VisitLoop(p, k.Loop) }
func (k *ExprKindBreak) Walk(p Pass)       { p.VisitBreak(p, k.Break) }
func (k *ExprKindContinue) Walk(p Pass)    { p.VisitContinue(p, k.Continue) }
func (k *ExprKindReturn) Walk(p Pass)      { p.VisitReturn(p, k.Return) }
func (k *ExprKindYield) Walk(p Pass)       { p.VisitYield(p, k.Yield) }
func (k *ExprKindBecome) Walk(p Pass)      { p.VisitBecome(p, k.Become) }
func (k *ExprKindAsyncBlock) Walk(p Pass)  { p.VisitAsyncBlock(p, k.Block) }
func (k *ExprKindTryBlock) Walk(p Pass)    { p.VisitTryBlock(p, k.Block) }
func (k *ExprKindConstBlock) Walk(p Pass)  { p.VisitConstBlock(p, k.Block) }
func (k *ExprKindUnsafeBlock) Walk(p Pass) { p.VisitUnsafeBlock(p, k.Block) }
func (k *ExprKindBlock) Walk(p Pass)       { k.Labeled.visit(p); k.Block.Visit(p) }
func (k *ExprKindMacroCall) Walk(p Pass)   { p.VisitMacroCall(p, k.Call) }

// Expr is an expression: its attributes (rarely populated, but legal
// before e.g. a closure or a match arm's body) plus its kind.
type Expr struct {
	Attrs List[*Attribute]
	Kind  ExprKind
}

func (e Expr) Print(dest *strings.Builder) {
	e.Attrs.Print(dest)
	e.Kind.Print(dest)
}

func (e Expr) Visit(p Pass) { p.VisitExpr(p, &e) }
func (e Expr) Walk(p Pass)  { e.Attrs.Visit(p); e.Kind.Visit(p) }
