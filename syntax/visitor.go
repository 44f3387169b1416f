package syntax

// Pass is a double-dispatch visitor over the CST. Each hook receives the
// Pass itself as its first argument in addition to the node, so that a
// hook's default (no-op) implementation — embedded from NoopPass — can
// still continue the walk through the caller's overridden hooks rather
// than its own: Go has no virtual default methods, so the outer Pass must
// be threaded through explicitly at every call.
//
// A hook that wants to stop descending into a node's children simply
// returns without calling the node's Walk method; a hook that wants the
// default structural walk calls node.Walk(p) itself (NoopPass's hooks all
// do exactly this).
type Pass interface {
	VisitTrivia(p Pass, t Trivia)
	VisitTriviaN(p Pass, t TriviaN)
	VisitIdent(p Pass, id *Ident)
	VisitLiteral(p Pass, l *Literal)
	VisitToken(size int)

	VisitFile(p Pass, f *File)
	VisitAttr(p Pass, a *Attribute)
	VisitAttrValue(p Pass, v AttrValue)
	VisitItem(p Pass, it *Item)
	VisitItemKind(p Pass, k ItemKind)
	VisitMod(p Pass, m *ItemMod)
	VisitModule(p Pass, m *Module)
	VisitVis(p Pass, v Visibility)
	VisitVisRestricted(p Pass, v *VisRestricted)
	VisitConst(p Pass, c *Const)
	VisitStatic(p Pass, s *Static)
	VisitTyAlias(p Pass, t *TyAlias)

	VisitQPath(p Pass, q *QPath)
	VisitQSelf(p Pass, q *QSelf)
	VisitPath(p Pass, pth *Path)
	VisitPathSegment(p Pass, s *PathSegment)
	VisitTy(p Pass, t Ty)
	VisitPat(p Pass, pt Pat)

	VisitExpr(p Pass, e *Expr)
	VisitExprKind(p Pass, k ExprKind)
	VisitExprStruct(p Pass, s *ExprStruct)
	VisitExprStructField(p Pass, f *ExprStructField)
	VisitExprTuple(p Pass, t *ExprTuple)
	VisitExprParen(p Pass, e *ExprParen)
	VisitMacroCall(p Pass, m *MacroCall)

	VisitFn(p Pass, f *Fn)
	VisitFnParam(p Pass, fp *FnParam)
	VisitFnRet(p Pass, r *FnRet)

	VisitAsyncBlock(p Pass, b *AsyncBlock)
	VisitTryBlock(p Pass, b *TryBlock)
	VisitConstBlock(p Pass, b *ConstBlock)
	VisitUnsafeBlock(p Pass, b *UnsafeBlock)
	VisitIf(p Pass, i *If)
	VisitElse(p Pass, e *Else)
	VisitLabel(p Pass, l *Label)
	VisitWhile(p Pass, w *While)
	VisitFor(p Pass, f *For)
	VisitLoop(p Pass, l *Loop)
	VisitBreak(p Pass, b *Break)
	VisitContinue(p Pass, c *Continue)
	VisitReturn(p Pass, r *Return)
	VisitYield(p Pass, y *Yield)
	VisitBecome(p Pass, b *Become)

	VisitStmt(p Pass, s *Stmt)
	VisitStmtKind(p Pass, k StmtKind)

	VisitTokenStream(p Pass, ts *TokenStream)
	VisitTokenTree(p Pass, tt TokenTree)
}

// NoopPass implements every Pass hook as "do nothing but continue the
// default structural walk". Concrete passes embed NoopPass and override
// only the hooks they care about.
type NoopPass struct{}

func (NoopPass) VisitTrivia(p Pass, t Trivia)   {}
func (NoopPass) VisitTriviaN(p Pass, t TriviaN) {}
func (NoopPass) VisitIdent(p Pass, id *Ident)   {}
func (NoopPass) VisitLiteral(p Pass, l *Literal) {}
func (NoopPass) VisitToken(size int)             {}

func (NoopPass) VisitFile(p Pass, f *File)     { f.Walk(p) }
func (NoopPass) VisitAttr(p Pass, a *Attribute) { a.Walk(p) }
func (NoopPass) VisitAttrValue(p Pass, v AttrValue) { v.Walk(p) }
func (NoopPass) VisitItem(p Pass, it *Item)     { it.Walk(p) }
func (NoopPass) VisitItemKind(p Pass, k ItemKind) { k.Walk(p) }
func (NoopPass) VisitMod(p Pass, m *ItemMod)    { m.Walk(p) }
func (NoopPass) VisitModule(p Pass, m *Module)  { m.Walk(p) }
func (NoopPass) VisitVis(p Pass, v Visibility)  { v.Walk(p) }
func (NoopPass) VisitVisRestricted(p Pass, v *VisRestricted) { v.Walk(p) }
func (NoopPass) VisitConst(p Pass, c *Const)    { c.Walk(p) }
func (NoopPass) VisitStatic(p Pass, s *Static)  { s.Walk(p) }
func (NoopPass) VisitTyAlias(p Pass, t *TyAlias) { t.Walk(p) }

func (NoopPass) VisitQPath(p Pass, q *QPath)    { q.Walk(p) }
func (NoopPass) VisitQSelf(p Pass, q *QSelf)    { q.Walk(p) }
func (NoopPass) VisitPath(p Pass, pth *Path)    { pth.Walk(p) }
func (NoopPass) VisitPathSegment(p Pass, s *PathSegment) { s.Walk(p) }
func (NoopPass) VisitTy(p Pass, t Ty)           { t.Walk(p) }
func (NoopPass) VisitPat(p Pass, pt Pat)        { pt.Walk(p) }

func (NoopPass) VisitExpr(p Pass, e *Expr)      { e.Walk(p) }
func (NoopPass) VisitExprKind(p Pass, k ExprKind) { k.Walk(p) }
func (NoopPass) VisitExprStruct(p Pass, s *ExprStruct) { s.Walk(p) }
func (NoopPass) VisitExprStructField(p Pass, f *ExprStructField) { f.Walk(p) }
func (NoopPass) VisitExprTuple(p Pass, t *ExprTuple) { t.Walk(p) }
func (NoopPass) VisitExprParen(p Pass, e *ExprParen) { e.Walk(p) }
func (NoopPass) VisitMacroCall(p Pass, m *MacroCall) { m.Walk(p) }

func (NoopPass) VisitFn(p Pass, f *Fn)          { f.Walk(p) }
func (NoopPass) VisitFnParam(p Pass, fp *FnParam) { fp.Walk(p) }
func (NoopPass) VisitFnRet(p Pass, r *FnRet)    { r.Walk(p) }

func (NoopPass) VisitAsyncBlock(p Pass, b *AsyncBlock) { b.Walk(p) }
func (NoopPass) VisitTryBlock(p Pass, b *TryBlock)     { b.Walk(p) }
func (NoopPass) VisitConstBlock(p Pass, b *ConstBlock) { b.Walk(p) }
func (NoopPass) VisitUnsafeBlock(p Pass, b *UnsafeBlock) { b.Walk(p) }
func (NoopPass) VisitIf(p Pass, i *If)          { i.Walk(p) }
func (NoopPass) VisitElse(p Pass, e *Else)      { e.Walk(p) }
func (NoopPass) VisitLabel(p Pass, l *Label)    { l.Walk(p) }
func (NoopPass) VisitWhile(p Pass, w *While)    { w.Walk(p) }
func (NoopPass) VisitFor(p Pass, f *For)        { f.Walk(p) }
func (NoopPass) VisitLoop(p Pass, l *Loop)      { l.Walk(p) }
func (NoopPass) VisitBreak(p Pass, b *Break)    { b.Walk(p) }
func (NoopPass) VisitContinue(p Pass, c *Continue) { c.Walk(p) }
func (NoopPass) VisitReturn(p Pass, r *Return)  { r.Walk(p) }
func (NoopPass) VisitYield(p Pass, y *Yield)    { y.Walk(p) }
func (NoopPass) VisitBecome(p Pass, b *Become)  { b.Walk(p) }

func (NoopPass) VisitStmt(p Pass, s *Stmt)      { s.Walk(p) }
func (NoopPass) VisitStmtKind(p Pass, k StmtKind) { k.Walk(p) }

func (NoopPass) VisitTokenStream(p Pass, ts *TokenStream) { ts.Walk(p) }
func (NoopPass) VisitTokenTree(p Pass, tt TokenTree)      { tt.Walk(p) }
