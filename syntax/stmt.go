package syntax

import "strings"

// tyAnnotation is the optional `: Ty` clause of a let-statement.
type tyAnnotation struct {
	T1    Trivia
	Colon ColonTok
	T2    Trivia
	Ty    Ty
}

// letInit is the optional `= value` initializer of a let-statement.
type letInit struct {
	T1    Trivia
	Eq    EqTok
	T2    Trivia
	Value Expr
}

// StmtKind is the sum type of a statement's content, following its
// attributes.
type StmtKind interface {
	Printer
	Node
	Walk(p Pass)
	isStmtKind()
}

// StmtEmpty is a bare `;` with no expression.
type StmtEmpty struct{ Semi SemiTok }

func (StmtEmpty) isStmtKind()                    {}
func (s StmtEmpty) Print(dest *strings.Builder) { s.Semi.Print(dest) }
func (s *StmtEmpty) Visit(p Pass)                 { p.VisitStmtKind(p, s) }
func (s *StmtEmpty) Walk(p Pass)                  { s.Semi.Visit(p) }

// StmtSemi is an expression used as a statement and terminated by `;`.
type StmtSemi struct {
	Expr Expr
	T1   Trivia
	Semi SemiTok
}

func (StmtSemi) isStmtKind() {}

func (s StmtSemi) Print(dest *strings.Builder) {
	s.Expr.Print(dest)
	s.T1.Print(dest)
	s.Semi.Print(dest)
}

func (s *StmtSemi) Visit(p Pass) { p.VisitStmtKind(p, s) }

func (s *StmtSemi) Walk(p Pass) {
	s.Expr.Visit(p)
	s.T1.Visit(p)
	s.Semi.Visit(p)
}

// StmtExpr is a block-like expression used as a statement with no
// trailing `;` (e.g. a bare `if cond { ... }` mid-block) — legal under
// the statement-boundary rule exactly when the expression's outermost
// form is block-like.
type StmtExpr struct{ Expr Expr }

func (StmtExpr) isStmtKind()                    {}
func (s StmtExpr) Print(dest *strings.Builder) { s.Expr.Print(dest) }
func (s *StmtExpr) Visit(p Pass)                 { p.VisitStmtKind(p, s) }
func (s *StmtExpr) Walk(p Pass)                  { s.Expr.Visit(p) }

// StmtLet is `let pat[: Ty] [= value];`.
type StmtLet struct {
	LetKw LetKw
	T1    Trivia
	Pat   Pat
	TyAnn *tyAnnotation
	Init  *letInit
	T2    Trivia
	Semi  SemiTok
}

func (StmtLet) isStmtKind() {}

func (s StmtLet) Print(dest *strings.Builder) {
	s.LetKw.Print(dest)
	s.T1.Print(dest)
	s.Pat.Print(dest)
	if s.TyAnn != nil {
		s.TyAnn.T1.Print(dest)
		s.TyAnn.Colon.Print(dest)
		s.TyAnn.T2.Print(dest)
		s.TyAnn.Ty.Print(dest)
	}
	if s.Init != nil {
		s.Init.T1.Print(dest)
		s.Init.Eq.Print(dest)
		s.Init.T2.Print(dest)
		s.Init.Value.Print(dest)
	}
	s.T2.Print(dest)
	s.Semi.Print(dest)
}

func (s *StmtLet) Visit(p Pass) { p.VisitStmtKind(p, s) }

func (s *StmtLet) Walk(p Pass) {
	s.LetKw.Visit(p)
	s.T1.Visit(p)
	s.Pat.Visit(p)
	if s.TyAnn != nil {
		s.TyAnn.T1.Visit(p)
		s.TyAnn.Colon.Visit(p)
		s.TyAnn.T2.Visit(p)
		s.TyAnn.Ty.Visit(p)
	}
	if s.Init != nil {
		s.Init.T1.Visit(p)
		s.Init.Eq.Visit(p)
		s.Init.T2.Visit(p)
		s.Init.Value.Visit(p)
	}
	s.T2.Visit(p)
	s.Semi.Visit(p)
}

// StmtItem wraps a nested item declaration appearing inside a block.
type StmtItem struct{ Item *Item }

func (StmtItem) isStmtKind()                    {}
func (s StmtItem) Print(dest *strings.Builder) { s.Item.Print(dest) }
func (s *StmtItem) Visit(p Pass)                 { p.VisitStmtKind(p, s) }
func (s *StmtItem) Walk(p Pass)                  { s.Item.Visit(p) }

// Stmt is one statement: its attributes plus its content.
type Stmt struct {
	Attrs List[*Attribute]
	T1    Trivia
	Kind  StmtKind
}

func (s Stmt) Print(dest *strings.Builder) {
	s.Attrs.Print(dest)
	s.T1.Print(dest)
	s.Kind.Print(dest)
}

func (s *Stmt) Visit(p Pass) { p.VisitStmt(p, s) }

func (s *Stmt) Walk(p Pass) {
	s.Attrs.Visit(p)
	s.T1.Visit(p)
	s.Kind.Visit(p)
}

// BlockInner is the statement list plus optional tail expression inside a
// block's braces.
type BlockInner struct {
	Stmts    List[*Stmt]
	TailLead Trivia // before Tail; empty when Tail is nil
	Tail     *Expr  // nil when the block has no tail expression
}

func (b BlockInner) Print(dest *strings.Builder) {
	b.Stmts.Print(dest)
	if b.Tail != nil {
		b.TailLead.Print(dest)
		b.Tail.Print(dest)
	}
}

func (b BlockInner) Visit(p Pass) {
	b.Stmts.Visit(p)
	if b.Tail != nil {
		b.TailLead.Visit(p)
		b.Tail.Visit(p)
	}
}

// Block is a brace-delimited sequence of statements with an optional,
// semicolon-less tail expression giving the block its value.
type Block = Braces[BlockInner]
