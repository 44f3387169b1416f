package syntax

import "strings"

// File is the root of a parsed source file: its module's items, with any
// leading trivia (whitespace, file-level comments, a leading frontmatter
// block) folded into Module.T1 and trailing trivia up to EOF folded into
// Module.Tlast. A file with no items holds all of its trivia in Tlast.
type File struct {
	Module Module
}

func (f File) Print(dest *strings.Builder) { f.Module.Print(dest) }
func (f *File) Visit(p Pass)                { p.VisitFile(p, f) }
func (f *File) Walk(p Pass)                 { f.Module.Visit(p) }

// Module is a sequence of items, as they appear either at file scope or
// inside a `mod name { ... }` block.
type Module struct {
	T1    Trivia // before the first item
	Items List[*Item]
	Tlast Trivia // after the last item, before EOF; empty in a nested module, whose enclosing Braces.T2 holds that span
}

func (m Module) Print(dest *strings.Builder) {
	m.T1.Print(dest)
	m.Items.Print(dest)
	m.Tlast.Print(dest)
}

func (m *Module) Visit(p Pass) { p.VisitModule(p, m) }

func (m *Module) Walk(p Pass) {
	m.T1.Visit(p)
	m.Items.Visit(p)
	m.Tlast.Visit(p)
}

// ModBody is the sum type of a module item's body: a semicolon (an
// out-of-line module with no inline definition) or a brace-delimited
// block of nested items.
type ModBody interface {
	Printer
	Node
	isModBody()
}

type ModBodySemi struct{ Semi SemiTok }

func (ModBodySemi) isModBody()                    {}
func (b ModBodySemi) Print(dest *strings.Builder) { b.Semi.Print(dest) }
func (b *ModBodySemi) Visit(p Pass)                { b.Semi.Visit(p) }
func (b *ModBodySemi) Walk(p Pass)                 {}

type ModBodyBlock struct{ Braces Braces[*Module] }

func (ModBodyBlock) isModBody() {}
func (b ModBodyBlock) Print(dest *strings.Builder) { b.Braces.Print(dest) }
func (b *ModBodyBlock) Visit(p Pass)                { b.Braces.Visit(p) }
func (b *ModBodyBlock) Walk(p Pass)                 { b.Braces.Visit(p) }

// ItemMod is `mod name;` or `mod name { ... }`.
type ItemMod struct {
	ModKw ModKw
	T1    Trivia
	Ident Ident
	T2    Trivia
	Body  ModBody
}

func (m ItemMod) Print(dest *strings.Builder) {
	m.ModKw.Print(dest)
	m.T1.Print(dest)
	m.Ident.Print(dest)
	m.T2.Print(dest)
	m.Body.Print(dest)
}

func (m *ItemMod) Visit(p Pass) { p.VisitMod(p, m) }

func (m *ItemMod) Walk(p Pass) {
	m.ModKw.Visit(p)
	m.T1.Visit(p)
	m.Ident.Visit(p)
	m.T2.Visit(p)
	m.Body.Visit(p)
}

// TyAlias is `type Name = Ty;`.
type TyAlias struct {
	TypeKw TypeKw
	T1     Trivia
	Ident  Ident
	T2     Trivia
	Eq     EqTok
	T3     Trivia
	Ty     Ty
	T4     Trivia
	Semi   SemiTok
}

func (t TyAlias) Print(dest *strings.Builder) {
	t.TypeKw.Print(dest)
	t.T1.Print(dest)
	t.Ident.Print(dest)
	t.T2.Print(dest)
	t.Eq.Print(dest)
	t.T3.Print(dest)
	t.Ty.Print(dest)
	t.T4.Print(dest)
	t.Semi.Print(dest)
}

func (t *TyAlias) Visit(p Pass) { p.VisitTyAlias(p, t) }

func (t *TyAlias) Walk(p Pass) {
	t.TypeKw.Visit(p)
	t.T1.Visit(p)
	t.Ident.Visit(p)
	t.T2.Visit(p)
	t.Eq.Visit(p)
	t.T3.Visit(p)
	t.Ty.Visit(p)
	t.T4.Visit(p)
	t.Semi.Visit(p)
}

// Const is `const NAME: Ty = value;`.
type Const struct {
	ConstKw ConstKw
	T1      Trivia
	Ident   Ident
	T2      Trivia
	Colon   ColonTok
	T3      Trivia
	Ty      Ty
	T4      Trivia
	Eq      EqTok
	T5      Trivia
	Value   Expr
	T6      Trivia
	Semi    SemiTok
}

func (c Const) Print(dest *strings.Builder) {
	c.ConstKw.Print(dest)
	c.T1.Print(dest)
	c.Ident.Print(dest)
	c.T2.Print(dest)
	c.Colon.Print(dest)
	c.T3.Print(dest)
	c.Ty.Print(dest)
	c.T4.Print(dest)
	c.Eq.Print(dest)
	c.T5.Print(dest)
	c.Value.Print(dest)
	c.T6.Print(dest)
	c.Semi.Print(dest)
}

func (c *Const) Visit(p Pass) { p.VisitConst(p, c) }

func (c *Const) Walk(p Pass) {
	c.ConstKw.Visit(p)
	c.T1.Visit(p)
	c.Ident.Visit(p)
	c.T2.Visit(p)
	c.Colon.Visit(p)
	c.T3.Visit(p)
	c.Ty.Visit(p)
	c.T4.Visit(p)
	c.Eq.Visit(p)
	c.T5.Visit(p)
	c.Value.Visit(p)
	c.T6.Visit(p)
	c.Semi.Visit(p)
}

// Static is `static [mut] NAME: Ty = value;`.
type Static struct {
	StaticKw StaticKw
	T1       Trivia
	Mut      *MutKw
	T1b      Trivia // after `mut`, before Ident; empty when Mut is nil
	Ident    Ident
	T2       Trivia
	Colon    ColonTok
	T3       Trivia
	Ty       Ty
	T4       Trivia
	Eq       EqTok
	T5       Trivia
	Value    Expr
	T6       Trivia
	Semi     SemiTok
}

func (s Static) Print(dest *strings.Builder) {
	s.StaticKw.Print(dest)
	s.T1.Print(dest)
	if s.Mut != nil {
		s.Mut.Print(dest)
		s.T1b.Print(dest)
	}
	s.Ident.Print(dest)
	s.T2.Print(dest)
	s.Colon.Print(dest)
	s.T3.Print(dest)
	s.Ty.Print(dest)
	s.T4.Print(dest)
	s.Eq.Print(dest)
	s.T5.Print(dest)
	s.Value.Print(dest)
	s.T6.Print(dest)
	s.Semi.Print(dest)
}

func (s *Static) Visit(p Pass) { p.VisitStatic(p, s) }

func (s *Static) Walk(p Pass) {
	s.StaticKw.Visit(p)
	s.T1.Visit(p)
	if s.Mut != nil {
		s.Mut.Visit(p)
		s.T1b.Visit(p)
	}
	s.Ident.Visit(p)
	s.T2.Visit(p)
	s.Colon.Visit(p)
	s.T3.Visit(p)
	s.Ty.Visit(p)
	s.T4.Visit(p)
	s.Eq.Visit(p)
	s.T5.Visit(p)
	s.Value.Visit(p)
	s.T6.Visit(p)
	s.Semi.Visit(p)
}

// FnParam is one `pat: Ty` entry in a function's parameter list.
type FnParam struct {
	Pat   Pat
	T1    Trivia
	Colon ColonTok
	T2    Trivia
	Ty    Ty
}

func (fp FnParam) Print(dest *strings.Builder) {
	fp.Pat.Print(dest)
	fp.T1.Print(dest)
	fp.Colon.Print(dest)
	fp.T2.Print(dest)
	fp.Ty.Print(dest)
}

func (fp *FnParam) Visit(p Pass) { p.VisitFnParam(p, fp) }

func (fp *FnParam) Walk(p Pass) {
	fp.Pat.Visit(p)
	fp.T1.Visit(p)
	fp.Colon.Visit(p)
	fp.T2.Visit(p)
	fp.Ty.Visit(p)
}

// FnRet is the optional `-> Ty` return-type clause of a function.
type FnRet struct {
	Arrow RThinArrowTok
	T1    Trivia
	Ty    Ty
}

func (r FnRet) Print(dest *strings.Builder) {
	r.Arrow.Print(dest)
	r.T1.Print(dest)
	r.Ty.Print(dest)
}

func (r *FnRet) Visit(p Pass) { p.VisitFnRet(p, r) }

func (r *FnRet) Walk(p Pass) {
	r.Arrow.Visit(p)
	r.T1.Visit(p)
	r.Ty.Visit(p)
}

// Fn is a function item: `[async] [unsafe] fn name(params) [-> Ty] { ... }`.
type Fn struct {
	Async   *AsyncKw
	T0      Trivia // after `async`, before `unsafe`/`fn`; empty when Async is nil
	Unsafe  *UnsafeKw
	T0b     Trivia // after `unsafe`, before `fn`; empty when Unsafe is nil
	FnKw    FnKw
	T1      Trivia
	Ident   Ident
	T2      Trivia
	Params  Parens[SeparatedList[*FnParam, CommaTok]]
	T3      Trivia
	Ret     *FnRet
	T4      Trivia // after Ret (or after Params when Ret is nil), before Body
	Body    Block
}

func (f Fn) Print(dest *strings.Builder) {
	if f.Async != nil {
		f.Async.Print(dest)
		f.T0.Print(dest)
	}
	if f.Unsafe != nil {
		f.Unsafe.Print(dest)
		f.T0b.Print(dest)
	}
	f.FnKw.Print(dest)
	f.T1.Print(dest)
	f.Ident.Print(dest)
	f.T2.Print(dest)
	f.Params.Print(dest)
	f.T3.Print(dest)
	if f.Ret != nil {
		f.Ret.Print(dest)
	}
	f.T4.Print(dest)
	f.Body.Print(dest)
}

func (f *Fn) Visit(p Pass) { p.VisitFn(p, f) }

func (f *Fn) Walk(p Pass) {
	if f.Async != nil {
		f.Async.Visit(p)
		f.T0.Visit(p)
	}
	if f.Unsafe != nil {
		f.Unsafe.Visit(p)
		f.T0b.Visit(p)
	}
	f.FnKw.Visit(p)
	f.T1.Visit(p)
	f.Ident.Visit(p)
	f.T2.Visit(p)
	f.Params.Visit(p)
	f.T3.Visit(p)
	if f.Ret != nil {
		f.Ret.Visit(p)
	}
	f.T4.Visit(p)
	f.Body.Visit(p)
}

// ItemKind is the sum type of an item's definition, following its
// attributes and visibility.
type ItemKind interface {
	Printer
	Node
	Walk(p Pass)
	isItemKind()
}

type ItemKindMod struct{ Mod *ItemMod }

func (ItemKindMod) isItemKind()                    {}
func (k ItemKindMod) Print(dest *strings.Builder) { k.Mod.Print(dest) }
func (k *ItemKindMod) Visit(p Pass)                 { p.VisitItemKind(p, k) }
func (k *ItemKindMod) Walk(p Pass)                  { k.Mod.Visit(p) }

type ItemKindTyAlias struct{ TyAlias *TyAlias }

func (ItemKindTyAlias) isItemKind()                    {}
func (k ItemKindTyAlias) Print(dest *strings.Builder) { k.TyAlias.Print(dest) }
func (k *ItemKindTyAlias) Visit(p Pass)                 { p.VisitItemKind(p, k) }
func (k *ItemKindTyAlias) Walk(p Pass)                  { k.TyAlias.Visit(p) }

type ItemKindFn struct{ Fn *Fn }

func (ItemKindFn) isItemKind()                    {}
func (k ItemKindFn) Print(dest *strings.Builder) { k.Fn.Print(dest) }
func (k *ItemKindFn) Visit(p Pass)                 { p.VisitItemKind(p, k) }
func (k *ItemKindFn) Walk(p Pass)                  { k.Fn.Visit(p) }

type ItemKindConst struct{ Const *Const }

func (ItemKindConst) isItemKind()                    {}
func (k ItemKindConst) Print(dest *strings.Builder) { k.Const.Print(dest) }
func (k *ItemKindConst) Visit(p Pass)                 { p.VisitItemKind(p, k) }
func (k *ItemKindConst) Walk(p Pass)                  { k.Const.Visit(p) }

type ItemKindStatic struct{ Static *Static }

func (ItemKindStatic) isItemKind()                    {}
func (k ItemKindStatic) Print(dest *strings.Builder) { k.Static.Print(dest) }
func (k *ItemKindStatic) Visit(p Pass)                 { p.VisitItemKind(p, k) }
func (k *ItemKindStatic) Walk(p Pass)                  { k.Static.Visit(p) }

// Item is one top-level or module-level declaration: its attributes, its
// visibility, and its definition.
type Item struct {
	Attrs List[*Attribute]
	T1    Trivia // after the last attribute, before Vis
	Vis   Visibility
	T2    Trivia // after Vis, before Kind
	Kind  ItemKind
}

func (it Item) Print(dest *strings.Builder) {
	it.Attrs.Print(dest)
	it.T1.Print(dest)
	it.Vis.Print(dest)
	it.T2.Print(dest)
	it.Kind.Print(dest)
}

func (it *Item) Visit(p Pass) { p.VisitItem(p, it) }

func (it *Item) Walk(p Pass) {
	it.Attrs.Visit(p)
	it.T1.Visit(p)
	it.Vis.Visit(p)
	it.T2.Visit(p)
	it.Kind.Visit(p)
}
