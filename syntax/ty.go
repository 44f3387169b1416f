package syntax

import "strings"

// Ty is the sum type of type expressions: a path type, a slice type
// `[T]`, or an array type `[T; N]`.
type Ty interface {
	Printer
	Node
	Walk(p Pass)
	isTy()
}

// TyPath is a type referred to by path, e.g. `u32` or `std::vec::Vec<T>`,
// optionally qualified as `<T as Trait>::Assoc`.
type TyPath struct {
	QSelf *QSelf // non-nil for a qualified path type
	T1    Trivia // trivia after QSelf's `>`, before `::`; empty when QSelf is nil
	Path  Path
}

func (TyPath) isTy() {}

func (t TyPath) Print(dest *strings.Builder) {
	if t.QSelf != nil {
		t.QSelf.Print(dest)
		t.T1.Print(dest)
		dest.WriteString("::")
	}
	t.Path.Print(dest)
}

func (t *TyPath) Visit(p Pass) { p.VisitTy(p, t) }

func (t *TyPath) Walk(p Pass) {
	if t.QSelf != nil {
		t.QSelf.Visit(p)
		t.T1.Visit(p)
	}
	t.Path.Visit(p)
}

// arrayLen is the `; N` length clause of an array type.
type arrayLen struct {
	T1   Trivia
	Semi SemiTok
	T2   Trivia
	Len  Expr
}

// TySlice is `[T]`.
type TySlice struct {
	Group Brackets[Ty]
}

func (TySlice) isTy() {}
func (t TySlice) Print(dest *strings.Builder) { t.Group.Print(dest) }
func (t *TySlice) Visit(p Pass)                { p.VisitTy(p, t) }
func (t *TySlice) Walk(p Pass)                 { t.Group.Visit(p) }

// TyArray is `[T; N]`.
type TyArray struct {
	Lead  Trivia // inside `[`, before the element type
	Elem  Ty
	Len   arrayLen
	Trail Trivia // after N, before `]`
}

func (TyArray) isTy() {}

func (t TyArray) Print(dest *strings.Builder) {
	dest.WriteString("[")
	t.Lead.Print(dest)
	t.Elem.Print(dest)
	t.Len.T1.Print(dest)
	t.Len.Semi.Print(dest)
	t.Len.T2.Print(dest)
	t.Len.Len.Print(dest)
	t.Trail.Print(dest)
	dest.WriteString("]")
}

func (t *TyArray) Visit(p Pass) { p.VisitTy(p, t) }

func (t *TyArray) Walk(p Pass) {
	t.Lead.Visit(p)
	t.Elem.Visit(p)
	t.Len.T1.Visit(p)
	t.Len.Semi.Visit(p)
	t.Len.T2.Visit(p)
	t.Len.Len.Visit(p)
	t.Trail.Visit(p)
}
