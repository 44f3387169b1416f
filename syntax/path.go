package syntax

import "strings"

// AngleArgs is the `<T, U, ...>` generic argument list that may follow a
// path segment. Non-type generic arguments (lifetimes, const generics) are
// out of scope; every argument is a Ty.
type AngleArgs struct {
	Lt   LtTok
	T1   Trivia
	Args SeparatedList[Ty, CommaTok]
	T2   Trivia
	Gt   GtTok
}

func (a AngleArgs) Print(dest *strings.Builder) {
	a.Lt.Print(dest)
	a.T1.Print(dest)
	a.Args.Print(dest)
	a.T2.Print(dest)
	a.Gt.Print(dest)
}

func (a AngleArgs) Visit(p Pass) {
	a.Lt.Visit(p)
	a.T1.Visit(p)
	a.Args.Visit(p)
	a.T2.Visit(p)
	a.Gt.Visit(p)
}

// PathSegment is one `ident` or `ident<Args>` component of a Path.
type PathSegment struct {
	Ident Ident
	T1    Trivia // trivia between Ident and Args, empty when Args is nil
	Args  *AngleArgs
}

func (s PathSegment) Print(dest *strings.Builder) {
	s.Ident.Print(dest)
	if s.Args != nil {
		s.T1.Print(dest)
		s.Args.Print(dest)
	}
}

func (s *PathSegment) Visit(p Pass) { p.VisitPathSegment(p, s) }

func (s *PathSegment) Walk(p Pass) {
	s.Ident.Visit(p)
	if s.Args != nil {
		s.T1.Visit(p)
		s.Args.Visit(p)
	}
}

// pathRestSegment is one `::segment` continuation of a Path after its
// first segment.
type pathRestSegment struct {
	T1         Trivia // before `::`
	ColonColon ColonColonTok
	T2         Trivia // after `::`, before the segment
	Seg        PathSegment
}

// Path is a `::`-separated sequence of segments, optionally rooted by a
// leading `::`.
type Path struct {
	LeadingColon *ColonColonTok
	T0           Trivia // trivia after a leading `::`, before Seg1; empty otherwise
	Seg1         PathSegment
	Rest         []pathRestSegment
}

// NewPath builds a single-segment, unrooted path — the common case for a
// bare identifier used as an expression or type.
func NewPath(seg PathSegment) Path {
	return Path{Seg1: seg}
}

// PushSegment appends a `::segment` continuation.
func (pth *Path) PushSegment(t1 Trivia, t2 Trivia, seg PathSegment) {
	pth.Rest = append(pth.Rest, pathRestSegment{T1: t1, ColonColon: ColonColonTok{}, T2: t2, Seg: seg})
}

// IsSingleIdent reports whether this path is exactly one segment with no
// generic arguments and no leading `::` — i.e. it could be a bare local
// name rather than a qualified path.
func (pth Path) IsSingleIdent() bool {
	return pth.LeadingColon == nil && len(pth.Rest) == 0 && pth.Seg1.Args == nil
}

func (pth Path) Print(dest *strings.Builder) {
	if pth.LeadingColon != nil {
		pth.LeadingColon.Print(dest)
		pth.T0.Print(dest)
	}
	pth.Seg1.Print(dest)
	for _, r := range pth.Rest {
		r.T1.Print(dest)
		r.ColonColon.Print(dest)
		r.T2.Print(dest)
		r.Seg.Print(dest)
	}
}

func (pth *Path) Visit(p Pass) { p.VisitPath(p, pth) }

func (pth *Path) Walk(p Pass) {
	if pth.LeadingColon != nil {
		pth.LeadingColon.Visit(p)
		pth.T0.Visit(p)
	}
	pth.Seg1.Visit(p)
	for i := range pth.Rest {
		r := &pth.Rest[i]
		r.T1.Visit(p)
		r.ColonColon.Visit(p)
		r.T2.Visit(p)
		r.Seg.Visit(p)
	}
}

// QSelf is the `<Ty as Trait>` qualifying clause of a qualified path; As
// and TraitPath are both nil for the bare `<Ty>::rest` form.
type QSelf struct {
	Lt        LtTok
	T1        Trivia
	Ty        Ty
	T2        Trivia
	As        *AsKw
	T3        Trivia
	TraitPath *Path
	T4        Trivia
	Gt        GtTok
}

func (q QSelf) Print(dest *strings.Builder) {
	q.Lt.Print(dest)
	q.T1.Print(dest)
	q.Ty.Print(dest)
	q.T2.Print(dest)
	if q.As != nil {
		q.As.Print(dest)
		q.T3.Print(dest)
		q.TraitPath.Print(dest)
		q.T4.Print(dest)
	}
	q.Gt.Print(dest)
}

func (q *QSelf) Visit(p Pass) { p.VisitQSelf(p, q) }

func (q *QSelf) Walk(p Pass) {
	q.Lt.Visit(p)
	q.T1.Visit(p)
	q.Ty.Visit(p)
	q.T2.Visit(p)
	if q.As != nil {
		q.As.Visit(p)
		q.T3.Visit(p)
		q.TraitPath.Visit(p)
		q.T4.Visit(p)
	}
	q.Gt.Visit(p)
}

// QPath is a fully qualified path: `<Ty as Trait>::segment::rest`.
type QPath struct {
	QSelf      QSelf
	T1         Trivia
	ColonColon ColonColonTok
	T2         Trivia
	Path       Path
}

func (q QPath) Print(dest *strings.Builder) {
	q.QSelf.Print(dest)
	q.T1.Print(dest)
	q.ColonColon.Print(dest)
	q.T2.Print(dest)
	q.Path.Print(dest)
}

func (q *QPath) Visit(p Pass) { p.VisitQPath(p, q) }

func (q *QPath) Walk(p Pass) {
	q.QSelf.Visit(p)
	q.T1.Visit(p)
	q.ColonColon.Visit(p)
	q.T2.Visit(p)
	q.Path.Visit(p)
}
