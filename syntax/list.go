package syntax

import "strings"

// listElem is one element of a List after the first: the trivia leading
// up to it, paired with the element itself.
type listElem[T Elem] struct {
	Lead Trivia
	Val  T
}

// List is an ordered sequence of T with no separator between elements
// (e.g. a sequence of items in a module body, each already terminated by
// its own trailing punctuation or block). The list itself carries no
// leading trivia of its own — that belongs to whatever precedes it — only
// the trivia between its elements, plus a trailing run after the last one.
type List[T Elem] struct {
	first    *T
	rest     []listElem[T]
	trailing Trivia
}

// NewList builds an empty list.
func NewList[T Elem]() List[T] {
	return List[T]{}
}

// Single builds a one-element list.
func Single[T Elem](v T) List[T] {
	return List[T]{first: &v}
}

// Push appends v, preceded by lead. Pushing before any element has been
// added requires lead to be empty, since an empty list has no established
// position for trivia to attach to.
func (l *List[T]) Push(lead Trivia, v T) {
	if l.first == nil {
		if !lead.IsEmpty() {
			panic("syntax: List.Push with non-empty trivia before first element")
		}
		l.first = &v
		return
	}
	l.rest = append(l.rest, listElem[T]{Lead: lead, Val: v})
}

// SetTrailing installs the trivia following the list's last element (or,
// for an empty list, all of the trivia the caller collected while
// scanning for a first element that never came).
func (l *List[T]) SetTrailing(t Trivia) {
	l.trailing = t
}

// Trailing returns the trivia following the list's last element.
func (l List[T]) Trailing() Trivia {
	return l.trailing
}

// IsEmpty reports whether the list holds no elements.
func (l List[T]) IsEmpty() bool {
	return l.first == nil
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	if l.first == nil {
		return 0
	}
	return 1 + len(l.rest)
}

// Values returns the elements in order, discarding inter-element trivia.
func (l List[T]) Values() []T {
	if l.first == nil {
		return nil
	}
	out := make([]T, 0, l.Len())
	out = append(out, *l.first)
	for _, e := range l.rest {
		out = append(out, e.Val)
	}
	return out
}

func (l List[T]) Print(dest *strings.Builder) {
	if l.first != nil {
		(*l.first).Print(dest)
		for _, e := range l.rest {
			e.Lead.Print(dest)
			e.Val.Print(dest)
		}
	}
	l.trailing.Print(dest)
}

// ShapeTrivia rewrites the inter-element trivia this list owns directly
// via shape (the trailing run is left as is), then visits every element with p so that a
// mutating pass (Minify, the spacing pass) reaches trivia nested inside
// the elements themselves through its own overridden hooks. This is the
// seam a Pass otherwise has no way to reach: List has no dedicated
// Visit hook of its own, so its private inter-element trivia is
// unreachable except through a method defined here, in-package.
func (l *List[T]) ShapeTrivia(p Pass, shape func(Trivia) Trivia) {
	if l.first == nil {
		// An empty list's trailing is whatever was scanned while looking
		// for a first element that never came — always empty in practice,
		// since every empty-list producer leaves it untouched — and that
		// span is already owned by a sibling field (the enclosing node's
		// own lead, or a tail expression's own lead). Reshaping it here
		// would pad a gap that isn't really this list's to pad.
		return
	}
	(*l.first).Visit(p)
	for i := range l.rest {
		l.rest[i].Lead = shape(l.rest[i].Lead)
		l.rest[i].Val.Visit(p)
	}
	// As above: no caller of Push ever calls SetTrailing on a plain List
	// (unlike SeparatedList, which genuinely uses it for a trailing
	// separator) — the span after this list's last element always lives
	// in a sibling field (Module.Tlast, a block's TailLead, an item's own
	// T1/T2 after the attribute list). trailing stays Trivia{} either way,
	// so reshaping it here would only pad a gap this list doesn't own.
}

func (l List[T]) Visit(p Pass) {
	if l.first != nil {
		(*l.first).Visit(p)
		for _, e := range l.rest {
			e.Lead.Visit(p)
			e.Val.Visit(p)
		}
	}
	l.trailing.Visit(p)
}
