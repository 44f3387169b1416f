package syntax

import "strings"

// TriviumKind discriminates the three byte runs that can occur between
// tokens without affecting their meaning.
type TriviumKind uint8

const (
	// Whitespace is a run of space, tab, or newline characters.
	Whitespace TriviumKind = iota
	// LineComment is a "//..." run up to (not including) the newline.
	LineComment
	// BlockComment is a "/*...*/" run, which may itself span lines.
	BlockComment
)

// Trivium is one whitespace-or-comment run, carrying its verbatim lexeme.
// Concatenating a Trivia's trivium lexemes in order reproduces exactly the
// inter-token byte run the lexer split them from.
type Trivium struct {
	Kind   TriviumKind
	Lexeme string
}

func singleSpaceTrivium() Trivium {
	return Trivium{Kind: Whitespace, Lexeme: " "}
}

// Print appends the trivium's verbatim lexeme to dest.
func (t Trivium) Print(dest *strings.Builder) {
	dest.WriteString(t.Lexeme)
}

// IsMultilineBlockComment reports whether this trivium is a block comment
// whose lexeme spans more than one line; the Spaces pass leaves trivia
// containing one of these untouched rather than collapsing it.
func (t Trivium) IsMultilineBlockComment() bool {
	return t.Kind == BlockComment && strings.ContainsAny(t.Lexeme, "\n\r")
}

// Trivia is an ordered, possibly empty sequence of trivia runs sitting
// between two tokens.
type Trivia struct {
	list []Trivium
}

// NewTrivia builds a Trivia from a slice of trivium, taking ownership of it.
func NewTrivia(list []Trivium) Trivia {
	return Trivia{list: list}
}

// SingleSpace returns a Trivia holding exactly one space character.
func SingleSpace() Trivia {
	return Trivia{list: []Trivium{singleSpaceTrivium()}}
}

// IsEmpty reports whether this Trivia contains no trivium.
func (t Trivia) IsEmpty() bool {
	return len(t.list) == 0
}

// Len returns the number of trivium runs (not bytes) in this Trivia.
func (t Trivia) Len() int {
	return len(t.list)
}

// Push appends one trivium run.
func (t *Trivia) Push(x Trivium) {
	t.list = append(t.list, x)
}

// Last returns the final trivium and true, or the zero value and false if
// this Trivia is empty.
func (t Trivia) Last() (Trivium, bool) {
	if len(t.list) == 0 {
		return Trivium{}, false
	}
	return t.list[len(t.list)-1], true
}

// All returns the trivium runs in source order. Callers must not mutate
// the returned slice.
func (t Trivia) All() []Trivium {
	return t.list
}

// Extend appends another Trivia's runs after this one's.
func (t *Trivia) Extend(other Trivia) {
	t.list = append(t.list, other.list...)
}

// Take resets t to empty and returns its previous contents.
func (t *Trivia) Take() Trivia {
	old := *t
	*t = Trivia{}
	return old
}

// TrimWhitespace returns a copy with leading and trailing Whitespace runs
// removed; interior comments (and the whitespace between them) are kept.
func (t Trivia) TrimWhitespace() Trivia {
	lo, hi := 0, len(t.list)
	for lo < hi && t.list[lo].Kind == Whitespace {
		lo++
	}
	for hi > lo && t.list[hi-1].Kind == Whitespace {
		hi--
	}
	out := make([]Trivium, hi-lo)
	copy(out, t.list[lo:hi])
	return Trivia{list: out}
}

// Print appends every trivium's verbatim lexeme, in order, to dest.
func (t Trivia) Print(dest *strings.Builder) {
	for _, x := range t.list {
		x.Print(dest)
	}
}

// Visit reports this trivia run to p.VisitTrivia. Trivia has no children.
func (t Trivia) Visit(p Pass) { p.VisitTrivia(p, t) }

func (t Trivia) clone() Trivia {
	out := make([]Trivium, len(t.list))
	copy(out, t.list)
	return Trivia{list: out}
}

// TriviaN is like Trivia but is statically known to be nonempty: it models
// slots where the grammar requires at least one separating byte (e.g.
// between two keywords that would otherwise fuse into one lexeme). The
// grammar structs in this package hold plain Trivia in every slot.
type TriviaN struct {
	inner Trivia
}

// NewTriviaN wraps t, panicking if t is empty.
func NewTriviaN(t Trivia) TriviaN {
	if t.IsEmpty() {
		panic("syntax: TriviaN constructed from empty Trivia")
	}
	return TriviaN{inner: t}
}

// SingleSpaceN returns a TriviaN holding exactly one space character.
func SingleSpaceN() TriviaN {
	return TriviaN{inner: SingleSpace()}
}

// Trivia exposes the underlying, possibly-further-mutated trivia.
func (t TriviaN) Trivia() Trivia {
	return t.inner
}

// Take resets t to a single space and returns its previous contents.
func (t *TriviaN) Take() TriviaN {
	old := *t
	t.inner = SingleSpace()
	return old
}

// Print appends the underlying trivia's verbatim lexemes to dest.
func (t TriviaN) Print(dest *strings.Builder) {
	t.inner.Print(dest)
}

// Visit reports this trivia run to p.VisitTriviaN. TriviaN has no children.
func (t TriviaN) Visit(p Pass) { p.VisitTriviaN(p, t) }
