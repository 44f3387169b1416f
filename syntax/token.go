package syntax

import "strings"

// Printer is implemented by every value that can append its byte-exact
// representation to an output buffer: tokens, trivia, identifiers,
// literals, and every CST node and container.
type Printer interface {
	Print(dest *strings.Builder)
}

// Node is implemented by every CST value a Pass can visit.
type Node interface {
	Visit(p Pass)
}

// Elem is the constraint satisfied by every value a generic container
// (List, SeparatedList, Braces, Brackets, Parens, Delimited) can hold:
// it must know how to print itself and how to accept a Pass.
type Elem interface {
	Printer
	Node
}

// Ident is a source identifier. Raw identifiers (`r#fn`) are represented by
// the same type; their leading `r#` is part of Name so printing round-trips
// it without special-casing.
type Ident struct {
	Name string
}

func (i Ident) Print(dest *strings.Builder) { dest.WriteString(i.Name) }
func (i Ident) Visit(p Pass)                { p.VisitIdent(p, &i) }

// LiteralKind discriminates the three literal shapes the glue layer
// recognizes without fully parsing their payload.
type LiteralKind uint8

const (
	// LitInt is an integer literal (decimal, hex, octal, or binary).
	LitInt LiteralKind = iota
	// LitFloat is a floating-point literal.
	LitFloat
	// LitOther covers string, char, and byte-string literals.
	LitOther
)

// Literal is a literal token: its Symbol is the payload up to the start of
// the type suffix, and Suffix is the (possibly empty) suffix itself — so
// `1.5f32` prints as Symbol "1.5" followed by Suffix "f32".
type Literal struct {
	Kind   LiteralKind
	Symbol string
	Suffix string
}

func (l Literal) Print(dest *strings.Builder) {
	dest.WriteString(l.Symbol)
	dest.WriteString(l.Suffix)
}
func (l Literal) Visit(p Pass) { p.VisitLiteral(p, &l) }

// Keyword and punctuator tokens.
//
// Every keyword and multi-character punctuator is its own zero-sized type
// so that a CST node field's Go type alone pins down which literal bytes
// it contributes to a print — the same role Token![mod] etc. play in the
// sourcery crate this module is translated from. Each type's Print method
// is a one-line constant write; each Visit reports its own fixed byte
// length to the visiting pass (see Pass.VisitToken), mirroring how the
// crate's `define_tokens!` macro derives both from the token's spelling.

type ModKw struct{}

func (ModKw) Print(dest *strings.Builder) { dest.WriteString("mod") }
func (ModKw) Visit(p Pass)                { p.VisitToken(3) }

type PubKw struct{}

func (PubKw) Print(dest *strings.Builder) { dest.WriteString("pub") }
func (PubKw) Visit(p Pass)                { p.VisitToken(3) }

type InKw struct{}

func (InKw) Print(dest *strings.Builder) { dest.WriteString("in") }
func (InKw) Visit(p Pass)                { p.VisitToken(2) }

type TypeKw struct{}

func (TypeKw) Print(dest *strings.Builder) { dest.WriteString("type") }
func (TypeKw) Visit(p Pass)                { p.VisitToken(4) }

type FnKw struct{}

func (FnKw) Print(dest *strings.Builder) { dest.WriteString("fn") }
func (FnKw) Visit(p Pass)                { p.VisitToken(2) }

type ConstKw struct{}

func (ConstKw) Print(dest *strings.Builder) { dest.WriteString("const") }
func (ConstKw) Visit(p Pass)                { p.VisitToken(5) }

type StaticKw struct{}

func (StaticKw) Print(dest *strings.Builder) { dest.WriteString("static") }
func (StaticKw) Visit(p Pass)                { p.VisitToken(6) }

type UnsafeKw struct{}

func (UnsafeKw) Print(dest *strings.Builder) { dest.WriteString("unsafe") }
func (UnsafeKw) Visit(p Pass)                { p.VisitToken(6) }

type AsyncKw struct{}

func (AsyncKw) Print(dest *strings.Builder) { dest.WriteString("async") }
func (AsyncKw) Visit(p Pass)                { p.VisitToken(5) }

type TryKw struct{}

func (TryKw) Print(dest *strings.Builder) { dest.WriteString("try") }
func (TryKw) Visit(p Pass)                { p.VisitToken(3) }

type MoveKw struct{}

func (MoveKw) Print(dest *strings.Builder) { dest.WriteString("move") }
func (MoveKw) Visit(p Pass)                { p.VisitToken(4) }

type AsKw struct{}

func (AsKw) Print(dest *strings.Builder) { dest.WriteString("as") }
func (AsKw) Visit(p Pass)                { p.VisitToken(2) }

type IfKw struct{}

func (IfKw) Print(dest *strings.Builder) { dest.WriteString("if") }
func (IfKw) Visit(p Pass)                { p.VisitToken(2) }

type ElseKw struct{}

func (ElseKw) Print(dest *strings.Builder) { dest.WriteString("else") }
func (ElseKw) Visit(p Pass)                { p.VisitToken(4) }

type WhileKw struct{}

func (WhileKw) Print(dest *strings.Builder) { dest.WriteString("while") }
func (WhileKw) Visit(p Pass)                { p.VisitToken(5) }

type LoopKw struct{}

func (LoopKw) Print(dest *strings.Builder) { dest.WriteString("loop") }
func (LoopKw) Visit(p Pass)                { p.VisitToken(4) }

type ForKw struct{}

func (ForKw) Print(dest *strings.Builder) { dest.WriteString("for") }
func (ForKw) Visit(p Pass)                { p.VisitToken(3) }

type MatchKw struct{}

func (MatchKw) Print(dest *strings.Builder) { dest.WriteString("match") }
func (MatchKw) Visit(p Pass)                { p.VisitToken(5) }

type BreakKw struct{}

func (BreakKw) Print(dest *strings.Builder) { dest.WriteString("break") }
func (BreakKw) Visit(p Pass)                { p.VisitToken(5) }

type ContinueKw struct{}

func (ContinueKw) Print(dest *strings.Builder) { dest.WriteString("continue") }
func (ContinueKw) Visit(p Pass)                { p.VisitToken(8) }

type ReturnKw struct{}

func (ReturnKw) Print(dest *strings.Builder) { dest.WriteString("return") }
func (ReturnKw) Visit(p Pass)                { p.VisitToken(6) }

type YieldKw struct{}

func (YieldKw) Print(dest *strings.Builder) { dest.WriteString("yield") }
func (YieldKw) Visit(p Pass)                { p.VisitToken(5) }

type BecomeKw struct{}

func (BecomeKw) Print(dest *strings.Builder) { dest.WriteString("become") }
func (BecomeKw) Visit(p Pass)                { p.VisitToken(6) }

type LetKw struct{}

func (LetKw) Print(dest *strings.Builder) { dest.WriteString("let") }
func (LetKw) Visit(p Pass)                { p.VisitToken(3) }

type MutKw struct{}

func (MutKw) Print(dest *strings.Builder) { dest.WriteString("mut") }
func (MutKw) Visit(p Pass)                { p.VisitToken(3) }

type SemiTok struct{}

func (SemiTok) Print(dest *strings.Builder) { dest.WriteString(";") }
func (SemiTok) Visit(p Pass)                { p.VisitToken(1) }

type CommaTok struct{}

func (CommaTok) Print(dest *strings.Builder) { dest.WriteString(",") }
func (CommaTok) Visit(p Pass)                { p.VisitToken(1) }

type DotTok struct{}

func (DotTok) Print(dest *strings.Builder) { dest.WriteString(".") }
func (DotTok) Visit(p Pass)                { p.VisitToken(1) }

type DotDotTok struct{}

func (DotDotTok) Print(dest *strings.Builder) { dest.WriteString("..") }
func (DotDotTok) Visit(p Pass)                { p.VisitToken(2) }

type DotDotDotTok struct{}

func (DotDotDotTok) Print(dest *strings.Builder) { dest.WriteString("...") }
func (DotDotDotTok) Visit(p Pass)                { p.VisitToken(3) }

type DotDotEqTok struct{}

func (DotDotEqTok) Print(dest *strings.Builder) { dest.WriteString("..=") }
func (DotDotEqTok) Visit(p Pass)                { p.VisitToken(3) }

type AtTok struct{}

func (AtTok) Print(dest *strings.Builder) { dest.WriteString("@") }
func (AtTok) Visit(p Pass)                { p.VisitToken(1) }

type PoundTok struct{}

func (PoundTok) Print(dest *strings.Builder) { dest.WriteString("#") }
func (PoundTok) Visit(p Pass)                { p.VisitToken(1) }

type TildeTok struct{}

func (TildeTok) Print(dest *strings.Builder) { dest.WriteString("~") }
func (TildeTok) Visit(p Pass)                { p.VisitToken(1) }

type QuestionTok struct{}

func (QuestionTok) Print(dest *strings.Builder) { dest.WriteString("?") }
func (QuestionTok) Visit(p Pass)                { p.VisitToken(1) }

type ColonTok struct{}

func (ColonTok) Print(dest *strings.Builder) { dest.WriteString(":") }
func (ColonTok) Visit(p Pass)                { p.VisitToken(1) }

type ColonColonTok struct{}

func (ColonColonTok) Print(dest *strings.Builder) { dest.WriteString("::") }
func (ColonColonTok) Visit(p Pass)                { p.VisitToken(2) }

type DollarTok struct{}

func (DollarTok) Print(dest *strings.Builder) { dest.WriteString("$") }
func (DollarTok) Visit(p Pass)                { p.VisitToken(1) }

type EqTok struct{}

func (EqTok) Print(dest *strings.Builder) { dest.WriteString("=") }
func (EqTok) Visit(p Pass)                { p.VisitToken(1) }

type EqEqTok struct{}

func (EqEqTok) Print(dest *strings.Builder) { dest.WriteString("==") }
func (EqEqTok) Visit(p Pass)                { p.VisitToken(2) }

type BangTok struct{}

func (BangTok) Print(dest *strings.Builder) { dest.WriteString("!") }
func (BangTok) Visit(p Pass)                { p.VisitToken(1) }

type BangEqTok struct{}

func (BangEqTok) Print(dest *strings.Builder) { dest.WriteString("!=") }
func (BangEqTok) Visit(p Pass)                { p.VisitToken(2) }

type LtTok struct{}

func (LtTok) Print(dest *strings.Builder) { dest.WriteString("<") }
func (LtTok) Visit(p Pass)                { p.VisitToken(1) }

type LtEqTok struct{}

func (LtEqTok) Print(dest *strings.Builder) { dest.WriteString("<=") }
func (LtEqTok) Visit(p Pass)                { p.VisitToken(2) }

type LtLtTok struct{}

func (LtLtTok) Print(dest *strings.Builder) { dest.WriteString("<<") }
func (LtLtTok) Visit(p Pass)                { p.VisitToken(2) }

type LtLtEqTok struct{}

func (LtLtEqTok) Print(dest *strings.Builder) { dest.WriteString("<<=") }
func (LtLtEqTok) Visit(p Pass)                { p.VisitToken(3) }

type GtTok struct{}

func (GtTok) Print(dest *strings.Builder) { dest.WriteString(">") }
func (GtTok) Visit(p Pass)                { p.VisitToken(1) }

type GtEqTok struct{}

func (GtEqTok) Print(dest *strings.Builder) { dest.WriteString(">=") }
func (GtEqTok) Visit(p Pass)                { p.VisitToken(2) }

type GtGtTok struct{}

func (GtGtTok) Print(dest *strings.Builder) { dest.WriteString(">>") }
func (GtGtTok) Visit(p Pass)                { p.VisitToken(2) }

type GtGtEqTok struct{}

func (GtGtEqTok) Print(dest *strings.Builder) { dest.WriteString(">>=") }
func (GtGtEqTok) Visit(p Pass)                { p.VisitToken(3) }

type MinusTok struct{}

func (MinusTok) Print(dest *strings.Builder) { dest.WriteString("-") }
func (MinusTok) Visit(p Pass)                { p.VisitToken(1) }

type MinusEqTok struct{}

func (MinusEqTok) Print(dest *strings.Builder) { dest.WriteString("-=") }
func (MinusEqTok) Visit(p Pass)                { p.VisitToken(2) }

type AndTok struct{}

func (AndTok) Print(dest *strings.Builder) { dest.WriteString("&") }
func (AndTok) Visit(p Pass)                { p.VisitToken(1) }

type AndAndTok struct{}

func (AndAndTok) Print(dest *strings.Builder) { dest.WriteString("&&") }
func (AndAndTok) Visit(p Pass)                { p.VisitToken(2) }

type AndEqTok struct{}

func (AndEqTok) Print(dest *strings.Builder) { dest.WriteString("&=") }
func (AndEqTok) Visit(p Pass)                { p.VisitToken(2) }

type OrTok struct{}

func (OrTok) Print(dest *strings.Builder) { dest.WriteString("|") }
func (OrTok) Visit(p Pass)                { p.VisitToken(1) }

type OrOrTok struct{}

func (OrOrTok) Print(dest *strings.Builder) { dest.WriteString("||") }
func (OrOrTok) Visit(p Pass)                { p.VisitToken(2) }

type OrEqTok struct{}

func (OrEqTok) Print(dest *strings.Builder) { dest.WriteString("|=") }
func (OrEqTok) Visit(p Pass)                { p.VisitToken(2) }

type PlusTok struct{}

func (PlusTok) Print(dest *strings.Builder) { dest.WriteString("+") }
func (PlusTok) Visit(p Pass)                { p.VisitToken(1) }

type PlusEqTok struct{}

func (PlusEqTok) Print(dest *strings.Builder) { dest.WriteString("+=") }
func (PlusEqTok) Visit(p Pass)                { p.VisitToken(2) }

type StarTok struct{}

func (StarTok) Print(dest *strings.Builder) { dest.WriteString("*") }
func (StarTok) Visit(p Pass)                { p.VisitToken(1) }

type StarEqTok struct{}

func (StarEqTok) Print(dest *strings.Builder) { dest.WriteString("*=") }
func (StarEqTok) Visit(p Pass)                { p.VisitToken(2) }

type SlashTok struct{}

func (SlashTok) Print(dest *strings.Builder) { dest.WriteString("/") }
func (SlashTok) Visit(p Pass)                { p.VisitToken(1) }

type SlashEqTok struct{}

func (SlashEqTok) Print(dest *strings.Builder) { dest.WriteString("/=") }
func (SlashEqTok) Visit(p Pass)                { p.VisitToken(2) }

type CaretTok struct{}

func (CaretTok) Print(dest *strings.Builder) { dest.WriteString("^") }
func (CaretTok) Visit(p Pass)                { p.VisitToken(1) }

type CaretEqTok struct{}

func (CaretEqTok) Print(dest *strings.Builder) { dest.WriteString("^=") }
func (CaretEqTok) Visit(p Pass)                { p.VisitToken(2) }

type PercentTok struct{}

func (PercentTok) Print(dest *strings.Builder) { dest.WriteString("%") }
func (PercentTok) Visit(p Pass)                { p.VisitToken(1) }

type PercentEqTok struct{}

func (PercentEqTok) Print(dest *strings.Builder) { dest.WriteString("%=") }
func (PercentEqTok) Visit(p Pass)                { p.VisitToken(2) }

type RThinArrowTok struct{}

func (RThinArrowTok) Print(dest *strings.Builder) { dest.WriteString("->") }
func (RThinArrowTok) Visit(p Pass)                { p.VisitToken(2) }

type RFatArrowTok struct{}

func (RFatArrowTok) Print(dest *strings.Builder) { dest.WriteString("=>") }
func (RFatArrowTok) Visit(p Pass)                { p.VisitToken(2) }

type LThinArrowTok struct{}

func (LThinArrowTok) Print(dest *strings.Builder) { dest.WriteString("<-") }
func (LThinArrowTok) Visit(p Pass)                { p.VisitToken(2) }
