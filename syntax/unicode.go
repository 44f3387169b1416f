package syntax

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// identStart is the merged table of categories allowed to start an
// identifier: letters and letter-numbers (XID_Start, minus the underscore
// handled separately below).
var identStart = rangetable.Merge(unicode.L, unicode.Nl)

// identContinue additionally allows combining marks, digits, and connector
// punctuation (XID_Continue, minus the underscore handled separately).
var identContinue = rangetable.Merge(unicode.L, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)

const (
	nextLine        = ''
	lineSeparator   = ' '
	paragraphSepar  = ' '
)

// IsNewline reports whether c is one of the newline characters the lexer
// treats as ending a line for trivia purposes.
func IsNewline(c rune) bool {
	switch c {
	case '\n', '\x0B', '\x0C', '\r':
		return true
	case nextLine, lineSeparator, paragraphSepar:
		return true
	}
	return false
}

// IsWhitespace reports whether c is whitespace the lexer folds into a
// Whitespace trivium.
func IsWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || IsNewline(c)
}

// IsIdentStart reports whether c can start an identifier: Unicode XID_Start
// or underscore.
func IsIdentStart(c rune) bool {
	return c == '_' || unicode.Is(identStart, c)
}

// IsIdentContinue reports whether c can continue an identifier: Unicode
// XID_Continue or underscore.
func IsIdentContinue(c rune) bool {
	return c == '_' || unicode.Is(identContinue, c)
}

// IsIdent reports whether s is a well-formed identifier lexeme.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	first := true
	for _, r := range s {
		if first {
			if !IsIdentStart(r) {
				return false
			}
			first = false
			continue
		}
		if !IsIdentContinue(r) {
			return false
		}
	}
	return true
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
