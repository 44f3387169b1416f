// Package syntax provides a lossless concrete-syntax-tree parser and
// printer for a curly-brace, expression-oriented systems language.
//
// The tree preserves every source byte, including whitespace and comments
// ("trivia"), so that printing a parsed tree reproduces the input exactly.
// A separate Spaces pass rewrites trivia to canonical spacing; the tree can
// then be printed again to yield formatted output.
package syntax
