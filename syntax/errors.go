package syntax

import "fmt"

// LexError reports an invalid or unsupported byte sequence.
type LexError struct {
	Offset  int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at byte %d: %s", e.Offset, e.Message)
}

// UnclosedDelimiterError reports a delimiter opened without a matching
// closer before end of input.
type UnclosedDelimiterError struct {
	Offset int
	Open   string
}

func (e *UnclosedDelimiterError) Error() string {
	return fmt.Sprintf("unclosed delimiter %q opened at byte %d", e.Open, e.Offset)
}

// UnexpectedError reports that the parser required a specific token shape
// and found another.
type UnexpectedError struct {
	Offset   int
	Expected string
	Found    string
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected token at byte %d: expected %s, found %s", e.Offset, e.Expected, e.Found)
}

// NotYetImplementedError marks a production that is unreachable at steady
// state; it exists only as a placeholder during incremental development.
type NotYetImplementedError struct {
	What string
}

func (e *NotYetImplementedError) Error() string {
	return fmt.Sprintf("not yet implemented: %s", e.What)
}

func lexPanic(offset int, msg string) {
	panic(&LexError{Offset: offset, Message: msg})
}

func unclosedPanic(offset int, open string) {
	panic(&UnclosedDelimiterError{Offset: offset, Open: open})
}

func unexpectedPanic(offset int, expected, found string) {
	panic(&UnexpectedError{Offset: offset, Expected: expected, Found: found})
}

func nyiPanic(what string) {
	panic(&NotYetImplementedError{What: what})
}

// TryRecover runs f and converts any *LexError, *UnclosedDelimiterError,
// *UnexpectedError, or *NotYetImplementedError panic raised within it into
// a returned error. It is the "host-level fault boundary" callers who want
// error values instead of panics should install; the core parser itself
// always panics per the library's error-handling contract.
func TryRecover(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *LexError, *UnclosedDelimiterError, *UnexpectedError, *NotYetImplementedError:
				err = e.(error)
			default:
				panic(r)
			}
		}
	}()
	f()
	return nil
}

// TryParse is the ambient convenience wrapper around Parse for hosts
// that want an error return instead of a panic: it installs TryRecover
// around the call and returns the parsed File, or the zero File together
// with the error on failure. It does not change
// Parse's panic-first contract — it only offers the boundary §7 asks
// implementers to put at the edge of the library.
func TryParse(src string, opts ...ParseOption) (file File, err error) {
	err = TryRecover(func() {
		file = Parse(src, opts...)
	})
	return file, err
}

// TryParseToTokenStream is TryParse's counterpart for the token-stream-
// only entry point.
func TryParseToTokenStream(src string) (ts TokenStream, err error) {
	err = TryRecover(func() {
		ts = ParseToTokenStream(src)
	})
	return ts, err
}
