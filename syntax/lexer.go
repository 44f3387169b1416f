package syntax

// rawKind discriminates the shapes the byte-level lexer recognizes before
// the glue layer (see glue.go) assembles them into token trees.
type rawKind uint8

const (
	rawEOF rawKind = iota
	rawIdent
	rawRawIdent
	rawLifetime
	rawRawLifetime
	rawLiteral
	rawPunct
	rawOpen
	rawClose
	rawFrontmatter
)

// rawToken is one non-trivia lexeme the byte scanner has classified.
type rawToken struct {
	Kind        rawKind
	Text        string
	LitKind     LiteralKind // valid when Kind == rawLiteral
	SuffixStart int         // byte offset into Text where the suffix starts; valid when Kind == rawLiteral
	Delim       Delimiter   // valid when Kind is rawOpen or rawClose
}

// Lexer turns source bytes into a stream of (leading trivia, raw token)
// pairs. It never looks past the token it is currently producing, so a
// Clone (O(1), since Scanner.Clone is a value copy) gives the glue layer
// unlimited lookahead without re-lexing from the start.
type Lexer struct {
	s             *Scanner
	frontmatterOK bool
}

// NewLexer creates a lexer positioned at the start of text. Frontmatter
// may only be recognized by the first call to Next on a fresh lexer.
func NewLexer(text string) *Lexer {
	return &Lexer{s: NewScanner(text), frontmatterOK: true}
}

// Clone returns an independent lexer at the same position; advancing the
// clone does not affect the receiver.
func (l *Lexer) Clone() *Lexer {
	return &Lexer{s: l.s.Clone(), frontmatterOK: l.frontmatterOK}
}

// Cursor returns the current byte offset.
func (l *Lexer) Cursor() int { return l.s.Cursor() }

// Next consumes and returns the leading trivia run (whitespace and
// comments) immediately preceding the next raw token, plus that token
// itself. At end of input the first call returns the trivia before EOF
// with a rawEOF token, and every later call an empty Trivia with rawEOF;
// EOF is a sticky terminal state.
func (l *Lexer) Next() (Trivia, rawToken) {
	lead := l.scanTrivia()
	return lead, l.scanToken()
}

func (l *Lexer) scanTrivia() Trivia {
	var t Trivia
	if l.frontmatterOK && l.s.Cursor() == 0 && l.s.At("---") {
		if fm, ok := l.scanFrontmatter(); ok {
			t.Push(Trivium{Kind: Whitespace, Lexeme: fm})
		}
	}
	l.frontmatterOK = false
	for {
		start := l.s.Cursor()
		switch {
		case l.s.AtRune(IsWhitespace):
			ws := l.s.EatWhile(IsWhitespace)
			t.Push(Trivium{Kind: Whitespace, Lexeme: ws})
		case l.s.At("//"):
			l.s.Advance(2)
			l.s.EatUntil(IsNewline)
			t.Push(Trivium{Kind: LineComment, Lexeme: l.s.From(start)})
		case l.s.At("/*"):
			l.scanBlockComment(start)
			t.Push(Trivium{Kind: BlockComment, Lexeme: l.s.From(start)})
		default:
			return t
		}
	}
}

// scanFrontmatter consumes a leading "---\n ... \n---" run at the very
// start of the file. The subject grammar has no construct that relies on
// frontmatter; this keeps the "only at start of file" contract from §4.1
// as a stable extension point without inventing syntax the language does
// not have.
func (l *Lexer) scanFrontmatter() (string, bool) {
	start := l.s.Cursor()
	snap := l.s.Clone()
	l.s.Advance(3)
	if !l.s.EatNewline() {
		*l.s = *snap
		return "", false
	}
	for !l.s.Done() {
		if l.s.At("---") {
			l.s.Advance(3)
			return l.s.From(start), true
		}
		l.s.Eat()
	}
	*l.s = *snap
	return "", false
}

func (l *Lexer) scanBlockComment(start int) {
	l.s.Advance(2)
	depth := 1
	for depth > 0 {
		if l.s.Done() {
			unclosedPanic(start, "/*")
		}
		switch {
		case l.s.At("/*"):
			l.s.Advance(2)
			depth++
		case l.s.At("*/"):
			l.s.Advance(2)
			depth--
		default:
			l.s.Eat()
		}
	}
}

func (l *Lexer) scanToken() rawToken {
	start := l.s.Cursor()
	if l.s.Done() {
		return rawToken{Kind: rawEOF}
	}
	c := l.s.Peek()

	switch c {
	case '{':
		l.s.Eat()
		return rawToken{Kind: rawOpen, Text: "{", Delim: DelimBrace}
	case '}':
		l.s.Eat()
		return rawToken{Kind: rawClose, Text: "}", Delim: DelimBrace}
	case '[':
		l.s.Eat()
		return rawToken{Kind: rawOpen, Text: "[", Delim: DelimBracket}
	case ']':
		l.s.Eat()
		return rawToken{Kind: rawClose, Text: "]", Delim: DelimBracket}
	case '(':
		l.s.Eat()
		return rawToken{Kind: rawOpen, Text: "(", Delim: DelimParen}
	case ')':
		l.s.Eat()
		return rawToken{Kind: rawClose, Text: ")", Delim: DelimParen}
	}

	if c == '\'' {
		return l.scanLifetime(start)
	}
	if c == '"' {
		return l.scanString(start)
	}
	if IsDigit(c) {
		return l.scanNumber(start)
	}
	if c == 'r' && l.s.Scout(1) == '#' {
		if tok, ok := l.tryRawIdent(start); ok {
			return tok
		}
		if tok, ok := l.tryRawString(start); ok {
			return tok
		}
	}
	if c == 'r' && l.s.Scout(1) == '"' {
		if tok, ok := l.tryRawString(start); ok {
			return tok
		}
	}
	if c == 'r' && l.s.Scout(1) == '\'' {
		if tok, ok := l.tryRawLifetime(start); ok {
			return tok
		}
	}
	if IsIdentStart(c) {
		l.s.EatWhile(IsIdentContinue)
		return rawToken{Kind: rawIdent, Text: l.s.From(start)}
	}

	return l.scanPunct(start, c)
}

func (l *Lexer) scanLifetime(start int) rawToken {
	l.s.Eat() // '
	l.s.EatWhile(IsIdentContinue)
	return rawToken{Kind: rawLifetime, Text: l.s.From(start)}
}

// tryRawIdent recognizes `r#ident`, the escape hatch for using a keyword
// as an identifier. It must run before tryRawString, since `r#"..."` and
// `r#ident` share the same two-character prefix and only diverge on
// whether an identifier-start or a quote (or more hashes) follows.
func (l *Lexer) tryRawIdent(start int) (rawToken, bool) {
	snap := l.s.Clone()
	l.s.Eat() // r
	l.s.Eat() // #
	if !l.s.AtRune(IsIdentStart) {
		*l.s = *snap
		return rawToken{}, false
	}
	l.s.EatWhile(IsIdentContinue)
	return rawToken{Kind: rawRawIdent, Text: l.s.From(start)}, true
}

func (l *Lexer) tryRawLifetime(start int) (rawToken, bool) {
	snap := l.s.Clone()
	l.s.Eat() // r
	l.s.Eat() // '
	if !l.s.AtRune(IsIdentStart) {
		*l.s = *snap
		return rawToken{}, false
	}
	l.s.EatWhile(IsIdentContinue)
	return rawToken{Kind: rawRawLifetime, Text: l.s.From(start)}, true
}

func (l *Lexer) tryRawString(start int) (rawToken, bool) {
	snap := l.s.Clone()
	l.s.Eat() // r
	hashes := 0
	for l.s.EatIf('#') {
		hashes++
	}
	if !l.s.EatIf('"') {
		*l.s = *snap
		return rawToken{}, false
	}
	closerBytes := []byte{'"'}
	for i := 0; i < hashes; i++ {
		closerBytes = append(closerBytes, '#')
	}
	closer := string(closerBytes)
	for {
		if l.s.Done() {
			unclosedPanic(start, "r\"")
		}
		if l.s.At(closer) {
			l.s.Advance(len(closer))
			break
		}
		l.s.Eat()
	}
	text := l.s.From(start)
	return rawToken{Kind: rawLiteral, Text: text, LitKind: LitOther, SuffixStart: len(text)}, true
}

func (l *Lexer) scanString(start int) rawToken {
	l.s.Eat() // opening quote
	escaped := false
	l.s.EatUntil(func(c rune) bool {
		stop := c == '"' && !escaped
		escaped = c == '\\' && !escaped
		return stop
	})
	if !l.s.EatIf('"') {
		unclosedPanic(start, "\"")
	}
	text := l.s.From(start)
	return rawToken{Kind: rawLiteral, Text: text, LitKind: LitOther, SuffixStart: len(text)}
}

func isHexDigit(r rune) bool {
	return IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (l *Lexer) scanNumber(start int) rawToken {
	first := l.s.Eat()
	isFloat := false
	if first == '0' && (l.s.AtAny('b', 'o', 'x')) {
		base := l.s.Eat()
		switch base {
		case 'x':
			l.s.EatWhile(isHexDigit)
		default:
			l.s.EatWhile(IsDigit)
		}
	} else {
		l.s.EatWhile(IsDigit)
		if l.s.Peek() == '.' && IsDigit(l.s.Scout(1)) {
			isFloat = true
			l.s.Eat()
			l.s.EatWhile(IsDigit)
		} else if l.s.Peek() == '.' && !l.s.At("..") && !l.s.AtRune(func(r rune) bool {
			return IsIdentStart(r)
		}) {
			snap := l.s.Clone()
			l.s.Eat()
			if l.s.AtRune(IsIdentStart) {
				*l.s = *snap
			} else {
				isFloat = true
			}
		}
		if l.s.AtAny('e', 'E') {
			snap := l.s.Clone()
			l.s.Eat()
			l.s.EatIf('+')
			l.s.EatIf('-')
			if l.s.AtRune(IsDigit) {
				l.s.EatWhile(IsDigit)
				isFloat = true
			} else {
				*l.s = *snap
			}
		}
	}
	numEnd := l.s.Cursor()
	if l.s.AtRune(IsIdentStart) {
		l.s.EatWhile(IsIdentContinue)
	}
	text := l.s.From(start)
	kind := LitInt
	if isFloat {
		kind = LitFloat
	}
	return rawToken{Kind: rawLiteral, Text: text, LitKind: kind, SuffixStart: numEnd - start}
}

// punctChars lists every single-character punctuator the raw lexer can
// produce; the glue layer (§4.4) is solely responsible for fusing
// adjacent ones into the compound forms.
const punctChars = ";,.@#~?:$=!<>-&|+*/^%"

func (l *Lexer) scanPunct(start int, c rune) rawToken {
	if !runeIn(c, punctChars) {
		lexPanic(start, "unrecognized character")
	}
	l.s.Eat()
	return rawToken{Kind: rawPunct, Text: l.s.From(start)}
}

func runeIn(c rune, set string) bool {
	for _, r := range set {
		if r == c {
			return true
		}
	}
	return false
}
