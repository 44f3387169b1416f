package syntax

// Parse builds the lossless concrete syntax tree for an entire source
// file: printing its result reproduces src byte for byte.
func Parse(src string, opts ...ParseOption) File {
	cfg := newParseConfig(opts)
	cfg.logger.Debug("entering glue layer", "bytes", len(src))
	p := NewParser(src)
	m := p.parseModule()
	m.Tlast = p.lead
	cfg.logger.Debug("parsed module", "items", m.Items.Len())
	return File{Module: *m}
}

// ParseTrivia scans src as a single leading-trivia run, with no token
// expected to follow. It exists for exercising the trivia grammar (and
// its corpus fixtures) independent of the rest of the parser.
func ParseTrivia(src string) Trivia {
	l := NewLexer(src)
	return l.scanTrivia()
}
