package syntax

// shrinkSingleSpace collapses t to carry exactly one separating space
// around any block comments it holds, dropping all other whitespace and
// the space between two adjacent block comments down to a single byte.
// A t holding a line comment, or a block comment spanning more than one
// line, is returned unchanged: collapsing either would either delete a
// line comment's terminating newline (changing the program) or disturb a
// block comment's internal indentation.
func shrinkSingleSpace(t Trivia) Trivia {
	for _, tm := range t.All() {
		if tm.Kind == LineComment || tm.IsMultilineBlockComment() {
			return t
		}
	}
	var comments []Trivium
	for _, tm := range t.All() {
		if tm.Kind == BlockComment {
			comments = append(comments, tm)
		}
	}
	if len(comments) == 0 {
		return SingleSpace()
	}
	var out Trivia
	out.Push(singleSpaceTrivium())
	for i, c := range comments {
		if i > 0 {
			out.Push(singleSpaceTrivium())
		}
		out.Push(c)
	}
	out.Push(singleSpaceTrivium())
	return out
}

// shrinkNoSpace is shrinkSingleSpace with the leading and trailing space
// trimmed away, leaving any interior block comments still single-space
// separated from one another. It is the no-space counterpart used for
// slots where the style guide wants no byte at all between two tokens
// that happen to have no comment sitting between them.
func shrinkNoSpace(t Trivia) Trivia {
	return shrinkSingleSpace(t).TrimWhitespace()
}
