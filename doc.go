// Package mile is a generic tokenizer built from a small grammar of
// composable matching rules.
//
// A Rule tree describes lexical structure declaratively, from literals and
// character classes up through combinators over them. A Scanner drives the
// tree over a buffer, growing a candidate window one code point at a time
// until the tree reports a full match, at which point the window is consumed
// as one token and the next window starts where it ended.
//
//	type Token string
//
//	rule := mile.Any(
//		mile.Ignore(mile.Whitespace[Token]()),
//		mile.Value(mile.Literal[Token]("function"), func(string) Token { return "FUNCTION" }),
//		mile.Value(mile.Literal[Token]("end"), func(string) Token { return "END" }),
//	)
//	scanner := mile.WithBuffer(rule, "function end")
//	tokens, err := mile.ScanAll(scanner)
//
// Rules are pure: classifying a window has no side effects and depends only
// on the window's contents, so one rule tree may serve many Scanners at once.
// A full match is only trusted while no earlier listed alternative is still a
// viable prefix of something longer, which biases the Scanner towards the
// longest match among competing alternatives.
package mile
