package mile

import (
	"fmt"
	"strings"
	"unicode"
)

type matchKind int

const (
	noMatch matchKind = iota
	fullMatch
	partialMatch
)

// MatchResult is the outcome of classifying a window of text against a Rule.
//
// It is tri-state: the window is no match, a full match (optionally carrying
// an extracted token), or a partial match, meaning the window is a strict
// prefix of some text the rule could still fully match.
type MatchResult[T any] struct {
	kind     matchKind
	value    T
	hasValue bool
}

// NoMatch reports that the window cannot be part of a match.
func NoMatch[T any]() MatchResult[T] { return MatchResult[T]{kind: noMatch} }

// PartialMatch reports that the window is a strict prefix of a possible match.
func PartialMatch[T any]() MatchResult[T] { return MatchResult[T]{kind: partialMatch} }

// FullMatch reports a complete match carrying no extracted token.
func FullMatch[T any]() MatchResult[T] { return MatchResult[T]{kind: fullMatch} }

// FullMatchValue reports a complete match carrying the extracted token v.
func FullMatchValue[T any](v T) MatchResult[T] {
	return MatchResult[T]{kind: fullMatch, value: v, hasValue: true}
}

// IsNoMatch returns true if the window cannot be part of a match.
func (m MatchResult[T]) IsNoMatch() bool { return m.kind == noMatch }

// IsMatch returns true if the window is a complete match.
func (m MatchResult[T]) IsMatch() bool { return m.kind == fullMatch }

// IsPartialMatch returns true if the window is a strict prefix of a possible match.
func (m MatchResult[T]) IsPartialMatch() bool { return m.kind == partialMatch }

// Value returns the extracted token, if the result is a full match carrying one.
func (m MatchResult[T]) Value() (T, bool) { return m.value, m.hasValue }

func (m MatchResult[T]) String() string {
	switch m.kind {
	case fullMatch:
		if m.hasValue {
			return fmt.Sprintf("match(%v)", m.value)
		}
		return "match"
	case partialMatch:
		return "partial"
	default:
		return "none"
	}
}

// A Rule classifies candidate windows of text.
//
// Rules are immutable once constructed and Matches is a pure function of the
// window, so a single rule tree may be shared by any number of Scanners, on
// any number of goroutines.
type Rule[T any] interface {
	// Matches classifies w against the rule.
	Matches(w string) MatchResult[T]
}

// An Extractor produces a token from a fully matched window.
//
// Extractors must be free of side effects: Either and Any may evaluate the
// same sub-rule, and therefore the same extractor, several times while the
// window grows.
type Extractor[T any] func(w string) T

type literal[T any] struct{ text string }

// Literal matches a window equal to text. A strict prefix of text is a
// partial match.
func Literal[T any](text string) Rule[T] { return literal[T]{text} }

func (l literal[T]) Matches(w string) MatchResult[T] {
	switch {
	case w == l.text:
		return FullMatch[T]()
	case strings.HasPrefix(l.text, w):
		return PartialMatch[T]()
	default:
		return NoMatch[T]()
	}
}

type class[T any] struct{ is func(rune) bool }

// Numeric matches a window composed entirely of numeric characters.
func Numeric[T any]() Rule[T] { return class[T]{unicode.IsNumber} }

// Alphabetic matches a window composed entirely of alphabetic characters.
func Alphabetic[T any]() Rule[T] { return class[T]{unicode.IsLetter} }

// Whitespace matches a window composed entirely of whitespace.
func Whitespace[T any]() Rule[T] { return class[T]{unicode.IsSpace} }

// Character classes are window-shape predicates, vacuously true of the empty
// window, and never report a partial match.
func (c class[T]) Matches(w string) MatchResult[T] {
	for _, r := range w {
		if !c.is(r) {
			return NoMatch[T]()
		}
	}
	return FullMatch[T]()
}

type endsWith[T any] struct{ suffix string }

// EndsWith matches a window ending in suffix. It has no partial form.
func EndsWith[T any](suffix string) Rule[T] { return endsWith[T]{suffix} }

func (e endsWith[T]) Matches(w string) MatchResult[T] {
	if strings.HasSuffix(w, e.suffix) {
		return FullMatch[T]()
	}
	return NoMatch[T]()
}

type value[T any] struct {
	inner   Rule[T]
	extract Extractor[T]
}

// Value wraps inner so that a full match extracts a token. The extractor
// receives the whole window, not any sub-match, and replaces any value the
// inner rule produced.
func Value[T any](inner Rule[T], extract Extractor[T]) Rule[T] {
	return value[T]{inner, extract}
}

func (v value[T]) Matches(w string) MatchResult[T] {
	switch m := v.inner.Matches(w); {
	case m.IsMatch():
		return FullMatchValue(v.extract(w))
	case m.IsPartialMatch():
		return PartialMatch[T]()
	default:
		return NoMatch[T]()
	}
}

type ignore[T any] struct{ inner Rule[T] }

// Ignore matches exactly like inner. It marks matches whose extracted value,
// if any, is to be discarded rather than emitted; rules without a Value
// wrapper already carry none.
func Ignore[T any](inner Rule[T]) Rule[T] { return ignore[T]{inner} }

func (i ignore[T]) Matches(w string) MatchResult[T] { return i.inner.Matches(w) }

type not[T any] struct{ inner Rule[T] }

// Not matches a window that inner does not match at all. A partial match of
// inner does not negate to a match.
func Not[T any](inner Rule[T]) Rule[T] { return not[T]{inner} }

func (n not[T]) Matches(w string) MatchResult[T] {
	if n.inner.Matches(w).IsNoMatch() {
		return FullMatch[T]()
	}
	return NoMatch[T]()
}

type only[T any] struct{ inner Rule[T] }

// Only is a pure pass-through, for grouping and readability.
func Only[T any](inner Rule[T]) Rule[T] { return only[T]{inner} }

func (o only[T]) Matches(w string) MatchResult[T] { return o.inner.Matches(w) }

type both[T any] struct{ a, b Rule[T] }

// Both matches a window that a and b each fully match. Conjunction is strict:
// a partial match of either side is not propagated.
func Both[T any](a, b Rule[T]) Rule[T] { return both[T]{a, b} }

func (r both[T]) Matches(w string) MatchResult[T] {
	if r.a.Matches(w).IsMatch() && r.b.Matches(w).IsMatch() {
		return FullMatch[T]()
	}
	return NoMatch[T]()
}

type either[T any] struct{ a, b Rule[T] }

// Either matches a or b, in order. A partial match of a defers the decision:
// b is not consulted while a could still complete on a longer window, keeping
// ties in favour of the earliest listed alternative.
func Either[T any](a, b Rule[T]) Rule[T] { return either[T]{a, b} }

func (e either[T]) Matches(w string) MatchResult[T] {
	if m := e.a.Matches(w); !m.IsNoMatch() {
		return m
	}
	return e.b.Matches(w)
}

type all[T any] struct {
	rules   []Rule[T]
	extract Extractor[T]
}

// All matches a window that every rule in the sequence fully matches. The
// first sub-rule to yield no match, or failing that a partial match, decides
// the group. The extractor runs once, on the whole window.
func All[T any](extract Extractor[T], rules ...Rule[T]) Rule[T] {
	return all[T]{rules, extract}
}

func (a all[T]) Matches(w string) MatchResult[T] {
	for _, rule := range a.rules {
		switch m := rule.Matches(w); {
		case m.IsNoMatch():
			return NoMatch[T]()
		case m.IsPartialMatch():
			return PartialMatch[T]()
		}
	}
	return FullMatchValue(a.extract(w))
}

type anyOf[T any] struct{ rules []Rule[T] }

// Any matches the first rule in the sequence to fully match, but only while
// no earlier listed rule remains a live partial candidate: a full match seen
// after any partial match is discarded. This is what gives the scanner its
// longest-match bias. Any never reports a partial match itself; an undecided
// window comes back as no match and the Scanner grows it.
func Any[T any](rules ...Rule[T]) Rule[T] { return anyOf[T]{rules} }

func (a anyOf[T]) Matches(w string) MatchResult[T] {
	partials := 0
	for _, rule := range a.rules {
		switch m := rule.Matches(w); {
		case m.IsPartialMatch():
			partials++
		case m.IsMatch():
			if partials == 0 {
				return m
			}
		}
	}
	return NoMatch[T]()
}
