// Package htmlchar holds the pure, side-effect-free character predicates
// the tokenizer's state machine is built on.
//
// https://html.spec.whatwg.org/multipage/parsing.html#tokenization
package htmlchar

// IsASCIIAlpha reports whether c is an ASCII letter.
func IsASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsASCIIDigit reports whether c is an ASCII digit.
func IsASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsASCIIAlphanumeric reports whether c is an ASCII letter or digit.
func IsASCIIAlphanumeric(c byte) bool {
	return IsASCIIAlpha(c) || IsASCIIDigit(c)
}

// IsWhitespace reports whether c is one of the tokenizer's whitespace
// characters: tab, line feed, form feed, or space.
//
// This is the tighter set the tokenizer's state transitions use — it
// deliberately excludes carriage return. CR normalization belongs to a
// preceding newline-normalization layer, not to the tokenizer itself.
func IsWhitespace(c byte) bool {
	switch c {
	case '\t', '\n', '\f', ' ':
		return true
	default:
		return false
	}
}

// ToASCIILower returns c with an uppercase ASCII letter folded to
// lowercase; any other byte is returned unchanged.
func ToASCIILower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ToASCIIUpper returns c with a lowercase ASCII letter folded to
// uppercase; any other byte is returned unchanged.
func ToASCIIUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
