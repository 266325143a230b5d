// Package token defines the tokenizer's output values: a single tagged
// token type plus the scratch builder used to assemble tags while the
// state machine walks a tag's characters.
//
// https://html.spec.whatwg.org/multipage/parsing.html#tokenization
package token

// Kind discriminates the four token shapes the tokenizer emits.
type Kind uint8

const (
	CharacterKind Kind = iota
	StartTagKind
	EndTagKind
	EOFKind
)

func (k Kind) String() string {
	switch k {
	case CharacterKind:
		return "Character"
	case StartTagKind:
		return "StartTag"
	case EndTagKind:
		return "EndTag"
	case EOFKind:
		return "EndOfFile"
	default:
		return "Unknown"
	}
}

// Attribute is a (name, value) pair within a tag. Names are lowercased
// (ASCII A-Z only); values are verbatim.
type Attribute struct {
	Name  string
	Value string
}

// Token is the tagged variant the tokenizer emits. The discriminant-plus-
// payload-fields shape (rather than one struct type per Kind) collapses
// the source's four separate token structs into a single sum type, since
// most fields are meaningless outside their own Kind.
type Token struct {
	Kind Kind

	// Name, SelfClosing and Attributes are meaningful only for
	// StartTagKind and EndTagKind.
	Name        string
	SelfClosing bool
	Attributes  []Attribute

	// Value is meaningful only for CharacterKind.
	Value byte
}

// NewStartTag builds a StartTagKind token.
func NewStartTag(name string, selfClosing bool, attrs []Attribute) Token {
	return Token{Kind: StartTagKind, Name: name, SelfClosing: selfClosing, Attributes: attrs}
}

// NewEndTag builds an EndTagKind token.
func NewEndTag(name string, selfClosing bool, attrs []Attribute) Token {
	return Token{Kind: EndTagKind, Name: name, SelfClosing: selfClosing, Attributes: attrs}
}

// NewCharacter builds a CharacterKind token.
func NewCharacter(c byte) Token {
	return Token{Kind: CharacterKind, Value: c}
}

// EOF is the single end-of-file token value.
var EOF = Token{Kind: EOFKind}

// Attr looks up an attribute by name, returning its value and whether it
// was found. Only the first occurrence is returned; duplicate-attribute
// handling is a tokenizer-level policy, not a token-level one.
func (t Token) Attr(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
