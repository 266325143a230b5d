package token

import (
	"strings"

	"golang.org/x/exp/slices"
)

// TagBuilder is the tokenizer's scratch state for the tag currently being
// assembled: it is meaningful only between CreateStartTag/CreateEndTag
// and Emit, and is
// reset by both.
type TagBuilder struct {
	kind        Kind // StartTagKind or EndTagKind
	name        strings.Builder
	selfClosing bool
	attributes  []Attribute

	attrName  strings.Builder
	attrValue strings.Builder

	// dropDuplicates, when true, makes CommitAttribute silently discard
	// an attribute whose name already appears in the committed list
	// instead of appending a second entry.
	dropDuplicates bool
}

// NewTagBuilder returns a TagBuilder. dropDuplicates wires
// tokcfg.Options.DropDuplicateAttributes.
func NewTagBuilder(dropDuplicates bool) *TagBuilder {
	return &TagBuilder{dropDuplicates: dropDuplicates}
}

// CreateStartTag resets the builder for a new start tag.
func (b *TagBuilder) CreateStartTag() {
	b.kind = StartTagKind
	b.reset()
}

// CreateEndTag resets the builder for a new end tag.
func (b *TagBuilder) CreateEndTag() {
	b.kind = EndTagKind
	b.reset()
}

func (b *TagBuilder) reset() {
	b.name.Reset()
	b.selfClosing = false
	b.attributes = nil
	b.clearAttr()
}

func (b *TagBuilder) clearAttr() {
	b.attrName.Reset()
	b.attrValue.Reset()
}

// WriteName appends c to the tag name.
func (b *TagBuilder) WriteName(c byte) { b.name.WriteByte(c) }

// EnableSelfClosing sets the tag's self-closing flag.
func (b *TagBuilder) EnableSelfClosing() { b.selfClosing = true }

// CreateAttribute commits any in-progress attribute, then clears scratch
// state to start a fresh (empty name, empty value) attribute.
func (b *TagBuilder) CreateAttribute() {
	b.CommitAttribute()
}

// WriteAttrName appends c to the current attribute's name.
func (b *TagBuilder) WriteAttrName(c byte) { b.attrName.WriteByte(c) }

// WriteAttrValue appends c to the current attribute's value.
func (b *TagBuilder) WriteAttrValue(c byte) { b.attrValue.WriteByte(c) }

// CommitAttribute appends the in-progress attribute to the tag's
// attribute list if its name is non-empty (an empty attribute name is
// always dropped rather than committed), then clears the in-progress
// name/value.
func (b *TagBuilder) CommitAttribute() {
	name := b.attrName.String()
	if name == "" {
		b.clearAttr()
		return
	}

	if b.dropDuplicates && slices.ContainsFunc(b.attributes, func(a Attribute) bool { return a.Name == name }) {
		b.clearAttr()
		return
	}

	b.attributes = append(b.attributes, Attribute{Name: name, Value: b.attrValue.String()})
	b.clearAttr()
}

// Emit commits any in-progress attribute, builds the tag Token from
// scratch state, then clears the builder.
func (b *TagBuilder) Emit() Token {
	b.CommitAttribute()

	tok := Token{
		Kind:        b.kind,
		Name:        b.name.String(),
		SelfClosing: b.selfClosing,
		Attributes:  b.attributes,
	}

	b.name.Reset()
	b.attributes = nil
	b.selfClosing = false

	return tok
}
