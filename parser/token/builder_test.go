package token

import "testing"

func TestCommitAttributeDropsEmptyName(t *testing.T) {
	b := NewTagBuilder(false)
	b.CreateStartTag()
	b.WriteName('a')

	// No WriteAttrName call: the in-progress attribute name is empty.
	b.CommitAttribute()

	tok := b.Emit()
	if len(tok.Attributes) != 0 {
		t.Fatalf("expected empty-named attribute to be dropped, got %+v", tok.Attributes)
	}
}

func TestCommitAttributeKeepsNonEmptyName(t *testing.T) {
	b := NewTagBuilder(false)
	b.CreateStartTag()
	b.WriteName('a')
	b.WriteAttrName('x')
	b.WriteAttrValue('1')
	b.CommitAttribute()

	tok := b.Emit()
	want := []Attribute{{Name: "x", Value: "1"}}
	if len(tok.Attributes) != 1 || tok.Attributes[0] != want[0] {
		t.Fatalf("got %+v, want %+v", tok.Attributes, want)
	}
}

func TestEmitBuildsStartTag(t *testing.T) {
	b := NewTagBuilder(false)
	b.CreateStartTag()
	b.WriteName('d')
	b.WriteName('i')
	b.WriteName('v')
	b.EnableSelfClosing()

	tok := b.Emit()
	if tok.Kind != StartTagKind || tok.Name != "div" || !tok.SelfClosing {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestDropDuplicateAttributesKeepsFirstOccurrence(t *testing.T) {
	b := NewTagBuilder(true)
	b.CreateStartTag()
	b.WriteName('a')

	b.WriteAttrName('x')
	b.WriteAttrValue('1')
	b.CreateAttribute()

	b.WriteAttrName('x')
	b.WriteAttrValue('2')
	b.CommitAttribute()

	tok := b.Emit()
	want := []Attribute{{Name: "x", Value: "1"}}
	if len(tok.Attributes) != 1 || tok.Attributes[0] != want[0] {
		t.Fatalf("got %+v, want %+v", tok.Attributes, want)
	}
}
