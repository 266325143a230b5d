package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAppendChildLinksSiblingsInOrder(t *testing.T) {
	doc := NewDocument()
	div := NewElement("div", []Attr{{Name: "id", Value: "a"}})
	span := NewElement("span", nil)
	text := NewText("hello")

	doc.AppendChild(div)
	doc.AppendChild(span)
	div.AppendChild(text)

	if doc.FirstChild != div || doc.LastChild != span {
		t.Fatalf("document child list not in append order")
	}
	if div.NextSibling != span || span.PreviousSibling != div {
		t.Fatalf("sibling pointers not linked: got next=%v prev=%v", div.NextSibling, span.PreviousSibling)
	}
	if span.NextSibling != nil {
		t.Fatalf("last child's next sibling must be nil, got %v", span.NextSibling)
	}
	if div.Parent != doc || span.Parent != doc || text.Parent != div {
		t.Fatalf("parent pointers not set correctly")
	}
	if !div.HasChildNodes() || span.HasChildNodes() {
		t.Fatalf("HasChildNodes mismatch: div=%v span=%v", div.HasChildNodes(), span.HasChildNodes())
	}

	want := []Attr{{Name: "id", Value: "a"}}
	if diff := cmp.Diff(want, div.Attributes, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestFreeDetachesWholeSubtree(t *testing.T) {
	root := NewElement("ul", nil)
	for i := 0; i < 3; i++ {
		li := NewElement("li", nil)
		li.AppendChild(NewText("item"))
		root.AppendChild(li)
	}

	children := []*Node{root.FirstChild, root.FirstChild.NextSibling, root.LastChild}
	root.Free()

	if root.FirstChild != nil || root.LastChild != nil {
		t.Fatalf("root should have no children after Free")
	}
	for _, c := range children {
		if c.Parent != nil || c.FirstChild != nil || c.NextSibling != nil || c.PreviousSibling != nil {
			t.Fatalf("child node not fully detached: %+v", c)
		}
	}
}
