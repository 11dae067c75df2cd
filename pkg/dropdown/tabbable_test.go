package dropdown

import (
	"testing"

	"github.com/marcus/dropdown/pkg/dom"
)

// TestFindTabbableSelf tests that a tabbable root wins immediately
func TestFindTabbableSelf(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("button")
	el.SetTabbable(true)

	if got := findTabbable(el); got != el {
		t.Errorf("findTabbable = %v, want the element itself", got)
	}
}

// TestFindTabbableDescendant tests depth-first descent
func TestFindTabbableDescendant(t *testing.T) {
	doc := dom.NewDocument()
	wrap := doc.CreateElement("div")
	first := doc.CreateElement("span")
	nested := doc.CreateElement("a")
	nested.SetTabbable(true)
	later := doc.CreateElement("button")
	later.SetTabbable(true)

	wrap.AppendChild(first)
	first.AppendChild(nested)
	wrap.AppendChild(later)

	if got := findTabbable(wrap); got != nested {
		t.Error("depth-first order should find the nested anchor before the sibling button")
	}
}

// TestFindTabbableCrossesShadow tests descent into encapsulated subtrees
func TestFindTabbableCrossesShadow(t *testing.T) {
	doc := dom.NewDocument()
	custom := doc.CreateElement("custom-button")
	inner := doc.CreateElement("button")
	inner.SetTabbable(true)
	custom.AttachShadow().AppendChild(inner)

	if got := findTabbable(custom); got != inner {
		t.Error("resolver should reach into the shadow tree")
	}
}

// TestFindTabbableNone tests the nil result for non-focusable content
func TestFindTabbableNone(t *testing.T) {
	doc := dom.NewDocument()
	wrap := doc.CreateElement("div")
	wrap.AppendChild(doc.CreateElement("span"))

	if got := findTabbable(wrap); got != nil {
		t.Errorf("findTabbable = %v, want nil", got)
	}
	if got := findTabbable(nil); got != nil {
		t.Errorf("findTabbable(nil) = %v, want nil", got)
	}
}

// TestResolveAccessibleTrigger tests the slotted-content resolution rules
func TestResolveAccessibleTrigger(t *testing.T) {
	doc := dom.NewDocument()

	// Self-tabbable slotted element wins over earlier elements with
	// tabbable descendants.
	deco := doc.CreateElement("div")
	inner := doc.CreateElement("a")
	inner.SetTabbable(true)
	deco.AppendChild(inner)

	button := doc.CreateElement("button")
	button.SetTabbable(true)

	if got := resolveAccessibleTrigger([]*dom.Element{deco, button}); got != button {
		t.Error("a self-tabbable slotted element should win over descendants")
	}

	// With no self-tabbable element, the first tabbable descendant wins.
	if got := resolveAccessibleTrigger([]*dom.Element{deco}); got != inner {
		t.Error("descendant resolution failed")
	}

	if got := resolveAccessibleTrigger(nil); got != nil {
		t.Errorf("empty slot resolved to %v", got)
	}
}
