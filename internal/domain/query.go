package domain

import (
	"github.com/beevik/etree"

	m "xcskip.dev/pkg/xcskip/internal/model"
)

const (
	buildableReferenceTag = "BuildableReference"
	testableReferenceTag  = "TestableReference"
	blueprintNameAttr     = "BlueprintName"
	skippedAttr           = "skipped"
)

// walkElements visits every element below root depth-first, in document order.
func walkElements(root *etree.Element, visit func(*etree.Element)) {
	for _, child := range root.ChildElements() {
		visit(child)
		walkElements(child, visit)
	}
}

// findBlueprintParents returns the parent of every buildable reference whose
// blueprint name matches, i.e. `.//BuildableReference[@BlueprintName=name]/..`.
// Parents are de-duplicated and kept in document order. A buildable reference
// sitting at the document root has no parent element and never matches.
func findBlueprintParents(doc *etree.Document, blueprint m.Blueprint) []*etree.Element {
	var parents []*etree.Element

	seen := make(map[*etree.Element]struct{})

	walkElements(&doc.Element, func(el *etree.Element) {
		if el.Tag != buildableReferenceTag {
			return
		}

		if el.SelectAttrValue(blueprintNameAttr, "") != string(blueprint) {
			return
		}

		parent := el.Parent()
		if parent == nil || parent == &doc.Element {
			return
		}

		if _, ok := seen[parent]; ok {
			return
		}

		seen[parent] = struct{}{}
		parents = append(parents, parent)
	})

	return parents
}

// collectTestableRefs lists every testable reference with the blueprint of its
// first buildable reference child.
func collectTestableRefs(doc *etree.Document, scheme m.Path) []m.TestableRef {
	var refs []m.TestableRef

	walkElements(&doc.Element, func(el *etree.Element) {
		if el.Tag != testableReferenceTag {
			return
		}

		ref := m.TestableRef{
			Scheme:   scheme,
			Skipped:  m.SkipToken(el.SelectAttrValue(skippedAttr, "")),
			Position: len(refs) + 1,
		}

		if buildable := el.SelectElement(buildableReferenceTag); buildable != nil {
			ref.Blueprint = m.Blueprint(buildable.SelectAttrValue(blueprintNameAttr, ""))
		}

		refs = append(refs, ref)
	})

	return refs
}
