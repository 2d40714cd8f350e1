package stubs

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// nodeText extracts the source text covered by a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// firstNamedChild returns the first named child of a node, or nil.
func firstNamedChild(node *sitter.Node) *sitter.Node {
	if node == nil || node.NamedChildCount() == 0 {
		return nil
	}
	return node.NamedChild(0)
}

// namedChildren returns all named children of a node.
func namedChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}

	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.NamedChild(uint(i)))
	}
	return children
}

// decoratorNames collects the bare-identifier decorator names attached to a
// decorated definition. Attribute or call decorators are ignored: only a
// plain `@property`-style name participates in member classification.
func decoratorNames(decorated *sitter.Node, source []byte) []string {
	var names []string
	for i := 0; i < int(decorated.ChildCount()); i++ {
		child := decorated.Child(uint(i))
		if child.Kind() != "decorator" {
			continue
		}
		if expr := firstNamedChild(child); expr != nil && expr.Kind() == "identifier" {
			names = append(names, nodeText(expr, source))
		}
	}
	return names
}
