package stubs

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// renderTypeText converts an annotation (or default-value) expression node
// to its canonical textual form: recursive tree-to-string with normalized
// spacing, falling back to the raw source text for anything unhandled.
// A nil node means the annotation is absent and renders as "None".
func renderTypeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return "None"
	}

	switch node.Kind() {
	case "type":
		// Annotation wrapper in type position; unwrap to the expression.
		return renderTypeText(firstNamedChild(node), source)

	case "identifier", "string", "integer", "float", "true", "false":
		return nodeText(node, source)

	case "none":
		return "None"

	case "attribute":
		object := node.ChildByFieldName("object")
		attr := node.ChildByFieldName("attribute")
		return renderTypeText(object, source) + "." + nodeText(attr, source)

	case "member_type":
		// Dotted name in type position: <type>.<identifier>
		children := namedChildren(node)
		if len(children) == 2 {
			return renderTypeText(children[0], source) + "." + nodeText(children[1], source)
		}

	case "subscript":
		value := node.ChildByFieldName("value")
		args := make([]string, 0, 1)
		for _, child := range namedChildren(node) {
			if value != nil && child.StartByte() == value.StartByte() {
				continue
			}
			args = append(args, renderTypeText(child, source))
		}
		return renderTypeText(value, source) + "[" + strings.Join(args, ", ") + "]"

	case "generic_type":
		// Subscripted generic in type position: identifier + type_parameter.
		children := namedChildren(node)
		if len(children) == 2 && children[1].Kind() == "type_parameter" {
			args := renderAll(namedChildren(children[1]), source)
			return renderTypeText(children[0], source) + "[" + strings.Join(args, ", ") + "]"
		}

	case "binary_operator":
		operator := node.ChildByFieldName("operator")
		if nodeText(operator, source) == "|" {
			left := renderTypeText(node.ChildByFieldName("left"), source)
			right := renderTypeText(node.ChildByFieldName("right"), source)
			return left + " | " + right
		}

	case "union_type":
		children := namedChildren(node)
		if len(children) == 2 {
			return renderTypeText(children[0], source) + " | " + renderTypeText(children[1], source)
		}

	case "tuple":
		return strings.Join(renderAll(namedChildren(node), source), ", ")

	case "list":
		return "[" + strings.Join(renderAll(namedChildren(node), source), ", ") + "]"
	}

	return nodeText(node, source)
}

func renderAll(nodes []*sitter.Node, source []byte) []string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = renderTypeText(n, source)
	}
	return parts
}
