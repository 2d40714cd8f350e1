package stubs

import (
	"fmt"
	"os"

	"github.com/gobwas/glob"
	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/OutSquareCapital/sigdiff/internal/signature"
)

// Parser extracts class member signatures from Python .pyi stub sources.
// It visits only top-level classes from the target set and implements the
// signature.Extractor contract.
type Parser struct {
	language *sitter.Language
	targets  map[string]bool
	ignore   []glob.Glob
}

var _ signature.Extractor = (*Parser)(nil)

// NewParser creates a stub parser restricted to the given target classes.
// Extra member-name exclusion globs are applied on top of the fixed
// underscore/dunder filter.
func NewParser(targetClasses []string, ignore []glob.Glob) *Parser {
	targets := make(map[string]bool, len(targetClasses))
	for _, name := range targetClasses {
		targets[name] = true
	}

	return &Parser{
		language: sitter.NewLanguage(python.Language()),
		targets:  targets,
		ignore:   ignore,
	}
}

// ParseFile reads and extracts a stub file.
func (p *Parser) ParseFile(path string) (*signature.ClassTables, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tables, err := p.Extract(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tables, nil
}

// Extract parses stub source text and returns per-class member tables in
// source order. A source that fails to parse as valid Python is a fatal
// error for the run; there is no partial-parse mode.
func (p *Parser) Extract(source []byte) (*signature.ClassTables, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(p.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse stub source")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("stub source contains syntax errors")
	}

	tables := signature.NewClassTables()

	for i := 0; i < int(root.ChildCount()); i++ {
		node := root.Child(uint(i))
		if node.Kind() == "decorated_definition" {
			node = node.ChildByFieldName("definition")
		}
		if node != nil && node.Kind() == "class_definition" {
			p.processClass(node, source, tables)
		}
	}

	return tables, nil
}

// processClass extracts the member table for one top-level class.
func (p *Parser) processClass(classNode *sitter.Node, source []byte, tables *signature.ClassTables) {
	nameNode := classNode.ChildByFieldName("name")
	if nameNode == nil {
		return
	}

	className := nodeText(nameNode, source)
	if !p.targets[className] {
		return
	}

	members := signature.NewMemberTable()
	seenOverloads := make(map[string]bool)

	body := classNode.ChildByFieldName("body")
	for i := 0; body != nil && i < int(body.ChildCount()); i++ {
		item := body.Child(uint(i))

		var decorators []string
		if item.Kind() == "decorated_definition" {
			decorators = decoratorNames(item, source)
			item = item.ChildByFieldName("definition")
		}
		if item == nil || item.Kind() != "function_definition" {
			continue
		}

		p.processMethod(className, item, decorators, source, members, seenOverloads)
	}

	tables.Set(className, members)
}

// processMethod extracts one method declaration into the member table.
func (p *Parser) processMethod(className string, funcNode *sitter.Node, decorators []string, source []byte, members *signature.MemberTable, seenOverloads map[string]bool) {
	nameNode := funcNode.ChildByFieldName("name")
	if nameNode == nil {
		return
	}

	name := nodeText(nameNode, source)
	if !signature.IncludeMember(name) || p.ignored(name) {
		return
	}

	isProperty := hasDecorator(decorators, "property")

	// Only the first declared overload of a name is retained: one
	// canonical declared shape per overload group.
	if hasDecorator(decorators, "overload") {
		if seenOverloads[name] {
			return
		}
		seenOverloads[name] = true
	}

	sig := signature.SignatureInfo{
		ClassName:      className,
		MethodName:     name,
		ReturnType:     renderTypeText(funcNode.ChildByFieldName("return_type"), source),
		IsProperty:     isProperty,
		IsClassMethod:  hasDecorator(decorators, "classmethod"),
		IsStaticMethod: hasDecorator(decorators, "staticmethod"),
	}

	// Properties contribute no parameter list.
	if !isProperty {
		sig.Params = extractParams(funcNode.ChildByFieldName("parameters"), source)
	}

	members.Set(name, sig)
}

// extractParams walks a parameters node and classifies each formal
// parameter into the four categories, pairing defaults along the way. The
// `/` separator retroactively marks the parameters before it as
// positional-only; `*` (bare or as *args) switches to keyword-only.
func extractParams(paramsNode *sitter.Node, source []byte) []signature.ParamInfo {
	if paramsNode == nil {
		return nil
	}

	var params []signature.ParamInfo
	keywordOnly := false

	for i := 0; i < int(paramsNode.ChildCount()); i++ {
		child := paramsNode.Child(uint(i))

		switch child.Kind() {
		case "positional_separator":
			for j := range params {
				if params[j].Kind == signature.KindPositionalOrKeyword {
					params[j].Kind = signature.KindPositionalOnly
				}
			}

		case "keyword_separator":
			keywordOnly = true

		case "identifier":
			params = append(params, signature.ParamInfo{
				Name: nodeText(child, source),
				Kind: namedKind(keywordOnly),
			})

		case "typed_parameter":
			inner := firstNamedChild(child)
			if inner == nil {
				continue
			}
			switch inner.Kind() {
			case "list_splat_pattern":
				keywordOnly = true
				params = append(params, splatParam(inner, source, signature.KindVarPositional))
			case "dictionary_splat_pattern":
				params = append(params, splatParam(inner, source, signature.KindVarKeyword))
			default:
				params = append(params, signature.ParamInfo{
					Name: nodeText(inner, source),
					Kind: namedKind(keywordOnly),
				})
			}

		case "default_parameter", "typed_default_parameter":
			params = append(params, signature.ParamInfo{
				Name:       nodeText(child.ChildByFieldName("name"), source),
				Kind:       namedKind(keywordOnly),
				HasDefault: true,
				Default:    renderTypeText(child.ChildByFieldName("value"), source),
			})

		case "list_splat_pattern":
			keywordOnly = true
			params = append(params, splatParam(child, source, signature.KindVarPositional))

		case "dictionary_splat_pattern":
			params = append(params, splatParam(child, source, signature.KindVarKeyword))
		}
	}

	return dropReceiver(params)
}

// dropReceiver removes the implicit self/cls receiver. Only the first
// self/cls in the regular parameter group is dropped: a receiver declared
// positional-only stays in place, and any later parameter that happens to
// reuse a receiver name is an ordinary parameter.
func dropReceiver(params []signature.ParamInfo) []signature.ParamInfo {
	for i, prm := range params {
		if prm.Kind == signature.KindPositionalOrKeyword && (prm.Name == "self" || prm.Name == "cls") {
			return append(params[:i], params[i+1:]...)
		}
	}
	return params
}

func splatParam(node *sitter.Node, source []byte, kind signature.ParamKind) signature.ParamInfo {
	return signature.ParamInfo{
		Name: nodeText(firstNamedChild(node), source),
		Kind: kind,
	}
}

func namedKind(keywordOnly bool) signature.ParamKind {
	if keywordOnly {
		return signature.KindKeywordOnly
	}
	return signature.KindPositionalOrKeyword
}

func hasDecorator(decorators []string, name string) bool {
	for _, d := range decorators {
		if d == name {
			return true
		}
	}
	return false
}

func (p *Parser) ignored(name string) bool {
	for _, g := range p.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}
