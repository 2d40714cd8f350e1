package signature

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ParamKind classifies how a parameter binds at the call site.
type ParamKind string

const (
	KindPositionalOnly      ParamKind = "positional_only"
	KindPositionalOrKeyword ParamKind = "positional_or_keyword"
	KindVarPositional       ParamKind = "var_positional"
	KindKeywordOnly         ParamKind = "keyword_only"
	KindVarKeyword          ParamKind = "var_keyword"
)

// Issue identifies the category of a detected difference.
type Issue string

const (
	IssueMissing            Issue = "MISSING"
	IssueTypeMismatch       Issue = "TYPE_MISMATCH"
	IssueSignatureMismatch  Issue = "SIGNATURE_MISMATCH"
	IssueReturnTypeMismatch Issue = "RETURN_TYPE_MISMATCH"
)

// NotApplicable is the rendered value for a side that has no member at all.
const NotApplicable = "N/A"

// ParamInfo describes one formal parameter of a method.
type ParamInfo struct {
	Name       string
	Kind       ParamKind
	HasDefault bool
	Default    string // default expression text, empty when HasDefault is false
}

// String renders the parameter the way it appears in a signature:
// "*" prefix for var-positional, "**" for var-keyword, "=default" suffix
// when a default is present.
func (p ParamInfo) String() string {
	prefix := ""
	switch p.Kind {
	case KindVarPositional:
		prefix = "*"
	case KindVarKeyword:
		prefix = "**"
	}

	suffix := ""
	if p.HasDefault {
		suffix = "=" + p.Default
	}

	return prefix + p.Name + suffix
}

// SignatureInfo describes one member of one class as declared in one source.
// Instances are created by an Extractor and never mutated afterwards; the
// resolver re-materializes copies when a member is inherited.
type SignatureInfo struct {
	ClassName      string
	MethodName     string
	Params         []ParamInfo
	ReturnType     string // "None" when the declaration carries no annotation
	IsProperty     bool
	IsClassMethod  bool
	IsStaticMethod bool
}

// ParamsString renders the ordered parameter list joined with ", ".
func (s SignatureInfo) ParamsString() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// FullSignature renders the complete "(params) -> returnType" form.
func (s SignatureInfo) FullSignature() string {
	return fmt.Sprintf("(%s) -> %s", s.ParamsString(), s.ReturnType)
}

// MemberKey identifies one member of one class in a flattened table.
type MemberKey struct {
	Class  string
	Method string
}

// Difference is one detected discrepancy between the two sides.
type Difference struct {
	ClassName  string
	MethodName string
	Issue      Issue
	Left       string
	Right      string
}

// MemberTable maps member name to its signature, preserving declaration
// order so downstream output stays reproducible.
type MemberTable = orderedmap.OrderedMap[string, SignatureInfo]

// ClassTables maps class name to its member table, in source order.
type ClassTables = orderedmap.OrderedMap[string, *MemberTable]

// FlatTable is the per-run table after inheritance resolution, keyed by
// (class, member) in resolution order.
type FlatTable = orderedmap.OrderedMap[MemberKey, SignatureInfo]

// NewClassTables returns an empty ordered class table.
func NewClassTables() *ClassTables {
	return orderedmap.New[string, *MemberTable]()
}

// NewMemberTable returns an empty ordered member table.
func NewMemberTable() *MemberTable {
	return orderedmap.New[string, SignatureInfo]()
}

// NewFlatTable returns an empty ordered flattened table.
func NewFlatTable() *FlatTable {
	return orderedmap.New[MemberKey, SignatureInfo]()
}

// Extractor produces per-class signature tables from some declaration
// source. The stub parser is the primary implementation; an introspection
// dump reader provides the same contract over live-object data.
type Extractor interface {
	Extract(source []byte) (*ClassTables, error)
}

// Hierarchy maps a class name to its ordered ancestor list. It is supplied
// by the caller as domain knowledge, never derived from the parsed files,
// and is expected to already be in override order per class (see Resolve).
type Hierarchy map[string][]string
