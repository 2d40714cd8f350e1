// Package introspect reads signature tables from a JSON introspection dump.
//
// The dump is produced by inspecting live loaded classes instead of parsing
// declaration text. It is a second implementation of the same extraction
// contract as the stub parser: same output tables, same member filtering,
// different input source.
package introspect

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/OutSquareCapital/sigdiff/internal/signature"
)

// Dump is the top-level structure of an introspection dump file.
type Dump struct {
	Classes []Class `json:"classes"`
}

// Class is one introspected class with its members in definition order.
type Class struct {
	Name    string   `json:"name"`
	Members []Member `json:"members"`
}

// Member is one introspected class member.
type Member struct {
	Name       string  `json:"name"`
	Kind       string  `json:"kind"` // "method", "property", "classmethod", "staticmethod"
	Params     []Param `json:"params"`
	ReturnType string  `json:"return_type"`

	// Unavailable marks members whose formal-parameter structure could
	// not be introspected (native descriptors and the like).
	Unavailable bool `json:"unavailable,omitempty"`
}

// Param is one introspected formal parameter.
type Param struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Default string `json:"default,omitempty"`

	HasDefault bool `json:"has_default,omitempty"`
}

// Extractor turns an introspection dump into per-class signature tables.
type Extractor struct {
	targets map[string]bool
}

// NewExtractor creates a dump extractor restricted to the given target
// classes.
func NewExtractor(targetClasses []string) *Extractor {
	targets := make(map[string]bool, len(targetClasses))
	for _, name := range targetClasses {
		targets[name] = true
	}
	return &Extractor{targets: targets}
}

// Extract decodes a JSON introspection dump into class tables. Members
// whose signature could not be introspected are skipped rather than
// aborting the run; each skip is logged, since a silent drop can mask a
// genuine incompatibility on the other side.
func (e *Extractor) Extract(source []byte) (*signature.ClassTables, error) {
	var dump Dump
	if err := json.Unmarshal(source, &dump); err != nil {
		return nil, fmt.Errorf("failed to decode introspection dump: %w", err)
	}

	tables := signature.NewClassTables()

	for _, class := range dump.Classes {
		if !e.targets[class.Name] {
			continue
		}

		members := signature.NewMemberTable()
		for _, member := range class.Members {
			if !signature.IncludeMember(member.Name) {
				continue
			}
			if member.Unavailable {
				log.Printf("Warning: skipping %s.%s: signature not introspectable", class.Name, member.Name)
				continue
			}
			members.Set(member.Name, toSignature(class.Name, member))
		}

		tables.Set(class.Name, members)
	}

	return tables, nil
}

func toSignature(className string, member Member) signature.SignatureInfo {
	sig := signature.SignatureInfo{
		ClassName:      className,
		MethodName:     member.Name,
		ReturnType:     member.ReturnType,
		IsProperty:     member.Kind == "property",
		IsClassMethod:  member.Kind == "classmethod",
		IsStaticMethod: member.Kind == "staticmethod",
	}

	if sig.ReturnType == "" {
		sig.ReturnType = "None"
	}

	if !sig.IsProperty {
		for _, p := range member.Params {
			hasDefault := p.HasDefault || p.Default != ""
			sig.Params = append(sig.Params, signature.ParamInfo{
				Name:       p.Name,
				Kind:       signature.ParamKind(p.Kind),
				HasDefault: hasDefault,
				Default:    p.Default,
			})
		}
	}

	return sig
}
