package signature

import "strings"

// selfTypeNames are the return-type spellings treated as interchangeable
// with Self: constructors and fluent methods are expected to return "the
// same kind of object" regardless of the exact concrete class named.
var selfTypeNames = map[string]bool{
	"Self":        true,
	"PurePath":    true,
	"Path":        true,
	"PosixPath":   true,
	"WindowsPath": true,
}

// NormalizeReturnType canonicalizes a return-type string for comparison.
// It is applied only to return types, never to parameter lists, and the
// normalized form is used for equality checks only: reported differences
// always show the original declared text.
func NormalizeReturnType(returnType string) string {
	if selfTypeNames[returnType] {
		return "Self"
	}

	normalized := strings.ReplaceAll(returnType, "Generator", "Iterator")
	if strings.Contains(normalized, "Sequence") || strings.Contains(normalized, "tuple") {
		return strings.ReplaceAll(normalized, "tuple", "Sequence")
	}

	return normalized
}
