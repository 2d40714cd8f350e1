package signature

import "strings"

// dunderAllowList is the fixed set of interoperability hooks that survive
// the dunder filter: the path-conversion protocol and the two true-division
// operators.
var dunderAllowList = map[string]bool{
	"__fspath__":   true,
	"__truediv__":  true,
	"__rtruediv__": true,
}

// IncludeMember applies the fixed member-inclusion filter shared by every
// extractor: names with a single leading underscore are private and
// excluded, dunder names pass only through the allow-list, everything else
// is included.
func IncludeMember(name string) bool {
	if strings.HasPrefix(name, "_") && !strings.HasPrefix(name, "__") {
		return false
	}
	if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
		return dunderAllowList[name]
	}
	return true
}
