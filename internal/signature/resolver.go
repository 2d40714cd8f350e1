package signature

// Resolve flattens inheritance into a single (class, member) table.
//
// For each target class the ancestor list from the hierarchy map is applied
// in reverse declaration order, so members contributed by later-listed
// ancestors are overwritten by earlier-listed ("closer") ones. The class's
// own members are inserted last and always win. Every entry is
// re-materialized with the target class name: inherited members are
// reported under the subclass, not the ancestor.
//
// An ancestor missing from the parsed tables contributes nothing; that is
// an expected outcome, not an error. A class with no ancestors resolves to
// exactly its own table.
func Resolve(tables *ClassTables, hierarchy Hierarchy, classes []string) *FlatTable {
	result := NewFlatTable()

	for _, className := range classes {
		members := NewMemberTable()

		ancestors := hierarchy[className]
		for i := len(ancestors) - 1; i >= 0; i-- {
			if ancestorTable, ok := tables.Get(ancestors[i]); ok {
				for pair := ancestorTable.Oldest(); pair != nil; pair = pair.Next() {
					members.Set(pair.Key, pair.Value)
				}
			}
		}

		if ownTable, ok := tables.Get(className); ok {
			for pair := ownTable.Oldest(); pair != nil; pair = pair.Next() {
				members.Set(pair.Key, pair.Value)
			}
		}

		for pair := members.Oldest(); pair != nil; pair = pair.Next() {
			sig := pair.Value
			sig.ClassName = className
			result.Set(MemberKey{Class: className, Method: pair.Key}, sig)
		}
	}

	return result
}
