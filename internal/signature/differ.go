package signature

// Diff compares two flattened tables and returns every difference found,
// iterated in the left table's key order. The comparison is one-directional:
// members present only on the right side are never reported here. A full
// bidirectional audit runs Diff twice with the sides swapped.
//
// Per key the first matching rule wins:
//  1. member absent on the right -> MISSING
//  2. property/method status differs -> TYPE_MISMATCH
//  3. both sides are properties -> nothing further is compared
//  4. rendered parameter lists differ -> SIGNATURE_MISMATCH
//  5. normalized return types differ -> RETURN_TYPE_MISMATCH, reported
//     with the original un-normalized strings
func Diff(left, right *FlatTable) []Difference {
	var differences []Difference

	for pair := left.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key
		leftSig := pair.Value

		rightSig, ok := right.Get(key)
		if !ok {
			differences = append(differences, Difference{
				ClassName:  key.Class,
				MethodName: key.Method,
				Issue:      IssueMissing,
				Left:       leftSig.FullSignature(),
				Right:      NotApplicable,
			})
			continue
		}

		if d, found := compareMember(key, leftSig, rightSig); found {
			differences = append(differences, d)
		}
	}

	return differences
}

func compareMember(key MemberKey, left, right SignatureInfo) (Difference, bool) {
	if left.IsProperty != right.IsProperty {
		return Difference{
			ClassName:  key.Class,
			MethodName: key.Method,
			Issue:      IssueTypeMismatch,
			Left:       memberKind(left),
			Right:      memberKind(right),
		}, true
	}

	// Properties carry no parameter list in the declarations; once both
	// sides agree on property status there is nothing left to compare.
	if left.IsProperty {
		return Difference{}, false
	}

	if left.ParamsString() != right.ParamsString() {
		return Difference{
			ClassName:  key.Class,
			MethodName: key.Method,
			Issue:      IssueSignatureMismatch,
			Left:       left.FullSignature(),
			Right:      right.FullSignature(),
		}, true
	}

	if NormalizeReturnType(left.ReturnType) != NormalizeReturnType(right.ReturnType) {
		return Difference{
			ClassName:  key.Class,
			MethodName: key.Method,
			Issue:      IssueReturnTypeMismatch,
			Left:       left.ReturnType,
			Right:      right.ReturnType,
		}, true
	}

	return Difference{}, false
}

func memberKind(sig SignatureInfo) string {
	if sig.IsProperty {
		return "property"
	}
	return "method"
}
