package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OutSquareCapital/sigdiff/internal/config"
	"github.com/OutSquareCapital/sigdiff/internal/signature"
)

// Test Plan for the audit report:
// - missing and extra members are listed under their class with their kind
// - a clean comparison reports all members accounted for
// - absentFrom respects table order

func auditTable(t *testing.T, sigs ...signature.SignatureInfo) *signature.FlatTable {
	t.Helper()

	table := signature.NewFlatTable()
	for _, sig := range sigs {
		table.Set(signature.MemberKey{Class: sig.ClassName, Method: sig.MethodName}, sig)
	}
	return table
}

func TestWriteAudit_MissingAndExtra(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Left:  config.SideConfig{Label: "pathlib"},
		Right: config.SideConfig{Label: "pyopath"},
	}

	left := auditTable(t,
		signature.SignatureInfo{ClassName: "PurePath", MethodName: "as_posix"},
		signature.SignatureInfo{ClassName: "PurePath", MethodName: "name", IsProperty: true},
	)
	right := auditTable(t,
		signature.SignatureInfo{ClassName: "PurePath", MethodName: "as_posix"},
		signature.SignatureInfo{ClassName: "PurePath", MethodName: "from_uri", IsClassMethod: true},
	)

	var buf bytes.Buffer
	writeAudit(&buf, cfg, left, right)

	output := buf.String()
	assert.Contains(t, output, "MEMBER PRESENCE AUDIT: pathlib vs pyopath")
	assert.Contains(t, output, "MISSING IN pyopath")
	assert.Contains(t, output, "- name (property)")
	assert.Contains(t, output, "EXTRA IN pyopath")
	assert.Contains(t, output, "- from_uri (classmethod)")
	assert.NotContains(t, output, "as_posix")
}

func TestWriteAudit_CleanRun(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Left:  config.SideConfig{Label: "pathlib"},
		Right: config.SideConfig{Label: "pyopath"},
	}
	table := auditTable(t, signature.SignatureInfo{ClassName: "PurePath", MethodName: "as_posix"})

	var buf bytes.Buffer
	writeAudit(&buf, cfg, table, table)

	assert.Contains(t, buf.String(), "All members accounted for on both sides.")
}

func TestAbsentFrom_PreservesOrder(t *testing.T) {
	t.Parallel()

	left := auditTable(t,
		signature.SignatureInfo{ClassName: "A", MethodName: "one"},
		signature.SignatureInfo{ClassName: "A", MethodName: "two"},
		signature.SignatureInfo{ClassName: "B", MethodName: "three"},
	)
	right := auditTable(t, signature.SignatureInfo{ClassName: "A", MethodName: "two"})

	absent := absentFrom(left, right)
	require.Len(t, absent, 2)
	assert.Equal(t, "one", absent[0].MethodName)
	assert.Equal(t, "three", absent[1].MethodName)
}
