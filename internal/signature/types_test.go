package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for signature types:
// - ParamInfo renders plain, defaulted, var-positional, and var-keyword forms
// - ParamsString joins parameters in order with ", "
// - FullSignature renders the "(params) -> returnType" form
// - IncludeMember excludes private names, filters dunders via allow-list

func TestParamInfo_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		param    ParamInfo
		expected string
	}{
		{
			name:     "plain positional",
			param:    ParamInfo{Name: "x", Kind: KindPositionalOrKeyword},
			expected: "x",
		},
		{
			name:     "with default",
			param:    ParamInfo{Name: "x", Kind: KindPositionalOrKeyword, HasDefault: true, Default: "1"},
			expected: "x=1",
		},
		{
			name:     "keyword only with default",
			param:    ParamInfo{Name: "strict", Kind: KindKeywordOnly, HasDefault: true, Default: "False"},
			expected: "strict=False",
		},
		{
			name:     "var positional",
			param:    ParamInfo{Name: "args", Kind: KindVarPositional},
			expected: "*args",
		},
		{
			name:     "var keyword",
			param:    ParamInfo{Name: "kwargs", Kind: KindVarKeyword},
			expected: "**kwargs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.param.String())
		})
	}
}

func TestSignatureInfo_FullSignature(t *testing.T) {
	t.Parallel()

	sig := SignatureInfo{
		ClassName:  "PurePath",
		MethodName: "relative_to",
		Params: []ParamInfo{
			{Name: "other", Kind: KindPositionalOrKeyword},
			{Name: "walk_up", Kind: KindKeywordOnly, HasDefault: true, Default: "False"},
		},
		ReturnType: "Self",
	}

	assert.Equal(t, "other, walk_up=False", sig.ParamsString())
	assert.Equal(t, "(other, walk_up=False) -> Self", sig.FullSignature())
}

func TestSignatureInfo_FullSignature_NoParams(t *testing.T) {
	t.Parallel()

	sig := SignatureInfo{MethodName: "cwd", ReturnType: "Self"}
	assert.Equal(t, "() -> Self", sig.FullSignature())
}

func TestIncludeMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		included bool
	}{
		{"as_posix", true},
		{"_helper", false},
		{"_", false},
		{"__init__", false},
		{"__eq__", false},
		{"__fspath__", true},
		{"__truediv__", true},
		{"__rtruediv__", true},
		{"with_suffix", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.included, IncludeMember(tt.name))
		})
	}
}
