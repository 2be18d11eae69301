package models

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
	}{
		{"null", `null`, KindNull},
		{"true", `true`, KindBool},
		{"false", `false`, KindBool},
		{"integer", `42`, KindNumber},
		{"float", `1.50`, KindNumber},
		{"exponent", `1e5`, KindNumber},
		{"string", `"C:\\Users"`, KindString},
		{"empty array", `[]`, KindArray},
		{"empty object", `{}`, KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParseValue_KeepsNumberLiteral(t *testing.T) {
	v, err := ParseValue([]byte(`{"a": 1.50, "b": 1e5, "c": 12345678901234567890}`))
	require.NoError(t, err)

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1.50,"b":1e5,"c":12345678901234567890}`, string(out))
}

func TestParseValue_PreservesMemberOrder(t *testing.T) {
	v, err := ParseValue([]byte(`{"zeta": 1, "alpha": 2, "mid": {"y": 1, "x": 2}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, v.Keys())
	mid, ok := v.Get("mid")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "x"}, mid.Keys())
}

func TestParseValue_DuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	v, err := ParseValue([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, v.Keys())
	a, _ := v.Get("a")
	n, ok := a.AsNumber()
	require.True(t, ok)
	assert.Equal(t, json.Number("3"), n)
}

func TestParseValue_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"whitespace", "  \n"},
		{"truncated object", `{"a": 1`},
		{"truncated array", `[1, 2`},
		{"bare word", `nope`},
		{"missing value", `{"a": }`},
		{"trailing garbage", `{"a": 1} x`},
		{"two documents", `{} {}`},
		{"single quotes", `{'a': 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValue([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseValue_EmptyInputIsUnexpectedEOF(t *testing.T) {
	_, err := ParseValue(nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestParseValue_TrailingDocument(t *testing.T) {
	_, err := ParseValue([]byte(`[] []`))
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestValue_MarshalJSON_DoesNotEscapeHTML(t *testing.T) {
	v := Object(Member{Key: "url", Value: String("https://x.test/?a=1&b=<2>")})

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"url":"https://x.test/?a=1&b=<2>"}`, string(out))
}

func TestValue_MarshalJSON_EscapesControlAndQuotes(t *testing.T) {
	v := String("a\"b\\c\n")

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"a\"b\\c\n"`, string(out))
}

func TestParseValue_RejectsInvalidEncoding(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid byte", "[\"caf\xe9\"]"},
		{"truncated sequence", "[\"\xe2\x9c\"]"},
		{"byte order mark", "\xef\xbb\xbf[]"},
		{"lone high surrogate", `["\ud800"]`},
		{"lone low surrogate", `["\udc00"]`},
		{"high surrogate then text", `["\ud83dx"]`},
		{"two high surrogates", `["\ud83d\ud83d"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValue([]byte(tt.input))
			assert.ErrorIs(t, err, ErrInvalidEncoding)
		})
	}
}

func TestParseValue_AcceptsValidEscapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"surrogate pair", `"\ud83d\ude00"`, "\U0001F600"},
		{"escaped backslash before u", `"C:\\ud800"`, `C:\ud800`},
		{"bmp escape", `"\u00e9"`, "é"},
		{"raw multibyte", `"✓"`, "✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue([]byte(tt.input))
			require.NoError(t, err)
			s, ok := v.AsString()
			require.True(t, ok)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestValue_Clone_IsIndependent(t *testing.T) {
	orig, err := ParseValue([]byte(`{"skills": ["a", "b"], "packages": [{"themes": ["t"]}]}`))
	require.NoError(t, err)

	clone := orig.Clone()
	skills, _ := clone.Get("skills")
	require.True(t, skills.SetItem(0, String("changed")))
	clone.Set("new", Bool(true))

	packages, _ := clone.Get("packages")
	pkg := packages.Items()[0]
	pkg.Set("themes", Array())
	packages.SetItem(0, pkg)

	origSkills, _ := orig.Get("skills")
	s, _ := origSkills.Items()[0].AsString()
	assert.Equal(t, "a", s)
	_, hasNew := orig.Get("new")
	assert.False(t, hasNew)

	origPackages, _ := orig.Get("packages")
	themes, _ := origPackages.Items()[0].Get("themes")
	assert.Equal(t, 1, themes.Len())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"same scalars", `1`, `1`, true},
		{"different number literal", `1`, `1.0`, false},
		{"member order ignored", `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"array order matters", `[1,2]`, `[2,1]`, false},
		{"missing key", `{"a":1}`, `{"a":1,"b":2}`, false},
		{"different kinds", `"1"`, `1`, false},
		{"nested", `{"p":[{"x":["a"]}]}`, `{"p":[{"x":["a"]}]}`, true},
		{"nulls", `null`, `null`, true},
		{"bools", `true`, `false`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseValue([]byte(tt.a))
			require.NoError(t, err)
			b, err := ParseValue([]byte(tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, Equal(a, b))
		})
	}
}

func TestValue_AccessorsOnWrongKind(t *testing.T) {
	v := String("x")

	_, ok := v.AsBool()
	assert.False(t, ok)
	_, ok = v.AsNumber()
	assert.False(t, ok)
	assert.Nil(t, v.Items())
	assert.Nil(t, v.Members())
	assert.Nil(t, v.Keys())
	assert.Zero(t, v.Len())
	assert.False(t, v.SetItem(0, Null()))
	assert.False(t, v.Set("k", Null()))
	_, ok = v.Get("k")
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "null", Null().Kind().String())
	assert.Equal(t, "unknown", Kind(99).String())
}
