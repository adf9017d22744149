package scan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/jsonio/pkg/strview"
)

func view(s string) strview.View { return strview.FromString(s) }

func TestPopValue(t *testing.T) {
	cases := []struct {
		in, value, rest string
	}{
		{`"a,b" , 1`, `"a,b"`, ` , 1`},
		{`'it''s'`, `'it'`, `'s'`},
		{`"say \"hi\""x`, `"say \"hi\""`, `x`},
		{`{"a": [1, "]"]}, 2`, `{"a": [1, "]"]}`, `, 2`},
		{`[[1], [2]]`, `[[1], [2]]`, ``},
		{`  42 }`, `42`, ` }`},
		{`true`, `true`, ``},
	}
	for _, c := range cases {
		v := view(c.in)
		got, err := PopValue(&v)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.value, got.String(), c.in)
		assert.Equal(t, c.rest, v.String(), c.in)
	}
}

func TestPopValueErrors(t *testing.T) {
	cases := []struct {
		in  string
		err error
		at  int
	}{
		{`"abc`, ErrUnterminatedString, 0},
		{`{"a": 1`, ErrUnbalancedBrackets, 0},
		{`[1, "]`, ErrUnterminatedString, 4},
		{`   `, ErrEmptyValue, 3},
		{` , 1`, ErrEmptyValue, 1},
		{`}`, ErrUnexpectedChar, 0},
	}
	for _, c := range cases {
		v := view(c.in)
		_, err := PopValue(&v)
		require.ErrorIs(t, err, c.err, c.in)
		var se *SyntaxError
		require.True(t, errors.As(err, &se), c.in)
		assert.Equal(t, c.at, se.Offset, c.in)
	}
}

func TestPopMember(t *testing.T) {
	v := view(`"host" : "a", port: 80, 'x y':[1]`)
	var names, values []string
	for !v.Empty() {
		n, val, err := PopMember(&v)
		require.NoError(t, err)
		names = append(names, n.String())
		values = append(values, val.String())
		_, err = SkipComma(&v)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"host", "port", "x y"}, names)
	assert.Equal(t, []string{`"a"`, `80`, `[1]`}, values)
}

func TestPopMemberErrors(t *testing.T) {
	cases := []struct {
		in  string
		err error
	}{
		{`"a" 1`, ErrMissingColon},
		{`a 1`, ErrMissingColon},
		{`"a", "b": 1`, ErrMissingColon},
		{`"": 1`, ErrEmptyFieldName},
		{`: 1`, ErrEmptyFieldName},
		{`"a": `, ErrEmptyValue},
		{`"a`, ErrUnterminatedString},
	}
	for _, c := range cases {
		v := view(c.in)
		_, _, err := PopMember(&v)
		assert.ErrorIs(t, err, c.err, c.in)
	}
}

func TestSkipComma(t *testing.T) {
	v := view(" , x")
	more, err := SkipComma(&v)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, "x", v.String())

	v = view("  ")
	more, err = SkipComma(&v)
	require.NoError(t, err)
	assert.False(t, more)

	v = view(" x")
	_, err = SkipComma(&v)
	assert.ErrorIs(t, err, ErrMissingComma)

	v = view(",  ")
	_, err = SkipComma(&v)
	assert.ErrorIs(t, err, ErrTrailingComma)
}

func TestMembersStopsAtMatch(t *testing.T) {
	v := view(`"a": 1, "b": 2, "c": 3`)
	var seen []string
	val, err := Members(&v, func(n, _ strview.View) bool {
		seen = append(seen, n.String())
		return n.Equal("b")
	})
	require.NoError(t, err)
	assert.Equal(t, "2", val.String())
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, `"c": 3`, v.String())

	val, err = Members(&v, func(strview.View, strview.View) bool { return false })
	require.NoError(t, err)
	assert.True(t, val.IsNull())
	assert.True(t, v.Empty())
}

func TestMembersErrors(t *testing.T) {
	for in, want := range map[string]error{
		`"a": 1 "b": 2`: ErrMissingComma,
		`"a": 1,`:       ErrTrailingComma,
		`"a": 1,,`:      ErrMissingColon,
	} {
		v := view(in)
		_, err := Members(&v, func(strview.View, strview.View) bool { return false })
		assert.ErrorIs(t, err, want, in)
	}
}

func TestUnwrap(t *testing.T) {
	body, err := Unwrap(view(` { "a": 1 } `), '{', '}')
	require.NoError(t, err)
	assert.Equal(t, `"a": 1`, body.String())

	body, err = Unwrap(view(`{}`), '{', '}')
	require.NoError(t, err)
	assert.True(t, body.Empty())

	_, err = Unwrap(view(`[1]`), '{', '}')
	assert.ErrorIs(t, err, ErrUnexpectedChar)
	_, err = Unwrap(view(`{"a": 1`), '{', '}')
	assert.ErrorIs(t, err, ErrUnbalancedBrackets)
	_, err = Unwrap(view(`{} x`), '{', '}')
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestValidate(t *testing.T) {
	for _, ok := range []string{
		`{"a": 1, "b": [1, "x", {"c": []}], "d": {}}`,
		` [ ] `,
		`'s'`,
		`42`,
	} {
		assert.NoError(t, Validate(view(ok)), ok)
	}
	for in, want := range map[string]error{
		`{"a": 1, "b": {"c" 2}}`: ErrMissingColon,
		`[1, [2,]]`:              ErrTrailingComma,
		`{"a": [1 2]}`:           ErrMissingComma,
		`{"a": 1} {}`:            ErrTrailingData,
		`{"a": [}`:               ErrUnbalancedBrackets,
		``:                       ErrEmptyValue,
	} {
		assert.ErrorIs(t, Validate(view(in)), want, in)
	}
}

func TestTrimQuotes(t *testing.T) {
	assert.Equal(t, "a", TrimQuotes(view(`"a"`)).String())
	assert.Equal(t, "a", TrimQuotes(view(`'a'`)).String())
	assert.Equal(t, `"a'`, TrimQuotes(view(`"a'`)).String())
	assert.Equal(t, `"`, TrimQuotes(view(`"`)).String())
}

func TestKinds(t *testing.T) {
	err := ErrorAt(ErrTrailingComma, 12)
	assert.Equal(t, KindTrailingComma, KindOf(err))
	assert.Equal(t, ErrTrailingComma, KindTrailingComma.Sentinel())
	assert.Equal(t, "trailing ',' at offset 12", err.Error())
	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
	assert.Nil(t, KindUnknown.Sentinel())
	assert.Equal(t, "kind(200)", Kind(200).String())
	for k := KindUnterminatedString; k <= KindUnknownEnumValue; k++ {
		assert.Equal(t, k, KindOf(k.Sentinel()))
	}
}

// FuzzMembers checks that scanning never panics and only ever narrows the
// input.
func FuzzMembers(f *testing.F) {
	for _, s := range []string{
		`"a": 1, "b": [1, {"c": "]"}]`,
		`a: 'x', b: "y\"z"`,
		`"a": {`,
		`,,,`,
		`"k": "v",`,
	} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		v := view(s)
		end := v.End()
		_, _ = Members(&v, func(n, val strview.View) bool {
			if n.Offset() < 0 || n.End() > end || val.End() > end {
				t.Fatalf("member outside input: %q", s)
			}
			return false
		})
		if v.Offset() < 0 || v.End() > end {
			t.Fatalf("rest outside input: %q", s)
		}
	})
}
