package clj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string) Value {
	t.Helper()
	forms, err := Parse(src)
	require.NoError(t, err, "source: %s", src)
	require.Len(t, forms, 1)
	return forms[0]
}

func TestParse_Atoms(t *testing.T) {
	assert.True(t, Equal(parseOne(t, "42"), Num(42)))
	assert.True(t, Equal(parseOne(t, "-1.5"), Num(-1.5)))
	assert.True(t, Equal(parseOne(t, `"hi"`), Str("hi")))
	assert.True(t, Equal(parseOne(t, ":k"), Keyword(":k")))
	assert.True(t, Equal(parseOne(t, "foo"), Symbol("foo")))
	assert.True(t, Equal(parseOne(t, "true"), True))
	assert.True(t, Equal(parseOne(t, "false"), False))
	assert.True(t, Equal(parseOne(t, "nil"), Nil))
}

func TestParse_Collections(t *testing.T) {
	form := parseOne(t, "(a [1 2] {:k 3})")
	wantPrinted(t, form, "(a [1 2] {:k 3})")
	require.Equal(t, VTList, form.Tag)
	require.Equal(t, VTVector, form.Items()[1].Tag)
	require.Equal(t, VTMap, form.Items()[2].Tag)
}

func TestParse_NestedForms(t *testing.T) {
	forms, err := Parse("(def x 1)\n(def y (+ x 2))")
	require.NoError(t, err)
	require.Len(t, forms, 2)
	wantPrinted(t, forms[1], "(def y (+ x 2))")
}

func TestParse_CommentsDropped(t *testing.T) {
	forms, err := Parse("; leading\n1 ; trailing\n2")
	require.NoError(t, err)
	require.Len(t, forms, 2)
}

func TestParse_ReaderMacros(t *testing.T) {
	wantPrinted(t, parseOne(t, "'x"), "(quote x)")
	wantPrinted(t, parseOne(t, "`x"), "(quasiquote x)")
	wantPrinted(t, parseOne(t, "~x"), "(unquote x)")
	wantPrinted(t, parseOne(t, "~@xs"), "(unquote-splicing xs)")
	wantPrinted(t, parseOne(t, "`(a ~b ~@cs)"), "(quasiquote (a (unquote b) (unquote-splicing cs)))")
}

func TestParse_MapOddLength(t *testing.T) {
	_, err := Parse("{:a 1 :b}")
	require.Error(t, err)
	var pe *ParserError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "even number of forms")
}

func TestParse_UnclosedList(t *testing.T) {
	_, err := Parse("(+ 1\n   (+ 2 3)")
	require.Error(t, err)
	var pe *ParserError
	require.ErrorAs(t, err, &pe)
	// Points at where the unterminated form started.
	assert.Equal(t, 1, pe.Line)
	assert.Equal(t, 1, pe.Col)
	assert.Contains(t, pe.Msg, "unclosed (")
}

func TestParse_UnexpectedClosingDelimiter(t *testing.T) {
	_, err := Parse("a)")
	require.Error(t, err)
	var pe *ParserError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Col)
	assert.Contains(t, pe.Msg, "unexpected )")
}

func TestParse_MismatchedDelimiter(t *testing.T) {
	_, err := Parse("(]")
	require.Error(t, err)
	var pe *ParserError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "unexpected ]")
}

func TestParse_QuoteAtEOF(t *testing.T) {
	_, err := Parse("'")
	require.Error(t, err)
	var pe *ParserError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "must be followed by a form")
}

func TestParse_MapDuplicateKeysLastWins(t *testing.T) {
	form := parseOne(t, "{:a 1 :a 2}")
	require.Equal(t, VTMap, form.Tag)
	require.Equal(t, 1, form.Map().Len())
	v, ok := form.Map().Get(Keyword(":a"))
	require.True(t, ok)
	assert.True(t, Equal(v, Num(2)))
}
