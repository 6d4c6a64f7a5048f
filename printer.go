// printer.go — canonical textual rendering of values.
//
// Two formatters:
//
//   - PrintString renders the canonical read-back form: strings re-escaped
//     and quoted, collections in literal syntax.
//   - ValueToString is the plain-text variant used by str/println: identical
//     except strings are emitted unquoted.
package clj

import (
	"strconv"
	"strings"
)

// PrintString produces the canonical printed form of v.
func PrintString(v Value) string {
	var b strings.Builder
	writeValue(&b, v, true)
	return b.String()
}

// ValueToString renders v for str/println: like PrintString but strings are
// unquoted.
func ValueToString(v Value) string {
	var b strings.Builder
	writeValue(&b, v, false)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, readable bool) {
	switch v.Tag {
	case VTNil:
		b.WriteString("nil")
	case VTBool:
		if v.Bool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case VTNumber:
		b.WriteString(formatNumber(v.Num()))
	case VTString:
		if readable {
			b.WriteString(quoteString(v.Str()))
		} else {
			b.WriteString(v.Str())
		}
	case VTKeyword, VTSymbol:
		b.WriteString(v.Str())
	case VTList:
		writeSeq(b, v.Items(), "(", ")", readable)
	case VTVector:
		writeSeq(b, v.Items(), "[", "]", readable)
	case VTMap:
		b.WriteByte('{')
		for i, e := range v.Map().Entries {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeValue(b, e.Key, readable)
			b.WriteByte(' ')
			writeValue(b, e.Val, readable)
		}
		b.WriteByte('}')
	case VTFun, VTMacro:
		writeFn(b, v.Fn(), readable)
	case VTNative:
		b.WriteString("(native-fn ")
		b.WriteString(v.Native().Name)
		b.WriteByte(')')
	}
}

func writeSeq(b *strings.Builder, items []Value, open, close string, readable bool) {
	b.WriteString(open)
	for i, it := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeValue(b, it, readable)
	}
	b.WriteString(close)
}

// writeFn renders a closure as (fn [params...] body...) for a single arity
// and (fn ([...] ...) ([...] ...)) for multi-arity. Variadic params render
// as `& rest`.
func writeFn(b *strings.Builder, f *Fn, readable bool) {
	b.WriteString("(fn ")
	if len(f.Arities) == 1 {
		writeArity(b, &f.Arities[0], readable)
	} else {
		for i := range f.Arities {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('(')
			writeArity(b, &f.Arities[i], readable)
			b.WriteByte(')')
		}
	}
	b.WriteByte(')')
}

func writeArity(b *strings.Builder, a *Arity, readable bool) {
	b.WriteByte('[')
	for i, p := range a.Params {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	if a.Variadic() {
		if len(a.Params) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("& ")
		b.WriteString(a.RestParam)
	}
	b.WriteByte(']')
	for _, form := range a.Body {
		b.WriteByte(' ')
		writeValue(b, form, readable)
	}
}

// formatNumber renders the shortest decimal that round-trips, with no
// exponent notation and no trailing zeros. Integral doubles print without a
// decimal point. NaN and the infinities print as Go formats them; double
// arithmetic semantics are deliberately the host's.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
