package clj

import "testing"

// FuzzParse feeds arbitrary inputs through tokenize+parse to catch panics.
// Structural problems must surface as ParserError values, never as panics.
func FuzzParse(f *testing.F) {
	seeds := []string{
		`(def x 1)`,
		`(let [a 1 b 2] (+ a b))`,
		`[1 [2 [3]]]`,
		`{:a {:b {:c 1}}}`,
		`'(quote nested)`,
		"`(a ~b ~@cs)",
		`(fn ([x] x) ([x y] y))`,
		`{:odd}`,
		`)`,
		`(]`,
		`(`,
		`~`,
		`#weird`,
		``,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Parse panicked on input %q: %v", input, r)
			}
		}()
		Parse(input)
	})
}
