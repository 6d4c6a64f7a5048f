package clj

import "testing"

// FuzzTokenize feeds arbitrary inputs to the lexer to catch panics. The
// lexer should never panic — malformed input must come back as a
// TokenizerError.
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		`(+ 1 2)`,
		`(defn f [x & more] (apply + x more))`,
		`{:a 1, :b [2 3]}`,
		`"str with \n escape \" quote"`,
		"`(a ~b ~@cs)",
		`; comment to eol`,
		`:kw :ns/kw alias/name`,
		`true false nil`,
		`-1 -0.5 3.25`,
		``,
		`   `,
		"\t\n\r,,,",
		`"unterminated`,
		`1.`,
		`1.2.3`,
		`~@`,
		`'`,
		"\xff\xfe",
		`((((`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Tokenize panicked on input %q: %v", input, r)
			}
		}()
		Tokenize(input)
	})
}
