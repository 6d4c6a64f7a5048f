// builtin_strings.go — string building and the print sink.
package clj

import "strings"

func registerStringBuiltins(env *Env) {
	defineNative(env, "str", func(args []Value) (Value, error) {
		var b strings.Builder
		for _, a := range args {
			b.WriteString(ValueToString(a))
		}
		return Str(b.String()), nil
	})
}

// registerPrintBuiltins installs println wired to the session's output sink.
// It is only called when a sink is configured; a session without output has
// no println binding at all.
func registerPrintBuiltins(env *Env, output func(string)) {
	defineNative(env, "println", func(args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = ValueToString(a)
		}
		output(strings.Join(parts, " "))
		return Nil, nil
	})
}
