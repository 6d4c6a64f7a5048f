// builtin_introspection.go — eval, type and macroexpansion natives.
//
// These are the natives that reach back into the running session: eval runs
// in the session's current namespace env, and macroexpansion resolves macro
// names there. The session passes itself in through the currentEnv closure
// at registration time.
package clj

func registerIntrospectionBuiltins(env *Env, currentEnv func() *Env) {
	defineNative(env, "eval", func(args []Value) (Value, error) {
		if err := wantArity("eval", args, 1); err != nil {
			return Nil, err
		}
		return Eval(args[0], currentEnv())
	})

	defineNative(env, "type", func(args []Value) (Value, error) {
		if err := wantArity("type", args, 1); err != nil {
			return Nil, err
		}
		switch args[0].Tag {
		case VTNil:
			return Keyword(":nil"), nil
		case VTBool:
			return Keyword(":boolean"), nil
		case VTNumber:
			return Keyword(":number"), nil
		case VTString:
			return Keyword(":string"), nil
		case VTKeyword:
			return Keyword(":keyword"), nil
		case VTSymbol:
			return Keyword(":symbol"), nil
		case VTList:
			return Keyword(":list"), nil
		case VTVector:
			return Keyword(":vector"), nil
		case VTMap:
			return Keyword(":map"), nil
		default:
			// Functions, macros and natives all collapse to :function.
			return Keyword(":function"), nil
		}
	})

	defineNative(env, "macroexpand-1", func(args []Value) (Value, error) {
		if err := wantArity("macroexpand-1", args, 1); err != nil {
			return Nil, err
		}
		expanded, _, err := macroexpand1(args[0], currentEnv())
		return expanded, err
	})

	defineNative(env, "macroexpand", func(args []Value) (Value, error) {
		if err := wantArity("macroexpand", args, 1); err != nil {
			return Nil, err
		}
		form := args[0]
		for {
			expanded, didExpand, err := macroexpand1(form, currentEnv())
			if err != nil {
				return Nil, err
			}
			if !didExpand {
				return expanded, nil
			}
			form = expanded
		}
	})
}

// macroexpand1 performs a single expansion step: if form is a list whose
// head symbol names a macro in env, the macro is applied to the unevaluated
// argument forms. Otherwise the form comes back unchanged.
func macroexpand1(form Value, env *Env) (Value, bool, error) {
	if form.Tag != VTList {
		return form, false, nil
	}
	items := form.Items()
	if len(items) == 0 || items[0].Tag != VTSymbol {
		return form, false, nil
	}
	name := items[0].Str()
	if specialForms[name] {
		return form, false, nil
	}
	v, err := env.Lookup(name)
	if err != nil || v.Tag != VTMacro {
		return form, false, nil
	}
	expanded, err := applyFn(v.Fn(), items[1:])
	if err != nil {
		return Nil, false, err
	}
	return expanded, true, nil
}
