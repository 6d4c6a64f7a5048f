// interpreter.go — the tree-walking evaluator.
//
// Eval is the single entry point. Atoms self-evaluate, symbols resolve
// through the env chain (with alias/name qualification), vectors and maps
// evaluate element-wise, and lists dispatch in order on: special form →
// macro expansion → function application → keyword lookup.
//
// recur is not an error: it is a dedicated control signal carried on the
// error channel and caught at exactly two points — the call-apply loop for
// function bodies and the loop special form's body runner. Anywhere else it
// surfaces to the session layer, which reports it as a runtime failure.
package clj

import (
	"fmt"
	"strings"
)

// specialForms are dispatched before macro expansion and cannot be
// redefined.
var specialForms = map[string]bool{
	"quote":      true,
	"quasiquote": true,
	"def":        true,
	"ns":         true,
	"if":         true,
	"do":         true,
	"let":        true,
	"fn":         true,
	"defmacro":   true,
	"loop":       true,
	"recur":      true,
}

// recurSignal is the internal control-flow value raised by (recur ...). It
// implements error so it can ride the ordinary return path, but it is not a
// failure; the Error text only shows when a recur escapes both catch points.
type recurSignal struct {
	args []Value
}

func (r *recurSignal) Error() string { return "recur called outside of loop or fn" }

// Eval evaluates a form in env.
func Eval(form Value, env *Env) (Value, error) {
	switch form.Tag {
	case VTSymbol:
		return evalSymbol(form.Str(), env)
	case VTList:
		return evalList(form, env)
	case VTVector:
		items := form.Items()
		out := make([]Value, len(items))
		for i, it := range items {
			v, err := Eval(it, env)
			if err != nil {
				return Nil, err
			}
			out[i] = v
		}
		return Vector(out...), nil
	case VTMap:
		src := form.Map()
		out := &MapObject{Entries: make([]MapEntry, 0, src.Len())}
		for _, e := range src.Entries {
			k, err := Eval(e.Key, env)
			if err != nil {
				return Nil, err
			}
			v, err := Eval(e.Val, env)
			if err != nil {
				return Nil, err
			}
			out.set(k, v)
		}
		return MapVal(out), nil
	default:
		// Numbers, strings, booleans, nil, keywords and callables
		// self-evaluate.
		return form, nil
	}
}

// EvalForms evaluates forms in order as an implicit do, returning the last
// result (Nil when empty).
func EvalForms(forms []Value, env *Env) (Value, error) {
	result := Nil
	for _, f := range forms {
		v, err := Eval(f, env)
		if err != nil {
			return Nil, err
		}
		result = v
	}
	return result, nil
}

// evalSymbol resolves name in env. Names shaped alias/name (both sides
// non-empty) resolve through the nearest namespace env's alias table.
func evalSymbol(name string, env *Env) (Value, error) {
	if idx := strings.Index(name, "/"); idx > 0 && idx < len(name)-1 {
		alias, rest := name[:idx], name[idx+1:]
		nsEnv := env.NamespaceEnv()
		if nsEnv == nil {
			return Nil, evalErrf("No such namespace alias: %s", alias)
		}
		target, ok := nsEnv.Alias(alias)
		if !ok {
			return Nil, evalErrf("No such namespace alias: %s", alias)
		}
		return target.Lookup(rest)
	}
	return env.Lookup(name)
}

func evalList(form Value, env *Env) (Value, error) {
	items := form.Items()
	if len(items) == 0 {
		return Nil, &EvalError{Msg: "cannot evaluate an empty list", Form: &form}
	}
	head := items[0]

	if head.Tag == VTSymbol && specialForms[head.Str()] {
		return evalSpecialForm(head.Str(), form, env)
	}

	callee, err := Eval(head, env)
	if err != nil {
		return Nil, err
	}

	switch callee.Tag {
	case VTMacro:
		expanded, err := applyFn(callee.Fn(), items[1:])
		if err != nil {
			return Nil, err
		}
		return Eval(expanded, env)
	case VTFun, VTNative:
		args, err := evalArgs(items[1:], env)
		if err != nil {
			return Nil, err
		}
		return Apply(callee, args)
	case VTKeyword:
		return applyKeyword(callee, items[1:], env)
	default:
		if head.Tag == VTSymbol {
			return Nil, &EvalError{Msg: fmt.Sprintf("%s is not a function", head.Str()), Form: &form}
		}
		return Nil, &EvalError{Msg: "first element of a list must be a function or special form", Form: &form}
	}
}

func evalArgs(forms []Value, env *Env) ([]Value, error) {
	args := make([]Value, len(forms))
	for i, f := range forms {
		v, err := Eval(f, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// applyKeyword implements keywords in call position: (:k m) looks :k up in
// the map m, (:k m default) falls back to default. Non-map subjects yield
// the default (or nil).
func applyKeyword(kw Value, argForms []Value, env *Env) (Value, error) {
	if len(argForms) < 1 || len(argForms) > 2 {
		return Nil, evalErrf("%s expects one or two arguments when called as a function", kw.Str())
	}
	subject, err := Eval(argForms[0], env)
	if err != nil {
		return Nil, err
	}
	def := Nil
	if len(argForms) == 2 {
		if def, err = Eval(argForms[1], env); err != nil {
			return Nil, err
		}
	}
	if subject.Tag == VTMap {
		if v, ok := subject.Map().Get(kw); ok {
			return v, nil
		}
	}
	return def, nil
}

// Apply calls a Function or NativeFunction with already-evaluated args.
func Apply(callee Value, args []Value) (Value, error) {
	switch callee.Tag {
	case VTNative:
		return callee.Native().Fn(args)
	case VTFun:
		return applyFn(callee.Fn(), args)
	default:
		return Nil, evalErrf("%s is not a callable function", PrintString(callee))
	}
}

// applyFn runs the call-apply loop. On a recur signal the arity is
// re-resolved for the new argument count, so recur may cross arities in a
// multi-arity function as long as the count matches some arity.
//
// Macro application reuses this loop with unevaluated forms as args.
func applyFn(f *Fn, args []Value) (Value, error) {
	cur := args
	for {
		arity, err := resolveArity(f, len(cur))
		if err != nil {
			return Nil, err
		}
		local, err := bindParams(arity, cur, f.Env)
		if err != nil {
			return Nil, err
		}
		v, err := EvalForms(arity.Body, local)
		if rs, ok := err.(*recurSignal); ok {
			cur = rs.args
			continue
		}
		return v, err
	}
}

// resolveArity prefers a fixed arity with exactly n params, then the single
// variadic arity when n covers its fixed prefix.
func resolveArity(f *Fn, n int) (*Arity, error) {
	var variadic *Arity
	for i := range f.Arities {
		a := &f.Arities[i]
		if a.Variadic() {
			variadic = a
			continue
		}
		if len(a.Params) == n {
			return a, nil
		}
	}
	if variadic != nil && n >= len(variadic.Params) {
		return variadic, nil
	}
	avail := make([]string, 0, len(f.Arities))
	for i := range f.Arities {
		a := &f.Arities[i]
		if a.Variadic() {
			avail = append(avail, fmt.Sprintf("%d+", len(a.Params)))
		} else {
			avail = append(avail, fmt.Sprintf("%d", len(a.Params)))
		}
	}
	return nil, evalErrf("No matching arity for %d arguments. Available arities: %s", n, strings.Join(avail, ", "))
}

// bindParams builds the call env: fixed params bind pairwise; a rest param
// collects the overflow into a List, or nil when nothing remains.
func bindParams(arity *Arity, args []Value, outer *Env) (*Env, error) {
	if !arity.Variadic() {
		return outer.Extend(arity.Params, args)
	}
	if len(args) < len(arity.Params) {
		return nil, evalErrf("Arguments length mismatch: expected at least %d, got %d", len(arity.Params), len(args))
	}
	local := NewEnv(outer)
	for i, p := range arity.Params {
		local.Define(p, args[i])
	}
	restArgs := args[len(arity.Params):]
	if len(restArgs) == 0 {
		local.Define(arity.RestParam, Nil)
	} else {
		rest := make([]Value, len(restArgs))
		copy(rest, restArgs)
		local.Define(arity.RestParam, List(rest...))
	}
	return local, nil
}

func evalSpecialForm(name string, form Value, env *Env) (Value, error) {
	items := form.Items()
	tail := items[1:]
	switch name {
	case "quote":
		if len(tail) != 1 {
			return Nil, &EvalError{Msg: "quote expects exactly one argument", Form: &form}
		}
		return tail[0], nil

	case "quasiquote":
		if len(tail) != 1 {
			return Nil, &EvalError{Msg: "quasiquote expects exactly one argument", Form: &form}
		}
		return evalQuasiquote(tail[0], env)

	case "def":
		if len(tail) != 2 {
			return Nil, &EvalError{Msg: "def expects a name and a value", Form: &form}
		}
		if tail[0].Tag != VTSymbol {
			return Nil, &EvalError{Msg: "def expects a symbol name", Form: &form}
		}
		v, err := Eval(tail[1], env)
		if err != nil {
			return Nil, err
		}
		target := env.NamespaceEnv()
		if target == nil {
			target = env.Root()
		}
		target.Define(tail[0].Str(), v)
		return Nil, nil

	case "ns":
		// The session layer interprets (:require ...) clauses before
		// evaluation begins; at eval time the form is inert.
		return Nil, nil

	case "if":
		if len(tail) < 2 || len(tail) > 3 {
			return Nil, &EvalError{Msg: "if expects a condition, a then branch and an optional else branch", Form: &form}
		}
		cond, err := Eval(tail[0], env)
		if err != nil {
			return Nil, err
		}
		if Truthy(cond) {
			return Eval(tail[1], env)
		}
		if len(tail) == 3 {
			return Eval(tail[2], env)
		}
		return Nil, nil

	case "do":
		return EvalForms(tail, env)

	case "let":
		_, _, local, err := evalBindings("let", tail, env)
		if err != nil {
			return Nil, err
		}
		return EvalForms(tail[1:], local)

	case "fn":
		arities, err := parseFnArities("fn", tail)
		if err != nil {
			return Nil, err
		}
		return FunVal(&Fn{Arities: arities, Env: env}), nil

	case "defmacro":
		if len(tail) < 2 {
			return Nil, &EvalError{Msg: "defmacro expects a name and at least one arity", Form: &form}
		}
		if tail[0].Tag != VTSymbol {
			return Nil, &EvalError{Msg: "defmacro expects a symbol name", Form: &form}
		}
		arities, err := parseFnArities("defmacro", tail[1:])
		if err != nil {
			return Nil, err
		}
		env.Root().Define(tail[0].Str(), MacroVal(&Fn{Arities: arities, Env: env}))
		return Nil, nil

	case "loop":
		return evalLoop(form, env)

	case "recur":
		args, err := evalArgs(tail, env)
		if err != nil {
			return Nil, err
		}
		return Nil, &recurSignal{args: args}

	default:
		return Nil, evalErrf("%s is not implemented", name)
	}
}

// evalBindings handles the shared [b1 v1 b2 v2 ...] shape of let and loop.
// Each init expression sees all prior bindings; the returned env has them
// all. Names and values come back in order for loop's re-binding.
func evalBindings(formName string, tail []Value, env *Env) ([]string, []Value, *Env, error) {
	if len(tail) == 0 || tail[0].Tag != VTVector {
		return nil, nil, nil, evalErrf("%s expects a bindings vector", formName)
	}
	binds := tail[0].Items()
	if len(binds)%2 != 0 {
		return nil, nil, nil, evalErrf("%s bindings vector must have an even number of forms", formName)
	}
	names := make([]string, 0, len(binds)/2)
	vals := make([]Value, 0, len(binds)/2)
	cur := env
	for i := 0; i+1 < len(binds); i += 2 {
		if binds[i].Tag != VTSymbol {
			return nil, nil, nil, evalErrf("%s binding names must be symbols", formName)
		}
		v, err := Eval(binds[i+1], cur)
		if err != nil {
			return nil, nil, nil, err
		}
		child := NewEnv(cur)
		child.Define(binds[i].Str(), v)
		names = append(names, binds[i].Str())
		vals = append(vals, v)
		cur = child
	}
	return names, vals, cur, nil
}

// evalLoop runs the loop/recur trampoline. Each iteration re-extends the
// env surrounding the loop form (not the accumulated inits env) with the
// current argument values.
func evalLoop(form Value, env *Env) (Value, error) {
	items := form.Items()
	tail := items[1:]
	names, cur, _, err := evalBindings("loop", tail, env)
	if err != nil {
		return Nil, err
	}
	body := tail[1:]

	for {
		local, err := env.Extend(names, cur)
		if err != nil {
			return Nil, err
		}
		v, err := EvalForms(body, local)
		if rs, ok := err.(*recurSignal); ok {
			if len(rs.args) != len(names) {
				return Nil, evalErrf("recur expected %d arguments, got %d", len(names), len(rs.args))
			}
			cur = rs.args
			continue
		}
		return v, err
	}
}

// evalQuasiquote walks a template form. (unquote x) evaluates x in place;
// (unquote-splicing x) inside a list or vector splices the elements of its
// (list or vector) result; everything else is preserved literally. List vs
// vector kind is preserved, and map keys and values are templated
// independently.
func evalQuasiquote(form Value, env *Env) (Value, error) {
	switch form.Tag {
	case VTList:
		items := form.Items()
		if len(items) == 2 && items[0].IsSymbol("unquote") {
			return Eval(items[1], env)
		}
		out, err := quasiquoteSeq(items, env)
		if err != nil {
			return Nil, err
		}
		return List(out...), nil
	case VTVector:
		out, err := quasiquoteSeq(form.Items(), env)
		if err != nil {
			return Nil, err
		}
		return Vector(out...), nil
	case VTMap:
		src := form.Map()
		out := &MapObject{Entries: make([]MapEntry, 0, src.Len())}
		for _, e := range src.Entries {
			k, err := evalQuasiquote(e.Key, env)
			if err != nil {
				return Nil, err
			}
			v, err := evalQuasiquote(e.Val, env)
			if err != nil {
				return Nil, err
			}
			out.set(k, v)
		}
		return MapVal(out), nil
	default:
		return form, nil
	}
}

func quasiquoteSeq(items []Value, env *Env) ([]Value, error) {
	out := make([]Value, 0, len(items))
	for _, e := range items {
		if e.Tag == VTList {
			sub := e.Items()
			if len(sub) == 2 && sub[0].IsSymbol("unquote-splicing") {
				v, err := Eval(sub[1], env)
				if err != nil {
					return nil, err
				}
				if !v.IsSeq() {
					return nil, evalErrf("unquote-splicing requires a list or vector, got %s", v.Tag)
				}
				out = append(out, v.Items()...)
				continue
			}
		}
		r, err := evalQuasiquote(e, env)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// parseFnArities parses the tail of a fn or defmacro form. A leading vector
// is the sole arity; otherwise every element must be an arity clause
// ([params...] body...).
func parseFnArities(formName string, tail []Value) ([]Arity, error) {
	if len(tail) == 0 {
		return nil, evalErrf("%s expects a parameter vector or arity clauses", formName)
	}
	var arities []Arity
	switch tail[0].Tag {
	case VTVector:
		a, err := parseArity(formName, tail[0], tail[1:])
		if err != nil {
			return nil, err
		}
		arities = []Arity{a}
	case VTList:
		for _, clause := range tail {
			if clause.Tag != VTList || len(clause.Items()) == 0 || clause.Items()[0].Tag != VTVector {
				return nil, evalErrf("%s arity clauses must be ([params...] body...) lists", formName)
			}
			c := clause.Items()
			a, err := parseArity(formName, c[0], c[1:])
			if err != nil {
				return nil, err
			}
			arities = append(arities, a)
		}
	default:
		return nil, evalErrf("%s expects a parameter vector or arity clauses", formName)
	}

	seen := make(map[int]bool)
	variadics := 0
	for i := range arities {
		a := &arities[i]
		if a.Variadic() {
			variadics++
			if variadics > 1 {
				return nil, evalErrf("%s may have at most one variadic arity", formName)
			}
			continue
		}
		if seen[len(a.Params)] {
			return nil, evalErrf("%s arities must have distinct parameter counts", formName)
		}
		seen[len(a.Params)] = true
	}
	return arities, nil
}

func parseArity(formName string, paramVec Value, body []Value) (Arity, error) {
	items := paramVec.Items()
	a := Arity{Body: body}
	for i := 0; i < len(items); i++ {
		p := items[i]
		if p.Tag != VTSymbol {
			return a, evalErrf("%s parameters must be symbols, got %s", formName, PrintString(p))
		}
		if p.Str() == "&" {
			if i != len(items)-2 {
				return a, evalErrf("%s expects & to be followed by exactly one rest parameter", formName)
			}
			restSym := items[i+1]
			if restSym.Tag != VTSymbol || restSym.Str() == "&" {
				return a, evalErrf("%s rest parameter must be a symbol", formName)
			}
			a.RestParam = restSym.Str()
			return a, nil
		}
		a.Params = append(a.Params, p.Str())
	}
	return a, nil
}
