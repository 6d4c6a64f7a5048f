// builtin_hof.go — higher-order natives: map, filter, reduce, apply.
//
// Shape policy: map and filter return a Vector when the input is a Vector
// and a List otherwise. Maps iterate as [k v] 2-vectors.
package clj

func registerHigherOrderBuiltins(env *Env) {
	defineNative(env, "map", func(args []Value) (Value, error) {
		if err := wantArity("map", args, 2); err != nil {
			return Nil, err
		}
		f := args[0]
		items, ok := seqItems(args[1])
		if !ok {
			return Nil, evalErrf("map expects a collection, got %s", args[1].Tag)
		}
		out := make([]Value, len(items))
		for i, it := range items {
			v, err := Apply(f, []Value{it})
			if err != nil {
				return Nil, err
			}
			out[i] = v
		}
		if args[1].Tag == VTVector {
			return Vector(out...), nil
		}
		return List(out...), nil
	})

	defineNative(env, "filter", func(args []Value) (Value, error) {
		if err := wantArity("filter", args, 2); err != nil {
			return Nil, err
		}
		f := args[0]
		items, ok := seqItems(args[1])
		if !ok {
			return Nil, evalErrf("filter expects a collection, got %s", args[1].Tag)
		}
		var out []Value
		for _, it := range items {
			v, err := Apply(f, []Value{it})
			if err != nil {
				return Nil, err
			}
			if Truthy(v) {
				out = append(out, it)
			}
		}
		if args[1].Tag == VTVector {
			return Vector(out...), nil
		}
		return List(out...), nil
	})

	defineNative(env, "reduce", func(args []Value) (Value, error) {
		if len(args) < 2 || len(args) > 3 {
			return Nil, evalErrf("reduce expects a function, an optional initial value and a collection")
		}
		f := args[0]
		var acc Value
		var items []Value
		var ok bool
		if len(args) == 2 {
			items, ok = seqItems(args[1])
			if !ok {
				return Nil, evalErrf("reduce expects a collection, got %s", args[1].Tag)
			}
			if len(items) == 0 {
				return Nil, evalErrf("reduce expects a non-empty collection when called without an initial value")
			}
			acc = items[0]
			items = items[1:]
		} else {
			acc = args[1]
			items, ok = seqItems(args[2])
			if !ok {
				return Nil, evalErrf("reduce expects a collection, got %s", args[2].Tag)
			}
		}
		for _, it := range items {
			v, err := Apply(f, []Value{acc, it})
			if err != nil {
				return Nil, err
			}
			acc = v
		}
		return acc, nil
	})

	defineNative(env, "apply", func(args []Value) (Value, error) {
		if len(args) < 2 {
			return Nil, evalErrf("apply expects a function and at least one argument")
		}
		f := args[0]
		last := args[len(args)-1]
		tailItems, ok := seqItems(last)
		if !ok {
			return Nil, evalErrf("apply expects the last argument to be a collection, got %s", last.Tag)
		}
		callArgs := make([]Value, 0, len(args)-2+len(tailItems))
		callArgs = append(callArgs, args[1:len(args)-1]...)
		callArgs = append(callArgs, tailItems...)
		return Apply(f, callArgs)
	})
}
