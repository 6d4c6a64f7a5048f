// builtin_collections.go — non-mutating collection natives. Every operation
// that "modifies" a collection returns a fresh value.
package clj

import "math"

// entryVector renders a map entry as the 2-vector [k v] used wherever maps
// are consumed as sequences.
func entryVector(e MapEntry) Value { return Vector(e.Key, e.Val) }

// seqItems flattens a value into its element sequence: lists and vectors
// yield their items, maps yield [k v] pairs, nil yields nothing.
func seqItems(v Value) ([]Value, bool) {
	switch v.Tag {
	case VTNil:
		return nil, true
	case VTList, VTVector:
		return v.Items(), true
	case VTMap:
		m := v.Map()
		out := make([]Value, 0, m.Len())
		for _, e := range m.Entries {
			out = append(out, entryVector(e))
		}
		return out, true
	default:
		return nil, false
	}
}

// intIndex validates a numeric value as an exact integer index.
func intIndex(v Value) (int, bool) {
	if v.Tag != VTNumber {
		return 0, false
	}
	f := v.Num()
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return int(f), true
}

func registerCollectionBuiltins(env *Env) {
	defineNative(env, "count", func(args []Value) (Value, error) {
		if err := wantArity("count", args, 1); err != nil {
			return Nil, err
		}
		switch args[0].Tag {
		case VTList, VTVector:
			return Num(float64(len(args[0].Items()))), nil
		case VTMap:
			return Num(float64(args[0].Map().Len())), nil
		default:
			return Nil, evalErrf("count expects a list, vector or map, got %s", args[0].Tag)
		}
	})

	defineNative(env, "first", func(args []Value) (Value, error) {
		if err := wantArity("first", args, 1); err != nil {
			return Nil, err
		}
		switch args[0].Tag {
		case VTNil:
			return Nil, nil
		case VTList, VTVector:
			items := args[0].Items()
			if len(items) == 0 {
				return Nil, nil
			}
			return items[0], nil
		case VTMap:
			m := args[0].Map()
			if m.Len() == 0 {
				return Nil, nil
			}
			return entryVector(m.Entries[0]), nil
		default:
			return Nil, evalErrf("first expects a collection, got %s", args[0].Tag)
		}
	})

	defineNative(env, "rest", func(args []Value) (Value, error) {
		if err := wantArity("rest", args, 1); err != nil {
			return Nil, err
		}
		switch args[0].Tag {
		case VTNil:
			return List(), nil
		case VTList, VTVector:
			items := args[0].Items()
			if len(items) == 0 {
				return args[0], nil
			}
			out := make([]Value, len(items)-1)
			copy(out, items[1:])
			if args[0].Tag == VTVector {
				return Vector(out...), nil
			}
			return List(out...), nil
		case VTMap:
			m := args[0].Map()
			if m.Len() == 0 {
				return args[0], nil
			}
			out := &MapObject{Entries: make([]MapEntry, m.Len()-1)}
			copy(out.Entries, m.Entries[1:])
			return MapVal(out), nil
		default:
			return Nil, evalErrf("rest expects a collection, got %s", args[0].Tag)
		}
	})

	defineNative(env, "cons", func(args []Value) (Value, error) {
		if err := wantArity("cons", args, 2); err != nil {
			return Nil, err
		}
		x, coll := args[0], args[1]
		switch coll.Tag {
		case VTNil:
			return List(x), nil
		case VTList, VTVector:
			items := coll.Items()
			out := make([]Value, 0, len(items)+1)
			out = append(out, x)
			out = append(out, items...)
			if coll.Tag == VTVector {
				return Vector(out...), nil
			}
			return List(out...), nil
		case VTMap:
			return Nil, evalErrf("cons does not support maps")
		default:
			return Nil, evalErrf("cons expects a collection, got %s", coll.Tag)
		}
	})

	defineNative(env, "conj", func(args []Value) (Value, error) {
		if len(args) < 1 {
			return Nil, evalErrf("conj expects at least one argument")
		}
		coll := args[0]
		extra := args[1:]
		switch coll.Tag {
		case VTNil:
			coll = List()
			fallthrough
		case VTList:
			out := make([]Value, len(coll.Items()))
			copy(out, coll.Items())
			for _, x := range extra {
				out = append([]Value{x}, out...)
			}
			return List(out...), nil
		case VTVector:
			items := coll.Items()
			out := make([]Value, 0, len(items)+len(extra))
			out = append(out, items...)
			out = append(out, extra...)
			return Vector(out...), nil
		case VTMap:
			m := coll.Map()
			for _, x := range extra {
				if x.Tag != VTVector || len(x.Items()) != 2 {
					return Nil, evalErrf("conj expects [key value] pairs when the target is a map, got %s", PrintString(x))
				}
				pair := x.Items()
				m = m.Assoc(pair[0], pair[1])
			}
			return MapVal(m), nil
		default:
			return Nil, evalErrf("conj expects a collection, got %s", coll.Tag)
		}
	})

	defineNative(env, "assoc", func(args []Value) (Value, error) {
		if len(args) < 2 {
			return Nil, evalErrf("assoc expects a collection and at least one key/value pair")
		}
		if (len(args)-1)%2 != 0 {
			return Nil, evalErrf("assoc expects an even number of key/value arguments")
		}
		target := args[0]
		switch target.Tag {
		case VTMap:
			m := target.Map()
			for i := 1; i+1 < len(args); i += 2 {
				m = m.Assoc(args[i], args[i+1])
			}
			return MapVal(m), nil
		case VTVector:
			items := make([]Value, len(target.Items()))
			copy(items, target.Items())
			for i := 1; i+1 < len(args); i += 2 {
				idx, ok := intIndex(args[i])
				if !ok {
					return Nil, evalErrf("assoc expects a number index for vectors, got %s", PrintString(args[i]))
				}
				// Writing to len(items) appends, extending by one.
				if idx < 0 || idx > len(items) {
					return Nil, evalErrf("assoc index %d is out of bounds for vector of length %d", idx, len(items))
				}
				if idx == len(items) {
					items = append(items, args[i+1])
				} else {
					items[idx] = args[i+1]
				}
			}
			return Vector(items...), nil
		case VTList:
			return Nil, evalErrf("assoc does not support lists")
		default:
			return Nil, evalErrf("assoc expects a map or a vector, got %s", target.Tag)
		}
	})

	defineNative(env, "dissoc", func(args []Value) (Value, error) {
		if len(args) < 2 {
			return Nil, evalErrf("dissoc expects a collection and at least one key")
		}
		target := args[0]
		switch target.Tag {
		case VTMap:
			m := target.Map()
			for _, k := range args[1:] {
				m, _ = m.Dissoc(k)
			}
			return MapVal(m), nil
		case VTVector:
			items := make([]Value, len(target.Items()))
			copy(items, target.Items())
			for _, k := range args[1:] {
				idx, ok := intIndex(k)
				if !ok {
					return Nil, evalErrf("dissoc expects a number index for vectors, got %s", PrintString(k))
				}
				if idx < 0 || idx >= len(items) {
					return Nil, evalErrf("dissoc index %d is out of bounds for vector of length %d", idx, len(items))
				}
				items = append(items[:idx], items[idx+1:]...)
			}
			return Vector(items...), nil
		case VTList:
			return Nil, evalErrf("dissoc does not support lists")
		default:
			return Nil, evalErrf("dissoc expects a map or a vector, got %s", target.Tag)
		}
	})

	defineNative(env, "get", func(args []Value) (Value, error) {
		if len(args) < 2 || len(args) > 3 {
			return Nil, evalErrf("get expects a target, a key and an optional default")
		}
		def := Nil
		if len(args) == 3 {
			def = args[2]
		}
		target, key := args[0], args[1]
		switch target.Tag {
		case VTMap:
			if v, ok := target.Map().Get(key); ok {
				return v, nil
			}
			return def, nil
		case VTVector:
			idx, ok := intIndex(key)
			if !ok || idx < 0 || idx >= len(target.Items()) {
				return def, nil
			}
			return target.Items()[idx], nil
		default:
			return def, nil
		}
	})

	defineNative(env, "seq", func(args []Value) (Value, error) {
		if err := wantArity("seq", args, 1); err != nil {
			return Nil, err
		}
		items, ok := seqItems(args[0])
		if !ok {
			return Nil, evalErrf("seq expects a collection, got %s", args[0].Tag)
		}
		if len(items) == 0 {
			return Nil, nil
		}
		return List(items...), nil
	})

	defineNative(env, "nth", func(args []Value) (Value, error) {
		if len(args) < 2 || len(args) > 3 {
			return Nil, evalErrf("nth expects a collection, an index and an optional default")
		}
		coll := args[0]
		if !coll.IsSeq() {
			return Nil, evalErrf("nth expects a list or vector, got %s", coll.Tag)
		}
		items := coll.Items()
		idx, ok := intIndex(args[1])
		if !ok || idx < 0 || idx >= len(items) {
			if len(args) == 3 {
				return args[2], nil
			}
			return Nil, evalErrf("nth index %s is out of bounds for collection of length %d", PrintString(args[1]), len(items))
		}
		return items[idx], nil
	})

	defineNative(env, "take", func(args []Value) (Value, error) {
		if err := wantArity("take", args, 2); err != nil {
			return Nil, err
		}
		if args[0].Tag != VTNumber {
			return Nil, evalErrf("take expects a number count, got %s", PrintString(args[0]))
		}
		items, ok := seqItems(args[1])
		if !ok {
			return Nil, evalErrf("take expects a collection, got %s", args[1].Tag)
		}
		n := int(args[0].Num())
		if n < 0 {
			n = 0
		}
		if n > len(items) {
			n = len(items)
		}
		out := make([]Value, n)
		copy(out, items[:n])
		return List(out...), nil
	})

	defineNative(env, "drop", func(args []Value) (Value, error) {
		if err := wantArity("drop", args, 2); err != nil {
			return Nil, err
		}
		if args[0].Tag != VTNumber {
			return Nil, evalErrf("drop expects a number count, got %s", PrintString(args[0]))
		}
		items, ok := seqItems(args[1])
		if !ok {
			return Nil, evalErrf("drop expects a collection, got %s", args[1].Tag)
		}
		n := int(args[0].Num())
		if n < 0 {
			n = 0
		}
		if n > len(items) {
			n = len(items)
		}
		out := make([]Value, len(items)-n)
		copy(out, items[n:])
		return List(out...), nil
	})

	defineNative(env, "concat", func(args []Value) (Value, error) {
		var out []Value
		for _, a := range args {
			items, ok := seqItems(a)
			if !ok {
				return Nil, evalErrf("concat expects collections, got %s", a.Tag)
			}
			out = append(out, items...)
		}
		return List(out...), nil
	})

	defineNative(env, "into", func(args []Value) (Value, error) {
		if err := wantArity("into", args, 2); err != nil {
			return Nil, err
		}
		to, from := args[0], args[1]
		items, ok := seqItems(from)
		if !ok {
			return Nil, evalErrf("into expects a collection source, got %s", from.Tag)
		}
		switch to.Tag {
		case VTList:
			out := make([]Value, len(to.Items()))
			copy(out, to.Items())
			for _, x := range items {
				out = append([]Value{x}, out...)
			}
			return List(out...), nil
		case VTVector:
			out := make([]Value, 0, len(to.Items())+len(items))
			out = append(out, to.Items()...)
			out = append(out, items...)
			return Vector(out...), nil
		case VTMap:
			m := to.Map()
			for _, x := range items {
				if x.Tag != VTVector || len(x.Items()) != 2 {
					return Nil, evalErrf("into expects [key value] pairs when the target is a map, got %s", PrintString(x))
				}
				pair := x.Items()
				m = m.Assoc(pair[0], pair[1])
			}
			return MapVal(m), nil
		default:
			return Nil, evalErrf("into expects a list, vector or map target, got %s", to.Tag)
		}
	})

	defineNative(env, "zipmap", func(args []Value) (Value, error) {
		if err := wantArity("zipmap", args, 2); err != nil {
			return Nil, err
		}
		if !args[0].IsSeq() || !args[1].IsSeq() {
			return Nil, evalErrf("zipmap expects a sequence of keys and a sequence of values")
		}
		ks, vs := args[0].Items(), args[1].Items()
		n := len(ks)
		if len(vs) < n {
			n = len(vs)
		}
		m := &MapObject{}
		for i := 0; i < n; i++ {
			m.set(ks[i], vs[i])
		}
		return MapVal(m), nil
	})

	defineNative(env, "keys", func(args []Value) (Value, error) {
		if err := wantArity("keys", args, 1); err != nil {
			return Nil, err
		}
		if args[0].Tag != VTMap {
			return Nil, evalErrf("keys expects a map, got %s", args[0].Tag)
		}
		m := args[0].Map()
		out := make([]Value, 0, m.Len())
		for _, e := range m.Entries {
			out = append(out, e.Key)
		}
		return Vector(out...), nil
	})

	defineNative(env, "vals", func(args []Value) (Value, error) {
		if err := wantArity("vals", args, 1); err != nil {
			return Nil, err
		}
		if args[0].Tag != VTMap {
			return Nil, evalErrf("vals expects a map, got %s", args[0].Tag)
		}
		m := args[0].Map()
		out := make([]Value, 0, m.Len())
		for _, e := range m.Entries {
			out = append(out, e.Val)
		}
		return Vector(out...), nil
	})
}
