// builtin_core.go — arithmetic, comparison, equality and predicate natives.
package clj

import "math"

// defineNative installs a named host function on env.
func defineNative(env *Env, name string, fn NativeFn) {
	env.Define(name, NativeVal(&Native{Name: name, Fn: fn}))
}

// wantNumbers verifies every argument is a number. The error names the
// operator and carries the first offending operand.
func wantNumbers(op string, args []Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		if a.Tag != VTNumber {
			return nil, evalErrf("%s expects all arguments to be numbers, got %s", op, PrintString(a))
		}
		out[i] = a.Num()
	}
	return out, nil
}

func wantArity(op string, args []Value, n int) error {
	if len(args) != n {
		if n == 1 {
			return evalErrf("%s expects exactly one argument, got %d", op, len(args))
		}
		return evalErrf("%s expects exactly %d arguments, got %d", op, n, len(args))
	}
	return nil
}

func registerCoreBuiltins(env *Env) {
	defineNative(env, "+", func(args []Value) (Value, error) {
		nums, err := wantNumbers("+", args)
		if err != nil {
			return Nil, err
		}
		sum := 0.0
		for _, n := range nums {
			sum += n
		}
		return Num(sum), nil
	})

	defineNative(env, "-", func(args []Value) (Value, error) {
		if len(args) == 0 {
			return Nil, evalErrf("- expects at least one argument")
		}
		nums, err := wantNumbers("-", args)
		if err != nil {
			return Nil, err
		}
		if len(nums) == 1 {
			return Num(-nums[0]), nil
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			acc -= n
		}
		return Num(acc), nil
	})

	defineNative(env, "*", func(args []Value) (Value, error) {
		nums, err := wantNumbers("*", args)
		if err != nil {
			return Nil, err
		}
		prod := 1.0
		for _, n := range nums {
			prod *= n
		}
		return Num(prod), nil
	})

	defineNative(env, "/", func(args []Value) (Value, error) {
		if len(args) == 0 {
			return Nil, evalErrf("/ expects at least one argument")
		}
		nums, err := wantNumbers("/", args)
		if err != nil {
			return Nil, err
		}
		if len(nums) == 1 {
			if nums[0] == 0 {
				return Nil, evalErrf("/ cannot divide by zero")
			}
			return Num(1 / nums[0]), nil
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			if n == 0 {
				return Nil, evalErrf("/ cannot divide by zero")
			}
			acc /= n
		}
		return Num(acc), nil
	})

	comparison := func(op string, holds func(a, b float64) bool) {
		defineNative(env, op, func(args []Value) (Value, error) {
			if len(args) < 2 {
				return Nil, evalErrf("%s expects at least two arguments", op)
			}
			nums, err := wantNumbers(op, args)
			if err != nil {
				return Nil, err
			}
			for i := 0; i+1 < len(nums); i++ {
				if !holds(nums[i], nums[i+1]) {
					return False, nil
				}
			}
			return True, nil
		})
	}
	comparison("<", func(a, b float64) bool { return a < b })
	comparison("<=", func(a, b float64) bool { return a <= b })
	comparison(">", func(a, b float64) bool { return a > b })
	comparison(">=", func(a, b float64) bool { return a >= b })

	defineNative(env, "=", func(args []Value) (Value, error) {
		if len(args) < 2 {
			return Nil, evalErrf("= expects at least two arguments")
		}
		for i := 0; i+1 < len(args); i++ {
			if !Equal(args[i], args[i+1]) {
				return False, nil
			}
		}
		return True, nil
	})

	predicate := func(name string, holds func(v Value) bool) {
		defineNative(env, name, func(args []Value) (Value, error) {
			if err := wantArity(name, args, 1); err != nil {
				return Nil, err
			}
			return Bool(holds(args[0])), nil
		})
	}
	predicate("nil?", func(v Value) bool { return v.Tag == VTNil })
	predicate("true?", func(v Value) bool { return v.Tag == VTBool && v.Bool() })
	predicate("false?", func(v Value) bool { return v.Tag == VTBool && !v.Bool() })
	predicate("truthy?", Truthy)
	predicate("falsy?", func(v Value) bool { return !Truthy(v) })
	predicate("number?", func(v Value) bool { return v.Tag == VTNumber })
	predicate("string?", func(v Value) bool { return v.Tag == VTString })
	predicate("boolean?", func(v Value) bool { return v.Tag == VTBool })
	predicate("keyword?", func(v Value) bool { return v.Tag == VTKeyword })
	predicate("symbol?", func(v Value) bool { return v.Tag == VTSymbol })
	predicate("vector?", func(v Value) bool { return v.Tag == VTVector })
	predicate("list?", func(v Value) bool { return v.Tag == VTList })
	predicate("map?", func(v Value) bool { return v.Tag == VTMap })
	predicate("fn?", func(v Value) bool { return v.Tag == VTFun || v.Tag == VTNative })
	predicate("coll?", func(v Value) bool {
		return v.Tag == VTList || v.Tag == VTVector || v.Tag == VTMap
	})

	defineNative(env, "not", func(args []Value) (Value, error) {
		if err := wantArity("not", args, 1); err != nil {
			return Nil, err
		}
		return Bool(!Truthy(args[0])), nil
	})

	defineNative(env, "inc", func(args []Value) (Value, error) {
		if err := wantArity("inc", args, 1); err != nil {
			return Nil, err
		}
		nums, err := wantNumbers("inc", args)
		if err != nil {
			return Nil, err
		}
		return Num(nums[0] + 1), nil
	})

	defineNative(env, "dec", func(args []Value) (Value, error) {
		if err := wantArity("dec", args, 1); err != nil {
			return Nil, err
		}
		nums, err := wantNumbers("dec", args)
		if err != nil {
			return Nil, err
		}
		return Num(nums[0] - 1), nil
	})

	defineNative(env, "min", func(args []Value) (Value, error) {
		if len(args) == 0 {
			return Nil, evalErrf("min expects at least one argument")
		}
		nums, err := wantNumbers("min", args)
		if err != nil {
			return Nil, err
		}
		best := nums[0]
		for _, n := range nums[1:] {
			best = math.Min(best, n)
		}
		return Num(best), nil
	})

	defineNative(env, "max", func(args []Value) (Value, error) {
		if len(args) == 0 {
			return Nil, evalErrf("max expects at least one argument")
		}
		nums, err := wantNumbers("max", args)
		if err != nil {
			return Nil, err
		}
		best := nums[0]
		for _, n := range nums[1:] {
			best = math.Max(best, n)
		}
		return Num(best), nil
	})

	defineNative(env, "repeat", func(args []Value) (Value, error) {
		if err := wantArity("repeat", args, 2); err != nil {
			return Nil, err
		}
		if args[0].Tag != VTNumber {
			return Nil, evalErrf("repeat expects a number count, got %s", PrintString(args[0]))
		}
		n := int(args[0].Num())
		if n < 0 {
			n = 0
		}
		out := make([]Value, n)
		for i := range out {
			out[i] = args[1]
		}
		return List(out...), nil
	})
}
