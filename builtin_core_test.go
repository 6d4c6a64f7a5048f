package clj

import "testing"

func TestArithmetic(t *testing.T) {
	s := newTestSession(t)
	wantNum(t, mustEval(t, s, "(+)"), 0)
	wantNum(t, mustEval(t, s, "(+ 1 2 3)"), 6)
	wantNum(t, mustEval(t, s, "(- 10 1 2)"), 7)
	wantNum(t, mustEval(t, s, "(- 5)"), -5)
	wantNum(t, mustEval(t, s, "(*)"), 1)
	wantNum(t, mustEval(t, s, "(* 2 3 4)"), 24)
	wantNum(t, mustEval(t, s, "(/ 12 3 2)"), 2)
	wantNum(t, mustEval(t, s, "(/ 4)"), 0.25)
}

func TestArithmeticErrors(t *testing.T) {
	s := newTestSession(t)
	wantEvalError(t, s, "(-)", "- expects at least one argument")
	wantEvalError(t, s, "(/ 1 0)", "/ cannot divide by zero")
	wantEvalError(t, s, "(/ 0)", "/ cannot divide by zero")
	wantEvalError(t, s, `(+ 1 "two")`, `+ expects all arguments to be numbers, got "two"`)
	wantEvalError(t, s, "(* 1 :k)", "* expects all arguments to be numbers, got :k")
}

func TestComparisons(t *testing.T) {
	s := newTestSession(t)
	wantBool(t, mustEval(t, s, "(< 1 2 3)"), true)
	wantBool(t, mustEval(t, s, "(< 1 3 2)"), false)
	wantBool(t, mustEval(t, s, "(<= 1 1 2)"), true)
	wantBool(t, mustEval(t, s, "(> 3 2 1)"), true)
	wantBool(t, mustEval(t, s, "(>= 3 3 1)"), true)
	wantEvalError(t, s, "(< 1)", "< expects at least two arguments")
	wantEvalError(t, s, `(> 2 "1")`, "> expects all arguments to be numbers")
}

func TestStructuralEquality(t *testing.T) {
	s := newTestSession(t)
	wantBool(t, mustEval(t, s, "(= 1 1.0)"), true)
	wantBool(t, mustEval(t, s, "(= [1 2] [1 2])"), true)
	wantBool(t, mustEval(t, s, "(= '(1 2) [1 2])"), false)
	wantBool(t, mustEval(t, s, "(= {:a 1 :b 2} {:b 2 :a 1})"), true)
	wantBool(t, mustEval(t, s, "(= 1 1 2)"), false)
	wantEvalError(t, s, "(= 1)", "= expects at least two arguments")
}

func TestPredicates(t *testing.T) {
	s := newTestSession(t)
	wantBool(t, mustEval(t, s, "(nil? nil)"), true)
	wantBool(t, mustEval(t, s, "(nil? false)"), false)
	wantBool(t, mustEval(t, s, "(true? true)"), true)
	wantBool(t, mustEval(t, s, "(false? false)"), true)
	wantBool(t, mustEval(t, s, "(truthy? 0)"), true)
	wantBool(t, mustEval(t, s, "(falsy? nil)"), true)
	wantBool(t, mustEval(t, s, "(not nil)"), true)
	wantBool(t, mustEval(t, s, "(not 1)"), false)
	wantBool(t, mustEval(t, s, "(number? 1)"), true)
	wantBool(t, mustEval(t, s, `(string? "s")`), true)
	wantBool(t, mustEval(t, s, "(boolean? false)"), true)
	wantBool(t, mustEval(t, s, "(keyword? :k)"), true)
	wantBool(t, mustEval(t, s, "(symbol? 'x)"), true)
	wantBool(t, mustEval(t, s, "(vector? [])"), true)
	wantBool(t, mustEval(t, s, "(list? '())"), true)
	wantBool(t, mustEval(t, s, "(map? {})"), true)
	wantBool(t, mustEval(t, s, "(fn? (fn [x] x))"), true)
	wantBool(t, mustEval(t, s, "(fn? +)"), true)
	wantBool(t, mustEval(t, s, "(fn? 'x)"), false)
	wantBool(t, mustEval(t, s, "(coll? [])"), true)
	wantBool(t, mustEval(t, s, "(coll? {})"), true)
	wantBool(t, mustEval(t, s, "(coll? \"s\")"), false)
}

func TestNumericHelpers(t *testing.T) {
	s := newTestSession(t)
	wantNum(t, mustEval(t, s, "(inc 1)"), 2)
	wantNum(t, mustEval(t, s, "(dec 1)"), 0)
	wantNum(t, mustEval(t, s, "(min 3 1 2)"), 1)
	wantNum(t, mustEval(t, s, "(max 3 1 2)"), 3)
	wantPrinted(t, mustEval(t, s, "(repeat 3 :x)"), "(:x :x :x)")
	wantPrinted(t, mustEval(t, s, "(repeat 0 :x)"), "()")
	wantEvalError(t, s, "(inc :k)", "inc expects all arguments to be numbers")
}
