package clj

import "testing"

func TestPrelude_Defn(t *testing.T) {
	s := newTestSession(t)
	mustEval(t, s, "(defn square [x] (* x x))")
	wantNum(t, mustEval(t, s, "(square 6)"), 36)

	// defn desugars to (def name (fn ...)).
	wantPrinted(t, mustEval(t, s, "(macroexpand-1 '(defn f [x] x))"), "(def f (fn [x] x))")
}

func TestPrelude_DefnMultiArity(t *testing.T) {
	s := newTestSession(t)
	mustEval(t, s, "(defn greet ([] (greet \"world\")) ([who] (str \"hello \" who)))")
	wantStr(t, mustEval(t, s, "(greet)"), "hello world")
	wantStr(t, mustEval(t, s, "(greet \"you\")"), "hello you")
}

func TestPrelude_When(t *testing.T) {
	s := newTestSession(t)
	wantNum(t, mustEval(t, s, "(when true 1 2)"), 2)
	wantNil(t, mustEval(t, s, "(when false 1)"))
	wantNil(t, mustEval(t, s, "(when-not true 1)"))
	wantNum(t, mustEval(t, s, "(when-not false 1 2)"), 2)
}

func TestPrelude_AndOr(t *testing.T) {
	s := newTestSession(t)
	wantBool(t, mustEval(t, s, "(and)"), true)
	wantNum(t, mustEval(t, s, "(and 1)"), 1)
	wantNum(t, mustEval(t, s, "(and 1 2 3)"), 3)
	wantBool(t, mustEval(t, s, "(and 1 false 3)"), false)
	wantNil(t, mustEval(t, s, "(and 1 nil 3)"))

	wantNil(t, mustEval(t, s, "(or)"))
	wantNum(t, mustEval(t, s, "(or 1)"), 1)
	wantNum(t, mustEval(t, s, "(or nil false 3)"), 3)
	wantNum(t, mustEval(t, s, "(or 1 (boom))"), 1)
}

func TestPrelude_AndOrShortCircuit(t *testing.T) {
	s := newTestSession(t)
	// The unreached operand is never evaluated.
	wantBool(t, mustEval(t, s, "(and false (boom))"), false)
	wantNum(t, mustEval(t, s, "(or 7 (boom))"), 7)
}

func TestPrelude_Cond(t *testing.T) {
	s := newTestSession(t)
	wantNil(t, mustEval(t, s, "(cond)"))
	wantNum(t, mustEval(t, s, "(cond true 1)"), 1)
	wantNum(t, mustEval(t, s, "(cond false 1 true 2)"), 2)
	wantNil(t, mustEval(t, s, "(cond false 1 false 2)"))
	mustEval(t, s, "(defn sign [n] (cond (< n 0) -1 (> n 0) 1 true 0))")
	wantNum(t, mustEval(t, s, "(sign -9)"), -1)
	wantNum(t, mustEval(t, s, "(sign 3)"), 1)
	wantNum(t, mustEval(t, s, "(sign 0)"), 0)
}

func TestPrelude_ThreadFirst(t *testing.T) {
	s := newTestSession(t)
	wantNum(t, mustEval(t, s, "(-> 5)"), 5)
	wantNum(t, mustEval(t, s, "(-> 5 inc)"), 6)
	wantNum(t, mustEval(t, s, "(-> 5 inc (- 2))"), 4)
	wantPrinted(t, mustEval(t, s, "(-> {:a 1} (assoc :b 2))"), "{:a 1 :b 2}")
}

func TestPrelude_ThreadLast(t *testing.T) {
	s := newTestSession(t)
	wantNum(t, mustEval(t, s, "(->> 5)"), 5)
	wantNum(t, mustEval(t, s, "(->> 5 inc)"), 6)
	wantNum(t, mustEval(t, s, "(->> 10 (- 2))"), -8)
	wantPrinted(t, mustEval(t, s, "(->> [1 2 3] (map inc) (take 2))"), "(2 3)")
}

func TestPrelude_Next(t *testing.T) {
	s := newTestSession(t)
	wantPrinted(t, mustEval(t, s, "(next [1 2 3])"), "(2 3)")
	wantNil(t, mustEval(t, s, "(next [1])"))
	wantNil(t, mustEval(t, s, "(next [])"))
}
