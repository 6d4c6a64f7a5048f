// prelude.go — the standard macro library, shipped as source.
//
// These macros are ordinary defmacro forms evaluated into clojure.core at
// session creation, before any caller-supplied entries. They are source, not
// natives, so macroexpand can see through them.
package clj

const preludeSource = `
;; Standard macros. Loaded into clojure.core before user code.

(defmacro defn [name & fdecl]
  ` + "`" + `(def ~name ~(cons 'fn fdecl)))

(defmacro when [c & body]
  ` + "`" + `(if ~c ~(cons 'do body) nil))

(defmacro when-not [c & body]
  ` + "`" + `(if ~c nil ~(cons 'do body)))

(defmacro and
  ([] true)
  ([x] x)
  ([x & more]
   ` + "`" + `(let [__v ~x] (if __v ~(cons 'and more) __v))))

(defmacro or
  ([] nil)
  ([x] x)
  ([x & more]
   ` + "`" + `(let [__v ~x] (if __v __v ~(cons 'or more)))))

(defmacro cond
  ([] nil)
  ([t e & more]
   ` + "`" + `(if ~t ~e ~(cons 'cond more))))

(defmacro ->
  ([x] x)
  ([x form & more]
   (if (list? form)
     (cons '-> (cons (cons (first form) (cons x (rest form))) more))
     (cons '-> (cons (cons form (cons x nil)) more)))))

(defmacro ->>
  ([x] x)
  ([x form & more]
   (if (list? form)
     (cons '->> (cons (concat form (cons x nil)) more))
     (cons '->> (cons (cons form (cons x nil)) more)))))

(defmacro next [coll]
  ` + "`" + `(seq (rest ~coll)))
`
