// modules.go — require specs and lazy namespace loading.
//
// A require spec is a vector [ns-sym clause*]:
//
//	[m :as alias]          — install a live alias to m's env
//	[m :refer [a b]]       — copy individual bindings into the requirer
//
// Resolution: an already-registered namespace is used as-is and never
// triggers a file read. Otherwise, when the session has a ReadFile resolver,
// each source root is tried with <root>/<ns-with-dots-as-slashes>.clj; a
// successful read is loaded with LoadFile and the registry is re-checked.
package clj

import (
	"path"
	"strings"
)

// registerRequireBuiltin installs require as a native on clojure.core. Each
// argument is a spec vector applied against the current namespace env.
func registerRequireBuiltin(env *Env, s *Session) {
	defineNative(env, "require", func(args []Value) (Value, error) {
		into := s.currentEnv()
		for _, spec := range args {
			if err := s.requireSpec(spec, into); err != nil {
				return Nil, err
			}
		}
		return Nil, nil
	})
}

// processNSClauses interprets the clauses of an (ns name clause*) form
// against env. Only (:require spec*) is supported; anything else is
// rejected rather than silently ignored.
func (s *Session) processNSClauses(form Value, env *Env) error {
	items := form.Items()
	for _, clause := range items[2:] {
		if clause.Tag != VTList || len(clause.Items()) == 0 || clause.Items()[0].Tag != VTKeyword {
			return evalErrf("ns clauses must be lists starting with a keyword, got %s", PrintString(clause))
		}
		parts := clause.Items()
		switch parts[0].Str() {
		case ":require":
			for _, spec := range parts[1:] {
				if err := s.requireSpec(spec, env); err != nil {
					return err
				}
			}
		default:
			return evalErrf("Unknown ns clause %s. Supported: :require", parts[0].Str())
		}
	}
	return nil
}

// requireSpec applies one require spec vector against the env `into`.
func (s *Session) requireSpec(spec Value, into *Env) error {
	if spec.Tag != VTVector || len(spec.Items()) == 0 || spec.Items()[0].Tag != VTSymbol {
		return evalErrf("require expects a [namespace & options] vector, got %s", PrintString(spec))
	}
	items := spec.Items()
	nsName := items[0].Str()
	target, err := s.resolveNamespace(nsName)
	if err != nil {
		return err
	}

	opts := items[1:]
	for i := 0; i < len(opts); i += 2 {
		if opts[i].Tag != VTKeyword {
			return evalErrf("require options must be keywords, got %s", PrintString(opts[i]))
		}
		switch opts[i].Str() {
		case ":as":
			if i+1 >= len(opts) || opts[i+1].Tag != VTSymbol {
				return evalErrf(":as expects an alias symbol")
			}
			into.DefineAlias(opts[i+1].Str(), target)
		case ":refer":
			if i+1 >= len(opts) || opts[i+1].Tag != VTVector {
				return evalErrf(":refer expects a vector of symbols")
			}
			for _, sym := range opts[i+1].Items() {
				if sym.Tag != VTSymbol {
					return evalErrf(":refer expects a vector of symbols, got %s", PrintString(sym))
				}
				v, err := target.Lookup(sym.Str())
				if err != nil {
					return err
				}
				into.Define(sym.Str(), v)
			}
		default:
			return evalErrf("Unknown require option %s. Supported: :as, :refer", opts[i].Str())
		}
	}
	return nil
}

// resolveNamespace returns the registered env for name, loading it lazily
// from the configured source roots when possible.
func (s *Session) resolveNamespace(name string) (*Env, error) {
	if env, ok := s.registry[name]; ok {
		return env, nil
	}
	if s.readFile != nil {
		rel := strings.ReplaceAll(name, ".", "/") + ".clj"
		roots := s.sourceRoots
		if len(roots) == 0 {
			roots = []string{"."}
		}
		for _, root := range roots {
			src, err := s.readFile(path.Join(root, rel))
			if err != nil {
				continue
			}
			if _, err := s.LoadFile(src, name); err != nil {
				return nil, err
			}
			break
		}
		if env, ok := s.registry[name]; ok {
			return env, nil
		}
	}
	return nil, evalErrf("require could not resolve namespace %s", name)
}
