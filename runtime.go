// runtime.go — the Session: namespace registry and evaluation entry points.
//
// A Session owns the namespace registry and the clojure.core env with every
// native installed. Two namespaces always exist: clojure.core (the root,
// seeded with natives and the standard macro prelude) and user (a child of
// clojure.core). Every other namespace created later also has clojure.core
// as its outer env.
package clj

// Options configures a Session.
type Options struct {
	// Output receives one string per println call. When nil, println is
	// not installed at all.
	Output func(string)

	// Entries are source strings evaluated at session creation, after the
	// standard macro prelude.
	Entries []string

	// SourceRoots and ReadFile enable lazy namespace resolution: a
	// required namespace a.b.c that is not yet registered is searched as
	// <root>/a/b/c.clj under each source root.
	SourceRoots []string
	ReadFile    func(path string) (string, error)
}

// Session is the top-level handle for evaluating source.
type Session struct {
	registry    map[string]*Env
	currentNS   string
	core        *Env
	output      func(string)
	sourceRoots []string
	readFile    func(string) (string, error)
}

// NewSession builds clojure.core with all natives, loads the standard macro
// prelude, creates the user namespace, and evaluates opts.Entries in order.
func NewSession(opts Options) (*Session, error) {
	s := &Session{
		registry:    make(map[string]*Env),
		currentNS:   "user",
		output:      opts.Output,
		sourceRoots: opts.SourceRoots,
		readFile:    opts.ReadFile,
	}

	core := NewNamespaceEnv("clojure.core", nil)
	s.core = core
	s.registry["clojure.core"] = core

	registerCoreBuiltins(core)
	registerCollectionBuiltins(core)
	registerHigherOrderBuiltins(core)
	registerStringBuiltins(core)
	registerIntrospectionBuiltins(core, s.currentEnv)
	registerRequireBuiltin(core, s)
	if opts.Output != nil {
		registerPrintBuiltins(core, opts.Output)
	}

	s.registry["user"] = NewNamespaceEnv("user", core)

	if _, err := s.LoadFile(preludeSource, "clojure.core"); err != nil {
		return nil, err
	}
	for _, src := range opts.Entries {
		if _, err := s.LoadFile(src, ""); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// CurrentNS returns the name of the current namespace.
func (s *Session) CurrentNS() string { return s.currentNS }

// SetNS switches the current namespace, creating it if needed.
func (s *Session) SetNS(name string) {
	s.ensureNS(name)
	s.currentNS = name
}

// GetNS returns the namespace-root env for name, or nil.
func (s *Session) GetNS(name string) *Env { return s.registry[name] }

// currentEnv returns the current namespace-root env.
func (s *Session) currentEnv() *Env {
	return s.ensureNS(s.currentNS)
}

// ensureNS returns the namespace-root env for name, creating a fresh child
// of clojure.core when it does not exist yet.
func (s *Session) ensureNS(name string) *Env {
	if env, ok := s.registry[name]; ok {
		return env
	}
	env := NewNamespaceEnv(name, s.core)
	s.registry[name] = env
	return env
}

// LoadFile parses source and evaluates its forms in the namespace named by
// the file's first top-level (ns ...) form, falling back to nsHint and then
// to user. Require clauses inside the ns form are processed against the
// target env before evaluation begins.
func (s *Session) LoadFile(source string, nsHint string) (Value, error) {
	forms, err := Parse(source)
	if err != nil {
		return Nil, err
	}

	target := nsHint
	nsForm, ok := findNSForm(forms)
	if ok {
		name, err := nsFormName(nsForm)
		if err != nil {
			return Nil, err
		}
		target = name
	}
	if target == "" {
		target = "user"
	}

	env := s.ensureNS(target)
	if ok {
		if err := s.processNSClauses(nsForm, env); err != nil {
			return Nil, err
		}
	}
	v, err := EvalForms(forms, env)
	return v, stripRecur(err)
}

// Evaluate parses and evaluates source in the current namespace. Require
// clauses of top-level ns forms are processed against the current env; the
// current namespace does not change.
func (s *Session) Evaluate(source string) (Value, error) {
	forms, err := Parse(source)
	if err != nil {
		return Nil, err
	}
	env := s.currentEnv()
	for _, f := range forms {
		if isNSForm(f) {
			if _, err := nsFormName(f); err != nil {
				return Nil, err
			}
			if err := s.processNSClauses(f, env); err != nil {
				return Nil, err
			}
		}
	}
	v, err := EvalForms(forms, env)
	return v, stripRecur(err)
}

// EvaluateForms evaluates already-parsed forms in the current namespace.
func (s *Session) EvaluateForms(forms []Value) (Value, error) {
	v, err := EvalForms(forms, s.currentEnv())
	return v, stripRecur(err)
}

// stripRecur converts a recur signal that escaped every catch point into a
// plain runtime failure.
func stripRecur(err error) error {
	if rs, ok := err.(*recurSignal); ok {
		return &EvalError{Msg: rs.Error()}
	}
	return err
}

func isNSForm(f Value) bool {
	return f.Tag == VTList && len(f.Items()) > 0 && f.Items()[0].IsSymbol("ns")
}

// findNSForm returns the first top-level (ns ...) form.
func findNSForm(forms []Value) (Value, bool) {
	for _, f := range forms {
		if isNSForm(f) {
			return f, true
		}
	}
	return Nil, false
}

func nsFormName(form Value) (string, error) {
	items := form.Items()
	if len(items) < 2 || items[1].Tag != VTSymbol {
		return "", evalErrf("ns expects a symbol name")
	}
	return items[1].Str(), nil
}
