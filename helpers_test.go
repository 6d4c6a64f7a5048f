package clj

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// --- shared helpers --------------------------------------------------------

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(Options{Output: func(string) {}})
	require.NoError(t, err)
	return s
}

func mustEval(t *testing.T, s *Session, src string) Value {
	t.Helper()
	v, err := s.Evaluate(src)
	require.NoError(t, err, "source: %s", src)
	return v
}

func wantNum(t *testing.T, v Value, f float64) {
	t.Helper()
	require.Equal(t, VTNumber, v.Tag, "want number %g, got %s", f, PrintString(v))
	require.Equal(t, f, v.Num())
}

func wantStr(t *testing.T, v Value, s string) {
	t.Helper()
	require.Equal(t, VTString, v.Tag, "want string %q, got %s", s, PrintString(v))
	require.Equal(t, s, v.Str())
}

func wantBool(t *testing.T, v Value, b bool) {
	t.Helper()
	require.Equal(t, VTBool, v.Tag, "want boolean %v, got %s", b, PrintString(v))
	require.Equal(t, b, v.Bool())
}

func wantNil(t *testing.T, v Value) {
	t.Helper()
	require.Equal(t, VTNil, v.Tag, "want nil, got %s", PrintString(v))
}

// wantPrinted asserts on the canonical printed form, which keeps collection
// expectations readable.
func wantPrinted(t *testing.T, v Value, printed string) {
	t.Helper()
	require.Equal(t, printed, PrintString(v))
}

func wantEvalError(t *testing.T, s *Session, src, substr string) {
	t.Helper()
	_, err := s.Evaluate(src)
	require.Error(t, err, "source: %s", src)
	require.Contains(t, err.Error(), substr)
}
