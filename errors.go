// errors.go — error kinds and caret-snippet rendering.
//
// Four error kinds cover the whole pipeline:
//
//   - *TokenizerError — unterminated string, malformed number. Positioned.
//   - *ParserError    — unmatched delimiter, odd-length map, unexpected
//     token. Positioned.
//   - *EvalError      — every runtime failure (wrong arity, wrong type,
//     division by zero, unknown symbol, ...). Carries the offending form
//     when known.
//   - *ConversionError — host-interop boundary only; never raised during
//     pure evaluation.
//
// WrapErrorWithSource turns positioned errors into a readable multi-line
// snippet with a caret under the offending column:
//
//	PARSE ERROR at 3:12: unexpected )
//
//	   2 | (let [x (+ 1 2
//	   3 |            )
//	     |            ^
//	   4 | x)
//
// Other errors pass through unchanged.
package clj

import (
	"fmt"
	"strings"
)

// TokenizerError is a lexical failure. Line and Col are 1-based.
type TokenizerError struct {
	Line int
	Col  int
	Msg  string
}

func (e *TokenizerError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ParserError is a structural failure in the token stream. Line and Col are
// 1-based and point at the offending token (or at the opening delimiter for
// unterminated forms).
type ParserError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// EvalError is a runtime failure. Msg is a single short sentence starting
// with the offending operator name. Form, when set, is the form whose
// evaluation failed; it is diagnostic context, not part of the message.
type EvalError struct {
	Msg  string
	Form *Value
}

func (e *EvalError) Error() string { return e.Msg }

// evalErrf builds an *EvalError from a format string.
func evalErrf(format string, args ...any) error {
	return &EvalError{Msg: fmt.Sprintf(format, args...)}
}

// ConversionError is raised at the host-interop boundary when a value cannot
// cross it (macros, maps with collection keys).
type ConversionError struct {
	Msg string
}

func (e *ConversionError) Error() string { return e.Msg }

// WrapErrorWithSource augments positioned errors with a caret-annotated
// snippet of src. Other errors are returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source label (file name or
// REPL tag) included in the header.
func WrapErrorWithName(err error, srcName string, src string) error {
	switch e := err.(type) {
	case *TokenizerError:
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", srcName, e.Line, e.Col, e.Msg))
	case *ParserError:
		return fmt.Errorf("%s", snippet(src, "PARSE ERROR", srcName, e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// snippet builds the caret rendering. Coordinates are 1-based; the line is
// clamped to the source bounds and the column to at least 1, so a
// slightly-off position never panics.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
