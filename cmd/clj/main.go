// Command clj evaluates Clojure-subset source files and expressions, or
// starts an interactive REPL when run with no arguments.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	clj "github.com/RegiByte/clj-interpreter"
)

const historyFile = ".clj_history"

var (
	evalExpr    string
	sourceRoots []string
	noColor     bool
)

func main() {
	root := &cobra.Command{
		Use:           "clj [file ...]",
		Short:         "A small Clojure-subset interpreter",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an expression and print the result")
	root.Flags().StringArrayVarP(&sourceRoots, "source-root", "I", nil, "add a source root for require's lazy loader (repeatable)")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	if err := root.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func colorEnabled() bool {
	return !noColor && isatty.IsTerminal(os.Stderr.Fd())
}

func printError(err error) {
	if colorEnabled() {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func newSession() (*clj.Session, error) {
	roots := sourceRoots
	if len(roots) == 0 {
		roots = []string{"."}
	}
	return clj.NewSession(clj.Options{
		Output:      func(s string) { fmt.Println(s) },
		SourceRoots: roots,
		ReadFile: func(path string) (string, error) {
			b, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
	})
}

func run(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	if evalExpr != "" {
		v, err := session.Evaluate(evalExpr)
		if err != nil {
			return clj.WrapErrorWithSource(err, evalExpr)
		}
		fmt.Println(clj.PrintString(v))
		return nil
	}

	if len(args) > 0 {
		for _, file := range args {
			b, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			src := string(b)
			hint := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			if _, err := session.LoadFile(src, hint); err != nil {
				return clj.WrapErrorWithName(err, file, src)
			}
		}
		return nil
	}

	return repl(session)
}

// needsMore reports whether src is an incomplete form: unbalanced
// delimiters or an unterminated string. Other lexical errors are complete
// (and wrong), so the REPL should submit them and show the error.
func needsMore(src string) bool {
	toks, err := clj.Tokenize(src)
	if err != nil {
		var te *clj.TokenizerError
		return errors.As(err, &te) && strings.Contains(te.Msg, "unterminated string")
	}
	depth := 0
	for _, t := range toks {
		switch t.Type {
		case clj.LPAREN, clj.LBRACKET, clj.LBRACE:
			depth++
		case clj.RPAREN, clj.RBRACKET, clj.RBRACE:
			depth--
		}
	}
	return depth > 0
}

func repl(session *clj.Session) error {
	fmt.Println("clj REPL — Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	var pending string
	for {
		prompt := session.CurrentNS() + "=> "
		if pending != "" {
			prompt = strings.Repeat(" ", len(session.CurrentNS())) + "... "
		}
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			pending = ""
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		src := input
		if pending != "" {
			src = pending + "\n" + input
		}
		if strings.TrimSpace(src) == "" {
			pending = ""
			continue
		}
		if strings.TrimSpace(src) == ":quit" {
			return nil
		}
		if needsMore(src) {
			pending = src
			continue
		}
		pending = ""
		line.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		v, err := session.Evaluate(src)
		if err != nil {
			printError(clj.WrapErrorWithSource(err, src))
			continue
		}
		fmt.Println(clj.PrintString(v))
	}
}
