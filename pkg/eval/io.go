package eval

import (
	"bufio"
	"os"
	"strings"

	"github.com/acarlson99/risp/internal/risplog"
	"github.com/acarlson99/risp/internal/value"
	"github.com/acarlson99/risp/pkg/lexer"
	"github.com/acarlson99/risp/pkg/reader"
	"github.com/pkg/errors"
)

// registerIO binds read/write/load to this evaluator's streams. Grounded
// on original_source/src/risp/io.rs: `read` and `load` take their
// arguments raw (a prompt string, a path string) without evaluating them;
// `write` evaluates only the Sym arguments it is given and prints
// everything else, including other literals, exactly as written.
func (e *Evaluator) registerIO() {
	e.reg("read", e.builtinRead)
	e.reg("write", e.builtinWrite)
	e.reg("load", e.builtinLoad)
}

func (e *Evaluator) lineReader() *bufio.Reader {
	if e.inReader == nil {
		e.inReader = bufio.NewReader(e.in)
	}

	return e.inReader
}

// builtinRead reads one line from the evaluator's input stream. An
// optional single Str argument is a prompt, written to the output stream
// first, but is itself never evaluated.
func (e *Evaluator) builtinRead(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
	switch len(args) {
	case 0:
	case 1:
		prompt, ok := args[0].(value.Str)
		if !ok {
			return value.ErrExpected("(Str)", "("+args[0].Tag()+")")
		}
		if e.out != nil {
			_, _ = e.out.Write([]byte(string(prompt)))
		}
	default:
		return value.Errf("read accepts at most 1 argument, received %d", len(args))
	}

	line, err := e.lineReader().ReadString('\n')
	if err != nil && line == "" {
		return value.Errf("could not read line")
	}

	return value.Str(strings.TrimRight(line, "\r\n"))
}

// builtinWrite prints each argument and a trailing newline, returning an
// empty Lst. A Sym argument is evaluated first and its failure propagates;
// every other argument — including numbers, lists, and even Str literals
// — is printed exactly as written, without evaluation.
func (e *Evaluator) builtinWrite(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
	var b strings.Builder
	for _, a := range args {
		switch v := a.(type) {
		case value.Sym:
			r := eval(v, env)
			if r.Kind() == value.KindErr {
				return r
			}
			b.WriteString(displayText(r))
		default:
			b.WriteString(displayText(a))
		}
	}
	b.WriteByte('\n')
	if e.out != nil {
		_, _ = e.out.Write([]byte(b.String()))
	}

	return value.NewLst()
}

// displayText renders v the way `write` prints it: a Str's raw content,
// unquoted, everything else via its normal Display form.
func displayText(v value.Value) string {
	if s, ok := v.(value.Str); ok {
		return string(s)
	}

	return v.String()
}

// builtinLoad reads the file named by its single raw Str argument,
// evaluating each top-level form it contains in env in turn and returning
// the last result (Nil for an empty file). A filesystem failure becomes
// an Err rather than a Go error, so the caller's session keeps running.
func (e *Evaluator) builtinLoad(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
	if len(args) != 1 {
		return value.Errf("load requires exactly 1 argument, received %d", len(args))
	}
	path, ok := args[0].(value.Str)
	if !ok {
		return value.ErrExpected("(Str)", "("+args[0].Tag()+")")
	}

	data, readErr := os.ReadFile(string(path))
	if readErr != nil {
		wrapped := errors.Wrapf(readErr, "load %q", string(path))
		risplog.Debug("load failed", "path", string(path), "err", wrapped)

		return value.Errf("could not load %s", string(path))
	}

	r := reader.New(lexer.New(string(data)))
	var result value.Value = value.Nil{}
	for !r.AtEOF() {
		form := r.Read()
		if form.Kind() == value.KindErr {
			return form
		}
		result = eval(form, env)
		if result.Kind() == value.KindErr {
			return result
		}
	}

	return result
}
