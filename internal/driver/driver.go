// Package driver wires together the lexer, reader, and evaluator into the
// three modes risp's CLI exposes: single-expression eval, file eval, and an
// interactive REPL. Grounded on gix's main.go (evalExpression/evalFile/
// startREPL), adapted to risp's own reader/evaluator pair and to its
// Err-as-value error model rather than gix's (Value, error) returns.
package driver

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/acarlson99/risp/internal/risplog"
	"github.com/acarlson99/risp/internal/value"
	"github.com/acarlson99/risp/pkg/eval"
	"github.com/acarlson99/risp/pkg/lexer"
	"github.com/acarlson99/risp/pkg/reader"
	"github.com/pkg/errors"
)

//go:embed prelude.risp
var preludeFS embed.FS

// Driver owns one evaluator and one root environment, shared across however
// many forms are fed into it over the Driver's lifetime.
type Driver struct {
	ev  *eval.Evaluator
	env value.Environment
	out io.Writer
}

// New builds a Driver whose evaluator reads from in and writes to out, then
// loads the embedded prelude into the root environment. A prelude failure is
// a programming error in this binary, not a user-facing one, so it panics
// rather than threading an error back through every caller.
func New(in io.Reader, out io.Writer) *Driver {
	ev := eval.New(in, out)
	env := ev.NewEnv()
	d := &Driver{ev: ev, env: env, out: out}
	if v := d.loadPrelude(); v.Kind() == value.KindErr {
		panic(errors.Errorf("prelude failed to load: %s", v))
	}

	return d
}

func (d *Driver) loadPrelude() value.Value {
	data, err := preludeFS.ReadFile("prelude.risp")
	if err != nil {
		return value.Errf("embedded prelude missing: %s", err)
	}

	return d.evalSource(string(data))
}

// evalSource reads and evaluates every top-level form in src against the
// Driver's root environment, in order, returning the last result (or the
// first Err, whichever comes first).
func (d *Driver) evalSource(src string) value.Value {
	r := reader.New(lexer.New(src))
	var result value.Value = value.Nil{}
	for !r.AtEOF() {
		form := r.Read()
		if form.Kind() == value.KindErr {
			return form
		}
		result = d.ev.Eval(form, d.env)
		if result.Kind() == value.KindErr {
			return result
		}
	}

	return result
}

// EvalExpression evaluates a single expression string and prints its
// result (or error) to the Driver's output stream.
func (d *Driver) EvalExpression(expr string) {
	result := d.evalSource(expr)
	fmt.Fprintln(d.out, result.String())
}

// EvalFile evaluates the content of a risp source file, printing the first
// error encountered, if any; a successful run's final result is only
// logged at debug level.
func (d *Driver) EvalFile(content string) {
	result := d.evalSource(content)
	if result.Kind() == value.KindErr {
		fmt.Fprintln(d.out, result.String())

		return
	}
	risplog.Debug("file evaluation finished", "result", result.String())
}

// replPrefix marks a REPL meta-command. risp's own grammar already gives
// ':' to keyword symbols (":foo" self-evaluates to itself), so meta-commands
// use '%' instead. '%' is also the modulo builtin's symbol: any line that
// starts with it is taken as a meta-command and never evaluated, while a
// call such as (% 10 3) starts with '(' and is evaluated as usual.
const replPrefix = "%"

// REPL runs an interactive read-eval-print loop over lines read from in,
// calling prompt before each one and sharing one environment across every
// line so bindings persist between inputs. Empty lines and lines starting
// with ';' are skipped. It returns when in hits EOF (or fails) or on a
// %quit/%q command.
func (d *Driver) REPL(in io.Reader, prompt func()) {
	scanner := bufio.NewScanner(in)
	for {
		prompt()
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if line == replPrefix+"quit" || line == replPrefix+"q" {
			break
		}
		if strings.HasPrefix(line, replPrefix) {
			d.handleCommand(line)

			continue
		}

		result := d.evalSource(line)
		fmt.Fprintln(d.out, result.String())
	}
}

func (d *Driver) handleCommand(cmd string) {
	switch cmd {
	case replPrefix + "help", replPrefix + "h":
		fmt.Fprintln(d.out, "Available commands:")
		fmt.Fprintln(d.out, "  %help, %h    Show this help")
		fmt.Fprintln(d.out, "  %quit, %q    Exit the REPL")
	default:
		fmt.Fprintf(d.out, "Unknown command: %s\n", cmd)
		fmt.Fprintln(d.out, "Type %help for available commands")
	}
}
