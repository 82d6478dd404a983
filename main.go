// Command risp is a small parenthesized Lisp-family interactive
// interpreter. It supports three modes of operation:
//
//   - Interactive REPL mode (-i/--interactive, or no arguments at all)
//   - Expression evaluation mode (-e/--eval)
//   - File evaluation mode (positional argument)
//
// Examples:
//
//	risp -e "(+ 1 2)"
//	risp -i
//	risp file.risp
package main

import (
	"fmt"
	"os"

	"github.com/acarlson99/risp/internal/driver"
	"github.com/acarlson99/risp/internal/risplog"
	"github.com/spf13/cobra"
)

func main() {
	var (
		expression  string
		interactive bool
		debug       bool
	)

	root := &cobra.Command{
		Use:   "risp [file]",
		Short: "A small parenthesized Lisp-family interpreter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			risplog.Init(cmd.ErrOrStderr(), debug)
			d := driver.New(os.Stdin, cmd.OutOrStdout())

			switch {
			case expression != "":
				d.EvalExpression(expression)
			case interactive || len(args) == 0:
				if len(args) == 1 {
					content, err := os.ReadFile(args[0])
					if err != nil {
						return err
					}
					d.EvalFile(string(content))
				}
				fmt.Fprintln(cmd.OutOrStdout(), "risp repl - Type %quit to exit")
				fmt.Fprintln(cmd.OutOrStdout())
				d.REPL(cmd.InOrStdin(), func() { fmt.Fprint(cmd.OutOrStdout(), "# ") })
			default:
				content, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				d.EvalFile(string(content))
			}

			return nil
		},
		SilenceUsage: true,
	}

	root.Flags().StringVarP(&expression, "eval", "e", "", "evaluate a single expression")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false, "start an interactive REPL")
	root.Flags().BoolVar(&debug, "debug", false, "enable verbose diagnostic logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
