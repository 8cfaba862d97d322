/*
 * ecmalint - A linter for ECMAScript and TypeScript sources
 *
 * Copyright ecmalint authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/ecmalint/ecmalint/common"
	"github.com/ecmalint/ecmalint/lint"
	"github.com/ecmalint/ecmalint/parser"
	"github.com/ecmalint/ecmalint/parser/lexer"
	"github.com/ecmalint/ecmalint/pretty"
)

const replLocation = common.StringLocation("REPL")

const replHelpMessage = `
Enter code to lint it.
Commands are prefixed with a dot. Valid commands are:

.exit     Exit the REPL
.help     Print this help message
.rules    List the enabled rules

Press ^C to abort current input, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

var replCommands = []prompt.Suggest{
	{Text: ".exit", Description: "Exit the REPL"},
	{Text: ".help", Description: "Print the help message"},
	{Text: ".rules", Description: "List the enabled rules"},
}

type repl struct {
	linter       *lint.Linter
	out          io.Writer
	colors       colorizer
	code         string
	lineNumber   int
	continuation bool
}

func newREPL(linter *lint.Linter, out io.Writer, useColor bool) *repl {
	return &repl{
		linter:     linter,
		out:        out,
		colors:     colorizer{enabled: useColor},
		lineNumber: 1,
	}
}

func newREPLCommand(root *rootOptions) *cobra.Command {
	var rules []string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Lint code interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enabledRules, err := lint.LookupAll(rules)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := newREPL(
				&lint.Linter{
					Rules:  enabledRules,
					Logger: root.logger,
				},
				out,
				root.useColor(out),
			)
			r.run()
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rules, "rule", "r", nil, "enable only the given rule (repeatable)")

	return cmd
}

func (r *repl) run() {
	r.printf("Welcome to ecmalint %s!\n%s\n\n", version, replAssistanceMessage)

	executor := func(line string) {
		if r.execute(line) {
			os.Exit(0)
		}
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if !strings.HasPrefix(word, ".") {
			return nil
		}
		return prompt.FilterHasPrefix(replCommands, word, false)
	}

	changeLivePrefix := func() (string, bool) {
		return r.prefix(), true
	}

	prompt.New(
		executor,
		suggest,
		prompt.OptionLivePrefix(changeLivePrefix),
	).Run()
}

func (r *repl) printf(format string, args ...any) {
	_, err := fmt.Fprintf(r.out, format, args...)
	if err != nil {
		panic(err)
	}
}

func (r *repl) prefix() string {
	separator := '>'
	if r.continuation {
		separator = '.'
	}
	return fmt.Sprintf("%d%c ", r.lineNumber, separator)
}

// execute handles one line of input.
// It returns true if the REPL should exit
func (r *repl) execute(line string) (exit bool) {
	defer func() {
		r.lineNumber++
	}()

	if r.code == "" && strings.HasPrefix(line, ".") {
		return r.handleCommand(strings.TrimSpace(line))
	}

	// Prefix the first line of the input with empty lines,
	// so that diagnostics match the current line number
	if r.code == "" {
		r.code = strings.Repeat("\n", r.lineNumber-1)
	}

	r.code += line + "\n"

	r.continuation = !r.accept(r.code)
	if !r.continuation {
		r.code = ""
	}

	return false
}

// accept lints the given code and prints the results.
// It returns false if the code is incomplete
func (r *repl) accept(code string) bool {
	codeBytes := []byte(code)
	codes := map[common.Location][]byte{
		replLocation: codeBytes,
	}

	printer := pretty.NewErrorPrettyPrinter(r.out, r.colors.enabled)

	diagnostics, err := r.linter.LintCode(replLocation, codeBytes)
	if err != nil {
		if isIncompleteInput(err) {
			return false
		}

		printErr := printer.PrettyPrintError(err, replLocation, codes)
		if printErr != nil {
			panic(printErr)
		}
	} else if len(diagnostics) == 0 {
		r.printf("%s\n", r.colors.success("no problems"))
		return true
	}

	prettyDiagnostics := make([]pretty.Diagnostic, 0, len(diagnostics))
	for _, diagnostic := range diagnostics {
		prettyDiagnostics = append(prettyDiagnostics, diagnostic.PrettyDiagnostic())
	}

	printErr := printer.PrettyPrintDiagnostics(prettyDiagnostics, codes)
	if printErr != nil {
		panic(printErr)
	}

	return true
}

func (r *repl) handleCommand(command string) (exit bool) {
	switch command {
	case ".exit":
		return true
	case ".help":
		r.printf("%s\n", replHelpMessage)
	case ".rules":
		err := printRules(r.out, r.colors, r.linter.Rules)
		if err != nil {
			panic(err)
		}
	default:
		r.printf("%s\n", r.colors.failure(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
	return false
}

// isIncompleteInput returns true if the given parse error
// is caused by the input ending prematurely
func isIncompleteInput(err error) bool {
	var unexpectedTokenErr *parser.UnexpectedTokenError
	if goerrors.As(err, &unexpectedTokenErr) && unexpectedTokenErr.Got == lexer.TokenEOF {
		return true
	}

	var syntaxErr *parser.SyntaxError
	if goerrors.As(err, &syntaxErr) && strings.HasPrefix(syntaxErr.Message, "unexpected end of input") {
		return true
	}

	return false
}
