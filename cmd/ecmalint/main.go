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
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ecmalint/ecmalint/errors"
	"github.com/ecmalint/ecmalint/pretty"
)

// version is set at build time
var version = "dev"

// errProblemsFound is returned by commands which found problems in the linted code.
// The problems have already been reported
var errProblemsFound = goerrors.New("problems found")

const (
	exitCodeProblems = 1
	exitCodeFailure  = 2
	exitCodeInternal = 3
)

const internalErrorNote = "this is a bug in ecmalint, please report it"

const (
	colorModeAuto = "auto"
	colorModeOn   = "on"
	colorModeOff  = "off"
)

type rootOptions struct {
	logLevel  string
	colorMode string
	logger    *logrus.Logger
}

// useColor reports whether output written to the given writer should be colorized
func (o *rootOptions) useColor(w io.Writer) bool {
	switch o.colorMode {
	case colorModeOn:
		return true
	case colorModeOff:
		return false
	default:
		return isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger, nil
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	options := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "ecmalint",
		Short:         "A linter for ECMAScript and TypeScript sources",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch options.colorMode {
			case colorModeAuto, colorModeOn, colorModeOff:
			default:
				return fmt.Errorf("invalid color mode: %s", options.colorMode)
			}

			logger, err := newLogger(cmd.ErrOrStderr(), options.logLevel)
			if err != nil {
				return err
			}
			options.logger = logger

			return nil
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.logLevel, "log-level", "warn", "log level (trace|debug|info|warn|error)")
	flags.StringVar(&options.colorMode, "color", colorModeAuto, "colorize output (auto|on|off)")

	rootCmd.AddCommand(
		newLintCommand(options),
		newRulesCommand(options),
		newASTCommand(options),
		newFmtCommand(options),
		newREPLCommand(options),
	)

	return rootCmd
}

// printError prints the given error and returns the process exit code for it
func printError(w io.Writer, err error, useColor bool) int {
	if goerrors.Is(err, errProblemsFound) {
		return exitCodeProblems
	}

	diagnostic := pretty.Diagnostic{
		Severity: pretty.SeverityError,
		Message:  err.Error(),
	}
	exitCode := exitCodeFailure

	var secondaryError errors.SecondaryError
	if errors.IsInternalError(err) {
		diagnostic.Notes = []string{internalErrorNote}
		exitCode = exitCodeInternal
	} else if goerrors.As(err, &secondaryError) {
		diagnostic.Message = fmt.Sprintf("%s (%s)", diagnostic.Message, secondaryError.SecondaryError())
	}

	printer := pretty.NewErrorPrettyPrinter(w, useColor)
	printErr := printer.PrettyPrintDiagnostics([]pretty.Diagnostic{diagnostic}, nil)
	if printErr != nil {
		panic(printErr)
	}

	return exitCode
}

func main() {
	rootCmd := newRootCommand(os.Stdout, os.Stderr)

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(printError(os.Stderr, err, isTerminal(os.Stderr)))
	}
}
