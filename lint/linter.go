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

package lint

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/ecmalint/ecmalint/common"
	"github.com/ecmalint/ecmalint/errors"
	"github.com/ecmalint/ecmalint/parser"
	"github.com/ecmalint/ecmalint/pretty"
	"github.com/ecmalint/ecmalint/tools/analysis"
)

var tracer = otel.Tracer("github.com/ecmalint/ecmalint/lint")

var discardLogger = func() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}()

// scriptExtensions are the file extensions of plain ECMAScript sources,
// which may not contain TypeScript non-null assertions
var scriptExtensions = map[string]struct{}{
	".js":  {},
	".mjs": {},
	".cjs": {},
	".jsx": {},
}

// ParserConfig returns the parser configuration for the source at the given location
func ParserConfig(location common.Location) parser.Config {
	extension := strings.ToLower(filepath.Ext(location.String()))
	_, isScript := scriptExtensions[extension]
	return parser.Config{
		DisableNonNullAssertions: isScript,
	}
}

// Linter runs rules over source files
type Linter struct {
	Rules  []Rule
	Logger logrus.FieldLogger
	// Jobs is the maximum number of files linted concurrently.
	// If not positive, the number of CPUs is used
	Jobs int
	// OnFileDone is called after each file was linted.
	// It may be called concurrently
	OnFileDone func(path string)
}

// Result is the result of linting a set of files
type Result struct {
	Diagnostics []Diagnostic
	// LoadErrors contains the errors of files which failed to parse
	LoadErrors []analysis.ParsingCheckingError
	Codes      map[common.Location][]byte
}

// PrettyDiagnostics returns the load errors and diagnostics of the result in printable form
func (r *Result) PrettyDiagnostics() []pretty.Diagnostic {
	var diagnostics []pretty.Diagnostic
	for _, err := range r.LoadErrors {
		diagnostics = append(diagnostics, pretty.ErrorDiagnostics(err, err.Location())...)
	}
	for _, diagnostic := range r.Diagnostics {
		diagnostics = append(diagnostics, diagnostic.PrettyDiagnostic())
	}
	return diagnostics
}

func (r *Result) HasProblems() bool {
	return len(r.Diagnostics) > 0 || len(r.LoadErrors) > 0
}

func (l *Linter) logger() logrus.FieldLogger {
	if l.Logger == nil {
		return discardLogger
	}
	return l.Logger
}

func (l *Linter) jobs() int {
	if l.Jobs <= 0 {
		return runtime.NumCPU()
	}
	return l.Jobs
}

// LintCode lints the given code.
//
// If the code fails to parse, the error is an analysis.ParsingCheckingError.
// The diagnostics for the part of the code which could be parsed are returned along with it
func (l *Linter) LintCode(location common.Location, code []byte) ([]Diagnostic, error) {
	var bag Bag

	err := l.lint(context.Background(), location, code, &bag)

	bag.Sort()
	return bag.Diagnostics(), err
}

func (l *Linter) lint(ctx context.Context, location common.Location, code []byte, bag *Bag) error {
	logger := l.logger().WithField("location", location)

	logger.Debug("loading")

	config := &analysis.Config{
		ResolveCode: func(_ common.Location) ([]byte, error) {
			return code, nil
		},
		ParserConfig: ParserConfig,
		// Lint as much of the program as could be parsed,
		// the syntax errors are returned after the rules ran
		HandleParserError: func(_ analysis.ParsingCheckingError) error {
			return nil
		},
	}

	programs, err := analysis.Load(config, location)
	if err != nil {
		return err
	}

	program := programs[location]

	analyzers := make([]*analysis.Analyzer, 0, len(l.Rules))
	for _, rule := range l.Rules {
		logger.WithField("rule", rule.Code()).Debug("running rule")
		analyzers = append(analyzers, RuleAnalyzer(rule))
	}

	report := func(diagnostic analysis.Diagnostic) {
		bag.Add(Diagnostic{
			Location: diagnostic.Location,
			Code:     diagnostic.Code,
			Message:  diagnostic.Message,
			Range:    diagnostic.Range,
		})
	}

	_, span := tracer.Start(
		ctx,
		"rules",
		trace.WithAttributes(attribute.Int("rules", len(analyzers))),
	)
	err = runAnalyzers(program, analyzers, report)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	if err != nil {
		return fmt.Errorf("failed to lint %s: %w", location, err)
	}

	return program.LoadError()
}

// runAnalyzers runs the analyzers in a single pass, so they share required results,
// e.g. the inspector. A panicking analyzer is reported as an internal error
func runAnalyzers(
	program *analysis.Program,
	analyzers []*analysis.Analyzer,
	report func(analysis.Diagnostic),
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r := r.(type) {
			case errors.InternalError:
				err = r
			case error:
				err = errors.NewUnexpectedErrorFromCause(r)
			default:
				err = errors.NewUnexpectedError("%v", r)
			}
		}
	}()

	program.Run(analyzers, report)

	return nil
}

// LintFiles lints the files at the given paths concurrently.
// Files which fail to parse are recorded in the result's load errors,
// all other failures abort linting
func (l *Linter) LintFiles(ctx context.Context, paths []string) (*Result, error) {
	ctx, span := tracer.Start(
		ctx,
		"lint",
		trace.WithAttributes(attribute.Int("files", len(paths))),
	)
	defer span.End()

	result := &Result{
		Codes: make(map[common.Location][]byte, len(paths)),
	}

	var (
		bag Bag
		mu  sync.Mutex
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(l.jobs())

	for _, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			location := common.FileLocation(path)

			code, err := l.lintFile(ctx, location, &bag)

			mu.Lock()
			defer mu.Unlock()

			if code != nil {
				result.Codes[location] = code
			}

			var loadErr analysis.ParsingCheckingError
			if goerrors.As(err, &loadErr) {
				result.LoadErrors = append(result.LoadErrors, loadErr)
				err = nil
			}

			if err == nil && l.OnFileDone != nil {
				l.OnFileDone(path)
			}

			return err
		})
	}

	err := group.Wait()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	l.logger().
		WithField("files", len(paths)).
		WithField("diagnostics", bag.Len()).
		Debug("linted")

	bag.Sort()
	result.Diagnostics = bag.Diagnostics()

	sort.Slice(result.LoadErrors, func(i, j int) bool {
		return result.LoadErrors[i].Location().String() < result.LoadErrors[j].Location().String()
	})

	return result, nil
}

func (l *Linter) lintFile(ctx context.Context, location common.FileLocation, bag *Bag) ([]byte, error) {
	ctx, span := tracer.Start(
		ctx,
		"file",
		trace.WithAttributes(attribute.String("path", string(location))),
	)
	defer span.End()

	code, err := os.ReadFile(string(location))
	if err != nil {
		err = fmt.Errorf("failed to read %s: %w", location, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	err = l.lint(ctx, location, code, bag)
	if err != nil {
		span.RecordError(err)
		return code, err
	}

	return code, nil
}
