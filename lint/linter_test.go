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
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/common"
	"github.com/ecmalint/ecmalint/errors"
	"github.com/ecmalint/ecmalint/parser"
	"github.com/ecmalint/ecmalint/pretty"
	"github.com/ecmalint/ecmalint/tools/analysis"
)

func newTestLinter() *Linter {
	return &Linter{
		Rules: []Rule{
			NoNonNullAssertedOptionalChain{},
		},
	}
}

// panickingRule is a rule whose visitor panics on every module
type panickingRule struct{}

func (panickingRule) Code() string {
	return "panicking"
}

func (panickingRule) Docs() Docs {
	return Docs{}
}

func (panickingRule) NewVisitor(_ DiagnosticSink) Visitor {
	return panickingVisitor{}
}

type panickingVisitor struct{}

func (panickingVisitor) Visit(_ ast.Element) {
	panic("visitor failed")
}

func writeTestFiles(t *testing.T, files map[string]string) (dir string, paths []string) {
	dir = t.TempDir()
	for name, code := range files { //nolint:maprange
		path := filepath.Join(dir, name)
		err := os.WriteFile(path, []byte(code), 0o600)
		require.NoError(t, err)
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return dir, paths
}

func TestParserConfig(t *testing.T) {

	t.Parallel()

	for path, disabled := range map[string]bool{
		"a.ts":     false,
		"a.tsx":    false,
		"a.mts":    false,
		"a.js":     true,
		"a.JS":     true,
		"a.mjs":    true,
		"a.cjs":    true,
		"a.jsx":    true,
		"dir/a.ts": false,
	} {
		assert.Equal(t,
			parser.Config{
				DisableNonNullAssertions: disabled,
			},
			ParserConfig(common.FileLocation(path)),
			path,
		)
	}
}

func TestLinterLintCode(t *testing.T) {

	t.Parallel()

	location := common.StringLocation("test.ts")

	t.Run("diagnostics", func(t *testing.T) {

		t.Parallel()

		diagnostics, err := newTestLinter().LintCode(
			location,
			[]byte("(foo?.bar!)();\nfoo?.bar!;"),
		)
		require.NoError(t, err)

		require.Len(t, diagnostics, 2)
		assert.Equal(t, location, diagnostics[0].Location)
		assert.Equal(t, 1, diagnostics[0].StartPos.Offset)
		assert.Equal(t, 1, diagnostics[0].StartPos.Column)
		assert.Equal(t, 15, diagnostics[1].StartPos.Offset)
		assert.Equal(t, 2, diagnostics[1].StartPos.Line)
	})

	t.Run("no rules", func(t *testing.T) {

		t.Parallel()

		diagnostics, err := (&Linter{}).LintCode(location, []byte("foo?.bar!;"))
		require.NoError(t, err)
		assert.Empty(t, diagnostics)
	})

	t.Run("parse error", func(t *testing.T) {

		t.Parallel()

		diagnostics, err := newTestLinter().LintCode(location, []byte("foo?.;"))
		require.Error(t, err)
		assert.Empty(t, diagnostics)

		var loadErr analysis.ParsingCheckingError
		require.True(t, goerrors.As(err, &loadErr))
		assert.Equal(t, location, loadErr.Location())
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("non-null assertion in script", func(t *testing.T) {

		t.Parallel()

		location := common.FileLocation("test.js")

		diagnostics, err := newTestLinter().LintCode(location, []byte("foo?.bar!;"))
		require.Error(t, err)

		var assertionErr *parser.NonNullAssertionNotAllowedError
		require.True(t, goerrors.As(err, &assertionErr))

		// The partially parsed program is still linted
		require.Len(t, diagnostics, 1)
		assert.Equal(t, common.Location(location), diagnostics[0].Location)
		assert.Equal(t, NoNonNullAssertedOptionalChainCode, diagnostics[0].Code)
	})

	t.Run("rule panics", func(t *testing.T) {

		t.Parallel()

		linter := &Linter{
			Rules: []Rule{
				NoNonNullAssertedOptionalChain{},
				panickingRule{},
			},
		}

		_, err := linter.LintCode(location, []byte("foo?.bar!;"))
		require.Error(t, err)

		assert.True(t, errors.IsInternalError(err))
		assert.ErrorContains(t, err, "visitor failed")
	})
}

func TestLinterLintFiles(t *testing.T) {

	t.Parallel()

	_, paths := writeTestFiles(t, map[string]string{
		"a.ts": "foo?.bar!;\n(foo?.bar)!.baz;",
		"b.ts": "foo?.bar;",
		"c.ts": "let = ;",
		"d.js": "foo.bar!;",
		"e.js": "foo?.bar;",
		"f.js": "foo?.bar!;",
	})

	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	var (
		mu   sync.Mutex
		done []string
	)

	linter := newTestLinter()
	linter.Logger = logger
	linter.Jobs = 2
	linter.OnFileDone = func(path string) {
		mu.Lock()
		defer mu.Unlock()
		done = append(done, path)
	}

	result, err := linter.LintFiles(context.Background(), paths)
	require.NoError(t, err)

	assert.True(t, result.HasProblems())

	sort.Strings(done)
	assert.Equal(t, paths, done)

	assert.Len(t, result.Codes, len(paths))
	for _, path := range paths {
		assert.Contains(t, result.Codes, common.Location(common.FileLocation(path)))
	}

	aLocation := common.Location(common.FileLocation(paths[0]))
	fLocation := common.Location(common.FileLocation(paths[5]))

	require.Len(t, result.Diagnostics, 3)
	for _, diagnostic := range result.Diagnostics {
		assert.Equal(t, NoNonNullAssertedOptionalChainCode, diagnostic.Code)
	}
	assert.Equal(t, aLocation, result.Diagnostics[0].Location)
	assert.Equal(t, 0, result.Diagnostics[0].StartPos.Offset)
	assert.Equal(t, aLocation, result.Diagnostics[1].Location)
	assert.Equal(t, 11, result.Diagnostics[1].StartPos.Offset)
	// The script is reported both for its syntax error and by the rule
	assert.Equal(t, fLocation, result.Diagnostics[2].Location)
	assert.Equal(t, 0, result.Diagnostics[2].StartPos.Offset)

	require.Len(t, result.LoadErrors, 3)
	assert.Equal(t, common.Location(common.FileLocation(paths[2])), result.LoadErrors[0].Location())
	assert.Equal(t, common.Location(common.FileLocation(paths[3])), result.LoadErrors[1].Location())
	assert.Equal(t, fLocation, result.LoadErrors[2].Location())

	prettyDiagnostics := result.PrettyDiagnostics()
	require.Len(t, prettyDiagnostics, 6)
	for i, severity := range []pretty.Severity{
		pretty.SeverityError,
		pretty.SeverityError,
		pretty.SeverityError,
		pretty.SeverityWarning,
		pretty.SeverityWarning,
		pretty.SeverityWarning,
	} {
		assert.Equal(t, severity, prettyDiagnostics[i].Severity, i)
	}

	var ruleRuns int
	for _, entry := range hook.AllEntries() {
		if entry.Message == "running rule" {
			ruleRuns++
			assert.Equal(t, NoNonNullAssertedOptionalChainCode, entry.Data["rule"])
		}
	}
	// Files with syntax errors are linted as far as they could be parsed
	assert.Equal(t, len(paths), ruleRuns)

	var linted []logrus.Fields
	for _, entry := range hook.AllEntries() {
		if entry.Message == "linted" {
			linted = append(linted, entry.Data)
		}
	}
	assert.Equal(t,
		[]logrus.Fields{
			{
				"files":       len(paths),
				"diagnostics": 3,
			},
		},
		linted,
	)
}

func TestLinterLintFilesRulePanics(t *testing.T) {

	t.Parallel()

	_, paths := writeTestFiles(t, map[string]string{
		"a.ts": "foo?.bar;",
	})

	linter := &Linter{
		Rules: []Rule{panickingRule{}},
	}

	_, err := linter.LintFiles(context.Background(), paths)
	require.Error(t, err)

	assert.True(t, errors.IsInternalError(err))

	var loadErr analysis.ParsingCheckingError
	assert.False(t, goerrors.As(err, &loadErr))
}

func TestLinterLintFilesClean(t *testing.T) {

	t.Parallel()

	_, paths := writeTestFiles(t, map[string]string{
		"a.ts": "foo?.bar;",
	})

	result, err := newTestLinter().LintFiles(context.Background(), paths)
	require.NoError(t, err)

	assert.False(t, result.HasProblems())
	assert.Empty(t, result.PrettyDiagnostics())
}

func TestLinterLintFilesMissing(t *testing.T) {

	t.Parallel()

	dir, paths := writeTestFiles(t, map[string]string{
		"a.ts": "foo?.bar!;",
	})

	paths = append(paths, filepath.Join(dir, "missing.ts"))

	_, err := newTestLinter().LintFiles(context.Background(), paths)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLinterLintFilesCanceled(t *testing.T) {

	t.Parallel()

	_, paths := writeTestFiles(t, map[string]string{
		"a.ts": "foo?.bar!;",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestLinter().LintFiles(ctx, paths)
	require.ErrorIs(t, err, context.Canceled)
}
