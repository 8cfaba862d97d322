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
	"bytes"
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/common"
	"github.com/ecmalint/ecmalint/errors"
	"github.com/ecmalint/ecmalint/lint"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testMessage = "Optional chain expressions can return undefined by design - " +
	"using a non-null assertion is unsafe and wrong."

type panickingRule struct{}

func (panickingRule) Code() string {
	return "panicking"
}

func (panickingRule) Docs() lint.Docs {
	return lint.Docs{}
}

func (panickingRule) NewVisitor(_ lint.DiagnosticSink) lint.Visitor {
	return panickingVisitor{}
}

type panickingVisitor struct{}

func (panickingVisitor) Visit(_ ast.Element) {
	panic(goerrors.New("visitor failed"))
}

type commandResult struct {
	stdout string
	stderr string
	err    error
}

func runCommand(args ...string) commandResult {
	var stdout, stderr bytes.Buffer

	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--color", "off"}, args...))
	err := cmd.ExecuteContext(context.Background())

	return commandResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
	}
}

func writeTestFile(t *testing.T, dir string, name string, content string) string {
	path := filepath.Join(dir, name)
	err := os.MkdirAll(filepath.Dir(path), 0o700)
	require.NoError(t, err)
	err = os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}

func TestRootCommand(t *testing.T) {

	t.Parallel()

	t.Run("version", func(t *testing.T) {

		t.Parallel()

		result := runCommand("--version")
		require.NoError(t, result.err)
		assert.Contains(t, result.stdout, version)
	})

	t.Run("invalid log level", func(t *testing.T) {

		t.Parallel()

		result := runCommand("--log-level", "loud", "rules")
		require.Error(t, result.err)
	})

	t.Run("invalid color mode", func(t *testing.T) {

		t.Parallel()

		var stdout, stderr bytes.Buffer
		cmd := newRootCommand(&stdout, &stderr)
		cmd.SetArgs([]string{"--color", "sometimes", "rules"})
		err := cmd.Execute()
		require.EqualError(t, err, "invalid color mode: sometimes")
	})
}

func TestPrintError(t *testing.T) {

	t.Parallel()

	t.Run("problems found", func(t *testing.T) {

		t.Parallel()

		var out bytes.Buffer
		assert.Equal(t, exitCodeProblems, printError(&out, errProblemsFound, false))
		assert.Empty(t, out.String())
	})

	t.Run("secondary error", func(t *testing.T) {

		t.Parallel()

		_, err := lint.Lookup("no-non-null-asserted-optional-chains")
		require.Error(t, err)

		var out bytes.Buffer
		assert.Equal(t, exitCodeFailure, printError(&out, err, false))
		assert.Equal(t,
			"error: unknown rule: `no-non-null-asserted-optional-chains` "+
				"(did you mean `no-non-null-asserted-optional-chain`?)\n",
			out.String(),
		)
	})

	t.Run("other error", func(t *testing.T) {

		t.Parallel()

		var out bytes.Buffer
		assert.Equal(t, exitCodeFailure, printError(&out, goerrors.New("failed"), false))
		assert.Equal(t, "error: failed\n", out.String())
	})

	t.Run("internal error", func(t *testing.T) {

		t.Parallel()

		err := fmt.Errorf(
			"failed to lint test.ts: %w",
			errors.NewUnexpectedError("visitor failed"),
		)

		var out bytes.Buffer
		assert.Equal(t, exitCodeInternal, printError(&out, err, false))
		assert.Equal(t,
			"error: failed to lint test.ts: visitor failed\n"+
				" = note: this is a bug in ecmalint, please report it\n",
			out.String(),
		)
	})

	t.Run("panicking rule", func(t *testing.T) {

		t.Parallel()

		linter := &lint.Linter{
			Rules: []lint.Rule{panickingRule{}},
		}
		_, err := linter.LintCode(common.StringLocation("test.ts"), []byte("foo;"))
		require.Error(t, err)

		var out bytes.Buffer
		assert.Equal(t, exitCodeInternal, printError(&out, err, false))
		assert.Contains(t, out.String(), internalErrorNote)
	})
}

func TestLintCommand(t *testing.T) {

	t.Parallel()

	dir := t.TempDir()
	invalidPath := writeTestFile(t, dir, "src/invalid.ts", "foo?.bar!;\n")
	validPath := writeTestFile(t, dir, "src/valid.ts", "foo.bar!;\n")
	writeTestFile(t, dir, "src/node_modules/dep/index.ts", "foo?.bar!;\n")
	writeTestFile(t, dir, "src/notes.md", "foo?.bar!;\n")
	configPath := writeTestFile(t, dir, "config.yaml", "format: compact\n")

	t.Run("directory", func(t *testing.T) {

		t.Parallel()

		result := runCommand("lint", "--config", configPath, filepath.Join(dir, "src"))
		require.ErrorIs(t, result.err, errProblemsFound)
		assert.Equal(t,
			invalidPath+":1:0: warning[no-non-null-asserted-optional-chain]: "+testMessage+"\n",
			result.stdout,
		)
	})

	t.Run("clean file", func(t *testing.T) {

		t.Parallel()

		result := runCommand("lint", "--config", configPath, validPath)
		require.NoError(t, result.err)
		assert.Empty(t, result.stdout)
	})

	t.Run("json format", func(t *testing.T) {

		t.Parallel()

		result := runCommand("lint", "--config", configPath, "--format", "json", invalidPath)
		require.ErrorIs(t, result.err, errProblemsFound)

		var diagnostics []map[string]any
		err := json.Unmarshal([]byte(result.stdout), &diagnostics)
		require.NoError(t, err)
		require.Len(t, diagnostics, 1)
		assert.Equal(t, "no-non-null-asserted-optional-chain", diagnostics[0]["code"])
	})

	t.Run("pretty format", func(t *testing.T) {

		t.Parallel()

		result := runCommand("lint", "--config", configPath, "--format", "pretty", invalidPath)
		require.ErrorIs(t, result.err, errProblemsFound)
		assert.Contains(t, result.stdout, "warning[no-non-null-asserted-optional-chain]")
		assert.Contains(t, result.stdout, "foo?.bar!;")
		assert.Contains(t, result.stdout, "^^^^^^^^^")
	})

	t.Run("unknown rule", func(t *testing.T) {

		t.Parallel()

		result := runCommand("lint", "--config", configPath, "--rule", "no-such-rule", invalidPath)

		var unknownRuleErr *lint.UnknownRuleError
		require.ErrorAs(t, result.err, &unknownRuleErr)
		assert.Equal(t, "no-such-rule", unknownRuleErr.Code)
	})

	t.Run("unknown format", func(t *testing.T) {

		t.Parallel()

		result := runCommand("lint", "--config", configPath, "--format", "xml", invalidPath)
		require.Error(t, result.err)
		assert.NotErrorIs(t, result.err, errProblemsFound)
	})

	t.Run("parse error", func(t *testing.T) {

		t.Parallel()

		scriptPath := writeTestFile(t, t.TempDir(), "script.js", "foo!;\n")

		result := runCommand("lint", "--config", configPath, scriptPath)
		require.ErrorIs(t, result.err, errProblemsFound)
		assert.True(t,
			strings.HasPrefix(result.stdout, scriptPath+":1:"),
			result.stdout,
		)
		assert.Contains(t, result.stdout, ": error: ")
	})

	t.Run("missing file", func(t *testing.T) {

		t.Parallel()

		result := runCommand("lint", "--config", configPath, filepath.Join(dir, "missing.ts"))
		require.ErrorIs(t, result.err, os.ErrNotExist)
	})

	t.Run("invalid configuration", func(t *testing.T) {

		t.Parallel()

		invalidConfigPath := writeTestFile(t, t.TempDir(), "config.yaml", "format: xml\n")

		result := runCommand("lint", "--config", invalidConfigPath, invalidPath)
		require.Error(t, result.err)
		assert.Contains(t, result.err.Error(), "invalid configuration")
	})
}

func TestRulesCommand(t *testing.T) {

	t.Parallel()

	t.Run("list", func(t *testing.T) {

		t.Parallel()

		result := runCommand("rules")
		require.NoError(t, result.err)
		assert.Contains(t, result.stdout, "no-non-null-asserted-optional-chain")
		assert.Contains(t, result.stdout, "Disallows non-null assertions after an optional chain expression")
	})

	t.Run("describe", func(t *testing.T) {

		t.Parallel()

		result := runCommand("rules", "no-non-null-asserted-optional-chain")
		require.NoError(t, result.err)
		assert.Equal(t,
			"no-non-null-asserted-optional-chain\n"+
				"\n"+
				"Disallows non-null assertions after an optional chain expression\n"+
				"\n"+
				"An optional chain evaluates to undefined when the chained value is null or undefined. "+
				"Asserting that its result is non-null contradicts the optional chain.\n"+
				"\n"+
				"Invalid:\n"+
				"\n"+
				"    foo?.bar!;\n"+
				"    (foo?.bar)!.baz;\n"+
				"\n"+
				"Valid:\n"+
				"\n"+
				"    foo?.bar;\n"+
				"    foo?.bar.baz;\n",
			result.stdout,
		)
	})

	t.Run("unknown", func(t *testing.T) {

		t.Parallel()

		result := runCommand("rules", "no-such-rule")

		var unknownRuleErr *lint.UnknownRuleError
		require.ErrorAs(t, result.err, &unknownRuleErr)
	})
}

func TestASTCommand(t *testing.T) {

	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "test.ts", "foo?.bar!;\nbaz!;\n")

	t.Run("json", func(t *testing.T) {

		t.Parallel()

		result := runCommand("ast", path)
		require.NoError(t, result.err)

		var program map[string]any
		err := json.Unmarshal([]byte(result.stdout), &program)
		require.NoError(t, err)
		assert.Equal(t, "Program", program["Type"])
	})

	t.Run("kind", func(t *testing.T) {

		t.Parallel()

		result := runCommand("ast", "--kind", "NonNullExpression", "--query", "length", path)
		require.NoError(t, result.err)
		assert.Equal(t, "2", strings.TrimSpace(result.stdout))
	})

	t.Run("query", func(t *testing.T) {

		t.Parallel()

		result := runCommand("ast", "--kind", "NonNullExpression", "--query", ".[].Type", path)
		require.NoError(t, result.err)
		assert.Equal(t,
			"\"NonNullExpression\"\n\"NonNullExpression\"",
			strings.TrimSpace(result.stdout),
		)
	})

	t.Run("pp", func(t *testing.T) {

		t.Parallel()

		result := runCommand("ast", "--format", "pp", "--kind", "NonNullExpression", path)
		require.NoError(t, result.err)
		assert.Contains(t, result.stdout, "NonNullExpression")
	})

	t.Run("unknown kind", func(t *testing.T) {

		t.Parallel()

		result := runCommand("ast", "--kind", "Banana", path)
		require.EqualError(t, result.err, "unknown element kind: Banana")
	})

	t.Run("invalid query", func(t *testing.T) {

		t.Parallel()

		result := runCommand("ast", "--query", ".[", path)
		require.Error(t, result.err)
		assert.Contains(t, result.err.Error(), "invalid query")
	})

	t.Run("parse error", func(t *testing.T) {

		t.Parallel()

		invalidPath := writeTestFile(t, t.TempDir(), "invalid.ts", "foo(;\n")

		result := runCommand("ast", invalidPath)
		require.ErrorIs(t, result.err, errProblemsFound)
		assert.Contains(t, result.stderr, "error: ")
		assert.Empty(t, result.stdout)
	})
}

func TestFmtCommand(t *testing.T) {

	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "test.ts", "foo  ?.  bar  !;\n")

	result := runCommand("fmt", path)
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout, "foo?.bar!")
}

func TestREPL(t *testing.T) {

	t.Parallel()

	newTestREPL := func() (*repl, *bytes.Buffer) {
		var out bytes.Buffer
		r := newREPL(
			&lint.Linter{
				Rules: []lint.Rule{
					lint.NoNonNullAssertedOptionalChain{},
				},
			},
			&out,
			false,
		)
		return r, &out
	}

	t.Run("diagnostic", func(t *testing.T) {

		t.Parallel()

		r, out := newTestREPL()

		assert.Equal(t, "1> ", r.prefix())
		assert.False(t, r.execute("foo?.bar!;"))
		assert.Contains(t, out.String(), "warning[no-non-null-asserted-optional-chain]")
		assert.Contains(t, out.String(), "REPL:1:0")
		assert.Equal(t, "2> ", r.prefix())
	})

	t.Run("no problems", func(t *testing.T) {

		t.Parallel()

		r, out := newTestREPL()

		assert.False(t, r.execute("foo.bar!;"))
		assert.Equal(t, "no problems\n", out.String())
	})

	t.Run("line numbers", func(t *testing.T) {

		t.Parallel()

		r, out := newTestREPL()

		r.execute("foo;")
		out.Reset()

		r.execute("foo?.bar!;")
		assert.Contains(t, out.String(), "REPL:2:0")
	})

	t.Run("continuation", func(t *testing.T) {

		t.Parallel()

		r, out := newTestREPL()

		assert.False(t, r.execute("foo("))
		assert.Empty(t, out.String())
		assert.Equal(t, "2. ", r.prefix())

		assert.False(t, r.execute("bar?.baz!)"))
		assert.Equal(t, "3> ", r.prefix())
		assert.Contains(t, out.String(), "REPL:2:0")
	})

	t.Run("syntax error", func(t *testing.T) {

		t.Parallel()

		r, out := newTestREPL()

		assert.False(t, r.execute("foo);"))
		assert.Contains(t, out.String(), "error: ")
		assert.Equal(t, "2> ", r.prefix())
	})

	t.Run("syntax error and diagnostic", func(t *testing.T) {

		t.Parallel()

		r, out := newTestREPL()

		assert.False(t, r.execute("const x = foo?.bar!; const y;"))
		assert.Equal(t, "2> ", r.prefix())
		assert.Contains(t, out.String(), "missing initializer in const declaration")
		assert.Contains(t, out.String(), "warning["+lint.NoNonNullAssertedOptionalChainCode+"]")
	})

	t.Run("commands", func(t *testing.T) {

		t.Parallel()

		r, out := newTestREPL()

		assert.False(t, r.execute(".help"))
		assert.Contains(t, out.String(), replHelpMessage)
		out.Reset()

		assert.False(t, r.execute(".rules"))
		assert.Contains(t, out.String(), "no-non-null-asserted-optional-chain")
		out.Reset()

		assert.False(t, r.execute(".unknown"))
		assert.Contains(t, out.String(), "Unknown command")

		assert.True(t, r.execute(".exit"))
	})
}

func TestIsIncompleteInput(t *testing.T) {

	t.Parallel()

	linter := &lint.Linter{}
	location := common.StringLocation("test.ts")

	for code, incomplete := range map[string]bool{
		"foo(":        true,
		"foo?.":       true,
		"(foo":        true,
		"foo(1,":      true,
		"foo)":        false,
		"foo(;":       false,
		"let x = ;":   false,
		"let x = 1 +": true,
	} {
		_, err := linter.LintCode(location, []byte(code))
		require.Error(t, err, code)
		assert.Equal(t, incomplete, isIncompleteInput(err), code)
	}
}
