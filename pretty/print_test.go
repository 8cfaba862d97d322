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

package pretty

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/common"
)

type testError struct {
	ast.Range
}

func (testError) Error() string {
	return "test error"
}

type testSecondaryError struct {
	testError
}

func (testSecondaryError) SecondaryError() string {
	return "secondary"
}

type testParentError struct {
	errs []error
}

func (testParentError) Error() string {
	return "parent"
}

func (e testParentError) ChildErrors() []error {
	return e.errs
}

func testRange(line, startColumn, endColumn int) ast.Range {
	return ast.Range{
		StartPos: ast.Position{
			Line:   line,
			Column: startColumn,
		},
		EndPos: ast.Position{
			Line:   line,
			Column: endColumn,
		},
	}
}

func TestPrintBrokenCode(t *testing.T) {

	t.Parallel()

	const code = `let x = {}`
	lineCount := len(strings.Split(code, "\n"))

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					// NOTE: line number is after end of code
					Line:   lineCount + 2,
					Column: 0,
				},
				EndPos: ast.Position{
					Line:   lineCount,
					Column: 2,
				},
			},
		},
		location,
		map[common.Location][]byte{
			location: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:3:0\n",
		sb.String(),
	)
}

func TestPrintTabs(t *testing.T) {

	t.Parallel()

	const code = "\t  \t   let x = 1"

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: testRange(1, 7, 9),
		},
		location,
		map[common.Location][]byte{
			location: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:7\n"+
			"  |\n"+
			"1 | \t  \t   let x = 1\n"+
			"  | \t  \t   ^^^\n",
		sb.String(),
	)
}

func TestPrintWideCharacters(t *testing.T) {

	t.Parallel()

	const code = "漢字 x"

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: testRange(1, 0, 1),
		},
		location,
		map[common.Location][]byte{
			location: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:0\n"+
			"  |\n"+
			"1 | "+code+"\n"+
			"  | ^^^^\n",
		sb.String(),
	)
}

func TestPrintEndOfInput(t *testing.T) {

	t.Parallel()

	const code = "a"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testSecondaryError{
			testError: testError{
				Range: testRange(1, 1, 1),
			},
		},
		nil,
		map[common.Location][]byte{
			nil: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> 1:1\n"+
			"  |\n"+
			"1 | a\n"+
			"  |  ^ secondary\n",
		sb.String(),
	)
}

func TestPrintParentError(t *testing.T) {

	t.Parallel()

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testParentError{
			errs: []error{
				testError{},
				testError{},
			},
		},
		nil,
		nil,
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			"\n"+
			"error: test error\n",
		sb.String(),
	)
}

func testDiagnostic(location common.Location) Diagnostic {
	return Diagnostic{
		Location: location,
		Severity: SeverityWarning,
		Code:     "no-non-null-asserted-optional-chain",
		Category: "correctness",
		Message:  "optional chain asserted",
		Range: ast.Range{
			StartPos: ast.Position{Offset: 0, Line: 1, Column: 0},
			EndPos:   ast.Position{Offset: 8, Line: 1, Column: 8},
		},
	}
}

func TestPrintDiagnostics(t *testing.T) {

	t.Parallel()

	const code = "foo?.bar!;"

	location := common.StringLocation("test.ts")
	codes := map[common.Location][]byte{
		location: []byte(code),
	}

	diagnostics := []Diagnostic{
		testDiagnostic(location),
	}

	t.Run("pretty", func(t *testing.T) {

		t.Parallel()

		var sb strings.Builder
		printer, err := NewPrinter(FormatPretty, &sb, false)
		require.NoError(t, err)

		err = printer.PrintDiagnostics(diagnostics, codes)
		require.NoError(t, err)

		require.Equal(t,
			"warning[no-non-null-asserted-optional-chain]: optional chain asserted\n"+
				" --> test.ts:1:0\n"+
				"  |\n"+
				"1 | foo?.bar!;\n"+
				"  | ^^^^^^^^^\n",
			sb.String(),
		)
	})

	t.Run("pretty, colored", func(t *testing.T) {

		t.Parallel()

		var sb strings.Builder
		printer, err := NewPrinter(FormatPretty, &sb, true)
		require.NoError(t, err)

		err = printer.PrintDiagnostics(diagnostics, codes)
		require.NoError(t, err)

		assert.Contains(t, sb.String(), "\x1b[")
		assert.Contains(t, sb.String(), "foo?.bar!;")
	})

	t.Run("compact", func(t *testing.T) {

		t.Parallel()

		var sb strings.Builder
		printer, err := NewPrinter(FormatCompact, &sb, false)
		require.NoError(t, err)

		err = printer.PrintDiagnostics(
			append(
				diagnostics,
				Diagnostic{
					Severity: SeverityError,
					Message:  "failed",
				},
			),
			codes,
		)
		require.NoError(t, err)

		require.Equal(t,
			"test.ts:1:0: warning[no-non-null-asserted-optional-chain]: optional chain asserted\n"+
				"error: failed\n",
			sb.String(),
		)
	})

	t.Run("json", func(t *testing.T) {

		t.Parallel()

		var sb strings.Builder
		printer, err := NewPrinter(FormatJSON, &sb, false)
		require.NoError(t, err)

		err = printer.PrintDiagnostics(diagnostics, codes)
		require.NoError(t, err)

		var result []map[string]any
		err = json.Unmarshal([]byte(sb.String()), &result)
		require.NoError(t, err)

		assert.Equal(t,
			[]map[string]any{
				{
					"location": "test.ts",
					"severity": "warning",
					"code":     "no-non-null-asserted-optional-chain",
					"category": "correctness",
					"message":  "optional chain asserted",
					"range": map[string]any{
						"start": map[string]any{
							"offset": float64(0),
							"line":   float64(1),
							"column": float64(0),
						},
						"end": map[string]any{
							"offset": float64(8),
							"line":   float64(1),
							"column": float64(8),
						},
					},
				},
			},
			result,
		)
	})

	t.Run("json, empty", func(t *testing.T) {

		t.Parallel()

		var sb strings.Builder
		printer, err := NewPrinter(FormatJSON, &sb, false)
		require.NoError(t, err)

		err = printer.PrintDiagnostics(nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "[]\n", sb.String())
	})
}

func TestParseFormat(t *testing.T) {

	t.Parallel()

	for _, format := range Formats {
		parsed, err := ParseFormat(string(format))
		require.NoError(t, err)
		assert.Equal(t, format, parsed)
	}

	_, err := ParseFormat("sarif")
	require.Error(t, err)
}
