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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/itchyny/gojq"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	jsonpretty "github.com/tidwall/pretty"

	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/common"
	"github.com/ecmalint/ecmalint/lint"
	"github.com/ecmalint/ecmalint/parser"
	"github.com/ecmalint/ecmalint/pretty"
)

const (
	astFormatJSON = "json"
	astFormatPP   = "pp"
)

type astOptions struct {
	format string
	kind   string
	query  string
}

func newASTCommand(root *rootOptions) *cobra.Command {
	options := &astOptions{}

	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, root, options, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&options.format, "format", astFormatJSON, "output format (json|pp)")
	flags.StringVar(&options.kind, "kind", "", "only print elements of the given kind, e.g. NonNullExpression")
	flags.StringVar(&options.query, "query", "", "jq query applied to the JSON output")

	return cmd
}

// parseFile parses the file at the given path.
// Parse errors are printed, and reported as errProblemsFound
func parseFile(cmd *cobra.Command, root *rootOptions, path string) (*ast.Program, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	location := common.FileLocation(path)

	program, err := parser.ParseProgram(code, lint.ParserConfig(location))
	if err != nil {
		stderr := cmd.ErrOrStderr()
		printErr := pretty.NewErrorPrettyPrinter(stderr, root.useColor(stderr)).
			PrettyPrintError(err, location, map[common.Location][]byte{location: code})
		if printErr != nil {
			return nil, printErr
		}
		return nil, errProblemsFound
	}

	return program, nil
}

func runAST(cmd *cobra.Command, root *rootOptions, options *astOptions, path string) error {
	switch options.format {
	case astFormatJSON, astFormatPP:
	default:
		return fmt.Errorf("unknown format %q, expected json or pp", options.format)
	}

	var kind ast.ElementType
	if options.kind != "" {
		var ok bool
		kind, ok = ast.ElementTypeFromName(options.kind)
		if !ok {
			return fmt.Errorf("unknown element kind: %s", options.kind)
		}
	}

	var query *gojq.Code
	if options.query != "" {
		parsed, err := gojq.Parse(options.query)
		if err != nil {
			return fmt.Errorf("invalid query: %w", err)
		}
		query, err = gojq.Compile(parsed)
		if err != nil {
			return fmt.Errorf("invalid query: %w", err)
		}
	}

	program, err := parseFile(cmd, root, path)
	if err != nil {
		return err
	}

	var value any = program
	if kind != ast.ElementTypeUnknown {
		elements := []ast.Element{}
		ast.NewInspector(program).Preorder(
			ast.ElementsOfTypes(kind),
			func(element ast.Element) {
				elements = append(elements, element)
			},
		)
		value = elements
	}

	out := cmd.OutOrStdout()
	useColor := root.useColor(out)

	if query != nil {
		value, err = jsonValue(value)
		if err != nil {
			return err
		}

		iter := query.Run(value)
		for {
			result, ok := iter.Next()
			if !ok {
				break
			}
			if err, ok := result.(error); ok {
				return fmt.Errorf("query failed: %w", err)
			}
			err = printValue(out, options.format, result, useColor)
			if err != nil {
				return err
			}
		}
		return nil
	}

	return printValue(out, options.format, value, useColor)
}

// jsonValue converts the given value to its generic JSON form, as used by queries
func jsonValue(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var result any
	err = json.Unmarshal(data, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func printValue(w io.Writer, format string, value any, useColor bool) error {
	switch format {
	case astFormatPP:
		printer := pp.New()
		printer.SetOutput(w)
		printer.SetColoringEnabled(useColor)
		_, err := printer.Println(value)
		return err

	default:
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		data = jsonpretty.Pretty(data)
		if useColor {
			data = jsonpretty.Color(data, nil)
		}
		_, err = w.Write(data)
		return err
	}
}
