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
	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/tools/analysis"
)

// RuleAnalyzer returns an analyzer which runs the given rule
// over the whole program and reports its diagnostics.
//
// Visitors which implement ElementVisitor are passed the matching elements
// of the inspector shared by all analyzers of a run
func RuleAnalyzer(rule Rule) *analysis.Analyzer {
	docs := rule.Docs()

	return &analysis.Analyzer{
		Name:        rule.Code(),
		Description: docs.Summary,
		Requires: []*analysis.Analyzer{
			analysis.InspectorAnalyzer,
		},
		Run: func(pass *analysis.Pass) any {
			location := pass.Program.Location
			report := pass.Report

			sink := DiagnosticSinkFunc(func(rng ast.Range, code string, message string) {
				report(
					analysis.Diagnostic{
						Location: location,
						Code:     code,
						Category: "lint",
						Message:  message,
						Range:    rng,
					},
				)
			})

			visitor := rule.NewVisitor(sink)

			elementVisitor, ok := visitor.(ElementVisitor)
			if !ok {
				visitor.Visit(pass.Program.Program)
				return nil
			}

			inspector := pass.ResultOf[analysis.InspectorAnalyzer].(*ast.Inspector)
			inspector.Preorder(
				ast.ElementsOfTypes(elementVisitor.ElementTypes()...),
				elementVisitor.VisitElement,
			)

			return nil
		},
	}
}
