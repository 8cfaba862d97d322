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

package analysis

import (
	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/common"
	"github.com/ecmalint/ecmalint/errors"
)

type Program struct {
	Location common.Location
	Code     []byte
	Program  *ast.Program
	// loadError is the handled parser error, if any
	loadError error
}

// LoadError returns the parser error which was handled
// while loading the program, if any
func (program *Program) LoadError() error {
	return program.loadError
}

// Run runs the given analyzers on this program.
// Required analyzers run first, and each analyzer runs at most once
func (program *Program) Run(analyzers []*Analyzer, report func(Diagnostic)) {

	resultOf := map[*Analyzer]any{}
	running := map[*Analyzer]bool{}

	pass := &Pass{
		Program:  program,
		Report:   report,
		ResultOf: resultOf,
	}

	var run func(analyzer *Analyzer) any
	run = func(analyzer *Analyzer) any {
		if result, ok := resultOf[analyzer]; ok {
			return result
		}

		if running[analyzer] {
			panic(errors.NewUnexpectedError("cyclic analyzer requirement: %s", analyzer))
		}
		running[analyzer] = true
		defer delete(running, analyzer)

		for _, required := range analyzer.Requires {
			run(required)
		}

		result := analyzer.Run(pass)
		resultOf[analyzer] = result
		return result
	}

	for _, analyzer := range analyzers {
		run(analyzer)
	}
}
