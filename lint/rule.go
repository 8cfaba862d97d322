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
)

// DiagnosticSink receives the diagnostics reported by a rule
type DiagnosticSink interface {
	AddDiagnostic(rng ast.Range, code string, message string)
}

// DiagnosticSinkFunc is an adapter to allow the use of ordinary functions as diagnostic sinks
type DiagnosticSinkFunc func(rng ast.Range, code string, message string)

var _ DiagnosticSink = DiagnosticSinkFunc(nil)

func (f DiagnosticSinkFunc) AddDiagnostic(rng ast.Range, code string, message string) {
	f(rng, code, message)
}

// Visitor traverses the syntax tree of a single module
type Visitor interface {
	Visit(element ast.Element)
}

// ElementVisitor is a visitor which is only interested in elements of certain types.
// The linter passes it the matching elements from the inspector shared by all rules,
// instead of letting it traverse the module itself
type ElementVisitor interface {
	Visitor
	ElementTypes() []ast.ElementType
	VisitElement(element ast.Element)
}

// Rule is a single lint rule.
//
// A rule holds no state: NewVisitor returns a fresh visitor for each module,
// so modules may be linted concurrently.
type Rule interface {
	Code() string
	Docs() Docs
	NewVisitor(sink DiagnosticSink) Visitor
}

// Docs documents a rule
type Docs struct {
	Summary string
	Details string
	// Before is an example of code reported by the rule
	Before string
	// After is the example code, fixed
	After string
}
