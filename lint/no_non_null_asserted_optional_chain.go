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

const (
	NoNonNullAssertedOptionalChainCode    = "no-non-null-asserted-optional-chain"
	NoNonNullAssertedOptionalChainMessage = "Optional chain expressions can return undefined by design - " +
		"using a non-null assertion is unsafe and wrong."
)

// NoNonNullAssertedOptionalChain reports non-null assertions (`x!`)
// applied to the result of an optional chain (`a?.b`)
type NoNonNullAssertedOptionalChain struct{}

var _ Rule = NoNonNullAssertedOptionalChain{}

func init() {
	Register(NoNonNullAssertedOptionalChain{})
}

func (NoNonNullAssertedOptionalChain) Code() string {
	return NoNonNullAssertedOptionalChainCode
}

func (NoNonNullAssertedOptionalChain) Docs() Docs {
	return Docs{
		Summary: "Disallows non-null assertions after an optional chain expression",
		Details: "An optional chain evaluates to undefined when the chained value is null or undefined. " +
			"Asserting that its result is non-null contradicts the optional chain.",
		Before: "foo?.bar!;\n(foo?.bar)!.baz;",
		After:  "foo?.bar;\nfoo?.bar.baz;",
	}
}

func (NoNonNullAssertedOptionalChain) NewVisitor(sink DiagnosticSink) Visitor {
	return &noNonNullAssertedOptionalChainVisitor{
		sink: sink,
	}
}

type noNonNullAssertedOptionalChainVisitor struct {
	sink DiagnosticSink
}

var _ ElementVisitor = &noNonNullAssertedOptionalChainVisitor{}

func (v *noNonNullAssertedOptionalChainVisitor) Visit(element ast.Element) {
	ast.Inspect(element, func(element ast.Element) bool {
		v.VisitElement(element)
		return true
	})
}

func (*noNonNullAssertedOptionalChainVisitor) ElementTypes() []ast.ElementType {
	return []ast.ElementType{
		ast.ElementTypeNonNullExpression,
	}
}

func (v *noNonNullAssertedOptionalChainVisitor) VisitElement(element ast.Element) {
	nonNullExpression, ok := element.(*ast.NonNullExpression)
	if !ok {
		return
	}
	v.visitNonNullExpression(nonNullExpression)
}

func (v *noNonNullAssertedOptionalChainVisitor) visitNonNullExpression(expression *ast.NonNullExpression) {
	rng := ast.NewRangeFromPositioned(expression)

	// The two checks are independent, e.g. `(a?.b)!` is reported through the parentheses,
	// and `a?.b!` through the asserted expression itself
	v.checkNestedOptionalChain(rng, expression.Expression)
	v.checkOptionalChain(rng, expression.Expression)
}

// checkNestedOptionalChain reports if the receiver of an access,
// the callee of an invocation, or the parenthesized expression is an optional chain
func (v *noNonNullAssertedOptionalChainVisitor) checkNestedOptionalChain(rng ast.Range, expression ast.Expression) {
	switch expression := expression.(type) {
	case ast.AccessExpression:
		v.checkOptionalChain(rng, expression.AccessedExpression())

	case *ast.InvocationExpression:
		v.checkOptionalChain(rng, expression.InvokedExpression)

	case *ast.ParenthesizedExpression:
		// Nested parentheses are unwrapped too, e.g. `((a?.b))!` is reported
		inner := expression.Expression
		if isOptionalChain(inner) {
			v.report(rng)
			return
		}
		v.checkNestedOptionalChain(rng, inner)
	}
}

func (v *noNonNullAssertedOptionalChainVisitor) checkOptionalChain(rng ast.Range, expression ast.Expression) {
	if isOptionalChain(expression) {
		v.report(rng)
	}
}

func (v *noNonNullAssertedOptionalChainVisitor) report(rng ast.Range) {
	v.sink.AddDiagnostic(
		rng,
		NoNonNullAssertedOptionalChainCode,
		NoNonNullAssertedOptionalChainMessage,
	)
}

// isOptionalChain returns true if the expression itself is an optional chain.
// Parentheses are not unwrapped.
func isOptionalChain(expression ast.Expression) bool {
	_, ok := expression.(*ast.OptionalChainExpression)
	return ok
}
