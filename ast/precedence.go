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

package ast

// precedence is the order of importance of expressions / operators, from lowest to highest.
// It is used to determine where parentheses are needed when printing expressions.
type precedence uint

const (
	precedenceUnknown precedence = iota
	// a = b
	precedenceAssignment
	// a ? b : c
	precedenceTernary
	// a ?? b
	precedenceNullishCoalescing
	// a || b
	precedenceLogicalOr
	// a && b
	precedenceLogicalAnd
	// a == b, a != b, a === b, a !== b
	precedenceEquality
	// a < b, a > b, a <= b, a >= b
	precedenceRelational
	// a + b, a - b
	precedenceAdditive
	// a * b, a / b, a % b
	precedenceMultiplicative
	// -a, +a, !a, typeof a
	precedenceUnaryPrefix
	// a.b, a?.b, a[b], a(b), a!
	precedenceAccess
	// literals, identifiers, parenthesized expressions
	precedenceLiteral
)
