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

//go:generate go run golang.org/x/tools/cmd/stringer -type=ElementType

type ElementType uint64

const (
	ElementTypeUnknown ElementType = iota

	ElementTypeProgram
	ElementTypeBlock

	// Declarations

	ElementTypeFunctionDeclaration
	ElementTypeVariableDeclaration

	// Statements

	ElementTypeReturnStatement
	ElementTypeIfStatement
	ElementTypeExpressionStatement

	// Expressions

	ElementTypeIdentifierExpression
	ElementTypeStringExpression
	ElementTypeNumberExpression
	ElementTypeBoolExpression
	ElementTypeNullExpression
	ElementTypeArrayExpression
	ElementTypeObjectExpression
	ElementTypeMemberExpression
	ElementTypeIndexExpression
	ElementTypeInvocationExpression
	ElementTypeOptionalChainExpression
	ElementTypeParenthesizedExpression
	ElementTypeNonNullExpression
	ElementTypeUnaryExpression
	ElementTypeBinaryExpression
	ElementTypeConditionalExpression
	ElementTypeAssignmentExpression
)

func ElementTypeCount() int {
	return len(_ElementType_index) - 1
}

// ElementTypeFromName returns the element type with the given name.
// Both the full constant name and the short form are accepted,
// e.g. ElementTypeNonNullExpression and NonNullExpression.
func ElementTypeFromName(name string) (ElementType, bool) {
	for i := 0; i < ElementTypeCount(); i++ {
		elementType := ElementType(i)
		fullName := elementType.String()
		if name == fullName || "ElementType"+name == fullName {
			return elementType, true
		}
	}
	return ElementTypeUnknown, false
}

type Element interface {
	HasPosition
	ElementType() ElementType
	Walk(walkChild func(Element))
}
