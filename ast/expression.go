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

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/turbolent/prettier"
)

const NullKeyword = "null"

// Expression is implemented by a fixed set of element types.
// The unexported methods keep the set closed to this package.
type Expression interface {
	Element
	fmt.Stringer
	isExpression()
	Doc() prettier.Doc
	precedence() precedence
}

// BoolExpression

type BoolExpression struct {
	Value bool
	Range
}

var _ Expression = &BoolExpression{}

func NewBoolExpression(value bool, exprRange Range) *BoolExpression {
	return &BoolExpression{
		Value: value,
		Range: exprRange,
	}
}

func (*BoolExpression) ElementType() ElementType {
	return ElementTypeBoolExpression
}

func (*BoolExpression) isExpression() {}

func (*BoolExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *BoolExpression) String() string {
	return Prettier(e)
}

var boolExpressionTrueDoc prettier.Doc = prettier.Text("true")
var boolExpressionFalseDoc prettier.Doc = prettier.Text("false")

func (e *BoolExpression) Doc() prettier.Doc {
	if e.Value {
		return boolExpressionTrueDoc
	} else {
		return boolExpressionFalseDoc
	}
}

func (e *BoolExpression) MarshalJSON() ([]byte, error) {
	type Alias BoolExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "BoolExpression",
		Alias: (*Alias)(e),
	})
}

func (*BoolExpression) precedence() precedence {
	return precedenceLiteral
}

// NullExpression

type NullExpression struct {
	Pos Position `json:"-"`
}

var _ Expression = &NullExpression{}

func NewNullExpression(pos Position) *NullExpression {
	return &NullExpression{
		Pos: pos,
	}
}

func (*NullExpression) ElementType() ElementType {
	return ElementTypeNullExpression
}

func (*NullExpression) isExpression() {}

func (*NullExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *NullExpression) String() string {
	return NullKeyword
}

var nullExpressionDoc prettier.Doc = prettier.Text(NullKeyword)

func (*NullExpression) Doc() prettier.Doc {
	return nullExpressionDoc
}

func (e *NullExpression) StartPosition() Position {
	return e.Pos
}

func (e *NullExpression) EndPosition() Position {
	return e.Pos.Shifted(len(NullKeyword) - 1)
}

func (e *NullExpression) MarshalJSON() ([]byte, error) {
	type Alias NullExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "NullExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*NullExpression) precedence() precedence {
	return precedenceLiteral
}

// StringExpression

type StringExpression struct {
	Value string
	Range
}

var _ Expression = &StringExpression{}

func NewStringExpression(value string, exprRange Range) *StringExpression {
	return &StringExpression{
		Value: value,
		Range: exprRange,
	}
}

func (*StringExpression) ElementType() ElementType {
	return ElementTypeStringExpression
}

func (*StringExpression) isExpression() {}

func (*StringExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *StringExpression) String() string {
	return Prettier(e)
}

func (e *StringExpression) Doc() prettier.Doc {
	return prettier.Text(QuoteString(e.Value))
}

func (e *StringExpression) MarshalJSON() ([]byte, error) {
	type Alias StringExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "StringExpression",
		Alias: (*Alias)(e),
	})
}

func (*StringExpression) precedence() precedence {
	return precedenceLiteral
}

// NumberExpression

type NumberExpression struct {
	// Literal is the number as written in the source, e.g. 0x1F or 1_000
	Literal string
	Value   float64
	Range
}

var _ Expression = &NumberExpression{}

func NewNumberExpression(literal string, value float64, exprRange Range) *NumberExpression {
	return &NumberExpression{
		Literal: literal,
		Value:   value,
		Range:   exprRange,
	}
}

func (*NumberExpression) ElementType() ElementType {
	return ElementTypeNumberExpression
}

func (*NumberExpression) isExpression() {}

func (*NumberExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *NumberExpression) String() string {
	return Prettier(e)
}

func (e *NumberExpression) Doc() prettier.Doc {
	literal := e.Literal
	if literal == "" {
		literal = strconv.FormatFloat(e.Value, 'g', -1, 64)
	}
	return prettier.Text(literal)
}

func (e *NumberExpression) MarshalJSON() ([]byte, error) {
	type Alias NumberExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "NumberExpression",
		Alias: (*Alias)(e),
	})
}

func (*NumberExpression) precedence() precedence {
	return precedenceLiteral
}

// ArrayExpression

type ArrayExpression struct {
	Values []Expression
	Range
}

var _ Expression = &ArrayExpression{}

func NewArrayExpression(values []Expression, exprRange Range) *ArrayExpression {
	return &ArrayExpression{
		Values: values,
		Range:  exprRange,
	}
}

func (*ArrayExpression) ElementType() ElementType {
	return ElementTypeArrayExpression
}

func (*ArrayExpression) isExpression() {}

func (e *ArrayExpression) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, e.Values)
}

func (e *ArrayExpression) String() string {
	return Prettier(e)
}

var arrayExpressionSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

var arrayExpressionEmptyDoc prettier.Doc = prettier.Text("[]")

func (e *ArrayExpression) Doc() prettier.Doc {
	if len(e.Values) == 0 {
		return arrayExpressionEmptyDoc
	}

	elementDocs := make([]prettier.Doc, len(e.Values))
	for i, value := range e.Values {
		elementDocs[i] = value.Doc()
	}

	return prettier.WrapBrackets(
		prettier.Join(
			arrayExpressionSeparatorDoc,
			elementDocs...,
		),
		prettier.SoftLine{},
	)
}

func (e *ArrayExpression) MarshalJSON() ([]byte, error) {
	type Alias ArrayExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ArrayExpression",
		Alias: (*Alias)(e),
	})
}

func (*ArrayExpression) precedence() precedence {
	return precedenceLiteral
}

// ObjectExpression

type ObjectExpression struct {
	Properties []ObjectProperty
	Range
}

var _ Expression = &ObjectExpression{}

// ObjectProperty is a `key: value` pair of an object literal.
// The key is an identifier, string, or number expression.
type ObjectProperty struct {
	Key   Expression
	Value Expression
}

func NewObjectExpression(properties []ObjectProperty, exprRange Range) *ObjectExpression {
	return &ObjectExpression{
		Properties: properties,
		Range:      exprRange,
	}
}

func (*ObjectExpression) ElementType() ElementType {
	return ElementTypeObjectExpression
}

func (*ObjectExpression) isExpression() {}

func (e *ObjectExpression) Walk(walkChild func(Element)) {
	for _, property := range e.Properties {
		walkChild(property.Key)
		walkChild(property.Value)
	}
}

func (e *ObjectExpression) String() string {
	return Prettier(e)
}

var objectExpressionKeyValueSeparatorDoc prettier.Doc = prettier.Text(": ")

var objectExpressionEmptyDoc prettier.Doc = prettier.Text("{}")

func (e *ObjectExpression) Doc() prettier.Doc {
	if len(e.Properties) == 0 {
		return objectExpressionEmptyDoc
	}

	propertyDocs := make([]prettier.Doc, len(e.Properties))
	for i, property := range e.Properties {
		propertyDocs[i] = prettier.Concat{
			property.Key.Doc(),
			objectExpressionKeyValueSeparatorDoc,
			property.Value.Doc(),
		}
	}

	return prettier.WrapBraces(
		prettier.Join(
			arrayExpressionSeparatorDoc,
			propertyDocs...,
		),
		prettier.Line{},
	)
}

func (e *ObjectExpression) MarshalJSON() ([]byte, error) {
	type Alias ObjectExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ObjectExpression",
		Alias: (*Alias)(e),
	})
}

func (*ObjectExpression) precedence() precedence {
	return precedenceLiteral
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
}

var _ Expression = &IdentifierExpression{}

func NewIdentifierExpression(identifier Identifier) *IdentifierExpression {
	return &IdentifierExpression{
		Identifier: identifier,
	}
}

func (*IdentifierExpression) ElementType() ElementType {
	return ElementTypeIdentifierExpression
}

func (*IdentifierExpression) isExpression() {}

func (*IdentifierExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IdentifierExpression) String() string {
	return e.Identifier.Identifier
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier.Identifier)
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		Type string
		*Alias
		Range
	}{
		Type:  "IdentifierExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (*IdentifierExpression) precedence() precedence {
	return precedenceLiteral
}

// InvocationExpression

type InvocationExpression struct {
	InvokedExpression Expression
	Arguments         []Expression
	// Optional is true for an optional call, e.g. `f?.()`
	Optional          bool
	ArgumentsStartPos Position
	EndPos            Position `json:"-"`
}

var _ Expression = &InvocationExpression{}

func NewInvocationExpression(
	invokedExpression Expression,
	arguments []Expression,
	optional bool,
	argsStartPos Position,
	endPos Position,
) *InvocationExpression {
	return &InvocationExpression{
		InvokedExpression: invokedExpression,
		Arguments:         arguments,
		Optional:          optional,
		ArgumentsStartPos: argsStartPos,
		EndPos:            endPos,
	}
}

func (*InvocationExpression) ElementType() ElementType {
	return ElementTypeInvocationExpression
}

func (*InvocationExpression) isExpression() {}

func (e *InvocationExpression) Walk(walkChild func(Element)) {
	walkChild(e.InvokedExpression)
	walkExpressions(walkChild, e.Arguments)
}

func (e *InvocationExpression) String() string {
	return Prettier(e)
}

var optionalChainSeparatorDoc prettier.Doc = prettier.Text("?.")

var invocationExpressionEmptyArgumentsDoc prettier.Doc = prettier.Text("()")

func (e *InvocationExpression) Doc() prettier.Doc {

	result := prettier.Concat{
		parenthesizedExpressionDoc(
			e.InvokedExpression,
			e.precedence(),
		),
	}

	if e.Optional {
		result = append(result, optionalChainSeparatorDoc)
	}

	var argumentsDoc prettier.Doc
	if len(e.Arguments) == 0 {
		argumentsDoc = invocationExpressionEmptyArgumentsDoc
	} else {
		argumentDocs := make([]prettier.Doc, len(e.Arguments))
		for i, argument := range e.Arguments {
			argumentDocs[i] = argument.Doc()
		}
		argumentsDoc = prettier.WrapParentheses(
			prettier.Join(arrayExpressionSeparatorDoc, argumentDocs...),
			prettier.SoftLine{},
		)
	}

	return append(result, argumentsDoc)
}

func (e *InvocationExpression) StartPosition() Position {
	return e.InvokedExpression.StartPosition()
}

func (e *InvocationExpression) EndPosition() Position {
	return e.EndPos
}

func (e *InvocationExpression) MarshalJSON() ([]byte, error) {
	type Alias InvocationExpression
	return json.Marshal(&struct {
		Type string
		*Alias
		Range
	}{
		Type:  "InvocationExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*InvocationExpression) precedence() precedence {
	return precedenceAccess
}

// AccessExpression is a member access: either a named member (`a.b`)
// or a computed member (`a[b]`).
type AccessExpression interface {
	Expression
	isAccessExpression()
	AccessedExpression() Expression
}

// MemberExpression

type MemberExpression struct {
	Expression Expression
	Optional   bool
	// The position of the token (`.`, `?.`) that separates the accessed expression
	// and the identifier of the member
	AccessPos  Position
	Identifier Identifier
}

var _ AccessExpression = &MemberExpression{}

func NewMemberExpression(
	expression Expression,
	optional bool,
	accessPos Position,
	identifier Identifier,
) *MemberExpression {
	return &MemberExpression{
		Expression: expression,
		Optional:   optional,
		AccessPos:  accessPos,
		Identifier: identifier,
	}
}

func (*MemberExpression) ElementType() ElementType {
	return ElementTypeMemberExpression
}

func (*MemberExpression) isExpression() {}

func (*MemberExpression) isAccessExpression() {}

func (e *MemberExpression) AccessedExpression() Expression {
	return e.Expression
}

func (e *MemberExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *MemberExpression) String() string {
	return Prettier(e)
}

var memberExpressionSeparatorDoc prettier.Doc = prettier.Text(".")

func (e *MemberExpression) Doc() prettier.Doc {
	var separatorDoc prettier.Doc
	if e.Optional {
		separatorDoc = optionalChainSeparatorDoc
	} else {
		separatorDoc = memberExpressionSeparatorDoc
	}

	return prettier.Concat{
		parenthesizedExpressionDoc(
			e.Expression,
			e.precedence(),
		),
		prettier.Group{
			Doc: prettier.Indent{
				Doc: prettier.Concat{
					prettier.SoftLine{},
					separatorDoc,
					prettier.Text(e.Identifier.Identifier),
				},
			},
		},
	}
}

func (e *MemberExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MemberExpression) EndPosition() Position {
	if e.Identifier.Identifier == "" {
		return e.AccessPos
	} else {
		return e.Identifier.EndPosition()
	}
}

func (e *MemberExpression) MarshalJSON() ([]byte, error) {
	type Alias MemberExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "MemberExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*MemberExpression) precedence() precedence {
	return precedenceAccess
}

// IndexExpression

type IndexExpression struct {
	TargetExpression   Expression
	IndexingExpression Expression
	// Optional is true for an optional computed access, e.g. `a?.[b]`
	Optional bool
	Range
}

var _ AccessExpression = &IndexExpression{}

func NewIndexExpression(
	targetExpression Expression,
	indexingExpression Expression,
	optional bool,
	exprRange Range,
) *IndexExpression {
	return &IndexExpression{
		TargetExpression:   targetExpression,
		IndexingExpression: indexingExpression,
		Optional:           optional,
		Range:              exprRange,
	}
}

func (*IndexExpression) ElementType() ElementType {
	return ElementTypeIndexExpression
}

func (*IndexExpression) isExpression() {}

func (*IndexExpression) isAccessExpression() {}

func (e *IndexExpression) AccessedExpression() Expression {
	return e.TargetExpression
}

func (e *IndexExpression) Walk(walkChild func(Element)) {
	walkChild(e.TargetExpression)
	walkChild(e.IndexingExpression)
}

func (e *IndexExpression) String() string {
	return Prettier(e)
}

func (e *IndexExpression) Doc() prettier.Doc {
	result := prettier.Concat{
		parenthesizedExpressionDoc(
			e.TargetExpression,
			e.precedence(),
		),
	}

	if e.Optional {
		result = append(result, optionalChainSeparatorDoc)
	}

	return append(
		result,
		prettier.WrapBrackets(
			e.IndexingExpression.Doc(),
			prettier.SoftLine{},
		),
	)
}

func (e *IndexExpression) MarshalJSON() ([]byte, error) {
	type Alias IndexExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "IndexExpression",
		Alias: (*Alias)(e),
	})
}

func (*IndexExpression) precedence() precedence {
	return precedenceAccess
}

// OptionalChainExpression is the boundary of an optional chain:
// if any optional link inside the chain (`a?.b`, `a?.[b]`, `a?.()`) short-circuits,
// the whole chain evaluates to undefined.
//
// For example, `a?.b.c()` is an optional chain wrapping
// the invocation of the member expression `a?.b.c`.
type OptionalChainExpression struct {
	Expression Expression
}

var _ Expression = &OptionalChainExpression{}

func NewOptionalChainExpression(expression Expression) *OptionalChainExpression {
	return &OptionalChainExpression{
		Expression: expression,
	}
}

func (*OptionalChainExpression) ElementType() ElementType {
	return ElementTypeOptionalChainExpression
}

func (*OptionalChainExpression) isExpression() {}

func (e *OptionalChainExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *OptionalChainExpression) String() string {
	return Prettier(e)
}

func (e *OptionalChainExpression) Doc() prettier.Doc {
	return e.Expression.Doc()
}

func (e *OptionalChainExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *OptionalChainExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

func (e *OptionalChainExpression) MarshalJSON() ([]byte, error) {
	type Alias OptionalChainExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "OptionalChainExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*OptionalChainExpression) precedence() precedence {
	return precedenceAccess
}

// ParenthesizedExpression

type ParenthesizedExpression struct {
	Expression Expression
	Range
}

var _ Expression = &ParenthesizedExpression{}

func NewParenthesizedExpression(expression Expression, exprRange Range) *ParenthesizedExpression {
	return &ParenthesizedExpression{
		Expression: expression,
		Range:      exprRange,
	}
}

func (*ParenthesizedExpression) ElementType() ElementType {
	return ElementTypeParenthesizedExpression
}

func (*ParenthesizedExpression) isExpression() {}

func (e *ParenthesizedExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *ParenthesizedExpression) String() string {
	return Prettier(e)
}

func (e *ParenthesizedExpression) Doc() prettier.Doc {
	return prettier.WrapParentheses(
		e.Expression.Doc(),
		prettier.SoftLine{},
	)
}

func (e *ParenthesizedExpression) MarshalJSON() ([]byte, error) {
	type Alias ParenthesizedExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ParenthesizedExpression",
		Alias: (*Alias)(e),
	})
}

func (*ParenthesizedExpression) precedence() precedence {
	return precedenceLiteral
}

// NonNullExpression is a TypeScript non-null assertion, e.g. `a!`

type NonNullExpression struct {
	Expression Expression
	EndPos     Position `json:"-"`
}

var _ Expression = &NonNullExpression{}

func NewNonNullExpression(expression Expression, endPos Position) *NonNullExpression {
	return &NonNullExpression{
		Expression: expression,
		EndPos:     endPos,
	}
}

func (*NonNullExpression) ElementType() ElementType {
	return ElementTypeNonNullExpression
}

func (*NonNullExpression) isExpression() {}

func (e *NonNullExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *NonNullExpression) String() string {
	return Prettier(e)
}

const nonNullExpressionOperatorDoc = prettier.Text("!")

func (e *NonNullExpression) Doc() prettier.Doc {
	return prettier.Concat{
		parenthesizedExpressionDoc(
			e.Expression,
			e.precedence(),
		),
		nonNullExpressionOperatorDoc,
	}
}

func (e *NonNullExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *NonNullExpression) EndPosition() Position {
	return e.EndPos
}

func (e *NonNullExpression) MarshalJSON() ([]byte, error) {
	type Alias NonNullExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "NonNullExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*NonNullExpression) precedence() precedence {
	return precedenceAccess
}

// UnaryExpression

type UnaryExpression struct {
	Operation  Operation
	Expression Expression
	StartPos   Position `json:"-"`
}

var _ Expression = &UnaryExpression{}

func NewUnaryExpression(
	operation Operation,
	expression Expression,
	startPos Position,
) *UnaryExpression {
	return &UnaryExpression{
		Operation:  operation,
		Expression: expression,
		StartPos:   startPos,
	}
}

func (*UnaryExpression) ElementType() ElementType {
	return ElementTypeUnaryExpression
}

func (*UnaryExpression) isExpression() {}

func (e *UnaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *UnaryExpression) String() string {
	return Prettier(e)
}

func parenthesizedExpressionDoc(e Expression, parentPrecedence precedence) prettier.Doc {
	doc := e.Doc()
	subPrecedence := e.precedence()
	if parentPrecedence <= subPrecedence {
		return doc
	}
	return prettier.WrapParentheses(
		doc,
		prettier.SoftLine{},
	)
}

func (e *UnaryExpression) Doc() prettier.Doc {
	operatorDoc := prettier.Doc(prettier.Text(e.Operation.Symbol()))
	if e.Operation == OperationTypeof {
		operatorDoc = prettier.Concat{
			operatorDoc,
			prettier.Space,
		}
	}

	return prettier.Concat{
		operatorDoc,
		parenthesizedExpressionDoc(
			e.Expression,
			e.precedence(),
		),
	}
}

func (e *UnaryExpression) StartPosition() Position {
	return e.StartPos
}

func (e *UnaryExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

func (e *UnaryExpression) MarshalJSON() ([]byte, error) {
	type Alias UnaryExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "UnaryExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*UnaryExpression) precedence() precedence {
	return precedenceUnaryPrefix
}

// BinaryExpression

type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
}

var _ Expression = &BinaryExpression{}

func NewBinaryExpression(
	operation Operation,
	left Expression,
	right Expression,
) *BinaryExpression {
	return &BinaryExpression{
		Operation: operation,
		Left:      left,
		Right:     right,
	}
}

func (*BinaryExpression) ElementType() ElementType {
	return ElementTypeBinaryExpression
}

func (*BinaryExpression) isExpression() {}

func (e *BinaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Left)
	walkChild(e.Right)
}

func (e *BinaryExpression) String() string {
	return Prettier(e)
}

func (e *BinaryExpression) Doc() prettier.Doc {

	// NOTE: all binary operators are left associative

	ownPrecedence := e.precedence()

	leftDoc := e.Left.Doc()
	if ownPrecedence > e.Left.precedence() {
		leftDoc = prettier.WrapParentheses(leftDoc, prettier.SoftLine{})
	}

	rightDoc := e.Right.Doc()
	if ownPrecedence >= e.Right.precedence() {
		rightDoc = prettier.WrapParentheses(rightDoc, prettier.SoftLine{})
	}

	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Group{
				Doc: leftDoc,
			},
			prettier.Line{},
			prettier.Text(e.Operation.Symbol()),
			prettier.Space,
			prettier.Group{
				Doc: rightDoc,
			},
		},
	}
}

func (e *BinaryExpression) StartPosition() Position {
	return e.Left.StartPosition()
}

func (e *BinaryExpression) EndPosition() Position {
	return e.Right.EndPosition()
}

func (e *BinaryExpression) MarshalJSON() ([]byte, error) {
	type Alias BinaryExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "BinaryExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (e *BinaryExpression) precedence() precedence {
	switch e.Operation {
	case OperationNullishCoalesce:
		return precedenceNullishCoalescing
	case OperationOr:
		return precedenceLogicalOr
	case OperationAnd:
		return precedenceLogicalAnd
	case OperationEqual,
		OperationNotEqual,
		OperationStrictEqual,
		OperationStrictNotEqual:
		return precedenceEquality
	case OperationLess,
		OperationGreater,
		OperationLessEqual,
		OperationGreaterEqual:
		return precedenceRelational
	case OperationPlus,
		OperationMinus:
		return precedenceAdditive
	case OperationMul,
		OperationDiv,
		OperationMod:
		return precedenceMultiplicative
	default:
		return precedenceUnknown
	}
}

// ConditionalExpression

type ConditionalExpression struct {
	Test Expression
	Then Expression
	Else Expression
}

var _ Expression = &ConditionalExpression{}

func NewConditionalExpression(
	testExpression Expression,
	thenExpression Expression,
	elseExpression Expression,
) *ConditionalExpression {
	return &ConditionalExpression{
		Test: testExpression,
		Then: thenExpression,
		Else: elseExpression,
	}
}

func (*ConditionalExpression) ElementType() ElementType {
	return ElementTypeConditionalExpression
}

func (*ConditionalExpression) isExpression() {}

func (e *ConditionalExpression) Walk(walkChild func(Element)) {
	walkChild(e.Test)
	walkChild(e.Then)
	walkChild(e.Else)
}

func (e *ConditionalExpression) String() string {
	return Prettier(e)
}

var conditionalExpressionTestSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Line{},
	prettier.Text("? "),
}
var conditionalExpressionBranchSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Line{},
	prettier.Text(": "),
}

func (e *ConditionalExpression) Doc() prettier.Doc {
	ownPrecedence := e.precedence()

	// NOTE: right associative

	testDoc := e.Test.Doc()
	if ownPrecedence >= e.Test.precedence() {
		testDoc = prettier.WrapParentheses(testDoc, prettier.SoftLine{})
	}

	thenDoc := e.Then.Doc()
	if ownPrecedence > e.Then.precedence() {
		thenDoc = prettier.WrapParentheses(thenDoc, prettier.SoftLine{})
	}

	elseDoc := e.Else.Doc()
	if ownPrecedence > e.Else.precedence() {
		elseDoc = prettier.WrapParentheses(elseDoc, prettier.SoftLine{})
	}

	return prettier.Group{
		Doc: prettier.Concat{
			testDoc,
			prettier.Indent{
				Doc: prettier.Concat{
					conditionalExpressionTestSeparatorDoc,
					prettier.Indent{
						Doc: thenDoc,
					},
					conditionalExpressionBranchSeparatorDoc,
					prettier.Indent{
						Doc: elseDoc,
					},
				},
			},
		},
	}
}

func (e *ConditionalExpression) StartPosition() Position {
	return e.Test.StartPosition()
}

func (e *ConditionalExpression) EndPosition() Position {
	return e.Else.EndPosition()
}

func (e *ConditionalExpression) MarshalJSON() ([]byte, error) {
	type Alias ConditionalExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ConditionalExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*ConditionalExpression) precedence() precedence {
	return precedenceTernary
}

// AssignmentExpression

type AssignmentExpression struct {
	Target Expression
	Value  Expression
}

var _ Expression = &AssignmentExpression{}

func NewAssignmentExpression(target Expression, value Expression) *AssignmentExpression {
	return &AssignmentExpression{
		Target: target,
		Value:  value,
	}
}

func (*AssignmentExpression) ElementType() ElementType {
	return ElementTypeAssignmentExpression
}

func (*AssignmentExpression) isExpression() {}

func (e *AssignmentExpression) Walk(walkChild func(Element)) {
	walkChild(e.Target)
	walkChild(e.Value)
}

func (e *AssignmentExpression) String() string {
	return Prettier(e)
}

var assignmentExpressionOperatorDoc prettier.Doc = prettier.Text(" =")

func (e *AssignmentExpression) Doc() prettier.Doc {
	ownPrecedence := e.precedence()

	// NOTE: right associative

	targetDoc := e.Target.Doc()
	if ownPrecedence >= e.Target.precedence() {
		targetDoc = prettier.WrapParentheses(targetDoc, prettier.SoftLine{})
	}

	valueDoc := e.Value.Doc()
	if ownPrecedence > e.Value.precedence() {
		valueDoc = prettier.WrapParentheses(valueDoc, prettier.SoftLine{})
	}

	return prettier.Group{
		Doc: prettier.Concat{
			targetDoc,
			assignmentExpressionOperatorDoc,
			prettier.Indent{
				Doc: prettier.Concat{
					prettier.Line{},
					valueDoc,
				},
			},
		},
	}
}

func (e *AssignmentExpression) StartPosition() Position {
	return e.Target.StartPosition()
}

func (e *AssignmentExpression) EndPosition() Position {
	return e.Value.EndPosition()
}

func (e *AssignmentExpression) MarshalJSON() ([]byte, error) {
	type Alias AssignmentExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "AssignmentExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*AssignmentExpression) precedence() precedence {
	return precedenceAssignment
}
