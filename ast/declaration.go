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

	"github.com/turbolent/prettier"

	"github.com/ecmalint/ecmalint/errors"
)

type VariableKind uint8

const (
	VariableKindNotSpecified VariableKind = iota
	VariableKindVar
	VariableKindLet
	VariableKindConst
)

func (k VariableKind) Keyword() string {
	switch k {
	case VariableKindVar:
		return "var"
	case VariableKindLet:
		return "let"
	case VariableKindConst:
		return "const"
	}

	panic(errors.NewUnreachableError())
}

func (k VariableKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Keyword())
}

// VariableDeclaration

type VariableDeclaration struct {
	Kind       VariableKind
	Identifier Identifier
	// Value is nil for a declaration without initializer, e.g. `let x;`
	Value    Expression
	StartPos Position `json:"-"`
}

var _ Statement = &VariableDeclaration{}

func NewVariableDeclaration(
	kind VariableKind,
	identifier Identifier,
	value Expression,
	startPos Position,
) *VariableDeclaration {
	return &VariableDeclaration{
		Kind:       kind,
		Identifier: identifier,
		Value:      value,
		StartPos:   startPos,
	}
}

func (*VariableDeclaration) ElementType() ElementType {
	return ElementTypeVariableDeclaration
}

func (*VariableDeclaration) isStatement() {}

func (d *VariableDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *VariableDeclaration) EndPosition() Position {
	if d.Value != nil {
		return d.Value.EndPosition()
	}
	return d.Identifier.EndPosition()
}

func (d *VariableDeclaration) Walk(walkChild func(Element)) {
	if d.Value != nil {
		walkChild(d.Value)
	}
}

func (d *VariableDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text(d.Kind.Keyword()),
		prettier.Space,
		prettier.Text(d.Identifier.Identifier),
	}

	if d.Value != nil {
		doc = append(
			doc,
			assignmentExpressionOperatorDoc,
			prettier.Indent{
				Doc: prettier.Concat{
					prettier.Line{},
					d.Value.Doc(),
				},
			},
		)
	}

	return prettier.Group{
		Doc: append(doc, statementTerminatorDoc),
	}
}

func (d *VariableDeclaration) String() string {
	return Prettier(d)
}

func (d *VariableDeclaration) MarshalJSON() ([]byte, error) {
	type Alias VariableDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "VariableDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// FunctionDeclaration

type FunctionDeclaration struct {
	Identifier Identifier
	Parameters []Identifier
	Body       *Block
	StartPos   Position `json:"-"`
}

var _ Statement = &FunctionDeclaration{}

func NewFunctionDeclaration(
	identifier Identifier,
	parameters []Identifier,
	body *Block,
	startPos Position,
) *FunctionDeclaration {
	return &FunctionDeclaration{
		Identifier: identifier,
		Parameters: parameters,
		Body:       body,
		StartPos:   startPos,
	}
}

func (*FunctionDeclaration) ElementType() ElementType {
	return ElementTypeFunctionDeclaration
}

func (*FunctionDeclaration) isStatement() {}

func (d *FunctionDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *FunctionDeclaration) EndPosition() Position {
	return d.Body.EndPosition()
}

func (d *FunctionDeclaration) Walk(walkChild func(Element)) {
	walkChild(d.Body)
}

var functionDeclarationKeywordSpaceDoc = prettier.Text("function ")
var functionDeclarationEmptyParametersDoc = prettier.Text("()")

func (d *FunctionDeclaration) Doc() prettier.Doc {
	var parametersDoc prettier.Doc = functionDeclarationEmptyParametersDoc
	if len(d.Parameters) > 0 {
		parameterDocs := make([]prettier.Doc, len(d.Parameters))
		for i, parameter := range d.Parameters {
			parameterDocs[i] = prettier.Text(parameter.Identifier)
		}
		parametersDoc = prettier.WrapParentheses(
			prettier.Join(arrayExpressionSeparatorDoc, parameterDocs...),
			prettier.SoftLine{},
		)
	}

	return prettier.Concat{
		functionDeclarationKeywordSpaceDoc,
		prettier.Text(d.Identifier.Identifier),
		parametersDoc,
		prettier.Space,
		d.Body.Doc(),
	}
}

func (d *FunctionDeclaration) String() string {
	return Prettier(d)
}

func (d *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias FunctionDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "FunctionDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
