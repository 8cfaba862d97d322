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

	"github.com/turbolent/prettier"
)

type Statement interface {
	Element
	fmt.Stringer
	isStatement()
	Doc() prettier.Doc
}

// ExpressionStatement

type ExpressionStatement struct {
	Expression Expression
}

var _ Statement = &ExpressionStatement{}

func NewExpressionStatement(expression Expression) *ExpressionStatement {
	return &ExpressionStatement{
		Expression: expression,
	}
}

func (*ExpressionStatement) ElementType() ElementType {
	return ElementTypeExpressionStatement
}

func (*ExpressionStatement) isStatement() {}

func (s *ExpressionStatement) StartPosition() Position {
	return s.Expression.StartPosition()
}

func (s *ExpressionStatement) EndPosition() Position {
	return s.Expression.EndPosition()
}

func (s *ExpressionStatement) Walk(walkChild func(Element)) {
	walkChild(s.Expression)
}

var statementTerminatorDoc prettier.Doc = prettier.Text(";")

func (s *ExpressionStatement) Doc() prettier.Doc {
	return prettier.Concat{
		s.Expression.Doc(),
		statementTerminatorDoc,
	}
}

func (s *ExpressionStatement) String() string {
	return Prettier(s)
}

func (s *ExpressionStatement) MarshalJSON() ([]byte, error) {
	type Alias ExpressionStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ExpressionStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// ReturnStatement

type ReturnStatement struct {
	Expression Expression
	Range
}

var _ Statement = &ReturnStatement{}

func NewReturnStatement(expression Expression, stmtRange Range) *ReturnStatement {
	return &ReturnStatement{
		Expression: expression,
		Range:      stmtRange,
	}
}

func (*ReturnStatement) ElementType() ElementType {
	return ElementTypeReturnStatement
}

func (*ReturnStatement) isStatement() {}

func (s *ReturnStatement) Walk(walkChild func(Element)) {
	if s.Expression != nil {
		walkChild(s.Expression)
	}
}

const returnStatementKeywordDoc = prettier.Text("return")

func (s *ReturnStatement) Doc() prettier.Doc {
	if s.Expression == nil {
		return prettier.Concat{
			returnStatementKeywordDoc,
			statementTerminatorDoc,
		}
	}

	return prettier.Concat{
		returnStatementKeywordDoc,
		prettier.Space,
		s.Expression.Doc(),
		statementTerminatorDoc,
	}
}

func (s *ReturnStatement) String() string {
	return Prettier(s)
}

func (s *ReturnStatement) MarshalJSON() ([]byte, error) {
	type Alias ReturnStatement
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ReturnStatement",
		Alias: (*Alias)(s),
	})
}

// IfStatement

type IfStatement struct {
	Test     Expression
	Then     Statement
	Else     Statement
	StartPos Position `json:"-"`
}

var _ Statement = &IfStatement{}

func NewIfStatement(
	test Expression,
	thenStatement Statement,
	elseStatement Statement,
	startPos Position,
) *IfStatement {
	return &IfStatement{
		Test:     test,
		Then:     thenStatement,
		Else:     elseStatement,
		StartPos: startPos,
	}
}

func (*IfStatement) ElementType() ElementType {
	return ElementTypeIfStatement
}

func (*IfStatement) isStatement() {}

func (s *IfStatement) StartPosition() Position {
	return s.StartPos
}

func (s *IfStatement) EndPosition() Position {
	if s.Else != nil {
		return s.Else.EndPosition()
	}
	return s.Then.EndPosition()
}

func (s *IfStatement) Walk(walkChild func(Element)) {
	walkChild(s.Test)
	walkChild(s.Then)
	if s.Else != nil {
		walkChild(s.Else)
	}
}

var ifStatementIfKeywordSpaceDoc = prettier.Text("if ")
var ifStatementSpaceElseKeywordSpaceDoc = prettier.Text(" else ")

func (s *IfStatement) Doc() prettier.Doc {
	doc := prettier.Concat{
		ifStatementIfKeywordSpaceDoc,
		prettier.WrapParentheses(
			s.Test.Doc(),
			prettier.SoftLine{},
		),
		prettier.Space,
		s.Then.Doc(),
	}

	if s.Else != nil {
		doc = append(
			doc,
			ifStatementSpaceElseKeywordSpaceDoc,
			s.Else.Doc(),
		)
	}

	return doc
}

func (s *IfStatement) String() string {
	return Prettier(s)
}

func (s *IfStatement) MarshalJSON() ([]byte, error) {
	type Alias IfStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "IfStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// Block

type Block struct {
	Statements []Statement
	Range
}

var _ Statement = &Block{}

func NewBlock(statements []Statement, blockRange Range) *Block {
	return &Block{
		Statements: statements,
		Range:      blockRange,
	}
}

func (*Block) ElementType() ElementType {
	return ElementTypeBlock
}

func (*Block) isStatement() {}

func (b *Block) Walk(walkChild func(Element)) {
	walkStatements(walkChild, b.Statements)
}

var blockStartDoc prettier.Doc = prettier.Text("{")
var blockEndDoc prettier.Doc = prettier.Text("}")
var blockEmptyDoc prettier.Doc = prettier.Text("{}")

func (b *Block) Doc() prettier.Doc {
	if len(b.Statements) == 0 {
		return blockEmptyDoc
	}

	return prettier.Concat{
		blockStartDoc,
		prettier.Indent{
			Doc: prettier.Concat{
				prettier.HardLine{},
				statementsDoc(b.Statements),
			},
		},
		prettier.HardLine{},
		blockEndDoc,
	}
}

func statementsDoc(statements []Statement) prettier.Doc {
	var docs []prettier.Doc
	for _, statement := range statements {
		if statement == nil {
			continue
		}
		docs = append(docs, statement.Doc())
	}

	if len(docs) == 0 {
		return prettier.Text("")
	}

	return prettier.Join(prettier.HardLine{}, docs...)
}

func (b *Block) String() string {
	return Prettier(b)
}

func (b *Block) MarshalJSON() ([]byte, error) {
	type Alias Block
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "Block",
		Alias: (*Alias)(b),
	})
}
