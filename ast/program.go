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
)

// Program is the root element of a parsed source module.
type Program struct {
	statements []Statement
}

var _ Element = &Program{}

func NewProgram(statements []Statement) *Program {
	return &Program{
		statements: statements,
	}
}

func (*Program) ElementType() ElementType {
	return ElementTypeProgram
}

func (p *Program) Statements() []Statement {
	return p.statements
}

func (p *Program) StartPosition() Position {
	for _, statement := range p.statements {
		if statement != nil {
			return statement.StartPosition()
		}
	}
	return Position{}
}

func (p *Program) EndPosition() Position {
	for i := len(p.statements) - 1; i >= 0; i-- {
		statement := p.statements[i]
		if statement != nil {
			return statement.EndPosition()
		}
	}
	return Position{}
}

func (p *Program) Walk(walkChild func(Element)) {
	walkStatements(walkChild, p.statements)
}

func (p *Program) Doc() prettier.Doc {
	return statementsDoc(p.statements)
}

func (p *Program) String() string {
	return Prettier(p)
}

func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type       string
		Statements []Statement
	}{
		Type:       "Program",
		Statements: p.statements,
	})
}
