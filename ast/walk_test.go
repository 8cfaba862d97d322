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
	"testing"

	"github.com/stretchr/testify/assert"
)

// (foo?.bar)!.baz;
func testProgram() *Program {
	return NewProgram([]Statement{
		&ExpressionStatement{
			Expression: &MemberExpression{
				Expression: &NonNullExpression{
					Expression: &ParenthesizedExpression{
						Expression: &OptionalChainExpression{
							Expression: &MemberExpression{
								Expression: testIdentifierExpression("foo", 1),
								Optional:   true,
								AccessPos:  testPosition(4),
								Identifier: Identifier{Identifier: "bar", Pos: testPosition(6)},
							},
						},
						Range: Range{
							StartPos: testPosition(0),
							EndPos:   testPosition(9),
						},
					},
					EndPos: testPosition(10),
				},
				AccessPos:  testPosition(11),
				Identifier: Identifier{Identifier: "baz", Pos: testPosition(12)},
			},
		},
	})
}

func TestInspect(t *testing.T) {

	t.Parallel()

	var preorder []ElementType
	pops := 0

	Inspect(testProgram(), func(element Element) bool {
		if element == nil {
			pops++
			return true
		}
		preorder = append(preorder, element.ElementType())
		return true
	})

	assert.Equal(t,
		[]ElementType{
			ElementTypeProgram,
			ElementTypeExpressionStatement,
			ElementTypeMemberExpression,
			ElementTypeNonNullExpression,
			ElementTypeParenthesizedExpression,
			ElementTypeOptionalChainExpression,
			ElementTypeMemberExpression,
			ElementTypeIdentifierExpression,
		},
		preorder,
	)
	assert.Equal(t, len(preorder), pops)
}

func TestInspect_Prune(t *testing.T) {

	t.Parallel()

	var visited []ElementType

	Inspect(testProgram(), func(element Element) bool {
		if element == nil {
			return true
		}
		visited = append(visited, element.ElementType())
		return element.ElementType() != ElementTypeNonNullExpression
	})

	assert.Equal(t,
		[]ElementType{
			ElementTypeProgram,
			ElementTypeExpressionStatement,
			ElementTypeMemberExpression,
			ElementTypeNonNullExpression,
		},
		visited,
	)
}

type countingWalker struct {
	counts map[ElementType]int
}

func (w countingWalker) Walk(element Element) Walker {
	if element != nil {
		w.counts[element.ElementType()]++
	}
	return w
}

func TestWalk(t *testing.T) {

	t.Parallel()

	walker := countingWalker{counts: map[ElementType]int{}}
	Walk(walker, testProgram())

	assert.Equal(t,
		map[ElementType]int{
			ElementTypeProgram:                 1,
			ElementTypeExpressionStatement:     1,
			ElementTypeMemberExpression:        2,
			ElementTypeNonNullExpression:       1,
			ElementTypeParenthesizedExpression: 1,
			ElementTypeOptionalChainExpression: 1,
			ElementTypeIdentifierExpression:    1,
		},
		walker.counts,
	)
}

func TestWalk_SkipsNilChildren(t *testing.T) {

	t.Parallel()

	program := NewProgram([]Statement{
		nil,
		&ReturnStatement{},
		&VariableDeclaration{
			Kind:       VariableKindLet,
			Identifier: Identifier{Identifier: "x"},
		},
		&IfStatement{
			Test: &BoolExpression{Value: true},
			Then: &Block{},
		},
	})

	var visited []ElementType
	Inspect(program, func(element Element) bool {
		if element != nil {
			visited = append(visited, element.ElementType())
		}
		return true
	})

	assert.Equal(t,
		[]ElementType{
			ElementTypeProgram,
			ElementTypeReturnStatement,
			ElementTypeVariableDeclaration,
			ElementTypeIfStatement,
			ElementTypeBoolExpression,
			ElementTypeBlock,
		},
		visited,
	)
}
