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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbolent/prettier"
)

func testPosition(offset int) Position {
	return Position{Offset: offset, Line: 1, Column: offset}
}

func testIdentifierExpression(identifier string, offset int) *IdentifierExpression {
	return &IdentifierExpression{
		Identifier: Identifier{
			Identifier: identifier,
			Pos:        testPosition(offset),
		},
	}
}

// foo?.bar!
func testNonNullOptionalChain() *NonNullExpression {
	return &NonNullExpression{
		Expression: &OptionalChainExpression{
			Expression: &MemberExpression{
				Expression: testIdentifierExpression("foo", 0),
				Optional:   true,
				AccessPos:  testPosition(3),
				Identifier: Identifier{
					Identifier: "bar",
					Pos:        testPosition(5),
				},
			},
		},
		EndPos: testPosition(8),
	}
}

func TestNonNullExpression_Position(t *testing.T) {

	t.Parallel()

	expr := testNonNullOptionalChain()

	assert.Equal(t,
		Range{
			StartPos: testPosition(0),
			EndPos:   testPosition(8),
		},
		NewRangeFromPositioned(expr),
	)

	chain := expr.Expression.(*OptionalChainExpression)
	assert.Equal(t,
		Range{
			StartPos: testPosition(0),
			EndPos:   testPosition(7),
		},
		NewRangeFromPositioned(chain),
	)
}

func TestNonNullExpression_String(t *testing.T) {

	t.Parallel()

	t.Run("optional chain", func(t *testing.T) {

		t.Parallel()

		assert.Equal(t,
			"foo?.bar!",
			testNonNullOptionalChain().String(),
		)
	})

	t.Run("unary operand", func(t *testing.T) {

		t.Parallel()

		expr := &NonNullExpression{
			Expression: &UnaryExpression{
				Operation:  OperationMinus,
				Expression: testIdentifierExpression("x", 1),
				StartPos:   testPosition(0),
			},
			EndPos: testPosition(2),
		}

		assert.Equal(t, "(-x)!", expr.String())
	})

	t.Run("member of assertion", func(t *testing.T) {

		t.Parallel()

		expr := &MemberExpression{
			Expression: &NonNullExpression{
				Expression: testIdentifierExpression("a", 0),
				EndPos:     testPosition(1),
			},
			AccessPos: testPosition(2),
			Identifier: Identifier{
				Identifier: "b",
				Pos:        testPosition(3),
			},
		}

		assert.Equal(t, "a!.b", expr.String())
	})
}

func TestNonNullExpression_Doc(t *testing.T) {

	t.Parallel()

	expr := &NonNullExpression{
		Expression: testIdentifierExpression("foo", 0),
		EndPos:     testPosition(3),
	}

	assert.Equal(t,
		prettier.Concat{
			prettier.Text("foo"),
			prettier.Text("!"),
		},
		expr.Doc(),
	)
}

func TestNonNullExpression_MarshalJSON(t *testing.T) {

	t.Parallel()

	expr := &NonNullExpression{
		Expression: testIdentifierExpression("foo", 0),
		EndPos:     testPosition(3),
	}

	actual, err := json.Marshal(expr)
	require.NoError(t, err)

	assert.JSONEq(t,
		// language=json
		`
        {
            "Type": "NonNullExpression",
            "Expression": {
                "Type": "IdentifierExpression",
                "Identifier": {
                    "Identifier": "foo",
                    "StartPos": {"Offset": 0, "Line": 1, "Column": 0},
                    "EndPos": {"Offset": 2, "Line": 1, "Column": 2}
                },
                "StartPos": {"Offset": 0, "Line": 1, "Column": 0},
                "EndPos": {"Offset": 2, "Line": 1, "Column": 2}
            },
            "StartPos": {"Offset": 0, "Line": 1, "Column": 0},
            "EndPos": {"Offset": 3, "Line": 1, "Column": 3}
        }
        `,
		string(actual),
	)
}

func TestOptionalChainExpression_MarshalJSON(t *testing.T) {

	t.Parallel()

	expr := testNonNullOptionalChain().Expression

	actual, err := json.Marshal(expr)
	require.NoError(t, err)

	assert.JSONEq(t,
		// language=json
		`
        {
            "Type": "OptionalChainExpression",
            "Expression": {
                "Type": "MemberExpression",
                "Expression": {
                    "Type": "IdentifierExpression",
                    "Identifier": {
                        "Identifier": "foo",
                        "StartPos": {"Offset": 0, "Line": 1, "Column": 0},
                        "EndPos": {"Offset": 2, "Line": 1, "Column": 2}
                    },
                    "StartPos": {"Offset": 0, "Line": 1, "Column": 0},
                    "EndPos": {"Offset": 2, "Line": 1, "Column": 2}
                },
                "Optional": true,
                "AccessPos": {"Offset": 3, "Line": 1, "Column": 3},
                "Identifier": {
                    "Identifier": "bar",
                    "StartPos": {"Offset": 5, "Line": 1, "Column": 5},
                    "EndPos": {"Offset": 7, "Line": 1, "Column": 7}
                },
                "StartPos": {"Offset": 0, "Line": 1, "Column": 0},
                "EndPos": {"Offset": 7, "Line": 1, "Column": 7}
            },
            "StartPos": {"Offset": 0, "Line": 1, "Column": 0},
            "EndPos": {"Offset": 7, "Line": 1, "Column": 7}
        }
        `,
		string(actual),
	)
}

func TestAccessExpression(t *testing.T) {

	t.Parallel()

	target := testIdentifierExpression("foo", 0)

	t.Run("member", func(t *testing.T) {

		t.Parallel()

		var expr AccessExpression = &MemberExpression{
			Expression: target,
			Identifier: Identifier{Identifier: "bar", Pos: testPosition(4)},
		}
		assert.Same(t, target, expr.AccessedExpression())
	})

	t.Run("index", func(t *testing.T) {

		t.Parallel()

		var expr AccessExpression = &IndexExpression{
			TargetExpression:   target,
			IndexingExpression: &StringExpression{Value: "bar"},
		}
		assert.Same(t, target, expr.AccessedExpression())
	})
}

func TestOptionalLinks_String(t *testing.T) {

	t.Parallel()

	foo := testIdentifierExpression("foo", 0)

	t.Run("index", func(t *testing.T) {

		t.Parallel()

		expr := &OptionalChainExpression{
			Expression: &IndexExpression{
				TargetExpression:   foo,
				IndexingExpression: &StringExpression{Value: "bar"},
				Optional:           true,
			},
		}
		assert.Equal(t, `foo?.["bar"]`, expr.String())
	})

	t.Run("invocation", func(t *testing.T) {

		t.Parallel()

		expr := &OptionalChainExpression{
			Expression: &InvocationExpression{
				InvokedExpression: foo,
				Optional:          true,
			},
		}
		assert.Equal(t, `foo?.()`, expr.String())
	})

	t.Run("invocation with arguments", func(t *testing.T) {

		t.Parallel()

		expr := &InvocationExpression{
			InvokedExpression: foo,
			Arguments: []Expression{
				&NumberExpression{Literal: "1", Value: 1},
				&BoolExpression{Value: true},
				&NullExpression{},
			},
		}
		assert.Equal(t, `foo(1, true, null)`, expr.String())
	})
}

func TestParenthesizedExpression_String(t *testing.T) {

	t.Parallel()

	// (foo?.bar).baz
	expr := &MemberExpression{
		Expression: &ParenthesizedExpression{
			Expression: testNonNullOptionalChain().Expression,
		},
		Identifier: Identifier{Identifier: "baz"},
	}

	assert.Equal(t, "(foo?.bar).baz", expr.String())
}

func TestBinaryExpression_String(t *testing.T) {

	t.Parallel()

	a := testIdentifierExpression("a", 0)
	b := testIdentifierExpression("b", 4)
	c := testIdentifierExpression("c", 8)

	t.Run("higher precedence operand", func(t *testing.T) {

		t.Parallel()

		expr := &BinaryExpression{
			Operation: OperationPlus,
			Left:      a,
			Right: &BinaryExpression{
				Operation: OperationMul,
				Left:      b,
				Right:     c,
			},
		}
		assert.Equal(t, "a + b * c", expr.String())
	})

	t.Run("lower precedence operand", func(t *testing.T) {

		t.Parallel()

		expr := &BinaryExpression{
			Operation: OperationMul,
			Left: &BinaryExpression{
				Operation: OperationPlus,
				Left:      a,
				Right:     b,
			},
			Right: c,
		}
		assert.Equal(t, "(a + b) * c", expr.String())
	})

	t.Run("right operand of same precedence", func(t *testing.T) {

		t.Parallel()

		expr := &BinaryExpression{
			Operation: OperationMinus,
			Left:      a,
			Right: &BinaryExpression{
				Operation: OperationMinus,
				Left:      b,
				Right:     c,
			},
		}
		assert.Equal(t, "a - (b - c)", expr.String())
	})
}

func TestUnaryExpression_String(t *testing.T) {

	t.Parallel()

	expr := &UnaryExpression{
		Operation:  OperationTypeof,
		Expression: testIdentifierExpression("x", 7),
	}
	assert.Equal(t, "typeof x", expr.String())
}

func TestConditionalExpression_String(t *testing.T) {

	t.Parallel()

	expr := &ConditionalExpression{
		Test: testIdentifierExpression("a", 0),
		Then: &NumberExpression{Value: 1},
		Else: &StringExpression{Value: "b\n"},
	}
	assert.Equal(t, `a ? 1 : "b\n"`, expr.String())
}

func TestAssignmentExpression_String(t *testing.T) {

	t.Parallel()

	expr := &AssignmentExpression{
		Target: testIdentifierExpression("a", 0),
		Value: &AssignmentExpression{
			Target: testIdentifierExpression("b", 4),
			Value:  &ArrayExpression{},
		},
	}
	assert.Equal(t, "a = b = []", expr.String())
}

func TestObjectExpression_String(t *testing.T) {

	t.Parallel()

	t.Run("empty", func(t *testing.T) {

		t.Parallel()

		assert.Equal(t, "{}", (&ObjectExpression{}).String())
	})

	t.Run("properties", func(t *testing.T) {

		t.Parallel()

		expr := &ObjectExpression{
			Properties: []ObjectProperty{
				{
					Key:   testIdentifierExpression("a", 1),
					Value: &NumberExpression{Literal: "0x1", Value: 1},
				},
			},
		}
		assert.Equal(t, "{ a: 0x1 }", expr.String())
	})
}

func TestQuoteString(t *testing.T) {

	t.Parallel()

	assert.Equal(t, `"a\"b\\c\t"`, QuoteString("a\"b\\c\t"))
	assert.Equal(t, `"\u{7}"`, QuoteString("\a"))
	assert.Equal(t, `"ü"`, QuoteString("ü"))
}
