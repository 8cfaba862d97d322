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

func TestPosition_Shifted(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		Position{Offset: 7, Line: 2, Column: 5},
		Position{Offset: 4, Line: 2, Column: 2}.Shifted(3),
	)
}

func TestEndPosition(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		Position{Offset: 9, Line: 1, Column: 9},
		EndPosition(Position{Offset: 4, Line: 1, Column: 4}, 9),
	)
}

func TestRange_Source(t *testing.T) {

	t.Parallel()

	const code = "foo?.bar!"

	t.Run("inclusive end", func(t *testing.T) {
		t.Parallel()

		rng := Range{
			StartPos: Position{Offset: 0, Line: 1, Column: 0},
			EndPos:   Position{Offset: 8, Line: 1, Column: 8},
		}
		assert.Equal(t, []byte(code), rng.Source([]byte(code)))
	})

	t.Run("clamped", func(t *testing.T) {
		t.Parallel()

		rng := Range{
			StartPos: Position{Offset: 5, Line: 1, Column: 5},
			EndPos:   Position{Offset: 100, Line: 1, Column: 100},
		}
		assert.Equal(t, []byte("bar!"), rng.Source([]byte(code)))
	})

	t.Run("outside", func(t *testing.T) {
		t.Parallel()

		rng := Range{
			StartPos: Position{Offset: 20, Line: 1, Column: 20},
			EndPos:   Position{Offset: 25, Line: 1, Column: 25},
		}
		assert.Nil(t, rng.Source([]byte(code)))
	})
}

func TestRange_Contains(t *testing.T) {

	t.Parallel()

	rng := Range{
		StartPos: Position{Offset: 2, Line: 1, Column: 2},
		EndPos:   Position{Offset: 4, Line: 1, Column: 4},
	}

	assert.False(t, rng.Contains(Position{Offset: 1}))
	assert.True(t, rng.Contains(Position{Offset: 2}))
	assert.True(t, rng.Contains(Position{Offset: 4}))
	assert.False(t, rng.Contains(Position{Offset: 5}))
}

func TestPosition_Compare(t *testing.T) {

	t.Parallel()

	a := Position{Offset: 1}
	b := Position{Offset: 2}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}
