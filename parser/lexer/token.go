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

package lexer

import (
	"github.com/ecmalint/ecmalint/ast"
)

type Token struct {
	SpaceOrError any
	ast.Range
	Type TokenType
}

func (t Token) Is(ty TokenType) bool {
	return t.Type == ty
}

func (t Token) Source(input []byte) []byte {
	return t.Range.Source(input)
}

type Space struct {
	ContainsNewline bool
}

type TokenStream interface {
	// Next consumes and returns one Token. If there are no tokens remaining, it returns TokenEOF
	Next() Token
	// Cursor returns the current position in the stream
	Cursor() int
	// Revert resets the stream position to the given cursor
	Revert(cursor int)
	// Input returns the whole input as source code
	Input() []byte
}
