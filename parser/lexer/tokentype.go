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
	"github.com/ecmalint/ecmalint/errors"
)

type TokenType uint8

const EOF rune = -1

const (
	TokenError TokenType = iota
	TokenEOF
	TokenSpace
	TokenNumber
	TokenIdentifier
	TokenString
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenDoubleQuestionMark
	TokenParenOpen
	TokenParenClose
	TokenBraceOpen
	TokenBraceClose
	TokenBracketOpen
	TokenBracketClose
	TokenQuestionMark
	TokenQuestionMarkDot
	TokenComma
	TokenColon
	TokenDot
	TokenSemicolon
	TokenLess
	TokenLessEqual
	TokenGreater
	TokenGreaterEqual
	TokenEqual
	TokenEqualEqual
	TokenEqualEqualEqual
	TokenExclamationMark
	TokenNotEqual
	TokenNotEqualEqual
	TokenAmpersandAmpersand
	TokenVerticalBarVerticalBar
	TokenBlockComment
	TokenLineComment
	// NOTE: not an actual token, must be last item
	TokenMax
)

func init() {
	// ensure all tokens have its string format
	for t := TokenType(0); t < TokenMax; t++ {
		_ = t.String()
	}
}

func (t TokenType) String() string {
	switch t {
	case TokenError:
		return "error"
	case TokenEOF:
		return "EOF"
	case TokenSpace:
		return "space"
	case TokenNumber:
		return "number"
	case TokenIdentifier:
		return "identifier"
	case TokenString:
		return "string"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenStar:
		return "'*'"
	case TokenSlash:
		return "'/'"
	case TokenPercent:
		return "'%'"
	case TokenDoubleQuestionMark:
		return "'??'"
	case TokenParenOpen:
		return "'('"
	case TokenParenClose:
		return "')'"
	case TokenBraceOpen:
		return "'{'"
	case TokenBraceClose:
		return "'}'"
	case TokenBracketOpen:
		return "'['"
	case TokenBracketClose:
		return "']'"
	case TokenQuestionMark:
		return "'?'"
	case TokenQuestionMarkDot:
		return "'?.'"
	case TokenComma:
		return "','"
	case TokenColon:
		return "':'"
	case TokenDot:
		return "'.'"
	case TokenSemicolon:
		return "';'"
	case TokenLess:
		return "'<'"
	case TokenLessEqual:
		return "'<='"
	case TokenGreater:
		return "'>'"
	case TokenGreaterEqual:
		return "'>='"
	case TokenEqual:
		return "'='"
	case TokenEqualEqual:
		return "'=='"
	case TokenEqualEqualEqual:
		return "'==='"
	case TokenExclamationMark:
		return "'!'"
	case TokenNotEqual:
		return "'!='"
	case TokenNotEqualEqual:
		return "'!=='"
	case TokenAmpersandAmpersand:
		return "'&&'"
	case TokenVerticalBarVerticalBar:
		return "'||'"
	case TokenBlockComment:
		return "block comment"
	case TokenLineComment:
		return "line comment"
	default:
		panic(errors.NewUnreachableError())
	}
}

// IsTrivia returns true for token types the parser skips:
// whitespace and comments.
func (t TokenType) IsTrivia() bool {
	switch t {
	case TokenSpace, TokenLineComment, TokenBlockComment:
		return true
	default:
		return false
	}
}
