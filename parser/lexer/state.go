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
	"fmt"
)

// stateFn uses the input lexer to read runes and emit tokens.
//
// It either returns nil when reaching end of file,
// or returns another stateFn for more scanning work.
type stateFn func(*lexer) stateFn

// rootState returns a stateFn that scans the file and emits tokens until
// reaching the end of the file.
func rootState(l *lexer) stateFn {
	for {
		var ty TokenType

		r := l.next()
		switch r {
		case EOF:
			return nil
		case '+':
			ty = TokenPlus
		case '-':
			ty = TokenMinus
		case '*':
			ty = TokenStar
		case '%':
			ty = TokenPercent
		case '(':
			ty = TokenParenOpen
		case ')':
			ty = TokenParenClose
		case '{':
			ty = TokenBraceOpen
		case '}':
			ty = TokenBraceClose
		case '[':
			ty = TokenBracketOpen
		case ']':
			ty = TokenBracketClose
		case ',':
			ty = TokenComma
		case ';':
			ty = TokenSemicolon
		case ':':
			ty = TokenColon
		case '.':
			if isDecimalDigit(rune(l.peek(0))) {
				return numberState
			}
			ty = TokenDot
		case '=':
			switch {
			case l.acceptOne('='):
				if l.acceptOne('=') {
					ty = TokenEqualEqualEqual
				} else {
					ty = TokenEqualEqual
				}
			default:
				ty = TokenEqual
			}
		case '!':
			switch {
			case l.acceptOne('='):
				if l.acceptOne('=') {
					ty = TokenNotEqualEqual
				} else {
					ty = TokenNotEqual
				}
			default:
				ty = TokenExclamationMark
			}
		case '&':
			if !l.acceptOne('&') {
				return l.error(fmt.Errorf("unsupported operator: %q", r))
			}
			ty = TokenAmpersandAmpersand
		case '|':
			if !l.acceptOne('|') {
				return l.error(fmt.Errorf("unsupported operator: %q", r))
			}
			ty = TokenVerticalBarVerticalBar
		case '<':
			if l.acceptOne('=') {
				ty = TokenLessEqual
			} else {
				ty = TokenLess
			}
		case '>':
			if l.acceptOne('=') {
				ty = TokenGreaterEqual
			} else {
				ty = TokenGreater
			}
		case '?':
			switch {
			case l.acceptOne('?'):
				ty = TokenDoubleQuestionMark
			case l.acceptOptionalChainDot():
				ty = TokenQuestionMarkDot
			default:
				ty = TokenQuestionMark
			}
		case ' ', '\t', '\r':
			return spaceState(false)
		case '\n':
			return spaceState(true)
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return numberState
		case '"', '\'':
			return stringState
		case '/':
			r = l.next()
			switch r {
			case '/':
				return lineCommentState
			case '*':
				return blockCommentState
			default:
				l.backupOne()
				ty = TokenSlash
			}
		default:
			if isIdentifierStart(r) {
				return identifierState
			}

			return l.error(fmt.Errorf("unrecognized character: %#U", r))
		}

		l.emitType(ty)
	}
}

// acceptOptionalChainDot reads the dot of an optional chain token `?.`, if any.
// A `?.` directly followed by a decimal digit is a conditional operator
// followed by a number, e.g. `a?.5:1`
func (l *lexer) acceptOptionalChainDot() bool {
	if l.peek(0) != '.' || isDecimalDigit(rune(l.peek(1))) {
		return false
	}
	l.next()
	return true
}

func (l *lexer) error(err error) stateFn {
	l.emitError(err)
	return nil
}

// numberState returns a stateFn that scans the following runes as a number
// and emits a corresponding token
func numberState(l *lexer) stateFn {
	// lookahead is already lexed.
	// parse more, if any
	r := l.current
	switch r {
	case '.':
		l.scanDigits(isDecimalDigit)
		l.scanExponent()

	case '0':
		r = l.next()
		var isDigit func(rune) bool
		switch r {
		case 'x', 'X':
			isDigit = isHexadecimalDigit
		case 'o', 'O':
			isDigit = isOctalDigit
		case 'b', 'B':
			isDigit = isBinaryDigit
		default:
			l.backupOne()
			l.scanDigits(isDecimalDigit)
			l.scanFractionAndExponent()
			return l.emitTokenAndReturnRootState(TokenNumber)
		}

		if l.scanDigits(isDigit) == 0 {
			l.emitError(fmt.Errorf("missing digits"))
		}

	default:
		l.scanDigits(isDecimalDigit)
		l.scanFractionAndExponent()
	}

	return l.emitTokenAndReturnRootState(TokenNumber)
}

func spaceState(startIsNewline bool) stateFn {
	return func(l *lexer) stateFn {
		containsNewline := l.scanSpace()
		containsNewline = containsNewline || startIsNewline

		l.emit(
			TokenSpace,
			Space{
				ContainsNewline: containsNewline,
			},
			l.startPosition(),
			true,
		)

		return rootState
	}
}

func identifierState(l *lexer) stateFn {
	l.scanIdentifier()
	return l.emitTokenAndReturnRootState(TokenIdentifier)
}

func stringState(l *lexer) stateFn {
	l.scanString(l.current)
	return l.emitTokenAndReturnRootState(TokenString)
}

func lineCommentState(l *lexer) stateFn {
	l.scanLineComment()
	return l.emitTokenAndReturnRootState(TokenLineComment)
}

func blockCommentState(l *lexer) stateFn {
	if !l.scanBlockComment() {
		l.emitError(fmt.Errorf("missing comment end %q", "*/"))
	}
	return l.emitTokenAndReturnRootState(TokenBlockComment)
}

func (l *lexer) emitTokenAndReturnRootState(ty TokenType) stateFn {
	l.emitType(ty)
	return rootState
}
