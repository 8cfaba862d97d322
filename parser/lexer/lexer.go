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
	"unicode/utf8"

	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/errors"
)

// position is the position of a rune in the input
type position struct {
	// line number, starting at 1
	line int
	// column number, starting at 0 (UTF-8 character count)
	column int
}

type lexer struct {
	// input is the entire input
	input []byte
	// tokens contains all tokens of the stream
	tokens []Token
	// startOffset is the start offset of the current word
	startOffset int
	// endOffset is the end offset of the current word
	endOffset int
	// prevEndOffset is the previous end offset, used for stepping back
	prevEndOffset int
	// cursor is the offset in the token stream
	cursor int
	// current is the currently scanned rune
	current rune
	// prevCurrent is the previously scanned rune, used for stepping back
	prevCurrent rune
	// canBackup indicates whether stepping back is allowed
	canBackup bool
	// startPos is the start position of the current word
	startPos position
}

var _ TokenStream = &lexer{}

func (l *lexer) Next() Token {
	if l.cursor >= len(l.tokens) {

		// At the end of the token stream,
		// emit a synthetic EOF token

		endPos := l.endPos()
		pos := ast.Position{
			Offset: l.endOffset - 1,
			Line:   endPos.line,
			Column: endPos.column,
		}

		return Token{
			Type:  TokenEOF,
			Range: ast.NewRange(pos, pos),
		}

	}
	token := l.tokens[l.cursor]
	l.cursor++
	return token
}

func (l *lexer) Input() []byte {
	return l.input
}

func (l *lexer) Cursor() int {
	return l.cursor
}

func (l *lexer) Revert(cursor int) {
	l.cursor = cursor
}

// Lex tokenizes the whole input up front and returns the tokens as a stream.
func Lex(input []byte) TokenStream {
	l := &lexer{
		input: input,
		startPos: position{
			line: 1,
		},
	}
	l.run(rootState)
	return l
}

// run executes the stateFn, which will scan the runes in the input
// and emit tokens.
//
// stateFn might return another stateFn to indicate further scanning work,
// or nil if there is no scanning work left to be done,
// i.e. run will keep running the returned stateFn until no more
// stateFn is returned, which for example happens when reaching the end of the file.
//
// When all stateFn have been executed, an EOF token is emitted.
func (l *lexer) run(state stateFn) {

	// catch panic exceptions, emit it to the tokens channel before
	// closing it
	defer func() {
		if r := recover(); r != nil {
			var err error
			switch r := r.(type) {
			case errors.InternalError:
				// internal errors percolate up
				panic(r)
			case error:
				err = r
			default:
				err = fmt.Errorf("lexer: %v", r)
			}

			l.emitError(err)
		}
	}()

	for state != nil {
		state = state(l)
	}
}

// next decodes the next rune (UTF8 character) from the input string.
//
// NOTE: next does NOT update the end position of the current word.
func (l *lexer) next() rune {
	l.canBackup = true

	endOffset := l.endOffset

	// update prev state
	l.prevEndOffset = endOffset
	l.prevCurrent = l.current

	r := EOF
	w := 1
	if endOffset < len(l.input) {
		r, w = utf8.DecodeRune(l.input[endOffset:])
	}

	l.endOffset += w
	l.current = r

	return r
}

// peek returns the byte at the given distance after the current rune, or 0.
func (l *lexer) peek(distance int) byte {
	offset := l.endOffset + distance
	if offset >= len(l.input) {
		return 0
	}
	return l.input[offset]
}

// word returns the currently scanned word
func (l *lexer) word() []byte {
	start := l.startOffset
	end := l.endOffset
	if end > len(l.input) {
		end = len(l.input)
	}
	return l.input[start:end]
}

// acceptOne reads one rune ahead.
// It returns true if the next rune matches with the input rune,
// otherwise it steps back one rune and returns false.
func (l *lexer) acceptOne(r rune) bool {
	if l.next() == r {
		return true
	}
	l.backupOne()
	return false
}

// backupOne steps back one rune
func (l *lexer) backupOne() {
	if !l.canBackup {
		panic(errors.NewUnreachableError())
	}
	l.canBackup = false

	l.endOffset = l.prevEndOffset
	l.current = l.prevCurrent
}

func (l *lexer) emit(ty TokenType, spaceOrError any, rangeStart ast.Position, consume bool) {
	endPos := l.endPos()

	token := Token{
		Type:         ty,
		SpaceOrError: spaceOrError,
		Range: ast.NewRange(
			rangeStart,
			ast.Position{
				Offset: l.endOffset - 1,
				Line:   endPos.line,
				Column: endPos.column,
			},
		),
	}

	l.tokens = append(l.tokens, token)

	if consume {
		l.startOffset = l.endOffset

		l.startPos = endPos
		r, _ := utf8.DecodeRune(l.input[l.endOffset-1:])

		if r == '\n' {
			l.startPos.line++
			l.startPos.column = 0
		} else {
			l.startPos.column++
		}
	}
}

func (l *lexer) startPosition() ast.Position {
	return ast.Position{
		Offset: l.startOffset,
		Line:   l.startPos.line,
		Column: l.startPos.column,
	}
}

// endPos returns the position of the last rune of the current word
func (l *lexer) endPos() position {
	startOffset := l.startOffset
	endOffset := l.endOffset
	if endOffset > len(l.input) {
		endOffset = len(l.input) + 1
	}

	endPos := l.startPos

	var w int
	for offset := startOffset; offset < endOffset-1; offset += w {
		var r rune
		r, w = utf8.DecodeRune(l.input[offset:])

		if r == '\n' {
			endPos.line++
			endPos.column = 0
		} else {
			endPos.column++
		}
	}

	return endPos
}

func (l *lexer) emitType(ty TokenType) {
	l.emit(ty, nil, l.startPosition(), true)
}

func (l *lexer) emitError(err error) {
	endPos := l.endPos()
	rangeStart := ast.Position{
		Offset: l.endOffset - 1,
		Line:   endPos.line,
		Column: endPos.column,
	}
	l.emit(TokenError, err, rangeStart, false)
}

func (l *lexer) scanSpace() (containsNewline bool) {
	// lookahead is already lexed.
	// parse more, if any
	for {
		r := l.next()
		switch r {
		case ' ', '\t', '\r':
			continue
		case '\n':
			containsNewline = true
		default:
			l.backupOne()
			return
		}
	}
}

func (l *lexer) scanIdentifier() {
	// lookahead is already lexed.
	// parse more, if any
	for {
		r := l.next()
		if !isIdentifierRune(r) {
			l.backupOne()
			return
		}
	}
}

func isIdentifierStart(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_' ||
		r == '$'
}

func isIdentifierRune(r rune) bool {
	return isIdentifierStart(r) ||
		isDecimalDigit(r)
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexadecimalDigit(r rune) bool {
	return isDecimalDigit(r) ||
		r >= 'a' && r <= 'f' ||
		r >= 'A' && r <= 'F'
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

// scanDigits scans runes accepted by the given predicate,
// and the numeric separator '_'. It returns the number of scanned digits.
func (l *lexer) scanDigits(isDigit func(rune) bool) int {
	count := 0
	for {
		r := l.next()
		switch {
		case isDigit(r):
			count++
		case r == '_':
			continue
		default:
			l.backupOne()
			return count
		}
	}
}

// scanFractionAndExponent scans the optional fraction (`.5`) and exponent (`e10`)
// of a decimal number
func (l *lexer) scanFractionAndExponent() {
	if l.acceptOne('.') {
		l.scanDigits(isDecimalDigit)
	}
	l.scanExponent()
}

func (l *lexer) scanExponent() {
	r := l.next()
	if r != 'e' && r != 'E' {
		l.backupOne()
		return
	}

	r = l.next()
	if r != '+' && r != '-' {
		l.backupOne()
	}

	l.scanDigits(isDecimalDigit)
}

// scanString scans a string literal up to and including the closing quote.
// It stops before a newline or at the end of the input if the closing quote is missing.
func (l *lexer) scanString(quote rune) {
	for {
		r := l.next()
		switch r {
		case quote:
			return
		case '\\':
			if l.next() == EOF {
				l.backupOne()
				return
			}
		case '\n':
			l.backupOne()
			return
		case EOF:
			// NOTE: the EOF is not consumed
			l.backupOne()
			return
		}
	}
}

func (l *lexer) scanLineComment() {
	// lookahead is already lexed.
	// parse more, if any
	for {
		r := l.next()
		switch r {
		case '\n', EOF:
			l.backupOne()
			return
		}
	}
}

// scanBlockComment scans up to and including the closing `*/`.
// It returns false if the input ended before the comment was closed.
func (l *lexer) scanBlockComment() bool {
	for {
		r := l.next()
		switch r {
		case EOF:
			l.backupOne()
			return false
		case '*':
			if l.acceptOne('/') {
				return true
			}
		}
	}
}
