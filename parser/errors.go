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

package parser

import (
	"fmt"
	"strings"

	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/common"
	"github.com/ecmalint/ecmalint/errors"
	"github.com/ecmalint/ecmalint/parser/lexer"
	"github.com/ecmalint/ecmalint/pretty"
)

// Error

type Error struct {
	Code   []byte
	Errors []error
}

var _ errors.ParentError = Error{}

func (e Error) Error() string {
	var sb strings.Builder
	sb.WriteString("Parsing failed:\n")
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(e, nil, map[common.Location][]byte{nil: e.Code})
	if printErr != nil {
		panic(printErr)
	}
	return sb.String()
}

func (Error) IsUserError() {}

func (e Error) ChildErrors() []error {
	return e.Errors
}

func (e Error) Unwrap() []error {
	return e.Errors
}

// ParseError

type ParseError interface {
	errors.UserError
	ast.HasPosition
	isParseError()
}

// SyntaxError

type SyntaxError struct {
	Message string
	Pos     ast.Position
}

func NewSyntaxError(pos ast.Position, message string, params ...any) *SyntaxError {
	return &SyntaxError{
		Pos:     pos,
		Message: fmt.Sprintf(message, params...),
	}
}

var _ ParseError = &SyntaxError{}

func (*SyntaxError) isParseError() {}

func (*SyntaxError) IsUserError() {}

func (e *SyntaxError) StartPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) EndPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// UnexpectedTokenError is reported when the parser requires a certain token,
// but the input contains another one.

type UnexpectedTokenError struct {
	Expected lexer.TokenType
	Got      lexer.TokenType
	ast.Range
}

func NewUnexpectedTokenError(expected lexer.TokenType, got lexer.Token) *UnexpectedTokenError {
	return &UnexpectedTokenError{
		Expected: expected,
		Got:      got.Type,
		Range:    got.Range,
	}
}

var _ ParseError = &UnexpectedTokenError{}
var _ errors.SecondaryError = &UnexpectedTokenError{}

func (*UnexpectedTokenError) isParseError() {}

func (*UnexpectedTokenError) IsUserError() {}

func (e *UnexpectedTokenError) Error() string {
	if e.Got == lexer.TokenEOF {
		return fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
	}
	return fmt.Sprintf("unexpected token: got %s, expected %s", e.Got, e.Expected)
}

func (e *UnexpectedTokenError) SecondaryError() string {
	return fmt.Sprintf("insert %s here", e.Expected)
}

// InvalidNumberLiteralError

type InvalidNumberLiteralError struct {
	Literal string
	ast.Range
}

var _ ParseError = &InvalidNumberLiteralError{}

func (*InvalidNumberLiteralError) isParseError() {}

func (*InvalidNumberLiteralError) IsUserError() {}

func (e *InvalidNumberLiteralError) Error() string {
	return fmt.Sprintf("invalid number literal: %s", e.Literal)
}

// NonNullAssertionNotAllowedError is reported for a non-null assertion
// when the input is parsed as plain JavaScript.

type NonNullAssertionNotAllowedError struct {
	Pos ast.Position
}

var _ ParseError = &NonNullAssertionNotAllowedError{}
var _ errors.SecondaryError = &NonNullAssertionNotAllowedError{}

func (*NonNullAssertionNotAllowedError) isParseError() {}

func (*NonNullAssertionNotAllowedError) IsUserError() {}

func (e *NonNullAssertionNotAllowedError) StartPosition() ast.Position {
	return e.Pos
}

func (e *NonNullAssertionNotAllowedError) EndPosition() ast.Position {
	return e.Pos
}

func (*NonNullAssertionNotAllowedError) Error() string {
	return "non-null assertions can only be used in TypeScript files"
}

func (*NonNullAssertionNotAllowedError) SecondaryError() string {
	return "remove the `!`"
}
