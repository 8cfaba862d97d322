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
	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/errors"
	"github.com/ecmalint/ecmalint/parser/lexer"
)

// Config configures the parser.
type Config struct {
	// DisableNonNullAssertions rejects the TypeScript non-null assertion operator (`x!`),
	// e.g. when parsing plain JavaScript
	DisableNonNullAssertions bool
}

type parser struct {
	// tokens is a stream of tokens from the lexer
	tokens lexer.TokenStream
	// current is the current token being parsed
	current lexer.Token
	// sawNewline is true if the trivia preceding the current token contained a newline
	sawNewline bool
	// errors are the parsing errors encountered during parsing
	errors []error
	// config enables or disables syntax
	config Config
}

// Parse creates a lexer to scan the given input string,
// and uses the given `parse` function to parse tokens into a result.
//
// It can be composed with different parse functions to parse the input string into different results.
// See "ParseExpression", "ParseProgram" as examples.
func Parse[T any](
	input []byte,
	parse func(*parser) T,
	config Config,
) (
	result T,
	errs []error,
) {
	p := &parser{
		config: config,
		tokens: lexer.Lex(input),
	}

	defer func() {
		if r := recover(); r != nil {
			var err error
			switch r := r.(type) {
			case ParseError:
				// Report parser errors
				err = r

			case errors.InternalError:
				// Internal errors percolate up
				panic(r)

			case error:
				err = errors.NewUnexpectedErrorFromCause(r)

			default:
				err = errors.NewUnexpectedError("parser: %v", r)
			}

			p.report(err)

			var zero T
			result = zero
			errs = p.errors
		}
	}()

	// Get the initial token
	p.next()

	result = parse(p)

	if !p.current.Is(lexer.TokenEOF) {
		p.report(NewSyntaxError(
			p.current.StartPos,
			"unexpected token: %s",
			p.current.Type,
		))
	}

	return result, p.errors
}

func (p *parser) report(errs ...error) {
	p.errors = append(p.errors, errs...)
}

// next moves to the next significant token.
// Trivia (whitespace and comments) is skipped,
// and lexer errors are reported.
func (p *parser) next() {
	p.sawNewline = false

	for {
		token := p.tokens.Next()

		switch token.Type {
		case lexer.TokenError:
			err, ok := token.SpaceOrError.(error)
			if !ok {
				panic(errors.NewUnreachableError())
			}
			p.report(NewSyntaxError(token.StartPos, "%s", err.Error()))
			continue

		case lexer.TokenSpace:
			space, ok := token.SpaceOrError.(lexer.Space)
			if ok && space.ContainsNewline {
				p.sawNewline = true
			}
			continue

		case lexer.TokenBlockComment:
			if token.StartPos.Line != token.EndPos.Line {
				p.sawNewline = true
			}
			continue

		case lexer.TokenLineComment:
			continue
		}

		p.current = token
		return
	}
}

// mustOne consumes the current token if it has the given type,
// and aborts parsing with an UnexpectedTokenError otherwise.
func (p *parser) mustOne(tokenType lexer.TokenType) lexer.Token {
	t := p.current
	if !t.Is(tokenType) {
		panic(NewUnexpectedTokenError(tokenType, t))
	}
	p.next()
	return t
}

// tokenSource returns the source code of the given token.
func (p *parser) tokenSource(token lexer.Token) []byte {
	input := p.tokens.Input()
	return token.Source(input)
}

// isKeyword returns true if the current token is an identifier
// with the given keyword as its source.
func (p *parser) isKeyword(keyword string) bool {
	return p.current.Is(lexer.TokenIdentifier) &&
		string(p.tokenSource(p.current)) == keyword
}

// atStatementEnd returns true if the current token may end a statement:
// a semicolon, a closing brace, the end of the input, or a token on a new line.
func (p *parser) atStatementEnd() bool {
	switch p.current.Type {
	case lexer.TokenSemicolon,
		lexer.TokenBraceClose,
		lexer.TokenEOF:

		return true
	}
	return p.sawNewline
}

// endStatement consumes an optional semicolon terminating a statement.
func (p *parser) endStatement() {
	if p.current.Is(lexer.TokenSemicolon) {
		p.next()
		return
	}

	if !p.atStatementEnd() {
		p.report(NewSyntaxError(
			p.current.StartPos,
			"unexpected token %s, expected %s or newline after statement",
			p.current.Type,
			lexer.TokenSemicolon,
		))
	}
}

// ParseExpression parses the given input as a single expression.
func ParseExpression(input []byte, config Config) (ast.Expression, error) {
	expression, errs := Parse(
		input,
		func(p *parser) ast.Expression {
			return parseExpression(p, lowestBindingPower)
		},
		config,
	)
	if len(errs) > 0 {
		return expression, Error{
			Code:   input,
			Errors: errs,
		}
	}
	return expression, nil
}

// ParseStatements parses the given input as a list of statements.
func ParseStatements(input []byte, config Config) ([]ast.Statement, error) {
	statements, errs := Parse(
		input,
		func(p *parser) []ast.Statement {
			return parseStatements(p, lexer.TokenEOF)
		},
		config,
	)
	if len(errs) > 0 {
		return statements, Error{
			Code:   input,
			Errors: errs,
		}
	}
	return statements, nil
}

// ParseProgram parses the given input as a program.
//
// A program is returned even if parsing failed.
// It contains no statements if parsing was aborted.
func ParseProgram(input []byte, config Config) (*ast.Program, error) {
	statements, err := ParseStatements(input, config)
	return ast.NewProgram(statements), err
}
