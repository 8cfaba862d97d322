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
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/errors"
	"github.com/ecmalint/ecmalint/parser/lexer"
)

const lowestBindingPower = 0

const (
	exprLeftBindingPowerAssignment = 10 * (iota + 1)
	exprLeftBindingPowerTernary
	exprLeftBindingPowerNullishCoalescing
	exprLeftBindingPowerLogicalOr
	exprLeftBindingPowerLogicalAnd
	exprLeftBindingPowerEquality
	exprLeftBindingPowerRelational
	exprLeftBindingPowerAdditive
	exprLeftBindingPowerMultiplicative
	exprLeftBindingPowerUnaryPrefix
)

type infixExprFunc func(left, right ast.Expression) ast.Expression
type prefixExprFunc func(right ast.Expression, tokenRange ast.Range) ast.Expression
type exprNullDenotationFunc func(parser *parser, token lexer.Token) ast.Expression
type exprLeftDenotationFunc func(parser *parser, token lexer.Token, left ast.Expression) ast.Expression

type literalExpr struct {
	tokenType      lexer.TokenType
	nullDenotation exprNullDenotationFunc
}

type infixExpr struct {
	tokenType        lexer.TokenType
	leftBindingPower int
	rightAssociative bool
	leftDenotation   infixExprFunc
}

type binaryExpr struct {
	tokenType        lexer.TokenType
	leftBindingPower int
	rightAssociative bool
	operation        ast.Operation
}

type prefixExpr struct {
	tokenType      lexer.TokenType
	bindingPower   int
	nullDenotation prefixExprFunc
}

type unaryExpr struct {
	tokenType    lexer.TokenType
	bindingPower int
	operation    ast.Operation
}

var exprNullDenotations [lexer.TokenMax]exprNullDenotationFunc
var exprLeftBindingPowers [lexer.TokenMax]int
var exprLeftDenotations [lexer.TokenMax]exprLeftDenotationFunc

func defineExpr(def any) {
	switch def := def.(type) {
	case infixExpr:
		tokenType := def.tokenType

		setExprLeftBindingPower(tokenType, def.leftBindingPower)

		rightBindingPower := def.leftBindingPower
		if def.rightAssociative {
			rightBindingPower--
		}

		setExprLeftDenotation(
			tokenType,
			func(parser *parser, _ lexer.Token, left ast.Expression) ast.Expression {
				right := parseExpression(parser, rightBindingPower)
				return def.leftDenotation(left, right)
			},
		)

	case binaryExpr:
		defineExpr(infixExpr{
			tokenType:        def.tokenType,
			leftBindingPower: def.leftBindingPower,
			rightAssociative: def.rightAssociative,
			leftDenotation: func(left, right ast.Expression) ast.Expression {
				return ast.NewBinaryExpression(
					def.operation,
					left,
					right,
				)
			},
		})

	case literalExpr:
		tokenType := def.tokenType
		setExprNullDenotation(tokenType, def.nullDenotation)

	case prefixExpr:
		tokenType := def.tokenType
		setExprNullDenotation(
			tokenType,
			func(parser *parser, token lexer.Token) ast.Expression {
				right := parseExpression(parser, def.bindingPower)
				return def.nullDenotation(right, token.Range)
			},
		)

	case unaryExpr:
		defineExpr(prefixExpr{
			tokenType:    def.tokenType,
			bindingPower: def.bindingPower,
			nullDenotation: func(right ast.Expression, tokenRange ast.Range) ast.Expression {
				return ast.NewUnaryExpression(
					def.operation,
					right,
					tokenRange.StartPos,
				)
			},
		})

	default:
		panic(errors.NewUnreachableError())
	}
}

func setExprNullDenotation(tokenType lexer.TokenType, nullDenotation exprNullDenotationFunc) {
	current := exprNullDenotations[tokenType]
	if current != nil {
		panic(errors.NewUnexpectedError(
			"expression null denotation for token %s already exists",
			tokenType,
		))
	}
	exprNullDenotations[tokenType] = nullDenotation
}

func setExprLeftBindingPower(tokenType lexer.TokenType, power int) {
	current := exprLeftBindingPowers[tokenType]
	if current > power {
		return
	}
	exprLeftBindingPowers[tokenType] = power
}

func setExprLeftDenotation(tokenType lexer.TokenType, leftDenotation exprLeftDenotationFunc) {
	current := exprLeftDenotations[tokenType]
	if current != nil {
		panic(errors.NewUnexpectedError(
			"expression left denotation for token %s already exists",
			tokenType,
		))
	}
	exprLeftDenotations[tokenType] = leftDenotation
}

func init() {
	defineExpr(binaryExpr{
		tokenType:        lexer.TokenVerticalBarVerticalBar,
		leftBindingPower: exprLeftBindingPowerLogicalOr,
		operation:        ast.OperationOr,
	})

	defineExpr(binaryExpr{
		tokenType:        lexer.TokenAmpersandAmpersand,
		leftBindingPower: exprLeftBindingPowerLogicalAnd,
		operation:        ast.OperationAnd,
	})

	defineExpr(binaryExpr{
		tokenType:        lexer.TokenDoubleQuestionMark,
		leftBindingPower: exprLeftBindingPowerNullishCoalescing,
		operation:        ast.OperationNullishCoalesce,
	})

	for _, def := range []binaryExpr{
		{
			tokenType:        lexer.TokenLess,
			leftBindingPower: exprLeftBindingPowerRelational,
			operation:        ast.OperationLess,
		},
		{
			tokenType:        lexer.TokenEqualEqual,
			leftBindingPower: exprLeftBindingPowerEquality,
			operation:        ast.OperationEqual,
		},
		{
			tokenType:        lexer.TokenNotEqual,
			leftBindingPower: exprLeftBindingPowerEquality,
			operation:        ast.OperationNotEqual,
		},
		{
			tokenType:        lexer.TokenEqualEqualEqual,
			leftBindingPower: exprLeftBindingPowerEquality,
			operation:        ast.OperationStrictEqual,
		},
		{
			tokenType:        lexer.TokenNotEqualEqual,
			leftBindingPower: exprLeftBindingPowerEquality,
			operation:        ast.OperationStrictNotEqual,
		},
		{
			tokenType:        lexer.TokenGreater,
			leftBindingPower: exprLeftBindingPowerRelational,
			operation:        ast.OperationGreater,
		},
		{
			tokenType:        lexer.TokenLessEqual,
			leftBindingPower: exprLeftBindingPowerRelational,
			operation:        ast.OperationLessEqual,
		},
		{
			tokenType:        lexer.TokenGreaterEqual,
			leftBindingPower: exprLeftBindingPowerRelational,
			operation:        ast.OperationGreaterEqual,
		},
		{
			tokenType:        lexer.TokenPlus,
			leftBindingPower: exprLeftBindingPowerAdditive,
			operation:        ast.OperationPlus,
		},
		{
			tokenType:        lexer.TokenMinus,
			leftBindingPower: exprLeftBindingPowerAdditive,
			operation:        ast.OperationMinus,
		},
		{
			tokenType:        lexer.TokenStar,
			leftBindingPower: exprLeftBindingPowerMultiplicative,
			operation:        ast.OperationMul,
		},
		{
			tokenType:        lexer.TokenSlash,
			leftBindingPower: exprLeftBindingPowerMultiplicative,
			operation:        ast.OperationDiv,
		},
		{
			tokenType:        lexer.TokenPercent,
			leftBindingPower: exprLeftBindingPowerMultiplicative,
			operation:        ast.OperationMod,
		},
	} {
		defineExpr(def)
	}

	defineExpr(infixExpr{
		tokenType:        lexer.TokenEqual,
		leftBindingPower: exprLeftBindingPowerAssignment,
		rightAssociative: true,
		leftDenotation: func(left, right ast.Expression) ast.Expression {
			return ast.NewAssignmentExpression(left, right)
		},
	})

	defineExpr(unaryExpr{
		tokenType:    lexer.TokenMinus,
		bindingPower: exprLeftBindingPowerUnaryPrefix,
		operation:    ast.OperationMinus,
	})

	defineExpr(unaryExpr{
		tokenType:    lexer.TokenPlus,
		bindingPower: exprLeftBindingPowerUnaryPrefix,
		operation:    ast.OperationPlus,
	})

	defineExpr(unaryExpr{
		tokenType:    lexer.TokenExclamationMark,
		bindingPower: exprLeftBindingPowerUnaryPrefix,
		operation:    ast.OperationNegate,
	})

	defineNumberExpression()
	defineStringExpression()
	defineIdentifierExpression()
	defineParenthesizedExpression()
	defineArrayExpression()
	defineObjectExpression()
	defineConditionalExpression()
}

func defineNumberExpression() {
	defineExpr(literalExpr{
		tokenType: lexer.TokenNumber,
		nullDenotation: func(p *parser, token lexer.Token) ast.Expression {
			literal := string(p.tokenSource(token))
			value, err := parseNumberLiteral(literal)
			if err != nil {
				p.report(&InvalidNumberLiteralError{
					Literal: literal,
					Range:   token.Range,
				})
			}
			return ast.NewNumberExpression(literal, value, token.Range)
		},
	})
}

// parseNumberLiteral parses a decimal, hexadecimal, octal, or binary number literal.
// Numeric separators (`_`) are ignored.
func parseNumberLiteral(literal string) (float64, error) {
	literal = strings.ReplaceAll(literal, "_", "")

	if len(literal) > 2 && literal[0] == '0' {
		base := 0
		switch literal[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			value, err := strconv.ParseUint(literal[2:], base, 64)
			return float64(value), err
		}
	}

	return strconv.ParseFloat(literal, 64)
}

func defineStringExpression() {
	defineExpr(literalExpr{
		tokenType: lexer.TokenString,
		nullDenotation: func(p *parser, token lexer.Token) ast.Expression {
			literal := p.tokenSource(token)
			parsedString, errs := parseStringLiteral(literal)
			for _, err := range errs {
				p.report(NewSyntaxError(token.StartPos, "%s", err))
			}
			return ast.NewStringExpression(parsedString, token.Range)
		},
	})
}

func defineIdentifierExpression() {
	defineExpr(literalExpr{
		tokenType: lexer.TokenIdentifier,
		nullDenotation: func(p *parser, token lexer.Token) ast.Expression {
			switch string(p.tokenSource(token)) {
			case KeywordTrue:
				return ast.NewBoolExpression(true, token.Range)

			case KeywordFalse:
				return ast.NewBoolExpression(false, token.Range)

			case KeywordNull:
				return ast.NewNullExpression(token.StartPos)

			case KeywordTypeof:
				right := parseExpression(p, exprLeftBindingPowerUnaryPrefix)
				return ast.NewUnaryExpression(
					ast.OperationTypeof,
					right,
					token.StartPos,
				)

			default:
				identifier := p.tokenToIdentifier(token)
				if IsKeyword(identifier.Identifier) {
					panic(NewSyntaxError(
						token.StartPos,
						"unexpected keyword in expression: %s",
						identifier.Identifier,
					))
				}
				return ast.NewIdentifierExpression(identifier)
			}
		},
	})
}

func defineParenthesizedExpression() {
	setExprNullDenotation(
		lexer.TokenParenOpen,
		func(p *parser, startToken lexer.Token) ast.Expression {
			expression := parseExpression(p, lowestBindingPower)
			endToken := p.mustOne(lexer.TokenParenClose)
			return ast.NewParenthesizedExpression(
				expression,
				ast.NewRange(
					startToken.StartPos,
					endToken.EndPos,
				),
			)
		},
	)
}

func defineArrayExpression() {
	setExprNullDenotation(
		lexer.TokenBracketOpen,
		func(p *parser, startToken lexer.Token) ast.Expression {
			var values []ast.Expression
			for !p.current.Is(lexer.TokenBracketClose) {
				value := parseExpression(p, lowestBindingPower)
				values = append(values, value)
				if !p.current.Is(lexer.TokenComma) {
					break
				}
				p.mustOne(lexer.TokenComma)
			}
			endToken := p.mustOne(lexer.TokenBracketClose)
			return ast.NewArrayExpression(
				values,
				ast.NewRange(
					startToken.StartPos,
					endToken.EndPos,
				),
			)
		},
	)
}

func defineObjectExpression() {
	setExprNullDenotation(
		lexer.TokenBraceOpen,
		func(p *parser, startToken lexer.Token) ast.Expression {
			var properties []ast.ObjectProperty
			for !p.current.Is(lexer.TokenBraceClose) {
				properties = append(properties, parseObjectProperty(p))
				if !p.current.Is(lexer.TokenComma) {
					break
				}
				p.mustOne(lexer.TokenComma)
			}
			endToken := p.mustOne(lexer.TokenBraceClose)
			return ast.NewObjectExpression(
				properties,
				ast.NewRange(
					startToken.StartPos,
					endToken.EndPos,
				),
			)
		},
	)
}

// parseObjectProperty parses a property `key: value`,
// where the key is a name, a string, or a number.
// A name without a value is a shorthand property, e.g. `{ a }`.
func parseObjectProperty(p *parser) ast.ObjectProperty {
	token := p.current
	var key ast.Expression

	switch token.Type {
	case lexer.TokenIdentifier:
		p.next()
		key = ast.NewIdentifierExpression(p.tokenToIdentifier(token))

		if p.current.Is(lexer.TokenComma) || p.current.Is(lexer.TokenBraceClose) {
			return ast.ObjectProperty{
				Key:   key,
				Value: key,
			}
		}

	case lexer.TokenString, lexer.TokenNumber:
		p.next()
		key = applyExprNullDenotation(p, token)

	default:
		panic(NewSyntaxError(
			token.StartPos,
			"expected property name, got %s",
			token.Type,
		))
	}

	p.mustOne(lexer.TokenColon)

	value := parseExpression(p, lowestBindingPower)

	return ast.ObjectProperty{
		Key:   key,
		Value: value,
	}
}

func defineConditionalExpression() {
	setExprLeftBindingPower(lexer.TokenQuestionMark, exprLeftBindingPowerTernary)
	setExprLeftDenotation(
		lexer.TokenQuestionMark,
		func(p *parser, _ lexer.Token, left ast.Expression) ast.Expression {
			testExpression := left
			thenExpression := parseExpression(p, lowestBindingPower)
			p.mustOne(lexer.TokenColon)
			elseExpression := parseExpression(p, exprLeftBindingPowerTernary-1)
			return ast.NewConditionalExpression(
				testExpression,
				thenExpression,
				elseExpression,
			)
		},
	)
}

func (p *parser) tokenToIdentifier(token lexer.Token) ast.Identifier {
	return ast.NewIdentifier(
		string(p.tokenSource(token)),
		token.StartPos,
	)
}

// mustIdentifierName parses the name of a member.
// Unlike variable names, member names may be keywords.
func (p *parser) mustIdentifierName() ast.Identifier {
	token := p.mustOne(lexer.TokenIdentifier)
	return p.tokenToIdentifier(token)
}

// parseExpression uses the Pratt parsing algorithm to parse an expression.
//
// Postfix operators (member access, index access, invocation, and non-null assertion)
// bind tighter than all prefix and infix operators,
// and are parsed as a chain directly after the null denotation.
func parseExpression(p *parser, rightBindingPower int) ast.Expression {
	t := p.current
	p.next()

	left := applyExprNullDenotation(p, t)
	left = parsePostfixChain(p, left)

	for rightBindingPower < exprLeftBindingPowers[p.current.Type] {
		t = p.current
		p.next()

		left = applyExprLeftDenotation(p, t, left)
	}

	return left
}

func applyExprNullDenotation(p *parser, token lexer.Token) ast.Expression {
	tokenType := token.Type
	nullDenotation := exprNullDenotations[tokenType]
	if nullDenotation == nil {
		if tokenType == lexer.TokenEOF {
			panic(NewSyntaxError(token.StartPos, "unexpected end of input, expected expression"))
		}
		panic(NewSyntaxError(
			token.StartPos,
			"unexpected token in expression: %s",
			tokenType,
		))
	}
	return nullDenotation(p, token)
}

func applyExprLeftDenotation(p *parser, token lexer.Token, left ast.Expression) ast.Expression {
	leftDenotation := exprLeftDenotations[token.Type]
	if leftDenotation == nil {
		panic(errors.NewUnreachableError())
	}
	return leftDenotation(p, token, left)
}

// parsePostfixChain parses the accesses, invocations, and non-null assertions
// following the given expression.
//
// A chain which contains at least one optional link (`?.`)
// is wrapped in an optional chain expression when the chain ends.
// The chain ends at the first token which is not an access or an invocation,
// including a non-null assertion: in `a?.b!.c`, the assertion applies to
// the optional chain `a?.b`, and `.c` starts a new chain.
func parsePostfixChain(p *parser, expression ast.Expression) ast.Expression {
	optional := false

	endChain := func() {
		if optional {
			expression = ast.NewOptionalChainExpression(expression)
			optional = false
		}
	}

	for {
		switch p.current.Type {
		case lexer.TokenDot:
			accessPos := p.current.StartPos
			p.next()
			identifier := p.mustIdentifierName()
			expression = ast.NewMemberExpression(
				expression,
				false,
				accessPos,
				identifier,
			)

		case lexer.TokenQuestionMarkDot:
			optional = true
			accessPos := p.current.StartPos
			p.next()

			switch p.current.Type {
			case lexer.TokenBracketOpen:
				expression = parseIndexExpression(p, expression, true)

			case lexer.TokenParenOpen:
				expression = parseInvocationExpression(p, expression, true)

			default:
				identifier := p.mustIdentifierName()
				expression = ast.NewMemberExpression(
					expression,
					true,
					accessPos,
					identifier,
				)
			}

		case lexer.TokenBracketOpen:
			expression = parseIndexExpression(p, expression, false)

		case lexer.TokenParenOpen:
			expression = parseInvocationExpression(p, expression, false)

		case lexer.TokenExclamationMark:
			// A `!` on a new line starts a new statement
			if p.sawNewline {
				endChain()
				return expression
			}

			endChain()

			token := p.current
			if p.config.DisableNonNullAssertions {
				p.report(&NonNullAssertionNotAllowedError{
					Pos: token.StartPos,
				})
			}
			p.next()

			expression = ast.NewNonNullExpression(expression, token.EndPos)

		default:
			endChain()
			return expression
		}
	}
}

func parseIndexExpression(p *parser, target ast.Expression, optional bool) ast.Expression {
	p.mustOne(lexer.TokenBracketOpen)
	indexingExpression := parseExpression(p, lowestBindingPower)
	endToken := p.mustOne(lexer.TokenBracketClose)

	return ast.NewIndexExpression(
		target,
		indexingExpression,
		optional,
		ast.NewRange(
			target.StartPosition(),
			endToken.EndPos,
		),
	)
}

func parseInvocationExpression(p *parser, invoked ast.Expression, optional bool) ast.Expression {
	startToken := p.mustOne(lexer.TokenParenOpen)

	var arguments []ast.Expression
	for !p.current.Is(lexer.TokenParenClose) {
		argument := parseExpression(p, lowestBindingPower)
		arguments = append(arguments, argument)
		if !p.current.Is(lexer.TokenComma) {
			break
		}
		p.mustOne(lexer.TokenComma)
	}

	endToken := p.mustOne(lexer.TokenParenClose)

	return ast.NewInvocationExpression(
		invoked,
		arguments,
		optional,
		startToken.StartPos,
		endToken.EndPos,
	)
}

// parseStringLiteral parses a whole string literal, including start and end quotes
func parseStringLiteral(literal []byte) (result string, errs []error) {
	report := func(err error) {
		errs = append(errs, err)
	}

	length := len(literal)
	if length == 0 {
		report(errors.NewDefaultUserError("missing start of string literal"))
		return
	}

	quote := literal[0]
	if quote != '"' && quote != '\'' {
		report(errors.NewDefaultUserError(
			"invalid start of string literal: expected quote, got %q",
			quote,
		))
	}

	missingEnd := false
	endOffset := length
	if length >= 2 && literal[length-1] == quote && !endsWithEscape(literal[1:length-1]) {
		endOffset = length - 1
	} else {
		missingEnd = true
	}

	var innerErrs []error
	result, innerErrs = parseStringLiteralContent(literal[1:endOffset])
	errs = append(errs, innerErrs...)

	if missingEnd {
		report(errors.NewDefaultUserError(
			"invalid end of string literal: missing %q",
			quote,
		))
	}

	return
}

// endsWithEscape returns true if the given string content ends with an odd number of backslashes,
// i.e. if a following quote is escaped
func endsWithEscape(content []byte) bool {
	count := 0
	for i := len(content) - 1; i >= 0 && content[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}

// parseStringLiteralContent parses the string literal contents, excluding start and end quotes
func parseStringLiteralContent(s []byte) (result string, errs []error) {

	var builder strings.Builder
	defer func() {
		result = builder.String()
	}()

	report := func(err error) {
		errs = append(errs, err)
	}

	l := len(s)

	var r rune
	i := 0

	atEnd := i >= l

	advance := func() {
		if atEnd {
			r = lexer.EOF
			return
		}

		var w int
		r, w = utf8.DecodeRune(s[i:])
		i += w

		atEnd = i >= l
	}

	for i < l {
		advance()

		if r != '\\' {
			builder.WriteRune(r)
			continue
		}

		if atEnd {
			report(errors.NewDefaultUserError(
				"incomplete escape sequence: missing character after escape character",
			))
			return
		}

		advance()

		switch r {
		case '0':
			builder.WriteByte(0)
		case 'n':
			builder.WriteByte('\n')
		case 'r':
			builder.WriteByte('\r')
		case 't':
			builder.WriteByte('\t')
		case 'b':
			builder.WriteByte('\b')
		case 'f':
			builder.WriteByte('\f')
		case 'v':
			builder.WriteByte('\v')
		case '"', '\'', '\\':
			builder.WriteRune(r)
		case 'u':
			codePoint, end, ok := parseUnicodeEscape(s, i)
			i = end
			atEnd = i >= l
			if !ok {
				report(errors.NewDefaultUserError("invalid Unicode escape sequence"))
				continue
			}
			builder.WriteRune(codePoint)
		default:
			// Unknown escapes evaluate to the escaped character
			builder.WriteRune(r)
		}
	}

	return
}

// parseUnicodeEscape parses the code point of a Unicode escape sequence
// starting at the given offset, directly after the `u`.
// The code point is either braced (`\u{1F600}`) or four hex digits (`\u00E9`).
// It returns the offset after the sequence.
func parseUnicodeEscape(s []byte, offset int) (codePoint rune, end int, ok bool) {
	if offset < len(s) && s[offset] == '{' {
		end = offset + 1
		digits := 0
		for end < len(s) && s[end] != '}' {
			d := parseHex(rune(s[end]))
			if d < 0 || digits == 6 {
				return 0, end, false
			}
			codePoint = codePoint<<4 | d
			digits++
			end++
		}
		if end >= len(s) || digits == 0 {
			return 0, end, false
		}
		return codePoint, end + 1, true
	}

	for end = offset; end < offset+4; end++ {
		if end >= len(s) {
			return 0, end, false
		}
		d := parseHex(rune(s[end]))
		if d < 0 {
			return 0, end, false
		}
		codePoint = codePoint<<4 | d
	}
	return codePoint, end, true
}

func parseHex(r rune) rune {
	switch {
	case '0' <= r && r <= '9':
		return r - '0'
	case 'a' <= r && r <= 'f':
		return r - 'a' + 10
	case 'A' <= r && r <= 'F':
		return r - 'A' + 10
	}

	return -1
}
