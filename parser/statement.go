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
	"github.com/ecmalint/ecmalint/parser/lexer"
)

func parseStatements(p *parser, endTokenType lexer.TokenType) (statements []ast.Statement) {
	for {
		switch p.current.Type {
		case lexer.TokenSemicolon:
			p.next()
			continue

		case endTokenType, lexer.TokenEOF:
			return

		default:
			statement := parseStatement(p)
			if statement == nil {
				return
			}

			statements = append(statements, statement)
		}
	}
}

func parseStatement(p *parser) ast.Statement {
	switch p.current.Type {
	case lexer.TokenIdentifier:
		switch string(p.tokenSource(p.current)) {
		case KeywordReturn:
			return parseReturnStatement(p)
		case KeywordIf:
			return parseIfStatement(p)
		case KeywordFunction:
			return parseFunctionDeclaration(p)
		case KeywordLet:
			return parseVariableDeclaration(p, ast.VariableKindLet)
		case KeywordConst:
			return parseVariableDeclaration(p, ast.VariableKindConst)
		case KeywordVar:
			return parseVariableDeclaration(p, ast.VariableKindVar)
		}

	case lexer.TokenBraceOpen:
		return parseBlock(p)
	}

	expression := parseExpression(p, lowestBindingPower)
	p.endStatement()

	return ast.NewExpressionStatement(expression)
}

func parseReturnStatement(p *parser) *ast.ReturnStatement {
	tokenRange := p.current.Range
	endPosition := tokenRange.EndPos
	p.next()

	var expression ast.Expression
	if !p.atStatementEnd() {
		expression = parseExpression(p, lowestBindingPower)
		endPosition = expression.EndPosition()
	}

	p.endStatement()

	return ast.NewReturnStatement(
		expression,
		ast.NewRange(
			tokenRange.StartPos,
			endPosition,
		),
	)
}

func parseIfStatement(p *parser) *ast.IfStatement {
	startPos := p.current.StartPos
	p.next()

	p.mustOne(lexer.TokenParenOpen)
	test := parseExpression(p, lowestBindingPower)
	p.mustOne(lexer.TokenParenClose)

	thenStatement := parseStatement(p)

	var elseStatement ast.Statement
	if p.isKeyword(KeywordElse) {
		p.next()
		elseStatement = parseStatement(p)
	}

	return ast.NewIfStatement(
		test,
		thenStatement,
		elseStatement,
		startPos,
	)
}

func parseBlock(p *parser) *ast.Block {
	startToken := p.mustOne(lexer.TokenBraceOpen)
	statements := parseStatements(p, lexer.TokenBraceClose)
	endToken := p.mustOne(lexer.TokenBraceClose)

	return ast.NewBlock(
		statements,
		ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	)
}

// parseVariableName parses the name of a declared variable, function, or parameter.
// Keywords are not allowed.
func parseVariableName(p *parser) ast.Identifier {
	token := p.mustOne(lexer.TokenIdentifier)
	identifier := p.tokenToIdentifier(token)
	if IsKeyword(identifier.Identifier) {
		p.report(NewSyntaxError(
			token.StartPos,
			"expected identifier, got keyword %s",
			identifier.Identifier,
		))
	}
	return identifier
}

func parseVariableDeclaration(p *parser, kind ast.VariableKind) *ast.VariableDeclaration {
	startPos := p.current.StartPos
	p.next()

	identifier := parseVariableName(p)

	var value ast.Expression
	if p.current.Is(lexer.TokenEqual) {
		p.next()
		value = parseExpression(p, lowestBindingPower)
	} else if kind == ast.VariableKindConst {
		p.report(NewSyntaxError(
			p.current.StartPos,
			"missing initializer in const declaration",
		))
	}

	p.endStatement()

	return ast.NewVariableDeclaration(
		kind,
		identifier,
		value,
		startPos,
	)
}

func parseFunctionDeclaration(p *parser) *ast.FunctionDeclaration {
	startPos := p.current.StartPos
	p.next()

	identifier := parseVariableName(p)

	p.mustOne(lexer.TokenParenOpen)

	var parameters []ast.Identifier
	for !p.current.Is(lexer.TokenParenClose) {
		parameters = append(parameters, parseVariableName(p))
		if !p.current.Is(lexer.TokenComma) {
			break
		}
		p.mustOne(lexer.TokenComma)
	}

	p.mustOne(lexer.TokenParenClose)

	body := parseBlock(p)

	return ast.NewFunctionDeclaration(
		identifier,
		parameters,
		body,
		startPos,
	)
}
