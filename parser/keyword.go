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

import "github.com/SaveTheRbtz/mph"

// NOTE: ensure to update allKeywords when adding a new keyword
const (
	KeywordIf       = "if"
	KeywordElse     = "else"
	KeywordReturn   = "return"
	KeywordTrue     = "true"
	KeywordFalse    = "false"
	KeywordNull     = "null"
	KeywordLet      = "let"
	KeywordConst    = "const"
	KeywordVar      = "var"
	KeywordFunction = "function"
	KeywordTypeof   = "typeof"
	// NOTE: ensure to update allKeywords when adding a new keyword
)

var allKeywords = []string{
	KeywordIf,
	KeywordElse,
	KeywordReturn,
	KeywordTrue,
	KeywordFalse,
	KeywordNull,
	KeywordLet,
	KeywordConst,
	KeywordVar,
	KeywordFunction,
	KeywordTypeof,
}

// Keywords that aren't allowed in identifier position.
// Member names may still be keywords, e.g. `a.if`.
var keywordsTable = mph.Build(allKeywords)

func IsKeyword(identifier string) bool {
	_, ok := keywordsTable.Lookup(identifier)
	return ok
}
