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
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/turbolent/prettier"
)

// QuoteString returns a double-quoted string literal for the given value,
// escaping special characters.
func QuoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for len(s) > 0 {
		r, width := utf8.DecodeRuneInString(s)
		s = s[width:]
		switch r {
		case '\x00':
			b.WriteString(`\0`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if unicode.IsPrint(r) {
				b.WriteRune(r)
			} else {
				_, _ = fmt.Fprintf(&b, `\u{%X}`, r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

const prettierMaxLineWidth = 80

const prettierIndent = "    "

// Prettier renders the document of the given element with the default line width.
func Prettier(element interface{ Doc() prettier.Doc }) string {
	var builder strings.Builder
	prettier.Prettier(&builder, element.Doc(), prettierMaxLineWidth, prettierIndent)
	return builder.String()
}
