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

package pretty

import (
	goerrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/common"
	"github.com/ecmalint/ecmalint/errors"
)

const excerptArrow = " --> "
const excerptGutter = " | "
const excerptNote = " = note: "

func colorizeSeverity(severity Severity, str string) string {
	switch severity {
	case SeverityError:
		return aurora.Colorize(str, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
	case SeverityWarning:
		return aurora.Colorize(str, aurora.YellowFg|aurora.BrightFg|aurora.BoldFm).String()
	}
	return str
}

func colorizeMeta(str string) string {
	return aurora.Colorize(str, aurora.BlueFg|aurora.BrightFg|aurora.BoldFm).String()
}

func colorizeMessage(str string) string {
	return aurora.Colorize(str, aurora.BoldFm).String()
}

// ErrorDiagnostics flattens the given error into diagnostics with error severity.
//
// Parent errors, e.g. parser errors, result in one diagnostic per child error.
// Positioned errors are located at the given location.
func ErrorDiagnostics(err error, location common.Location) []Diagnostic {
	var parentError errors.ParentError
	if goerrors.As(err, &parentError) {
		var diagnostics []Diagnostic
		for _, childError := range parentError.ChildErrors() {
			diagnostics = append(diagnostics, ErrorDiagnostics(childError, location)...)
		}
		return diagnostics
	}

	diagnostic := Diagnostic{
		Location: location,
		Severity: SeverityError,
		Message:  err.Error(),
	}

	if hasPosition, ok := err.(ast.HasPosition); ok {
		diagnostic.Range = ast.NewRangeFromPositioned(hasPosition)
	}

	if secondaryError, ok := err.(errors.SecondaryError); ok {
		diagnostic.SecondaryMessage = secondaryError.SecondaryError()
	}

	if errorNotes, ok := err.(errors.ErrorNotes); ok {
		for _, note := range errorNotes.ErrorNotes() {
			diagnostic.Notes = append(diagnostic.Notes, note.Message())
		}
	}

	return []Diagnostic{diagnostic}
}

// ErrorPrettyPrinter prints errors and diagnostics in a human-readable way,
// with an excerpt of the code they refer to.
type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) PrettyPrintError(
	err error,
	location common.Location,
	codes map[common.Location][]byte,
) error {
	return p.PrettyPrintDiagnostics(
		ErrorDiagnostics(err, location),
		codes,
	)
}

func (p ErrorPrettyPrinter) PrettyPrintDiagnostics(
	diagnostics []Diagnostic,
	codes map[common.Location][]byte,
) error {
	w := &excerptWriter{
		writer:   p.writer,
		useColor: p.useColor,
	}

	for i, diagnostic := range diagnostics {
		if i > 0 {
			w.writeString("\n")
		}
		w.writeDiagnostic(diagnostic, codes[diagnostic.Location])
		if w.err != nil {
			return w.err
		}
	}

	return nil
}

// excerptWriter writes diagnostics and remembers the first write error.
type excerptWriter struct {
	writer   io.Writer
	useColor bool
	err      error
}

func (w *excerptWriter) writeString(str string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.writer, str)
}

func (w *excerptWriter) severity(severity Severity, str string) string {
	if !w.useColor {
		return str
	}
	return colorizeSeverity(severity, str)
}

func (w *excerptWriter) meta(str string) string {
	if !w.useColor {
		return str
	}
	return colorizeMeta(str)
}

func (w *excerptWriter) message(str string) string {
	if !w.useColor {
		return str
	}
	return colorizeMessage(str)
}

func (w *excerptWriter) writeDiagnostic(diagnostic Diagnostic, code []byte) {
	header := diagnostic.Severity.String()
	if diagnostic.Code != "" {
		header = fmt.Sprintf("%s[%s]", header, diagnostic.Code)
	}

	w.writeString(w.severity(diagnostic.Severity, header+":"))
	w.writeString(" ")
	w.writeString(w.message(diagnostic.Message))
	w.writeString("\n")

	if diagnostic.hasPosition() {
		w.writeExcerpt(diagnostic, code)
	}

	for _, note := range diagnostic.Notes {
		w.writeString(w.meta(excerptNote))
		w.writeString(note)
		w.writeString("\n")
	}
}

func (w *excerptWriter) writeExcerpt(diagnostic Diagnostic, code []byte) {
	startPos := diagnostic.StartPos
	endPos := diagnostic.EndPos

	w.writeString(w.meta(excerptArrow))
	if diagnostic.Location != nil {
		w.writeString(diagnostic.Location.String())
		w.writeString(":")
	}
	w.writeString(fmt.Sprintf("%d:%d\n", startPos.Line, startPos.Column))

	lines := strings.Split(string(code), "\n")
	if startPos.Line > len(lines) {
		return
	}

	line := strings.TrimSuffix(lines[startPos.Line-1], "\r")

	lineNumber := strconv.Itoa(startPos.Line)
	gutter := strings.Repeat(" ", len(lineNumber))

	endColumn := endPos.Column
	if endPos.Line != startPos.Line {
		endColumn = -1
	}

	indicator := w.severity(
		diagnostic.Severity,
		caretIndicator(line, startPos.Column, endColumn),
	)

	w.writeString(w.meta(gutter + " |"))
	w.writeString("\n")
	w.writeString(w.meta(lineNumber + excerptGutter))
	w.writeString(line)
	w.writeString("\n")
	w.writeString(w.meta(gutter + excerptGutter))
	w.writeString(indentation(line, startPos.Column))
	w.writeString(indicator)
	if diagnostic.SecondaryMessage != "" {
		w.writeString(" ")
		w.writeString(w.severity(diagnostic.Severity, diagnostic.SecondaryMessage))
	}
	w.writeString("\n")
}

// indentation returns the whitespace which aligns a caret indicator with the given column.
// Tabs are preserved, all other graphemes are replaced with spaces of the same display width.
func indentation(line string, column int) string {
	var b strings.Builder

	current := 0
	graphemes := uniseg.NewGraphemes(line)
	for current < column && graphemes.Next() {
		cluster := graphemes.Str()
		if cluster == "\t" {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", uniseg.StringWidth(cluster)))
		}
		current += len(graphemes.Runes())
	}

	// Columns past the end of the line, e.g. the end of the input
	if current < column {
		b.WriteString(strings.Repeat(" ", column-current))
	}

	return b.String()
}

// caretIndicator returns the carets underlining the given columns of the line.
// An end column of -1 underlines until the end of the line.
// At least one caret is returned.
func caretIndicator(line string, startColumn, endColumn int) string {
	width := 0

	current := 0
	graphemes := uniseg.NewGraphemes(line)
	for graphemes.Next() {
		runeCount := len(graphemes.Runes())
		if current >= startColumn && (endColumn < 0 || current <= endColumn) {
			width += max(uniseg.StringWidth(graphemes.Str()), 1)
		}
		current += runeCount
	}

	return strings.Repeat("^", max(width, 1))
}
