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
	"encoding/json"
	"io"

	jsonpretty "github.com/tidwall/pretty"

	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/common"
)

type jsonPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonRange struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonDiagnostic struct {
	Location         string     `json:"location,omitempty"`
	Severity         Severity   `json:"severity"`
	Code             string     `json:"code,omitempty"`
	Category         string     `json:"category,omitempty"`
	Message          string     `json:"message"`
	SecondaryMessage string     `json:"secondaryMessage,omitempty"`
	Notes            []string   `json:"notes,omitempty"`
	Range            *jsonRange `json:"range,omitempty"`
}

func newJSONPosition(position ast.Position) jsonPosition {
	return jsonPosition{
		Offset: position.Offset,
		Line:   position.Line,
		Column: position.Column,
	}
}

func newJSONDiagnostic(diagnostic Diagnostic) jsonDiagnostic {
	result := jsonDiagnostic{
		Severity:         diagnostic.Severity,
		Code:             diagnostic.Code,
		Category:         diagnostic.Category,
		Message:          diagnostic.Message,
		SecondaryMessage: diagnostic.SecondaryMessage,
		Notes:            diagnostic.Notes,
	}

	if diagnostic.Location != nil {
		result.Location = diagnostic.Location.String()
	}

	if diagnostic.hasPosition() {
		result.Range = &jsonRange{
			Start: newJSONPosition(diagnostic.StartPos),
			End:   newJSONPosition(diagnostic.EndPos),
		}
	}

	return result
}

// JSONPrinter writes diagnostics as a JSON array.
type JSONPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewJSONPrinter(writer io.Writer, useColor bool) JSONPrinter {
	return JSONPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p JSONPrinter) PrintDiagnostics(diagnostics []Diagnostic, _ map[common.Location][]byte) error {
	results := make([]jsonDiagnostic, 0, len(diagnostics))
	for _, diagnostic := range diagnostics {
		results = append(results, newJSONDiagnostic(diagnostic))
	}

	data, err := json.Marshal(results)
	if err != nil {
		return err
	}

	data = jsonpretty.Pretty(data)
	if p.useColor {
		data = jsonpretty.Color(data, jsonpretty.TerminalStyle)
	}

	_, err = p.writer.Write(data)
	return err
}
