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
	"fmt"
	"io"

	"github.com/ecmalint/ecmalint/common"
)

// Format is an output format for diagnostics.
type Format string

const (
	FormatPretty  Format = "pretty"
	FormatJSON    Format = "json"
	FormatCompact Format = "compact"
)

var Formats = []Format{
	FormatPretty,
	FormatJSON,
	FormatCompact,
}

func ParseFormat(name string) (Format, error) {
	for _, format := range Formats {
		if string(format) == name {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, expected one of %v", name, Formats)
}

// Printer prints diagnostics.
// The codes of the diagnostics' locations are used for code excerpts.
type Printer interface {
	PrintDiagnostics(diagnostics []Diagnostic, codes map[common.Location][]byte) error
}

var _ Printer = ErrorPrettyPrinter{}
var _ Printer = JSONPrinter{}
var _ Printer = CompactPrinter{}

func (p ErrorPrettyPrinter) PrintDiagnostics(diagnostics []Diagnostic, codes map[common.Location][]byte) error {
	return p.PrettyPrintDiagnostics(diagnostics, codes)
}

// NewPrinter returns a printer for the given format.
func NewPrinter(format Format, writer io.Writer, useColor bool) (Printer, error) {
	switch format {
	case FormatPretty, "":
		return NewErrorPrettyPrinter(writer, useColor), nil
	case FormatJSON:
		return NewJSONPrinter(writer, useColor), nil
	case FormatCompact:
		return NewCompactPrinter(writer), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
