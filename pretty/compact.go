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

// CompactPrinter writes one line per diagnostic,
// in the form `location:line:column: severity[code]: message`.
type CompactPrinter struct {
	writer io.Writer
}

func NewCompactPrinter(writer io.Writer) CompactPrinter {
	return CompactPrinter{
		writer: writer,
	}
}

func (p CompactPrinter) PrintDiagnostics(diagnostics []Diagnostic, _ map[common.Location][]byte) error {
	for _, diagnostic := range diagnostics {
		var location string
		if diagnostic.Location != nil {
			location = diagnostic.Location.String()
		}

		if diagnostic.hasPosition() {
			location = fmt.Sprintf(
				"%s:%d:%d",
				location,
				diagnostic.StartPos.Line,
				diagnostic.StartPos.Column,
			)
		}

		header := diagnostic.Severity.String()
		if diagnostic.Code != "" {
			header = fmt.Sprintf("%s[%s]", header, diagnostic.Code)
		}

		if location != "" {
			header = location + ": " + header
		}

		_, err := fmt.Fprintf(p.writer, "%s: %s\n", header, diagnostic.Message)
		if err != nil {
			return err
		}
	}

	return nil
}
