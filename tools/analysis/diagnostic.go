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

package analysis

import (
	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/common"
	"github.com/ecmalint/ecmalint/pretty"
)

type Diagnostic struct {
	Location         common.Location
	Code             string
	Category         string
	Message          string
	SecondaryMessage string
	ast.Range
}

// PrettyDiagnostic converts the diagnostic into a printable warning
func (d Diagnostic) PrettyDiagnostic() pretty.Diagnostic {
	return pretty.Diagnostic{
		Location:         d.Location,
		Severity:         pretty.SeverityWarning,
		Code:             d.Code,
		Category:         d.Category,
		Message:          d.Message,
		SecondaryMessage: d.SecondaryMessage,
		Range:            d.Range,
	}
}
