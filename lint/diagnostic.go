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

package lint

import (
	"sort"
	"strings"
	"sync"

	"github.com/ecmalint/ecmalint/ast"
	"github.com/ecmalint/ecmalint/common"
	"github.com/ecmalint/ecmalint/pretty"
)

// Diagnostic is a finding of a rule in a module.
// It is never mutated once recorded
type Diagnostic struct {
	Location common.Location
	Code     string
	Message  string
	ast.Range
}

func (d Diagnostic) PrettyDiagnostic() pretty.Diagnostic {
	return pretty.Diagnostic{
		Location: d.Location,
		Severity: pretty.SeverityWarning,
		Code:     d.Code,
		Message:  d.Message,
		Range:    d.Range,
	}
}

// Bag collects diagnostics. It is safe for concurrent use
type Bag struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

func (b *Bag) Add(diagnostic Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.diagnostics = append(b.diagnostics, diagnostic)
}

func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.diagnostics)
}

// Sort orders the diagnostics by location, start offset, and code
func (b *Bag) Sort() {
	b.mu.Lock()
	defer b.mu.Unlock()

	sort.SliceStable(b.diagnostics, func(i, j int) bool {
		return compareDiagnostics(b.diagnostics[i], b.diagnostics[j]) < 0
	})
}

// Diagnostics returns a copy of the collected diagnostics
func (b *Bag) Diagnostics() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.diagnostics) == 0 {
		return nil
	}

	diagnostics := make([]Diagnostic, len(b.diagnostics))
	copy(diagnostics, b.diagnostics)
	return diagnostics
}

func compareDiagnostics(a, b Diagnostic) int {
	if c := strings.Compare(locationString(a.Location), locationString(b.Location)); c != 0 {
		return c
	}
	if c := a.StartPos.Offset - b.StartPos.Offset; c != 0 {
		return c
	}
	return strings.Compare(a.Code, b.Code)
}

func locationString(location common.Location) string {
	if location == nil {
		return ""
	}
	return location.String()
}
