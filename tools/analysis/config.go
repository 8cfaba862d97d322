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
	"github.com/ecmalint/ecmalint/common"
	"github.com/ecmalint/ecmalint/parser"
)

// A Config specifies details about how programs should be loaded.
// Calls to Load do not modify this struct.
type Config struct {
	// ResolveCode is called to resolve a location to its source code.
	ResolveCode func(location common.Location) ([]byte, error)

	// ParserConfig returns the parser configuration for the given location.
	// If nil, the zero configuration is used.
	ParserConfig func(location common.Location) parser.Config

	// HandleParserError is called when a program fails to parse.
	// If it returns nil, the partially parsed program is kept and loading continues.
	// If nil, parser errors abort loading.
	HandleParserError func(err ParsingCheckingError) error
}

func (config *Config) parserConfig(location common.Location) parser.Config {
	if config.ParserConfig == nil {
		return parser.Config{}
	}
	return config.ParserConfig(location)
}
