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

type Programs map[common.Location]*Program

func (programs Programs) Load(config *Config, location common.Location) error {
	if programs[location] != nil {
		return nil
	}

	var loadError error
	wrapError := func(err error) ParsingCheckingError {
		return ParsingCheckingError{
			error:    err,
			location: location,
		}
	}

	code, err := config.ResolveCode(location)
	if err != nil {
		return err
	}

	program, err := parser.ParseProgram(code, config.parserConfig(location))
	if err != nil {
		wrappedErr := wrapError(err)
		loadError = wrappedErr

		// If a parser error handler is set, and the error is non-fatal,
		// use the handler to handle the error (e.g. to report it and continue analysis)
		if config.HandleParserError != nil && program != nil {
			err = config.HandleParserError(wrappedErr)
			if err != nil {
				return err
			}
		} else {
			return wrappedErr
		}
	}

	programs[location] = &Program{
		Location:  location,
		Code:      code,
		Program:   program,
		loadError: loadError,
	}

	return nil
}

// Load loads the programs at the given locations.
func Load(config *Config, locations ...common.Location) (Programs, error) {
	programs := make(Programs, len(locations))
	for _, location := range locations {
		err := programs.Load(config, location)
		if err != nil {
			return nil, err
		}
	}

	return programs, nil
}
