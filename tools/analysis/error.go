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
	"github.com/ecmalint/ecmalint/errors"
)

// ParsingCheckingError wraps an error which occurred while loading the program at a location
type ParsingCheckingError struct {
	error
	location common.Location
}

var _ errors.ParentError = ParsingCheckingError{}

func (e ParsingCheckingError) ChildErrors() []error {
	return []error{e.error}
}

func (e ParsingCheckingError) Unwrap() error {
	return e.error
}

func (e ParsingCheckingError) Location() common.Location {
	return e.location
}
