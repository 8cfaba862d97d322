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

package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Location describes the origin of source code.
type Location interface {
	fmt.Stringer
	// ID returns the canonical ID for this location
	ID() LocationID
}

// LocationID
//
type LocationID string

func NewLocationID(parts ...string) LocationID {
	return LocationID(strings.Join(parts, "."))
}

// LocationsMatch returns true if both locations are nil
// or their IDs are the same.
func LocationsMatch(first, second Location) bool {
	if first == nil && second == nil {
		return true
	}

	if first == nil || second == nil {
		return false
	}

	return first.ID() == second.ID()
}

// LocationsInSameModule returns true if the two locations refer to the same source module.
// Locations are compared by their string form, which is the module path for file locations.
func LocationsInSameModule(first, second Location) bool {
	if first == nil || second == nil {
		return first == second
	}

	return first.String() == second.String()
}

const StringLocationPrefix = "S"

// StringLocation
//
type StringLocation string

var _ Location = StringLocation("")

func (l StringLocation) ID() LocationID {
	return NewLocationID(
		StringLocationPrefix,
		string(l),
	)
}

func (l StringLocation) String() string {
	return string(l)
}

func (l StringLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type   string
		String string
	}{
		Type:   "StringLocation",
		String: string(l),
	})
}

const FileLocationPrefix = "F"

// FileLocation is the location of a source file on disk, identified by its path.
type FileLocation string

var _ Location = FileLocation("")

func (l FileLocation) ID() LocationID {
	return NewLocationID(
		FileLocationPrefix,
		string(l),
	)
}

func (l FileLocation) String() string {
	return string(l)
}

func (l FileLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type string
		Path string
	}{
		Type: "FileLocation",
		Path: string(l),
	})
}
