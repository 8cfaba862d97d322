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

package ast

import (
	"fmt"
)

// Position defines a row/column within a piece of source code.
type Position struct {
	// offset, starting at 0
	Offset int
	// line number, starting at 1
	Line int
	// column number, starting at 0 (UTF-8 character count)
	Column int
}

// Shifted returns a new position with the given length added to the column and offset.
// The line is unchanged. Only valid for single-line ASCII text, e.g. identifiers and keywords.
func (position Position) Shifted(length int) Position {
	return Position{
		Line:   position.Line,
		Column: position.Column + length,
		Offset: position.Offset + length,
	}
}

func (position Position) String() string {
	return fmt.Sprintf(
		"%d(%d:%d)",
		position.Offset,
		position.Line,
		position.Column,
	)
}

// Compare orders positions by offset.
func (position Position) Compare(other Position) int {
	switch {
	case position.Offset < other.Offset:
		return -1
	case position.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

func EndPosition(startPosition Position, end int) Position {
	length := end - startPosition.Offset
	return startPosition.Shifted(length)
}

// HasPosition

type HasPosition interface {
	StartPosition() Position
	EndPosition() Position
}

// Range is an inclusive span of source code: EndPos is the position of the last byte.
type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

func NewRange(startPos, endPos Position) Range {
	return Range{
		StartPos: startPos,
		EndPos:   endPos,
	}
}

func NewRangeFromPositioned(hasPosition HasPosition) Range {
	return Range{
		StartPos: hasPosition.StartPosition(),
		EndPos:   hasPosition.EndPosition(),
	}
}

func (e Range) StartPosition() Position {
	return e.StartPos
}

func (e Range) EndPosition() Position {
	return e.EndPos
}

// Source returns the source code covered by the range.
// Ranges reaching outside of the input are clamped.
func (e Range) Source(input []byte) []byte {
	start := e.StartPos.Offset
	end := e.EndPos.Offset + 1
	if start < 0 {
		start = 0
	}
	if end > len(input) {
		end = len(input)
	}
	if start >= end {
		return nil
	}
	return input[start:end]
}

// Contains returns true if the given position lies within the range.
func (e Range) Contains(position Position) bool {
	return e.StartPos.Offset <= position.Offset &&
		position.Offset <= e.EndPos.Offset
}
