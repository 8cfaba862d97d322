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

// This file's code is heavily inspired by Go tools' go/ast/inspector/inspector.go

// Inspector traverses an AST element once, up front,
// and records the traversal as a list of push and pop events.
//
// Later traversals replay the event list instead of walking the tree again,
// and filter elements by type using a bit mask.
// Construction costs one full walk, so an Inspector pays off
// when the same tree is traversed several times,
// e.g. once per lint rule.
type Inspector struct {
	events []event
}

// NewInspector returns an Inspector for the specified AST element.
func NewInspector(element Element) *Inspector {
	return &Inspector{traverse(element)}
}

// An event represents a push or a pop
// of an Element during a traversal.
type event struct {
	element Element
	typ     uint64 // 1 << element.ElementType()
	index   int    // 1 + index of corresponding pop event, or 0 if this is a pop
}

// Preorder visits all elements in depth-first order.
// It calls f(e) for each element e before it visits e's children.
//
// If types is non-nil, f is only called for elements
// whose element type matches the element type of one of the given elements.
func (in *Inspector) Preorder(types []Element, f func(Element)) {
	mask := maskOf(types)
	for _, ev := range in.events {
		if ev.typ&mask != 0 && ev.index > 0 {
			f(ev.element)
		}
	}
}

// traverse builds the table of events representing a traversal.
func traverse(element Element) []event {

	// every element produces a push and a pop event
	events := make([]event, 0, 64)

	var stack []event

	Inspect(element, func(element Element) bool {
		if element != nil {
			// push
			ev := event{
				element: element,
				typ:     1 << element.ElementType(),
				index:   len(events), // push event temporarily holds own index
			}
			stack = append(stack, ev)
			events = append(events, ev)
		} else {
			// pop
			ev := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			events[ev.index].index = len(events) + 1 // make push refer to pop

			ev.index = 0 // turn ev into a pop event
			events = append(events, ev)
		}
		return true
	})

	return events
}

func maskOf(elements []Element) uint64 {
	if elements == nil {
		return 1<<64 - 1 // match all element types
	}
	var mask uint64
	for _, element := range elements {
		mask |= 1 << element.ElementType()
	}
	return mask
}

// ElementsOfTypes returns a filter element list matching the given element types,
// for use with Preorder.
func ElementsOfTypes(elementTypes ...ElementType) []Element {
	elements := make([]Element, 0, len(elementTypes))
	for _, elementType := range elementTypes {
		elements = append(elements, elementTypeFilter(elementType))
	}
	return elements
}

// elementTypeFilter is a placeholder element that only carries an element type.
type elementTypeFilter ElementType

func (f elementTypeFilter) ElementType() ElementType {
	return ElementType(f)
}

func (elementTypeFilter) Walk(_ func(Element)) {
	// NO-OP
}

func (elementTypeFilter) StartPosition() Position {
	return Position{}
}

func (elementTypeFilter) EndPosition() Position {
	return Position{}
}
