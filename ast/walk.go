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

// Walker is implemented by types that can be used with Walk.
// Its Walk method is invoked for each element encountered by Walk.
// If the result is non-nil, Walk visits each of the children of the element
// with the returned walker, followed by a call of Walk(nil).
type Walker interface {
	Walk(element Element) Walker
}

// Walk traverses an AST in depth-first order:
// It starts by calling walker.Walk(element);
// If the returned walker is non-nil,
// Walk is invoked recursively with the returned walker
// for each of the non-nil children of the element,
// followed by a call of Walk(nil) on the returned walker.
func Walk(walker Walker, element Element) {
	if walker = walker.Walk(element); walker == nil {
		return
	}

	element.Walk(func(child Element) {
		Walk(walker, child)
	})

	walker.Walk(nil)
}

type inspector func(Element) bool

func (f inspector) Walk(element Element) Walker {
	if f(element) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order:
// It starts by calling f(element); element must not be nil.
// If f returns true, Inspect invokes f recursively for each of the non-nil children of the element,
// followed by a call of f(nil).
func Inspect(element Element, f func(Element) bool) {
	Walk(inspector(f), element)
}

// walkExpressions calls walkChild for each non-nil expression.
func walkExpressions(walkChild func(Element), expressions []Expression) {
	for _, expression := range expressions {
		if expression == nil {
			continue
		}
		walkChild(expression)
	}
}

// walkStatements calls walkChild for each non-nil statement.
func walkStatements(walkChild func(Element), statements []Statement) {
	for _, statement := range statements {
		if statement == nil {
			continue
		}
		walkChild(statement)
	}
}
