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

// Package ast contains the syntax tree of ECMAScript / TypeScript sources.
// All AST nodes implement the Element interface,
// so have position information
// and can be traversed using Walk, Inspect, or an Inspector.
// Elements also implement the json.Marshaler interface
// so can be serialized to a standardized/stable JSON format.
package ast
