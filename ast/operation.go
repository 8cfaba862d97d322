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
	"encoding/json"

	"github.com/ecmalint/ecmalint/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Operation

type Operation uint

const (
	OperationUnknown Operation = iota
	OperationOr
	OperationAnd
	OperationNullishCoalesce
	OperationEqual
	OperationNotEqual
	OperationStrictEqual
	OperationStrictNotEqual
	OperationLess
	OperationGreater
	OperationLessEqual
	OperationGreaterEqual
	OperationPlus
	OperationMinus
	OperationMul
	OperationDiv
	OperationMod
	OperationNegate
	OperationTypeof
)

func OperationCount() int {
	return len(_Operation_index) - 1
}

func (s Operation) Symbol() string {
	switch s {
	case OperationOr:
		return "||"
	case OperationAnd:
		return "&&"
	case OperationNullishCoalesce:
		return "??"
	case OperationEqual:
		return "=="
	case OperationNotEqual:
		return "!="
	case OperationStrictEqual:
		return "==="
	case OperationStrictNotEqual:
		return "!=="
	case OperationLess:
		return "<"
	case OperationGreater:
		return ">"
	case OperationLessEqual:
		return "<="
	case OperationGreaterEqual:
		return ">="
	case OperationPlus:
		return "+"
	case OperationMinus:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationMod:
		return "%"
	case OperationNegate:
		return "!"
	case OperationTypeof:
		return "typeof"
	}

	panic(errors.NewUnreachableError())
}

func (s Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
