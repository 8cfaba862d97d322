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

package errors

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"
)

// Kind classifies an error by who has to act on it
type Kind uint8

const (
	// KindOther is an environmental failure, e.g. a file which cannot be read
	KindOther Kind = iota
	// KindUser is a problem with the user's input: linted sources, flags or configuration
	KindUser
	// KindInternal is a bug in the linter itself
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindInternal:
		return "internal"
	}
	return "other"
}

// InternalError marks errors caused by a bug in the linter, never by its input.
// Internal errors are propagated to the top-level and reported as such
type InternalError interface {
	error
	IsInternalError()
}

// UserError marks errors caused by the input,
// e.g. a syntax error in a linted file or an unknown rule in the configuration
type UserError interface {
	error
	IsUserError()
}

// SecondaryError is implemented by errors which provide a hint in addition to their message
type SecondaryError interface {
	SecondaryError() string
}

// ErrorNotes is implemented by errors which provide additional notes
type ErrorNotes interface {
	ErrorNotes() []ErrorNote
}

type ErrorNote interface {
	Message() string
}

// ParentError groups several errors, e.g. all syntax errors of a file
type ParentError interface {
	error
	ChildErrors() []error
}

// UnreachableError is raised when a code path which was assumed unreachable was reached
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{
		Stack: debug.Stack(),
	}
}

func (UnreachableError) IsInternalError() {}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

// UnexpectedError is an internal error with a cause,
// e.g. a panic recovered while running a rule
type UnexpectedError struct {
	Err error
}

var _ InternalError = UnexpectedError{}

func NewUnexpectedError(format string, args ...any) UnexpectedError {
	return NewUnexpectedErrorFromCause(fmt.Errorf(format, args...))
}

func NewUnexpectedErrorFromCause(cause error) UnexpectedError {
	return UnexpectedError{
		Err: cause,
	}
}

func (UnexpectedError) IsInternalError() {}

func (e UnexpectedError) Error() string {
	return e.Err.Error()
}

func (e UnexpectedError) Unwrap() error {
	return e.Err
}

// DefaultUserError is a user error with a formatted message.
// Errors wrapped with %w stay reachable through Unwrap
type DefaultUserError struct {
	Err error
}

var _ UserError = DefaultUserError{}

func NewDefaultUserError(format string, args ...any) DefaultUserError {
	return DefaultUserError{
		Err: fmt.Errorf(format, args...),
	}
}

func (DefaultUserError) IsUserError() {}

func (e DefaultUserError) Error() string {
	return e.Err.Error()
}

func (e DefaultUserError) Unwrap() error {
	return e.Err
}

// KindOf classifies the given error by walking its wrapped and child errors.
// An internal error anywhere in the tree makes the whole error internal,
// otherwise a user error makes it a user error
func KindOf(err error) Kind {
	if err == nil {
		return KindOther
	}

	if _, ok := err.(InternalError); ok {
		return KindInternal
	}

	kind := KindOther
	if _, ok := err.(UserError); ok {
		kind = KindUser
	}

	var causes []error
	switch err := err.(type) {
	case ParentError:
		causes = err.ChildErrors()
	case interface{ Unwrap() []error }:
		causes = err.Unwrap()
	case xerrors.Wrapper:
		causes = []error{err.Unwrap()}
	}

	for _, cause := range causes {
		switch KindOf(cause) {
		case KindInternal:
			return KindInternal
		case KindUser:
			kind = KindUser
		}
	}

	return kind
}

// IsInternalError returns true if the error was caused by a bug in the linter
func IsInternalError(err error) bool {
	return KindOf(err) == KindInternal
}

// IsUserError returns true if the error was caused by the input
// and no internal error is involved
func IsUserError(err error) bool {
	return KindOf(err) == KindUser
}
