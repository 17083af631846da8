// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
	"strings"

	"k8s.io/klog/v2"
	"kpt.dev/templatesync/pkg/core"
)

// ErrorBuilders handle the oft-duplicated logic we use for generating error
// messages.
//
// Each Error has a unique code, "KTS" followed by four digits. Errors with
// the same KTS code share a strong unifying feature but may include
// variations. If you would use essentially the same explanation and suggest
// the same fix for the problem, reuse the ErrorBuilder for that code. The
// four digits of an error code have no meaning except:
// - 1XXX, the user has a mistake in their configuration they need to fix.
// - 2XXX, something went wrong in the environment - it could be transient or
//   users may need to change something outside their configuration.
// - 9998, InternalError, and
// - 9999, UndocumentedError.
//
// Construct a new ErrorBuilder by passing in a code to NewErrorBuilder. If
// the code is not unique, the code will panic when packages are loaded under
// test. This ensures the code cannot run at all if there are duplicate error
// codes.
//
// Libraries should not directly expose ErrorBuilders, but keep them package
// private and instead provide functions that tell callers the correct number
// and position of formatting arguments. This ensures Error message
// consistency for a given KTS, as the set of methods using that ErrorBuilder
// is confined to a single package (and so is discoverable).

// ErrorBuilder constructs complex, structured error messages.
// Use NewErrorBuilder to register a KTS for a new code.
type ErrorBuilder struct {
	error Error
}

// NewErrorBuilder returns an ErrorBuilder that can be used to generate
// errors. Registers this call with the passed unique code. Panics if there
// is an error code collision.
func NewErrorBuilder(code string) ErrorBuilder {
	register(code)
	return ErrorBuilder{error: baseErrorImpl{
		code: code,
	}}
}

// Build returns the Error inside the ErrorBuilder.
func (eb ErrorBuilder) Build() Error {
	return eb.error
}

// BuildWithUnits adds the units the error pertains to.
func (eb ErrorBuilder) BuildWithUnits(units ...core.UnitID) UnitError {
	if len(units) == 0 {
		return nil
	}
	return unitErrorImpl{
		underlying: eb.error,
		units:      units,
	}
}

// Sprint adds a message string into the Error inside the ErrorBuilder.
func (eb ErrorBuilder) Sprint(message string) ErrorBuilder {
	return ErrorBuilder{error: messageErrorImpl{
		underlying: eb.error,
		message:    message,
	}}
}

// Sprintf adds a formatted string into the Error inside the ErrorBuilder.
func (eb ErrorBuilder) Sprintf(format string, a ...interface{}) ErrorBuilder {
	for _, e := range a {
		if _, isError := e.(error); isError {
			// Don't format errors in string form because we lose type
			// information; use .Wrap instead.
			reportMisuse("attempted format error when .Wrap should have been used")
		}
	}

	message := fmt.Sprintf(format, a...)
	if strings.Contains(message, "%!") {
		// Make sure there aren't string formatting errors in the error
		// message. Don't replace the below with string formatting syntax or
		// it may cause a stack overflow.
		reportMisuse("improperly formatted error message: " + message)
	}
	return ErrorBuilder{error: messageErrorImpl{
		underlying: eb.error,
		message:    message,
	}}
}

// Wrap adds an error into the Error inside the ErrorBuilder.
func (eb ErrorBuilder) Wrap(toWrap error) ErrorBuilder {
	if e, isStatusError := toWrap.(Error); isStatusError {
		// We don't allow wrapping KTS errors in other KTS errors.
		klog.Info(e.Code())
		reportMisuse("attempted wrap a status.Error in another status.Error")
	}
	if toWrap == nil {
		return ErrorBuilder{error: nil}
	}
	return ErrorBuilder{error: wrappedErrorImpl{
		underlying: eb.error,
		wrapped:    toWrap,
	}}
}
