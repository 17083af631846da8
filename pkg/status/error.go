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
	"sort"
	"strconv"
	"strings"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"sigs.k8s.io/cli-utils/pkg/multierror"
)

func kts(id string) string {
	return fmt.Sprintf("KTS%s", id)
}

func prefix(code string) string {
	return fmt.Sprintf("%s: ", code)
}

// Error defines a templatesync compilation error. These are shown to the
// user and carry a stable code so machine consumers can classify them.
type Error interface {
	causer
	MultiError
	// ToRecord converts the implementor into a CompileError, preserving
	// structured information.
	ToRecord() v1alpha1.CompileError
	// Code is the unique identifier of the error.
	Code() string
	// Body is the body of the error to be printed.
	Body() string
	// Is allows comparing error types through errors.Is.
	Is(target error) bool
}

// causer defines an error with an underlying cause.
type causer interface {
	Cause() error
}

// registered is a map from error codes to instances of the types they
// represent. Entries set to true are reserved and MUST NOT be reused.
var registered = map[string]bool{}

// format formats error messages consistently.
func format(err Error) string {
	var sb strings.Builder
	sb.WriteString(prefix(kts(err.Code())))
	sb.WriteString(formatCyclicDepErr(err.Body()))
	return sb.String()
}

func formatBody(message, separator, context string) string {
	var sb strings.Builder
	sb.WriteString(message)
	if context != "" {
		sb.WriteString(separator)
		sb.WriteString(context)
	}
	return sb.String()
}

// formatCyclicDepErr strips newlines from cyclic-dependency bodies and
// replaces them with ";" to keep the message readable in single-line logs.
func formatCyclicDepErr(message string) string {
	if !strings.Contains(message, "cyclic dependency:") {
		return message
	}

	msgSplit := strings.Split(message, "\n"+multierror.Prefix)

	return fmt.Sprintf("%s %s", msgSplit[0], strings.Join(msgSplit[1:], "; "))
}

func nextCandidate(code string) (int, error) {
	c, err := strconv.Atoi(code)
	if err != nil {
		return 0, err
	}

	for ; true; c++ {
		if _, found := registered[strconv.Itoa(c)]; found {
			continue
		}
		return c, nil
	}
	panic("unreachable code")
}

// register marks the passed error code as used.
func register(code string) {
	if _, exists := registered[code]; exists {
		if c, err2 := nextCandidate(code); err2 == nil {
			reportMisuse(fmt.Sprintf("duplicate error code %s, next candidate: %d", code, c))
		} else {
			reportMisuse(fmt.Sprintf("duplicate error code %s", code))
		}
	}
	registered[code] = true
}

// CodeRegistry returns a sorted list of currently registered error codes.
func CodeRegistry() []string {
	var codes []string
	for code := range registered {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}

// fromError embeds the error message and error code into a CompileError.
func fromError(err Error) v1alpha1.CompileError {
	return v1alpha1.CompileError{
		ErrorMessage: err.Error(),
		Code:         err.Code(),
	}
}

// fromUnitError converts a UnitError to a CompileError.
func fromUnitError(err UnitError) v1alpha1.CompileError {
	record := fromError(err)
	for _, id := range err.Units() {
		record.Units = append(record.Units, id.String())
	}
	return record
}
