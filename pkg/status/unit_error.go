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
	"strings"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/core"
)

// UnitError defines a status error associated with one or more deployable
// units.
type UnitError interface {
	Error
	Units() []core.UnitID
}

type unitErrorImpl struct {
	underlying Error
	units      []core.UnitID
}

var _ UnitError = unitErrorImpl{}

// Error implements error.
func (u unitErrorImpl) Error() string {
	return format(u)
}

// Is implements Error.
func (u unitErrorImpl) Is(target error) bool {
	return u.underlying.Is(target)
}

// Code implements Error.
func (u unitErrorImpl) Code() string {
	return u.underlying.Code()
}

// Body implements Error.
func (u unitErrorImpl) Body() string {
	var sb strings.Builder
	sb.WriteString(u.underlying.Body())
	for _, id := range u.units {
		sb.WriteString("\n\n")
		sb.WriteString(id.String())
	}
	return sb.String()
}

// Errors implements MultiError.
func (u unitErrorImpl) Errors() []Error {
	return []Error{u}
}

// Units implements UnitError.
func (u unitErrorImpl) Units() []core.UnitID {
	return u.units
}

// ToRecord implements Error.
func (u unitErrorImpl) ToRecord() v1alpha1.CompileError {
	return fromUnitError(u)
}

// Cause implements causer.
func (u unitErrorImpl) Cause() error {
	return u.underlying.Cause()
}
