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

package v1alpha1

// CompileError is the serializable form of one compilation error, preserving
// its structured information for machine consumers.
type CompileError struct {
	// Code is the KTS error code.
	Code string `json:"code"`
	// ErrorMessage is the rendered human-readable message.
	ErrorMessage string `json:"errorMessage"`
	// Units are the canonical identities of the units the error pertains to.
	// For a missing-dependency error the first entry is the source unit and
	// the second the unresolved target.
	// +optional
	Units []string `json:"units,omitempty"`
}
