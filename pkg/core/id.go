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

// Package core holds the canonical identity model for deployable units.
// Every downstream component keys on UnitID.
package core

import (
	"fmt"
	"sort"
	"strings"

	"kpt.dev/templatesync/pkg/api/templates"
)

// UnitID uniquely identifies a deployable unit across all loaded templates.
// Construction is total and injective: template and unit names never contain
// the separator, so no two distinct (template, unit) pairs share an ID.
type UnitID struct {
	// Template is the name of the owning template.
	Template string
	// Unit is the unit name, unique within its template.
	Unit string
}

// MakeUnitID returns the UnitID for a unit within its owning template.
func MakeUnitID(templateName, unitName string) UnitID {
	return UnitID{
		Template: templateName,
		Unit:     unitName,
	}
}

// String implements fmt.Stringer.
func (i UnitID) String() string {
	return i.Template + templates.UnitIDSeparator + i.Unit
}

// GoString implements fmt.GoStringer for readable test failures.
func (i UnitID) GoString() string {
	return fmt.Sprintf("core.UnitID{Template: %q, Unit: %q}", i.Template, i.Unit)
}

// ResourceName is the name of the GitOps resource compiled for the unit.
// Unit names are unique within a template, so the unit name alone is stable
// within the resource's namespace.
func (i UnitID) ResourceName() string {
	return i.Unit
}

// ParseDependency resolves a string dependency reference declared by a unit
// of owningTemplate. A reference containing the separator is fully qualified
// ("template/unit") and used verbatim; a bare reference is local and
// qualified with the owning template.
func ParseDependency(ref, owningTemplate string) UnitID {
	if strings.Contains(ref, templates.UnitIDSeparator) {
		parts := strings.SplitN(ref, templates.UnitIDSeparator, 2)
		return UnitID{Template: parts[0], Unit: parts[1]}
	}
	return UnitID{Template: owningTemplate, Unit: ref}
}

// UnitIDs returns the string forms of the given IDs in increasing order.
func UnitIDs(ids []UnitID) []string {
	var result []string
	for _, id := range ids {
		result = append(result, id.String())
	}
	sort.Strings(result)
	return result
}
