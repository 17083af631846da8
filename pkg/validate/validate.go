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

// Package validate checks the dependency graph of a cluster's enabled
// units. Validation is batch-style: every unsatisfied dependency in the
// graph is reported, never just the first one found.
package validate

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/core"
	"kpt.dev/templatesync/pkg/status"
)

// MissingDependencyErrorCode is the error code for a dependency on a unit
// that is not enabled for the cluster.
const MissingDependencyErrorCode = "1061"

var missingDependencyErrorBuilder = status.NewErrorBuilder(MissingDependencyErrorCode)

// MissingDependencyError reports that source depends on target, but target
// is not in the cluster's enabled set.
func MissingDependencyError(source, target core.UnitID) status.UnitError {
	return missingDependencyErrorBuilder.
		Sprintf("unit %q depends on %q, which is not enabled for this cluster; enable template %q or remove the dependency",
			source, target, target.Template).
		BuildWithUnits(source, target)
}

// Options controls optional validation passes.
type Options struct {
	// RejectCycles additionally rejects dependency cycles among enabled
	// units. Off by default: the downstream GitOps controller tolerates
	// cycles by reconciling the cycle members unordered.
	RejectCycles bool
}

// Validate checks that every unit dependency among the enabled units
// resolves to another enabled unit. Manifest dependencies are opaque to the
// graph and skipped. All violations are accumulated and returned together.
func Validate(enabled sets.Set[core.UnitID], definitions map[string]*v1alpha1.TemplateDefinition, opts Options) status.MultiError {
	var errs status.MultiError
	graph := make(map[core.UnitID][]core.UnitID)

	for _, definition := range definitions {
		for i := range definition.Units {
			unit := &definition.Units[i]
			source := core.MakeUnitID(definition.Name, unit.Name)
			if !enabled.Has(source) {
				continue
			}
			for _, dep := range unit.DependsOn {
				if !dep.IsUnitRef() {
					continue
				}
				target := core.ParseDependency(dep.Name, definition.Name)
				if !enabled.Has(target) {
					errs = status.Append(errs, MissingDependencyError(source, target))
					continue
				}
				graph[source] = append(graph[source], target)
			}
		}
	}

	if opts.RejectCycles {
		errs = status.Append(errs, rejectCycles(graph))
	}
	return errs
}
