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

// Package enablement computes which unit identities a cluster enables.
// Enablement is template-granular: listing a template in a cluster config
// enables every unit the template defines. Units cannot be enabled or
// disabled individually.
package enablement

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/core"
	"kpt.dev/templatesync/pkg/status"
)

// UnknownTemplateErrorCode is the error code for a cluster config that
// enables a template with no definition.
const UnknownTemplateErrorCode = "1060"

var unknownTemplateErrorBuilder = status.NewErrorBuilder(UnknownTemplateErrorCode)

// UnknownTemplateError reports that a cluster enables a template that has
// no definition among the loaded sources.
func UnknownTemplateError(templateName, clusterName string) status.Error {
	return unknownTemplateErrorBuilder.
		Sprintf("cluster %q enables template %q, but no such template is defined; check the template name and the cluster's sources", clusterName, templateName).
		Build()
}

// ResolveEnabled returns the set of unit identities the cluster enables. A
// template entry with no definition produces an error; resolution continues
// across the remaining entries so one bad entry does not hide another.
func ResolveEnabled(cluster *v1alpha1.ClusterConfig, definitions map[string]*v1alpha1.TemplateDefinition) (sets.Set[core.UnitID], status.MultiError) {
	enabled := sets.New[core.UnitID]()
	var errs status.MultiError
	for _, entry := range cluster.Templates {
		definition, found := definitions[entry.Name]
		if !found {
			errs = status.Append(errs, UnknownTemplateError(entry.Name, cluster.Name))
			continue
		}
		for _, unit := range definition.Units {
			enabled.Insert(core.MakeUnitID(definition.Name, unit.Name))
		}
	}
	return enabled, errs
}
