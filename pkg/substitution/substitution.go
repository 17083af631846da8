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

// Package substitution resolves the substitution values for one unit by
// merging five scopes in ascending precedence:
//
//  1. built-in schema defaults
//  2. cluster defaults
//  3. node-profile values, in profile declaration order
//  4. template-level values from the cluster's template entry
//  5. unit-level values from the unit spec
//
// A key set in a later scope overrides the same key from every earlier
// scope. Resolution is pure: it reads its inputs and mutates nothing.
package substitution

import (
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"kpt.dev/templatesync/pkg/api/templates"
	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/core"
)

// Resolve returns the merged substitution values for the identified unit.
// The returned map preserves merge order: a key keeps the position of the
// scope that introduced it, so schema-default keys come first and each later
// scope appends only its new keys. Overriding a key changes its value, not
// its position. It always carries non-empty values for the controller
// namespace and registry secret keys; a scope that blanks one of them falls
// back to the built-in default.
func Resolve(cluster *v1alpha1.ClusterConfig, id core.UnitID, unit *v1alpha1.UnitSpec) *orderedmap.OrderedMap[string, string] {
	result := orderedmap.NewOrderedMap[string, string]()
	merge(result, v1alpha1.SchemaDefaults())
	merge(result, cluster.Defaults)
	for _, profile := range cluster.NodeProfiles {
		if profileApplies(profile, id) {
			merge(result, profile.Substitutions)
		}
	}
	for _, entry := range cluster.Templates {
		if entry.Name == id.Template {
			merge(result, entry.Substitutions)
			break
		}
	}
	merge(result, unit.Substitutions)

	if value, _ := result.Get(templates.ControllerNamespaceKey); value == "" {
		result.Set(templates.ControllerNamespaceKey, templates.DefaultControllerNamespace)
	}
	if value, _ := result.Get(templates.RegistrySecretKey); value == "" {
		result.Set(templates.RegistrySecretKey, templates.DefaultRegistrySecret)
	}
	return result
}

// merge layers one scope onto the accumulated result. Keys within a scope
// are applied in ascending order so the first-seen position of every key is
// deterministic.
func merge(dst *orderedmap.OrderedMap[string, string], src map[string]string) {
	keys := make([]string, 0, len(src))
	for key := range src {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		dst.Set(key, src[key])
	}
}

// profileApplies reports whether the profile contributes values to the
// identified unit. An empty Units list applies the profile everywhere;
// otherwise entries are matched as qualified "template/unit" identities or
// as bare unit names within any template.
func profileApplies(profile v1alpha1.NodeProfile, id core.UnitID) bool {
	if len(profile.Units) == 0 {
		return true
	}
	for _, ref := range profile.Units {
		if strings.Contains(ref, templates.UnitIDSeparator) {
			if ref == id.String() {
				return true
			}
			continue
		}
		if ref == id.Unit {
			return true
		}
	}
	return false
}
