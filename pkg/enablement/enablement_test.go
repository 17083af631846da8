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

package enablement

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/core"
	"kpt.dev/templatesync/pkg/status"
)

func definitions(defs ...*v1alpha1.TemplateDefinition) map[string]*v1alpha1.TemplateDefinition {
	m := make(map[string]*v1alpha1.TemplateDefinition, len(defs))
	for _, def := range defs {
		m[def.Name] = def
	}
	return m
}

func templateDef(name string, units ...string) *v1alpha1.TemplateDefinition {
	def := &v1alpha1.TemplateDefinition{Name: name}
	for _, unit := range units {
		def.Units = append(def.Units, v1alpha1.UnitSpec{Name: unit})
	}
	return def
}

func cluster(name string, templateNames ...string) *v1alpha1.ClusterConfig {
	c := &v1alpha1.ClusterConfig{Name: name}
	for _, templateName := range templateNames {
		c.Templates = append(c.Templates, v1alpha1.TemplateEntry{Name: templateName})
	}
	return c
}

func TestResolveEnabled(t *testing.T) {
	testCases := []struct {
		name        string
		cluster     *v1alpha1.ClusterConfig
		definitions map[string]*v1alpha1.TemplateDefinition
		want        []core.UnitID
		wantErrs    status.MultiError
	}{
		{
			name:        "no templates enabled",
			cluster:     cluster("east"),
			definitions: definitions(templateDef("observability", "prometheus")),
			want:        nil,
		},
		{
			name:        "one template enables all its units",
			cluster:     cluster("east", "observability"),
			definitions: definitions(templateDef("observability", "prometheus", "grafana")),
			want: []core.UnitID{
				core.MakeUnitID("observability", "prometheus"),
				core.MakeUnitID("observability", "grafana"),
			},
		},
		{
			name:    "multiple templates",
			cluster: cluster("east", "observability", "ingress"),
			definitions: definitions(
				templateDef("observability", "prometheus"),
				templateDef("ingress", "nginx"),
			),
			want: []core.UnitID{
				core.MakeUnitID("observability", "prometheus"),
				core.MakeUnitID("ingress", "nginx"),
			},
		},
		{
			name:        "unknown template",
			cluster:     cluster("east", "no-such-template"),
			definitions: definitions(templateDef("observability", "prometheus")),
			wantErrs:    status.FakeMultiError(UnknownTemplateErrorCode),
		},
		{
			name:        "known and unknown templates mixed",
			cluster:     cluster("east", "observability", "no-such-template", "also-missing"),
			definitions: definitions(templateDef("observability", "prometheus")),
			want: []core.UnitID{
				core.MakeUnitID("observability", "prometheus"),
			},
			wantErrs: status.FakeMultiError(UnknownTemplateErrorCode, UnknownTemplateErrorCode),
		},
		{
			name:        "duplicate template entries collapse",
			cluster:     cluster("east", "observability", "observability"),
			definitions: definitions(templateDef("observability", "prometheus")),
			want: []core.UnitID{
				core.MakeUnitID("observability", "prometheus"),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			enabled, errs := ResolveEnabled(tc.cluster, tc.definitions)
			if !errors.Is(errs, tc.wantErrs) {
				t.Errorf("got ResolveEnabled() error %v, want %v", errs, tc.wantErrs)
			}
			for _, id := range tc.want {
				if !enabled.Has(id) {
					t.Errorf("ResolveEnabled() missing %v", id)
				}
			}
			if enabled.Len() != len(tc.want) {
				t.Errorf("ResolveEnabled() = %d units, want %d:\n%s",
					enabled.Len(), len(tc.want), cmp.Diff(tc.want, enabled.UnsortedList()))
			}
		})
	}
}

func TestResolveEnabledDoesNotMutateInputs(t *testing.T) {
	c := cluster("east", "observability")
	defs := definitions(templateDef("observability", "prometheus", "grafana"))
	wantCluster := c.DeepCopy()

	if _, errs := ResolveEnabled(c, defs); errs != nil {
		t.Fatalf("ResolveEnabled() errors = %v, want nil", errs)
	}

	if diff := cmp.Diff(wantCluster, c); diff != "" {
		t.Errorf("cluster config mutated by resolution (-want +got):\n%s", diff)
	}
}
