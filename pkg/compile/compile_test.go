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

package compile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	gitopsv1alpha1 "kpt.dev/templatesync/pkg/api/gitops/v1alpha1"
	"kpt.dev/templatesync/pkg/api/templates"
	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/enablement"
	"kpt.dev/templatesync/pkg/status"
	"kpt.dev/templatesync/pkg/validate"
)

func observabilityDefs() map[string]*v1alpha1.TemplateDefinition {
	return map[string]*v1alpha1.TemplateDefinition{
		"observability": {
			Name: "observability",
			Units: []v1alpha1.UnitSpec{
				{
					Name: "prometheus",
					Path: "observability/prometheus",
				},
				{
					Name:      "grafana",
					Path:      "observability/grafana",
					DependsOn: []v1alpha1.DependencyRef{{Name: "prometheus"}},
				},
			},
		},
		"ingress": {
			Name: "ingress",
			Units: []v1alpha1.UnitSpec{
				{
					Name:      "nginx",
					Path:      "ingress/nginx",
					Namespace: "ingress-system",
					DependsOn: []v1alpha1.DependencyRef{{Name: "observability/prometheus"}},
				},
			},
		},
	}
}

func eastCluster() *v1alpha1.ClusterConfig {
	return &v1alpha1.ClusterConfig{
		Name: "east",
		Templates: []v1alpha1.TemplateEntry{
			{Name: "observability"},
			{Name: "ingress"},
		},
	}
}

func TestCompile(t *testing.T) {
	result, errs := Compile(context.Background(), eastCluster(), observabilityDefs(), Options{})
	if errs != nil {
		t.Fatalf("Compile() = %v, want nil", errs)
	}

	defaultSubs := []gitopsv1alpha1.SubstituteVar{
		{Name: templates.ControllerNamespaceKey, Value: templates.DefaultControllerNamespace},
		{Name: templates.RegistrySecretKey, Value: templates.DefaultRegistrySecret},
	}
	want := []gitopsv1alpha1.CompiledResource{
		{
			Name:          "prometheus",
			Namespace:     templates.DefaultControllerNamespace,
			Path:          "observability/prometheus",
			Substitute:    defaultSubs,
			Prune:         true,
			Wait:          true,
			Timeout:       metav1.Duration{Duration: templates.DefaultReconcileTimeout},
			RetryInterval: metav1.Duration{Duration: templates.DefaultRetryInterval},
		},
		{
			Name:      "grafana",
			Namespace: templates.DefaultControllerNamespace,
			Path:      "observability/grafana",
			DependsOn: []gitopsv1alpha1.ResourceReference{
				{Name: "prometheus", Namespace: templates.DefaultControllerNamespace},
			},
			Substitute:    defaultSubs,
			Prune:         true,
			Wait:          true,
			Timeout:       metav1.Duration{Duration: templates.DefaultReconcileTimeout},
			RetryInterval: metav1.Duration{Duration: templates.DefaultRetryInterval},
		},
		{
			Name:      "nginx",
			Namespace: "ingress-system",
			Path:      "ingress/nginx",
			DependsOn: []gitopsv1alpha1.ResourceReference{
				{Name: "prometheus", Namespace: templates.DefaultControllerNamespace},
			},
			Substitute:    defaultSubs,
			Prune:         true,
			Wait:          true,
			Timeout:       metav1.Duration{Duration: templates.DefaultReconcileTimeout},
			RetryInterval: metav1.Duration{Duration: templates.DefaultRetryInterval},
		},
	}
	if diff := cmp.Diff(want, result.Resources); diff != "" {
		t.Errorf("Compile() resources mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	cluster := eastCluster()
	cluster.Defaults = map[string]string{
		"zebra": "z", "alpha": "a", "mike": "m", "delta": "d",
	}

	first, errs := Compile(context.Background(), cluster, observabilityDefs(), Options{})
	if errs != nil {
		t.Fatalf("Compile() = %v, want nil", errs)
	}
	for i := 0; i < 10; i++ {
		next, errs := Compile(context.Background(), cluster, observabilityDefs(), Options{})
		if errs != nil {
			t.Fatalf("Compile() = %v, want nil", errs)
		}
		if diff := cmp.Diff(first, next); diff != "" {
			t.Fatalf("run %d differs from first run:\n%s", i+1, diff)
		}
	}

	// Schema-default keys come first, then the cluster defaults in ascending
	// order within their scope.
	wantOrder := []string{templates.ControllerNamespaceKey, templates.RegistrySecretKey, "alpha", "delta", "mike", "zebra"}
	var gotOrder []string
	for _, v := range first.Resources[0].Substitute {
		gotOrder = append(gotOrder, v.Name)
	}
	if diff := cmp.Diff(wantOrder, gotOrder); diff != "" {
		t.Errorf("substitute keys not in merge order (-want +got):\n%s", diff)
	}
}

func TestCompileHonorsExplicitKnobs(t *testing.T) {
	off := false
	defs := map[string]*v1alpha1.TemplateDefinition{
		"observability": {
			Name: "observability",
			Units: []v1alpha1.UnitSpec{{
				Name:          "prometheus",
				Path:          "observability/prometheus",
				Prune:         &off,
				Wait:          &off,
				Timeout:       &metav1.Duration{Duration: 10 * time.Minute},
				RetryInterval: &metav1.Duration{Duration: 30 * time.Second},
			}},
		},
	}
	cluster := &v1alpha1.ClusterConfig{
		Name:      "east",
		Templates: []v1alpha1.TemplateEntry{{Name: "observability"}},
	}

	result, errs := Compile(context.Background(), cluster, defs, Options{})
	if errs != nil {
		t.Fatalf("Compile() = %v, want nil", errs)
	}
	resource := result.Resources[0]
	if resource.Prune || resource.Wait {
		t.Errorf("prune=%t wait=%t, want both false", resource.Prune, resource.Wait)
	}
	if resource.Timeout.Duration != 10*time.Minute {
		t.Errorf("timeout = %v, want 10m", resource.Timeout.Duration)
	}
	if resource.RetryInterval.Duration != 30*time.Second {
		t.Errorf("retryInterval = %v, want 30s", resource.RetryInterval.Duration)
	}
}

func TestCompileAbortsOnValidationErrors(t *testing.T) {
	cluster := &v1alpha1.ClusterConfig{
		Name: "east",
		Templates: []v1alpha1.TemplateEntry{
			{Name: "observability"},
			{Name: "no-such-template"},
		},
	}
	defs := map[string]*v1alpha1.TemplateDefinition{
		"observability": {
			Name: "observability",
			Units: []v1alpha1.UnitSpec{{
				Name:      "grafana",
				Path:      "observability/grafana",
				DependsOn: []v1alpha1.DependencyRef{{Name: "prometheus"}},
			}},
		},
	}

	result, errs := Compile(context.Background(), cluster, defs, Options{})
	if result != nil {
		t.Errorf("Compile() result = %v, want nil on validation failure", result)
	}
	want := status.FakeMultiError(
		enablement.UnknownTemplateErrorCode,
		validate.MissingDependencyErrorCode,
	)
	if !errors.Is(errs, want) {
		t.Errorf("got Compile() error %v, want %v", errs, want)
	}
}

func TestCompileSourceRepository(t *testing.T) {
	testCases := []struct {
		name     string
		defaults map[string]string
		source   *v1alpha1.SourceSpec
		want     *gitopsv1alpha1.SourceRepository
	}{
		{
			name: "git repository",
			source: &v1alpha1.SourceSpec{
				Name:    "cluster-repo",
				Type:    v1alpha1.SourceTypeGit,
				URL:     "https://example.com/fleet.git",
				Version: "main",
			},
			want: &gitopsv1alpha1.SourceRepository{
				Name:      "cluster-repo",
				Namespace: templates.DefaultControllerNamespace,
				Type:      v1alpha1.SourceTypeGit,
				URL:       "https://example.com/fleet.git",
				Version:   "main",
			},
		},
		{
			name: "oci repository carries pull secret",
			defaults: map[string]string{
				templates.ControllerNamespaceKey: "platform-system",
				templates.RegistrySecretKey:      "regcred",
			},
			source: &v1alpha1.SourceSpec{
				Name:    "cluster-repo",
				Type:    v1alpha1.SourceTypeOCI,
				URL:     "oci://registry.example.com/fleet",
				Version: "v1.4.0",
			},
			want: &gitopsv1alpha1.SourceRepository{
				Name:       "cluster-repo",
				Namespace:  "platform-system",
				Type:       v1alpha1.SourceTypeOCI,
				URL:        "oci://registry.example.com/fleet",
				Version:    "v1.4.0",
				SecretName: "regcred",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cluster := eastCluster()
			cluster.Defaults = tc.defaults

			result, errs := Compile(context.Background(), cluster, observabilityDefs(), Options{SourceRepo: tc.source})
			if errs != nil {
				t.Fatalf("Compile() = %v, want nil", errs)
			}
			if diff := cmp.Diff(tc.want, result.SourceRepository); diff != "" {
				t.Errorf("SourceRepository mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileRejectCycles(t *testing.T) {
	defs := map[string]*v1alpha1.TemplateDefinition{
		"observability": {
			Name: "observability",
			Units: []v1alpha1.UnitSpec{
				{Name: "a", Path: "a", DependsOn: []v1alpha1.DependencyRef{{Name: "b"}}},
				{Name: "b", Path: "b", DependsOn: []v1alpha1.DependencyRef{{Name: "a"}}},
			},
		},
	}
	cluster := &v1alpha1.ClusterConfig{
		Name:      "east",
		Templates: []v1alpha1.TemplateEntry{{Name: "observability"}},
	}

	if _, errs := Compile(context.Background(), cluster, defs, Options{}); errs != nil {
		t.Errorf("Compile() without cycle rejection = %v, want nil", errs)
	}

	_, errs := Compile(context.Background(), cluster, defs, Options{RejectCycles: true})
	want := status.FakeMultiError(validate.DependencyCycleErrorCode)
	if !errors.Is(errs, want) {
		t.Errorf("got Compile() error %v with cycle rejection, want %v", errs, want)
	}
}

func TestCompileDuplicateTemplateEntries(t *testing.T) {
	cluster := &v1alpha1.ClusterConfig{
		Name: "east",
		Templates: []v1alpha1.TemplateEntry{
			{Name: "observability"},
			{Name: "observability"},
		},
	}
	result, errs := Compile(context.Background(), cluster, observabilityDefs(), Options{})
	if errs != nil {
		t.Fatalf("Compile() = %v, want nil", errs)
	}
	if got := len(result.Resources); got != 2 {
		t.Errorf("Compile() produced %d resources for duplicate entries, want 2", got)
	}
}
