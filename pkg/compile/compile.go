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

// Package compile turns a cluster config and its template definitions into
// the ordered set of GitOps resources a writer hands to the cluster's
// delivery controller. Compilation is deterministic: the same inputs
// produce byte-identical output, with resources in template declaration
// order and substitution variables in scope-merge order.
package compile

import (
	"context"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"k8s.io/klog/v2"

	gitopsv1alpha1 "kpt.dev/templatesync/pkg/api/gitops/v1alpha1"
	"kpt.dev/templatesync/pkg/api/templates"
	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/core"
	"kpt.dev/templatesync/pkg/enablement"
	"kpt.dev/templatesync/pkg/metrics"
	"kpt.dev/templatesync/pkg/status"
	"kpt.dev/templatesync/pkg/substitution"
	"kpt.dev/templatesync/pkg/validate"
)

// Options configures one compilation run.
type Options struct {
	// SourceRepo, when set, emits a shared source-repository descriptor for
	// the cluster alongside the compiled resources.
	SourceRepo *v1alpha1.SourceSpec
	// Patches are structural edits applied to named compiled resources
	// after synthesis, in order.
	Patches []gitopsv1alpha1.PatchOperation
	// RejectCycles makes dependency cycles a compile error.
	RejectCycles bool
}

// Compile resolves enablement, validates the dependency graph, resolves
// substitutions, and synthesizes one CompiledResource per enabled unit. Any
// validation failure aborts compilation with every violation reported.
func Compile(ctx context.Context, cluster *v1alpha1.ClusterConfig, definitions map[string]*v1alpha1.TemplateDefinition, opts Options) (*gitopsv1alpha1.CompileResult, status.MultiError) {
	start := time.Now()
	result, errs := compile(cluster, definitions, opts)
	metrics.RecordCompileDuration(ctx, cluster.Name, metrics.StatusTagKey(errs), start)
	if errs != nil {
		metrics.RecordValidationErrors(ctx, cluster.Name, len(errs.Errors()))
		return nil, errs
	}
	metrics.RecordCompiledResources(ctx, cluster.Name, len(result.Resources))
	return result, nil
}

func compile(cluster *v1alpha1.ClusterConfig, definitions map[string]*v1alpha1.TemplateDefinition, opts Options) (*gitopsv1alpha1.CompileResult, status.MultiError) {
	enabled, errs := enablement.ResolveEnabled(cluster, definitions)
	errs = status.Append(errs, validate.Validate(enabled, definitions, validate.Options{RejectCycles: opts.RejectCycles}))
	if errs != nil {
		return nil, errs
	}

	// Pre-resolve every enabled unit's namespace so dependency references
	// can point at resources compiled later in the run.
	namespaces := make(map[core.UnitID]string, enabled.Len())
	for _, entry := range cluster.Templates {
		definition := definitions[entry.Name]
		for i := range definition.Units {
			unit := &definition.Units[i]
			id := core.MakeUnitID(definition.Name, unit.Name)
			namespaces[id] = resolveNamespace(cluster, id, unit)
		}
	}

	result := &gitopsv1alpha1.CompileResult{}
	seen := make(map[core.UnitID]bool, enabled.Len())
	for _, entry := range cluster.Templates {
		definition := definitions[entry.Name]
		for i := range definition.Units {
			unit := &definition.Units[i]
			id := core.MakeUnitID(definition.Name, unit.Name)
			if seen[id] {
				continue
			}
			seen[id] = true
			if !enabled.Has(id) {
				return nil, status.Append(nil, status.InternalErrorf("unit %q compiled without being enabled", id))
			}
			resource, err := compileUnit(cluster, id, unit, namespaces)
			if err != nil {
				errs = status.Append(errs, err)
				continue
			}
			result.Resources = append(result.Resources, *resource)
		}
	}
	if errs != nil {
		return nil, errs
	}

	if opts.SourceRepo != nil {
		result.SourceRepository = sourceRepository(cluster, opts.SourceRepo)
	}

	if len(opts.Patches) > 0 {
		if err := applyPatches(result, opts.Patches); err != nil {
			return nil, status.Append(nil, err)
		}
		result.Patches = opts.Patches
	}

	klog.V(1).Infof("compiled %d resources for cluster %q", len(result.Resources), cluster.Name)
	return result, nil
}

// compileUnit synthesizes the resource for one enabled unit.
func compileUnit(cluster *v1alpha1.ClusterConfig, id core.UnitID, unit *v1alpha1.UnitSpec, namespaces map[core.UnitID]string) (*gitopsv1alpha1.CompiledResource, status.Error) {
	resource := &gitopsv1alpha1.CompiledResource{
		Name:          id.ResourceName(),
		Namespace:     namespaces[id],
		Path:          unit.Path,
		HealthChecks:  unit.HealthChecks,
		Prune:         unit.GetPrune(),
		Wait:          unit.GetWait(),
		Timeout:       unit.GetTimeout(),
		RetryInterval: unit.GetRetryInterval(),
	}

	for _, dep := range unit.DependsOn {
		if !dep.IsUnitRef() {
			continue
		}
		target := core.ParseDependency(dep.Name, id.Template)
		targetNamespace, found := namespaces[target]
		if !found {
			return nil, status.InternalErrorf("unit %q depends on %q, which passed validation but was not compiled", id, target)
		}
		resource.DependsOn = append(resource.DependsOn, gitopsv1alpha1.ResourceReference{
			Name:      target.ResourceName(),
			Namespace: targetNamespace,
		})
	}

	resource.Substitute = substituteBlock(substitution.Resolve(cluster, id, unit))
	return resource, nil
}

// substituteBlock flattens the resolved values into the variable list,
// preserving the merge order the resolver recorded.
func substituteBlock(values *orderedmap.OrderedMap[string, string]) []gitopsv1alpha1.SubstituteVar {
	vars := make([]gitopsv1alpha1.SubstituteVar, 0, values.Len())
	for el := values.Front(); el != nil; el = el.Next() {
		vars = append(vars, gitopsv1alpha1.SubstituteVar{Name: el.Key, Value: el.Value})
	}
	return vars
}

// resolveNamespace picks the unit's explicit namespace, falling back to the
// controller namespace its substitutions resolve to.
func resolveNamespace(cluster *v1alpha1.ClusterConfig, id core.UnitID, unit *v1alpha1.UnitSpec) string {
	if unit.Namespace != "" {
		return unit.Namespace
	}
	namespace, _ := substitution.Resolve(cluster, id, unit).Get(templates.ControllerNamespaceKey)
	return namespace
}

// sourceRepository builds the cluster's shared repository descriptor.
func sourceRepository(cluster *v1alpha1.ClusterConfig, source *v1alpha1.SourceSpec) *gitopsv1alpha1.SourceRepository {
	repo := &gitopsv1alpha1.SourceRepository{
		Name:      source.Name,
		Namespace: clusterControllerNamespace(cluster),
		Type:      source.Type,
		URL:       source.URL,
		Version:   source.Version,
	}
	if source.Type == v1alpha1.SourceTypeOCI {
		repo.SecretName = clusterRegistrySecret(cluster)
	}
	return repo
}

func clusterControllerNamespace(cluster *v1alpha1.ClusterConfig) string {
	if ns := cluster.Defaults[templates.ControllerNamespaceKey]; ns != "" {
		return ns
	}
	return templates.DefaultControllerNamespace
}

func clusterRegistrySecret(cluster *v1alpha1.ClusterConfig) string {
	if secret := cluster.Defaults[templates.RegistrySecretKey]; secret != "" {
		return secret
	}
	return templates.DefaultRegistrySecret
}
