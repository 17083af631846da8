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

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// SourceType identifies the transport used to materialize a source.
type SourceType string

const (
	// SourceTypeGit indicates the source is fetched with a git clone/checkout.
	SourceTypeGit SourceType = "git"
	// SourceTypeHTTP indicates the source is downloaded as a tar.gz archive.
	SourceTypeHTTP SourceType = "http"
	// SourceTypeOCI indicates the source is pulled as an OCI image.
	SourceTypeOCI SourceType = "oci"
)

// SourceSpec identifies one versioned template or node-profile source.
// The (Name, Type, Version) triple is the cache identity; URL is only
// consulted on a cache miss.
type SourceSpec struct {
	// Name of the source. Unique among the sources a compilation run loads.
	Name string `json:"name"`
	// Type selects the fetch transport.
	Type SourceType `json:"type"`
	// Version is the revision to materialize. Git refs, HTTP archive versions
	// and OCI tags are all treated as opaque strings; semver versions are
	// additionally syntax-checked before fetching.
	Version string `json:"version"`
	// URL is the remote location of the source.
	URL string `json:"url"`
	// TTL bounds how long a materialized copy of this source may be reused.
	// A nil TTL never expires.
	// +optional
	TTL *metav1.Duration `json:"ttl,omitempty"`
}

// ClusterConfig is the declarative description of one deployment target:
// which templates it enables, its default substitution values, and the node
// profiles that contribute values to its units.
//
// A ClusterConfig is owned by the caller and must not be mutated once a
// compilation run has started.
type ClusterConfig struct {
	// Name of the cluster.
	Name string `json:"name"`
	// Defaults are cluster-level substitution values. They override the
	// built-in schema defaults and are overridden by every narrower scope.
	// +optional
	Defaults map[string]string `json:"defaults,omitempty"`
	// Templates lists the templates this cluster opts into. A template that
	// is loaded but not listed here contributes nothing to the cluster.
	Templates []TemplateEntry `json:"templates"`
	// NodeProfiles are the node profiles whose values apply to this cluster.
	// +optional
	NodeProfiles []NodeProfile `json:"nodeProfiles,omitempty"`
}

// TemplateEntry enables one template for a cluster and carries the
// cluster's template-level substitution overrides.
type TemplateEntry struct {
	// Name of the enabled template.
	Name string `json:"name"`
	// Substitutions override cluster defaults and node-profile values for
	// every unit of this template.
	// +optional
	Substitutions map[string]string `json:"substitutions,omitempty"`
}

// NodeProfile contributes substitution values to the units that target its
// nodes.
type NodeProfile struct {
	// Name of the profile.
	Name string `json:"name"`
	// Units restricts the profile to the named units. Entries are either
	// bare unit names or qualified "template/unit" identities. An empty list
	// applies the profile to every unit.
	// +optional
	Units []string `json:"units,omitempty"`
	// Substitutions are the values this profile contributes.
	// +optional
	Substitutions map[string]string `json:"substitutions,omitempty"`
}

// TemplateDefinition is a reusable, named collection of deployable units,
// loaded from a cache-materialized source. Immutable during compilation.
type TemplateDefinition struct {
	// Name of the template. Must not contain "/".
	Name string `json:"name"`
	// Source is the versioned origin this template was materialized from.
	// +optional
	Source *SourceSpec `json:"source,omitempty"`
	// Units are the deployable units of this template, in declaration order.
	// Declaration order is preserved through to compiled output.
	Units []UnitSpec `json:"units"`
}

// UnitSpec describes one deployable unit ("kustomization") within a
// template.
type UnitSpec struct {
	// Name of the unit. Unique within its template and must not contain "/".
	Name string `json:"name"`
	// Path is the directory holding the unit's manifests, relative to the
	// template source root.
	Path string `json:"path"`
	// Namespace overrides the namespace the unit's resource is created in.
	// Defaults to the resolved controller namespace.
	// +optional
	Namespace string `json:"namespace,omitempty"`
	// DependsOn lists the unit's dependencies. String references are either
	// local (bare unit name, resolved within the owning template) or
	// qualified ("template/unit", resolved globally).
	// +optional
	DependsOn []DependencyRef `json:"dependsOn,omitempty"`
	// Substitutions are unit-level overrides, the highest-precedence scope.
	// +optional
	Substitutions map[string]string `json:"substitutions,omitempty"`
	// HealthChecks are copied through to the compiled resource.
	// +optional
	HealthChecks []HealthCheckSpec `json:"healthChecks,omitempty"`
	// Prune enables garbage collection of removed objects. Defaults to true.
	// +optional
	Prune *bool `json:"prune,omitempty"`
	// Wait blocks reconciliation until the unit's resources are ready.
	// Defaults to true.
	// +optional
	Wait *bool `json:"wait,omitempty"`
	// Timeout bounds one reconciliation attempt.
	// +optional
	Timeout *metav1.Duration `json:"timeout,omitempty"`
	// RetryInterval is the delay before a failed reconciliation is retried.
	// +optional
	RetryInterval *metav1.Duration `json:"retryInterval,omitempty"`
}

// DependencyRef is one entry of a unit's DependsOn list. Exactly one of
// Name or Manifest is set.
type DependencyRef struct {
	// Name is a local or qualified reference to another unit.
	// +optional
	Name string `json:"name,omitempty"`
	// Manifest references a raw manifest applied outside this system.
	// Manifest dependencies are opaque to dependency-graph validation.
	// +optional
	Manifest *ManifestRef `json:"manifest,omitempty"`
}

// ManifestRef identifies a raw Kubernetes object a unit depends on.
type ManifestRef struct {
	// APIVersion of the referent.
	APIVersion string `json:"apiVersion"`
	// Kind of the referent.
	Kind string `json:"kind"`
	// Name of the referent.
	Name string `json:"name"`
	// Namespace of the referent. Empty for cluster-scoped objects.
	// +optional
	Namespace string `json:"namespace,omitempty"`
}

// HealthCheckSpec identifies one object whose readiness gates the unit.
type HealthCheckSpec struct {
	// APIVersion of the checked object.
	APIVersion string `json:"apiVersion"`
	// Kind of the checked object.
	Kind string `json:"kind"`
	// Name of the checked object.
	Name string `json:"name"`
	// Namespace of the checked object.
	// +optional
	Namespace string `json:"namespace,omitempty"`
}
