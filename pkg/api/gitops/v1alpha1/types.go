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

// Package v1alpha1 holds the compiled output types handed to an external
// writer. The compiler produces these descriptions; serializing them and
// applying them to a cluster is out of scope.
package v1alpha1

import (
	"encoding/json"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
)

// ResourceReference names another compiled resource in its namespace.
type ResourceReference struct {
	// Name of the referenced resource.
	Name string `json:"name"`
	// Namespace of the referenced resource.
	Namespace string `json:"namespace"`
}

// SubstituteVar is one resolved substitution variable. The compiler emits
// variables in ascending key order so repeated runs produce byte-identical
// output.
type SubstituteVar struct {
	// Name of the variable.
	Name string `json:"name"`
	// Value of the variable, fully resolved.
	Value string `json:"value"`
}

// CompiledResource is the GitOps continuous-delivery resource compiled for
// one enabled unit. Produced once per unit, never mutated after creation.
type CompiledResource struct {
	// Name of the resource. Equal to the unit name.
	Name string `json:"name"`
	// Namespace the resource is created in.
	Namespace string `json:"namespace"`
	// Path to the unit's manifests within the cluster's source repository.
	Path string `json:"path"`
	// DependsOn lists the resources that must reconcile before this one, in
	// the order the unit declared them.
	// +optional
	DependsOn []ResourceReference `json:"dependsOn,omitempty"`
	// Substitute is the resolved substitution block, key-sorted.
	// +optional
	Substitute []SubstituteVar `json:"substitute,omitempty"`
	// HealthChecks copied through from the unit.
	// +optional
	HealthChecks []v1alpha1.HealthCheckSpec `json:"healthChecks,omitempty"`
	// Prune enables garbage collection of removed objects.
	Prune bool `json:"prune"`
	// Wait blocks reconciliation until resources are ready.
	Wait bool `json:"wait"`
	// Timeout bounds one reconciliation attempt.
	Timeout metav1.Duration `json:"timeout"`
	// RetryInterval is the delay before a failed reconciliation is retried.
	RetryInterval metav1.Duration `json:"retryInterval"`
}

// SourceRepository describes the cluster's shared source repository, the
// origin the GitOps controller reconciles compiled resources from.
type SourceRepository struct {
	// Name of the repository resource.
	Name string `json:"name"`
	// Namespace the repository resource is created in.
	Namespace string `json:"namespace"`
	// Type is the repository transport, git or oci.
	Type v1alpha1.SourceType `json:"type"`
	// URL of the repository.
	URL string `json:"url"`
	// Version is the ref, tag or digest to reconcile from.
	Version string `json:"version"`
	// SecretName is the credential secret the controller pulls with.
	// +optional
	SecretName string `json:"secretName,omitempty"`
}

// PatchOp is a JSON-patch operation kind.
type PatchOp string

const (
	// PatchOpAdd inserts a value at a path.
	PatchOpAdd PatchOp = "add"
	// PatchOpRemove deletes the value at a path.
	PatchOpRemove PatchOp = "remove"
	// PatchOpReplace overwrites the value at a path.
	PatchOpReplace PatchOp = "replace"
)

// PatchOperation is one structural edit applied to a compiled resource
// after synthesis.
type PatchOperation struct {
	// Op is the operation kind.
	Op PatchOp `json:"op"`
	// Target names the compiled resource the patch applies to.
	Target string `json:"target"`
	// Path is the JSON-pointer path within the serialized resource.
	Path string `json:"path"`
	// Value for add and replace operations.
	// +optional
	Value json.RawMessage `json:"value,omitempty"`
}

// CompileResult is everything one compilation run emits: the ordered
// resource set, the optional shared source repository, and the patches that
// were applied.
type CompileResult struct {
	// Resources in template declaration order, then unit declaration order.
	Resources []CompiledResource `json:"resources"`
	// SourceRepository shared by the cluster, if one was requested.
	// +optional
	SourceRepository *SourceRepository `json:"sourceRepository,omitempty"`
	// Patches that were applied to the resources, in application order.
	// +optional
	Patches []PatchOperation `json:"patches,omitempty"`
}
