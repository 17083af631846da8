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
	"kpt.dev/templatesync/pkg/api/templates"
)

// SchemaDefaults returns the built-in substitution values, the
// lowest-precedence scope of the substitution resolver. The returned map is
// a fresh copy on every call.
func SchemaDefaults() map[string]string {
	return map[string]string{
		templates.ControllerNamespaceKey: templates.DefaultControllerNamespace,
		templates.RegistrySecretKey:      templates.DefaultRegistrySecret,
	}
}

// GetPrune returns whether the unit prunes removed objects, defaulting to
// true when unset.
func (u *UnitSpec) GetPrune() bool {
	if u.Prune == nil {
		return true
	}
	return *u.Prune
}

// GetWait returns whether the unit waits for readiness, defaulting to true
// when unset.
func (u *UnitSpec) GetWait() bool {
	if u.Wait == nil {
		return true
	}
	return *u.Wait
}

// GetTimeout returns the unit's reconcile timeout, defaulting to 5m if
// empty.
func (u *UnitSpec) GetTimeout() metav1.Duration {
	if u.Timeout == nil || u.Timeout.Duration == 0 {
		return metav1.Duration{Duration: templates.DefaultReconcileTimeout}
	}
	return *u.Timeout
}

// GetRetryInterval returns the unit's retry interval, defaulting to 2m if
// empty.
func (u *UnitSpec) GetRetryInterval() metav1.Duration {
	if u.RetryInterval == nil || u.RetryInterval.Duration == 0 {
		return metav1.Duration{Duration: templates.DefaultRetryInterval}
	}
	return *u.RetryInterval
}

// IsUnitRef reports whether the dependency entry is a string reference to
// another unit. Manifest dependencies return false and are opaque to graph
// validation.
func (d DependencyRef) IsUnitRef() bool {
	return d.Manifest == nil && d.Name != ""
}
