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

package templates

import "time"

const (
	// GroupName is the name of the group of templatesync resources.
	GroupName = "templates.kpt.dev"

	// CLIName is the name of the command-line tool.
	CLIName = "templatesync"

	// UnitIDSeparator joins a template name and a unit name into the
	// canonical identity of a deployable unit. Template and unit names must
	// never contain it.
	UnitIDSeparator = "/"
)

const (
	// ControllerNamespaceKey is the substitution key holding the namespace
	// the GitOps controller reconciles compiled resources in.
	ControllerNamespaceKey = "controller_namespace"

	// RegistrySecretKey is the substitution key holding the name of the
	// image-pull secret compiled resources reference.
	RegistrySecretKey = "registry_secret"

	// DefaultControllerNamespace is the fallback value for
	// ControllerNamespaceKey. Guaranteed non-empty so a compiled resource can
	// never reference an empty namespace.
	DefaultControllerNamespace = "gitops-system"

	// DefaultRegistrySecret is the fallback value for RegistrySecretKey.
	DefaultRegistrySecret = "registry-credentials"
)

const (
	// DefaultReconcileTimeout bounds one reconciliation attempt of a compiled
	// resource when the unit does not override it.
	DefaultReconcileTimeout = 5 * time.Minute

	// DefaultRetryInterval is the delay before a failed reconciliation of a
	// compiled resource is retried when the unit does not override it.
	DefaultRetryInterval = 2 * time.Minute

	// DefaultFetchTimeout bounds one source fetch when the caller does not
	// set a deadline on the context.
	DefaultFetchTimeout = 5 * time.Minute
)
