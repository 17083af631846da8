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

package metrics

import (
	"go.opencensus.io/tag"
)

var (
	// KeySourceType groups metrics by the source transport. Possible values:
	// git, http, oci.
	KeySourceType, _ = tag.NewKey("source_type")

	// KeyStatus groups metrics by their status. Possible values: success,
	// error.
	KeyStatus, _ = tag.NewKey("status")

	// KeyOutcome groups cache lookups by their outcome. Possible values:
	// hit, miss, expired.
	KeyOutcome, _ = tag.NewKey("outcome")

	// KeyComponent groups metrics by pipeline component. Possible values:
	// cache, enablement, substitution, validation, compile.
	KeyComponent, _ = tag.NewKey("component")

	// KeyCluster groups metrics by the cluster being compiled.
	KeyCluster, _ = tag.NewKey("cluster")
)

const (
	// StatusSuccess is the value of KeyStatus for successful operations.
	StatusSuccess = "success"
	// StatusError is the value of KeyStatus for failed operations.
	StatusError = "error"

	// LookupHit is the value of KeyOutcome for lookups served from a valid
	// cache entry.
	LookupHit = "hit"
	// LookupMiss is the value of KeyOutcome for lookups with no cache entry.
	LookupMiss = "miss"
	// LookupExpired is the value of KeyOutcome for lookups whose cache entry
	// had expired or failed its checksum.
	LookupExpired = "expired"
)

// StatusTagKey returns the string representation of the status tag for err.
func StatusTagKey(err error) string {
	if err == nil {
		return StatusSuccess
	}
	return StatusError
}
