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

import "go.opencensus.io/stats"

var (
	// FetchDuration metric measures the latency of source fetches.
	FetchDuration = stats.Float64(
		"fetch_duration_seconds",
		"The duration of source fetches in seconds",
		stats.UnitSeconds)

	// CacheLookups metric measures the number of cache lookups, tagged by
	// outcome (hit, miss, expired).
	CacheLookups = stats.Int64(
		"cache_lookups",
		"The number of source cache lookups",
		stats.UnitDimensionless)

	// CompileDuration metric measures the latency of compilation runs.
	CompileDuration = stats.Float64(
		"compile_duration_seconds",
		"The duration of compilation runs in seconds",
		stats.UnitSeconds)

	// ValidationErrors metric measures the number of validation errors found
	// in a compilation run.
	ValidationErrors = stats.Int64(
		"validation_errors",
		"The number of validation errors found in a compilation run",
		stats.UnitDimensionless)

	// CompiledResources metric measures the number of resources emitted by a
	// compilation run.
	CompiledResources = stats.Int64(
		"compiled_resources",
		"The number of resources emitted by a compilation run",
		stats.UnitDimensionless)

	// InternalErrors metric measures the number of unexpected internal errors
	// triggered by defensive checks.
	InternalErrors = stats.Int64(
		"internal_errors",
		"The number of internal errors triggered by defensive checks",
		stats.UnitDimensionless)
)
