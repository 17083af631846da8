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
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var distributionBounds = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

var (
	// FetchDurationView aggregates the FetchDuration metric measurements.
	FetchDurationView = &view.View{
		Name:        FetchDuration.Name(),
		Measure:     FetchDuration,
		Description: "The latency distribution of source fetches",
		TagKeys:     []tag.Key{KeySourceType, KeyStatus},
		Aggregation: view.Distribution(distributionBounds...),
	}

	// CacheLookupsView aggregates the CacheLookups metric measurements.
	CacheLookupsView = &view.View{
		Name:        CacheLookups.Name(),
		Measure:     CacheLookups,
		Description: "The number of source cache lookups by outcome",
		TagKeys:     []tag.Key{KeySourceType, KeyOutcome},
		Aggregation: view.Count(),
	}

	// CompileDurationView aggregates the CompileDuration metric measurements.
	CompileDurationView = &view.View{
		Name:        CompileDuration.Name(),
		Measure:     CompileDuration,
		Description: "The latency distribution of compilation runs",
		TagKeys:     []tag.Key{KeyCluster, KeyStatus},
		Aggregation: view.Distribution(distributionBounds...),
	}

	// ValidationErrorsView aggregates the ValidationErrors metric measurements.
	ValidationErrorsView = &view.View{
		Name:        ValidationErrors.Name(),
		Measure:     ValidationErrors,
		Description: "The current number of validation errors per cluster",
		TagKeys:     []tag.Key{KeyCluster},
		Aggregation: view.LastValue(),
	}

	// CompiledResourcesView aggregates the CompiledResources metric measurements.
	CompiledResourcesView = &view.View{
		Name:        CompiledResources.Name(),
		Measure:     CompiledResources,
		Description: "The current number of compiled resources per cluster",
		TagKeys:     []tag.Key{KeyCluster},
		Aggregation: view.LastValue(),
	}

	// InternalErrorsView aggregates the InternalErrors metric measurements.
	InternalErrorsView = &view.View{
		Name:        InternalErrors.Name(),
		Measure:     InternalErrors,
		Description: "The number of internal errors by component",
		TagKeys:     []tag.Key{KeyComponent},
		Aggregation: view.Count(),
	}
)

// RegisterPipelineMetricsViews registers the views so that recorded metrics
// can be exported.
func RegisterPipelineMetricsViews() error {
	return view.Register(
		FetchDurationView,
		CacheLookupsView,
		CompileDurationView,
		ValidationErrorsView,
		CompiledResourcesView,
		InternalErrorsView,
	)
}
