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
	"context"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/tag"
)

// RecordFetchDuration produces a measurement for the FetchDuration view.
func RecordFetchDuration(ctx context.Context, sourceType, status string, startTime time.Time) {
	tagCtx, _ := tag.New(ctx,
		tag.Upsert(KeySourceType, sourceType),
		tag.Upsert(KeyStatus, status))
	measurement := FetchDuration.M(time.Since(startTime).Seconds())
	stats.Record(tagCtx, measurement)
}

// RecordCacheLookup produces a measurement for the CacheLookups view.
func RecordCacheLookup(ctx context.Context, sourceType, outcome string) {
	tagCtx, _ := tag.New(ctx,
		tag.Upsert(KeySourceType, sourceType),
		tag.Upsert(KeyOutcome, outcome))
	stats.Record(tagCtx, CacheLookups.M(1))
}

// RecordCompileDuration produces a measurement for the CompileDuration view.
func RecordCompileDuration(ctx context.Context, cluster, status string, startTime time.Time) {
	tagCtx, _ := tag.New(ctx,
		tag.Upsert(KeyCluster, cluster),
		tag.Upsert(KeyStatus, status))
	measurement := CompileDuration.M(time.Since(startTime).Seconds())
	stats.Record(tagCtx, measurement)
}

// RecordValidationErrors produces a measurement for the ValidationErrors
// view.
func RecordValidationErrors(ctx context.Context, cluster string, count int) {
	tagCtx, _ := tag.New(ctx, tag.Upsert(KeyCluster, cluster))
	stats.Record(tagCtx, ValidationErrors.M(int64(count)))
}

// RecordCompiledResources produces a measurement for the CompiledResources
// view.
func RecordCompiledResources(ctx context.Context, cluster string, count int) {
	tagCtx, _ := tag.New(ctx, tag.Upsert(KeyCluster, cluster))
	stats.Record(tagCtx, CompiledResources.M(int64(count)))
}

// RecordInternalError produces a measurement for the InternalErrors view.
func RecordInternalError(ctx context.Context, component string) {
	tagCtx, _ := tag.New(ctx, tag.Upsert(KeyComponent, component))
	stats.Record(tagCtx, InternalErrors.M(1))
}
