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

package parse

import (
	"context"
	"errors"
	"fmt"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/cache"
	"kpt.dev/templatesync/pkg/status"
	"kpt.dev/templatesync/pkg/util"
)

// Sources materializes every source through the cache and loads the
// template definitions each one carries. Retryable fetch failures are
// retried with backoff; terminal failures and parse errors are accumulated
// so one bad source does not hide another.
func Sources(ctx context.Context, c *cache.Cache, sources []v1alpha1.SourceSpec) (map[string]*v1alpha1.TemplateDefinition, status.MultiError) {
	definitions := make(map[string]*v1alpha1.TemplateDefinition)
	owners := make(map[string]string)
	var errs status.MultiError

	for _, source := range sources {
		dir, err := fetchWithRetry(ctx, c, source)
		if err != nil {
			errs = status.Append(errs, err)
			continue
		}
		loaded, loadErrs := TemplateDefinitions(dir)
		if loadErrs != nil {
			errs = status.Append(errs, loadErrs)
			continue
		}
		for name, definition := range loaded {
			if owner, found := owners[name]; found {
				errs = status.Append(errs, DuplicateTemplateError(name, owner, source.Name))
				continue
			}
			owners[name] = source.Name
			if definition.Source == nil {
				definition.Source = source.DeepCopy()
			}
			definitions[name] = definition
		}
	}
	if errs != nil {
		return nil, errs
	}
	return definitions, nil
}

// fetchWithRetry materializes one source, retrying transport failures the
// cache marks retryable.
func fetchWithRetry(ctx context.Context, c *cache.Cache, source v1alpha1.SourceSpec) (string, status.Error) {
	var dir string
	err := util.RetryWithBackoff(util.FetchRetryBackoff, func() error {
		var fetchErr status.Error
		dir, fetchErr = c.GetOrFetch(ctx, source, "")
		if fetchErr == nil {
			return nil
		}
		if status.IsRetryable(fetchErr) {
			return util.NewRetriableError(fetchErr)
		}
		return fetchErr
	})
	if err == nil {
		return dir, nil
	}
	var statusErr status.Error
	if errors.As(err, &statusErr) {
		return "", statusErr
	}
	return "", status.UndocumentedError(fmt.Sprintf("fetching source %q: %v", source.Name, err))
}
