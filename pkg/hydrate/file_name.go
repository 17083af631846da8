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

package hydrate

import (
	"fmt"
	"path/filepath"
	"strings"

	gitopsv1alpha1 "kpt.dev/templatesync/pkg/api/gitops/v1alpha1"
)

// generateUniqueFileNames returns one relative output path per compiled
// resource, guaranteed unique. Resources are grouped into one directory per
// namespace; a name collision within a namespace is disambiguated with the
// resource's position in the compile order.
func generateUniqueFileNames(extension string, resources []gitopsv1alpha1.CompiledResource) []string {
	duplicates := make(map[string]int, len(resources))
	paths := make([]string, len(resources))
	for i := range resources {
		paths[i] = filename(extension, &resources[i], false, i)
		duplicates[paths[i]]++
	}
	for i := range resources {
		if duplicates[paths[i]] > 1 {
			paths[i] = filename(extension, &resources[i], true, i)
		}
	}
	return paths
}

func filename(extension string, resource *gitopsv1alpha1.CompiledResource, includeOrdinal bool, i int) string {
	name := resource.Name
	if includeOrdinal {
		name = fmt.Sprintf("%s_%d", name, i)
	}
	path := fmt.Sprintf("%s.%s", name, extension)
	if resource.Namespace != "" {
		path = filepath.Join(resource.Namespace, path)
	}
	return strings.ToLower(path)
}
