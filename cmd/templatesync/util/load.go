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

// Package util holds helpers shared by the templatesync subcommands.
package util

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"kpt.dev/templatesync/cmd/templatesync/flags"
	"kpt.dev/templatesync/pkg/api/templates"
	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/cache"
	"kpt.dev/templatesync/pkg/parse"
	"kpt.dev/templatesync/pkg/status"
)

// MustFprintf writes the formatted string to w, failing hard when the write
// fails.
func MustFprintf(w io.Writer, format string, a ...interface{}) {
	if _, err := fmt.Fprintf(w, format, a...); err != nil {
		panic(fmt.Sprintf("failed to write %q: %v", fmt.Sprintf(format, a...), err))
	}
}

// SourcesFile is the on-disk list of remote sources a compilation run
// loads template definitions from.
type SourcesFile struct {
	// Sources in load order.
	Sources []v1alpha1.SourceSpec `json:"sources"`
}

// LoadInputs reads the cluster config and assembles template definitions
// from the --path directory and every source in the --sources file.
func LoadInputs(ctx context.Context) (*v1alpha1.ClusterConfig, map[string]*v1alpha1.TemplateDefinition, status.MultiError) {
	cluster, err := parse.ClusterConfig(flags.Cluster)
	if err != nil {
		return nil, nil, status.Append(nil, err)
	}

	definitions := make(map[string]*v1alpha1.TemplateDefinition)
	var errs status.MultiError

	if flags.Path != "" {
		local, loadErrs := parse.TemplateDefinitions(flags.Path)
		if loadErrs != nil {
			errs = status.Append(errs, loadErrs)
		}
		for name, definition := range local {
			definitions[name] = definition
		}
	}

	if flags.Sources != "" {
		sources, err := readSourcesFile(flags.Sources)
		if err != nil {
			return nil, nil, status.Append(errs, err)
		}
		cacheDir, err := cacheDir()
		if err != nil {
			return nil, nil, status.Append(errs, err)
		}
		remote, loadErrs := parse.Sources(ctx, cache.New(cacheDir), sources.Sources)
		if loadErrs != nil {
			errs = status.Append(errs, loadErrs)
		}
		for name, definition := range remote {
			if _, found := definitions[name]; found {
				errs = status.Append(errs, parse.DuplicateTemplateError(name, flags.Path, flags.Sources))
				continue
			}
			definitions[name] = definition
		}
	}

	if errs != nil {
		return nil, nil, errs
	}
	return cluster, definitions, nil
}

func readSourcesFile(path string) (*SourcesFile, status.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, parse.ConfigParseError(err, path)
	}
	sources := &SourcesFile{}
	if err := yaml.UnmarshalStrict(data, sources); err != nil {
		return nil, parse.ConfigParseError(err, path)
	}
	return sources, nil
}

func cacheDir() (string, status.Error) {
	if flags.CacheDir != "" {
		return flags.CacheDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", status.InternalWrap(err)
	}
	return filepath.Join(base, templates.CLIName), nil
}

// PrintErrors writes every accumulated error to w, one per line.
func PrintErrors(w io.Writer, errs status.MultiError) {
	for _, err := range errs.Errors() {
		MustFprintf(w, "%s\n", err.Error())
	}
}
