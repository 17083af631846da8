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

// Package parse reads cluster configs and template definitions from disk
// and resolves template sources through the local source cache.
package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"

	"kpt.dev/templatesync/pkg/api/templates"
	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/status"
)

// ConfigParseErrorCode is the error code for an unreadable or malformed
// config file.
const ConfigParseErrorCode = "1058"

// DuplicateTemplateErrorCode is the error code for two template definitions
// sharing a name.
const DuplicateTemplateErrorCode = "1059"

var configParseErrorBuilder = status.NewErrorBuilder(ConfigParseErrorCode)

var duplicateTemplateErrorBuilder = status.NewErrorBuilder(DuplicateTemplateErrorCode)

// ConfigParseError reports a config file that could not be read or decoded.
func ConfigParseError(err error, path string) status.Error {
	return configParseErrorBuilder.
		Sprintf("failed to parse %q", path).
		Wrap(err).Build()
}

// DuplicateTemplateError reports two definition files declaring the same
// template name.
func DuplicateTemplateError(name, firstPath, secondPath string) status.Error {
	return duplicateTemplateErrorBuilder.
		Sprintf("template %q is defined in both %q and %q; template names must be unique across loaded sources", name, firstPath, secondPath).
		Build()
}

// InvalidTemplateError reports a definition whose names cannot form unit
// identities.
func InvalidTemplateError(path, reason string) status.Error {
	return configParseErrorBuilder.
		Sprintf("invalid template definition %q: %s", path, reason).
		Build()
}

// ClusterConfig reads one cluster config from a YAML file.
func ClusterConfig(path string) (*v1alpha1.ClusterConfig, status.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ConfigParseError(err, path)
	}
	cluster := &v1alpha1.ClusterConfig{}
	if err := yaml.UnmarshalStrict(data, cluster); err != nil {
		return nil, ConfigParseError(err, path)
	}
	if cluster.Name == "" {
		return nil, InvalidTemplateError(path, "cluster config must set name")
	}
	return cluster, nil
}

// TemplateDefinitions reads every template definition under dir, keyed by
// template name. Each .yaml file holds one definition. Files are read in
// sorted order; all parse failures are reported together.
func TemplateDefinitions(dir string) (map[string]*v1alpha1.TemplateDefinition, status.MultiError) {
	paths, err := definitionFiles(dir)
	if err != nil {
		return nil, status.Append(nil, ConfigParseError(err, dir))
	}

	definitions := make(map[string]*v1alpha1.TemplateDefinition)
	sourcePaths := make(map[string]string)
	var errs status.MultiError
	for _, path := range paths {
		definition, err := templateDefinition(path)
		if err != nil {
			errs = status.Append(errs, err)
			continue
		}
		if firstPath, found := sourcePaths[definition.Name]; found {
			errs = status.Append(errs, DuplicateTemplateError(definition.Name, firstPath, path))
			continue
		}
		sourcePaths[definition.Name] = path
		definitions[definition.Name] = definition
	}
	if errs != nil {
		return nil, errs
	}
	return definitions, nil
}

func templateDefinition(path string) (*v1alpha1.TemplateDefinition, status.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ConfigParseError(err, path)
	}
	definition := &v1alpha1.TemplateDefinition{}
	if err := yaml.UnmarshalStrict(data, definition); err != nil {
		return nil, ConfigParseError(err, path)
	}
	if err := validateDefinition(path, definition); err != nil {
		return nil, err
	}
	return definition, nil
}

// validateDefinition rejects names that cannot form "template/unit"
// identities.
func validateDefinition(path string, definition *v1alpha1.TemplateDefinition) status.Error {
	if definition.Name == "" {
		return InvalidTemplateError(path, "template must set name")
	}
	if strings.Contains(definition.Name, templates.UnitIDSeparator) {
		return InvalidTemplateError(path, fmt.Sprintf("template name %q must not contain %q", definition.Name, templates.UnitIDSeparator))
	}
	unitNames := make(map[string]bool, len(definition.Units))
	for _, unit := range definition.Units {
		switch {
		case unit.Name == "":
			return InvalidTemplateError(path, "every unit must set name")
		case strings.Contains(unit.Name, templates.UnitIDSeparator):
			return InvalidTemplateError(path, fmt.Sprintf("unit name %q must not contain %q", unit.Name, templates.UnitIDSeparator))
		case unitNames[unit.Name]:
			return InvalidTemplateError(path, fmt.Sprintf("unit %q declared twice", unit.Name))
		}
		unitNames[unit.Name] = true
	}
	return nil
}

// definitionFiles lists the YAML files directly under dir, sorted. When dir
// has a templates/ subdirectory, definitions are read from there instead,
// matching the layout of materialized sources.
func definitionFiles(dir string) ([]string, error) {
	if info, err := os.Stat(filepath.Join(dir, "templates")); err == nil && info.IsDir() {
		dir = filepath.Join(dir, "templates")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
