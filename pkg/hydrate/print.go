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

// Package hydrate writes compiled output to disk in a form a GitOps writer
// can commit directly: one file per compiled resource, or a single flat
// file holding the whole result.
package hydrate

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	gitopsv1alpha1 "kpt.dev/templatesync/pkg/api/gitops/v1alpha1"
)

const (
	// OutputYAML specifies exporting the output in YAML format.
	OutputYAML = "yaml"

	// OutputJSON specifies exporting the output in JSON format.
	OutputJSON = "json"

	// sourceRepositoryFileName is the directory-output file holding the
	// cluster's shared source repository descriptor.
	sourceRepositoryFileName = "source-repository"
)

// PrintFlatOutput writes the whole compile result to a single file.
func PrintFlatOutput(output, extension string, result *gitopsv1alpha1.CompileResult) error {
	content, err := marshal(result, extension)
	if err != nil {
		return errors.Wrap(err, "failed to serialize compile result")
	}
	return printFile(output, content)
}

// PrintDirectoryOutput writes each compiled resource to its own file under
// the output directory, plus the source repository descriptor when one was
// compiled. File order and names depend only on the compile result.
func PrintDirectoryOutput(output, extension string, result *gitopsv1alpha1.CompileResult) error {
	paths := generateUniqueFileNames(extension, result.Resources)
	for i := range result.Resources {
		content, err := marshal(&result.Resources[i], extension)
		if err != nil {
			return errors.Wrapf(err, "failed to serialize resource %q", result.Resources[i].Name)
		}
		if err := printFile(filepath.Join(output, paths[i]), content); err != nil {
			return errors.Wrap(err, "failed to print file")
		}
	}
	if result.SourceRepository != nil {
		content, err := marshal(result.SourceRepository, extension)
		if err != nil {
			return errors.Wrap(err, "failed to serialize source repository")
		}
		name := sourceRepositoryFileName + "." + extension
		if err := printFile(filepath.Join(output, name), content); err != nil {
			return errors.Wrap(err, "failed to print file")
		}
	}
	return nil
}

func marshal(obj interface{}, extension string) ([]byte, error) {
	switch extension {
	case OutputJSON:
		return json.MarshalIndent(obj, "", "\t")
	default:
		return yaml.Marshal(obj)
	}
}

// printFile writes content to file, creating parent directories as needed.
func printFile(file string, content []byte) (err error) {
	if err = os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return err
	}

	outFile, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		err2 := outFile.Close()
		if err2 != nil && err == nil {
			// Assign the named parameter since there's no other way to ensure we
			// get the error from the deferred Close.
			err = err2
		}
	}()

	_, err = outFile.Write(content)
	return err
}
