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

package compile

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	gitopsv1alpha1 "kpt.dev/templatesync/pkg/api/gitops/v1alpha1"
	"kpt.dev/templatesync/pkg/status"
)

// InvalidPatchErrorCode is the error code for a patch that names a missing
// resource or fails to apply.
const InvalidPatchErrorCode = "1066"

var invalidPatchErrorBuilder = status.NewErrorBuilder(InvalidPatchErrorCode)

// InvalidPatchError reports a patch that could not be applied to its target
// resource.
func InvalidPatchError(err error, target, path string) status.Error {
	return invalidPatchErrorBuilder.
		Sprintf("invalid patch for resource %q at %q", target, path).
		Wrap(err).Build()
}

// PatchTargetNotFoundError reports a patch whose target names no compiled
// resource.
func PatchTargetNotFoundError(target, path string) status.Error {
	return invalidPatchErrorBuilder.
		Sprintf("patch at %q targets resource %q, which was not compiled for this cluster", path, target).
		Build()
}

// rfc6902Op is one operation of a JSON-patch document.
type rfc6902Op struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// applyPatches rewrites the named resources in place. Each operation is
// applied to the JSON form of its target and the result decoded back,
// so a patch can edit any field of the compiled resource.
func applyPatches(result *gitopsv1alpha1.CompileResult, patches []gitopsv1alpha1.PatchOperation) status.Error {
	byName := make(map[string]int, len(result.Resources))
	for i := range result.Resources {
		byName[result.Resources[i].Name] = i
	}

	for _, op := range patches {
		idx, found := byName[op.Target]
		if !found {
			return PatchTargetNotFoundError(op.Target, op.Path)
		}
		patched, err := applyOp(&result.Resources[idx], op)
		if err != nil {
			return InvalidPatchError(err, op.Target, op.Path)
		}
		result.Resources[idx] = *patched
	}
	return nil
}

func applyOp(resource *gitopsv1alpha1.CompiledResource, op gitopsv1alpha1.PatchOperation) (*gitopsv1alpha1.CompiledResource, error) {
	doc, err := json.Marshal([]rfc6902Op{{Op: string(op.Op), Path: op.Path, Value: op.Value}})
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.DecodePatch(doc)
	if err != nil {
		return nil, err
	}

	original, err := json.Marshal(resource)
	if err != nil {
		return nil, err
	}
	modified, err := patch.Apply(original)
	if err != nil {
		return nil, err
	}

	patched := &gitopsv1alpha1.CompiledResource{}
	if err := json.Unmarshal(modified, patched); err != nil {
		return nil, err
	}
	return patched, nil
}
