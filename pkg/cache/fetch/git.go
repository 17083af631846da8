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

package fetch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/status"
)

// GitFetcher clones a source from a git remote. The version names a tag,
// branch, or commit.
type GitFetcher struct{}

// Fetch shallow-clones the source at its version into dir and strips the
// .git directory so only the materialized files remain.
func (f *GitFetcher) Fetch(ctx context.Context, source v1alpha1.SourceSpec, dir string) status.Error {
	out, err := runGit(ctx, "", "clone", "--depth", "1", "--branch", source.Version, "--", source.URL, dir)
	if err != nil {
		if !refNotFound(out) {
			return classifyGitError(ctx, err, out, source)
		}
		// The version is not a branch or tag; a commit needs a full clone.
		if out, err = runGit(ctx, "", "clone", "--", source.URL, dir); err != nil {
			return classifyGitError(ctx, err, out, source)
		}
		if out, err = runGit(ctx, dir, "checkout", "--detach", source.Version, "--"); err != nil {
			if refNotFound(out) {
				return status.SourceNotFoundError(source.Name, source.Version)
			}
			return classifyGitError(ctx, err, out, source)
		}
	}

	if err := os.RemoveAll(filepath.Join(dir, ".git")); err != nil {
		return status.SourceFetchError(err, source.Name, source.Version)
	}
	return nil
}

// runGit runs a git subcommand in workDir and returns its combined output.
func runGit(ctx context.Context, workDir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = workDir
	// Never fall back to an interactive credential prompt.
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		klog.V(4).Infof("git %s: %v: %s", strings.Join(args, " "), err, out)
		return string(out), fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(out), nil
}

func refNotFound(out string) bool {
	return strings.Contains(out, "Remote branch") && strings.Contains(out, "not found") ||
		strings.Contains(out, "couldn't find remote ref") ||
		strings.Contains(out, "did not match any file(s) known to git") ||
		strings.Contains(out, "reference is not a tree")
}

// classifyGitError maps git failures onto terminal not-found and auth
// errors; everything else stays retryable.
func classifyGitError(ctx context.Context, err error, out string, source v1alpha1.SourceSpec) status.Error {
	switch {
	case strings.Contains(out, "Repository not found") ||
		strings.Contains(out, "not found") && strings.Contains(out, "repository"):
		return status.SourceNotFoundError(source.Name, source.Version)
	case strings.Contains(out, "Authentication failed") ||
		strings.Contains(out, "Permission denied") ||
		strings.Contains(out, "could not read Username"):
		return status.SourceAuthError(fmt.Errorf("%w: %s", err, out), source.Name)
	}
	return timeoutOr(ctx, fmt.Errorf("%w: %s", err, out), source)
}
