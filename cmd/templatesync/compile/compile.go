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
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"kpt.dev/templatesync/cmd/templatesync/flags"
	"kpt.dev/templatesync/cmd/templatesync/util"
	gitopsv1alpha1 "kpt.dev/templatesync/pkg/api/gitops/v1alpha1"
	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/compile"
	"kpt.dev/templatesync/pkg/hydrate"
	"kpt.dev/templatesync/pkg/parse"
	"kpt.dev/templatesync/pkg/status"
)

var (
	flat         bool
	outPath      string
	outputFormat string
	patchFile    string
	repoName     string
	repoType     string
	repoURL      string
	repoVersion  string
)

func init() {
	flags.AddCluster(Cmd)
	flags.AddPath(Cmd)
	flags.AddSources(Cmd)
	flags.AddCacheDir(Cmd)
	flags.AddRejectCycles(Cmd)
	Cmd.Flags().BoolVar(&flat, "flat", false,
		`If enabled, write the whole result to a single file`)
	Cmd.Flags().StringVar(&outPath, "output", flags.DefaultCompileOutput,
		`Location to write the compiled output to.

If --flat is not enabled, writes one file per compiled resource, grouped
into a directory per namespace, plus the source repository descriptor when
one is compiled.

If --flat is enabled, writes a single file holding the whole result.`)
	Cmd.Flags().StringVar(&outputFormat, "format", hydrate.OutputYAML,
		`Output format. One of: yaml, json.`)
	Cmd.Flags().StringVar(&patchFile, "patch-file", "",
		`Path to a YAML file listing patches to apply to the compiled resources.`)
	Cmd.Flags().StringVar(&repoName, "repo-name", "",
		`Name of the cluster's shared source repository. Enables emitting the
source repository descriptor; the other --repo flags complete it.`)
	Cmd.Flags().StringVar(&repoType, "repo-type", string(v1alpha1.SourceTypeGit),
		`Transport of the shared source repository. One of: git, oci.`)
	Cmd.Flags().StringVar(&repoURL, "repo-url", "",
		`URL of the shared source repository.`)
	Cmd.Flags().StringVar(&repoVersion, "repo-version", "",
		`Ref, tag or digest the shared source repository is reconciled from.`)
}

// Cmd is the Cobra object representing the templatesync compile command.
var Cmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a cluster config into its GitOps delivery resources",
	Long: `Compile a cluster config into its GitOps delivery resources.

Resolves which units the cluster enables, validates their dependency graph,
resolves substitution values, and writes one delivery resource per enabled
unit. Output is deterministic: the same inputs produce byte-identical files.`,
	Example: `  templatesync compile --cluster=clusters/east.yaml --path=templates/
  templatesync compile --cluster=clusters/east.yaml --sources=sources.yaml --output=compiled/east`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Don't show usage on error, as argument validation passed.
		cmd.SilenceUsage = true
		return runCompile(cmd.Context(), cmd.OutOrStderr())
	},
}

func runCompile(ctx context.Context, out io.Writer) error {
	cluster, definitions, errs := util.LoadInputs(ctx)
	if errs != nil {
		util.PrintErrors(out, errs)
		return errors.New("encountered errors loading inputs")
	}

	opts := compile.Options{RejectCycles: flags.RejectCycles}
	if repoName != "" {
		opts.SourceRepo = &v1alpha1.SourceSpec{
			Name:    repoName,
			Type:    v1alpha1.SourceType(repoType),
			URL:     repoURL,
			Version: repoVersion,
		}
	}
	if patchFile != "" {
		patches, err := readPatchFile(patchFile)
		if err != nil {
			util.PrintErrors(out, status.Append(nil, err))
			return errors.New("encountered errors loading inputs")
		}
		opts.Patches = patches
	}

	result, errs := compile.Compile(ctx, cluster, definitions, opts)
	if errs != nil {
		util.PrintErrors(out, errs)
		return errors.New("encountered errors compiling")
	}

	if flat {
		return hydrate.PrintFlatOutput(outPath, outputFormat, result)
	}
	return hydrate.PrintDirectoryOutput(outPath, outputFormat, result)
}

// patchFileContent is the on-disk shape of --patch-file.
type patchFileContent struct {
	Patches []gitopsv1alpha1.PatchOperation `json:"patches"`
}

func readPatchFile(path string) ([]gitopsv1alpha1.PatchOperation, status.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, parse.ConfigParseError(err, path)
	}
	content := &patchFileContent{}
	if err := yaml.UnmarshalStrict(data, content); err != nil {
		return nil, parse.ConfigParseError(err, path)
	}
	return content.Patches, nil
}
