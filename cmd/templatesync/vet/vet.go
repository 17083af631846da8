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

package vet

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"kpt.dev/templatesync/cmd/templatesync/flags"
	"kpt.dev/templatesync/cmd/templatesync/util"
	"kpt.dev/templatesync/pkg/enablement"
	"kpt.dev/templatesync/pkg/status"
	"kpt.dev/templatesync/pkg/validate"
)

func init() {
	flags.AddCluster(Cmd)
	flags.AddPath(Cmd)
	flags.AddSources(Cmd)
	flags.AddCacheDir(Cmd)
	flags.AddRejectCycles(Cmd)
}

// Cmd is the Cobra object representing the templatesync vet command.
var Cmd = &cobra.Command{
	Use:   "vet",
	Short: "Validate a cluster config against its template definitions",
	Long: `Validate a cluster config against its template definitions.
Checks that every enabled template is defined and that every unit dependency
resolves to an enabled unit. Prints found errors to STDERR and returns a
non-zero error code if any issues are found.
`,
	Example: `  templatesync vet --cluster=clusters/east.yaml --path=templates/
  templatesync vet --cluster=clusters/east.yaml --sources=sources.yaml`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Don't show usage on error, as argument validation passed.
		cmd.SilenceUsage = true
		return runVet(cmd.Context(), cmd.OutOrStderr())
	},
}

func runVet(ctx context.Context, out io.Writer) error {
	cluster, definitions, errs := util.LoadInputs(ctx)
	if errs == nil {
		enabled, enableErrs := enablement.ResolveEnabled(cluster, definitions)
		errs = status.Append(enableErrs,
			validate.Validate(enabled, definitions, validate.Options{RejectCycles: flags.RejectCycles}))
	}
	if errs != nil {
		util.PrintErrors(out, errs)
		return errors.New("vet found errors")
	}
	return nil
}
