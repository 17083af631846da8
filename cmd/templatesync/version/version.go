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

package version

import (
	"github.com/spf13/cobra"

	"kpt.dev/templatesync/cmd/templatesync/util"
	"kpt.dev/templatesync/pkg/version"
)

// Cmd is the Cobra object representing the templatesync version command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of templatesync",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, _ []string) {
		util.MustFprintf(cmd.OutOrStdout(), "%s\n", version.VERSION)
	},
}
