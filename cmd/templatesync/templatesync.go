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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"kpt.dev/templatesync/cmd/templatesync/compile"
	"kpt.dev/templatesync/cmd/templatesync/version"
	"kpt.dev/templatesync/cmd/templatesync/vet"
	"kpt.dev/templatesync/pkg/api/templates"
	pkgversion "kpt.dev/templatesync/pkg/version"
)

const (
	// versionTemplate is the template used when "templatesync --version" is
	// invoked. The default template outputs "templatesync version <VERSION>".
	// This just outputs "<VERSION>" for easier programmatic use.
	versionTemplate = `{{.Version}}
`
)

var rootCmd = &cobra.Command{
	Use:     templates.CLIName,
	Version: pkgversion.VERSION,
	Short: fmt.Sprintf(
		"Compile cluster template configs into GitOps delivery resources (version %v)", pkgversion.VERSION),
}

func init() {
	rootCmd.SetVersionTemplate(versionTemplate)
	rootCmd.AddCommand(vet.Cmd)
	rootCmd.AddCommand(compile.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func main() {
	// Use the default flag set, because some libs register flags with init.
	fs := flag.CommandLine

	// Register klog flags
	klog.InitFlags(fs)

	// Cobra uses the pflag lib, instead of the go flag lib.
	// So re-register all go flags as global (aka persistent) pflags.
	rootCmd.PersistentFlags().AddGoFlagSet(fs)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
