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

// Package flags defines the flags shared by the templatesync subcommands.
package flags

import (
	"github.com/spf13/cobra"
)

const (
	// clusterFlag is the flag name for Cluster below.
	clusterFlag = "cluster"

	// pathFlag is the flag name for Path below.
	pathFlag = "path"

	// sourcesFlag is the flag name for Sources below.
	sourcesFlag = "sources"

	// cacheDirFlag is the flag name for CacheDir below.
	cacheDirFlag = "cache-dir"

	// rejectCyclesFlag is the flag name for RejectCycles below.
	rejectCyclesFlag = "reject-cycles"

	// DefaultCompileOutput is the default location to write compiled output.
	DefaultCompileOutput = "compiled"
)

var (
	// Cluster is the path to the cluster config file.
	Cluster string

	// Path is a local directory holding template definitions, read without
	// going through the source cache.
	Path string

	// Sources is the path to a sources file listing the remote sources to
	// load template definitions from.
	Sources string

	// CacheDir is the root of the local source cache.
	CacheDir string

	// RejectCycles makes dependency cycles a validation error.
	RejectCycles bool
)

// AddCluster adds the --cluster flag.
func AddCluster(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Cluster, clusterFlag, "",
		"Path to the cluster config to compile.")
	_ = cmd.MarkFlagRequired(clusterFlag)
}

// AddPath adds the --path flag.
func AddPath(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Path, pathFlag, "",
		"Local directory holding template definitions. Read directly, without the source cache.")
}

// AddSources adds the --sources flag.
func AddSources(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Sources, sourcesFlag, "",
		"Path to a sources file listing remote template sources to materialize.")
}

// AddCacheDir adds the --cache-dir flag.
func AddCacheDir(cmd *cobra.Command) {
	cmd.Flags().StringVar(&CacheDir, cacheDirFlag, "",
		"Root directory of the local source cache. Defaults to the user cache directory.")
}

// AddRejectCycles adds the --reject-cycles flag.
func AddRejectCycles(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&RejectCycles, rejectCyclesFlag, false,
		"If enabled, dependency cycles among enabled units are reported as errors.")
}
