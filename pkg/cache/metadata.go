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

package cache

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// metadataFileName is the per-entry record written beside the materialized
// files. The leading dot keeps it out of template path lookups.
const metadataFileName = ".templatesync-metadata.yaml"

// entryMetadata records how and when a cache entry was materialized. An
// entry without a readable record is treated as absent.
type entryMetadata struct {
	SourceName string     `yaml:"source_name"`
	SourceType string     `yaml:"source_type"`
	Version    string     `yaml:"version"`
	FetchedAt  time.Time  `yaml:"fetched_at"`
	ExpiresAt  *time.Time `yaml:"expires_at,omitempty"`
	Checksum   string     `yaml:"checksum"`
}

func readMetadata(dir string) (*entryMetadata, error) {
	data, err := os.ReadFile(filepath.Join(dir, metadataFileName))
	if err != nil {
		return nil, err
	}
	meta := &entryMetadata{}
	if err := yaml.Unmarshal(data, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

func writeMetadata(dir string, meta *entryMetadata) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, metadataFileName), data, os.FileMode(0644))
}

// expired reports whether the entry's TTL has elapsed as of now.
func (m *entryMetadata) expired(now time.Time) bool {
	return m.ExpiresAt != nil && !now.Before(*m.ExpiresAt)
}
