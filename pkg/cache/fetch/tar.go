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
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"
)

// extractTar writes the contents of a tar stream under dir. Entries that
// would escape dir are rejected.
func extractTar(r io.Reader, dir string) error {
	tarReader := tar.NewReader(r)
	for {
		hdr, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		path, err := safeJoin(dir, hdr.Name)
		if err != nil {
			return err
		}
		switch {
		case hdr.FileInfo().IsDir():
			if err := os.MkdirAll(path, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		case hdr.Linkname != "":
			if err := os.Symlink(hdr.Linkname, path); err != nil {
				klog.Warning(err)
			}
		default:
			if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0755)); err != nil {
				return err
			}
			if err := writeFile(path, os.FileMode(hdr.Mode), tarReader); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFile(path string, mode os.FileMode, r io.Reader) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			klog.Warningf("failed to close file %q: %v", file.Name(), err)
		}
	}()
	_, err = io.Copy(file, r)
	return err
}

// safeJoin joins name under dir, rejecting path traversal out of dir.
func safeJoin(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if path != dir && !strings.HasPrefix(path, dir+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes the target directory", name)
	}
	return path, nil
}
