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
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	v1 "github.com/google/go-containerregistry/pkg/v1"
	"github.com/google/go-containerregistry/pkg/v1/mutate"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/google/go-containerregistry/pkg/v1/remote/transport"
	"k8s.io/klog/v2"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/status"
)

// OCIFetcher pulls a source packaged as an OCI image. The source URL names
// the repository; the version is used as the image tag.
type OCIFetcher struct {
	// Auth is the registry authenticator. Defaults to the ambient keychain.
	Auth authn.Authenticator
}

// Fetch pulls the image, merges its layers, and extracts the resulting tar
// stream under dir.
func (f *OCIFetcher) Fetch(ctx context.Context, source v1alpha1.SourceSpec, dir string) status.Error {
	imageName := imageRef(source)
	options := []remote.Option{remote.WithContext(ctx)}
	if f.Auth != nil {
		options = append(options, remote.WithAuth(f.Auth))
	} else {
		options = append(options, remote.WithAuthFromKeychain(authn.DefaultKeychain))
	}

	image, err := pullImage(imageName, options...)
	if err != nil {
		return classifyRegistryError(ctx, err, source)
	}

	imageDigestHash, err := image.Digest()
	if err != nil {
		return status.SourceFetchError(fmt.Errorf("failed to calculate image digest: %w", err), source.Name, source.Version)
	}
	klog.V(2).Infof("pulled image %q with digest %q", imageName, imageDigestHash)

	if err := extractImage(image, dir); err != nil {
		return status.SourceFetchError(fmt.Errorf("failed to extract image %q: %w", imageName, err), source.Name, source.Version)
	}
	return nil
}

// imageRef builds the full image reference from the source URL and version.
// A URL that already pins a tag or digest is used verbatim.
func imageRef(source v1alpha1.SourceSpec) string {
	url := strings.TrimPrefix(source.URL, "oci://")
	if strings.Contains(url, "@") || strings.Contains(refPath(url), ":") {
		return url
	}
	return url + ":" + source.Version
}

// refPath strips any registry port so the tag check above does not trip on it.
func refPath(url string) string {
	if i := strings.IndexRune(url, '/'); i >= 0 {
		return url[i:]
	}
	return url
}

// pullImage pulls the image from the registry using the provided options.
func pullImage(imageName string, options ...remote.Option) (v1.Image, error) {
	ref, err := name.ParseReference(imageName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reference %q: %w", imageName, err)
	}
	image, err := remote.Image(ref, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to pull image %s: %w", imageName, err)
	}
	return image, nil
}

// extractImage streams the image's merged layers as a single tar and writes
// the contents under dir.
func extractImage(image v1.Image, dir string) error {
	ioReader := mutate.Extract(image)
	defer func() {
		if err := ioReader.Close(); err != nil {
			klog.Warningf("failed to close image reader: %v", err)
		}
	}()
	return extractTar(ioReader, dir)
}

// classifyRegistryError maps registry transport failures onto terminal
// not-found and auth errors; everything else stays retryable.
func classifyRegistryError(ctx context.Context, err error, source v1alpha1.SourceSpec) status.Error {
	var terr *transport.Error
	if errors.As(err, &terr) {
		switch terr.StatusCode {
		case http.StatusNotFound:
			return status.SourceNotFoundError(source.Name, source.Version)
		case http.StatusUnauthorized, http.StatusForbidden:
			return status.SourceAuthError(err, source.Name)
		}
	}
	return timeoutOr(ctx, err, source)
}
