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

package status

// SourceFetchErrorCode is the error code for a retryable transport failure
// while fetching a source.
const SourceFetchErrorCode = "2004"

// FetchTimeoutErrorCode is the error code for a fetch abandoned at its
// deadline.
const FetchTimeoutErrorCode = "2005"

// SourceNotFoundErrorCode is the error code for a source or version that
// does not exist at its origin. Not retryable; the user must fix the source
// reference.
const SourceNotFoundErrorCode = "1063"

// SourceAuthErrorCode is the error code for an authentication or
// authorization failure at the source origin. Not retryable.
const SourceAuthErrorCode = "1064"

// InvalidSourceVersionErrorCode is the error code for a source version
// string that fails semantic-version parsing.
const InvalidSourceVersionErrorCode = "1065"

var sourceFetchErrorBuilder = NewErrorBuilder(SourceFetchErrorCode)

var fetchTimeoutErrorBuilder = NewErrorBuilder(FetchTimeoutErrorCode)

var sourceNotFoundErrorBuilder = NewErrorBuilder(SourceNotFoundErrorCode)

var sourceAuthErrorBuilder = NewErrorBuilder(SourceAuthErrorCode)

var invalidSourceVersionErrorBuilder = NewErrorBuilder(InvalidSourceVersionErrorCode)

// SourceFetchError wraps a transport failure for the named source. The
// caller decides retry policy; the cache itself never retries silently.
func SourceFetchError(err error, sourceName, version string) Error {
	return sourceFetchErrorBuilder.
		Sprintf("failed to fetch source %q at version %q", sourceName, version).
		Wrap(err).Build()
}

// FetchTimeoutError reports a fetch of the named source abandoned because
// its deadline elapsed.
func FetchTimeoutError(err error, sourceName, version string) Error {
	return fetchTimeoutErrorBuilder.
		Sprintf("fetch of source %q at version %q timed out", sourceName, version).
		Wrap(err).Build()
}

// SourceNotFoundError reports that the named source version does not exist
// at its origin.
func SourceNotFoundError(sourceName, version string) Error {
	return sourceNotFoundErrorBuilder.
		Sprintf("source %q has no version %q at its origin; check the source's version field", sourceName, version).
		Build()
}

// SourceAuthError reports an authentication failure at the source origin.
func SourceAuthError(err error, sourceName string) Error {
	return sourceAuthErrorBuilder.
		Sprintf("not authorized to fetch source %q; check the configured credentials", sourceName).
		Wrap(err).Build()
}

// InvalidSourceVersionError reports a version string that looks like a
// semantic version but does not parse as one.
func InvalidSourceVersionError(err error, sourceName, version string) Error {
	return invalidSourceVersionErrorBuilder.
		Sprintf("source %q has malformed version %q", sourceName, version).
		Wrap(err).Build()
}

// retryableCodes are the codes of errors a caller may reasonably retry.
var retryableCodes = map[string]struct{}{
	SourceFetchErrorCode:  {},
	FetchTimeoutErrorCode: {},
	TransientErrorCode:    {},
}

// IsRetryable returns whether the error is a transient failure the caller
// may retry, as opposed to a terminal failure requiring a config change.
func IsRetryable(err Error) bool {
	if err == nil {
		return false
	}
	_, ok := retryableCodes[err.Code()]
	return ok
}
