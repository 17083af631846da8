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

package util

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestIsErrorRetriable(t *testing.T) {
	base := errors.New("connection reset")

	if !IsErrorRetriable(NewRetriableError(base)) {
		t.Error("got IsErrorRetriable() = false for a RetriableError")
	}
	if !IsErrorRetriable(fmt.Errorf("fetch: %w", NewRetriableError(base))) {
		t.Error("got IsErrorRetriable() = false for a wrapped RetriableError")
	}
	if IsErrorRetriable(base) {
		t.Error("got IsErrorRetriable() = true for a plain error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	backoff := BackoffWithDurationLimit(time.Second)
	backoff.Duration = time.Millisecond

	attempts := 0
	err := RetryWithBackoff(backoff, func() error {
		attempts++
		if attempts < 3 {
			return NewRetriableError(errors.New("transient"))
		}
		return nil
	})
	if err != nil {
		t.Errorf("got RetryWithBackoff() = %v, want nil", err)
	}
	if attempts != 3 {
		t.Errorf("got %d attempts, want 3", attempts)
	}
}

func TestRetryWithBackoffTerminal(t *testing.T) {
	backoff := BackoffWithDurationLimit(time.Second)
	backoff.Duration = time.Millisecond

	terminal := errors.New("not found")
	attempts := 0
	err := RetryWithBackoff(backoff, func() error {
		attempts++
		return terminal
	})
	if !errors.Is(err, terminal) {
		t.Errorf("got RetryWithBackoff() = %v, want %v", err, terminal)
	}
	if attempts != 1 {
		t.Errorf("got %d attempts, want 1 for a terminal error", attempts)
	}
}
