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

package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMakeUnitID(t *testing.T) {
	testCases := []struct {
		name       string
		template   string
		unit       string
		wantString string
	}{
		{
			name:       "simple pair",
			template:   "web",
			unit:       "app",
			wantString: "web/app",
		},
		{
			name:       "hyphenated names",
			template:   "cert-manager",
			unit:       "cert-manager-issuers",
			wantString: "cert-manager/cert-manager-issuers",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id := MakeUnitID(tc.template, tc.unit)
			if got := id.String(); got != tc.wantString {
				t.Errorf("got MakeUnitID(%q, %q).String() = %q, want %q",
					tc.template, tc.unit, got, tc.wantString)
			}
		})
	}
}

// Distinct (template, unit) pairs must never map to the same UnitID, even
// when their concatenations collide as raw strings would.
func TestMakeUnitIDInjective(t *testing.T) {
	pairs := [][2]string{
		{"web", "app"},
		{"web", "app-db"},
		{"web-app", "db"},
		{"auth", "app"},
	}

	seen := make(map[UnitID][2]string)
	for _, p := range pairs {
		id := MakeUnitID(p[0], p[1])
		if prev, found := seen[id]; found {
			t.Errorf("pairs %v and %v map to the same UnitID %v", prev, p, id)
		}
		seen[id] = p
	}
}

func TestParseDependency(t *testing.T) {
	testCases := []struct {
		name           string
		ref            string
		owningTemplate string
		want           UnitID
	}{
		{
			name:           "local reference qualified with owning template",
			ref:            "db",
			owningTemplate: "web",
			want:           UnitID{Template: "web", Unit: "db"},
		},
		{
			name:           "qualified reference used verbatim",
			ref:            "auth/login",
			owningTemplate: "web",
			want:           UnitID{Template: "auth", Unit: "login"},
		},
		{
			name:           "qualified reference to own template",
			ref:            "web/db",
			owningTemplate: "web",
			want:           UnitID{Template: "web", Unit: "db"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDependency(tc.ref, tc.owningTemplate)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseDependency(%q, %q) diff (-want +got):\n%s",
					tc.ref, tc.owningTemplate, diff)
			}
		})
	}
}

// make_id must round-trip through parse_dependency for both the local and
// the qualified reference form.
func TestUnitIDRoundTrip(t *testing.T) {
	id := MakeUnitID("web", "app")

	if got := ParseDependency(id.String(), "other"); got != id {
		t.Errorf("got ParseDependency(%q, %q) = %v, want %v", id.String(), "other", got, id)
	}
	if got := ParseDependency(id.Unit, id.Template); got != id {
		t.Errorf("got ParseDependency(%q, %q) = %v, want %v", id.Unit, id.Template, got, id)
	}
}

func TestUnitIDs(t *testing.T) {
	ids := []UnitID{
		MakeUnitID("web", "db"),
		MakeUnitID("auth", "login"),
		MakeUnitID("web", "app"),
	}
	want := []string{"auth/login", "web/app", "web/db"}
	if diff := cmp.Diff(want, UnitIDs(ids)); diff != "" {
		t.Errorf("UnitIDs() diff (-want +got):\n%s", diff)
	}
}
