// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unixpatch

import (
	"errors"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name          string
		orig, unified string
		want          string
	}{
		{
			name:    "empty-diff",
			orig:    "unchanged\n",
			unified: "",
			want:    "unchanged\n",
		},
		{
			name:    "replace-line",
			orig:    "one\ntwo\nthree\n",
			unified: "@@ -1,3 +1,3 @@\n one\n-two\n+2\n three\n",
			want:    "one\n2\nthree\n",
		},
		{
			name:    "missing-newline",
			orig:    "first line",
			unified: "@@ -1,1 +1,1 @@\n-first line\n\\ No newline at end of file\n+first line\n",
			want:    "first line\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(t.Context(), tt.orig, tt.unified)
			if errors.Is(err, ErrNotInstalled) {
				t.Skip("patch is not installed")
			}
			if err != nil {
				t.Fatalf("Apply(...) failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply(...) = %q, want %q", got, tt.want)
			}
		})
	}
}
