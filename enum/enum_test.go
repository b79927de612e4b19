/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want map[string]int
	}{
		{"sequential", []string{"A", "B", "C"}, map[string]int{"A": 0, "B": 1, "C": 2}},
		{"duplicate keeps last index", []string{"A", "A", "B"}, map[string]int{"A": 1, "B": 2}},
		{"duplicate later", []string{"A", "B", "A"}, map[string]int{"A": 2, "B": 1}},
		{"empty", nil, map[string]int{}},
		{
			"channels",
			[]string{"PS5000A_CHANNEL_A", "PS5000A_CHANNEL_B", "PS5000A_CHANNEL_C", "PS5000A_CHANNEL_D"},
			map[string]int{"PS5000A_CHANNEL_A": 0, "PS5000A_CHANNEL_B": 1, "PS5000A_CHANNEL_C": 2, "PS5000A_CHANNEL_D": 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.in...))
		})
	}
}

func TestBuild_DoesNotRetainInput(t *testing.T) {
	names := []string{"X", "Y"}
	m := Build(names...)
	names[0] = "Z"
	assert.Equal(t, map[string]int{"X": 0, "Y": 1}, m)
}
