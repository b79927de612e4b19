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

package info

import (
	"sort"

	"dirpx.dev/picocodes"
)

// Value returns the selector registered for the exact macro name.
// It fails with *picocodes.UnknownCodeError when name is not registered.
func Value(name string) (uint32, error) {
	v, ok := byName[name]
	if !ok {
		return 0, picocodes.UnknownName(picocodes.TableInfo, name)
	}
	return v, nil
}

// MustValue is like Value but panics on an unknown name.
func MustValue(name string) uint32 {
	v, err := Value(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of registered info selectors.
func Len() int { return len(byName) }

// Entries returns a fresh copy of the table ordered by value.
func Entries() []picocodes.Entry {
	out := make([]picocodes.Entry, 0, len(byName))
	for name, v := range byName {
		out = append(out, picocodes.Entry{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
