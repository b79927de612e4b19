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

package status

import (
	"fmt"
	"sort"

	"dirpx.dev/picocodes"
)

// Code is a raw PICO_STATUS value as returned by a driver call.
type Code uint32

// OK is PICO_OK, the value every successful driver call returns.
const OK Code = 0x00000000

var (
	byName  = indexByName(table)
	byValue = indexByValue(table)
)

func indexByName(entries []picocodes.Entry) map[string]uint32 {
	m := make(map[string]uint32, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Value
	}
	return m
}

// indexByValue walks entries in order, so when two names share a value the
// later one wins.
func indexByValue(entries []picocodes.Entry) map[uint32]string {
	m := make(map[uint32]string, len(entries))
	for _, e := range entries {
		m[e.Value] = e.Name
	}
	return m
}

// Name returns the macro name registered for v.
// It fails with *picocodes.UnknownCodeError when v is not registered.
func Name(v uint32) (string, error) {
	name, ok := byValue[v]
	if !ok {
		return "", picocodes.UnknownValue(picocodes.TableStatus, v)
	}
	return name, nil
}

// Value returns the numeric value registered for the exact macro name.
// It fails with *picocodes.UnknownCodeError when name is not registered.
func Value(name string) (uint32, error) {
	v, ok := byName[name]
	if !ok {
		return 0, picocodes.UnknownName(picocodes.TableStatus, name)
	}
	return v, nil
}

// MustValue is like Value but panics on an unknown name. It is meant for
// package-level declarations in driver bindings.
func MustValue(name string) uint32 {
	v, err := Value(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of registered status codes.
func Len() int { return len(byName) }

// Entries returns a fresh copy of the table ordered by value.
func Entries() []picocodes.Entry {
	out := make([]picocodes.Entry, len(table))
	copy(out, table)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// IsOK reports whether c is PICO_OK.
func (c Code) IsOK() bool { return c == OK }

// Name is the method form of the package-level Name.
func (c Code) Name() (string, error) { return Name(uint32(c)) }

// String returns the macro name, or UNKNOWN(0x...) for unregistered values,
// so raw driver returns can go straight into log lines.
func (c Code) String() string {
	if name, ok := byValue[uint32(c)]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%s)", picocodes.Hex(uint32(c)))
}

// Err converts c into an error: nil for PICO_OK, otherwise an *Error
// carrying the code. Unregistered codes still produce an *Error; use Name
// to tell them apart.
func (c Code) Err() error {
	if c.IsOK() {
		return nil
	}
	return &Error{Code: c}
}

// Error is a non-OK status returned by a driver call.
type Error struct {
	Code Code
}

func (e *Error) Error() string {
	return fmt.Sprintf("pico status %s (%s)", e.Code, picocodes.Hex(uint32(e.Code)))
}
