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

package picocodes

import (
	"errors"
	"fmt"

	"dirpx.dev/picocodes/reason"
)

// Table names as they appear in the vendor headers.
const (
	TableStatus = "PICO_STATUS"
	TableInfo   = "PICO_INFO"
)

// Entry is a single (macro name, numeric value) pair of a registry.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Value uint32 `json:"value" yaml:"value"`
}

// Hex renders the value the way the vendor headers spell it.
func (e Entry) Hex() string { return Hex(e.Value) }

// Hex formats v as a zero-padded, 8-digit hexadecimal literal.
func Hex(v uint32) string { return fmt.Sprintf("0x%08X", v) }

// Kind tells which side of a lookup was unknown.
type Kind uint8

const (
	// ByValue: a numeric value had no registered name.
	ByValue Kind = iota + 1
	// ByName: a name had no registered value.
	ByName
)

func (k Kind) String() string {
	switch k {
	case ByValue:
		return "value"
	case ByName:
		return "macro"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ErrUnknownCode is matched by every *UnknownCodeError through errors.Is.
var ErrUnknownCode = errors.New("picocodes: unknown code")

// UnknownCodeError reports a lookup key that is not registered.
//
// Exactly one of Value or Name is meaningful, selected by Kind. The condition
// is permanent for that key: retrying the same lookup cannot succeed.
type UnknownCodeError struct {
	// Kind selects whether Value or Name holds the offending key.
	Kind Kind

	// Table is TableStatus or TableInfo.
	Table string

	// Value is the unknown numeric code when Kind == ByValue.
	Value uint32

	// Name is the unknown macro name when Kind == ByName.
	Name string
}

// UnknownValue builds the error for a value missing from table.
func UnknownValue(table string, v uint32) *UnknownCodeError {
	return &UnknownCodeError{Kind: ByValue, Table: table, Value: v}
}

// UnknownName builds the error for a name missing from table.
func UnknownName(table, name string) *UnknownCodeError {
	return &UnknownCodeError{Kind: ByName, Table: table, Name: name}
}

// Error implements the error interface.
//
// The format is
//
//	0xFFFFFFFF is not a known PICO_STATUS value
//	PICO_NOPE is not a known PICO_STATUS macro
func (e *UnknownCodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s is not a known %s %s", e.Key(), e.Table, e.Kind)
}

// Is makes errors.Is(err, ErrUnknownCode) succeed.
func (e *UnknownCodeError) Is(target error) bool {
	return target == ErrUnknownCode
}

// Key returns the offending key as text: the hex literal for ByValue, the
// name (quoted when empty) for ByName.
func (e *UnknownCodeError) Key() string {
	if e.Kind == ByValue {
		return Hex(e.Value)
	}
	if e.Name == "" {
		return `""`
	}
	return e.Name
}

// Reason returns the machine-readable cause of e.
func (e *UnknownCodeError) Reason() reason.Reason {
	switch {
	case e.Table == TableStatus && e.Kind == ByValue:
		return reason.StatusValueUnknown
	case e.Table == TableStatus && e.Kind == ByName:
		return reason.StatusNameUnknown
	case e.Table == TableInfo && e.Kind == ByName:
		return reason.InfoNameUnknown
	default:
		return reason.Empty
	}
}

// ErrorReason implements apis.ReasonedError.
func (e *UnknownCodeError) ErrorReason() string { return string(e.Reason()) }

// ErrorDetails returns the key as flat string pairs, suitable for log
// attributes and wire metadata. It implements apis.DetailedError.
func (e *UnknownCodeError) ErrorDetails() map[string]string {
	m := map[string]string{
		"table": e.Table,
		"kind":  e.Kind.String(),
	}
	if e.Kind == ByValue {
		m["value"] = Hex(e.Value)
	} else {
		m["name"] = e.Name
	}
	return m
}

// AsUnknownCode unwraps err to an *UnknownCodeError, if it holds one.
func AsUnknownCode(err error) (*UnknownCodeError, bool) {
	var uc *UnknownCodeError
	if errors.As(err, &uc) {
		return uc, true
	}
	return nil, false
}
