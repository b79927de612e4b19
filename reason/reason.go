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

package reason

import (
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is a validated, machine-readable failure reason.
//
// Reasons are dot-separated identifiers of two to four segments. The first
// segment names the registry that failed (see Table); the rest name what was
// looked up and how it went wrong.
//
// Example valid reasons:
//
//   - "status.value.unknown"
//   - "status.name.unknown"
//   - "info.name.unknown"
//   - "driver.call.failed"
//
// Transports put the reason on the wire (ErrorInfo.Reason, JSON "reason"),
// and package mapper resolves HTTP and gRPC statuses from it.
type Reason string

// MinLength and MaxLength bound the length of a non-empty reason.
const (
	// MinLength is the shortest accepted reason: two one-letter segments
	// and a dot, as in "a.b".
	MinLength = 3

	// MaxLength is the longest accepted reason. 96 bytes covers four
	// descriptive segments and keeps reasons readable as log keys.
	MaxLength = 96
)

const (
	// reasonFmt is the canonical pattern for a reason.
	//
	// It accepts 2 to 4 dot-separated segments, each of which:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits or underscore [a-z0-9_]*
	//
	// Examples that match:
	//
	//	"status.value.unknown"
	//	"info.name.unknown"
	//	"status.value"
	//	"driver.usb3.call.failed"
	//
	// Examples that DO NOT match:
	//
	//	"status"                 (single segment)
	//	"Status.value.unknown"   (uppercase)
	//	"status..unknown"        (empty segment)
	//	"status/value/unknown"   (slash)
	//	"2status.value"          (digit first)
	//	"a.b.c.d.e"              (five segments)
	//
	// The empty string is handled separately as "no reason" and never
	// reaches this pattern.
	reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){1,3}$`
)

var (
	// reasonRe is the compiled form of reasonFmt.
	reasonRe = regexp.MustCompile(reasonFmt)
)

var (
	// ErrInvalidFormat is returned when a reason does not match reasonFmt.
	ErrInvalidFormat = errors.New("picocodes: invalid reason format")
	// ErrInvalidLength is returned when a reason is shorter than MinLength
	// or longer than MaxLength.
	ErrInvalidLength = errors.New("picocodes: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = Reason("")
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the zero reason. It means "no reason" and is valid; callers that
// need a non-empty reason check for it explicitly.
const Empty Reason = ""

// Reasons produced by the registries. Each one is the ErrorReason of an
// *picocodes.UnknownCodeError.
const (
	// StatusValueUnknown: a raw status value has no PICO_STATUS macro,
	// e.g. status.Name(0xFFFFFFFF).
	StatusValueUnknown Reason = "status.value.unknown"

	// StatusNameUnknown: a name is not a registered PICO_STATUS macro,
	// e.g. status.Value("PICO_NOT_A_REAL_CODE") or status.Value("pico_ok").
	StatusNameUnknown Reason = "status.name.unknown"

	// InfoNameUnknown: a name is not a registered PICO_INFO macro,
	// e.g. info.Value("PICO_OK").
	InfoNameUnknown Reason = "info.name.unknown"
)

// Known lists every reason the registries can produce, in declaration order.
func Known() []Reason {
	return []Reason{StatusValueUnknown, StatusNameUnknown, InfoNameUnknown}
}

// Parse trims and lowercases s, then validates it:
//
//	Parse(" Status.Value.Unknown ") -> StatusValueUnknown
//	Parse("")                      -> Empty, nil
//	Parse("status")                -> ErrInvalidFormat
//	Parse("a")                     -> ErrInvalidLength
func Parse(s string) (Reason, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is like Parse but panics on invalid input. Unlike Parse it
// also panics on the empty string.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("picocodes: empty reason in MustParse")
	}
	return r
}

// Validate reports whether r is in canonical form without normalising it,
// so "Status.value.unknown" fails here even though Parse accepts it.
// Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Table returns the first segment of r ("status" or "info" for the known
// reasons), or "" for Empty.
func (r Reason) Table() string {
	s := string(r)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

func (r Reason) String() string { return string(r) }

// MarshalText implements encoding.TextMarshaler. Empty marshals to an
// empty slice.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text goes through
// Parse, so it is normalised before validation.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// validate checks length first so oversized input never reaches the regexp.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
