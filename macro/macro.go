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

package macro

import (
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Name is a canonical driver macro name such as "PICO_BUSY" or
// "PICO_CAL_DATE".
//
// It is a separate type so callers can tell validated names from raw user
// input. The registries themselves take plain strings and match them
// exactly; Name is how loosely typed input (CLI arguments, config values)
// is brought into that exact form first.
type Name string

// Prefix is shared by every PICO_STATUS and PICO_INFO macro.
const Prefix = "PICO_"

// MinLength and MaxLength bound the length of a canonical name.
const (
	// MinLength is the prefix plus one character, e.g. "PICO_X".
	MinLength = len(Prefix) + 1

	// MaxLength is the longest accepted name. The longest shipped macro,
	// PICO_NO_TRIGGER_ENABLED_FOR_TRIGGER_IN_PRE_TRIG, is 47 bytes.
	MaxLength = 64
)

const (
	// nameFmt is the canonical pattern for a macro name.
	//
	// Pattern breakdown:
	//
	//	^PICO_          - the shared prefix;
	//	[A-Z0-9_]{1,59} - uppercase ASCII letters, digits or underscore; the
	//	                  quantifier makes the total length 6..64 (5 + 1..59);
	//	$               - end of string.
	//
	// Examples that match:
	//
	//	"PICO_OK"
	//	"PICO_BUSY"
	//	"PICO_WS2_32_DLL_NOT_LOADED"
	//	"PICO_USB3_0_DEVICE_NON_USB3_0_PORT"
	//
	// Examples that DO NOT match:
	//
	//	"pico_busy"      (lowercase)
	//	"BUSY"           (missing prefix)
	//	"PICO_"          (prefix only)
	//	"PICO_NOT-FOUND" (dash)
	//	"PICO.BUSY"      (dot)
	//
	// The range {1,59} is tied to MinLength and MaxLength; change them
	// together.
	nameFmt = `^PICO_[A-Z0-9_]{1,59}$`
)

var (
	// nameRe is the compiled form of nameFmt.
	nameRe = regexp.MustCompile(nameFmt)
)

// ErrInvalid is returned when a value is not a canonical macro name, before
// or after normalisation.
var ErrInvalid = errors.New("picocodes: invalid macro name")

var (
	_ encoding.TextMarshaler   = Name("")
	_ encoding.TextUnmarshaler = (*Name)(nil)
)

// Parse normalises s and validates the result:
//
//	Parse("busy")           -> "PICO_BUSY"
//	Parse(" pico-cal-date") -> "PICO_CAL_DATE"
//	Parse("PICO_OK")        -> "PICO_OK"
//	Parse("pico.busy")      -> ErrInvalid
//	Parse("")               -> ErrInvalid
//
// A valid result is not necessarily registered; look it up to find out.
func Parse(s string) (Name, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return Name(s), nil
}

// MustParse is like Parse but panics on invalid input. It suits
// package-level declarations in bindings.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Normalize brings loosely typed input towards canonical form:
//
//   - trims surrounding spaces;
//   - uppercases;
//   - replaces '-' and ' ' with '_';
//   - adds the "PICO_" prefix when missing.
//
// The result is not guaranteed to be valid. Empty input stays empty.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	if !strings.HasPrefix(s, Prefix) {
		s = Prefix + s
	}
	return s
}

// Validate checks n without normalising it: Validate("PICO_BUSY") passes,
// Validate("busy") fails.
func Validate(n Name) error {
	return validate(string(n))
}

func (n Name) String() string { return string(n) }

// Short returns n without the "PICO_" prefix, e.g. "BUSY".
func (n Name) Short() string {
	return strings.TrimPrefix(string(n), Prefix)
}

// MarshalText implements encoding.TextMarshaler. Only canonical names
// marshal.
func (n Name) MarshalText() ([]byte, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Input is normalised.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func validate(s string) error {
	if !nameRe.MatchString(s) {
		return ErrInvalid
	}
	return nil
}
