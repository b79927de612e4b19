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
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical", "PICO_BUSY", "PICO_BUSY"},
		{"trim and upper", "  pico_busy ", "PICO_BUSY"},
		{"adds prefix", "busy", "PICO_BUSY"},
		{"dash", "pico-not-found", "PICO_NOT_FOUND"},
		{"space", "cal date", "PICO_CAL_DATE"},
		{"empty", "", ""},
		{"blank", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Name
	}{
		{"PICO_OK", "PICO_OK"},
		{"ok", "PICO_OK"},
		{"ws2_32_dll_not_loaded", "PICO_WS2_32_DLL_NOT_LOADED"},
		{"PICO_USB3_0_DEVICE_NON_USB3_0_PORT", "PICO_USB3_0_DEVICE_NON_USB3_0_PORT"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"prefix only", "PICO_"},
		{"punctuation", "PICO_BUSY!"},
		{"dot", "pico.busy"},
		{"too long", strings.Repeat("X", MaxLength)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != ErrInvalid {
				t.Fatalf("Parse(%q) = %q, %v; want ErrInvalid", tt.in, got, err)
			}
			if got != "" {
				t.Fatalf("Parse(%q) on error must return empty name, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate_RejectsNonCanonical(t *testing.T) {
	for _, n := range []Name{"pico_busy", "BUSY", "PICO_", "PICO_NOT-FOUND", "PICO.BUSY"} {
		if err := Validate(n); err != ErrInvalid {
			t.Fatalf("Validate(%q) = %v, want ErrInvalid", n, err)
		}
	}
	if err := Validate("PICO_NO_TRIGGER_ENABLED_FOR_TRIGGER_IN_PRE_TRIG"); err != nil {
		t.Fatalf("longest shipped name rejected: %v", err)
	}
}

func TestValidate_DoesNotNormalize(t *testing.T) {
	if err := Validate("PICO_BUSY"); err != nil {
		t.Fatalf("Validate(PICO_BUSY) unexpected error: %v", err)
	}
	for _, n := range []Name{"pico_busy", "BUSY", "PICO_busy", ""} {
		if err := Validate(n); err == nil {
			t.Fatalf("Validate(%q) expected error", n)
		}
	}
}

func TestLengthBounds(t *testing.T) {
	longest := Name(Prefix + strings.Repeat("A", MaxLength-len(Prefix)))
	if err := Validate(longest); err != nil {
		t.Fatalf("Validate(len=%d) unexpected error: %v", len(longest), err)
	}
	if err := Validate(longest + "A"); err == nil {
		t.Fatalf("Validate(len=%d) expected error", len(longest)+1)
	}
	shortest := Name(Prefix + "A")
	if len(shortest) != MinLength {
		t.Fatalf("MinLength = %d, shortest valid name has %d", MinLength, len(shortest))
	}
	if err := Validate(shortest); err != nil {
		t.Fatalf("Validate(%q) unexpected error: %v", shortest, err)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("??")
}

func TestName_Short(t *testing.T) {
	if got := Name("PICO_CAL_DATE").Short(); got != "CAL_DATE" {
		t.Fatalf("Short() = %q, want %q", got, "CAL_DATE")
	}
}

func TestName_Text(t *testing.T) {
	var _ encoding.TextMarshaler = Name("")
	var _ encoding.TextUnmarshaler = (*Name)(nil)

	var n Name
	if err := n.UnmarshalText([]byte(" busy ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if n != "PICO_BUSY" {
		t.Fatalf("UnmarshalText() = %q, want PICO_BUSY", n)
	}
	if _, err := Name("busy").MarshalText(); err == nil {
		t.Fatalf("MarshalText() on non-canonical name must fail")
	}
}
