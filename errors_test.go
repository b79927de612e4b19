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
	"testing"

	"dirpx.dev/picocodes/reason"
)

func TestUnknownCodeError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *UnknownCodeError
		want string
	}{
		{"status value", UnknownValue(TableStatus, 0xFFFFFFFF), "0xFFFFFFFF is not a known PICO_STATUS value"},
		{"status value small", UnknownValue(TableStatus, 0x3E), "0x0000003E is not a known PICO_STATUS value"},
		{"status name", UnknownName(TableStatus, "PICO_NOT_A_REAL_CODE"), "PICO_NOT_A_REAL_CODE is not a known PICO_STATUS macro"},
		{"info name", UnknownName(TableInfo, "PICO_NOPE"), "PICO_NOPE is not a known PICO_INFO macro"},
		{"empty name", UnknownName(TableInfo, ""), `"" is not a known PICO_INFO macro`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnknownCodeError_NilError(t *testing.T) {
	var e *UnknownCodeError
	if got := e.Error(); got != "<nil>" {
		t.Fatalf("nil Error() = %q", got)
	}
}

func TestUnknownCodeError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("ps5000aRunBlock: %w", UnknownValue(TableStatus, 0x1234))

	if !errors.Is(wrapped, ErrUnknownCode) {
		t.Fatal("errors.Is(ErrUnknownCode) failed through wrapping")
	}
	uc, ok := AsUnknownCode(wrapped)
	if !ok {
		t.Fatal("AsUnknownCode failed through wrapping")
	}
	if uc.Kind != ByValue || uc.Value != 0x1234 || uc.Table != TableStatus {
		t.Fatalf("unexpected error contents: %+v", uc)
	}

	if _, ok := AsUnknownCode(errors.New("other")); ok {
		t.Fatal("AsUnknownCode matched a foreign error")
	}
	if errors.Is(errors.New("other"), ErrUnknownCode) {
		t.Fatal("foreign error matched ErrUnknownCode")
	}
}

func TestUnknownCodeError_Reason(t *testing.T) {
	tests := []struct {
		err  *UnknownCodeError
		want reason.Reason
	}{
		{UnknownValue(TableStatus, 1), reason.StatusValueUnknown},
		{UnknownName(TableStatus, "X"), reason.StatusNameUnknown},
		{UnknownName(TableInfo, "X"), reason.InfoNameUnknown},
		{UnknownValue(TableInfo, 1), reason.Empty},
	}
	for _, tt := range tests {
		if got := tt.err.Reason(); got != tt.want {
			t.Fatalf("%v.Reason() = %q, want %q", tt.err, got, tt.want)
		}
		if got := tt.err.ErrorReason(); got != string(tt.want) {
			t.Fatalf("%v.ErrorReason() = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestUnknownCodeError_Details(t *testing.T) {
	d := UnknownValue(TableStatus, 0x27).ErrorDetails()
	if d["table"] != TableStatus || d["kind"] != "value" || d["value"] != "0x00000027" {
		t.Fatalf("value details = %v", d)
	}
	if _, ok := d["name"]; ok {
		t.Fatalf("value details must not carry a name: %v", d)
	}

	d = UnknownName(TableInfo, "PICO_X").ErrorDetails()
	if d["table"] != TableInfo || d["kind"] != "macro" || d["name"] != "PICO_X" {
		t.Fatalf("name details = %v", d)
	}
}

func TestKind_String(t *testing.T) {
	if ByValue.String() != "value" || ByName.String() != "macro" {
		t.Fatalf("Kind strings = %q, %q", ByValue, ByName)
	}
	if got := Kind(9).String(); got != "Kind(9)" {
		t.Fatalf("Kind(9).String() = %q", got)
	}
}

func TestEntry_Hex(t *testing.T) {
	e := Entry{Name: "PICO_IPP_ERROR", Value: 0x10000003}
	if got := e.Hex(); got != "0x10000003" {
		t.Fatalf("Hex() = %q", got)
	}
}
