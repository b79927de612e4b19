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

package apis

// ErrorView is the wire shape of a failed lookup.
type ErrorView struct {
	// Reason is the canonical reason, e.g. "status.name.unknown".
	Reason string `json:"reason,omitempty"`

	// Message is the error text.
	Message string `json:"message"`

	// Details carries the table and the offending key.
	Details map[string]string `json:"details,omitempty"`
}

// CodeView is the wire shape of a successful lookup.
type CodeView struct {
	// Table is "PICO_STATUS" or "PICO_INFO".
	Table string `json:"table"`

	// Name is the macro name.
	Name string `json:"name"`

	// Value is the numeric code.
	Value uint32 `json:"value"`

	// Hex is Value as an 8-digit hex literal, e.g. "0x00000027".
	Hex string `json:"hex"`
}
