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

// Package picocodes holds the types shared by the PicoScope code registries.
//
// The registries themselves live in subpackages:
//
//   - status: PICO_STATUS macros, looked up by name and by value;
//   - info:   PICO_INFO macros, looked up by name only;
//   - enum:   sequential numbering for C enums declared without values.
//
// Both registries fail with *UnknownCodeError when a key is not registered.
// The error always carries the offending key, so callers can wrap it with
// the device operation that produced it:
//
//	st := ps5000aOpenUnit(...)
//	if name, err := status.Name(st); err != nil {
//	    return fmt.Errorf("open unit: %w", err)
//	} else if name != "PICO_OK" {
//	    return fmt.Errorf("open unit: %s", name)
//	}
//
// Use errors.Is(err, ErrUnknownCode) to test for the failure without caring
// about its details, or errors.As to get at the key.
package picocodes
