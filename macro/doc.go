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

// Package macro validates the symbolic names of PicoScope driver macros,
// e.g. "PICO_OK" or "PICO_BATCH_AND_SERIAL".
//
// A canonical macro name:
//
//   - starts with the "PICO_" prefix;
//   - continues with uppercase ASCII letters, digits or underscores;
//   - is at most MaxLength bytes long.
//
// The registries in packages status and info match names exactly and never
// normalise their input. Normalize and Parse exist for human-facing edges
// (the CLI, configuration) where "busy" or "pico-busy" should resolve to
// "PICO_BUSY" before the exact lookup happens.
package macro
