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

// Package info is the PICO_INFO registry: the selectors a binding passes to a
// driver's GetUnitInfo call to ask for one piece of device metadata
// (driver version, serial number, calibration date, ...).
//
// The registry is forward-only. Callers translate a macro name into the
// numeric selector; there is no value to name lookup.
package info
