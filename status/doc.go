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

// Package status is the PICO_STATUS registry: every status code a PicoScope
// driver call can return, keyed by macro name and by numeric value.
//
// The table is a package-level literal; the name and value indexes are
// derived from it once during package initialisation. Neither is mutated
// afterwards, so all functions are safe for concurrent use without locking.
//
// Lookups are exact. "PICO_BUSY" resolves, "pico_busy" does not; use
// package macro to canonicalise human input first.
//
// The table is an ordered slice and both indexes are built by walking it
// front to back. If two names were ever given the same value, Name returns
// the one listed last in the table. The shipped table has no such
// collisions and the package tests enforce it.
package status
