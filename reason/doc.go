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

// Package reason names the machine-readable causes attached to picocodes
// lookup failures.
//
// A reason is a dot-separated identifier of two to four lowercase segments,
// read left to right as table, key kind and outcome:
//
//	status.value.unknown
//	status.name.unknown
//	info.name.unknown
//
// Transport adapters (grpcx, httpx) and the mapper key on these values, so
// they are part of the public contract and must not be renamed.
package reason
