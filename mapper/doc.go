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

// Package mapper resolves picocodes failure reasons into HTTP and gRPC
// statuses.
//
// # Resolution model
//
// A Mapper resolves a reason in the following order:
//
//  1. exact override for the reason;
//  2. table rule, matched on the first reason segment ("status", "info");
//  3. per-reason default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Library defaults map every unknown-code reason to 404 / codes.NotFound:
// the caller asked for a key the registry does not have. Errors without a
// reason (anything that is not a lookup failure) land on the fallback.
//
// # Immutability
//
// New copies every rule into fresh maps. The returned apis.Mapper shares no
// state with the options that built it and is safe for concurrent use.
package mapper
