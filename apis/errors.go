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

// ReasonedError is an error that names its cause with a reason string such
// as "status.value.unknown". *picocodes.UnknownCodeError implements it.
//
// An empty reason means the error is not classified; mappers resolve it to
// their fallback status.
type ReasonedError interface {
	error

	// ErrorReason returns the canonical reason, or "".
	ErrorReason() string
}

// DetailedError is an error that exposes flat key/value details, e.g. the
// table and the unknown key of a failed lookup.
//
// The returned map is owned by the caller.
type DetailedError interface {
	error

	// ErrorDetails returns the details, or nil.
	ErrorDetails() map[string]string
}
