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

import (
	"dirpx.dev/picocodes/reason"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe set of rules that resolves a
// failure reason into transport statuses.
type Mapper interface {
	// HTTPStatus returns the HTTP status for r. It is never zero.
	HTTPStatus(r reason.Reason) int

	// GRPCStatus returns the gRPC status code for r.
	GRPCStatus(r reason.Reason) codes.Code

	// Status resolves both with the same rules.
	Status(r reason.Reason) Status

	// Explain describes which rule matched, for diagnostics.
	Explain(r reason.Reason) string
}

// Status is a resolved pair of transport statuses.
type Status struct {
	HTTP int        // net/http status code.
	GRPC codes.Code // gRPC status code.
}
