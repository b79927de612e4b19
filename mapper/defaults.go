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

package mapper

import (
	"net/http"

	"dirpx.dev/picocodes/reason"
	"google.golang.org/grpc/codes"
)

// defaultHTTP maps the registry reasons to HTTP statuses.
var defaultHTTP = map[reason.Reason]int{
	reason.StatusValueUnknown: http.StatusNotFound,
	reason.StatusNameUnknown:  http.StatusNotFound,
	reason.InfoNameUnknown:    http.StatusNotFound,
}

// defaultGRPC maps the registry reasons to gRPC codes.
var defaultGRPC = map[reason.Reason]codes.Code{
	reason.StatusValueUnknown: codes.NotFound,
	reason.StatusNameUnknown:  codes.NotFound,
	reason.InfoNameUnknown:    codes.NotFound,
}
