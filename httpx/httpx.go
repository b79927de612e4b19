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

// Package httpx exposes the picocodes registries over HTTP and writes
// lookup failures as JSON.
package httpx

import (
	"errors"
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/picocodes/adapter"
	"dirpx.dev/picocodes/apis"
	"dirpx.dev/picocodes/reason"
)

var marshalOpts = protojson.MarshalOptions{EmitUnpopulated: false}

// Writer turns errors into HTTP responses, resolving the status with Mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes err as an apis.ErrorView. The HTTP status comes from the
// error's reason; errors without one get the mapper fallback.
func (w Writer) Write(rw http.ResponseWriter, err error) error {
	if err == nil {
		return nil
	}
	var r reason.Reason
	var re apis.ReasonedError
	if errors.As(err, &re) {
		r = reason.Reason(re.ErrorReason())
	}
	return w.WriteView(rw, w.Mapper.HTTPStatus(r), adapter.ToView(err))
}

// WriteView writes v with an explicit status.
func (w Writer) WriteView(rw http.ResponseWriter, code int, v apis.ErrorView) error {
	fields := map[string]any{"message": v.Message}
	if v.Reason != "" {
		fields["reason"] = v.Reason
	}
	if len(v.Details) > 0 {
		d := make(map[string]any, len(v.Details))
		for k, val := range v.Details {
			d[k] = val
		}
		fields["details"] = d
	}
	return writeStruct(rw, code, fields)
}

func writeStruct(rw http.ResponseWriter, code int, fields map[string]any) error {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return err
	}
	return writeMessage(rw, code, s)
}

func writeMessage(rw http.ResponseWriter, code int, s *structpb.Struct) error {
	b, err := marshalOpts.Marshal(s)
	if err != nil {
		return err
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	_, err = rw.Write(b)
	return err
}
