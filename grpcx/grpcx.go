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

// Package grpcx carries picocodes lookup failures across gRPC.
//
// On the server, UnaryServerInterceptor turns any handler error that carries
// a reason into a gRPC status whose code comes from an apis.Mapper and whose
// details hold a google.rpc.ErrorInfo. On the client,
// UnaryClientInterceptor and FromError turn such a status back into a
// *picocodes.UnknownCodeError, so errors.Is(err, picocodes.ErrUnknownCode)
// keeps working across the wire.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/picocodes"
	"dirpx.dev/picocodes/adapter"
	"dirpx.dev/picocodes/apis"
	"dirpx.dev/picocodes/reason"
)

// Status converts err into a gRPC status using m. Errors that already are
// gRPC statuses are returned unchanged. Errors without a reason map to the
// mapper fallback and carry no details.
func Status(m apis.Mapper, err error) *gstatus.Status {
	if err == nil {
		return nil
	}
	if st, ok := gstatus.FromError(err); ok {
		return st
	}

	var r reason.Reason
	var re apis.ReasonedError
	if errors.As(err, &re) {
		r = reason.Reason(re.ErrorReason())
	}

	base := gstatus.New(m.GRPCStatus(r), err.Error())
	info := adapter.ToErrorInfo(err)
	if info == nil {
		return base
	}
	if with, derr := base.WithDetails(info); derr == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor maps handler errors through m.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, Status(m, err).Err()
	}
}

// UnaryClientInterceptor rewrites lookup-failure statuses returned by the
// server into *picocodes.UnknownCodeError. Other errors pass through.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if uc, ok := FromError(err); ok {
			return uc
		}
		return err
	}
}

// FromError extracts the lookup failure carried by a gRPC error, if any.
func FromError(err error) (*picocodes.UnknownCodeError, bool) {
	info, ok := ExtractErrorInfo(err)
	if !ok {
		return nil, false
	}
	return adapter.FromErrorInfo(info)
}

// ExtractErrorInfo pulls the picocodes ErrorInfo out of a gRPC error.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == adapter.Domain {
			return info, true
		}
	}
	return nil, false
}
