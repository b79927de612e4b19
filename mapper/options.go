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
	"dirpx.dev/picocodes/reason"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
type Option func(*builder)

// WithHTTPDefault replaces the default HTTP status for r.
func WithHTTPDefault(r reason.Reason, http int) Option {
	return func(b *builder) { b.httpDefaults[r] = http }
}

// WithGRPCDefault replaces the default gRPC code for r.
func WithGRPCDefault(r reason.Reason, grpc codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[r] = grpc }
}

// WithHTTPOverride pins the HTTP status for r above every other rule.
func WithHTTPOverride(r reason.Reason, http int) Option {
	return func(b *builder) { b.httpOverride[r] = http }
}

// WithGRPCOverride pins the gRPC code for r above every other rule.
func WithGRPCOverride(r reason.Reason, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[r] = grpc }
}

// WithHTTPTable sets the HTTP status for every reason of a table, e.g.
// WithHTTPTable("info", 400). Overrides still win.
func WithHTTPTable(table string, http int) Option {
	return func(b *builder) { b.httpTables[table] = http }
}

// WithGRPCTable sets the gRPC code for every reason of a table.
func WithGRPCTable(table string, grpc codes.Code) Option {
	return func(b *builder) { b.grpcTables[table] = grpc }
}

// WithFallback replaces the statuses used when nothing else matches.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
