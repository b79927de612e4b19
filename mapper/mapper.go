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
	"fmt"
	"maps"
	"strings"

	"dirpx.dev/picocodes/apis"
	"dirpx.dev/picocodes/reason"
	"google.golang.org/grpc/codes"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
//
// It fails when an option names an invalid reason or table, an HTTP status
// outside 100..599, or a gRPC code outside Canceled..Unauthenticated.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  maps.Clone(b.httpDefaults),
		grpcDefault:  maps.Clone(b.grpcDefaults),
		httpOverride: maps.Clone(b.httpOverride),
		grpcOverride: maps.Clone(b.grpcOverride),
		httpTable:    maps.Clone(b.httpTables),
		grpcTable:    maps.Clone(b.grpcTables),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

type mapper struct {
	httpDefault map[reason.Reason]int
	grpcDefault map[reason.Reason]codes.Code

	httpOverride map[reason.Reason]int
	grpcOverride map[reason.Reason]codes.Code

	httpTable map[string]int
	grpcTable map[string]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves r: override, table rule, default, fallback.
func (m *mapper) HTTPStatus(r reason.Reason) int {
	v, _ := resolve(r, m.httpOverride, m.httpTable, m.httpDefault, m.fallbackHTTP)
	return v
}

// GRPCStatus resolves r with the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(r reason.Reason) codes.Code {
	v, _ := resolve(r, m.grpcOverride, m.grpcTable, m.grpcDefault, m.fallbackGRPC)
	return v
}

// Status resolves both statuses for r.
func (m *mapper) Status(r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(r),
		GRPC: m.GRPCStatus(r),
	}
}

// Explain reports which tier produced each status, e.g.
//
//	reason="status.value.unknown"
//	http:  source=default -> 404
//	grpc:  source=table table="status" -> NotFound(5)
func (m *mapper) Explain(r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "reason=%q\n", r)

	hv, hsrc := resolve(r, m.httpOverride, m.httpTable, m.httpDefault, m.fallbackHTTP)
	_, _ = fmt.Fprintf(&b, "http:  %s -> %d\n", describe(hsrc, r), hv)

	gv, gsrc := resolve(r, m.grpcOverride, m.grpcTable, m.grpcDefault, m.fallbackGRPC)
	_, _ = fmt.Fprintf(&b, "grpc:  %s -> %s(%d)\n", describe(gsrc, r), gv, uint32(gv))

	return b.String()
}

const (
	srcOverride = "override"
	srcTable    = "table"
	srcDefault  = "default"
	srcFallback = "fallback"
)

func resolve[V any](r reason.Reason, override map[reason.Reason]V, table map[string]V, def map[reason.Reason]V, fallback V) (V, string) {
	if v, ok := override[r]; ok {
		return v, srcOverride
	}
	if r != reason.Empty {
		if v, ok := table[r.Table()]; ok {
			return v, srcTable
		}
	}
	if v, ok := def[r]; ok {
		return v, srcDefault
	}
	return fallback, srcFallback
}

func describe(src string, r reason.Reason) string {
	if src == srcTable {
		return fmt.Sprintf("source=%s table=%q", src, r.Table())
	}
	return "source=" + src
}
