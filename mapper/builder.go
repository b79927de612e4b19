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

type builder struct {
	httpDefaults map[reason.Reason]int
	grpcDefaults map[reason.Reason]codes.Code

	httpOverride map[reason.Reason]int
	grpcOverride map[reason.Reason]codes.Code

	// table rules, keyed by the first reason segment
	httpTables map[string]int
	grpcTables map[string]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[reason.Reason]int, len(defaultHTTP)),
		grpcDefaults: make(map[reason.Reason]codes.Code, len(defaultGRPC)),
		httpOverride: make(map[reason.Reason]int),
		grpcOverride: make(map[reason.Reason]codes.Code),
		httpTables:   make(map[string]int),
		grpcTables:   make(map[string]codes.Code),
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}
	return b
}

// validate rejects rules that could never match.
func (b *builder) validate() error {
	for _, m := range []map[reason.Reason]int{b.httpDefaults, b.httpOverride} {
		for r, v := range m {
			if err := checkRule(r, v); err != nil {
				return err
			}
		}
	}
	for _, m := range []map[reason.Reason]codes.Code{b.grpcDefaults, b.grpcOverride} {
		for r, c := range m {
			if err := checkReason(r); err != nil {
				return err
			}
			if err := checkGRPC(c); err != nil {
				return err
			}
		}
	}
	for t, v := range b.httpTables {
		if err := checkTable(t); err != nil {
			return err
		}
		if err := checkHTTP(v); err != nil {
			return err
		}
	}
	for t, c := range b.grpcTables {
		if err := checkTable(t); err != nil {
			return err
		}
		if err := checkGRPC(c); err != nil {
			return err
		}
	}
	if err := checkHTTP(b.fallbackHTTP); err != nil {
		return err
	}
	return checkGRPC(b.fallbackGRPC)
}
