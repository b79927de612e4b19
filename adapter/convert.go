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

// Package adapter converts picocodes values into their transport shapes and
// back.
package adapter

import (
	"errors"
	"strconv"
	"strings"

	"dirpx.dev/picocodes"
	"dirpx.dev/picocodes/apis"
	"dirpx.dev/picocodes/reason"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

var (
	_ apis.ReasonedError = (*picocodes.UnknownCodeError)(nil)
	_ apis.DetailedError = (*picocodes.UnknownCodeError)(nil)
)

// Domain is the ErrorInfo domain stamped on every converted lookup failure.
const Domain = "picocodes.dirpx.dev"

// ToCodeView builds the success view of a lookup.
func ToCodeView(table string, e picocodes.Entry) apis.CodeView {
	return apis.CodeView{
		Table: table,
		Name:  e.Name,
		Value: e.Value,
		Hex:   e.Hex(),
	}
}

// ToView converts any error into an ErrorView. Reason and details are
// filled when err (or something it wraps) implements apis.ReasonedError or
// apis.DetailedError.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{Message: err.Error()}

	var re apis.ReasonedError
	if errors.As(err, &re) {
		v.Reason = re.ErrorReason()
	}
	var de apis.DetailedError
	if errors.As(err, &de) {
		if d := de.ErrorDetails(); len(d) > 0 {
			v.Details = d
		}
	}
	return v
}

// ToErrorInfo converts a lookup failure into a google.rpc.ErrorInfo. The
// reason is upper-snake-cased ("status.value.unknown" becomes
// "STATUS_VALUE_UNKNOWN") and the details become metadata.
//
// It returns nil when err carries no reason.
func ToErrorInfo(err error) *errdetails.ErrorInfo {
	v := ToView(err)
	if v.Reason == "" {
		return nil
	}
	return &errdetails.ErrorInfo{
		Reason:   wireReason(reason.Reason(v.Reason)),
		Domain:   Domain,
		Metadata: v.Details,
	}
}

// FromErrorInfo rebuilds the *picocodes.UnknownCodeError described by info.
// It reports false for infos from other domains or with incomplete metadata.
func FromErrorInfo(info *errdetails.ErrorInfo) (*picocodes.UnknownCodeError, bool) {
	if info == nil || info.GetDomain() != Domain {
		return nil, false
	}
	md := info.GetMetadata()
	table := md["table"]
	if table != picocodes.TableStatus && table != picocodes.TableInfo {
		return nil, false
	}

	var uc *picocodes.UnknownCodeError
	switch md["kind"] {
	case picocodes.ByValue.String():
		v, err := strconv.ParseUint(md["value"], 0, 32)
		if err != nil {
			return nil, false
		}
		uc = picocodes.UnknownValue(table, uint32(v))
	case picocodes.ByName.String():
		name, ok := md["name"]
		if !ok {
			return nil, false
		}
		uc = picocodes.UnknownName(table, name)
	default:
		return nil, false
	}

	if wireReason(uc.Reason()) != info.GetReason() {
		return nil, false
	}
	return uc, true
}

func wireReason(r reason.Reason) string {
	return strings.ToUpper(strings.ReplaceAll(string(r), ".", "_"))
}
