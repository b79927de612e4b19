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
	"regexp"

	"dirpx.dev/picocodes/reason"
	"google.golang.org/grpc/codes"
)

var tableRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func checkReason(r reason.Reason) error {
	if r == reason.Empty {
		return fmt.Errorf("mapper: empty reason in rule")
	}
	if err := reason.Validate(r); err != nil {
		return fmt.Errorf("mapper: invalid reason %q: %w", r, err)
	}
	return nil
}

func checkRule(r reason.Reason, http int) error {
	if err := checkReason(r); err != nil {
		return err
	}
	return checkHTTP(http)
}

func checkTable(t string) error {
	if !tableRe.MatchString(t) {
		return fmt.Errorf("mapper: invalid table %q", t)
	}
	return nil
}

func checkHTTP(v int) error {
	if v < 100 || v > 599 {
		return fmt.Errorf("mapper: HTTP status %d out of range", v)
	}
	return nil
}

// checkGRPC accepts the canonical error codes, Canceled(1) through
// Unauthenticated(16). OK is rejected: a status built from it carries no
// error, so the failure would vanish on the wire.
func checkGRPC(c codes.Code) error {
	if c == codes.OK || c > codes.Unauthenticated {
		return fmt.Errorf("mapper: gRPC code %d out of range", uint32(c))
	}
	return nil
}
