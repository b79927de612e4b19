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

// Package enum reproduces the numbering C compilers give to enumerators
// declared without explicit values: 0, 1, 2, ... in declaration order.
//
// Driver headers declare many small enums (channels, ranges, coupling) that
// way, and bindings often only know the member names. Build turns the names
// back into the numbers the driver expects.
package enum
