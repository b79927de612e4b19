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

package info

// byName is the PICO_INFO table from the driver headers (PicoStatus.h).
// The values select what a driver's GetUnitInfo call reports.
var byName = map[string]uint32{
	"PICO_DRIVER_VERSION":            0x00000000,
	"PICO_USB_VERSION":               0x00000001,
	"PICO_HARDWARE_VERSION":          0x00000002,
	"PICO_VARIANT_INFO":              0x00000003,
	"PICO_BATCH_AND_SERIAL":          0x00000004,
	"PICO_CAL_DATE":                  0x00000005,
	"PICO_KERNEL_VERSION":            0x00000006,
	"PICO_DIGITAL_HARDWARE_VERSION":  0x00000007,
	"PICO_ANALOGUE_HARDWARE_VERSION": 0x00000008,
	"PICO_FIRMWARE_VERSION_1":        0x00000009,
	"PICO_FIRMWARE_VERSION_2":        0x0000000A,
	"PICO_MAC_ADDRESS":               0x0000000B,
	"PICO_SHADOW_CAL":                0x0000000C,
	"PICO_IPP_VERSION":               0x0000000D,
}
