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

package status

import "dirpx.dev/picocodes"

// table is the PICO_STATUS table from the driver headers (PicoStatus.h), in
// header order. Values are part of the driver ABI and must match the headers
// exactly. 0x0000003E and 0x00000055 are unassigned upstream.
var table = []picocodes.Entry{
	{Name: "PICO_OK", Value: 0x00000000},
	{Name: "PICO_MAX_UNITS_OPENED", Value: 0x00000001},
	{Name: "PICO_MEMORY_FAIL", Value: 0x00000002},
	{Name: "PICO_NOT_FOUND", Value: 0x00000003},
	{Name: "PICO_FW_FAIL", Value: 0x00000004},
	{Name: "PICO_OPEN_OPERATION_IN_PROGRESS", Value: 0x00000005},
	{Name: "PICO_OPERATION_FAILED", Value: 0x00000006},
	{Name: "PICO_NOT_RESPONDING", Value: 0x00000007},
	{Name: "PICO_CONFIG_FAIL", Value: 0x00000008},
	{Name: "PICO_KERNEL_DRIVER_TOO_OLD", Value: 0x00000009},
	{Name: "PICO_EEPROM_CORRUPT", Value: 0x0000000A},
	{Name: "PICO_OS_NOT_SUPPORTED", Value: 0x0000000B},
	{Name: "PICO_INVALID_HANDLE", Value: 0x0000000C},
	{Name: "PICO_INVALID_PARAMETER", Value: 0x0000000D},
	{Name: "PICO_INVALID_TIMEBASE", Value: 0x0000000E},
	{Name: "PICO_INVALID_VOLTAGE_RANGE", Value: 0x0000000F},
	{Name: "PICO_INVALID_CHANNEL", Value: 0x00000010},
	{Name: "PICO_INVALID_TRIGGER_CHANNEL", Value: 0x00000011},
	{Name: "PICO_INVALID_CONDITION_CHANNEL", Value: 0x00000012},
	{Name: "PICO_NO_SIGNAL_GENERATOR", Value: 0x00000013},
	{Name: "PICO_STREAMING_FAILED", Value: 0x00000014},
	{Name: "PICO_BLOCK_MODE_FAILED", Value: 0x00000015},
	{Name: "PICO_NULL_PARAMETER", Value: 0x00000016},
	{Name: "PICO_ETS_MODE_SET", Value: 0x00000017},
	{Name: "PICO_DATA_NOT_AVAILABLE", Value: 0x00000018},
	{Name: "PICO_STRING_BUFFER_TO_SMALL", Value: 0x00000019},
	{Name: "PICO_ETS_NOT_SUPPORTED", Value: 0x0000001A},
	{Name: "PICO_AUTO_TRIGGER_TIME_TO_SHORT", Value: 0x0000001B},
	{Name: "PICO_BUFFER_STALL", Value: 0x0000001C},
	{Name: "PICO_TOO_MANY_SAMPLES", Value: 0x0000001D},
	{Name: "PICO_TOO_MANY_SEGMENTS", Value: 0x0000001E},
	{Name: "PICO_PULSE_WIDTH_QUALIFIER", Value: 0x0000001F},
	{Name: "PICO_DELAY", Value: 0x00000020},
	{Name: "PICO_SOURCE_DETAILS", Value: 0x00000021},
	{Name: "PICO_CONDITIONS", Value: 0x00000022},
	{Name: "PICO_USER_CALLBACK", Value: 0x00000023},
	{Name: "PICO_DEVICE_SAMPLING", Value: 0x00000024},
	{Name: "PICO_NO_SAMPLES_AVAILABLE", Value: 0x00000025},
	{Name: "PICO_SEGMENT_OUT_OF_RANGE", Value: 0x00000026},
	{Name: "PICO_BUSY", Value: 0x00000027},
	{Name: "PICO_STARTINDEX_INVALID", Value: 0x00000028},
	{Name: "PICO_INVALID_INFO", Value: 0x00000029},
	{Name: "PICO_INFO_UNAVAILABLE", Value: 0x0000002A},
	{Name: "PICO_INVALID_SAMPLE_INTERVAL", Value: 0x0000002B},
	{Name: "PICO_TRIGGER_ERROR", Value: 0x0000002C},
	{Name: "PICO_MEMORY", Value: 0x0000002D},
	{Name: "PICO_SIG_GEN_PARAM", Value: 0x0000002E},
	{Name: "PICO_SHOTS_SWEEPS_WARNING", Value: 0x0000002F},
	{Name: "PICO_SIGGEN_TRIGGER_SOURCE", Value: 0x00000030},
	{Name: "PICO_AUX_OUTPUT_CONFLICT", Value: 0x00000031},
	{Name: "PICO_AUX_OUTPUT_ETS_CONFLICT", Value: 0x00000032},
	{Name: "PICO_WARNING_EXT_THRESHOLD_CONFLICT", Value: 0x00000033},
	{Name: "PICO_WARNING_AUX_OUTPUT_CONFLICT", Value: 0x00000034},
	{Name: "PICO_SIGGEN_OUTPUT_OVER_VOLTAGE", Value: 0x00000035},
	{Name: "PICO_DELAY_NULL", Value: 0x00000036},
	{Name: "PICO_INVALID_BUFFER", Value: 0x00000037},
	{Name: "PICO_SIGGEN_OFFSET_VOLTAGE", Value: 0x00000038},
	{Name: "PICO_SIGGEN_PK_TO_PK", Value: 0x00000039},
	{Name: "PICO_CANCELLED", Value: 0x0000003A},
	{Name: "PICO_SEGMENT_NOT_USED", Value: 0x0000003B},
	{Name: "PICO_INVALID_CALL", Value: 0x0000003C},
	{Name: "PICO_GET_VALUES_INTERRUPTED", Value: 0x0000003D},
	{Name: "PICO_NOT_USED", Value: 0x0000003F},
	{Name: "PICO_INVALID_SAMPLERATIO", Value: 0x00000040},
	{Name: "PICO_INVALID_STATE", Value: 0x00000041},
	{Name: "PICO_NOT_ENOUGH_SEGMENTS", Value: 0x00000042},
	{Name: "PICO_DRIVER_FUNCTION", Value: 0x00000043},
	{Name: "PICO_RESERVED", Value: 0x00000044},
	{Name: "PICO_INVALID_COUPLING", Value: 0x00000045},
	{Name: "PICO_BUFFERS_NOT_SET", Value: 0x00000046},
	{Name: "PICO_RATIO_MODE_NOT_SUPPORTED", Value: 0x00000047},
	{Name: "PICO_RAPID_NOT_SUPPORT_AGGREGATION", Value: 0x00000048},
	{Name: "PICO_INVALID_TRIGGER_PROPERTY", Value: 0x00000049},
	{Name: "PICO_INTERFACE_NOT_CONNECTED", Value: 0x0000004A},
	{Name: "PICO_RESISTANCE_AND_PROBE_NOT_ALLOWED", Value: 0x0000004B},
	{Name: "PICO_POWER_FAILED", Value: 0x0000004C},
	{Name: "PICO_SIGGEN_WAVEFORM_SETUP_FAILED", Value: 0x0000004D},
	{Name: "PICO_FPGA_FAIL", Value: 0x0000004E},
	{Name: "PICO_POWER_MANAGER", Value: 0x0000004F},
	{Name: "PICO_INVALID_ANALOGUE_OFFSET", Value: 0x00000050},
	{Name: "PICO_PLL_LOCK_FAILED", Value: 0x00000051},
	{Name: "PICO_ANALOG_BOARD", Value: 0x00000052},
	{Name: "PICO_CONFIG_FAIL_AWG", Value: 0x00000053},
	{Name: "PICO_INITIALISE_FPGA", Value: 0x00000054},
	{Name: "PICO_EXTERNAL_FREQUENCY_INVALID", Value: 0x00000056},
	{Name: "PICO_CLOCK_CHANGE_ERROR", Value: 0x00000057},
	{Name: "PICO_TRIGGER_AND_EXTERNAL_CLOCK_CLASH", Value: 0x00000058},
	{Name: "PICO_PWQ_AND_EXTERNAL_CLOCK_CLASH", Value: 0x00000059},
	{Name: "PICO_UNABLE_TO_OPEN_SCALING_FILE", Value: 0x0000005A},
	{Name: "PICO_MEMORY_CLOCK_FREQUENCY", Value: 0x0000005B},
	{Name: "PICO_I2C_NOT_RESPONDING", Value: 0x0000005C},
	{Name: "PICO_NO_CAPTURES_AVAILABLE", Value: 0x0000005D},
	{Name: "PICO_NOT_USED_IN_THIS_CAPTURE_MODE", Value: 0x0000005E},
	{Name: "PICO_TOO_MANY_TRIGGER_CHANNELS_IN_USE", Value: 0x0000005F},
	{Name: "PICO_INVALID_TRIGGER_DIRECTION", Value: 0x00000060},
	{Name: "PICO_INVALID_TRIGGER_STATES", Value: 0x00000061},

	{Name: "PICO_GET_DATA_ACTIVE", Value: 0x00000103},
	{Name: "PICO_IP_NETWORKED", Value: 0x00000104},
	{Name: "PICO_INVALID_IP_ADDRESS", Value: 0x00000105},
	{Name: "PICO_IPSOCKET_FAILED", Value: 0x00000106},
	{Name: "PICO_IPSOCKET_TIMEDOUT", Value: 0x00000107},
	{Name: "PICO_SETTINGS_FAILED", Value: 0x00000108},
	{Name: "PICO_NETWORK_FAILED", Value: 0x00000109},
	{Name: "PICO_WS2_32_DLL_NOT_LOADED", Value: 0x0000010A},
	{Name: "PICO_INVALID_IP_PORT", Value: 0x0000010B},
	{Name: "PICO_COUPLING_NOT_SUPPORTED", Value: 0x0000010C},
	{Name: "PICO_BANDWIDTH_NOT_SUPPORTED", Value: 0x0000010D},
	{Name: "PICO_INVALID_BANDWIDTH", Value: 0x0000010E},
	{Name: "PICO_AWG_NOT_SUPPORTED", Value: 0x0000010F},
	{Name: "PICO_ETS_NOT_RUNNING", Value: 0x00000110},
	{Name: "PICO_SIG_GEN_WHITENOISE_NOT_SUPPORTED", Value: 0x00000111},
	{Name: "PICO_SIG_GEN_WAVETYPE_NOT_SUPPORTED", Value: 0x00000112},
	{Name: "PICO_INVALID_DIGITAL_PORT", Value: 0x00000113},
	{Name: "PICO_INVALID_DIGITAL_CHANNEL", Value: 0x00000114},
	{Name: "PICO_INVALID_DIGITAL_TRIGGER_DIRECTION", Value: 0x00000115},
	{Name: "PICO_SIG_GEN_PRBS_NOT_SUPPORTED", Value: 0x00000116},
	{Name: "PICO_ETS_NOT_AVAILABLE_WITH_LOGIC_CHANNELS", Value: 0x00000117},
	{Name: "PICO_WARNING_REPEAT_VALUE", Value: 0x00000118},
	{Name: "PICO_POWER_SUPPLY_CONNECTED", Value: 0x00000119},
	{Name: "PICO_POWER_SUPPLY_NOT_CONNECTED", Value: 0x0000011A},
	{Name: "PICO_POWER_SUPPLY_REQUEST_INVALID", Value: 0x0000011B},
	{Name: "PICO_POWER_SUPPLY_UNDERVOLTAGE", Value: 0x0000011C},
	{Name: "PICO_CAPTURING_DATA", Value: 0x0000011D},
	{Name: "PICO_USB3_0_DEVICE_NON_USB3_0_PORT", Value: 0x0000011E},
	{Name: "PICO_NOT_SUPPORTED_BY_THIS_DEVICE", Value: 0x0000011F},
	{Name: "PICO_INVALID_DEVICE_RESOLUTION", Value: 0x00000120},
	{Name: "PICO_INVALID_NUMBER_CHANNELS_FOR_RESOLUTION", Value: 0x00000121},
	{Name: "PICO_CHANNEL_DISABLED_DUE_TO_USB_POWERED", Value: 0x00000122},
	{Name: "PICO_SIGGEN_DC_VOLTAGE_NOT_CONFIGURABLE", Value: 0x00000123},
	{Name: "PICO_NO_TRIGGER_ENABLED_FOR_TRIGGER_IN_PRE_TRIG", Value: 0x00000124},
	{Name: "PICO_TRIGGER_WITHIN_PRE_TRIG_NOT_ARMED", Value: 0x00000125},
	{Name: "PICO_TRIGGER_WITHIN_PRE_NOT_ALLOWED_WITH_DELAY", Value: 0x00000126},
	{Name: "PICO_TRIGGER_INDEX_UNAVAILABLE", Value: 0x00000127},
	{Name: "PICO_AWG_CLOCK_FREQUENCY", Value: 0x00000128},
	{Name: "PICO_TOO_MANY_CHANNELS_IN_USE", Value: 0x00000129},
	{Name: "PICO_NULL_CONDITIONS", Value: 0x0000012A},
	{Name: "PICO_DUPLICATE_CONDITION_SOURCE", Value: 0x0000012B},
	{Name: "PICO_INVALID_CONDITION_INFO", Value: 0x0000012C},
	{Name: "PICO_SETTINGS_READ_FAILED", Value: 0x0000012D},
	{Name: "PICO_SETTINGS_WRITE_FAILED", Value: 0x0000012E},
	{Name: "PICO_ARGUMENT_OUT_OF_RANGE", Value: 0x0000012F},
	{Name: "PICO_HARDWARE_VERSION_NOT_SUPPORTED", Value: 0x00000130},
	{Name: "PICO_DIGITAL_HARDWARE_VERSION_NOT_SUPPORTED", Value: 0x00000131},
	{Name: "PICO_ANALOGUE_HARDWARE_VERSION_NOT_SUPPORTED", Value: 0x00000132},
	{Name: "PICO_UNABLE_TO_CONVERT_TO_RESISTANCE", Value: 0x00000133},
	{Name: "PICO_DUPLICATED_CHANNEL", Value: 0x00000134},
	{Name: "PICO_INVALID_RESISTANCE_CONVERSION", Value: 0x00000135},
	{Name: "PICO_INVALID_VALUE_IN_MAX_BUFFER", Value: 0x00000136},
	{Name: "PICO_INVALID_VALUE_IN_MIN_BUFFER", Value: 0x00000137},
	{Name: "PICO_SIGGEN_FREQUENCY_OUT_OF_RANGE", Value: 0x00000138},
	{Name: "PICO_EEPROM2_CORRUPT", Value: 0x00000139},
	{Name: "PICO_EEPROM2_FAIL", Value: 0x0000013A},
	{Name: "PICO_SERIAL_BUFFER_TOO_SMALL", Value: 0x0000013B},
	{Name: "PICO_SIGGEN_TRIGGER_AND_EXTERNAL_CLOCK_CLASH", Value: 0x0000013C},
	{Name: "PICO_WARNING_SIGGEN_AUXIO_TRIGGER_DISABLED", Value: 0x0000013D},
	{Name: "PICO_SIGGEN_GATING_AUXIO_NOT_AVAILABLE", Value: 0x0000013E},
	{Name: "PICO_SIGGEN_GATING_AUXIO_ENABLED", Value: 0x0000013F},

	{Name: "PICO_DEVICE_TIME_STAMP_RESET", Value: 0x01000000},

	{Name: "PICO_WATCHDOGTIMER", Value: 0x10000000},
	{Name: "PICO_IPP_NOT_FOUND", Value: 0x10000001},
	{Name: "PICO_IPP_NO_FUNCTION", Value: 0x10000002},
	{Name: "PICO_IPP_ERROR", Value: 0x10000003},
	{Name: "PICO_SHADOW_CAL_NOT_AVAILABLE", Value: 0x10000004},
	{Name: "PICO_SHADOW_CAL_DISABLED", Value: 0x10000005},
	{Name: "PICO_SHADOW_CAL_ERROR", Value: 0x10000006},
	{Name: "PICO_SHADOW_CAL_CORRUPT", Value: 0x10000007},
}
