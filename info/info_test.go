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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/picocodes"
	"dirpx.dev/picocodes/macro"
)

func TestTable(t *testing.T) {
	require.Equal(t, 14, Len())

	entries := Entries()
	require.Len(t, entries, 14)
	for i, e := range entries {
		// The selectors are dense: 0x00..0x0D in header order.
		assert.Equal(t, uint32(i), e.Value, e.Name)
		assert.NoError(t, macro.Validate(macro.Name(e.Name)), e.Name)
	}
}

func TestValue(t *testing.T) {
	tests := map[string]uint32{
		"PICO_DRIVER_VERSION":   0x00000000,
		"PICO_BATCH_AND_SERIAL": 0x00000004,
		"PICO_CAL_DATE":         0x00000005,
		"PICO_MAC_ADDRESS":      0x0000000B,
		"PICO_IPP_VERSION":      0x0000000D,
	}
	for name, want := range tests {
		got, err := Value(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestValue_Unknown(t *testing.T) {
	for _, name := range []string{"PICO_NOT_A_REAL_CODE", "pico_cal_date", "PICO_OK", ""} {
		_, err := Value(name)
		require.ErrorIs(t, err, picocodes.ErrUnknownCode)

		uc, ok := picocodes.AsUnknownCode(err)
		require.True(t, ok)
		assert.Equal(t, picocodes.TableInfo, uc.Table)
		assert.Equal(t, picocodes.ByName, uc.Kind)
		assert.Equal(t, name, uc.Name)
	}
}

func TestMustValue(t *testing.T) {
	assert.Equal(t, uint32(0x0C), MustValue("PICO_SHADOW_CAL"))
	assert.Panics(t, func() { MustValue("PICO_SERIAL") })
}
