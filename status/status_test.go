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

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/picocodes"
	"dirpx.dev/picocodes/macro"
)

func TestTable_Size(t *testing.T) {
	assert.Equal(t, 166, Len())
	assert.Len(t, Entries(), 166)
}

func TestTable_SpotChecks(t *testing.T) {
	tests := map[string]uint32{
		"PICO_OK":                          0x00000000,
		"PICO_BUSY":                        0x00000027,
		"PICO_NOT_USED":                    0x0000003F,
		"PICO_INVALID_TRIGGER_STATES":      0x00000061,
		"PICO_GET_DATA_ACTIVE":             0x00000103,
		"PICO_SIGGEN_GATING_AUXIO_ENABLED": 0x0000013F,
		"PICO_DEVICE_TIME_STAMP_RESET":     0x01000000,
		"PICO_WATCHDOGTIMER":               0x10000000,
		"PICO_IPP_ERROR":                   0x10000003,
		"PICO_SHADOW_CAL_CORRUPT":          0x10000007,
	}
	for name, want := range tests {
		got, err := Value(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestTable_OneToOne(t *testing.T) {
	require.Len(t, byName, len(table), "duplicate names in PICO_STATUS table")
	require.Len(t, byValue, len(table), "duplicate values in PICO_STATUS table")
}

func TestIndexByValue_LastWins(t *testing.T) {
	entries := []picocodes.Entry{
		{Name: "PICO_A", Value: 1},
		{Name: "PICO_B", Value: 1},
		{Name: "PICO_C", Value: 1},
		{Name: "PICO_D", Value: 2},
	}
	for i := 0; i < 50; i++ {
		idx := indexByValue(entries)
		require.Len(t, idx, 2)
		require.Equal(t, "PICO_C", idx[1])
		require.Equal(t, "PICO_D", idx[2])
	}
}

func TestTable_NamesAreCanonical(t *testing.T) {
	for name := range byName {
		assert.NoError(t, macro.Validate(macro.Name(name)), name)
	}
}

func TestTable_ValueRanges(t *testing.T) {
	inRange := func(v uint32) bool {
		return v <= 0x61 ||
			(v >= 0x103 && v <= 0x13F) ||
			v == 0x01000000 ||
			(v >= 0x10000000 && v <= 0x10000007)
	}
	for name, v := range byName {
		assert.Truef(t, inRange(v), "%s = %s outside the published ranges", name, picocodes.Hex(v))
	}
}

func TestRoundTrip(t *testing.T) {
	for _, e := range Entries() {
		v, err := Value(e.Name)
		require.NoError(t, err)
		require.Equal(t, e.Value, v)

		name, err := Name(e.Value)
		require.NoError(t, err)
		require.Equal(t, e.Name, name)
	}
}

func TestName_Unknown(t *testing.T) {
	for _, v := range []uint32{0xFFFFFFFF, 0x3E, 0x55, 0x62, 0x100, 0x10000008} {
		name, err := Name(v)
		assert.Empty(t, name)
		require.ErrorIs(t, err, picocodes.ErrUnknownCode)

		var uc *picocodes.UnknownCodeError
		require.ErrorAs(t, err, &uc)
		assert.Equal(t, picocodes.ByValue, uc.Kind)
		assert.Equal(t, picocodes.TableStatus, uc.Table)
		assert.Equal(t, v, uc.Value)
	}
}

func TestValue_Unknown(t *testing.T) {
	for _, name := range []string{"PICO_NOT_A_REAL_CODE", "pico_ok", "Pico_Ok", "PICO_OK ", "", "PICO_DRIVER_VERSION"} {
		v, err := Value(name)
		assert.Zero(t, v)
		require.ErrorIs(t, err, picocodes.ErrUnknownCode, name)

		var uc *picocodes.UnknownCodeError
		require.ErrorAs(t, err, &uc)
		assert.Equal(t, picocodes.ByName, uc.Kind)
		assert.Equal(t, name, uc.Name)
	}
}

func TestValue_ErrorMessage(t *testing.T) {
	_, err := Value("PICO_NOT_A_REAL_CODE")
	assert.EqualError(t, err, "PICO_NOT_A_REAL_CODE is not a known PICO_STATUS macro")

	_, err = Name(0xFFFFFFFF)
	assert.EqualError(t, err, "0xFFFFFFFF is not a known PICO_STATUS value")
}

func TestMustValue(t *testing.T) {
	assert.Equal(t, uint32(0x27), MustValue("PICO_BUSY"))
	assert.Panics(t, func() { MustValue("PICO_NOPE") })
}

func TestEntries_SortedCopy(t *testing.T) {
	a := Entries()
	for i := 1; i < len(a); i++ {
		require.Less(t, a[i-1].Value, a[i].Value)
	}
	assert.Equal(t, picocodes.Entry{Name: "PICO_OK", Value: 0}, a[0])
	assert.Equal(t, "PICO_SHADOW_CAL_CORRUPT", a[len(a)-1].Name)

	a[0].Name = "MUTATED"
	v, err := Value("PICO_OK")
	require.NoError(t, err)
	assert.Zero(t, v)
	assert.Equal(t, "PICO_OK", Entries()[0].Name)
}

func TestCode(t *testing.T) {
	assert.True(t, OK.IsOK())
	assert.Equal(t, "PICO_OK", OK.String())
	assert.Equal(t, "PICO_BUSY", Code(0x27).String())
	assert.Equal(t, "UNKNOWN(0xDEADBEEF)", Code(0xDEADBEEF).String())
	assert.Equal(t, "PICO_BUSY", fmt.Sprint(Code(0x27)))

	name, err := Code(0x10000003).Name()
	require.NoError(t, err)
	assert.Equal(t, "PICO_IPP_ERROR", name)
}

func TestCode_Err(t *testing.T) {
	assert.NoError(t, OK.Err())

	err := Code(0x27).Err()
	require.Error(t, err)
	assert.EqualError(t, err, "pico status PICO_BUSY (0x00000027)")

	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, Code(0x27), se.Code)
	assert.False(t, errors.Is(err, picocodes.ErrUnknownCode))
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, e := range Entries() {
				if n, err := Name(e.Value); err != nil || n != e.Name {
					t.Errorf("Name(%s) = %q, %v", e.Hex(), n, err)
				}
			}
		}()
	}
	wg.Wait()
}
