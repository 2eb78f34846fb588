// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package model

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRawDevice(t *testing.T) {
	testCases := []struct {
		Name string
		Raw  RawDevice

		Online bool
		IsAP   bool
	}{{
		Name:   "online access point, numeric state",
		Raw:    RawDevice{KeyState: json.Number("1"), KeyType: "uap"},
		Online: true,
		IsAP:   true,
	}, {
		Name:   "online switch, boolean state",
		Raw:    RawDevice{KeyState: true, KeyType: "usw"},
		Online: true,
	}, {
		Name: "offline access point",
		Raw:  RawDevice{KeyState: float64(0), KeyType: "uap"},
		IsAP: true,
	}, {
		Name: "missing state",
		Raw:  RawDevice{KeyType: "uap"},
		IsAP: true,
	}, {
		Name: "null state, malformed type",
		Raw:  RawDevice{KeyState: nil, KeyType: 42},
	}}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Online, tc.Raw.Online())
			assert.Equal(t, tc.IsAP, tc.Raw.IsAccessPoint())
		})
	}
}

func TestNewDevice(t *testing.T) {
	testCases := []struct {
		Name string
		Raw  RawDevice

		Device *Device
		Error  error
	}{{
		Name: "ok",
		Raw: RawDevice{
			KeyName:   "Lobby",
			KeyMAC:    "f0:9f:c2:00:00:01",
			KeyUptime: json.Number("4320000"),
		},
		Device: &Device{Name: "Lobby", MAC: "f0:9f:c2:00:00:01", Uptime: 4320000},
	}, {
		Name: "ok, float uptime",
		Raw: RawDevice{
			KeyName:   "Lobby",
			KeyMAC:    "f0:9f:c2:00:00:01",
			KeyUptime: float64(86400.4),
		},
		Device: &Device{Name: "Lobby", MAC: "f0:9f:c2:00:00:01", Uptime: 86400},
	}, {
		Name: "ok, unnamed device labelled by mac",
		Raw: RawDevice{
			KeyMAC:    "f0:9f:c2:00:00:02",
			KeyUptime: json.Number("10"),
		},
		Device: &Device{Name: "f0:9f:c2:00:00:02", MAC: "f0:9f:c2:00:00:02", Uptime: 10},
	}, {
		Name: "error, missing mac",
		Raw: RawDevice{
			KeyName:   "Lobby",
			KeyUptime: json.Number("10"),
		},
		Error: ErrFieldMissing,
	}, {
		Name: "error, missing uptime",
		Raw: RawDevice{
			KeyName: "Lobby",
			KeyMAC:  "f0:9f:c2:00:00:01",
		},
		Error: ErrFieldMissing,
	}, {
		Name: "error, uptime not a number",
		Raw: RawDevice{
			KeyName:   "Lobby",
			KeyMAC:    "f0:9f:c2:00:00:01",
			KeyUptime: "forever",
		},
		Error: ErrFieldMalformed,
	}, {
		Name: "error, name of wrong type",
		Raw: RawDevice{
			KeyName:   []string{"Lobby"},
			KeyMAC:    "f0:9f:c2:00:00:01",
			KeyUptime: json.Number("10"),
		},
		Error: ErrFieldMalformed,
	}, {
		Name: "error, invalid mac",
		Raw: RawDevice{
			KeyName:   "Lobby",
			KeyMAC:    "not-a-mac",
			KeyUptime: json.Number("10"),
		},
		Error: errors.New("mac: must be a valid MAC address."),
	}, {
		Name: "error, negative uptime",
		Raw: RawDevice{
			KeyName:   "Lobby",
			KeyMAC:    "f0:9f:c2:00:00:01",
			KeyUptime: json.Number("-5"),
		},
		Error: errors.New("uptime: must be no less than 0."),
	}, {
		Name: "error, uptime out of range",
		Raw: RawDevice{
			KeyName:   "Lobby",
			KeyMAC:    "f0:9f:c2:00:00:01",
			KeyUptime: json.Number("9223372036854775807"),
		},
		Error: errors.New("uptime: must be no greater than 9223372036854732607."),
	}, {
		Name: "error, float uptime out of range",
		Raw: RawDevice{
			KeyName:   "Lobby",
			KeyMAC:    "f0:9f:c2:00:00:01",
			KeyUptime: 1e30,
		},
		Error: ErrFieldMalformed,
	}}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			dev, err := NewDevice(tc.Raw)
			if tc.Error != nil {
				if assert.Error(t, err) {
					if errors.Is(err, tc.Error) {
						return
					}
					assert.EqualError(t, err, tc.Error.Error())
				}
				assert.Nil(t, dev)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Device, dev)
			}
		})
	}
}

func TestUptimeDays(t *testing.T) {
	testCases := map[string]struct {
		uptime int64
		days   int64
	}{
		"zero":             {uptime: 0, days: 0},
		"just below half":  {uptime: 43199, days: 0},
		"half rounds up":   {uptime: 43200, days: 1},
		"one and a half":   {uptime: 129600, days: 2},
		"two and a half":   {uptime: 216000, days: 3},
		"fifty days":       {uptime: 50 * 86400, days: 50},
		"49.5 rounds up":   {uptime: 49*86400 + 43200, days: 50},
		"49.49 rounds off": {uptime: 49*86400 + 43199, days: 49},
		"max uptime":       {uptime: MaxUptime, days: 106751991167300},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.days, Device{Uptime: tc.uptime}.UptimeDays())
		})
	}
}

func TestDevicesString(t *testing.T) {
	assert.Equal(t, "[]", Devices{}.String())
	assert.Equal(t,
		"[ap-1 (00:00:00:00:00:01), ap-2 (00:00:00:00:00:02)]",
		Devices{
			{Name: "ap-1", MAC: "00:00:00:00:00:01"},
			{Name: "ap-2", MAC: "00:00:00:00:00:02"},
		}.String(),
	)
}
