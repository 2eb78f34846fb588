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
	"fmt"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
)

// DeviceTypeAccessPoint is the controller's type tag for access points
const DeviceTypeAccessPoint = "uap"

// Inventory record keys
const (
	KeyName   = "name"
	KeyMAC    = "mac"
	KeyType   = "type"
	KeyState  = "state"
	KeyUptime = "uptime"
)

const secondsPerDay = 24 * 60 * 60

// MaxUptime is the largest uptime, in seconds, a device may report
const MaxUptime = math.MaxInt64 - secondsPerDay/2

var (
	ErrFieldMissing   = errors.New("missing field")
	ErrFieldMalformed = errors.New("malformed field")
)

// RawDevice is a single untyped inventory entry as reported by the
// controller
type RawDevice map[string]interface{}

// Online reports whether the entry's state flag is truthy
func (r RawDevice) Online() bool {
	v, ok := r[KeyState]
	if !ok {
		return false
	}
	return truthy(v)
}

// Type returns the device type tag, or an empty string
func (r RawDevice) Type() string {
	s, _ := r[KeyType].(string)
	return s
}

// IsAccessPoint reports whether the entry is an access point
func (r RawDevice) IsAccessPoint() bool {
	return r.Type() == DeviceTypeAccessPoint
}

// Device is the canonical descriptor of an access point
type Device struct {
	Name string `json:"name"`
	// MAC is the hardware address used for every controller action
	MAC    string `json:"mac"`
	Uptime int64  `json:"uptime"`
}

// NewDevice normalizes a raw inventory entry into a Device. Unnamed
// devices are labelled with their hardware address.
func NewDevice(raw RawDevice) (*Device, error) {
	mac, err := stringField(raw, KeyMAC)
	if err != nil {
		return nil, err
	}
	uptime, err := intField(raw, KeyUptime)
	if err != nil {
		return nil, err
	}
	name, err := stringField(raw, KeyName)
	if errors.Is(err, ErrFieldMissing) || (err == nil && name == "") {
		name = mac
	} else if err != nil {
		return nil, err
	}
	dev := &Device{
		Name:   name,
		MAC:    mac,
		Uptime: uptime,
	}
	if err := dev.Validate(); err != nil {
		return nil, err
	}
	return dev, nil
}

// Validate validates the device descriptor
func (d Device) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.MAC, validation.Required, is.MAC),
		validation.Field(&d.Uptime,
			validation.Min(int64(0)),
			validation.Max(int64(MaxUptime)),
		),
	)
}

// UptimeDays returns the uptime in whole days, rounding half up
func (d Device) UptimeDays() int64 {
	days := d.Uptime / secondsPerDay
	if d.Uptime%secondsPerDay >= secondsPerDay/2 {
		days++
	}
	return days
}

func (d Device) String() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.MAC)
}

// Devices is an ordered list of devices
type Devices []Device

func (ds Devices) String() string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func stringField(raw RawDevice, key string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", errors.Wrap(ErrFieldMissing, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(ErrFieldMalformed, "%s: expected string, got %T", key, v)
	}
	return s, nil
}

func intField(raw RawDevice, key string) (int64, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, errors.Wrap(ErrFieldMissing, key)
	}
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, errors.Wrapf(ErrFieldMalformed, "%s: %q is not a number", key, n)
		}
		return roundFloat(key, f)
	case float64:
		return roundFloat(key, n)
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrFieldMalformed, "%s: %q is not a number", key, n)
		}
		return i, nil
	}
	return 0, errors.Wrapf(ErrFieldMalformed, "%s: expected number, got %T", key, v)
}

func roundFloat(key string, f float64) (int64, error) {
	f = math.Round(f)
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errors.Wrapf(ErrFieldMalformed, "%s: %v is out of range", key, f)
	}
	return int64(f), nil
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case string:
		return t != ""
	}
	return true
}
