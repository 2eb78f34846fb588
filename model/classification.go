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

// Rejection records an online access point entry that could not be
// normalized
type Rejection struct {
	Index int
	Err   error
}

// Classification partitions the online access points of one inventory
// snapshot
type Classification struct {
	Total        int
	Online       int
	AccessPoints int

	UptimeLimit int

	Healthy Devices
	Overdue Devices

	Rejected []Rejection
}

// Classify partitions the online access points in the inventory into
// healthy and overdue devices. Order follows the inventory.
func Classify(inventory []RawDevice, uptimeLimitDays int) *Classification {
	c := &Classification{
		Total:       len(inventory),
		UptimeLimit: uptimeLimitDays,
		Healthy:     Devices{},
		Overdue:     Devices{},
	}
	for i, raw := range inventory {
		if !raw.Online() {
			continue
		}
		c.Online++
		if !raw.IsAccessPoint() {
			continue
		}
		c.AccessPoints++
		dev, err := NewDevice(raw)
		if err != nil {
			c.Rejected = append(c.Rejected, Rejection{Index: i, Err: err})
			continue
		}
		if dev.UptimeDays() >= int64(uptimeLimitDays) {
			c.Overdue = append(c.Overdue, *dev)
		} else {
			c.Healthy = append(c.Healthy, *dev)
		}
	}
	return c
}

// SelectBatch returns the first batchSize overdue devices. A batch size
// of zero or less selects nothing.
func SelectBatch(overdue Devices, batchSize int) Devices {
	if batchSize <= 0 {
		return Devices{}
	}
	if batchSize > len(overdue) {
		batchSize = len(overdue)
	}
	batch := make(Devices, batchSize)
	copy(batch, overdue[:batchSize])
	return batch
}
