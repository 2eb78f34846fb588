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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunResult(t *testing.T) {
	a := Device{Name: "a", MAC: "00:00:00:00:00:0a"}
	b := Device{Name: "b", MAC: "00:00:00:00:00:0b"}
	c := Device{Name: "c", MAC: "00:00:00:00:00:0c"}

	testCases := []struct {
		Name   string
		Result RunResult

		Restarted Devices
		Simulated Devices
		Failures  Devices
		Partial   bool
	}{{
		Name: "all restarted",
		Result: RunResult{Outcomes: []RestartOutcome{
			{Device: a}, {Device: b},
		}},
		Restarted: Devices{a, b},
		Failures:  Devices{},
	}, {
		Name: "dry run restarts nothing",
		Result: RunResult{Outcomes: []RestartOutcome{
			{Device: a, DryRun: true},
		}},
		Restarted: Devices{},
		Simulated: Devices{a},
		Failures:  Devices{},
	}, {
		Name: "one failure",
		Result: RunResult{Outcomes: []RestartOutcome{
			{Device: a}, {Device: b, Err: errors.New("boom")}, {Device: c},
		}},
		Restarted: Devices{a, c},
		Failures:  Devices{b},
		Partial:   true,
	}, {
		Name: "aborted",
		Result: RunResult{
			Outcomes: []RestartOutcome{{Device: a}},
			Aborted:  true,
		},
		Restarted: Devices{a},
		Failures:  Devices{},
		Partial:   true,
	}}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Restarted, tc.Result.Restarted())
			if tc.Simulated == nil {
				tc.Simulated = Devices{}
			}
			assert.Equal(t, tc.Simulated, tc.Result.Simulated())
			assert.Equal(t, tc.Failures, tc.Result.Failures())
			assert.Equal(t, tc.Partial, tc.Result.Partial())
		})
	}
}
