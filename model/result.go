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

// RestartOutcome is the result of restarting a single device
type RestartOutcome struct {
	Device Device
	DryRun bool
	Err    error
}

// Failed tells whether the restart command failed
func (o RestartOutcome) Failed() bool {
	return o.Err != nil
}

// RunResult summarizes a restart run
type RunResult struct {
	Classification *Classification
	Selected       Devices
	Outcomes       []RestartOutcome
	// Aborted is set when the loop stopped before processing every
	// selected device
	Aborted bool
}

// Restarted returns the devices restarted successfully
func (r *RunResult) Restarted() Devices {
	devs := Devices{}
	for _, o := range r.Outcomes {
		if !o.DryRun && !o.Failed() {
			devs = append(devs, o.Device)
		}
	}
	return devs
}

// Simulated returns the devices skipped because of dry-run mode
func (r *RunResult) Simulated() Devices {
	devs := Devices{}
	for _, o := range r.Outcomes {
		if o.DryRun {
			devs = append(devs, o.Device)
		}
	}
	return devs
}

// Failures returns the devices whose restart failed
func (r *RunResult) Failures() Devices {
	devs := Devices{}
	for _, o := range r.Outcomes {
		if o.Failed() {
			devs = append(devs, o.Device)
		}
	}
	return devs
}

// Partial tells whether the run failed to restart part of the batch
func (r *RunResult) Partial() bool {
	return len(r.Failures()) > 0 || r.Aborted
}
