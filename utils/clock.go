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

package utils

import "time"

// Clock interface
type Clock interface {
	Now() time.Time
}

// RealClock provides a real clock
type RealClock struct{}

// Now returns the current date and time
func (RealClock) Now() time.Time {
	return time.Now()
}

// StaticClock always reports the same instant
type StaticClock time.Time

// Now returns the clock's instant
func (c StaticClock) Now() time.Time {
	return time.Time(c)
}
