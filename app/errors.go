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

package app

import (
	"github.com/pkg/errors"

	"github.com/mendersoftware/unifi-restarter/client/unifi"
)

// Fatal error categories
const (
	CategoryConfiguration  = "ConfigurationError"
	CategoryAuthentication = "AuthenticationError"
	CategoryConnection     = "ConnectionError"
	CategoryInventory      = "InventoryError"
	CategoryUnexpected     = "UnexpectedError"
)

// FatalError aborts the whole run
type FatalError struct {
	Category string
	Err      error
}

// NewFatalError wraps err in a FatalError of the given category
func NewFatalError(category string, err error) *FatalError {
	return &FatalError{Category: category, Err: err}
}

func (e *FatalError) Error() string {
	return e.Category + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// ErrorCategory returns the category of err; errors which are not a
// FatalError are reported as unexpected
func ErrorCategory(err error) string {
	var fatal *FatalError
	if errors.As(err, &fatal) {
		return fatal.Category
	}
	return CategoryUnexpected
}

// FormatError renders err as "<category>: <message>"
func FormatError(err error) string {
	var fatal *FatalError
	if errors.As(err, &fatal) {
		return fatal.Error()
	}
	return CategoryUnexpected + ": " + err.Error()
}

func loginErrorCategory(err error) string {
	if errors.Is(err, unifi.ErrUnauthorized) {
		return CategoryAuthentication
	}
	return CategoryConnection
}
