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

package config

import (
	"github.com/mendersoftware/go-lib-micro/config"
)

const (
	// SettingControllerHost is the config key for the controller hostname
	SettingControllerHost = "controller_host"

	// SettingControllerPort is the config key for the controller port
	SettingControllerPort = "controller_port"
	// SettingControllerPortDefault is the default value for the controller port
	SettingControllerPortDefault = 8443

	// SettingControllerUser is the config key for the controller username
	SettingControllerUser = "controller_user"

	// SettingControllerPassword is the config key for the controller password
	SettingControllerPassword = "controller_password"

	// SettingControllerSite is the config key for the controller site name
	SettingControllerSite = "controller_site"
	// SettingControllerSiteDefault is the default value for the site name
	SettingControllerSiteDefault = "default"

	// SettingControllerInsecure is the config key for skipping TLS
	// certificate verification of the controller
	SettingControllerInsecure = "controller_insecure"
	// SettingControllerInsecureDefault is the default value for skipping
	// TLS certificate verification
	SettingControllerInsecureDefault = true

	// SettingControllerUniFiOS is the config key for talking to a
	// controller hosted on UniFi OS (UDM, Cloud Key Gen2+)
	SettingControllerUniFiOS = "controller_unifi_os"
	// SettingControllerUniFiOSDefault is the default value for UniFi OS mode
	SettingControllerUniFiOSDefault = false

	// SettingControllerTimeout is the config key for the timeout of a
	// single controller round trip, in seconds
	SettingControllerTimeout = "controller_timeout"
	// SettingControllerTimeoutDefault is the default controller timeout
	SettingControllerTimeoutDefault = 30

	// SettingUptimeLimit is the config key for the uptime limit in days
	SettingUptimeLimit = "uptime_limit"
	// SettingUptimeLimitDefault is the default uptime limit in days
	SettingUptimeLimitDefault = 50

	// SettingBatchSize is the config key for the number of access points
	// restarted per invocation
	SettingBatchSize = "batch_size"
	// SettingBatchSizeDefault is the default batch size
	SettingBatchSizeDefault = 5

	// SettingDryRun is the config key for the dry-run mode
	SettingDryRun = "dry_run"
	// SettingDryRunDefault is the default value for the dry-run mode
	SettingDryRunDefault = false

	// SettingAbortOnFailure is the config key for stopping the batch on
	// the first failed restart
	SettingAbortOnFailure = "abort_on_failure"
	// SettingAbortOnFailureDefault is the default value for abort on failure
	SettingAbortOnFailureDefault = false

	// SettingNotifyURL is the config key for the notifier endpoint
	SettingNotifyURL = "notify_url"

	// SettingNotifySubject is the config key for the nats subject used
	// when the notifier endpoint does not name one
	SettingNotifySubject = "notify_subject"
	// SettingNotifySubjectDefault is the default nats subject
	SettingNotifySubjectDefault = "unifi.restarter"

	// SettingDebugLog is the config key for the turning on the debug log
	SettingDebugLog = "debug_log"
	// SettingDebugLogDefault is the default value for the debug log enabling
	SettingDebugLogDefault = false
)

var (
	// Defaults are the default configuration settings
	Defaults = []config.Default{
		{Key: SettingControllerPort, Value: SettingControllerPortDefault},
		{Key: SettingControllerSite, Value: SettingControllerSiteDefault},
		{Key: SettingControllerInsecure, Value: SettingControllerInsecureDefault},
		{Key: SettingControllerUniFiOS, Value: SettingControllerUniFiOSDefault},
		{Key: SettingControllerTimeout, Value: SettingControllerTimeoutDefault},
		{Key: SettingUptimeLimit, Value: SettingUptimeLimitDefault},
		{Key: SettingBatchSize, Value: SettingBatchSizeDefault},
		{Key: SettingDryRun, Value: SettingDryRunDefault},
		{Key: SettingAbortOnFailure, Value: SettingAbortOnFailureDefault},
		{Key: SettingNotifySubject, Value: SettingNotifySubjectDefault},
		{Key: SettingDebugLog, Value: SettingDebugLogDefault},
	}
)
