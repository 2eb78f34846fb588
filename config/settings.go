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
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/pkg/errors"
)

// Notifier endpoint schemes
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeNATS  = "nats"
)

// Settings is the explicit configuration of a single run
type Settings struct {
	Host        string
	Port        int
	User        string
	Password    string
	Site        string
	Insecure    bool
	UniFiOS     bool
	Timeout     time.Duration
	UptimeLimit int
	BatchSize   int
	DryRun      bool

	AbortOnFailure bool

	NotifyURL     string
	NotifySubject string

	DebugLog bool
}

// Load reads the settings from the configuration reader and validates them
func Load(conf config.Reader) (*Settings, error) {
	s := &Settings{
		Host:           conf.GetString(SettingControllerHost),
		Port:           conf.GetInt(SettingControllerPort),
		User:           conf.GetString(SettingControllerUser),
		Password:       conf.GetString(SettingControllerPassword),
		Site:           conf.GetString(SettingControllerSite),
		Insecure:       conf.GetBool(SettingControllerInsecure),
		UniFiOS:        conf.GetBool(SettingControllerUniFiOS),
		Timeout:        time.Duration(conf.GetInt(SettingControllerTimeout)) * time.Second,
		UptimeLimit:    conf.GetInt(SettingUptimeLimit),
		BatchSize:      conf.GetInt(SettingBatchSize),
		DryRun:         conf.GetBool(SettingDryRun),
		AbortOnFailure: conf.GetBool(SettingAbortOnFailure),
		NotifyURL:      conf.GetString(SettingNotifyURL),
		NotifySubject:  conf.GetString(SettingNotifySubject),
		DebugLog:       conf.GetBool(SettingDebugLog),
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return s, nil
}

// Validate validates the settings
func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Host, validation.Required),
		validation.Field(&s.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&s.User, validation.Required),
		validation.Field(&s.Password, validation.Required),
		validation.Field(&s.Site, validation.Required),
		validation.Field(&s.Timeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&s.NotifyURL, validation.By(validateNotifyURL)),
	)
}

// NotificationsEnabled tells whether a notifier endpoint is configured
func (s Settings) NotificationsEnabled() bool {
	return s.NotifyURL != ""
}

func validateNotifyURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	switch u.Scheme {
	case SchemeHTTP, SchemeHTTPS, SchemeNATS:
	default:
		return errors.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}
