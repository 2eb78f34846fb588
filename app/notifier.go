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
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	natsclient "github.com/mendersoftware/unifi-restarter/client/nats"
	"github.com/mendersoftware/unifi-restarter/client/slack"
	dconfig "github.com/mendersoftware/unifi-restarter/config"
)

// Notifier posts messages to an outbound channel
//
//go:generate ../utils/mockgen.sh
type Notifier interface {
	Post(ctx context.Context, text string) error
	Close() error
}

type slackNotifier struct {
	slack.Client
}

func (slackNotifier) Close() error {
	return nil
}

// NewNotifier returns the notifier for the endpoint URL: http(s) URLs are
// slack incoming webhooks, nats URLs publish on the subject named by the
// URL path, or on defaultSubject.
func NewNotifier(
	ctx context.Context,
	endpoint string,
	defaultSubject string,
) (Notifier, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "invalid notifier URL")
	}
	switch u.Scheme {
	case dconfig.SchemeHTTP, dconfig.SchemeHTTPS:
		return slackNotifier{Client: slack.NewClient(endpoint)}, nil

	case dconfig.SchemeNATS:
		subject := strings.ReplaceAll(strings.Trim(u.Path, "/"), "/", ".")
		if subject == "" {
			subject = defaultSubject
		}
		server := url.URL{Scheme: u.Scheme, User: u.User, Host: u.Host}
		conn, err := natsclient.NewClientWithDefaults(ctx, server.String())
		if err != nil {
			return nil, err
		}
		return natsclient.NewNotifier(conn, subject), nil
	}
	return nil, errors.Errorf("unsupported notifier scheme %q", u.Scheme)
}
