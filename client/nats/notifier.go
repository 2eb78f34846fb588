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

package nats

import (
	"context"

	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mendersoftware/unifi-restarter/model"
	"github.com/mendersoftware/unifi-restarter/utils"
)

// Notifier publishes run notifications on a nats subject
type Notifier struct {
	client  Client
	subject string
	clock   utils.Clock
}

// NewNotifier returns a notifier publishing on subject through client
func NewNotifier(client Client, subject string) *Notifier {
	return &Notifier{
		client:  client,
		subject: subject,
		clock:   utils.RealClock{},
	}
}

// WithClock replaces the clock stamping the notifications
func (n *Notifier) WithClock(clock utils.Clock) *Notifier {
	n.clock = clock
	return n
}

// Post publishes text as a msgpack encoded model.Notification and waits
// for the server to acknowledge it
func (n *Notifier) Post(ctx context.Context, text string) error {
	msg := model.Notification{
		RunID:     requestid.FromContext(ctx),
		Text:      text,
		Timestamp: n.clock.Now().UTC(),
	}
	data, err := msgpack.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "nats: failed to encode notification")
	}
	if err := n.client.Publish(n.subject, data); err != nil {
		return errors.Wrap(err, "nats: failed to publish notification")
	}
	if err := n.client.Flush(ctx); err != nil {
		return errors.Wrap(err, "nats: failed to flush notification")
	}
	return nil
}

// Close closes the underlying connection
func (n *Notifier) Close() error {
	n.client.Close()
	return nil
}
