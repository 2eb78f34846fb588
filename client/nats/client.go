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
	"time"

	natsio "github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/mendersoftware/go-lib-micro/log"
)

const (
	// Time allowed for establishing the connection
	connectTimeout = 5 * time.Second
	// Time allowed for flushing published messages
	flushTimeout = 5 * time.Second
)

// Client is the nats client
//
//go:generate ../../utils/mockgen.sh
type Client interface {
	Publish(string, []byte) error
	Flush(ctx context.Context) error
	Close()
}

// NewClient returns a new nats client
func NewClient(url string, opts ...natsio.Option) (Client, error) {
	natsClient, err := natsio.Connect(url, opts...)
	if err != nil {
		return nil, err
	}
	return &client{
		nats: natsClient,
	}, nil
}

// NewClientWithDefaults returns a new nats client with default options
// suited for a short lived process: no reconnects, bounded connect time
func NewClientWithDefaults(ctx context.Context, url string) (Client, error) {
	l := log.FromContext(ctx)

	natsClient, err := NewClient(url,
		natsio.Name("unifi-restarter"),
		natsio.Timeout(connectTimeout),
		natsio.NoReconnect(),
		func(o *natsio.Options) error {
			o.ClosedCB = func(_ *natsio.Conn) {
				l.Debug("nats client closed the connection")
			}
			o.DisconnectedErrCB = func(_ *natsio.Conn, e error) {
				if e != nil {
					l.Warnf("nats client disconnected, err: %v", e)
				}
			}
			return nil
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "nats: failed to connect")
	}
	return natsClient, nil
}

type client struct {
	nats *natsio.Conn
}

func (c *client) Publish(subj string, data []byte) error {
	return c.nats.Publish(subj, data)
}

// Flush waits until the server has processed every buffered message
func (c *client) Flush(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flushTimeout)
		defer cancel()
	}
	return c.nats.FlushWithContext(ctx)
}

func (c *client) Close() {
	c.nats.Close()
}
