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
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
)

var natsPort int32 = 42069

func NewNATSTestServer(t *testing.T) (URI string) {
	port := atomic.AddInt32(&natsPort, 1)
	opts := &server.Options{
		Port: int(port),
	}
	srv, err := server.NewServer(opts)
	if err != nil {
		panic(err)
	}
	go srv.Start()
	t.Cleanup(srv.Shutdown)

	// Spinlock until go routine is listening
	for i := 0; srv.Addr() == nil && i < 1000; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if srv.Addr() == nil {
		panic("failed to setup NATS test server")
	}
	uri, err := url.Parse("nats://" + srv.Addr().String())
	if err != nil {
		panic(err)
	}

	return uri.String()
}

func TestPublishSubscribe(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Name string

		CTX      context.Context
		URI      string
		SubTopic string
		OnRecv   func(t *testing.T, ch chan *nats.Msg)

		ClientError string
		SubError    error
		FlushError  error
	}{{
		Name: "ok",

		CTX:      context.Background(),
		SubTopic: "foo.bar",
		OnRecv: func(t *testing.T, ch chan *nats.Msg) {
			select {
			case <-ch:
			case <-time.After(time.Second * 5):
				assert.FailNow(t, "timeout waiting for message")
			}
		},
	}, {
		Name: "error invalid URI",

		CTX:         context.Background(),
		URI:         "bats://localhost",
		ClientError: "nats: failed to connect",
	}, {
		Name: "error bad topic",

		SubTopic: ".foo.bar",
		SubError: nats.ErrBadSubject,
	}, {
		Name: "error context cancelled",

		CTX: func() context.Context {
			ctx, cancel := context.WithCancel(context.TODO())
			cancel()
			return ctx
		}(),
		SubTopic:   "foo.bar",
		FlushError: context.Canceled,
	}}
	for i := range testCases {
		tc := testCases[i]
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			uri := NewNATSTestServer(t)
			if tc.URI != "" {
				uri = tc.URI
			}
			conn, err := NewClientWithDefaults(context.Background(), uri)
			if tc.ClientError != "" {
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tc.ClientError)
				}
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			defer conn.Close()

			subscriber, err := nats.Connect(uri)
			if !assert.NoError(t, err) {
				return
			}
			defer subscriber.Close()
			ch := make(chan *nats.Msg, 1)
			s, err := subscriber.ChanSubscribe(tc.SubTopic, ch)
			if err == nil {
				defer s.Unsubscribe()
			}
			if tc.SubError != nil {
				if assert.Error(t, err) {
					assert.Regexp(t, tc.SubError.Error(), err.Error())
				}
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			if !assert.NoError(t, subscriber.Flush()) {
				return
			}
			err = conn.Publish(tc.SubTopic, []byte("payload"))
			assert.NoError(t, err)

			err = conn.Flush(tc.CTX)
			if tc.FlushError != nil {
				if assert.Error(t, err) {
					assert.Regexp(t, tc.FlushError.Error(), err.Error())
				}
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			if tc.OnRecv != nil {
				tc.OnRecv(t, ch)
			}
		})
	}
}
