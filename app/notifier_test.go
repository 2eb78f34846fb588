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
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	natsclient "github.com/mendersoftware/unifi-restarter/client/nats"
	"github.com/mendersoftware/unifi-restarter/model"
)

func newNATSServer(t *testing.T) string {
	srv, err := server.NewServer(&server.Options{Port: server.RANDOM_PORT})
	require.NoError(t, err)
	go srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("failed to setup NATS test server")
	}
	return srv.ClientURL()
}

func TestNewNotifierSlack(t *testing.T) {
	received := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := &bytes.Buffer{}
		_, _ = buf.ReadFrom(r.Body)
		received <- buf.String()
	}))
	defer srv.Close()

	notifier, err := NewNotifier(context.Background(), srv.URL+"/services/T0/B0/XXX", "unused")
	require.NoError(t, err)
	assert.IsType(t, slackNotifier{}, notifier)
	defer notifier.Close()

	err = notifier.Post(context.Background(), "hello")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"text":"hello"}`, <-received)
}

func TestNewNotifierNATS(t *testing.T) {
	uri := newNATSServer(t)

	testCases := []struct {
		Name string

		Path    string
		Subject string
	}{{
		Name:    "default subject",
		Subject: "unifi.restarter",
	}, {
		Name:    "subject from path",
		Path:    "/ops/wifi",
		Subject: "ops.wifi",
	}}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			conn, err := nats.Connect(uri)
			require.NoError(t, err)
			defer conn.Close()
			ch := make(chan *nats.Msg, 1)
			sub, err := conn.ChanSubscribe(tc.Subject, ch)
			require.NoError(t, err)
			defer sub.Unsubscribe()
			require.NoError(t, conn.Flush())

			notifier, err := NewNotifier(context.Background(), uri+tc.Path, "unifi.restarter")
			require.NoError(t, err)
			assert.IsType(t, &natsclient.Notifier{}, notifier)
			defer notifier.Close()

			require.NoError(t, notifier.Post(context.Background(), "hello"))
			select {
			case m := <-ch:
				var msg model.Notification
				require.NoError(t, msgpack.Unmarshal(m.Data, &msg))
				assert.Equal(t, "hello", msg.Text)
			case <-time.After(5 * time.Second):
				assert.FailNow(t, "timeout waiting for notification")
			}
		})
	}
}

func TestNewNotifierErrors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.Listener.Addr().String()
	srv.Close()

	testCases := map[string]struct {
		endpoint string
		err      string
	}{
		"unsupported scheme": {
			endpoint: "smtp://mail.example.com",
			err:      `unsupported notifier scheme "smtp"`,
		},
		"invalid url": {
			endpoint: "http://[::1",
			err:      "invalid notifier URL",
		},
		"nats server down": {
			endpoint: fmt.Sprintf("nats://%s", addr),
			err:      "nats: failed to connect",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			notifier, err := NewNotifier(context.Background(), tc.endpoint, "subj")
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.err)
			}
			assert.Nil(t, notifier)
		})
	}
}
