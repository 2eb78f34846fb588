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

package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultTimeout = time.Duration(10) * time.Second
	maxErrorBody   = 512
)

// Client is the slack incoming webhook client
//
//go:generate ../../utils/mockgen.sh
type Client interface {
	Post(ctx context.Context, text string) error
}

type ClientOptions struct {
	Client *http.Client
}

// NewClient returns a new slack webhook client
func NewClient(webhookURL string, opts ...ClientOptions) Client {
	// Initialize default options
	var clientOpts = ClientOptions{
		Client: &http.Client{},
	}
	// Merge options
	for _, opt := range opts {
		if opt.Client != nil {
			clientOpts.Client = opt.Client
		}
	}

	return &client{
		url:    webhookURL,
		client: *clientOpts.Client,
	}
}

type client struct {
	url    string
	client http.Client
}

// Message is the webhook payload
type Message struct {
	Text string `json:"text"`
}

func (c *client) Post(ctx context.Context, text string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}
	payload, _ := json.Marshal(Message{Text: text})
	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.url,
		bytes.NewReader(payload),
	)
	if err != nil {
		return errors.Wrap(err, "slack: error preparing HTTP request")
	}
	req.Header.Set("Content-Type", "application/json")

	rsp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "slack: failed to post message")
	}
	defer rsp.Body.Close()

	if rsp.StatusCode >= http.StatusOK && rsp.StatusCode < 300 {
		return nil
	}
	body, _ := ioutil.ReadAll(io.LimitReader(rsp.Body, maxErrorBody))
	if len(body) > 0 {
		return errors.Errorf(
			"slack: unexpected HTTP status from webhook: %s: %s",
			rsp.Status, bytes.TrimSpace(body),
		)
	}
	return errors.Errorf(
		"slack: unexpected HTTP status from webhook: %s",
		rsp.Status,
	)
}
