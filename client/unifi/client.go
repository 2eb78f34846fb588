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

package unifi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/mendersoftware/unifi-restarter/model"
)

// unifi errors
var (
	ErrUnauthorized = errors.New("unifi: invalid credentials or session expired")
	ErrNotLoggedIn  = errors.New("unifi: not logged in")
)

const (
	loginURI         = "/api/login"
	logoutURI        = "/api/logout"
	unifiOSLoginURI  = "/api/auth/login"
	unifiOSLogoutURI = "/api/auth/logout"
	unifiOSPrefix    = "/proxy/network"

	sitesURI       = "/api/self/sites"
	devicesURI     = "/api/s/:site/stat/device"
	devmgrURI      = "/api/s/:site/cmd/devmgr"
	cmdRestart     = "restart"
	headerCSRF     = "X-CSRF-Token"
	headerCSRFNext = "X-Updated-CSRF-Token"
	rcOK           = "ok"
)

const (
	defaultTimeout = time.Duration(30) * time.Second
)

// HTTPClient interface
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is the UniFi network controller client
//
//go:generate ../../utils/mockgen.sh
type Client interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListDevices(ctx context.Context) ([]model.RawDevice, error)
	ListSites(ctx context.Context) ([]model.Site, error)
	RestartDevice(ctx context.Context, mac string) error
}

// Options configures the controller client
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	Site     string
	// Insecure disables verification of the controller certificate
	Insecure bool
	// UniFiOS selects the UniFi OS login endpoints and API prefix
	UniFiOS bool
	Timeout time.Duration
	// URL overrides the https://Host:Port base URL
	URL string
	// Client overrides the HTTP client; it must carry a cookie jar
	Client HTTPClient
}

type client struct {
	baseURL    string
	opts       Options
	httpClient HTTPClient

	csrfToken string
	loggedIn  bool
}

// NewClient returns a new controller client
func NewClient(opts Options) Client {
	baseURL := opts.URL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s:%d", opts.Host, opts.Port)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	httpClient := opts.Client
	if httpClient == nil {
		jar, _ := cookiejar.New(nil)
		httpClient = &http.Client{
			Jar:     jar,
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{
					//nolint:gosec
					InsecureSkipVerify: opts.Insecure,
				},
			},
		}
	}
	return &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		opts:       opts,
		httpClient: httpClient,
	}
}

type envelope struct {
	Meta struct {
		RC  string `json:"rc"`
		Msg string `json:"msg"`
	} `json:"meta"`
	Data json.RawMessage `json:"data"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type devmgrCommand struct {
	Cmd string `json:"cmd"`
	MAC string `json:"mac"`
}

func (c *client) apiURI(uri string) string {
	uri = strings.Replace(uri, ":site", url.PathEscape(c.opts.Site), 1)
	if c.opts.UniFiOS {
		return unifiOSPrefix + uri
	}
	return uri
}

func (c *client) newRequest(
	ctx context.Context,
	method, uri string,
	body interface{},
) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "unifi: failed to encode request")
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+uri, reader)
	if err != nil {
		return nil, errors.Wrap(err, "unifi: error preparing HTTP request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.csrfToken != "" {
		req.Header.Set(headerCSRF, c.csrfToken)
	}
	return req, nil
}

func (c *client) updateCSRF(rsp *http.Response) {
	if token := rsp.Header.Get(headerCSRFNext); token != "" {
		c.csrfToken = token
	} else if token := rsp.Header.Get(headerCSRF); token != "" {
		c.csrfToken = token
	}
}

// Login opens a session with the controller
func (c *client) Login(ctx context.Context) error {
	l := log.FromContext(ctx)

	uri := loginURI
	if c.opts.UniFiOS {
		uri = unifiOSLoginURI
	}
	req, err := c.newRequest(ctx, http.MethodPost, uri, credentials{
		Username: c.opts.Username,
		Password: c.opts.Password,
	})
	if err != nil {
		return err
	}
	l.Debugf("logging in to controller %s as %s", c.baseURL, c.opts.Username)

	rsp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "unifi: failed to connect to controller")
	}
	defer rsp.Body.Close()
	c.updateCSRF(rsp)

	switch rsp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return errors.Errorf(
			"unifi: login failed with unexpected status %s", rsp.Status)
	}
	c.loggedIn = true
	return nil
}

// Logout closes the controller session
func (c *client) Logout(ctx context.Context) error {
	if !c.loggedIn {
		return nil
	}
	uri := logoutURI
	if c.opts.UniFiOS {
		uri = unifiOSLogoutURI
	}
	req, err := c.newRequest(ctx, http.MethodPost, uri, nil)
	if err != nil {
		return err
	}
	rsp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "unifi: logout request failed")
	}
	defer rsp.Body.Close()
	c.loggedIn = false
	if rsp.StatusCode >= 300 {
		return errors.Errorf(
			"unifi: logout failed with unexpected status %s", rsp.Status)
	}
	return nil
}

// do performs an API call and decodes the data member of the response
// envelope into out
func (c *client) do(
	ctx context.Context,
	method, uri string,
	body, out interface{},
) error {
	if !c.loggedIn {
		return ErrNotLoggedIn
	}
	req, err := c.newRequest(ctx, method, uri, body)
	if err != nil {
		return err
	}
	rsp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "unifi: %s %s request failed", method, uri)
	}
	defer rsp.Body.Close()
	c.updateCSRF(rsp)

	if rsp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var env envelope
	decoder := json.NewDecoder(rsp.Body)
	decoder.UseNumber()
	decodeErr := decoder.Decode(&env)

	if rsp.StatusCode >= 300 {
		if decodeErr == nil && env.Meta.Msg != "" {
			return errors.Errorf("unifi: %s %s: %s (%s)",
				method, uri, env.Meta.Msg, rsp.Status)
		}
		return errors.Errorf("unifi: %s %s: unexpected status %s",
			method, uri, rsp.Status)
	}
	if decodeErr != nil {
		return errors.Wrapf(decodeErr, "unifi: error parsing %s response", uri)
	}
	if env.Meta.RC != rcOK {
		return errors.Errorf("unifi: %s %s: %s", method, uri, env.Meta.Msg)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	decoder = json.NewDecoder(bytes.NewReader(env.Data))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return errors.Wrapf(err, "unifi: error parsing %s response data", uri)
	}
	return nil
}

// ListDevices returns the raw device inventory of the configured site
func (c *client) ListDevices(ctx context.Context) ([]model.RawDevice, error) {
	devices := []model.RawDevice{}
	err := c.do(ctx, http.MethodGet, c.apiURI(devicesURI), nil, &devices)
	if err != nil {
		return nil, err
	}
	log.FromContext(ctx).Debugf("controller reported %d devices", len(devices))
	return devices, nil
}

// ListSites returns the sites known to the controller
func (c *client) ListSites(ctx context.Context) ([]model.Site, error) {
	sites := []model.Site{}
	err := c.do(ctx, http.MethodGet, c.apiURI(sitesURI), nil, &sites)
	if err != nil {
		return nil, err
	}
	return sites, nil
}

// RestartDevice asks the controller to reboot the device with the given
// hardware address, as reported by the inventory
func (c *client) RestartDevice(ctx context.Context, mac string) error {
	return c.do(ctx, http.MethodPost, c.apiURI(devmgrURI), devmgrCommand{
		Cmd: cmdRestart,
		MAC: mac,
	}, nil)
}
