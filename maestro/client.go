// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package maestro

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/botcity-dev/botcity-maestro-sdk-go/ctxlog"
)

// A Client holds the Maestro portal address, the developer
// credentials, and the access token obtained via Login.
//
// The token is the only mutable state: it is written by Login and
// Logoff and read by every other method. The Client does not
// synchronize Login/Logoff against in-flight requests; callers
// sharing a Client across goroutines must serialize those themselves.
type Client struct {
	// HTTP client used to make requests. If nil, DefaultClient is
	// used.
	Client *http.Client `json:"-"`

	// Base URL of the Maestro portal, e.g.
	// "https://developers.botcity.dev". A single trailing slash is
	// stripped when the Client is constructed and again at Login.
	Server string

	// Login identifier issued by the portal (Dev. Environment page).
	UserLogin string

	// Access key paired with UserLogin.
	Key string

	// Token obtained via Login. Empty until Login succeeds; cleared
	// by Logoff.
	AccessToken string

	// Timeout for requests. Zero means no deadline beyond whatever
	// the request context carries.
	Timeout time.Duration
}

// DefaultClient is the http.Client used by a Client with Client==nil.
var DefaultClient = &http.Client{}

// NewClient returns a Client configured for the given portal and
// credentials. It performs no I/O.
func NewClient(server, login, key string) *Client {
	return &Client{
		Server:    normalizeServer(server),
		UserLogin: login,
		Key:       key,
	}
}

// NewClientFromEnv returns a Client configured from the
// BOTMAESTRO_SERVER, BOTMAESTRO_LOGIN and BOTMAESTRO_KEY environment
// variables.
func NewClientFromEnv() *Client {
	return NewClient(
		os.Getenv("BOTMAESTRO_SERVER"),
		os.Getenv("BOTMAESTRO_LOGIN"),
		os.Getenv("BOTMAESTRO_KEY"))
}

// normalizeServer strips exactly one trailing "/" so path
// concatenation does not produce double slashes.
func normalizeServer(server string) string {
	if strings.HasSuffix(server, "/") {
		server = server[:len(server)-1]
	}
	return server
}

// Login performs the login request and stores the resulting
// access token on the Client.
//
// Any token from a previous login is discarded first, whether or not
// the new login succeeds. Missing server/login/key fields fail with
// the corresponding ErrMissing* sentinel before any request is made;
// a non-200 response fails with *LoginError.
func (c *Client) Login(ctx context.Context) error {
	c.Server = normalizeServer(c.Server)
	if c.Server == "" {
		return ErrMissingServer
	}
	if c.UserLogin == "" {
		return ErrMissingLogin
	}
	if c.Key == "" {
		return ErrMissingKey
	}
	c.Logoff()

	params := url.Values{
		"userLogin": {c.UserLogin},
		"key":       {c.Key},
	}
	req, err := c.newRequest(ctx, "POST", "app/api/login", params)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &LoginError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(buf))}
	}
	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(buf, &body); err != nil {
		return &ProtocolError{URL: requestURL(req), Err: err}
	}
	if body.AccessToken == "" {
		return &ProtocolError{URL: requestURL(req), Err: errors.New("login response carried no access_token")}
	}
	c.AccessToken = body.AccessToken
	return nil
}

// Logoff discards the stored access token. It is a local state change
// only; no request is made and it never fails.
func (c *Client) Logoff() {
	c.AccessToken = ""
}

// ensureToken fails before any I/O when Login has not been called (or
// Logoff has been called since).
func (c *Client) ensureToken() error {
	if c.AccessToken == "" {
		return ErrNotLoggedIn
	}
	return nil
}

// newRequest builds a request for the given portal path. Params are
// sent as the query string for GET/HEAD and as a form-encoded body
// otherwise.
func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values) (*http.Request, error) {
	urlString := c.Server + "/" + path
	var body io.Reader
	if method == "GET" || method == "HEAD" {
		u, err := url.Parse(urlString)
		if err != nil {
			return nil, err
		}
		u.RawQuery = params.Encode()
		urlString = u.String()
	} else {
		body = strings.NewReader(params.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, urlString, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req, nil
}

// do applies the configured timeout, if any, and dispatches the
// request.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	ctxlog.FromContext(req.Context()).
		WithField("method", req.Method).
		WithField("url", requestURL(req)).
		Debug("maestro request")
	var cancel context.CancelFunc
	if c.Timeout > 0 {
		ctx := req.Context()
		ctx, cancel = context.WithDeadline(ctx, time.Now().Add(c.Timeout))
		req = req.WithContext(ctx)
	}
	resp, err := c.httpClient().Do(req)
	if err == nil && cancel != nil {
		// The deadline has to stay alive until the caller has
		// finished reading the response body, so cancel on body
		// Close instead of here.
		resp.Body = cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	} else if cancel != nil {
		cancel()
	}
	return resp, err
}

// cancelOnClose calls a provided CancelFunc when its wrapped
// ReadCloser's Close() method is called.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (coc cancelOnClose) Close() error {
	err := coc.ReadCloser.Close()
	coc.cancel()
	return err
}

// callRaw issues an authenticated request. The access token is
// attached as the access_token parameter; the caller owns the
// response body.
func (c *Client) callRaw(ctx context.Context, method, path string, params url.Values) (*http.Response, error) {
	if err := c.ensureToken(); err != nil {
		return nil, err
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.AccessToken)
	req, err := c.newRequest(ctx, method, path, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// call issues an authenticated request, enforces the 200-or-error
// policy, and decodes the response body into dst when dst is non-nil.
func (c *Client) call(ctx context.Context, dst interface{}, method, path string, params url.Values) error {
	resp, err := c.callRaw(ctx, method, path, params)
	if err != nil {
		return err
	}
	buf, err := readResponse(resp)
	if err != nil {
		return err
	}
	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(buf, dst); err != nil {
		return &ProtocolError{URL: requestURL(resp.Request), Err: err}
	}
	return nil
}

// readResponse drains and closes the response body. A non-200 status
// becomes an *APIError carrying the server's message; a 200 status
// yields the raw body.
func readResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp, buf)
	}
	return buf, nil
}

func (c *Client) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return DefaultClient
}

// requestURL renders a request URL without its query string, which
// carries the access token on GET requests.
func requestURL(req *http.Request) string {
	if req == nil || req.URL == nil {
		return ""
	}
	u := *req.URL
	u.RawQuery = ""
	return u.String()
}
