// Package client talks to the remote Evaluapp REST API. It is the only place
// that touches the network; everything it hands out has already been through
// the coercion rules that repair the API's loosely typed records.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client wraps the remote exam API. Every call is a single synchronous
// request; failures are never retried so a submit can never be duplicated
// silently.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL. A timeout of 0 leaves the
// underlying client without one.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// getJSON issues a GET and decodes the body into out. Numbers are decoded as
// json.Number so id coercion can tell strings and numbers apart. A JSON
// "null" body leaves out untouched; list callers turn that into an empty
// slice.
func (c *Client) getJSON(path string, out any) error {
	url := c.baseURL + path
	res, err := c.http.Get(url)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	if res.StatusCode/100 != 2 {
		return newHTTPError(res.StatusCode, body)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// postJSON issues a POST with a JSON payload and, when the response has a
// body, decodes it into out.
func (c *Client) postJSON(path string, payload, out any) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", path, err)
	}

	url := c.baseURL + path
	res, err := c.http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	if res.StatusCode/100 != 2 {
		return newHTTPError(res.StatusCode, body)
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
