// Package actionclient is the Go counterpart of the browser-side action
// bridge: it turns an action name and argument list into an HTTP call against
// the catch-all action endpoint and always yields the uniform envelope, so
// callers never distinguish transport failures from application failures.
package actionclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Envelope mirrors the wire shape every action answers with.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// DecodeData unmarshals the envelope payload into v.
func (e Envelope) DecodeData(v any) error {
	return json.Unmarshal(e.Data, v)
}

func fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

const defaultTimeout = 30 * time.Second

// Client calls named actions on one deployment. It keeps a cookie jar so the
// admin session issued by login round-trips on subsequent calls.
type Client struct {
	base   *url.URL
	prefix string
	http   *http.Client
}

// New returns a client for the admin action endpoint of baseURL.
func New(baseURL string) (*Client, error) {
	return newClient(baseURL, "/api/admin")
}

// NewSite returns a client for the public-site action endpoint of baseURL.
func NewSite(baseURL string) (*Client, error) {
	return newClient(baseURL, "/api/site")
}

func newClient(baseURL, prefix string) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("actionclient: parse base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("actionclient: cookie jar: %w", err)
	}
	return &Client{
		base:   base,
		prefix: prefix,
		http:   &http.Client{Jar: jar, Timeout: defaultTimeout},
	}, nil
}

// Call invokes the named action with the given arguments. The dash-joined
// name becomes path segments; the arguments post as a JSON array. Any
// transport failure maps into the failure envelope.
func (c *Client) Call(ctx context.Context, name string, args ...any) Envelope {
	if args == nil {
		args = []any{}
	}
	body, err := json.Marshal(args)
	if err != nil {
		return fail(err.Error())
	}

	endpoint := *c.base
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + c.prefix + "/" + strings.ReplaceAll(name, "-", "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return fail(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Error != "" {
			return fail(body.Error)
		}
		return fail(fmt.Sprintf("request failed with status %d", resp.StatusCode))
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fail(err.Error())
	}
	return env
}
