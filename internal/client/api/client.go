// Package api is the data-access layer of the GroupPlan client: one
// authenticated HTTP/WebSocket client plus per-resource operations that keep
// the in-memory models in sync with server-confirmed state.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/avdenisov/groupplan/internal/common"
	"github.com/avdenisov/groupplan/internal/logging"
	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
)

// Client issues authenticated JSON calls against the GroupPlan server.
//
// The session cookie handed out by /api/auth lives in the http.Client's
// cookie jar and rides along on every request, including websocket dials.
// A 401 on any call fires the unauthenticated handler (the moral
// equivalent of the browser redirecting to /login) exactly once per
// response, then surfaces common.ErrUnauthorized.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	log      logging.Logger
	validate *validator.Validate

	onUnauthenticated func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. A cookie jar is
// installed if the given client has none.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the structured logger used for transport diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithUnauthenticatedHandler sets the callback fired when any call comes
// back 401. Injected rather than hard-coded so the consumer decides what
// "go to login" means.
func WithUnauthenticatedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthenticated = fn }
}

// New builds a Client for the server at baseURL (scheme://host[:port]).
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(optionalValue,
		optional.Optional[string]{},
		optional.Optional[*string]{},
		optional.Optional[bool]{},
		optional.Optional[models.EventState]{},
		optional.Optional[models.OptionResponse]{},
	)

	c := &Client{
		baseURL:  u,
		log:      logging.NewSlogLogger(slog.Default()),
		validate: v,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		c.http.Jar = jar
	}
	return c, nil
}

// BaseURL returns the configured server origin.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.String() + path
}

// wsEndpoint translates the base URL into its websocket counterpart.
func (c *Client) wsEndpoint(path string) string {
	scheme := "ws"
	if c.baseURL.Scheme == "https" {
		scheme = "wss"
	}
	return scheme + "://" + c.baseURL.Host + path
}

// optionalValue unwraps optional fields for the validator: the inner value
// when set, nil when unset or explicitly null so omitempty rules skip them.
func optionalValue(field reflect.Value) any {
	if !field.FieldByName("IsSet").Bool() {
		return nil
	}
	val := field.FieldByName("Val")
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	return val.Interface()
}

func (c *Client) validateParams(p any) error {
	if err := c.validate.Struct(p); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

// do runs one authenticated JSON exchange. body is marshalled when non-nil;
// the 2xx response body is decoded into out when out is non-nil. Failures
// are logged here so call sites can stay terse.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send finishes a prepared request: correlation id, status handling, JSON
// decoding. Used directly by the requests that are not plain JSON (avatar
// upload).
func (c *Client) send(req *http.Request, out any) error {
	resp, log, err := c.roundTrip(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error(req.Context(), "malformed response", "error", err)
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// sendRaw is send for binary payloads: the 2xx body is streamed into w.
func (c *Client) sendRaw(req *http.Request, w io.Writer) error {
	resp, log, err := c.roundTrip(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Error(req.Context(), "read response", "error", err)
		return fmt.Errorf("read response: %w", err)
	}
	return nil
}

// roundTrip executes the request and maps transport failures, 401 and other
// non-2xx statuses. On success the caller owns resp.Body.
func (c *Client) roundTrip(req *http.Request) (*http.Response, logging.Logger, error) {
	ctx := req.Context()
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	log := c.log.With("method", req.Method, "path", req.URL.Path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(ctx, "request failed", "error", err)
		return nil, nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		log.Warn(ctx, "session rejected")
		if c.onUnauthenticated != nil {
			c.onUnauthenticated()
		}
		return nil, nil, common.ErrUnauthorized
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var body errorBody
		_ = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "reason", body.text())
		return nil, nil, &Error{Status: resp.StatusCode, Message: body.text()}
	}

	return resp, log, nil
}
