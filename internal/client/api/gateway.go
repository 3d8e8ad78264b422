// Package api is the REST gateway client. Every request carries the current
// session's bearer token, and failures are classified in one place so the
// rest of the client only ever sees ErrUnauthorized, *RateLimitError or
// *APIError.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ahmchowd27/safesnap-client/internal/logging"
	"github.com/go-resty/resty/v2"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// string means "no session"; the request goes out without an Authorization
// header. The session manager satisfies this interface.
type TokenSource interface {
	Token() string
}

type Gateway struct {
	rc             *resty.Client
	tokens         TokenSource
	onUnauthorized func()
	log            logging.Logger
}

type Option func(*Gateway)

// WithTokenSource wires the session manager in as the token supplier.
func WithTokenSource(ts TokenSource) Option {
	return func(g *Gateway) { g.tokens = ts }
}

// WithUnauthorizedHook registers the callback fired on any 401, independent
// of which call triggered it. Wired to session purge + redirect-to-login.
func WithUnauthorizedHook(fn func()) Option {
	return func(g *Gateway) { g.onUnauthorized = fn }
}

func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.rc.SetTimeout(d) }
}

func WithLogger(l logging.Logger) Option {
	return func(g *Gateway) { g.log = l }
}

func New(baseURL string, opts ...Option) *Gateway {
	g := &Gateway{log: logging.NewNopLogger()}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	rc.OnBeforeRequest(func(c *resty.Client, r *resty.Request) error {
		if g.tokens != nil {
			if tok := g.tokens.Token(); tok != "" {
				r.SetHeader("Authorization", "Bearer "+tok)
			}
		}
		return nil
	})

	rc.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		return g.classify(resp)
	})

	g.rc = rc
	for _, o := range opts {
		o(g)
	}
	return g
}

// classify turns a non-success response into one of the gateway's error
// types. Runs for every response, so 401 handling is interceptor-level and
// cannot be bypassed by individual call sites.
func (g *Gateway) classify(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		if g.onUnauthorized != nil {
			g.onUnauthorized()
		}
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return rateLimitFrom(resp)
	default:
		return &APIError{Status: resp.StatusCode(), Message: serverMessage(resp.Body())}
	}
}

// errorBody is the shape error responses usually come in. Some endpoints use
// "message", others "error"; both are accepted.
type errorBody struct {
	Message    string `json:"message"`
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

func serverMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return defaultErrorMessage
}

func rateLimitFrom(resp *resty.Response) *RateLimitError {
	e := &RateLimitError{Message: defaultErrorMessage}

	var eb errorBody
	if err := json.Unmarshal(resp.Body(), &eb); err == nil {
		if eb.Message != "" {
			e.Message = eb.Message
		} else if eb.Error != "" {
			e.Message = eb.Error
		}
		if eb.RetryAfter > 0 {
			e.RetryAfter = time.Duration(eb.RetryAfter) * time.Second
		}
	}
	if e.RetryAfter == 0 {
		if s := resp.Header().Get("Retry-After"); s != "" {
			if secs, err := strconv.Atoi(s); err == nil {
				e.RetryAfter = time.Duration(secs) * time.Second
			}
		}
	}
	return e
}

func (g *Gateway) execute(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	req := g.rc.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	_, err := req.Execute(method, path)
	return err
}

// Generic verbs. The typed wrappers in auth.go, storage.go and incidents.go
// are built on these; they are exported so one-off endpoints don't need a
// wrapper of their own.

func (g *Gateway) Get(ctx context.Context, path string, query map[string]string, out any) error {
	return g.execute(ctx, resty.MethodGet, path, query, nil, out)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.execute(ctx, resty.MethodPost, path, nil, body, out)
}

func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.execute(ctx, resty.MethodPut, path, nil, body, out)
}

func (g *Gateway) Patch(ctx context.Context, path string, body, out any) error {
	return g.execute(ctx, resty.MethodPatch, path, nil, body, out)
}

func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.execute(ctx, resty.MethodDelete, path, nil, nil, nil)
}
