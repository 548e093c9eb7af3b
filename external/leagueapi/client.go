package leagueapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("hockey-league/external/leagueapi")

type ClientConfig struct {
	BaseURL   string
	Transport Transport
	Logger    *logging.Logger
}

// Client talks to the league endpoint. Every call is a single attempt:
// no retries, no backoff, no timeout of its own.
type Client struct {
	baseURL   *url.URL
	transport Transport
	logger    *logging.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, crerr.New("league api base url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse league api base url %q", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, crerr.Newf("%q uses unsupported scheme=%q; expected http or https", raw, parsed.Scheme)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = NewHTTPTransport(nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		baseURL:   parsed,
		transport: transport,
		logger:    logger.Named("leagueapi"),
	}, nil
}

// Read issues GET <base>?endpoint=<resource> and decodes the JSON body into target.
func (c *Client) Read(ctx context.Context, resource Resource, target any) error {
	return c.do(ctx, http.MethodGet, resource, nil, target)
}

// Write sends payload as JSON with POST or PUT and decodes the JSON response
// into target, which may be nil. Other methods fail with ErrUnsupportedMethod
// before anything is sent.
func (c *Client) Write(ctx context.Context, resource Resource, payload any, method string, target any) error {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method != http.MethodPost && method != http.MethodPut {
		return fmt.Errorf("%w: %q for %s", ErrUnsupportedMethod, method, resource)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return crerr.Wrapf(err, "encode %s payload", resource)
	}
	body := append([]byte(nil), buf.B...)

	if target == nil {
		target = &WriteResult{}
	}
	return c.do(ctx, method, resource, body, target)
}

func (c *Client) do(ctx context.Context, method string, resource Resource, body []byte, target any) error {
	ctx, span := tracer.Start(ctx, "leagueapi.Client."+strings.ToLower(method))
	defer span.End()
	span.SetAttributes(
		attribute.String("leagueapi.resource", string(resource)),
		attribute.String("http.request.method", method),
	)

	resp, err := c.transport.Do(ctx, Request{Method: method, URL: c.resourceURL(resource), Body: body})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		c.logger.DebugContext(ctx, "league api request failed", "resource", resource, "method", method, "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, resource, err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := &StatusError{Code: resp.StatusCode, Body: abbreviateBody(resp.Body)}
		span.SetStatus(codes.Error, "unexpected status")
		return fmt.Errorf("%s %s: %w", method, resource, err)
	}

	if err := sonic.Unmarshal(resp.Body, target); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failure")
		return fmt.Errorf("%w: %s %s: %w", ErrDecode, method, resource, err)
	}

	return nil
}

func (c *Client) resourceURL(resource Resource) string {
	u := *c.baseURL
	if u.Path == "" {
		u.Path = "/"
	}
	query := u.Query()
	query.Set("endpoint", string(resource))
	u.RawQuery = query.Encode()
	return u.String()
}
