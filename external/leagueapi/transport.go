package leagueapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MaxResponseBodySize caps how much of an upstream body is read.
const MaxResponseBodySize = 6 << 20

// Request is one outbound call. Body is nil for reads.
type Request struct {
	Method string
	URL    string
	Body   []byte
}

type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs exactly one round trip. Implementations must not retry
// and must stop waiting once ctx is done.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
}

// HTTPTransport sends requests with net/http, traced through otelhttp.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps client (or a fresh one) with otelhttp. No client
// timeout is set; the caller's context bounds the call.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{}
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *client
	wrapped.Transport = otelhttp.NewTransport(base,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "leagueapi " + r.Method + " " + r.URL.Query().Get("endpoint")
		}),
	)
	return &HTTPTransport{client: &wrapped}
}

func (t *HTTPTransport) Do(ctx context.Context, in Request) (Response, error) {
	var body io.Reader
	if in.Body != nil {
		body = bytes.NewReader(in.Body)
	}

	req, err := http.NewRequestWithContext(ctx, in.Method, in.URL, body)
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBodySize))
	if err != nil {
		return Response{}, fmt.Errorf("read response body: %w", err)
	}

	return Response{StatusCode: resp.StatusCode, Body: raw}, nil
}

// FastHTTPTransport sends requests with valyala/fasthttp. fasthttp has no
// context support, so the context deadline becomes the request deadline and
// cancellation is checked around the call.
type FastHTTPTransport struct {
	client *fasthttp.Client
}

// NewFastHTTPTransport makes every call a single attempt. fasthttp retries
// GET and PUT up to five times by default; that is switched off here, also
// on a caller-supplied client, which must not have been used yet.
func NewFastHTTPTransport(client *fasthttp.Client) *FastHTTPTransport {
	if client == nil {
		client = &fasthttp.Client{
			Name:                "shl-web",
			MaxResponseBodySize: MaxResponseBodySize,
		}
	}
	client.MaxIdemponentCallAttempts = 1
	client.RetryIfErr = neverRetry
	return &FastHTTPTransport{client: client}
}

func neverRetry(*fasthttp.Request, int, error) (resetTimeout bool, retry bool) {
	return false, false
}

func (t *FastHTTPTransport) Do(ctx context.Context, in Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(in.URL)
	req.Header.SetMethod(in.Method)
	req.Header.Set("Accept", "application/json")
	if in.Body != nil {
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(in.Body)
	}

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = t.client.DoDeadline(req, resp, deadline)
	} else {
		err = t.client.Do(req, resp)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Response{}, ctxErr
	}
	if err != nil {
		return Response{}, fmt.Errorf("send request: %w", err)
	}

	raw := append([]byte(nil), resp.Body()...)
	return Response{StatusCode: resp.StatusCode(), Body: raw}, nil
}
