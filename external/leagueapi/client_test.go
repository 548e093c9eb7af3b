package leagueapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newTestClient(t *testing.T, baseURL string, transport Transport) *Client {
	t.Helper()

	client, err := NewClient(ClientConfig{BaseURL: baseURL, Transport: transport})
	require.NoError(t, err)
	return client
}

func TestClient_ReadSendsEndpointQuery(t *testing.T) {
	t.Parallel()

	var gotMethod, gotEndpoint, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotEndpoint = r.URL.Query().Get("endpoint")
		gotToken = r.URL.Query().Get("stage")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"conferences":[{"id":1,"name":"Запад","teams":[{"id":3,"name":"Alpha","position":1,"points":20}]}]}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/league?stage=prod", nil)
	conferences, err := client.GetStandings(context.Background())
	if err != nil {
		t.Fatalf("get standings: %v", err)
	}

	if gotMethod != http.MethodGet {
		t.Fatalf("unexpected method: %s", gotMethod)
	}
	if gotEndpoint != "standings" {
		t.Fatalf("unexpected endpoint query: %q", gotEndpoint)
	}
	if gotToken != "prod" {
		t.Fatalf("expected base url query to be preserved, got %q", gotToken)
	}
	if len(conferences) != 1 || len(conferences[0].Teams) != 1 {
		t.Fatalf("unexpected standings payload: %+v", conferences)
	}
	if conferences[0].Teams[0].Points != 20 {
		t.Fatalf("unexpected points: %d", conferences[0].Teams[0].Points)
	}
}

func TestClient_WriteSendsJSONBody(t *testing.T) {
	t.Parallel()

	var (
		gotMethod      string
		gotContentType string
		gotEndpoint    string
		gotBody        map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotEndpoint = r.URL.Query().Get("endpoint")
		raw, _ := io.ReadAll(r.Body)
		_ = sonic.Unmarshal(raw, &gotBody)
		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	err := client.UpdateRegulation(context.Background(), regulation.Regulation{ID: 4, Title: "Rule 1", Content: "No fighting"})
	if err != nil {
		t.Fatalf("update regulation: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Fatalf("unexpected method: %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type: %q", gotContentType)
	}
	if gotEndpoint != "admin/regulations" {
		t.Fatalf("unexpected endpoint: %q", gotEndpoint)
	}
	if gotBody["title"] != "Rule 1" || gotBody["content"] != "No fighting" || gotBody["order_index"] != float64(0) {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
}

func TestClient_WriteRejectsUnsupportedMethodBeforeSending(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	err := client.Write(context.Background(), ResourceAdminTeams, team.Team{ID: 1, Name: "Alpha"}, http.MethodDelete, nil)
	if !errors.Is(err, ErrUnsupportedMethod) {
		t.Fatalf("expected ErrUnsupportedMethod, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no request, got %d", calls.Load())
	}
}

func TestClient_ClassifiesFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "non 2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = io.WriteString(w, `{"error":"Endpoint not found"}`)
			},
			want: ErrStatus,
		},
		{
			name: "html body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `<html>gateway</html>`)
			},
			want: ErrDecode,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			want: ErrDecode,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := newTestClient(t, server.URL, nil)
			_, err := client.GetSchedule(context.Background())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestClient_StatusCodeIsExposed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	err := client.AddRegulation(context.Background(), regulation.Regulation{Title: "t", Content: "c"})
	if got := StatusCode(err); got != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d (%v)", got, err)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := newTestClient(t, baseURL, nil)
	_, err := client.GetTeams(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestClient_CancelledContextStopsRead(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	for name, transport := range map[string]Transport{
		"net/http": NewHTTPTransport(nil),
		"fasthttp": NewFastHTTPTransport(nil),
	} {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, server.URL, transport)
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			started := time.Now()
			_, err := client.GetRegulations(ctx)
			if !errors.Is(err, ErrTransport) {
				t.Fatalf("expected ErrTransport, got %v", err)
			}
			if time.Since(started) > 2*time.Second {
				t.Fatalf("read did not stop with its context")
			}
		})
	}
}

func TestFastHTTPTransport_RoundTrip(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, NewFastHTTPTransport(nil))
	var result WriteResult
	err := client.Write(context.Background(), ResourceAdminTeams, team.Team{ID: 1, Name: "Alpha"}, "post", &result)
	if err != nil {
		t.Fatalf("write through fasthttp: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success acknowledgement")
	}
}

func TestTransports_SingleAttemptOnDroppedConnection(t *testing.T) {
	t.Parallel()

	var gets, puts, posts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			gets.Add(1)
		case http.MethodPut:
			puts.Add(1)
		case http.MethodPost:
			posts.Add(1)
		}
		conn, _, err := w.(http.Hijacker).Hijack()
		if err != nil {
			t.Errorf("hijack: %v", err)
			return
		}
		_ = conn.Close()
	}))
	defer server.Close()

	transports := map[string]func() Transport{
		"net/http": func() Transport { return NewHTTPTransport(nil) },
		"fasthttp": func() Transport { return NewFastHTTPTransport(nil) },
	}
	for name, build := range transports {
		gets.Store(0)
		puts.Store(0)
		posts.Store(0)
		client := newTestClient(t, server.URL, build())
		ctx := context.Background()

		var standings ConferencesResponse
		if err := client.Read(ctx, ResourceStandings, &standings); !errors.Is(err, ErrTransport) {
			t.Fatalf("%s: expected ErrTransport on read, got %v", name, err)
		}
		if err := client.Write(ctx, ResourceAdminRegulations, regulation.Regulation{ID: 1, Title: "T", Content: "C"}, http.MethodPut, nil); !errors.Is(err, ErrTransport) {
			t.Fatalf("%s: expected ErrTransport on put, got %v", name, err)
		}
		if err := client.Write(ctx, ResourceAdminTeams, team.Team{ID: 1, Name: "Alpha"}, http.MethodPost, nil); !errors.Is(err, ErrTransport) {
			t.Fatalf("%s: expected ErrTransport on post, got %v", name, err)
		}

		if gets.Load() != 1 || puts.Load() != 1 || posts.Load() != 1 {
			t.Fatalf("%s: expected one attempt per call, got get=%d put=%d post=%d", name, gets.Load(), puts.Load(), posts.Load())
		}
	}
}

func TestNewFastHTTPTransport_DisablesRetriesOnGivenClient(t *testing.T) {
	t.Parallel()

	client := &fasthttp.Client{}
	NewFastHTTPTransport(client)

	require.Equal(t, 1, client.MaxIdemponentCallAttempts)
	require.NotNil(t, client.RetryIfErr)
	reset, retry := client.RetryIfErr(nil, 1, io.ErrUnexpectedEOF)
	require.False(t, reset)
	require.False(t, retry)
	require.Zero(t, client.ReadTimeout)
}

func TestNewClient_RejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "ftp://example.com", "://broken"} {
		if _, err := NewClient(ClientConfig{BaseURL: raw}); err == nil {
			t.Fatalf("expected error for base url %q", raw)
		}
	}
}
