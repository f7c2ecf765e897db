package assetbank

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Options{
		APIHost:     server.URL,
		AccessToken: "test-token",
		RateLimit:   1000,
	}, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	// Keep retry tests fast.
	client.http = server.Client()
	client.backoffBase = time.Millisecond

	return client, server
}

func TestNew_Configuration(t *testing.T) {
	logger := testLogger()

	if _, err := New(Options{AccessToken: "tok"}, logger); !errors.Is(err, ErrMissingHost) {
		t.Errorf("expected ErrMissingHost, got %v", err)
	}

	if _, err := New(Options{APIHost: "https://dam.example.com"}, logger); !errors.Is(err, ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}

	client, err := New(Options{APIHost: "https://dam.example.com/", AccessToken: "tok"}, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.host != "https://dam.example.com" {
		t.Errorf("expected trailing slash stripped, got %q", client.host)
	}
}

func TestClient_Get_EmptyURL(t *testing.T) {
	var requests atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))

	body, err := client.get(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != nil {
		t.Errorf("expected nil body, got %q", body)
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("expected no request for empty URL, got %d", n)
	}
}

func TestClient_RequestHeaders(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected json content type, got %q", got)
		}
		w.Write([]byte(`{"plainText":"ok"}`))
	}))

	result, err := GetByURL[PlainText](context.Background(), client, "/rest/anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.PlainText != "ok" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestClient_RetryClassification(t *testing.T) {
	tests := []struct {
		name string
		// statuses holds the response per attempt; the last repeats.
		statuses     []int
		wantAttempts int32
		wantStatus   int
		wantRateErr  bool
		wantOK       bool
	}{
		{
			name:         "404 aborts after first attempt",
			statuses:     []int{http.StatusNotFound},
			wantAttempts: 1,
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "400 aborts after first attempt",
			statuses:     []int{http.StatusBadRequest},
			wantAttempts: 1,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "429 retried to the ceiling",
			statuses:     []int{http.StatusTooManyRequests},
			wantAttempts: 4,
			wantRateErr:  true,
		},
		{
			name:         "500 then 200 succeeds",
			statuses:     []int{http.StatusInternalServerError, http.StatusOK},
			wantAttempts: 2,
			wantOK:       true,
		},
		{
			name:         "408 then 200 succeeds",
			statuses:     []int{http.StatusRequestTimeout, http.StatusOK},
			wantAttempts: 2,
			wantOK:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := int(attempts.Add(1)) - 1
				if n >= len(tt.statuses) {
					n = len(tt.statuses) - 1
				}
				status := tt.statuses[n]
				w.WriteHeader(status)
				if status == http.StatusOK {
					w.Write([]byte(`{"plainText":"payload"}`))
				}
			}))

			result, err := GetByURL[PlainText](context.Background(), client, "/rest/resource")

			if got := attempts.Load(); got != tt.wantAttempts {
				t.Errorf("got %d attempts, want %d", got, tt.wantAttempts)
			}

			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if result == nil || result.PlainText != "payload" {
					t.Errorf("unexpected result: %+v", result)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error")
			}

			if tt.wantRateErr {
				var rateErr *RateLimitError
				if !errors.As(err, &rateErr) {
					t.Errorf("expected RateLimitError, got %v", err)
				}
				return
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("got status %d, want %d", apiErr.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestClient_UnparsableJSONResolvesToNil(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))

	result, err := GetByURL[PlainText](context.Background(), client, "/rest/resource")
	if err != nil {
		t.Fatalf("lenient parsing should not error, got %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}
}

func TestClient_GetAssetDetails(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		response string
		wantNil  bool
		wantType MediaType
	}{
		{
			name:    "empty id short-circuits",
			id:      "",
			wantNil: true,
		},
		{
			name:     "missing type discriminator means absent",
			id:       "42",
			response: `{"attributes":[]}`,
			wantNil:  true,
		},
		{
			name:     "full asset",
			id:       "42",
			response: `{"type":"Image","thumbnailUrl":"https://cdn.example.com/t.jpg"}`,
			wantType: MediaImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/rest/assets/42" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				w.Write([]byte(tt.response))
			}))

			asset, err := client.GetAssetDetails(context.Background(), tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantNil {
				if asset != nil {
					t.Errorf("expected nil asset, got %+v", asset)
				}
				return
			}

			if asset == nil {
				t.Fatal("expected asset")
			}
			if asset.Type != tt.wantType {
				t.Errorf("got type %q, want %q", asset.Type, tt.wantType)
			}
		})
	}
}

func TestClient_GetAssetDetails_Idempotent(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"Image","attributes":[{"id":1,"name":"Title","value":"Sunset"}]}`))
	}))

	first, err := client.GetAssetDetails(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := client.GetAssetDetails(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == nil || second == nil {
		t.Fatal("expected assets")
	}
	if first.Type != second.Type || len(first.Attributes) != len(second.Attributes) {
		t.Errorf("expected structurally identical results, got %+v and %+v", first, second)
	}
	if first.Attributes[0] != second.Attributes[0] {
		t.Errorf("attribute mismatch: %+v vs %+v", first.Attributes[0], second.Attributes[0])
	}
}
