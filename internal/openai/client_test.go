package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelscout/cli/internal/config"
	apperrors "github.com/modelscout/cli/internal/errors"
)

func setupTestServer(t *testing.T, src config.Source, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	src.Host = server.URL
	return NewClient(src, false)
}

func TestListModels(t *testing.T) {
	src := config.Source{ID: "src-1", APIKey: "sk-test", OrgID: "org-42", LoggingKey: "hl-log"}

	client := setupTestServer(t, src, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("Authorization = %q", auth)
		}
		if org := r.Header.Get("OpenAI-Organization"); org != "org-42" {
			t.Errorf("OpenAI-Organization = %q", org)
		}
		if hl := r.Header.Get("Helicone-Auth"); hl != "Bearer hl-log" {
			t.Errorf("Helicone-Auth = %q", hl)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[
			{"id":"gpt-4","created":1687882411,"owned_by":"openai"},
			{"id":"gpt-4-0314","created":1687882410,"owned_by":"openai"}
		]}`))
	})

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("got %d models, want 2", len(models))
	}
	if models[0].ID != "gpt-4" || models[0].Created != 1687882411 {
		t.Errorf("unexpected first descriptor: %+v", models[0])
	}
}

func TestListModelsNoOptionalHeaders(t *testing.T) {
	src := config.Source{ID: "src-1", APIKey: "sk-test"}

	client := setupTestServer(t, src, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Openai-Organization"]; ok {
			t.Error("OpenAI-Organization should not be sent without an org ID")
		}
		if _, ok := r.Header["Helicone-Auth"]; ok {
			t.Error("Helicone-Auth should not be sent without a logging key")
		}
		w.Write([]byte(`{"object":"list","data":[]}`))
	})

	if _, err := client.ListModels(context.Background()); err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}
}

func TestListModelsPacesRequests(t *testing.T) {
	if testing.Short() {
		t.Skip("pacing test sleeps")
	}

	client := setupTestServer(t, config.Source{ID: "s", APIKey: "sk-test"}, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"object":"list","data":[]}`))
	})

	// Burst allows two immediate calls; the third has to wait for the
	// limiter to refill.
	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := client.ListModels(context.Background()); err != nil {
			t.Fatalf("ListModels() call %d error = %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed < 500*time.Millisecond {
		t.Errorf("3 calls finished in %v, limiter should have delayed the third", elapsed)
	}
}

func TestRedactLogHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer sk-secret")
	h.Set("Helicone-Auth", "Bearer hl-secret")
	h.Set("Content-Type", "application/json")

	redactLogHeaders(h)

	if got := h.Get("Authorization"); got != "[REDACTED]" {
		t.Errorf("Authorization = %q after redaction", got)
	}
	if got := h.Get("Helicone-Auth"); got != "[REDACTED]" {
		t.Errorf("Helicone-Auth = %q after redaction", got)
	}
	if got := h.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, should be untouched", got)
	}
}

func TestListModelsErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantType   apperrors.ErrorType
	}{
		{
			name:       "invalid key",
			statusCode: http.StatusUnauthorized,
			body:       `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`,
			wantType:   apperrors.ErrorTypeAuth,
		},
		{
			name:       "forbidden org",
			statusCode: http.StatusForbidden,
			body:       `{"error":{"message":"You are not a member of this organization"}}`,
			wantType:   apperrors.ErrorTypeAuth,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			body:       `{"error":{"message":"The server had an error"}}`,
			wantType:   apperrors.ErrorTypeAPI,
		},
		{
			name:       "rate limited",
			statusCode: http.StatusTooManyRequests,
			body:       `{"error":{"message":"Rate limit reached"}}`,
			wantType:   apperrors.ErrorTypeAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestServer(t, config.Source{ID: "s", APIKey: "sk-test"}, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			})

			_, err := client.ListModels(context.Background())
			if err == nil {
				t.Fatal("ListModels() expected error")
			}

			cliErr, ok := err.(*apperrors.CLIError)
			if !ok {
				t.Fatalf("error is %T, want *CLIError", err)
			}
			if cliErr.Type != tt.wantType {
				t.Errorf("error type = %v, want %v", cliErr.Type, tt.wantType)
			}
		})
	}
}

func TestListModelsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(config.Source{ID: "s", APIKey: "sk-test", Host: url}, false)

	_, err := client.ListModels(context.Background())
	if err == nil {
		t.Fatal("ListModels() expected error")
	}
	cliErr, ok := err.(*apperrors.CLIError)
	if !ok {
		t.Fatalf("error is %T, want *CLIError", err)
	}
	if cliErr.Type != apperrors.ErrorTypeNetwork {
		t.Errorf("error type = %v, want network", cliErr.Type)
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"", defaultBaseURL},
		{"https://oai.hconeai.com", "https://oai.hconeai.com"},
		{"oai.hconeai.com", "https://oai.hconeai.com"},
		{"http://localhost:8080/", "http://localhost:8080"},
	}

	for _, tt := range tests {
		got := baseURL(config.Source{Host: tt.host})
		if got != tt.want {
			t.Errorf("baseURL(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}
