// Package openai talks to OpenAI-compatible model-listing endpoints and
// caches the results per configured source.
package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/modelscout/cli/internal/config"
	apperrors "github.com/modelscout/cli/internal/errors"
)

const defaultBaseURL = "https://api.openai.com"

// Client lists models from one configured source.
type Client struct {
	source  config.Source
	rc      *resty.Client
	limiter *rate.Limiter
}

// NewClient creates a client for the given source. A host override on
// the source replaces the default API base URL; a logging key is
// forwarded to the logging proxy via its auth header.
func NewClient(src config.Source, debug bool) *Client {
	rc := resty.New().
		SetBaseURL(baseURL(src)).
		SetTimeout(30 * time.Second).
		SetAuthToken(src.APIKey).
		SetHeader("Content-Type", "application/json").
		SetDebug(debug)

	// Debug dumps must never echo credentials.
	rc.OnRequestLog(func(rl *resty.RequestLog) error {
		redactLogHeaders(rl.Header)
		return nil
	})

	if src.OrgID != "" {
		rc.SetHeader("OpenAI-Organization", src.OrgID)
	}
	if src.LoggingKey != "" {
		rc.SetHeader("Helicone-Auth", "Bearer "+src.LoggingKey)
	}

	return &Client{
		source:  src,
		rc:      rc,
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// baseURL resolves the API base for a source. Host overrides without a
// scheme get https.
func baseURL(src config.Source) string {
	host := strings.TrimSpace(src.Host)
	if host == "" {
		return defaultBaseURL
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	return strings.TrimSuffix(host, "/")
}

// redactLogHeaders masks credential-bearing headers before they reach
// the debug log.
func redactLogHeaders(h http.Header) {
	for _, name := range []string{"Authorization", "Helicone-Auth"} {
		if h.Get(name) != "" {
			h.Set(name, "[REDACTED]")
		}
	}
}

// ListModels fetches the raw model descriptors in listing order.
func (c *Client) ListModels(ctx context.Context) ([]ModelDescriptor, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperrors.RuntimeError(err)
	}

	var out modelsResponse
	var apiErr apiErrorResponse

	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		Get("/v1/models")
	if err != nil {
		return nil, apperrors.NetworkError(fmt.Errorf("failed to reach %s: %w", c.rc.BaseURL, err))
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return nil, apperrors.AuthErrorWithContext(
			statusError(resp.StatusCode(), apiErr),
			fmt.Sprintf("Check the API key for source %q.", c.source.DisplayName()),
		)
	case !resp.IsSuccess():
		return nil, apperrors.APIError(statusError(resp.StatusCode(), apiErr))
	}

	return out.Data, nil
}

func statusError(code int, apiErr apiErrorResponse) error {
	if apiErr.Error.Message != "" {
		return fmt.Errorf("provider returned status %d: %s", code, apiErr.Error.Message)
	}
	return fmt.Errorf("provider returned status %d", code)
}
