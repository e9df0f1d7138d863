package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	apperrors "skytails/internal/errors"
	"skytails/internal/handler"
	"skytails/internal/service"
)

// Client is the API client used by the onboarding TUI. The cookie jar keeps
// the session cookie minted at submission so the follow-up dashboard fetch
// is authenticated.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given server base URL.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}, nil
}

// SubmitOnboarding posts the wizard payload. A non-201 response is returned
// as an error carrying the server's message.
func (c *Client) SubmitOnboarding(ctx context.Context, input *service.OnboardingInput) (*handler.OnboardingResponse, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/onboarding", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var apiErr apperrors.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			if apiErr.Field != "" {
				return nil, fmt.Errorf("%s: %s", apiErr.Field, apiErr.Message)
			}
			return nil, fmt.Errorf("%s", apiErr.Message)
		}
		return nil, fmt.Errorf("submission failed with status %d", resp.StatusCode)
	}

	var result handler.OnboardingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}

// Dashboard fetches the authenticated dashboard view.
func (c *Client) Dashboard(ctx context.Context) (*service.DashboardView, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/dashboard", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dashboard fetch failed with status %d", resp.StatusCode)
	}

	var view service.DashboardView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return nil, fmt.Errorf("decode dashboard: %w", err)
	}
	return &view, nil
}
