package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	dErrors "idverify/pkg/domain-errors"
)

// HTTPClient implements Client against the real pre-registration HTTP API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient builds a client for the given base URL. A zero timeout
// defaults to ten seconds.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type createResponse struct {
	Response struct {
		PreRegistrationID string `json:"preRegistrationId"`
	} `json:"response"`
}

func (c *HTTPClient) CreatePreRegistration(ctx context.Context, fields map[string]string) (PreRegistration, error) {
	body, err := json.Marshal(map[string]any{"request": fields})
	if err != nil {
		return PreRegistration{}, fmt.Errorf("marshal pre-registration: %w", err)
	}

	var out createResponse
	if err := c.do(ctx, http.MethodPost, "/preregistration/v1/applications", body, &out); err != nil {
		return PreRegistration{}, err
	}
	if out.Response.PreRegistrationID == "" {
		return PreRegistration{}, dErrors.New(dErrors.CodeUnavailable, "registry returned no pre-registration id")
	}
	return PreRegistration{
		ID:          out.Response.PreRegistrationID,
		SubmittedAt: time.Now(),
	}, nil
}

type statusResponse struct {
	Response struct {
		StatusCode string `json:"statusCode"`
	} `json:"response"`
}

func (c *HTTPClient) GetApplicationStatus(ctx context.Context, preRegID string) (ApplicationStatus, error) {
	var out statusResponse
	path := "/preregistration/v1/applications/status/" + preRegID
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", err
	}
	switch strings.ToLower(out.Response.StatusCode) {
	case "approved":
		return StatusApproved, nil
	case "rejected":
		return StatusRejected, nil
	default:
		return StatusPending, nil
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build registry request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "registry request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return dErrors.New(dErrors.CodeNotFound, "application not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return dErrors.New(dErrors.CodeUnavailable,
			fmt.Sprintf("registry returned status %d", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "malformed registry response")
	}
	return nil
}
