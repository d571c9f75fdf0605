package jobsuche

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

const (
	defaultBaseURL = "https://rest.arbeitsagentur.de/jobboerse/jobsuche-service"

	// Public client key published by the Bundesagentur für Arbeit.
	defaultAPIKey = "jobboerse-jobsuche"
)

// NewClient instantiates a Jobsuche API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = defaultAPIKey
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}, nil
}

// Search queries the job search endpoint with the given options
func (c *Client) Search(ctx context.Context, opts SearchOptions) (*SearchResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("jobsuche: client is nil")
	}

	u, err := c.buildSearchURL(opts)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var payload SearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("jobsuche: decode search response: %w", err)
	}

	return &payload, nil
}

// JobDetails fetches the full posting for one reference number. The raw
// response body is preserved on the returned struct.
func (c *Client) JobDetails(ctx context.Context, refnr string) (*JobDetails, error) {
	if c == nil {
		return nil, fmt.Errorf("jobsuche: client is nil")
	}
	if refnr == "" {
		return nil, fmt.Errorf("jobsuche: reference number is required")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("jobsuche: parse base url: %w", err)
	}

	// Reference numbers are base64url-encoded in the detail path.
	encoded := base64.URLEncoding.EncodeToString([]byte(refnr))
	u.Path = path.Join(u.Path, "pc", "v2", "jobdetails", encoded)

	body, err := c.get(ctx, u.String())
	if err != nil {
		return nil, err
	}

	var details JobDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("jobsuche: decode detail response: %w", err)
	}
	details.Raw = json.RawMessage(body)

	return &details, nil
}

func (c *Client) buildSearchURL(opts SearchOptions) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("jobsuche: parse base url: %w", err)
	}

	u.Path = path.Join(u.Path, "pc", "v4", "jobs")

	values := url.Values{}

	if opts.Was != "" {
		values.Set("was", opts.Was)
	}

	if opts.Wo != "" {
		values.Set("wo", opts.Wo)
	}

	if opts.Umkreis != nil {
		values.Set("umkreis", strconv.Itoa(*opts.Umkreis))
	}

	if len(opts.Arbeitszeit) > 0 {
		values.Set("arbeitszeit", strings.Join(opts.Arbeitszeit, ";"))
	}

	if len(opts.Befristung) > 0 {
		values.Set("befristung", strings.Join(opts.Befristung, ";"))
	}

	if opts.VeroeffentlichtSeit != nil {
		values.Set("veroeffentlichtseit", strconv.Itoa(*opts.VeroeffentlichtSeit))
	}

	values.Set("size", strconv.Itoa(opts.Size))

	if opts.Page != nil {
		values.Set("page", strconv.Itoa(*opts.Page))
	}

	u.RawQuery = values.Encode()
	return u.String(), nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("jobsuche: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jobsuche: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("jobsuche: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("jobsuche: read response: %w", err)
	}

	return body, nil
}
