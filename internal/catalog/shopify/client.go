// Package shopify is the production catalog source. It talks to the Shopify
// Storefront GraphQL API through the shared resilient HTTP client and maps
// responses onto domain types.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SpongeBUG/tierra-collectives/pkg/httpclient"
)

const accessTokenHeader = "X-Shopify-Storefront-Access-Token"

// Config carries the Storefront API connection settings.
type Config struct {
	StoreURL    string
	APIVersion  string
	AccessToken string
}

// Client is a minimal GraphQL client for the Storefront API.
type Client struct {
	endpoint string
	token    string
	http     *httpclient.CircuitBreakerClient
	logger   *slog.Logger
}

// NewClient builds a client for the given store. The endpoint follows the
// Storefront convention {store}/api/{version}/graphql.json.
func NewClient(cfg Config, httpClient *httpclient.CircuitBreakerClient, logger *slog.Logger) *Client {
	return &Client{
		endpoint: fmt.Sprintf("%s/api/%s/graphql.json", strings.TrimRight(cfg.StoreURL, "/"), cfg.APIVersion),
		token:    cfg.AccessToken,
		http:     httpClient,
		logger:   logger,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// statusError is a non-2xx HTTP response from the API.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("storefront api returned status %d", e.status)
}

// query executes a GraphQL query and decodes the data field into out.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshaling graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessTokenHeader, c.token)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("calling storefront api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return &statusError{status: resp.StatusCode}
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decoding graphql data: %w", err)
	}
	return nil
}
