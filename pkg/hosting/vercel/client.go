// Package vercel provides a hosting.Client implementation backed by the
// Vercel v13 deployments API.
package vercel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bloghub/pkg/hosting"
	"bloghub/pkg/serrors"
)

// DeploymentsURL is the Vercel endpoint accepting new deployments.
const DeploymentsURL = "https://api.vercel.com/v13/deployments"

// Client talks to the Vercel REST API and fulfills the hosting.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to Vercel
	token      string       // token is the Vercel API bearer credential
}

// Deploy submits the deployment to Vercel, requesting the given target
// environment with no framework preset. It returns the provider's raw JSON
// response on success. On a non-2xx response the provider's error body is
// attached to the returned error verbatim. The call is bounded by ctx; no
// retries are performed and deployment completion is not polled.
func (c *Client) Deploy(ctx context.Context, deployment hosting.Deployment) (json.RawMessage, error) {
	// https://vercel.com/docs/rest-api/endpoints/deployments#create-a-new-deployment
	type deployReq struct {
		Name            string         `json:"name"`
		Files           []hosting.File `json:"files"`
		Target          string         `json:"target"`
		ProjectSettings struct {
			Framework *string `json:"framework"`
		} `json:"projectSettings"`
	}
	bodyBytes, err := json.Marshal(deployReq{
		Name:   deployment.Name,
		Files:  deployment.Files,
		Target: deployment.Target,
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		DeploymentsURL,
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach deployment provider")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// surface the provider's error detail verbatim
		return nil, serrors.With(serrors.ErrUnavailable, "%s", strings.TrimSpace(string(b)))
	}

	return b, nil
}

// Ensure Client conforms to the hosting.Client interface at compile time.
var _ hosting.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API token to
// interact with the Vercel API. Request timeouts are whatever the http.Client
// enforces plus any deadline carried by the per-call context.
func New(httpClient *http.Client, token string) *Client {
	return &Client{
		httpClient: httpClient,
		token:      token,
	}
}
