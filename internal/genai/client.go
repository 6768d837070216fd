package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resty.dev/v3"
)

// ErrRequestFailed wraps non-2xx responses from the endpoint.
var ErrRequestFailed = errors.New("generate content request failed")

// Client posts generateContent requests to a fixed endpoint. The endpoint
// carries any credentials (for example a ?key= query parameter).
type Client struct {
	httpClient *resty.Client
	endpoint   string
}

func NewClient(endpoint string) *Client {
	return &Client{
		httpClient: resty.New(),
		endpoint:   endpoint,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Endpoint returns the URL requests are posted to.
func (client *Client) Endpoint() string {
	return client.endpoint
}

// Generate implements Generator.
func (client *Client) Generate(ctx context.Context, text string) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(NewRequest(text)).
		Post(client.endpoint)
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("%w: response error %d: %s", ErrRequestFailed, response.StatusCode(), response.String())
	}

	var body GenerateContentResponse
	if err := json.Unmarshal([]byte(response.String()), &body); err != nil {
		return "", fmt.Errorf("json.Unmarshal > %w", err)
	}
	return ExtractText(body), nil
}
