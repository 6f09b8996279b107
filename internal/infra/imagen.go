package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ImagenRequest is sent to the external image-generation service.
type ImagenRequest struct {
	Prompt string `json:"prompt"`
}

// ImagenResponse is returned by the image-generation service.
type ImagenResponse struct {
	URL string `json:"url"`
}

// ImagenClient delegates product photo generation to an external HTTP
// service. Calls go through a circuit breaker: when the service is down,
// product creation keeps working without an image instead of timing out.
type ImagenClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewImagenClient(baseURL string, cb *CircuitBreaker) *ImagenClient {
	return &ImagenClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cb:         cb,
	}
}

// Generar requests an image for the given prompt and returns its URL.
func (c *ImagenClient) Generar(ctx context.Context, prompt string) (string, error) {
	var url string
	err := c.cb.Execute(func() error {
		body, err := json.Marshal(ImagenRequest{Prompt: prompt})
		if err != nil {
			return fmt.Errorf("imagen: marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("imagen: create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("imagen: service unreachable: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("imagen: service returned %d", resp.StatusCode)
		}

		var result ImagenResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("imagen: decode response: %w", err)
		}
		url = result.URL
		return nil
	})
	return url, err
}
