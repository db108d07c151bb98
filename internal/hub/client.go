package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultEndpoint is the public Hugging Face hub.
const DefaultEndpoint = "https://huggingface.co"

// tokenEnvVars are checked in order for a hub access token.
var tokenEnvVars = []string{"HF_TOKEN", "HUGGING_FACE_HUB_TOKEN", "HUGGINGFACEHUB_API_TOKEN"}

// Client fetches model metadata from a Hugging Face-compatible hub.
type Client struct {
	Endpoint   string
	Token      string
	HTTPClient *http.Client
}

// NewClient returns a Client for the given endpoint (DefaultEndpoint when
// empty). The access token is taken from the environment when present.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		Endpoint:   strings.TrimSuffix(endpoint, "/"),
		Token:      tokenFromEnv(),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func tokenFromEnv() string {
	for _, key := range tokenEnvVars {
		if tok := strings.TrimSpace(os.Getenv(key)); tok != "" {
			return tok
		}
	}
	return ""
}

// QuantizationConfig mirrors the optional quantization_config block of a
// model's config.json.
type QuantizationConfig struct {
	QuantMethod string `json:"quant_method"`
}

// ModelConfig holds the subset of config.json the pipeline cares about.
type ModelConfig struct {
	ModelType    string             `json:"model_type"`
	Quantization QuantizationConfig `json:"quantization_config"`
}

// QuantMethod returns the declared quantization method, defaulting to f16
// for unquantized checkpoints.
func (c ModelConfig) QuantMethod() string {
	if c.Quantization.QuantMethod == "" {
		return "f16"
	}
	return c.Quantization.QuantMethod
}

// Type returns the declared model type, or "unknown" when absent.
func (c ModelConfig) Type() string {
	if c.ModelType == "" {
		return "unknown"
	}
	return c.ModelType
}

// GetConfig fetches and decodes <endpoint>/<modelID>/resolve/main/config.json.
func (c *Client) GetConfig(ctx context.Context, modelID string) (ModelConfig, error) {
	var cfg ModelConfig
	url := fmt.Sprintf("%s/%s/resolve/main/config.json", c.Endpoint, modelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return cfg, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return cfg, fmt.Errorf("fetch model config: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return cfg, fmt.Errorf("hub returned %d for %s: %s", resp.StatusCode, modelID, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode model config: %w", err)
	}
	return cfg, nil
}
