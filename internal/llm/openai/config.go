package openai

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/veridoc-ai/veridoc/internal/llm"
)

// Config holds the OpenAI-compatible backend configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client implements llm.Extractor over the chat/completions endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func New(cfg Config, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 45 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

func init() {
	llm.RegisterProvider("openai", func(cfg llm.ProviderConfig, log *slog.Logger) (llm.Extractor, error) {
		return New(Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		}, log), nil
	})
}
