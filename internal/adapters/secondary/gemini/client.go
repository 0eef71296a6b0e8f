package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	"github.com/KangasCode/nous-paradeigma/internal/ports/generation"
)

var _ generation.Client = (*Client)(nil)

const defaultTimeout = 60 * time.Second

// Client адаптер поверх Gemini API. Ключ передаётся явно через конфиг,
// из окружения внутри ничего не читается. Ретраев нет: ошибка апстрима
// возвращается вызывающему как есть, текст никогда не фабрикуется.
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
	Log         *slog.Logger
}

// New создаёт клиент генерации. При пустом ключе возвращает
// несконфигурированный клиент: живой объект, каждый Generate которого
// отдаёт domain.ErrGenerationNotConfigured.
func New(ctx context.Context, cfg Config, log *slog.Logger) (*Client, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	if cfg.APIKey == "" {
		log.Warn("gemini api key is not set, generation is disabled")
		return &Client{
			model:   cfg.Model,
			timeout: timeout,
			Log:     log,
		}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	log.Info("gemini client initialized", "model", cfg.Model)

	return &Client{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     timeout,
		Log:         log,
	}, nil
}

// Generate отправляет промпт и возвращает текст предсказания.
// Контракт ошибок: ErrGenerationNotConfigured при отсутствии ключа,
// *GenerationError при сбое транспорта, ErrGenerationEmpty при пустом ответе.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", domain.ErrGenerationNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)

	started := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.Log.Error("gemini request failed",
			"error", err,
			"model", c.model,
			"elapsed", time.Since(started),
		)
		return "", &domain.GenerationError{Err: err}
	}

	text := extractText(resp)
	if text == "" {
		c.Log.Error("gemini returned empty response", "model", c.model)
		return "", domain.ErrGenerationEmpty
	}

	c.Log.Debug("gemini request completed",
		"model", c.model,
		"elapsed", time.Since(started),
		"response_length", len(text),
	)

	return text, nil
}

// Close закрывает подключение к Gemini API
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// extractText собирает текстовые части первого кандидата
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String())
}
