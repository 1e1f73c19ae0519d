package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var (
	_ ports.TranslationProvider = (*OpenAI)(nil)
	_ ports.Translator          = (*ChatTranslator)(nil)
)

const (
	// breakerFailures is the number of consecutive failures that opens the breaker.
	breakerFailures = 5
	// breakerCooldown is how long the breaker stays open before probing again.
	breakerCooldown = 30 * time.Second
)

// OpenAI translates with a chat-completion model.
// All translators opened from one provider share a circuit breaker, so a failing
// endpoint is not hammered once per visible region.
type OpenAI struct {
	client  *openai.Client
	model   string
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAI creates a provider for the configured model and endpoint.
func NewOpenAI(settings domain.ProviderSettings, apiKey string, httpClient *http.Client, logger ports.Logger) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if settings.OpenAIBaseURL != "" {
		cfg.BaseURL = settings.OpenAIBaseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openai",
		MaxRequests: 1,
		Timeout:     breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(fmt.Sprintf("circuit breaker %s changed from %s to %s", name, from, to))
		},
	})

	return &OpenAI{
		client:  openai.NewClientWithConfig(cfg),
		model:   settings.OpenAIModel,
		breaker: breaker,
	}
}

// Open returns a translator for the language pair.
func (p *OpenAI) Open(_ context.Context, source, target string) (ports.Translator, error) {
	return &ChatTranslator{
		provider: p,
		prompt: fmt.Sprintf(
			"Translate the user's text from %s to %s. Reply with the translation only, "+
				"keeping punctuation and line breaks.",
			languageName(source), languageName(target)),
	}, nil
}

// ChatTranslator translates one language pair through the chat-completion API.
type ChatTranslator struct {
	provider *OpenAI
	prompt   string
}

// Translate sends text to the model unless the breaker is open.
func (t *ChatTranslator) Translate(ctx context.Context, text string) (string, error) {
	p := t.provider
	out, err := p.breaker.Execute(func() (interface{}, error) {
		resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: t.prompt},
				{Role: openai.ChatMessageRoleUser, Content: text},
			},
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, domain.ErrNoTranslation
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "chat completion failed"), "model", p.model)
	}
	return out.(string), nil
}

// Close releases nothing; the HTTP client is shared.
func (t *ChatTranslator) Close() error {
	return nil
}

// languageName returns the English name of a language code, or the code itself.
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
