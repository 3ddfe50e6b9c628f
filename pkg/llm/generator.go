// Package llm drafts project copy with a generative text provider.
//
// Generation is best-effort: failures are logged and turned into a readable
// message instead of an error, so callers can show the result as-is.
package llm

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Provider names.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

// User-facing fallbacks.
const (
	NotConfiguredMessage = "Please configure your API key in the environment variables."
	FailedMessage        = "Failed to generate description. Please check your API key and connection."
)

// Completer turns a prompt into reply text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (text string, err error)
}

// Generator drafts text for the dashboard. Implementations never fail.
type Generator interface {
	GenerateProjectDescription(ctx context.Context, title string) (description string)
	SummarizeActivity(ctx context.Context, lines []string) (summary string)
}

// Settings selects and configures a provider.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// NewGenerator builds the generator for settings. A missing API key yields a
// generator that only reports that it is not configured.
func NewGenerator(ctx context.Context, settings Settings, logger *zap.Logger) (gen Generator, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("llm")

	if settings.APIKey == "" {
		logger.Warn("no API key configured for generative text", zap.String("provider", settings.Provider))
		gen = unconfigured{}
		return gen, err
	}

	var completer Completer
	switch settings.Provider {
	case ProviderAnthropic, "":
		client := NewClient(settings.APIKey, settings.Model)
		if settings.BaseURL != "" {
			client.endpoint = strings.TrimSuffix(settings.BaseURL, "/") + "/v1/messages"
		}
		completer = client
	case ProviderOpenAI:
		completer = NewOpenAIClient(settings.APIKey, settings.Model, settings.BaseURL)
	case ProviderGemini:
		completer, err = NewGeminiClient(ctx, settings.APIKey, settings.Model, settings.BaseURL)
		if err != nil {
			return gen, err
		}
	default:
		err = errors.Errorf("unknown generative text provider: %s", settings.Provider)
		return gen, err
	}

	gen = NewCompleterGenerator(completer, logger)
	return gen, err
}

// CompleterGenerator implements Generator on top of any Completer.
type CompleterGenerator struct {
	completer Completer
	logger    *zap.Logger
}

// NewCompleterGenerator wraps completer.
func NewCompleterGenerator(completer Completer, logger *zap.Logger) (gen *CompleterGenerator) {
	if logger == nil {
		logger = zap.NewNop()
	}
	gen = &CompleterGenerator{completer: completer, logger: logger}
	return gen
}

// GenerateProjectDescription drafts a short description for a project title.
func (g *CompleterGenerator) GenerateProjectDescription(ctx context.Context, title string) (description string) {
	text, err := g.completer.Complete(ctx, buildDescriptionPrompt(title))
	if err != nil {
		g.logger.Error("description generation failed", zap.String("title", title), zap.Error(err))
		description = FailedMessage
		return description
	}

	description = stripMarkdownCodeFences(text)
	return description
}

// SummarizeActivity condenses activity lines into one sentence. It returns
// an empty string when nothing could be generated.
func (g *CompleterGenerator) SummarizeActivity(ctx context.Context, lines []string) (summary string) {
	if len(lines) == 0 {
		return summary
	}

	text, err := g.completer.Complete(ctx, buildActivitySummaryPrompt(lines))
	if err != nil {
		g.logger.Error("activity summary failed", zap.Int("lines", len(lines)), zap.Error(err))
		return summary
	}

	summary = stripMarkdownCodeFences(text)
	return summary
}

type unconfigured struct{}

func (unconfigured) GenerateProjectDescription(context.Context, string) (description string) {
	description = NotConfiguredMessage
	return description
}

func (unconfigured) SummarizeActivity(context.Context, []string) (summary string) {
	return summary
}
