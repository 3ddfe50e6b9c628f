package llm

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// GeminiModel is the default model for the gemini provider.
const GeminiModel = "gemini-3-flash-preview"

// GeminiClient talks to the Gemini API through the genai SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a client. baseURL is optional.
func NewGeminiClient(ctx context.Context, apiKey, model, baseURL string) (client *GeminiClient, err error) {
	if model == "" {
		model = GeminiModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	var gc *genai.Client
	gc, err = genai.NewClient(ctx, clientConfig)
	if err != nil {
		err = errors.Wrap(err, "failed to create Gemini client")
		return client, err
	}

	client = &GeminiClient{client: gc, model: model}
	return client, err
}

// Complete sends prompt as a single user turn and returns the reply text.
// An empty reply is returned as-is.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (responseText string, err error) {
	var resp *genai.GenerateContentResponse
	resp, err = c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](temperature),
		TopP:            genai.Ptr[float32](topP),
		MaxOutputTokens: maxTokens,
	})
	if err != nil {
		err = errors.Wrap(err, "generate content failed")
		return responseText, err
	}

	responseText = resp.Text()
	return responseText, err
}
