package llm

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIModel is the default model for the openai provider.
const OpenAIModel = "gpt-4o-mini"

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a client. An empty baseURL uses api.openai.com.
func NewOpenAIClient(apiKey, model, baseURL string) (client *OpenAIClient) {
	if model == "" {
		model = OpenAIModel
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(baseURL, "/")
	}

	client = &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
	return client
}

// Complete sends prompt as a single user message and returns the reply text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (responseText string, err error) {
	var resp openai.ChatCompletionResponse
	resp, err = c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
	})
	if err != nil {
		err = errors.Wrap(err, "chat completion failed")
		return responseText, err
	}

	if len(resp.Choices) == 0 {
		err = errors.New("no choices in chat completion response")
		return responseText, err
	}

	responseText = resp.Choices[0].Message.Content
	return responseText, err
}
