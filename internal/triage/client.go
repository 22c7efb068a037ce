// Package triage auto-tags journal captures through an
// OpenAI-compatible model. The model contract is deliberately narrow:
// entry text in, a JSON array of tags out.
package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type Client struct {
	client *openai.Client
	model  string
}

func New(apiKey, baseURL, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

const systemPrompt = `You tag journal entries for a personal productivity app.
Given an entry, respond with ONLY a JSON array of 1-5 short lowercase tags
describing its themes, e.g. ["work","family","health"]. No other text.`

// SuggestTags asks the model for tags describing the entry body.
func (c *Client) SuggestTags(ctx context.Context, body string) ([]string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: body},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("triage completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("triage completion: empty response")
	}

	return parseTags(resp.Choices[0].Message.Content)
}

// parseTags extracts the JSON tag array, tolerating markdown fences
// and surrounding prose the model sometimes adds.
func parseTags(content string) ([]string, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no tag array in response: %q", content)
	}

	var tags []string
	if err := json.Unmarshal([]byte(content[start:end+1]), &tags); err != nil {
		return nil, fmt.Errorf("parse tag array: %w", err)
	}

	out := tags[:0]
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out, nil
}
