// Package generator is the gateway to the external text-generation service.
// It produces figurative prompts and icebreaker questions for realms and
// falls back to a deterministic prompt set whenever the upstream call fails
// or returns something unparseable, so callers never see an error.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/bytedance/sonic"
	"github.com/limbo/mindshelter/pkg/entity"
)

const (
	TypeMetaphor        = "metaphor"
	TypeSimile          = "simile"
	TypePersonification = "personification"

	metaphorMaxTokens   = 1000
	icebreakerMaxTokens = 500
)

type Gateway struct {
	client anthropic.Client
	model  anthropic.Model
	logger *slog.Logger
}

func New(apiKey, model string, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
		logger: logger,
	}
}

// Metaphors returns exactly three prompts tagged metaphor, simile and
// personification.
func (g *Gateway) Metaphors(ctx context.Context, realmName, realmDescription string) []entity.Metaphor {
	prompt := buildMetaphorPrompt(realmName, realmDescription)
	text, err := g.complete(ctx, prompt, metaphorMaxTokens)
	if err != nil {
		g.logger.Warn("metaphor generation failed, using fallback",
			slog.String("realm", realmName), slog.String("error", err.Error()))
		return FallbackMetaphors(realmName)
	}
	var parsed struct {
		Metaphors []entity.Metaphor `json:"metaphors"`
	}
	jsonStr, err := extractJSON(text)
	if err == nil {
		err = sonic.ConfigDefault.Unmarshal([]byte(jsonStr), &parsed)
	}
	if err != nil || len(parsed.Metaphors) != 3 {
		g.logger.Warn("unparseable metaphor response, using fallback", slog.String("realm", realmName))
		return FallbackMetaphors(realmName)
	}
	return parsed.Metaphors
}

// Icebreaker returns one reflective question for the chosen metaphor.
func (g *Gateway) Icebreaker(ctx context.Context, realmName, metaphorText string) string {
	prompt := buildIcebreakerPrompt(realmName, metaphorText)
	text, err := g.complete(ctx, prompt, icebreakerMaxTokens)
	if err != nil {
		g.logger.Warn("icebreaker generation failed, using fallback",
			slog.String("realm", realmName), slog.String("error", err.Error()))
		return FallbackIcebreaker(realmName)
	}
	var parsed struct {
		Icebreaker string `json:"icebreaker"`
	}
	jsonStr, err := extractJSON(text)
	if err == nil {
		err = sonic.ConfigDefault.Unmarshal([]byte(jsonStr), &parsed)
	}
	if err != nil || parsed.Icebreaker == "" {
		g.logger.Warn("unparseable icebreaker response, using fallback", slog.String("realm", realmName))
		return FallbackIcebreaker(realmName)
	}
	return parsed.Icebreaker
}

func (g *Gateway) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}
	if len(msg.Content) == 0 {
		return "", errors.New("empty response")
	}
	return msg.Content[0].Text, nil
}

func buildMetaphorPrompt(realmName, realmDescription string) string {
	return fmt.Sprintf(`Generate 3 unique and profound figurative language prompts (metaphors, similes, or personification) for the theme %q which is about %q.

These should be introspective, emotionally resonant, and help people connect with their inner experience related to this theme. Each should be 8-15 words long and capture different aspects of the human experience within this realm.

Return your response as a JSON object with this structure:
{
  "metaphors": [
    {"text": "example metaphor text", "type": "metaphor"},
    {"text": "example simile text", "type": "simile"},
    {"text": "example personification text", "type": "personification"}
  ]
}`, realmName, realmDescription)
}

func buildIcebreakerPrompt(realmName, metaphorText string) string {
	return fmt.Sprintf(`Based on the theme %q and the selected metaphor %q, generate a thoughtful, personal reflection prompt that invites deep sharing and connection. The question should be open-ended, emotionally resonant, and help the person share a meaningful personal experience related to this theme. Keep it to one sentence and make it conversational.

Return your response as a JSON object:
{"icebreaker": "your generated prompt here"}`, realmName, metaphorText)
}

// extractJSON cuts the substring between the first { and the last }.
// Model output sometimes wraps the JSON in prose.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", errors.New("no JSON object in response")
	}
	return s[start : end+1], nil
}

// FallbackMetaphors is the deterministic prompt set used when generation
// fails.
func FallbackMetaphors(realmName string) []entity.Metaphor {
	lower := strings.ToLower(realmName)
	return []entity.Metaphor{
		{Text: "Exploring the depths of " + lower, Type: TypeMetaphor},
		{Text: "Like walking through " + lower, Type: TypeSimile},
		{Text: realmName + " calls to our inner wisdom", Type: TypePersonification},
	}
}

func FallbackIcebreaker(realmName string) string {
	return fmt.Sprintf("Share a moment when you experienced %s, and what it taught you about yourself.", strings.ToLower(realmName))
}
