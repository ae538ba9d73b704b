package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// schemaMode selects how an OpenAI-compatible endpoint is asked for JSON.
type schemaMode int

const (
	// schemaStrict sends a strict json_schema response format.
	schemaStrict schemaMode = iota
	// schemaInPrompt asks for json_object and spells the schema out in the
	// system prompt, for routed models without json_schema support.
	schemaInPrompt
)

// strictUnsupported are keywords strict mode rejects. They are dropped
// from what is sent; validateResponse still enforces them locally.
var strictUnsupported = []string{"minItems", "maxItems", "minLength", "maxLength", "minimum", "maximum", "pattern", "format"}

// OpenAIProvider implements Provider using the OpenAI SDK.
// It also serves OpenRouter and other OpenAI-compatible APIs via BaseURL.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	name   string
	mode   schemaMode
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	return newOpenAICompatible(ProviderOpenAI, cfg.APIKey, resolveModel(cfg.Model, openaiModels), cfg.BaseURL, schemaStrict), nil
}

func newOpenAICompatible(name, apiKey, model, baseURL string, mode schemaMode) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  model,
		name:   name,
		mode:   mode,
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:               p.model,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}

	system := req.System
	if req.Schema != nil {
		switch p.mode {
		case schemaInPrompt:
			def, err := json.MarshalIndent(req.Schema.Definition, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("marshal schema: %w", err)
			}
			system = schemaPrompt(system, req.Schema, def)
			chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			}
		default:
			def, err := json.Marshal(strictDefinition(req.Schema.Definition))
			if err != nil {
				return nil, fmt.Errorf("marshal schema: %w", err)
			}
			chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
				JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
					Name:        req.Schema.Name,
					Description: req.Schema.Description,
					Schema:      json.RawMessage(def),
					Strict:      true,
				},
			}
		}
	}
	chatReq.Messages = buildOpenAIMessages(system, req.Messages)

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: errors.New("no choices in OpenAI response")}
	}

	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("model refused: %s", choice.Message.Refusal)}
	}
	return finishResponse(req, choice.Message.Content, mapOpenAIStopReason(choice.FinishReason), Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}, resp.Model)
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func (p *OpenAIProvider) Name() string { return p.name }

func schemaPrompt(system string, s *Schema, def []byte) string {
	var b strings.Builder
	if system != "" {
		b.WriteString(system)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Reply with a single JSON object (%s: %s) matching this JSON Schema, and nothing else:\n%s",
		s.Name, s.Description, def)
	return b.String()
}

// strictDefinition returns a copy of def without strictUnsupported
// keywords at any depth. Property names are never filtered.
func strictDefinition(def map[string]any) map[string]any {
	out := make(map[string]any, len(def))
	for k, v := range def {
		if slices.Contains(strictUnsupported, k) {
			continue
		}
		sub, isMap := v.(map[string]any)
		switch {
		case k == "properties" && isMap:
			cp := make(map[string]any, len(sub))
			for name, prop := range sub {
				if m, ok := prop.(map[string]any); ok {
					cp[name] = strictDefinition(m)
				} else {
					cp[name] = prop
				}
			}
			out[k] = cp
		case isMap:
			out[k] = strictDefinition(sub)
		default:
			out[k] = v
		}
	}
	return out
}

func buildOpenAIMessages(system string, msgs []Message) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for _, m := range msgs {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return messages
}

func mapOpenAIStopReason(reason openai.FinishReason) string {
	if reason == openai.FinishReasonLength {
		return StopMaxTokens
	}
	return StopEnd
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, err)
	}
	return &ErrProviderUnavailable{Err: err}
}
