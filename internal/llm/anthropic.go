package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicModels maps friendly names to Anthropic model IDs.
var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-5",
	"claude-haiku":  "claude-haiku-4-5",
}

// AnthropicProvider implements Provider using the Anthropic SDK.
//
// Structured requests are sent as a single forced tool call named after
// the schema, so the advice arrives as the tool input rather than as
// free text the model might wrap in prose.
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicProvider creates a new Anthropic provider.
func NewAnthropicProvider(cfg AnthropicConfig) (*AnthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := anthropic.NewClient(opts...)
	return &AnthropicProvider{
		client: &client,
		model:  resolveModel(cfg.Model, anthropicModels),
	}, nil
}

func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  buildAnthropicMessages(req.Messages),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if req.Schema != nil {
		params.Tools = []anthropic.ToolUnionParam{anthropicSchemaTool(req.Schema)}
		params.ToolChoice = anthropic.ToolChoiceParamOfTool(req.Schema.Name)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	text, err := anthropicContent(msg, req.Schema)
	if err != nil {
		return nil, err
	}
	return finishResponse(req, text, mapAnthropicStopReason(msg.StopReason), Usage{
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
		TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
	}, string(msg.Model))
}

func (p *AnthropicProvider) ModelID() string {
	return p.model
}

func (p *AnthropicProvider) Name() string { return ProviderAnthropic }

func buildAnthropicMessages(msgs []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, len(msgs))
	for i, m := range msgs {
		role := anthropic.MessageParamRoleUser
		if m.Role == RoleAssistant {
			role = anthropic.MessageParamRoleAssistant
		}
		out[i] = anthropic.MessageParam{
			Role:    role,
			Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(m.Content)},
		}
	}
	return out
}

// anthropicSchemaTool turns a Schema into a tool definition. Top-level
// keywords other than properties and required (additionalProperties in
// particular) ride along as extra fields of input_schema.
func anthropicSchemaTool(s *Schema) anthropic.ToolUnionParam {
	in := anthropic.ToolInputSchemaParam{Properties: s.Definition["properties"]}
	if req, ok := s.Definition["required"].([]any); ok {
		for _, r := range req {
			if name, ok := r.(string); ok {
				in.Required = append(in.Required, name)
			}
		}
	}
	for k, v := range s.Definition {
		switch k {
		case "type", "properties", "required":
			continue
		}
		if in.ExtraFields == nil {
			in.ExtraFields = make(map[string]any)
		}
		in.ExtraFields[k] = v
	}

	tool := anthropic.ToolParam{Name: s.Name, InputSchema: in}
	if s.Description != "" {
		tool.Description = anthropic.String(s.Description)
	}
	return anthropic.ToolUnionParam{OfTool: &tool}
}

// anthropicContent returns the schema tool's input when one was
// requested, falling back to the first text block.
func anthropicContent(msg *anthropic.Message, s *Schema) (string, error) {
	var text string
	for _, block := range msg.Content {
		switch block.Type {
		case "tool_use":
			if s != nil && block.Name == s.Name {
				return string(block.Input), nil
			}
		case "text":
			if text == "" {
				text = block.Text
			}
		}
	}
	if text == "" {
		return "", &ErrInvalidResponse{Err: errors.New("no usable content in Anthropic response")}
	}
	return text, nil
}

func mapAnthropicStopReason(reason anthropic.StopReason) string {
	if reason == anthropic.StopReasonMaxTokens {
		return StopMaxTokens
	}
	return StopEnd
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.StatusCode, err)
	}
	return &ErrProviderUnavailable{Err: err}
}

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names pass through so direct model IDs work.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
