// Package gemini implements the model invoker on Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	domainErrors "github.com/uniliner/SecurityParser/internal/errors"
	"github.com/uniliner/SecurityParser/internal/logger"
	"github.com/uniliner/SecurityParser/internal/ports"
)

var (
	_ ports.ModelInvoker        = (*GeminiInvoker)(nil)
	_ ports.CostAwareAIProvider = (*GeminiInvoker)(nil)
)

type GeminiInvoker struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewGeminiInvoker builds the invoker. The system instruction is installed
// on the model once here, so per-call traffic carries only the PR payload.
func NewGeminiInvoker(ctx context.Context, apiKey, modelName, systemInstruction string) (*GeminiInvoker, error) {
	if apiKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	if systemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	return &GeminiInvoker{
		client:    client,
		model:     model,
		modelName: modelName,
	}, nil
}

// Invoke sends the prompt and returns the raw response text. No retries;
// cancellation comes from ctx.
func (g *GeminiInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", domainErrors.ErrEmptyPrompt
	}

	log := logger.FromContext(ctx)
	log.Debug("invoking gemini model",
		"model", g.modelName,
		"prompt_size", len(prompt))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", mapGeminiError(err)
	}

	text := formatResponse(resp)
	if text == "" {
		return "", domainErrors.ErrEmptyResponse.WithContext("model", g.modelName)
	}

	return text, nil
}

// CountTokens implements ports.CostAwareAIProvider
func (g *GeminiInvoker) CountTokens(ctx context.Context, prompt string) (int, error) {
	resp, err := g.model.CountTokens(ctx, genai.Text(prompt))
	if err != nil {
		return 0, mapGeminiError(err)
	}
	return int(resp.TotalTokens), nil
}

// GetModelName implements ports.CostAwareAIProvider
func (g *GeminiInvoker) GetModelName() string {
	return g.modelName
}

// GetProviderName implements ports.CostAwareAIProvider
func (g *GeminiInvoker) GetProviderName() string {
	return "gemini"
}

// Close releases the underlying client connection.
func (g *GeminiInvoker) Close() error {
	return g.client.Close()
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			b.WriteString(fmt.Sprintf("%v", part))
		}
	}
	return b.String()
}

func mapGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return domainErrors.ErrGeminiQuotaExceeded.WithError(err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
		}
	}
	return fmt.Errorf("gemini request failed: %w", err)
}
