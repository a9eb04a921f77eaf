package solve

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	openrouter "github.com/revrost/go-openrouter"

	"github.com/paperwise/paperwise/extract"
)

// OpenRouterSolver is the production Solver backed by the OpenRouter
// chat-completions API.
type OpenRouterSolver struct {
	client *openrouter.Client
	model  string
}

// NewOpenRouterSolver creates a solver for the given model ID
// (e.g. "google/gemini-2.0-flash-001").
func NewOpenRouterSolver(apiKey, model string) (*OpenRouterSolver, error) {
	if apiKey == "" {
		return nil, errors.New("openrouter: API key is required")
	}
	if model == "" {
		return nil, errors.New("openrouter: model is required")
	}
	return &OpenRouterSolver{
		client: openrouter.NewClient(apiKey),
		model:  model,
	}, nil
}

// Solve sends one prompt and returns the model's text.
func (s *OpenRouterSolver) Solve(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openrouter.ChatCompletionRequest{
		Model: s.model,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role:    openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{Text: prompt},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openrouter: no choices in response")
	}
	return resp.Choices[0].Message.Content.Text, nil
}

// defaultOCRPrompt asks a vision model to behave like a plain OCR engine.
const defaultOCRPrompt = "Extract all text from this scanned exam page exactly as written. " +
	"Preserve question numbering, line breaks, and mathematical notation. " +
	"Return only the extracted text, without commentary."

// VisionReader implements the OCR Reader capability over a multimodal
// OpenRouter model, reading page images as data URLs.
type VisionReader struct {
	client *openrouter.Client
	model  string
}

// NewVisionReader creates a reader for the given vision-capable model.
func NewVisionReader(apiKey, model string) (*VisionReader, error) {
	if apiKey == "" {
		return nil, errors.New("openrouter: API key is required")
	}
	if model == "" {
		return nil, errors.New("openrouter: model is required")
	}
	return &VisionReader{
		client: openrouter.NewClient(apiKey),
		model:  model,
	}, nil
}

// Read performs recognition on a single page image.
func (r *VisionReader) Read(ctx context.Context, mimeType string, image []byte, opts *extract.ReadOptions) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	req := openrouter.ChatCompletionRequest{
		Model: r.model,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role: openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{
					Multi: []openrouter.ChatMessagePart{
						{
							Type: openrouter.ChatMessagePartTypeText,
							Text: defaultOCRPrompt,
						},
						{
							Type:     openrouter.ChatMessagePartTypeImageURL,
							ImageURL: &openrouter.ChatMessageImageURL{URL: dataURL},
						},
					},
				},
			},
		},
	}
	if opts != nil && opts.MaxTokens > 0 {
		req.MaxTokens = opts.MaxTokens
	}

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openrouter read: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openrouter: no choices in response")
	}
	return resp.Choices[0].Message.Content.Text, nil
}
