package provider

import (
	"context"
	"errors"
	"log"
	"strings"

	genai "google.golang.org/genai"

	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
)

// GeminiProvider asks a Gemini model for a column. The answer is parsed but
// not checked for legality; the advisor does that.
type GeminiProvider struct {
	cli   *genai.Client
	model string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("provider: missing Gemini API key")
	}
	if model == "" {
		model = DefaultModel
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiProvider{cli: cli, model: model}, nil
}

func (g *GeminiProvider) Name() string { return "Gemini:" + g.model }

func (g *GeminiProvider) SuggestColumn(ctx context.Context, req domain.MoveRequest) (int, error) {
	prompt := buildPrompt(req)

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		generateConfig(req.Difficulty),
	)
	if err != nil {
		log.Printf("[PROVIDER] %s request failed (%s): %v", g.Name(), req.Difficulty, err)
		return -1, err
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return -1, ErrInvalidJSON
	}

	return ParseColumn(resp.Candidates[0].Content.Parts[0].Text)
}

func generateConfig(d domain.Difficulty) *genai.GenerateContentConfig {
	s := settingsFor(d)
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(s.Temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"column": {Type: genai.TypeInteger},
			},
			Required: []string{"column"},
		},
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(s.ThinkingBudget)},
	}
}
