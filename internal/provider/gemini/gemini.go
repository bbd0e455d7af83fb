package gemini

import (
	"context"

	"github.com/Cyclone1070/yaget/internal/provider"
)

// Gemini implements provider.Provider for Google Gemini.
type Gemini struct {
	client    Client
	modelName string
}

// New creates a new Gemini provider with the specified client and model.
func New(client Client, modelName string) *Gemini {
	return &Gemini{
		client:    client,
		modelName: modelName,
	}
}

// Generate sends one request to the Gemini API and returns the result.
func (g *Gemini) Generate(ctx context.Context, req *provider.GenerationRequest) (*provider.GenerationResult, error) {
	contents := toGeminiContents(req.Prompt())
	config := defaultConfig()

	resp, err := g.client.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return fromGeminiResponse(resp, g.modelName)
}

// GetModel returns the active model name.
func (g *Gemini) GetModel() string {
	return g.modelName
}
