// Package provider defines the generation collaborator interface and its
// request/result model. Any backend may implement Provider; the rest of the
// pipeline depends only on this package.
package provider

import (
	"context"
	"fmt"
	"strings"
)

// NoSuggestion is the sentinel generated text substituted when a
// collaborator call fails or returns nothing usable.
const NoSuggestion = "No suggestion generated."

// GenerationRequest is derived 1:1 from an annotation unit.
type GenerationRequest struct {
	// MarkerText is the trimmed start-marker line.
	MarkerText string
	// FilePath is the project-relative path of the owning file.
	FilePath string
	// ContextText is the flattened context window, one line per row.
	ContextText string
}

// Prompt renders the request into the instruction sent to the backend.
func (r *GenerationRequest) Prompt() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "For the TODO: '%s' in file %s, considering the context:\n", r.MarkerText, r.FilePath)
	sb.WriteString(r.ContextText)
	sb.WriteString("\nGenerate an implementation suggestion. Remove the TODO and ENDTODO comments.")
	return sb.String()
}

// GenerationResult is the collaborator's response for one request.
type GenerationResult struct {
	// GeneratedText is always present; it is NoSuggestion when the backend
	// produced nothing.
	GeneratedText string
	// ModelID identifies the model that produced the text, when known.
	ModelID string
	// TotalTokens is the backend-reported token usage, 0 when unreported.
	TotalTokens int
}

// Sentinel returns the result substituted for a failed collaborator call.
func Sentinel() *GenerationResult {
	return &GenerationResult{GeneratedText: NoSuggestion}
}

// Provider is the generation collaborator. It is invoked once per
// annotation unit.
type Provider interface {
	// Generate sends one request to the backend and returns its result.
	Generate(ctx context.Context, req *GenerationRequest) (*GenerationResult, error)

	// GetModel returns the active model name.
	GetModel() string
}
