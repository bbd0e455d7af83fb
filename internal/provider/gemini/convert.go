package gemini

import (
	"errors"
	"fmt"

	"github.com/Cyclone1070/yaget/internal/provider"
	"google.golang.org/genai"
)

// toGeminiContents converts a prompt to Gemini Content format.
func toGeminiContents(prompt string) []*genai.Content {
	return []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				genai.NewPartFromText(prompt),
			},
		},
	}
}

// defaultConfig returns the generation config used for suggestion requests.
func defaultConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SafetySettings: defaultSafetySettings(),
	}
}

// defaultSafetySettings returns safety settings with BLOCK_NONE for all categories.
// Suggestion context is arbitrary source code; default thresholds misfire on it.
func defaultSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{
			Category:  genai.HarmCategoryHateSpeech,
			Threshold: genai.HarmBlockThresholdBlockNone,
		},
		{
			Category:  genai.HarmCategoryDangerousContent,
			Threshold: genai.HarmBlockThresholdBlockNone,
		},
		{
			Category:  genai.HarmCategoryHarassment,
			Threshold: genai.HarmBlockThresholdBlockNone,
		},
		{
			Category:  genai.HarmCategorySexuallyExplicit,
			Threshold: genai.HarmBlockThresholdBlockNone,
		},
	}
}

// fromGeminiResponse converts a Gemini response to a generation result.
func fromGeminiResponse(resp *genai.GenerateContentResponse, modelUsed string) (*provider.GenerationResult, error) {
	if len(resp.Candidates) == 0 {
		return nil, &provider.Error{
			Code:    provider.ErrorCodeEmptyResponse,
			Message: "no candidates in response",
		}
	}

	candidate := resp.Candidates[0]

	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, &provider.Error{
			Code:      provider.ErrorCodeContentBlocked,
			Message:   "content blocked by safety filters",
			Retryable: false,
		}
	}

	var text string
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
	}
	if text == "" {
		return nil, &provider.Error{
			Code:    provider.ErrorCodeEmptyResponse,
			Message: "candidate contained no text",
		}
	}

	result := &provider.GenerationResult{
		GeneratedText: text,
		ModelID:       modelUsed,
	}
	if resp.UsageMetadata != nil {
		result.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return result, nil
}

// mapGeminiError maps Gemini API errors to provider errors.
func mapGeminiError(err error) error {
	if err == nil {
		return nil
	}

	// The SDK surfaces API failures as genai.APIError values.
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return mapAPIError(&apiErr, err)
	}

	// Generic network error
	return &provider.Error{
		Code:       provider.ErrorCodeNetwork,
		Message:    "network error",
		Underlying: err,
		Retryable:  true,
	}
}

func mapAPIError(apiErr *genai.APIError, err error) error {
	switch apiErr.Code {
	case 401, 403:
		return &provider.Error{
			Code:       provider.ErrorCodeAuth,
			Message:    "authentication failed",
			Underlying: err,
			Retryable:  false,
		}
	case 429:
		return &provider.Error{
			Code:       provider.ErrorCodeRateLimit,
			Message:    "rate limit exceeded",
			Underlying: err,
			Retryable:  true,
		}
	case 400:
		return &provider.Error{
			Code:       provider.ErrorCodeInvalidRequest,
			Message:    fmt.Sprintf("invalid request: %s", apiErr.Message),
			Underlying: err,
			Retryable:  false,
		}
	case 500, 502, 503, 504:
		return &provider.Error{
			Code:       provider.ErrorCodeUnavailable,
			Message:    "service unavailable",
			Underlying: err,
			Retryable:  true,
		}
	default:
		return &provider.Error{
			Code:       provider.ErrorCodeNetwork,
			Message:    fmt.Sprintf("API error: %s", apiErr.Message),
			Underlying: err,
			Retryable:  true,
		}
	}
}
