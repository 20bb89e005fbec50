package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"
)

// NutritionService estimates macros for a free-text food description by
// asking an OpenAI-compatible chat completions endpoint for a JSON answer.
type NutritionService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewNutritionService() *NutritionService {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &NutritionService{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NutritionEstimate holds whole-number macros, each clamped to >= 0.
type NutritionEstimate struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Estimate asks the model for calories/protein/carbs/fat of the described
// food. Whatever comes back is normalized: fractional values are rounded,
// missing or negative ones become 0.
func (s *NutritionService) Estimate(ctx context.Context, foodName, portion string) (*NutritionEstimate, error) {
	prompt := fmt.Sprintf(
		"Estimate the nutrition of %q", foodName)
	if portion != "" {
		prompt = fmt.Sprintf("Estimate the nutrition of %q (portion: %s)", foodName, portion)
	}
	prompt += `. Answer with only a JSON object of the form {"calories": number, "protein": number, "carbs": number, "fat": number}, protein/carbs/fat in grams.`

	payload := map[string]any{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a nutrition estimator. You answer with a single JSON object and nothing else."},
			{"role": "user", "content": prompt},
		},
		"temperature": 0,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal estimation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create estimation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call estimation API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read estimation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("estimation API error %d: %s", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("failed to parse estimation response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("estimation response had no choices")
	}

	var raw struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}
	content := stripJSONFences(cr.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("model answer was not valid JSON: %w", err)
	}

	return &NutritionEstimate{
		Calories: roundMacro(raw.Calories),
		Protein:  roundMacro(raw.Protein),
		Carbs:    roundMacro(raw.Carbs),
		Fat:      roundMacro(raw.Fat),
	}, nil
}

// roundMacro nails a model value down to a usable integer: NaN, missing
// (zero) and negative inputs all become 0.
func roundMacro(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return int(math.Round(v))
}

// stripJSONFences removes a markdown code fence some models insist on
// wrapping around JSON answers.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
