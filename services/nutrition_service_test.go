package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatStub(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func testNutritionService(baseURL string) *NutritionService {
	return &NutritionService{
		apiKey:  "test-key",
		baseURL: baseURL,
		model:   "test-model",
		client:  &http.Client{Timeout: time.Second},
	}
}

func TestEstimateRoundsAndDefaults(t *testing.T) {
	// fractional values, a negative and a missing field all normalize
	srv := chatStub(t, `{"calories": 89.6, "protein": 1.09, "fat": -2}`)
	defer srv.Close()

	est, err := testNutritionService(srv.URL).Estimate(context.Background(), "banana", "")
	require.NoError(t, err)

	assert.Equal(t, 90, est.Calories)
	assert.Equal(t, 1, est.Protein)
	assert.Equal(t, 0, est.Carbs)
	assert.Equal(t, 0, est.Fat)

	assert.GreaterOrEqual(t, est.Calories, 0)
	assert.GreaterOrEqual(t, est.Protein, 0)
	assert.GreaterOrEqual(t, est.Carbs, 0)
	assert.GreaterOrEqual(t, est.Fat, 0)
}

func TestEstimateStripsMarkdownFences(t *testing.T) {
	srv := chatStub(t, "```json\n{\"calories\": 250, \"protein\": 12, \"carbs\": 30, \"fat\": 8}\n```")
	defer srv.Close()

	est, err := testNutritionService(srv.URL).Estimate(context.Background(), "sandwich", "one half")
	require.NoError(t, err)

	assert.Equal(t, &NutritionEstimate{Calories: 250, Protein: 12, Carbs: 30, Fat: 8}, est)
}

func TestEstimateUpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testNutritionService(srv.URL).Estimate(context.Background(), "banana", "")
	assert.Error(t, err)
}

func TestEstimateGarbageAnswerIsAnError(t *testing.T) {
	srv := chatStub(t, "a banana has roughly ninety calories")
	defer srv.Close()

	_, err := testNutritionService(srv.URL).Estimate(context.Background(), "banana", "")
	assert.Error(t, err)
}

func TestRoundMacro(t *testing.T) {
	assert.Equal(t, 90, roundMacro(89.6))
	assert.Equal(t, 89, roundMacro(89.4))
	assert.Equal(t, 0, roundMacro(-5))
	assert.Equal(t, 0, roundMacro(0))
}
