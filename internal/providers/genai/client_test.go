package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textResponse(text string) geminiGenerateContentResponse {
	return geminiGenerateContentResponse{
		Candidates: []geminiCandidate{{
			Content: geminiContent{Parts: []geminiPart{{Text: text}}},
		}},
	}
}

func TestGenerateTextRequiresAPIKey(t *testing.T) {
	c := NewClient(Options{})
	assert.False(t, c.Configured())

	_, err := c.GenerateText(context.Background(), "hello", 0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key not configured")
}

func TestGenerateTextReturnsFirstCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")

		var req geminiGenerateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		_ = json.NewEncoder(w).Encode(textResponse("a generated script"))
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "secret", BaseURL: srv.URL})
	text, err := c.GenerateText(context.Background(), "write a script", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "a generated script", text)
}

func TestGenerateTextSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "secret", BaseURL: srv.URL})
	_, err := c.GenerateText(context.Background(), "prompt", 0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateImagesSyntheticFallback(t *testing.T) {
	c := NewClient(Options{})

	assets, err := c.GenerateImages(context.Background(), ImageRequest{
		Prompt:    "a harbor at dusk",
		Quantity:  4,
		RequestID: "job-1",
	})
	require.NoError(t, err)
	require.Len(t, assets, 4)

	for _, asset := range assets {
		assert.Equal(t, "image/png", asset.Format)
		img, err := png.Decode(bytes.NewReader(asset.Data))
		require.NoError(t, err)
		assert.Equal(t, 1280, img.Bounds().Dx())
		assert.Equal(t, 720, img.Bounds().Dy())
	}

	// Same request, same bytes.
	again, err := c.GenerateImages(context.Background(), ImageRequest{
		Prompt:    "a harbor at dusk",
		Quantity:  4,
		RequestID: "job-1",
	})
	require.NoError(t, err)
	assert.Equal(t, assets, again)
}

func TestTrimCodeFence(t *testing.T) {
	assert.Equal(t, "plain", trimCodeFence("plain"))
	assert.Equal(t, `["a"]`, trimCodeFence("```json\n[\"a\"]\n```"))
	assert.Equal(t, "text", trimCodeFence("```\ntext\n```"))
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, clampQuantity(0))
	assert.Equal(t, 1, clampQuantity(-5))
	assert.Equal(t, 5, clampQuantity(5))
	assert.Equal(t, 8, clampQuantity(20))
}
