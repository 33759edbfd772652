// Package image turns a script into an ordered set of scene illustrations on
// disk, one file per scene inside the job's output directory.
package image

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"contentmaker/internal/domain"
	"contentmaker/internal/providers/genai"
)

// Generator produces scene images for a script and returns their paths in
// presentation order.
type Generator interface {
	Generate(ctx context.Context, script, topic, outputDir string, contentType domain.ContentType) ([]string, error)
}

// Gemini renders scenes through the Gemini facade. Without an API key the
// facade yields deterministic synthetic frames, so the video pipeline keeps
// working offline.
type Gemini struct {
	client *genai.Client
}

func NewGemini(client *genai.Client) *Gemini {
	return &Gemini{client: client}
}

func (g *Gemini) Generate(ctx context.Context, script, topic, outputDir string, contentType domain.ContentType) ([]string, error) {
	if strings.TrimSpace(script) == "" {
		return nil, fmt.Errorf("image generation needs a non-empty script")
	}
	assets, err := g.client.GenerateImages(ctx, genai.ImageRequest{
		Prompt:    buildScenePrompt(script, topic, contentType),
		Quantity:  sceneCount(script),
		RequestID: filepath.Base(outputDir),
	})
	if err != nil {
		return nil, fmt.Errorf("generate scene images: %w", err)
	}

	paths := make([]string, 0, len(assets))
	for i, asset := range assets {
		path := filepath.Join(outputDir, fmt.Sprintf("scene_%02d.png", i+1))
		if err := os.WriteFile(path, asset.Data, 0o644); err != nil {
			return nil, fmt.Errorf("write scene image: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func buildScenePrompt(script, topic string, contentType domain.ContentType) string {
	var b strings.Builder
	switch contentType {
	case domain.ContentTypeEducational:
		b.WriteString("Create clear, diagram-friendly illustrations for an educational video.")
	default:
		b.WriteString("Create warm, cinematic illustrations for a narrated story video.")
	}
	if topic = strings.TrimSpace(topic); topic != "" {
		fmt.Fprintf(&b, " Subject: %s.", topic)
	}
	fmt.Fprintf(&b, " Script:\n%s", script)
	return b.String()
}

// sceneCount scales the number of frames with the script's length: one scene
// per paragraph, bounded to keep generation time and video pacing reasonable.
func sceneCount(script string) int {
	paragraphs := 0
	for _, p := range strings.Split(script, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}
	if paragraphs < 3 {
		return 3
	}
	if paragraphs > 8 {
		return 8
	}
	return paragraphs
}

var _ Generator = (*Gemini)(nil)
