package script

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"contentmaker/internal/domain"
	"contentmaker/internal/providers/genai"
)

// Gemini generates scripts through the Gemini facade and degrades to the
// static generator when the client is unconfigured or a call fails.
type Gemini struct {
	client   *genai.Client
	fallback Generator
}

func NewGemini(client *genai.Client, fallback Generator) *Gemini {
	if fallback == nil {
		fallback = NewStatic()
	}
	return &Gemini{client: client, fallback: fallback}
}

func (g *Gemini) Story(ctx context.Context, characterDescription string) (string, error) {
	prompt := fmt.Sprintf("Write a short story of four to six paragraphs suitable for a narrated video. Main character: %s. Respond with the story text only, no headings.", characterDescription)
	text, err := g.generate(ctx, prompt, 0.8)
	if err != nil {
		return g.fallback.Story(ctx, characterDescription)
	}
	return text, nil
}

func (g *Gemini) Educational(ctx context.Context, topic, style, difficulty string) (string, error) {
	if style == "" {
		style = "explainer"
	}
	if difficulty == "" {
		difficulty = "beginner"
	}
	prompt := fmt.Sprintf("Write an educational %s script about %q for a %s audience, four to six short sections suitable for voice-over narration. Respond with the script text only.", style, topic, difficulty)
	text, err := g.generate(ctx, prompt, 0.5)
	if err != nil {
		return g.fallback.Educational(ctx, topic, style, difficulty)
	}
	return text, nil
}

func (g *Gemini) PodcastFromText(ctx context.Context, customText string) (string, error) {
	if strings.TrimSpace(customText) == "" {
		return "", fmt.Errorf("custom text is empty")
	}
	prompt := fmt.Sprintf("Rewrite the following text as a friendly single-host podcast narration with a short intro and outro. Keep the substance intact.\n\n%s", customText)
	text, err := g.generate(ctx, prompt, 0.6)
	if err != nil {
		return g.fallback.PodcastFromText(ctx, customText)
	}
	return text, nil
}

func (g *Gemini) PodcastFromTopic(ctx context.Context, topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", fmt.Errorf("topic is empty")
	}
	prompt := fmt.Sprintf("Write a single-host podcast episode script about %q: intro, three talking points, outro. Respond with the narration text only.", topic)
	text, err := g.generate(ctx, prompt, 0.7)
	if err != nil {
		return g.fallback.PodcastFromTopic(ctx, topic)
	}
	return text, nil
}

func (g *Gemini) FreePodcast(ctx context.Context) (string, error) {
	prompt := "Pick an interesting subject yourself and write a short single-host podcast episode script about it: intro, two or three talking points, outro. Respond with the narration text only."
	text, err := g.generate(ctx, prompt, 0.9)
	if err != nil {
		return g.fallback.FreePodcast(ctx)
	}
	return text, nil
}

func (g *Gemini) Dialogue(ctx context.Context, topic string) ([]domain.DialogueTurn, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic is empty")
	}
	prompt := fmt.Sprintf(`Write a two-speaker podcast conversation about %q, eight to twelve turns. Respond strictly as JSON: [{"speaker":"1","text":string},{"speaker":"2","text":string},...] alternating speakers.`, topic)
	text, err := g.generate(ctx, prompt, 0.7)
	if err != nil {
		return g.fallback.Dialogue(ctx, topic)
	}
	turns, err := parseDialogue(text)
	if err != nil || len(turns) == 0 {
		return g.fallback.Dialogue(ctx, topic)
	}
	return turns, nil
}

func (g *Gemini) Article(ctx context.Context, topic string, opts domain.ArticleOptions) (string, error) {
	style := opts.Style
	if style == "" {
		style = "informative"
	}
	words := opts.WordCount
	if words <= 0 {
		words = 600
	}
	prompt := fmt.Sprintf("Write an %s long-form article about %q of roughly %d words. Respond with the article text only.", style, topic, words)
	text, err := g.generate(ctx, prompt, 0.5)
	if err != nil {
		return g.fallback.Article(ctx, topic, opts)
	}
	return text, nil
}

func (g *Gemini) TweetThread(ctx context.Context, topic string, opts domain.TweetOptions) ([]string, error) {
	n := clampTweetCount(opts.NumTweets)
	tone := opts.Tone
	if tone == "" {
		tone = "informative"
	}
	prompt := fmt.Sprintf(`Write a %s tweet thread about %q with exactly %d tweets, each under 280 characters. Respond strictly as a JSON array of %d strings.`, tone, topic, n, n)
	text, err := g.generate(ctx, prompt, 0.7)
	if err != nil {
		return g.fallback.TweetThread(ctx, topic, opts)
	}
	tweets, err := parseTweets(text, n)
	if err != nil {
		return g.fallback.TweetThread(ctx, topic, opts)
	}
	return tweets, nil
}

func (g *Gemini) BookChapter(ctx context.Context, topic string, opts domain.BookChapterOptions) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Write one chapter of a book about %q.", topic)
	if opts.ChapterTitle != "" {
		fmt.Fprintf(&b, " Chapter title: %q.", opts.ChapterTitle)
	}
	if opts.Genre != "" {
		fmt.Fprintf(&b, " Genre: %s.", opts.Genre)
	}
	if opts.PreviousSummary != "" {
		fmt.Fprintf(&b, " Continue from this summary of earlier chapters: %s", opts.PreviousSummary)
	}
	b.WriteString(" Respond with the chapter text only.")
	text, err := g.generate(ctx, b.String(), 0.8)
	if err != nil {
		return g.fallback.BookChapter(ctx, topic, opts)
	}
	return text, nil
}

func (g *Gemini) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	if g.client == nil || !g.client.Configured() {
		return "", fmt.Errorf("gemini client not configured")
	}
	return g.client.GenerateText(ctx, prompt, temperature)
}

func parseDialogue(raw string) ([]domain.DialogueTurn, error) {
	fragment := extractJSONFragment(raw)
	if fragment == "" {
		return nil, fmt.Errorf("empty dialogue payload")
	}
	var turns []domain.DialogueTurn
	if err := json.Unmarshal([]byte(fragment), &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

func parseTweets(raw string, want int) ([]string, error) {
	fragment := extractJSONFragment(raw)
	if fragment == "" {
		return nil, fmt.Errorf("empty thread payload")
	}
	var tweets []string
	if err := json.Unmarshal([]byte(fragment), &tweets); err != nil {
		return nil, err
	}
	if len(tweets) == 0 {
		return nil, fmt.Errorf("thread payload holds no tweets")
	}
	// The model may over- or under-deliver; the contract is exactly `want`.
	if len(tweets) > want {
		tweets = tweets[:want]
	}
	for len(tweets) < want {
		tweets = append(tweets, tweets[len(tweets)-1])
	}
	return tweets, nil
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

var _ Generator = (*Gemini)(nil)
