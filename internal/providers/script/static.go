package script

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"contentmaker/internal/domain"
)

// Static is a deterministic generator used as the fallback when no remote
// model is configured or a remote call fails. The output is plain template
// text, good enough to keep every downstream step exercised.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Story(ctx context.Context, characterDescription string) (string, error) {
	subject := fallbackSubject(characterDescription, "an unnamed wanderer")
	paragraphs := []string{
		fmt.Sprintf("Once upon a time there lived %s.", subject),
		fmt.Sprintf("Every morning %s set out across the valley, chasing a question nobody else dared to ask.", subject),
		"The journey was longer than expected, and the answer, when it finally came, was smaller and kinder than anyone had guessed.",
		"And so the story ended where it began, at home, with one more tale worth telling.",
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

func (s *Static) Educational(ctx context.Context, topic, style, difficulty string) (string, error) {
	subject := fallbackSubject(topic, "the subject at hand")
	if style == "" {
		style = "explainer"
	}
	if difficulty == "" {
		difficulty = "beginner"
	}
	sections := []string{
		fmt.Sprintf("Welcome to this %s on %s, pitched at a %s level.", style, subject, difficulty),
		fmt.Sprintf("First, the core idea: %s can be understood through a handful of fundamentals that build on each other.", subject),
		"Next, a worked example shows how those fundamentals combine in practice.",
		fmt.Sprintf("To close, remember the key takeaway and try applying %s to a problem of your own.", subject),
	}
	return strings.Join(sections, "\n\n"), nil
}

func (s *Static) PodcastFromText(ctx context.Context, customText string) (string, error) {
	text := strings.TrimSpace(customText)
	if text == "" {
		return "", fmt.Errorf("custom text is empty")
	}
	return fmt.Sprintf("Welcome to the show. Today's episode reads as follows.\n\n%s\n\nThanks for listening, and see you next time.", text), nil
}

func (s *Static) PodcastFromTopic(ctx context.Context, topic string) (string, error) {
	subject := strings.TrimSpace(topic)
	if subject == "" {
		return "", fmt.Errorf("topic is empty")
	}
	return fmt.Sprintf("Welcome to the show. Today we are talking about %s.\n\nThere are three things worth knowing about %s: where it came from, why it matters now, and where it might go next. Let's take them in order.\n\nThat's all for today. Thanks for listening.", subject, subject), nil
}

func (s *Static) FreePodcast(ctx context.Context) (string, error) {
	return "Welcome to the show. Today's episode is a freeform one: a short reflection on how small habits compound into large outcomes, and why the boring parts of any craft are usually the load-bearing ones.\n\nThanks for listening.", nil
}

func (s *Static) Dialogue(ctx context.Context, topic string) ([]domain.DialogueTurn, error) {
	subject := strings.TrimSpace(topic)
	if subject == "" {
		return nil, fmt.Errorf("topic is empty")
	}
	return []domain.DialogueTurn{
		{Speaker: "1", Text: fmt.Sprintf("Today we're digging into %s. Where should we start?", subject)},
		{Speaker: "2", Text: "Let's start with the basics, because most of the confusion lives there."},
		{Speaker: "1", Text: fmt.Sprintf("Fair enough. So what is %s, in one sentence?", subject)},
		{Speaker: "2", Text: "In one sentence: it's simpler than its reputation and harder than its marketing."},
		{Speaker: "1", Text: "That sounds about right. Any closing advice for listeners?"},
		{Speaker: "2", Text: "Start small, measure honestly, and don't skip the fundamentals."},
	}, nil
}

func (s *Static) Article(ctx context.Context, topic string, opts domain.ArticleOptions) (string, error) {
	subject := fallbackSubject(topic, "the chosen subject")
	style := opts.Style
	if style == "" {
		style = "informative"
	}
	paragraphs := []string{
		fmt.Sprintf("%s: an %s overview.", cases.Title(language.English).String(subject), style),
		fmt.Sprintf("Interest in %s has grown steadily, and with it a need for a grounded, practical introduction.", subject),
		fmt.Sprintf("This article walks through the essentials of %s, the trade-offs practitioners actually face, and the questions that remain open.", subject),
		"The conclusion is deliberately modest: understand the fundamentals first, and the rest follows.",
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

func (s *Static) TweetThread(ctx context.Context, topic string, opts domain.TweetOptions) ([]string, error) {
	subject := fallbackSubject(topic, "this topic")
	n := clampTweetCount(opts.NumTweets)
	tone := opts.Tone
	if tone == "" {
		tone = "informative"
	}
	tweets := make([]string, n)
	for i := range tweets {
		switch i {
		case 0:
			tweets[i] = fmt.Sprintf("A short %s thread on %s. (1/%d)", tone, subject, n)
		case n - 1:
			tweets[i] = fmt.Sprintf("That's the thread. If one idea sticks, let it be this: %s rewards patience. (%d/%d)", subject, n, n)
		default:
			tweets[i] = fmt.Sprintf("Point %d: another angle on %s worth sitting with. (%d/%d)", i, subject, i+1, n)
		}
	}
	return tweets, nil
}

func (s *Static) BookChapter(ctx context.Context, topic string, opts domain.BookChapterOptions) (string, error) {
	subject := fallbackSubject(topic, "the story so far")
	title := opts.ChapterTitle
	if title == "" {
		title = "An Unexpected Turn"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Chapter: %s\n\n", title)
	if opts.PreviousSummary != "" {
		fmt.Fprintf(&b, "Previously: %s\n\n", opts.PreviousSummary)
	}
	fmt.Fprintf(&b, "The morning broke differently this time, and everything about %s seemed to shift with it.", subject)
	b.WriteString("\n\nWhat followed filled the hours between doubt and resolve, until the chapter closed on a question that would open the next.")
	return b.String(), nil
}

func fallbackSubject(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

var _ Generator = (*Static)(nil)
