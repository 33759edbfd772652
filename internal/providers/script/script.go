// Package script produces the text artifacts that feed downstream media
// steps. Implementations are opaque to the pipeline; a generator may signal
// failure either through a returned error or through an "Error:"-prefixed
// result string, a convention the job runner normalizes.
package script

import (
	"context"

	"contentmaker/internal/domain"
)

// Generator is the contract for every text-producing step.
type Generator interface {
	// Story writes a short narrated story from a character description.
	Story(ctx context.Context, characterDescription string) (string, error)
	// Educational writes a script aware of presentation style and difficulty.
	Educational(ctx context.Context, topic, style, difficulty string) (string, error)
	// PodcastFromText turns user-supplied text into a narration script.
	PodcastFromText(ctx context.Context, customText string) (string, error)
	// PodcastFromTopic writes a narration script about a topic.
	PodcastFromTopic(ctx context.Context, topic string) (string, error)
	// FreePodcast writes a narration script on a subject of its own choosing.
	FreePodcast(ctx context.Context) (string, error)
	// Dialogue writes a two-speaker turn-taking conversation about a topic.
	Dialogue(ctx context.Context, topic string) ([]domain.DialogueTurn, error)
	// Article writes long-form text.
	Article(ctx context.Context, topic string, opts domain.ArticleOptions) (string, error)
	// TweetThread writes an ordered list of short texts.
	TweetThread(ctx context.Context, topic string, opts domain.TweetOptions) ([]string, error)
	// BookChapter writes long-form text with narrative context.
	BookChapter(ctx context.Context, topic string, opts domain.BookChapterOptions) (string, error)
}

const (
	// DefaultTweetCount applies when tweet_options omits num_tweets.
	DefaultTweetCount = 5
	// MaxTweetCount bounds a single thread.
	MaxTweetCount = 25
)

func clampTweetCount(n int) int {
	if n <= 0 {
		return DefaultTweetCount
	}
	if n > MaxTweetCount {
		return MaxTweetCount
	}
	return n
}
