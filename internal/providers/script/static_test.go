package script

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentmaker/internal/domain"
)

func TestStaticTweetThreadCounts(t *testing.T) {
	s := NewStatic()
	ctx := context.Background()

	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"default when unset", 0, DefaultTweetCount},
		{"exact request", 3, 3},
		{"negative falls back to default", -2, DefaultTweetCount},
		{"clamped to maximum", 100, MaxTweetCount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tweets, err := s.TweetThread(ctx, "espresso", domain.TweetOptions{NumTweets: tc.requested})
			require.NoError(t, err)
			assert.Len(t, tweets, tc.want)
			for _, tweet := range tweets {
				assert.NotEmpty(t, tweet)
			}
		})
	}
}

func TestStaticDialogueAlternatesSpeakers(t *testing.T) {
	s := NewStatic()
	turns, err := s.Dialogue(context.Background(), "tidal energy")
	require.NoError(t, err)
	require.NotEmpty(t, turns)
	for i, turn := range turns {
		want := "1"
		if i%2 == 1 {
			want = "2"
		}
		assert.Equal(t, want, turn.Speaker)
		assert.NotEmpty(t, turn.Text)
	}
	assert.Contains(t, turns[0].Text, "tidal energy")
}

func TestStaticDialogueRequiresTopic(t *testing.T) {
	s := NewStatic()
	_, err := s.Dialogue(context.Background(), "   ")
	assert.Error(t, err)
}

func TestStaticPodcastFromTextEmbedsText(t *testing.T) {
	s := NewStatic()
	out, err := s.PodcastFromText(context.Background(), "Bridges are older than roads.")
	require.NoError(t, err)
	assert.Contains(t, out, "Bridges are older than roads.")

	_, err = s.PodcastFromText(context.Background(), "  ")
	assert.Error(t, err)
}

func TestStaticPodcastFromTopicRequiresTopic(t *testing.T) {
	s := NewStatic()
	_, err := s.PodcastFromTopic(context.Background(), "")
	assert.Error(t, err)

	out, err := s.PodcastFromTopic(context.Background(), "ferries")
	require.NoError(t, err)
	assert.Contains(t, out, "ferries")
}

func TestStaticIsDeterministic(t *testing.T) {
	s := NewStatic()
	ctx := context.Background()

	a, err := s.Story(ctx, "a retired sailor")
	require.NoError(t, err)
	b, err := s.Story(ctx, "a retired sailor")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "a retired sailor")
}

func TestStaticArticleTitlesSubject(t *testing.T) {
	s := NewStatic()
	out, err := s.Article(context.Background(), "urban gardens", domain.ArticleOptions{Style: "casual"})
	require.NoError(t, err)
	assert.Contains(t, out, "Urban Gardens")
	assert.Contains(t, out, "casual")
}
