package domain

// DialogueTurn is one utterance in a two-speaker podcast script.
type DialogueTurn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// PodcastOptions selects the podcast sub-mode and carries its inputs. Field
// requirements depend on PodcastType and are enforced by the job runner, not
// at request-parse time.
type PodcastOptions struct {
	PodcastType PodcastType    `json:"podcast_type"`
	CustomText  string         `json:"custom_text,omitempty"`
	Topic       string         `json:"topic,omitempty"`
	Dialogues   []DialogueTurn `json:"dialogues,omitempty"`
	Voice1      string         `json:"voice1,omitempty"`
	Voice2      string         `json:"voice2,omitempty"`
}

// ArticleOptions tunes long-form article generation.
type ArticleOptions struct {
	Style     string `json:"style,omitempty"`
	WordCount int    `json:"word_count,omitempty"`
}

// TweetOptions tunes tweet thread generation.
type TweetOptions struct {
	NumTweets int    `json:"num_tweets,omitempty"`
	Tone      string `json:"tone,omitempty"`
}

// BookChapterOptions carries the narrative context for a chapter.
type BookChapterOptions struct {
	ChapterTitle    string `json:"chapter_title,omitempty"`
	PreviousSummary string `json:"previous_summary,omitempty"`
	Genre           string `json:"genre,omitempty"`
}

// ContentRequest is the request envelope accepted by POST /generate. Topic
// doubles as the character description for stories.
type ContentRequest struct {
	ContentType        ContentType         `json:"content_type"`
	Topic              string              `json:"topic"`
	VideoPrompt        string              `json:"video_prompt,omitempty"`
	EducationalStyle   string              `json:"educational_style,omitempty"`
	DifficultyLevel    string              `json:"difficulty_level,omitempty"`
	PodcastOptions     *PodcastOptions     `json:"podcast_options,omitempty"`
	ArticleOptions     *ArticleOptions     `json:"article_options,omitempty"`
	TweetOptions       *TweetOptions       `json:"tweet_options,omitempty"`
	BookChapterOptions *BookChapterOptions `json:"book_chapter_options,omitempty"`
}
