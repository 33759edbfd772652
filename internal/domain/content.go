package domain

// ContentType enumerates supported generation job categories.
type ContentType string

const (
	ContentTypeStory       ContentType = "story"
	ContentTypeEducational ContentType = "educational"
	ContentTypePodcast     ContentType = "podcast"
	ContentTypeArticle     ContentType = "article"
	ContentTypeTweetThread ContentType = "tweet_thread"
	ContentTypeBookChapter ContentType = "book_chapter"
)

// ContentTypes lists every supported content type in a stable order.
var ContentTypes = []ContentType{
	ContentTypeStory,
	ContentTypeEducational,
	ContentTypePodcast,
	ContentTypeArticle,
	ContentTypeTweetThread,
	ContentTypeBookChapter,
}

// Valid reports whether the content type belongs to the supported set.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeStory, ContentTypeEducational, ContentTypePodcast,
		ContentTypeArticle, ContentTypeTweetThread, ContentTypeBookChapter:
		return true
	}
	return false
}

// ProducesVideo reports whether the pipeline for this type ends in a muxed video.
func (t ContentType) ProducesVideo() bool {
	return t == ContentTypeStory || t == ContentTypeEducational
}

// PodcastType enumerates podcast generation sub-modes.
type PodcastType string

const (
	PodcastTypeCustomText     PodcastType = "custom_text"
	PodcastTypeTopicBased     PodcastType = "topic_based"
	PodcastTypeFreeGeneration PodcastType = "free_generation"
	PodcastTypeDialogue       PodcastType = "dialogue"
)

// Artifact filenames inside a job's output directory. The names are part of
// the on-disk contract and must not change between releases.
const (
	FileScript          = "content.txt"
	FilePodcastScript   = "podcast_script.txt"
	FilePodcastAudio    = "podcast_audio.mp3"
	FileArticle         = "article.txt"
	FileTweetThread     = "tweet_thread.json"
	FileBookChapter     = "book_chapter.txt"
	FileVideo           = "content_video.mp4"
	FileVoiceOver       = "voice_over.mp3"
	FileBackgroundMusic = "background_music.wav"
)

// Media types of the primary deliverable per pipeline.
const (
	MediaTypeVideo = "video/mp4"
	MediaTypeAudio = "audio/mpeg"
	MediaTypeText  = "text/plain"
	MediaTypeJSON  = "application/json"
)
