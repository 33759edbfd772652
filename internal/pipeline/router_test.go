package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentmaker/internal/domain"
)

func TestResolveBindings(t *testing.T) {
	tests := []struct {
		contentType domain.ContentType
		filename    string
		mediaType   string
	}{
		{domain.ContentTypeStory, domain.FileVideo, domain.MediaTypeVideo},
		{domain.ContentTypeEducational, domain.FileVideo, domain.MediaTypeVideo},
		{domain.ContentTypePodcast, domain.FilePodcastAudio, domain.MediaTypeAudio},
		{domain.ContentTypeArticle, domain.FileArticle, domain.MediaTypeText},
		{domain.ContentTypeTweetThread, domain.FileTweetThread, domain.MediaTypeJSON},
		{domain.ContentTypeBookChapter, domain.FileBookChapter, domain.MediaTypeText},
	}
	for _, tc := range tests {
		t.Run(string(tc.contentType), func(t *testing.T) {
			v, err := Resolve(tc.contentType)
			require.NoError(t, err)
			assert.Equal(t, tc.contentType, v.ContentType)
			assert.Equal(t, tc.filename, v.OutputFilename)
			assert.Equal(t, tc.mediaType, v.MediaType)
			assert.NotNil(t, v.run)
		})
	}
}

func TestResolveUnknownContentType(t *testing.T) {
	_, err := Resolve(domain.ContentType("haiku"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestDefaultArtifact(t *testing.T) {
	name, media := DefaultArtifact(domain.ContentTypeArticle)
	assert.Equal(t, domain.FileArticle, name)
	assert.Equal(t, domain.MediaTypeText, media)

	// Unknown types fall back to the historical video binding.
	name, media = DefaultArtifact(domain.ContentType("haiku"))
	assert.Equal(t, domain.FileVideo, name)
	assert.Equal(t, domain.MediaTypeVideo, media)
}
