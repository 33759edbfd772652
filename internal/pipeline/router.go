package pipeline

import (
	"context"
	"fmt"

	"contentmaker/internal/domain"
)

// Variant describes one content type's pipeline: the steps to run and the
// primary artifact the job delivers. Adding a content type means adding one
// table entry and the generator calls it needs, nothing else.
type Variant struct {
	ContentType    domain.ContentType
	OutputFilename string
	MediaType      string
	run            stepFunc
}

type stepFunc func(ctx context.Context, r *Runner, jobID string, req domain.ContentRequest, outputDir string) (runResult, error)

// runResult carries variant-specific fields of the completed record.
type runResult struct {
	audioURL string
}

var variants = map[domain.ContentType]Variant{
	domain.ContentTypeStory: {
		ContentType:    domain.ContentTypeStory,
		OutputFilename: domain.FileVideo,
		MediaType:      domain.MediaTypeVideo,
		run:            runVideo,
	},
	domain.ContentTypeEducational: {
		ContentType:    domain.ContentTypeEducational,
		OutputFilename: domain.FileVideo,
		MediaType:      domain.MediaTypeVideo,
		run:            runVideo,
	},
	domain.ContentTypePodcast: {
		ContentType:    domain.ContentTypePodcast,
		OutputFilename: domain.FilePodcastAudio,
		MediaType:      domain.MediaTypeAudio,
		run:            runPodcast,
	},
	domain.ContentTypeArticle: {
		ContentType:    domain.ContentTypeArticle,
		OutputFilename: domain.FileArticle,
		MediaType:      domain.MediaTypeText,
		run:            runArticle,
	},
	domain.ContentTypeTweetThread: {
		ContentType:    domain.ContentTypeTweetThread,
		OutputFilename: domain.FileTweetThread,
		MediaType:      domain.MediaTypeJSON,
		run:            runTweetThread,
	},
	domain.ContentTypeBookChapter: {
		ContentType:    domain.ContentTypeBookChapter,
		OutputFilename: domain.FileBookChapter,
		MediaType:      domain.MediaTypeText,
		run:            runBookChapter,
	},
}

// Resolve returns the pipeline variant for a content type.
func Resolve(contentType domain.ContentType) (Variant, error) {
	v, ok := variants[contentType]
	if !ok {
		return Variant{}, fmt.Errorf("unsupported content type: %s", contentType)
	}
	return v, nil
}

// DefaultArtifact returns the legacy filename and media type for records
// written before output bindings were stored on the job itself.
func DefaultArtifact(contentType domain.ContentType) (filename, mediaType string) {
	v, ok := variants[contentType]
	if !ok {
		return domain.FileVideo, domain.MediaTypeVideo
	}
	return v.OutputFilename, v.MediaType
}
