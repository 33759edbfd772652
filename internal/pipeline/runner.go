// Package pipeline routes generation requests onto content-type specific
// step sequences and executes them to a terminal job state.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"contentmaker/internal/domain"
	"contentmaker/internal/infra"
	"contentmaker/internal/jobstore"
	"contentmaker/internal/providers/image"
	"contentmaker/internal/providers/music"
	"contentmaker/internal/providers/script"
	"contentmaker/internal/providers/videomux"
	"contentmaker/internal/providers/voice"
	"contentmaker/internal/publish"
)

// errorSentinel marks textual generator results that encode a failure instead
// of content. External text generators document this convention.
const errorSentinel = "Error:"

// RunnerOptions wires the runner's collaborators.
type RunnerOptions struct {
	Store     *jobstore.Store
	Script    script.Generator
	Images    image.Generator
	Voice     voice.Synthesizer
	Music     music.Composer
	Mux       videomux.Muxer
	Publisher *publish.Publisher
	Logger    infra.Logger
	Now       func() time.Time
}

// Runner executes exactly one pipeline per job, strictly sequentially.
// Steps for a video job are independent but deliberately not parallelized:
// error attribution stays trivial at the cost of latency.
type Runner struct {
	store     *jobstore.Store
	script    script.Generator
	images    image.Generator
	voice     voice.Synthesizer
	music     music.Composer
	mux       videomux.Muxer
	publisher *publish.Publisher
	log       infra.Logger
	now       func() time.Time
}

func NewRunner(opts RunnerOptions) *Runner {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Runner{
		store:     opts.Store,
		script:    opts.Script,
		images:    opts.Images,
		voice:     opts.Voice,
		music:     opts.Music,
		mux:       opts.Mux,
		publisher: opts.Publisher,
		log:       opts.Logger,
		now:       now,
	}
}

// Run executes the pipeline for one job and records the terminal state. It
// runs detached from the originating request: the only observable outcome is
// the job record, never a return value. Errors stop remaining steps; partial
// artifacts stay in the job-scoped output directory.
func (r *Runner) Run(ctx context.Context, jobID string, req domain.ContentRequest, outputDir string) {
	variant, err := Resolve(req.ContentType)
	if err != nil {
		r.fail(jobID, err)
		return
	}

	result, err := variant.run(ctx, r, jobID, req, outputDir)
	if err != nil {
		r.fail(jobID, err)
		return
	}

	completion := jobstore.Completion{
		OutputFilename: variant.OutputFilename,
		MediaType:      variant.MediaType,
		AudioURL:       result.audioURL,
		At:             r.now(),
	}
	if err := r.store.Complete(jobID, completion); err != nil {
		r.log.Error().Err(err).Str("job_id", jobID).Msg("pipeline: record completion")
		return
	}
	r.log.Info().
		Str("job_id", jobID).
		Str("content_type", string(req.ContentType)).
		Str("output", variant.OutputFilename).
		Msg("pipeline: job completed")
}

// fail converts any in-pipeline error into a terminal failed record. The
// message is stored verbatim; clients inspect it as opaque text.
func (r *Runner) fail(jobID string, cause error) {
	if err := r.store.Fail(jobID, cause.Error(), r.now()); err != nil {
		r.log.Error().Err(err).Str("job_id", jobID).Msg("pipeline: record failure")
		return
	}
	r.log.Warn().Str("job_id", jobID).Str("error", cause.Error()).Msg("pipeline: job failed")
}

// normalizeText folds the two failure channels of text generators (raised
// error, sentinel-prefixed result) into one, so step code never inspects raw
// strings for error markers.
func normalizeText(text string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.New("generator returned an empty result")
	}
	if strings.HasPrefix(trimmed, errorSentinel) {
		return "", errors.New(trimmed)
	}
	return text, nil
}

func runVideo(ctx context.Context, r *Runner, jobID string, req domain.ContentRequest, outputDir string) (runResult, error) {
	var (
		text string
		err  error
	)
	switch req.ContentType {
	case domain.ContentTypeStory:
		text, err = r.script.Story(ctx, req.Topic)
	default:
		text, err = r.script.Educational(ctx, req.Topic, req.EducationalStyle, req.DifficultyLevel)
	}
	text, err = normalizeText(text, err)
	if err != nil {
		return runResult{}, err
	}

	// Persist the script before the long-running media steps so cheap work
	// survives a later failure.
	if err := os.WriteFile(filepath.Join(outputDir, domain.FileScript), []byte(text), 0o644); err != nil {
		return runResult{}, err
	}

	imagePaths, err := r.images.Generate(ctx, text, req.Topic, outputDir, req.ContentType)
	if err != nil {
		return runResult{}, err
	}

	voicePath := filepath.Join(outputDir, domain.FileVoiceOver)
	if err := r.voice.Narrate(ctx, text, voicePath, ""); err != nil {
		return runResult{}, err
	}

	musicPath := filepath.Join(outputDir, domain.FileBackgroundMusic)
	if err := r.music.Compose(ctx, voice.EstimateSeconds(text), musicPath); err != nil {
		return runResult{}, err
	}

	err = r.mux.Mux(ctx, videomux.Request{
		ImagePaths:  imagePaths,
		VoicePath:   voicePath,
		MusicPath:   musicPath,
		OutputPath:  filepath.Join(outputDir, domain.FileVideo),
		VideoPrompt: req.VideoPrompt,
		ContentType: req.ContentType,
	})
	if err != nil {
		return runResult{}, err
	}
	return runResult{}, nil
}

func runPodcast(ctx context.Context, r *Runner, jobID string, req domain.ContentRequest, outputDir string) (runResult, error) {
	opts := req.PodcastOptions
	if opts == nil {
		return runResult{}, errors.New("podcast options not provided for podcast content type")
	}

	audioPath := filepath.Join(outputDir, domain.FilePodcastAudio)

	if opts.PodcastType == domain.PodcastTypeDialogue {
		if err := runDialoguePodcast(ctx, r, req, outputDir, audioPath); err != nil {
			return runResult{}, err
		}
	} else {
		if err := runNarratedPodcast(ctx, r, opts, outputDir, audioPath); err != nil {
			return runResult{}, err
		}
	}

	// Presentation-layer convenience preserved for interface compatibility:
	// podcast audio gets a public copy and the job records its URL.
	audioURL, err := r.publisher.Audio(jobID, audioPath)
	if err != nil {
		return runResult{}, err
	}
	return runResult{audioURL: audioURL}, nil
}

func runDialoguePodcast(ctx context.Context, r *Runner, req domain.ContentRequest, outputDir, audioPath string) error {
	opts := req.PodcastOptions
	turns := opts.Dialogues
	if len(turns) == 0 {
		topic := strings.TrimSpace(opts.Topic)
		if topic == "" {
			topic = strings.TrimSpace(req.Topic)
		}
		if topic == "" {
			return errors.New("dialogue podcast requires a non-empty dialogues list or a topic to auto-generate one")
		}
		generated, err := r.script.Dialogue(ctx, topic)
		if err != nil {
			return err
		}
		if len(generated) == 0 {
			return errors.New("dialogue generation returned no turns")
		}
		turns = generated
	}

	var b strings.Builder
	for _, turn := range turns {
		fmt.Fprintf(&b, "Speaker %s: %s\n", turn.Speaker, turn.Text)
	}
	if err := os.WriteFile(filepath.Join(outputDir, domain.FilePodcastScript), []byte(b.String()), 0o644); err != nil {
		return err
	}

	return r.voice.Dialogue(ctx, turns, audioPath, opts.Voice1, opts.Voice2)
}

func runNarratedPodcast(ctx context.Context, r *Runner, opts *domain.PodcastOptions, outputDir, audioPath string) error {
	var (
		text string
		err  error
	)
	switch opts.PodcastType {
	case domain.PodcastTypeCustomText:
		if strings.TrimSpace(opts.CustomText) == "" {
			return errors.New("custom text not provided for custom_text podcast type")
		}
		text, err = r.script.PodcastFromText(ctx, opts.CustomText)
	case domain.PodcastTypeTopicBased:
		if strings.TrimSpace(opts.Topic) == "" {
			return errors.New("topic not provided for topic_based podcast type")
		}
		text, err = r.script.PodcastFromTopic(ctx, opts.Topic)
	case domain.PodcastTypeFreeGeneration:
		text, err = r.script.FreePodcast(ctx)
	default:
		return fmt.Errorf("invalid podcast type: %s", opts.PodcastType)
	}
	text, err = normalizeText(text, err)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(outputDir, domain.FilePodcastScript), []byte(text), 0o644); err != nil {
		return err
	}

	return r.voice.Narrate(ctx, text, audioPath, opts.Voice1)
}

func runArticle(ctx context.Context, r *Runner, jobID string, req domain.ContentRequest, outputDir string) (runResult, error) {
	var opts domain.ArticleOptions
	if req.ArticleOptions != nil {
		opts = *req.ArticleOptions
	}
	text, err := normalizeText(r.script.Article(ctx, req.Topic, opts))
	if err != nil {
		return runResult{}, err
	}
	if err := os.WriteFile(filepath.Join(outputDir, domain.FileArticle), []byte(text), 0o644); err != nil {
		return runResult{}, err
	}
	return runResult{}, nil
}

func runTweetThread(ctx context.Context, r *Runner, jobID string, req domain.ContentRequest, outputDir string) (runResult, error) {
	var opts domain.TweetOptions
	if req.TweetOptions != nil {
		opts = *req.TweetOptions
	}
	tweets, err := r.script.TweetThread(ctx, req.Topic, opts)
	if err != nil {
		return runResult{}, err
	}
	for i, tweet := range tweets {
		if _, err := normalizeText(tweet, nil); err != nil {
			return runResult{}, fmt.Errorf("tweet %d: %w", i+1, err)
		}
	}

	payload, err := json.MarshalIndent(tweets, "", "  ")
	if err != nil {
		return runResult{}, err
	}
	if err := os.WriteFile(filepath.Join(outputDir, domain.FileTweetThread), payload, 0o644); err != nil {
		return runResult{}, err
	}
	return runResult{}, nil
}

func runBookChapter(ctx context.Context, r *Runner, jobID string, req domain.ContentRequest, outputDir string) (runResult, error) {
	var opts domain.BookChapterOptions
	if req.BookChapterOptions != nil {
		opts = *req.BookChapterOptions
	}
	text, err := normalizeText(r.script.BookChapter(ctx, req.Topic, opts))
	if err != nil {
		return runResult{}, err
	}
	if err := os.WriteFile(filepath.Join(outputDir, domain.FileBookChapter), []byte(text), 0o644); err != nil {
		return runResult{}, err
	}
	return runResult{}, nil
}
