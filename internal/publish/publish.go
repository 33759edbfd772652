// Package publish materializes public copies of job artifacts under the
// static serving tree. Publication is copy-if-absent so repeated listing or
// embed calls stay idempotent.
package publish

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/singleflight"
)

const (
	videosSubdir = "videos"
	audiosSubdir = "audios"
)

// Publisher owns the static directory layout and the public URL scheme.
type Publisher struct {
	staticDir string
	baseURL   string
	group     singleflight.Group
}

// New prepares the static subdirectories and returns a Publisher serving
// URLs under baseURL (for example "/static").
func New(staticDir, baseURL string) (*Publisher, error) {
	staticDir = strings.TrimSpace(staticDir)
	if staticDir == "" {
		return nil, errors.New("publish: static dir is required")
	}
	for _, sub := range []string{videosSubdir, audiosSubdir} {
		if err := os.MkdirAll(filepath.Join(staticDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("publish: ensure static dir: %w", err)
		}
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = "/static"
	}
	return &Publisher{staticDir: staticDir, baseURL: baseURL}, nil
}

// Video publishes a job's video artifact and returns its public URL.
func (p *Publisher) Video(jobID, sourcePath string) (string, error) {
	return p.publish(videosSubdir, jobID+".mp4", sourcePath)
}

// Audio publishes a job's podcast audio and returns its public URL.
func (p *Publisher) Audio(jobID, sourcePath string) (string, error) {
	return p.publish(audiosSubdir, jobID+".mp3", sourcePath)
}

// VideoURL returns the public URL a published video would have, without
// touching the filesystem.
func (p *Publisher) VideoURL(jobID string) string {
	return fmt.Sprintf("%s/%s/%s.mp4", p.baseURL, videosSubdir, jobID)
}

// publish copies sourcePath to the public location unless it already exists.
// Concurrent calls for the same target collapse into one copy via
// singleflight, so two simultaneous listings cannot race on a partial file.
func (p *Publisher) publish(subdir, filename, sourcePath string) (string, error) {
	target := filepath.Join(p.staticDir, subdir, filename)
	url := fmt.Sprintf("%s/%s/%s", p.baseURL, subdir, filename)

	_, err, _ := p.group.Do(target, func() (any, error) {
		if _, err := os.Stat(target); err == nil {
			return nil, nil
		}
		return nil, copyFile(sourcePath, target)
	})
	if err != nil {
		return "", fmt.Errorf("publish %s: %w", filename, err)
	}
	return url, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	// Write to a temp name first so readers never observe a partial copy.
	tmp := dst + ".tmp"
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dst)
}
