// Package videomux assembles scene images, narration and background music
// into the job's final video file.
package videomux

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"contentmaker/internal/domain"
)

// Request names every input of one mux run. All paths are absolute or
// job-directory relative and must already exist on disk.
type Request struct {
	ImagePaths  []string
	VoicePath   string
	MusicPath   string
	OutputPath  string
	VideoPrompt string
	ContentType domain.ContentType
}

// Muxer writes the final video for a job.
type Muxer interface {
	Mux(ctx context.Context, req Request) error
}

// Local validates the inputs and writes an MP4-framed placeholder embedding a
// manifest of its sources, standing in for a real encoder behind the same
// contract.
type Local struct{}

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Mux(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(req.ImagePaths) == 0 {
		return fmt.Errorf("mux needs at least one image")
	}
	inputs := append([]string{req.VoicePath, req.MusicPath}, req.ImagePaths...)
	for _, path := range inputs {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("mux input missing: %w", err)
		}
	}

	manifest, err := json.Marshal(map[string]any{
		"content_type": req.ContentType,
		"prompt":       req.VideoPrompt,
		"scenes":       baseNames(req.ImagePaths),
		"voice":        filepath.Base(req.VoicePath),
		"music":        filepath.Base(req.MusicPath),
	})
	if err != nil {
		return fmt.Errorf("encode mux manifest: %w", err)
	}

	data := ftypBox()
	data = append(data, box("mdat", manifest)...)
	if err := os.WriteFile(req.OutputPath, data, 0o644); err != nil {
		return fmt.Errorf("write video file: %w", err)
	}
	return nil
}

func ftypBox() []byte {
	payload := []byte("isom\x00\x00\x02\x00isomiso2mp41")
	return box("ftyp", payload)
}

func box(kind string, payload []byte) []byte {
	b := make([]byte, 0, 8+len(payload))
	b = binary.BigEndian.AppendUint32(b, uint32(8+len(payload)))
	b = append(b, kind...)
	b = append(b, payload...)
	return b
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

var _ Muxer = (*Local)(nil)
