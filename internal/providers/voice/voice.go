// Package voice renders narration audio onto disk. The local engine writes
// deterministic MP3-shaped placeholders sized by the text, standing in for a
// real text-to-speech integration behind the same contract.
package voice

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"contentmaker/internal/domain"
)

// Synthesizer is the contract for both narration modes.
type Synthesizer interface {
	// Narrate writes single-voice narration for text to outputPath.
	// voiceName may be empty for the engine default.
	Narrate(ctx context.Context, text, outputPath, voiceName string) error
	// Dialogue writes a two-voice rendition of the turns to outputPath.
	Dialogue(ctx context.Context, turns []domain.DialogueTurn, outputPath, voice1, voice2 string) error
}

const (
	defaultVoice       = "narrator"
	defaultVoiceOne    = "host"
	defaultVoiceTwo    = "guest"
	wordsPerMinute     = 150
	bytesPerSpokenWord = 256
)

// Local synthesizes placeholder audio without external services.
type Local struct{}

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Narrate(ctx context.Context, text, outputPath, voiceName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("narration text is empty")
	}
	if voiceName == "" {
		voiceName = defaultVoice
	}
	return writeAudioFile(outputPath, fmt.Sprintf("voice=%s", voiceName), text)
}

func (l *Local) Dialogue(ctx context.Context, turns []domain.DialogueTurn, outputPath, voice1, voice2 string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(turns) == 0 {
		return fmt.Errorf("dialogue has no turns")
	}
	if voice1 == "" {
		voice1 = defaultVoiceOne
	}
	if voice2 == "" {
		voice2 = defaultVoiceTwo
	}
	var b strings.Builder
	for _, turn := range turns {
		fmt.Fprintf(&b, "[%s] %s\n", turn.Speaker, turn.Text)
	}
	return writeAudioFile(outputPath, fmt.Sprintf("voices=%s,%s", voice1, voice2), b.String())
}

// EstimateSeconds approximates the spoken duration of text, used to size the
// background music track for video pipelines.
func EstimateSeconds(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 10
	}
	seconds := words * 60 / wordsPerMinute
	if seconds < 10 {
		return 10
	}
	return seconds
}

// writeAudioFile lays down an ID3v2 header followed by deterministic frame
// payload proportional to the text length, so players and tests see a
// non-empty tagged MP3.
func writeAudioFile(outputPath, tag, text string) error {
	payloadSize := len(strings.Fields(text)) * bytesPerSpokenWord
	if payloadSize < 4096 {
		payloadSize = 4096
	}

	meta := []byte(tag)
	header := make([]byte, 10)
	copy(header, "ID3")
	header[3] = 3 // ID3v2.3
	binary.BigEndian.PutUint32(header[6:], synchsafe(uint32(len(meta))))

	payload := make([]byte, payloadSize)
	for i := 0; i+1 < len(payload); i += 417 {
		payload[i] = 0xFF
		payload[i+1] = 0xFB
	}

	out := make([]byte, 0, len(header)+len(meta)+len(payload))
	out = append(out, header...)
	out = append(out, meta...)
	out = append(out, payload...)
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("write audio file: %w", err)
	}
	return nil
}

func synchsafe(v uint32) uint32 {
	return (v & 0x7F) | (v&0x3F80)<<1 | (v&0x1FC000)<<2 | (v&0xFE00000)<<3
}

var _ Synthesizer = (*Local)(nil)
