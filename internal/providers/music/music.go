// Package music composes background audio tracks as real PCM WAV files.
package music

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// Composer writes a background track of the requested duration to outputPath.
type Composer interface {
	Compose(ctx context.Context, durationSeconds int, outputPath string) error
}

const (
	sampleRate  = 8000
	maxDuration = 300
)

// Local renders a quiet deterministic chord progression, a stand-in for a
// remote music-synthesis service behind the same contract.
type Local struct{}

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Compose(ctx context.Context, durationSeconds int, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if durationSeconds <= 0 {
		durationSeconds = 1
	}
	if durationSeconds > maxDuration {
		durationSeconds = maxDuration
	}

	samples := durationSeconds * sampleRate
	data := make([]byte, 0, 44+samples*2)
	data = append(data, wavHeader(samples)...)

	// Slow four-chord loop, low amplitude so narration stays dominant.
	freqs := []float64{220.0, 174.61, 196.0, 164.81}
	for i := 0; i < samples; i++ {
		chord := (i / (sampleRate * 4)) % len(freqs)
		t := float64(i) / sampleRate
		v := math.Sin(2 * math.Pi * freqs[chord] * t)
		sample := int16(v * 0.15 * math.MaxInt16)
		data = binary.LittleEndian.AppendUint16(data, uint16(sample))
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write music file: %w", err)
	}
	return nil
}

func wavHeader(samples int) []byte {
	dataSize := samples * 2
	h := make([]byte, 0, 44)
	h = append(h, "RIFF"...)
	h = binary.LittleEndian.AppendUint32(h, uint32(36+dataSize))
	h = append(h, "WAVE"...)
	h = append(h, "fmt "...)
	h = binary.LittleEndian.AppendUint32(h, 16)
	h = binary.LittleEndian.AppendUint16(h, 1) // PCM
	h = binary.LittleEndian.AppendUint16(h, 1) // mono
	h = binary.LittleEndian.AppendUint32(h, sampleRate)
	h = binary.LittleEndian.AppendUint32(h, sampleRate*2)
	h = binary.LittleEndian.AppendUint16(h, 2)
	h = binary.LittleEndian.AppendUint16(h, 16)
	h = append(h, "data"...)
	h = binary.LittleEndian.AppendUint32(h, uint32(dataSize))
	return h
}

var _ Composer = (*Local)(nil)
