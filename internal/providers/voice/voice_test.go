package voice

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentmaker/internal/domain"
)

func TestNarrateWritesTaggedAudio(t *testing.T) {
	l := NewLocal()
	out := filepath.Join(t.TempDir(), "narration.mp3")

	err := l.Narrate(context.Background(), "The quick brown fox jumps over the lazy dog.", out, "")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Greater(t, len(data), 4096)
	assert.Equal(t, "ID3", string(data[:3]))
}

func TestNarrateRejectsEmptyText(t *testing.T) {
	l := NewLocal()
	err := l.Narrate(context.Background(), "   ", filepath.Join(t.TempDir(), "x.mp3"), "")
	assert.Error(t, err)
}

func TestNarrateSizeScalesWithText(t *testing.T) {
	l := NewLocal()
	dir := t.TempDir()

	short := filepath.Join(dir, "short.mp3")
	require.NoError(t, l.Narrate(context.Background(), "one two three", short, ""))

	var longText string
	for i := 0; i < 200; i++ {
		longText += "word "
	}
	long := filepath.Join(dir, "long.mp3")
	require.NoError(t, l.Narrate(context.Background(), longText, long, ""))

	shortInfo, err := os.Stat(short)
	require.NoError(t, err)
	longInfo, err := os.Stat(long)
	require.NoError(t, err)
	assert.Greater(t, longInfo.Size(), shortInfo.Size())
}

func TestDialogueRequiresTurns(t *testing.T) {
	l := NewLocal()
	err := l.Dialogue(context.Background(), nil, filepath.Join(t.TempDir(), "d.mp3"), "", "")
	assert.Error(t, err)
}

func TestDialogueWritesAudio(t *testing.T) {
	l := NewLocal()
	out := filepath.Join(t.TempDir(), "d.mp3")
	turns := []domain.DialogueTurn{
		{Speaker: "1", Text: "Welcome back."},
		{Speaker: "2", Text: "Glad to be here."},
	}
	require.NoError(t, l.Dialogue(context.Background(), turns, out, "alto", "bass"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "ID3", string(data[:3]))
}

func TestEstimateSeconds(t *testing.T) {
	assert.Equal(t, 10, EstimateSeconds(""))
	assert.Equal(t, 10, EstimateSeconds("just a few words"))

	var b string
	for i := 0; i < 300; i++ {
		b += "word "
	}
	assert.Equal(t, 120, EstimateSeconds(b))
}
