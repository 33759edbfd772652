package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveAssetsRoundTrip(t *testing.T) {
	data := ArchiveAssets([]Asset{
		{Filename: "article.txt", MIME: "text/plain", Data: []byte("hello")},
		{Filename: "thread.json", MIME: "application/json", Data: []byte(`["a"]`)},
	})
	require.NotNil(t, data)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	assert.Equal(t, "article.txt", zr.File[0].Name)
	assert.Equal(t, "text/plain", zr.File[0].Comment)

	rf, err := zr.File[0].Open()
	require.NoError(t, err)
	body, err := io.ReadAll(rf)
	require.NoError(t, err)
	require.NoError(t, rf.Close())
	assert.Equal(t, "hello", string(body))
}

func TestArchiveAssetsEmptyInput(t *testing.T) {
	data := ArchiveAssets(nil)
	require.NotNil(t, data)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}
