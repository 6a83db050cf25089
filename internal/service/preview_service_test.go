package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF, 0xE0}
)

func pngBytes(suffix byte) []byte {
	return append(append([]byte{}, pngMagic...), suffix)
}

func jpegBytes(suffix byte) []byte {
	return append(append([]byte{}, jpegMagic...), suffix)
}

// makeFileHeaders builds real multipart file headers the way fiber hands
// them to handlers, preserving the given order.
func makeFileHeaders(t *testing.T, contents ...[]byte) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for i, data := range contents {
		fw, err := w.CreateFormFile("files", "file-"+string(rune('a'+i)))
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["files"]
}

func TestFromFiles_EmptySelectionClears(t *testing.T) {
	s := NewPreviewService()

	previews, err := s.FromFiles(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, previews)
	assert.Len(t, previews, 0)
}

func TestFromFiles_OrderMatchesSelection(t *testing.T) {
	s := NewPreviewService()

	imgA := pngBytes('A')
	imgB := jpegBytes('B')
	imgC := pngBytes('C')
	files := makeFileHeaders(t, imgA, imgB, imgC)

	previews, err := s.FromFiles(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, previews, 3)

	assert.Equal(t, dataURL("image/png", imgA), previews[0])
	assert.Equal(t, dataURL("image/jpeg", imgB), previews[1])
	assert.Equal(t, dataURL("image/png", imgC), previews[2])
}

func TestFromFiles_SkipsNonImages(t *testing.T) {
	s := NewPreviewService()

	imgA := pngBytes('A')
	text := []byte("not an image at all")
	imgB := pngBytes('B')
	files := makeFileHeaders(t, imgA, text, imgB)

	previews, err := s.FromFiles(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, previews, 2)

	// Relative order of the surviving image previews is preserved.
	assert.Equal(t, dataURL("image/png", imgA), previews[0])
	assert.Equal(t, dataURL("image/png", imgB), previews[1])
}

func TestImageDataURL_RejectsNonImage(t *testing.T) {
	_, ok := ImageDataURL([]byte("plain text"))
	assert.False(t, ok)
}

func TestImageDataURL_SniffsContentNotName(t *testing.T) {
	url, ok := ImageDataURL(pngBytes('X'))
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}

func dataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
