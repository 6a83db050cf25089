package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"sync"

	"github.com/h2non/filetype"
)

// PreviewService turns a local file selection into self-contained data-URL
// previews, without touching the asset host.
type PreviewService interface {
	FromFiles(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}

type previewService struct{}

func NewPreviewService() PreviewService {
	return &previewService{}
}

// FromFiles reads every image-typed file concurrently and returns previews in
// the original selection order. Results are written into a fixed-size buffer
// by index; a file that is not an image (or cannot be read) leaves a hole
// that is compacted out afterwards, so completion order never leaks into the
// output order.
func (s *previewService) FromFiles(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}

	results := make([]string, len(files))

	var wg sync.WaitGroup
	concurrencyLimit := 8
	semaphore := make(chan struct{}, concurrencyLimit)

	for i, file := range files {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, file *multipart.FileHeader) {
			defer wg.Done()
			defer func() { <-semaphore }()

			data, err := readFile(file)
			if err != nil {
				slog.Info(err.Error())
				return
			}

			if url, ok := ImageDataURL(data); ok {
				results[i] = url
			}
		}(i, file)
	}
	wg.Wait()

	previews := make([]string, 0, len(files))
	for _, r := range results {
		if r != "" {
			previews = append(previews, r)
		}
	}
	return previews, nil
}

// ImageDataURL encodes image bytes as an inline data URL. The media type is
// sniffed from content, not trusted from the upload headers. Non-image bytes
// report ok=false.
func ImageDataURL(data []byte) (string, bool) {
	kind, err := filetype.Match(data)
	if err != nil || kind.MIME.Type != "image" {
		return "", false
	}
	return fmt.Sprintf("data:%s;base64,%s", kind.MIME.Value, base64.StdEncoding.EncodeToString(data)), true
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}
	return data, nil
}
