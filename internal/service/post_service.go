package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/init0-hack8/postpulse/internal/composer"
	"github.com/init0-hack8/postpulse/internal/models"
	"github.com/init0-hack8/postpulse/internal/repository"
	"github.com/init0-hack8/postpulse/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type PostService interface {
	CreatePost(ctx context.Context, uid string, draft *composer.Draft) (*transfer.SubmissionResult, error)
	List(ctx context.Context, uid string) ([]*models.Post, error)
	PostInfo(ctx context.Context, postID, uid string) (*models.Post, error)
}

type postService struct {
	pr       repository.PostRepository
	uploader AssetUploader
}

func NewPostService(pr repository.PostRepository, uploader AssetUploader) PostService {
	return &postService{pr: pr, uploader: uploader}
}

var allowedImageTypes = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {},
}

// CreatePost runs the submission workflow: validate the draft, upload every
// file to the asset host, then write one post document. Uploads are
// best-effort with no rollback; a failed upload drops that file's URL and is
// reported in the aggregate result instead of being silently discarded.
func (s *postService) CreatePost(ctx context.Context, uid string, draft *composer.Draft) (*transfer.SubmissionResult, error) {
	if uid == "" {
		err := &AuthenticationError{Reason: "no authenticated identity"}
		slog.Info(err.Error())
		return nil, err
	}

	if err := draft.Validate(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	files := draft.Files()

	// Read and sniff everything up front so a disallowed file fails the
	// whole submission before any bytes leave the process.
	contents := make([][]byte, len(files))
	mimes := make([]string, len(files))
	for i, file := range files {
		data, err := readFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %w", err)
		}

		kind, err := filetype.Match(data)
		if err != nil || kind == types.Unknown {
			return nil, &composer.ValidationError{Field: "files", Reason: "unrecognized file type"}
		}
		if _, ok := allowedImageTypes[kind.Extension]; !ok {
			return nil, &composer.ValidationError{
				Field:  "files",
				Reason: fmt.Sprintf("file type %s is not allowed", kind.Extension),
			}
		}

		contents[i] = data
		mimes[i] = kind.MIME.Value
	}

	urls, uploadErr := s.uploadAll(ctx, contents, mimes)

	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("error generating post id: %w", err)
	}

	post := models.Post{
		ID:          id,
		UID:         uid,
		Description: draft.Content(),
		Platform:    draft.Platform(),
		IsJobUpdate: draft.IsJobUpdate(),
		MediaURLs:   urls,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.pr.Create(ctx, &post); err != nil {
		return nil, &PersistenceError{Op: "error creating post", Err: err}
	}

	result := &transfer.SubmissionResult{
		PostID:    id,
		State:     transfer.StateSucceeded,
		MediaURLs: urls,
		Uploaded:  len(urls),
	}
	if uploadErr != nil {
		result.Failed = uploadErr.Failed
		result.Warning = uploadErr.Error()
	}
	return result, nil
}

// uploadAll pushes every file to the asset host with bounded concurrency.
// URLs come back in selection order regardless of completion order; failed
// uploads are dropped from the slice and counted in the returned UploadError.
func (s *postService) uploadAll(ctx context.Context, contents [][]byte, mimes []string) ([]string, *UploadError) {
	slots := make([]string, len(contents))
	errs := make([]error, len(contents))

	var wg sync.WaitGroup
	concurrencyLimit := 5
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := range contents {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			key := uuid.NewString()
			url, err := s.uploader.Upload(ctx, key, contents[i], mimes[i])
			if err != nil {
				slog.Error("upload failed", "index", i, "error", err)
				errs[i] = err
				return
			}
			slots[i] = url
		}(i)
	}
	wg.Wait()

	urls := make([]string, 0, len(contents))
	var failed []error
	for i, url := range slots {
		if errs[i] != nil {
			failed = append(failed, errs[i])
			continue
		}
		urls = append(urls, url)
	}

	if len(failed) > 0 {
		return urls, &UploadError{Failed: len(failed), Total: len(contents), Errs: failed}
	}
	return urls, nil
}

func (s *postService) List(ctx context.Context, uid string) ([]*models.Post, error) {
	posts, err := s.pr.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

func (s *postService) PostInfo(ctx context.Context, postID, uid string) (*models.Post, error) {
	if uid == "" {
		err := &AuthenticationError{Reason: "no authenticated identity"}
		slog.Info(err.Error())
		return nil, err
	}
	if postID == "" {
		return nil, errors.New("post id is not valid")
	}

	isOwner, err := s.pr.CheckByUID(ctx, postID, uid)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		err = errors.New("post doesn't exist")
		slog.Info(err.Error())
		return nil, err
	}

	post, _, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("error getting post info: %w", err)
	}
	return post, nil
}
