package queue

import (
	"context"
	"testing"
	"time"

	"github.com/init0-hack8/postpulse/internal/models"
	"github.com/init0-hack8/postpulse/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPostRepo struct {
	post *models.Post
}

func (r *stubPostRepo) Create(ctx context.Context, post *models.Post) error { return nil }

func (r *stubPostRepo) GetByID(ctx context.Context, id string) (*models.Post, bool, error) {
	if r.post != nil && r.post.ID == id {
		return r.post, true, nil
	}
	return nil, false, nil
}

func (r *stubPostRepo) GetByUID(ctx context.Context, uid string) ([]*models.Post, error) {
	return nil, nil
}

func (r *stubPostRepo) CheckByUID(ctx context.Context, id, uid string) (bool, error) {
	return false, nil
}

func (r *stubPostRepo) ListCreatedBefore(ctx context.Context, cutoff time.Time, limit int64) ([]*models.Post, error) {
	return nil, nil
}

type stubAnalysisService struct {
	analyzed []string
}

func (s *stubAnalysisService) Analyze(ctx context.Context, post *models.Post) (*models.AnalysisResult, error) {
	s.analyzed = append(s.analyzed, post.ID)
	return &models.AnalysisResult{PostID: post.ID}, nil
}

func (s *stubAnalysisService) Result(ctx context.Context, postID string) (*transfer.AnalysisView, bool, error) {
	return nil, false, nil
}

func TestAnalyzePost_RunsAnalysis(t *testing.T) {
	repo := &stubPostRepo{post: &models.Post{ID: "p1"}}
	svc := &stubAnalysisService{}
	q := NewQueue(repo, svc)

	require.NoError(t, q.AnalyzePost(context.Background(), "p1"))
	assert.Equal(t, []string{"p1"}, svc.analyzed)
}

func TestAnalyzePost_MissingPostIsNotRetried(t *testing.T) {
	repo := &stubPostRepo{}
	svc := &stubAnalysisService{}
	q := NewQueue(repo, svc)

	require.NoError(t, q.AnalyzePost(context.Background(), "gone"))
	assert.Empty(t, svc.analyzed)
}
