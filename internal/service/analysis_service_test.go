package service

import (
	"context"
	"sync"
	"testing"

	"github.com/init0-hack8/postpulse/internal/models"
	"github.com/init0-hack8/postpulse/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalysisRepo struct {
	mu      sync.Mutex
	results map[string]*models.AnalysisResult
	creates int
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{results: map[string]*models.AnalysisResult{}}
}

func (r *fakeAnalysisRepo) Create(ctx context.Context, result *models.AnalysisResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	stored := *result
	r.results[result.PostID] = &stored
	return nil
}

func (r *fakeAnalysisRepo) GetByPostID(ctx context.Context, postID string) (*models.AnalysisResult, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result, ok := r.results[postID]
	if !ok {
		return nil, false, nil
	}
	copied := *result
	return &copied, true, nil
}

func (r *fakeAnalysisRepo) ExistsForPost(ctx context.Context, postID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.results[postID]
	return ok, nil
}

func TestResult_NotFound(t *testing.T) {
	s := NewAnalysisService(newFakeAnalysisRepo(), nil)

	view, found, err := s.Result(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, view)
}

func TestResult_DefaultsAbsentFields(t *testing.T) {
	repo := newFakeAnalysisRepo()
	repo.results["p1"] = &models.AnalysisResult{PostID: "p1"}
	s := NewAnalysisService(repo, nil)

	view, found, err := s.Result(context.Background(), "p1")
	require.NoError(t, err)
	require.True(t, found)

	assert.NotNil(t, view.SentimentDistribution)
	assert.NotNil(t, view.SentimentSummary)
	assert.NotNil(t, view.TrendingHashtags)
	assert.NotNil(t, view.AudienceSegmentation)
	assert.NotNil(t, view.RecommendedActions)
	assert.Empty(t, view.SentimentChart)
	assert.Empty(t, view.SummaryChart)
}

func TestResult_ChartReshapeIsOrdered(t *testing.T) {
	repo := newFakeAnalysisRepo()
	repo.results["p1"] = &models.AnalysisResult{
		PostID: "p1",
		SentimentDistribution: map[string]float64{
			"positive": 65,
			"negative": 10,
			"neutral":  25,
		},
		SentimentSummary: map[string]float64{
			"virality_potential": 78,
			"content_richness":   68,
		},
	}
	s := NewAnalysisService(repo, nil)

	view, found, err := s.Result(context.Background(), "p1")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, []transfer.ChartPoint{
		{Sentiment: "negative", Value: 10},
		{Sentiment: "neutral", Value: 25},
		{Sentiment: "positive", Value: 65},
	}, view.SentimentChart)

	assert.Equal(t, []transfer.MetricPoint{
		{Metric: "content_richness", Value: 68},
		{Metric: "virality_potential", Value: 78},
	}, view.SummaryChart)
}

func TestAnalyze_Idempotent(t *testing.T) {
	repo := newFakeAnalysisRepo()
	s := NewAnalysisService(repo, nil)

	post := &models.Post{
		ID:          "p1",
		UID:         "user-1",
		Description: "launch day! #golang #release",
		Platform:    models.PlatformX,
		MediaURLs:   []string{"https://cdn.test/u-A"},
	}

	first, err := s.Analyze(context.Background(), post)
	require.NoError(t, err)
	assert.Equal(t, "p1", first.PostID)
	assert.False(t, first.AnalyzedAt.IsZero())

	second, err := s.Analyze(context.Background(), post)
	require.NoError(t, err)
	assert.Equal(t, first.AnalyzedAt, second.AnalyzedAt)
	assert.Equal(t, 1, repo.creates)
}

func TestGenerateInsights_Hashtags(t *testing.T) {
	post := &models.Post{
		ID:          "p1",
		Description: "so happy about this #golang #GoLang #release, truly the best",
		Platform:    models.PlatformX,
	}

	result := generateInsights(post)

	assert.Equal(t, []string{"#golang", "#GoLang", "#release"}, result.TrendingHashtags)
	assert.Greater(t, result.SentimentDistribution["positive"], 0.0)
	assert.Equal(t, 100.0,
		result.SentimentDistribution["positive"]+
			result.SentimentDistribution["neutral"]+
			result.SentimentDistribution["negative"])
}

func TestGenerateInsights_EmptyContentIsNeutral(t *testing.T) {
	result := generateInsights(&models.Post{ID: "p1", Platform: models.PlatformFacebook})

	assert.Equal(t, 100.0, result.SentimentDistribution["neutral"])
	assert.Empty(t, result.TrendingHashtags)
	assert.Contains(t, result.RecommendedActions, "Add 2-3 topical hashtags to improve discoverability")
}

func TestGenerateInsights_DeterministicPerPost(t *testing.T) {
	post := &models.Post{
		ID:          "p1",
		Description: "hello #world",
		Platform:    models.PlatformInstagram,
		MediaURLs:   []string{"a", "b"},
	}

	a := generateInsights(post)
	b := generateInsights(post)

	assert.Equal(t, a.SentimentSummary, b.SentimentSummary)
	assert.Equal(t, a.SentimentDistribution, b.SentimentDistribution)
	assert.Equal(t, a.TrendingHashtags, b.TrendingHashtags)
}
