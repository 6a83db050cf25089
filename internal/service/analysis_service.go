package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/init0-hack8/postpulse/internal/models"
	"github.com/init0-hack8/postpulse/internal/repository"
	"github.com/init0-hack8/postpulse/internal/transfer"
	"github.com/redis/go-redis/v9"
)

const analysisCacheTTL = 10 * time.Minute

type AnalysisService interface {
	Result(ctx context.Context, postID string) (*transfer.AnalysisView, bool, error)
	Analyze(ctx context.Context, post *models.Post) (*models.AnalysisResult, error)
}

type analysisService struct {
	ar  repository.AnalysisRepository
	rdb *redis.Client
}

func NewAnalysisService(ar repository.AnalysisRepository, rdb *redis.Client) AnalysisService {
	return &analysisService{ar: ar, rdb: rdb}
}

// Result fetches the analysis document for a post and reshapes it for the
// dashboard charts. Documents are immutable once written, so reads go
// through a short-lived Redis cache before hitting the store.
func (s *analysisService) Result(ctx context.Context, postID string) (*transfer.AnalysisView, bool, error) {
	if postID == "" {
		return nil, false, fmt.Errorf("post id is not valid")
	}

	if cached := s.cacheGet(ctx, postID); cached != nil {
		return buildView(cached), true, nil
	}

	result, found, err := s.ar.GetByPostID(ctx, postID)
	if err != nil {
		return nil, false, fmt.Errorf("error getting analysis result: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	s.cacheSet(ctx, postID, result)
	return buildView(result), true, nil
}

func (s *analysisService) cacheGet(ctx context.Context, postID string) *models.AnalysisResult {
	if s.rdb == nil {
		return nil
	}
	data, err := s.rdb.Get(ctx, analysisCacheKey(postID)).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Info(err.Error())
		}
		return nil
	}
	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		slog.Info(err.Error())
		return nil
	}
	return &result
}

func (s *analysisService) cacheSet(ctx context.Context, postID string, result *models.AnalysisResult) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		slog.Info(err.Error())
		return
	}
	if err := s.rdb.Set(ctx, analysisCacheKey(postID), data, analysisCacheTTL).Err(); err != nil {
		slog.Info(err.Error())
	}
}

func analysisCacheKey(postID string) string {
	return "analysis:" + postID
}

// buildView defaults every absent nested field and reshapes the sentiment
// maps into ordered point arrays. Map iteration order is not stable, so the
// chart arrays are sorted by key to keep the rendering deterministic.
func buildView(result *models.AnalysisResult) *transfer.AnalysisView {
	if result.SentimentDistribution == nil {
		result.SentimentDistribution = map[string]float64{}
	}
	if result.SentimentSummary == nil {
		result.SentimentSummary = map[string]float64{}
	}
	if result.TrendingHashtags == nil {
		result.TrendingHashtags = []string{}
	}
	if result.AudienceSegmentation == nil {
		result.AudienceSegmentation = map[string][]string{}
	}
	if result.PlatformEngagementStyles == nil {
		result.PlatformEngagementStyles = map[string]string{}
	}
	if result.PostStrategySummary == nil {
		result.PostStrategySummary = map[string]string{}
	}
	if result.RecommendedActions == nil {
		result.RecommendedActions = []string{}
	}

	view := &transfer.AnalysisView{
		AnalysisResult: result,
		SentimentChart: make([]transfer.ChartPoint, 0, len(result.SentimentDistribution)),
		SummaryChart:   make([]transfer.MetricPoint, 0, len(result.SentimentSummary)),
	}

	for _, key := range sortedKeys(result.SentimentDistribution) {
		view.SentimentChart = append(view.SentimentChart, transfer.ChartPoint{
			Sentiment: key,
			Value:     result.SentimentDistribution[key],
		})
	}
	for _, key := range sortedKeys(result.SentimentSummary) {
		view.SummaryChart = append(view.SummaryChart, transfer.MetricPoint{
			Metric: key,
			Value:  result.SentimentSummary[key],
		})
	}
	return view
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Analyze builds and stores the analysis document for a post. It is
// idempotent per post: an existing result is returned as-is so a re-enqueued
// task never produces a duplicate document.
func (s *analysisService) Analyze(ctx context.Context, post *models.Post) (*models.AnalysisResult, error) {
	existing, found, err := s.ar.GetByPostID(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing analysis: %w", err)
	}
	if found {
		return existing, nil
	}

	result := generateInsights(post)

	if err := s.ar.Create(ctx, result); err != nil {
		return nil, &PersistenceError{Op: "error creating analysis result", Err: err}
	}
	s.cacheSet(ctx, post.ID, result)
	return result, nil
}
