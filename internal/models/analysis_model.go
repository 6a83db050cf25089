package models

import "time"

// AnalysisResult is the per-post analysis document stored in the "results"
// collection. Field names match the documents the dashboard renders, so the
// bson/json tags stay in the snake_case the analysis schema uses.
type AnalysisResult struct {
	PostID                   string              `bson:"postId" json:"postId"`
	AnalyzedAt               time.Time           `bson:"analyzedAt" json:"analyzedAt"`
	SentimentDistribution    map[string]float64  `bson:"sentiment_distribution" json:"sentiment_distribution"`
	SentimentSummary         map[string]float64  `bson:"sentiment_summary" json:"sentiment_summary"`
	TrendingHashtags         []string            `bson:"trending_hashtags" json:"trending_hashtags"`
	AudienceSegmentation     map[string][]string `bson:"audience_segmentation" json:"audience_segmentation"`
	PlatformEngagementStyles map[string]string   `bson:"platform_engagement_styles" json:"platform_engagement_styles"`
	PostStrategySummary      map[string]string   `bson:"post_strategy_summary" json:"post_strategy_summary"`
	RecommendedActions       []string            `bson:"recommended_actions" json:"recommended_actions"`
	Notes                    string              `bson:"notes" json:"notes"`
}
