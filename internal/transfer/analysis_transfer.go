package transfer

import "github.com/init0-hack8/postpulse/internal/models"

// AnalysisView is the analysis document plus the chart-ready reshapes the
// dashboard radar charts consume directly.
type AnalysisView struct {
	*models.AnalysisResult
	SentimentChart []ChartPoint  `json:"sentiment_chart"`
	SummaryChart   []MetricPoint `json:"summary_chart"`
}
