package service

import (
	"strings"
	"time"
	"unicode"

	"github.com/init0-hack8/postpulse/internal/composer"
	"github.com/init0-hack8/postpulse/internal/models"
)

// Content heuristics behind Analyze. Everything here is deterministic on the
// post document so re-running analysis for the same post yields the same
// result.

var positiveWords = map[string]struct{}{
	"great": {}, "love": {}, "awesome": {}, "happy": {}, "excited": {},
	"best": {}, "amazing": {}, "win": {}, "good": {}, "proud": {},
	"thrilled": {}, "beautiful": {}, "congrats": {}, "congratulations": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "hate": {}, "terrible": {}, "sad": {}, "angry": {},
	"worst": {}, "fail": {}, "awful": {}, "broken": {}, "disappointed": {},
}

func generateInsights(post *models.Post) *models.AnalysisResult {
	words := contentWords(post.Description)
	hashtags := extractHashtags(post.Description)

	positive, negative := 0, 0
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			positive++
		}
		if _, ok := negativeWords[w]; ok {
			negative++
		}
	}

	return &models.AnalysisResult{
		PostID:                   post.ID,
		AnalyzedAt:               time.Now().UTC(),
		SentimentDistribution:    sentimentDistribution(len(words), positive, negative),
		SentimentSummary:         sentimentSummary(post, words, hashtags, positive, negative),
		TrendingHashtags:         hashtags,
		AudienceSegmentation:     audienceSegmentation(post.Platform),
		PlatformEngagementStyles: platformEngagementStyles(),
		PostStrategySummary:      strategySummary(post, hashtags),
		RecommendedActions:       recommendedActions(post, hashtags),
	}
}

func contentWords(content string) []string {
	return strings.FieldsFunc(strings.ToLower(content), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '#'
	})
}

func extractHashtags(content string) []string {
	var tags []string
	seen := map[string]struct{}{}
	for _, w := range strings.Fields(content) {
		if !strings.HasPrefix(w, "#") || len(w) < 2 {
			continue
		}
		tag := strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '#'
		})
		if len(tag) < 2 {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func sentimentDistribution(total, positive, negative int) map[string]float64 {
	if total == 0 {
		return map[string]float64{"positive": 0, "neutral": 100, "negative": 0}
	}
	pos := float64(positive) / float64(total) * 100
	neg := float64(negative) / float64(total) * 100
	return map[string]float64{
		"positive": round1(pos),
		"negative": round1(neg),
		"neutral":  round1(100 - pos - neg),
	}
}

func sentimentSummary(post *models.Post, words, hashtags []string, positive, negative int) map[string]float64 {
	richness := clamp(float64(len(words)) * 4)
	impact := clamp(30 + float64(positive+negative)*15)
	engagement := clamp(40 + float64(len(hashtags))*10 + float64(len(post.MediaURLs))*5)
	relevance := clamp(45 + float64(len(hashtags))*8)
	virality := clamp((richness + impact + engagement) / 3)

	return map[string]float64{
		"content_richness":   richness,
		"emotional_impact":   impact,
		"engagement_level":   engagement,
		"topical_relevance":  relevance,
		"virality_potential": virality,
	}
}

func audienceSegmentation(platform string) map[string][]string {
	switch platform {
	case models.PlatformInstagram, models.PlatformThreads:
		return map[string][]string{
			"13-17": {"Highly visual, short attention span", "Responds to trends and memes"},
			"18-25": {"Core audience for this platform", "Engages through stories and reels"},
			"25-34": {"Follows niche creators", "Shares to close circles"},
		}
	case models.PlatformLinkedin:
		return map[string][]string{
			"18-25": {"Early-career, responds to job and growth content"},
			"25-34": {"Largest professional segment", "Engages with industry commentary"},
			"35-50": {"Decision makers", "Values long-form expertise"},
		}
	default:
		return map[string][]string{
			"18-25": {"Reacts quickly, amplifies trending topics"},
			"25-34": {"Broadest reach segment"},
			"35-50": {"Engages with news and community content"},
		}
	}
}

func platformEngagementStyles() map[string]string {
	return map[string]string{
		models.PlatformX:         "short bursts, replies and reposts drive reach",
		models.PlatformInstagram: "visual-first, carousels outperform single images",
		models.PlatformFacebook:  "community groups and shares carry distribution",
		models.PlatformThreads:   "conversational threads, early-reply advantage",
		models.PlatformLinkedin:  "professional tone, native documents and updates",
	}
}

func strategySummary(post *models.Post, hashtags []string) map[string]string {
	enhancement := "no"
	if len(hashtags) == 0 || len(post.MediaURLs) == 0 {
		enhancement = "yes"
	}
	return map[string]string{
		"enhancement_needed": enhancement,
		"ideal_audience":     idealAudience(post.Platform),
		"target_platform":    post.Platform,
	}
}

func idealAudience(platform string) string {
	if platform == models.PlatformLinkedin {
		return "professionals aged 25-50"
	}
	return "general audience aged 18-34"
}

func recommendedActions(post *models.Post, hashtags []string) []string {
	var actions []string
	if len(hashtags) == 0 {
		actions = append(actions, "Add 2-3 topical hashtags to improve discoverability")
	}
	if len(post.MediaURLs) == 0 {
		actions = append(actions, "Attach at least one image; media posts earn higher reach")
	}
	if len(post.MediaURLs) == 1 && composer.MultiImage(post.Platform) {
		actions = append(actions, "Consider a multi-image carousel for this platform")
	}
	if post.IsJobUpdate {
		actions = append(actions, "Tag your company page so the job update reaches followers")
	}
	if len(actions) == 0 {
		actions = append(actions, "Post timing matters: publish when your audience is most active")
	}
	return actions
}

func clamp(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return round1(v)
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
