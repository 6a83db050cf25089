package queue

import (
	"github.com/init0-hack8/postpulse/internal/repository"
	"github.com/init0-hack8/postpulse/internal/service"
)

type Queue struct {
	pr repository.PostRepository
	as service.AnalysisService
}

func NewQueue(pr repository.PostRepository, as service.AnalysisService) *Queue {
	return &Queue{
		pr: pr,
		as: as,
	}
}

const TaskTypeAnalyzePost = "analyze:post"

type AnalyzePostPayload struct {
	PostID string `json:"post_id"`
}
